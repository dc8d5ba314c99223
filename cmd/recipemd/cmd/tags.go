package cmd

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	recipescmd "github.com/goliatone/go-recipemd/internal/commands/recipes"
	"github.com/goliatone/go-recipemd/store"
)

var tagsCmd = &cobra.Command{
	Use:   "tags",
	Short: "Inspect and edit recipe tags",
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, freq := range library.TagFrequencies() {
			marker := ""
			if !freq.BuiltIn {
				marker = " [custom]"
			}
			fmt.Printf("%4d  %s%s\n", freq.Count, freq.Name, marker)
		}
		return nil
	},
}

var tagsAddCmd = &cobra.Command{
	Use:   "add <tag> <title>...",
	Short: "Add a tag to the named recipes",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		tag, ids, err := resolveTagSelection(args)
		if err != nil {
			return err
		}

		var result store.BulkResult
		handler := recipescmd.NewBulkAddTagsHandler(library.Store(), library.CommandLogger(), func(r store.BulkResult) {
			result = r
		})
		msg := recipescmd.BulkAddTagsCommand{Tags: []string{tag}, RecipeIDs: ids}
		if err := handler.Execute(context.Background(), msg); err != nil {
			return err
		}
		printBulkResult(result)
		return nil
	},
}

var tagsRemoveCmd = &cobra.Command{
	Use:   "remove <tag> <title>...",
	Short: "Remove a tag from the named recipes",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		tag, ids, err := resolveTagSelection(args)
		if err != nil {
			return err
		}

		var result store.BulkResult
		handler := recipescmd.NewBulkRemoveTagsHandler(library.Store(), library.CommandLogger(), func(r store.BulkResult) {
			result = r
		})
		msg := recipescmd.BulkRemoveTagsCommand{Tags: []string{tag}, RecipeIDs: ids}
		if err := handler.Execute(context.Background(), msg); err != nil {
			return err
		}
		printBulkResult(result)
		return nil
	},
}

// resolveTagSelection maps <tag> <title>... arguments to the tag and the
// matching recipe IDs.
func resolveTagSelection(args []string) (string, []uuid.UUID, error) {
	tag := args[0]

	ids := make([]uuid.UUID, 0, len(args)-1)
	for _, title := range args[1:] {
		file, err := findByTitle(title)
		if err != nil {
			return "", nil, err
		}
		ids = append(ids, file.ID)
	}
	return tag, ids, nil
}

func printBulkResult(result store.BulkResult) {
	fmt.Printf("%d updated, %d failed\n", result.Succeeded, result.Failed)
	for id, err := range result.Failures {
		fmt.Printf("  %s: %v\n", id, err)
	}
}

func init() {
	tagsCmd.AddCommand(tagsAddCmd)
	tagsCmd.AddCommand(tagsRemoveCmd)
	rootCmd.AddCommand(tagsCmd)
}
