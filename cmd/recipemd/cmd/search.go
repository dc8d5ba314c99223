package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var searchTags []string

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search recipes by text and tags",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		query := ""
		if len(args) == 1 {
			query = args[0]
		}
		for _, file := range library.Search(query, searchTags) {
			fmt.Println(file.Recipe.Title)
		}
		return nil
	},
}

func init() {
	searchCmd.Flags().StringSliceVarP(&searchTags, "tag", "t", nil, "require a tag (repeatable, AND logic)")
	rootCmd.AddCommand(searchCmd)
}
