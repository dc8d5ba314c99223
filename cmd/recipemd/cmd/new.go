package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-recipemd/markdown"
)

var newCmd = &cobra.Command{
	Use:   "new [file]",
	Short: "Add a recipe from a RecipeMD file or stdin",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var (
			source []byte
			err    error
		)
		if len(args) == 1 {
			source, err = os.ReadFile(args[0])
		} else {
			source, err = io.ReadAll(os.Stdin)
		}
		if err != nil {
			return err
		}

		parsed, err := markdown.Parse(source)
		if err != nil {
			return err
		}

		file, err := library.SaveNew(context.Background(), parsed)
		if err != nil {
			return err
		}
		fmt.Printf("saved %s\n", file.Path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(newCmd)
}
