package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-recipemd/markdown"
	"github.com/goliatone/go-recipemd/recipe"
)

var showCmd = &cobra.Command{
	Use:   "show <title>",
	Short: "Print a recipe as RecipeMD text",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		file, err := findByTitle(args[0])
		if err != nil {
			return err
		}
		os.Stdout.Write(markdown.Serialize(&file.Recipe))
		return nil
	},
}

func findByTitle(title string) (*recipe.File, error) {
	for _, file := range library.Recipes() {
		if strings.EqualFold(file.Recipe.Title, title) {
			return file, nil
		}
	}
	return nil, fmt.Errorf("no recipe titled %q", title)
}

func init() {
	rootCmd.AddCommand(showCmd)
}
