package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List every recipe in the folder",
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, file := range library.Recipes() {
			line := file.Recipe.Title
			if len(file.Recipe.Tags) > 0 {
				line += "  [" + strings.Join(file.Recipe.Tags, ", ") + "]"
			}
			fmt.Println(line)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
