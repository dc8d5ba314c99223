package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	recipemd "github.com/goliatone/go-recipemd"
)

var (
	dir      string
	logLevel string
	library  *recipemd.Library
)

var rootCmd = &cobra.Command{
	Use:   "recipemd",
	Short: "Manage a folder of RecipeMD recipes",
	Long: `recipemd manages a folder of Markdown recipes in the RecipeMD format.

It lists, creates, searches, tags, and scales recipes stored as plain
.md files, the same files a synced mobile client reads and writes.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}

		cfg := recipemd.DefaultConfig()
		cfg.Dir = dir
		cfg.Logging.Level = logLevel

		lib, err := recipemd.New(cfg)
		if err != nil {
			return err
		}
		if err := lib.Load(context.Background()); err != nil {
			return err
		}

		for path, parseErr := range lib.ParseErrors() {
			fmt.Fprintf(os.Stderr, "warning: skipped %s: %v\n", path, parseErr)
		}

		library = lib
		return nil
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&dir, "dir", "d", ".", "path to the recipe folder")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "error", "log level (trace|debug|info|warn|error|fatal)")
}
