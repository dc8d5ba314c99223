package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-recipemd/recipe"
)

var scaleFractions bool

var scaleCmd = &cobra.Command{
	Use:   "scale <title> <multiplier>",
	Short: "Print a recipe's ingredients scaled by a multiplier",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		file, err := findByTitle(args[0])
		if err != nil {
			return err
		}
		multiplier, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return fmt.Errorf("invalid multiplier %q: %w", args[1], err)
		}

		mode := recipe.FormatDecimal
		if scaleFractions {
			mode = recipe.FormatFraction
		}

		for _, group := range file.Recipe.Groups {
			if group.Title != "" {
				fmt.Printf("\n%s\n", group.Title)
			}
			for _, ing := range group.Ingredients {
				if ing.Amount != nil {
					scaled := ing.Amount.Scale(multiplier)
					fmt.Printf("- %s %s\n", scaled.Format(mode), ing.Name)
				} else {
					fmt.Printf("- %s\n", ing.Name)
				}
			}
		}
		return nil
	},
}

func init() {
	scaleCmd.Flags().BoolVarP(&scaleFractions, "fractions", "f", false, "render amounts as cooking fractions")
	rootCmd.AddCommand(scaleCmd)
}
