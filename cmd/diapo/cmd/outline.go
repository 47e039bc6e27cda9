package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"diapo/internal/adapters/deckfile"
)

var outlineCmd = &cobra.Command{
	Use:   "outline <deck.md>",
	Short: "Print the deck outline",
	Long: `Print slide numbers and titles without presenting.

Example:
  diapo outline talk.md`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		deck, err := deckfile.NewSource().Load(args[0])
		if err != nil {
			return err
		}

		if deck.Meta.Title != "" {
			fmt.Fprintf(cmd.OutOrStdout(), "%s\n\n", deck.Meta.Title)
		}
		for i, s := range deck.Slides {
			title := s.Title
			if title == "" {
				title = "(untitled)"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d. %s\n", i+1, title)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(outlineCmd)
}
