package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "diapo",
	Short: "Present markdown slide decks in the terminal",
	Long: `diapo presents a markdown deck full screen in the terminal.

A deck is a single markdown file: optional YAML frontmatter (title,
author, date, theme) followed by slides separated by "---" lines.
Navigate with the arrow keys, the footer buttons, or a horizontal
mouse drag.`,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
