package config

import "os"

const DefaultTheme = "dark"

// Theme returns the presentation theme from the DIAPO_THEME env var,
// falling back to DefaultTheme. Deck frontmatter overrides this.
func Theme() string {
	if env := os.Getenv("DIAPO_THEME"); env != "" {
		return env
	}
	return DefaultTheme
}

// DebugLog returns the debug log path from the DIAPO_DEBUG env var.
// Empty disables debug logging; the TUI owns stdout, so logs never go
// there.
func DebugLog() string {
	return os.Getenv("DIAPO_DEBUG")
}
