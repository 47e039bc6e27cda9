// Package deckfile loads presentation decks from markdown files. A deck
// file is optional YAML frontmatter followed by slides separated by
// horizontal rules.
package deckfile

import (
	"bytes"
	"fmt"
	"os"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"

	"diapo/internal/domain"
)

var (
	slideDelimRe = regexp.MustCompile(`(?m)^---+\s*$`)
	headingRe    = regexp.MustCompile(`(?m)^#{1,6}\s+(.+)$`)
)

// frontmatter mirrors the deck-level YAML keys.
type frontmatter struct {
	Title  string `yaml:"title"`
	Author string `yaml:"author"`
	Date   string `yaml:"date"`
	Theme  string `yaml:"theme"`
}

// Source loads decks from the filesystem.
type Source struct{}

// NewSource creates a filesystem deck source.
func NewSource() *Source {
	return &Source{}
}

// Load reads and parses the deck file at path.
func (s *Source) Load(path string) (*domain.Deck, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading deck file: %w", err)
	}
	deck, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return deck, nil
}

// Parse builds a deck from raw markdown bytes. Slides are split on
// horizontal-rule lines; blank slides are dropped. A deck with no
// content yields an empty, valid deck.
func Parse(data []byte) (*domain.Deck, error) {
	fm, body := splitFrontmatter(data)

	deck := &domain.Deck{
		Meta: domain.Meta{
			Title:  fm.Title,
			Author: fm.Author,
			Date:   fm.Date,
			Theme:  fm.Theme,
		},
	}

	for _, chunk := range slideDelimRe.Split(body, -1) {
		content := strings.TrimSpace(chunk)
		if content == "" {
			continue
		}
		deck.Slides = append(deck.Slides, &domain.Slide{
			Title:   slideTitle(content),
			Content: content,
		})
	}

	return deck, nil
}

// splitFrontmatter separates YAML frontmatter (between leading ---
// delimiters) from the markdown body. Missing or invalid frontmatter is
// not an error: the whole input becomes body.
func splitFrontmatter(data []byte) (frontmatter, string) {
	const delim = "---"
	var fm frontmatter

	trimmed := bytes.TrimLeft(data, "\n\r")
	if !bytes.HasPrefix(trimmed, []byte(delim+"\n")) {
		return fm, string(data)
	}

	rest := trimmed[len(delim):]
	idx := bytes.Index(rest, []byte("\n"+delim))
	if idx < 0 {
		return fm, string(data)
	}

	yamlBlock := rest[:idx]
	body := rest[idx+1+len(delim):]

	if err := yaml.Unmarshal(yamlBlock, &fm); err != nil {
		return frontmatter{}, string(data)
	}
	return fm, strings.TrimLeft(string(body), "\n\r")
}

// slideTitle returns the slide's first heading text, empty when the
// slide has no heading.
func slideTitle(content string) string {
	if m := headingRe.FindStringSubmatch(content); m != nil {
		return strings.TrimSpace(m[1])
	}
	return ""
}
