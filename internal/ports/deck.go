package ports

import "diapo/internal/domain"

// DeckSource loads a presentation deck from a path.
type DeckSource interface {
	Load(path string) (*domain.Deck, error)
}
