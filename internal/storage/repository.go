package storage

import (
	"errors"

	"github.com/tcwang/elemental-cards/internal/card"
)

// ErrNotFound is returned (wrapped) by lookups that match no row.
var ErrNotFound = errors.New("record not found")

type Repository interface {
	// GetCards returns every card in insertion order.
	GetCards() ([]card.Card, error)
	// GetCardByName looks a card up by exact, case-sensitive name.
	GetCardByName(name string) (*card.Card, error)
	// UpsertCard inserts c or, when a card with the same name exists,
	// overwrites its stats in place. It reports whether a new row was
	// created.
	UpsertCard(c card.Card) (created bool, err error)
	// DeleteCardByName removes a card and reports whether it existed.
	DeleteCardByName(name string) (bool, error)
	CountCards() (int64, error)
	// TopCardsByScore returns up to limit cards ordered by derived
	// score (descending), ties broken by insertion order.
	TopCardsByScore(limit int) ([]card.Card, error)

	// Duel history
	SaveDuel(rec *DuelRecord) error
	GetDuels(limit int) ([]DuelRecord, error)
	GetDuelByID(duelID string) (*DuelRecord, error)
}
