// Package collection owns the card catalog: CRUD by name, leaderboard
// queries and bulk import/export in the delimited text format. Cards
// are identified by exact, case-sensitive name; upserting an existing
// name overwrites that card's stats rather than creating a duplicate.
package collection

import (
	"errors"
	"io"

	"github.com/tcwang/elemental-cards/internal/card"
	"github.com/tcwang/elemental-cards/internal/cardtext"
	"github.com/tcwang/elemental-cards/internal/storage"
)

var (
	ErrNotFound     = errors.New("card not found")
	ErrNameRequired = errors.New("card name is required")
)

type Service struct {
	repo storage.Repository
}

func NewService(repo storage.Repository) *Service {
	return &Service{repo: repo}
}

// All returns the collection in insertion order.
func (s *Service) All() ([]card.Card, error) {
	return s.repo.GetCards()
}

func (s *Service) Find(name string) (card.Card, error) {
	c, err := s.repo.GetCardByName(name)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return card.Card{}, ErrNotFound
		}
		return card.Card{}, err
	}
	return *c, nil
}

// Upsert stores c, overwriting any card with the same name. It
// reports whether a new card was created.
func (s *Service) Upsert(c card.Card) (created bool, err error) {
	if c.Name == "" {
		return false, ErrNameRequired
	}
	return s.repo.UpsertCard(c)
}

// Update applies a partial patch to the named card and returns the
// updated card with its score re-derived.
func (s *Service) Update(name string, p card.Patch) (card.Card, error) {
	existing, err := s.Find(name)
	if err != nil {
		return card.Card{}, err
	}
	updated := existing.Apply(p)
	if _, err := s.repo.UpsertCard(updated); err != nil {
		return card.Card{}, err
	}
	return updated, nil
}

func (s *Service) Delete(name string) error {
	found, err := s.repo.DeleteCardByName(name)
	if err != nil {
		return err
	}
	if !found {
		return ErrNotFound
	}
	return nil
}

func (s *Service) Count() (int64, error) {
	return s.repo.CountCards()
}

// Top returns the highest-scoring cards, best first.
func (s *Service) Top(limit int) ([]card.Card, error) {
	return s.repo.TopCardsByScore(limit)
}

// Import reads delimited card records from r with upsert semantics.
// Malformed lines are skipped and reported, never fatal.
func (s *Service) Import(r io.Reader) (cardtext.ImportReport, error) {
	return cardtext.Import(r, s.Upsert)
}

// Export writes the whole collection to w in the delimited format.
func (s *Service) Export(w io.Writer) error {
	cards, err := s.All()
	if err != nil {
		return err
	}
	return cardtext.Export(w, cards)
}
