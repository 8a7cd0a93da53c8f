// Package duel runs battles between two catalog cards and keeps a
// replayable history of the results.
package duel

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/tcwang/elemental-cards/internal/battle"
	"github.com/tcwang/elemental-cards/internal/card"
	"github.com/tcwang/elemental-cards/internal/collection"
	"github.com/tcwang/elemental-cards/internal/element"
	"github.com/tcwang/elemental-cards/internal/logging"
	"github.com/tcwang/elemental-cards/internal/storage"
)

var (
	ErrCardNotFound = errors.New("combatant not found")
	ErrSameCard     = errors.New("a card cannot duel itself")
	ErrTooFewCards  = errors.New("at least two cards are required for a duel")
)

type Service struct {
	cards    *collection.Service
	repo     storage.Repository
	table    *element.Table
	roundCap int
}

func NewService(cards *collection.Service, repo storage.Repository, table *element.Table, roundCap int) *Service {
	if roundCap < 1 {
		roundCap = battle.DefaultRoundCap
	}
	return &Service{cards: cards, repo: repo, table: table, roundCap: roundCap}
}

// Outcome pairs the simulation result with the identifier under which
// the duel was recorded.
type Outcome struct {
	DuelID string        `json:"duel_id"`
	Result battle.Result `json:"result"`
}

// Run validates the combatants, simulates the duel on private
// snapshots and persists the round log. Validation failures happen
// before any round executes, so a failed duel leaves no partial
// record.
func (s *Service) Run(nameA, nameB string) (*Outcome, error) {
	if nameA == nameB {
		return nil, ErrSameCard
	}
	count, err := s.cards.Count()
	if err != nil {
		return nil, err
	}
	if count < 2 {
		return nil, ErrTooFewCards
	}

	a, err := s.findCombatant(nameA)
	if err != nil {
		return nil, err
	}
	b, err := s.findCombatant(nameB)
	if err != nil {
		return nil, err
	}

	result, err := battle.Simulate(a, b, s.table, s.roundCap)
	if err != nil {
		return nil, err
	}

	outcome := &Outcome{DuelID: uuid.NewString(), Result: result}
	if err := s.save(outcome, a, b); err != nil {
		// The duel itself succeeded; history is best-effort.
		logging.Error("failed to record duel", err, logging.Fields{"card_a": a.Name, "card_b": b.Name})
	}
	return outcome, nil
}

func (s *Service) findCombatant(name string) (card.Card, error) {
	c, err := s.cards.Find(name)
	if errors.Is(err, collection.ErrNotFound) {
		return card.Card{}, fmt.Errorf("%w: %s", ErrCardNotFound, name)
	}
	return c, err
}

func (s *Service) save(o *Outcome, a, b card.Card) error {
	rounds, err := json.Marshal(o.Result.Rounds)
	if err != nil {
		return err
	}
	return s.repo.SaveDuel(&storage.DuelRecord{
		DuelID:     o.DuelID,
		CardA:      a.Name,
		CardB:      b.Name,
		ElementA:   string(a.Element),
		ElementB:   string(b.Element),
		Verdict:    string(o.Result.Verdict),
		Winner:     o.Result.Winner,
		RoundCount: len(o.Result.Rounds),
		EndedByCap: o.Result.EndedByCap,
		RoundsJSON: rounds,
	})
}

// Replay is a stored duel with its round log decoded.
type Replay struct {
	DuelID     string         `json:"duel_id"`
	CardA      string         `json:"card_a"`
	CardB      string         `json:"card_b"`
	ElementA   string         `json:"element_a"`
	ElementB   string         `json:"element_b"`
	Verdict    string         `json:"verdict"`
	Winner     string         `json:"winner,omitempty"`
	EndedByCap bool           `json:"ended_by_cap"`
	Rounds     []battle.Round `json:"rounds,omitempty"`
}

func replayFromRecord(rec *storage.DuelRecord, withRounds bool) (*Replay, error) {
	r := &Replay{
		DuelID:     rec.DuelID,
		CardA:      rec.CardA,
		CardB:      rec.CardB,
		ElementA:   rec.ElementA,
		ElementB:   rec.ElementB,
		Verdict:    rec.Verdict,
		Winner:     rec.Winner,
		EndedByCap: rec.EndedByCap,
	}
	if withRounds && len(rec.RoundsJSON) > 0 {
		if err := json.Unmarshal(rec.RoundsJSON, &r.Rounds); err != nil {
			return nil, fmt.Errorf("decoding round log for duel %s: %w", rec.DuelID, err)
		}
	}
	return r, nil
}

// History returns the most recent duels, newest first, without round
// logs.
func (s *Service) History(limit int) ([]Replay, error) {
	recs, err := s.repo.GetDuels(limit)
	if err != nil {
		return nil, err
	}
	out := make([]Replay, 0, len(recs))
	for i := range recs {
		r, err := replayFromRecord(&recs[i], false)
		if err != nil {
			return nil, err
		}
		out = append(out, *r)
	}
	return out, nil
}

// Get returns one stored duel with its full round log.
func (s *Service) Get(duelID string) (*Replay, error) {
	rec, err := s.repo.GetDuelByID(duelID)
	if err != nil {
		return nil, err
	}
	return replayFromRecord(rec, true)
}
