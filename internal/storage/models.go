package storage

import (
	"gorm.io/gorm"

	"github.com/tcwang/elemental-cards/internal/card"
)

// CardRecord is the persisted shape of a card. The primary key also
// fixes the collection's ordering: upserts update the existing row in
// place, so a card keeps its position for as long as it lives.
type CardRecord struct {
	gorm.Model
	Name    string `gorm:"uniqueIndex;size:128"`
	HP      int
	Attack  int
	Defense int
	Element string `gorm:"size:64"`
	Rarity  string `gorm:"size:64"`
	Score   int    `gorm:"index"`
}

func (CardRecord) TableName() string { return "cards" }

func recordFromCard(c card.Card) CardRecord {
	return CardRecord{
		Name:    c.Name,
		HP:      c.HP,
		Attack:  c.Attack,
		Defense: c.Defense,
		Element: string(c.Element),
		Rarity:  c.Rarity,
		Score:   c.Score,
	}
}

// toCard rebuilds the domain value. The score is re-derived from the
// stats rather than trusted from the row, so a hand-edited database
// cannot surface a stale score.
func (r CardRecord) toCard() card.Card {
	return card.New(r.Name, r.HP, r.Attack, r.Defense, r.Element, r.Rarity)
}

// DuelRecord is one finished duel kept for replay. The full round log
// is stored as a JSON blob; combatant fields are denormalized copies
// of the snapshot stats, not foreign keys, because a duel replay must
// survive later edits or deletion of the cards involved.
type DuelRecord struct {
	gorm.Model
	DuelID     string `gorm:"uniqueIndex;size:36" json:"duel_id"`
	CardA      string `gorm:"size:128" json:"card_a"`
	CardB      string `gorm:"size:128" json:"card_b"`
	ElementA   string `gorm:"size:64" json:"element_a"`
	ElementB   string `gorm:"size:64" json:"element_b"`
	Verdict    string `gorm:"size:32" json:"verdict"`
	Winner     string `gorm:"size:128" json:"winner"`
	RoundCount int    `json:"round_count"`
	EndedByCap bool   `json:"ended_by_cap"`
	RoundsJSON []byte `gorm:"column:rounds_json;type:blob" json:"-"`
}

func (DuelRecord) TableName() string { return "duel_records" }
