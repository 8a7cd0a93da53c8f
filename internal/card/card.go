package card

import "github.com/tcwang/elemental-cards/internal/element"

// Score weights. The defense weight follows the revised ruleset
// (hp + 4*attack + 4*defense); the earlier ruleset weighted defense
// at 3 and is not supported.
const (
	attackScoreWeight  = 4
	defenseScoreWeight = 4
)

// Card is one collectible card. It is handled by value everywhere:
// the collection hands copies to callers and the battle resolver
// works on private snapshots, so a Card in flight never aliases the
// persisted collection.
//
// Stats are plain ints and negative values are accepted as given;
// battle semantics treat hp <= 0 as defeated. Rarity is a free-form
// label with no effect on any rule. Score is derived and kept
// consistent with the stats by New and Patch being the only ways a
// card is built or changed.
type Card struct {
	Name    string          `json:"name"`
	HP      int             `json:"hp"`
	Attack  int             `json:"attack"`
	Defense int             `json:"defense"`
	Element element.Element `json:"element"`
	Rarity  string          `json:"rarity"`
	Score   int             `json:"score"`
}

// New builds a card and derives its score. The element string is
// normalized when it names a known element and carried through
// otherwise.
func New(name string, hp, attack, defense int, elem, rarity string) Card {
	c := Card{
		Name:    name,
		HP:      hp,
		Attack:  attack,
		Defense: defense,
		Element: element.Parse(elem),
		Rarity:  rarity,
	}
	c.Score = deriveScore(c.HP, c.Attack, c.Defense)
	return c
}

// Patch is a field-by-field partial update; nil fields keep the
// card's current value.
type Patch struct {
	HP      *int    `json:"hp"`
	Attack  *int    `json:"attack"`
	Defense *int    `json:"defense"`
	Element *string `json:"element"`
	Rarity  *string `json:"rarity"`
}

// Apply returns a copy of c with the patch applied and the score
// re-derived. The receiver is unchanged.
func (c Card) Apply(p Patch) Card {
	if p.HP != nil {
		c.HP = *p.HP
	}
	if p.Attack != nil {
		c.Attack = *p.Attack
	}
	if p.Defense != nil {
		c.Defense = *p.Defense
	}
	if p.Element != nil {
		c.Element = element.Parse(*p.Element)
	}
	if p.Rarity != nil {
		c.Rarity = *p.Rarity
	}
	c.Score = deriveScore(c.HP, c.Attack, c.Defense)
	return c
}

func deriveScore(hp, attack, defense int) int {
	return hp + attackScoreWeight*attack + defenseScoreWeight*defense
}
