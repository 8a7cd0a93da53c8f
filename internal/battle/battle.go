// Package battle resolves two-card duels. The resolver is a pure
// function of its inputs: no randomness, no I/O, no shared state, so
// any number of duels may run concurrently as long as the advantage
// table is not mutated (it never is after construction).
package battle

import (
	"errors"
	"fmt"

	"github.com/tcwang/elemental-cards/internal/card"
	"github.com/tcwang/elemental-cards/internal/element"
)

// DefaultRoundCap bounds a duel so two high-defense cards chipping a
// single point per round cannot loop unbounded.
const DefaultRoundCap = 20

// MinimumDamage is dealt whenever an attack does not pierce the
// defender's defense. No round deals zero damage.
const MinimumDamage = 1.0

// Verdict is a duel's terminal outcome, named by snapshot position.
type Verdict string

const (
	VerdictDraw  Verdict = "draw"
	VerdictAWins Verdict = "card_a_wins"
	VerdictBWins Verdict = "card_b_wins"
)

// Round records one simultaneous exchange. Powers and damage carry
// the fractional part introduced by the 1.5/0.5 multipliers; hit
// points are shown after both blows landed and were clamped at zero.
type Round struct {
	Number  int     `json:"round"`
	PowerA  float64 `json:"power_a"`
	PowerB  float64 `json:"power_b"`
	DamageA float64 `json:"damage_a_dealt"`
	DamageB float64 `json:"damage_b_dealt"`
	HPA     float64 `json:"hp_a_after"`
	HPB     float64 `json:"hp_b_after"`
}

// Result is the replayable outcome of one duel.
type Result struct {
	CardA      string  `json:"card_a"`
	CardB      string  `json:"card_b"`
	Rounds     []Round `json:"rounds"`
	Verdict    Verdict `json:"verdict"`
	Winner     string  `json:"winner,omitempty"`
	EndedByCap bool    `json:"ended_by_cap"`
}

// ErrInvalidRoundCap is returned before any round executes when the
// cap cannot bound the loop.
var ErrInvalidRoundCap = errors.New("round cap must be at least 1")

type snapshot struct {
	name    string
	hp      float64
	attack  int
	defense int
	element element.Element
}

func snapshotOf(c card.Card) snapshot {
	return snapshot{
		name:    c.Name,
		hp:      float64(c.HP),
		attack:  c.Attack,
		defense: c.Defense,
		element: c.Element,
	}
}

// Simulate runs a duel between private snapshots of a and b. The
// caller's cards are never mutated. Each round both combatants strike
// simultaneously from the pre-round state: attack power is the base
// attack scaled by the elemental matchup, damage is power minus the
// opponent's defense with a floor of MinimumDamage, and both hits
// land even when the first would already be lethal. Damage from a
// lethal round is fully applied before the loop terminates.
func Simulate(a, b card.Card, table *element.Table, roundCap int) (Result, error) {
	if roundCap < 1 {
		return Result{}, fmt.Errorf("%w: got %d", ErrInvalidRoundCap, roundCap)
	}

	sa := snapshotOf(a)
	sb := snapshotOf(b)
	res := Result{
		CardA:  sa.name,
		CardB:  sb.name,
		Rounds: make([]Round, 0, roundCap),
	}

	knockout := false
	for n := 1; n <= roundCap; n++ {
		powerA := float64(sa.attack) * table.Multiplier(sa.element, sb.element)
		powerB := float64(sb.attack) * table.Multiplier(sb.element, sa.element)

		damageA := MinimumDamage
		if powerA > float64(sb.defense) {
			damageA = powerA - float64(sb.defense)
		}
		damageB := MinimumDamage
		if powerB > float64(sa.defense) {
			damageB = powerB - float64(sa.defense)
		}

		sa.hp -= damageB
		sb.hp -= damageA
		if sa.hp < 0 {
			sa.hp = 0
		}
		if sb.hp < 0 {
			sb.hp = 0
		}

		res.Rounds = append(res.Rounds, Round{
			Number:  n,
			PowerA:  powerA,
			PowerB:  powerB,
			DamageA: damageA,
			DamageB: damageB,
			HPA:     sa.hp,
			HPB:     sb.hp,
		})

		if sa.hp <= 0 || sb.hp <= 0 {
			knockout = true
			break
		}
	}

	res.EndedByCap = !knockout
	res.Verdict = verdict(sa.hp, sb.hp, knockout)
	switch res.Verdict {
	case VerdictAWins:
		res.Winner = sa.name
	case VerdictBWins:
		res.Winner = sb.name
	}
	return res, nil
}

// verdict evaluates the terminal outcome once, after the loop. A
// cap-bounded exit compares remaining hit points; a knockout exit
// looks only at who is still standing.
func verdict(hpA, hpB float64, knockout bool) Verdict {
	if !knockout {
		switch {
		case hpA > hpB:
			return VerdictAWins
		case hpB > hpA:
			return VerdictBWins
		default:
			return VerdictDraw
		}
	}
	switch {
	case hpA <= 0 && hpB <= 0:
		return VerdictDraw
	case hpA <= 0:
		return VerdictBWins
	default:
		return VerdictAWins
	}
}
