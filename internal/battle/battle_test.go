package battle

import (
	"testing"

	"github.com/tcwang/elemental-cards/internal/card"
	"github.com/tcwang/elemental-cards/internal/element"
)

func TestSimulate_WaterVsFireOpeningRound(t *testing.T) {
	a := card.New("Tidecaller", 50, 10, 5, "water", "rare")
	b := card.New("Emberling", 50, 10, 5, "fire", "rare")

	res, err := Simulate(a, b, element.DefaultTable(), DefaultRoundCap)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Rounds) == 0 {
		t.Fatalf("expected at least one round")
	}
	r := res.Rounds[0]
	if r.PowerA != 15 || r.PowerB != 5 {
		t.Fatalf("expected powers 15/5, got %v/%v", r.PowerA, r.PowerB)
	}
	if r.DamageA != 10 || r.DamageB != 1 {
		t.Fatalf("expected damage 10/1, got %v/%v", r.DamageA, r.DamageB)
	}
	if r.HPA != 49 || r.HPB != 40 {
		t.Fatalf("expected hp 49/40 after round 1, got %v/%v", r.HPA, r.HPB)
	}
}

func TestSimulate_DoesNotMutateInputs(t *testing.T) {
	a := card.New("Tidecaller", 50, 10, 5, "water", "rare")
	b := card.New("Emberling", 50, 10, 5, "fire", "rare")

	if _, err := Simulate(a, b, element.DefaultTable(), DefaultRoundCap); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.HP != 50 || b.HP != 50 {
		t.Fatalf("expected caller cards untouched, got hp %d/%d", a.HP, b.HP)
	}
}

func TestSimulate_FloorDamageWhenDefenseAbsorbs(t *testing.T) {
	a := card.New("Pebble", 10, 3, 50, "rock", "common")
	b := card.New("Boulder", 10, 3, 50, "rock", "common")

	res, err := Simulate(a, b, element.DefaultTable(), DefaultRoundCap)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, r := range res.Rounds {
		if r.DamageA != MinimumDamage || r.DamageB != MinimumDamage {
			t.Fatalf("round %d: expected floor damage, got %v/%v", r.Number, r.DamageA, r.DamageB)
		}
	}
}

func TestSimulate_SimultaneousLethalIsDraw(t *testing.T) {
	a := card.New("GlassA", 5, 30, 0, "", "common")
	b := card.New("GlassB", 5, 30, 0, "", "common")

	res, err := Simulate(a, b, element.DefaultTable(), DefaultRoundCap)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Rounds) != 1 {
		t.Fatalf("expected a single round, got %d", len(res.Rounds))
	}
	r := res.Rounds[0]
	if r.HPA != 0 || r.HPB != 0 {
		t.Fatalf("expected both hit points at zero, got %v/%v", r.HPA, r.HPB)
	}
	if res.Verdict != VerdictDraw {
		t.Fatalf("expected draw on mutual knockout, got %v", res.Verdict)
	}
	if res.Winner != "" {
		t.Fatalf("expected no winner on draw, got %q", res.Winner)
	}
}

func TestSimulate_LethalRoundStillAppliesBothBlows(t *testing.T) {
	// B dies this round; its blow must land on A anyway.
	a := card.New("Hammer", 50, 100, 0, "", "common")
	b := card.New("Anvil", 5, 10, 0, "", "common")

	res, err := Simulate(a, b, element.DefaultTable(), DefaultRoundCap)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Verdict != VerdictAWins {
		t.Fatalf("expected card A to win, got %v", res.Verdict)
	}
	if res.Rounds[0].HPA != 40 {
		t.Fatalf("expected A to take 10 damage in the lethal round, got hp %v", res.Rounds[0].HPA)
	}
}

func TestSimulate_RoundCapTieBreakByRemainingHP(t *testing.T) {
	// Both absorb everything; floor damage only. A starts with more hp.
	a := card.New("Wall", 100, 1, 99, "", "common")
	b := card.New("Fence", 90, 1, 99, "", "common")

	res, err := Simulate(a, b, element.DefaultTable(), DefaultRoundCap)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.EndedByCap {
		t.Fatalf("expected duel to end at the round cap")
	}
	if len(res.Rounds) != DefaultRoundCap {
		t.Fatalf("expected exactly %d rounds, got %d", DefaultRoundCap, len(res.Rounds))
	}
	if res.Verdict != VerdictAWins || res.Winner != "Wall" {
		t.Fatalf("expected higher remaining hp to win at cap, got %v / %q", res.Verdict, res.Winner)
	}
	last := res.Rounds[len(res.Rounds)-1]
	if last.HPA != 80 || last.HPB != 70 {
		t.Fatalf("expected hp 80/70 at cap, got %v/%v", last.HPA, last.HPB)
	}
}

func TestSimulate_RoundCapEqualHPIsDraw(t *testing.T) {
	a := card.New("WallA", 100, 1, 99, "", "common")
	b := card.New("WallB", 100, 1, 99, "", "common")

	res, err := Simulate(a, b, element.DefaultTable(), DefaultRoundCap)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.EndedByCap || res.Verdict != VerdictDraw {
		t.Fatalf("expected draw at cap with equal hp, got cap=%v verdict=%v", res.EndedByCap, res.Verdict)
	}
}

func TestSimulate_TerminatesWithinCapAndNeverNegative(t *testing.T) {
	a := card.New("Tank", 500, 2, 80, "earth", "rare")
	b := card.New("Turtle", 500, 2, 80, "water", "rare")

	roundCap := 7
	res, err := Simulate(a, b, element.DefaultTable(), roundCap)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Rounds) > roundCap {
		t.Fatalf("expected at most %d rounds, got %d", roundCap, len(res.Rounds))
	}
	for _, r := range res.Rounds {
		if r.HPA < 0 || r.HPB < 0 {
			t.Fatalf("round %d: hit points went negative: %v/%v", r.Number, r.HPA, r.HPB)
		}
	}
}

func TestSimulate_UnknownElementsFightNeutral(t *testing.T) {
	a := card.New("Blob", 20, 10, 0, "plasma", "common")
	b := card.New("Glob", 20, 10, 0, "void", "common")

	res, err := Simulate(a, b, element.DefaultTable(), DefaultRoundCap)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	r := res.Rounds[0]
	if r.PowerA != 10 || r.PowerB != 10 {
		t.Fatalf("expected neutral powers 10/10, got %v/%v", r.PowerA, r.PowerB)
	}
}

func TestSimulate_RejectsInvalidRoundCap(t *testing.T) {
	a := card.New("A", 10, 1, 1, "", "")
	b := card.New("B", 10, 1, 1, "", "")

	res, err := Simulate(a, b, element.DefaultTable(), 0)
	if err == nil {
		t.Fatalf("expected error for round cap 0")
	}
	if len(res.Rounds) != 0 {
		t.Fatalf("expected no partial round log, got %d rounds", len(res.Rounds))
	}
}

func TestSimulate_RoundNumbersAreOrdered(t *testing.T) {
	a := card.New("A", 40, 8, 3, "wood", "")
	b := card.New("B", 40, 8, 3, "bug", "")

	res, err := Simulate(a, b, element.DefaultTable(), DefaultRoundCap)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, r := range res.Rounds {
		if r.Number != i+1 {
			t.Fatalf("expected round %d at index %d, got %d", i+1, i, r.Number)
		}
	}
}
