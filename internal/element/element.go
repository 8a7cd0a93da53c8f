package element

import "strings"

// Element is a card's typing. Known elements are enumerated below;
// any other string is carried through as-is and behaves neutrally in
// matchup lookups (no advantage in either direction).
type Element string

const (
	Fire     Element = "fire"
	Water    Element = "water"
	Wood     Element = "wood"
	Electric Element = "electric"
	Ice      Element = "ice"
	Earth    Element = "earth"
	Rock     Element = "rock"
	Bug      Element = "bug"
	Beast    Element = "beast"
	Dragon   Element = "dragon"
	Mystic   Element = "mystic"
	Light    Element = "light"
	Dark     Element = "dark"
)

// Known lists every element with built-in matchup relations, in
// display order.
func Known() []Element {
	return []Element{Fire, Water, Wood, Electric, Ice, Earth, Rock, Bug, Beast, Dragon, Mystic, Light, Dark}
}

var known = func() map[Element]struct{} {
	m := make(map[Element]struct{})
	for _, e := range Known() {
		m[e] = struct{}{}
	}
	return m
}()

// Parse normalizes s to a known element when it matches one
// (case-insensitively, ignoring surrounding spaces). Unrecognized
// values are returned unchanged so novel elements stay legal.
func Parse(s string) Element {
	norm := Element(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := known[norm]; ok {
		return norm
	}
	return Element(strings.TrimSpace(s))
}

// IsKnown reports whether e is one of the enumerated elements.
func (e Element) IsKnown() bool {
	_, ok := known[e]
	return ok
}

func (e Element) String() string { return string(e) }
