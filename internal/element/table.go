package element

// Matchup multipliers applied to an attacker's base attack stat.
const (
	MultiplierAdvantage    = 1.5
	MultiplierDisadvantage = 0.5
	MultiplierNeutral      = 1.0
)

// Relation holds one element's directed matchups: the elements it has
// advantage over and the elements it is at a disadvantage against.
// The relation is not required to be symmetric or acyclic; self-loops
// (dragon beats dragon) are valid.
type Relation struct {
	Beats   []Element `json:"beats"`
	LosesTo []Element `json:"loses_to"`
}

// Entry pairs an element with its relation, used for ordered display.
type Entry struct {
	Element  Element  `json:"element"`
	Relation Relation `json:"relation"`
}

// Table is the immutable type-advantage relation. It is constructed
// once at startup and passed by read-only reference; Multiplier is
// safe for concurrent use.
type Table struct {
	entries   []Entry
	relations map[Element]Relation
}

// NewTable builds a table from the given entries. Input slices are
// copied so later mutation by the caller cannot affect the table.
// A later entry for the same element replaces the earlier one.
func NewTable(entries []Entry) *Table {
	t := &Table{
		entries:   make([]Entry, 0, len(entries)),
		relations: make(map[Element]Relation, len(entries)),
	}
	for _, in := range entries {
		rel := Relation{
			Beats:   append([]Element(nil), in.Relation.Beats...),
			LosesTo: append([]Element(nil), in.Relation.LosesTo...),
		}
		if _, seen := t.relations[in.Element]; seen {
			for i := range t.entries {
				if t.entries[i].Element == in.Element {
					t.entries[i].Relation = rel
					break
				}
			}
		} else {
			t.entries = append(t.entries, Entry{Element: in.Element, Relation: rel})
		}
		t.relations[in.Element] = rel
	}
	return t
}

// DefaultTable returns the built-in relation over the thirteen known
// elements.
func DefaultTable() *Table {
	return NewTable([]Entry{
		{Fire, Relation{Beats: []Element{Wood, Ice, Beast}, LosesTo: []Element{Water, Rock}}},
		{Water, Relation{Beats: []Element{Fire}, LosesTo: []Element{Electric}}},
		{Wood, Relation{Beats: []Element{Electric, Earth}, LosesTo: []Element{Fire}}},
		{Electric, Relation{Beats: []Element{Water}, LosesTo: []Element{Wood, Light}}},
		{Ice, Relation{Beats: []Element{Dragon}, LosesTo: []Element{Fire, Mystic}}},
		{Earth, Relation{Beats: []Element{Fire}, LosesTo: []Element{Water, Wood}}},
		{Rock, Relation{Beats: []Element{Electric, Bug}, LosesTo: []Element{Water, Wood, Mystic}}},
		{Bug, Relation{Beats: []Element{Wood}, LosesTo: []Element{Dragon}}},
		{Beast, Relation{Beats: []Element{Water, Bug}, LosesTo: []Element{Fire, Electric}}},
		{Dragon, Relation{Beats: []Element{Dragon}, LosesTo: []Element{Dragon, Mystic}}},
		{Mystic, Relation{Beats: []Element{Ice}, LosesTo: []Element{Dark}}},
		{Light, Relation{Beats: []Element{Dark}, LosesTo: []Element{Mystic}}},
		{Dark, Relation{Beats: []Element{Mystic}, LosesTo: []Element{Light}}},
	})
}

// Multiplier returns the attack multiplier for an attacker of element
// att hitting a defender of element def. An attacker with no relation
// entry is neutral against everyone. When malformed data lists the
// defender in both sets, the advantage listing wins (checked first).
func (t *Table) Multiplier(att, def Element) float64 {
	rel, ok := t.relations[att]
	if !ok {
		return MultiplierNeutral
	}
	for _, e := range rel.Beats {
		if e == def {
			return MultiplierAdvantage
		}
	}
	for _, e := range rel.LosesTo {
		if e == def {
			return MultiplierDisadvantage
		}
	}
	return MultiplierNeutral
}

// Entries returns the table's relations in construction order. The
// returned slice is a copy; the table itself stays immutable.
func (t *Table) Entries() []Entry {
	out := make([]Entry, len(t.entries))
	for i, e := range t.entries {
		out[i] = Entry{
			Element: e.Element,
			Relation: Relation{
				Beats:   append([]Element(nil), e.Relation.Beats...),
				LosesTo: append([]Element(nil), e.Relation.LosesTo...),
			},
		}
	}
	return out
}
