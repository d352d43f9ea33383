package model

import "encoding/json"

// Criterion IDs evaluated for every password. The constants exist so that
// callers (advisory generation, tests, renderers) reference criteria by a
// stable key instead of a string literal.
const (
	CriterionLength8      = "length_8"
	CriterionLength12     = "length_12"
	CriterionLowercase    = "lowercase"
	CriterionUppercase    = "uppercase"
	CriterionNumbers      = "numbers"
	CriterionSpecialChars = "special_chars"
	CriterionNotCommon    = "not_common"
	CriterionNoRepeats    = "no_repeats"
	CriterionNoSequences  = "no_sequences"
)

// Criterion is a single pass/fail security check applied to a password.
// It is immutable once computed and produced fresh for each evaluation.
//
// Design decision: The field set is fixed and known at compile time, so we
// use a strongly-typed record rather than a generic key/value mapping.
type Criterion struct {
	// ID is the stable identifier of the check, e.g. "length_8".
	ID string `json:"id"`

	// Label is a short human-readable name for display.
	Label string `json:"label"`

	// Description explains what the check looks for and why it matters.
	Description string `json:"description"`

	// Met reports whether the password satisfied the check.
	Met bool `json:"met"`
}

// CriteriaSet is an ordered collection of criteria keyed by ID.
// Insertion order is preserved because it is also the display order.
//
// Design decision: We keep a slice for order and a map for lookup rather
// than relying on a plain map, since Go maps have no iteration order and
// renderers must print criteria in the fixed evaluation order.
type CriteriaSet struct {
	order []string
	items map[string]Criterion
}

// NewCriteriaSet creates an empty CriteriaSet.
func NewCriteriaSet() *CriteriaSet {
	return &CriteriaSet{
		order: make([]string, 0, 9),
		items: make(map[string]Criterion, 9),
	}
}

// Add inserts a criterion, preserving insertion order. Adding a criterion
// whose ID already exists replaces it in place without changing its
// position, so every ID appears exactly once.
func (cs *CriteriaSet) Add(c Criterion) {
	if _, ok := cs.items[c.ID]; !ok {
		cs.order = append(cs.order, c.ID)
	}
	cs.items[c.ID] = c
}

// Get returns the criterion with the given ID.
// The second return value reports whether it exists.
func (cs *CriteriaSet) Get(id string) (Criterion, bool) {
	c, ok := cs.items[id]
	return c, ok
}

// Met reports whether the criterion with the given ID exists and passed.
func (cs *CriteriaSet) Met(id string) bool {
	c, ok := cs.items[id]
	return ok && c.Met
}

// All returns the criteria in insertion order.
func (cs *CriteriaSet) All() []Criterion {
	all := make([]Criterion, 0, len(cs.order))
	for _, id := range cs.order {
		all = append(all, cs.items[id])
	}
	return all
}

// IDs returns the criterion identifiers in insertion order.
func (cs *CriteriaSet) IDs() []string {
	ids := make([]string, len(cs.order))
	copy(ids, cs.order)
	return ids
}

// Len returns the number of criteria in the set.
func (cs *CriteriaSet) Len() int {
	return len(cs.order)
}

// MetCount returns how many criteria passed.
func (cs *CriteriaSet) MetCount() int {
	count := 0
	for _, c := range cs.items {
		if c.Met {
			count++
		}
	}
	return count
}

// MarshalJSON serializes the criteria as an ordered JSON array.
// A map would lose the display order, so the slice form is used instead.
func (cs *CriteriaSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(cs.All())
}
