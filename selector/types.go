// SPDX-License-Identifier: MIT
// Package: cssel/selector
//
// types.go — Category enum, the per-category formatting table, and the
// Builder type itself.

package selector

import "strings"

// Category identifies one selector-part kind. Its integer value is the fixed
// rank the kind occupies in valid compound-selector syntax; parts may only be
// committed in non-decreasing Category order.
//
//   - CategoryElement       — bare element name ("div"), at most one per selector.
//   - CategoryID            — "#"-prefixed identifier, at most one per selector.
//   - CategoryClass         — "."-prefixed class name, repeatable.
//   - CategoryAttribute     — "[…]"-wrapped attribute match, repeatable.
//   - CategoryPseudoClass   — ":"-prefixed pseudo-class, repeatable.
//   - CategoryPseudoElement — "::"-prefixed pseudo-element, at most one.
type Category int

const (
	// CategoryElement is rank 0: the optional leading element name.
	CategoryElement Category = iota
	// CategoryID is rank 1: the "#id" fragment.
	CategoryID
	// CategoryClass is rank 2: a ".class" fragment.
	CategoryClass
	// CategoryAttribute is rank 3: an "[attr]" fragment.
	CategoryAttribute
	// CategoryPseudoClass is rank 4: a ":pseudo-class" fragment.
	CategoryPseudoClass
	// CategoryPseudoElement is rank 5: the trailing "::pseudo-element" fragment.
	CategoryPseudoElement
)

// numCategories sizes the per-category tables; it must track the enum above.
const numCategories = int(CategoryPseudoElement) + 1

// String returns the diagnostic name of the category ("element", "id", ...).
// It is what error messages embed to point at the offending part kind.
func (c Category) String() string {
	if c < 0 || int(c) >= numCategories {
		return "unknown"
	}

	return categorySpecs[c].name
}

// categorySpec captures everything that distinguishes one part kind from
// another: its diagnostic name, the literals wrapped around the value when
// rendering, and whether the kind is restricted to a single occurrence.
// All kinds share identical structure otherwise, so one Builder type driven
// by this table replaces any per-kind hierarchy.
type categorySpec struct {
	name      string // diagnostic name, embedded in error messages
	prefix    string // literal emitted before the part value
	suffix    string // literal emitted after the part value
	singleton bool   // at most one occurrence per builder when true
}

// categorySpecs is indexed by Category; entry order must match the enum.
var categorySpecs = [numCategories]categorySpec{
	CategoryElement:       {name: "element", singleton: true},
	CategoryID:            {name: "id", prefix: "#", singleton: true},
	CategoryClass:         {name: "class", prefix: "."},
	CategoryAttribute:     {name: "attribute", prefix: "[", suffix: "]"},
	CategoryPseudoClass:   {name: "pseudo-class", prefix: ":"},
	CategoryPseudoElement: {name: "pseudo-element", prefix: "::"},
}

// Builder accumulates the parts of one compound selector and renders them as
// they commit. A Builder is exclusively owned by the call chain that created
// it — create one via New or any facade constructor, never share it across
// independent constructions, and no locking is needed.
//
// Zero value: ready to use; New exists for symmetry with the facade.
type Builder struct {
	// ranks holds the category rank of every committed part, in commit
	// order. The ordering check keeps it non-decreasing at all times.
	ranks []int

	// text is the incremental left-to-right rendering of committed parts.
	// Parts are never removed or reordered once written.
	text strings.Builder

	// seen marks the singleton categories (element/id/pseudo-element) that
	// have already been committed; only singleton slots are ever set.
	seen [numCategories]bool

	// err is the first violation, latched. While set, every append is a
	// no-op returning the builder unchanged; Err exposes it.
	err error
}

// New returns an empty Builder ready for chaining.
// Complexity: O(1).
func New() *Builder {
	return &Builder{}
}
