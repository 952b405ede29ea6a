// Package selector defines shared constants used across the builder,
// ensuring error contexts and combinator literals stay consistent.
package selector

//-----------------------------------------------------------------------------
// Builder Method Name Constants
//   used to prefix errors with the originating method for context.
//-----------------------------------------------------------------------------

const (
	// MethodElement is the canonical name for the Element part method.
	MethodElement = "Element"
	// MethodID is the canonical name for the ID part method.
	MethodID = "ID"
	// MethodClass is the canonical name for the Class part method.
	MethodClass = "Class"
	// MethodAttr is the canonical name for the Attr part method.
	MethodAttr = "Attr"
	// MethodPseudoClass is the canonical name for the PseudoClass part method.
	MethodPseudoClass = "PseudoClass"
	// MethodPseudoElement is the canonical name for the PseudoElement part method.
	MethodPseudoElement = "PseudoElement"
	// MethodCombine is the canonical name for the Combine constructor.
	MethodCombine = "Combine"
)

//-----------------------------------------------------------------------------
// Combinator Literals
//-----------------------------------------------------------------------------
//
// Combine renders any combinator literal verbatim between single spaces; the
// constants below merely name the common non-space combinators so call sites
// avoid sprinkling one-character strings. The descendant combinator needs no
// constant: Combine's surrounding spaces already are the separator.

const (
	// CombinatorChild joins parent and direct child ("a > b").
	CombinatorChild = ">"
	// CombinatorAdjacent joins a selector and its immediate next sibling ("a + b").
	CombinatorAdjacent = "+"
	// CombinatorSibling joins a selector and any following sibling ("a ~ b").
	CombinatorSibling = "~"
)

//-----------------------------------------------------------------------------
// Rendering Literals
//-----------------------------------------------------------------------------

// combinatorPadding is the single space rendered on each side of a
// combinator when two selectors are combined.
const combinatorPadding = " "
