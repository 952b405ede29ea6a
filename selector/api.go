// SPDX-License-Identifier: MIT
// Package: cssel/selector
//
// api.go - thin public entry-points for the selector package.
//
// Design contract (strict):
//   - Stateless facade: every function below allocates a brand-new Builder
//     and forwards to the matching method; no state survives between calls.
//   - One engine: per-kind behavior lives in categorySpecs (types.go) and
//     appendPart (builder.go); this file only starts chains.
//   - Safety: never panic; violations latch into the returned builder and
//     surface through Builder.Err.

package selector

// Element starts a new selector with a bare element name.
// Equivalent to New().Element(value). Complexity: O(1).
func Element(value string) *Builder {
	return New().Element(value)
}

// ID starts a new selector with a "#"-prefixed identifier.
func ID(value string) *Builder {
	return New().ID(value)
}

// Class starts a new selector with a "."-prefixed class name.
func Class(value string) *Builder {
	return New().Class(value)
}

// Attr starts a new selector with a "[…]"-wrapped attribute match.
func Attr(value string) *Builder {
	return New().Attr(value)
}

// PseudoClass starts a new selector with a ":"-prefixed pseudo-class.
func PseudoClass(value string) *Builder {
	return New().PseudoClass(value)
}

// PseudoElement starts a new selector with a "::"-prefixed pseudo-element.
func PseudoElement(value string) *Builder {
	return New().PseudoElement(value)
}

// Combine joins two finished selectors into a new, independent builder whose
// text is "<left> <combinator> <right>" — single space on each side, the
// combinator literal rendered verbatim (no fixed combinator set is
// enforced; see CombinatorChild and friends for the common ones).
//
// The result is itself a valid operand for further Combine calls, so chains
// nest left-to-right exactly as written. Note the accepted limitation: the
// combined builder starts with an empty rank history, so parts appended
// after combining are ordered only against each other, not against the
// operands' parts.
//
// Errors: latches ErrNilSelector when either operand is nil; inherits the
// first latched operand error (left before right) otherwise.
func Combine(left *Builder, combinator string, right *Builder) *Builder {
	return New().combine(left, combinator, right)
}
