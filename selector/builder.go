// SPDX-License-Identifier: MIT
// Package: cssel/selector
//
// builder.go — the append engine and the fluent part methods.
//
// Design contract (strict):
//   - One engine: appendPart(method, category, value). All six part methods
//     delegate to it; per-kind behavior comes from categorySpecs only.
//   - Validate before commit: uniqueness first, ordering second; a rejected
//     part leaves ranks, text and seen flags untouched.
//   - Sticky errors: the first violation latches; subsequent appends are
//     no-ops returning the builder unchanged, so chains stay total.
//   - Determinism: String() is a pure read of committed text; equal call
//     chains render equal selectors.

package selector

import "sort"

// appendPart validates and, on success, commits one selector part.
//
// Validation order (fixed):
//  1. Latched error — the builder already failed; do nothing.
//  2. Uniqueness — singleton categories (element/id/pseudo-element) may
//     commit once; a repeat latches ErrDuplicatePart.
//  3. Ordering — the candidate rank sequence (committed ranks plus the new
//     rank) must equal its sorted self; a mismatch latches ErrPartOrder.
//     Repeatable categories may repeat in any position as long as overall
//     monotonicity holds, which the sortedness check captures exactly.
//
// Only after all checks pass does the part commit: rank appended, fragment
// rendered (prefix + value + suffix), singleton flag set.
//
// Complexity: O(n log n) per append for the sortedness check over n
// committed ranks; n is tiny (bounded by the selector's part count).
func (b *Builder) appendPart(method string, c Category, value string) *Builder {
	// A latched violation freezes the builder; keep the chain total.
	if b.err != nil {
		return b
	}

	spec := categorySpecs[c]

	// Uniqueness before ordering: a duplicate singleton reports as a
	// duplicate even when it would also land out of order.
	if spec.singleton && b.seen[c] {
		b.err = selectorErrorf(method, ErrDuplicatePart, "%s part already present", spec.name)

		return b
	}

	// Form the candidate rank sequence and require it to be sorted.
	// Committed ranks are already non-decreasing, so the candidate is
	// sorted exactly when the new rank does not undercut its predecessor.
	candidate := make([]int, len(b.ranks)+1)
	copy(candidate, b.ranks)
	candidate[len(b.ranks)] = int(c)
	if !sort.IntsAreSorted(candidate) {
		b.err = selectorErrorf(method, ErrPartOrder, "%s part after higher-ranked part", spec.name)

		return b
	}

	// Commit: rank history, rendered fragment, uniqueness flag.
	b.ranks = candidate
	b.text.WriteString(spec.prefix)
	b.text.WriteString(value)
	b.text.WriteString(spec.suffix)
	if spec.singleton {
		b.seen[c] = true
	}

	return b
}

// Element appends the bare element name (rank 0, no prefix, at most once).
// Fails (latches) with ErrDuplicatePart on a repeat, ErrPartOrder when any
// part has already committed after the element slot.
func (b *Builder) Element(value string) *Builder {
	return b.appendPart(MethodElement, CategoryElement, value)
}

// ID appends a "#"-prefixed identifier (rank 1, at most once).
func (b *Builder) ID(value string) *Builder {
	return b.appendPart(MethodID, CategoryID, value)
}

// Class appends a "."-prefixed class name (rank 2, repeatable).
func (b *Builder) Class(value string) *Builder {
	return b.appendPart(MethodClass, CategoryClass, value)
}

// Attr appends an attribute match wrapped in "[" "]" (rank 3, repeatable).
// The value is rendered verbatim; attribute syntax is not validated.
func (b *Builder) Attr(value string) *Builder {
	return b.appendPart(MethodAttr, CategoryAttribute, value)
}

// PseudoClass appends a ":"-prefixed pseudo-class (rank 4, repeatable).
func (b *Builder) PseudoClass(value string) *Builder {
	return b.appendPart(MethodPseudoClass, CategoryPseudoClass, value)
}

// PseudoElement appends a "::"-prefixed pseudo-element (rank 5, at most once).
func (b *Builder) PseudoElement(value string) *Builder {
	return b.appendPart(MethodPseudoElement, CategoryPseudoElement, value)
}

// String returns the selector text rendered so far. It is idempotent, has no
// side effects, and stays meaningful after a violation: it renders exactly
// the parts that committed before the violation. Satisfies fmt.Stringer.
func (b *Builder) String() string {
	return b.text.String()
}

// Err returns the first violation latched on this builder lineage, or nil.
// Branch with errors.Is against ErrDuplicatePart, ErrPartOrder or
// ErrNilSelector; never match error strings.
func (b *Builder) Err() error {
	return b.err
}

// combine renders "<left> <combinator> <right>" into b, with a single space
// on each side of the verbatim combinator literal. It runs on a fresh
// builder (the Combine facade allocates one) and keeps b's rank history
// empty: a combined selector is a terminal value for ordering purposes.
//
// Operand errors are inherited (left before right) so a violation cannot be
// laundered away by combining; the text still renders from whatever the
// operands committed.
func (b *Builder) combine(left *Builder, combinator string, right *Builder) *Builder {
	if b.err != nil {
		return b
	}

	// Defensive: operands must be fully built selectors, never nil.
	if left == nil || right == nil {
		b.err = selectorErrorf(MethodCombine, ErrNilSelector, "both operands must be built selectors")

		return b
	}

	// Inherit the first operand violation, if any.
	if left.err != nil {
		b.err = left.err
	} else if right.err != nil {
		b.err = right.err
	}

	b.text.WriteString(left.String())
	b.text.WriteString(combinatorPadding)
	b.text.WriteString(combinator)
	b.text.WriteString(combinatorPadding)
	b.text.WriteString(right.String())

	return b
}
