// Package selector builds and validates CSS compound-selector strings from
// typed parts, and joins finished selectors with combinators. It is a pure
// in-memory text-building API: no parsing, no document matching, no I/O.
//
// The package offers the following key components:
//
//   - Builder: the single concrete type accumulating selector parts.
//     – fluent chaining: every part method returns the same *Builder.
//     – sticky errors: the first violation latches; later appends are no-ops.
//   - Category: the fixed part ordering (element < id < class < attribute <
//     pseudo-class < pseudo-element), with a per-category formatting table
//     driving rendering and uniqueness — no per-kind type hierarchy.
//   - Facade constructors: Element, ID, Class, Attr, PseudoClass,
//     PseudoElement and Combine, each starting a brand-new Builder.
//   - Sentinel errors: ErrDuplicatePart, ErrPartOrder, ErrNilSelector,
//     always wrapped with method and category context; branch with errors.Is.
//
// Guarantees:
//
//   - Validation before commitment: a rejected part never mutates the
//     builder — text, rank history and uniqueness flags stay untouched.
//   - Duplicate detection runs before order detection when both would fire.
//   - String() is idempotent and side-effect free; call it as often as you like.
//   - Every facade call owns a fresh Builder: no state is shared between
//     independent selector constructions, so no locking is ever required.
//   - Combinators are rendered verbatim: Combine accepts any literal token.
//
// Quick example:
//
//	s := selector.Element("a").Attr(`href$=".png"`).PseudoClass("focus")
//	if err := s.Err(); err != nil {
//		// handle ErrDuplicatePart / ErrPartOrder
//	}
//	fmt.Println(s) // a[href$=".png"]:focus
//
// A combined selector is a terminal value for ordering purposes: parts
// appended after Combine are validated only against each other, not against
// the operands' histories. See Combine for details.
package selector
