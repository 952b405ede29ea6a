// SPDX-License-Identifier: MIT
// Package: cssel/selector
//
// errors.go — sentinel errors for the selector package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Sentinels are NEVER wrapped with formatted strings at definition site.
//   • Every failure constructs a FRESH error value via selectorErrorf, naming
//     the originating method and the offending category; no error instance is
//     ever reused across failures.
//   • Part methods MUST NOT panic; violations latch into the builder and are
//     exposed through Builder.Err.
//
// Precedence (when one call violates several rules):
//   • ErrDuplicatePart — uniqueness is checked first, before ordering.
//   • ErrPartOrder     — only reported when no duplicate violation applies.
//   • ErrNilSelector   — Combine-only, checked before operand inspection.

package selector

import (
	"errors"
	"fmt"
)

// ErrDuplicatePart indicates that a singleton part kind (element, id or
// pseudo-element) was appended a second time on the same builder lineage.
// Classification: Validation error (uniqueness).
// Usage: if errors.Is(err, ErrDuplicatePart) { /* drop the extra part */ }.
var ErrDuplicatePart = errors.New("selector: duplicate selector part")

// ErrPartOrder indicates that appending a part would break the required
// ascending category order (element < id < class < attribute < pseudo-class
// < pseudo-element). The offending part is discarded; nothing commits.
// Classification: Validation error (ordering).
// Usage: if errors.Is(err, ErrPartOrder) { /* reorder the chain */ }.
var ErrPartOrder = errors.New("selector: selector part out of order")

// ErrNilSelector indicates that Combine received a nil operand. Operands
// must be fully built selectors; nil is a programmer error surfaced as a
// latched error rather than a panic.
// Usage: if errors.Is(err, ErrNilSelector) { /* build both operands first */ }.
var ErrNilSelector = errors.New("selector: nil selector operand")

// selectorErrorf builds a fresh error of the form
// "<Method>: <formatted message>: <sentinel>", preserving the sentinel for
// errors.Is while attaching the method and category context.
//
// Parameters:
//   - method:   canonical method name, e.g. MethodElement.
//   - sentinel: the sentinel classifying the violation (wrapped via %w).
//   - format:   format string for the inner message.
//   - args:     values for the format placeholders.
//
// Complexity: O(len(format) + Σlen(args)), negligible for our use.
func selectorErrorf(method string, sentinel error, format string, args ...interface{}) error {
	// Build the inner message, then wrap once with method context.
	inner := fmt.Sprintf(format, args...)

	return fmt.Errorf("%s: %s: %w", method, inner, sentinel)
}
