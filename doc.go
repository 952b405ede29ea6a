// Package cssel is a small toolkit for assembling CSS selector strings
// from typed parts — without ever parsing CSS.
//
// 🚀 What is cssel?
//
//	A tiny, dependency-light library that builds compound selectors piece
//	by piece and refuses to let you build an invalid one:
//		• Typed parts: element, id, class, attribute, pseudo-class, pseudo-element
//		• Order enforcement: parts commit only in valid compound-selector order
//		• Uniqueness: element, id and pseudo-element appear at most once
//		• Combinators: join finished selectors with any combinator literal
//
// ✨ Why choose cssel?
//
//   - Beginner-friendly – one builder type, fluent chaining, clear naming
//   - Rock-solid guarantees – violations are detected before anything commits
//   - Pure Go – no cgo, no hidden deps
//   - Honest errors – sentinel errors, branch with errors.Is
//
// Everything lives in one subpackage:
//
//	selector/ — the Builder, its facade constructors, categories and errors
//
// Quick example:
//
//	s := selector.ID("main").Class("container").Class("editable")
//	fmt.Println(s) // #main.container.editable
//
// Dive into selector's package documentation for the full contract.
//
//	go get github.com/katalvlaran/cssel/selector
package cssel
