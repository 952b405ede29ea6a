package selector_test

import (
	"testing"

	"github.com/katalvlaran/cssel/selector"
)

// BenchmarkBuilder_Compound measures a full six-part chain, the longest
// compound selector the ordering rules admit.
func BenchmarkBuilder_Compound(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		s := selector.Element("a").
			ID("nav").
			Class("active").
			Attr("target").
			PseudoClass("hover").
			PseudoElement("before")
		if err := s.Err(); err != nil {
			b.Fatalf("chain failed: %v", err) // report and stop on error
		}
		_ = s.String()
	}
}

// BenchmarkBuilder_RepeatedClasses measures the repeatable-category path:
// many equal ranks keep the candidate sequence sorted at every step.
func BenchmarkBuilder_RepeatedClasses(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		s := selector.Class("c0")
		for j := 0; j < 16; j++ {
			s.Class("c")
		}
		if err := s.Err(); err != nil {
			b.Fatalf("chain failed: %v", err)
		}
		_ = s.String()
	}
}

// BenchmarkCombine_Chain measures left-nested combining of four selectors.
func BenchmarkCombine_Chain(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		s := selector.Combine(
			selector.Combine(
				selector.Combine(
					selector.Element("div"),
					selector.CombinatorChild,
					selector.Element("ul"),
				),
				selector.CombinatorChild,
				selector.Element("li"),
			),
			selector.CombinatorAdjacent,
			selector.Element("li"),
		)
		if err := s.Err(); err != nil {
			b.Fatalf("combine failed: %v", err)
		}
		_ = s.String()
	}
}

// BenchmarkBuilder_Rejection measures the failure path: a latched violation
// must freeze the builder cheaply.
func BenchmarkBuilder_Rejection(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		s := selector.ID("main").Element("div") // latches an order violation
		for j := 0; j < 8; j++ {
			s.Class("ignored") // no-ops against the latched error
		}
		if s.Err() == nil {
			b.Fatal("expected a latched violation")
		}
	}
}
