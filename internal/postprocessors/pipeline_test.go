package postprocessors

import (
	"strings"
	"testing"
)

func TestNewPipeline(t *testing.T) {
	p := NewPipeline()
	if p == nil {
		t.Fatal("expected non-nil pipeline")
	}
	if p.Len() != 0 {
		t.Errorf("expected 0 stages, got %d", p.Len())
	}
}

func TestPipeline_Add(t *testing.T) {
	p := NewPipeline()
	p.Add(NewStage("upper", strings.ToUpper))

	if p.Len() != 1 {
		t.Errorf("expected 1 stage, got %d", p.Len())
	}
	if names := p.Names(); len(names) != 1 || names[0] != "upper" {
		t.Errorf("unexpected names: %v", names)
	}
}

func TestPipeline_Process_EmptyPipeline(t *testing.T) {
	p := NewPipeline()
	if got := p.Process("unchanged"); got != "unchanged" {
		t.Errorf("expected input back, got %q", got)
	}
}

func TestPipeline_Process_Order(t *testing.T) {
	var calls []string
	record := func(name string) Stage {
		return NewStage(name, func(s string) string {
			calls = append(calls, name)
			return s + name
		})
	}

	p := NewPipeline(record("a"), record("b"), record("c"))
	got := p.Process(">")

	if got != ">abc" {
		t.Errorf("expected >abc, got %q", got)
	}
	if strings.Join(calls, ",") != "a,b,c" {
		t.Errorf("stages ran out of order: %v", calls)
	}
}

func TestPipeline_Settle_ReachesFixedPoint(t *testing.T) {
	// Removing one "[]()" per pass exposes another one.
	p := NewPipeline(NewStage("once", func(s string) string {
		return strings.Replace(s, "[]()", "", 1)
	}))

	got := p.Settle("x[[[]()]()]()y")
	if got != "xy" {
		t.Errorf("expected xy, got %q", got)
	}
	if again := p.Settle(got); again != got {
		t.Errorf("settle not idempotent: %q then %q", got, again)
	}
}

func TestPipeline_Settle_Bounded(t *testing.T) {
	// A stage that always grows never settles; Settle must still return.
	p := NewPipeline(NewStage("grow", func(s string) string { return s + "." }))

	got := p.Settle("")
	if len(got) != maxPasses {
		t.Errorf("expected %d passes, got %d", maxPasses, len(got))
	}
}
