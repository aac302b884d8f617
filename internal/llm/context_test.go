package llm

import (
	"context"
	"testing"
)

func TestPurposeContext(t *testing.T) {
	ctx := WithPurpose(context.Background(), "agenda-plan")
	if got := PurposeFrom(ctx); got != "agenda-plan" {
		t.Fatalf("expected 'agenda-plan', got %q", got)
	}
	if got := PurposeFrom(context.Background()); got != "unknown" {
		t.Fatalf("expected 'unknown' default, got %q", got)
	}
}

func TestLookupCost(t *testing.T) {
	c := LookupCost("gpt-4o-mini")
	if c == nil {
		t.Fatal("expected pricing for gpt-4o-mini")
	}
	// 1M in + 1M out at $0.15/$0.60.
	got := c.Cost(1_000_000, 1_000_000)
	if got < 0.74 || got > 0.76 {
		t.Fatalf("unexpected cost: %f", got)
	}

	if LookupCost("totally-unknown-model") != nil {
		t.Fatal("expected nil for unknown model")
	}
}
