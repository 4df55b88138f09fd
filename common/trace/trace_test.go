package trace

import (
	"context"
	"strings"
	"testing"
)

func TestGenerateIDUnique(t *testing.T) {
	a, b := GenerateID(), GenerateID()
	if a == b {
		t.Errorf("expected unique IDs, got %q twice", a)
	}
	if !strings.HasPrefix(a, "r_") {
		t.Errorf("ID = %q, want r_ prefix", a)
	}
}

func TestContextRoundTrip(t *testing.T) {
	ctx := WithRequestID(context.Background(), "r_abc")
	if got := FromContext(ctx); got != "r_abc" {
		t.Errorf("FromContext = %q, want r_abc", got)
	}
	if got := FromContext(context.Background()); got != "" {
		t.Errorf("FromContext on bare context = %q, want empty", got)
	}
}

func TestEnsure(t *testing.T) {
	ctx, id := Ensure(context.Background())
	if id == "" {
		t.Fatal("Ensure generated empty ID")
	}
	if got := FromContext(ctx); got != id {
		t.Errorf("FromContext = %q, want %q", got, id)
	}

	ctx2, id2 := Ensure(ctx)
	if id2 != id {
		t.Errorf("Ensure regenerated ID: %q != %q", id2, id)
	}
	if ctx2 != ctx {
		t.Error("Ensure returned new context for already-traced context")
	}
}
