package assistant

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/wayfarer-app/wayfarer/internal/wayfarer/knowledge"
	"github.com/wayfarer-app/wayfarer/internal/wayfarer/weather"
)

// newTestAssistant builds an Assistant with real collaborators, a pinned
// clock, and deterministic phrasing.
func newTestAssistant(t *testing.T) *Assistant {
	t.Helper()

	tables, err := knowledge.Load()
	if err != nil {
		t.Fatalf("knowledge.Load() error: %v", err)
	}
	noon := func() time.Time { return time.Date(2026, 6, 15, 13, 0, 0, 0, time.UTC) }

	a := New(tables, weather.NewWithClock(1, noon), Config{Seed: 1}, slog.Default())
	a.now = noon
	a.responder.pick = func(n int) int { return 0 }
	return a
}

func TestScenarioGreetingWithoutContext(t *testing.T) {
	a := newTestAssistant(t)

	res, err := a.HandleMessage(context.Background(), Request{Message: "hello"})
	if err != nil {
		t.Fatalf("HandleMessage error: %v", err)
	}
	if res.Response.Type != "greeting" {
		t.Errorf("Type = %q, want greeting", res.Response.Type)
	}
	if len(res.Response.Suggestions) == 0 {
		t.Error("greeting suggestions empty")
	}
	if res.Timestamp.IsZero() {
		t.Error("zero timestamp")
	}
	// No destination resolved anywhere, and none should be invented.
	if strings.Contains(res.Response.Content, "for Paris") {
		t.Errorf("unexpected destination in: %s", res.Response.Content)
	}
}

func TestScenarioWeatherInTokyo(t *testing.T) {
	a := newTestAssistant(t)

	res, err := a.HandleMessage(context.Background(), Request{
		Message:        "what's the weather in Tokyo",
		ConversationID: "c1",
	})
	if err != nil {
		t.Fatalf("HandleMessage error: %v", err)
	}
	if res.Response.Type != "weather" {
		t.Errorf("Type = %q, want weather", res.Response.Type)
	}
	for _, want := range []string{"Tokyo", "Temperature:", "Humidity:", "What to pack"} {
		if !strings.Contains(res.Response.Content, want) {
			t.Errorf("weather content missing %q:\n%s", want, res.Response.Content)
		}
	}

	snap := a.ContextSnapshot("", "c1")
	if snap == nil {
		t.Fatal("context not stored")
	}
	if snap.LastDestination != "Tokyo" {
		t.Errorf("LastDestination = %q, want Tokyo", snap.LastDestination)
	}
}

func TestScenarioDestinationCarryover(t *testing.T) {
	a := newTestAssistant(t)
	ctx := context.Background()

	if _, err := a.HandleMessage(ctx, Request{Message: "suggest food in Paris", ConversationID: "c2"}); err != nil {
		t.Fatalf("first turn error: %v", err)
	}
	res, err := a.HandleMessage(ctx, Request{Message: "what about activities", ConversationID: "c2"})
	if err != nil {
		t.Fatalf("second turn error: %v", err)
	}

	if res.Response.Type != "activity" {
		t.Errorf("Type = %q, want activity", res.Response.Type)
	}
	if !strings.Contains(res.Response.Content, "Paris") {
		t.Errorf("second turn should resolve Paris via carryover:\n%s", res.Response.Content)
	}

	snap := a.ContextSnapshot("", "c2")
	if snap == nil {
		t.Fatal("context not stored")
	}
	want := []Intent{IntentFood, IntentActivity}
	if len(snap.Interests) != 2 || snap.Interests[0] != want[0] || snap.Interests[1] != want[1] {
		t.Errorf("Interests = %v, want %v in order", snap.Interests, want)
	}
}

func TestScenarioUnrecognizableMessage(t *testing.T) {
	a := newTestAssistant(t)

	res, err := a.HandleMessage(context.Background(), Request{Message: "%%% ??? !!!"})
	if err != nil {
		t.Fatalf("HandleMessage error: %v", err)
	}
	if res.Response.Type != "general" {
		t.Errorf("Type = %q, want general", res.Response.Type)
	}
	if strings.TrimSpace(res.Response.Content) == "" {
		t.Error("empty content")
	}
}

func TestInteractionCountReachesN(t *testing.T) {
	a := newTestAssistant(t)
	ctx := context.Background()

	const n = 7
	for i := 0; i < n; i++ {
		if _, err := a.HandleMessage(ctx, Request{Message: "hello", ConversationID: "counted"}); err != nil {
			t.Fatalf("turn %d error: %v", i+1, err)
		}
	}

	snap := a.ContextSnapshot("", "counted")
	if snap == nil {
		t.Fatal("context not stored")
	}
	if snap.InteractionCount != n {
		t.Errorf("InteractionCount = %d, want %d", snap.InteractionCount, n)
	}
	if len(snap.Transcript) != 2*n {
		t.Errorf("Transcript = %d entries, want %d (user+assistant per turn)", len(snap.Transcript), 2*n)
	}
}

func TestEmptyConversationIDIsStateless(t *testing.T) {
	a := newTestAssistant(t)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		res, err := a.HandleMessage(ctx, Request{Message: "hello"})
		if err != nil {
			t.Fatalf("call %d error: %v", i+1, err)
		}
		// Both calls look like first contact, with no shared context.
		if !strings.Contains(res.Response.Content, "Things I can help with") {
			t.Errorf("call %d should be first contact:\n%s", i+1, res.Response.Content)
		}
	}
	if a.ActiveConversations() != 0 {
		t.Errorf("ActiveConversations = %d, want 0", a.ActiveConversations())
	}
}

func TestScopedConversationsDoNotLeak(t *testing.T) {
	a := newTestAssistant(t)
	ctx := context.Background()

	if _, err := a.HandleMessage(ctx, Request{Message: "food in paris", ConversationID: "shared", Scope: "trip-a"}); err != nil {
		t.Fatalf("trip-a turn error: %v", err)
	}
	if _, err := a.HandleMessage(ctx, Request{Message: "hello", ConversationID: "shared", Scope: "trip-b"}); err != nil {
		t.Fatalf("trip-b turn error: %v", err)
	}

	b := a.ContextSnapshot("trip-b", "shared")
	if b.LastDestination != "" {
		t.Errorf("trip-b inherited destination %q from trip-a", b.LastDestination)
	}
	if b.InteractionCount != 1 {
		t.Errorf("trip-b InteractionCount = %d, want 1", b.InteractionCount)
	}
}

func TestGenerationFailureLeavesContextUnmodified(t *testing.T) {
	a := newTestAssistant(t)
	ctx := context.Background()

	if _, err := a.HandleMessage(ctx, Request{Message: "suggest food in Paris", ConversationID: "c9"}); err != nil {
		t.Fatalf("setup turn error: %v", err)
	}
	before := a.ContextSnapshot("", "c9")

	a.responder.pick = func(n int) int { panic("picker exploded") }
	_, err := a.HandleMessage(ctx, Request{Message: "so excited about the activities", ConversationID: "c9"})
	if !errors.Is(err, ErrGenerationFailed) {
		t.Fatalf("err = %v, want ErrGenerationFailed", err)
	}

	after := a.ContextSnapshot("", "c9")
	if after.InteractionCount != before.InteractionCount {
		t.Errorf("failed turn bumped InteractionCount: %d → %d", before.InteractionCount, after.InteractionCount)
	}
	if len(after.Transcript) != len(before.Transcript) {
		t.Errorf("failed turn altered transcript: %d → %d entries", len(before.Transcript), len(after.Transcript))
	}
	if fmt.Sprint(after.Interests) != fmt.Sprint(before.Interests) {
		t.Errorf("failed turn altered interests: %v → %v", before.Interests, after.Interests)
	}
}

func TestEvictStaleContexts(t *testing.T) {
	a := newTestAssistant(t)
	ctx := context.Background()

	if _, err := a.HandleMessage(ctx, Request{Message: "hello", ConversationID: "old"}); err != nil {
		t.Fatalf("turn error: %v", err)
	}
	if a.ActiveConversations() != 1 {
		t.Fatalf("ActiveConversations = %d, want 1", a.ActiveConversations())
	}

	evicted := a.EvictStaleContexts(a.now().Add(DefaultContextTTL + time.Minute))
	if evicted != 1 {
		t.Errorf("evicted = %d, want 1", evicted)
	}
	if a.ActiveConversations() != 0 {
		t.Errorf("ActiveConversations = %d after sweep, want 0", a.ActiveConversations())
	}
}

func TestMetadataDestinationFlowsThrough(t *testing.T) {
	a := newTestAssistant(t)

	res, err := a.HandleMessage(context.Background(), Request{
		Message: "where should we eat dinner",
		Trip:    TripMetadata{Destination: "Rome", GroupSize: 4},
	})
	if err != nil {
		t.Fatalf("HandleMessage error: %v", err)
	}
	if res.Response.Type != "food" {
		t.Errorf("Type = %q, want food", res.Response.Type)
	}
	if !strings.Contains(res.Response.Content, "Rome") {
		t.Errorf("content should reference Rome:\n%s", res.Response.Content)
	}
}
