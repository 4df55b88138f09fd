package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
)

// newTestStore opens a store backed by a temp-dir database file.
func newTestStore(t *testing.T) *Store {
	t.Helper()

	s, err := New(filepath.Join(t.TempDir(), "wayfarer_test.db"))
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestTripCRUD(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	created, err := s.CreateTrip(ctx, Trip{
		Name:        "Spring in Paris",
		Destination: "Paris",
		StartDate:   "2026-04-10",
		EndDate:     "2026-04-17",
		GroupSize:   4,
	})
	if err != nil {
		t.Fatalf("CreateTrip error: %v", err)
	}
	if created.ID == "" {
		t.Fatal("expected generated trip ID")
	}

	got, err := s.GetTrip(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetTrip error: %v", err)
	}
	if got.Name != "Spring in Paris" || got.Destination != "Paris" || got.GroupSize != 4 {
		t.Errorf("GetTrip = %+v", got)
	}

	got.Destination = "Rome"
	updated, err := s.UpdateTrip(ctx, *got)
	if err != nil {
		t.Fatalf("UpdateTrip error: %v", err)
	}
	if updated.Destination != "Rome" {
		t.Errorf("Destination = %q, want Rome", updated.Destination)
	}

	trips, err := s.ListTrips(ctx)
	if err != nil {
		t.Fatalf("ListTrips error: %v", err)
	}
	if len(trips) != 1 {
		t.Fatalf("ListTrips = %d trips, want 1", len(trips))
	}

	n, err := s.TripCount(ctx)
	if err != nil || n != 1 {
		t.Errorf("TripCount = %d, %v; want 1, nil", n, err)
	}

	if err := s.DeleteTrip(ctx, created.ID); err != nil {
		t.Fatalf("DeleteTrip error: %v", err)
	}
	if _, err := s.GetTrip(ctx, created.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetTrip after delete = %v, want ErrNotFound", err)
	}
}

func TestTripNotFound(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if _, err := s.GetTrip(ctx, "nope"); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetTrip = %v, want ErrNotFound", err)
	}
	if _, err := s.UpdateTrip(ctx, Trip{ID: "nope", Name: "x"}); !errors.Is(err, ErrNotFound) {
		t.Errorf("UpdateTrip = %v, want ErrNotFound", err)
	}
	if err := s.DeleteTrip(ctx, "nope"); !errors.Is(err, ErrNotFound) {
		t.Errorf("DeleteTrip = %v, want ErrNotFound", err)
	}
}

func TestGroupSizeDefaultsToOne(t *testing.T) {
	s := newTestStore(t)

	created, err := s.CreateTrip(context.Background(), Trip{Name: "Solo"})
	if err != nil {
		t.Fatalf("CreateTrip error: %v", err)
	}
	if created.GroupSize != 1 {
		t.Errorf("GroupSize = %d, want 1", created.GroupSize)
	}
}

func TestChatLog(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	trip, err := s.CreateTrip(ctx, Trip{Name: "Tokyo crew", Destination: "Tokyo"})
	if err != nil {
		t.Fatalf("CreateTrip error: %v", err)
	}

	turns := []ChatMessage{
		{TripID: trip.ID, ConversationID: "c1", Role: "user", Content: "what's the weather"},
		{TripID: trip.ID, ConversationID: "c1", Role: "assistant", MessageType: "weather", Content: "sunny, 22°C"},
		{TripID: trip.ID, ConversationID: "c1", Role: "user", Content: "and food?"},
	}
	for _, m := range turns {
		if _, err := s.AppendChatMessage(ctx, m); err != nil {
			t.Fatalf("AppendChatMessage error: %v", err)
		}
	}

	msgs, err := s.ListChatMessages(ctx, trip.ID, 0)
	if err != nil {
		t.Fatalf("ListChatMessages error: %v", err)
	}
	if len(msgs) != 3 {
		t.Fatalf("ListChatMessages = %d messages, want 3", len(msgs))
	}
	if msgs[0].Content != "what's the weather" || msgs[2].Content != "and food?" {
		t.Errorf("messages out of order: %+v", msgs)
	}

	limited, err := s.ListChatMessages(ctx, trip.ID, 2)
	if err != nil {
		t.Fatalf("ListChatMessages(limit) error: %v", err)
	}
	if len(limited) != 2 {
		t.Errorf("limited list = %d messages, want 2", len(limited))
	}
}

func TestDeleteTripCascadesChatLog(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	trip, err := s.CreateTrip(ctx, Trip{Name: "Short trip"})
	if err != nil {
		t.Fatalf("CreateTrip error: %v", err)
	}
	if _, err := s.AppendChatMessage(ctx, ChatMessage{TripID: trip.ID, Role: "user", Content: "hi"}); err != nil {
		t.Fatalf("AppendChatMessage error: %v", err)
	}

	if err := s.DeleteTrip(ctx, trip.ID); err != nil {
		t.Fatalf("DeleteTrip error: %v", err)
	}

	msgs, err := s.ListChatMessages(ctx, trip.ID, 0)
	if err != nil {
		t.Fatalf("ListChatMessages error: %v", err)
	}
	if len(msgs) != 0 {
		t.Errorf("chat log survived trip deletion: %d messages", len(msgs))
	}
}
