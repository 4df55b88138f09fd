package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/wayfarer-app/wayfarer/internal/wayfarer/assistant"
	"github.com/wayfarer-app/wayfarer/internal/wayfarer/store"
)

// chatRequest is the POST /api/assistant/chat body.
type chatRequest struct {
	Message        string `json:"message"`
	ConversationID string `json:"conversation_id"`
	TripID         string `json:"trip_id"`
}

// chatResponse is the success envelope for one assistant turn.
type chatResponse struct {
	Content     assistant.Response `json:"content"`
	MessageType string             `json:"message_type"`
	Timestamp   string             `json:"timestamp"`
}

// handleChat runs one assistant turn. A trip_id pins the turn to a stored
// trip: its metadata seeds classification, the conversation is scoped to the
// trip, and both sides of the turn land in the trip's chat log.
func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	limitKey := req.ConversationID
	if limitKey == "" {
		limitKey = r.RemoteAddr
	}
	if !s.limiter.Allow(limitKey) {
		writeError(w, http.StatusTooManyRequests, "rate limit exceeded, slow down a little")
		return
	}

	var trip *store.Trip
	var meta assistant.TripMetadata
	if req.TripID != "" {
		t, err := s.store.GetTrip(r.Context(), req.TripID)
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "trip not found")
			return
		}
		if err != nil {
			s.logger.Error("api: load trip for chat", "trip_id", req.TripID, "err", err)
			writeError(w, http.StatusInternalServerError, "failed to load trip")
			return
		}
		trip = t
		meta = assistant.TripMetadata{
			Destination: t.Destination,
			Dates:       tripDates(t),
			GroupSize:   t.GroupSize,
		}
	}

	start := time.Now()
	res, err := s.assistant.HandleMessage(r.Context(), assistant.Request{
		Message:        req.Message,
		ConversationID: req.ConversationID,
		Scope:          req.TripID,
		Trip:           meta,
	})
	assistantTurnDuration.Observe(time.Since(start).Seconds())

	if err != nil {
		assistantFailures.Inc()
		writeError(w, http.StatusInternalServerError, "the assistant could not generate a response")
		return
	}
	assistantTurns.WithLabelValues(res.Response.Type).Inc()

	if trip != nil {
		s.persistTurn(r, trip.ID, req.ConversationID, req.Message, res)
	}

	writeJSON(w, http.StatusOK, chatResponse{
		Content:     res.Response,
		MessageType: res.Response.Type,
		Timestamp:   res.Timestamp.Format(time.RFC3339),
	})
}

// persistTurn appends both sides of a successful turn to the trip's chat log.
// Persistence is best-effort: a storage hiccup must not fail a turn the
// assistant already answered.
func (s *Server) persistTurn(r *http.Request, tripID, conversationID, userMsg string, res assistant.Result) {
	ctx := r.Context()
	if _, err := s.store.AppendChatMessage(ctx, store.ChatMessage{
		TripID:         tripID,
		ConversationID: conversationID,
		Role:           "user",
		Content:        userMsg,
	}); err != nil {
		s.logger.Error("api: persist user message", "trip_id", tripID, "err", err)
		return
	}
	if _, err := s.store.AppendChatMessage(ctx, store.ChatMessage{
		TripID:         tripID,
		ConversationID: conversationID,
		Role:           "assistant",
		MessageType:    res.Response.Type,
		Content:        res.Response.Content,
	}); err != nil {
		s.logger.Error("api: persist assistant message", "trip_id", tripID, "err", err)
	}
}

// tripDates renders a trip's date range as a single hint string, or "" when
// the trip has no dates.
func tripDates(t *store.Trip) string {
	switch {
	case t.StartDate != "" && t.EndDate != "":
		return t.StartDate + " to " + t.EndDate
	case t.StartDate != "":
		return t.StartDate
	default:
		return ""
	}
}
