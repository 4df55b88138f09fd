package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/wayfarer-app/wayfarer/internal/wayfarer/store"
)

// tripRequest is the create/update body for a trip.
type tripRequest struct {
	Name        string `json:"name"`
	Destination string `json:"destination"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	GroupSize   int    `json:"group_size"`
	Notes       string `json:"notes"`
}

func (s *Server) handleCreateTrip(w http.ResponseWriter, r *http.Request) {
	var req tripRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.Name == "" {
		writeError(w, http.StatusBadRequest, "name is required")
		return
	}

	trip, err := s.store.CreateTrip(r.Context(), store.Trip{
		Name:        req.Name,
		Destination: req.Destination,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		GroupSize:   req.GroupSize,
		Notes:       req.Notes,
	})
	if err != nil {
		s.logger.Error("api: create trip", "err", err)
		writeError(w, http.StatusInternalServerError, "failed to create trip")
		return
	}
	writeJSON(w, http.StatusCreated, trip)
}

func (s *Server) handleListTrips(w http.ResponseWriter, r *http.Request) {
	trips, err := s.store.ListTrips(r.Context())
	if err != nil {
		s.logger.Error("api: list trips", "err", err)
		writeError(w, http.StatusInternalServerError, "failed to list trips")
		return
	}
	if trips == nil {
		trips = []store.Trip{}
	}
	writeJSON(w, http.StatusOK, trips)
}

func (s *Server) handleGetTrip(w http.ResponseWriter, r *http.Request) {
	trip, err := s.store.GetTrip(r.Context(), mux.Vars(r)["id"])
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "trip not found")
		return
	}
	if err != nil {
		s.logger.Error("api: get trip", "err", err)
		writeError(w, http.StatusInternalServerError, "failed to load trip")
		return
	}
	writeJSON(w, http.StatusOK, trip)
}

func (s *Server) handleUpdateTrip(w http.ResponseWriter, r *http.Request) {
	var req tripRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.Name == "" {
		writeError(w, http.StatusBadRequest, "name is required")
		return
	}

	trip, err := s.store.UpdateTrip(r.Context(), store.Trip{
		ID:          mux.Vars(r)["id"],
		Name:        req.Name,
		Destination: req.Destination,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		GroupSize:   req.GroupSize,
		Notes:       req.Notes,
	})
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "trip not found")
		return
	}
	if err != nil {
		s.logger.Error("api: update trip", "err", err)
		writeError(w, http.StatusInternalServerError, "failed to update trip")
		return
	}
	writeJSON(w, http.StatusOK, trip)
}

func (s *Server) handleDeleteTrip(w http.ResponseWriter, r *http.Request) {
	err := s.store.DeleteTrip(r.Context(), mux.Vars(r)["id"])
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "trip not found")
		return
	}
	if err != nil {
		s.logger.Error("api: delete trip", "err", err)
		writeError(w, http.StatusInternalServerError, "failed to delete trip")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleListMessages returns a trip's persisted chat log, oldest first.
// Supports ?limit=N; limit 0 or absent returns everything.
func (s *Server) handleListMessages(w http.ResponseWriter, r *http.Request) {
	tripID := mux.Vars(r)["id"]
	if _, err := s.store.GetTrip(r.Context(), tripID); errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "trip not found")
		return
	} else if err != nil {
		s.logger.Error("api: get trip for messages", "err", err)
		writeError(w, http.StatusInternalServerError, "failed to load trip")
		return
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			writeError(w, http.StatusBadRequest, "limit must be a non-negative integer")
			return
		}
		limit = n
	}

	msgs, err := s.store.ListChatMessages(r.Context(), tripID, limit)
	if err != nil {
		s.logger.Error("api: list chat messages", "err", err)
		writeError(w, http.StatusInternalServerError, "failed to list messages")
		return
	}
	if msgs == nil {
		msgs = []store.ChatMessage{}
	}
	writeJSON(w, http.StatusOK, msgs)
}
