package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ChatMessage is one persisted assistant-chat turn for a trip.
type ChatMessage struct {
	ID             string    `json:"id"`
	TripID         string    `json:"trip_id"`
	ConversationID string    `json:"conversation_id"`
	Role           string    `json:"role"`
	MessageType    string    `json:"message_type"`
	Content        string    `json:"content"`
	CreatedAt      time.Time `json:"created_at"`
}

// AppendChatMessage persists one chat turn and returns the stored record.
func (s *Store) AppendChatMessage(ctx context.Context, m ChatMessage) (*ChatMessage, error) {
	m.ID = uuid.New().String()
	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO chat_messages (id, trip_id, conversation_id, role, message_type, content, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		m.ID, m.TripID, m.ConversationID, m.Role, m.MessageType, m.Content, m.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("store: append chat message: %w", err)
	}
	return &m, nil
}

// ListChatMessages returns the chat log for a trip in chronological order,
// capped at limit entries (0 means no cap).
func (s *Store) ListChatMessages(ctx context.Context, tripID string, limit int) ([]ChatMessage, error) {
	query := `
		SELECT id, trip_id, conversation_id, role, message_type, content, created_at
		FROM chat_messages WHERE trip_id = ? ORDER BY created_at, rowid`
	args := []any{tripID}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("store: list chat messages: %w", err)
	}
	defer rows.Close()

	var msgs []ChatMessage
	for rows.Next() {
		var m ChatMessage
		if err := rows.Scan(&m.ID, &m.TripID, &m.ConversationID, &m.Role, &m.MessageType, &m.Content, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("store: scan chat message: %w", err)
		}
		msgs = append(msgs, m)
	}
	return msgs, rows.Err()
}
