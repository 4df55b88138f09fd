package assistant

import (
	"sync"
	"time"
)

// ConversationContext is the cross-turn memory for one conversation key.
// Instances handed out by ContextStore are private copies; mutations become
// visible to other turns only through Commit.
type ConversationContext struct {
	// Key is the scoped store key (scope + ":" + conversation id).
	// Empty for ephemeral contexts that never touch the store.
	Key string

	// InteractionCount is incremented once per inbound message. Monotonically
	// non-decreasing for a given key.
	InteractionCount int

	// CurrentTopic is the last-classified intent. Empty until the first turn.
	CurrentTopic Intent

	// LastQuestion is the previous user message. Not consulted by any
	// generator yet; retained so a future generator can reference it.
	LastQuestion string

	Style Style
	Mood  Mood

	// Interests accumulates interest-bearing intents in first-seen order,
	// without duplicates.
	Interests []Intent

	// LastDestination is the most recently resolved destination. Once set it
	// is only ever overwritten by a newer non-empty resolution, never cleared.
	LastDestination string

	// Transcript is the append-only ordered turn record.
	Transcript []Turn

	CreatedAt    time.Time
	LastActiveAt time.Time
}

// ObserveTurn folds one classified inbound message into the context:
// bumps the interaction count, updates topic/style/mood, accumulates
// interests, and carries the destination forward.
func (c *ConversationContext) ObserveTurn(cls Classification, message string, now time.Time) {
	c.InteractionCount++
	c.CurrentTopic = cls.Intent
	c.LastQuestion = message
	c.Style = cls.Style
	c.Mood = cls.Mood
	c.LastActiveAt = now

	if interestBearing[cls.Intent] {
		c.addInterest(cls.Intent)
	}
	if cls.Destination != "" {
		c.LastDestination = cls.Destination
	}
}

// addInterest appends the intent unless it is already present.
func (c *ConversationContext) addInterest(intent Intent) {
	for _, existing := range c.Interests {
		if existing == intent {
			return
		}
	}
	c.Interests = append(c.Interests, intent)
}

// AppendTurn records one transcript entry. Entries are never mutated or
// removed afterwards.
func (c *ConversationContext) AppendTurn(role, content string, now time.Time) {
	c.Transcript = append(c.Transcript, Turn{
		Role:      role,
		Content:   content,
		Timestamp: now,
	})
}

// LatestInterest returns the most recently added interest, or "" when none
// has accumulated yet.
func (c *ConversationContext) LatestInterest() Intent {
	if len(c.Interests) == 0 {
		return ""
	}
	return c.Interests[len(c.Interests)-1]
}

// clone returns a deep copy so callers can stage mutations without
// publishing them.
func (c *ConversationContext) clone() *ConversationContext {
	cp := *c
	cp.Interests = make([]Intent, len(c.Interests))
	copy(cp.Interests, c.Interests)
	cp.Transcript = make([]Turn, len(c.Transcript))
	copy(cp.Transcript, c.Transcript)
	return &cp
}

// DefaultContextTTL is how long an idle conversation context survives before
// the sweep removes it.
const DefaultContextTTL = 12 * time.Hour

// ContextStore owns all live conversation contexts, keyed by scoped
// conversation key. It is safe for concurrent use across different keys;
// concurrent turns on the same key resolve as last-commit-wins, which is
// acceptable because no cross-turn invariant is correctness-critical.
type ContextStore struct {
	mu       sync.Mutex
	ttl      time.Duration
	contexts map[string]*ConversationContext
}

// NewContextStore creates an empty store. ttl <= 0 falls back to
// DefaultContextTTL.
func NewContextStore(ttl time.Duration) *ContextStore {
	if ttl <= 0 {
		ttl = DefaultContextTTL
	}
	return &ContextStore{
		ttl:      ttl,
		contexts: make(map[string]*ConversationContext),
	}
}

// Begin returns a staged copy of the context for key, creating a fresh one
// with defaults on first access. The copy is private to the caller; nothing
// is published until Commit. A failed turn simply abandons the copy, leaving
// the stored context untouched.
func (s *ContextStore) Begin(key string, now time.Time) *ConversationContext {
	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, ok := s.contexts[key]; ok {
		return existing.clone()
	}
	return &ConversationContext{
		Key:          key,
		Style:        StyleCasual,
		Mood:         MoodNeutral,
		CreatedAt:    now,
		LastActiveAt: now,
	}
}

// Commit publishes a staged context, replacing whatever is stored under its
// key. Last commit wins on a racing key.
func (s *ContextStore) Commit(staged *ConversationContext) {
	if staged == nil || staged.Key == "" {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.contexts[staged.Key] = staged.clone()
}

// Snapshot returns a copy of the stored context for key, or nil when absent.
func (s *ContextStore) Snapshot(key string) *ConversationContext {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.contexts[key]
	if !ok {
		return nil
	}
	return c.clone()
}

// Len returns the number of live contexts.
func (s *ContextStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.contexts)
}

// SweepExpired removes contexts idle longer than the TTL and returns how
// many were evicted. Called periodically by the app scheduler so memory does
// not grow without bound across long-running processes.
func (s *ContextStore) SweepExpired(now time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	evicted := 0
	for key, c := range s.contexts {
		if now.Sub(c.LastActiveAt) > s.ttl {
			delete(s.contexts, key)
			evicted++
		}
	}
	return evicted
}

// sessionKey produces the scoped store key for a conversation. Scoping by
// the caller-supplied scope (trip id) keeps two unrelated callers who reuse
// the same conversation id from sharing context.
func sessionKey(scope, conversationID string) string {
	return scope + ":" + conversationID
}
