package assistant

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/wayfarer-app/wayfarer/common/trace"
	"github.com/wayfarer-app/wayfarer/internal/wayfarer/knowledge"
	"github.com/wayfarer-app/wayfarer/internal/wayfarer/weather"
)

// ErrGenerationFailed wraps panics recovered at the dialogue boundary.
// Callers receive this instead of a crash or a half-built response.
var ErrGenerationFailed = errors.New("assistant: response generation failed")

// Config holds the assistant's tunables.
type Config struct {
	// ContextTTL bounds how long idle conversation contexts live.
	// Zero means DefaultContextTTL.
	ContextTTL time.Duration
	// Seed seeds the phrasing picker and, indirectly, test reproducibility.
	Seed int64
}

// Request is one inbound message plus its surrounding hints.
type Request struct {
	// Message is the raw user text. Empty is valid and classifies to the
	// default intent.
	Message string
	// ConversationID is the caller's opaque conversation key. Empty disables
	// cross-turn memory for this call.
	ConversationID string
	// Scope namespaces the conversation id (typically the trip id) so
	// unrelated callers reusing an id never share context.
	Scope string
	// Trip carries optional destination/dates/group-size hints.
	Trip TripMetadata
}

// Result is a successful dialogue turn.
type Result struct {
	Response  Response
	Timestamp time.Time
}

// Assistant is the dialogue manager: it classifies each inbound message,
// folds it into the conversation context, dispatches to a generator, and
// records the turn. All failures are contained here; nothing propagates to
// the host request layer as a panic.
type Assistant struct {
	contexts  *ContextStore
	responder *Responder
	logger    *slog.Logger
	now       func() time.Time
}

// New wires an Assistant from its collaborators. logger may be nil, in which
// case the default slog logger is used.
func New(tables *knowledge.Tables, oracle *weather.Oracle, cfg Config, logger *slog.Logger) *Assistant {
	if logger == nil {
		logger = slog.Default()
	}
	return &Assistant{
		contexts:  NewContextStore(cfg.ContextTTL),
		responder: NewResponder(tables, oracle, cfg.Seed),
		logger:    logger,
		now:       time.Now,
	}
}

// HandleMessage runs one dialogue turn. With a conversation id the turn
// reads and advances the stored context; without one the turn is stateless.
// A generation failure returns ErrGenerationFailed and leaves the stored
// context exactly as it was: no partial transcript, no count bump.
func (a *Assistant) HandleMessage(ctx context.Context, req Request) (Result, error) {
	now := a.now()
	cls := Classify(req.Message, req.Trip)

	stateless := req.ConversationID == ""
	var conv *ConversationContext
	if stateless {
		conv = &ConversationContext{
			Style:        StyleCasual,
			Mood:         MoodNeutral,
			CreatedAt:    now,
			LastActiveAt: now,
		}
	} else {
		conv = a.contexts.Begin(sessionKey(req.Scope, req.ConversationID), now)
	}

	// All context mutation happens on the staged copy; nothing is published
	// until the turn has fully succeeded.
	conv.ObserveTurn(cls, req.Message, now)

	resp, err := a.generate(cls, conv, req.Trip)
	if err != nil {
		a.logger.Error("assistant: turn failed",
			"request_id", trace.FromContext(ctx),
			"intent", cls.Intent,
			"conversation_id", req.ConversationID,
			"err", err,
		)
		return Result{}, err
	}

	conv.AppendTurn("user", req.Message, now)
	conv.AppendTurn("assistant", resp.Content, now)
	if !stateless {
		a.contexts.Commit(conv)
	}

	a.logger.Debug("assistant: turn handled",
		"request_id", trace.FromContext(ctx),
		"intent", cls.Intent,
		"mood", cls.Mood,
		"style", cls.Style,
		"destination", cls.Destination,
		"interaction_count", conv.InteractionCount,
		"stateless", stateless,
	)

	return Result{Response: resp, Timestamp: now.UTC()}, nil
}

// generate dispatches to the intent's generator, converting any panic into
// ErrGenerationFailed.
func (a *Assistant) generate(cls Classification, conv *ConversationContext, trip TripMetadata) (resp Response, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("%w: %v", ErrGenerationFailed, rec)
		}
	}()
	return a.responder.Dispatch(cls, conv, trip), nil
}

// ContextSnapshot returns a copy of the stored context for the scoped
// conversation, or nil when none exists. Used by the status surface and by
// tests; never hands out live state.
func (a *Assistant) ContextSnapshot(scope, conversationID string) *ConversationContext {
	return a.contexts.Snapshot(sessionKey(scope, conversationID))
}

// ActiveConversations returns the number of live conversation contexts.
func (a *Assistant) ActiveConversations() int {
	return a.contexts.Len()
}

// EvictStaleContexts removes conversation contexts idle past the TTL and
// returns the eviction count. The app scheduler calls this periodically.
func (a *Assistant) EvictStaleContexts(now time.Time) int {
	return a.contexts.SweepExpired(now)
}
