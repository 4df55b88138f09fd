package assistant

import (
	"math/rand"
	"sort"
	"strings"
	"sync"

	"github.com/wayfarer-app/wayfarer/internal/wayfarer/knowledge"
	"github.com/wayfarer-app/wayfarer/internal/wayfarer/weather"
)

// genericDestination is the placeholder used when neither the message, the
// trip metadata, nor the conversation history resolves a destination.
const genericDestination = "your destination"

// Responder maps intents to response generators. Generation is in-memory and
// synchronous; the only shared state is the pseudo-random phrasing picker,
// which is mutex-guarded, so a single Responder serves concurrent turns.
type Responder struct {
	tables *knowledge.Tables
	oracle *weather.Oracle

	mu  sync.Mutex
	rng *rand.Rand

	// pick overrides the random phrasing selection when non-nil. Tests pin
	// it (e.g. to always pick variant 0) for stable wording. The choice is
	// cosmetic only; variants within a set are semantically equivalent.
	pick func(n int) int
}

// NewResponder creates a Responder. tables and oracle may not be nil.
func NewResponder(tables *knowledge.Tables, oracle *weather.Oracle, seed int64) *Responder {
	return &Responder{
		tables: tables,
		oracle: oracle,
		rng:    rand.New(rand.NewSource(seed)),
	}
}

// Dispatch routes a classified message to its generator. Unknown intents
// fall through to the general-purpose generator.
func (r *Responder) Dispatch(cls Classification, conv *ConversationContext, trip TripMetadata) Response {
	switch cls.Intent {
	case IntentGreeting:
		return r.greeting(cls, conv, trip)
	case IntentFarewell:
		return r.farewell(cls, conv)
	case IntentThanks:
		return r.thanks(cls, conv)
	case IntentHelp:
		return r.help(cls, conv)
	case IntentWeather:
		return r.weatherReport(cls, conv)
	case IntentBudget:
		return r.budget(cls, conv, trip)
	case IntentFood:
		return r.food(cls, conv)
	case IntentActivity:
		return r.activity(cls, conv)
	case IntentPlanning:
		return r.planning(cls, conv, trip)
	case IntentAccommodation:
		return r.accommodation(cls, conv, trip)
	case IntentTransport:
		return r.transport(cls, conv)
	case IntentShopping:
		return r.shopping(cls, conv)
	case IntentSafety:
		return r.safety(cls, conv)
	default:
		return r.general(cls, conv)
	}
}

// choose returns one of the equivalent variants via the selection hook.
func (r *Responder) choose(variants ...string) string {
	if len(variants) == 1 {
		return variants[0]
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.pick != nil {
		return variants[r.pick(len(variants))%len(variants)]
	}
	return variants[r.rng.Intn(len(variants))]
}

// effectiveDestination resolves the destination a generator should talk
// about: this message's, else the conversation's last known one, else the
// generic placeholder.
func effectiveDestination(cls Classification, conv *ConversationContext) string {
	if cls.Destination != "" {
		return cls.Destination
	}
	if conv != nil && conv.LastDestination != "" {
		return conv.LastDestination
	}
	return genericDestination
}

// moodLine selects the preamble for the detected mood. Each argument holds
// the 1–3 equivalent phrasings for that branch.
func (r *Responder) moodLine(mood Mood, excited, concerned, urgent, neutral []string) string {
	switch mood {
	case MoodExcited:
		return r.choose(excited...)
	case MoodConcerned:
		return r.choose(concerned...)
	case MoodUrgent:
		return r.choose(urgent...)
	default:
		return r.choose(neutral...)
	}
}

// closing returns the style-conditioned sign-off sentence.
func (r *Responder) closing(style Style) string {
	switch style {
	case StylePolite:
		return "I hope that helps — happy to go deeper on any of it."
	case StyleDirect:
		return "That's the short version. Ask if you need more."
	case StyleDetailed:
		return "There's more where that came from — ask about any point and I'll expand."
	default:
		return "Just shout if you want more ideas!"
	}
}

// section appends a bold heading and a bullet list to the builder.
func section(b *strings.Builder, heading string, items []string) {
	if len(items) == 0 {
		return
	}
	b.WriteString("\n\n**")
	b.WriteString(heading)
	b.WriteString("**\n")
	for i, item := range items {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString("• ")
		b.WriteString(item)
	}
}

// tierHeadings maps restaurant tier keys to display headings, in menu order.
var tierHeadings = []struct {
	key     string
	heading string
}{
	{knowledge.TierBudget, "Budget bites"},
	{knowledge.TierMidRange, "Mid-range favourites"},
	{knowledge.TierFineDining, "Worth the splurge"},
}

// categoryHeading turns an attraction category key into a display heading.
func categoryHeading(key string) string {
	return strings.ToUpper(key[:1]) + strings.ReplaceAll(key[1:], "_", " ")
}

// sortedKeys returns the map keys in sorted order so section ordering is
// stable across calls.
func sortedKeys(m map[string][]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
