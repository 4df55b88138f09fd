// Package assistant implements the conversational trip-planning assistant:
// keyword classification of inbound messages, per-conversation context
// tracking, and dispatch to structured response generators. There is no
// language model behind it: classification is deterministic first-match-wins
// keyword scanning, and responses are assembled from canned building blocks.
package assistant

import "time"

// Intent is the coarse category of what the user is asking about.
type Intent string

// Intents, in classification priority order (see intentRules). Social
// intents are checked before topical ones; IntentGeneral is the catch-all.
const (
	IntentGreeting      Intent = "greeting"
	IntentFarewell      Intent = "farewell"
	IntentThanks        Intent = "thanks"
	IntentHelp          Intent = "help"
	IntentWeather       Intent = "weather"
	IntentBudget        Intent = "budget"
	IntentFood          Intent = "food"
	IntentActivity      Intent = "activity"
	IntentPlanning      Intent = "planning"
	IntentAccommodation Intent = "accommodation"
	IntentTransport     Intent = "transport"
	IntentShopping      Intent = "shopping"
	IntentSafety        Intent = "safety"
	IntentGeneral       Intent = "general_question"
)

// Style is the register the user writes in; it only selects closing phrasing.
type Style string

const (
	StylePolite   Style = "polite"
	StyleCasual   Style = "casual"
	StyleDirect   Style = "direct"
	StyleDetailed Style = "detailed"
)

// Mood is a coarse affect label; it only selects the preamble phrasing.
type Mood string

const (
	MoodExcited   Mood = "excited"
	MoodConcerned Mood = "concerned"
	MoodUrgent    Mood = "urgent"
	MoodNeutral   Mood = "neutral"
)

// TripMetadata carries the trip hints the host layer supplies with a message.
// All fields are optional; zero values mean "absent".
type TripMetadata struct {
	Destination string
	Dates       string
	GroupSize   int
}

// Classification is the ephemeral result of classifying one message. It is
// computed fresh per message and never stored.
type Classification struct {
	Destination string
	Intent      Intent
	Style       Style
	Mood        Mood
}

// Response is the structured output of one generator.
type Response struct {
	// Type tags which generator produced the response.
	Type string `json:"type"`
	// Content is the assembled text block (headings and bullet lists).
	Content string `json:"content"`
	// Suggestions are short follow-up action labels, possibly empty.
	Suggestions []string `json:"suggestions"`
}

// Turn is one transcript entry.
type Turn struct {
	Role      string    `json:"role"` // "user" or "assistant"
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// interestBearing lists the intents that accumulate in a conversation's
// interest set. Everything else (greetings, thanks, ...) is conversational
// noise for interest purposes.
var interestBearing = map[Intent]bool{
	IntentFood:     true,
	IntentActivity: true,
	IntentBudget:   true,
	IntentWeather:  true,
	IntentPlanning: true,
}
