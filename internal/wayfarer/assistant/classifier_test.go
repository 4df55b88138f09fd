package assistant

import (
	"strings"
	"testing"
)

func TestClassifyIntent(t *testing.T) {
	tests := []struct {
		message string
		want    Intent
	}{
		{"hello", IntentGreeting},
		{"HELLO there", IntentGreeting},
		{"Good morning!", IntentGreeting},
		{"goodbye for now", IntentFarewell},
		{"thanks so much", IntentThanks},
		{"thank you!", IntentThanks},
		{"can you help me", IntentHelp},
		{"what's the weather in Tokyo", IntentWeather},
		{"will it rain tomorrow", IntentWeather},
		{"how much does it cost", IntentBudget},
		{"is it expensive there", IntentBudget},
		{"suggest food in Paris", IntentFood},
		{"best restaurant nearby", IntentFood},
		{"what about activities", IntentActivity},
		{"things to do on saturday", IntentActivity},
		{"make an itinerary", IntentPlanning},
		{"help me plan the trip", IntentHelp}, // help is checked before planning
		{"which hotel should we book", IntentAccommodation},
		{"cheapest flight from here", IntentBudget}, // budget is checked before transport
		{"how does the metro work", IntentTransport},
		{"souvenir shopping ideas", IntentShopping},
		{"is the tap water safe", IntentSafety},
		{"", IntentGeneral},
		{"?!?! ~~~ ###", IntentGeneral},
		{"tell me something interesting", IntentGeneral},
	}

	for _, tt := range tests {
		t.Run(tt.message, func(t *testing.T) {
			got := Classify(tt.message, TripMetadata{})
			if got.Intent != tt.want {
				t.Errorf("Classify(%q).Intent = %q, want %q", tt.message, got.Intent, tt.want)
			}
		})
	}
}

func TestGreetingKeywordsAreCaseInsensitive(t *testing.T) {
	for _, msg := range []string{"hello", "Hello", "HELLO", "hELLo everyone"} {
		if got := Classify(msg, TripMetadata{}).Intent; got != IntentGreeting {
			t.Errorf("Classify(%q).Intent = %q, want greeting", msg, got)
		}
	}
}

func TestDestinationExtraction(t *testing.T) {
	tests := []struct {
		name    string
		message string
		trip    TripMetadata
		want    string
	}{
		{
			name:    "metadata wins over message text",
			message: "what's the weather in Tokyo",
			trip:    TripMetadata{Destination: "Paris"},
			want:    "Paris",
		},
		{
			name:    "gazetteer match from text",
			message: "what's the weather in tokyo",
			want:    "Tokyo",
		},
		{
			name:    "multi-word destination title-cased",
			message: "flying into new york on friday",
			want:    "New York",
		},
		{
			name:    "no destination anywhere",
			message: "what should I pack",
			want:    "",
		},
		{
			name:    "whitespace-only metadata is absent",
			message: "food in rome please",
			trip:    TripMetadata{Destination: "   "},
			want:    "Rome",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.message, tt.trip)
			if got.Destination != tt.want {
				t.Errorf("Destination = %q, want %q", got.Destination, tt.want)
			}
		})
	}
}

func TestDetectStyle(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    Style
	}{
		{"polite marker", "could you please suggest a restaurant", StylePolite},
		{"polite beats casual", "hey, could you find a hotel please", StylePolite},
		{"casual marker", "hey what's cool around here", StyleCasual},
		{"urgency marker", "need a taxi asap", StyleDirect},
		{"casual beats urgency", "hey I need this asap", StyleCasual},
		{
			"length heuristic",
			strings.Repeat("word ", 25),
			StyleDetailed,
		},
		{"default", "where should we go", StyleCasual},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.message, TripMetadata{}).Style; got != tt.want {
				t.Errorf("Style = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDetectMood(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    Mood
	}{
		{"positive", "so excited for this trip", MoodExcited},
		{"negative", "I'm worried about the costs", MoodConcerned},
		{"positive beats negative", "excited but a bit worried", MoodExcited},
		{"urgent", "emergency, flight leaves in two hours", MoodUrgent},
		{"neutral", "what time does the museum open", MoodNeutral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.message, TripMetadata{}).Mood; got != tt.want {
				t.Errorf("Mood = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestEveryInputClassifiesToSomething(t *testing.T) {
	inputs := []string{"", " ", "\n\t", "12345", "éàü", strings.Repeat("x", 10000)}
	for _, msg := range inputs {
		got := Classify(msg, TripMetadata{})
		if got.Intent == "" || got.Style == "" || got.Mood == "" {
			t.Errorf("Classify(%q) produced empty field: %+v", msg, got)
		}
	}
}
