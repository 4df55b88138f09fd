package assistant

import "strings"

// gazetteer is the fixed list of destination names recognized in free text.
// Multi-word names must appear before any single-word name they contain.
var gazetteer = []string{
	"new york",
	"los angeles",
	"san francisco",
	"kuala lumpur",
	"buenos aires",
	"abu dhabi",
	"paris",
	"london",
	"tokyo",
	"kyoto",
	"osaka",
	"seoul",
	"rome",
	"barcelona",
	"madrid",
	"lisbon",
	"berlin",
	"amsterdam",
	"prague",
	"vienna",
	"bangkok",
	"bali",
	"phuket",
	"singapore",
	"hanoi",
	"dubai",
	"doha",
	"cairo",
	"marrakech",
	"chicago",
	"toronto",
	"vancouver",
	"miami",
	"boston",
	"rio",
	"lima",
	"bogota",
	"santiago",
	"sydney",
	"melbourne",
	"auckland",
	"wellington",
	"brisbane",
	"oslo",
	"stockholm",
	"helsinki",
	"copenhagen",
	"reykjavik",
	"zurich",
	"geneva",
	"istanbul",
	"athens",
	"dublin",
	"edinburgh",
	"budapest",
	"krakow",
	"mexico city",
	"cancun",
	"havana",
}

// intentRule pairs an intent with its trigger keywords. Matching is plain
// case-insensitive substring search; the first rule with any hit wins, so
// slice order encodes priority.
type intentRule struct {
	intent   Intent
	keywords []string
}

var intentRules = []intentRule{
	{IntentGreeting, []string{"hello", "hi there", "hey", "howdy", "good morning", "good afternoon", "good evening", "greetings"}},
	{IntentFarewell, []string{"bye", "goodbye", "see you", "farewell", "take care", "good night"}},
	{IntentThanks, []string{"thank", "thanks", "appreciate", "grateful"}},
	{IntentHelp, []string{"help", "what can you do", "how do you work", "confused", "stuck"}},
	{IntentWeather, []string{"weather", "temperature", "forecast", "rain", "sunny", "climate", "humid", "snow"}},
	{IntentBudget, []string{"budget", "cost", "price", "expensive", "cheap", "money", "afford", "spend", "split"}},
	{IntentFood, []string{"food", "restaurant", "cuisine", "dining", "meal", "hungry", "dinner", "lunch", "breakfast", "where to eat", "eat out", "snack", "street food"}},
	{IntentActivity, []string{"activity", "activities", "things to do", "attraction", "sightseeing", "museum", "tour", "visit", "explore", "adventure", "hike"}},
	{IntentPlanning, []string{"plan", "itinerary", "schedule", "organize", "organise", "agenda", "day by day"}},
	{IntentAccommodation, []string{"hotel", "hostel", "accommodation", "airbnb", "lodging", "where to stay", "resort", "check-in", "check in"}},
	{IntentTransport, []string{"flight", "train", "bus", "taxi", "transport", "getting around", "airport", "metro", "subway", "car rental", "ferry"}},
	{IntentShopping, []string{"shop", "shopping", "souvenir", "market", "mall", "boutique", "buy"}},
	{IntentSafety, []string{"safe", "safety", "dangerous", "crime", "scam", "emergency", "insurance", "vaccin", "pickpocket"}},
}

// Style markers in priority order: polite beats casual beats urgency beats
// the length heuristic.
var (
	politeMarkers = []string{"please", "could you", "would you", "thank you", "kindly"}
	casualMarkers = []string{"hey", "cool", "awesome", "gonna", "wanna", "lol", "btw"}
	directMarkers = []string{"urgent", "asap", "quickly", "right now", "immediately"}
)

// Mood word sets, checked positive → negative → urgent.
var (
	positiveWords = []string{"excited", "amazing", "can't wait", "cant wait", "awesome", "love", "fantastic", "wonderful", "thrilled", "great"}
	negativeWords = []string{"worried", "concerned", "anxious", "nervous", "afraid", "scared", "stressed", "problem", "issue"}
	urgentWords   = []string{"urgent", "asap", "emergency", "immediately", "right now", "last minute"}
)

// detailedWordThreshold is the word count above which a message with no
// explicit style markers is classified as detailed.
const detailedWordThreshold = 20

// Classify extracts destination, intent, style, and mood from a raw message
// and the caller-supplied trip metadata. It is pure: every input classifies
// to something and no error conditions exist.
func Classify(message string, trip TripMetadata) Classification {
	lower := strings.ToLower(message)
	return Classification{
		Destination: extractDestination(lower, trip),
		Intent:      classifyIntent(lower),
		Style:       detectStyle(lower),
		Mood:        detectMood(lower),
	}
}

// extractDestination prefers the trip metadata destination; otherwise the
// first gazetteer hit in the message, title-cased. No match yields "".
func extractDestination(lowerMsg string, trip TripMetadata) string {
	if d := strings.TrimSpace(trip.Destination); d != "" {
		return d
	}
	for _, place := range gazetteer {
		if strings.Contains(lowerMsg, place) {
			return titleCase(place)
		}
	}
	return ""
}

// classifyIntent runs the ordered rule list; the first rule with any
// substring hit wins. Messages matching nothing are general questions.
func classifyIntent(lowerMsg string) Intent {
	for _, rule := range intentRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lowerMsg, kw) {
				return rule.intent
			}
		}
	}
	return IntentGeneral
}

func detectStyle(lowerMsg string) Style {
	if containsAny(lowerMsg, politeMarkers) {
		return StylePolite
	}
	if containsAny(lowerMsg, casualMarkers) {
		return StyleCasual
	}
	if containsAny(lowerMsg, directMarkers) {
		return StyleDirect
	}
	if len(strings.Fields(lowerMsg)) > detailedWordThreshold {
		return StyleDetailed
	}
	return StyleCasual
}

func detectMood(lowerMsg string) Mood {
	if containsAny(lowerMsg, positiveWords) {
		return MoodExcited
	}
	if containsAny(lowerMsg, negativeWords) {
		return MoodConcerned
	}
	if containsAny(lowerMsg, urgentWords) {
		return MoodUrgent
	}
	return MoodNeutral
}

func containsAny(s string, words []string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}

// titleCase capitalizes the first letter of each space-separated word.
// Good enough for gazetteer entries, which are plain ASCII place names.
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
