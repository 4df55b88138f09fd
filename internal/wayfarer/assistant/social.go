package assistant

import (
	"fmt"
	"strings"
)

// interestLabels renders interest intents as human phrases for the
// returning-user greeting.
var interestLabels = map[Intent]string{
	IntentFood:     "places to eat",
	IntentActivity: "things to do",
	IntentBudget:   "the budget",
	IntentWeather:  "the weather",
	IntentPlanning: "the itinerary",
}

// greeting handles first-contact and returning-user hellos. A fresh
// conversation gets the capability pitch; a returning one gets a welcome
// back that references the most recent interest when there is one.
func (r *Responder) greeting(cls Classification, conv *ConversationContext, trip TripMetadata) Response {
	dest := effectiveDestination(cls, conv)

	var b strings.Builder
	b.WriteString(r.moodLine(cls.Mood,
		[]string{"Love the energy — let's get this trip moving!", "That excitement is contagious!"},
		[]string{"No need to worry, we'll figure this out together.", "Take a breath — planning is what I'm here for."},
		[]string{"On it — let's not waste a minute.", "Right, straight to business."},
		[]string{"Hello! Great to have you here.", "Hi! Ready when you are."},
	))

	firstContact := conv == nil || conv.InteractionCount <= 1
	switch {
	case firstContact:
		b.WriteString(" I'm your trip-planning assistant")
		if dest != genericDestination {
			fmt.Fprintf(&b, " for %s", dest)
		}
		b.WriteString(".")
		section(&b, "Things I can help with", []string{
			"Weather and what to pack",
			"Restaurants and local food",
			"Activities and sightseeing",
			"Budgets and cost splitting",
			"Day-by-day itineraries",
		})
	case conv.LatestInterest() != "":
		fmt.Fprintf(&b, " Welcome back! Last time we were looking at %s", interestLabels[conv.LatestInterest()])
		if dest != genericDestination {
			fmt.Fprintf(&b, " for %s", dest)
		}
		b.WriteString(" — want to pick that back up?")
	default:
		fmt.Fprintf(&b, " Welcome back! Where were we with %s?", dest)
	}

	if trip.Dates != "" && firstContact {
		fmt.Fprintf(&b, "\n\nI see the trip is set for %s — plenty of time to get everything sorted.", trip.Dates)
	}

	return Response{
		Type:    "greeting",
		Content: b.String(),
		Suggestions: []string{
			"Plan my days",
			"Find restaurants",
			"Check the weather",
			"Set a budget",
		},
	}
}

func (r *Responder) farewell(cls Classification, conv *ConversationContext) Response {
	dest := effectiveDestination(cls, conv)

	var b strings.Builder
	b.WriteString(r.moodLine(cls.Mood,
		[]string{"Have an amazing trip!", "It's going to be a great one — enjoy every minute!"},
		[]string{"You've got this — everything will come together.", "Don't stress, the plan is solid."},
		[]string{"Safe travels — go, go, go!"},
		[]string{"Safe travels!", "Until next time!"},
	))
	if dest != genericDestination {
		fmt.Fprintf(&b, " Enjoy %s, and come back any time you need a hand.", dest)
	} else {
		b.WriteString(" Come back any time you need a hand with the planning.")
	}

	return Response{
		Type:    "farewell",
		Content: b.String(),
		Suggestions: []string{
			"Packing list",
			"Final checklist",
		},
	}
}

func (r *Responder) thanks(cls Classification, conv *ConversationContext) Response {
	var b strings.Builder
	b.WriteString(r.choose(
		"You're very welcome!",
		"Any time — that's what I'm here for.",
		"Glad I could help!",
	))
	b.WriteString(" ")
	b.WriteString(r.closing(cls.Style))

	return Response{
		Type:    "thanks",
		Content: b.String(),
		Suggestions: []string{
			"Anything else to plan?",
			"Show the itinerary",
		},
	}
}

func (r *Responder) help(cls Classification, conv *ConversationContext) Response {
	var b strings.Builder
	b.WriteString(r.moodLine(cls.Mood,
		[]string{"Happy to walk you through it!"},
		[]string{"No worries — it's simpler than it looks."},
		[]string{"Quick rundown coming up."},
		[]string{"Here's what I can do."},
	))
	b.WriteString(" Ask me anything about the trip in plain words — no special commands needed.")

	section(&b, "Try asking", []string{
		"\"What's the weather like in Tokyo?\"",
		"\"Suggest cheap places to eat\"",
		"\"What should we do on day two?\"",
		"\"How much should we budget per day?\"",
		"\"Is the tap water safe?\"",
	})
	b.WriteString("\n\n")
	b.WriteString(r.closing(cls.Style))

	return Response{
		Type:    "help",
		Content: b.String(),
		Suggestions: []string{
			"Check the weather",
			"Find restaurants",
			"Things to do",
			"Set a budget",
		},
	}
}
