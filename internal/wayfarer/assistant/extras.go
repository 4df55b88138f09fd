package assistant

import (
	"fmt"
	"strings"
)

func (r *Responder) shopping(cls Classification, conv *ConversationContext) Response {
	dest := effectiveDestination(cls, conv)

	var b strings.Builder
	b.WriteString(r.moodLine(cls.Mood,
		[]string{"Souvenir hunting — the fun kind of errand!"},
		[]string{"Shopping abroad has a few traps, but they're easy to dodge."},
		[]string{"Quick shopping notes."},
		[]string{"A few pointers."},
	))
	fmt.Fprintf(&b, " Shopping in %s:", dest)

	section(&b, "Worth buying", []string{
		"Things made there — food, crafts, anything with a local maker's name",
		"Market finds early in the trip, so you're not panic-buying at the airport",
		"One consumable you'll actually use at home beats three shelf ornaments",
	})
	section(&b, "Worth knowing", []string{
		"Haggling is expected in markets, never in shops with price tags",
		"Check your home customs limits for food and alcohol",
		"Keep receipts — some countries refund VAT at departure",
	})
	b.WriteString("\n\n")
	b.WriteString(r.closing(cls.Style))

	return Response{
		Type:    "shopping",
		Content: b.String(),
		Suggestions: []string{
			"Market days",
			"Tax-free shopping",
			"Luggage allowance",
		},
	}
}

func (r *Responder) safety(cls Classification, conv *ConversationContext) Response {
	dest := effectiveDestination(cls, conv)

	var b strings.Builder
	b.WriteString(r.moodLine(cls.Mood,
		[]string{"Good instinct to check — prepared travellers relax more!"},
		[]string{"Sensible question, and the answer is mostly reassuring.", "A few precautions cover almost everything."},
		[]string{"The essentials, fast."},
		[]string{"The short list that matters."},
	))
	fmt.Fprintf(&b, " Staying safe in %s:", dest)

	section(&b, "Before you go", []string{
		"Travel insurance that covers medical evacuation — buy it when you book",
		"Photograph your passport and cards; store copies off your phone too",
		"Note the local emergency number and your embassy's address",
	})
	section(&b, "On the ground", []string{
		"Crowded tourist spots are pickpocket territory — front pockets, zipped bags",
		"Unmetered taxis and too-friendly strangers with deals are the classic scams",
		"Split cash between bag and pocket so one loss isn't a disaster",
	})
	b.WriteString("\n\n")
	b.WriteString(r.closing(cls.Style))

	return Response{
		Type:    "safety",
		Content: b.String(),
		Suggestions: []string{
			"Travel insurance",
			"Emergency contacts",
			"Common scams",
			"Health prep",
		},
	}
}

// general is the catch-all for messages no rule matched. It still produces a
// useful, non-empty response with follow-up suggestions.
func (r *Responder) general(cls Classification, conv *ConversationContext) Response {
	dest := effectiveDestination(cls, conv)

	var b strings.Builder
	b.WriteString(r.choose(
		"I'm not totally sure what you're after, but I can help with most trip questions.",
		"Hmm, I didn't quite catch that — here's what I'm good at.",
	))
	if dest != genericDestination {
		fmt.Fprintf(&b, " We've been talking about %s, so just ask away.", dest)
	}

	section(&b, "Ask me about", []string{
		"Weather and packing",
		"Restaurants and food",
		"Activities and sights",
		"Budgets and costs",
		"Itineraries and day plans",
		"Hotels, transport, shopping, safety",
	})
	b.WriteString("\n\n")
	b.WriteString(r.closing(cls.Style))

	return Response{
		Type:    "general",
		Content: b.String(),
		Suggestions: []string{
			"Check the weather",
			"Find restaurants",
			"Things to do",
			"Help",
		},
	}
}
