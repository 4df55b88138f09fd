package assistant

import (
	"fmt"
	"strings"
)

// budget produces cost guidance, adjusting for group size when the trip
// metadata carries one.
func (r *Responder) budget(cls Classification, conv *ConversationContext, trip TripMetadata) Response {
	dest := effectiveDestination(cls, conv)

	var b strings.Builder
	b.WriteString(r.moodLine(cls.Mood,
		[]string{"Smart — a little budgeting buys a lot of freedom later!"},
		[]string{"Money worries are the most fixable part of a trip.", "Let's make the numbers less scary."},
		[]string{"Fast numbers, here you go."},
		[]string{"Here's a realistic frame."},
	))
	fmt.Fprintf(&b, " Rough daily budgets for %s, per person:", dest)

	section(&b, "Daily budget tiers", []string{
		"Shoestring: dorm beds, street food, walking — roughly the price of a nice dinner at home",
		"Comfortable: private room, sit-down meals, a paid activity most days",
		"Treat yourself: boutique stays, good restaurants, taxis without guilt",
	})
	section(&b, "Where money quietly leaks", []string{
		"Airport taxis — check if a rail link exists before landing",
		"Card fees — pay in local currency, never the 'home currency' option",
		"Attraction combo tickets you won't fully use",
	})

	if trip.GroupSize > 1 {
		fmt.Fprintf(&b, "\n\nWith %d of you, set up a shared expense pot early — splitting as you go beats untangling it all on the last night.", trip.GroupSize)
	}
	b.WriteString("\n\n")
	b.WriteString(r.closing(cls.Style))

	return Response{
		Type:    "budget",
		Content: b.String(),
		Suggestions: []string{
			"Track expenses",
			"Split costs",
			"Cheap eats",
			"Free activities",
		},
	}
}

// planning sketches an itinerary structure from whatever trip metadata is
// available.
func (r *Responder) planning(cls Classification, conv *ConversationContext, trip TripMetadata) Response {
	dest := effectiveDestination(cls, conv)

	var b strings.Builder
	b.WriteString(r.moodLine(cls.Mood,
		[]string{"Yes! A plan turns a good trip into a great one."},
		[]string{"A loose plan fixes most travel anxiety — let's build one.", "Structure helps, and it doesn't have to be rigid."},
		[]string{"Skeleton plan, coming up."},
		[]string{"Here's how I'd structure it."},
	))
	fmt.Fprintf(&b, " A shape that works for %s:", dest)

	section(&b, "Day rhythm", []string{
		"Morning: the one big booked thing, before the crowds",
		"Afternoon: a neighbourhood to wander, no fixed agenda",
		"Evening: dinner near where you already are, not across town",
	})
	section(&b, "Rules that save trips", []string{
		"Plan mornings, leave afternoons loose",
		"Never two early starts in a row",
		"One 'nothing scheduled' day per five days",
		"Book the must-sees a week ahead, wing the rest",
	})

	if trip.Dates != "" {
		fmt.Fprintf(&b, "\n\nYou're going %s — lock the headline bookings for those dates first, everything else can flex.", trip.Dates)
	}
	if trip.GroupSize > 1 {
		fmt.Fprintf(&b, "\n\nWith a group of %d, agree the non-negotiables up front and let people drift for the rest — forced marches make enemies.", trip.GroupSize)
	}
	b.WriteString("\n\n")
	b.WriteString(r.closing(cls.Style))

	return Response{
		Type:    "planning",
		Content: b.String(),
		Suggestions: []string{
			"Draft day one",
			"Must-see shortlist",
			"Booking deadlines",
			"Share with the group",
		},
	}
}

// accommodation gives area-and-tier guidance for where to stay.
func (r *Responder) accommodation(cls Classification, conv *ConversationContext, trip TripMetadata) Response {
	dest := effectiveDestination(cls, conv)

	var b strings.Builder
	b.WriteString(r.moodLine(cls.Mood,
		[]string{"Finding the right base makes the whole trip easier!"},
		[]string{"Don't stress the booking — good options exist at every budget."},
		[]string{"Key pointers, quickly."},
		[]string{"Here's how to choose well."},
	))
	fmt.Fprintf(&b, " Picking a base in %s:", dest)

	section(&b, "Choosing the area", []string{
		"Stay where you'll be in the evenings, not next to the daytime sights",
		"Check the walk from the nearest station after dark on a map",
		"Read the newest reviews first — places change fast",
	})
	section(&b, "By budget", []string{
		"Hostels: book privates early, they sell out before dorms",
		"Mid-range: small local hotels beat chain quality at the same price",
		"Apartments: best value for stays of four nights or more",
	})

	if trip.GroupSize > 3 {
		fmt.Fprintf(&b, "\n\nFor %d people an apartment or aparthotel usually beats multiple hotel rooms — shared space, shared fridge, one bill.", trip.GroupSize)
	}
	b.WriteString("\n\n")
	b.WriteString(r.closing(cls.Style))

	return Response{
		Type:    "accommodation",
		Content: b.String(),
		Suggestions: []string{
			"Compare areas",
			"Set a nightly cap",
			"Cancellation rules",
			"Add to checklist",
		},
	}
}

// transport covers arrival and getting-around advice.
func (r *Responder) transport(cls Classification, conv *ConversationContext) Response {
	dest := effectiveDestination(cls, conv)

	var b strings.Builder
	b.WriteString(r.moodLine(cls.Mood,
		[]string{"Getting around is easier than you think — let's sort it!"},
		[]string{"Transport trips people up less than they fear.", "A few rules cover almost every city."},
		[]string{"Essentials only, here you go."},
		[]string{"The basics that matter."},
	))
	fmt.Fprintf(&b, " Moving around %s:", dest)

	section(&b, "Arrival", []string{
		"Check for a rail or bus link from the airport before defaulting to taxis",
		"Download the city's transit app and an offline map while on wifi",
		"Buy a multi-day transit pass if you'll ride more than twice a day",
	})
	section(&b, "Day to day", []string{
		"Walk anything under twenty minutes — it's where the trip happens",
		"Ride-hailing beats street taxis for price transparency",
		"Keep a screenshot of your accommodation address in the local language",
	})
	b.WriteString("\n\n")
	b.WriteString(r.closing(cls.Style))

	return Response{
		Type:    "transport",
		Content: b.String(),
		Suggestions: []string{
			"Airport transfer",
			"Transit passes",
			"Walking distances",
			"Late-night options",
		},
	}
}
