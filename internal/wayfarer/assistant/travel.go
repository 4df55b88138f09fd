package assistant

import (
	"fmt"
	"strings"

	"github.com/wayfarer-app/wayfarer/internal/wayfarer/weather"
)

// weatherReport consults the environment oracle and derives packing and
// activity advice from the synthesized reading.
func (r *Responder) weatherReport(cls Classification, conv *ConversationContext) Response {
	dest := effectiveDestination(cls, conv)
	reading := r.oracle.ReadingFor(dest)

	var b strings.Builder
	b.WriteString(r.moodLine(cls.Mood,
		[]string{"Let's see what the skies have planned for you!", "Weather check — my favourite part!"},
		[]string{"Let's take the guesswork out of the weather.", "Good thinking to check ahead."},
		[]string{"Quick weather check, here you go."},
		[]string{"Here's the current picture."},
	))
	fmt.Fprintf(&b, " Conditions for %s:", dest)

	section(&b, "Right now", []string{
		fmt.Sprintf("Temperature: %.1f°C (feels like %.1f°C)", reading.Temperature, reading.FeelsLike),
		fmt.Sprintf("Conditions: %s", reading.Description),
		fmt.Sprintf("Humidity: %d%%", reading.Humidity),
		fmt.Sprintf("Wind: %.1f m/s", reading.WindSpeed),
	})
	section(&b, "What to pack", weather.PackingList(reading))
	section(&b, "Good fits for this weather", weather.ActivityFit(reading))
	b.WriteString("\n\n")
	b.WriteString(r.closing(cls.Style))

	return Response{
		Type:    "weather",
		Content: b.String(),
		Suggestions: []string{
			"7-day forecast",
			"Packing list",
			"Best time to visit",
			"Indoor alternatives",
		},
	}
}

// food suggests restaurants from the knowledge tables, falling back to
// generic dining advice when the destination has no table entry.
func (r *Responder) food(cls Classification, conv *ConversationContext) Response {
	dest := effectiveDestination(cls, conv)

	var b strings.Builder
	b.WriteString(r.moodLine(cls.Mood,
		[]string{"Now we're talking — eating well is half the trip!", "Food scouting, excellent choice!"},
		[]string{"Don't worry, there's good food at every price point.", "Eating well doesn't have to be complicated."},
		[]string{"Quick picks coming right up."},
		[]string{"Here's where I'd start."},
	))

	restaurants := r.tables.Restaurants(dest)
	if len(restaurants) > 0 {
		fmt.Fprintf(&b, " My picks for %s:", dest)
		for _, tier := range tierHeadings {
			section(&b, tier.heading, restaurants[tier.key])
		}
	} else {
		fmt.Fprintf(&b, " I don't have a curated list for %s yet, but these rules of thumb travel well:", dest)
		section(&b, "Finding the good spots", []string{
			"Eat where the queue is local, not where the menu has photos",
			"Markets and food halls are the cheapest way to sample widely",
			"Lunch menus at nice restaurants cost half of dinner",
			"One street back from the main sight, prices drop and quality rises",
		})
	}
	b.WriteString("\n\n")
	b.WriteString(r.closing(cls.Style))

	return Response{
		Type:    "food",
		Content: b.String(),
		Suggestions: []string{
			"Book a food tour",
			"Dietary-friendly options",
			"Local specialities",
			"Add to checklist",
		},
	}
}

// activity suggests attractions from the knowledge tables, falling back to
// generic sightseeing advice on a table miss.
func (r *Responder) activity(cls Classification, conv *ConversationContext) Response {
	dest := effectiveDestination(cls, conv)

	var b strings.Builder
	b.WriteString(r.moodLine(cls.Mood,
		[]string{"So many good options — let's fill those days!", "Adventure time, love it!"},
		[]string{"We'll find the right pace for everyone.", "Plenty to do without overdoing it."},
		[]string{"Top picks, no fluff."},
		[]string{"Here's what stands out."},
	))

	attractions := r.tables.Attractions(dest)
	if len(attractions) > 0 {
		fmt.Fprintf(&b, " Worth your time in %s:", dest)
		for _, category := range sortedKeys(attractions) {
			section(&b, categoryHeading(category), attractions[category])
		}
	} else {
		fmt.Fprintf(&b, " I don't have a curated list for %s yet, but this framework rarely fails:", dest)
		section(&b, "Building a good day", []string{
			"One headline sight per day, booked ahead",
			"One neighbourhood to wander with no plan",
			"A viewpoint for sunset — check closing times",
			"Free walking tours are a great first-day orientation",
		})
	}
	b.WriteString("\n\n")
	b.WriteString(r.closing(cls.Style))

	return Response{
		Type:    "activity",
		Content: b.String(),
		Suggestions: []string{
			"Morning itinerary",
			"Rainy-day options",
			"Book tickets",
			"Add to checklist",
		},
	}
}
