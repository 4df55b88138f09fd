// Package weather implements a synthetic environment oracle: given a place
// name it fabricates a plausible weather reading from coarse region matching
// plus bounded randomness. It is an explicit stand-in for a real weather
// provider; readings are randomized per call and never measured.
package weather

import (
	"math"
	"math/rand"
	"strings"
	"sync"
	"time"
)

// Reading is one synthesized weather observation.
type Reading struct {
	Location    string  `json:"location"`
	Temperature float64 `json:"temperature"` // °C
	FeelsLike   float64 `json:"feels_like"`  // °C
	Description string  `json:"description"`
	Humidity    int     `json:"humidity"`   // percent
	WindSpeed   float64 `json:"wind_speed"` // m/s
}

// region is one coarse climate bucket. A place is assigned to the first
// region whose match list has a substring hit against the lower-cased name.
type region struct {
	name       string
	matches    []string
	baseTemp   float64 // °C midpoint
	spread     float64 // max deviation from baseTemp in either direction
	conditions []string
}

// Bucket order matters only where match lists overlap; keep the more
// specific buckets (alpine, nordic) before the broad european one.
var regions = []region{
	{
		name:       "alpine",
		matches:    []string{"zurich", "geneva", "innsbruck", "zermatt", "chamonix", "switzerland", "austria", "alps"},
		baseTemp:   8,
		spread:     7,
		conditions: []string{"clear mountain air", "light snow", "partly cloudy", "fog in the valleys"},
	},
	{
		name:       "nordic",
		matches:    []string{"oslo", "stockholm", "helsinki", "copenhagen", "reykjavik", "norway", "sweden", "finland", "iceland", "denmark"},
		baseTemp:   5,
		spread:     8,
		conditions: []string{"overcast", "light snow", "clear and crisp", "drizzle"},
	},
	{
		name:       "european",
		matches:    []string{"paris", "london", "rome", "barcelona", "madrid", "berlin", "amsterdam", "lisbon", "prague", "vienna", "france", "italy", "spain", "germany", "england", "portugal", "netherlands"},
		baseTemp:   16,
		spread:     8,
		conditions: []string{"partly cloudy", "light rain", "clear skies", "overcast"},
	},
	{
		name:       "east asian",
		matches:    []string{"tokyo", "kyoto", "osaka", "seoul", "busan", "taipei", "shanghai", "beijing", "japan", "korea", "taiwan", "china"},
		baseTemp:   18,
		spread:     9,
		conditions: []string{"clear skies", "hazy sunshine", "light rain", "humid and overcast"},
	},
	{
		name:       "tropical",
		matches:    []string{"bangkok", "bali", "phuket", "singapore", "manila", "kuala lumpur", "hanoi", "thailand", "indonesia", "vietnam", "malaysia", "philippines"},
		baseTemp:   30,
		spread:     4,
		conditions: []string{"humid sunshine", "afternoon thunderstorm", "tropical rain", "hot and hazy"},
	},
	{
		name:       "desert",
		matches:    []string{"dubai", "abu dhabi", "doha", "cairo", "marrakech", "riyadh", "uae", "qatar", "egypt", "morocco"},
		baseTemp:   34,
		spread:     6,
		conditions: []string{"clear and hot", "sunny with haze", "dry heat", "dusty wind"},
	},
	{
		name:       "north american",
		matches:    []string{"new york", "los angeles", "chicago", "san francisco", "toronto", "vancouver", "miami", "boston", "usa", "united states", "canada"},
		baseTemp:   15,
		spread:     10,
		conditions: []string{"partly cloudy", "clear skies", "scattered showers", "windy"},
	},
	{
		name:       "south american",
		matches:    []string{"rio", "sao paulo", "buenos aires", "lima", "bogota", "santiago", "brazil", "argentina", "peru", "colombia", "chile"},
		baseTemp:   24,
		spread:     6,
		conditions: []string{"warm sunshine", "partly cloudy", "brief rain showers", "humid"},
	},
	{
		name:       "oceanic",
		matches:    []string{"sydney", "melbourne", "auckland", "wellington", "brisbane", "australia", "new zealand"},
		baseTemp:   20,
		spread:     7,
		conditions: []string{"sea breeze and sunshine", "partly cloudy", "passing showers", "clear skies"},
	},
}

// fallback covers anything the bucket lists miss.
var fallback = region{
	name:       "temperate",
	baseTemp:   18,
	spread:     8,
	conditions: []string{"partly cloudy", "clear skies", "light rain", "overcast"},
}

// Oracle synthesizes weather readings. Safe for concurrent use.
type Oracle struct {
	mu  sync.Mutex
	rng *rand.Rand
	now func() time.Time
}

// New returns an Oracle seeded with seed. The same seed produces the same
// sequence of readings, which keeps tests reproducible.
func New(seed int64) *Oracle {
	return &Oracle{
		rng: rand.New(rand.NewSource(seed)),
		now: time.Now,
	}
}

// NewWithClock returns an Oracle with an injected clock, for tests that
// assert on the time-of-day condition prefix.
func NewWithClock(seed int64, now func() time.Time) *Oracle {
	o := New(seed)
	o.now = now
	return o
}

// ReadingFor fabricates a weather reading for the named place. Every input
// produces a reading; unrecognized places fall into a generic temperate
// bucket rather than failing.
func (o *Oracle) ReadingFor(place string) Reading {
	r := bucketFor(place)

	o.mu.Lock()
	temp := r.baseTemp + (o.rng.Float64()*2-1)*r.spread
	feels := temp + (o.rng.Float64()*4 - 2)
	humidity := 40 + o.rng.Intn(50)
	wind := 1 + o.rng.Float64()*9
	condition := r.conditions[o.rng.Intn(len(r.conditions))]
	o.mu.Unlock()

	// Cosmetic time-of-day prefix; midday readings stay unprefixed.
	switch hour := o.now().Hour(); {
	case hour >= 5 && hour < 11:
		condition = "Morning " + condition
	case hour >= 18 && hour < 23:
		condition = "Evening " + condition
	}

	return Reading{
		Location:    place,
		Temperature: round1(temp),
		FeelsLike:   round1(feels),
		Description: condition,
		Humidity:    humidity,
		WindSpeed:   round1(wind),
	}
}

// bucketFor assigns a place name to its climate bucket via case-insensitive
// substring matching.
func bucketFor(place string) region {
	lower := strings.ToLower(place)
	for _, r := range regions {
		for _, m := range r.matches {
			if strings.Contains(lower, m) {
				return r
			}
		}
	}
	return fallback
}

// PackingList derives packing suggestions from a reading using fixed
// temperature and condition thresholds. Deterministic for a given reading.
func PackingList(r Reading) []string {
	var items []string

	switch {
	case r.Temperature < 10:
		items = append(items,
			"Warm jacket or coat",
			"Layers: sweaters and long sleeves",
			"Gloves and a warm hat",
		)
	case r.Temperature < 20:
		items = append(items,
			"Light jacket or cardigan for evenings",
			"Mix of short and long sleeves",
			"Comfortable closed shoes",
		)
	default:
		items = append(items,
			"Light, breathable clothing",
			"Sunglasses and a sun hat",
			"Sunscreen SPF 30+",
		)
	}

	desc := strings.ToLower(r.Description)
	if strings.Contains(desc, "rain") || strings.Contains(desc, "shower") || strings.Contains(desc, "thunderstorm") || strings.Contains(desc, "drizzle") {
		items = append(items, "Compact umbrella or rain jacket", "Waterproof shoes")
	}
	if strings.Contains(desc, "snow") {
		items = append(items, "Insulated waterproof boots")
	}
	if r.Humidity >= 75 {
		items = append(items, "Quick-dry fabrics for the humidity")
	}

	return items
}

// ActivityFit derives weather-appropriate activity advice from a reading.
// Deterministic for a given reading.
func ActivityFit(r Reading) []string {
	desc := strings.ToLower(r.Description)
	wet := strings.Contains(desc, "rain") || strings.Contains(desc, "shower") || strings.Contains(desc, "thunderstorm") || strings.Contains(desc, "snow")

	switch {
	case wet:
		return []string{
			"Good day for museums and galleries",
			"Browse covered markets or arcades",
			"Long lunch at a local favourite",
		}
	case r.Temperature >= 18:
		return []string{
			"Great conditions for walking tours",
			"Outdoor dining and rooftop views",
			"Parks and waterfront strolls",
		}
	default:
		return []string{
			"Brisk walking weather — bring a layer",
			"Mix indoor sights with short outdoor stretches",
			"Warm up in a café between stops",
		}
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
