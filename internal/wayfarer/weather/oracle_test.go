package weather

import (
	"strings"
	"testing"
	"time"
)

// noonClock pins the oracle's clock to midday so condition strings carry no
// time-of-day prefix.
func noonClock() time.Time {
	return time.Date(2026, 6, 15, 13, 0, 0, 0, time.UTC)
}

func TestBucketFor(t *testing.T) {
	tests := []struct {
		place string
		want  string
	}{
		{"Paris", "european"},
		{"trip to London next week", "european"},
		{"Tokyo", "east asian"},
		{"Bangkok", "tropical"},
		{"Dubai", "desert"},
		{"New York", "north american"},
		{"Sydney", "oceanic"},
		{"Reykjavik", "nordic"},
		{"Zermatt", "alpine"},
		{"Nowhereville", "temperate"},
		{"", "temperate"},
	}

	for _, tt := range tests {
		t.Run(tt.place, func(t *testing.T) {
			if got := bucketFor(tt.place).name; got != tt.want {
				t.Errorf("bucketFor(%q) = %q, want %q", tt.place, got, tt.want)
			}
		})
	}
}

func TestReadingStaysWithinBucketBounds(t *testing.T) {
	o := NewWithClock(1, noonClock)

	for i := 0; i < 200; i++ {
		r := o.ReadingFor("Bangkok")
		if r.Temperature < 30-4-0.05 || r.Temperature > 30+4+0.05 {
			t.Fatalf("tropical temperature %v outside base±spread", r.Temperature)
		}
		if r.Humidity < 40 || r.Humidity > 89 {
			t.Fatalf("humidity %d outside [40,89]", r.Humidity)
		}
		if r.WindSpeed < 1 || r.WindSpeed > 10 {
			t.Fatalf("wind speed %v outside [1,10]", r.WindSpeed)
		}
		if r.Description == "" {
			t.Fatal("empty condition string")
		}
		if r.Location != "Bangkok" {
			t.Fatalf("location %q, want Bangkok", r.Location)
		}
	}
}

func TestSeededOracleIsReproducible(t *testing.T) {
	a := NewWithClock(42, noonClock)
	b := NewWithClock(42, noonClock)

	for i := 0; i < 10; i++ {
		ra := a.ReadingFor("Paris")
		rb := b.ReadingFor("Paris")
		if ra != rb {
			t.Fatalf("readings diverged at call %d: %+v vs %+v", i, ra, rb)
		}
	}
}

func TestTimeOfDayPrefix(t *testing.T) {
	tests := []struct {
		name   string
		hour   int
		prefix string
	}{
		{"morning", 8, "Morning "},
		{"evening", 20, "Evening "},
		{"midday", 13, ""},
		{"late night", 2, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clock := func() time.Time {
				return time.Date(2026, 6, 15, tt.hour, 0, 0, 0, time.UTC)
			}
			o := NewWithClock(7, clock)
			r := o.ReadingFor("Paris")

			if tt.prefix == "" {
				if strings.HasPrefix(r.Description, "Morning ") || strings.HasPrefix(r.Description, "Evening ") {
					t.Errorf("unexpected time-of-day prefix in %q", r.Description)
				}
				return
			}
			if !strings.HasPrefix(r.Description, tt.prefix) {
				t.Errorf("description %q missing prefix %q", r.Description, tt.prefix)
			}
		})
	}
}

func TestPackingList(t *testing.T) {
	tests := []struct {
		name    string
		reading Reading
		want    string
		exclude string
	}{
		{
			name:    "cold weather packs warm clothing",
			reading: Reading{Temperature: 4, Description: "clear and crisp", Humidity: 50},
			want:    "Warm jacket or coat",
		},
		{
			name:    "mild weather packs layers",
			reading: Reading{Temperature: 15, Description: "partly cloudy", Humidity: 50},
			want:    "Light jacket or cardigan for evenings",
			exclude: "Warm jacket or coat",
		},
		{
			name:    "hot weather packs sun protection",
			reading: Reading{Temperature: 31, Description: "clear and hot", Humidity: 50},
			want:    "Sunscreen SPF 30+",
		},
		{
			name:    "rain appends waterproofing",
			reading: Reading{Temperature: 15, Description: "light rain", Humidity: 50},
			want:    "Compact umbrella or rain jacket",
		},
		{
			name:    "high humidity appends quick-dry",
			reading: Reading{Temperature: 31, Description: "humid sunshine", Humidity: 85},
			want:    "Quick-dry fabrics for the humidity",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items := PackingList(tt.reading)
			if len(items) == 0 {
				t.Fatal("empty packing list")
			}
			if !contains(items, tt.want) {
				t.Errorf("packing list %v missing %q", items, tt.want)
			}
			if tt.exclude != "" && contains(items, tt.exclude) {
				t.Errorf("packing list %v should not contain %q", items, tt.exclude)
			}
		})
	}
}

func TestActivityFit(t *testing.T) {
	wet := ActivityFit(Reading{Temperature: 25, Description: "tropical rain"})
	if !contains(wet, "Good day for museums and galleries") {
		t.Errorf("rainy reading should steer indoors, got %v", wet)
	}

	warm := ActivityFit(Reading{Temperature: 24, Description: "clear skies"})
	if !contains(warm, "Great conditions for walking tours") {
		t.Errorf("warm clear reading should steer outdoors, got %v", warm)
	}

	cool := ActivityFit(Reading{Temperature: 8, Description: "overcast"})
	if len(cool) == 0 {
		t.Error("cool reading produced no suggestions")
	}
}

func contains(items []string, want string) bool {
	for _, it := range items {
		if it == want {
			return true
		}
	}
	return false
}
