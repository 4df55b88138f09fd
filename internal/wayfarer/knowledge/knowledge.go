// Package knowledge holds the static per-destination suggestion tables used
// by the assistant's food and activity generators. The data ships embedded in
// the binary, is validated against a JSON Schema at load time, and is
// read-only afterwards. A destination that is missing from the tables is a
// normal "no data" result, never an error.
package knowledge

import (
	"embed"
	"fmt"
	"sort"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

//go:embed data/destinations.yaml
var dataFS embed.FS

//go:embed schema/destinations.schema.json
var schemaJSON string

// Restaurant tiers, in ascending price order.
const (
	TierBudget     = "budget"
	TierMidRange   = "mid_range"
	TierFineDining = "fine_dining"
)

// Destination is the curated suggestion set for one place.
type Destination struct {
	// Restaurants maps a price tier (budget / mid_range / fine_dining)
	// to suggestion strings.
	Restaurants map[string][]string `yaml:"restaurants"`
	// Attractions maps a category (landmarks / museums / outdoors / ...)
	// to suggestion strings.
	Attractions map[string][]string `yaml:"attractions"`
}

// Tables is the loaded, immutable destination knowledge base.
// All lookups are keyed by lower-cased destination name.
type Tables struct {
	destinations map[string]Destination
}

// Load parses and validates the embedded destination data. It is intended to
// be called once at process start; the returned Tables never changes.
func Load() (*Tables, error) {
	raw, err := dataFS.ReadFile("data/destinations.yaml")
	if err != nil {
		return nil, fmt.Errorf("knowledge: read embedded data: %w", err)
	}
	return parse(raw)
}

// parse decodes and validates a destinations document. Split from Load so
// tests can feed it arbitrary documents.
func parse(raw []byte) (*Tables, error) {
	// Validate the generic document shape first so schema violations surface
	// as one precise error instead of scattered decode failures.
	var doc any
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("knowledge: parse data: %w", err)
	}
	if err := validate(doc); err != nil {
		return nil, err
	}

	var dests map[string]Destination
	if err := yaml.Unmarshal(raw, &dests); err != nil {
		return nil, fmt.Errorf("knowledge: decode data: %w", err)
	}

	tables := &Tables{destinations: make(map[string]Destination, len(dests))}
	for name, d := range dests {
		tables.destinations[strings.ToLower(name)] = d
	}
	return tables, nil
}

// validate checks a decoded destinations document against the embedded schema.
func validate(doc any) error {
	schema, err := jsonschema.CompileString("destinations.schema.json", schemaJSON)
	if err != nil {
		return fmt.Errorf("knowledge: compile schema: %w", err)
	}
	if err := schema.Validate(doc); err != nil {
		return fmt.Errorf("knowledge: data does not match schema: %w", err)
	}
	return nil
}

// Has reports whether the tables contain any data for the destination.
func (t *Tables) Has(destination string) bool {
	_, ok := t.destinations[strings.ToLower(destination)]
	return ok
}

// Restaurants returns the restaurant suggestions for the destination, keyed
// by price tier. Returns nil when the destination is unknown.
func (t *Tables) Restaurants(destination string) map[string][]string {
	d, ok := t.destinations[strings.ToLower(destination)]
	if !ok {
		return nil
	}
	return d.Restaurants
}

// Attractions returns the attraction suggestions for the destination, keyed
// by category. Returns nil when the destination is unknown.
func (t *Tables) Attractions(destination string) map[string][]string {
	d, ok := t.destinations[strings.ToLower(destination)]
	if !ok {
		return nil
	}
	return d.Attractions
}

// Destinations returns the sorted list of destination keys the tables cover.
func (t *Tables) Destinations() []string {
	names := make([]string, 0, len(t.destinations))
	for name := range t.destinations {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
