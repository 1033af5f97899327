// Package effect turns raw impact-effect magnitudes into the screen-scaled
// parameters the visualization runs on.
package effect

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
)

// Record is the effect-magnitude record produced by the external effect
// calculator. Distances are in kilometres. Every field is optional.
type Record struct {
	EnergyMegatons          float64    `json:"energyMegatons,omitempty" jsonschema:"description=Released energy in megatons of TNT"`
	TotalDestructionZone    float64    `json:"totalDestructionZone,omitempty" jsonschema:"description=Total destruction radius in km"`
	SevereDestructionZone   float64    `json:"severeDestructionZone,omitempty" jsonschema:"description=Severe destruction radius in km"`
	ModerateDestructionZone float64    `json:"moderateDestructionZone,omitempty" jsonschema:"description=Moderate destruction radius in km"`
	Casualties              Casualties `json:"casualties,omitempty"`
	Earthquake              Earthquake `json:"earthquake,omitempty"`
	Tsunami                 Tsunami    `json:"tsunami,omitempty"`
	Fire                    Zone       `json:"fire,omitempty"`
	Dust                    Zone       `json:"dust,omitempty"`
}

// Casualties holds the estimated human toll.
type Casualties struct {
	Fatalities int64 `json:"fatalities,omitempty" jsonschema:"minimum=0"`
	Injuries   int64 `json:"injuries,omitempty" jsonschema:"minimum=0"`
}

// Earthquake describes the induced seismic event.
type Earthquake struct {
	Magnitude float64 `json:"magnitude,omitempty" jsonschema:"description=Richter magnitude"`
}

// Tsunami describes the induced wave.
type Tsunami struct {
	Height float64 `json:"height,omitempty" jsonschema:"description=Wave height in metres"`
}

// Zone is a circular secondary-effect area.
type Zone struct {
	Radius float64 `json:"radius,omitempty" jsonschema:"description=Radius in km"`
}

// Example returns the sample record used when no data file is available.
func Example() Record {
	return Record{
		EnergyMegatons:          15.5,
		TotalDestructionZone:    5.2,
		SevereDestructionZone:   12.8,
		ModerateDestructionZone: 25.6,
		Casualties:              Casualties{Fatalities: 125000, Injuries: 375000},
		Earthquake:              Earthquake{Magnitude: 7.8},
		Tsunami:                 Tsunami{Height: 45.2},
		Fire:                    Zone{Radius: 8.5},
		Dust:                    Zone{Radius: 18.3},
	}
}

// Decode parses a JSON record, either bare or wrapped as {"effects": {...}}.
// Missing, mistyped or non-finite fields decode as zero. An error is returned
// only when data is not a JSON object at all, together with a zero Record.
func Decode(data []byte) (Record, error) {
	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		return Record{}, fmt.Errorf("decode effect record: %w", err)
	}
	if inner, ok := doc["effects"].(map[string]any); ok {
		doc = inner
	}
	return Record{
		EnergyMegatons:          number(doc, "energyMegatons"),
		TotalDestructionZone:    number(doc, "totalDestructionZone"),
		SevereDestructionZone:   number(doc, "severeDestructionZone"),
		ModerateDestructionZone: number(doc, "moderateDestructionZone"),
		Casualties: Casualties{
			Fatalities: count(doc, "casualties", "fatalities"),
			Injuries:   count(doc, "casualties", "injuries"),
		},
		Earthquake: Earthquake{Magnitude: number(doc, "earthquake", "magnitude")},
		Tsunami:    Tsunami{Height: number(doc, "tsunami", "height")},
		Fire:       Zone{Radius: number(doc, "fire", "radius")},
		Dust:       Zone{Radius: number(doc, "dust", "radius")},
	}, nil
}

// LoadFile reads and decodes the record stored at path.
func LoadFile(path string) (Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Record{}, fmt.Errorf("read effect record: %w", err)
	}
	return Decode(data)
}

// LoadFileOr loads path, returning fallback when path is empty or unreadable.
// The error reports why fallback was used; callers usually log and carry on.
func LoadFileOr(path string, fallback Record) (Record, error) {
	if path == "" {
		return fallback, nil
	}
	rec, err := LoadFile(path)
	if err != nil {
		return fallback, err
	}
	return rec, nil
}

// number walks nested objects along keys and returns the numeric leaf, or 0.
func number(doc map[string]any, keys ...string) float64 {
	var cur any = doc
	for _, k := range keys {
		m, ok := cur.(map[string]any)
		if !ok {
			return 0
		}
		cur = m[k]
	}

	var f float64
	switch v := cur.(type) {
	case float64:
		f = v
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0
		}
		f = parsed
	default:
		return 0
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

// count is number truncated to an integer and clamped to the int64 range.
func count(doc map[string]any, keys ...string) int64 {
	f := math.Trunc(number(doc, keys...))
	switch {
	case f >= math.MaxInt64:
		return math.MaxInt64
	case f <= math.MinInt64:
		return math.MinInt64
	}
	return int64(f)
}
