package features

import (
	"fmt"
	"strings"
)

// City and State are the closed categorical vocabularies the price model was
// trained on. Values outside these lists must be rejected before inference:
// an untrained category would silently produce an unreliable prediction.

// City is a validated city name. The match is case-sensitive.
type City string

// State is a validated two-letter state code (or "Other"). Input is
// upper-cased before matching.
type State string

// Cities lists every city category, "Other" included.
var Cities = []City{
	"Other",
	"Dallas", "Denver", "Los Angeles", "Las Vegas", "Arlington", "Atlanta",
	"Charlotte", "Austin", "San Antonio", "Raleigh", "Richmond", "Alexandria",
	"Houston", "Cincinnati", "San Diego", "Tampa", "Colorado Springs",
	"Chicago", "Columbus", "Kansas City", "Omaha", "Cleveland", "Norfolk",
	"Boston", "Tucson", "Marietta", "Jersey City", "Greensboro",
}

// States lists every state category, "Other" included.
var States = []State{
	"Other", "TX", "CA", "VA", "NC", "CO", "FL", "MD", "OH", "MA",
	"GA", "NJ", "WA", "NV", "AZ", "MO", "LA", "IL", "PA", "TN", "NE",
}

var (
	citySet  = make(map[City]struct{}, len(Cities))
	stateSet = make(map[State]struct{}, len(States))
)

func init() {
	for _, c := range Cities {
		citySet[c] = struct{}{}
	}
	for _, s := range States {
		stateSet[s] = struct{}{}
	}
}

// ParseCity validates a raw city name. The value is required, trimmed, and
// matched case-sensitively against the city vocabulary.
func ParseCity(raw string) (City, error) {
	v := strings.TrimSpace(raw)
	if v == "" {
		return "", &ValidationError{Field: "cityname", Message: "cityname is required"}
	}
	c := City(v)
	if _, ok := citySet[c]; !ok {
		return "", &ValidationError{
			Field:   "cityname",
			Message: fmt.Sprintf("invalid city %q, allowed: %s", v, joinCities()),
		}
	}
	return c, nil
}

// ParseState validates an optional raw state value. Input is trimmed and
// upper-cased; an empty value is allowed and stays empty.
func ParseState(raw string) (State, error) {
	v := strings.ToUpper(strings.TrimSpace(raw))
	if v == "" {
		return "", nil
	}
	s := State(v)
	if _, ok := stateSet[s]; !ok {
		return "", &ValidationError{
			Field:   "state",
			Message: fmt.Sprintf("invalid state %q, allowed: %s", v, joinStates()),
		}
	}
	return s, nil
}

func joinCities() string {
	names := make([]string, len(Cities))
	for i, c := range Cities {
		names[i] = string(c)
	}
	return strings.Join(names, ", ")
}

func joinStates() string {
	codes := make([]string, len(States))
	for i, s := range States {
		codes[i] = string(s)
	}
	return strings.Join(codes, ", ")
}
