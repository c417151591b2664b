package models

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// ListingRequest is the raw /predict payload as it arrives on the wire,
// before validation and bucketing. The required scalar fields are pointers
// so the validation layer can tell an absent field from a zero value.
type ListingRequest struct {
	Amenities   string `json:"amenities"`
	PetsAllowed string `json:"pets_allowed"`
	Cityname    string `json:"cityname"`
	State       string `json:"state"`

	Bathrooms  FlexNumber `json:"bathrooms"`
	Bedrooms   FlexNumber `json:"bedrooms"`
	SquareFeet FlexNumber `json:"square_feet"`
	Fee        *int       `json:"fee"`
	HasPhoto   *int       `json:"has_photo"`
	Latitude   *float64   `json:"latitude"`
	Longitude  *float64   `json:"longitude"`
}

// FlexNumber accepts a JSON number or a numeric string. A value that is
// present but unparseable (including null) is recorded as invalid so the
// bucketing layer can apply its training-time fallback; a field that never
// appeared stays Present=false and is rejected by validation.
type FlexNumber struct {
	Value   float64
	Valid   bool
	Present bool
}

func (n *FlexNumber) UnmarshalJSON(data []byte) error {
	n.Present = true

	if bytes.Equal(data, []byte("null")) {
		n.Value, n.Valid = 0, false
		return nil
	}

	var f float64
	if err := json.Unmarshal(data, &f); err == nil {
		n.Value, n.Valid = f, true
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if f, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
			n.Value, n.Valid = f, true
			return nil
		}
	}

	n.Value, n.Valid = 0, false
	return nil
}

func (n FlexNumber) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(n.Value)
}

// Num builds a parseable FlexNumber; mostly useful when constructing
// requests in code rather than from JSON.
func Num(v float64) FlexNumber {
	return FlexNumber{Value: v, Valid: true, Present: true}
}
