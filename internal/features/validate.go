package features

import (
	"strings"

	"rent-predictor/internal/models"
)

// Listing is a fully validated listing with room counts and square footage
// already bucketed. It is never mutated after construction.
type Listing struct {
	Amenities   string // empty means absent
	PetsAllowed string // empty means absent
	City        City
	State       State // empty means absent

	BathroomsBucket  int
	BedroomsBucket   int
	SquareFeetBucket int

	Fee       int
	HasPhoto  int
	Latitude  float64
	Longitude float64
}

// NewListing validates and buckets a raw request. City and state outside
// their vocabularies fail with a ValidationError, as does any absent
// required numeric; a numeric that is present but unparseable never fails,
// it degrades to its training-time fallback bucket instead.
func NewListing(req *models.ListingRequest) (*Listing, error) {
	city, err := ParseCity(req.Cityname)
	if err != nil {
		return nil, err
	}

	state, err := ParseState(req.State)
	if err != nil {
		return nil, err
	}

	if err := checkRequired(req); err != nil {
		return nil, err
	}

	return &Listing{
		Amenities:        strings.TrimSpace(req.Amenities),
		PetsAllowed:      strings.TrimSpace(req.PetsAllowed),
		City:             city,
		State:            state,
		BathroomsBucket:  BucketBathrooms(req.Bathrooms),
		BedroomsBucket:   BucketBedrooms(req.Bedrooms),
		SquareFeetBucket: BucketSquareFeet(req.SquareFeet),
		Fee:              *req.Fee,
		HasPhoto:         *req.HasPhoto,
		Latitude:         *req.Latitude,
		Longitude:        *req.Longitude,
	}, nil
}

func checkRequired(req *models.ListingRequest) error {
	switch {
	case !req.Bathrooms.Present:
		return &ValidationError{Field: "bathrooms", Message: "bathrooms is required"}
	case !req.Bedrooms.Present:
		return &ValidationError{Field: "bedrooms", Message: "bedrooms is required"}
	case req.Fee == nil:
		return &ValidationError{Field: "fee", Message: "fee is required"}
	case req.HasPhoto == nil:
		return &ValidationError{Field: "has_photo", Message: "has_photo is required"}
	case !req.SquareFeet.Present:
		return &ValidationError{Field: "square_feet", Message: "square_feet is required"}
	case req.Latitude == nil:
		return &ValidationError{Field: "latitude", Message: "latitude is required"}
	case req.Longitude == nil:
		return &ValidationError{Field: "longitude", Message: "longitude is required"}
	}
	return nil
}
