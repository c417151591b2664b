package features

import "rent-predictor/internal/models"

// Bucketing replaces raw continuous values with the ordinal categories used
// when the price model was trained. Unparseable input does not fail the
// request: square_feet degrades to the -1 sentinel and room counts to the
// lowest bucket, matching the training-time preprocessing.

// BucketSquareFeet maps a raw square-footage value to its ordinal bucket.
func BucketSquareFeet(n models.FlexNumber) int {
	if !n.Valid {
		return -1
	}
	switch {
	case n.Value <= 500:
		return 0
	case n.Value <= 700:
		return 1
	case n.Value <= 900:
		return 2
	case n.Value <= 1100:
		return 3
	case n.Value <= 1300:
		return 4
	case n.Value <= 1500:
		return 5
	default:
		return 6
	}
}

// BucketBathrooms maps a raw bathroom count to its ordinal bucket.
func BucketBathrooms(n models.FlexNumber) int {
	if !n.Valid {
		return 1
	}
	switch {
	case n.Value <= 1:
		return 1
	case n.Value <= 2:
		return 2
	case n.Value <= 3:
		return 3
	case n.Value <= 4:
		return 4
	default:
		return 5
	}
}

// BucketBedrooms maps a raw bedroom count to its ordinal bucket.
func BucketBedrooms(n models.FlexNumber) int {
	if !n.Valid {
		return 1
	}
	switch {
	case n.Value <= 1:
		return 1
	case n.Value <= 2:
		return 2
	case n.Value <= 3:
		return 3
	case n.Value <= 4:
		return 4
	case n.Value <= 5:
		return 5
	case n.Value <= 6:
		return 6
	default:
		return 7
	}
}
