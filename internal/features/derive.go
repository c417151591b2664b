package features

import "strings"

// Derived holds the features computed from a validated listing. All of them
// are pure functions of the bucketed base fields.
type Derived struct {
	AmenityGroup        string
	PetsAllowedNum      int
	BathBedRatio        float64
	TotalRooms          float64
	BedSqftInteraction  float64
	BathSqftInteraction float64
}

// Derive computes every derived feature. It is total: every input maps to a
// value, falling back to "Other"/0 where the free text is unrecognized.
func Derive(l *Listing) Derived {
	bath := float64(l.BathroomsBucket)
	bed := float64(l.BedroomsBucket)
	sqft := float64(l.SquareFeetBucket)

	return Derived{
		AmenityGroup:        AmenityGroup(l.Amenities),
		PetsAllowedNum:      PetsAllowedNum(l.PetsAllowed),
		BathBedRatio:        bath / (bed + 1),
		TotalRooms:          bed + bath,
		BedSqftInteraction:  bed * sqft,
		BathSqftInteraction: bath * sqft,
	}
}

// AmenityGroup collapses free-text amenities into the small category set the
// model knows. Keyword matching is case-sensitive on the training keywords.
func AmenityGroup(text string) string {
	hasParking := strings.Contains(text, "Parking")
	hasGym := strings.Contains(text, "Gym")
	hasPool := strings.Contains(text, "Pool")
	hasLaundry := strings.Contains(text, "Washer") ||
		strings.Contains(text, "Dryer") ||
		strings.Contains(text, "Laundry")
	hasStorage := strings.Contains(text, "Storage")

	switch {
	case hasParking && (hasGym || hasPool):
		return "Parking + Gym/Pool"
	case hasParking:
		return "Parking"
	case hasGym || hasPool:
		return "Gym/Pool"
	case hasLaundry:
		return "Laundry"
	case hasStorage:
		return "Storage"
	default:
		return "Other"
	}
}

var petsMapping = map[string]int{
	"no":   0,
	"yes":  1,
	"Cats": 1,
	"Dogs": 1,
}

// PetsAllowedNum encodes the free-text pet policy as 0/1. Absent and
// unrecognized values both encode as 0, matching the training labels.
func PetsAllowedNum(text string) int {
	return petsMapping[strings.TrimSpace(text)]
}
