package features

// Feature is a single named column handed to the price model.
type Feature struct {
	Name  string
	Value any
}

// Vector is the ordered feature row the price model consumes. Column order
// and names must match the order the model was trained with; the model
// rejects a row that drifts.
type Vector []Feature

// Columns returns the column names in row order.
func (v Vector) Columns() []string {
	cols := make([]string, len(v))
	for i, f := range v {
		cols[i] = f.Name
	}
	return cols
}

// BuildVector assembles the model row in training column order from a
// validated listing, its derived features and the resolved geo cluster.
func BuildVector(l *Listing, d Derived, geoCluster int) Vector {
	return Vector{
		{Name: "fee", Value: l.Fee},
		{Name: "has_photo", Value: l.HasPhoto},
		{Name: "pets_allowed_num", Value: d.PetsAllowedNum},
		{Name: "cityname", Value: string(l.City)},
		{Name: "state", Value: string(l.State)},
		{Name: "geo_cluster", Value: geoCluster},
		{Name: "amenity_group", Value: d.AmenityGroup},
		{Name: "bath_bed_ratio", Value: d.BathBedRatio},
		{Name: "total_rooms", Value: d.TotalRooms},
		{Name: "bed_sqft_interaction", Value: d.BedSqftInteraction},
		{Name: "bath_sqft_interaction", Value: d.BathSqftInteraction},
		{Name: "longitude", Value: l.Longitude},
		{Name: "square_feet_bucket", Value: l.SquareFeetBucket},
		{Name: "latitude", Value: l.Latitude},
		{Name: "bathrooms_bucket", Value: l.BathroomsBucket},
		{Name: "bedrooms_bucket", Value: l.BedroomsBucket},
	}
}
