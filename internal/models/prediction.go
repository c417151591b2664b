package models

import "time"

// PredictionRecord is the denormalized row persisted for every successful
// prediction: the validated input fields, the derived features, the resolved
// geo cluster and both price figures. Rows are insert-only.
type PredictionRecord struct {
	ID string `gorm:"type:varchar(36);primaryKey" json:"id" db:"id"`

	// Validated input (numeric fields are post-bucket)
	Amenities        string  `gorm:"type:text" json:"amenities,omitempty" db:"amenities"`
	PetsAllowed      string  `gorm:"type:varchar(50)" json:"pets_allowed,omitempty" db:"pets_allowed"`
	Cityname         string  `gorm:"type:varchar(100);not null;index" json:"cityname" db:"cityname"`
	State            string  `gorm:"type:varchar(10)" json:"state,omitempty" db:"state"`
	BathroomsBucket  int     `gorm:"type:int;not null" json:"bathrooms_bucket" db:"bathrooms_bucket"`
	BedroomsBucket   int     `gorm:"type:int;not null" json:"bedrooms_bucket" db:"bedrooms_bucket"`
	SquareFeetBucket int     `gorm:"type:int;not null" json:"square_feet_bucket" db:"square_feet_bucket"`
	Fee              int     `gorm:"type:int;not null" json:"fee" db:"fee"`
	HasPhoto         int     `gorm:"type:int;not null" json:"has_photo" db:"has_photo"`
	Latitude         float64 `gorm:"type:double;not null" json:"latitude" db:"latitude"`
	Longitude        float64 `gorm:"type:double;not null" json:"longitude" db:"longitude"`

	// Derived features
	AmenityGroup        string  `gorm:"type:varchar(50);not null" json:"amenity_group" db:"amenity_group"`
	PetsAllowedNum      int     `gorm:"type:int;not null" json:"pets_allowed_num" db:"pets_allowed_num"`
	BathBedRatio        float64 `gorm:"type:double;not null" json:"bath_bed_ratio" db:"bath_bed_ratio"`
	TotalRooms          float64 `gorm:"type:double;not null" json:"total_rooms" db:"total_rooms"`
	BedSqftInteraction  float64 `gorm:"type:double;not null" json:"bed_sqft_interaction" db:"bed_sqft_interaction"`
	BathSqftInteraction float64 `gorm:"type:double;not null" json:"bath_sqft_interaction" db:"bath_sqft_interaction"`

	// Prediction outcome
	GeoCluster        int     `gorm:"type:int;not null;index" json:"geo_cluster" db:"geo_cluster"`
	PredictedLogPrice float64 `gorm:"type:double;not null" json:"predicted_log_price" db:"predicted_log_price"`
	PredictedPrice    float64 `gorm:"type:double;not null" json:"predicted_price" db:"predicted_price"`

	CreatedAt time.Time `gorm:"type:datetime;not null;index:idx_predictions_created_at,sort:desc" json:"created_at" db:"created_at"`
}

// TableName specifies the table name
func (PredictionRecord) TableName() string {
	return "predictions"
}
