package models

import "time"

// PredictionSnapshot is a daily aggregate of prediction activity, written by
// the scheduled snapshot job for BI dashboards.
type PredictionSnapshot struct {
	ID         uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	SnapshotAt time.Time `gorm:"type:date;not null;uniqueIndex" json:"snapshot_at"`

	PredictionCount   int64   `gorm:"type:bigint;not null" json:"prediction_count"`
	AvgPredictedPrice float64 `gorm:"type:double;not null" json:"avg_predicted_price"`
	MinPredictedPrice float64 `gorm:"type:double;not null" json:"min_predicted_price"`
	MaxPredictedPrice float64 `gorm:"type:double;not null" json:"max_predicted_price"`
	AvgLogPrice       float64 `gorm:"type:double;not null" json:"avg_log_price"`

	CreatedAt time.Time `gorm:"type:datetime;not null;autoCreateTime" json:"created_at"`
}

// TableName specifies the table name
func (PredictionSnapshot) TableName() string {
	return "prediction_snapshots"
}
