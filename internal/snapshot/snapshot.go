package snapshot

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"rent-predictor/internal/models"
)

// Service aggregates prediction activity into daily snapshot rows for BI
// dashboards.
type Service struct {
	db *gorm.DB
}

// NewService creates a new snapshot service
func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

type dailyAggregate struct {
	PredictionCount   int64
	AvgPredictedPrice float64
	MinPredictedPrice float64
	MaxPredictedPrice float64
	AvgLogPrice       float64
}

// CreateDailySnapshot aggregates the predictions made on the given day and
// upserts the snapshot row for that date, so re-runs within a day are safe.
func (s *Service) CreateDailySnapshot(day time.Time) error {
	dayStart := day.UTC().Truncate(24 * time.Hour)
	dayEnd := dayStart.AddDate(0, 0, 1)

	var agg dailyAggregate
	err := s.db.Model(&models.PredictionRecord{}).
		Select(`COUNT(*) AS prediction_count,
			COALESCE(AVG(predicted_price), 0) AS avg_predicted_price,
			COALESCE(MIN(predicted_price), 0) AS min_predicted_price,
			COALESCE(MAX(predicted_price), 0) AS max_predicted_price,
			COALESCE(AVG(predicted_log_price), 0) AS avg_log_price`).
		Where("created_at >= ? AND created_at < ?", dayStart, dayEnd).
		Scan(&agg).Error
	if err != nil {
		return err
	}

	snap := &models.PredictionSnapshot{
		SnapshotAt:        dayStart,
		PredictionCount:   agg.PredictionCount,
		AvgPredictedPrice: agg.AvgPredictedPrice,
		MinPredictedPrice: agg.MinPredictedPrice,
		MaxPredictedPrice: agg.MaxPredictedPrice,
		AvgLogPrice:       agg.AvgLogPrice,
	}

	// Check if a snapshot already exists for this day
	var existing models.PredictionSnapshot
	result := s.db.Where("snapshot_at = ?", dayStart).First(&existing)

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return s.db.Create(snap).Error
	} else if result.Error != nil {
		return result.Error
	}

	snap.ID = existing.ID
	return s.db.Save(snap).Error
}
