package database

import (
	"context"

	"rent-predictor/internal/models"
)

// PredictionStore is the persistence collaborator for prediction records.
// The core only ever inserts single denormalized records; concurrency
// discipline is the backend's responsibility.
type PredictionStore interface {
	InsertPrediction(ctx context.Context, rec *models.PredictionRecord) error
	Close() error
}
