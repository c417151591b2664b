package prediction

import (
	"context"
	"fmt"
	"log"
	"math"
	"time"

	"github.com/google/uuid"

	"rent-predictor/internal/database"
	"rent-predictor/internal/features"
	"rent-predictor/internal/ml"
	"rent-predictor/internal/models"
)

// Result is the successful outcome of a prediction request.
type Result struct {
	PredictedPrice    float64 `json:"predicted_price"`
	PredictedLogPrice float64 `json:"predicted_log_price"`
	SavedID           string  `json:"saved_id"`
}

// PersistenceError reports a prediction that was computed but could not be
// saved: the inference result is still attached so callers can decide to
// surface it despite the storage failure.
type PersistenceError struct {
	Result *Result
	Err    error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("failed to save prediction: %v", e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// Service sequences a prediction request: validation, feature derivation,
// geo clustering, price inference, persistence. Each step short-circuits on
// failure; nothing already persisted is rolled back.
type Service struct {
	cluster ml.ClusterModel
	price   ml.PriceModel
	store   database.PredictionStore
}

// NewService wires the orchestrator with its collaborators. The models are
// read-only after load and the store handles its own synchronization, so a
// single Service serves concurrent requests.
func NewService(cluster ml.ClusterModel, price ml.PriceModel, store database.PredictionStore) *Service {
	return &Service{
		cluster: cluster,
		price:   price,
		store:   store,
	}
}

// Predict runs the full pipeline for one listing.
func (s *Service) Predict(ctx context.Context, req *models.ListingRequest) (*Result, error) {
	listing, err := features.NewListing(req)
	if err != nil {
		return nil, err
	}

	derived := features.Derive(listing)

	geoCluster, err := s.cluster.Predict(listing.Latitude, listing.Longitude)
	if err != nil {
		return nil, err
	}

	row := features.BuildVector(listing, derived, geoCluster)
	logPrice, err := s.price.Predict(row)
	if err != nil {
		return nil, err
	}

	// Inverse of the log1p transform applied during training.
	price := math.Expm1(logPrice)

	rec := newRecord(listing, derived, geoCluster, logPrice, price)
	if err := s.store.InsertPrediction(ctx, rec); err != nil {
		return nil, &PersistenceError{
			Result: &Result{PredictedPrice: price, PredictedLogPrice: logPrice},
			Err:    err,
		}
	}

	log.Printf("Prediction saved: id=%s city=%s cluster=%d price=%.2f",
		rec.ID, listing.City, geoCluster, price)

	return &Result{
		PredictedPrice:    price,
		PredictedLogPrice: logPrice,
		SavedID:           rec.ID,
	}, nil
}

func newRecord(l *features.Listing, d features.Derived, geoCluster int, logPrice, price float64) *models.PredictionRecord {
	return &models.PredictionRecord{
		ID:                  uuid.NewString(),
		Amenities:           l.Amenities,
		PetsAllowed:         l.PetsAllowed,
		Cityname:            string(l.City),
		State:               string(l.State),
		BathroomsBucket:     l.BathroomsBucket,
		BedroomsBucket:      l.BedroomsBucket,
		SquareFeetBucket:    l.SquareFeetBucket,
		Fee:                 l.Fee,
		HasPhoto:            l.HasPhoto,
		Latitude:            l.Latitude,
		Longitude:           l.Longitude,
		AmenityGroup:        d.AmenityGroup,
		PetsAllowedNum:      d.PetsAllowedNum,
		BathBedRatio:        d.BathBedRatio,
		TotalRooms:          d.TotalRooms,
		BedSqftInteraction:  d.BedSqftInteraction,
		BathSqftInteraction: d.BathSqftInteraction,
		GeoCluster:          geoCluster,
		PredictedLogPrice:   logPrice,
		PredictedPrice:      price,
		CreatedAt:           time.Now().UTC(),
	}
}
