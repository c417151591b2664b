package database

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"rent-predictor/internal/models"
)

// PostgresStore persists prediction records to PostgreSQL.
type PostgresStore struct {
	db *sqlx.DB
}

func NewPostgresStore(host, port, user, password, dbname, sslmode string) (*PostgresStore, error) {
	connStr := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		host, port, user, password, dbname, sslmode)

	db, err := sqlx.Connect("postgres", connStr)
	if err != nil {
		return nil, err
	}

	return &PostgresStore{db: db}, nil
}

func (s *PostgresStore) Close() error {
	return s.db.Close()
}

// InitSchema creates the predictions table if it doesn't exist
func (s *PostgresStore) InitSchema() error {
	query := `
	CREATE TABLE IF NOT EXISTS predictions (
		id VARCHAR(36) PRIMARY KEY,

		-- Validated input (bucketed)
		amenities TEXT,
		pets_allowed VARCHAR(50),
		cityname VARCHAR(100) NOT NULL,
		state VARCHAR(10),
		bathrooms_bucket INTEGER NOT NULL,
		bedrooms_bucket INTEGER NOT NULL,
		square_feet_bucket INTEGER NOT NULL,
		fee INTEGER NOT NULL,
		has_photo INTEGER NOT NULL,
		latitude DOUBLE PRECISION NOT NULL,
		longitude DOUBLE PRECISION NOT NULL,

		-- Derived features
		amenity_group VARCHAR(50) NOT NULL,
		pets_allowed_num INTEGER NOT NULL,
		bath_bed_ratio DOUBLE PRECISION NOT NULL,
		total_rooms DOUBLE PRECISION NOT NULL,
		bed_sqft_interaction DOUBLE PRECISION NOT NULL,
		bath_sqft_interaction DOUBLE PRECISION NOT NULL,

		-- Outcome
		geo_cluster INTEGER NOT NULL,
		predicted_log_price DOUBLE PRECISION NOT NULL,
		predicted_price DOUBLE PRECISION NOT NULL,

		created_at TIMESTAMP NOT NULL DEFAULT NOW()
	);

	CREATE INDEX IF NOT EXISTS idx_predictions_created_at ON predictions(created_at DESC);
	CREATE INDEX IF NOT EXISTS idx_predictions_cityname ON predictions(cityname);
	CREATE INDEX IF NOT EXISTS idx_predictions_geo_cluster ON predictions(geo_cluster);
	`
	_, err := s.db.Exec(query)
	return err
}

// InsertPrediction saves a single prediction record.
func (s *PostgresStore) InsertPrediction(ctx context.Context, rec *models.PredictionRecord) error {
	const query = `
	INSERT INTO predictions (
		id,
		amenities, pets_allowed, cityname, state,
		bathrooms_bucket, bedrooms_bucket, square_feet_bucket,
		fee, has_photo, latitude, longitude,
		amenity_group, pets_allowed_num, bath_bed_ratio, total_rooms,
		bed_sqft_interaction, bath_sqft_interaction,
		geo_cluster, predicted_log_price, predicted_price,
		created_at
	)
	VALUES (
		:id,
		:amenities, :pets_allowed, :cityname, :state,
		:bathrooms_bucket, :bedrooms_bucket, :square_feet_bucket,
		:fee, :has_photo, :latitude, :longitude,
		:amenity_group, :pets_allowed_num, :bath_bed_ratio, :total_rooms,
		:bed_sqft_interaction, :bath_sqft_interaction,
		:geo_cluster, :predicted_log_price, :predicted_price,
		:created_at
	)`

	_, err := s.db.NamedExecContext(ctx, query, rec)
	if err != nil {
		return fmt.Errorf("failed to insert prediction: %w", err)
	}
	return nil
}
