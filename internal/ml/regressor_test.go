package ml

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"rent-predictor/internal/features"
)

func testRow() features.Vector {
	return features.Vector{
		{Name: "fee", Value: 0},
		{Name: "has_photo", Value: 1},
		{Name: "pets_allowed_num", Value: 1},
		{Name: "cityname", Value: "Dallas"},
		{Name: "state", Value: "TX"},
		{Name: "geo_cluster", Value: 1},
		{Name: "amenity_group", Value: "Parking + Gym/Pool"},
		{Name: "bath_bed_ratio", Value: 2.0 / 3.0},
		{Name: "total_rooms", Value: 4.0},
		{Name: "bed_sqft_interaction", Value: 4.0},
		{Name: "bath_sqft_interaction", Value: 4.0},
		{Name: "longitude", Value: -96.8},
		{Name: "square_feet_bucket", Value: 2},
		{Name: "latitude", Value: 32.7},
		{Name: "bathrooms_bucket", Value: 2},
		{Name: "bedrooms_bucket", Value: 2},
	}
}

func TestRegressorPredict(t *testing.T) {
	r, err := LoadRegressor("testdata/price_model.json")
	if err != nil {
		t.Fatalf("LoadRegressor: %v", err)
	}

	got, err := r.Predict(testRow())
	if err != nil {
		t.Fatalf("Predict: %v", err)
	}

	want := 6.0 + // intercept
		-0.0002*0 + 0.05*1 + 0.03*1 + // fee, has_photo, pets
		0.15 + 0.04 + // Dallas, TX
		0.01*1 + 0.09 + // geo_cluster, amenity group
		0.1*(2.0/3.0) + 0.08*4 + 0.02*4 + 0.015*4 +
		0.001*-96.8 + 0.12*2 + 0.002*32.7 + 0.06*2 + 0.07*2

	if math.Abs(got-want) > 1e-9 {
		t.Errorf("Predict = %v; want %v", got, want)
	}
}

func TestRegressorUnknownCategoryScoresZero(t *testing.T) {
	r, err := LoadRegressor("testdata/price_model.json")
	if err != nil {
		t.Fatalf("LoadRegressor: %v", err)
	}

	base := testRow()
	baseScore, err := r.Predict(base)
	if err != nil {
		t.Fatalf("Predict: %v", err)
	}

	// A validated city the artifact carries no weight for contributes 0.
	other := testRow()
	other[3].Value = "Tucson"
	otherScore, err := r.Predict(other)
	if err != nil {
		t.Fatalf("Predict: %v", err)
	}

	if math.Abs((baseScore-0.15)-otherScore) > 1e-9 {
		t.Errorf("unknown category score = %v; want %v", otherScore, baseScore-0.15)
	}
}

func TestRegressorRejectsColumnDrift(t *testing.T) {
	r, err := LoadRegressor("testdata/price_model.json")
	if err != nil {
		t.Fatalf("LoadRegressor: %v", err)
	}

	// Swapped columns
	swapped := testRow()
	swapped[0], swapped[1] = swapped[1], swapped[0]
	_, err = r.Predict(swapped)
	var infErr *InferenceError
	if !errors.As(err, &infErr) {
		t.Errorf("swapped columns error = %v; want InferenceError", err)
	}

	// Missing column
	short := testRow()[:15]
	if _, err := r.Predict(short); err == nil {
		t.Error("expected error for a short feature row")
	}

	// Wrong value type for a categorical column
	wrongType := testRow()
	wrongType[3].Value = 42
	if _, err := r.Predict(wrongType); err == nil {
		t.Error("expected error for a non-string category value")
	}

	// Wrong value type for a numeric column
	wrongNum := testRow()
	wrongNum[0].Value = "free"
	if _, err := r.Predict(wrongNum); err == nil {
		t.Error("expected error for a non-numeric fee value")
	}
}

func TestLoadRegressorRejectsUncoveredColumn(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.json")
	artifact := `{
		"feature_names": ["fee", "mystery"],
		"intercept": 1.0,
		"coefficients": {"fee": 0.1},
		"category_weights": {}
	}`
	if err := os.WriteFile(path, []byte(artifact), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadRegressor(path); err == nil {
		t.Error("expected error for a column with no coefficient or category weights")
	}
}
