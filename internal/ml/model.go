package ml

import (
	"fmt"

	"rent-predictor/internal/features"
)

// The pre-fitted models are consumed as capabilities behind these interfaces.
// How an artifact is serialized and loaded is a loader concern; the pipeline
// only ever sees Predict.

// ClusterModel assigns a discrete geo-cluster id to a coordinate pair.
type ClusterModel interface {
	Predict(lat, lon float64) (int, error)
}

// PriceModel maps a finished feature row to a log price.
type PriceModel interface {
	Predict(row features.Vector) (float64, error)
}

// InferenceError reports a model that could not produce an output for its
// input. It is a request-level failure: other requests are unaffected.
type InferenceError struct {
	Model string
	Err   error
}

func (e *InferenceError) Error() string {
	return fmt.Sprintf("%s model inference failed: %v", e.Model, e.Err)
}

func (e *InferenceError) Unwrap() error {
	return e.Err
}
