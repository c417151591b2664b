package ml

import (
	"encoding/json"
	"fmt"
	"os"

	"rent-predictor/internal/features"
)

// Regressor is a pre-fitted additive price model: an intercept plus a
// coefficient per numeric column plus a weight per category of each
// categorical column. The artifact pins the exact column order it was
// trained with, and Predict enforces it.
type Regressor struct {
	featureNames []string
	intercept    float64
	coefficients map[string]float64
	categories   map[string]map[string]float64
}

type regressorArtifact struct {
	FeatureNames    []string                      `json:"feature_names"`
	Intercept       float64                       `json:"intercept"`
	Coefficients    map[string]float64            `json:"coefficients"`
	CategoryWeights map[string]map[string]float64 `json:"category_weights"`
}

// LoadRegressor reads a serialized regression artifact and checks that every
// declared column is scorable.
func LoadRegressor(path string) (*Regressor, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read regression artifact: %w", err)
	}

	var art regressorArtifact
	if err := json.Unmarshal(data, &art); err != nil {
		return nil, fmt.Errorf("failed to parse regression artifact %s: %w", path, err)
	}

	if len(art.FeatureNames) == 0 {
		return nil, fmt.Errorf("regression artifact %s declares no feature columns", path)
	}

	for _, name := range art.FeatureNames {
		_, numeric := art.Coefficients[name]
		_, categorical := art.CategoryWeights[name]
		if !numeric && !categorical {
			return nil, fmt.Errorf("regression artifact %s: column %q has neither a coefficient nor category weights", path, name)
		}
	}

	return &Regressor{
		featureNames: art.FeatureNames,
		intercept:    art.Intercept,
		coefficients: art.Coefficients,
		categories:   art.CategoryWeights,
	}, nil
}

// FeatureNames returns the column order the model was trained with.
func (r *Regressor) FeatureNames() []string {
	names := make([]string, len(r.featureNames))
	copy(names, r.featureNames)
	return names
}

// Predict scores a feature row and returns the predicted log price. The row
// must match the trained columns exactly, in order; any drift in names,
// order or value types fails with an InferenceError.
func (r *Regressor) Predict(row features.Vector) (float64, error) {
	if len(row) != len(r.featureNames) {
		return 0, &InferenceError{
			Model: "regression",
			Err:   fmt.Errorf("feature row has %d columns, model expects %d", len(row), len(r.featureNames)),
		}
	}

	sum := r.intercept
	for i, f := range row {
		if f.Name != r.featureNames[i] {
			return 0, &InferenceError{
				Model: "regression",
				Err:   fmt.Errorf("column %d is %q, model expects %q", i, f.Name, r.featureNames[i]),
			}
		}

		if w, ok := r.coefficients[f.Name]; ok {
			v, err := numericValue(f.Value)
			if err != nil {
				return 0, &InferenceError{
					Model: "regression",
					Err:   fmt.Errorf("column %q: %w", f.Name, err),
				}
			}
			sum += w * v
			continue
		}

		s, ok := f.Value.(string)
		if !ok {
			return 0, &InferenceError{
				Model: "regression",
				Err:   fmt.Errorf("column %q: expected a category string, got %T", f.Name, f.Value),
			}
		}
		// Unknown (but validated) categories score zero; the vocabulary
		// gates upstream guarantee they were seen in training.
		sum += r.categories[f.Name][s]
	}

	return sum, nil
}

func numericValue(v any) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	default:
		return 0, fmt.Errorf("expected a numeric value, got %T", v)
	}
}
