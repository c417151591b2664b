package ml

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
)

// KMeans is a pre-fitted clustering model reduced to what inference needs:
// the centroid list. Predict assigns the nearest centroid's index.
type KMeans struct {
	centroids [][2]float64 // lat, lon
}

type kmeansArtifact struct {
	Centroids [][]float64 `json:"centroids"`
}

// LoadKMeans reads a serialized clustering artifact. The artifact is owned by
// the training pipeline; this loader only checks that it is usable.
func LoadKMeans(path string) (*KMeans, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read clustering artifact: %w", err)
	}

	var art kmeansArtifact
	if err := json.Unmarshal(data, &art); err != nil {
		return nil, fmt.Errorf("failed to parse clustering artifact %s: %w", path, err)
	}

	if len(art.Centroids) == 0 {
		return nil, fmt.Errorf("clustering artifact %s has no centroids", path)
	}

	centroids := make([][2]float64, len(art.Centroids))
	for i, c := range art.Centroids {
		if len(c) != 2 {
			return nil, fmt.Errorf("clustering artifact %s: centroid %d has %d coordinates, want 2", path, i, len(c))
		}
		centroids[i] = [2]float64{c[0], c[1]}
	}

	return &KMeans{centroids: centroids}, nil
}

// Predict returns the index of the centroid nearest to (lat, lon).
func (m *KMeans) Predict(lat, lon float64) (int, error) {
	if !isFinite(lat) || !isFinite(lon) {
		return 0, &InferenceError{
			Model: "clustering",
			Err:   fmt.Errorf("malformed coordinates (%v, %v)", lat, lon),
		}
	}

	best := 0
	bestDist := math.MaxFloat64
	for i, c := range m.centroids {
		dLat := lat - c[0]
		dLon := lon - c[1]
		dist := dLat*dLat + dLon*dLon
		if dist < bestDist {
			best = i
			bestDist = dist
		}
	}

	return best, nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
