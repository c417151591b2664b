package handlers_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rent-predictor/internal/features"
	"rent-predictor/internal/handlers"
	"rent-predictor/internal/models"
	"rent-predictor/internal/prediction"
)

type stubClusterModel struct{ id int }

func (s *stubClusterModel) Predict(lat, lon float64) (int, error) { return s.id, nil }

type stubPriceModel struct{ logPrice float64 }

func (s *stubPriceModel) Predict(row features.Vector) (float64, error) { return s.logPrice, nil }

type stubStore struct{ err error }

func (s *stubStore) InsertPrediction(_ context.Context, _ *models.PredictionRecord) error {
	return s.err
}

func (s *stubStore) Close() error { return nil }

func newTestRouter(storeErr error) *gin.Engine {
	gin.SetMode(gin.TestMode)

	svc := prediction.NewService(&stubClusterModel{id: 4}, &stubPriceModel{logPrice: 6.9}, &stubStore{err: storeErr})
	h := handlers.NewPredictHandler(svc)

	r := gin.New()
	r.GET("/health", h.Health)
	r.POST("/predict", h.Predict)
	return r
}

const validBody = `{
	"bathrooms": 1.5,
	"bedrooms": 2,
	"fee": 0,
	"has_photo": 1,
	"square_feet": 950,
	"latitude": 32.7,
	"longitude": -96.8,
	"cityname": "Dallas",
	"state": "TX",
	"amenities": "Parking,Pool",
	"pets_allowed": "yes"
}`

func TestPredictEndpoint(t *testing.T) {
	r := newTestRouter(nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/predict", strings.NewReader(validBody))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		PredictedPrice    float64 `json:"predicted_price"`
		PredictedLogPrice float64 `json:"predicted_log_price"`
		SavedID           string  `json:"saved_id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Positive(t, resp.PredictedPrice)
	assert.Equal(t, 6.9, resp.PredictedLogPrice)
	assert.NotEmpty(t, resp.SavedID)
}

func TestPredictEndpointRejectsUnknownCity(t *testing.T) {
	r := newTestRouter(nil)

	body := strings.Replace(validBody, "Dallas", "Nowhereville", 1)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/predict", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "cityname", resp["field"])
	assert.Contains(t, resp["error"], "Nowhereville")
}

func TestPredictEndpointRejectsMissingRequiredFields(t *testing.T) {
	r := newTestRouter(nil)

	// A payload carrying only the city must not reach the models or
	// produce a prediction at the default coordinates.
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/predict", strings.NewReader(`{"cityname":"Dallas"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "bathrooms", resp["field"])
	assert.NotContains(t, resp, "predicted_price")
}

func TestPredictEndpointSurfacesStorageOutage(t *testing.T) {
	r := newTestRouter(fmt.Errorf("connection refused"))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/predict", strings.NewReader(validBody))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusServiceUnavailable, w.Code)

	// The computed prediction still comes back even though it was not saved.
	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp, "predicted_price")
	assert.Contains(t, resp, "predicted_log_price")
	assert.NotContains(t, resp, "saved_id")
}

func TestPredictEndpointRejectsMalformedJSON(t *testing.T) {
	r := newTestRouter(nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/predict", strings.NewReader(`{"bathrooms":`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHealthEndpoint(t *testing.T) {
	r := newTestRouter(nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp["status"])
}
