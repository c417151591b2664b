package handlers

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"rent-predictor/internal/features"
	"rent-predictor/internal/ml"
	"rent-predictor/internal/models"
	"rent-predictor/internal/prediction"
)

// PredictHandler handles prediction requests.
type PredictHandler struct {
	service *prediction.Service
}

// NewPredictHandler creates a new prediction handler
func NewPredictHandler(service *prediction.Service) *PredictHandler {
	return &PredictHandler{service: service}
}

// Predict runs the prediction pipeline for a posted listing. Failure classes
// map to distinct statuses so operators can tell bad input from a model
// problem from a storage outage.
func (h *PredictHandler) Predict(c *gin.Context) {
	var req models.ListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	result, err := h.service.Predict(c.Request.Context(), &req)
	if err == nil {
		c.JSON(http.StatusOK, result)
		return
	}

	var validationErr *features.ValidationError
	var inferenceErr *ml.InferenceError
	var persistenceErr *prediction.PersistenceError

	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": validationErr.Message,
			"field": validationErr.Field,
		})
	case errors.As(err, &inferenceErr):
		log.Printf("Model inference failed: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
	case errors.As(err, &persistenceErr):
		// The prediction itself succeeded; return it alongside the failure
		// so the caller still gets the price.
		log.Printf("Prediction computed but not saved: %v", err)
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error":               "prediction could not be saved",
			"predicted_price":     persistenceErr.Result.PredictedPrice,
			"predicted_log_price": persistenceErr.Result.PredictedLogPrice,
		})
	default:
		log.Printf("Prediction failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

// Health returns a static liveness payload.
func (h *PredictHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"time":   time.Now(),
	})
}
