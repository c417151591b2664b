package handlers

import (
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"rent-predictor/internal/models"
	"rent-predictor/internal/scheduler"
)

// AdminHandler handles admin-related requests
type AdminHandler struct {
	db        *gorm.DB
	scheduler *scheduler.Scheduler
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(db *gorm.DB, sched *scheduler.Scheduler) *AdminHandler {
	return &AdminHandler{
		db:        db,
		scheduler: sched,
	}
}

// GetStats returns prediction volume statistics
func (h *AdminHandler) GetStats(c *gin.Context) {
	stats := make(map[string]interface{})

	var total int64
	h.db.Model(&models.PredictionRecord{}).Count(&total)

	last24h := time.Now().AddDate(0, 0, -1)
	var recent int64
	h.db.Model(&models.PredictionRecord{}).Where("created_at >= ?", last24h).Count(&recent)

	stats["predictions"] = map[string]interface{}{
		"total":    total,
		"last_24h": recent,
	}

	var snapshotCount int64
	h.db.Model(&models.PredictionSnapshot{}).Count(&snapshotCount)
	stats["snapshots"] = map[string]interface{}{
		"total": snapshotCount,
	}

	c.JSON(http.StatusOK, stats)
}

// GetRecentPredictions returns the latest prediction records
func (h *AdminHandler) GetRecentPredictions(c *gin.Context) {
	limitStr := c.DefaultQuery("limit", "50")
	limit, _ := strconv.Atoi(limitStr)

	var records []models.PredictionRecord
	err := h.db.Order("created_at DESC").Limit(limit).Find(&records).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"predictions": records,
		"count":       len(records),
	})
}

// RunSnapshot manually triggers the daily snapshot job
func (h *AdminHandler) RunSnapshot(c *gin.Context) {
	if h.scheduler == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error": "Scheduler not available (MySQL/GORM required)",
		})
		return
	}

	log.Println("Admin: Manual snapshot trigger requested")

	// Run in goroutine to avoid blocking
	go func() {
		if err := h.scheduler.RunNow(); err != nil {
			log.Printf("Admin: Manual snapshot failed: %v", err)
		} else {
			log.Println("Admin: Manual snapshot completed successfully")
		}
	}()

	c.JSON(http.StatusAccepted, gin.H{"message": "Snapshot job started"})
}
