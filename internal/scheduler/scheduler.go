package scheduler

import (
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"

	"rent-predictor/internal/config"
	"rent-predictor/internal/snapshot"
)

// Scheduler runs the daily prediction snapshot job.
type Scheduler struct {
	cron      *cron.Cron
	snapshot  *snapshot.Service
	config    *config.Config
	isRunning bool
}

// NewScheduler creates a new scheduler
func NewScheduler(db *gorm.DB, cfg *config.Config) *Scheduler {
	return &Scheduler{
		cron:     cron.New(),
		snapshot: snapshot.NewService(db),
		config:   cfg,
	}
}

// Start starts the scheduler
func (s *Scheduler) Start() error {
	if !s.config.Snapshot.DailyEnabled {
		log.Println("Scheduler: Daily snapshot is disabled in configuration")
		return nil
	}

	cronSpec := s.parseDailyRunTime(s.config.Snapshot.DailyTime)

	_, err := s.cron.AddFunc(cronSpec, func() {
		log.Println("Scheduler: Starting daily snapshot job...")
		if err := s.snapshot.CreateDailySnapshot(time.Now()); err != nil {
			log.Printf("Scheduler: Daily snapshot failed: %v", err)
		} else {
			log.Println("Scheduler: Daily snapshot completed successfully")
		}
	})

	if err != nil {
		return err
	}

	s.cron.Start()
	s.isRunning = true
	log.Printf("Scheduler: Started with daily snapshot at %s (cron: %s)", s.config.Snapshot.DailyTime, cronSpec)

	return nil
}

// Stop stops the scheduler
func (s *Scheduler) Stop() {
	if s.isRunning {
		s.cron.Stop()
		s.isRunning = false
		log.Println("Scheduler: Stopped")
	}
}

// RunNow triggers the snapshot job immediately.
func (s *Scheduler) RunNow() error {
	return s.snapshot.CreateDailySnapshot(time.Now())
}

// parseDailyRunTime converts HH:MM format to cron specification
// Example: "02:00" -> "0 2 * * *" (run at 2:00 AM every day)
func (s *Scheduler) parseDailyRunTime(timeStr string) string {
	var hour, minute int
	n, _ := fmt.Sscanf(timeStr, "%d:%d", &hour, &minute)
	if n == 2 && hour >= 0 && hour < 24 && minute >= 0 && minute < 60 {
		return fmt.Sprintf("%d %d * * *", minute, hour)
	}

	log.Printf("Scheduler: Invalid daily_time %q, falling back to 02:00", timeStr)
	return "0 2 * * *"
}
