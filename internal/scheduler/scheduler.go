package scheduler

import (
	"fmt"
	"log"

	"github.com/robfig/cron/v3"

	"github.com/Geetheshwar420/RandomWalk/internal/downloadlog"
	"github.com/Geetheshwar420/RandomWalk/internal/session"
)

// Scheduler manages the periodic housekeeping tasks.
type Scheduler struct {
	Cron     *cron.Cron
	Store    downloadlog.Store
	Sessions *session.Manager
}

// NewScheduler creates a new Scheduler.
func NewScheduler(store downloadlog.Store, sessions *session.Manager) *Scheduler {
	return &Scheduler{
		Cron:     cron.New(cron.WithSeconds()),
		Store:    store,
		Sessions: sessions,
	}
}

// RegisterAll registers the download summary and session prune tasks.
func (s *Scheduler) RegisterAll(summaryCron, pruneCron string) error {
	if _, err := s.Cron.AddFunc(summaryCron, s.summaryTask); err != nil {
		return fmt.Errorf("register summary task: %w", err)
	}
	if _, err := s.Cron.AddFunc(pruneCron, s.pruneTask); err != nil {
		return fmt.Errorf("register prune task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Println("[INFO] scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.Cron.Stop()
	log.Println("[INFO] scheduler stopped")
}

func (s *Scheduler) summaryTask() {
	entries, err := s.Store.ReadAll()
	if err != nil {
		log.Printf("[ERROR] download summary: %v", err)
		return
	}
	if len(entries) == 0 {
		log.Println("[INFO] download summary: no downloads recorded")
		return
	}
	last := entries[len(entries)-1]
	log.Printf("[INFO] download summary: %d downloads recorded, last at %s by %s",
		len(entries), last.Timestamp, last.Name)
}

func (s *Scheduler) pruneTask() {
	if n := s.Sessions.Prune(); n > 0 {
		log.Printf("[INFO] pruned %d idle sessions, %d remaining", n, s.Sessions.Len())
	}
}
