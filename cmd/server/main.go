package main

import (
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Geetheshwar420/RandomWalk/internal/config"
	"github.com/Geetheshwar420/RandomWalk/internal/downloadlog"
	"github.com/Geetheshwar420/RandomWalk/internal/scheduler"
	"github.com/Geetheshwar420/RandomWalk/internal/server"
	"github.com/Geetheshwar420/RandomWalk/internal/session"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("[INFO] RandomWalk starting...")

	// Load config
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}
	if cfg.AdminToken == "" {
		log.Println("[WARN] ADMIN_TOKEN not set, admin view is disabled")
	}

	// Init download log store
	var store downloadlog.Store
	switch {
	case cfg.Log.Disabled:
		log.Println("[WARN] download logging disabled by config")
		store = downloadlog.NewNoopStore()
	case cfg.Log.SQLitePath != "":
		ss, err := downloadlog.NewSQLiteStore(cfg.Log.SQLitePath)
		if err != nil {
			log.Fatalf("[FATAL] init sqlite download log: %v", err)
		}
		store = ss
	default:
		store = downloadlog.NewCSVStore(cfg.Log.CSVPath)
		log.Printf("[INFO] csv download log: %s", cfg.Log.CSVPath)
	}
	defer store.Close()

	// Init session manager
	sessions := session.NewManager(time.Duration(cfg.Session.TTLMinutes) * time.Minute)

	// Init scheduler
	sched := scheduler.NewScheduler(store, sessions)
	if err := sched.RegisterAll(cfg.Schedule.SummaryCron, cfg.Schedule.PruneCron); err != nil {
		log.Fatalf("[FATAL] register cron tasks: %v", err)
	}
	sched.Start()
	defer sched.Stop()

	// Init HTTP server
	srv := server.NewServer(cfg, store, sessions)
	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	log.Println("[INFO] RandomWalk is running. Press Ctrl+C to stop.")

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-errCh:
		log.Fatalf("[FATAL] http server: %v", err)
	case <-sigCh:
	}

	log.Println("[INFO] shutdown signal received, stopping...")
	if err := srv.Stop(); err != nil {
		log.Printf("[ERROR] shutdown: %v", err)
	}
	log.Println("[INFO] RandomWalk stopped")
}
