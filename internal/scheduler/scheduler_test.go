package scheduler

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/Geetheshwar420/RandomWalk/internal/downloadlog"
	"github.com/Geetheshwar420/RandomWalk/internal/model"
	"github.com/Geetheshwar420/RandomWalk/internal/session"
)

func TestRegisterAll(t *testing.T) {
	s := NewScheduler(downloadlog.NewNoopStore(), session.NewManager(time.Hour))
	if err := s.RegisterAll("0 0 9 * * *", "0 */30 * * * *"); err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := s.RegisterAll("not a cron expr", "0 */30 * * * *"); err == nil {
		t.Error("expected error for invalid cron expression")
	}
}

func TestTasksRun(t *testing.T) {
	store := downloadlog.NewCSVStore(filepath.Join(t.TempDir(), "downloads.csv"))
	if err := store.Append("alice", "Chart"); err != nil {
		t.Fatalf("seed: %v", err)
	}
	sessions := session.NewManager(time.Nanosecond)
	sessions.Put(sessions.NewID(), model.Series{{Time: 0, Price: 100}})
	time.Sleep(time.Millisecond)

	s := NewScheduler(store, sessions)
	s.summaryTask()
	s.pruneTask()
	if sessions.Len() != 0 {
		t.Errorf("expected prune task to drop idle sessions, %d remain", sessions.Len())
	}
}
