package session

import (
	"testing"
	"time"

	"github.com/Geetheshwar420/RandomWalk/internal/model"
)

func TestManager_PutGetClear(t *testing.T) {
	m := NewManager(time.Hour)
	id := m.NewID()

	if _, ok := m.Get(id); ok {
		t.Fatal("expected no series for fresh session")
	}

	m.Put(id, model.Series{{Time: 0, Price: 100}})
	s, ok := m.Get(id)
	if !ok || len(s) != 1 {
		t.Fatalf("expected stored series, got %v (ok=%v)", s, ok)
	}

	// Get returns a copy; mutating it must not leak back.
	s[0].Price = 0
	s2, _ := m.Get(id)
	if s2[0].Price != 100 {
		t.Error("stored series was mutated through a Get copy")
	}

	m.Clear(id)
	if _, ok := m.Get(id); ok {
		t.Error("expected no series after Clear")
	}
}

func TestManager_Prune(t *testing.T) {
	m := NewManager(time.Nanosecond)
	m.Put(m.NewID(), model.Series{{Time: 0, Price: 100}})
	time.Sleep(time.Millisecond)
	if n := m.Prune(); n != 1 {
		t.Errorf("expected 1 pruned session, got %d", n)
	}
	if m.Len() != 0 {
		t.Errorf("expected empty manager, got %d sessions", m.Len())
	}
}
