package downloadlog

import (
	"path/filepath"
	"testing"
)

func TestSQLiteStore_AppendReadAll(t *testing.T) {
	path := filepath.Join(t.TempDir(), "downloads.db")
	s, err := NewSQLiteStore(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer s.Close()

	if err := s.Append("alice", "First"); err != nil {
		t.Fatalf("append: %v", err)
	}
	if err := s.Append("  ", "ignored"); err != nil {
		t.Fatalf("append: %v", err)
	}
	if err := s.Append("bob", ""); err != nil {
		t.Fatalf("append: %v", err)
	}

	entries, err := s.ReadAll()
	if err != nil {
		t.Fatalf("read all: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Name != "alice" || entries[1].Name != "bob" {
		t.Errorf("entries out of order: %+v", entries)
	}
	if entries[1].Title != DefaultTitle {
		t.Errorf("blank title should fall back to %q, got %q", DefaultTitle, entries[1].Title)
	}
}
