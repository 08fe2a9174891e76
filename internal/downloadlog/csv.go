package downloadlog

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

var header = []string{"timestamp", "name", "title"}

// CSVStore appends download events to a flat UTF-8 CSV file. Each call
// opens, appends, and closes the file, so the store is safe to inspect
// between calls. Appends from other processes are not excluded; the
// mutex only serializes writers within this process.
type CSVStore struct {
	path string
	mu   sync.Mutex
}

// NewCSVStore creates a CSVStore for the given file path. The file is
// not created until the first append.
func NewCSVStore(path string) *CSVStore {
	return &CSVStore{path: path}
}

func (s *CSVStore) Append(name, title string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil
	}
	if strings.TrimSpace(title) == "" {
		title = DefaultTitle
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create log dir: %w", err)
		}
	}

	// Header goes in exactly once, when the store comes into existence.
	writeHeader := false
	if fi, err := os.Stat(s.path); os.IsNotExist(err) || (err == nil && fi.Size() == 0) {
		writeHeader = true
	} else if err != nil {
		return fmt.Errorf("stat log file: %w", err)
	}

	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}

	w := csv.NewWriter(f)
	if writeHeader {
		if err := w.Write(header); err != nil {
			f.Close()
			return fmt.Errorf("write log header: %w", err)
		}
	}
	row := []string{time.Now().UTC().Format(time.RFC3339), name, title}
	if err := w.Write(row); err != nil {
		f.Close()
		return fmt.Errorf("write log row: %w", err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return fmt.Errorf("flush log: %w", err)
	}
	return f.Close()
}

func (s *CSVStore) ReadAll() ([]Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := os.Open(s.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse log file: %w", err)
	}

	var entries []Entry
	for i, rec := range records {
		if i == 0 {
			continue // header
		}
		if len(rec) < 3 {
			return nil, fmt.Errorf("log row %d: expected 3 columns, got %d", i, len(rec))
		}
		entries = append(entries, Entry{Timestamp: rec[0], Name: rec[1], Title: rec[2]})
	}
	return entries, nil
}

func (s *CSVStore) Close() error { return nil }
