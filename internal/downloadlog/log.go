package downloadlog

// Entry is one recorded chart download.
type Entry struct {
	Timestamp string // UTC, RFC 3339
	Name      string
	Title     string
}

// DefaultTitle is recorded when the user left the title blank.
const DefaultTitle = "Random Walk of Stock Price"

// Store persists download events. Appends are strictly append-only:
// prior entries are never rewritten or reordered.
type Store interface {
	// Append records one download. A name that is empty after trimming
	// is a silent no-op. A blank title is replaced with DefaultTitle.
	Append(name, title string) error
	// ReadAll returns every recorded entry in append order.
	ReadAll() ([]Entry, error)
	Close() error
}
