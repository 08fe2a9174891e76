package downloadlog

// NoopStore is a no-op implementation used when no log path is configured.
type NoopStore struct{}

func NewNoopStore() *NoopStore { return &NoopStore{} }

func (n *NoopStore) Append(_, _ string) error    { return nil }
func (n *NoopStore) ReadAll() ([]Entry, error)   { return nil, nil }
func (n *NoopStore) Close() error                { return nil }
