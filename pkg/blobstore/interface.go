package blobstore

import "context"

// Gateway is a key → blob store. Blobs are loaded and saved wholesale.
// Implementations are safe for concurrent use.
type Gateway interface {
	// Load returns the blob stored under name, or nil with no error when absent.
	Load(ctx context.Context, name string) ([]byte, error)

	// Save replaces the blob stored under name.
	Save(ctx context.Context, name string, data []byte) error

	// Close releases underlying resources.
	Close() error
}

// New creates a Gateway for the configured driver.
func New(cfg Config) (Gateway, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	switch cfg.Driver {
	case DriverSQLite:
		return NewSQLite(cfg.SQLitePath)
	default:
		return NewFile(cfg.DataDir)
	}
}
