package driven

import (
	"context"

	"github.com/studium-labs/studium-cli/internal/core/domain"
)

// Connector fetches study notes from a data source.
// The filesystem connector reads .txt and .md files.
type Connector interface {
	// Type returns the connector type identifier.
	Type() string

	// Validate checks if the connector is properly configured.
	// For filesystem, this checks the path exists and is readable.
	Validate(ctx context.Context) error

	// Fetch reads all notes from the source.
	Fetch(ctx context.Context) ([]domain.Note, error)

	// Watch listens for changes at the source and re-emits each
	// changed note. Both channels close when ctx is cancelled.
	Watch(ctx context.Context) (<-chan domain.Note, <-chan error)

	// Close releases resources.
	Close() error
}
