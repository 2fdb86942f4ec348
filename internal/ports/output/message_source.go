package output

import (
	"context"

	"polyglot/internal/domain/entities"
)

// MessageSource supplies additional messages merged into the catalog when it
// is built. Sources are read exactly once, at startup.
type MessageSource interface {
	ListMessages(ctx context.Context) ([]entities.Message, error)
}
