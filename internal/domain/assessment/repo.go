package assessment

import (
	"context"

	"github.com/vineland/vsms-api/internal/domain/archive"
)

// Store is the persistence collaborator. Submit must only report success
// on a genuine acknowledgment; FetchAll must tolerate an empty store.
type Store interface {
	Submit(ctx context.Context, rec archive.StoredRecord) error
	FetchAll(ctx context.Context) ([]archive.StoredRecord, error)
}
