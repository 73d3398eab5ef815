package medication

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines persistence operations for medications. Every query is
// scoped to the owning user.
type Repository interface {
	Create(ctx context.Context, m *Medication) error
	GetByID(ctx context.Context, userID string, id uuid.UUID) (*Medication, error)
	Update(ctx context.Context, m *Medication) error
	Delete(ctx context.Context, userID string, id uuid.UUID) error
	ListByUser(ctx context.Context, userID string, limit, offset int) ([]*Medication, int, error)
	// ListActiveNames returns the names of the user's active medications,
	// oldest first. The interaction scanner builds its candidate set from
	// this list.
	ListActiveNames(ctx context.Context, userID string) ([]string, error)
}
