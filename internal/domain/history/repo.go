package history

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines persistence operations for medical history entries,
// scoped to the owning user.
type Repository interface {
	Create(ctx context.Context, c *Condition) error
	Delete(ctx context.Context, userID string, id uuid.UUID) error
	ListByUser(ctx context.Context, userID string, limit, offset int) ([]*Condition, int, error)
}
