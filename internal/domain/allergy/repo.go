package allergy

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines persistence operations for allergies, scoped to the
// owning user.
type Repository interface {
	Create(ctx context.Context, a *Allergy) error
	Delete(ctx context.Context, userID string, id uuid.UUID) error
	ListByUser(ctx context.Context, userID string, limit, offset int) ([]*Allergy, int, error)
}
