package prescription

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// ErrNotFound is returned when a prescription does not exist or belongs to
// another user.
var ErrNotFound = errors.New("prescription not found")

// Repository defines persistence operations for prescriptions, scoped to
// the owning user.
type Repository interface {
	Create(ctx context.Context, p *Prescription) error
	GetByID(ctx context.Context, userID string, id uuid.UUID) (*Prescription, error)
	Delete(ctx context.Context, userID string, id uuid.UUID) error
	ListByUser(ctx context.Context, userID string, limit, offset int) ([]*Prescription, int, error)
	SaveExtraction(ctx context.Context, userID string, id uuid.UUID, medications []string) error
	MarkAnalyzed(ctx context.Context, userID string, id uuid.UUID, extractedText string) error
}
