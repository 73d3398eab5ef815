package interaction

import "context"

// Repository defines persistence for detected interactions. The table is
// append-only; entries are never updated.
type Repository interface {
	Insert(ctx context.Context, in *Interaction) error
	ListByUser(ctx context.Context, userID string, limit, offset int) ([]*Interaction, int, error)
}
