package profile

import "context"

// Repository defines persistence operations for user profiles.
type Repository interface {
	Get(ctx context.Context, userID string) (*Profile, error)
	Upsert(ctx context.Context, p *Profile) error
}
