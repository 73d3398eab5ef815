package profile

import (
	"context"
	"fmt"
)

var validBloodTypes = map[string]bool{
	"A+": true, "A-": true, "B+": true, "B-": true,
	"AB+": true, "AB-": true, "O+": true, "O-": true,
}

// Service provides business logic for user profiles.
type Service struct {
	profiles Repository
}

// NewService creates a new profile service.
func NewService(profiles Repository) *Service {
	return &Service{profiles: profiles}
}

func (s *Service) Get(ctx context.Context, userID string) (*Profile, error) {
	return s.profiles.Get(ctx, userID)
}

func (s *Service) Upsert(ctx context.Context, p *Profile) error {
	if p.UserID == "" {
		return fmt.Errorf("user_id is required")
	}
	if p.BloodType != nil && !validBloodTypes[*p.BloodType] {
		return fmt.Errorf("invalid blood_type: %s", *p.BloodType)
	}
	return s.profiles.Upsert(ctx, p)
}
