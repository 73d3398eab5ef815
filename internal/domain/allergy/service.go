package allergy

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

var validSeverities = map[string]bool{
	SeverityMild: true, SeverityModerate: true, SeveritySevere: true,
}

// Service provides business logic for the allergy domain.
type Service struct {
	allergies Repository
}

// NewService creates a new allergy domain service.
func NewService(allergies Repository) *Service {
	return &Service{allergies: allergies}
}

func (s *Service) Create(ctx context.Context, a *Allergy) error {
	if a.UserID == "" {
		return fmt.Errorf("user_id is required")
	}
	if a.Allergen == "" {
		return fmt.Errorf("allergen is required")
	}
	if a.Severity == "" {
		a.Severity = SeverityMild
	}
	if !validSeverities[a.Severity] {
		return fmt.Errorf("invalid severity: %s", a.Severity)
	}
	return s.allergies.Create(ctx, a)
}

func (s *Service) Delete(ctx context.Context, userID string, id uuid.UUID) error {
	return s.allergies.Delete(ctx, userID, id)
}

func (s *Service) List(ctx context.Context, userID string, limit, offset int) ([]*Allergy, int, error) {
	return s.allergies.ListByUser(ctx, userID, limit, offset)
}
