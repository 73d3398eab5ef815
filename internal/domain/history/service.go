package history

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

var validStatuses = map[string]bool{
	StatusOngoing: true, StatusResolved: true, StatusChronic: true,
}

// Service provides business logic for the medical history domain.
type Service struct {
	conditions Repository
}

// NewService creates a new medical history service.
func NewService(conditions Repository) *Service {
	return &Service{conditions: conditions}
}

func (s *Service) Create(ctx context.Context, c *Condition) error {
	if c.UserID == "" {
		return fmt.Errorf("user_id is required")
	}
	if c.ConditionName == "" {
		return fmt.Errorf("condition_name is required")
	}
	if c.Status == "" {
		c.Status = StatusOngoing
	}
	if !validStatuses[c.Status] {
		return fmt.Errorf("invalid status: %s", c.Status)
	}
	return s.conditions.Create(ctx, c)
}

func (s *Service) Delete(ctx context.Context, userID string, id uuid.UUID) error {
	return s.conditions.Delete(ctx, userID, id)
}

func (s *Service) List(ctx context.Context, userID string, limit, offset int) ([]*Condition, int, error) {
	return s.conditions.ListByUser(ctx, userID, limit, offset)
}
