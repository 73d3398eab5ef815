package medication

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// MaxNameLength caps medication names everywhere they enter the system.
const MaxNameLength = 200

var validStatuses = map[string]bool{
	StatusActive: true, StatusCompleted: true, StatusDiscontinued: true,
}

// Service provides business logic for the medication domain.
type Service struct {
	meds Repository
}

// NewService creates a new medication domain service.
func NewService(meds Repository) *Service {
	return &Service{meds: meds}
}

func (s *Service) Create(ctx context.Context, m *Medication) error {
	if m.UserID == "" {
		return fmt.Errorf("user_id is required")
	}
	if m.MedicationName == "" {
		return fmt.Errorf("medication_name is required")
	}
	if len(m.MedicationName) > MaxNameLength {
		return fmt.Errorf("medication_name exceeds %d characters", MaxNameLength)
	}
	if m.Status == "" {
		m.Status = StatusActive
	}
	if !validStatuses[m.Status] {
		return fmt.Errorf("invalid status: %s", m.Status)
	}
	if m.StartDate.IsZero() {
		return fmt.Errorf("start_date is required")
	}
	return s.meds.Create(ctx, m)
}

func (s *Service) Get(ctx context.Context, userID string, id uuid.UUID) (*Medication, error) {
	return s.meds.GetByID(ctx, userID, id)
}

func (s *Service) Update(ctx context.Context, m *Medication) error {
	if m.MedicationName == "" {
		return fmt.Errorf("medication_name is required")
	}
	if len(m.MedicationName) > MaxNameLength {
		return fmt.Errorf("medication_name exceeds %d characters", MaxNameLength)
	}
	if m.Status != "" && !validStatuses[m.Status] {
		return fmt.Errorf("invalid status: %s", m.Status)
	}
	return s.meds.Update(ctx, m)
}

func (s *Service) Delete(ctx context.Context, userID string, id uuid.UUID) error {
	return s.meds.Delete(ctx, userID, id)
}

func (s *Service) List(ctx context.Context, userID string, limit, offset int) ([]*Medication, int, error) {
	return s.meds.ListByUser(ctx, userID, limit, offset)
}

// ActiveNames returns the user's active medication names for the
// interaction scan.
func (s *Service) ActiveNames(ctx context.Context, userID string) ([]string, error) {
	return s.meds.ListActiveNames(ctx, userID)
}
