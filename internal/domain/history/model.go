package history

import (
	"time"

	"github.com/google/uuid"
)

// Valid condition statuses.
const (
	StatusOngoing  = "ongoing"
	StatusResolved = "resolved"
	StatusChronic  = "chronic"
)

// Condition maps to the medical_history table.
type Condition struct {
	ID            uuid.UUID  `db:"id" json:"id"`
	UserID        string     `db:"user_id" json:"user_id"`
	ConditionName string     `db:"condition_name" json:"condition_name"`
	DiagnosisDate *time.Time `db:"diagnosis_date" json:"diagnosis_date,omitempty"`
	Status        string     `db:"status" json:"status"`
	Notes         *string    `db:"notes" json:"notes,omitempty"`
	CreatedAt     time.Time  `db:"created_at" json:"created_at"`
}
