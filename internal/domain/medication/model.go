package medication

import (
	"time"

	"github.com/google/uuid"
)

// Valid medication statuses. Only active medications feed the
// drug-interaction scan.
const (
	StatusActive       = "active"
	StatusCompleted    = "completed"
	StatusDiscontinued = "discontinued"
)

// Medication maps to the medications table. Every row is owned by the user
// who recorded it.
type Medication struct {
	ID             uuid.UUID  `db:"id" json:"id"`
	UserID         string     `db:"user_id" json:"user_id"`
	MedicationName string     `db:"medication_name" json:"medication_name"`
	Dosage         string     `db:"dosage" json:"dosage"`
	Frequency      string     `db:"frequency" json:"frequency"`
	StartDate      time.Time  `db:"start_date" json:"start_date"`
	EndDate        *time.Time `db:"end_date" json:"end_date,omitempty"`
	Status         string     `db:"status" json:"status"`
	Notes          *string    `db:"notes" json:"notes,omitempty"`
	CreatedAt      time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time  `db:"updated_at" json:"updated_at"`
}
