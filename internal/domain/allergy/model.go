package allergy

import (
	"time"

	"github.com/google/uuid"
)

// Valid allergy severities.
const (
	SeverityMild     = "mild"
	SeverityModerate = "moderate"
	SeveritySevere   = "severe"
)

// Allergy maps to the allergies table.
type Allergy struct {
	ID        uuid.UUID `db:"id" json:"id"`
	UserID    string    `db:"user_id" json:"user_id"`
	Allergen  string    `db:"allergen" json:"allergen"`
	Severity  string    `db:"severity" json:"severity"`
	Reaction  *string   `db:"reaction" json:"reaction,omitempty"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
