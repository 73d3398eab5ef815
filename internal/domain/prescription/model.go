package prescription

import (
	"time"

	"github.com/google/uuid"

	"github.com/Ashray02/prescription-wizardry/internal/domain/interaction"
)

// MaxTextLength caps the prescription text accepted for analysis.
const MaxTextLength = 50000

// Prescription maps to the prescriptions table.
type Prescription struct {
	ID                   uuid.UUID  `db:"id" json:"id"`
	UserID               string     `db:"user_id" json:"user_id"`
	DoctorName           *string    `db:"doctor_name" json:"doctor_name,omitempty"`
	PrescriptionDate     *time.Time `db:"prescription_date" json:"prescription_date,omitempty"`
	ImageBlobID          *string    `db:"image_blob_id" json:"image_blob_id,omitempty"`
	ExtractedText        *string    `db:"extracted_text" json:"extracted_text,omitempty"`
	ExtractedMedications []string   `db:"extracted_medications" json:"extracted_medications,omitempty"`
	Analyzed             bool       `db:"analyzed" json:"analyzed"`
	CreatedAt            time.Time  `db:"created_at" json:"created_at"`
}

// AnalyzeResult is the outcome of analyzing a prescription: the medication
// names pulled from its text and the interaction verdicts for the combined
// medication set.
type AnalyzeResult struct {
	Success              bool                 `json:"success"`
	ExtractedMedications []string             `json:"extracted_medications"`
	Interactions         []interaction.Result `json:"interactions"`
}
