package interaction

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Valid risk levels, lowest to highest.
const (
	RiskNone     = "none"
	RiskLow      = "low"
	RiskModerate = "moderate"
	RiskHigh     = "high"
	RiskSevere   = "severe"
)

// Interaction maps to the drug_interactions table. Rows are append-only;
// every positive check adds a new entry.
type Interaction struct {
	ID             uuid.UUID `db:"id" json:"id"`
	UserID         string    `db:"user_id" json:"user_id"`
	Medication1    string    `db:"medication_1" json:"medication_1"`
	Medication2    string    `db:"medication_2" json:"medication_2"`
	RiskLevel      string    `db:"risk_level" json:"risk_level"`
	RiskPercentage int       `db:"risk_percentage" json:"risk_percentage"`
	Description    string    `db:"description" json:"description"`
	Severity       string    `db:"severity" json:"severity"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
}

// Verdict is the classifier's answer for a single medication pair.
type Verdict struct {
	HasInteraction bool   `json:"hasInteraction"`
	RiskLevel      string `json:"risk_level"`
	RiskPercentage int    `json:"risk_percentage"`
	Description    string `json:"description"`
	Severity       string `json:"severity"`
}

// Result pairs a verdict with the medication names it covers.
type Result struct {
	Medication1 string `json:"medication1"`
	Medication2 string `json:"medication2"`
	Verdict
}

// FallbackVerdict is returned when a pair cannot be classified. It never
// reports an interaction.
func FallbackVerdict() Verdict {
	return Verdict{
		HasInteraction: false,
		RiskLevel:      RiskNone,
		RiskPercentage: 0,
		Description:    "Unable to check interaction",
		Severity:       "Unknown",
	}
}

var validRiskLevels = map[string]bool{
	RiskNone: true, RiskLow: true, RiskModerate: true, RiskHigh: true, RiskSevere: true,
}

// rawVerdict tolerates the numeric types a model actually emits.
type rawVerdict struct {
	HasInteraction bool    `json:"hasInteraction"`
	RiskLevel      string  `json:"risk_level"`
	RiskPercentage float64 `json:"risk_percentage"`
	Description    string  `json:"description"`
	Severity       string  `json:"severity"`
}

// ParseVerdict decodes a classifier response into a Verdict. Risk levels
// outside the known set collapse to none and the percentage is clamped
// to [0,100]. Markdown code fences around the JSON body are stripped.
func ParseVerdict(content string) (Verdict, error) {
	body := strings.TrimSpace(content)
	if strings.HasPrefix(body, "```") {
		body = strings.TrimPrefix(body, "```json")
		body = strings.TrimPrefix(body, "```")
		body = strings.TrimSuffix(strings.TrimSpace(body), "```")
		body = strings.TrimSpace(body)
	}
	var raw rawVerdict
	if err := json.Unmarshal([]byte(body), &raw); err != nil {
		return Verdict{}, err
	}
	v := Verdict{
		HasInteraction: raw.HasInteraction,
		RiskLevel:      strings.ToLower(strings.TrimSpace(raw.RiskLevel)),
		RiskPercentage: int(raw.RiskPercentage),
		Description:    raw.Description,
		Severity:       raw.Severity,
	}
	if !validRiskLevels[v.RiskLevel] {
		v.RiskLevel = RiskNone
	}
	if v.RiskPercentage < 0 {
		v.RiskPercentage = 0
	}
	if v.RiskPercentage > 100 {
		v.RiskPercentage = 100
	}
	if v.Severity == "" {
		v.Severity = "Unknown"
	}
	return v, nil
}
