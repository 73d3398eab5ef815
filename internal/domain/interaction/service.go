package interaction

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
)

// MaxNameLength caps a single medication name.
const MaxNameLength = 200

// ErrValidation wraps all input validation failures so handlers can map
// them to a 400 without inspecting messages.
var ErrValidation = errors.New("validation failed")

// Service runs single-pair interaction checks and serves the check history.
type Service struct {
	interactions Repository
	classifier   Classifier
	logger       zerolog.Logger
}

// NewService creates a new interaction service.
func NewService(interactions Repository, classifier Classifier, logger zerolog.Logger) *Service {
	return &Service{interactions: interactions, classifier: classifier, logger: logger}
}

// CheckPair classifies one medication pair on demand. Input is validated
// before any network call. Classifier errors propagate to the caller;
// positive verdicts are persisted, with insert failures logged and
// swallowed so the user still gets their answer.
func (s *Service) CheckPair(ctx context.Context, userID, med1, med2 string) (*Result, error) {
	med1 = strings.TrimSpace(med1)
	med2 = strings.TrimSpace(med2)
	if med1 == "" || med2 == "" {
		return nil, fmt.Errorf("%w: both medication names are required", ErrValidation)
	}
	if len(med1) > MaxNameLength || len(med2) > MaxNameLength {
		return nil, fmt.Errorf("%w: medication name exceeds %d characters", ErrValidation, MaxNameLength)
	}

	v, err := s.classifier.Classify(ctx, med1, med2)
	if err != nil {
		return nil, err
	}

	if v.HasInteraction {
		row := &Interaction{
			UserID:         userID,
			Medication1:    med1,
			Medication2:    med2,
			RiskLevel:      v.RiskLevel,
			RiskPercentage: v.RiskPercentage,
			Description:    v.Description,
			Severity:       v.Severity,
		}
		if err := s.interactions.Insert(ctx, row); err != nil {
			s.logger.Error().Err(err).
				Str("medication_1", med1).
				Str("medication_2", med2).
				Msg("failed to save interaction")
		}
	}
	return &Result{Medication1: med1, Medication2: med2, Verdict: v}, nil
}

// History returns the user's recorded interactions, newest first.
func (s *Service) History(ctx context.Context, userID string, limit, offset int) ([]*Interaction, int, error) {
	return s.interactions.ListByUser(ctx, userID, limit, offset)
}
