package prescription

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/Ashray02/prescription-wizardry/internal/domain/interaction"
	"github.com/Ashray02/prescription-wizardry/internal/platform/blobstore"
)

// ErrValidation wraps input validation failures.
var ErrValidation = errors.New("validation failed")

// Medications is the slice of the medication service the analyzer needs.
type Medications interface {
	ActiveNames(ctx context.Context, userID string) ([]string, error)
}

// Scanner runs pairwise interaction checks over a medication set.
type Scanner interface {
	Scan(ctx context.Context, userID string, meds []string) []interaction.Result
}

// Service provides business logic for prescriptions: image storage,
// text analysis, and the interaction scan triggered by it.
type Service struct {
	prescriptions Repository
	medications   Medications
	extractor     Extractor
	scanner       Scanner
	blobs         blobstore.BlobStore
	logger        zerolog.Logger
}

// NewService creates a new prescription service.
func NewService(prescriptions Repository, medications Medications, extractor Extractor, scanner Scanner, blobs blobstore.BlobStore, logger zerolog.Logger) *Service {
	return &Service{
		prescriptions: prescriptions,
		medications:   medications,
		extractor:     extractor,
		scanner:       scanner,
		blobs:         blobs,
		logger:        logger,
	}
}

// Upload stores a prescription scan and creates its record.
func (s *Service) Upload(ctx context.Context, p *Prescription, fileName, contentType string, content io.Reader) (*Prescription, error) {
	if p.UserID == "" {
		return nil, fmt.Errorf("%w: user_id is required", ErrValidation)
	}
	meta, err := s.blobs.Upload(ctx, blobstore.BlobMetadata{
		FileName:    fileName,
		ContentType: contentType,
		OwnerID:     p.UserID,
	}, content)
	if err != nil {
		return nil, err
	}
	p.ImageBlobID = &meta.ID
	if err := s.prescriptions.Create(ctx, p); err != nil {
		// Roll back the orphaned blob; its loss is not fatal.
		if derr := s.blobs.Delete(ctx, meta.ID); derr != nil {
			s.logger.Warn().Err(derr).Str("blob_id", meta.ID).Msg("failed to delete orphaned blob")
		}
		return nil, err
	}
	return p, nil
}

func (s *Service) Get(ctx context.Context, userID string, id uuid.UUID) (*Prescription, error) {
	return s.prescriptions.GetByID(ctx, userID, id)
}

func (s *Service) List(ctx context.Context, userID string, limit, offset int) ([]*Prescription, int, error) {
	return s.prescriptions.ListByUser(ctx, userID, limit, offset)
}

// Delete removes the record and its stored image. A failed blob delete is
// logged but does not fail the operation.
func (s *Service) Delete(ctx context.Context, userID string, id uuid.UUID) error {
	p, err := s.prescriptions.GetByID(ctx, userID, id)
	if err != nil {
		return err
	}
	if err := s.prescriptions.Delete(ctx, userID, id); err != nil {
		return err
	}
	if p.ImageBlobID != nil {
		if err := s.blobs.Delete(ctx, *p.ImageBlobID); err != nil {
			s.logger.Warn().Err(err).Str("blob_id", *p.ImageBlobID).Msg("failed to delete prescription image")
		}
	}
	return nil
}

// Image streams the stored scan for a prescription the user owns.
func (s *Service) Image(ctx context.Context, userID string, id uuid.UUID) (io.ReadCloser, *blobstore.BlobMetadata, error) {
	p, err := s.prescriptions.GetByID(ctx, userID, id)
	if err != nil {
		return nil, nil, err
	}
	if p.ImageBlobID == nil {
		return nil, nil, blobstore.ErrBlobNotFound
	}
	return s.blobs.Download(ctx, *p.ImageBlobID)
}

// Analyze extracts medication names from the prescription text, saves them
// on the record, and scans the combined set of current and extracted
// medications for pairwise interactions. Extraction failures abort the
// analysis; failures saving the extraction or marking the record analyzed
// are logged and do not.
func (s *Service) Analyze(ctx context.Context, userID string, id uuid.UUID, text string) (*AnalyzeResult, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("%w: prescription text is required", ErrValidation)
	}
	if len(text) > MaxTextLength {
		return nil, fmt.Errorf("%w: prescription text exceeds %d characters", ErrValidation, MaxTextLength)
	}
	if _, err := s.prescriptions.GetByID(ctx, userID, id); err != nil {
		return nil, err
	}

	existing, err := s.medications.ActiveNames(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load current medications: %w", err)
	}

	extracted, err := s.extractor.Extract(ctx, text)
	if err != nil {
		return nil, err
	}

	if err := s.prescriptions.SaveExtraction(ctx, userID, id, extracted); err != nil {
		s.logger.Error().Err(err).Str("prescription_id", id.String()).Msg("failed to save extracted medications")
	}

	candidates := interaction.BuildCandidateSet(existing, extracted)
	results := s.scanner.Scan(ctx, userID, candidates)

	if err := s.prescriptions.MarkAnalyzed(ctx, userID, id, text); err != nil {
		s.logger.Error().Err(err).Str("prescription_id", id.String()).Msg("failed to mark prescription analyzed")
	}

	if extracted == nil {
		extracted = []string{}
	}
	return &AnalyzeResult{
		Success:              true,
		ExtractedMedications: extracted,
		Interactions:         results,
	}, nil
}
