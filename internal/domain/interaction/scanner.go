package interaction

import (
	"context"
	"strings"
	"sync"

	"github.com/rs/zerolog"
	"golang.org/x/sync/semaphore"
)

// DefaultScanWidth bounds how many classifier calls run at once.
const DefaultScanWidth = 4

// Scanner runs pairwise interaction checks over a candidate medication set.
type Scanner struct {
	classifier Classifier
	repo       Repository
	logger     zerolog.Logger
	width      int64
}

// NewScanner builds a Scanner. A width of zero or less falls back to
// DefaultScanWidth.
func NewScanner(classifier Classifier, repo Repository, logger zerolog.Logger, width int) *Scanner {
	if width <= 0 {
		width = DefaultScanWidth
	}
	return &Scanner{classifier: classifier, repo: repo, logger: logger, width: int64(width)}
}

// pairKey normalizes an unordered pair so (A,B) and (b,a) share one
// classification within a scan.
func pairKey(a, b string) string {
	la, lb := strings.ToLower(a), strings.ToLower(b)
	if la > lb {
		la, lb = lb, la
	}
	return la + "\x00" + lb
}

// Scan checks every distinct pair of medications exactly once, in ascending
// index order, and returns the pairs found to interact. A pair that cannot
// be classified gets the fallback verdict rather than failing the whole
// scan; since the fallback never reports an interaction, such pairs are
// absent from the result. Positive verdicts are persisted for the user;
// persistence failures are logged and do not affect results.
func (s *Scanner) Scan(ctx context.Context, userID string, meds []string) []Result {
	if len(meds) < 2 {
		return []Result{}
	}

	type pair struct{ i, j int }
	var pairs []pair
	for i := 0; i < len(meds); i++ {
		for j := i + 1; j < len(meds); j++ {
			pairs = append(pairs, pair{i, j})
		}
	}

	// Classify each normalized pair once per scan, even when duplicate
	// names produce it multiple times.
	firstOf := make(map[string]int, len(pairs))
	for idx, p := range pairs {
		key := pairKey(meds[p.i], meds[p.j])
		if _, seen := firstOf[key]; !seen {
			firstOf[key] = idx
		}
	}

	verdicts := make([]Verdict, len(pairs))
	sem := semaphore.NewWeighted(s.width)
	var wg sync.WaitGroup

	for idx, p := range pairs {
		if firstOf[pairKey(meds[p.i], meds[p.j])] != idx {
			continue
		}
		wg.Add(1)
		idx, p := idx, p
		go func() {
			defer wg.Done()
			if err := sem.Acquire(ctx, 1); err != nil {
				verdicts[idx] = FallbackVerdict()
				return
			}
			defer sem.Release(1)
			verdicts[idx] = s.classifyPair(ctx, userID, meds[p.i], meds[p.j])
		}()
	}
	wg.Wait()

	results := []Result{}
	for _, p := range pairs {
		v := verdicts[firstOf[pairKey(meds[p.i], meds[p.j])]]
		if !v.HasInteraction {
			continue
		}
		results = append(results, Result{Medication1: meds[p.i], Medication2: meds[p.j], Verdict: v})
	}
	return results
}

func (s *Scanner) classifyPair(ctx context.Context, userID, med1, med2 string) Verdict {
	v, err := s.classifier.Classify(ctx, med1, med2)
	if err != nil {
		s.logger.Warn().Err(err).
			Str("medication_1", med1).
			Str("medication_2", med2).
			Msg("interaction check failed, using fallback")
		return FallbackVerdict()
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
		if err := s.repo.Insert(ctx, row); err != nil {
			s.logger.Error().Err(err).
				Str("medication_1", med1).
				Str("medication_2", med2).
				Msg("failed to save interaction")
		}
	}
	return v
}
