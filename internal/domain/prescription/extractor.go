package prescription

import (
	"context"
	"strings"

	"github.com/Ashray02/prescription-wizardry/internal/platform/ai"
)

const extractorSystemPrompt = `You are a medical prescription analyzer. Extract all medication names ` +
	`from the given prescription text. Return only medication names, one per line, ` +
	`without dosages or instructions.`

// Extractor pulls medication names out of raw prescription text.
type Extractor interface {
	Extract(ctx context.Context, text string) ([]string, error)
}

type aiExtractor struct {
	client *ai.Client
}

// NewExtractor builds an Extractor backed by the AI gateway.
func NewExtractor(client *ai.Client) Extractor {
	return &aiExtractor{client: client}
}

func (e *aiExtractor) Extract(ctx context.Context, text string) ([]string, error) {
	user := "Extract medication names from this prescription:\n\n" + text
	content, err := e.client.Complete(ctx, extractorSystemPrompt, user, false)
	if err != nil {
		return nil, err
	}
	var names []string
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		names = append(names, line)
	}
	return names, nil
}
