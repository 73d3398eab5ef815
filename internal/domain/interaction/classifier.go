package interaction

import (
	"context"
	"fmt"

	"github.com/Ashray02/prescription-wizardry/internal/platform/ai"
)

const classifierSystemPrompt = `You are a pharmaceutical expert. Analyze drug interactions between medications. ` +
	`Return a JSON object with: hasInteraction (boolean), risk_level (string: "none", "low", "moderate", "high", "severe"), ` +
	`risk_percentage (number: 0-100), description (string: detailed description of the interaction and effects), ` +
	`and severity (string: clinical significance and recommendations). ` +
	`Base your analysis on known drug interactions, pharmacological data, and clinical guidelines.`

// Classifier decides whether two medications interact.
type Classifier interface {
	Classify(ctx context.Context, med1, med2 string) (Verdict, error)
}

type aiClassifier struct {
	client *ai.Client
}

// NewClassifier builds a Classifier backed by the AI gateway.
func NewClassifier(client *ai.Client) Classifier {
	return &aiClassifier{client: client}
}

func (c *aiClassifier) Classify(ctx context.Context, med1, med2 string) (Verdict, error) {
	user := fmt.Sprintf("Analyze potential drug interaction between %s and %s. "+
		"Provide detailed information about the interaction mechanism, clinical significance, and patient management recommendations.", med1, med2)
	content, err := c.client.Complete(ctx, classifierSystemPrompt, user, true)
	if err != nil {
		return Verdict{}, err
	}
	v, err := ParseVerdict(content)
	if err != nil {
		return Verdict{}, fmt.Errorf("parse classifier response: %w", err)
	}
	return v, nil
}
