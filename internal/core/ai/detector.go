package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/Muthu784/Backend-Emotion/internal/apperr"
)

// Score is one label/probability pair of a detection result.
type Score struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// Analysis is the detector output: the winning label plus the full
// distribution over EmotionLabels.
type Analysis struct {
	Primary Score   `json:"primary"`
	All     []Score `json:"all"`
}

// Detector classifies free text into an emotion label. The remote model
// is the primary path; any failure there (transport, timeout, malformed
// output) silently substitutes the deterministic keyword fallback, so
// callers never see an upstream error.
type Detector struct {
	llm     Generator
	timeout time.Duration
	logger  zerolog.Logger
}

func NewDetector(llm Generator, timeout time.Duration, logger zerolog.Logger) *Detector {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Detector{llm: llm, timeout: timeout, logger: logger}
}

const detectSystemPrompt = `Analyze the following text and respond with a JSON object containing:
- emotion: The primary emotion (one of: happy, sad, angry, fear, surprise, neutral)
- confidence: A confidence score between 0 and 1
- scores: An array of {"label", "score"} objects covering all six emotions

Respond with JSON only, no prose.`

// Detect returns the emotion analysis for text. Empty input fails with
// a validation error before either path runs.
func (d *Detector) Detect(ctx context.Context, text string) (*Analysis, error) {
	if strings.TrimSpace(text) == "" {
		return nil, apperr.Validation("text must be a non-empty string")
	}

	if d.llm != nil {
		callCtx, cancel := context.WithTimeout(ctx, d.timeout)
		defer cancel()

		analysis, err := d.classify(callCtx, text)
		if err == nil {
			return analysis, nil
		}
		d.logger.Warn().Err(err).Msg("remote emotion detection failed, using keyword fallback")
	}

	return FallbackDetect(text), nil
}

func (d *Detector) classify(ctx context.Context, text string) (*Analysis, error) {
	raw, err := d.llm.Generate(ctx, detectSystemPrompt, text)
	if err != nil {
		return nil, err
	}

	var parsed struct {
		Emotion    string  `json:"emotion"`
		Confidence float64 `json:"confidence"`
		Scores     []Score `json:"scores"`
	}
	if err := json.Unmarshal([]byte(stripCodeFence(raw)), &parsed); err != nil {
		return nil, fmt.Errorf("malformed model output: %w", err)
	}
	if !KnownLabel(parsed.Emotion) {
		return nil, fmt.Errorf("model returned unknown label %q", parsed.Emotion)
	}
	if parsed.Confidence < 0 || parsed.Confidence > 1 {
		return nil, fmt.Errorf("model returned confidence %v outside [0,1]", parsed.Confidence)
	}
	if err := validateDistribution(parsed.Scores); err != nil {
		return nil, err
	}

	return &Analysis{
		Primary: Score{Label: parsed.Emotion, Score: parsed.Confidence},
		All:     parsed.Scores,
	}, nil
}

// validateDistribution checks that scores is a distribution over exactly
// the fixed label set: every label in EmotionLabels present once, none
// outside the set, every score in [0,1].
func validateDistribution(scores []Score) error {
	if len(scores) != len(EmotionLabels) {
		return fmt.Errorf("model returned %d scores, want %d", len(scores), len(EmotionLabels))
	}
	seen := make(map[string]bool, len(EmotionLabels))
	for _, s := range scores {
		if !KnownLabel(s.Label) {
			return fmt.Errorf("model returned unknown label %q in scores", s.Label)
		}
		if seen[s.Label] {
			return fmt.Errorf("model returned duplicate label %q in scores", s.Label)
		}
		if s.Score < 0 || s.Score > 1 {
			return fmt.Errorf("model returned score %v outside [0,1] for %q", s.Score, s.Label)
		}
		seen[s.Label] = true
	}
	return nil
}

// stripCodeFence unwraps ```json fenced blocks the model sometimes
// emits despite the JSON-only instruction.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
