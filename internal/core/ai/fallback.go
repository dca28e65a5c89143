package ai

import "strings"

// EmotionLabels is the fixed label set every detection result is scored
// over. Order is stable and mirrored in scores returned by Detect.
var EmotionLabels = []string{"happy", "sad", "angry", "fear", "surprise", "neutral"}

// KnownLabel reports whether label is part of the fixed set.
func KnownLabel(label string) bool {
	for _, l := range EmotionLabels {
		if l == label {
			return true
		}
	}
	return false
}

// emotionKeywords drives the deterministic fallback. First listed
// emotion with a keyword hit wins.
var emotionKeywords = []struct {
	label    string
	keywords []string
}{
	{"happy", []string{"happy", "good", "great", "wonderful", "amazing", "excited"}},
	{"sad", []string{"sad", "unhappy", "depressed", "miserable", "upset"}},
	{"angry", []string{"angry", "mad", "furious", "annoyed", "frustrated"}},
	{"fear", []string{"scared", "afraid", "fear", "terrified", "nervous"}},
	{"surprise", []string{"surprise", "shocked", "amazed", "astonished"}},
}

// FallbackDetect classifies text by keyword membership. It is pure: no
// network, no randomness, same input always yields the same result.
// Every label starts at a 0.1 baseline with neutral at 1.0; a keyword
// hit boosts the matched emotion to 0.9 and suppresses neutral to 0.1.
func FallbackDetect(text string) *Analysis {
	lower := strings.ToLower(text)

	matched := ""
	for _, entry := range emotionKeywords {
		for _, kw := range entry.keywords {
			if strings.Contains(lower, kw) {
				matched = entry.label
				break
			}
		}
		if matched != "" {
			break
		}
	}

	all := make([]Score, 0, len(EmotionLabels))
	for _, label := range EmotionLabels {
		s := 0.1
		switch {
		case label == "neutral" && matched == "":
			s = 1.0
		case label == matched:
			s = 0.9
		}
		all = append(all, Score{Label: label, Score: s})
	}

	primary := all[0]
	for _, s := range all[1:] {
		if s.Score > primary.Score {
			primary = s
		}
	}

	return &Analysis{Primary: primary, All: all}
}
