package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFallbackDetect_KeywordMatch(t *testing.T) {
	t.Parallel()

	a := FallbackDetect("I am so happy today")
	require.Equal(t, "happy", a.Primary.Label)
	assert.InDelta(t, 0.9, a.Primary.Score, 1e-9)

	for _, s := range a.All {
		switch s.Label {
		case "happy":
			assert.InDelta(t, 0.9, s.Score, 1e-9)
		case "neutral":
			assert.InDelta(t, 0.1, s.Score, 1e-9, "neutral should be suppressed on a match")
		default:
			assert.InDelta(t, 0.1, s.Score, 1e-9, "non-matched labels keep the baseline")
		}
	}
}

func TestFallbackDetect_NoMatchBaseline(t *testing.T) {
	t.Parallel()

	a := FallbackDetect("the sky is blue")
	for _, s := range a.All {
		if s.Label == "neutral" {
			assert.InDelta(t, 1.0, s.Score, 1e-9)
			continue
		}
		assert.InDelta(t, 0.1, s.Score, 1e-9, "non-neutral labels keep the baseline")
	}
}

func TestFallbackDetect_NoMatchDefaultsNeutral(t *testing.T) {
	t.Parallel()

	a := FallbackDetect("the sky is blue")
	require.Equal(t, "neutral", a.Primary.Label)
	assert.InDelta(t, 1.0, a.Primary.Score, 1e-9)
}

func TestFallbackDetect_Deterministic(t *testing.T) {
	t.Parallel()

	for _, text := range []string{
		"I am so happy today",
		"this makes me furious",
		"I'm terrified of tomorrow",
		"nothing in particular",
	} {
		first := FallbackDetect(text)
		for i := 0; i < 5; i++ {
			assert.Equal(t, first, FallbackDetect(text), "text %q must classify identically every time", text)
		}
	}
}

func TestFallbackDetect_FullDistribution(t *testing.T) {
	t.Parallel()

	a := FallbackDetect("feeling shocked and amazed")
	require.Len(t, a.All, len(EmotionLabels))

	seen := map[string]bool{}
	for _, s := range a.All {
		assert.True(t, KnownLabel(s.Label))
		assert.GreaterOrEqual(t, s.Score, 0.0)
		assert.LessOrEqual(t, s.Score, 1.0)
		seen[s.Label] = true
	}
	assert.Len(t, seen, len(EmotionLabels))
}

func TestFallbackDetect_CaseInsensitive(t *testing.T) {
	t.Parallel()

	a := FallbackDetect("I Am SO HAPPY")
	assert.Equal(t, "happy", a.Primary.Label)
}
