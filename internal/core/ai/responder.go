package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"time"

	"github.com/rs/zerolog"

	"github.com/Muthu784/Backend-Emotion/internal/models"
)

// Reply is the generated side of a chat turn.
type Reply struct {
	Text             string `json:"text"`
	SuggestedEmotion string `json:"suggested_emotion"`
}

// Responder generates supportive replies and content recommendations
// conditioned on an emotion label. Like the Detector, the remote path
// is best-effort: any upstream failure is swallowed and a static
// fallback substituted.
type Responder struct {
	llm     Generator
	timeout time.Duration
	logger  zerolog.Logger
}

func NewResponder(llm Generator, timeout time.Duration, logger zerolog.Logger) *Responder {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Responder{llm: llm, timeout: timeout, logger: logger}
}

const respondSystemPromptFmt = `You are an empathetic AI assistant. The user is feeling %s.
Respond in a way that is appropriate for their emotional state.
Keep responses concise and supportive.
Answer with a JSON object: {"text": "...", "suggested_emotion": "one of happy, sad, angry, fear, surprise, neutral"}.
JSON only, no prose.`

// Respond produces a supportive reply to message given the detected
// emotion. Never returns an upstream error.
func (r *Responder) Respond(ctx context.Context, message, emotion string) *Reply {
	if !KnownLabel(emotion) {
		emotion = "neutral"
	}

	if r.llm != nil {
		callCtx, cancel := context.WithTimeout(ctx, r.timeout)
		defer cancel()

		raw, err := r.llm.Generate(callCtx, fmt.Sprintf(respondSystemPromptFmt, emotion), message)
		if err == nil {
			var reply Reply
			if jsonErr := json.Unmarshal([]byte(stripCodeFence(raw)), &reply); jsonErr == nil && reply.Text != "" {
				if !KnownLabel(reply.SuggestedEmotion) {
					reply.SuggestedEmotion = "neutral"
				}
				return &reply
			}
			err = fmt.Errorf("malformed reply payload")
		}
		r.logger.Warn().Err(err).Str("emotion", emotion).Msg("remote reply generation failed, using canned reply")
	}

	return fallbackReply(emotion)
}

const recommendSystemPromptFmt = `You are a helpful assistant that provides recommendations based on emotions.
The user is feeling %s.
Provide 3 personalized recommendations as JSON:
{"recommendations": [{"type": "movie|book|music|activity|exercise|resource", "title": "...", "description": "...", "emotion": "%s", "url": "optional"}]}
JSON only, no prose.`

// Recommend returns content suggestions for an emotion. Remote failure
// falls back to the static per-emotion table; the order of fallback
// entries is shuffled for variety.
func (r *Responder) Recommend(ctx context.Context, emotion string) []models.Recommendation {
	if r.llm != nil {
		callCtx, cancel := context.WithTimeout(ctx, r.timeout)
		defer cancel()

		prompt := fmt.Sprintf(recommendSystemPromptFmt, emotion, emotion)
		raw, err := r.llm.Generate(callCtx, prompt, "")
		if err == nil {
			var parsed struct {
				Recommendations []models.Recommendation `json:"recommendations"`
			}
			if jsonErr := json.Unmarshal([]byte(stripCodeFence(raw)), &parsed); jsonErr == nil && len(parsed.Recommendations) > 0 {
				return parsed.Recommendations
			}
			err = fmt.Errorf("malformed recommendations payload")
		}
		r.logger.Warn().Err(err).Str("emotion", emotion).Msg("remote recommendations failed, using static table")
	}

	return FallbackRecommendations(emotion)
}

var fallbackReplies = map[string]Reply{
	"happy":    {Text: "That's wonderful to hear! Keep riding that positive energy.", SuggestedEmotion: "happy"},
	"sad":      {Text: "I'm sorry you're feeling down. It's okay to take things slowly today.", SuggestedEmotion: "neutral"},
	"angry":    {Text: "That sounds really frustrating. Taking a few deep breaths can help.", SuggestedEmotion: "neutral"},
	"fear":     {Text: "Feeling anxious is tough. You're safe right now, one step at a time.", SuggestedEmotion: "neutral"},
	"surprise": {Text: "That sounds unexpected! How are you feeling about it?", SuggestedEmotion: "neutral"},
	"neutral":  {Text: "Thanks for sharing. I'm here if you want to talk more.", SuggestedEmotion: "neutral"},
}

func fallbackReply(emotion string) *Reply {
	if reply, ok := fallbackReplies[emotion]; ok {
		return &reply
	}
	reply := fallbackReplies["neutral"]
	return &reply
}

var fallbackRecommendations = map[string][]models.Recommendation{
	"happy": {
		{Type: "activity", Title: "Go for a walk outside", Description: "Enjoy the nice weather and fresh air", Emotion: "happy"},
		{Type: "music", Title: "Upbeat playlist", Description: "Listen to some happy, energetic music", Emotion: "happy"},
	},
	"sad": {
		{Type: "movie", Title: "Feel-good movie", Description: "Watch a heartwarming movie to lift your spirits", Emotion: "sad"},
		{Type: "activity", Title: "Call a friend", Description: "Reach out to someone you trust", Emotion: "sad"},
	},
	"angry": {
		{Type: "exercise", Title: "Deep breathing", Description: "Practice deep breathing exercises to calm down", Emotion: "angry"},
		{Type: "activity", Title: "Journaling", Description: "Write down your thoughts and feelings", Emotion: "angry"},
	},
}

var genericRecommendation = models.Recommendation{
	Type: "activity", Title: "Take a break", Description: "Step away and do something you enjoy", Emotion: "neutral",
}

// FallbackRecommendations returns the static candidates for an emotion
// in uniform-random order, or the generic neutral entry when the
// emotion has no table.
func FallbackRecommendations(emotion string) []models.Recommendation {
	candidates, ok := fallbackRecommendations[emotion]
	if !ok {
		return []models.Recommendation{genericRecommendation}
	}
	out := make([]models.Recommendation, len(candidates))
	copy(out, candidates)
	rand.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}
