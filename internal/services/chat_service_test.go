package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Muthu784/Backend-Emotion/internal/apperr"
	"github.com/Muthu784/Backend-Emotion/internal/core/ai"
)

func newChatService(fake *fakeDB) *ChatService {
	detector := ai.NewDetector(nil, time.Second, zerolog.Nop())
	responder := ai.NewResponder(nil, time.Second, zerolog.Nop())
	return NewChatService(fake, detector, responder, zerolog.Nop())
}

func TestSendMessage_FullTurn(t *testing.T) {
	t.Parallel()

	fake := newFakeDB()
	svc := newChatService(fake)

	turn, err := svc.SendMessage(context.Background(), "u1", "I am so happy today")
	require.NoError(t, err)

	assert.True(t, turn.UserMessage.IsUser)
	assert.Equal(t, "I am so happy today", turn.UserMessage.Content)
	assert.Equal(t, "happy", turn.UserMessage.Emotion)

	assert.False(t, turn.AIMessage.IsUser)
	assert.NotEmpty(t, turn.AIMessage.Content)

	require.NotNil(t, turn.EmotionAnalysis)
	assert.Equal(t, "happy", turn.EmotionAnalysis.Primary.Label)
	assert.NotEmpty(t, turn.Recommendations)

	// Both messages landed in one CreateChatTurn call.
	require.Len(t, fake.chatTurns, 1)
	assert.True(t, fake.chatTurns[0][0].IsUser)
	assert.False(t, fake.chatTurns[0][1].IsUser)
}

func TestSendMessage_EmptyContent(t *testing.T) {
	t.Parallel()

	_, err := newChatService(newFakeDB()).SendMessage(context.Background(), "u1", "   ")
	require.Error(t, err)
	assert.True(t, apperr.IsCode(err, "validation"))
}

func TestSendMessage_StoreFailure(t *testing.T) {
	t.Parallel()

	fake := newFakeDB()
	fake.chatTurnErr = errors.New("pool exhausted")

	_, err := newChatService(fake).SendMessage(context.Background(), "u1", "hello there")
	require.Error(t, err)
	assert.True(t, apperr.IsCode(err, "store_unavailable"))
}

func TestHistory_ReturnsBothSides(t *testing.T) {
	t.Parallel()

	fake := newFakeDB()
	svc := newChatService(fake)

	_, err := svc.SendMessage(context.Background(), "u1", "I am feeling great")
	require.NoError(t, err)

	messages, err := svc.History(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, messages, 2)
	assert.True(t, messages[0].IsUser)
	assert.False(t, messages[1].IsUser)
}
