package service

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flamesblue/internal/support/repository"
	apperrors "flamesblue/pkg/errors"
	"flamesblue/pkg/logger"
	"flamesblue/pkg/model"
	"flamesblue/pkg/store"
	"flamesblue/pkg/validator"
)

func newService(st store.Store) *chatService {
	log := logger.NewNop()
	return NewChatService(repository.NewMessageRepository(st), validator.NewRecordValidator(log), log).(*chatService)
}

func storedMessages(t *testing.T, st store.Store) []model.SupportMessage {
	t.Helper()
	var messages []model.SupportMessage
	require.NoError(t, st.FetchAll(context.Background(), model.CollectionSupportMessage, &messages))
	return messages
}

func TestChat_StoresUserThenBot(t *testing.T) {
	st := store.NewMemoryStore()
	svc := newService(st)

	resp, err := svc.Chat(context.Background(), &model.ChatRequest{UserID: "u1", Message: "hello"})
	require.NoError(t, err)
	assert.Equal(t, BotReply, resp.Reply)

	messages := storedMessages(t, st)
	require.Len(t, messages, 2)
	assert.Equal(t, model.RoleUser, messages[0].Role)
	assert.Equal(t, "hello", messages[0].Message)
	assert.Equal(t, model.RoleBot, messages[1].Role)
	assert.Equal(t, BotReply, messages[1].Message)
	for _, m := range messages {
		assert.Equal(t, "u1", m.UserID)
		assert.NotEmpty(t, m.ID)
	}
	assert.False(t, messages[1].CreatedAt.Before(messages[0].CreatedAt))
}

func TestChat_EachCallAppendsTwo(t *testing.T) {
	st := store.NewMemoryStore()
	svc := newService(st)
	clock := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	svc.now = func() time.Time {
		clock = clock.Add(time.Millisecond)
		return clock
	}

	for i := 0; i < 3; i++ {
		_, err := svc.Chat(context.Background(), &model.ChatRequest{UserID: "u1", Message: "hello"})
		require.NoError(t, err)
	}

	assert.Equal(t, 6, st.Count(model.CollectionSupportMessage))
}

func TestChat_Validation(t *testing.T) {
	st := store.NewMemoryStore()
	svc := newService(st)

	_, err := svc.Chat(context.Background(), &model.ChatRequest{UserID: "u1", Message: "   "})

	appErr := apperrors.AsAppError(err)
	assert.Equal(t, http.StatusUnprocessableEntity, appErr.StatusCode())
	assert.Equal(t, 0, st.Count(model.CollectionSupportMessage))
}

func TestChat_StoreUnavailable(t *testing.T) {
	st := store.NewMemoryStore()
	st.SetFailure(store.ErrNotConnected)
	svc := newService(st)

	_, err := svc.Chat(context.Background(), &model.ChatRequest{UserID: "u1", Message: "hello"})

	assert.Equal(t, http.StatusServiceUnavailable, apperrors.AsAppError(err).StatusCode())
}
