package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"

	apperrors "flamesblue/pkg/errors"
	"flamesblue/pkg/logger"
	"flamesblue/pkg/model"
)

type mockChatService struct {
	chat func(ctx context.Context, req *model.ChatRequest) (*model.ChatResponse, error)
}

func (m *mockChatService) Chat(ctx context.Context, req *model.ChatRequest) (*model.ChatResponse, error) {
	return m.chat(ctx, req)
}

func serve(svc *mockChatService, body string) *httptest.ResponseRecorder {
	router := httprouter.New()
	NewChatHandler(svc, logger.NewNop()).RegisterRoutes(router)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/support/chat", strings.NewReader(body)))
	return rec
}

func TestChat_ReturnsReply(t *testing.T) {
	var got *model.ChatRequest
	svc := &mockChatService{chat: func(ctx context.Context, req *model.ChatRequest) (*model.ChatResponse, error) {
		got = req
		return &model.ChatResponse{Reply: "hi there"}, nil
	}}

	rec := serve(svc, `{"user_id":"u1","message":"hello"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"reply":"hi there"}`, rec.Body.String())
	assert.Equal(t, "u1", got.UserID)
	assert.Equal(t, "hello", got.Message)
}

func TestChat_ServiceError(t *testing.T) {
	svc := &mockChatService{chat: func(ctx context.Context, req *model.ChatRequest) (*model.ChatResponse, error) {
		return nil, apperrors.Unavailable("Document store", nil)
	}}

	rec := serve(svc, `{"user_id":"u1","message":"hello"}`)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestChat_BadJSON(t *testing.T) {
	svc := &mockChatService{chat: func(ctx context.Context, req *model.ChatRequest) (*model.ChatResponse, error) {
		t.Fatal("service must not be called")
		return nil, nil
	}}

	rec := serve(svc, `not json`)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}
