package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"flamesblue/internal/support/service"
	httputil "flamesblue/pkg/http"
	"flamesblue/pkg/logger"
	"flamesblue/pkg/model"
)

type ChatHandler struct {
	service service.ChatService
	log     *logger.Logger
}

func NewChatHandler(service service.ChatService, log *logger.Logger) *ChatHandler {
	return &ChatHandler{
		service: service,
		log:     log,
	}
}

func (h *ChatHandler) Chat(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req model.ChatRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Chat", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	resp, err := h.service.Chat(r.Context(), &req)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Chat", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteOK(w, resp); err != nil {
		h.log.Error("failed to write response", "handler", "Chat", "operation", "WriteOK", "error", err)
	}
}

func (h *ChatHandler) RegisterRoutes(router *httprouter.Router) {
	router.POST("/support/chat", h.Chat)
}
