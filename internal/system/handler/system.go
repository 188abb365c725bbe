package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"flamesblue/internal/system/service"
	httputil "flamesblue/pkg/http"
	"flamesblue/pkg/logger"
	"flamesblue/pkg/model"
)

type SystemHandler struct {
	service service.SystemService
	log     *logger.Logger
}

func NewSystemHandler(service service.SystemService, log *logger.Logger) *SystemHandler {
	return &SystemHandler{
		service: service,
		log:     log,
	}
}

func (h *SystemHandler) Root(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	h.write(w, "Root", h.service.Root())
}

func (h *SystemHandler) Diagnostics(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	h.write(w, "Diagnostics", h.service.Diagnostics(r.Context()))
}

func (h *SystemHandler) Health(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	h.write(w, "Health", model.HealthResponse{Status: "ok"})
}

func (h *SystemHandler) Ready(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if err := h.service.Ready(r.Context()); err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Ready", "operation", "WriteError", "error", writeErr)
		}
		return
	}
	h.write(w, "Ready", model.HealthResponse{Status: "ready", Database: "connected"})
}

func (h *SystemHandler) write(w http.ResponseWriter, handler string, data any) {
	if err := httputil.WriteOK(w, data); err != nil {
		h.log.Error("failed to write response", "handler", handler, "operation", "WriteOK", "error", err)
	}
}

func (h *SystemHandler) RegisterRoutes(router *httprouter.Router) {
	router.GET("/", h.Root)
	router.GET("/test", h.Diagnostics)
	router.GET("/health", h.Health)
	router.GET("/ready", h.Ready)
}
