package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"flamesblue/internal/auth/service"
	httputil "flamesblue/pkg/http"
	"flamesblue/pkg/logger"
	"flamesblue/pkg/model"
)

type AuthHandler struct {
	service service.OtpService
	log     *logger.Logger
}

func NewAuthHandler(service service.OtpService, log *logger.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		log:     log,
	}
}

func (h *AuthHandler) SendOtp(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req model.SendOtpRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		h.writeError(w, "SendOtp", err)
		return
	}

	resp, err := h.service.SendOtp(r.Context(), &req)
	if err != nil {
		h.writeError(w, "SendOtp", err)
		return
	}

	if err := httputil.WriteOK(w, resp); err != nil {
		h.log.Error("failed to write response", "handler", "SendOtp", "operation", "WriteOK", "error", err)
	}
}

func (h *AuthHandler) VerifyOtp(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req model.VerifyOtpRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		h.writeError(w, "VerifyOtp", err)
		return
	}

	if err := h.service.VerifyOtp(r.Context(), &req); err != nil {
		h.writeError(w, "VerifyOtp", err)
		return
	}

	if err := httputil.WriteOK(w, httputil.StatusResponse{Status: model.OtpStatusVerified}); err != nil {
		h.log.Error("failed to write response", "handler", "VerifyOtp", "operation", "WriteOK", "error", err)
	}
}

func (h *AuthHandler) writeError(w http.ResponseWriter, handler string, err error) {
	if writeErr := httputil.WriteError(w, err); writeErr != nil {
		h.log.Error("failed to write error response", "handler", handler, "operation", "WriteError", "error", writeErr)
	}
}

func (h *AuthHandler) RegisterRoutes(router *httprouter.Router) {
	router.POST("/auth/send-otp", h.SendOtp)
	router.POST("/auth/verify-otp", h.VerifyOtp)
}
