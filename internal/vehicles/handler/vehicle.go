package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"flamesblue/internal/vehicles/service"
	httputil "flamesblue/pkg/http"
	"flamesblue/pkg/logger"
	"flamesblue/pkg/model"
)

type VehicleHandler struct {
	service service.VehicleService
	log     *logger.Logger
}

func NewVehicleHandler(service service.VehicleService, log *logger.Logger) *VehicleHandler {
	return &VehicleHandler{
		service: service,
		log:     log,
	}
}

func (h *VehicleHandler) Create(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var vehicle model.Vehicle
	if err := httputil.DecodeJSON(r, &vehicle); err != nil {
		h.writeError(w, "Create", err)
		return
	}

	id, err := h.service.Create(r.Context(), &vehicle)
	if err != nil {
		h.writeError(w, "Create", err)
		return
	}

	if err := httputil.WriteOK(w, httputil.IDResponse{ID: id}); err != nil {
		h.log.Error("failed to write response", "handler", "Create", "operation", "WriteOK", "error", err)
	}
}

func (h *VehicleHandler) List(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	vehicles, err := h.service.List(r.Context())
	if err != nil {
		h.writeError(w, "List", err)
		return
	}

	if err := httputil.WriteOK(w, vehicles); err != nil {
		h.log.Error("failed to write response", "handler", "List", "operation", "WriteOK", "error", err)
	}
}

func (h *VehicleHandler) writeError(w http.ResponseWriter, handler string, err error) {
	if writeErr := httputil.WriteError(w, err); writeErr != nil {
		h.log.Error("failed to write error response", "handler", handler, "operation", "WriteError", "error", writeErr)
	}
}

func (h *VehicleHandler) RegisterRoutes(router *httprouter.Router) {
	router.POST("/vehicles", h.Create)
	router.GET("/vehicles", h.List)
}
