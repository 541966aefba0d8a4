// Package handler exposes the tracking use cases over HTTP.
package handler

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"shiptrack/internal/tracking/service"
	id "shiptrack/pkg/domain"
	dErrors "shiptrack/pkg/domain-errors"
	"shiptrack/pkg/platform/httputil"
	"shiptrack/pkg/requestcontext"
)

// PortUseCases groups the port operations the handler serves.
type PortUseCases struct {
	Create *service.CreatePort
	Get    *service.GetPort
	List   *service.ListPorts
	Delete *service.DeletePort
}

// VesselUseCases groups the vessel operations the handler serves.
type VesselUseCases struct {
	Create           *service.CreateVessel
	Get              *service.GetVessel
	List             *service.ListVessels
	Delete           *service.DeleteVessel
	Dock             *service.DockVessel
	Undock           *service.UndockVessel
	ReplaceNextStops *service.ReplaceNextStops
	Itinerary        *service.DescribeItinerary
}

// Handler wires port and vessel endpoints to the tracking use cases.
type Handler struct {
	ports   PortUseCases
	vessels VesselUseCases
	logger  *slog.Logger
}

func New(ports PortUseCases, vessels VesselUseCases, logger *slog.Logger) *Handler {
	return &Handler{ports: ports, vessels: vessels, logger: logger}
}

// Register mounts /ports and /vessels on r. Authentication is applied by the caller.
func (h *Handler) Register(r chi.Router) {
	r.Route("/ports", func(r chi.Router) {
		r.Get("/", h.HandleListPorts)
		r.Post("/", h.HandleCreatePort)
		r.Get("/{id}", h.HandleGetPort)
		r.Delete("/{id}", h.HandleDeletePort)
	})
	r.Route("/vessels", func(r chi.Router) {
		r.Get("/", h.HandleListVessels)
		r.Post("/", h.HandleCreateVessel)
		r.Get("/{id}", h.HandleGetVessel)
		r.Delete("/{id}", h.HandleDeleteVessel)
		r.Put("/{id}/dock", h.HandleDock)
		r.Put("/{id}/undock", h.HandleUndock)
		r.Put("/{id}/replaceNextStops", h.HandleReplaceNextStops)
		r.Get("/{id}/itinerary", h.HandleItinerary)
	})
}

func (h *Handler) HandleListPorts(w http.ResponseWriter, r *http.Request) {
	ports, err := h.ports.List.Execute(r.Context())
	if err != nil {
		h.fail(w, r, "list ports failed", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, toPortResponses(ports))
}

func (h *Handler) HandleGetPort(w http.ResponseWriter, r *http.Request) {
	port, err := h.ports.Get.Execute(r.Context(), id.PortID(chi.URLParam(r, "id")))
	if err != nil {
		h.fail(w, r, "get port failed", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, toPortResponse(port))
}

func (h *Handler) HandleCreatePort(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	req, ok := httputil.DecodeAndPrepare[CreatePortRequest](w, r, h.logger, ctx, requestcontext.RequestID(ctx))
	if !ok {
		return
	}

	port, err := h.ports.Create.Execute(ctx, req.Name, *req.Capacity, req.Country, req.City, req.ParsedCoordinates())
	if err != nil {
		h.fail(w, r, "create port failed", err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, toPortResponse(port))
}

func (h *Handler) HandleDeletePort(w http.ResponseWriter, r *http.Request) {
	if err := h.ports.Delete.Execute(r.Context(), id.PortID(chi.URLParam(r, "id"))); err != nil {
		h.fail(w, r, "delete port failed", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) HandleListVessels(w http.ResponseWriter, r *http.Request) {
	vessels, err := h.vessels.List.Execute(r.Context())
	if err != nil {
		h.fail(w, r, "list vessels failed", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, toVesselResponses(vessels))
}

func (h *Handler) HandleGetVessel(w http.ResponseWriter, r *http.Request) {
	vessel, err := h.vessels.Get.Execute(r.Context(), vesselID(r))
	if err != nil {
		h.fail(w, r, "get vessel failed", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, toVesselResponse(vessel))
}

func (h *Handler) HandleCreateVessel(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	req, ok := httputil.DecodeAndPrepare[CreateVesselRequest](w, r, h.logger, ctx, requestcontext.RequestID(ctx))
	if !ok {
		return
	}

	vessel, err := h.vessels.Create.Execute(ctx, req.Name, req.Ownership, *req.Year, id.PortID(req.PortID))
	if err != nil {
		h.fail(w, r, "create vessel failed", err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, toVesselResponse(vessel))
}

func (h *Handler) HandleDeleteVessel(w http.ResponseWriter, r *http.Request) {
	if err := h.vessels.Delete.Execute(r.Context(), vesselID(r)); err != nil {
		h.fail(w, r, "delete vessel failed", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) HandleDock(w http.ResponseWriter, r *http.Request) {
	if err := h.vessels.Dock.Execute(r.Context(), vesselID(r)); err != nil {
		h.fail(w, r, "dock vessel failed", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) HandleUndock(w http.ResponseWriter, r *http.Request) {
	if err := h.vessels.Undock.Execute(r.Context(), vesselID(r)); err != nil {
		h.fail(w, r, "undock vessel failed", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) HandleReplaceNextStops(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	req, ok := httputil.DecodeAndPrepare[ReplaceNextStopsRequest](w, r, h.logger, ctx, requestcontext.RequestID(ctx))
	if !ok {
		return
	}

	if err := h.vessels.ReplaceNextStops.Execute(ctx, vesselID(r), req.ParsedPortIDs()); err != nil {
		h.fail(w, r, "replace next stops failed", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) HandleItinerary(w http.ResponseWriter, r *http.Request) {
	itinerary, err := h.vessels.Itinerary.Execute(r.Context(), vesselID(r))
	if err != nil {
		h.fail(w, r, "describe itinerary failed", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, toItineraryResponse(itinerary))
}

func vesselID(r *http.Request) id.VesselID {
	return id.VesselID(chi.URLParam(r, "id"))
}

// fail logs client errors at Warn and server errors at Error, then writes the envelope.
func (h *Handler) fail(w http.ResponseWriter, r *http.Request, msg string, err error) {
	ctx := r.Context()
	attrs := []any{
		"request_id", requestcontext.RequestID(ctx),
		"error", err,
	}
	if dErrors.ToHTTPStatus(dErrors.CodeOf(err)) >= http.StatusInternalServerError {
		h.logger.ErrorContext(ctx, msg, attrs...)
	} else {
		h.logger.WarnContext(ctx, msg, attrs...)
	}
	httputil.WriteError(w, err)
}
