package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/ppuranik79/Meeting-Room-Booking/internal/bookings/service"
	apperrors "github.com/ppuranik79/Meeting-Room-Booking/pkg/errors"
	httputil "github.com/ppuranik79/Meeting-Room-Booking/pkg/http"
	"github.com/ppuranik79/Meeting-Room-Booking/pkg/logger"
	"github.com/ppuranik79/Meeting-Room-Booking/pkg/model"
)

type BookingHandler struct {
	service service.BookingService
	log     *logger.Logger
}

func NewBookingHandler(service service.BookingService, log *logger.Logger) *BookingHandler {
	return &BookingHandler{
		service: service,
		log:     log,
	}
}

// CreateBookingResponse is the admission result on the wire. Success is true
// for both outcomes; persisted_not_confirmed only means the confirmation
// email may be late.
type CreateBookingResponse struct {
	Success   bool            `json:"success"`
	BookingID string          `json:"bookingId"`
	Outcome   service.Outcome `json:"outcome"`
}

func (h *BookingHandler) Create(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var booking model.Booking
	if err := json.NewDecoder(r.Body).Decode(&booking); err != nil {
		if writeErr := httputil.WriteJSON(w, http.StatusBadRequest, httputil.ErrorResponse{
			Error: "Invalid request body",
		}); writeErr != nil {
			h.log.Error("failed to write JSON response", "handler", "Create", "operation", "WriteJSON", "error", writeErr)
		}
		return
	}

	result, err := h.service.Create(r.Context(), &booking)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Create", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteJSON(w, http.StatusOK, CreateBookingResponse{
		Success:   true,
		BookingID: result.BookingID,
		Outcome:   result.Outcome,
	}); err != nil {
		h.log.Error("failed to write JSON response", "handler", "Create", "operation", "WriteJSON", "error", err)
	}
}

func (h *BookingHandler) GetByRoomAndDate(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	query := r.URL.Query()
	roomID := query.Get("roomId")
	date := query.Get("date")

	if roomID == "" || date == "" {
		if writeErr := httputil.WriteError(w, apperrors.InvalidInput("Both 'roomId' and 'date' query parameters are required")); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "GetByRoomAndDate", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	bookings, err := h.service.ListByRoomAndDate(r.Context(), roomID, date)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "GetByRoomAndDate", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, bookings); err != nil {
		h.log.Error("failed to write success response", "handler", "GetByRoomAndDate", "operation", "WriteSuccess", "error", err)
	}
}

func (h *BookingHandler) RegisterRoutes(router *httprouter.Router) {
	router.POST("/api/bookings", h.Create)
	router.GET("/api/bookings", h.GetByRoomAndDate)
}
