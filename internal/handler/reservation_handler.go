package handler

import (
	"net/http"
	"strconv"

	"github.com/gymdesk/gymdesk-backend/internal/dto"
	"github.com/gymdesk/gymdesk-backend/internal/middleware"
	"github.com/gymdesk/gymdesk-backend/internal/models"
	"github.com/gymdesk/gymdesk-backend/internal/service"
	"github.com/labstack/echo/v4"
)

type ReservationHandler struct {
	svc service.ReservationService
}

func NewReservationHandler(svc service.ReservationService) *ReservationHandler {
	return &ReservationHandler{svc: svc}
}

func (h *ReservationHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/reservations/create", h.CreateReservation)
	g.GET("/reservations", h.ListReservations)
	g.GET("/reservations/:id", h.GetReservation)
	g.POST("/reservations/:id/cancel", h.CancelReservation)
}

func (h *ReservationHandler) CreateReservation(c echo.Context) error {
	var req dto.CreateReservationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.ResourceID == 0 || req.TimeSlotID == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "resource_id and timeslot_id are required")
	}

	reservation, err := h.svc.CreateReservation(c.Request().Context(), middleware.UserID(c), req.ResourceID, req.TimeSlotID, req.Notes)
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusCreated, map[string]any{
		"success":     true,
		"reservation": dto.ToReservationResponse(reservation),
	})
}

// ListReservations returns the caller's reservations; admins see everyone's.
func (h *ReservationHandler) ListReservations(c echo.Context) error {
	var status *models.ReservationStatus
	if s := c.QueryParam("status"); s != "" {
		rs := models.ReservationStatus(s)
		status = &rs
	}

	ctx := c.Request().Context()
	var (
		reservations []models.Reservation
		err          error
	)
	if middleware.IsAdmin(c) {
		reservations, err = h.svc.ListAllReservations(ctx, status)
	} else {
		reservations, err = h.svc.ListUserReservations(ctx, middleware.UserID(c), status)
	}
	if err != nil {
		return toHTTPError(err)
	}

	resp := make([]dto.ReservationResponse, len(reservations))
	for i, r := range reservations {
		resp[i] = dto.ToReservationResponse(&r)
	}

	return c.JSON(http.StatusOK, map[string]any{
		"success":      true,
		"reservations": resp,
	})
}

func (h *ReservationHandler) GetReservation(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid reservation id")
	}

	reservation, err := h.svc.GetReservation(c.Request().Context(), uint(id))
	if err != nil {
		return toHTTPError(err)
	}
	if reservation.UserID != middleware.UserID(c) && !middleware.IsAdmin(c) {
		return echo.NewHTTPError(http.StatusForbidden, "no permission to view this reservation")
	}

	return c.JSON(http.StatusOK, map[string]any{
		"success":     true,
		"reservation": dto.ToReservationResponse(reservation),
	})
}

func (h *ReservationHandler) CancelReservation(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid reservation id")
	}

	reservation, err := h.svc.CancelReservation(c.Request().Context(), uint(id), middleware.UserID(c))
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, map[string]any{
		"success":     true,
		"reservation": dto.ToReservationResponse(reservation),
	})
}
