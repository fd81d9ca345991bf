package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gymdesk/gymdesk-backend/internal/dto"
	"github.com/gymdesk/gymdesk-backend/internal/middleware"
	"github.com/gymdesk/gymdesk-backend/internal/models"
	"github.com/gymdesk/gymdesk-backend/internal/repository"
	"github.com/gymdesk/gymdesk-backend/internal/service"
	"github.com/labstack/echo/v4"
)

type TimeSlotHandler struct {
	svc             service.ResourceService
	timeSlotRepo    repository.TimeSlotRepository
	resourceRepo    repository.ResourceRepository
	reservationRepo repository.ReservationRepository
}

func NewTimeSlotHandler(
	svc service.ResourceService,
	timeSlotRepo repository.TimeSlotRepository,
	resourceRepo repository.ResourceRepository,
	reservationRepo repository.ReservationRepository,
) *TimeSlotHandler {
	return &TimeSlotHandler{
		svc:             svc,
		timeSlotRepo:    timeSlotRepo,
		resourceRepo:    resourceRepo,
		reservationRepo: reservationRepo,
	}
}

func (h *TimeSlotHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/timeslots", h.ListTimeSlots)
	g.GET("/timeslots/:id/status", h.GetSlotStatus)
	g.POST("/timeslots/generate", h.GenerateTimeSlots, middleware.RequireAdmin())
}

func (h *TimeSlotHandler) ListTimeSlots(c echo.Context) error {
	ctx := c.Request().Context()

	var (
		slots []models.TimeSlot
		err   error
	)
	switch {
	case c.QueryParam("date") != "":
		date, perr := parseDate(c.QueryParam("date"))
		if perr != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid date")
		}
		slots, err = h.timeSlotRepo.FindByDate(ctx, date)
	case c.QueryParam("resource_id") != "":
		id, perr := strconv.ParseUint(c.QueryParam("resource_id"), 10, 64)
		if perr != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid resource_id")
		}
		slots, err = h.timeSlotRepo.FindByResource(ctx, uint(id), nil, nil)
	default:
		return echo.NewHTTPError(http.StatusBadRequest, "provide resource_id or date")
	}
	if err != nil {
		return toHTTPError(err)
	}

	resp := make([]dto.TimeSlotResponse, len(slots))
	for i, s := range slots {
		resp[i] = dto.ToTimeSlotResponse(&s)
	}

	return c.JSON(http.StatusOK, map[string]any{
		"success":   true,
		"timeslots": resp,
	})
}

// GetSlotStatus reports occupancy for one slot: active reservation count
// against the resource's capacity.
func (h *TimeSlotHandler) GetSlotStatus(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid timeslot id")
	}

	ctx := c.Request().Context()
	slot, err := h.timeSlotRepo.FindByID(ctx, uint(id))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "timeslot not found")
	}
	resource, err := h.resourceRepo.FindByID(ctx, slot.ResourceID)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "resource not found")
	}

	active, err := h.reservationRepo.CountByTimeSlot(ctx, h.reservationRepo.GetDB(), slot.ID, models.StatusActive)
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, dto.SlotStatusResponse{
		ID:             slot.ID,
		ResourceID:     slot.ResourceID,
		MaxBookings:    resource.MaxBookings,
		ActiveCount:    active,
		SpotsAvailable: resource.AvailableSpots(int(active)),
		IsAvailable:    slot.IsAvailable,
	})
}

func (h *TimeSlotHandler) GenerateTimeSlots(c echo.Context) error {
	var req dto.GenerateTimeSlotsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.ResourceID == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "resource_id is required")
	}
	start, err := parseDate(req.StartDate)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid start_date")
	}
	end, err := parseDate(req.EndDate)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid end_date")
	}

	slots, err := h.svc.GenerateTimeSlots(c.Request().Context(), req.ResourceID, start, end, req.DurationMinutes)
	if err != nil {
		return toHTTPError(err)
	}

	resp := make([]dto.TimeSlotResponse, len(slots))
	for i, s := range slots {
		resp[i] = dto.ToTimeSlotResponse(&s)
	}

	return c.JSON(http.StatusCreated, map[string]any{
		"success":   true,
		"timeslots": resp,
	})
}

// parseDate accepts RFC 3339 timestamps or plain dates.
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}
