package handler

import (
	"net/http"

	"github.com/gymdesk/gymdesk-backend/internal/middleware"
	"github.com/gymdesk/gymdesk-backend/internal/service"
	"github.com/labstack/echo/v4"
)

type ExportHandler struct {
	svc service.ExportService
}

func NewExportHandler(svc service.ExportService) *ExportHandler {
	return &ExportHandler{svc: svc}
}

func (h *ExportHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/export/weekly-schedule-print", h.WeeklySchedulePrint)
	g.GET("/export/calendar.ics", h.CalendarICS)
}

func (h *ExportHandler) WeeklySchedulePrint(c echo.Context) error {
	start, err := parseDate(c.QueryParam("start_date"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid start_date")
	}
	end, err := parseDate(c.QueryParam("end_date"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid end_date")
	}

	doc, err := h.svc.WeeklySchedule(c.Request().Context(), middleware.UserID(c), start, end)
	if err != nil {
		return toHTTPError(err)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, `inline; filename="weekly-schedule.html"`)
	return c.Blob(http.StatusOK, "text/html; charset=utf-8", doc)
}

func (h *ExportHandler) CalendarICS(c echo.Context) error {
	start, err := parseDate(c.QueryParam("start_date"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid start_date")
	}
	end, err := parseDate(c.QueryParam("end_date"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid end_date")
	}

	doc, err := h.svc.ICalendar(c.Request().Context(), middleware.UserID(c), start, end)
	if err != nil {
		return toHTTPError(err)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="gymdesk-reservations.ics"`)
	return c.Blob(http.StatusOK, "text/calendar; charset=utf-8", doc)
}
