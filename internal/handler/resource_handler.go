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

type ResourceHandler struct {
	svc service.ResourceService
}

func NewResourceHandler(svc service.ResourceService) *ResourceHandler {
	return &ResourceHandler{svc: svc}
}

func (h *ResourceHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/resources", h.ListResources)
	g.GET("/resources/:id", h.GetResource)

	admin := g.Group("", middleware.RequireAdmin())
	admin.POST("/resources/create", h.CreateResource)
	admin.PUT("/resources/:id", h.UpdateResource)
	admin.DELETE("/resources/:id", h.DeleteResource)
}

func (h *ResourceHandler) ListResources(c echo.Context) error {
	var typeFilter *models.ResourceType
	if t := c.QueryParam("type"); t != "" {
		rt := models.ResourceType(t)
		typeFilter = &rt
	}
	var ownerFilter *uint
	if o := c.QueryParam("owner_id"); o != "" {
		id, err := strconv.ParseUint(o, 10, 64)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid owner_id")
		}
		owner := uint(id)
		ownerFilter = &owner
	}

	resources, err := h.svc.ListResources(c.Request().Context(), typeFilter, ownerFilter)
	if err != nil {
		return toHTTPError(err)
	}

	resp := make([]dto.ResourceResponse, len(resources))
	for i, r := range resources {
		resp[i] = dto.ToResourceResponse(&r)
	}

	return c.JSON(http.StatusOK, map[string]any{
		"success":   true,
		"resources": resp,
	})
}

func (h *ResourceHandler) GetResource(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid resource id")
	}

	resource, err := h.svc.GetResource(c.Request().Context(), uint(id))
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, map[string]any{
		"success":  true,
		"resource": dto.ToResourceResponse(resource),
	})
}

func (h *ResourceHandler) CreateResource(c echo.Context) error {
	var req dto.CreateResourceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	owner := middleware.UserID(c)
	resource, err := h.svc.CreateResource(c.Request().Context(), req.Name, models.ResourceType(req.Type), req.MaxBookings, req.ColorCode, &owner)
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusCreated, map[string]any{
		"success":  true,
		"resource": dto.ToResourceResponse(resource),
	})
}

func (h *ResourceHandler) UpdateResource(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid resource id")
	}

	var req dto.CreateResourceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	resource, err := h.svc.UpdateResource(c.Request().Context(), uint(id), req.Name, models.ResourceType(req.Type), req.MaxBookings, req.ColorCode)
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, map[string]any{
		"success":  true,
		"resource": dto.ToResourceResponse(resource),
	})
}

func (h *ResourceHandler) DeleteResource(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid resource id")
	}

	if err := h.svc.DeleteResource(c.Request().Context(), uint(id)); err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, map[string]any{"success": true})
}
