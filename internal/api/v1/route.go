package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Mahynlo/Api-AguaVp-sub000/internal/api/dto"
	ierr "github.com/Mahynlo/Api-AguaVp-sub000/internal/errors"
	"github.com/Mahynlo/Api-AguaVp-sub000/internal/logger"
	"github.com/Mahynlo/Api-AguaVp-sub000/internal/service"
)

type RouteHandler struct {
	service service.RouteService
	log     *logger.Logger
}

func NewRouteHandler(service service.RouteService, log *logger.Logger) *RouteHandler {
	return &RouteHandler{service: service, log: log}
}

// @Summary Create a new route
// @Tags Routes
// @Accept json
// @Produce json
// @Param route body dto.CreateRouteRequest true "Route data"
// @Success 201 {object} dto.RouteResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Router /rutas [post]
func (h *RouteHandler) CreateRoute(c *gin.Context) {
	var req dto.CreateRouteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.CreateRoute(c.Request.Context(), &req)
	if err != nil {
		h.log.Errorw("failed to create route", "error", err)
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// @Summary Get a route by ID
// @Tags Routes
// @Produce json
// @Param id path int true "Route ID"
// @Success 200 {object} dto.RouteResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Router /rutas/{id} [get]
func (h *RouteHandler) GetRoute(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		c.Error(err)
		return
	}

	resp, err := h.service.GetRoute(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary List routes
// @Tags Routes
// @Produce json
// @Success 200 {object} dto.ListRoutesResponse
// @Router /rutas [get]
func (h *RouteHandler) ListRoutes(c *gin.Context) {
	resp, err := h.service.ListRoutes(c.Request.Context())
	if err != nil {
		h.log.Errorw("failed to list routes", "error", err)
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Update a route
// @Tags Routes
// @Accept json
// @Produce json
// @Param id path int true "Route ID"
// @Param route body dto.UpdateRouteRequest true "Fields to update"
// @Success 200 {object} dto.RouteResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Router /rutas/{id} [put]
func (h *RouteHandler) UpdateRoute(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		c.Error(err)
		return
	}

	var req dto.UpdateRouteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.UpdateRoute(c.Request.Context(), id, &req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Delete a route
// @Tags Routes
// @Param id path int true "Route ID"
// @Success 204
// @Failure 404 {object} ierr.ErrorResponse
// @Router /rutas/{id} [delete]
func (h *RouteHandler) DeleteRoute(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		c.Error(err)
		return
	}

	if err := h.service.DeleteRoute(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}

	c.Status(http.StatusNoContent)
}
