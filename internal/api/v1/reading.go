package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Mahynlo/Api-AguaVp-sub000/internal/api/dto"
	ierr "github.com/Mahynlo/Api-AguaVp-sub000/internal/errors"
	"github.com/Mahynlo/Api-AguaVp-sub000/internal/logger"
	"github.com/Mahynlo/Api-AguaVp-sub000/internal/service"
)

type ReadingHandler struct {
	service service.ReadingService
	log     *logger.Logger
}

func NewReadingHandler(service service.ReadingService, log *logger.Logger) *ReadingHandler {
	return &ReadingHandler{service: service, log: log}
}

// @Summary Register a meter reading
// @Description Register the consumption of one meter for one period
// @Tags Readings
// @Accept json
// @Produce json
// @Param reading body dto.CreateReadingRequest true "Reading data"
// @Success 201 {object} dto.ReadingResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 409 {object} ierr.ErrorResponse
// @Router /lecturas [post]
func (h *ReadingHandler) CreateReading(c *gin.Context) {
	var req dto.CreateReadingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.CreateReading(c.Request.Context(), &req)
	if err != nil {
		h.log.Errorw("failed to create reading", "error", err)
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// @Summary Get a reading by ID
// @Tags Readings
// @Produce json
// @Param id path int true "Reading ID"
// @Success 200 {object} dto.ReadingResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Router /lecturas/{id} [get]
func (h *ReadingHandler) GetReading(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		c.Error(err)
		return
	}

	resp, err := h.service.GetReading(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary List readings
// @Description List readings, optionally filtered by period
// @Tags Readings
// @Produce json
// @Param periodo query string false "Billing period (YYYY-MM)"
// @Success 200 {object} dto.ListReadingsResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Router /lecturas [get]
func (h *ReadingHandler) ListReadings(c *gin.Context) {
	if period := c.Query("periodo"); period != "" {
		resp, err := h.service.ListReadingsByPeriod(c.Request.Context(), period)
		if err != nil {
			c.Error(err)
			return
		}
		c.JSON(http.StatusOK, resp)
		return
	}

	resp, err := h.service.ListReadings(c.Request.Context())
	if err != nil {
		h.log.Errorw("failed to list readings", "error", err)
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Update a reading
// @Description Update an unbilled reading. Billed readings are immutable.
// @Tags Readings
// @Accept json
// @Produce json
// @Param id path int true "Reading ID"
// @Param reading body dto.UpdateReadingRequest true "Fields to update"
// @Success 200 {object} dto.ReadingResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Failure 409 {object} ierr.ErrorResponse
// @Router /lecturas/{id} [put]
func (h *ReadingHandler) UpdateReading(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		c.Error(err)
		return
	}

	var req dto.UpdateReadingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.UpdateReading(c.Request.Context(), id, &req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Delete a reading
// @Description Delete an unbilled reading. Billed readings cannot be deleted.
// @Tags Readings
// @Param id path int true "Reading ID"
// @Success 204
// @Failure 404 {object} ierr.ErrorResponse
// @Failure 409 {object} ierr.ErrorResponse
// @Router /lecturas/{id} [delete]
func (h *ReadingHandler) DeleteReading(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		c.Error(err)
		return
	}

	if err := h.service.DeleteReading(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}

	c.Status(http.StatusNoContent)
}
