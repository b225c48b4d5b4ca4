package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Mahynlo/Api-AguaVp-sub000/internal/api/dto"
	ierr "github.com/Mahynlo/Api-AguaVp-sub000/internal/errors"
	"github.com/Mahynlo/Api-AguaVp-sub000/internal/logger"
	"github.com/Mahynlo/Api-AguaVp-sub000/internal/service"
)

type MeterHandler struct {
	service service.MeterService
	log     *logger.Logger
}

func NewMeterHandler(service service.MeterService, log *logger.Logger) *MeterHandler {
	return &MeterHandler{service: service, log: log}
}

// @Summary Register a new meter
// @Tags Meters
// @Accept json
// @Produce json
// @Param meter body dto.CreateMeterRequest true "Meter data"
// @Success 201 {object} dto.MeterResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 409 {object} ierr.ErrorResponse
// @Router /medidores [post]
func (h *MeterHandler) CreateMeter(c *gin.Context) {
	var req dto.CreateMeterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.CreateMeter(c.Request.Context(), &req)
	if err != nil {
		h.log.Errorw("failed to create meter", "error", err)
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// @Summary Get a meter by ID
// @Tags Meters
// @Produce json
// @Param id path int true "Meter ID"
// @Success 200 {object} dto.MeterResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Router /medidores/{id} [get]
func (h *MeterHandler) GetMeter(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		c.Error(err)
		return
	}

	resp, err := h.service.GetMeter(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary List meters
// @Tags Meters
// @Produce json
// @Success 200 {object} dto.ListMetersResponse
// @Router /medidores [get]
func (h *MeterHandler) ListMeters(c *gin.Context) {
	resp, err := h.service.ListMeters(c.Request.Context())
	if err != nil {
		h.log.Errorw("failed to list meters", "error", err)
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Update a meter
// @Tags Meters
// @Accept json
// @Produce json
// @Param id path int true "Meter ID"
// @Param meter body dto.UpdateMeterRequest true "Fields to update"
// @Success 200 {object} dto.MeterResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Router /medidores/{id} [put]
func (h *MeterHandler) UpdateMeter(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		c.Error(err)
		return
	}

	var req dto.UpdateMeterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.UpdateMeter(c.Request.Context(), id, &req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Delete a meter
// @Tags Meters
// @Param id path int true "Meter ID"
// @Success 204
// @Failure 404 {object} ierr.ErrorResponse
// @Router /medidores/{id} [delete]
func (h *MeterHandler) DeleteMeter(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		c.Error(err)
		return
	}

	if err := h.service.DeleteMeter(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}

	c.Status(http.StatusNoContent)
}
