package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Mahynlo/Api-AguaVp-sub000/internal/api/dto"
	ierr "github.com/Mahynlo/Api-AguaVp-sub000/internal/errors"
	"github.com/Mahynlo/Api-AguaVp-sub000/internal/logger"
	"github.com/Mahynlo/Api-AguaVp-sub000/internal/service"
)

type TariffHandler struct {
	service service.TariffService
	log     *logger.Logger
}

func NewTariffHandler(service service.TariffService, log *logger.Logger) *TariffHandler {
	return &TariffHandler{service: service, log: log}
}

// @Summary Create a new tariff
// @Description Create a tariff, optionally with its consumption bands
// @Tags Tariffs
// @Accept json
// @Produce json
// @Param tariff body dto.CreateTariffRequest true "Tariff configuration"
// @Success 201 {object} dto.TariffResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 500 {object} ierr.ErrorResponse
// @Router /tarifas [post]
func (h *TariffHandler) CreateTariff(c *gin.Context) {
	var req dto.CreateTariffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.CreateTariff(c.Request.Context(), &req)
	if err != nil {
		h.log.Errorw("failed to create tariff", "error", err)
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// @Summary Get a tariff by ID
// @Description Get a tariff with its consumption bands
// @Tags Tariffs
// @Produce json
// @Param id path int true "Tariff ID"
// @Success 200 {object} dto.TariffResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Router /tarifas/{id} [get]
func (h *TariffHandler) GetTariff(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		c.Error(err)
		return
	}

	resp, err := h.service.GetTariff(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary List tariffs
// @Tags Tariffs
// @Produce json
// @Success 200 {object} dto.ListTariffsResponse
// @Failure 500 {object} ierr.ErrorResponse
// @Router /tarifas [get]
func (h *TariffHandler) ListTariffs(c *gin.Context) {
	resp, err := h.service.ListTariffs(c.Request.Context())
	if err != nil {
		h.log.Errorw("failed to list tariffs", "error", err)
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Update a tariff
// @Description Update tariff name and description
// @Tags Tariffs
// @Accept json
// @Produce json
// @Param id path int true "Tariff ID"
// @Param tariff body dto.UpdateTariffRequest true "Fields to update"
// @Success 200 {object} dto.TariffResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Router /tarifas/{id} [put]
func (h *TariffHandler) UpdateTariff(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		c.Error(err)
		return
	}

	var req dto.UpdateTariffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.UpdateTariff(c.Request.Context(), id, &req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Replace the bands of a tariff
// @Description Atomically swap the tariff's whole band set
// @Tags Tariffs
// @Accept json
// @Produce json
// @Param id path int true "Tariff ID"
// @Param bands body dto.ReplaceBandsRequest true "New band set"
// @Success 200 {object} dto.TariffResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Router /tarifas/{id}/rangos [put]
func (h *TariffHandler) ReplaceBands(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		c.Error(err)
		return
	}

	var req dto.ReplaceBandsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.ReplaceBands(c.Request.Context(), id, &req)
	if err != nil {
		h.log.Errorw("failed to replace tariff bands", "tariff_id", id, "error", err)
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Delete a tariff
// @Tags Tariffs
// @Param id path int true "Tariff ID"
// @Success 204
// @Failure 404 {object} ierr.ErrorResponse
// @Router /tarifas/{id} [delete]
func (h *TariffHandler) DeleteTariff(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		c.Error(err)
		return
	}

	if err := h.service.DeleteTariff(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}

	c.Status(http.StatusNoContent)
}
