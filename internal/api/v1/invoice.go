package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Mahynlo/Api-AguaVp-sub000/internal/api/dto"
	ierr "github.com/Mahynlo/Api-AguaVp-sub000/internal/errors"
	"github.com/Mahynlo/Api-AguaVp-sub000/internal/logger"
	"github.com/Mahynlo/Api-AguaVp-sub000/internal/service"
)

type InvoiceHandler struct {
	service service.InvoiceService
	log     *logger.Logger
}

func NewInvoiceHandler(service service.InvoiceService, log *logger.Logger) *InvoiceHandler {
	return &InvoiceHandler{service: service, log: log}
}

// @Summary Create an invoice for a reading
// @Description Rate the consumption against the tariff and persist the invoice
// @Tags Invoices
// @Accept json
// @Produce json
// @Param invoice body dto.CreateInvoiceRequest true "Invoice data"
// @Success 201 {object} dto.InvoiceResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Failure 409 {object} ierr.ErrorResponse
// @Router /facturas [post]
func (h *InvoiceHandler) CreateInvoice(c *gin.Context) {
	var req dto.CreateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.CreateInvoice(c.Request.Context(), &req)
	if err != nil {
		h.log.Errorw("failed to create invoice", "error", err)
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// @Summary Generate invoices for a period
// @Description Create invoices for every unbilled reading of the period. Per-reading failures are reported in the details, never aborting the batch.
// @Tags Invoices
// @Accept json
// @Produce json
// @Param request body dto.GenerateInvoicesRequest true "Generation parameters"
// @Success 200 {object} dto.GenerateInvoicesResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Router /facturas/generar [post]
func (h *InvoiceHandler) GenerateInvoices(c *gin.Context) {
	var req dto.GenerateInvoicesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.GenerateForPeriod(c.Request.Context(), &req)
	if err != nil {
		h.log.Errorw("bulk invoice generation failed", "period", req.Period, "error", err)
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Get an invoice by ID
// @Tags Invoices
// @Produce json
// @Param id path int true "Invoice ID"
// @Success 200 {object} dto.InvoiceResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Router /facturas/{id} [get]
func (h *InvoiceHandler) GetInvoice(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		c.Error(err)
		return
	}

	resp, err := h.service.GetInvoice(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary List invoices
// @Description List invoices, optionally filtered by customer
// @Tags Invoices
// @Produce json
// @Param cliente_id query int false "Customer ID"
// @Success 200 {object} dto.ListInvoicesResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Router /facturas [get]
func (h *InvoiceHandler) ListInvoices(c *gin.Context) {
	if raw := c.Query("cliente_id"); raw != "" {
		customerID, err := parseQueryID(raw, "cliente_id")
		if err != nil {
			c.Error(err)
			return
		}
		resp, err := h.service.ListInvoicesByCustomer(c.Request.Context(), customerID)
		if err != nil {
			c.Error(err)
			return
		}
		c.JSON(http.StatusOK, resp)
		return
	}

	resp, err := h.service.ListInvoices(c.Request.Context())
	if err != nil {
		h.log.Errorw("failed to list invoices", "error", err)
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
