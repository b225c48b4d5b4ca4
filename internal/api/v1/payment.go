package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Mahynlo/Api-AguaVp-sub000/internal/api/dto"
	ierr "github.com/Mahynlo/Api-AguaVp-sub000/internal/errors"
	"github.com/Mahynlo/Api-AguaVp-sub000/internal/logger"
	"github.com/Mahynlo/Api-AguaVp-sub000/internal/service"
)

type PaymentHandler struct {
	service service.PaymentService
	log     *logger.Logger
}

func NewPaymentHandler(service service.PaymentService, log *logger.Logger) *PaymentHandler {
	return &PaymentHandler{service: service, log: log}
}

// @Summary Apply a payment to an invoice
// @Description Clamp the tendered amount to the outstanding balance, return the change and update the invoice atomically
// @Tags Payments
// @Accept json
// @Produce json
// @Param payment body dto.ApplyPaymentRequest true "Payment data"
// @Success 201 {object} dto.ApplyPaymentResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Failure 409 {object} ierr.ErrorResponse
// @Router /pagos [post]
func (h *PaymentHandler) ApplyPayment(c *gin.Context) {
	var req dto.ApplyPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.ApplyPayment(c.Request.Context(), &req)
	if err != nil {
		h.log.Errorw("failed to apply payment", "invoice_id", req.InvoiceID, "error", err)
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// @Summary Get a payment by ID
// @Tags Payments
// @Produce json
// @Param id path int true "Payment ID"
// @Success 200 {object} dto.PaymentResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Router /pagos/{id} [get]
func (h *PaymentHandler) GetPayment(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		c.Error(err)
		return
	}

	resp, err := h.service.GetPayment(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary List payments
// @Description List payments, optionally filtered by invoice
// @Tags Payments
// @Produce json
// @Param factura_id query int false "Invoice ID"
// @Success 200 {object} dto.ListPaymentsResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Router /pagos [get]
func (h *PaymentHandler) ListPayments(c *gin.Context) {
	if raw := c.Query("factura_id"); raw != "" {
		invoiceID, err := parseQueryID(raw, "factura_id")
		if err != nil {
			c.Error(err)
			return
		}
		resp, err := h.service.ListPaymentsByInvoice(c.Request.Context(), invoiceID)
		if err != nil {
			c.Error(err)
			return
		}
		c.JSON(http.StatusOK, resp)
		return
	}

	resp, err := h.service.ListPayments(c.Request.Context())
	if err != nil {
		h.log.Errorw("failed to list payments", "error", err)
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Update a payment
// @Description Update bookkeeping fields of a payment. Monetary fields are immutable.
// @Tags Payments
// @Accept json
// @Produce json
// @Param id path int true "Payment ID"
// @Param payment body dto.UpdatePaymentRequest true "Fields to update"
// @Success 200 {object} dto.PaymentResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Router /pagos/{id} [put]
func (h *PaymentHandler) UpdatePayment(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		c.Error(err)
		return
	}

	var req dto.UpdatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.UpdatePayment(c.Request.Context(), id, &req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
