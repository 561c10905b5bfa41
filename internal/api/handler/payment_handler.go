package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/staynest/staynest/internal/core/domain"
	"github.com/staynest/staynest/internal/core/ports"
)

// PaymentHandler handles the /payments family.
type PaymentHandler struct {
	payments ports.PaymentService
}

func NewPaymentHandler(payments ports.PaymentService) *PaymentHandler {
	return &PaymentHandler{payments: payments}
}

type recordPaymentRequest struct {
	TenantID string  `json:"tenant_id" validate:"required"`
	Amount   float64 `json:"amount"    validate:"required,gt=0"`
	Month    string  `json:"month"     validate:"required"`
	Year     int     `json:"year"      validate:"required,gt=2000"`
	Method   string  `json:"method"    validate:"required,oneof=cash online bank_transfer"`
}

type updatePaymentRequest struct {
	Status string `json:"status" validate:"required,oneof=paid pending overdue"`
}

// ListAll returns every payment on record.
//
// @Summary      List all payments
// @Tags         payments
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Payment
// @Router       /payments/all [get]
func (h *PaymentHandler) ListAll(c echo.Context) error {
	payments, err := h.payments.ListAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, payments)
}

// ListMine returns the caller's own payments.
//
// @Summary      List own payments
// @Tags         payments
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Payment
// @Router       /payments [get]
func (h *PaymentHandler) ListMine(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	payments, err := h.payments.ListForTenant(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, payments)
}

// Record books a rent payment.
//
// @Summary      Record a payment
// @Tags         payments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      recordPaymentRequest  true  "Payment details"
// @Success      201   {object}  domain.Payment
// @Failure      404   {object}  map[string]string
// @Router       /payments [post]
func (h *PaymentHandler) Record(c echo.Context) error {
	var req recordPaymentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	payment, err := h.payments.Record(c.Request().Context(), ports.RecordPaymentInput{
		TenantID: req.TenantID,
		Amount:   req.Amount,
		Month:    req.Month,
		Year:     req.Year,
		Method:   domain.PaymentMethod(req.Method),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, payment)
}

// UpdateStatus sets a payment's settlement status.
//
// @Summary      Update payment status
// @Tags         payments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                true  "Payment ID"
// @Param        body  body      updatePaymentRequest  true  "New status"
// @Success      200   {object}  domain.Payment
// @Failure      404   {object}  map[string]string
// @Router       /payments/{id} [put]
func (h *PaymentHandler) UpdateStatus(c echo.Context) error {
	var req updatePaymentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	payment, err := h.payments.UpdateStatus(c.Request().Context(), c.Param("id"), domain.PaymentStatus(req.Status))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, payment)
}

// MarkPaid settles a payment; idempotent for already-paid payments.
//
// @Summary      Mark a payment paid
// @Tags         payments
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Payment ID"
// @Success      200  {object}  domain.Payment
// @Failure      404  {object}  map[string]string
// @Router       /payments/{id}/mark-paid [patch]
func (h *PaymentHandler) MarkPaid(c echo.Context) error {
	payment, err := h.payments.MarkPaid(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, payment)
}

// Summary returns the aggregate dashboard totals.
//
// @Summary      Payment summary
// @Tags         payments
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.PaymentSummary
// @Router       /payments/summary [get]
func (h *PaymentHandler) Summary(c echo.Context) error {
	summary, err := h.payments.Summary(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, summary)
}

// Receipt streams the rendered receipt for a payment.
//
// @Summary      Download a receipt
// @Tags         payments
// @Produce      plain
// @Security     BearerAuth
// @Param        id  path  string  true  "Payment ID"
// @Success      200 {string} string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /payments/{id}/receipt [get]
func (h *PaymentHandler) Receipt(c echo.Context) error {
	userID, role, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	content, contentType, err := h.payments.Receipt(c.Request().Context(), c.Param("id"), userID, role)
	if err != nil {
		return err
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="receipt.txt"`)
	return c.Blob(http.StatusOK, contentType, content)
}
