package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/example/bazaar/internal/middleware"
	"github.com/example/bazaar/internal/models"
	"github.com/example/bazaar/internal/services"
)

// PaymentHandler records payments against the user's orders.
type PaymentHandler struct {
	payments *services.PaymentService
}

// NewPaymentHandler constructs a PaymentHandler.
func NewPaymentHandler(payments *services.PaymentService) *PaymentHandler {
	return &PaymentHandler{payments: payments}
}

type recordPaymentRequest struct {
	OrderID       string `json:"order_id"`
	Method        string `json:"method"`
	TransactionID string `json:"transaction_id"`
	AmountCents   int64  `json:"amount_cents"`
}

// RecordPayment creates a pending payment for an order owned by the caller.
func (h *PaymentHandler) RecordPayment(c *fiber.Ctx) error {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	var req recordPaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	orderID, err := uuid.Parse(req.OrderID)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid order id")
	}

	method := models.PaymentMethod(req.Method)
	if method != models.PaymentCash && method != models.PaymentCard {
		return fiber.NewError(fiber.StatusBadRequest, "method must be cash or card")
	}
	if req.AmountCents < 0 {
		return fiber.NewError(fiber.StatusBadRequest, "amount cannot be negative")
	}

	payment, err := h.payments.RecordPayment(orderID, userID, method, req.TransactionID, req.AmountCents)
	if err != nil {
		return serviceError(err)
	}

	return sendSuccess(c, fiber.StatusCreated, "Payment recorded", payment)
}

type advancePaymentRequest struct {
	Status string `json:"status"`
}

// AdvancePayment appends the next payment status entry.
func (h *PaymentHandler) AdvancePayment(c *fiber.Ctx) error {
	paymentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	var req advancePaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	payment, err := h.payments.AdvanceStatus(paymentID, models.PaymentStatus(req.Status))
	if err != nil {
		return serviceError(err)
	}

	return sendSuccess(c, fiber.StatusOK, "Payment status updated", payment)
}
