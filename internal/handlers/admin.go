package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/example/bazaar/internal/models"
	"github.com/example/bazaar/internal/services"
	"github.com/example/bazaar/internal/validation"
)

// AdminHandler covers administrative account operations.
type AdminHandler struct {
	accounts *services.AccountService
	orders   *services.OrderService
}

// NewAdminHandler constructs an AdminHandler.
func NewAdminHandler(accounts *services.AccountService, orders *services.OrderService) *AdminHandler {
	return &AdminHandler{accounts: accounts, orders: orders}
}

type approveUserRequest struct {
	Status string `json:"status"`
}

// ApproveUser records the admin decision on a pending account.
func (h *AdminHandler) ApproveUser(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("userId"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid user id")
	}

	var req approveUserRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if errs := validation.ApproveUserSchema.Validate(map[string]string{
		"status": req.Status,
	}); errs != nil {
		return sendValidationErrors(c, errs)
	}

	user, err := h.accounts.Approve(userID, models.AccountStatus(req.Status))
	if err != nil {
		return serviceError(err)
	}

	return sendSuccess(c, fiber.StatusOK, "User account "+req.Status, user)
}

type advanceOrderRequest struct {
	Status string `json:"status"`
	Note   string `json:"note"`
}

// AdvanceOrder moves an order along its status history.
func (h *AdminHandler) AdvanceOrder(c *fiber.Ctx) error {
	orderID, err := uuid.Parse(c.Params("orderId"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid order id")
	}

	var req advanceOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	order, err := h.orders.AdvanceStatus(orderID, models.OrderStatus(req.Status), req.Note)
	if err != nil {
		return serviceError(err)
	}

	return sendSuccess(c, fiber.StatusOK, "Order status updated", order)
}
