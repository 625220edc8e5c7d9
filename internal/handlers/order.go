package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/example/bazaar/internal/middleware"
	"github.com/example/bazaar/internal/models"
	"github.com/example/bazaar/internal/services"
	"github.com/example/bazaar/internal/utils"
)

// OrderHandler manages order endpoints for the authenticated user.
type OrderHandler struct {
	orders *services.OrderService
	carts  *services.CartService
}

// NewOrderHandler constructs an OrderHandler.
func NewOrderHandler(orders *services.OrderService, carts *services.CartService) *OrderHandler {
	return &OrderHandler{orders: orders, carts: carts}
}

type placeOrderRequest struct {
	Address    string `json:"address"`
	City       string `json:"city"`
	Country    string `json:"country"`
	PostalCode string `json:"postal_code"`
}

// PlaceOrder turns the user's cart into an order, reserving stock for every
// line, then clears the cart.
func (h *OrderHandler) PlaceOrder(c *fiber.Ctx) error {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	var req placeOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if req.Address == "" || req.City == "" || req.Country == "" || req.PostalCode == "" {
		return fiber.NewError(fiber.StatusBadRequest, "shipping address is incomplete")
	}

	cart, err := h.carts.GetCart(userID)
	if err != nil {
		return serviceError(err)
	}

	order, err := h.orders.PlaceOrder(userID, cart, models.ShippingAddress{
		Address:    req.Address,
		City:       req.City,
		Country:    req.Country,
		PostalCode: req.PostalCode,
	})
	if err != nil {
		return serviceError(err)
	}

	if err := h.carts.Clear(userID); err != nil {
		log.Printf("[Order] failed to clear cart for user %s: %v", userID, err)
	}

	return sendSuccess(c, fiber.StatusCreated, "Order placed", fiber.Map{
		"order":       order,
		"total_cents": order.TotalCents(),
	})
}

// CancelOrder releases the order's reservations and appends the cancelled
// status.
func (h *OrderHandler) CancelOrder(c *fiber.Ctx) error {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	orderID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	order, err := h.orders.CancelOrder(orderID, userID)
	if err != nil {
		return serviceError(err)
	}

	return sendSuccess(c, fiber.StatusOK, "Order cancelled", order)
}

// ListOrders returns the user's orders, newest first.
func (h *OrderHandler) ListOrders(c *fiber.Ctx) error {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	pg := utils.ParsePagination(c)
	orders, total, err := h.orders.ListOrders(userID, pg.Limit, pg.Offset)
	if err != nil {
		return err
	}

	return sendSuccessMeta(c, "Order list", orders, fiber.Map{
		"totalRecords": total,
		"page":         pg.Page,
		"limit":        pg.Limit,
	})
}

// GetOrder returns one of the user's orders.
func (h *OrderHandler) GetOrder(c *fiber.Ctx) error {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	orderID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	order, err := h.orders.GetOrder(orderID, userID)
	if err != nil {
		return serviceError(err)
	}

	return sendSuccess(c, fiber.StatusOK, "Order", fiber.Map{
		"order":       order,
		"total_cents": order.TotalCents(),
	})
}
