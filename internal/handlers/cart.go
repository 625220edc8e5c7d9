package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/example/bazaar/internal/middleware"
	"github.com/example/bazaar/internal/services"
)

// CartHandler manages the authenticated user's cart.
type CartHandler struct {
	carts *services.CartService
}

// NewCartHandler constructs a CartHandler.
func NewCartHandler(carts *services.CartService) *CartHandler {
	return &CartHandler{carts: carts}
}

// GetCart returns the cart with derived totals.
func (h *CartHandler) GetCart(c *fiber.Ctx) error {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	cart, err := h.carts.GetCart(userID)
	if err != nil {
		return serviceError(err)
	}

	return sendSuccess(c, fiber.StatusOK, "Cart", fiber.Map{
		"cart":           cart,
		"total_items":    cart.TotalItems(),
		"subtotal_cents": cart.SubtotalCents(),
	})
}

type addCartItemRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// AddItem adds a product to the cart.
func (h *CartHandler) AddItem(c *fiber.Ctx) error {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	var req addCartItemRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid product id")
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	cart, err := h.carts.AddItem(userID, productID, req.Quantity)
	if err != nil {
		return serviceError(err)
	}

	return sendSuccess(c, fiber.StatusOK, "Item added to cart", cart)
}

// RemoveItem drops a product from the cart.
func (h *CartHandler) RemoveItem(c *fiber.Ctx) error {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	productID, err := uuid.Parse(c.Params("productId"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid product id")
	}

	cart, err := h.carts.RemoveItem(userID, productID)
	if err != nil {
		return serviceError(err)
	}

	return sendSuccess(c, fiber.StatusOK, "Item removed from cart", cart)
}
