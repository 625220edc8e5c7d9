package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/example/bazaar/internal/middleware"
	"github.com/example/bazaar/internal/services"
)

// WishlistHandler manages the authenticated user's wishlist.
type WishlistHandler struct {
	wishlists *services.WishlistService
}

// NewWishlistHandler constructs a WishlistHandler.
func NewWishlistHandler(wishlists *services.WishlistService) *WishlistHandler {
	return &WishlistHandler{wishlists: wishlists}
}

// GetWishlist returns the wishlist.
func (h *WishlistHandler) GetWishlist(c *fiber.Ctx) error {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	wishlist, err := h.wishlists.GetWishlist(userID)
	if err != nil {
		return serviceError(err)
	}

	return sendSuccess(c, fiber.StatusOK, "Wishlist", wishlist)
}

type addWishlistRequest struct {
	ProductID string `json:"product_id"`
}

// AddProduct puts a product on the wishlist.
func (h *WishlistHandler) AddProduct(c *fiber.Ctx) error {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	var req addWishlistRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid product id")
	}

	wishlist, err := h.wishlists.AddProduct(userID, productID)
	if err != nil {
		return serviceError(err)
	}

	return sendSuccess(c, fiber.StatusOK, "Product added to wishlist", wishlist)
}

// RemoveProduct drops a product from the wishlist.
func (h *WishlistHandler) RemoveProduct(c *fiber.Ctx) error {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	productID, err := uuid.Parse(c.Params("productId"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid product id")
	}

	wishlist, err := h.wishlists.RemoveProduct(userID, productID)
	if err != nil {
		return serviceError(err)
	}

	return sendSuccess(c, fiber.StatusOK, "Product removed from wishlist", wishlist)
}
