package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/example/bazaar/internal/models"
	"github.com/example/bazaar/internal/services"
	"github.com/example/bazaar/internal/store"
	"github.com/example/bazaar/internal/utils"
)

// ProductHandler manages catalog endpoints.
type ProductHandler struct {
	products store.ProductStore
	ledger   *services.InventoryLedger
}

// NewProductHandler constructs a ProductHandler.
func NewProductHandler(products store.ProductStore, ledger *services.InventoryLedger) *ProductHandler {
	return &ProductHandler{products: products, ledger: ledger}
}

type productRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	PriceCents  int64    `json:"price_cents"`
	CategoryID  string   `json:"category_id"`
	Stock       int      `json:"stock"`
	Images      []string `json:"images"`
	Shipping    string   `json:"shipping"`
	Status      string   `json:"status"`
}

// CreateProduct adds a catalog entry.
func (h *ProductHandler) CreateProduct(c *fiber.Ctx) error {
	var req productRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if req.Name == "" || req.PriceCents < 1 {
		return fiber.NewError(fiber.StatusBadRequest, "name and a positive price are required")
	}
	if req.Shipping != "" && !models.ValidDeliveryMethod(req.Shipping) {
		return fiber.NewError(fiber.StatusBadRequest, "shipping must be free, standard or express")
	}
	if req.Stock < 0 {
		return fiber.NewError(fiber.StatusBadRequest, "stock cannot be negative")
	}

	categoryID, err := uuid.Parse(req.CategoryID)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid category id")
	}
	exists, err := h.products.CategoryExists(categoryID)
	if err != nil {
		return err
	}
	if !exists {
		return fiber.NewError(fiber.StatusBadRequest, "unknown category")
	}

	product := models.Product{
		Name:        req.Name,
		Description: req.Description,
		PriceCents:  req.PriceCents,
		CategoryID:  categoryID,
		Inventory:   models.Inventory{Stock: req.Stock},
		Images:      req.Images,
		Shipping:    models.DeliveryMethod(req.Shipping),
		Status:      models.ProductStatus(req.Status),
	}
	if product.Shipping == "" {
		product.Shipping = models.DeliveryStandard
	}
	if product.Status == "" {
		product.Status = models.ProductDraft
	}

	if err := h.products.Create(&product); err != nil {
		return err
	}

	return sendSuccess(c, fiber.StatusCreated, "Product created", product)
}

// ListProducts returns a catalog page.
func (h *ProductHandler) ListProducts(c *fiber.Ctx) error {
	pg := utils.ParsePagination(c)

	products, total, err := h.products.List(pg.Limit, pg.Offset)
	if err != nil {
		return err
	}

	return sendSuccessMeta(c, "Product list", products, fiber.Map{
		"totalRecords": total,
		"page":         pg.Page,
		"limit":        pg.Limit,
	})
}

// GetProduct returns one product with its derived available stock.
func (h *ProductHandler) GetProduct(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	product, err := h.products.FindByID(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "product not found")
		}
		return err
	}

	return sendSuccess(c, fiber.StatusOK, "Product", fiber.Map{
		"product":         product,
		"available_stock": product.Inventory.Available(),
	})
}

type setStockRequest struct {
	Stock int `json:"stock"`
}

// SetStock replaces a product's stock level.
func (h *ProductHandler) SetStock(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	var req setStockRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if req.Stock < 0 {
		return fiber.NewError(fiber.StatusBadRequest, "stock cannot be negative")
	}

	if err := h.ledger.SetStock(id, req.Stock); err != nil {
		return serviceError(err)
	}

	return sendSuccess(c, fiber.StatusOK, "Stock updated", nil)
}

type categoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// CreateCategory adds a category.
func (h *ProductHandler) CreateCategory(c *fiber.Ctx) error {
	var req categoryRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if req.Name == "" {
		return fiber.NewError(fiber.StatusBadRequest, "name is required")
	}

	category := models.Category{Name: req.Name, Description: req.Description}
	if err := h.products.CreateCategory(&category); err != nil {
		return err
	}

	return sendSuccess(c, fiber.StatusCreated, "Category created", category)
}

// ListCategories returns all categories.
func (h *ProductHandler) ListCategories(c *fiber.Ctx) error {
	categories, err := h.products.ListCategories()
	if err != nil {
		return err
	}
	return sendSuccess(c, fiber.StatusOK, "Category list", categories)
}
