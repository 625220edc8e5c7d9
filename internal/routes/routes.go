package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/example/bazaar/internal/config"
	"github.com/example/bazaar/internal/handlers"
	"github.com/example/bazaar/internal/middleware"
	"github.com/example/bazaar/internal/models"
	"github.com/example/bazaar/internal/services"
	"github.com/example/bazaar/internal/store"
)

// Register wires up all HTTP routes. It returns the OTP service so the
// caller can stop its background sweeper on shutdown.
func Register(app *fiber.App, db *gorm.DB, cfg *config.Config) *services.OTPService {
	users := store.NewGormUserStore(db)
	otps := store.NewGormOTPStore(db)
	inventory := store.NewGormInventoryStore(db)
	products := store.NewGormProductStore(db)
	carts := store.NewGormCartStore(db)
	orders := store.NewGormOrderStore(db)
	payments := store.NewGormPaymentStore(db)
	wishlists := store.NewGormWishlistStore(db)

	mailer := services.NewSMTPMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword, cfg.SMTPFrom)
	creds := services.NewCredentialService(cfg.JWTSecret, cfg.TokenExpires)
	otpService := services.NewOTPService(otps, mailer, cfg.OTPTTL)
	accountService := services.NewAccountService(users, otpService, creds)
	ledger := services.NewInventoryLedger(inventory)
	cartService := services.NewCartService(carts, products)
	orderService := services.NewOrderService(orders, products, ledger)
	paymentService := services.NewPaymentService(payments, orders)
	wishlistService := services.NewWishlistService(wishlists, products)

	authHandler := handlers.NewAuthHandler(accountService, cfg.TokenExpires)
	adminHandler := handlers.NewAdminHandler(accountService, orderService)
	productHandler := handlers.NewProductHandler(products, ledger)
	cartHandler := handlers.NewCartHandler(cartService)
	orderHandler := handlers.NewOrderHandler(orderService, cartService)
	paymentHandler := handlers.NewPaymentHandler(paymentService)
	wishlistHandler := handlers.NewWishlistHandler(wishlistService)

	api := app.Group("/api/v1")

	// Auth routes
	auth := api.Group("/auth")
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)
	auth.Post("/confirm-otp", authHandler.ConfirmOTP)
	auth.Post("/resend-otp", authHandler.ResendOTP)

	// Public catalog
	productsGroup := api.Group("/products")
	productsGroup.Get("/", productHandler.ListProducts)
	productsGroup.Get("/:id", productHandler.GetProduct)
	api.Get("/categories", productHandler.ListCategories)

	// Admin routes
	admin := api.Group("/admin", middleware.AuthMiddleware(cfg), middleware.Permit(models.RoleAdmin))
	admin.Patch("/approve-user/:userId", adminHandler.ApproveUser)
	admin.Patch("/orders/:orderId/status", adminHandler.AdvanceOrder)
	admin.Post("/products", productHandler.CreateProduct)
	admin.Patch("/products/:id/stock", productHandler.SetStock)
	admin.Post("/categories", productHandler.CreateCategory)
	admin.Patch("/payments/:id/status", paymentHandler.AdvancePayment)

	// Protected routes
	protected := api.Group("", middleware.AuthMiddleware(cfg))

	protected.Get("/cart", cartHandler.GetCart)
	protected.Post("/cart/items", cartHandler.AddItem)
	protected.Delete("/cart/items/:productId", cartHandler.RemoveItem)

	protected.Post("/orders", orderHandler.PlaceOrder)
	protected.Get("/orders", orderHandler.ListOrders)
	protected.Get("/orders/:id", orderHandler.GetOrder)
	protected.Post("/orders/:id/cancel", orderHandler.CancelOrder)

	protected.Post("/payments", paymentHandler.RecordPayment)

	protected.Get("/wishlist", wishlistHandler.GetWishlist)
	protected.Post("/wishlist/items", wishlistHandler.AddProduct)
	protected.Delete("/wishlist/items/:productId", wishlistHandler.RemoveProduct)

	return otpService
}
