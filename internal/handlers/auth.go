package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/example/bazaar/internal/services"
	"github.com/example/bazaar/internal/validation"
)

// AuthHandler bundles dependencies for the activation lifecycle endpoints.
type AuthHandler struct {
	accounts *services.AccountService
	tokenTTL time.Duration
}

// NewAuthHandler constructs an AuthHandler.
func NewAuthHandler(accounts *services.AccountService, tokenTTL time.Duration) *AuthHandler {
	return &AuthHandler{accounts: accounts, tokenTTL: tokenTTL}
}

type registerRequest struct {
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Email      string `json:"email"`
	MobileNo   string `json:"mobile_no"`
	Password   string `json:"password"`
	Address    string `json:"address"`
	City       string `json:"city"`
	PostalCode string `json:"postal_code"`
	State      string `json:"state"`
	Country    string `json:"country"`
}

func (r registerRequest) values() map[string]string {
	return map[string]string{
		"first_name":  r.FirstName,
		"last_name":   r.LastName,
		"email":       r.Email,
		"mobile_no":   r.MobileNo,
		"password":    r.Password,
		"address":     r.Address,
		"city":        r.City,
		"postal_code": r.PostalCode,
		"state":       r.State,
		"country":     r.Country,
	}
}

// Register creates a pending account and triggers the OTP mail.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req registerRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if errs := validation.RegisterSchema.Validate(req.values()); errs != nil {
		return sendValidationErrors(c, errs)
	}

	user, err := h.accounts.Register(services.RegisterProfile{
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Email:      req.Email,
		MobileNo:   req.MobileNo,
		Password:   req.Password,
		Address:    req.Address,
		City:       req.City,
		PostalCode: req.PostalCode,
		State:      req.State,
		Country:    req.Country,
	})
	if err != nil {
		return serviceError(err)
	}

	return sendSuccess(c, fiber.StatusOK, "User registered successfully", user)
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login authenticates an active account and sets the auth cookie.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if errs := validation.LoginSchema.Validate(map[string]string{
		"email":    req.Email,
		"password": req.Password,
	}); errs != nil {
		return sendValidationErrors(c, errs)
	}

	user, token, err := h.accounts.Login(req.Email, req.Password)
	if err != nil {
		return serviceError(err)
	}

	c.Cookie(&fiber.Cookie{
		Name:     "token",
		Value:    token,
		Expires:  time.Now().Add(h.tokenTTL),
		HTTPOnly: true,
		SameSite: "Strict",
	})

	return sendSuccess(c, fiber.StatusOK, "Login successful", fiber.Map{
		"user":  user,
		"token": token,
	})
}

type resendOTPRequest struct {
	Email string `json:"email"`
}

// ResendOTP issues a fresh code for a not-yet-activated account.
func (h *AuthHandler) ResendOTP(c *fiber.Ctx) error {
	var req resendOTPRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if req.Email == "" {
		return fiber.NewError(fiber.StatusBadRequest, "email is required")
	}

	if err := h.accounts.ResendOTP(req.Email); err != nil {
		return serviceError(err)
	}

	return sendSuccess(c, fiber.StatusOK, "OTP sent successfully", nil)
}

type confirmOTPRequest struct {
	Email string `json:"email"`
	OTP   string `json:"otp"`
}

// ConfirmOTP consumes the emailed code and activates the account.
func (h *AuthHandler) ConfirmOTP(c *fiber.Ctx) error {
	var req confirmOTPRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if errs := validation.ConfirmOTPSchema.Validate(map[string]string{
		"email": req.Email,
		"otp":   req.OTP,
	}); errs != nil {
		return sendValidationErrors(c, errs)
	}

	if err := h.accounts.ConfirmOTP(req.Email, req.OTP); err != nil {
		return serviceError(err)
	}

	return sendSuccess(c, fiber.StatusOK, "OTP confirmed successfully", nil)
}
