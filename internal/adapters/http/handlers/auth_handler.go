package handlers

import (
	"errors"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"sacco-desk/internal/adapters/persistence/models"
	"sacco-desk/internal/config"
	"sacco-desk/internal/pkg/jwt"
	"sacco-desk/internal/pkg/password"
	"sacco-desk/internal/pkg/response"
)

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	db  *gorm.DB
	cfg *config.Config
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(db *gorm.DB, cfg *config.Config) *AuthHandler {
	return &AuthHandler{db: db, cfg: cfg}
}

// LoginRequest represents login request body
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login handles POST /login
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if req.Username == "" || req.Password == "" {
		return response.BadRequest(c, "Username and password are required")
	}

	var account models.Account
	err := h.db.Where("username = ?", strings.TrimSpace(req.Username)).First(&account).Error
	if errors.Is(err, gorm.ErrRecordNotFound) || (err == nil && !password.Verify(req.Password, account.Password)) {
		return response.Unauthorized(c, "Invalid credentials")
	}
	if err != nil {
		return response.InternalServerError(c, "Failed to load account")
	}

	token, err := jwt.GenerateToken(account.ID, account.Username, account.Role,
		h.cfg.Server.JWT.Secret, h.cfg.Server.JWT.ExpiryMins)
	if err != nil {
		return response.InternalServerError(c, "Failed to issue token")
	}

	return c.JSON(fiber.Map{
		"token": token,
		"user":  account.ToProfile(),
	})
}

// Logout handles POST /logout. The stub issues stateless tokens, so logout
// only acknowledges; the client discards its snapshot.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	return response.Message(c, "Logged out")
}

// Me handles GET /user
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	account, err := h.currentAccount(c)
	if err != nil {
		return response.Unauthorized(c, "Unknown account")
	}
	return c.JSON(account.ToProfile())
}

// ChangePasswordRequest represents change-password request body
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

// ChangePassword handles POST /change-password
func (h *AuthHandler) ChangePassword(c *fiber.Ctx) error {
	var req ChangePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	errs := map[string][]string{}
	if req.CurrentPassword == "" {
		errs["current_password"] = append(errs["current_password"], "The current password field is required.")
	}
	if !password.ValidatePassword(req.NewPassword) {
		errs["new_password"] = append(errs["new_password"], "The new password must be at least 8 characters.")
	}
	if len(errs) > 0 {
		return response.ValidationFailed(c, errs)
	}

	account, err := h.currentAccount(c)
	if err != nil {
		return response.Unauthorized(c, "Unknown account")
	}
	if !password.Verify(req.CurrentPassword, account.Password) {
		return response.BadRequest(c, "Current password is incorrect")
	}

	hashed, err := password.Hash(req.NewPassword)
	if err != nil {
		return response.InternalServerError(c, "Failed to hash password")
	}
	if err := h.db.Model(account).Update("password", hashed).Error; err != nil {
		return response.InternalServerError(c, "Failed to update password")
	}
	return response.Message(c, "Password changed")
}

// UploadProfilePicture handles POST /profile
func (h *AuthHandler) UploadProfilePicture(c *fiber.Ctx) error {
	file, err := c.FormFile("profile_picture")
	if err != nil {
		return response.BadRequest(c, "profile_picture file is required")
	}

	account, err := h.currentAccount(c)
	if err != nil {
		return response.Unauthorized(c, "Unknown account")
	}

	name := uuid.NewString() + filepath.Ext(file.Filename)
	ref := "uploads/" + name
	if err := c.SaveFile(file, ref); err != nil {
		return response.InternalServerError(c, "Failed to store picture")
	}
	if err := h.db.Model(account).Update("profile_picture", ref).Error; err != nil {
		return response.InternalServerError(c, "Failed to update profile")
	}

	return c.JSON(fiber.Map{"profile_picture": ref})
}

// CustomerData handles GET /customerdata
func (h *AuthHandler) CustomerData(c *fiber.Ctx) error {
	userID, _ := c.Locals("userID").(uint)

	var customer models.Customer
	err := h.db.Where("user_id = ?", userID).First(&customer).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return response.NotFound(c, "No customer record for this account")
	}
	if err != nil {
		return response.InternalServerError(c, "Failed to load customer data")
	}

	return c.JSON(fiber.Map{
		"saving_balance": customer.SavingBalance,
		"loan_balance":   customer.LoanBalance,
	})
}

func (h *AuthHandler) currentAccount(c *fiber.Ctx) (*models.Account, error) {
	userID, _ := c.Locals("userID").(uint)
	var account models.Account
	if err := h.db.First(&account, userID).Error; err != nil {
		return nil, err
	}
	return &account, nil
}
