package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sacco-desk/internal/adapters/persistence/models"
	"sacco-desk/internal/core/domain"
	"sacco-desk/internal/pkg/password"
	"sacco-desk/internal/pkg/response"
)

// UserHandler handles admin account endpoints
type UserHandler struct {
	db *gorm.DB
}

// NewUserHandler creates a new user handler
func NewUserHandler(db *gorm.DB) *UserHandler {
	return &UserHandler{db: db}
}

// List handles GET /users, returning the bare account array.
func (h *UserHandler) List(c *fiber.Ctx) error {
	var rows []models.Account
	if err := h.db.Order("created_at DESC").Find(&rows).Error; err != nil {
		return response.InternalServerError(c, "Failed to load users")
	}

	users := make([]domain.User, 0, len(rows))
	for i := range rows {
		users = append(users, rows[i].ToUser())
	}
	return c.JSON(users)
}

// SignupRequest represents the create-account request body
type SignupRequest struct {
	Name     string `json:"name"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// Signup handles POST /signup (admin provisioning)
func (h *UserHandler) Signup(c *fiber.Ctx) error {
	var req SignupRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	// One-shot validation: every failing field reports in the same 422.
	errs := map[string][]string{}
	if req.Username == "" {
		errs["username"] = append(errs["username"], "The username field is required.")
	} else {
		var count int64
		h.db.Model(&models.Account{}).Where("username = ?", req.Username).Count(&count)
		if count > 0 {
			errs["username"] = append(errs["username"], "The username has already been taken.")
		}
	}
	if req.Email == "" {
		errs["email"] = append(errs["email"], "The email field is required.")
	}
	if !password.ValidatePassword(req.Password) {
		errs["password"] = append(errs["password"], "The password must be at least 8 characters.")
	}
	if !domain.Role(req.Role).Valid() {
		errs["role"] = append(errs["role"], "The selected role is invalid.")
	}
	if len(errs) > 0 {
		return response.ValidationFailed(c, errs)
	}

	hashed, err := password.Hash(req.Password)
	if err != nil {
		return response.InternalServerError(c, "Failed to hash password")
	}

	account := models.Account{
		Name:     req.Name,
		Username: req.Username,
		Email:    req.Email,
		Password: hashed,
		Role:     req.Role,
	}
	if err := h.db.Create(&account).Error; err != nil {
		return response.InternalServerError(c, "Failed to create account")
	}
	return response.Created(c, fiber.Map{"user": account.ToUser()})
}

// Update handles PUT /users/:id
func (h *UserHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return response.BadRequest(c, "Invalid user id")
	}

	var patch map[string]interface{}
	if err := c.BodyParser(&patch); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	var account models.Account
	if err := h.db.First(&account, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFound(c, "User not found")
		}
		return response.InternalServerError(c, "Failed to load user")
	}

	allowed := map[string]interface{}{}
	for _, key := range []string{"name", "username", "email", "role"} {
		if v, ok := patch[key]; ok {
			allowed[key] = v
		}
	}
	if role, ok := allowed["role"].(string); ok && !domain.Role(role).Valid() {
		return response.ValidationFailed(c, map[string][]string{
			"role": {"The selected role is invalid."},
		})
	}
	if err := h.db.Model(&account).Updates(allowed).Error; err != nil {
		return response.InternalServerError(c, "Failed to update user")
	}
	return response.Message(c, "User updated")
}

// Delete handles DELETE /users/:id
func (h *UserHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return response.BadRequest(c, "Invalid user id")
	}

	result := h.db.Delete(&models.Account{}, id)
	if result.Error != nil {
		return response.InternalServerError(c, "Failed to delete user")
	}
	if result.RowsAffected == 0 {
		return response.NotFound(c, "User not found")
	}
	return response.Message(c, "User deleted")
}
