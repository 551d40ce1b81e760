package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sacco-desk/internal/adapters/persistence/models"
	"sacco-desk/internal/core/domain"
	"sacco-desk/internal/pkg/response"
)

// CustomerHandler handles customer endpoints
type CustomerHandler struct {
	db *gorm.DB
}

// NewCustomerHandler creates a new customer handler
func NewCustomerHandler(db *gorm.DB) *CustomerHandler {
	return &CustomerHandler{db: db}
}

// List handles GET /customers
func (h *CustomerHandler) List(c *fiber.Ctx) error {
	q := h.db.Model(&models.Customer{}).Order("created_at DESC")
	if v := c.Query("search"); v != "" {
		like := "%" + v + "%"
		q = q.Where("name LIKE ? OR account_no LIKE ? OR email LIKE ?", like, like, like)
	}

	var rows []models.Customer
	if err := q.Find(&rows).Error; err != nil {
		return response.InternalServerError(c, "Failed to load customers")
	}

	data := make([]domain.Customer, 0, len(rows))
	for i := range rows {
		data = append(data, rows[i].ToDomain())
	}
	return c.JSON(fiber.Map{"data": data})
}

// RegisterRequest represents the register-customer request body
type RegisterRequest struct {
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	Phone     string  `json:"phone"`
	AccountNo string  `json:"account_no"`
	UserID    uint    `json:"user_id"`
	Saving    float64 `json:"saving_balance"`
}

// Register handles POST /register-customer
func (h *CustomerHandler) Register(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	errs := map[string][]string{}
	if req.Name == "" {
		errs["name"] = append(errs["name"], "The name field is required.")
	}
	if req.AccountNo == "" {
		errs["account_no"] = append(errs["account_no"], "The account no field is required.")
	}
	if len(errs) > 0 {
		return response.ValidationFailed(c, errs)
	}

	customer := models.Customer{
		UserID:        req.UserID,
		Name:          req.Name,
		Email:         req.Email,
		Phone:         req.Phone,
		AccountNo:     req.AccountNo,
		SavingBalance: req.Saving,
	}
	if err := h.db.Create(&customer).Error; err != nil {
		return response.InternalServerError(c, "Failed to register customer")
	}

	return response.Created(c, fiber.Map{"customer": customer.ToDomain()})
}

// Update handles PUT /customers/:id
func (h *CustomerHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return response.BadRequest(c, "Invalid customer id")
	}

	var patch map[string]interface{}
	if err := c.BodyParser(&patch); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	var customer models.Customer
	if err := h.db.First(&customer, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFound(c, "Customer not found")
		}
		return response.InternalServerError(c, "Failed to load customer")
	}

	if err := h.db.Model(&customer).Updates(allowedCustomerFields(patch)).Error; err != nil {
		return response.InternalServerError(c, "Failed to update customer")
	}
	return response.Message(c, "Customer updated")
}

// Delete handles DELETE /customers/:id
func (h *CustomerHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return response.BadRequest(c, "Invalid customer id")
	}

	result := h.db.Delete(&models.Customer{}, id)
	if result.Error != nil {
		return response.InternalServerError(c, "Failed to delete customer")
	}
	if result.RowsAffected == 0 {
		return response.NotFound(c, "Customer not found")
	}
	return response.Message(c, "Customer deleted")
}

// allowedCustomerFields whitelists patchable columns; balances only move
// through transaction processing.
func allowedCustomerFields(patch map[string]interface{}) map[string]interface{} {
	allowed := map[string]interface{}{}
	for _, key := range []string{"name", "email", "phone", "account_no"} {
		if v, ok := patch[key]; ok {
			allowed[key] = v
		}
	}
	return allowed
}
