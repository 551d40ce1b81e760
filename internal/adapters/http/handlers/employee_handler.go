package handlers

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sacco-desk/internal/adapters/persistence/models"
	"sacco-desk/internal/core/domain"
	"sacco-desk/internal/pkg/response"
)

// EmployeeHandler handles employee endpoints
type EmployeeHandler struct {
	db *gorm.DB
}

// NewEmployeeHandler creates a new employee handler
func NewEmployeeHandler(db *gorm.DB) *EmployeeHandler {
	return &EmployeeHandler{db: db}
}

// List handles GET /employees with the paginated envelope.
func (h *EmployeeHandler) List(c *fiber.Ctx) error {
	q := h.db.Model(&models.Employee{}).Order("created_at DESC")
	if v := c.Query("search"); v != "" {
		like := "%" + v + "%"
		q = q.Where("name LIKE ? OR email LIKE ?", like, like)
	}
	if v := c.Query("position"); v != "" {
		q = q.Where("position = ?", v)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return response.InternalServerError(c, "Failed to count employees")
	}

	page, _ := strconv.Atoi(c.Query("page", "1"))
	perPage, _ := strconv.Atoi(c.Query("per_page", "10"))
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = 10
	}

	var rows []models.Employee
	if err := q.Offset((page - 1) * perPage).Limit(perPage).Find(&rows).Error; err != nil {
		return response.InternalServerError(c, "Failed to load employees")
	}

	lastPage := int(total) / perPage
	if int(total)%perPage > 0 {
		lastPage++
	}
	if lastPage < 1 {
		lastPage = 1
	}

	data := make([]domain.Employee, 0, len(rows))
	for i := range rows {
		data = append(data, rows[i].ToDomain())
	}
	return c.JSON(fiber.Map{
		"data":         data,
		"current_page": page,
		"last_page":    lastPage,
		"per_page":     perPage,
		"total":        total,
	})
}

// EmployeeRequest represents the create-employee request body
type EmployeeRequest struct {
	Name     string  `json:"name"`
	Email    string  `json:"email"`
	Phone    string  `json:"phone"`
	Position string  `json:"position"`
	Salary   float64 `json:"salary"`
}

// Create handles POST /employees
func (h *EmployeeHandler) Create(c *fiber.Ctx) error {
	var req EmployeeRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	errs := map[string][]string{}
	if req.Name == "" {
		errs["name"] = append(errs["name"], "The name field is required.")
	}
	if req.Position == "" {
		errs["position"] = append(errs["position"], "The position field is required.")
	}
	if req.Salary <= 0 {
		errs["salary"] = append(errs["salary"], "The salary must be a positive number.")
	}
	if len(errs) > 0 {
		return response.ValidationFailed(c, errs)
	}

	employee := models.Employee{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Position: req.Position,
		Salary:   req.Salary,
	}
	if err := h.db.Create(&employee).Error; err != nil {
		return response.InternalServerError(c, "Failed to create employee")
	}
	return response.Created(c, fiber.Map{"employee": employee.ToDomain()})
}

// Update handles PUT /employees/:id
func (h *EmployeeHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return response.BadRequest(c, "Invalid employee id")
	}

	var patch map[string]interface{}
	if err := c.BodyParser(&patch); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	var employee models.Employee
	if err := h.db.First(&employee, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFound(c, "Employee not found")
		}
		return response.InternalServerError(c, "Failed to load employee")
	}

	allowed := map[string]interface{}{}
	for _, key := range []string{"name", "email", "phone", "position", "salary"} {
		if v, ok := patch[key]; ok {
			allowed[key] = v
		}
	}
	if err := h.db.Model(&employee).Updates(allowed).Error; err != nil {
		return response.InternalServerError(c, "Failed to update employee")
	}
	return response.Message(c, "Employee updated")
}

// Delete handles DELETE /employees/:id
func (h *EmployeeHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return response.BadRequest(c, "Invalid employee id")
	}

	result := h.db.Delete(&models.Employee{}, id)
	if result.Error != nil {
		return response.InternalServerError(c, "Failed to delete employee")
	}
	if result.RowsAffected == 0 {
		return response.NotFound(c, "Employee not found")
	}
	return response.Message(c, "Employee deleted")
}
