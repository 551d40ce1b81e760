package handlers

import (
	"errors"
	"path/filepath"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"sacco-desk/internal/adapters/persistence/models"
	"sacco-desk/internal/core/domain"
	"sacco-desk/internal/pkg/response"
)

// TransactionHandler handles transaction endpoints
type TransactionHandler struct {
	db *gorm.DB
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(db *gorm.DB) *TransactionHandler {
	return &TransactionHandler{db: db}
}

// List handles GET /transactions. Customers only ever see their own rows;
// staff see everything, narrowed by the optional filters.
func (h *TransactionHandler) List(c *fiber.Ctx) error {
	q := h.db.Model(&models.Transaction{}).Order("created_at DESC")

	role, _ := c.Locals("role").(string)
	if role == string(domain.RoleCustomer) {
		userID, _ := c.Locals("userID").(uint)
		q = q.Where("user_id = ?", userID)
	} else if v := c.Query("user_id"); v != "" {
		q = q.Where("user_id = ?", v)
	}

	if v := c.Query("transaction_type"); v != "" {
		q = q.Where("transaction_type = ?", v)
	}
	if v := c.Query("status"); v != "" {
		q = q.Where("status = ?", v)
	}
	if v := c.Query("amount_min"); v != "" {
		q = q.Where("amount >= ?", v)
	}
	if v := c.Query("amount_max"); v != "" {
		q = q.Where("amount <= ?", v)
	}
	if v := c.Query("search"); v != "" {
		q = q.Where("reason LIKE ?", "%"+v+"%")
	}

	page, _ := strconv.Atoi(c.Query("page", "1"))
	perPage, _ := strconv.Atoi(c.Query("per_page", "0"))
	if perPage > 0 {
		if page < 1 {
			page = 1
		}
		q = q.Offset((page - 1) * perPage).Limit(perPage)
	}

	var rows []models.Transaction
	if err := q.Find(&rows).Error; err != nil {
		return response.InternalServerError(c, "Failed to load transactions")
	}

	data := make([]domain.Transaction, 0, len(rows))
	for i := range rows {
		data = append(data, rows[i].ToDomain())
	}
	return c.JSON(fiber.Map{"data": data})
}

// ProcessRequest represents the process request body
type ProcessRequest struct {
	Action string `json:"action"`
}

// Process handles POST /transactions/:id/process. Approvals apply the
// balance effect; recommendations record nothing and echo the pending row.
func (h *TransactionHandler) Process(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return response.BadRequest(c, "Invalid transaction id")
	}

	var req ProcessRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	var tx models.Transaction
	if err := h.db.First(&tx, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFound(c, "Transaction not found")
		}
		return response.InternalServerError(c, "Failed to load transaction")
	}

	switch req.Action {
	case domain.ActionRecommendApproval, domain.ActionRecommendRejection:
		// Committee recommendations do not transition status.
		return c.JSON(fiber.Map{"transaction": tx.ToDomain()})
	case domain.ActionApprove, domain.ActionReject:
	default:
		return response.BadRequest(c, "Invalid action")
	}

	if tx.Status != domain.StatusPending {
		return response.BadRequest(c, "Transaction already processed")
	}

	if req.Action == domain.ActionApprove {
		if err := h.applyBalanceEffect(&tx); err != nil {
			return response.BadRequest(c, err.Error())
		}
		tx.Status = domain.StatusApproved
	} else {
		tx.Status = domain.StatusRejected
	}

	if err := h.db.Save(&tx).Error; err != nil {
		return response.InternalServerError(c, "Failed to update transaction")
	}
	return c.JSON(fiber.Map{"transaction": tx.ToDomain()})
}

// applyBalanceEffect moves the customer's balances for an approval.
func (h *TransactionHandler) applyBalanceEffect(tx *models.Transaction) error {
	var customer models.Customer
	if err := h.db.Where("user_id = ?", tx.UserID).First(&customer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errors.New("no customer record for this transaction")
		}
		return err
	}

	switch tx.TransactionType {
	case domain.TxDeposit:
		customer.SavingBalance += tx.Amount
	case domain.TxWithdrawal:
		if customer.SavingBalance < tx.Amount {
			return errors.New("insufficient saving balance")
		}
		customer.SavingBalance -= tx.Amount
	case domain.TxLoan:
		customer.LoanBalance += tx.Amount
	case domain.TxLoanRepayment:
		customer.LoanBalance -= tx.Amount
	}

	return h.db.Save(&customer).Error
}

// SubmitDeposit handles POST /deposit
func (h *TransactionHandler) SubmitDeposit(c *fiber.Ctx) error {
	return h.submit(c, domain.TxDeposit)
}

// SubmitWithdrawal handles POST /withdraw
func (h *TransactionHandler) SubmitWithdrawal(c *fiber.Ctx) error {
	return h.submit(c, domain.TxWithdrawal)
}

// SubmitLoanRepayment handles POST /loan
func (h *TransactionHandler) SubmitLoanRepayment(c *fiber.Ctx) error {
	return h.submit(c, domain.TxLoanRepayment)
}

// ApplyLoan handles POST /apply-loan
func (h *TransactionHandler) ApplyLoan(c *fiber.Ctx) error {
	return h.submit(c, domain.TxLoan)
}

// submit creates a pending transaction from a multipart money request.
func (h *TransactionHandler) submit(c *fiber.Ctx, txType string) error {
	amount, err := strconv.ParseFloat(c.FormValue("amount"), 64)
	if err != nil || amount <= 0 {
		return response.ValidationFailed(c, map[string][]string{
			"amount": {"The amount must be a positive number."},
		})
	}

	userID, _ := c.Locals("userID").(uint)
	tx := models.Transaction{
		UserID:          userID,
		TransactionType: txType,
		Amount:          amount,
		Status:          domain.StatusPending,
		Reason:          c.FormValue("reason"),
	}

	if file, err := c.FormFile("receipt"); err == nil {
		ref := "uploads/" + uuid.NewString() + filepath.Ext(file.Filename)
		if err := c.SaveFile(file, ref); err != nil {
			return response.InternalServerError(c, "Failed to store receipt")
		}
		tx.ReceiptURL = ref
	}

	if err := h.db.Create(&tx).Error; err != nil {
		return response.InternalServerError(c, "Failed to create transaction")
	}

	return response.Created(c, fiber.Map{
		"message":     "Request submitted",
		"transaction": tx.ToDomain(),
	})
}
