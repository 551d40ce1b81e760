package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"sacco-desk/internal/adapters/persistence/models"
	"sacco-desk/internal/config"
	"sacco-desk/internal/core/domain"
	"sacco-desk/internal/pkg/password"
	"sacco-desk/internal/pkg/response"
)

func testConfig() *config.Config {
	return &config.Config{
		AppMode: "dev",
		Server: config.ServerConfig{
			Port: "0",
			JWT:  config.JWTConfig{Secret: "test-secret", ExpiryMins: 60},
		},
	}
}

// setupApp builds the stub API over a per-test in-memory database.
func setupApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	require.NoError(t, models.AutoMigrate(db))

	app := fiber.New()
	Setup(app, db, testConfig())
	return app, db
}

func seedAccount(t *testing.T, db *gorm.DB, username string, role domain.Role) *models.Account {
	t.Helper()
	hashed, err := password.Hash("password123")
	require.NoError(t, err)
	account := &models.Account{
		Name:     username,
		Username: username,
		Email:    username + "@sacco.local",
		Password: hashed,
		Role:     string(role),
	}
	require.NoError(t, db.Create(account).Error)
	return account
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body interface{}) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

// login returns a bearer token for the given seeded account.
func login(t *testing.T, app *fiber.App, username string) string {
	t.Helper()
	resp := doJSON(t, app, "POST", "/api/login", "", map[string]string{
		"username": username,
		"password": "password123",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Token string             `json:"token"`
		User  domain.UserProfile `json:"user"`
	}
	decode(t, resp, &body)
	require.NotEmpty(t, body.Token)
	return body.Token
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	app, db := setupApp(t)
	seedAccount(t, db, "feven", domain.RoleCustomer)

	resp := doJSON(t, app, "POST", "/api/login", "", map[string]string{
		"username": "feven",
		"password": "wrong",
	})
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestMeRequiresToken(t *testing.T) {
	app, _ := setupApp(t)
	resp := doJSON(t, app, "GET", "/api/user", "", nil)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestTransactionApprovalMovesBalance(t *testing.T) {
	app, db := setupApp(t)
	customer := seedAccount(t, db, "feven", domain.RoleCustomer)
	seedAccount(t, db, "yonas", domain.RoleAccountant)
	require.NoError(t, db.Create(&models.Customer{
		UserID: customer.ID, Name: "Feven", AccountNo: "SAV-1001", SavingBalance: 100,
	}).Error)
	require.NoError(t, db.Create(&models.Transaction{
		UserID: customer.ID, TransactionType: domain.TxDeposit, Amount: 50, Status: domain.StatusPending,
	}).Error)

	token := login(t, app, "yonas")
	resp := doJSON(t, app, "POST", "/api/transactions/1/process", token, map[string]string{
		"action": domain.ActionApprove,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Transaction domain.Transaction `json:"transaction"`
	}
	decode(t, resp, &body)
	require.Equal(t, domain.StatusApproved, body.Transaction.Status)

	var row models.Customer
	require.NoError(t, db.First(&row, "user_id = ?", customer.ID).Error)
	require.Equal(t, 150.0, row.SavingBalance)

	// A second approval of the same row is rejected.
	resp = doJSON(t, app, "POST", "/api/transactions/1/process", token, map[string]string{
		"action": domain.ActionApprove,
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestAdminCanProcessTransactions(t *testing.T) {
	app, db := setupApp(t)
	customer := seedAccount(t, db, "feven", domain.RoleCustomer)
	seedAccount(t, db, "admin", domain.RoleAdmin)
	require.NoError(t, db.Create(&models.Customer{
		UserID: customer.ID, Name: "Feven", AccountNo: "SAV-1001",
	}).Error)
	require.NoError(t, db.Create(&models.Transaction{
		UserID: customer.ID, TransactionType: domain.TxDeposit, Amount: 25, Status: domain.StatusPending,
	}).Error)

	token := login(t, app, "admin")
	resp := doJSON(t, app, "POST", "/api/transactions/1/process", token, map[string]string{
		"action": domain.ActionApprove,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Transaction domain.Transaction `json:"transaction"`
	}
	decode(t, resp, &body)
	require.Equal(t, domain.StatusApproved, body.Transaction.Status)
}

func TestRecommendationLeavesStatusPending(t *testing.T) {
	app, db := setupApp(t)
	customer := seedAccount(t, db, "feven", domain.RoleCustomer)
	seedAccount(t, db, "sara", domain.RoleLoanCommittee)
	require.NoError(t, db.Create(&models.Transaction{
		UserID: customer.ID, TransactionType: domain.TxLoan, Amount: 8000, Status: domain.StatusPending,
	}).Error)

	token := login(t, app, "sara")
	resp := doJSON(t, app, "POST", "/api/transactions/1/process", token, map[string]string{
		"action": domain.ActionRecommendApproval,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Transaction domain.Transaction `json:"transaction"`
	}
	decode(t, resp, &body)
	require.Equal(t, domain.StatusPending, body.Transaction.Status)
}

func TestWithdrawalOverBalanceRejected(t *testing.T) {
	app, db := setupApp(t)
	customer := seedAccount(t, db, "feven", domain.RoleCustomer)
	seedAccount(t, db, "yonas", domain.RoleAccountant)
	require.NoError(t, db.Create(&models.Customer{
		UserID: customer.ID, Name: "Feven", AccountNo: "SAV-1001", SavingBalance: 10,
	}).Error)
	require.NoError(t, db.Create(&models.Transaction{
		UserID: customer.ID, TransactionType: domain.TxWithdrawal, Amount: 50, Status: domain.StatusPending,
	}).Error)

	token := login(t, app, "yonas")
	resp := doJSON(t, app, "POST", "/api/transactions/1/process", token, map[string]string{
		"action": domain.ActionApprove,
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// Status stays pending when the balance check fails.
	var row models.Transaction
	require.NoError(t, db.First(&row, 1).Error)
	require.Equal(t, domain.StatusPending, row.Status)
}

func TestCustomerSeesOnlyOwnTransactions(t *testing.T) {
	app, db := setupApp(t)
	customer := seedAccount(t, db, "feven", domain.RoleCustomer)
	other := seedAccount(t, db, "dawit", domain.RoleCustomer)
	require.NoError(t, db.Create(&models.Transaction{UserID: customer.ID, TransactionType: domain.TxDeposit, Amount: 10, Status: domain.StatusPending}).Error)
	require.NoError(t, db.Create(&models.Transaction{UserID: other.ID, TransactionType: domain.TxDeposit, Amount: 20, Status: domain.StatusPending}).Error)

	token := login(t, app, "feven")
	resp := doJSON(t, app, "GET", "/api/transactions", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Data []domain.Transaction `json:"data"`
	}
	decode(t, resp, &body)
	require.Len(t, body.Data, 1)
	require.Equal(t, customer.ID, body.Data[0].UserID)
}

func TestTransactionFilterCombination(t *testing.T) {
	app, db := setupApp(t)
	customer := seedAccount(t, db, "feven", domain.RoleCustomer)
	seedAccount(t, db, "yonas", domain.RoleAccountant)

	fixture := []models.Transaction{
		{UserID: customer.ID, TransactionType: domain.TxLoan, Amount: 5000, Status: domain.StatusPending},
		{UserID: customer.ID, TransactionType: domain.TxLoan, Amount: 3000, Status: domain.StatusPending},
		{UserID: customer.ID, TransactionType: domain.TxLoan, Amount: 1000, Status: domain.StatusApproved},
		{UserID: customer.ID, TransactionType: domain.TxDeposit, Amount: 200, Status: domain.StatusPending},
		{UserID: customer.ID, TransactionType: domain.TxDeposit, Amount: 300, Status: domain.StatusPending},
	}
	for i := range fixture {
		require.NoError(t, db.Create(&fixture[i]).Error)
	}

	token := login(t, app, "yonas")
	resp := doJSON(t, app, "GET", "/api/transactions?status=pending&transaction_type=loan", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Data []domain.Transaction `json:"data"`
	}
	decode(t, resp, &body)
	require.Len(t, body.Data, 2)
	for _, tx := range body.Data {
		require.Equal(t, domain.TxLoan, tx.TransactionType)
		require.Equal(t, domain.StatusPending, tx.Status)
	}
}

func TestRoleGuards(t *testing.T) {
	app, db := setupApp(t)
	seedAccount(t, db, "feven", domain.RoleCustomer)
	token := login(t, app, "feven")

	// Customers reach neither processing, customer management nor the
	// admin user table.
	resp := doJSON(t, app, "POST", "/api/transactions/1/process", token, map[string]string{"action": "approve"})
	require.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp = doJSON(t, app, "GET", "/api/customers", token, nil)
	require.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp = doJSON(t, app, "GET", "/api/users", token, nil)
	require.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestSignupValidation(t *testing.T) {
	app, db := setupApp(t)
	seedAccount(t, db, "admin", domain.RoleAdmin)
	seedAccount(t, db, "taken", domain.RoleCustomer)
	token := login(t, app, "admin")

	resp := doJSON(t, app, "POST", "/api/signup", token, map[string]string{
		"username": "taken",
		"password": "short",
		"role":     "emperor",
	})
	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	var body response.ErrorBody
	decode(t, resp, &body)
	require.Equal(t, "The given data was invalid.", body.Message)
	// Every failing field reports in the one 422, the taken username
	// alongside the rest.
	require.Contains(t, body.Errors["username"][0], "already been taken")
	require.Contains(t, body.Errors, "password")
	require.Contains(t, body.Errors, "role")
}

func TestEmployeePaginationEnvelope(t *testing.T) {
	app, db := setupApp(t)
	seedAccount(t, db, "marta", domain.RoleManager)
	for i := 0; i < 12; i++ {
		require.NoError(t, db.Create(&models.Employee{
			Name: fmt.Sprintf("Employee %02d", i), Position: "Teller", Salary: 9000,
		}).Error)
	}

	token := login(t, app, "marta")
	resp := doJSON(t, app, "GET", "/api/employees?page=2&per_page=10", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Data        []domain.Employee `json:"data"`
		CurrentPage int               `json:"current_page"`
		LastPage    int               `json:"last_page"`
		PerPage     int               `json:"per_page"`
		Total       int               `json:"total"`
	}
	decode(t, resp, &body)
	require.Len(t, body.Data, 2)
	require.Equal(t, 2, body.CurrentPage)
	require.Equal(t, 2, body.LastPage)
	require.Equal(t, 12, body.Total)
}

func TestFeedbackRespondFlow(t *testing.T) {
	app, db := setupApp(t)
	customer := seedAccount(t, db, "feven", domain.RoleCustomer)
	seedAccount(t, db, "marta", domain.RoleManager)

	customerToken := login(t, app, "feven")
	resp := doJSON(t, app, "POST", "/api/feedback", customerToken, map[string]string{
		"subject": "Branch hours",
		"message": "Open earlier?",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created struct {
		Feedback domain.Feedback `json:"feedback"`
	}
	decode(t, resp, &created)
	require.Equal(t, customer.ID, created.Feedback.UserID)

	managerToken := login(t, app, "marta")
	resp = doJSON(t, app, "PUT", fmt.Sprintf("/api/feedback/%d/respond", created.Feedback.ID), managerToken, map[string]string{
		"response": "We open 08:00 from next month.",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var responded struct {
		Response string `json:"response"`
	}
	decode(t, resp, &responded)
	require.Equal(t, "We open 08:00 from next month.", responded.Response)
}
