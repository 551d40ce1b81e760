package domain

import "time"

// Role represents a user role in the association
type Role string

const (
	RoleAdmin         Role = "admin"
	RoleManager       Role = "manager"
	RoleAccountant    Role = "accountant"
	RoleLoanCommittee Role = "loan-committee"
	RoleCustomer      Role = "customer"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleManager, RoleAccountant, RoleLoanCommittee, RoleCustomer:
		return true
	}
	return false
}

// Transaction types
const (
	TxDeposit       = "deposit"
	TxWithdrawal    = "withdrawal"
	TxLoan          = "loan"
	TxLoanRepayment = "loan repayment"
)

// Transaction statuses. Transitions are one-directional and server-owned:
// pending -> approved or pending -> rejected, never back.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// Process actions accepted by the transaction endpoint
const (
	ActionApprove            = "approve"
	ActionReject             = "reject"
	ActionRecommendApproval  = "recommend-approval"
	ActionRecommendRejection = "recommend-rejection"
)

// UserProfile represents the authenticated identity returned by login
type UserProfile struct {
	ID             uint      `json:"id"`
	Name           string    `json:"name"`
	Username       string    `json:"username"`
	Email          string    `json:"email"`
	Role           Role      `json:"role"`
	ProfilePicture string    `json:"profile_picture,omitempty"`
	AccountNo      string    `json:"account_no,omitempty"`
	Phone          string    `json:"phone,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

// Session represents the authenticated session state.
// Invariant: Token != "" if and only if User != nil; Role is always derived
// from User.Role, never set independently.
type Session struct {
	User          *UserProfile `json:"user"`
	Token         string       `json:"token"`
	Role          Role         `json:"role"`
	SavingBalance float64      `json:"saving_balance"`
	LoanBalance   float64      `json:"loan_balance"`
}

// Transaction represents a deposit, withdrawal, loan or loan repayment request
type Transaction struct {
	ID              uint      `json:"id"`
	UserID          uint      `json:"user_id"`
	TransactionType string    `json:"transaction_type"`
	Amount          float64   `json:"amount"`
	Status          string    `json:"status"`
	Reason          string    `json:"reason,omitempty"`
	ReceiptURL      string    `json:"receipt_url,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

// Customer represents a member account managed by accountants
type Customer struct {
	ID            uint      `json:"id"`
	UserID        uint      `json:"user_id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone"`
	AccountNo     string    `json:"account_no"`
	SavingBalance float64   `json:"saving_balance"`
	LoanBalance   float64   `json:"loan_balance"`
	CreatedAt     time.Time `json:"created_at"`
}

// Employee represents an association employee managed by the manager
type Employee struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Position  string    `json:"position"`
	Salary    float64   `json:"salary"`
	CreatedAt time.Time `json:"created_at"`
}

// Feedback represents a customer message and its optional staff response
type Feedback struct {
	ID        uint      `json:"id"`
	UserID    uint      `json:"user_id"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	Response  string    `json:"response,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Meeting represents a scheduled association meeting
type Meeting struct {
	ID        uint      `json:"id"`
	Title     string    `json:"title"`
	Date      string    `json:"date"`
	Time      string    `json:"time"`
	Location  string    `json:"location"`
	Agenda    string    `json:"agenda,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// User represents an account row in the admin user table
type User struct {
	ID        uint      `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// Balances holds the two display balances fetched for a customer dashboard
type Balances struct {
	SavingBalance float64 `json:"saving_balance"`
	LoanBalance   float64 `json:"loan_balance"`
}

// MoneyRequest represents a customer deposit/withdrawal/loan submission.
// Receipt is optional; when set it is uploaded as a multipart attachment.
type MoneyRequest struct {
	Type        string
	Amount      float64
	Reason      string
	ReceiptName string
	Receipt     []byte
}
