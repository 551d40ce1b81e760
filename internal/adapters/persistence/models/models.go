// Package models defines the stub API server's database tables. The JSON
// shapes emitted to clients live in internal/core/domain; these tables
// exist only to back the stub with realistic persistent state.
package models

import (
	"time"

	"gorm.io/gorm"

	"sacco-desk/internal/core/domain"
)

// Account represents the accounts table (login identities)
type Account struct {
	ID             uint      `gorm:"primaryKey"`
	Name           string    `gorm:"size:100;not null"`
	Username       string    `gorm:"uniqueIndex;size:50;not null"`
	Email          string    `gorm:"uniqueIndex;size:100;not null"`
	Password       string    `gorm:"size:255;not null"`
	Role           string    `gorm:"size:20;default:'customer'"`
	ProfilePicture string    `gorm:"size:255"`
	AccountNo      string    `gorm:"size:30"`
	Phone          string    `gorm:"size:30"`
	CreatedAt      time.Time `gorm:"autoCreateTime"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime"`
}

func (Account) TableName() string { return "accounts" }

// ToProfile converts an account row to the wire profile.
func (a *Account) ToProfile() *domain.UserProfile {
	return &domain.UserProfile{
		ID:             a.ID,
		Name:           a.Name,
		Username:       a.Username,
		Email:          a.Email,
		Role:           domain.Role(a.Role),
		ProfilePicture: a.ProfilePicture,
		AccountNo:      a.AccountNo,
		Phone:          a.Phone,
		CreatedAt:      a.CreatedAt,
	}
}

// ToUser converts an account row to the admin user-table shape.
func (a *Account) ToUser() domain.User {
	return domain.User{
		ID:        a.ID,
		Username:  a.Username,
		Email:     a.Email,
		Role:      domain.Role(a.Role),
		CreatedAt: a.CreatedAt,
	}
}

// Customer represents the customers table
type Customer struct {
	ID            uint      `gorm:"primaryKey"`
	UserID        uint      `gorm:"index"`
	Name          string    `gorm:"size:100;not null"`
	Email         string    `gorm:"size:100"`
	Phone         string    `gorm:"size:30"`
	AccountNo     string    `gorm:"uniqueIndex;size:30"`
	SavingBalance float64   `gorm:"default:0"`
	LoanBalance   float64   `gorm:"default:0"`
	CreatedAt     time.Time `gorm:"autoCreateTime"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime"`
}

func (Customer) TableName() string { return "customers" }

// ToDomain converts a customer row to the wire shape.
func (c *Customer) ToDomain() domain.Customer {
	return domain.Customer{
		ID:            c.ID,
		UserID:        c.UserID,
		Name:          c.Name,
		Email:         c.Email,
		Phone:         c.Phone,
		AccountNo:     c.AccountNo,
		SavingBalance: c.SavingBalance,
		LoanBalance:   c.LoanBalance,
		CreatedAt:     c.CreatedAt,
	}
}

// Employee represents the employees table
type Employee struct {
	ID        uint      `gorm:"primaryKey"`
	Name      string    `gorm:"size:100;not null"`
	Email     string    `gorm:"size:100"`
	Phone     string    `gorm:"size:30"`
	Position  string    `gorm:"size:50"`
	Salary    float64   `gorm:"default:0"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (Employee) TableName() string { return "employees" }

// ToDomain converts an employee row to the wire shape.
func (e *Employee) ToDomain() domain.Employee {
	return domain.Employee{
		ID:        e.ID,
		Name:      e.Name,
		Email:     e.Email,
		Phone:     e.Phone,
		Position:  e.Position,
		Salary:    e.Salary,
		CreatedAt: e.CreatedAt,
	}
}

// Transaction represents the transactions table
type Transaction struct {
	ID              uint      `gorm:"primaryKey"`
	UserID          uint      `gorm:"index"`
	TransactionType string    `gorm:"size:30;not null"`
	Amount          float64   `gorm:"not null"`
	Status          string    `gorm:"size:20;default:'pending';index"`
	Reason          string    `gorm:"size:255"`
	ReceiptURL      string    `gorm:"size:255"`
	CreatedAt       time.Time `gorm:"autoCreateTime;index"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime"`
}

func (Transaction) TableName() string { return "transactions" }

// ToDomain converts a transaction row to the wire shape.
func (t *Transaction) ToDomain() domain.Transaction {
	return domain.Transaction{
		ID:              t.ID,
		UserID:          t.UserID,
		TransactionType: t.TransactionType,
		Amount:          t.Amount,
		Status:          t.Status,
		Reason:          t.Reason,
		ReceiptURL:      t.ReceiptURL,
		CreatedAt:       t.CreatedAt,
	}
}

// Feedback represents the feedbacks table
type Feedback struct {
	ID        uint      `gorm:"primaryKey"`
	UserID    uint      `gorm:"index"`
	Subject   string    `gorm:"size:150"`
	Message   string    `gorm:"size:1000"`
	Response  string    `gorm:"size:1000"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (Feedback) TableName() string { return "feedbacks" }

// ToDomain converts a feedback row to the wire shape.
func (f *Feedback) ToDomain() domain.Feedback {
	return domain.Feedback{
		ID:        f.ID,
		UserID:    f.UserID,
		Subject:   f.Subject,
		Message:   f.Message,
		Response:  f.Response,
		CreatedAt: f.CreatedAt,
	}
}

// Meeting represents the meetings table
type Meeting struct {
	ID        uint      `gorm:"primaryKey"`
	Title     string    `gorm:"size:150;not null"`
	Date      string    `gorm:"size:20"`
	Time      string    `gorm:"size:20"`
	Location  string    `gorm:"size:150"`
	Agenda    string    `gorm:"size:1000"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (Meeting) TableName() string { return "meetings" }

// ToDomain converts a meeting row to the wire shape.
func (m *Meeting) ToDomain() domain.Meeting {
	return domain.Meeting{
		ID:        m.ID,
		Title:     m.Title,
		Date:      m.Date,
		Time:      m.Time,
		Location:  m.Location,
		Agenda:    m.Agenda,
		CreatedAt: m.CreatedAt,
	}
}

// AutoMigrate creates all tables if they do not exist
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&Account{},
		&Customer{},
		&Employee{},
		&Transaction{},
		&Feedback{},
		&Meeting{},
	)
}
