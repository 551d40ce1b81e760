package config

import (
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"

	"sacco-desk/internal/adapters/persistence/models"
	"sacco-desk/internal/core/domain"
	"sacco-desk/internal/pkg/password"
)

// SeedData populates the stub database with one account per role and a
// realistic spread of transactions. Runs once: an already-seeded database
// is left alone.
func SeedData(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Account{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Println("ℹ️ Seed skipped: accounts already exist")
		return nil
	}

	hashed, err := password.Hash("password123")
	if err != nil {
		return fmt.Errorf("hash seed password: %w", err)
	}

	accounts := []models.Account{
		{Name: "Abebe Kebede", Username: "admin", Email: "admin@sacco.local", Password: hashed, Role: string(domain.RoleAdmin)},
		{Name: "Marta Haile", Username: "manager", Email: "manager@sacco.local", Password: hashed, Role: string(domain.RoleManager)},
		{Name: "Yonas Tadesse", Username: "accountant", Email: "accountant@sacco.local", Password: hashed, Role: string(domain.RoleAccountant)},
		{Name: "Sara Bekele", Username: "committee", Email: "committee@sacco.local", Password: hashed, Role: string(domain.RoleLoanCommittee)},
		{Name: "Feven Masresha", Username: "customer", Email: "customer@sacco.local", Password: hashed, Role: string(domain.RoleCustomer), AccountNo: "SAV-1001"},
	}
	if err := db.Create(&accounts).Error; err != nil {
		return fmt.Errorf("seed accounts: %w", err)
	}

	customerID := accounts[4].ID
	customers := []models.Customer{
		{UserID: customerID, Name: "Feven Masresha", Email: "customer@sacco.local", Phone: "0911000001", AccountNo: "SAV-1001", SavingBalance: 5200, LoanBalance: 1500},
		{Name: "Dawit Alemu", Email: "dawit@sacco.local", Phone: "0911000002", AccountNo: "SAV-1002", SavingBalance: 800},
		{Name: "Hana Girma", Email: "hana@sacco.local", Phone: "0911000003", AccountNo: "SAV-1003", SavingBalance: 12400, LoanBalance: 4000},
	}
	if err := db.Create(&customers).Error; err != nil {
		return fmt.Errorf("seed customers: %w", err)
	}

	employees := []models.Employee{
		{Name: "Yonas Tadesse", Email: "accountant@sacco.local", Phone: "0911000010", Position: "Accountant", Salary: 14000},
		{Name: "Selam Fikru", Email: "selam@sacco.local", Phone: "0911000011", Position: "Teller", Salary: 9000},
		{Name: "Biniam Assefa", Email: "biniam@sacco.local", Phone: "0911000012", Position: "Credit Officer", Salary: 12500},
	}
	if err := db.Create(&employees).Error; err != nil {
		return fmt.Errorf("seed employees: %w", err)
	}

	now := time.Now()
	transactions := []models.Transaction{
		{UserID: customerID, TransactionType: domain.TxDeposit, Amount: 1000, Status: domain.StatusApproved, CreatedAt: now.AddDate(0, 0, -7)},
		{UserID: customerID, TransactionType: domain.TxDeposit, Amount: 500, Status: domain.StatusApproved, CreatedAt: now.AddDate(0, 0, -3)},
		{UserID: customerID, TransactionType: domain.TxWithdrawal, Amount: 300, Status: domain.StatusApproved, Reason: "School fees", CreatedAt: now.AddDate(0, 0, -2)},
		{UserID: customerID, TransactionType: domain.TxLoanRepayment, Amount: 250, Status: domain.StatusApproved, CreatedAt: now.AddDate(0, 0, -2)},
		{UserID: customerID, TransactionType: domain.TxDeposit, Amount: 700, Status: domain.StatusPending, CreatedAt: now.AddDate(0, 0, -1)},
		{UserID: customerID, TransactionType: domain.TxWithdrawal, Amount: 150, Status: domain.StatusPending, Reason: "Medical", CreatedAt: now},
		{UserID: customerID, TransactionType: domain.TxLoan, Amount: 8000, Status: domain.StatusPending, Reason: "Home repair", CreatedAt: now.AddDate(0, 0, -1)},
	}
	if err := db.Create(&transactions).Error; err != nil {
		return fmt.Errorf("seed transactions: %w", err)
	}

	feedbacks := []models.Feedback{
		{UserID: customerID, Subject: "Branch hours", Message: "Could the branch open earlier on Mondays?"},
	}
	if err := db.Create(&feedbacks).Error; err != nil {
		return fmt.Errorf("seed feedbacks: %w", err)
	}

	meetings := []models.Meeting{
		{Title: "Quarterly general assembly", Date: now.AddDate(0, 0, 14).Format("2006-01-02"), Time: "09:00", Location: "Head office hall", Agenda: "Dividend declaration and loan policy review"},
	}
	if err := db.Create(&meetings).Error; err != nil {
		return fmt.Errorf("seed meetings: %w", err)
	}

	log.Println("✅ Seed data created (password for every account: password123)")
	return nil
}
