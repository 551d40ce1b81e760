package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sacco-desk/internal/adapters/http/handlers"
	"sacco-desk/internal/adapters/http/middleware"
	"sacco-desk/internal/config"
)

// Setup configures all routes for the stub API server
func Setup(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	// Initialize handlers
	healthHandler := handlers.NewHealthHandler()
	authHandler := handlers.NewAuthHandler(db, cfg)
	transactionHandler := handlers.NewTransactionHandler(db)
	customerHandler := handlers.NewCustomerHandler(db)
	employeeHandler := handlers.NewEmployeeHandler(db)
	userHandler := handlers.NewUserHandler(db)
	feedbackHandler := handlers.NewFeedbackHandler(db)
	meetingHandler := handlers.NewMeetingHandler(db)

	app.Get("/health", healthHandler.Check)

	api := app.Group("/api")
	api.Post("/login", authHandler.Login)

	// Everything below requires a bearer token
	auth := middleware.AuthMiddleware(cfg)

	api.Post("/logout", auth, authHandler.Logout)
	api.Get("/user", auth, authHandler.Me)
	api.Post("/change-password", auth, authHandler.ChangePassword)
	api.Post("/profile", auth, authHandler.UploadProfilePicture)
	api.Get("/customerdata", auth, authHandler.CustomerData)

	// Transactions
	api.Get("/transactions", auth, transactionHandler.List)
	api.Post("/transactions/:id/process", auth, middleware.StaffOnly(), transactionHandler.Process)
	api.Post("/deposit", auth, transactionHandler.SubmitDeposit)
	api.Post("/withdraw", auth, transactionHandler.SubmitWithdrawal)
	api.Post("/loan", auth, transactionHandler.SubmitLoanRepayment)
	api.Post("/apply-loan", auth, transactionHandler.ApplyLoan)

	// Customers
	api.Get("/customers", auth, transactionStaff(), customerHandler.List)
	api.Post("/register-customer", auth, transactionStaff(), customerHandler.Register)
	api.Put("/customers/:id", auth, transactionStaff(), customerHandler.Update)
	api.Delete("/customers/:id", auth, transactionStaff(), customerHandler.Delete)

	// Employees (manager)
	api.Get("/employees", auth, middleware.RoleMiddleware("manager", "admin"), employeeHandler.List)
	api.Post("/employees", auth, middleware.RoleMiddleware("manager", "admin"), employeeHandler.Create)
	api.Put("/employees/:id", auth, middleware.RoleMiddleware("manager", "admin"), employeeHandler.Update)
	api.Delete("/employees/:id", auth, middleware.RoleMiddleware("manager", "admin"), employeeHandler.Delete)

	// Users (admin)
	api.Get("/users", auth, middleware.AdminOnly(), userHandler.List)
	api.Post("/signup", auth, middleware.AdminOnly(), userHandler.Signup)
	api.Put("/users/:id", auth, middleware.AdminOnly(), userHandler.Update)
	api.Delete("/users/:id", auth, middleware.AdminOnly(), userHandler.Delete)

	// Feedback
	api.Get("/feedbacks", auth, feedbackHandler.List)
	api.Post("/feedback", auth, feedbackHandler.Create)
	api.Put("/feedback/:id/respond", auth, middleware.StaffOnly(), feedbackHandler.Respond)

	// Meetings
	api.Get("/meetings", auth, meetingHandler.List)
	api.Post("/meetings", auth, middleware.RoleMiddleware("manager", "admin"), meetingHandler.Create)
}

// transactionStaff guards customer management: accountants and admins.
func transactionStaff() fiber.Handler {
	return middleware.RoleMiddleware("accountant", "admin")
}
