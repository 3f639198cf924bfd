package main

import (
	"log"

	api "balanceflow-backend/cmd/api"
	authDomain "balanceflow-backend/internal/auth/domain"
	authRepo "balanceflow-backend/internal/auth/repository"
	authUsecase "balanceflow-backend/internal/auth/usecase"
	expenseDomain "balanceflow-backend/internal/expense/domain"
	expenseRepo "balanceflow-backend/internal/expense/repository"
	expenseUsecase "balanceflow-backend/internal/expense/usecase"
	incomeDomain "balanceflow-backend/internal/income/domain"
	incomeRepo "balanceflow-backend/internal/income/repository"
	incomeUsecase "balanceflow-backend/internal/income/usecase"
	"balanceflow-backend/internal/mailer"
	taskDomain "balanceflow-backend/internal/task/domain"
	taskRepo "balanceflow-backend/internal/task/repository"
	taskUsecase "balanceflow-backend/internal/task/usecase"
	"balanceflow-backend/pkg/config"
	"balanceflow-backend/pkg/database"
	"balanceflow-backend/pkg/hash"
	"balanceflow-backend/pkg/token"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.NewPostgresConnection(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Auto-migrate database schemas; the unique index on users.email is the
	// authoritative guard against duplicate signups.
	if err := db.AutoMigrate(&authDomain.User{}, &expenseDomain.Expense{}, &incomeDomain.Income{}, &taskDomain.Task{}); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Initialize repositories (dependency injection)
	userRepository := authRepo.NewUserRepository(db)
	expenseRepository := expenseRepo.NewGormExpenseRepository(db)
	incomeRepository := incomeRepo.NewGormIncomeRepository(db)
	taskRepository := taskRepo.NewGormTaskRepository(db)

	// Shared primitives: password hasher, session token issuer, SMTP mailer
	hasher := hash.NewHasher(cfg.BcryptCost)
	tokens := token.NewIssuer(cfg.JWTSecret, cfg.JWTTTL)
	mail := mailer.NewSMTPMailer(cfg)

	// Initialize use cases
	authUc := authUsecase.NewAuthUsecase(userRepository, hasher, tokens, mail)
	expenseUc := expenseUsecase.NewExpenseUsecase(expenseRepository)
	incomeUc := incomeUsecase.NewIncomeUsecase(incomeRepository)
	taskUc := taskUsecase.NewTaskUsecase(taskRepository)

	// Initialize HTTP handler
	handler := api.NewHandler(authUc, expenseUc, incomeUc, taskUc, tokens)

	log.Printf("Server starting on port %s", cfg.Port)
	if err := handler.Start(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
