// Package main is the entry point for the Fincheck API server.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/fincheck/backend/config"
	"github.com/fincheck/backend/internal/application/usecase/auth"
	"github.com/fincheck/backend/internal/application/usecase/bankaccount"
	"github.com/fincheck/backend/internal/application/usecase/category"
	"github.com/fincheck/backend/internal/application/usecase/transaction"
	"github.com/fincheck/backend/internal/application/usecase/user"
	"github.com/fincheck/backend/internal/infra/db"
	"github.com/fincheck/backend/internal/infra/server/router"
	"github.com/fincheck/backend/internal/integration/adapters"
	"github.com/fincheck/backend/internal/integration/entrypoint/controller"
	"github.com/fincheck/backend/internal/integration/entrypoint/middleware"
	"github.com/fincheck/backend/internal/integration/persistence"
	"github.com/fincheck/backend/internal/integration/persistence/model"
)

func main() {
	// Load .env file if it exists (development only)
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := config.Load()

	slog.Info("Starting Fincheck API",
		"environment", cfg.Server.Environment,
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
	)

	database, err := db.NewPostgresConnection(&cfg.Database)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := database.Close(); err != nil {
			slog.Error("Failed to close database connection", "error", err)
		}
	}()

	if err := database.AutoMigrate(
		&model.UserModel{},
		&model.CategoryModel{},
		&model.BankAccountModel{},
		&model.TransactionModel{},
	); err != nil {
		slog.Error("Failed to run database migrations", "error", err)
		os.Exit(1)
	}
	slog.Info("Database migrations completed successfully")

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer func() {
		if err := redisClient.Close(); err != nil {
			slog.Error("Failed to close redis connection", "error", err)
		}
	}()

	// Repositories
	userRepo := persistence.NewUserRepository(database.DB())
	bankAccountRepo := persistence.NewBankAccountRepository(database.DB())
	categoryRepo := persistence.NewCategoryRepository(database.DB())
	transactionRepo := persistence.NewTransactionRepository(database.DB())

	// Adapters
	passwordService := adapters.NewPasswordService()
	tokenService := adapters.NewTokenService(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry)

	// Ownership validators
	validateBankAccountOwner := bankaccount.NewValidateBankAccountOwnershipUseCase(bankAccountRepo)
	validateCategoryOwner := category.NewValidateCategoryOwnershipUseCase(categoryRepo)
	validateTransactionOwner := transaction.NewValidateTransactionOwnershipUseCase(transactionRepo)

	// Use cases
	signUpUseCase := auth.NewSignUpUseCase(userRepo, passwordService, tokenService)
	signInUseCase := auth.NewSignInUseCase(userRepo, passwordService, tokenService)
	getUserUseCase := user.NewGetUserUseCase(userRepo)

	createBankAccountUseCase := bankaccount.NewCreateBankAccountUseCase(bankAccountRepo)
	listBankAccountsUseCase := bankaccount.NewListBankAccountsUseCase(bankAccountRepo, transactionRepo)
	updateBankAccountUseCase := bankaccount.NewUpdateBankAccountUseCase(bankAccountRepo)
	deleteBankAccountUseCase := bankaccount.NewDeleteBankAccountUseCase(bankAccountRepo, validateBankAccountOwner)

	createCategoryUseCase := category.NewCreateCategoryUseCase(categoryRepo)
	listCategoriesUseCase := category.NewListCategoriesUseCase(categoryRepo)
	updateCategoryUseCase := category.NewUpdateCategoryUseCase(categoryRepo)
	deleteCategoryUseCase := category.NewDeleteCategoryUseCase(categoryRepo, validateCategoryOwner)

	createTransactionUseCase := transaction.NewCreateTransactionUseCase(transactionRepo, validateBankAccountOwner, validateCategoryOwner)
	listTransactionsUseCase := transaction.NewListTransactionsUseCase(transactionRepo)
	updateTransactionUseCase := transaction.NewUpdateTransactionUseCase(transactionRepo, validateTransactionOwner, validateBankAccountOwner, validateCategoryOwner)
	deleteTransactionUseCase := transaction.NewDeleteTransactionUseCase(transactionRepo, validateTransactionOwner)

	// Controllers and middleware
	healthController := controller.NewHealthController(database.HealthCheck)
	authController := controller.NewAuthController(signUpUseCase, signInUseCase)
	userController := controller.NewUserController(getUserUseCase)
	bankAccountController := controller.NewBankAccountController(
		createBankAccountUseCase,
		listBankAccountsUseCase,
		updateBankAccountUseCase,
		deleteBankAccountUseCase,
	)
	categoryController := controller.NewCategoryController(
		createCategoryUseCase,
		listCategoriesUseCase,
		updateCategoryUseCase,
		deleteCategoryUseCase,
	)
	transactionController := controller.NewTransactionController(
		createTransactionUseCase,
		listTransactionsUseCase,
		updateTransactionUseCase,
		deleteTransactionUseCase,
	)

	signinRateLimiter := middleware.NewRateLimiterWithConfig(redisClient, logger, cfg.RateLimit.MaxAttempts, cfg.RateLimit.Window)
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	r := router.NewRouter(
		healthController,
		authController,
		userController,
		bankAccountController,
		categoryController,
		transactionController,
		signinRateLimiter,
		authMiddleware,
	)
	engine := r.Setup(cfg.Server.Environment)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		slog.Info("Server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server exited properly")
}
