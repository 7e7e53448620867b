// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/fincheck/backend/internal/integration/entrypoint/controller"
	"github.com/fincheck/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                *gin.Engine
	healthController      *controller.HealthController
	authController        *controller.AuthController
	userController        *controller.UserController
	bankAccountController *controller.BankAccountController
	categoryController    *controller.CategoryController
	transactionController *controller.TransactionController
	signinRateLimiter     *middleware.RateLimiter
	authMiddleware        *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	authController *controller.AuthController,
	userController *controller.UserController,
	bankAccountController *controller.BankAccountController,
	categoryController *controller.CategoryController,
	transactionController *controller.TransactionController,
	signinRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:      healthController,
		authController:        authController,
		userController:        userController,
		bankAccountController: bankAccountController,
		categoryController:    categoryController,
		transactionController: transactionController,
		signinRateLimiter:     signinRateLimiter,
		authMiddleware:        authMiddleware,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	r.engine = gin.Default()

	r.setupHealthRoutes()
	r.setupAuthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAuthRoutes configures the public authentication endpoints. Signin
// carries the rate limiter; signup does not.
func (r *Router) setupAuthRoutes() {
	auth := r.engine.Group("/auth")
	{
		auth.POST("/signup", r.authController.SignUp)
		auth.POST("/signin", r.signinRateLimiter.Middleware(), r.authController.SignIn)
	}
}

// setupAPIRoutes configures the authenticated resource endpoints.
func (r *Router) setupAPIRoutes() {
	users := r.engine.Group("/users")
	users.Use(r.authMiddleware.Authenticate())
	{
		users.GET("/me", r.userController.Me)
	}

	bankAccounts := r.engine.Group("/bank-accounts")
	bankAccounts.Use(r.authMiddleware.Authenticate())
	{
		bankAccounts.GET("", r.bankAccountController.List)
		bankAccounts.POST("", r.bankAccountController.Create)
		bankAccounts.PUT("/:bankAccountId", r.bankAccountController.Update)
		bankAccounts.DELETE("/:bankAccountId", r.bankAccountController.Delete)
	}

	categories := r.engine.Group("/categories")
	categories.Use(r.authMiddleware.Authenticate())
	{
		categories.GET("", r.categoryController.List)
		categories.POST("", r.categoryController.Create)
		categories.PUT("/:categoryId", r.categoryController.Update)
		categories.DELETE("/:categoryId", r.categoryController.Delete)
	}

	transactions := r.engine.Group("/transactions")
	transactions.Use(r.authMiddleware.Authenticate())
	{
		transactions.GET("", r.transactionController.List)
		transactions.POST("", r.transactionController.Create)
		transactions.PUT("/:transactionId", r.transactionController.Update)
		transactions.DELETE("/:transactionId", r.transactionController.Delete)
	}
}
