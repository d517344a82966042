package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/gestion-ops/internal/application/auth"
	"github.com/tu-usuario/gestion-ops/internal/application/usecase"
	"github.com/tu-usuario/gestion-ops/internal/domain/repository"
	"github.com/tu-usuario/gestion-ops/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	OperationUC *usecase.OperationUseCase
	ExpenseUC   *usecase.ExpenseUseCase
	TaskUC      *usecase.TaskUseCase
	ClientUC    *usecase.ClientUseCase
	TaxonomyUC  *usecase.TaxonomyUseCase
	UserUC      *usecase.UserUseCase
	UserRepo    repository.UserRepository
	JWTSecret   string
	Log         *logger.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC, deps.Log)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token; el middleware resuelve el usuario vivo)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret, deps.UserRepo))

	protected.Get("/auth/me", authHandler.Me)

	// Operations (protegido)
	operations := protected.Group("/operations")
	operationHandler := NewOperationHandler(deps.OperationUC, deps.Log)
	operations.Get("/", operationHandler.List)
	operations.Post("/", operationHandler.Create)
	operations.Put("/:id", operationHandler.Update)
	operations.Delete("/:id", operationHandler.Delete)

	// Expenses (protegido, finanzas)
	expenses := protected.Group("/expenses")
	expenseHandler := NewExpenseHandler(deps.ExpenseUC, deps.Log)
	expenses.Get("/", expenseHandler.List)
	expenses.Post("/", expenseHandler.Create)
	expenses.Put("/:id", expenseHandler.Update)
	expenses.Delete("/:id", expenseHandler.Delete)

	// Tasks (protegido)
	tasks := protected.Group("/tasks")
	taskHandler := NewTaskHandler(deps.TaskUC, deps.Log)
	tasks.Get("/", taskHandler.List)
	tasks.Post("/", taskHandler.Create)
	tasks.Put("/:id", taskHandler.Update)
	tasks.Delete("/:id", taskHandler.Delete)

	// Clients (protegido, CRM)
	clients := protected.Group("/clients")
	clientHandler := NewClientHandler(deps.ClientUC, deps.Log)
	clients.Get("/", clientHandler.List)
	clients.Post("/", clientHandler.Create)
	clients.Put("/:id", clientHandler.Update)
	clients.Delete("/:id", clientHandler.Delete)

	// Taxonomías (protegido; creación solo admin, validada en el caso de uso)
	taxonomyHandler := NewTaxonomyHandler(deps.TaxonomyUC, deps.Log)
	categories := protected.Group("/expense-categories")
	categories.Get("/", taxonomyHandler.ListCategories)
	categories.Post("/", taxonomyHandler.CreateCategory)
	categories.Put("/:id", taxonomyHandler.UpdateCategory)
	categories.Delete("/:id", taxonomyHandler.DeleteCategory)

	types := protected.Group("/operation-types")
	types.Get("/", taxonomyHandler.ListTypes)
	types.Post("/", taxonomyHandler.CreateType)
	types.Put("/:id", taxonomyHandler.UpdateType)
	types.Delete("/:id", taxonomyHandler.DeleteType)

	// Users (solo admin)
	users := protected.Group("/users", RequireAdmin())
	userHandler := NewUserHandler(deps.UserUC, deps.Log)
	users.Get("/", userHandler.List)
	users.Post("/", userHandler.Create)
	users.Put("/:id", userHandler.Update)
	users.Put("/:id/permissions", userHandler.UpdatePermissions)
	users.Delete("/:id", userHandler.Delete)
}
