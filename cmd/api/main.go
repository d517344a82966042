package main

import (
	"context"
	_ "embed"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/tu-usuario/gestion-ops/internal/application/auth"
	"github.com/tu-usuario/gestion-ops/internal/application/usecase"
	"github.com/tu-usuario/gestion-ops/internal/infrastructure/postgres"
	httpRouter "github.com/tu-usuario/gestion-ops/internal/interfaces/http"
	"github.com/tu-usuario/gestion-ops/pkg/config"
	"github.com/tu-usuario/gestion-ops/pkg/logger"
)

// El spec OpenAPI va embebido en el binario: el middleware de swagger no debe
// depender de archivos presentes en el directorio de trabajo.
//
//go:embed docs/swagger.json
var swaggerSpec []byte

// swaggerUI construye el middleware que sirve la UI en /docs y el spec en
// /docs/swagger.json.
func swaggerUI(title string) fiber.Handler {
	return swagger.New(swagger.Config{
		BasePath:    "/",
		FilePath:    "docs/swagger.json",
		FileContent: swaggerSpec,
		Path:        "docs",
		Title:       title,
	})
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	operationRepo := postgres.NewOperationRepository(pool)
	expenseRepo := postgres.NewExpenseRepository(pool)
	taskRepo := postgres.NewTaskRepository(pool)
	clientRepo := postgres.NewClientRepository(pool)
	categoryRepo := postgres.NewExpenseCategoryRepository(pool)
	typeRepo := postgres.NewOperationTypeRepository(pool)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:             cfg.JWT.Secret,
		ExpMinutes:         cfg.JWT.Expiration,
		RememberExpMinutes: cfg.JWT.RememberExpiration,
		Issuer:             cfg.JWT.Issuer,
	})
	operationUC := usecase.NewOperationUseCase(operationRepo, expenseRepo, taskRepo, clientRepo)
	expenseUC := usecase.NewExpenseUseCase(expenseRepo, operationRepo)
	taskUC := usecase.NewTaskUseCase(taskRepo, operationRepo)
	clientUC := usecase.NewClientUseCase(clientRepo, operationRepo)
	taxonomyUC := usecase.NewTaxonomyUseCase(categoryRepo, typeRepo)
	userUC := usecase.NewUserUseCase(userRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORS.Origins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PUT, DELETE, OPTIONS",
	}))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swaggerUI("Gestión Ops API"))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		OperationUC: operationUC,
		ExpenseUC:   expenseUC,
		TaskUC:      taskUC,
		ClientUC:    clientUC,
		TaxonomyUC:  taxonomyUC,
		UserUC:      userUC,
		UserRepo:    userRepo,
		JWTSecret:   cfg.JWT.Secret,
		Log:         log,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
