package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/tu-usuario/stock-planner/internal/application/auth"
	"github.com/tu-usuario/stock-planner/internal/application/catalog"
	"github.com/tu-usuario/stock-planner/internal/application/planning"
	"github.com/tu-usuario/stock-planner/internal/infrastructure/postgres"
	httpRouter "github.com/tu-usuario/stock-planner/internal/interfaces/http"
	"github.com/tu-usuario/stock-planner/pkg/config"
	"github.com/tu-usuario/stock-planner/pkg/logger"
	"github.com/tu-usuario/stock-planner/pkg/session"
)

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

	if cfg.Session.SecretGenerated {
		log.Warn().Msg("SESSION_SECRET no definido: clave generada al azar, las sesiones no sobreviven reinicios")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.EnsureSchema(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("crear esquema")
	}

	userRepo := postgres.NewUserRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	salesRepo := postgres.NewMonthlySalesRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	sessions := session.New(cfg.Session.Secret, cfg.App.Name, time.Duration(cfg.Session.MaxAgeDays)*24*time.Hour)
	authUC := auth.NewUseCase(userRepo, sessions, cfg.Session.BCryptCost)
	catalogUC := catalog.NewUseCase(txRunner, productRepo, salesRepo)
	planningUC := planning.NewUseCase(productRepo, salesRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Stock Planner API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:     authUC,
		CatalogUC:  catalogUC,
		PlanningUC: planningUC,
		Sessions:   sessions,
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
