package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/acampoh/artesa-api/internal/application/catalogo"
	"github.com/acampoh/artesa-api/internal/application/gastos"
	"github.com/acampoh/artesa-api/internal/application/produccion"
	"github.com/acampoh/artesa-api/internal/application/ventas"
	"github.com/acampoh/artesa-api/internal/infrastructure/jsonstore"
	httpRouter "github.com/acampoh/artesa-api/internal/interfaces/http"
	"github.com/acampoh/artesa-api/pkg/config"
	"github.com/acampoh/artesa-api/pkg/logger"
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
		Str("data", cfg.Data.Dir).
		Msg("iniciando aplicación")

	store, err := jsonstore.New(cfg.Data.Dir)
	if err != nil {
		log.Fatal().Err(err).Msg("abrir almacén de datos")
	}

	produccionUC := produccion.NewUseCase(store)
	ventasUC := ventas.NewUseCase(store)
	gastosUC := gastos.NewUseCase(store)
	catalogoUC := catalogo.NewUseCase(store)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(cors.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Artesa API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProduccionUC: produccionUC,
		VentasUC:     ventasUC,
		GastosUC:     gastosUC,
		CatalogoUC:   catalogoUC,
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
