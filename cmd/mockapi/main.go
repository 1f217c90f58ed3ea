package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/ovi-dev/geslab/internal/domain/entity"
	"github.com/ovi-dev/geslab/internal/infrastructure/memory"
	apphttp "github.com/ovi-dev/geslab/internal/interfaces/http"
	"github.com/ovi-dev/geslab/pkg/config"
	"github.com/ovi-dev/geslab/pkg/logger"
)

// mockapi levanta la API simulada del laboratorio: replica el contrato REST
// del backend real sobre almacenamiento en memoria, con login JWT y datos de
// siembra. Pensada para desarrollo y pruebas del cliente.
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	if cfg.JWT.Secret == "" {
		cfg.JWT.Secret = "geslab-dev-secret"
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando API simulada")

	usuarios := memory.NewUsuarioRepo()
	if err := usuarios.Registrar(
		entity.Usuario{ID: "1", Nombre: "Admin", Email: "admin@geslab.local"},
		"admin", "admin",
	); err != nil {
		log.Fatal().Err(err).Msg("sembrar usuario inicial")
	}
	clientes := memory.NewClienteRepo(memory.SemillaClientes())
	muestras := memory.NewMuestraRepo(memory.SemillaMuestras())

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(apphttp.MetricsMiddleware())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	apphttp.Router(app, apphttp.RouterDeps{
		Usuarios: usuarios,
		Clientes: clientes,
		Muestras: muestras,
		JWT: apphttp.JWTConfig{
			Secret:     cfg.JWT.Secret,
			ExpMinutes: cfg.JWT.Expiration,
			Issuer:     cfg.JWT.Issuer,
		},
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

	log.Info().Msg("API simulada detenida")
}
