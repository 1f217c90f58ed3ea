package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ovi-dev/geslab/internal/infrastructure/memory"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Usuarios *memory.UsuarioRepo
	Clientes *memory.ClienteRepo
	Muestras *memory.MuestraRepo
	JWT      JWTConfig
}

// Router registra las rutas de la API de desarrollo. El contrato replica el
// del backend de producción: login en /api/login, clientes bajo /api/clientes
// y muestras bajo /muestras.
func Router(app *fiber.App, deps RouterDeps) {
	authHandler := NewAuthHandler(deps.Usuarios, deps.JWT)
	clienteHandler := NewClienteHandler(deps.Clientes)
	muestraHandler := NewMuestraHandler(deps.Muestras)
	protegido := AuthMiddleware(deps.JWT.Secret)

	app.Get("/metrics", MetricsHandler())

	// Auth
	app.Post("/api/login", authHandler.Login)
	app.Get("/api/me", protegido, authHandler.Me)
	app.Post("/api/logout", protegido, authHandler.Logout)

	// Clientes (protegido)
	clientes := app.Group("/api/clientes", protegido)
	clientes.Get("/list", clienteHandler.List)
	clientes.Post("/list", clienteHandler.Create)
	clientes.Get("/:id", clienteHandler.GetByID)
	clientes.Put("/:id", clienteHandler.Update)
	clientes.Delete("/:id", clienteHandler.Delete)

	// Muestras (protegido)
	muestras := app.Group("/muestras", protegido)
	muestras.Get("/list", muestraHandler.List)
	muestras.Post("/", muestraHandler.Create)
	muestras.Get("/:id", muestraHandler.GetByID)
	muestras.Put("/:id", muestraHandler.Update)
	muestras.Delete("/:id", muestraHandler.Delete)
}
