package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ovi-dev/geslab/internal/domain/entity"
	"github.com/ovi-dev/geslab/internal/infrastructure/memory"
	"github.com/ovi-dev/geslab/pkg/jwt"
)

// JWTConfig parámetros de emisión de tokens del servidor de desarrollo.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthHandler maneja login, sesión actual y logout.
type AuthHandler struct {
	usuarios *memory.UsuarioRepo
	jwtCfg   JWTConfig
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(usuarios *memory.UsuarioRepo, jwtCfg JWTConfig) *AuthHandler {
	return &AuthHandler{usuarios: usuarios, jwtCfg: jwtCfg}
}

// Login valida credenciales y devuelve {"token": ...}.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in entity.Credenciales
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(respuestaError{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Usuario == "" || in.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(respuestaError{Code: "VALIDATION", Message: "USUARIO y PASSWORD son requeridos"})
	}
	u, err := h.usuarios.Validar(in.Usuario, in.Password)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(respuestaError{Code: "UNAUTHORIZED", Message: "credenciales inválidas"})
	}
	token, err := jwt.Generate(h.jwtCfg.Secret, u.ID, u.Nombre, h.jwtCfg.Issuer, h.jwtCfg.ExpMinutes)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(respuestaError{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(fiber.Map{"token": token})
}

// Me devuelve el usuario de la sesión actual (requiere token válido).
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	u, err := h.usuarios.PorID(GetUserID(c))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(respuestaError{Code: "NOT_FOUND", Message: "usuario no encontrado"})
	}
	return c.JSON(u)
}

// Logout invalida la sesión. Los tokens son stateless: el servidor solo
// confirma la operación y es el cliente quien descarta la credencial.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"message": "sesión cerrada"})
}
