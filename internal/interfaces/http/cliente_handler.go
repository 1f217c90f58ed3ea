package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/ovi-dev/geslab/internal/domain"
	"github.com/ovi-dev/geslab/internal/domain/entity"
	"github.com/ovi-dev/geslab/internal/infrastructure/memory"
)

// ClienteHandler maneja las peticiones HTTP de clientes (protegido).
type ClienteHandler struct {
	repo *memory.ClienteRepo
}

// NewClienteHandler construye el handler.
func NewClienteHandler(repo *memory.ClienteRepo) *ClienteHandler {
	return &ClienteHandler{repo: repo}
}

// List devuelve la colección completa.
func (h *ClienteHandler) List(c *fiber.Ctx) error {
	return c.JSON(h.repo.List())
}

// GetByID devuelve un cliente por ID.
func (h *ClienteHandler) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(respuestaError{Code: "INVALID_ID", Message: "id inválido"})
	}
	cliente, err := h.repo.Get(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(respuestaError{Code: "NOT_FOUND", Message: "cliente no encontrado"})
	}
	return c.JSON(cliente)
}

// Create da de alta un cliente y devuelve la representación con su ID.
func (h *ClienteHandler) Create(c *fiber.Ctx) error {
	var in entity.Cliente
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(respuestaError{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if errores := in.Validar(); len(errores) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "datos inválidos", "errors": errores})
	}
	in.ID = 0
	return c.Status(fiber.StatusCreated).JSON(h.repo.Create(in))
}

// Update reemplaza el cliente completo.
func (h *ClienteHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(respuestaError{Code: "INVALID_ID", Message: "id inválido"})
	}
	var in entity.Cliente
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(respuestaError{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if errores := in.Validar(); len(errores) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "datos inválidos", "errors": errores})
	}
	in.ID = id
	actualizado, err := h.repo.Update(in)
	if err != nil {
		if errors.Is(err, domain.ErrNoEncontrado) {
			return c.Status(fiber.StatusNotFound).JSON(respuestaError{Code: "NOT_FOUND", Message: "cliente no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(respuestaError{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(actualizado)
}

// Delete elimina por ID.
func (h *ClienteHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(respuestaError{Code: "INVALID_ID", Message: "id inválido"})
	}
	if err := h.repo.Delete(id); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(respuestaError{Code: "NOT_FOUND", Message: "cliente no encontrado"})
	}
	return c.JSON(fiber.Map{"message": "cliente eliminado"})
}
