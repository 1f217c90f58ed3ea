package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/ovi-dev/geslab/internal/domain"
	"github.com/ovi-dev/geslab/internal/domain/entity"
	"github.com/ovi-dev/geslab/internal/infrastructure/memory"
)

// MuestraHandler maneja las peticiones HTTP de muestras (protegido).
type MuestraHandler struct {
	repo *memory.MuestraRepo
}

// NewMuestraHandler construye el handler.
func NewMuestraHandler(repo *memory.MuestraRepo) *MuestraHandler {
	return &MuestraHandler{repo: repo}
}

// List devuelve la colección completa.
func (h *MuestraHandler) List(c *fiber.Ctx) error {
	return c.JSON(h.repo.List())
}

// GetByID devuelve una muestra por ID.
func (h *MuestraHandler) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(respuestaError{Code: "INVALID_ID", Message: "id inválido"})
	}
	m, err := h.repo.Get(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(respuestaError{Code: "NOT_FOUND", Message: "muestra no encontrada"})
	}
	return c.JSON(m)
}

// Create da de alta una muestra y devuelve la representación con su ID.
func (h *MuestraHandler) Create(c *fiber.Ctx) error {
	var in entity.Muestra
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(respuestaError{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if errores := in.Validar(); len(errores) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "datos inválidos", "errors": errores})
	}
	in.ID = 0
	return c.Status(fiber.StatusCreated).JSON(h.repo.Create(in))
}

// Update reemplaza la muestra completa.
func (h *MuestraHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(respuestaError{Code: "INVALID_ID", Message: "id inválido"})
	}
	var in entity.Muestra
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(respuestaError{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if errores := in.Validar(); len(errores) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "datos inválidos", "errors": errores})
	}
	actualizada, err := h.repo.Update(id, in)
	if err != nil {
		if errors.Is(err, domain.ErrNoEncontrado) {
			return c.Status(fiber.StatusNotFound).JSON(respuestaError{Code: "NOT_FOUND", Message: "muestra no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(respuestaError{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(actualizada)
}

// Delete elimina por ID.
func (h *MuestraHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(respuestaError{Code: "INVALID_ID", Message: "id inválido"})
	}
	if err := h.repo.Delete(id); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(respuestaError{Code: "NOT_FOUND", Message: "muestra no encontrada"})
	}
	return c.JSON(fiber.Map{"message": "muestra eliminada"})
}
