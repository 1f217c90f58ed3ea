package usecase

import (
	"context"
	"fmt"
	"sync"

	"github.com/ovi-dev/geslab/internal/domain"
	"github.com/ovi-dev/geslab/internal/domain/entity"
	"github.com/ovi-dev/geslab/internal/domain/repository"
	"github.com/ovi-dev/geslab/internal/store"
	"github.com/ovi-dev/geslab/pkg/logger"
)

// ClienteEliminar flujo de borrado con confirmación explícita: Solicitar deja
// el borrado pendiente (el diálogo de confirmación), Confirmar lo ejecuta y
// Cancelar lo descarta. El store limpia la selección si apuntaba a la fila
// eliminada.
type ClienteEliminar struct {
	mu        sync.Mutex
	gateway   repository.ClienteGateway
	store     *store.ClienteStore
	log       *logger.Logger
	pendiente *entity.Cliente
}

// NewClienteEliminar construye el flujo de borrado.
func NewClienteEliminar(g repository.ClienteGateway, st *store.ClienteStore, log *logger.Logger) *ClienteEliminar {
	return &ClienteEliminar{gateway: g, store: st, log: log}
}

// Solicitar marca el cliente como pendiente de confirmación y lo devuelve
// para que el diálogo muestre sus datos.
func (e *ClienteEliminar) Solicitar(id int) (*entity.Cliente, error) {
	c, ok := e.store.GetByID(id)
	if !ok {
		return nil, domain.ErrNoEncontrado
	}
	e.mu.Lock()
	e.pendiente = &c
	e.mu.Unlock()
	return &c, nil
}

// Pendiente devuelve el cliente a la espera de confirmación, o nil.
func (e *ClienteEliminar) Pendiente() *entity.Cliente {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.pendiente == nil {
		return nil
	}
	copia := *e.pendiente
	return &copia
}

// Confirmar ejecuta el borrado pendiente contra el gateway y reconcilia el
// store solo cuando el servidor confirma.
func (e *ClienteEliminar) Confirmar(ctx context.Context) error {
	e.mu.Lock()
	pendiente := e.pendiente
	e.mu.Unlock()
	if pendiente == nil {
		return fmt.Errorf("%w: no hay borrado pendiente", domain.ErrValidacion)
	}
	if err := e.gateway.Remove(ctx, pendiente.ID); err != nil {
		e.log.Warn().Err(err).Int("id", pendiente.ID).Msg("fallo al eliminar cliente")
		return err
	}
	e.store.Remove(pendiente.ID)
	e.mu.Lock()
	e.pendiente = nil
	e.mu.Unlock()
	e.log.Info().Int("id", pendiente.ID).Msg("cliente eliminado")
	return nil
}

// Cancelar descarta el borrado pendiente.
func (e *ClienteEliminar) Cancelar() {
	e.mu.Lock()
	e.pendiente = nil
	e.mu.Unlock()
}

// MuestraEliminar homólogo de ClienteEliminar para muestras.
type MuestraEliminar struct {
	mu        sync.Mutex
	gateway   repository.MuestraGateway
	store     *store.MuestraStore
	log       *logger.Logger
	pendiente *entity.Muestra
}

// NewMuestraEliminar construye el flujo de borrado.
func NewMuestraEliminar(g repository.MuestraGateway, st *store.MuestraStore, log *logger.Logger) *MuestraEliminar {
	return &MuestraEliminar{gateway: g, store: st, log: log}
}

// Solicitar marca la muestra como pendiente de confirmación.
func (e *MuestraEliminar) Solicitar(id int) (*entity.Muestra, error) {
	m, ok := e.store.GetByID(id)
	if !ok {
		return nil, domain.ErrNoEncontrado
	}
	e.mu.Lock()
	e.pendiente = &m
	e.mu.Unlock()
	return &m, nil
}

// Pendiente devuelve la muestra a la espera de confirmación, o nil.
func (e *MuestraEliminar) Pendiente() *entity.Muestra {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.pendiente == nil {
		return nil
	}
	copia := *e.pendiente
	return &copia
}

// Confirmar ejecuta el borrado pendiente contra el gateway.
func (e *MuestraEliminar) Confirmar(ctx context.Context) error {
	e.mu.Lock()
	pendiente := e.pendiente
	e.mu.Unlock()
	if pendiente == nil {
		return fmt.Errorf("%w: no hay borrado pendiente", domain.ErrValidacion)
	}
	if err := e.gateway.Remove(ctx, pendiente.ID); err != nil {
		e.log.Warn().Err(err).Int("id", pendiente.ID).Msg("fallo al eliminar muestra")
		return err
	}
	e.store.Remove(pendiente.ID)
	e.mu.Lock()
	e.pendiente = nil
	e.mu.Unlock()
	e.log.Info().Int("id", pendiente.ID).Msg("muestra eliminada")
	return nil
}

// Cancelar descarta el borrado pendiente.
func (e *MuestraEliminar) Cancelar() {
	e.mu.Lock()
	e.pendiente = nil
	e.mu.Unlock()
}
