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

// ClienteForm controlador del modal de clientes. Mantiene el borrador, valida
// de forma síncrona antes de enviar y reconcilia el resultado confirmado en
// el store. Ante un fallo el borrador del usuario nunca se descarta: el
// formulario vuelve a Editando con el mensaje adjunto.
type ClienteForm struct {
	mu      sync.Mutex
	gateway repository.ClienteGateway
	store   *store.ClienteStore
	log     *logger.Logger

	estado       EstadoFormulario
	modo         ModoFormulario
	borrador     entity.Cliente
	erroresCampo map[string]string
	mensajeError string
}

// NewClienteForm construye el controlador en estado Inactivo.
func NewClienteForm(g repository.ClienteGateway, st *store.ClienteStore, log *logger.Logger) *ClienteForm {
	return &ClienteForm{gateway: g, store: st, log: log}
}

// AbrirAlta inicializa el borrador con los valores por defecto del alta.
func (f *ClienteForm) AbrirAlta() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.estado = FormEditando
	f.modo = ModoAlta
	f.borrador = entity.NuevoCliente()
	f.erroresCampo = nil
	f.mensajeError = ""
}

// AbrirEdicion inicializa el borrador con una copia de la selección actual.
func (f *ClienteForm) AbrirEdicion() error {
	sel := f.store.Seleccionado()
	if sel == nil {
		return fmt.Errorf("%w: no hay cliente seleccionado", domain.ErrValidacion)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.estado = FormEditando
	f.modo = ModoEdicion
	f.borrador = *sel
	f.erroresCampo = nil
	f.mensajeError = ""
	return nil
}

// SetBorrador reemplaza el borrador con lo tecleado en el formulario.
func (f *ClienteForm) SetBorrador(c entity.Cliente) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.borrador = c
}

// Borrador devuelve el borrador en curso.
func (f *ClienteForm) Borrador() entity.Cliente {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.borrador
}

// Enviar valida y persiste el borrador. La validación bloquea el envío; el
// store solo se toca cuando el gateway confirma.
func (f *ClienteForm) Enviar(ctx context.Context) error {
	f.mu.Lock()
	if f.estado != FormEditando {
		f.mu.Unlock()
		return fmt.Errorf("%w: el formulario no está en edición", domain.ErrValidacion)
	}
	borrador := f.borrador
	if errores := borrador.Validar(); len(errores) > 0 {
		f.erroresCampo = errores
		f.mu.Unlock()
		return domain.ErrValidacion
	}
	f.erroresCampo = nil
	f.mensajeError = ""
	f.estado = FormEnviando
	modo := f.modo
	f.mu.Unlock()

	var (
		confirmado *entity.Cliente
		err        error
	)
	if modo == ModoAlta {
		confirmado, err = f.gateway.Create(ctx, borrador)
	} else {
		confirmado, err = f.gateway.Update(ctx, borrador)
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if err != nil {
		// El borrador se conserva para reintentar.
		f.estado = FormEditando
		f.mensajeError = "No se pudo guardar el cliente. " + err.Error()
		f.log.Warn().Err(err).Msg("fallo al guardar cliente")
		return err
	}

	if modo == ModoAlta {
		f.store.Add(*confirmado)
	} else {
		f.store.Update(*confirmado)
	}
	f.estado = FormInactivo
	f.borrador = entity.Cliente{}
	f.log.Info().Int("id", confirmado.ID).Msg("cliente guardado")
	return nil
}

// Cerrar descarta el borrador y vuelve a Inactivo.
func (f *ClienteForm) Cerrar() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.estado = FormInactivo
	f.borrador = entity.Cliente{}
	f.erroresCampo = nil
	f.mensajeError = ""
}

// Estado devuelve el estado actual de la máquina.
func (f *ClienteForm) Estado() EstadoFormulario {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.estado
}

// ErroresCampo devuelve los errores de validación campo→mensaje.
func (f *ClienteForm) ErroresCampo() map[string]string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make(map[string]string, len(f.erroresCampo))
	for k, v := range f.erroresCampo {
		out[k] = v
	}
	return out
}

// Error devuelve el mensaje del último fallo de envío.
func (f *ClienteForm) Error() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.mensajeError
}
