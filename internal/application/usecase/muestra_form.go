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

// MuestraForm controlador del modal de muestras. El alta parte de los valores
// por defecto de NuevaMuestra (año en curso, empleado y frecuencia iniciales,
// resto de claves a cero); la validación aplica el conjunto estricto de
// reglas de entity.Muestra.
type MuestraForm struct {
	mu      sync.Mutex
	gateway repository.MuestraGateway
	store   *store.MuestraStore
	log     *logger.Logger

	estado       EstadoFormulario
	modo         ModoFormulario
	idEdicion    int
	borrador     entity.Muestra
	erroresCampo map[string]string
	mensajeError string
}

// NewMuestraForm construye el controlador en estado Inactivo.
func NewMuestraForm(g repository.MuestraGateway, st *store.MuestraStore, log *logger.Logger) *MuestraForm {
	return &MuestraForm{gateway: g, store: st, log: log}
}

// AbrirAlta inicializa el borrador con los valores por defecto del alta.
func (f *MuestraForm) AbrirAlta() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.estado = FormEditando
	f.modo = ModoAlta
	f.idEdicion = 0
	f.borrador = entity.NuevaMuestra()
	f.erroresCampo = nil
	f.mensajeError = ""
}

// AbrirEdicion inicializa el borrador con una copia de la selección actual.
func (f *MuestraForm) AbrirEdicion() error {
	sel := f.store.Seleccionada()
	if sel == nil {
		return fmt.Errorf("%w: no hay muestra seleccionada", domain.ErrValidacion)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.estado = FormEditando
	f.modo = ModoEdicion
	f.idEdicion = sel.ID
	f.borrador = *sel
	f.erroresCampo = nil
	f.mensajeError = ""
	return nil
}

// SetBorrador reemplaza el borrador con lo tecleado en el formulario.
func (f *MuestraForm) SetBorrador(m entity.Muestra) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.borrador = m
}

// Borrador devuelve el borrador en curso.
func (f *MuestraForm) Borrador() entity.Muestra {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.borrador
}

// Enviar valida y persiste el borrador; el store solo se toca cuando el
// gateway confirma.
func (f *MuestraForm) Enviar(ctx context.Context) error {
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
	idEdicion := f.idEdicion
	f.mu.Unlock()

	var (
		confirmada *entity.Muestra
		err        error
	)
	if modo == ModoAlta {
		confirmada, err = f.gateway.Create(ctx, borrador)
	} else {
		confirmada, err = f.gateway.Update(ctx, idEdicion, borrador)
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if err != nil {
		f.estado = FormEditando
		f.mensajeError = "Error al guardar la muestra. " + err.Error()
		f.log.Warn().Err(err).Msg("fallo al guardar muestra")
		return err
	}

	if modo == ModoAlta {
		f.store.Add(*confirmada)
	} else {
		f.store.Update(*confirmada)
	}
	f.estado = FormInactivo
	f.borrador = entity.Muestra{}
	f.log.Info().Int("id", confirmada.ID).Msg("muestra guardada")
	return nil
}

// Cerrar descarta el borrador y vuelve a Inactivo.
func (f *MuestraForm) Cerrar() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.estado = FormInactivo
	f.borrador = entity.Muestra{}
	f.erroresCampo = nil
	f.mensajeError = ""
}

// Estado devuelve el estado actual de la máquina.
func (f *MuestraForm) Estado() EstadoFormulario {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.estado
}

// ErroresCampo devuelve los errores de validación campo→mensaje.
func (f *MuestraForm) ErroresCampo() map[string]string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make(map[string]string, len(f.erroresCampo))
	for k, v := range f.erroresCampo {
		out[k] = v
	}
	return out
}

// Error devuelve el mensaje del último fallo de envío.
func (f *MuestraForm) Error() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.mensajeError
}
