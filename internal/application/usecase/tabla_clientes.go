package usecase

import (
	"slices"
	"sync"
	"sync/atomic"

	"github.com/ovi-dev/geslab/internal/domain/entity"
	"github.com/ovi-dev/geslab/internal/filter"
	"github.com/ovi-dev/geslab/internal/presenter"
	"github.com/ovi-dev/geslab/internal/store"
)

// TablaClientes une store, motor de filtrado y paginador: ante cualquier
// cambio de criterios o de la colección canónica recalcula la vista filtrada,
// la publica en el store y reinicia la ventana visible. Un cambio de filtro
// gana siempre a una carga de página en curso.
type TablaClientes struct {
	mu        sync.Mutex
	store     *store.ClienteStore
	filtro    filter.ClienteFiltro
	paginador *presenter.Paginador[entity.Cliente]

	vista       []entity.Cliente // última vista filtrada publicada
	vistaValida bool

	aplicando atomic.Bool
	cancelSub func()
}

// NewTablaClientes construye la tabla y queda suscrita al store para
// refrescarse cuando cambie la colección canónica.
func NewTablaClientes(st *store.ClienteStore, tamPagina int) *TablaClientes {
	t := &TablaClientes{
		store:     st,
		paginador: presenter.NewPaginador[entity.Cliente](tamPagina),
	}
	t.cancelSub = st.Subscribe(func() {
		// Las notificaciones provocadas por nuestro propio SetFiltrados no
		// deben re-disparar el recálculo.
		if t.aplicando.Load() {
			return
		}
		t.Refrescar()
	})
	t.Refrescar()
	return t
}

// Cerrar da de baja la suscripción al store.
func (t *TablaClientes) Cerrar() {
	if t.cancelSub != nil {
		t.cancelSub()
	}
}

// SetFiltro fija los criterios y recalcula la vista.
func (t *TablaClientes) SetFiltro(f filter.ClienteFiltro) {
	t.mu.Lock()
	t.filtro = f
	t.mu.Unlock()
	t.Refrescar()
}

// Filtro devuelve los criterios actuales.
func (t *TablaClientes) Filtro() filter.ClienteFiltro {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.filtro
}

// LimpiarFiltros desactiva todos los criterios.
func (t *TablaClientes) LimpiarFiltros() {
	t.SetFiltro(filter.ClienteFiltro{})
}

// Refrescar recalcula la vista filtrada desde la colección canónica, la
// publica en el store y reinicia el paginador. El recálculo es determinista:
// no depende de resultados filtrados anteriores. Una notificación que no
// altera la vista filtrada (selección, flags de carga o de error) no toca el
// paginador: el usuario no pierde la ventana de scroll por seleccionar una
// fila.
func (t *TablaClientes) Refrescar() {
	t.mu.Lock()
	f := t.filtro
	t.mu.Unlock()

	filtrados := f.Aplicar(t.store.Clientes())

	if !slices.Equal(filtrados, t.store.Filtrados()) {
		t.aplicando.Store(true)
		t.store.SetFiltrados(filtrados)
		t.aplicando.Store(false)
	}

	t.mu.Lock()
	if t.vistaValida && slices.Equal(filtrados, t.vista) {
		t.mu.Unlock()
		return
	}
	t.vista = filtrados
	t.vistaValida = true
	t.mu.Unlock()

	t.paginador.Reset(filtrados)
}

// Visibles devuelve la ventana visible actual.
func (t *TablaClientes) Visibles() []entity.Cliente {
	return t.paginador.Visibles()
}

// SentinelVisible señal del centinela de scroll: carga la siguiente página si
// procede.
func (t *TablaClientes) SentinelVisible() bool {
	return t.paginador.SentinelVisible()
}

// HayMas indica si quedan filas filtradas sin materializar.
func (t *TablaClientes) HayMas() bool {
	return t.paginador.HayMas()
}
