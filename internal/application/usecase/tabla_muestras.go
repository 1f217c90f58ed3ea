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

// TablaMuestras homóloga de TablaClientes para el panel de muestras.
type TablaMuestras struct {
	mu        sync.Mutex
	store     *store.MuestraStore
	filtro    filter.MuestraFiltro
	paginador *presenter.Paginador[entity.Muestra]

	vista       []entity.Muestra // última vista filtrada publicada
	vistaValida bool

	aplicando atomic.Bool
	cancelSub func()
}

// NewTablaMuestras construye la tabla y queda suscrita al store.
func NewTablaMuestras(st *store.MuestraStore, tamPagina int) *TablaMuestras {
	t := &TablaMuestras{
		store:     st,
		paginador: presenter.NewPaginador[entity.Muestra](tamPagina),
	}
	t.cancelSub = st.Subscribe(func() {
		if t.aplicando.Load() {
			return
		}
		t.Refrescar()
	})
	t.Refrescar()
	return t
}

// Cerrar da de baja la suscripción al store.
func (t *TablaMuestras) Cerrar() {
	if t.cancelSub != nil {
		t.cancelSub()
	}
}

// SetFiltro fija los criterios y recalcula la vista.
func (t *TablaMuestras) SetFiltro(f filter.MuestraFiltro) {
	t.mu.Lock()
	t.filtro = f
	t.mu.Unlock()
	t.Refrescar()
}

// Filtro devuelve los criterios actuales.
func (t *TablaMuestras) Filtro() filter.MuestraFiltro {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.filtro
}

// LimpiarFiltros desactiva todos los criterios.
func (t *TablaMuestras) LimpiarFiltros() {
	t.SetFiltro(filter.MuestraFiltro{})
}

// Refrescar recalcula la vista filtrada, la publica y reinicia el paginador.
// Si la notificación no altera la vista filtrada (selección, flags de carga o
// de error) el paginador no se toca y la ventana de scroll sobrevive.
func (t *TablaMuestras) Refrescar() {
	t.mu.Lock()
	f := t.filtro
	t.mu.Unlock()

	filtradas := f.Aplicar(t.store.Muestras())

	if !slices.Equal(filtradas, t.store.Filtradas()) {
		t.aplicando.Store(true)
		t.store.SetFiltradas(filtradas)
		t.aplicando.Store(false)
	}

	t.mu.Lock()
	if t.vistaValida && slices.Equal(filtradas, t.vista) {
		t.mu.Unlock()
		return
	}
	t.vista = filtradas
	t.vistaValida = true
	t.mu.Unlock()

	t.paginador.Reset(filtradas)
}

// Visibles devuelve la ventana visible actual.
func (t *TablaMuestras) Visibles() []entity.Muestra {
	return t.paginador.Visibles()
}

// SentinelVisible señal del centinela de scroll.
func (t *TablaMuestras) SentinelVisible() bool {
	return t.paginador.SentinelVisible()
}

// HayMas indica si quedan filas filtradas sin materializar.
func (t *TablaMuestras) HayMas() bool {
	return t.paginador.HayMas()
}
