package store

import (
	"sync"

	"github.com/ovi-dev/geslab/internal/domain/entity"
)

// MuestraStore contenedor de estado para la gestión de muestras. Mismo
// contrato que ClienteStore: colección canónica, vista filtrada, selección
// única y flags de carga/error, con mutaciones sincrónicas.
type MuestraStore struct {
	mu           sync.RWMutex
	muestras     []entity.Muestra
	filtradas    []entity.Muestra
	seleccionada *entity.Muestra
	cargando     bool
	mensajeError string
	suscriptores map[int]func()
	siguienteSub int
}

// NewMuestraStore crea el store vacío.
func NewMuestraStore() *MuestraStore {
	return &MuestraStore{suscriptores: map[int]func(){}}
}

// Subscribe registra un observador que se invoca tras cada mutación. Devuelve
// la función de baja.
func (s *MuestraStore) Subscribe(fn func()) (cancel func()) {
	s.mu.Lock()
	id := s.siguienteSub
	s.siguienteSub++
	s.suscriptores[id] = fn
	s.mu.Unlock()
	return func() {
		s.mu.Lock()
		delete(s.suscriptores, id)
		s.mu.Unlock()
	}
}

func (s *MuestraStore) notificar() {
	s.mu.RLock()
	fns := make([]func(), 0, len(s.suscriptores))
	for _, fn := range s.suscriptores {
		fns = append(fns, fn)
	}
	s.mu.RUnlock()
	for _, fn := range fns {
		fn()
	}
}

// SetMuestras reemplaza la colección canónica y reinicia la vista filtrada a
// la colección completa.
func (s *MuestraStore) SetMuestras(muestras []entity.Muestra) {
	s.mu.Lock()
	s.muestras = append([]entity.Muestra(nil), muestras...)
	s.filtradas = append([]entity.Muestra(nil), muestras...)
	s.cargando = false
	s.mu.Unlock()
	s.notificar()
}

// SetFiltradas registra el subconjunto visible tras aplicar filtros.
func (s *MuestraStore) SetFiltradas(filtradas []entity.Muestra) {
	s.mu.Lock()
	s.filtradas = append([]entity.Muestra(nil), filtradas...)
	s.mu.Unlock()
	s.notificar()
}

// Select fija la selección activa; nil la limpia.
func (s *MuestraStore) Select(m *entity.Muestra) {
	s.mu.Lock()
	if m == nil {
		s.seleccionada = nil
	} else {
		copia := *m
		s.seleccionada = &copia
	}
	s.mu.Unlock()
	s.notificar()
}

// GetByID busca una muestra por ID en la colección canónica.
func (s *MuestraStore) GetByID(id int) (entity.Muestra, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, m := range s.muestras {
		if m.ID == id {
			return m, true
		}
	}
	return entity.Muestra{}, false
}

// SetCargando controla el flag de carga de las operaciones asíncronas.
func (s *MuestraStore) SetCargando(cargando bool) {
	s.mu.Lock()
	s.cargando = cargando
	s.mu.Unlock()
	s.notificar()
}

// SetError fija el mensaje de error visible; cadena vacía lo limpia.
func (s *MuestraStore) SetError(mensaje string) {
	s.mu.Lock()
	s.mensajeError = mensaje
	s.mu.Unlock()
	s.notificar()
}

// Add añade una muestra a ambas colecciones. Si el ID ya existe se comporta
// como Update: ninguna identidad aparece dos veces. La comprobación y el
// reemplazo ocurren bajo el mismo lock.
func (s *MuestraStore) Add(m entity.Muestra) {
	s.mu.Lock()
	if m.ID != 0 && contieneMuestra(s.muestras, m.ID) {
		reemplazarMuestra(s.muestras, m)
		reemplazarMuestra(s.filtradas, m)
		if s.seleccionada != nil && s.seleccionada.ID == m.ID {
			copia := m
			s.seleccionada = &copia
		}
	} else {
		s.muestras = append(s.muestras, m)
		s.filtradas = append(s.filtradas, m)
	}
	s.mu.Unlock()
	s.notificar()
}

// Update reemplaza por identidad en ambas colecciones y refresca la selección
// si apuntaba a la muestra actualizada.
func (s *MuestraStore) Update(m entity.Muestra) {
	if m.ID == 0 {
		return
	}
	s.mu.Lock()
	reemplazarMuestra(s.muestras, m)
	reemplazarMuestra(s.filtradas, m)
	if s.seleccionada != nil && s.seleccionada.ID == m.ID {
		copia := m
		s.seleccionada = &copia
	}
	s.mu.Unlock()
	s.notificar()
}

// Remove elimina por identidad de ambas colecciones y limpia la selección si
// apuntaba a la muestra eliminada.
func (s *MuestraStore) Remove(id int) {
	s.mu.Lock()
	s.muestras = filtrarMuestra(s.muestras, id)
	s.filtradas = filtrarMuestra(s.filtradas, id)
	if s.seleccionada != nil && s.seleccionada.ID == id {
		s.seleccionada = nil
	}
	s.mu.Unlock()
	s.notificar()
}

// Reset devuelve el store a su estado inicial.
func (s *MuestraStore) Reset() {
	s.mu.Lock()
	s.muestras = nil
	s.filtradas = nil
	s.seleccionada = nil
	s.cargando = false
	s.mensajeError = ""
	s.mu.Unlock()
	s.notificar()
}

// Muestras devuelve una copia de la colección canónica.
func (s *MuestraStore) Muestras() []entity.Muestra {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]entity.Muestra(nil), s.muestras...)
}

// Filtradas devuelve una copia de la vista filtrada.
func (s *MuestraStore) Filtradas() []entity.Muestra {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]entity.Muestra(nil), s.filtradas...)
}

// Seleccionada devuelve una copia de la selección activa, o nil.
func (s *MuestraStore) Seleccionada() *entity.Muestra {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.seleccionada == nil {
		return nil
	}
	copia := *s.seleccionada
	return &copia
}

// Cargando indica si hay una operación asíncrona en curso.
func (s *MuestraStore) Cargando() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cargando
}

// Error devuelve el mensaje de error visible, o cadena vacía.
func (s *MuestraStore) Error() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.mensajeError
}

func contieneMuestra(lista []entity.Muestra, id int) bool {
	for _, m := range lista {
		if m.ID == id {
			return true
		}
	}
	return false
}

func reemplazarMuestra(lista []entity.Muestra, m entity.Muestra) {
	for i := range lista {
		if lista[i].ID == m.ID {
			lista[i] = m
		}
	}
}

func filtrarMuestra(lista []entity.Muestra, id int) []entity.Muestra {
	out := lista[:0]
	for _, m := range lista {
		if m.ID != id {
			out = append(out, m)
		}
	}
	return out
}
