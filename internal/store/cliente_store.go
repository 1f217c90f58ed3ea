package store

import (
	"sync"

	"github.com/ovi-dev/geslab/internal/domain/entity"
)

// ClienteStore contenedor de estado para la gestión de clientes: colección
// canónica, vista filtrada, selección única y flags de carga/error. Todas las
// mutaciones son sincrónicas y los suscriptores observan siempre un snapshot
// consistente (nunca una actualización parcial entre las dos colecciones).
type ClienteStore struct {
	mu            sync.RWMutex
	clientes      []entity.Cliente
	filtrados     []entity.Cliente
	seleccionado  *entity.Cliente
	cargando      bool
	mensajeError  string
	suscriptores  map[int]func()
	siguienteSub  int
}

// NewClienteStore crea el store vacío.
func NewClienteStore() *ClienteStore {
	return &ClienteStore{suscriptores: map[int]func(){}}
}

// Subscribe registra un observador que se invoca tras cada mutación. Devuelve
// la función de baja.
func (s *ClienteStore) Subscribe(fn func()) (cancel func()) {
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

// notificar llama a los suscriptores fuera del lock de escritura.
func (s *ClienteStore) notificar() {
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

// SetClientes reemplaza la colección canónica. La vista filtrada se reinicia
// a la colección completa y se apaga el flag de carga.
func (s *ClienteStore) SetClientes(clientes []entity.Cliente) {
	s.mu.Lock()
	s.clientes = append([]entity.Cliente(nil), clientes...)
	s.filtrados = append([]entity.Cliente(nil), clientes...)
	s.cargando = false
	s.mu.Unlock()
	s.notificar()
}

// SetFiltrados registra el subconjunto visible tras aplicar filtros, sin
// tocar la colección canónica.
func (s *ClienteStore) SetFiltrados(filtrados []entity.Cliente) {
	s.mu.Lock()
	s.filtrados = append([]entity.Cliente(nil), filtrados...)
	s.mu.Unlock()
	s.notificar()
}

// Select fija la selección activa; nil la limpia.
func (s *ClienteStore) Select(c *entity.Cliente) {
	s.mu.Lock()
	if c == nil {
		s.seleccionado = nil
	} else {
		copia := *c
		s.seleccionado = &copia
	}
	s.mu.Unlock()
	s.notificar()
}

// GetByID busca un cliente por ID en la colección canónica.
func (s *ClienteStore) GetByID(id int) (entity.Cliente, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.clientes {
		if c.ID == id {
			return c, true
		}
	}
	return entity.Cliente{}, false
}

// SetCargando controla el flag de carga de las operaciones asíncronas.
func (s *ClienteStore) SetCargando(cargando bool) {
	s.mu.Lock()
	s.cargando = cargando
	s.mu.Unlock()
	s.notificar()
}

// SetError fija el mensaje de error visible; cadena vacía lo limpia.
func (s *ClienteStore) SetError(mensaje string) {
	s.mu.Lock()
	s.mensajeError = mensaje
	s.mu.Unlock()
	s.notificar()
}

// Add añade un cliente a la colección canónica y a la filtrada. Si el ID ya
// existe se comporta como Update: ninguna identidad aparece dos veces. La
// comprobación y el reemplazo ocurren bajo el mismo lock.
func (s *ClienteStore) Add(c entity.Cliente) {
	s.mu.Lock()
	if c.ID != 0 && contieneCliente(s.clientes, c.ID) {
		reemplazarCliente(s.clientes, c)
		reemplazarCliente(s.filtrados, c)
		if s.seleccionado != nil && s.seleccionado.ID == c.ID {
			copia := c
			s.seleccionado = &copia
		}
	} else {
		s.clientes = append(s.clientes, c)
		s.filtrados = append(s.filtrados, c)
	}
	s.mu.Unlock()
	s.notificar()
}

// Update reemplaza por identidad en ambas colecciones y, si el cliente
// actualizado es el seleccionado, refresca también la selección.
func (s *ClienteStore) Update(c entity.Cliente) {
	if c.ID == 0 {
		return
	}
	s.mu.Lock()
	reemplazarCliente(s.clientes, c)
	reemplazarCliente(s.filtrados, c)
	if s.seleccionado != nil && s.seleccionado.ID == c.ID {
		copia := c
		s.seleccionado = &copia
	}
	s.mu.Unlock()
	s.notificar()
}

// Remove elimina por identidad de ambas colecciones y limpia la selección si
// apuntaba al cliente eliminado.
func (s *ClienteStore) Remove(id int) {
	s.mu.Lock()
	s.clientes = filtrarCliente(s.clientes, id)
	s.filtrados = filtrarCliente(s.filtrados, id)
	if s.seleccionado != nil && s.seleccionado.ID == id {
		s.seleccionado = nil
	}
	s.mu.Unlock()
	s.notificar()
}

// Reset devuelve el store a su estado inicial.
func (s *ClienteStore) Reset() {
	s.mu.Lock()
	s.clientes = nil
	s.filtrados = nil
	s.seleccionado = nil
	s.cargando = false
	s.mensajeError = ""
	s.mu.Unlock()
	s.notificar()
}

// Clientes devuelve una copia de la colección canónica.
func (s *ClienteStore) Clientes() []entity.Cliente {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]entity.Cliente(nil), s.clientes...)
}

// Filtrados devuelve una copia de la vista filtrada.
func (s *ClienteStore) Filtrados() []entity.Cliente {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]entity.Cliente(nil), s.filtrados...)
}

// Seleccionado devuelve una copia de la selección activa, o nil.
func (s *ClienteStore) Seleccionado() *entity.Cliente {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.seleccionado == nil {
		return nil
	}
	copia := *s.seleccionado
	return &copia
}

// Cargando indica si hay una operación asíncrona en curso.
func (s *ClienteStore) Cargando() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cargando
}

// Error devuelve el mensaje de error visible, o cadena vacía.
func (s *ClienteStore) Error() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.mensajeError
}

func contieneCliente(lista []entity.Cliente, id int) bool {
	for _, c := range lista {
		if c.ID == id {
			return true
		}
	}
	return false
}

func reemplazarCliente(lista []entity.Cliente, c entity.Cliente) {
	for i := range lista {
		if lista[i].ID == c.ID {
			lista[i] = c
		}
	}
}

func filtrarCliente(lista []entity.Cliente, id int) []entity.Cliente {
	out := lista[:0]
	for _, c := range lista {
		if c.ID != id {
			out = append(out, c)
		}
	}
	return out
}
