package memory

import (
	"sync"

	"github.com/ovi-dev/geslab/internal/domain"
	"github.com/ovi-dev/geslab/internal/domain/entity"
)

// ClienteRepo almacén en memoria de clientes para el servidor de desarrollo.
// Asigna IDs secuenciales y conserva el orden de inserción en los listados.
type ClienteRepo struct {
	mu       sync.RWMutex
	clientes []entity.Cliente
	ultimoID int
}

// NewClienteRepo crea el repositorio con los datos de siembra indicados.
func NewClienteRepo(semilla []entity.Cliente) *ClienteRepo {
	r := &ClienteRepo{}
	for _, c := range semilla {
		if c.ID > r.ultimoID {
			r.ultimoID = c.ID
		}
		r.clientes = append(r.clientes, c)
	}
	return r
}

// List devuelve una copia de la colección completa.
func (r *ClienteRepo) List() []entity.Cliente {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]entity.Cliente(nil), r.clientes...)
}

// Get busca por ID.
func (r *ClienteRepo) Get(id int) (entity.Cliente, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, c := range r.clientes {
		if c.ID == id {
			return c, nil
		}
	}
	return entity.Cliente{}, domain.ErrNoEncontrado
}

// Create asigna el siguiente ID y persiste el cliente.
func (r *ClienteRepo) Create(c entity.Cliente) entity.Cliente {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ultimoID++
	c.ID = r.ultimoID
	r.clientes = append(r.clientes, c)
	return c
}

// Update reemplaza el cliente con el mismo ID.
func (r *ClienteRepo) Update(c entity.Cliente) (entity.Cliente, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.clientes {
		if r.clientes[i].ID == c.ID {
			r.clientes[i] = c
			return c, nil
		}
	}
	return entity.Cliente{}, domain.ErrNoEncontrado
}

// Delete elimina por ID.
func (r *ClienteRepo) Delete(id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.clientes {
		if r.clientes[i].ID == id {
			r.clientes = append(r.clientes[:i], r.clientes[i+1:]...)
			return nil
		}
	}
	return domain.ErrNoEncontrado
}
