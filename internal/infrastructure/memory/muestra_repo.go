package memory

import (
	"sync"

	"github.com/ovi-dev/geslab/internal/domain"
	"github.com/ovi-dev/geslab/internal/domain/entity"
)

// MuestraRepo almacén en memoria de muestras para el servidor de desarrollo.
type MuestraRepo struct {
	mu       sync.RWMutex
	muestras []entity.Muestra
	ultimoID int
}

// NewMuestraRepo crea el repositorio con los datos de siembra indicados.
func NewMuestraRepo(semilla []entity.Muestra) *MuestraRepo {
	r := &MuestraRepo{}
	for _, m := range semilla {
		if m.ID > r.ultimoID {
			r.ultimoID = m.ID
		}
		r.muestras = append(r.muestras, m)
	}
	return r
}

// List devuelve una copia de la colección completa.
func (r *MuestraRepo) List() []entity.Muestra {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]entity.Muestra(nil), r.muestras...)
}

// Get busca por ID.
func (r *MuestraRepo) Get(id int) (entity.Muestra, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, m := range r.muestras {
		if m.ID == id {
			return m, nil
		}
	}
	return entity.Muestra{}, domain.ErrNoEncontrado
}

// Create asigna el siguiente ID y persiste la muestra.
func (r *MuestraRepo) Create(m entity.Muestra) entity.Muestra {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ultimoID++
	m.ID = r.ultimoID
	r.muestras = append(r.muestras, m)
	return m
}

// Update reemplaza la muestra con el ID indicado.
func (r *MuestraRepo) Update(id int, m entity.Muestra) (entity.Muestra, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.muestras {
		if r.muestras[i].ID == id {
			m.ID = id
			r.muestras[i] = m
			return m, nil
		}
	}
	return entity.Muestra{}, domain.ErrNoEncontrado
}

// Delete elimina por ID.
func (r *MuestraRepo) Delete(id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.muestras {
		if r.muestras[i].ID == id {
			r.muestras = append(r.muestras[:i], r.muestras[i+1:]...)
			return nil
		}
	}
	return domain.ErrNoEncontrado
}
