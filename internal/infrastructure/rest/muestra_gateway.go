package rest

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/ovi-dev/geslab/internal/domain/entity"
)

// MuestraGateway gateway REST de muestras con caché de colección. A
// diferencia del de clientes, las escrituras parchean la caché con la
// respuesta confirmada del servidor en lugar de vaciarla.
type MuestraGateway struct {
	api   *APIClient
	cache *coleccionCache[entity.Muestra]
}

// NewMuestraGateway construye el gateway con su caché propia.
func NewMuestraGateway(api *APIClient, ttl time.Duration) *MuestraGateway {
	return &MuestraGateway{api: api, cache: nuevaCache[entity.Muestra](ttl)}
}

// FetchAll devuelve la colección completa, de caché si está vigente.
func (g *MuestraGateway) FetchAll(ctx context.Context, forceRefresh bool) ([]entity.Muestra, error) {
	if !forceRefresh {
		if datos, ok := g.cache.Vigente(); ok {
			return datos, nil
		}
	}
	var muestras []entity.Muestra
	if err := g.api.Do(ctx, http.MethodGet, "/muestras/list", nil, &muestras); err != nil {
		return nil, err
	}
	g.cache.Reemplazar(muestras)
	return muestras, nil
}

// GetByID busca primero en la caché y después en red.
func (g *MuestraGateway) GetByID(ctx context.Context, id int) (*entity.Muestra, error) {
	if m, ok := g.cache.Buscar(func(m entity.Muestra) bool { return m.ID == id }); ok {
		return &m, nil
	}
	var m entity.Muestra
	if err := g.api.Do(ctx, http.MethodGet, fmt.Sprintf("/muestras/%d", id), nil, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

// Create da de alta una muestra; la respuesta del servidor se añade a la
// caché si está poblada.
func (g *MuestraGateway) Create(ctx context.Context, m entity.Muestra) (*entity.Muestra, error) {
	var creada entity.Muestra
	if err := g.api.Do(ctx, http.MethodPost, "/muestras", m, &creada); err != nil {
		return nil, err
	}
	g.cache.Parchear(func(datos []entity.Muestra) []entity.Muestra {
		return append(datos, creada)
	})
	return &creada, nil
}

// Update envía la muestra y reemplaza la entrada cacheada por la versión
// confirmada.
func (g *MuestraGateway) Update(ctx context.Context, id int, m entity.Muestra) (*entity.Muestra, error) {
	var actualizada entity.Muestra
	if err := g.api.Do(ctx, http.MethodPut, fmt.Sprintf("/muestras/%d", id), m, &actualizada); err != nil {
		return nil, err
	}
	g.cache.Parchear(func(datos []entity.Muestra) []entity.Muestra {
		for i := range datos {
			if datos[i].ID == id {
				datos[i] = actualizada
			}
		}
		return datos
	})
	return &actualizada, nil
}

// Remove elimina por ID y retira la entrada de la caché.
func (g *MuestraGateway) Remove(ctx context.Context, id int) error {
	if err := g.api.Do(ctx, http.MethodDelete, fmt.Sprintf("/muestras/%d", id), nil, nil); err != nil {
		return err
	}
	g.cache.Parchear(func(datos []entity.Muestra) []entity.Muestra {
		out := datos[:0]
		for _, m := range datos {
			if m.ID != id {
				out = append(out, m)
			}
		}
		return out
	})
	return nil
}
