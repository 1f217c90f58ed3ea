package rest

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/ovi-dev/geslab/internal/domain/entity"
)

// ClienteGateway gateway REST de clientes con caché de colección. Las
// escrituras vacían la caché completa: la siguiente lectura trae el estado
// confirmado por el servidor.
type ClienteGateway struct {
	api   *APIClient
	cache *coleccionCache[entity.Cliente]
}

// NewClienteGateway construye el gateway con su caché propia.
func NewClienteGateway(api *APIClient, ttl time.Duration) *ClienteGateway {
	return &ClienteGateway{api: api, cache: nuevaCache[entity.Cliente](ttl)}
}

// FetchAll devuelve la colección completa. Sirve la caché si está vigente y
// no se fuerza la recarga; si no, lee de red y reemplaza la caché.
func (g *ClienteGateway) FetchAll(ctx context.Context, forceRefresh bool) ([]entity.Cliente, error) {
	if !forceRefresh {
		if datos, ok := g.cache.Vigente(); ok {
			return datos, nil
		}
	}
	var clientes []entity.Cliente
	if err := g.api.Do(ctx, http.MethodGet, "/api/clientes/list", nil, &clientes); err != nil {
		return nil, err
	}
	g.cache.Reemplazar(clientes)
	return clientes, nil
}

// GetByID busca primero en la caché y después en red.
func (g *ClienteGateway) GetByID(ctx context.Context, id int) (*entity.Cliente, error) {
	if c, ok := g.cache.Buscar(func(c entity.Cliente) bool { return c.ID == id }); ok {
		return &c, nil
	}
	var c entity.Cliente
	if err := g.api.Do(ctx, http.MethodGet, fmt.Sprintf("/api/clientes/%d", id), nil, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

// Create da de alta un cliente y devuelve la representación canónica del
// servidor (con el ID asignado).
func (g *ClienteGateway) Create(ctx context.Context, c entity.Cliente) (*entity.Cliente, error) {
	var creado entity.Cliente
	if err := g.api.Do(ctx, http.MethodPost, "/api/clientes/list", c, &creado); err != nil {
		return nil, err
	}
	g.cache.Invalidar()
	return &creado, nil
}

// Update envía el cliente completo y devuelve la versión del servidor.
func (g *ClienteGateway) Update(ctx context.Context, c entity.Cliente) (*entity.Cliente, error) {
	var actualizado entity.Cliente
	if err := g.api.Do(ctx, http.MethodPut, fmt.Sprintf("/api/clientes/%d", c.ID), c, &actualizado); err != nil {
		return nil, err
	}
	g.cache.Invalidar()
	return &actualizado, nil
}

// Remove elimina por ID.
func (g *ClienteGateway) Remove(ctx context.Context, id int) error {
	if err := g.api.Do(ctx, http.MethodDelete, fmt.Sprintf("/api/clientes/%d", id), nil, nil); err != nil {
		return err
	}
	g.cache.Invalidar()
	return nil
}

// VerificarToken hace una lectura ligera para comprobar si la credencial
// actual sigue siendo válida.
func (g *ClienteGateway) VerificarToken(ctx context.Context) bool {
	var clientes []entity.Cliente
	return g.api.Do(ctx, http.MethodGet, "/api/clientes/list", nil, &clientes) == nil
}
