package repository

import (
	"context"

	"github.com/ovi-dev/geslab/internal/domain/entity"
)

// ClienteGateway acceso remoto a la colección de clientes. FetchAll respeta
// una caché de corta vida salvo que se fuerce la recarga.
type ClienteGateway interface {
	FetchAll(ctx context.Context, forceRefresh bool) ([]entity.Cliente, error)
	GetByID(ctx context.Context, id int) (*entity.Cliente, error)
	Create(ctx context.Context, c entity.Cliente) (*entity.Cliente, error)
	Update(ctx context.Context, c entity.Cliente) (*entity.Cliente, error)
	Remove(ctx context.Context, id int) error
}

// MuestraGateway acceso remoto a la colección de muestras.
type MuestraGateway interface {
	FetchAll(ctx context.Context, forceRefresh bool) ([]entity.Muestra, error)
	GetByID(ctx context.Context, id int) (*entity.Muestra, error)
	Create(ctx context.Context, m entity.Muestra) (*entity.Muestra, error)
	Update(ctx context.Context, id int, m entity.Muestra) (*entity.Muestra, error)
	Remove(ctx context.Context, id int) error
}

// AuthGateway frontera de autenticación externa: emisor de tokens y consulta
// del usuario en sesión.
type AuthGateway interface {
	Login(ctx context.Context, usuario, password string) (string, error)
	Me(ctx context.Context) (*entity.Usuario, error)
	Logout(ctx context.Context) error
}
