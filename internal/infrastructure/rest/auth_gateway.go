package rest

import (
	"context"
	"fmt"
	"net/http"

	"github.com/ovi-dev/geslab/internal/domain"
	"github.com/ovi-dev/geslab/internal/domain/entity"
)

// AuthGateway frontera con el emisor de tokens externo.
type AuthGateway struct {
	api *APIClient
}

// NewAuthGateway construye el gateway de autenticación.
func NewAuthGateway(api *APIClient) *AuthGateway {
	return &AuthGateway{api: api}
}

type respuestaLogin struct {
	Token string `json:"token"`
}

// Login intercambia credenciales por un token bearer.
func (g *AuthGateway) Login(ctx context.Context, usuario, password string) (string, error) {
	var resp respuestaLogin
	cred := entity.Credenciales{Usuario: usuario, Password: password}
	if err := g.api.Do(ctx, http.MethodPost, "/api/login", cred, &resp); err != nil {
		return "", err
	}
	if resp.Token == "" {
		return "", fmt.Errorf("%w: no se recibió token de autenticación", domain.ErrServidor)
	}
	return resp.Token, nil
}

// Me devuelve el usuario de la sesión actual.
func (g *AuthGateway) Me(ctx context.Context) (*entity.Usuario, error) {
	var u entity.Usuario
	if err := g.api.Do(ctx, http.MethodGet, "/api/me", nil, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// Logout cierra la sesión en el servidor.
func (g *AuthGateway) Logout(ctx context.Context) error {
	return g.api.Do(ctx, http.MethodPost, "/api/logout", nil, nil)
}
