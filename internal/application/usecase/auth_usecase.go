package usecase

import (
	"context"

	"github.com/ovi-dev/geslab/internal/auth"
	"github.com/ovi-dev/geslab/internal/domain/entity"
	"github.com/ovi-dev/geslab/internal/domain/repository"
	"github.com/ovi-dev/geslab/pkg/logger"
)

// AuthUseCase orquesta la frontera de autenticación: intercambia credenciales
// por token, lo guarda en la sesión del proceso y cierra sesión limpiando el
// token local aunque el servidor falle.
type AuthUseCase struct {
	gateway repository.AuthGateway
	sesion  *auth.Sesion
	log     *logger.Logger
}

// NewAuthUseCase construye el caso de uso.
func NewAuthUseCase(g repository.AuthGateway, s *auth.Sesion, log *logger.Logger) *AuthUseCase {
	return &AuthUseCase{gateway: g, sesion: s, log: log}
}

// Login autentica y persiste el token en la sesión.
func (uc *AuthUseCase) Login(ctx context.Context, usuario, password string) error {
	token, err := uc.gateway.Login(ctx, usuario, password)
	if err != nil {
		return err
	}
	uc.sesion.Guardar(token)
	uc.log.Info().Str("usuario", usuario).Msg("sesión iniciada")
	return nil
}

// Usuario devuelve el usuario de la sesión actual.
func (uc *AuthUseCase) Usuario(ctx context.Context) (*entity.Usuario, error) {
	return uc.gateway.Me(ctx)
}

// Logout intenta cerrar sesión en el servidor y siempre limpia el token
// local, falle o no la llamada remota.
func (uc *AuthUseCase) Logout(ctx context.Context) error {
	if uc.sesion.Autenticada() {
		if err := uc.gateway.Logout(ctx); err != nil {
			uc.log.Warn().Err(err).Msg("no se pudo cerrar sesión en el servidor")
		}
	}
	uc.sesion.Limpiar()
	return nil
}

// Autenticado indica si hay una credencial almacenada.
func (uc *AuthUseCase) Autenticado() bool {
	return uc.sesion.Autenticada()
}
