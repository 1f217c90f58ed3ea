package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ovi-dev/geslab/internal/application/usecase"
	"github.com/ovi-dev/geslab/internal/auth"
	"github.com/ovi-dev/geslab/internal/domain"
	"github.com/ovi-dev/geslab/internal/domain/entity"
	"github.com/ovi-dev/geslab/pkg/logger"
)

func TestAuthUseCase_LoginGuardaElToken(t *testing.T) {
	sesion := auth.NewSesion("", logger.Nop())
	gw := &fakeAuthGateway{
		login: func(_ context.Context, usuario, password string) (string, error) {
			assert.Equal(t, "admin", usuario)
			assert.Equal(t, "secreto", password)
			return "token-123", nil
		},
	}
	uc := usecase.NewAuthUseCase(gw, sesion, logger.Nop())

	require.NoError(t, uc.Login(context.Background(), "admin", "secreto"))

	assert.True(t, uc.Autenticado())
	assert.Equal(t, "token-123", sesion.Token())
}

func TestAuthUseCase_LoginFallidoNoDejaSesion(t *testing.T) {
	sesion := auth.NewSesion("", logger.Nop())
	gw := &fakeAuthGateway{
		login: func(_ context.Context, _, _ string) (string, error) {
			return "", domain.ErrNoAutenticado
		},
	}
	uc := usecase.NewAuthUseCase(gw, sesion, logger.Nop())

	err := uc.Login(context.Background(), "admin", "mala")

	require.ErrorIs(t, err, domain.ErrNoAutenticado)
	assert.False(t, uc.Autenticado())
}

func TestAuthUseCase_LogoutLimpiaAunqueElServidorFalle(t *testing.T) {
	sesion := auth.NewSesion("", logger.Nop())
	sesion.Guardar("token-123")

	gw := &fakeAuthGateway{
		logout: func(_ context.Context) error { return domain.ErrConexion },
	}
	uc := usecase.NewAuthUseCase(gw, sesion, logger.Nop())

	require.NoError(t, uc.Logout(context.Background()))

	assert.False(t, uc.Autenticado(), "el token local se limpia falle o no el servidor")
}

func TestAuthUseCase_LogoutSinSesionNoLlamaAlServidor(t *testing.T) {
	sesion := auth.NewSesion("", logger.Nop())
	llamado := false
	gw := &fakeAuthGateway{
		logout: func(_ context.Context) error {
			llamado = true
			return nil
		},
	}
	uc := usecase.NewAuthUseCase(gw, sesion, logger.Nop())

	require.NoError(t, uc.Logout(context.Background()))
	assert.False(t, llamado)
}

func TestAuthUseCase_UsuarioDelegaEnElGateway(t *testing.T) {
	sesion := auth.NewSesion("", logger.Nop())
	gw := &fakeAuthGateway{
		me: func(_ context.Context) (*entity.Usuario, error) {
			return &entity.Usuario{ID: "1", Nombre: "Admin"}, nil
		},
	}
	uc := usecase.NewAuthUseCase(gw, sesion, logger.Nop())

	u, err := uc.Usuario(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "Admin", u.Nombre)
}
