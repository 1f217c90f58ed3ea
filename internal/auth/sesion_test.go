package auth_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ovi-dev/geslab/internal/auth"
	pkgjwt "github.com/ovi-dev/geslab/pkg/jwt"
	"github.com/ovi-dev/geslab/pkg/logger"
)

func TestSesion_GuardarYRecuperar(t *testing.T) {
	s := auth.NewSesion("", logger.Nop())
	assert.False(t, s.Autenticada())

	s.Guardar("tok-123")

	assert.True(t, s.Autenticada())
	assert.Equal(t, "tok-123", s.Token())
}

func TestSesion_PersisteEnArchivo(t *testing.T) {
	archivo := filepath.Join(t.TempDir(), "sesion", "token")

	s := auth.NewSesion(archivo, logger.Nop())
	tok, err := pkgjwt.Generate("secreto", "u1", "Ana", "geslab-test", 60)
	require.NoError(t, err)
	s.Guardar(tok)

	// Una sesión nueva sobre el mismo archivo recupera el token.
	s2 := auth.NewSesion(archivo, logger.Nop())
	assert.Equal(t, tok, s2.Token())
}

func TestSesion_DescartaTokenPersistidoExpirado(t *testing.T) {
	archivo := filepath.Join(t.TempDir(), "token")
	caducado, err := pkgjwt.Generate("secreto", "u1", "Ana", "geslab-test", -5)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(archivo, []byte(caducado), 0o600))

	s := auth.NewSesion(archivo, logger.Nop())

	assert.False(t, s.Autenticada(), "un token expirado no reabre sesión")
	_, statErr := os.Stat(archivo)
	assert.True(t, os.IsNotExist(statErr), "el archivo caducado se elimina")
}

func TestSesion_InvalidarLimpiaYAvisa(t *testing.T) {
	archivo := filepath.Join(t.TempDir(), "token")
	s := auth.NewSesion(archivo, logger.Nop())
	s.Guardar("tok-123")

	avisos := 0
	cancel := s.OnInvalidada(func() { avisos++ })

	s.Invalidar()

	assert.False(t, s.Autenticada(), "tras invalidar no queda sesión válida")
	assert.Equal(t, 1, avisos)
	_, statErr := os.Stat(archivo)
	assert.True(t, os.IsNotExist(statErr))

	cancel()
	s.Invalidar()
	assert.Equal(t, 1, avisos, "tras la baja no llegan más señales")
}

func TestSesion_LimpiarNoEmiteSenal(t *testing.T) {
	s := auth.NewSesion("", logger.Nop())
	s.Guardar("tok-123")
	avisos := 0
	s.OnInvalidada(func() { avisos++ })

	s.Limpiar()

	assert.False(t, s.Autenticada())
	assert.Zero(t, avisos, "Limpiar es el logout local, no la señal de 401")
}
