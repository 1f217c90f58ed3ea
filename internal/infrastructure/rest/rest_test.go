package rest_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ovi-dev/geslab/internal/auth"
	"github.com/ovi-dev/geslab/internal/domain"
	"github.com/ovi-dev/geslab/internal/domain/entity"
	"github.com/ovi-dev/geslab/internal/infrastructure/rest"
	"github.com/ovi-dev/geslab/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

func nuevaSesionConToken(token string) *auth.Sesion {
	s := auth.NewSesion("", logger.Nop())
	if token != "" {
		s.Guardar(token)
	}
	return s
}

func gatewayClientes(t *testing.T, srv *httptest.Server, sesion *auth.Sesion, ttl time.Duration) *rest.ClienteGateway {
	t.Helper()
	api := rest.NewAPIClient(srv.URL, 2*time.Second, sesion, logger.Nop())
	return rest.NewClienteGateway(api, ttl)
}

// ──────────────────────────────────────────────────────────────────────────────
// Credencial bearer y normalización de errores
// ──────────────────────────────────────────────────────────────────────────────

func TestAPIClient_AdjuntaBearerSiHayToken(t *testing.T) {
	var recibido string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		recibido = r.Header.Get("Authorization")
		_ = json.NewEncoder(w).Encode([]entity.Cliente{})
	}))
	defer srv.Close()

	g := gatewayClientes(t, srv, nuevaSesionConToken("tok-abc"), time.Minute)
	_, err := g.FetchAll(context.Background(), false)

	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-abc", recibido)
}

func TestAPIClient_SinTokenNoBloqueaLaPeticion(t *testing.T) {
	// La ausencia de credencial no impide llamar: el servidor decide.
	var recibido string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		recibido = r.Header.Get("Authorization")
		_ = json.NewEncoder(w).Encode([]entity.Cliente{})
	}))
	defer srv.Close()

	g := gatewayClientes(t, srv, nuevaSesionConToken(""), time.Minute)
	_, err := g.FetchAll(context.Background(), false)

	require.NoError(t, err)
	assert.Empty(t, recibido)
}

func TestAPIClient_401InvalidaSesionYEmiteSenal(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	sesion := nuevaSesionConToken("tok-caducado")
	senales := 0
	sesion.OnInvalidada(func() { senales++ })

	g := gatewayClientes(t, srv, sesion, time.Minute)
	_, err := g.FetchAll(context.Background(), false)

	assert.ErrorIs(t, err, domain.ErrNoAutenticado)
	assert.False(t, sesion.Autenticada(), "un 401 no deja sesión válida")
	assert.Equal(t, 1, senales, "el 401 dispara la señal de re-autenticación")
}

func TestAPIClient_DistingueProhibidoYNoEncontrado(t *testing.T) {
	casos := []struct {
		status   int
		esperado error
	}{
		{http.StatusForbidden, domain.ErrProhibido},
		{http.StatusNotFound, domain.ErrNoEncontrado},
		{http.StatusInternalServerError, domain.ErrServidor},
	}
	for _, c := range casos {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(c.status)
		}))
		g := gatewayClientes(t, srv, nuevaSesionConToken("tok"), time.Minute)
		_, err := g.FetchAll(context.Background(), false)
		assert.ErrorIs(t, err, c.esperado, "status %d", c.status)
		srv.Close()
	}
}

func TestAPIClient_TimeoutSeNormaliza(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	api := rest.NewAPIClient(srv.URL, 20*time.Millisecond, nuevaSesionConToken("tok"), logger.Nop())
	g := rest.NewClienteGateway(api, time.Minute)

	_, err := g.FetchAll(context.Background(), false)
	assert.ErrorIs(t, err, domain.ErrTimeout)
}

func TestAPIClient_SinConexionSeNormaliza(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // servidor apagado: nadie escucha

	g := gatewayClientes(t, srv, nuevaSesionConToken("tok"), time.Minute)
	_, err := g.FetchAll(context.Background(), false)
	assert.ErrorIs(t, err, domain.ErrConexion)
}

// ──────────────────────────────────────────────────────────────────────────────
// Caché de colecciones
// ──────────────────────────────────────────────────────────────────────────────

func servidorClientes(hits *atomic.Int32, clientes []entity.Cliente) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet:
			hits.Add(1)
			_ = json.NewEncoder(w).Encode(clientes)
		case r.Method == http.MethodDelete:
			w.WriteHeader(http.StatusOK)
		default:
			_ = json.NewEncoder(w).Encode(entity.Cliente{ID: 99, Nombre: "Creado"})
		}
	}))
}

func TestClienteGateway_CacheDentroDeTTL(t *testing.T) {
	var hits atomic.Int32
	srv := servidorClientes(&hits, []entity.Cliente{{ID: 1, Nombre: "Acme Corp"}})
	defer srv.Close()

	g := gatewayClientes(t, srv, nuevaSesionConToken("tok"), 5*time.Minute)
	ctx := context.Background()

	_, err := g.FetchAll(ctx, false)
	require.NoError(t, err)
	_, err = g.FetchAll(ctx, false)
	require.NoError(t, err)

	assert.Equal(t, int32(1), hits.Load(), "la segunda lectura debe servirse de caché")
}

func TestClienteGateway_ForceRefreshSaltaLaCache(t *testing.T) {
	var hits atomic.Int32
	srv := servidorClientes(&hits, []entity.Cliente{{ID: 1}})
	defer srv.Close()

	g := gatewayClientes(t, srv, nuevaSesionConToken("tok"), 5*time.Minute)
	ctx := context.Background()

	_, _ = g.FetchAll(ctx, false)
	_, _ = g.FetchAll(ctx, true)

	assert.Equal(t, int32(2), hits.Load())
}

func TestClienteGateway_CacheExpiraPorTTL(t *testing.T) {
	var hits atomic.Int32
	srv := servidorClientes(&hits, []entity.Cliente{{ID: 1}})
	defer srv.Close()

	g := gatewayClientes(t, srv, nuevaSesionConToken("tok"), time.Nanosecond)
	ctx := context.Background()

	_, _ = g.FetchAll(ctx, false)
	_, _ = g.FetchAll(ctx, false)

	assert.Equal(t, int32(2), hits.Load(), "con TTL vencido se vuelve a red")
}

func TestClienteGateway_EscrituraInvalidaLaCache(t *testing.T) {
	var hits atomic.Int32
	srv := servidorClientes(&hits, []entity.Cliente{{ID: 1}})
	defer srv.Close()

	g := gatewayClientes(t, srv, nuevaSesionConToken("tok"), 5*time.Minute)
	ctx := context.Background()

	_, _ = g.FetchAll(ctx, false)
	_, err := g.Create(ctx, entity.Cliente{Nombre: "Nuevo"})
	require.NoError(t, err)
	_, _ = g.FetchAll(ctx, false)

	assert.Equal(t, int32(2), hits.Load(), "tras una escritura la caché no puede servir datos viejos")
}

func TestClienteGateway_GetByIDPrefiereLaCache(t *testing.T) {
	var hits atomic.Int32
	srv := servidorClientes(&hits, []entity.Cliente{{ID: 7, Nombre: "Cacheado"}})
	defer srv.Close()

	g := gatewayClientes(t, srv, nuevaSesionConToken("tok"), 5*time.Minute)
	ctx := context.Background()

	_, _ = g.FetchAll(ctx, false)
	c, err := g.GetByID(ctx, 7)

	require.NoError(t, err)
	assert.Equal(t, "Cacheado", c.Nombre)
	assert.Equal(t, int32(1), hits.Load(), "GetByID no va a red si el ID está cacheado")
}

func TestMuestraGateway_LasEscriturasParcheanLaCache(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			hits.Add(1)
			_ = json.NewEncoder(w).Encode([]entity.Muestra{{ID: 1, Producto: "Aceite"}})
		case http.MethodPost:
			_ = json.NewEncoder(w).Encode(entity.Muestra{ID: 2, Producto: "Agua"})
		case http.MethodPut:
			_ = json.NewEncoder(w).Encode(entity.Muestra{ID: 1, Producto: "Aceite sintético"})
		case http.MethodDelete:
			w.WriteHeader(http.StatusOK)
		}
	}))
	defer srv.Close()

	api := rest.NewAPIClient(srv.URL, 2*time.Second, nuevaSesionConToken("tok"), logger.Nop())
	g := rest.NewMuestraGateway(api, 5*time.Minute)
	ctx := context.Background()

	_, err := g.FetchAll(ctx, false)
	require.NoError(t, err)

	// Alta: la respuesta confirmada se añade a la caché.
	_, err = g.Create(ctx, entity.Muestra{Producto: "Agua"})
	require.NoError(t, err)
	lista, err := g.FetchAll(ctx, false)
	require.NoError(t, err)
	require.Len(t, lista, 2)

	// Modificación: la entrada cacheada se reemplaza.
	_, err = g.Update(ctx, 1, entity.Muestra{ID: 1, Producto: "Aceite sintético"})
	require.NoError(t, err)
	lista, _ = g.FetchAll(ctx, false)
	assert.Equal(t, "Aceite sintético", lista[0].Producto)

	// Baja: la entrada desaparece de la caché.
	require.NoError(t, g.Remove(ctx, 2))
	lista, _ = g.FetchAll(ctx, false)
	require.Len(t, lista, 1)

	assert.Equal(t, int32(1), hits.Load(), "todas las relecturas se sirvieron de la caché parcheada")
}

// ──────────────────────────────────────────────────────────────────────────────
// Gateway de autenticación
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthGateway_LoginDevuelveToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var cred entity.Credenciales
		require.NoError(t, json.NewDecoder(r.Body).Decode(&cred))
		assert.Equal(t, "ana", cred.Usuario)
		_ = json.NewEncoder(w).Encode(map[string]string{"token": "tok-nuevo"})
	}))
	defer srv.Close()

	api := rest.NewAPIClient(srv.URL, 2*time.Second, nuevaSesionConToken(""), logger.Nop())
	g := rest.NewAuthGateway(api)

	tok, err := g.Login(context.Background(), "ana", "secreta")
	require.NoError(t, err)
	assert.Equal(t, "tok-nuevo", tok)
}

func TestAuthGateway_LoginSinTokenEsErrorDeServidor(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]string{})
	}))
	defer srv.Close()

	api := rest.NewAPIClient(srv.URL, 2*time.Second, nuevaSesionConToken(""), logger.Nop())
	g := rest.NewAuthGateway(api)

	_, err := g.Login(context.Background(), "ana", "secreta")
	assert.ErrorIs(t, err, domain.ErrServidor)
}
