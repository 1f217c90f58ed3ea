package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ovi-dev/geslab/internal/auth"
	"github.com/ovi-dev/geslab/internal/domain"
	"github.com/ovi-dev/geslab/pkg/logger"
)

// APIClient cliente HTTP compartido por los gateways. Adjunta la credencial
// bearer cuando existe, serializa cuerpos JSON y normaliza cualquier fallo de
// transporte a los errores de dominio: ningún error crudo llega a los stores
// ni a los formularios sin clasificar.
type APIClient struct {
	baseURL string
	http    *http.Client
	sesion  *auth.Sesion
	log     *logger.Logger
}

// NewAPIClient construye el cliente. baseURL sin barra final.
func NewAPIClient(baseURL string, timeout time.Duration, sesion *auth.Sesion, log *logger.Logger) *APIClient {
	return &APIClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		sesion:  sesion,
		log:     log,
	}
}

// cuerpoError forma habitual de los errores JSON del servidor.
type cuerpoError struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// Do ejecuta method path contra la API. body nil = sin cuerpo; out nil = se
// descarta la respuesta. Un 401 invalida la sesión del proceso además de
// devolver ErrNoAutenticado.
func (a *APIClient) Do(ctx context.Context, method, path string, body, out any) error {
	var lector io.Reader
	if body != nil {
		datos, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%w: serializar cuerpo: %v", domain.ErrServidor, err)
		}
		lector = bytes.NewReader(datos)
	}

	req, err := http.NewRequestWithContext(ctx, method, a.baseURL+path, lector)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrServidor, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if token := a.sesion.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	inicio := time.Now()
	resp, err := a.http.Do(req)
	if err != nil {
		return a.normalizarErrorTransporte(method, path, err)
	}
	defer resp.Body.Close()

	a.log.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(inicio)).
		Msg("petición API")

	if resp.StatusCode >= 400 {
		return a.normalizarErrorRespuesta(resp)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: respuesta ilegible: %v", domain.ErrServidor, err)
	}
	return nil
}

// normalizarErrorTransporte clasifica fallos sin respuesta del servidor:
// timeout frente a conectividad.
func (a *APIClient) normalizarErrorTransporte(method, path string, err error) error {
	var ne net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &ne) && ne.Timeout()) {
		a.log.Warn().Str("method", method).Str("path", path).Msg("timeout de la API")
		return fmt.Errorf("%w: intente nuevamente", domain.ErrTimeout)
	}
	a.log.Warn().Err(err).Str("method", method).Str("path", path).Msg("sin respuesta del servidor")
	return fmt.Errorf("%w: verifique su conexión", domain.ErrConexion)
}

// normalizarErrorRespuesta clasifica respuestas 4xx/5xx. Un 401 limpia la
// credencial local y emite la señal de sesión inválida.
func (a *APIClient) normalizarErrorRespuesta(resp *http.Response) error {
	var cuerpo cuerpoError
	_ = json.NewDecoder(io.LimitReader(resp.Body, 4096)).Decode(&cuerpo)
	detalle := cuerpo.Message
	if detalle == "" {
		detalle = cuerpo.Error
	}

	switch resp.StatusCode {
	case http.StatusUnauthorized:
		a.log.Warn().Msg("error de autenticación (401), se invalida la sesión")
		a.sesion.Invalidar()
		return fmt.Errorf("%w: verifique sus credenciales", domain.ErrNoAutenticado)
	case http.StatusForbidden:
		return domain.ErrProhibido
	case http.StatusNotFound:
		return domain.ErrNoEncontrado
	default:
		if detalle != "" {
			return fmt.Errorf("%w: %s", domain.ErrServidor, detalle)
		}
		return fmt.Errorf("%w (HTTP %d)", domain.ErrServidor, resp.StatusCode)
	}
}
