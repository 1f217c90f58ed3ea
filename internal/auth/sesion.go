package auth

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/ovi-dev/geslab/pkg/jwt"
	"github.com/ovi-dev/geslab/pkg/logger"
)

// Sesion guarda la credencial bearer del proceso. Es el equivalente del
// almacenamiento local del navegador: el token puede persistirse en un
// archivo para reutilizar la sesión entre ejecuciones. La ausencia de token
// no bloquea las peticiones (el servidor decide la autorización); un 401 del
// gateway invalida la sesión y dispara la señal de re-autenticación.
type Sesion struct {
	mu           sync.RWMutex
	token        string
	archivo      string // vacío = solo memoria
	log          *logger.Logger
	observadores map[int]func()
	siguienteObs int
}

// NewSesion crea la sesión. Si archivo no está vacío intenta recuperar un
// token persistido; los tokens expirados se descartan en silencio.
func NewSesion(archivo string, log *logger.Logger) *Sesion {
	s := &Sesion{archivo: archivo, log: log, observadores: map[int]func(){}}
	if archivo == "" {
		return s
	}
	datos, err := os.ReadFile(archivo)
	if err != nil {
		return s
	}
	token := strings.TrimSpace(string(datos))
	if token == "" {
		return s
	}
	if exp, err := jwt.ExpiraEn(token); err == nil && exp.Before(time.Now()) {
		log.Debug().Msg("token persistido expirado, se descarta")
		_ = os.Remove(archivo)
		return s
	}
	s.token = token
	return s
}

// Guardar fija el token y lo persiste si hay archivo configurado.
func (s *Sesion) Guardar(token string) {
	s.mu.Lock()
	s.token = token
	archivo := s.archivo
	s.mu.Unlock()
	if archivo == "" {
		return
	}
	if err := os.MkdirAll(filepath.Dir(archivo), 0o700); err == nil {
		if err := os.WriteFile(archivo, []byte(token), 0o600); err != nil {
			s.log.Warn().Err(err).Msg("no se pudo persistir el token de sesión")
		}
	}
}

// Token devuelve la credencial actual, o cadena vacía si no hay sesión.
func (s *Sesion) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// Autenticada indica si hay una credencial almacenada.
func (s *Sesion) Autenticada() bool {
	return s.Token() != ""
}

// Limpiar elimina la credencial local (memoria y archivo) sin emitir señal.
func (s *Sesion) Limpiar() {
	s.mu.Lock()
	s.token = ""
	archivo := s.archivo
	s.mu.Unlock()
	if archivo != "" {
		_ = os.Remove(archivo)
	}
}

// Invalidar limpia la credencial y avisa a los observadores: es la señal
// "credencial inválida" que fuerza la re-autenticación en toda la aplicación.
func (s *Sesion) Invalidar() {
	s.Limpiar()
	s.mu.RLock()
	fns := make([]func(), 0, len(s.observadores))
	for _, fn := range s.observadores {
		fns = append(fns, fn)
	}
	s.mu.RUnlock()
	for _, fn := range fns {
		fn()
	}
}

// OnInvalidada registra un observador de la señal de sesión inválida.
// Devuelve la función de baja.
func (s *Sesion) OnInvalidada(fn func()) (cancel func()) {
	s.mu.Lock()
	id := s.siguienteObs
	s.siguienteObs++
	s.observadores[id] = fn
	s.mu.Unlock()
	return func() {
		s.mu.Lock()
		delete(s.observadores, id)
		s.mu.Unlock()
	}
}
