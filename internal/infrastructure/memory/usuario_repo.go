package memory

import (
	"sync"

	"golang.org/x/crypto/bcrypt"

	"github.com/ovi-dev/geslab/internal/domain"
	"github.com/ovi-dev/geslab/internal/domain/entity"
)

// usuarioConHash usuario del servidor de desarrollo con su hash bcrypt.
type usuarioConHash struct {
	usuario entity.Usuario
	nombre  string // nombre de login
	hash    []byte
}

// UsuarioRepo almacén en memoria de usuarios. Las contraseñas se guardan
// únicamente como hash bcrypt.
type UsuarioRepo struct {
	mu       sync.RWMutex
	usuarios []usuarioConHash
}

// NewUsuarioRepo crea el repositorio vacío.
func NewUsuarioRepo() *UsuarioRepo {
	return &UsuarioRepo{}
}

// Registrar da de alta un usuario con su contraseña en claro; el hash se
// calcula aquí y el texto plano no se retiene.
func (r *UsuarioRepo) Registrar(u entity.Usuario, login, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	r.mu.Lock()
	r.usuarios = append(r.usuarios, usuarioConHash{usuario: u, nombre: login, hash: hash})
	r.mu.Unlock()
	return nil
}

// Validar comprueba las credenciales y devuelve el usuario. Un login
// desconocido y una contraseña incorrecta producen el mismo error.
func (r *UsuarioRepo) Validar(login, password string) (*entity.Usuario, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.usuarios {
		if u.nombre != login {
			continue
		}
		if err := bcrypt.CompareHashAndPassword(u.hash, []byte(password)); err != nil {
			return nil, domain.ErrNoAutenticado
		}
		usuario := u.usuario
		return &usuario, nil
	}
	return nil, domain.ErrNoAutenticado
}

// PorID busca un usuario por su identificador.
func (r *UsuarioRepo) PorID(id string) (*entity.Usuario, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.usuarios {
		if u.usuario.ID == id {
			usuario := u.usuario
			return &usuario, nil
		}
	}
	return nil, domain.ErrNoEncontrado
}
