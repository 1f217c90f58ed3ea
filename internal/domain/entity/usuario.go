package entity

// Usuario representa el usuario autenticado que devuelve /api/me.
type Usuario struct {
	ID     string `json:"id"`
	Nombre string `json:"name"`
	Email  string `json:"email,omitempty"`
}

// Credenciales par usuario/contraseña que espera /api/login.
type Credenciales struct {
	Usuario  string `json:"USUARIO"`
	Password string `json:"PASSWORD"`
}
