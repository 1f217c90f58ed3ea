package usecase

// EstadoFormulario máquina de estados de los modales de alta/edición:
// Inactivo → Editando → Enviando → (éxito: Inactivo | fallo: Editando con el
// error visible).
type EstadoFormulario int

const (
	FormInactivo EstadoFormulario = iota
	FormEditando
	FormEnviando
)

// ModoFormulario distingue alta de edición.
type ModoFormulario int

const (
	ModoAlta ModoFormulario = iota
	ModoEdicion
)
