package domain

import "errors"

// Errores de dominio (sin dependencias externas). El gateway REST normaliza
// cualquier fallo de transporte a uno de estos antes de entregarlo a los
// stores o a los controladores de formulario.
var (
	ErrValidacion    = errors.New("entrada inválida")
	ErrNoAutenticado = errors.New("no autorizado, inicie sesión nuevamente")
	ErrProhibido     = errors.New("no tiene permisos para acceder a este recurso")
	ErrNoEncontrado  = errors.New("el recurso solicitado no existe")
	ErrTimeout       = errors.New("la petición ha excedido el tiempo de espera")
	ErrConexion      = errors.New("no se pudo establecer conexión con el servidor")
	ErrServidor      = errors.New("error en la comunicación con el servidor")
)
