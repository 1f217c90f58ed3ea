package usecase

import (
	"context"
	"sync/atomic"

	"github.com/ovi-dev/geslab/internal/domain/repository"
	"github.com/ovi-dev/geslab/internal/store"
	"github.com/ovi-dev/geslab/pkg/logger"
)

// ClienteLoader coordina la carga gateway → store con ciclo de vida
// explícito. Deactivate avanza la época: una respuesta que llega después del
// desmontaje de la página ya no se aplica al store (guardia anti-respuestas
// obsoletas).
type ClienteLoader struct {
	gateway repository.ClienteGateway
	store   *store.ClienteStore
	log     *logger.Logger
	epoca   atomic.Int64
}

// NewClienteLoader construye el cargador.
func NewClienteLoader(g repository.ClienteGateway, st *store.ClienteStore, log *logger.Logger) *ClienteLoader {
	return &ClienteLoader{gateway: g, store: st, log: log}
}

// Activate hook de montaje: carga la colección completa en el store.
func (l *ClienteLoader) Activate(ctx context.Context) error {
	return l.cargar(ctx, false)
}

// Reload fuerza una recarga saltándose la caché del gateway.
func (l *ClienteLoader) Reload(ctx context.Context) error {
	return l.cargar(ctx, true)
}

// Deactivate hook de desmontaje: los resultados pendientes se descartan.
func (l *ClienteLoader) Deactivate() {
	l.epoca.Add(1)
}

func (l *ClienteLoader) cargar(ctx context.Context, force bool) error {
	epoca := l.epoca.Load()
	l.store.SetCargando(true)
	l.store.SetError("")

	clientes, err := l.gateway.FetchAll(ctx, force)
	if l.epoca.Load() != epoca {
		// El resultado no se aplica, pero el flag de carga sí se apaga: el
		// store debe quedar legible si se vuelve a consultar.
		l.store.SetCargando(false)
		l.log.Debug().Msg("respuesta de clientes descartada: cargador desactivado")
		return nil
	}
	if err != nil {
		l.store.SetCargando(false)
		l.store.SetError("No se pudieron cargar los clientes. " + err.Error())
		return err
	}
	l.store.SetClientes(clientes)
	l.log.Debug().Int("total", len(clientes)).Msg("clientes cargados")
	return nil
}

// MuestraLoader homólogo de ClienteLoader para muestras.
type MuestraLoader struct {
	gateway repository.MuestraGateway
	store   *store.MuestraStore
	log     *logger.Logger
	epoca   atomic.Int64
}

// NewMuestraLoader construye el cargador.
func NewMuestraLoader(g repository.MuestraGateway, st *store.MuestraStore, log *logger.Logger) *MuestraLoader {
	return &MuestraLoader{gateway: g, store: st, log: log}
}

// Activate hook de montaje: carga la colección completa en el store.
func (l *MuestraLoader) Activate(ctx context.Context) error {
	return l.cargar(ctx, false)
}

// Reload fuerza una recarga saltándose la caché del gateway.
func (l *MuestraLoader) Reload(ctx context.Context) error {
	return l.cargar(ctx, true)
}

// Deactivate hook de desmontaje: los resultados pendientes se descartan.
func (l *MuestraLoader) Deactivate() {
	l.epoca.Add(1)
}

func (l *MuestraLoader) cargar(ctx context.Context, force bool) error {
	epoca := l.epoca.Load()
	l.store.SetCargando(true)
	l.store.SetError("")

	muestras, err := l.gateway.FetchAll(ctx, force)
	if l.epoca.Load() != epoca {
		l.store.SetCargando(false)
		l.log.Debug().Msg("respuesta de muestras descartada: cargador desactivado")
		return nil
	}
	if err != nil {
		l.store.SetCargando(false)
		l.store.SetError("Error al obtener las muestras. " + err.Error())
		return err
	}
	l.store.SetMuestras(muestras)
	l.log.Debug().Int("total", len(muestras)).Msg("muestras cargadas")
	return nil
}
