package filter

import (
	"time"

	"github.com/ovi-dev/geslab/internal/domain/entity"
)

// MuestraFiltro criterios de búsqueda del panel de muestras. Las fechas
// filtran por igualdad de día natural; una fecha cero desactiva el criterio.
type MuestraFiltro struct {
	Referencia string // sobre REFERENCIA_CLIENTE
	Producto   string

	FechaMuestreo  time.Time
	FechaRecepcion time.Time

	Urgente bool
	Anulada bool
	Cerrada bool
	ENAC    bool
	NADCAP  bool
}

// Vacio indica que ningún criterio está activo.
func (f MuestraFiltro) Vacio() bool {
	return f == MuestraFiltro{}
}

// Coincide evalúa todos los predicados activos sobre una muestra.
func (f MuestraFiltro) Coincide(m entity.Muestra) bool {
	if !contiene(m.ReferenciaCliente, f.Referencia) {
		return false
	}
	if !contiene(m.Producto, f.Producto) {
		return false
	}
	if !f.FechaMuestreo.IsZero() && !mismoDia(m.FechaMuestreo, f.FechaMuestreo) {
		return false
	}
	if !f.FechaRecepcion.IsZero() && !mismoDia(m.FechaRecepcion, f.FechaRecepcion) {
		return false
	}
	if f.Urgente && m.Urgente != 1 {
		return false
	}
	if f.Anulada && m.Anulada != 1 {
		return false
	}
	if f.Cerrada && m.Cerrada != 1 {
		return false
	}
	if f.ENAC && m.ENAC != 1 {
		return false
	}
	if f.NADCAP && m.NADCAP != 1 {
		return false
	}
	return true
}

// Aplicar devuelve el subconjunto que cumple los criterios, conservando el
// orden original de la colección.
func (f MuestraFiltro) Aplicar(muestras []entity.Muestra) []entity.Muestra {
	out := make([]entity.Muestra, 0, len(muestras))
	for _, m := range muestras {
		if f.Coincide(m) {
			out = append(out, m)
		}
	}
	return out
}

// mismoDia compara dos instantes por día natural (una muestra sin fecha nunca
// coincide con un criterio de fecha activo).
func mismoDia(a, b time.Time) bool {
	if a.IsZero() {
		return false
	}
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
