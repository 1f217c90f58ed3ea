package filter_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ovi-dev/geslab/internal/domain/entity"
	"github.com/ovi-dev/geslab/internal/filter"
)

func fecha(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func muestrasEjemplo() []entity.Muestra {
	return []entity.Muestra{
		{ID: 1, ReferenciaCliente: "REF-001", Producto: "Aceite hidráulico", FechaMuestreo: fecha(2025, 3, 10), Urgente: 1, ENAC: 1},
		{ID: 2, ReferenciaCliente: "REF-002", Producto: "Agua de baño", FechaMuestreo: fecha(2025, 3, 11), FechaRecepcion: fecha(2025, 3, 12)},
		{ID: 3, ReferenciaCliente: "PED-117", Producto: "Taladrina", FechaMuestreo: fecha(2025, 3, 10), Cerrada: 1, NADCAP: 1},
	}
}

func TestMuestraFiltro_ReferenciaPorSubcadena(t *testing.T) {
	f := filter.MuestraFiltro{Referencia: "ref"}
	res := f.Aplicar(muestrasEjemplo())
	require.Len(t, res, 2)
	assert.Equal(t, 1, res[0].ID)
	assert.Equal(t, 2, res[1].ID)
}

func TestMuestraFiltro_FechaMuestreoPorDiaNatural(t *testing.T) {
	// La hora no importa: se compara el día natural.
	f := filter.MuestraFiltro{FechaMuestreo: time.Date(2025, 3, 10, 17, 45, 0, 0, time.UTC)}
	res := f.Aplicar(muestrasEjemplo())
	require.Len(t, res, 2)
	assert.Equal(t, 1, res[0].ID)
	assert.Equal(t, 3, res[1].ID)
}

func TestMuestraFiltro_FechaSinValorNoCoincide(t *testing.T) {
	// Una muestra sin fecha de recepción no pasa un criterio de recepción activo.
	f := filter.MuestraFiltro{FechaRecepcion: fecha(2025, 3, 12)}
	res := f.Aplicar(muestrasEjemplo())
	require.Len(t, res, 1)
	assert.Equal(t, 2, res[0].ID)
}

func TestMuestraFiltro_MarcasBooleanas(t *testing.T) {
	casos := []struct {
		nombre   string
		filtro   filter.MuestraFiltro
		esperado []int
	}{
		{"urgente", filter.MuestraFiltro{Urgente: true}, []int{1}},
		{"cerrada", filter.MuestraFiltro{Cerrada: true}, []int{3}},
		{"enac", filter.MuestraFiltro{ENAC: true}, []int{1}},
		{"nadcap", filter.MuestraFiltro{NADCAP: true}, []int{3}},
		{"anulada", filter.MuestraFiltro{Anulada: true}, nil},
	}
	for _, c := range casos {
		t.Run(c.nombre, func(t *testing.T) {
			res := c.filtro.Aplicar(muestrasEjemplo())
			ids := make([]int, 0, len(res))
			for _, m := range res {
				ids = append(ids, m.ID)
			}
			if c.esperado == nil {
				assert.Empty(t, ids)
			} else {
				assert.Equal(t, c.esperado, ids)
			}
		})
	}
}

func TestMuestraFiltro_ComposicionANDConmuta(t *testing.T) {
	muestras := muestrasEjemplo()

	compuesto := filter.MuestraFiltro{Producto: "a", FechaMuestreo: fecha(2025, 3, 10)}
	deUnaVez := compuesto.Aplicar(muestras)

	porProducto := filter.MuestraFiltro{Producto: "a"}
	porFecha := filter.MuestraFiltro{FechaMuestreo: fecha(2025, 3, 10)}
	encadenado := porFecha.Aplicar(porProducto.Aplicar(muestras))

	assert.Equal(t, deUnaVez, encadenado)
}

func TestMuestraFiltro_EsIdempotente(t *testing.T) {
	f := filter.MuestraFiltro{Producto: "a"}
	una := f.Aplicar(muestrasEjemplo())
	dos := f.Aplicar(una)
	assert.Equal(t, una, dos)
}
