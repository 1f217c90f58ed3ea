package memory

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/ovi-dev/geslab/internal/domain/entity"
)

// SemillaClientes datos de demostración del servidor de desarrollo.
func SemillaClientes() []entity.Cliente {
	return []entity.Cliente{
		{
			ID: 1, Nombre: "Aceites del Guadalquivir S.L.", CIF: "B41000001",
			Direccion: "Pol. Ind. La Isla, nave 14", Telefono: "954 111 222",
			Email: "calidad@aceitesguadalquivir.es", Responsable: "María Romero",
			Tipo: "Agroalimentario", Agroalimentario: 1, FacturaElectronica: 1,
			CodPostal: 41703, PaisID: 1,
		},
		{
			ID: 2, Nombre: "Talleres Aeronáuticos San Pablo", CIF: "A41000002",
			Direccion: "Ctra. N-IV km 529", Telefono: "954 333 444",
			Email: "laboratorio@tasp.es", Responsable: "Javier Ortega",
			Tipo: "Aeronáutico", Airbus: 1, FacturaElectronica: 1,
			CodPostal: 41007, PaisID: 1,
		},
		{
			ID: 3, Nombre: "Lubricants Nordik AB", CIF: "SE556000111",
			Direccion: "Industrivägen 8, Göteborg", Telefono: "+46 31 000 111",
			Email: "lab@nordik.se", Responsable: "Anna Lindqvist",
			Tipo: "Industrial", Intra: 1, Extranjero: 1, CodPostal: 41250, PaisID: 46,
		},
		{
			ID: 4, Nombre: "Aceites del Guadalquivir - Delegación Córdoba",
			CIF: "B41000001", Direccion: "Av. del Aceite 3, Córdoba",
			Telefono: "957 555 666", Email: "cordoba@aceitesguadalquivir.es",
			Tipo: "Agroalimentario", Agroalimentario: 1, FacturaElectronica: 1,
			ParentID: 1, CodPostal: 14013, PaisID: 1,
		},
	}
}

// SemillaMuestras datos de demostración del servidor de desarrollo.
func SemillaMuestras() []entity.Muestra {
	hoy := time.Now()
	return []entity.Muestra{
		{
			ID: 1, ClienteID: 1, ReferenciaCliente: "AG-2026-014",
			Producto: "Aceite de oliva virgen extra", TipoMuestraID: 1,
			TipoAnalisisID: 2, FechaMuestreo: hoy.AddDate(0, 0, -3),
			FechaRecepcion: hoy.AddDate(0, 0, -2), FechaPrevFin: hoy.AddDate(0, 0, 4),
			Precio: decimal.NewFromInt(85), IDGeneral: 2026001, IDParticular: 14,
			Anno: hoy.Year(), EmpleadoID: 1, TipoFrecuenciaID: 1,
			EntidadMuestreoID: 1, FormatoID: 1, EntidadEntregaID: 1, BanoID: 1,
			Firma: 1, ENAC: 1,
		},
		{
			ID: 2, ClienteID: 2, ReferenciaCliente: "TASP-77",
			Producto: "Taladrina de mecanizado", TipoMuestraID: 3,
			TipoAnalisisID: 5, FechaMuestreo: hoy.AddDate(0, 0, -1),
			FechaRecepcion: hoy, FechaPrevFin: hoy.AddDate(0, 0, 2),
			Precio: decimal.NewFromFloat(132.50), IDGeneral: 2026002, IDParticular: 77,
			Anno: hoy.Year(), EmpleadoID: 1, TipoFrecuenciaID: 1,
			EntidadMuestreoID: 2, FormatoID: 1, EntidadEntregaID: 1, BanoID: 2,
			Firma: 1, Urgente: 1, NADCAP: 1,
		},
		{
			ID: 3, ClienteID: 3, ReferenciaCliente: "NORDIK-A1",
			Producto: "Aceite hidráulico ISO VG 46", TipoMuestraID: 2,
			TipoAnalisisID: 4, FechaMuestreo: hoy.AddDate(0, 0, -10),
			FechaRecepcion: hoy.AddDate(0, 0, -9), FechaPrevFin: hoy.AddDate(0, 0, -2),
			Precio: decimal.NewFromInt(60), IDGeneral: 2026003, IDParticular: 108,
			Anno: hoy.Year(), EmpleadoID: 1, TipoFrecuenciaID: 1,
			EntidadMuestreoID: 1, FormatoID: 2, EntidadEntregaID: 2, BanoID: 1,
			Firma: 1, Cerrada: 1,
		},
	}
}
