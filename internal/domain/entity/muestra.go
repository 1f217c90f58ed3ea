package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Muestra representa una muestra de laboratorio tal como la entrega la API
// REST. Los indicadores booleanos se almacenan como 0/1. Las tres fechas de
// negocio (muestreo, recepción y fin previsto) son obligatorias antes de
// persistir; Precio es el importe y nunca puede ser negativo.
type Muestra struct {
	ID                 int             `json:"ID_MUESTRA"`
	ReferenciaCliente  string          `json:"REFERENCIA_CLIENTE"`
	Producto           string          `json:"PRODUCTO"`
	TipoMuestraID      int             `json:"TIPO_MUESTRA_ID"`
	TipoAnalisisID     int             `json:"TIPO_ANALISIS_ID"`
	ClienteID          int             `json:"CLIENTE_ID"`
	CentroID           int             `json:"CENTRO_ID"`
	FechaMuestreo      time.Time       `json:"FECHA_MUESTREO"`
	FechaRecepcion     time.Time       `json:"FECHA_RECEPCION"`
	FechaPrevFin       time.Time       `json:"FECHA_PREV_FIN"`
	DetalleMuestreo    string          `json:"DETALLE_MUESTREO"`
	Observaciones      string          `json:"OBSERVACIONES"`
	Precinto           string          `json:"PRECINTO"`
	Precio             decimal.Decimal `json:"PRECIO"`
	Urgente            int             `json:"URGENTE"`
	Anulada            int             `json:"ANULADA"`
	Cerrada            int             `json:"CERRADA"`
	ENAC               int             `json:"ENAC"`
	NADCAP             int             `json:"NADCAP"`
	IPA                int             `json:"IPA"`
	InformeManual      int             `json:"INFORME_MANUAL"`
	IDGeneral          int             `json:"ID_GENERAL"`
	IDParticular       int             `json:"ID_PARTICULAR"`
	Anno               int             `json:"ANNO"`
	EmpleadoID         int             `json:"EMPLEADO_ID"`
	ReplacementID      int             `json:"REPLACEMENT_ID"`
	TipoFrecuenciaID   int             `json:"TIPO_FRECUENCIA_ID"`
	BanoID             int             `json:"BANO_ID"`
	EntidadMuestreoID  int             `json:"ENTIDAD_MUESTREO_ID"`
	FormatoID          int             `json:"FORMATO_ID"`
	EntidadEntregaID   int             `json:"ENTIDAD_ENTREGA_ID"`
	OpVuelo            int             `json:"OP_VUELO"`
	OpInsitu           int             `json:"OP_INSITU"`
	OpLabMovil         int             `json:"OP_LABMOVIL"`
	OpNoRutinaria      int             `json:"OP_NORUTINARIA"`
	OpRepeticion       int             `json:"OP_REPETICION"`
	ResponsableID      int             `json:"RESPONSABLE_ID"`
	Firma              int             `json:"FIRMA"`
}

// NuevaMuestra devuelve una muestra con los valores por defecto del formulario
// de alta: fechas al día de hoy, año en curso, empleado y frecuencia
// iniciales. El resto de claves numéricas quedan a cero y el servidor las
// acepta así (comportamiento heredado del alta original).
func NuevaMuestra() Muestra {
	hoy := time.Now()
	return Muestra{
		FechaMuestreo:    hoy,
		FechaRecepcion:   hoy,
		FechaPrevFin:     hoy,
		Anno:             hoy.Year(),
		EmpleadoID:       1,
		TipoFrecuenciaID: 1,
		Precio:           decimal.Zero,
	}
}

// Validar aplica el conjunto estricto de reglas del formulario de muestras.
// Devuelve un mapa campo→mensaje vacío cuando todo es correcto.
func (m Muestra) Validar() map[string]string {
	errores := map[string]string{}
	if m.ClienteID == 0 {
		errores["CLIENTE_ID"] = "El cliente es requerido"
	}
	if m.TipoMuestraID == 0 {
		errores["TIPO_MUESTRA_ID"] = "El tipo de muestra es requerido"
	}
	if m.TipoAnalisisID == 0 {
		errores["TIPO_ANALISIS_ID"] = "El tipo de análisis es requerido"
	}
	if m.FechaMuestreo.IsZero() {
		errores["FECHA_MUESTREO"] = "La fecha de muestreo es requerida"
	}
	if m.FechaRecepcion.IsZero() {
		errores["FECHA_RECEPCION"] = "La fecha de recepción es requerida"
	}
	if m.FechaPrevFin.IsZero() {
		errores["FECHA_PREV_FIN"] = "La fecha prevista de fin es requerida"
	}
	if m.Producto == "" {
		errores["PRODUCTO"] = "El producto es requerido"
	}
	if m.Precio.IsZero() {
		errores["PRECIO"] = "El precio es requerido"
	} else if m.Precio.IsNegative() {
		errores["PRECIO"] = "El precio no puede ser negativo"
	}
	if m.IDGeneral == 0 {
		errores["ID_GENERAL"] = "El ID general es requerido"
	}
	if m.IDParticular == 0 {
		errores["ID_PARTICULAR"] = "El ID particular es requerido"
	}
	if m.Anno == 0 {
		errores["ANNO"] = "El año es requerido"
	}
	if m.EntidadMuestreoID == 0 {
		errores["ENTIDAD_MUESTREO_ID"] = "La entidad de muestreo es requerida"
	}
	if m.FormatoID == 0 {
		errores["FORMATO_ID"] = "El formato es requerido"
	}
	if m.EntidadEntregaID == 0 {
		errores["ENTIDAD_ENTREGA_ID"] = "La entidad de entrega es requerida"
	}
	if m.BanoID == 0 {
		errores["BANO_ID"] = "El baño es requerido"
	}
	if m.TipoFrecuenciaID == 0 {
		errores["TIPO_FRECUENCIA_ID"] = "El tipo de frecuencia es requerido"
	}
	if m.Firma == 0 {
		errores["FIRMA"] = "La firma es requerida"
	}
	return errores
}
