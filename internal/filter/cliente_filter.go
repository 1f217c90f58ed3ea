package filter

import "github.com/ovi-dev/geslab/internal/domain/entity"

// ClienteFiltro criterios de búsqueda del panel de clientes. Los campos de
// texto filtran por subcadena; los booleanos exigen la marca correspondiente
// a 1 (o su negación, en el caso de "sin factura electrónica"). Todos los
// criterios activos se combinan con AND.
type ClienteFiltro struct {
	Nombre      string
	CIF         string
	Telefono    string
	Responsable string

	Aeronauticos          bool // TIPO contiene "aeronáutico"
	Extracomunitario      bool // EXTRANJERO = 1 y además INTRA ≠ 1
	Intracomunitario      bool // INTRA = 1
	Airbus                bool
	Iberia                bool
	Agroalimentarios      bool
	SinFacturaElectronica bool // FACTURA_ELECTRONICA ≠ 1
	Delegaciones          bool // TIPO contiene "delegación"
}

// Vacio indica que ningún criterio está activo.
func (f ClienteFiltro) Vacio() bool {
	return f == ClienteFiltro{}
}

// Coincide evalúa todos los predicados activos sobre un cliente.
func (f ClienteFiltro) Coincide(c entity.Cliente) bool {
	if !contiene(c.Nombre, f.Nombre) {
		return false
	}
	if !contiene(c.CIF, f.CIF) {
		return false
	}
	if !contiene(c.Telefono, f.Telefono) {
		return false
	}
	if !contiene(c.Responsable, f.Responsable) {
		return false
	}
	if f.Aeronauticos && !contiene(c.Tipo, "aeronáutico") {
		return false
	}
	if f.Extracomunitario && !(c.Extranjero == 1 && c.Intra != 1) {
		return false
	}
	if f.Intracomunitario && c.Intra != 1 {
		return false
	}
	if f.Airbus && c.Airbus != 1 {
		return false
	}
	if f.Iberia && c.Iberia != 1 {
		return false
	}
	if f.Agroalimentarios && c.Agroalimentario != 1 {
		return false
	}
	if f.SinFacturaElectronica && c.FacturaElectronica == 1 {
		return false
	}
	if f.Delegaciones && !contiene(c.Tipo, "delegación") {
		return false
	}
	return true
}

// Aplicar devuelve el subconjunto de la colección que cumple los criterios,
// conservando el orden original. Es una función pura: dos ejecuciones sobre
// las mismas entradas producen la misma salida.
func (f ClienteFiltro) Aplicar(clientes []entity.Cliente) []entity.Cliente {
	out := make([]entity.Cliente, 0, len(clientes))
	for _, c := range clientes {
		if f.Coincide(c) {
			out = append(out, c)
		}
	}
	return out
}
