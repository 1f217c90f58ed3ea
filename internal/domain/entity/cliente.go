package entity

import "regexp"

// Cliente representa un cliente del laboratorio tal como lo entrega la API
// REST (campos en mayúsculas). ID es asignado por el servidor e inmutable una
// vez persistido; cero significa "aún no persistido".
type Cliente struct {
	ID                     int    `json:"ID_CLIENTE"`
	Nombre                 string `json:"NOMBRE"`
	Direccion              string `json:"DIRECCION"`
	CIF                    string `json:"CIF"`
	Telefono               string `json:"TELEFONO"`
	Fax                    string `json:"FAX"`
	Email                  string `json:"EMAIL"`
	Email2                 string `json:"EMAIL2"`
	EmailFacturacion       string `json:"EMAIL_FACTURACION"`
	Responsable            string `json:"RESPONSABLE"`
	ResponsableOtros       string `json:"RESPONSABLE_OTROS"`
	Observaciones          string `json:"OBSERVACIONES"`
	Tipo                   string `json:"TIPO"`
	Intra                  int    `json:"INTRA"`
	Extranjero             int    `json:"EXTRANJERO"`
	Airbus                 int    `json:"AIRBUS"`
	Iberia                 int    `json:"IBERIA"`
	Agroalimentario        int    `json:"AGROALIMENTARIO"`
	FacturaElectronica     int    `json:"FACTURA_ELECTRONICA"`
	FacturaDeterminaciones int    `json:"FACTURA_DETERMINACIONES"`
	Banco                  string `json:"BANCO"`
	Cuenta                 string `json:"CUENTA"`
	CodPostal              int    `json:"COD_POSTAL"`
	ProvinciaID            int    `json:"PROVINCIA_ID"`
	MunicipioID            int    `json:"MUNICIPIO_ID"`
	PaisID                 int    `json:"PAIS_ID"`
	Centro                 string `json:"CENTRO"`
	Cargo                  string `json:"CARGO"`
	Web                    string `json:"WEB"`
	TarifaID               int    `json:"TARIFA_ID"`
	CalibryID              int    `json:"CALIBRY_ID"`
	// ParentID enlaza una delegación con su cliente principal; cero si no aplica.
	ParentID int `json:"PARENT_ID"`
}

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// NuevoCliente devuelve un cliente con los valores por defecto del formulario
// de alta. La factura electrónica viene activada por defecto.
func NuevoCliente() Cliente {
	return Cliente{FacturaElectronica: 1}
}

// Validar comprueba las reglas de campo previas al envío: nombre obligatorio
// y email con formato válido si está presente. Devuelve un mapa campo→mensaje
// vacío cuando todo es correcto.
func (c Cliente) Validar() map[string]string {
	errores := map[string]string{}
	if c.Nombre == "" {
		errores["NOMBRE"] = "El nombre es obligatorio"
	}
	if c.Email != "" && !emailRe.MatchString(c.Email) {
		errores["EMAIL"] = "El formato del email no es válido"
	}
	return errores
}

// EsDelegacion indica si el cliente depende de otro (PARENT_ID distinto de cero).
func (c Cliente) EsDelegacion() bool {
	return c.ParentID != 0
}
