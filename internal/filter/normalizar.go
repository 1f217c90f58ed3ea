package filter

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// plegador descompone a NFD, elimina las marcas diacríticas y recompone.
// Así "aeronáutico" y "aeronautico" coinciden al filtrar.
var plegador = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// normalizar pliega acentos y pasa a minúsculas para comparación.
func normalizar(s string) string {
	plano, _, err := transform.String(plegador, s)
	if err != nil {
		plano = s
	}
	return strings.ToLower(plano)
}

// contiene es el predicado de los filtros de texto: subcadena sin distinguir
// mayúsculas ni acentos. Filtro vacío equivale a "coincide todo".
func contiene(campo, filtro string) bool {
	if filtro == "" {
		return true
	}
	return strings.Contains(normalizar(campo), normalizar(filtro))
}
