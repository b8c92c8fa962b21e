// Package fold normaliza texto para búsquedas por subcadena al estilo del
// buscador de las pantallas: sin distinguir mayúsculas ni acentos.
package fold

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize devuelve s en minúsculas y sin marcas diacríticas.
func Normalize(s string) string {
	out, _, err := transform.String(stripMarks, s)
	if err != nil {
		// Entrada no normalizable: se degrada a minúsculas simples.
		return strings.ToLower(s)
	}
	return strings.ToLower(out)
}

// Contains indica si needle aparece como subcadena de haystack,
// comparando las formas normalizadas de ambos.
func Contains(haystack, needle string) bool {
	return strings.Contains(Normalize(haystack), Normalize(needle))
}

// MatchAny indica si needle aparece en alguno de los campos dados.
// Con needle vacío siempre devuelve true (sin filtro).
func MatchAny(needle string, fields ...string) bool {
	if strings.TrimSpace(needle) == "" {
		return true
	}
	for _, f := range fields {
		if Contains(f, needle) {
			return true
		}
	}
	return false
}
