// Package normalize dá suporte à busca por nome do terminal: comparação sem
// diferenciar acentos nem maiúsculas ("cafe" encontra "Café").
package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var stripper = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Fold remove marcas diacríticas e baixa a caixa. Em erro de transformação
// (entrada malformada) devolve a string original em minúsculas.
func Fold(s string) string {
	out, _, err := transform.String(stripper, s)
	if err != nil {
		return strings.ToLower(s)
	}
	return strings.ToLower(out)
}
