package inventory

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// dotlessI no se descompone en NFD; se mapea explícitamente antes de quitar las marcas.
var dotlessI = runes.Map(func(r rune) rune {
	if r == 'ı' {
		return 'i'
	}
	return r
})

// NormalizeCode lleva un código de stock a su forma canónica: letras con diacríticos
// (Ğ Ü Ş İ Ö Ç y sus minúsculas) a su letra base ASCII y luego a mayúsculas.
// Es idempotente: NormalizeCode(NormalizeCode(x)) == NormalizeCode(x).
func NormalizeCode(code string) string {
	t := transform.Chain(dotlessI, norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, code)
	if err != nil {
		folded = code
	}
	return strings.ToUpper(folded)
}
