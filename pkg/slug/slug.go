// Package slug gera e valida identificadores de URL para a página pública do cardápio.
package slug

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var validRe = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

const (
	minLen = 3
	maxLen = 60
)

// Make deriva um slug a partir do nome do estabelecimento:
// remove acentos (NFD + remoção de marcas combinantes), minúsculas,
// troca sequências não alfanuméricas por hífen e apara as pontas.
func Make(name string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	plain, _, err := transform.String(t, name)
	if err != nil {
		plain = name
	}

	var b strings.Builder
	lastHyphen := true // evita hífen inicial
	for _, r := range strings.ToLower(plain) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}
	s := strings.Trim(b.String(), "-")
	if len(s) > maxLen {
		s = strings.Trim(s[:maxLen], "-")
	}
	return s
}

// IsValid verifica formato e tamanho do slug.
func IsValid(s string) bool {
	return len(s) >= minLen && len(s) <= maxLen && validRe.MatchString(s)
}
