package gen

import (
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// reserved words of the target language. Keys matching one of them are
// quoted even where the grammar would accept them bare.
var reserved = names(
	"await", "break", "case", "catch", "class", "const", "continue",
	"debugger", "default", "delete", "do", "else", "enum", "export",
	"extends", "false", "finally", "for", "function", "if", "implements",
	"import", "in", "instanceof", "interface", "let", "new", "null",
	"package", "private", "protected", "public", "return", "static",
	"super", "switch", "this", "throw", "true", "try", "typeof", "var",
	"void", "while", "with", "yield",
)

// IsValidPropertyAccessor reports whether key can be written as a bare
// property name, both in a type literal and after a dot.
func IsValidPropertyAccessor(key string) bool {
	_, ok := reserved[key]
	return !ok && isIdentifierName(key)
}

// IsValidClassName reports whether name can be used as the binding of a
// class declaration.
func IsValidClassName(name string) bool {
	return IsValidPropertyAccessor(name)
}

func isIdentifierName(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if i == 0 && !identStart(r) {
			return false
		}
		if !identPart(r) {
			return false
		}
	}
	return true
}

func identStart(r rune) bool {
	return r == '$' || r == '_' || unicode.IsLetter(r) || unicode.Is(unicode.Nl, r)
}

func identPart(r rune) bool {
	return identStart(r) ||
		unicode.IsDigit(r) ||
		unicode.In(r, unicode.Mn, unicode.Mc, unicode.Pc) ||
		r == '\u200c' || r == '\u200d'
}

// UpcaseAt returns s with the character at rune index i upper-cased.
// Full case mapping is applied, so a single character may expand
// (e.g. "ß" becomes "SS"). An out-of-range index returns s unchanged.
func UpcaseAt(s string, i int) string {
	if i < 0 {
		return s
	}
	n := 0
	for off := range s {
		if n == i {
			_, size := utf8.DecodeRuneInString(s[off:])
			// Casers are stateful and cannot be shared across goroutines.
			c := cases.Upper(language.Und)
			return s[:off] + c.String(s[off:off+size]) + s[off+size:]
		}
		n++
	}
	return s
}

func names(ids ...string) map[string]struct{} {
	m := make(map[string]struct{}, len(ids))
	for i := range ids {
		m[ids[i]] = struct{}{}
	}
	return m
}
