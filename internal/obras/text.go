package obras

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var stripAccents = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize lowercases, trims and strips diacritics so that lookups work
// regardless of how the source file spelled a value ("Tláhuac" == "tlahuac").
func Normalize(s string) string {
	out, _, err := transform.String(stripAccents, s)
	if err != nil {
		out = s
	}
	return strings.ToLower(strings.TrimSpace(out))
}

// Spanish connectors stay lowercase in title case, except as the first word.
var lowercaseConnectors = map[string]bool{
	"de": true, "del": true, "la": true, "las": true, "los": true,
	"el": true, "y": true, "en": true, "a": true, "con": true,
	"para": true, "por": true, "al": true, "o": true, "u": true, "e": true,
}

// Capitalize applies Spanish title case. Short all-caps words are treated as
// acronyms and kept as-is.
func Capitalize(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		if len(w) <= 4 && w != strings.ToLower(w) && w == strings.ToUpper(w) && strings.ContainsFunc(w, unicode.IsLetter) {
			continue
		}
		lower := strings.ToLower(w)
		if i > 0 && lowercaseConnectors[lower] {
			words[i] = lower
			continue
		}
		runes := []rune(lower)
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}

var fieldDefaults = map[string]string{
	"programa":              "Sin nombre",
	"area_responsable":      "Dirección General",
	"responsable_operativo": "No asignado",
	"contratista":           "No asignado",
}

// DefaultFor returns the placeholder used when a field arrives empty.
func DefaultFor(field string) string {
	if d, ok := fieldDefaults[field]; ok {
		return d
	}
	return "No especificado"
}

// CleanText trims a raw cell and substitutes the field default when nothing
// usable remains.
func CleanText(value any, field string) string {
	s := strings.TrimSpace(asString(value))
	if s == "" || strings.EqualFold(s, "nan") {
		return DefaultFor(field)
	}
	return s
}

// CleanTextUpper is CleanText with the result uppercased, used for
// organizational unit names.
func CleanTextUpper(value any, field string) string {
	return strings.ToUpper(CleanText(value, field))
}

// PlainText trims a raw cell without substituting a default.
func PlainText(value any) string {
	s := strings.TrimSpace(asString(value))
	if strings.EqualFold(s, "nan") {
		return ""
	}
	return s
}

const (
	SemaphoreRed    = "ROJO"
	SemaphoreYellow = "AMARILLO"
	SemaphoreGreen  = "VERDE"
)

// CleanSemaphore maps the many spellings of traffic-light states found in
// source files onto the three canonical values. Unknown input reads as green.
func CleanSemaphore(value any) string {
	switch Normalize(asString(value)) {
	case "rojo", "r", "red":
		return SemaphoreRed
	case "amarillo", "a", "yellow", "ambar":
		return SemaphoreYellow
	default:
		return SemaphoreGreen
	}
}
