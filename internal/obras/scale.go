package obras

import (
	"math"
	"regexp"
	"strings"
)

// scaleCatalog maps the free-text levels found in the source sheets to the
// ordinal 1..5 scale. Scanned in order: longer keys first, so "alto" cannot
// misfire inside "muy alto".
var scaleCatalog = []struct {
	key   string
	score int
}{
	{"muy alto", 5},
	{"muy alta", 5},
	{"muy bajo", 1},
	{"muy baja", 1},
	{"crítica", 5},
	{"crítico", 5},
	{"critica", 5},
	{"critico", 5},
	{"urgente", 5},
	{"máximo", 5},
	{"maximo", 5},
	{"moderado", 3},
	{"regular", 3},
	{"medio", 3},
	{"media", 3},
	{"alto", 4},
	{"alta", 4},
	{"bajo", 2},
	{"baja", 2},
}

var (
	leadingScaleDigit    = regexp.MustCompile(`^([1-5])\b`)
	standaloneScaleDigit = regexp.MustCompile(`\b([1-5])\b`)
	dashVariants         = strings.NewReplacer("–", "-", "—", "-", "‐", "-", "_", " ")
)

// InterpretScale coerces a heterogeneous cell value into an ordinal score in
// [1,5]. Empty, unparseable or out-of-range input defaults to 1; the function
// never fails.
func InterpretScale(value any) int {
	if value == nil {
		return 1
	}

	if n, ok := asNumber(value); ok {
		rounded := math.Round(n)
		if math.Abs(n-rounded) < 1e-9 && rounded >= 1 && rounded <= 5 {
			return int(rounded)
		}
	}

	s := strings.ToLower(strings.TrimSpace(asString(value)))
	if s == "" || s == "nan" {
		return 1
	}
	s = dashVariants.Replace(s)

	if m := leadingScaleDigit.FindStringSubmatch(s); m != nil {
		return int(m[1][0] - '0')
	}

	for _, entry := range scaleCatalog {
		if strings.Contains(s, entry.key) {
			return entry.score
		}
	}

	if m := standaloneScaleDigit.FindStringSubmatch(s); m != nil {
		return int(m[1][0] - '0')
	}

	return 1
}
