package obras

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

var (
	moneySymbols   = strings.NewReplacer("$", "", ",", "", " ", "")
	firstDecimal   = regexp.MustCompile(`(\d+(\.\d+)?)`)
	millionAbbrev  = regexp.MustCompile(`\d+\s*m\b`)
	thousandAbbrev = regexp.MustCompile(`\d+\s*k\b`)
)

// CleanMoney strips currency symbols and thousands separators and returns the
// amount rounded to 2 decimals. Figures captured in MDP (millones de pesos)
// are scaled to pesos. Unparseable or negative input yields 0.
func CleanMoney(value any, isMDP bool) float64 {
	s := moneySymbols.Replace(strings.TrimSpace(asString(value)))
	if s == "" {
		return 0
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) || n < 0 {
		return 0
	}
	if isMDP {
		n *= 1_000_000
	}
	return math.Round(n*100) / 100
}

// CleanPercentage normalizes a progress value to the 0-100 scale. Values in
// (0,1] are treated as fractions ("0.5" means 50%), so a literal "1%" is
// indistinguishable from the fraction 1 = 100%; that loss is an accepted
// convention of the source sheets. The result is clamped into [0,100].
func CleanPercentage(value any) float64 {
	s := strings.TrimSpace(strings.ReplaceAll(asString(value), "%", ""))
	if s == "" {
		return 0
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
		return 0
	}
	if n > 0 && n <= 1 {
		n *= 100
	}
	if n < 0 {
		return 0
	}
	if n > 100 {
		return 100
	}
	return n
}

// CleanBeneficiaries extracts a people count from free text, honoring
// magnitude words and abbreviations: "2.5 millones" -> 2500000,
// "10k" -> 10000, "1.2 miles de millones" -> 1200000000. Plain words such as
// "500 personas" keep their literal number. No number at all yields 0.
func CleanBeneficiaries(value any) int64 {
	text := strings.ToLower(asString(value))
	text = strings.ReplaceAll(text, ",", "")
	text = strings.ReplaceAll(text, "ó", "o")
	text = strings.TrimSpace(text)
	if text == "" {
		return 0
	}

	factor := 1.0
	switch {
	case strings.Contains(text, "miles de millones") ||
		strings.Contains(text, "billones") ||
		strings.Contains(text, "mmd"):
		factor = 1_000_000_000
	case strings.Contains(text, "millon") || millionAbbrev.MatchString(text):
		factor = 1_000_000
	case strings.Contains(text, "mil") || thousandAbbrev.MatchString(text):
		factor = 1_000
	}

	m := firstDecimal.FindString(text)
	if m == "" {
		return 0
	}
	n, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return 0
	}
	return int64(n * factor)
}
