package obras

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"
)

// excelEpoch is the base date for Excel day-count serials (serial 1 is
// 1899-12-31, accounting for the historical Lotus leap-year bug).
var excelEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

var monthNumbers = map[string]time.Month{
	"enero": time.January, "ene": time.January, "january": time.January, "jan": time.January,
	"febrero": time.February, "feb": time.February, "february": time.February,
	"marzo": time.March, "mar": time.March, "march": time.March,
	"abril": time.April, "abr": time.April, "april": time.April, "apr": time.April,
	"mayo": time.May, "may": time.May,
	"junio": time.June, "jun": time.June, "june": time.June,
	"julio": time.July, "jul": time.July, "july": time.July,
	"agosto": time.August, "ago": time.August, "august": time.August, "aug": time.August,
	"septiembre": time.September, "sep": time.September, "september": time.September, "sept": time.September,
	"octubre": time.October, "oct": time.October, "october": time.October,
	"noviembre": time.November, "nov": time.November, "november": time.November,
	"diciembre": time.December, "dic": time.December, "december": time.December, "dec": time.December,
}

func monthAlternation() string {
	names := make([]string, 0, len(monthNumbers))
	for name := range monthNumbers {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if len(names[i]) != len(names[j]) {
			return len(names[i]) > len(names[j])
		}
		return names[i] < names[j]
	})
	return strings.Join(names, "|")
}

var (
	monthYearPattern    = regexp.MustCompile(`\b(` + monthAlternation() + `)\b\s+(\d{2,4})\b`)
	dayMonthYearPattern = regexp.MustCompile(`\b(\d{1,2})\s+(?:de\s+)?(` + monthAlternation() + `)\b\s+(?:de\s+)?(\d{2,4})\b`)
	digitRuns           = regexp.MustCompile(`\d+`)
	isoShapePattern     = regexp.MustCompile(`^\d{4}[-/]\d{1,2}[-/]\d{1,2}$`)
	latinShapePattern   = regexp.MustCompile(`^\d{1,2}[-/.]\d{1,2}[-/.]\d{4}$`)
)

var fallbackLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"20060102",
	"Jan 2, 2006",
	"2 Jan 2006",
}

// ParseDate coerces a raw cell into a calendar date. The cascade tries, in
// order: Excel day-count serials, native date values, Spanish/English
// "month year" and "day de month de year" phrases, loose numeric-token
// extraction, fixed separator formats and a small set of generic layouts.
// Anything unparseable reports ok=false; the function never fails.
func ParseDate(value any) (time.Time, bool) {
	if value == nil || isEmptyCell(value) {
		return time.Time{}, false
	}

	if n, ok := asNumber(value); ok {
		d := excelEpoch.Add(time.Duration(n * float64(24*time.Hour)))
		return dateOnly(d), true
	}

	if t, ok := value.(time.Time); ok {
		return dateOnly(t), true
	}

	s := strings.ToLower(strings.TrimSpace(asString(value)))

	// CSV cells carry serials as text
	if n, err := strconv.ParseFloat(s, 64); err == nil {
		d := excelEpoch.Add(time.Duration(n * float64(24*time.Hour)))
		return dateOnly(d), true
	}

	// "abril 2026", "mayo 26", day defaults to 1
	if m := monthYearPattern.FindStringSubmatch(s); m != nil {
		year, err := strconv.Atoi(m[2])
		if err == nil {
			return time.Date(expandYear(year), monthNumbers[m[1]], 1, 0, 0, 0, 0, time.UTC), true
		}
	}

	// "28 de noviembre de 2025", "3 de marzo de 24"
	if m := dayMonthYearPattern.FindStringSubmatch(s); m != nil {
		day, errD := strconv.Atoi(m[1])
		year, errY := strconv.Atoi(m[3])
		if errD == nil && errY == nil && day >= 1 && day <= 31 {
			return clampedDate(expandYear(year), monthNumbers[m[2]], day), true
		}
	}

	// Loose numeric tokens: the first token >31 is the year, the first
	// remaining token in [1,12] is the month, any leftover in [1,31] is the
	// day (default 1).
	if d, ok := dateFromTokens(s); ok {
		return d, true
	}

	if isoShapePattern.MatchString(s) {
		for _, layout := range []string{"2006-1-2", "2006/1/2"} {
			if t, err := time.Parse(layout, s); err == nil {
				return dateOnly(t), true
			}
		}
	}
	if latinShapePattern.MatchString(s) {
		for _, layout := range []string{"2/1/2006", "2-1-2006", "2.1.2006", "1/2/2006"} {
			if t, err := time.Parse(layout, s); err == nil {
				return dateOnly(t), true
			}
		}
	}

	for _, layout := range fallbackLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return dateOnly(t), true
		}
	}

	return time.Time{}, false
}

func dateFromTokens(s string) (time.Time, bool) {
	runs := digitRuns.FindAllString(s, -1)
	if len(runs) < 2 {
		return time.Time{}, false
	}

	nums := make([]int, 0, len(runs))
	for _, r := range runs {
		n, err := strconv.Atoi(r)
		if err != nil {
			continue
		}
		nums = append(nums, n)
	}

	year := 0
	for i, n := range nums {
		if n > 31 {
			year = expandYear(n)
			nums = append(nums[:i], nums[i+1:]...)
			break
		}
	}

	month := 0
	for i, n := range nums {
		if n >= 1 && n <= 12 {
			month = n
			nums = append(nums[:i], nums[i+1:]...)
			break
		}
	}

	if year == 0 || month == 0 {
		return time.Time{}, false
	}

	day := 1
	if len(nums) > 0 && nums[0] >= 1 && nums[0] <= 31 {
		day = nums[0]
	}
	return clampedDate(year, time.Month(month), day), true
}

// clampedDate builds a date, falling back to day 1 when the day does not
// exist in the resolved month (e.g. 31/02) instead of rolling over.
func clampedDate(year int, month time.Month, day int) time.Time {
	d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	if d.Month() != month {
		return time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	}
	return d
}

// expandYear maps 2-digit years: <50 to 20xx, >=50 to 19xx.
func expandYear(year int) int {
	if year >= 100 {
		return year
	}
	if year < 50 {
		return 2000 + year
	}
	return 1900 + year
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
