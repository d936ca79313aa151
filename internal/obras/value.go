package obras

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// asString renders a raw cell value for text analysis. Numeric cells keep
// their shortest decimal form ("3" rather than "3.000000").
func asString(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return ""
		}
		return strconv.FormatFloat(v, 'f', -1, 64)
	case float32:
		return asString(float64(v))
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// asNumber reports the numeric value of a cell when it already carries one.
// Booleans are deliberately not numbers here.
func asNumber(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, false
		}
		return v, true
	case float32:
		return asNumber(float64(v))
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	}
	return 0, false
}

func isEmptyCell(value any) bool {
	return strings.TrimSpace(asString(value)) == ""
}
