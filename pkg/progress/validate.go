package progress

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	perrors "github.com/vango-dev/progressus/internal/errors"
)

// ValidateMax parses input as an integer and accepts it if it is positive.
// Strings are read up to the first non-digit ("12px" is 12) and floats are
// truncated.
func ValidateMax(input any) (float64, error) {
	n, ok := parseInteger(input)
	if !ok || n <= 0 {
		return 0, perrors.New("P004").WithInput(input)
	}
	return n, nil
}

// ValidateStart parses input as a number and accepts it if 0 <= n <= max.
func ValidateStart(input any, max float64) (float64, error) {
	n, ok := parseNumber(input)
	if !ok || n < 0 || n > max {
		return 0, perrors.New("P005").WithInput(input)
	}
	return n, nil
}

// ValidateFormatter accepts nil or a function of an Iteration. nil yields a
// nil Formatter so the caller can fall back to DefaultFormatter.
func ValidateFormatter(input any) (Formatter, error) {
	switch f := input.(type) {
	case nil:
		return nil, nil
	case Formatter:
		if f == nil {
			return nil, nil
		}
		return f, nil
	case func(Iteration) (string, error):
		if f == nil {
			return nil, nil
		}
		return f, nil
	case func(Iteration) string:
		if f == nil {
			return nil, nil
		}
		return func(it Iteration) (string, error) { return f(it), nil }, nil
	default:
		return nil, perrors.New("P006").WithInput(fmt.Sprintf("%T", input))
	}
}

// Unset reports whether an option value counts as absent and takes its
// default: nil, false, "", a zero or NaN number, or a nil function.
func Unset(v any) bool {
	switch x := v.(type) {
	case nil:
		return true
	case bool:
		return !x
	case string:
		return x == ""
	case float32:
		return x == 0 || math.IsNaN(float64(x))
	case float64:
		return x == 0 || math.IsNaN(x)
	case Formatter:
		return x == nil
	case func(Iteration) (string, error):
		return x == nil
	case func(Iteration) string:
		return x == nil
	}
	n, ok := numeric(v)
	return ok && n == 0
}

// PercentageOf returns value as a whole percentage of max, rounding halves
// up. value must be a number in [0, max].
func PercentageOf(value any, max float64) (int, error) {
	n, ok := parseNumber(value)
	if !ok || n < 0 || n > max {
		return 0, perrors.New("P009").WithMessage(calcPercentageMessage).WithInput(value)
	}
	return int(math.Floor(n/max*100 + 0.5)), nil
}

// parseInteger reads input the way a lenient integer parser would: numbers
// are truncated, strings are read from their leading integer prefix.
func parseInteger(input any) (float64, bool) {
	switch v := input.(type) {
	case string:
		s := strings.TrimSpace(v)
		end := 0
		if end < len(s) && (s[end] == '+' || s[end] == '-') {
			end++
		}
		digits := end
		for end < len(s) && s[end] >= '0' && s[end] <= '9' {
			end++
		}
		if end == digits {
			return 0, false
		}
		n, err := strconv.ParseFloat(s[:end], 64)
		if err != nil {
			return 0, false
		}
		return n, true
	default:
		n, ok := numeric(input)
		if !ok || math.IsInf(n, 0) {
			return 0, false
		}
		return math.Trunc(n), true
	}
}

// parseNumber reads input as a float. Strings are read from their longest
// leading numeric prefix ("6.5kg" is 6.5). NaN is rejected.
func parseNumber(input any) (float64, bool) {
	if s, ok := input.(string); ok {
		return parseFloatPrefix(strings.TrimSpace(s))
	}
	return numeric(input)
}

func parseFloatPrefix(s string) (float64, bool) {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	if strings.HasPrefix(s[i:], "Infinity") {
		if s[0] == '-' {
			return math.Inf(-1), true
		}
		return math.Inf(1), true
	}

	mantissa := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
		mantissa++
	}
	if i < len(s) && s[i] == '.' {
		i++
		for i < len(s) && s[i] >= '0' && s[i] <= '9' {
			i++
			mantissa++
		}
	}
	if mantissa == 0 {
		return 0, false
	}

	end := i
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		k := j
		for k < len(s) && s[k] >= '0' && s[k] <= '9' {
			k++
		}
		if k > j {
			end = k
		}
	}

	n, err := strconv.ParseFloat(s[:end], 64)
	if err != nil {
		// Only range errors reach here; ParseFloat returns ±Inf for them.
		if ne, ok := err.(*strconv.NumError); ok && ne.Err == strconv.ErrRange {
			return n, true
		}
		return 0, false
	}
	return n, true
}

// numeric converts Go number types to float64. NaN is rejected.
func numeric(input any) (float64, bool) {
	var n float64
	switch v := input.(type) {
	case int:
		n = float64(v)
	case int8:
		n = float64(v)
	case int16:
		n = float64(v)
	case int32:
		n = float64(v)
	case int64:
		n = float64(v)
	case uint:
		n = float64(v)
	case uint8:
		n = float64(v)
	case uint16:
		n = float64(v)
	case uint32:
		n = float64(v)
	case uint64:
		n = float64(v)
	case float32:
		n = float64(v)
	case float64:
		n = v
	default:
		return 0, false
	}
	if math.IsNaN(n) {
		return 0, false
	}
	return n, true
}

func formatNumber(n float64) string {
	return strconv.FormatFloat(n, 'f', -1, 64)
}
