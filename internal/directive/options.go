package directive

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ParseThresholdOption validates a wrap threshold coming from configuration.
// Integers, integral floats and numeric strings are accepted; anything else
// yields a *ConfigError quoting the value as received.
func ParseThresholdOption(v any) (int, error) {
	switch x := v.(type) {
	case int:
		if x < 0 {
			return 0, thresholdError(strconv.Itoa(x), "a non-negative integer")
		}
		return x, nil
	case int64:
		if x < 0 || x > math.MaxInt32 {
			return 0, thresholdError(strconv.FormatInt(x, 10), "a non-negative integer")
		}
		return int(x), nil
	case float64:
		if x != math.Trunc(x) || x < 0 || x > math.MaxInt32 {
			return 0, thresholdError(strconv.FormatFloat(x, 'g', -1, 64), "a non-negative integer")
		}
		return int(x), nil
	case string:
		s := strings.TrimSpace(x)
		if len(splitFields(s)) != 1 {
			return 0, thresholdError(x, "an integer")
		}
		return parseThreshold(s)
	default:
		return 0, thresholdError(fmt.Sprint(v), "an integer")
	}
}

// ParseElementsPerLineOption validates per-line counts coming from
// configuration: a string such as "1 2 3", a single integer or a list of
// integers.
func ParseElementsPerLineOption(v any) ([]int, error) {
	switch x := v.(type) {
	case string:
		return parseCounts(x, splitFields(x))
	case int:
		return ParseElementsPerLineOption([]any{int64(x)})
	case int64:
		return ParseElementsPerLineOption([]any{x})
	case []int:
		items := make([]any, len(x))
		for i, n := range x {
			items[i] = int64(n)
		}
		return ParseElementsPerLineOption(items)
	case []any:
		if len(x) == 0 {
			return nil, perLineError("")
		}
		counts := make([]int, 0, len(x))
		for _, item := range x {
			n, ok := item.(int64)
			if !ok || n <= 0 || n > math.MaxInt32 {
				return nil, perLineError(fmt.Sprint(item))
			}
			counts = append(counts, int(n))
		}
		return counts, nil
	default:
		return nil, perLineError(fmt.Sprint(v))
	}
}
