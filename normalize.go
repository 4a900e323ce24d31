package kubetags

import (
	"strconv"
	"strings"
)

// trimV strips a single leading "v" or "V".
func trimV(s string) string {
	if len(s) > 0 && (s[0] == 'v' || s[0] == 'V') {
		return s[1:]
	}

	return s
}

// splitCore validates a numeric core X / X.Y / X.Y.Z (without "v") and returns
// its components. A non-empty reason is returned for invalid input.
func splitCore(core string) ([]int, string) {
	if core == "" {
		return nil, "empty version"
	}

	m := coreRe.FindStringSubmatch(core)
	if m == nil {
		return nil, "expected 1 to 3 dot-separated non-negative integers"
	}

	parts := make([]int, 0, 3)
	for _, s := range m[1:] {
		if s == "" {
			break
		}

		n, err := strconv.Atoi(s)
		if err != nil {
			return nil, "component " + s + " is out of range"
		}
		parts = append(parts, n)
	}

	return parts, ""
}

// normalizeCore expands X / X.Y into a full X.Y.Z string for comparison.
// Leading zeros are dropped, so "01.2" and "1.2.0" normalize to the same value.
func normalizeCore(parts []int) string {
	var b strings.Builder
	for i := 0; i < 3; i++ {
		if i > 0 {
			b.WriteByte('.')
		}

		n := 0
		if i < len(parts) {
			n = parts[i]
		}
		b.WriteString(strconv.Itoa(n))
	}

	return b.String()
}
