package procfs

import (
	"math"
	"strconv"
	"strings"
)

// ParseInt parses a decimal integer token. Kernel text occasionally
// carries trailing units or garbage; anything that is not a clean
// integer parses to zero instead of failing.
func ParseInt(s string) int64 {
	v, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0
	}
	return v
}

// ParseFloat is the floating point counterpart of ParseInt. "inf" and
// "nan" are not numbers the kernel prints and parse to zero.
func ParseFloat(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
		return 0
	}
	return v
}

// IsNumeric reports whether name is non-empty and made only of ASCII
// digits, which is how task directories are told apart from the rest
// of the procfs root.
func IsNumeric(name string) bool {
	if name == "" {
		return false
	}
	for i := 0; i < len(name); i++ {
		if name[i] < '0' || name[i] > '9' {
			return false
		}
	}
	return true
}

// Lines splits data into lines without the trailing newline. A final
// line with no newline is still returned.
func Lines(data []byte) []string {
	text := strings.TrimSuffix(string(data), "\n")
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}
