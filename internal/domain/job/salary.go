package job

import (
	"strconv"
	"strings"
)

const salarySeparator = " - "

// SalaryRange holds parsed bounds. A nil bound means the display string could
// not be parsed.
type SalaryRange struct {
	Min *int
	Max *int
}

func (r SalaryRange) Valid() bool {
	return r.Min != nil && r.Max != nil && *r.Min <= *r.Max
}

// ParseSalaryRange parses display strings such as "70000 - 100000" or
// "$70,000 - $100,000". Each side is stripped of non-digits.
func ParseSalaryRange(s string) SalaryRange {
	parts := strings.SplitN(s, salarySeparator, 2)
	if len(parts) != 2 {
		return SalaryRange{}
	}
	lo, ok := parseSalaryBound(parts[0])
	if !ok {
		return SalaryRange{}
	}
	hi, ok := parseSalaryBound(parts[1])
	if !ok {
		return SalaryRange{}
	}
	return SalaryRange{Min: &lo, Max: &hi}
}

func parseSalaryBound(s string) (int, bool) {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, s)
	if digits == "" {
		return 0, false
	}
	v, err := strconv.Atoi(digits)
	if err != nil {
		return 0, false
	}
	return v, true
}
