package cssvalue

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
)

// ParseOffset parses a single keyframe selector: "from", "to" or a
// percentage between 0% and 100% inclusive.
func ParseOffset(s string) (float64, error) {
	s = strings.TrimSpace(s)
	switch strings.ToLower(s) {
	case "from":
		return 0, nil
	case "to":
		return 100, nil
	}

	num, ok := strings.CutSuffix(s, "%")
	if !ok {
		return 0, fmt.Errorf("offset %q must be from, to or a percentage", s)
	}

	pct, err := strconv.ParseFloat(num, 64)
	if err != nil || math.IsNaN(pct) || math.IsInf(pct, 0) {
		return 0, fmt.Errorf("offset %q is not a number", s)
	}
	if pct < 0 || pct > 100 {
		return 0, fmt.Errorf("offset %q is outside 0%%..100%%", s)
	}
	return pct, nil
}

// ParseOffsets parses a keyframe selector list such as "0%, 50%".
func ParseOffsets(s string) ([]float64, error) {
	parts := strings.Split(s, ",")
	offsets := make([]float64, 0, len(parts))
	for _, part := range parts {
		pct, err := ParseOffset(part)
		if err != nil {
			return nil, err
		}
		offsets = append(offsets, pct)
	}
	return offsets, nil
}

// SortOffsets orders keyframe selectors by their first percentage.
// Selectors that do not parse sort last, alphabetically.
func SortOffsets(keys []string) {
	first := func(k string) (float64, bool) {
		offsets, err := ParseOffsets(k)
		if err != nil {
			return 0, false
		}
		return offsets[0], true
	}

	sort.SliceStable(keys, func(i, j int) bool {
		pi, oki := first(keys[i])
		pj, okj := first(keys[j])
		switch {
		case oki && okj && pi != pj:
			return pi < pj
		case oki != okj:
			return oki
		default:
			return keys[i] < keys[j]
		}
	})
}
