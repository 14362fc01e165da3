package electrical

import (
	"math"
	"strconv"
	"strings"
)

// minPlausibleEfficiencyPct is the lowest efficiency accepted as a
// full-load figure. Descriptors stating less than this describe
// partial-load behavior; scaling the rated power by such a figure would
// be physically wrong, so the adjustment becomes a no-op instead.
const minPlausibleEfficiencyPct = 95.0

// PVSPowerAdjustment scales a PV system's power pW by the efficiency its
// descriptor states for full load. A descriptor holds one or two
// breakpoints separated by ";", each an optional per-unit load range
// followed by an efficiency percentage, for example
// "0,1 pu: 93 %; 1 pu: 97 %" or "0,1..1 pu: 95 %", or a single flat
// percentage like "100 %". Decimal commas are tolerated.
//
// Only the breakpoint applicable at full load (a pu range ending at 1, or
// the flat percentage) scales pW. An efficiency below the plausibility
// threshold is treated as a partial-load figure and leaves pW unchanged.
// An empty or unparseable descriptor yields NaN.
func PVSPowerAdjustment(pW float64, efficiencyType string) float64 {
	pct, ok := fullLoadEfficiencyPct(efficiencyType)
	if !ok {
		return math.NaN()
	}
	if pct < minPlausibleEfficiencyPct {
		return pW
	}
	return pW * pct / 100.0
}

// fullLoadEfficiencyPct extracts the efficiency percentage applicable at
// full load. A breakpoint with a pu range ending at 1 wins over a flat
// percentage without any pu marker.
func fullLoadEfficiencyPct(descriptor string) (float64, bool) {
	flat := 0.0
	haveFlat := false

	for _, clause := range strings.Split(descriptor, ";") {
		clause = strings.TrimSpace(clause)
		if clause == "" {
			continue
		}

		loadRange, pctPart, hasRange := strings.Cut(clause, "pu:")
		if !hasRange {
			if pct, err := parsePercentage(clause); err == nil {
				flat = pct
				haveFlat = true
			}
			continue
		}

		if !rangeEndsAtFullLoad(loadRange) {
			continue
		}
		if pct, err := parsePercentage(pctPart); err == nil {
			return pct, true
		}
	}

	return flat, haveFlat
}

// rangeEndsAtFullLoad reports whether a per-unit load range such as "1",
// "0,1" or "0,1..1" ends at a load fraction of exactly 1.
func rangeEndsAtFullLoad(loadRange string) bool {
	s := strings.ReplaceAll(strings.TrimSpace(loadRange), ",", ".")
	if i := strings.LastIndex(s, ".."); i >= 0 {
		s = s[i+2:]
	}
	end, err := strconv.ParseFloat(s, 64)
	return err == nil && end == 1.0
}

func parsePercentage(s string) (float64, error) {
	s = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s), "%"))
	s = strings.ReplaceAll(s, ",", ".")
	return strconv.ParseFloat(s, 64)
}
