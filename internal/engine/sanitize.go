package engine

import (
	"fmt"
	"math"
)

// Shared field sanitisers. Every correction of a raw input value emits a
// Danish warning describing what was wrong and what was substituted; the
// engine never rejects input (see ModuleResult contract).

// nonNegative coerces an optional numeric field to a safe non-negative
// value. warnMissing gates the missing-field warning: it is true only when
// some sibling field in the same record/row was present.
func nonNegative(v *float64, field string, warnings *[]string, warnMissing bool) float64 {
	if v == nil || math.IsNaN(*v) || math.IsInf(*v, 0) {
		if warnMissing {
			*warnings = append(*warnings, fmt.Sprintf("Feltet %s mangler og sættes til 0.", field))
		}
		return 0
	}
	if *v < 0 {
		*warnings = append(*warnings, fmt.Sprintf("Feltet %s kan ikke være negativt. 0 anvendes i stedet.", field))
		return 0
	}
	return *v
}

// bounded is nonNegative with an upper cap, used for percent-typed fields.
func bounded(v *float64, field string, max float64, warnings *[]string, warnMissing bool) float64 {
	n := nonNegative(v, field, warnings, warnMissing)
	if v != nil && !math.IsNaN(*v) && !math.IsInf(*v, 0) && n > max {
		*warnings = append(*warnings, fmt.Sprintf("Feltet %s er begrænset til %s%%.", field, num(max)))
		return max
	}
	return n
}

// quality resolves a documentation-quality percent. Missing values take the
// module default (normally 100) with a warning when warnMissing is set.
// Values below the advisory threshold additionally emit a non-corrective
// warning naming the subject; this fires even when no clamp was needed.
func quality(v *float64, field string, def, threshold float64, subject string, warnings *[]string, warnMissing bool) float64 {
	var resolved float64
	if v == nil || math.IsNaN(*v) || math.IsInf(*v, 0) {
		if warnMissing {
			*warnings = append(*warnings, fmt.Sprintf("Feltet %s mangler. Standarden (%s%%) anvendes.", field, num(def)))
		}
		resolved = def
	} else {
		resolved = bounded(v, field, 100, warnings, warnMissing)
	}
	if resolved < threshold {
		*warnings = append(*warnings, fmt.Sprintf(
			"Dokumentationskvaliteten for %s er %s%% og under den anbefalede grænse på %s%%. Forbedr dokumentationen.",
			subject, num(resolved), num(threshold)))
	}
	return resolved
}

// resolveEnum maps an optional categorical field onto a closed value set.
// A missing value silently takes the fallback; an unrecognised value takes
// the fallback with a warning. line is 1-indexed for row-based modules and
// 0 for single-record modules.
func resolveEnum(v *string, valid map[string]string, fallback, category string, line int, warnings *[]string) string {
	if v == nil || *v == "" {
		return fallback
	}
	if _, ok := valid[*v]; ok {
		return *v
	}
	if line > 0 {
		*warnings = append(*warnings, fmt.Sprintf("Ukendt %s på linje %d. Standard (%s) anvendes.", category, line, valid[fallback]))
	} else {
		*warnings = append(*warnings, fmt.Sprintf("Ukendt %s. Standard (%s) anvendes.", category, valid[fallback]))
	}
	return fallback
}

// warnExcludedLine records that a sanitised row contributes nothing and is
// dropped from the calculation.
func warnExcludedLine(warnings *[]string, line int) {
	*warnings = append(*warnings, fmt.Sprintf("Linje %d bidrager ikke til beregningen og udelades.", line))
}

// warnNoValidLines is the terminal structural warning for row-based modules
// where input rows existed but none survived sanitisation.
func warnNoValidLines(warnings *[]string) {
	*warnings = append(*warnings, "Ingen gyldige linjer kunne beregnes. Kontrollér indtastningerne.")
}

// warnCapped records a cross-field inconsistency where one quantity was
// clamped to its logical counterpart.
func warnCapped(warnings *[]string, subject, cap string) {
	*warnings = append(*warnings, fmt.Sprintf("%s kan ikke overstige %s og er begrænset hertil.", subject, cap))
}
