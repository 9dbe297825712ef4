package engine

import (
	"math"
	"strconv"
)

// kgToTonnes converts accumulated kilogram totals to the tonne headline value.
const kgToTonnes = 0.001

// round rounds half away from zero at the given number of decimals and
// normalises -0 to 0 so credit modules never report a negative zero.
func round(v float64, decimals int) float64 {
	p := math.Pow(10, float64(decimals))
	r := math.Round(v*p) / p
	if r == 0 {
		return 0
	}
	return r
}

// finite guards a computed value against NaN/Inf, substituting 0.
func finite(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// safeDiv divides a by b, returning 0 when b is zero or the result would
// not be finite.
func safeDiv(a, b float64) float64 {
	if b == 0 {
		return 0
	}
	return finite(a / b)
}

// num renders a float with the minimal number of digits. Trace lines are a
// golden-test contract, so formatting must be byte-stable and locale-free.
func num(v float64) string {
	if v == 0 {
		return "0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// fixed renders a float with a fixed number of decimals.
func fixed(v float64, decimals int) string {
	return strconv.FormatFloat(v, 'f', decimals, 64)
}

// traceNum appends a "key=value" diagnostic line.
func traceNum(tr *[]string, key string, v float64) {
	*tr = append(*tr, key+"="+num(v))
}

// traceFixed appends a "key=value" line with fixed decimals.
func traceFixed(tr *[]string, key string, v float64, decimals int) {
	*tr = append(*tr, key+"="+fixed(v, decimals))
}

// traceStr appends a "key=value" line for a string value.
func traceStr(tr *[]string, key, v string) {
	*tr = append(*tr, key+"="+v)
}

func fval(p *float64) float64 {
	if p == nil {
		return 0
	}
	return *p
}

func sval(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func bval(p *bool) bool {
	if p == nil {
		return false
	}
	return *p
}

// present reports whether at least one optional field in a record was set.
// It gates missing-field warnings: a wholly blank record stays silent.
func present(fields ...bool) bool {
	for _, f := range fields {
		if f {
			return true
		}
	}
	return false
}
