package engine

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func fptr(v float64) *float64 { return &v }
func sptr(v string) *string   { return &v }
func bptr(v bool) *bool       { return &v }

func TestNonNegative(t *testing.T) {
	tests := []struct {
		name        string
		value       *float64
		warnMissing bool
		want        float64
		wantWarns   int
	}{
		{"valid value", fptr(42.5), true, 42.5, 0},
		{"missing with flag", nil, true, 0, 1},
		{"missing without flag", nil, false, 0, 0},
		{"negative", fptr(-10), true, 0, 1},
		{"nan", fptr(math.NaN()), true, 0, 1},
		{"inf", fptr(math.Inf(1)), false, 0, 0},
		{"zero", fptr(0), true, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var warnings []string
			got := nonNegative(tt.value, "testfelt", &warnings, tt.warnMissing)
			assert.Equal(t, tt.want, got)
			assert.Len(t, warnings, tt.wantWarns)
		})
	}
}

func TestBounded(t *testing.T) {
	var warnings []string
	got := bounded(fptr(130), "andel", 100, &warnings, true)
	assert.Equal(t, 100.0, got)
	assert.Equal(t, []string{"Feltet andel er begrænset til 100%."}, warnings)

	// Already-clamped values produce no corrective warning.
	warnings = nil
	got = bounded(fptr(100), "andel", 100, &warnings, true)
	assert.Equal(t, 100.0, got)
	assert.Empty(t, warnings)
}

func TestQuality(t *testing.T) {
	tests := []struct {
		name        string
		value       *float64
		warnMissing bool
		want        float64
		wantWarns   []string
	}{
		{
			name:        "missing takes default with warning",
			value:       nil,
			warnMissing: true,
			want:        100,
			wantWarns:   []string{"Feltet dok mangler. Standarden (100%) anvendes."},
		},
		{
			name:        "missing silent without flag",
			value:       nil,
			warnMissing: false,
			want:        100,
			wantWarns:   nil,
		},
		{
			name:        "below threshold advisory fires without clamp",
			value:       fptr(45),
			warnMissing: true,
			want:        45,
			wantWarns: []string{
				"Dokumentationskvaliteten for emnet er 45% og under den anbefalede grænse på 60%. Forbedr dokumentationen.",
			},
		},
		{
			name:        "valid above threshold",
			value:       fptr(90),
			warnMissing: true,
			want:        90,
			wantWarns:   nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var warnings []string
			got := quality(tt.value, "dok", 100, lowDocThresholdPercent, "emnet", &warnings, tt.warnMissing)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantWarns, warnings)
		})
	}
}

func TestResolveEnum(t *testing.T) {
	valid := map[string]string{"road": "Vejtransport", "rail": "Jernbane"}

	var warnings []string
	got := resolveEnum(sptr("hyperloop"), valid, "road", "transportform", 2, &warnings)
	assert.Equal(t, "road", got)
	assert.Equal(t, []string{"Ukendt transportform på linje 2. Standard (Vejtransport) anvendes."}, warnings)

	warnings = nil
	got = resolveEnum(nil, valid, "rail", "transportform", 1, &warnings)
	assert.Equal(t, "rail", got)
	assert.Empty(t, warnings)

	warnings = nil
	got = resolveEnum(sptr("hyperloop"), valid, "road", "transportform", 0, &warnings)
	assert.Equal(t, "road", got)
	assert.Equal(t, []string{"Ukendt transportform. Standard (Vejtransport) anvendes."}, warnings)
}

func TestRound(t *testing.T) {
	assert.Equal(t, 2.391, round(2.3905, 3))
	assert.Equal(t, -2.391, round(-2.3905, 3))
	assert.Equal(t, 0.0, round(-0.0001, 3))
	assert.False(t, math.Signbit(round(-0.0000001, 3)))
}

func TestNum(t *testing.T) {
	assert.Equal(t, "0", num(0))
	assert.Equal(t, "4740", num(4740))
	assert.Equal(t, "2.68", num(2.68))
}
