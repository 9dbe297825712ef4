package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRunB1(t *testing.T) {
	tests := []struct {
		name       string
		input      *B1Input
		want       float64
		wantMethod string
	}{
		{
			name: "location based by default",
			input: &B1Input{
				ElectricityKwh:              fptr(10000),
				DocumentationQualityPercent: fptr(90),
			},
			want:       1.35,
			wantMethod: "method=locationBased",
		},
		{
			name: "market based uses residual mix",
			input: &B1Input{
				ElectricityKwh:              fptr(10000),
				UseMarketBasedMethod:        bptr(true),
				DocumentationQualityPercent: fptr(90),
			},
			want:       4.7,
			wantMethod: "method=marketBased",
		},
		{
			name:       "nil input is zero",
			input:      nil,
			want:       0,
			wantMethod: "method=locationBased",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := runB1(&ModuleInput{B1: tt.input})
			assert.Equal(t, tt.want, res.Value)
			assert.Contains(t, res.Trace, tt.wantMethod)
		})
	}
}

func TestRunB2SurplusHeat(t *testing.T) {
	res := runB2(&ModuleInput{B2: &B2Input{
		DistrictHeatKwh:             fptr(100000),
		SurplusHeatSharePercent:     fptr(50),
		DocumentationQualityPercent: fptr(90),
	}})

	assert.Equal(t, 3.85, res.Value)
	assert.Contains(t, res.Trace, "surplusHeatReductionKg=3150")
	assert.Contains(t, res.Trace, "totalEmissionsKg=3850")
	assert.Empty(t, res.Warnings)
}

func TestRunB3ShareSumCapped(t *testing.T) {
	res := runB3(&ModuleInput{B3: &B3Input{
		CoolingConsumptionKwh:         fptr(10000),
		FreeCoolingSharePercent:       fptr(70),
		AbsorptionCoolingSharePercent: fptr(50),
		DocumentationQualityPercent:   fptr(90),
	}})

	assert.Equal(t, []string{
		"Summen af frikølings- og absorptionsandelen kan ikke overstige 100% og er begrænset hertil.",
	}, res.Warnings)
	assert.Contains(t, res.Trace, "absorptionCoolingSharePercent=30")
	assert.Equal(t, 0.36, res.Value)
}

func TestRunB4CondensateRecovery(t *testing.T) {
	res := runB4(&ModuleInput{B4: &B4Input{
		SteamKwh:                       fptr(50000),
		CondensateRecoverySharePercent: fptr(40),
		DocumentationQualityPercent:    fptr(90),
	}})

	// 9000 kg gross minus 40% share at 70% effect.
	assert.Equal(t, 6.48, res.Value)
	assert.Contains(t, res.Trace, "condensateRecoveryReductionKg=2520")
}

func TestRunB5ChargingLoss(t *testing.T) {
	res := runB5(&ModuleInput{B5: &B5Input{
		ChargedKwh:                  fptr(10000),
		DocumentationQualityPercent: fptr(90),
	}})

	assert.Equal(t, 1.485, res.Value)
	assert.Contains(t, res.Trace, "effectiveKwh=11000")
}

func TestRunB6(t *testing.T) {
	tests := []struct {
		name      string
		input     *B6Input
		want      float64
		wantTrace string
		wantWarns []string
	}{
		{
			name: "default loss share",
			input: &B6Input{
				ElectricityKwh:              fptr(100000),
				DocumentationQualityPercent: fptr(90),
			},
			want:      0.675,
			wantTrace: "gridLossPercent=5",
		},
		{
			name: "reported loss capped at maximum",
			input: &B6Input{
				ElectricityKwh:              fptr(100000),
				GridLossPercent:             fptr(20),
				DocumentationQualityPercent: fptr(90),
			},
			want:      2.025,
			wantTrace: "gridLossPercent=15",
			wantWarns: []string{"Feltet gridLossPercent er begrænset til 15%."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := runB6(&ModuleInput{B6: tt.input})
			assert.Equal(t, tt.want, res.Value)
			assert.Contains(t, res.Trace, tt.wantTrace)
			if tt.wantWarns == nil {
				assert.Empty(t, res.Warnings)
			} else {
				assert.Equal(t, tt.wantWarns, res.Warnings)
			}
		})
	}
}
