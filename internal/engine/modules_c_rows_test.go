package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRunC9Screening(t *testing.T) {
	res := runC9(&ModuleInput{C9: &C9Input{ScreeningLines: []*ScreeningLineInput{
		{
			Category:                    sptr("services"),
			SpendDkk:                    fptr(1000000),
			DocumentationQualityPercent: fptr(90),
		},
		{
			Category:                    sptr("travel"),
			SpendDkk:                    fptr(100000),
			DocumentationQualityPercent: fptr(90),
		},
	}}})

	assert.Equal(t, 0.145, res.Value)
	assert.Contains(t, res.Trace, "line1.emissionsKg=120")
	assert.Contains(t, res.Trace, "line2.category=other")
	assert.Equal(t, []string{
		"Ukendt indkøbskategori på linje 2. Standard (Øvrigt) anvendes.",
	}, res.Warnings)
}

func TestRunC10LeasedAssets(t *testing.T) {
	res := runC10(&ModuleInput{C10: &LeasedAssetsInput{LeasedAssetLines: []*LeasedAssetLineInput{
		{
			EnergyType:                  sptr("electricity"),
			EnergyConsumptionKwh:        fptr(10000),
			EmissionFactorKgPerKwh:      fptr(0.135),
			DocumentationQualityPercent: fptr(90),
		},
		{
			EnergyType:                  sptr("districtHeat"),
			FloorAreaSqm:                fptr(200),
			EmissionFactorKey:           sptr("districtHeat"),
			DocumentationQualityPercent: fptr(85),
		},
	}}})

	assert.Equal(t, 2.68, res.Value)
	assert.Contains(t, res.Trace, "line1.basis=reported")
	assert.Contains(t, res.Trace, "line2.basis=areaDerived")
	assert.Contains(t, res.Trace, "line2.energyConsumptionKwh=19000")
	assert.Contains(t, res.Trace, "totalEmissionsKg=2680")
	assert.Empty(t, res.Warnings)
}

func TestRunC10FactorKeyMismatch(t *testing.T) {
	res := runC10(&ModuleInput{C10: &LeasedAssetsInput{LeasedAssetLines: []*LeasedAssetLineInput{
		{
			EnergyType:                  sptr("electricity"),
			EnergyConsumptionKwh:        fptr(10000),
			EmissionFactorKey:           sptr("districtHeat"),
			DocumentationQualityPercent: fptr(90),
		},
	}}})

	assert.Equal(t, []string{
		"Faktornøglen på linje 1 matcher ikke energitypen. Standardfaktoren for Elektricitet anvendes.",
	}, res.Warnings)
	assert.Contains(t, res.Trace, "line1.emissionFactorKgPerKwh=0.135")
	assert.Equal(t, 1.35, res.Value)
}

func TestRunC11SharesLeasedAssetPipeline(t *testing.T) {
	in := &LeasedAssetsInput{LeasedAssetLines: []*LeasedAssetLineInput{
		{
			EnergyType:                  sptr("naturalGas"),
			EnergyConsumptionKwh:        fptr(5000),
			EmissionFactorKgPerKwh:      fptr(0.204),
			DocumentationQualityPercent: fptr(90),
		},
	}}
	upstream := runC10(&ModuleInput{C10: in})
	downstream := runC11(&ModuleInput{C11: in})
	assert.Equal(t, upstream.Value, downstream.Value)
	assert.Equal(t, 1.02, downstream.Value)
}

func TestRunC12Franchises(t *testing.T) {
	res := runC12(&ModuleInput{C12: &C12Input{FranchiseLines: []*FranchiseLineInput{
		{
			Name:                        sptr("Kæde Nord"),
			Outlets:                     fptr(2),
			DocumentationQualityPercent: fptr(90),
		},
		{
			Name:                        sptr("Kæde Syd"),
			EnergyConsumptionKwh:        fptr(10000),
			DocumentationQualityPercent: fptr(90),
		},
	}}})

	assert.Equal(t, 25.35, res.Value)
	assert.Contains(t, res.Trace, "line1.basis=outletDerived")
	assert.Contains(t, res.Trace, "line1.emissionsKg=24000")
	assert.Contains(t, res.Trace, "line2.basis=reported")
	assert.Contains(t, res.Trace, "line2.emissionsKg=1350")
}

func TestRunC13EquityShare(t *testing.T) {
	res := runC13(&ModuleInput{C13: &C13Input{InvestmentLines: []*InvestmentLineInput{
		{
			InvesteeName:                sptr("Vindpark ApS"),
			EquitySharePercent:          fptr(25),
			InvesteeEmissionsTonnes:     fptr(1000),
			DocumentationQualityPercent: fptr(90),
		},
	}}})

	assert.Equal(t, 250.0, res.Value)
	assert.Contains(t, res.Trace, "line1.emissionsKg=250000")
	assert.Empty(t, res.Warnings)
}

func TestRunC13ShareCapped(t *testing.T) {
	res := runC13(&ModuleInput{C13: &C13Input{InvestmentLines: []*InvestmentLineInput{
		{
			InvesteeName:                sptr("Vindpark ApS"),
			EquitySharePercent:          fptr(120),
			InvesteeEmissionsTonnes:     fptr(100),
			DocumentationQualityPercent: fptr(90),
		},
	}}})

	assert.Contains(t, res.Warnings, "Feltet equitySharePercent på linje 1 er begrænset til 100%.")
	assert.Equal(t, 100.0, res.Value)
}

func TestRunC14Processing(t *testing.T) {
	tests := []struct {
		name      string
		line      *ProcessLineInput
		want      float64
		wantTrace string
	}{
		{
			name: "default intensity",
			line: &ProcessLineInput{
				ProductName:                 sptr("Stålprofil"),
				ProcessedTonnes:             fptr(100),
				DocumentationQualityPercent: fptr(90),
			},
			want:      5.67,
			wantTrace: "line1.basis=default",
		},
		{
			name: "reported intensity",
			line: &ProcessLineInput{
				ProductName:                 sptr("Stålprofil"),
				ProcessedTonnes:             fptr(100),
				EnergyKwhPerTonne:           fptr(300),
				DocumentationQualityPercent: fptr(90),
			},
			want:      4.05,
			wantTrace: "line1.basis=reported",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := runC14(&ModuleInput{C14: &C14Input{ProcessLines: []*ProcessLineInput{tt.line}}})
			assert.Equal(t, tt.want, res.Value)
			assert.Contains(t, res.Trace, tt.wantTrace)
		})
	}
}

func TestRunC15EndOfLife(t *testing.T) {
	res := runC15(&ModuleInput{C15: &C15Input{TreatmentLines: []*TreatmentLineInput{
		{
			Tonnes:                      fptr(10),
			DocumentationQualityPercent: fptr(90),
		},
	}}})

	assert.Equal(t, 5.87, res.Value)
	assert.Contains(t, res.Trace, "line1.treatmentType=landfill")
	assert.Empty(t, res.Warnings)
}

func TestRowModulesEmptyRowsSkippedSilently(t *testing.T) {
	res := runC9(&ModuleInput{C9: &C9Input{ScreeningLines: []*ScreeningLineInput{
		nil,
		{},
		{Category: sptr("materials"), SpendDkk: fptr(100000), DocumentationQualityPercent: fptr(90)},
	}}})

	// Only the populated row counts, and it keeps its original line number.
	assert.Equal(t, 0.045, res.Value)
	assert.Contains(t, res.Trace, "line3.category=materials")
	assert.Empty(t, res.Warnings)
}
