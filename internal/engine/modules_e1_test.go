package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunE1Targets(t *testing.T) {
	res := runE1Targets(&ModuleInput{E1Targets: &E1TargetsInput{Targets: []*TargetInput{
		{
			Scope:            sptr("scope1"),
			BaselineYear:     fptr(2020),
			TargetYear:       fptr(2030),
			ReductionPercent: fptr(50),
			Status:           sptr("onTrack"),
			Owner:            sptr("CFO"),
		},
		{
			Scope:            sptr("scope2"),
			BaselineYear:     fptr(2020),
			TargetYear:       fptr(2030),
			ReductionPercent: fptr(30),
			Status:           sptr("notStarted"),
		},
	}}})

	assert.Equal(t, 40.0, res.Value)
	assert.Contains(t, res.Trace, "target1.status=onTrack")
	assert.Equal(t, []string{
		"Reduktionsmålet for Scope 2 på linje 2 er 30% og under 1,5-gradersbanens 42%. Overvej at skærpe målet.",
	}, res.Warnings)

	require.Len(t, res.TargetsOverview, 2)
	assert.Equal(t, "scope1", res.TargetsOverview[0].Scope)
	assert.Equal(t, 2030, res.TargetsOverview[0].TargetYear)
	assert.Equal(t, "CFO", res.TargetsOverview[0].Owner)
}

func TestRunE1TargetsYearSanity(t *testing.T) {
	res := runE1Targets(&ModuleInput{E1Targets: &E1TargetsInput{Targets: []*TargetInput{
		{
			Scope:            sptr("scope1"),
			BaselineYear:     fptr(2030),
			TargetYear:       fptr(2025),
			ReductionPercent: fptr(50),
			Status:           sptr("onTrack"),
		},
	}}})

	assert.Contains(t, res.Warnings, "Målåret på linje 1 ligger ikke efter basisåret. Kontrollér årstallene.")
}

func TestRunE1Actions(t *testing.T) {
	res := runE1Actions(&ModuleInput{E1Actions: &E1ActionsInput{Actions: []*ActionInput{
		{
			Title:                   sptr("Udskiftning af varmeanlæg"),
			ExpectedReductionTonnes: fptr(300),
			CapexDkk:                fptr(2000000),
			TargetYear:              fptr(2027),
		},
		{
			Title:                   sptr("Solceller på tag"),
			ExpectedReductionTonnes: fptr(200),
		},
	}}})

	assert.Equal(t, 500.0, res.Value)
	require.Len(t, res.DecarbonisationDrivers, 2)
	assert.Equal(t, 60.0, res.DecarbonisationDrivers[0].ShareOfPlannedPercent)
	assert.Equal(t, 40.0, res.DecarbonisationDrivers[1].ShareOfPlannedPercent)
	assert.Empty(t, res.Warnings)
}

func TestRunE1ActionsMissingTitle(t *testing.T) {
	res := runE1Actions(&ModuleInput{E1Actions: &E1ActionsInput{Actions: []*ActionInput{
		{ExpectedReductionTonnes: fptr(100)},
	}}})

	assert.Equal(t, 0.0, res.Value)
	assert.Equal(t, []string{
		"Handlingen på linje 1 mangler en titel og udelades.",
		"Ingen gyldige linjer kunne beregnes. Kontrollér indtastningerne.",
	}, res.Warnings)
}

func TestRunE1CarbonPrice(t *testing.T) {
	res := runE1CarbonPrice(&ModuleInput{E1CarbonPrice: &E1CarbonPriceInput{Schemes: []*CarbonPriceSchemeInput{
		{
			Name:            sptr("Intern afgift"),
			PriceDkkPerTon:  fptr(500),
			CoveragePercent: fptr(80),
			ScopeCovered:    sptr("scope1"),
		},
		{
			Name:            sptr("Skyggepris"),
			PriceDkkPerTon:  fptr(300),
			CoveragePercent: fptr(20),
			ScopeCovered:    sptr("scope2"),
		},
	}}})

	assert.Equal(t, 460.0, res.Value)
	assert.Len(t, res.CarbonPriceSchemes, 2)
}

func TestRunE1FinancialEffects(t *testing.T) {
	res := runE1FinancialEffects(&ModuleInput{E1FinancialEffects: &E1FinancialEffectsInput{
		Effects: []*FinancialEffectInput{
			{
				Description: sptr("CO2-afgift på naturgas"),
				Direction:   sptr("cost"),
				AmountDkk:   fptr(1000000),
				Horizon:     sptr("shortTerm"),
			},
			{
				Description: sptr("Energibesparelser"),
				Direction:   sptr("saving"),
				AmountDkk:   fptr(400000),
				Horizon:     sptr("mediumTerm"),
			},
		},
	}})

	assert.Equal(t, -600000.0, res.Value)
	assert.Contains(t, res.Trace, "netEffectDkk=-600000")
	assert.Len(t, res.FinancialEffects, 2)
}

func TestRunE1Transition(t *testing.T) {
	tests := []struct {
		name      string
		shares    []float64
		want      float64
		wantWarns []string
	}{
		{
			name:   "under coverage",
			shares: []float64{40, 30},
			want:   70,
			wantWarns: []string{
				"Omstillingsplanen dækker kun 70% af den planlagte reduktion. Beskriv de resterende tiltag.",
			},
		},
		{
			name:   "over coverage capped",
			shares: []float64{60, 60},
			want:   100,
			wantWarns: []string{
				"Summen af tiltagenes andele kan ikke overstige 100 % og er begrænset hertil.",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var measures []*TransitionMeasureInput
			for _, s := range tt.shares {
				measures = append(measures, &TransitionMeasureInput{
					Lever:              sptr("renewables"),
					Description:        sptr("Grøn strøm"),
					ShareOfPlanPercent: fptr(s),
				})
			}
			res := runE1Transition(&ModuleInput{E1Transition: &E1TransitionInput{Measures: measures}})
			assert.Equal(t, tt.want, res.Value)
			assert.Equal(t, tt.wantWarns, res.Warnings)
		})
	}
}

func TestRunE1Removals(t *testing.T) {
	res := runE1Removals(&ModuleInput{E1Removals: &E1RemovalsInput{Projects: []*RemovalProjectInput{
		{
			Name:            sptr("Skovrejsning Midtjylland"),
			Method:          sptr("afforestation"),
			RemovedTonnes:   fptr(500),
			PermanenceYears: fptr(40),
		},
	}}})

	assert.Equal(t, 500.0, res.Value)
	assert.Equal(t, []string{
		"Optaget på linje 1 har en varighed på 40 år, under de anbefalede 100 år. Angiv hvordan varigheden sikres.",
	}, res.Warnings)
}

func TestRunE1Risks(t *testing.T) {
	res := runE1Risks(&ModuleInput{E1Risks: &E1RisksInput{
		Scenarios: []*ScenarioInput{
			{
				Name:            sptr("Netto-nul 2050"),
				TemperaturePath: sptr("1.5C"),
				ExposureLevel:   sptr("high"),
			},
		},
		Geographies: []*RiskGeographyInput{
			{
				Region:   sptr("Vestjylland"),
				RiskType: sptr("physical"),
				Level:    sptr("low"),
			},
		},
	}})

	assert.Equal(t, 52.5, res.Value)
	assert.Contains(t, res.Trace, "scenario1.exposureScore=85")
	assert.Len(t, res.Scenarios, 1)
	assert.Len(t, res.RiskGeographies, 1)
}
