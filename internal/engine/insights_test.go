package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func insightInput() *ModuleInput {
	return &ModuleInput{
		B1: &B1Input{ElectricityKwh: fptr(10000), DocumentationQualityPercent: fptr(90)},
		B2: &B2Input{DistrictHeatKwh: fptr(100000), DocumentationQualityPercent: fptr(90)},
		E1Context: &E1Context{
			NetRevenueDkk:             fptr(50000000),
			ProductionVolume:          fptr(1000),
			ProductionUnit:            sptr("ton"),
			TotalEnergyConsumptionKwh: fptr(100000),
			PreviousYearScope2Tonnes:  fptr(9.5),
			EnergyMix: []*EnergyMixShareInput{
				{EnergyType: sptr("electricity"), AmountKwh: fptr(75000)},
				{EnergyType: sptr("districtHeat"), AmountKwh: fptr(25000)},
			},
		},
		E1Targets: &E1TargetsInput{Targets: []*TargetInput{
			{
				Scope:            sptr("scope2"),
				BaselineYear:     fptr(2020),
				TargetYear:       fptr(2030),
				ReductionPercent: fptr(50),
				Status:           sptr("onTrack"),
				Owner:            sptr("CFO"),
			},
		}},
	}
}

func TestInsightOverlayOnEmissionModule(t *testing.T) {
	res, ok := RunModule(ModuleB2, insightInput())
	require.True(t, ok)
	assert.Equal(t, 7.0, res.Value)

	require.Len(t, res.Intensities, 3)
	assert.Equal(t, Intensity{Basis: "netRevenue", Value: 0.14, Unit: "t CO2e/mio. DKK"}, res.Intensities[0])
	assert.Equal(t, Intensity{Basis: "production", Value: 0.007, Unit: "t CO2e/ton"}, res.Intensities[1])
	assert.Equal(t, Intensity{Basis: "energy", Value: 0.07, Unit: "kg CO2e/kWh"}, res.Intensities[2])

	require.NotNil(t, res.Trend)
	assert.Equal(t, 9.5, res.Trend.PreviousValue)
	assert.Equal(t, "t CO2e", res.Trend.Unit)

	assert.Equal(t, []EnergyMixShare{
		{EnergyType: "electricity", SharePercent: 75},
		{EnergyType: "districtHeat", SharePercent: 25},
	}, res.EnergyMix)

	require.NotNil(t, res.TargetProgress)
	assert.Equal(t, "scope2", res.TargetProgress.Scope)
	assert.Equal(t, "onTrack", res.TargetProgress.Status)
	assert.Equal(t, 2030, res.TargetProgress.TargetYear)
	assert.Contains(t, res.Trace, "targetProgress.status=onTrack")
}

func TestInsightOverlayIdempotent(t *testing.T) {
	in := insightInput()
	res, _ := RunModule(ModuleB2, in)
	traceLen := len(res.Trace)
	intensities := len(res.Intensities)

	applyE1Insights(&res, in, scope2)

	assert.Len(t, res.Trace, traceLen)
	assert.Len(t, res.Intensities, intensities)
}

func TestInsightOverlayNotDoubledForB1(t *testing.T) {
	// B1 applies the overlay itself; the dispatcher must not add a second
	// layer on top.
	res, _ := RunModule(ModuleB1, insightInput())

	assert.Len(t, res.Intensities, 3)
	count := 0
	for _, line := range res.Trace {
		if line == "targetProgress.status=onTrack" {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestInsightOverlayScopeMismatch(t *testing.T) {
	in := insightInput()
	// A1 is scope 1; the scope 2 target and trend must not attach.
	in.A1 = &A1Input{NaturalGasM3: fptr(1000), DocumentationQualityPercent: fptr(90)}
	res, _ := RunModule(ModuleA1, in)

	assert.Nil(t, res.TargetProgress)
	assert.Nil(t, res.Trend)
	assert.Len(t, res.Intensities, 3)
}

func TestNormaliseEnergyMix(t *testing.T) {
	mix := []*EnergyMixShareInput{
		nil,
		{EnergyType: sptr("electricity"), AmountKwh: fptr(600)},
		{EnergyType: nil, AmountKwh: fptr(1000)},
		{EnergyType: sptr("naturalGas"), AmountKwh: fptr(0)},
		{EnergyType: sptr("districtHeat"), AmountKwh: fptr(400)},
	}

	assert.Equal(t, []EnergyMixShare{
		{EnergyType: "electricity", SharePercent: 60},
		{EnergyType: "districtHeat", SharePercent: 40},
	}, normaliseEnergyMix(mix))

	assert.Nil(t, normaliseEnergyMix(nil))
	assert.Nil(t, normaliseEnergyMix([]*EnergyMixShareInput{
		{EnergyType: sptr("electricity"), AmountKwh: fptr(0)},
	}))
}
