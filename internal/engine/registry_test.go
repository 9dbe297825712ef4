package engine

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunModuleUnknownID(t *testing.T) {
	_, ok := RunModule("X99", &ModuleInput{})
	assert.False(t, ok)
}

func TestRunModuleNilInput(t *testing.T) {
	res, ok := RunModule(ModuleA1, nil)
	assert.True(t, ok)
	assert.Equal(t, 0.0, res.Value)
}

func TestEveryModuleOnEmptyInput(t *testing.T) {
	// Empty input yields a well-formed zero result everywhere: no warnings,
	// a finite non-negative-zero value, and initialised slices.
	for _, id := range ModuleIDs() {
		res, ok := RunModule(id, &ModuleInput{})
		require.True(t, ok, "module %s", id)
		assert.Equal(t, 0.0, res.Value, "module %s", id)
		assert.False(t, math.Signbit(res.Value), "module %s", id)
		assert.Empty(t, res.Warnings, "module %s", id)
		assert.NotEmpty(t, res.Unit, "module %s", id)
		assert.NotEmpty(t, res.Assumptions, "module %s", id)
		assert.NotNil(t, res.Trace, "module %s", id)
		assert.NotNil(t, res.Warnings, "module %s", id)
	}
}

func TestEveryModuleFiniteOnHostileInput(t *testing.T) {
	nan := math.NaN()
	inf := math.Inf(1)
	in := &ModuleInput{
		A1: &A1Input{NaturalGasM3: &nan, HeatingOilLiters: &inf, BiogasSharePercent: fptr(-50)},
		B1: &B1Input{ElectricityKwh: &inf},
		B7: &B7Input{DocumentedRenewableKwh: &nan},
		C3: &C3Input{Scope1FuelEmissionsTonnes: &inf, ElectricityKwh: &nan},
		E2Water: &E2WaterInput{
			TotalWithdrawalM3: &nan, DischargeM3: &inf, ReusePercent: fptr(250),
		},
		G1: &G1Input{ConvictionsCount: &inf, AveragePaymentDays: &nan},
	}
	for _, id := range ModuleIDs() {
		res, ok := RunModule(id, in)
		require.True(t, ok, "module %s", id)
		assert.False(t, math.IsNaN(res.Value), "module %s", id)
		assert.False(t, math.IsInf(res.Value, 0), "module %s", id)
	}
}

func TestRunModuleDeterministic(t *testing.T) {
	in := insightInput()
	in.A2 = &A2Input{VehicleConsumptions: []*VehicleConsumptionInput{
		{FuelType: sptr("diesel"), QuantityLiters: fptr(1500), DocumentationQualityPercent: fptr(58)},
	}}
	in.D2 = &D2Input{MaterialTopics: []*MaterialTopicInput{
		{Title: sptr("Klima"), Severity: sptr("high"), Likelihood: sptr("likely"), FinancialScore: fptr(3)},
	}}

	first := AggregateResults(in)
	second := AggregateResults(in)
	assert.Equal(t, first, second)
}

func TestAggregateResultsOrderAndTitles(t *testing.T) {
	out := AggregateResults(&ModuleInput{})
	ids := ModuleIDs()
	require.Len(t, out, len(ids))
	for i, r := range out {
		assert.Equal(t, ids[i], r.ModuleID)
		assert.Equal(t, Title(r.ModuleID), r.Title)
		assert.NotEmpty(t, r.Title, "module %s", r.ModuleID)
	}
}

func TestModuleIDsReturnsCopy(t *testing.T) {
	ids := ModuleIDs()
	require.NotEmpty(t, ids)
	ids[0] = "tampered"
	assert.Equal(t, ModuleA1, ModuleIDs()[0])
}

func TestCreateDefaultResult(t *testing.T) {
	res := CreateDefaultResult(ModuleC1, 12.345)
	assert.Equal(t, 12.345, res.Value)
	assert.Contains(t, res.Trace, "moduleId=C1")
	assert.Contains(t, res.Trace, "rawValue=12.345")
	assert.Empty(t, res.Warnings)
}

func TestTitle(t *testing.T) {
	assert.NotEmpty(t, Title(ModuleA1))
	assert.Empty(t, Title("X99"))
}
