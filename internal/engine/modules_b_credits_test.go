package engine

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRunB7GuaranteesOfOrigin(t *testing.T) {
	res := runB7(&ModuleInput{B7: &B7Input{
		DocumentedRenewableKwh:         fptr(12000),
		ResidualEmissionFactorKgPerKwh: fptr(0.233),
		DocumentationQualityPercent:    fptr(90),
	}})

	assert.Equal(t, -2.391, res.Value)
	assert.Contains(t, res.Trace, "qualityAdjustedKwh=10260")
	assert.Contains(t, res.Trace, "avoidedEmissionsKg=2390.58")
	assert.Empty(t, res.Warnings)
}

func TestRunB7EmptyInputIsPositiveZero(t *testing.T) {
	res := runB7(&ModuleInput{})
	assert.Equal(t, 0.0, res.Value)
	assert.False(t, math.Signbit(res.Value))
	assert.Empty(t, res.Warnings)
}

func TestRunB7DefaultResidualFactor(t *testing.T) {
	res := runB7(&ModuleInput{B7: &B7Input{
		DocumentedRenewableKwh:      fptr(1000),
		DocumentationQualityPercent: fptr(100),
	}})

	assert.Contains(t, res.Trace, "residualEmissionFactorKgPerKwh=0.233")
	// 1000 * 0.95 * 0.233 = 221.35 kg avoided.
	assert.Equal(t, -0.221, res.Value)
}

func TestRunB8MatchedCappedAtDelivered(t *testing.T) {
	res := runB8(&ModuleInput{B8: &B8Input{
		DeliveredPpaKwh:                fptr(5000),
		MatchedConsumptionKwh:          fptr(8000),
		ResidualEmissionFactorKgPerKwh: fptr(0.233),
		SettlementSharePercent:         fptr(80),
		DocumentationQualityPercent:    fptr(100),
	}})

	assert.Equal(t, []string{
		"Det matchede forbrug kan ikke overstige den leverede PPA-energi og er begrænset hertil.",
		"Afregningsgraden for PPA-aftalen er under 90%. Dokumentér den time-for-time afregnede andel.",
	}, res.Warnings)
	assert.Contains(t, res.Trace, "matchedConsumptionKwh=5000")
	assert.Equal(t, -1.107, res.Value)
}

func TestRunB9WarningOrder(t *testing.T) {
	res := runB9(&ModuleInput{B9: &B9Input{
		ProducedKwh:                    fptr(10000),
		SelfConsumedKwh:                fptr(8000),
		GridLossPercent:                fptr(20),
		ResidualEmissionFactorKgPerKwh: fptr(0.233),
		DocumentationQualityPercent:    fptr(50),
	}})

	// Corrective cap first, quality advisory second.
	assert.Equal(t, []string{
		"Feltet gridLossPercent er begrænset til 15%.",
		"Dokumentationskvaliteten for egenproduktionen er 50% og under den anbefalede grænse på 70%. Forbedr dokumentationen.",
	}, res.Warnings)
	assert.Contains(t, res.Trace, "effectiveKwh=6800")
	assert.Equal(t, -0.753, res.Value)
}

func TestRunB10ExportedCappedAtProduced(t *testing.T) {
	res := runB10(&ModuleInput{B10: &B10Input{
		ProducedKwh:                    fptr(5000),
		ExportedKwh:                    fptr(6000),
		ResidualEmissionFactorKgPerKwh: fptr(0.233),
		DocumentationQualityPercent:    fptr(100),
	}})

	assert.Equal(t, []string{
		"Den eksporterede mængde kan ikke overstige den producerede mængde og er begrænset hertil.",
	}, res.Warnings)
	assert.Equal(t, -1.107, res.Value)
}

func TestRunB11TimeCorrelation(t *testing.T) {
	res := runB11(&ModuleInput{B11: &B11Input{
		CertifiedKwh:                   fptr(10000),
		TimeCorrelationPercent:         fptr(60),
		ResidualEmissionFactorKgPerKwh: fptr(0.233),
		DocumentationQualityPercent:    fptr(100),
	}})

	assert.Equal(t, []string{
		"Tidskorrelationen er under 80%. Timematchede krav bør dokumenteres bedre.",
	}, res.Warnings)
	assert.Contains(t, res.Trace, "correlatedKwh=6000")
	assert.Equal(t, -1.328, res.Value)
}

func TestCreditValuesNeverPositive(t *testing.T) {
	in := &ModuleInput{
		B7:  &B7Input{DocumentedRenewableKwh: fptr(5000), DocumentationQualityPercent: fptr(80)},
		B8:  &B8Input{DeliveredPpaKwh: fptr(5000), MatchedConsumptionKwh: fptr(4000), DocumentationQualityPercent: fptr(80)},
		B9:  &B9Input{ProducedKwh: fptr(5000), SelfConsumedKwh: fptr(4000), DocumentationQualityPercent: fptr(80)},
		B10: &B10Input{ProducedKwh: fptr(5000), ExportedKwh: fptr(1000), DocumentationQualityPercent: fptr(80)},
		B11: &B11Input{CertifiedKwh: fptr(5000), DocumentationQualityPercent: fptr(80)},
	}
	for _, id := range []ModuleID{ModuleB7, ModuleB8, ModuleB9, ModuleB10, ModuleB11} {
		res, ok := RunModule(id, in)
		assert.True(t, ok)
		assert.LessOrEqual(t, res.Value, 0.0, "module %s", id)
	}
}
