package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRunE2Water(t *testing.T) {
	res := runE2Water(&ModuleInput{E2Water: &E2WaterInput{
		TotalWithdrawalM3:           fptr(5000),
		WithdrawalInStressRegionsM3: fptr(2500),
		DischargeM3:                 fptr(3000),
		ReusePercent:                fptr(10),
		DataQualityPercent:          fptr(80),
	}})

	assert.Equal(t, 60.0, res.Value)
	assert.Contains(t, res.Trace, "netConsumptionM3=1500")
	assert.Contains(t, res.Trace, "weightedRisk=0.6000")
	assert.Equal(t, []string{
		"En stor andel af vandindvindingen (50%) sker i områder med vandstress. Vurdér muligheder for at reducere forbruget dér.",
	}, res.Warnings)
}

func TestRunE2WaterStressedCappedAtWithdrawal(t *testing.T) {
	res := runE2Water(&ModuleInput{E2Water: &E2WaterInput{
		TotalWithdrawalM3:           fptr(5000),
		WithdrawalInStressRegionsM3: fptr(6000),
		DischargeM3:                 fptr(5000),
		ReusePercent:                fptr(0),
		DataQualityPercent:          fptr(100),
	}})

	assert.Contains(t, res.Warnings,
		"Indvindingen i stressede områder kan ikke overstige den samlede indvinding og er begrænset hertil.")
	assert.Contains(t, res.Trace, "withdrawalInStressRegionsM3=5000")
}

func TestRunE2WaterEmptyInput(t *testing.T) {
	res := runE2Water(&ModuleInput{})
	assert.Equal(t, 0.0, res.Value)
	assert.Empty(t, res.Warnings)
}

func TestRunE3Pollution(t *testing.T) {
	res := runE3Pollution(&ModuleInput{E3Pollution: &E3PollutionInput{
		AirEmissionsTonnes:   fptr(10),
		WaterEmissionsTonnes: fptr(5),
		SoilEmissionsTonnes:  fptr(2),
		PermitCompliant:      bptr(false),
	}})

	assert.Equal(t, 6.9, res.Value)
	assert.Equal(t, []string{
		"Udledningerne overholder ikke miljøgodkendelsen. Beskriv de afhjælpende tiltag.",
	}, res.Warnings)
}

func TestRunE4Biodiversity(t *testing.T) {
	res := runE4Biodiversity(&ModuleInput{E4Biodiversity: &E4BiodiversityInput{
		SitesTotal:                 fptr(10),
		SitesNearSensitiveAreas:    fptr(4),
		MitigationPlanSharePercent: fptr(50),
	}})

	assert.Equal(t, 21.0, res.Value)
	assert.Contains(t, res.Trace, "sensitiveShare=0.4")
	assert.Empty(t, res.Warnings)
}

func TestRunE4SensitiveCappedAtTotal(t *testing.T) {
	res := runE4Biodiversity(&ModuleInput{E4Biodiversity: &E4BiodiversityInput{
		SitesTotal:                 fptr(10),
		SitesNearSensitiveAreas:    fptr(12),
		MitigationPlanSharePercent: fptr(0),
	}})

	assert.Contains(t, res.Warnings,
		"Antallet af følsomme lokaliteter kan ikke overstige det samlede antal lokaliteter og er begrænset hertil.")
	assert.Equal(t, 70.0, res.Value)
}

func TestRunE5Resources(t *testing.T) {
	res := runE5Resources(&ModuleInput{E5Resources: &E5ResourcesInput{
		RecycledContentPercent: fptr(40),
		RecyclablePercent:      fptr(80),
		TotalMaterialTonnes:    fptr(1200),
	}})

	assert.Equal(t, 60.0, res.Value)
	assert.Contains(t, res.Trace, "totalMaterialTonnes=1200")
}
