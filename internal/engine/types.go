// Package engine implements the CSRD/ESRS module calculation engine: ~50
// independent pure-function calculators sharing one input/output contract,
// a cross-module insight overlay, and an aggregation layer. Calculators
// never fail; invalid input is clamped to safe defaults and surfaced as
// Danish warnings on the result.
package engine

// ModuleID identifies one ESRS disclosure module.
type ModuleID string

// The closed set of module identifiers, in canonical report order.
const (
	ModuleA1 ModuleID = "A1"
	ModuleA2 ModuleID = "A2"
	ModuleA3 ModuleID = "A3"
	ModuleA4 ModuleID = "A4"

	ModuleB1  ModuleID = "B1"
	ModuleB2  ModuleID = "B2"
	ModuleB3  ModuleID = "B3"
	ModuleB4  ModuleID = "B4"
	ModuleB5  ModuleID = "B5"
	ModuleB6  ModuleID = "B6"
	ModuleB7  ModuleID = "B7"
	ModuleB8  ModuleID = "B8"
	ModuleB9  ModuleID = "B9"
	ModuleB10 ModuleID = "B10"
	ModuleB11 ModuleID = "B11"

	ModuleC1  ModuleID = "C1"
	ModuleC2  ModuleID = "C2"
	ModuleC3  ModuleID = "C3"
	ModuleC4  ModuleID = "C4"
	ModuleC5  ModuleID = "C5"
	ModuleC6  ModuleID = "C6"
	ModuleC7  ModuleID = "C7"
	ModuleC8  ModuleID = "C8"
	ModuleC9  ModuleID = "C9"
	ModuleC10 ModuleID = "C10"
	ModuleC11 ModuleID = "C11"
	ModuleC12 ModuleID = "C12"
	ModuleC13 ModuleID = "C13"
	ModuleC14 ModuleID = "C14"
	ModuleC15 ModuleID = "C15"

	ModuleE1Targets          ModuleID = "E1Targets"
	ModuleE1Actions          ModuleID = "E1Actions"
	ModuleE1CarbonPrice      ModuleID = "E1CarbonPrice"
	ModuleE1FinancialEffects ModuleID = "E1FinancialEffects"
	ModuleE1Transition       ModuleID = "E1Transition"
	ModuleE1Removals         ModuleID = "E1Removals"
	ModuleE1Risks            ModuleID = "E1Risks"

	ModuleE2Water        ModuleID = "E2Water"
	ModuleE3Pollution    ModuleID = "E3Pollution"
	ModuleE4Biodiversity ModuleID = "E4Biodiversity"
	ModuleE5Resources    ModuleID = "E5Resources"

	ModuleD1  ModuleID = "D1"
	ModuleSBM ModuleID = "SBM"
	ModuleGOV ModuleID = "GOV"
	ModuleIRO ModuleID = "IRO"
	ModuleMR  ModuleID = "MR"

	ModuleS1 ModuleID = "S1"
	ModuleS2 ModuleID = "S2"
	ModuleS3 ModuleID = "S3"
	ModuleS4 ModuleID = "S4"

	ModuleG1 ModuleID = "G1"
	ModuleD2 ModuleID = "D2"
)

// moduleOrder is the canonical module ordering used by AggregateResults.
var moduleOrder = []ModuleID{
	ModuleA1, ModuleA2, ModuleA3, ModuleA4,
	ModuleB1, ModuleB2, ModuleB3, ModuleB4, ModuleB5, ModuleB6,
	ModuleB7, ModuleB8, ModuleB9, ModuleB10, ModuleB11,
	ModuleC1, ModuleC2, ModuleC3, ModuleC4, ModuleC5, ModuleC6, ModuleC7,
	ModuleC8, ModuleC9, ModuleC10, ModuleC11, ModuleC12, ModuleC13,
	ModuleC14, ModuleC15,
	ModuleE1Targets, ModuleE1Actions, ModuleE1CarbonPrice,
	ModuleE1FinancialEffects, ModuleE1Transition, ModuleE1Removals,
	ModuleE1Risks,
	ModuleE2Water, ModuleE3Pollution, ModuleE4Biodiversity, ModuleE5Resources,
	ModuleD1, ModuleSBM, ModuleGOV, ModuleIRO, ModuleMR,
	ModuleS1, ModuleS2, ModuleS3, ModuleS4,
	ModuleG1, ModuleD2,
}

// moduleTitles maps each module to its Danish report title.
var moduleTitles = map[ModuleID]string{
	ModuleA1:                 "A1 – Stationær forbrænding",
	ModuleA2:                 "A2 – Egne køretøjer",
	ModuleA3:                 "A3 – Procesemissioner",
	ModuleA4:                 "A4 – Kølemidler",
	ModuleB1:                 "B1 – Indkøbt elektricitet",
	ModuleB2:                 "B2 – Fjernvarme",
	ModuleB3:                 "B3 – Køling",
	ModuleB4:                 "B4 – Damp",
	ModuleB5:                 "B5 – Opladning af elkøretøjer",
	ModuleB6:                 "B6 – Nettab",
	ModuleB7:                 "B7 – Oprindelsesgarantier",
	ModuleB8:                 "B8 – Elkøbsaftaler (PPA)",
	ModuleB9:                 "B9 – Egenproduceret vedvarende energi",
	ModuleB10:                "B10 – Eksporteret vedvarende overskud",
	ModuleB11:                "B11 – Timematchede certifikater",
	ModuleC1:                 "C1 – Indkøbte varer og tjenester",
	ModuleC2:                 "C2 – Kapitalgoder",
	ModuleC3:                 "C3 – Brændstof- og energirelaterede aktiviteter",
	ModuleC4:                 "C4 – Upstream transport",
	ModuleC5:                 "C5 – Affald fra driften",
	ModuleC6:                 "C6 – Forretningsrejser",
	ModuleC7:                 "C7 – Medarbejderpendling",
	ModuleC8:                 "C8 – Downstream transport",
	ModuleC9:                 "C9 – Screening af øvrige kategorier",
	ModuleC10:                "C10 – Upstream leasede aktiver",
	ModuleC11:                "C11 – Downstream leasede aktiver",
	ModuleC12:                "C12 – Franchises",
	ModuleC13:                "C13 – Investeringer",
	ModuleC14:                "C14 – Forarbejdning af solgte produkter",
	ModuleC15:                "C15 – Bortskaffelse af solgte produkter",
	ModuleE1Targets:          "E1 – Klimamål",
	ModuleE1Actions:          "E1 – Planlagte handlinger",
	ModuleE1CarbonPrice:      "E1 – Intern CO2-pris",
	ModuleE1FinancialEffects: "E1 – Finansielle effekter",
	ModuleE1Transition:       "E1 – Omstillingsplan",
	ModuleE1Removals:         "E1 – CO2-optag og kreditter",
	ModuleE1Risks:            "E1 – Klimarisici og scenarier",
	ModuleE2Water:            "E2 – Vand og vandstress",
	ModuleE3Pollution:        "E3 – Forurening",
	ModuleE4Biodiversity:     "E4 – Biodiversitet og økosystemer",
	ModuleE5Resources:        "E5 – Ressourcer og cirkularitet",
	ModuleD1:                 "D1 – Grundlag for udarbejdelse",
	ModuleSBM:                "ESRS 2 – Strategi og forretningsmodel",
	ModuleGOV:                "ESRS 2 – Ledelse og tilsyn",
	ModuleIRO:                "ESRS 2 – Væsentlighedsproces",
	ModuleMR:                 "ESRS 2 – Målepunkter og mål",
	ModuleS1:                 "S1 – Egen arbejdsstyrke",
	ModuleS2:                 "S2 – Arbejdstagere i værdikæden",
	ModuleS3:                 "S3 – Berørte lokalsamfund",
	ModuleS4:                 "S4 – Forbrugere og slutbrugere",
	ModuleG1:                 "G1 – Virksomhedsadfærd",
	ModuleD2:                 "D2 – Dobbelt væsentlighed",
}

// scopeLabel maps GHG protocol scopes for the insight overlay.
const (
	scope1 = "scope1"
	scope2 = "scope2"
	scope3 = "scope3"
)

// emissionScope lists the modules that qualify for the E1 insight overlay
// and the scope each belongs to.
var emissionScope = map[ModuleID]string{
	ModuleA1: scope1, ModuleA2: scope1, ModuleA3: scope1, ModuleA4: scope1,
	ModuleB1: scope2, ModuleB2: scope2, ModuleB3: scope2, ModuleB4: scope2,
	ModuleB5: scope2, ModuleB6: scope2, ModuleB7: scope2, ModuleB8: scope2,
	ModuleB9: scope2, ModuleB10: scope2, ModuleB11: scope2,
	ModuleC1: scope3, ModuleC2: scope3, ModuleC3: scope3, ModuleC4: scope3,
	ModuleC5: scope3, ModuleC6: scope3, ModuleC7: scope3, ModuleC8: scope3,
	ModuleC9: scope3, ModuleC10: scope3, ModuleC11: scope3, ModuleC12: scope3,
	ModuleC13: scope3, ModuleC14: scope3, ModuleC15: scope3,
}

// ModuleInput is the engine's sole input: one optional sub-record per
// module. The record is read-only to calculators; all leaf fields are
// optional and may be absent, negative, out of range or unrecognised.
type ModuleInput struct {
	A1 *A1Input `json:"A1,omitempty"`
	A2 *A2Input `json:"A2,omitempty"`
	A3 *A3Input `json:"A3,omitempty"`
	A4 *A4Input `json:"A4,omitempty"`

	B1  *B1Input  `json:"B1,omitempty"`
	B2  *B2Input  `json:"B2,omitempty"`
	B3  *B3Input  `json:"B3,omitempty"`
	B4  *B4Input  `json:"B4,omitempty"`
	B5  *B5Input  `json:"B5,omitempty"`
	B6  *B6Input  `json:"B6,omitempty"`
	B7  *B7Input  `json:"B7,omitempty"`
	B8  *B8Input  `json:"B8,omitempty"`
	B9  *B9Input  `json:"B9,omitempty"`
	B10 *B10Input `json:"B10,omitempty"`
	B11 *B11Input `json:"B11,omitempty"`

	C1  *SpendBasedInput `json:"C1,omitempty"`
	C2  *SpendBasedInput `json:"C2,omitempty"`
	C3  *C3Input         `json:"C3,omitempty"`
	C4  *TransportInput  `json:"C4,omitempty"`
	C5  *C5Input         `json:"C5,omitempty"`
	C6  *C6Input         `json:"C6,omitempty"`
	C7  *C7Input         `json:"C7,omitempty"`
	C8  *TransportInput  `json:"C8,omitempty"`
	C9  *C9Input         `json:"C9,omitempty"`
	C10 *LeasedAssetsInput `json:"C10,omitempty"`
	C11 *LeasedAssetsInput `json:"C11,omitempty"`
	C12 *C12Input        `json:"C12,omitempty"`
	C13 *C13Input        `json:"C13,omitempty"`
	C14 *C14Input        `json:"C14,omitempty"`
	C15 *C15Input        `json:"C15,omitempty"`

	E1Context          *E1Context               `json:"E1Context,omitempty"`
	E1Targets          *E1TargetsInput          `json:"E1Targets,omitempty"`
	E1Actions          *E1ActionsInput          `json:"E1Actions,omitempty"`
	E1CarbonPrice      *E1CarbonPriceInput      `json:"E1CarbonPrice,omitempty"`
	E1FinancialEffects *E1FinancialEffectsInput `json:"E1FinancialEffects,omitempty"`
	E1Transition       *E1TransitionInput       `json:"E1Transition,omitempty"`
	E1Removals         *E1RemovalsInput         `json:"E1Removals,omitempty"`
	E1Risks            *E1RisksInput            `json:"E1Risks,omitempty"`

	E2Water        *E2WaterInput        `json:"E2Water,omitempty"`
	E3Pollution    *E3PollutionInput    `json:"E3Pollution,omitempty"`
	E4Biodiversity *E4BiodiversityInput `json:"E4Biodiversity,omitempty"`
	E5Resources    *E5ResourcesInput    `json:"E5Resources,omitempty"`

	D1  *D1Input  `json:"D1,omitempty"`
	SBM *SBMInput `json:"SBM,omitempty"`
	GOV *GOVInput `json:"GOV,omitempty"`
	IRO *IROInput `json:"IRO,omitempty"`
	MR  *MRInput  `json:"MR,omitempty"`

	S1 *S1Input `json:"S1,omitempty"`
	S2 *S2Input `json:"S2,omitempty"`
	S3 *S3Input `json:"S3,omitempty"`
	S4 *S4Input `json:"S4,omitempty"`

	G1 *G1Input `json:"G1,omitempty"`
	D2 *D2Input `json:"D2,omitempty"`
}

// E1Context carries org-wide figures shared across modules by the insight
// overlay. It is a data record, not a calculator.
type E1Context struct {
	NetRevenueDkk             *float64              `json:"netRevenueDkk,omitempty"`
	ProductionVolume          *float64              `json:"productionVolume,omitempty"`
	ProductionUnit            *string               `json:"productionUnit,omitempty"`
	TotalEnergyConsumptionKwh *float64              `json:"totalEnergyConsumptionKwh,omitempty"`
	PreviousYearScope1Tonnes  *float64              `json:"previousYearScope1Tonnes,omitempty"`
	PreviousYearScope2Tonnes  *float64              `json:"previousYearScope2Tonnes,omitempty"`
	PreviousYearScope3Tonnes  *float64              `json:"previousYearScope3Tonnes,omitempty"`
	EnergyMix                 []*EnergyMixShareInput `json:"energyMix,omitempty"`
}

// EnergyMixShareInput is one raw slice of the reported energy mix.
type EnergyMixShareInput struct {
	EnergyType *string  `json:"energyType,omitempty"`
	AmountKwh  *float64 `json:"amountKwh,omitempty"`
}
