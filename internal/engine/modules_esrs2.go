package engine

import "unicode/utf8"

// ESRS 2 qualitative modules are requirement evaluators: a fixed ordered
// checklist of named predicates over the narrative input. The headline value
// is the count of fulfilled requirements, not a percentage. Wholly empty
// input short-circuits to value 0 with a single fill-in assumption and no
// warnings.

type requirement struct {
	id      string
	label   string
	context string
	failMsg string
	pass    bool
}

// evaluateRequirements scores a checklist: one trace line, one metric and,
// on failure, one guidance warning per requirement.
func evaluateRequirements(res *ModuleResult, reqs []requirement) {
	passed := 0
	for _, r := range reqs {
		state := "fail"
		value := "Mangler"
		if r.pass {
			state = "pass"
			value = "Opfyldt"
			passed++
		} else if r.failMsg != "" {
			res.Warnings = append(res.Warnings, r.failMsg)
		}
		traceStr(&res.Trace, "requirement:"+r.id, state)
		res.Metrics = append(res.Metrics, Metric{
			Label:   r.label,
			Value:   value,
			Context: r.context,
		})
	}
	traceNum(&res.Trace, "fulfilledRequirements", float64(passed))
	res.Value = float64(passed)
}

// detailed reports whether a narrative field holds at least minRunes of text.
func detailed(s *string, minRunes int) bool {
	return s != nil && utf8.RuneCountInString(*s) >= minRunes
}

func emptyChecklistResult(unit, assumption string) ModuleResult {
	return ModuleResult{
		Value:       0,
		Unit:        unit,
		Assumptions: []string{assumption},
		Trace:       []string{},
		Warnings:    []string{},
	}
}

// D1Input covers the basis of preparation of the sustainability statement.
type D1Input struct {
	ReportingBoundary       *string `json:"reportingBoundary,omitempty"`
	MethodologyDescription  *string `json:"methodologyDescription,omitempty"`
	ValueChainCoverage      *string `json:"valueChainCoverage,omitempty"`
	OmissionsDescription    *string `json:"omissionsDescription,omitempty"`
	NoOmissions             *bool   `json:"noOmissions,omitempty"`
}

var boundaryLabels = map[string]string{
	"operationalControl": "Operationel kontrol",
	"financialControl":   "Finansiel kontrol",
	"equityShare":        "Ejerandel",
}

func runD1(in *ModuleInput) ModuleResult {
	raw := in.D1
	if raw == nil || !present(
		raw.ReportingBoundary != nil, raw.MethodologyDescription != nil,
		raw.ValueChainCoverage != nil, raw.OmissionsDescription != nil,
		raw.NoOmissions != nil,
	) {
		return emptyChecklistResult("opfyldte krav",
			"Udfyld D1-felterne for at validere governance-oplysningerne mod ESRS-krav.")
	}

	res := ModuleResult{
		Unit: "opfyldte krav",
		Assumptions: []string{
			"Beskrivelser på mindst 150 tegn regnes som fyldestgørende.",
		},
		Trace:    []string{},
		Warnings: []string{},
	}

	_, boundaryOk := boundaryLabels[sval(raw.ReportingBoundary)]
	reqs := []requirement{
		{
			id:      "boundary",
			label:   "Konsolideringsgrundlag",
			context: "Der skal vælges et anerkendt konsolideringsgrundlag for opgørelsen.",
			failMsg: "Vælg et konsolideringsgrundlag: operationel kontrol, finansiel kontrol eller ejerandel.",
			pass:    boundaryOk,
		},
		{
			id:      "methodology",
			label:   "Metodebeskrivelse",
			context: "Opgørelsesmetoden skal beskrives fyldestgørende.",
			failMsg: "Beskriv opgørelsesmetoden mere udførligt (mindst 150 tegn).",
			pass:    detailed(raw.MethodologyDescription, 150),
		},
		{
			id:      "valueChain",
			label:   "Værdikædedækning",
			context: "Det skal fremgå, hvilke dele af værdikæden opgørelsen dækker.",
			failMsg: "Beskriv værdikædedækningen mere udførligt (mindst 150 tegn).",
			pass:    detailed(raw.ValueChainCoverage, 150),
		},
		{
			id:      "omissions",
			label:   "Udeladelser",
			context: "Udeladelser skal enten beskrives eller afkræftes eksplicit.",
			failMsg: "Angiv eventuelle udeladelser, eller bekræft at der ingen er.",
			pass:    bval(raw.NoOmissions) || detailed(raw.OmissionsDescription, 20),
		},
	}
	evaluateRequirements(&res, reqs)

	// Equity share passes the boundary requirement but is still flagged.
	if sval(raw.ReportingBoundary) == "equityShare" {
		res.Warnings = append(res.Warnings,
			"Ejerandelsmetoden er valgt. ESRS anbefaler operationel kontrol som konsolideringsgrundlag.")
	}
	return res
}

// SBMInput covers strategy and business model disclosures.
type SBMInput struct {
	BusinessModelDescription *string  `json:"businessModelDescription,omitempty"`
	StrategyDescription      *string  `json:"strategyDescription,omitempty"`
	StakeholderDescription   *string  `json:"stakeholderDescription,omitempty"`
	MaterialTopicsCount      *float64 `json:"materialTopicsCount,omitempty"`
}

func runSBM(in *ModuleInput) ModuleResult {
	raw := in.SBM
	if raw == nil || !present(
		raw.BusinessModelDescription != nil, raw.StrategyDescription != nil,
		raw.StakeholderDescription != nil, raw.MaterialTopicsCount != nil,
	) {
		return emptyChecklistResult("opfyldte krav",
			"Udfyld SBM-felterne for at beskrive strategi og forretningsmodel.")
	}

	res := ModuleResult{
		Unit: "opfyldte krav",
		Assumptions: []string{
			"Strategi- og forretningsmodelbeskrivelser på mindst 200 tegn regnes som fyldestgørende.",
		},
		Trace:    []string{},
		Warnings: []string{},
	}

	reqs := []requirement{
		{
			id:      "businessModel",
			label:   "Forretningsmodel",
			context: "Forretningsmodellen og dens afhængigheder skal beskrives.",
			failMsg: "Beskriv forretningsmodellen mere udførligt (mindst 200 tegn).",
			pass:    detailed(raw.BusinessModelDescription, 200),
		},
		{
			id:      "strategy",
			label:   "Bæredygtighedsstrategi",
			context: "Strategien skal forbinde væsentlige emner med forretningsmodellen.",
			failMsg: "Beskriv bæredygtighedsstrategien mere udførligt (mindst 200 tegn).",
			pass:    detailed(raw.StrategyDescription, 200),
		},
		{
			id:      "stakeholders",
			label:   "Interessentinddragelse",
			context: "Det skal fremgå, hvordan interessenter inddrages.",
			failMsg: "Beskriv interessentinddragelsen mere udførligt (mindst 150 tegn).",
			pass:    detailed(raw.StakeholderDescription, 150),
		},
		{
			id:      "materialTopics",
			label:   "Kobling til væsentlige emner",
			context: "Strategien skal adressere mindst ét væsentligt emne.",
			failMsg: "Angiv antallet af væsentlige emner, strategien adresserer.",
			pass:    fval(raw.MaterialTopicsCount) > 0,
		},
	}
	evaluateRequirements(&res, reqs)
	return res
}

// GOVInput covers governance and oversight disclosures.
type GOVInput struct {
	BoardOversightDescription  *string  `json:"boardOversightDescription,omitempty"`
	HasSustainabilityCommittee *bool    `json:"hasSustainabilityCommittee,omitempty"`
	ManagementRolesCount       *float64 `json:"managementRolesCount,omitempty"`
	IncentivesDescription      *string  `json:"incentivesDescription,omitempty"`
}

func runGOV(in *ModuleInput) ModuleResult {
	raw := in.GOV
	if raw == nil || !present(
		raw.BoardOversightDescription != nil, raw.HasSustainabilityCommittee != nil,
		raw.ManagementRolesCount != nil, raw.IncentivesDescription != nil,
	) {
		return emptyChecklistResult("opfyldte krav",
			"Udfyld GOV-felterne for at beskrive ledelsens tilsyn med bæredygtighed.")
	}

	res := ModuleResult{
		Unit: "opfyldte krav",
		Assumptions: []string{
			"Tilsynsbeskrivelser på mindst 150 tegn regnes som fyldestgørende.",
		},
		Trace:    []string{},
		Warnings: []string{},
	}

	reqs := []requirement{
		{
			id:      "boardOversight",
			label:   "Bestyrelsens tilsyn",
			context: "Bestyrelsens tilsyn med bæredygtighedsforhold skal beskrives.",
			failMsg: "Beskriv bestyrelsens tilsyn mere udførligt (mindst 150 tegn).",
			pass:    detailed(raw.BoardOversightDescription, 150),
		},
		{
			id:      "committee",
			label:   "Bæredygtighedsudvalg",
			context: "Et dedikeret udvalg eller tilsvarende forankring skal foreligge.",
			failMsg: "Etabler et bæredygtighedsudvalg, eller beskriv en tilsvarende forankring.",
			pass:    bval(raw.HasSustainabilityCommittee),
		},
		{
			id:      "managementRoles",
			label:   "Ledelsesroller",
			context: "Mindst én ledelsesrolle skal have ansvar for bæredygtighed.",
			failMsg: "Angiv de ledelsesroller, der har ansvar for bæredygtighed.",
			pass:    fval(raw.ManagementRolesCount) > 0,
		},
		{
			id:      "incentives",
			label:   "Incitamentsordninger",
			context: "Koblingen mellem aflønning og bæredygtighedsmål skal beskrives.",
			failMsg: "Beskriv koblingen mellem aflønning og bæredygtighedsmål (mindst 150 tegn).",
			pass:    detailed(raw.IncentivesDescription, 150),
		},
	}
	evaluateRequirements(&res, reqs)
	return res
}

// IROInput covers the impact, risk and opportunity identification process.
type IROInput struct {
	ProcessDescription     *string  `json:"processDescription,omitempty"`
	MethodologyDescription *string  `json:"methodologyDescription,omitempty"`
	StakeholdersInvolved   *bool    `json:"stakeholdersInvolved,omitempty"`
	TopicsAssessedCount    *float64 `json:"topicsAssessedCount,omitempty"`
}

func runIRO(in *ModuleInput) ModuleResult {
	raw := in.IRO
	if raw == nil || !present(
		raw.ProcessDescription != nil, raw.MethodologyDescription != nil,
		raw.StakeholdersInvolved != nil, raw.TopicsAssessedCount != nil,
	) {
		return emptyChecklistResult("opfyldte krav",
			"Udfyld IRO-felterne for at dokumentere væsentlighedsprocessen.")
	}

	res := ModuleResult{
		Unit: "opfyldte krav",
		Assumptions: []string{
			"Procesbeskrivelser på mindst 200 tegn regnes som fyldestgørende.",
		},
		Trace:    []string{},
		Warnings: []string{},
	}

	reqs := []requirement{
		{
			id:      "process",
			label:   "Identifikationsproces",
			context: "Processen for at identificere påvirkninger, risici og muligheder skal beskrives.",
			failMsg: "Beskriv identifikationsprocessen mere udførligt (mindst 200 tegn).",
			pass:    detailed(raw.ProcessDescription, 200),
		},
		{
			id:      "methodology",
			label:   "Vurderingsmetode",
			context: "Metoden til at vurdere væsentlighed skal beskrives.",
			failMsg: "Beskriv vurderingsmetoden mere udførligt (mindst 150 tegn).",
			pass:    detailed(raw.MethodologyDescription, 150),
		},
		{
			id:      "stakeholders",
			label:   "Interessentinddragelse",
			context: "Interessenter skal være inddraget i væsentlighedsvurderingen.",
			failMsg: "Inddrag interessenter i væsentlighedsvurderingen, og dokumentér det.",
			pass:    bval(raw.StakeholdersInvolved),
		},
		{
			id:      "topicsAssessed",
			label:   "Vurderede emner",
			context: "Mindst ét emne skal være vurderet i processen.",
			failMsg: "Angiv antallet af emner, der er vurderet i processen.",
			pass:    fval(raw.TopicsAssessedCount) > 0,
		},
	}
	evaluateRequirements(&res, reqs)
	return res
}

// MRInput covers disclosures on metrics and targets.
type MRInput struct {
	MetricsCount       *float64 `json:"metricsCount,omitempty"`
	TargetsCount       *float64 `json:"targetsCount,omitempty"`
	BaselineDescription *string `json:"baselineDescription,omitempty"`
	ProgressDescription *string `json:"progressDescription,omitempty"`
}

func runMR(in *ModuleInput) ModuleResult {
	raw := in.MR
	if raw == nil || !present(
		raw.MetricsCount != nil, raw.TargetsCount != nil,
		raw.BaselineDescription != nil, raw.ProgressDescription != nil,
	) {
		return emptyChecklistResult("opfyldte krav",
			"Udfyld MR-felterne for at dokumentere målepunkter og mål.")
	}

	res := ModuleResult{
		Unit: "opfyldte krav",
		Assumptions: []string{
			"Basis- og fremdriftsbeskrivelser på mindst 150 tegn regnes som fyldestgørende.",
		},
		Trace:    []string{},
		Warnings: []string{},
	}

	reqs := []requirement{
		{
			id:      "metrics",
			label:   "Målepunkter",
			context: "Mindst ét målepunkt skal være defineret.",
			failMsg: "Definér de målepunkter, der følges op på.",
			pass:    fval(raw.MetricsCount) > 0,
		},
		{
			id:      "targets",
			label:   "Mål",
			context: "Mindst ét mål skal være fastsat.",
			failMsg: "Fastsæt mindst ét mål for de væsentlige emner.",
			pass:    fval(raw.TargetsCount) > 0,
		},
		{
			id:      "baseline",
			label:   "Basisår",
			context: "Basisåret og dets opgørelse skal beskrives.",
			failMsg: "Beskriv basisåret og dets opgørelse (mindst 150 tegn).",
			pass:    detailed(raw.BaselineDescription, 150),
		},
		{
			id:      "progress",
			label:   "Fremdrift",
			context: "Fremdriften mod målene skal beskrives.",
			failMsg: "Beskriv fremdriften mod målene (mindst 150 tegn).",
			pass:    detailed(raw.ProgressDescription, 150),
		},
	}
	evaluateRequirements(&res, reqs)
	return res
}
