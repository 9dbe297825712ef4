package engine

// Social modules S1-S4: requirement evaluators over workforce, value-chain
// worker, community and consumer disclosures. S1 additionally reports the
// lost-time injury frequency as a metric.

// S1Input covers the own workforce.
type S1Input struct {
	EmployeesTotal                     *float64 `json:"employeesTotal,omitempty"`
	AccidentsCount                     *float64 `json:"accidentsCount,omitempty"`
	HoursWorked                        *float64 `json:"hoursWorked,omitempty"`
	HasWorkforcePolicy                 *bool    `json:"hasWorkforcePolicy,omitempty"`
	CollectiveAgreementCoveragePercent *float64 `json:"collectiveAgreementCoveragePercent,omitempty"`
	TrainingHoursPerEmployee           *float64 `json:"trainingHoursPerEmployee,omitempty"`
	DialogueDescription                *string  `json:"dialogueDescription,omitempty"`
}

func runS1(in *ModuleInput) ModuleResult {
	raw := in.S1
	if raw == nil || !present(
		raw.EmployeesTotal != nil, raw.AccidentsCount != nil, raw.HoursWorked != nil,
		raw.HasWorkforcePolicy != nil, raw.CollectiveAgreementCoveragePercent != nil,
		raw.TrainingHoursPerEmployee != nil, raw.DialogueDescription != nil,
	) {
		return emptyChecklistResult("opfyldte krav",
			"Udfyld S1-felterne for at dokumentere forholdene for egen arbejdsstyrke.")
	}

	res := ModuleResult{
		Unit: "opfyldte krav",
		Assumptions: []string{
			"Ulykkesfrekvensen opgøres pr. mio. arbejdstimer (LTIF).",
		},
		Trace:    []string{},
		Warnings: []string{},
	}

	employees := nonNegative(raw.EmployeesTotal, "employeesTotal", &res.Warnings, true)
	accidents := nonNegative(raw.AccidentsCount, "accidentsCount", &res.Warnings, true)
	hours := nonNegative(raw.HoursWorked, "hoursWorked", &res.Warnings, true)
	coverage := bounded(raw.CollectiveAgreementCoveragePercent,
		"collectiveAgreementCoveragePercent", 100, &res.Warnings, true)
	training := nonNegative(raw.TrainingHoursPerEmployee, "trainingHoursPerEmployee", &res.Warnings, true)

	reqs := []requirement{
		{
			id:      "policy",
			label:   "Personalepolitik",
			context: "En politik for egen arbejdsstyrke skal foreligge.",
			failMsg: "Udarbejd en politik for egen arbejdsstyrke.",
			pass:    bval(raw.HasWorkforcePolicy),
		},
		{
			id:      "accidentData",
			label:   "Ulykkesdata",
			context: "Arbejdstimer og ulykker skal registreres for at opgøre frekvensen.",
			failMsg: "Registrér arbejdstimer og arbejdsulykker for at kunne opgøre ulykkesfrekvensen.",
			pass:    hours > 0,
		},
		{
			id:      "training",
			label:   "Uddannelse",
			context: "Medarbejderne skal modtage uddannelse i rapporteringsåret.",
			failMsg: "Angiv de gennemførte uddannelsestimer pr. medarbejder.",
			pass:    training > 0,
		},
		{
			id:      "dialogue",
			label:   "Medarbejderdialog",
			context: "Dialogen med arbejdsstyrken skal beskrives.",
			failMsg: "Beskriv dialogen med arbejdsstyrken mere udførligt (mindst 150 tegn).",
			pass:    detailed(raw.DialogueDescription, 150),
		},
	}
	evaluateRequirements(&res, reqs)

	ltif := round(safeDiv(accidents, hours)*1_000_000, 1)
	traceNum(&res.Trace, "employeesTotal", employees)
	traceNum(&res.Trace, "accidentFrequencyPerMillionHours", ltif)
	res.Metrics = append(res.Metrics,
		Metric{
			Label:   "Ulykkesfrekvens (LTIF)",
			Value:   danishNum(ltif, 1),
			Unit:    "pr. mio. timer",
			Context: "Arbejdsulykker med fravær pr. million arbejdstimer.",
		},
		Metric{
			Label:   "Overenskomstdækning",
			Value:   danishNum(coverage, 0),
			Unit:    "%",
			Context: "Andel af arbejdsstyrken dækket af kollektiv overenskomst.",
		},
	)
	return res
}

// S2Input covers workers in the value chain.
type S2Input struct {
	HasValueChainPolicy     *bool    `json:"hasValueChainPolicy,omitempty"`
	DueDiligenceDescription *string  `json:"dueDiligenceDescription,omitempty"`
	HasGrievanceMechanism   *bool    `json:"hasGrievanceMechanism,omitempty"`
	SupplierAuditsCount     *float64 `json:"supplierAuditsCount,omitempty"`
}

func runS2(in *ModuleInput) ModuleResult {
	raw := in.S2
	if raw == nil || !present(
		raw.HasValueChainPolicy != nil, raw.DueDiligenceDescription != nil,
		raw.HasGrievanceMechanism != nil, raw.SupplierAuditsCount != nil,
	) {
		return emptyChecklistResult("opfyldte krav",
			"Udfyld S2-felterne for at dokumentere forholdene for arbejdstagere i værdikæden.")
	}

	res := ModuleResult{
		Unit: "opfyldte krav",
		Assumptions: []string{
			"Due diligence-beskrivelser på mindst 200 tegn regnes som fyldestgørende.",
		},
		Trace:    []string{},
		Warnings: []string{},
	}

	reqs := []requirement{
		{
			id:      "policy",
			label:   "Værdikædepolitik",
			context: "En politik for arbejdstagere i værdikæden skal foreligge.",
			failMsg: "Udarbejd en politik for arbejdstagere i værdikæden.",
			pass:    bval(raw.HasValueChainPolicy),
		},
		{
			id:      "dueDiligence",
			label:   "Due diligence",
			context: "Processen for due diligence i leverandørkæden skal beskrives.",
			failMsg: "Beskriv due diligence-processen mere udførligt (mindst 200 tegn).",
			pass:    detailed(raw.DueDiligenceDescription, 200),
		},
		{
			id:      "grievance",
			label:   "Klagemekanisme",
			context: "Arbejdstagere i værdikæden skal have adgang til en klagemekanisme.",
			failMsg: "Etabler en klagemekanisme for arbejdstagere i værdikæden.",
			pass:    bval(raw.HasGrievanceMechanism),
		},
		{
			id:      "audits",
			label:   "Leverandøraudits",
			context: "Mindst én leverandøraudit skal være gennemført i rapporteringsåret.",
			failMsg: "Gennemfør leverandøraudits, og angiv antallet.",
			pass:    fval(raw.SupplierAuditsCount) > 0,
		},
	}
	evaluateRequirements(&res, reqs)
	return res
}

// S3Input covers affected communities.
type S3Input struct {
	HasCommunityPolicy    *bool    `json:"hasCommunityPolicy,omitempty"`
	EngagementDescription *string  `json:"engagementDescription,omitempty"`
	HasGrievanceMechanism *bool    `json:"hasGrievanceMechanism,omitempty"`
	ConsultationsCount    *float64 `json:"consultationsCount,omitempty"`
}

func runS3(in *ModuleInput) ModuleResult {
	raw := in.S3
	if raw == nil || !present(
		raw.HasCommunityPolicy != nil, raw.EngagementDescription != nil,
		raw.HasGrievanceMechanism != nil, raw.ConsultationsCount != nil,
	) {
		return emptyChecklistResult("opfyldte krav",
			"Udfyld S3-felterne for at dokumentere forholdet til berørte lokalsamfund.")
	}

	res := ModuleResult{
		Unit: "opfyldte krav",
		Assumptions: []string{
			"Inddragelsesbeskrivelser på mindst 150 tegn regnes som fyldestgørende.",
		},
		Trace:    []string{},
		Warnings: []string{},
	}

	reqs := []requirement{
		{
			id:      "policy",
			label:   "Lokalsamfundspolitik",
			context: "En politik for berørte lokalsamfund skal foreligge.",
			failMsg: "Udarbejd en politik for berørte lokalsamfund.",
			pass:    bval(raw.HasCommunityPolicy),
		},
		{
			id:      "engagement",
			label:   "Inddragelse",
			context: "Inddragelsen af lokalsamfund skal beskrives.",
			failMsg: "Beskriv inddragelsen af lokalsamfund mere udførligt (mindst 150 tegn).",
			pass:    detailed(raw.EngagementDescription, 150),
		},
		{
			id:      "grievance",
			label:   "Klagemekanisme",
			context: "Lokalsamfund skal have adgang til en klagemekanisme.",
			failMsg: "Etabler en klagemekanisme for berørte lokalsamfund.",
			pass:    bval(raw.HasGrievanceMechanism),
		},
		{
			id:      "consultations",
			label:   "Høringer",
			context: "Mindst én høring skal være gennemført i rapporteringsåret.",
			failMsg: "Gennemfør høringer med berørte lokalsamfund, og angiv antallet.",
			pass:    fval(raw.ConsultationsCount) > 0,
		},
	}
	evaluateRequirements(&res, reqs)
	return res
}

// S4Input covers consumers and end-users.
type S4Input struct {
	HasConsumerPolicy        *bool   `json:"hasConsumerPolicy,omitempty"`
	ProductSafetyDescription *string `json:"productSafetyDescription,omitempty"`
	HasComplaintsProcess     *bool   `json:"hasComplaintsProcess,omitempty"`
	DataPrivacyDescription   *string `json:"dataPrivacyDescription,omitempty"`
}

func runS4(in *ModuleInput) ModuleResult {
	raw := in.S4
	if raw == nil || !present(
		raw.HasConsumerPolicy != nil, raw.ProductSafetyDescription != nil,
		raw.HasComplaintsProcess != nil, raw.DataPrivacyDescription != nil,
	) {
		return emptyChecklistResult("opfyldte krav",
			"Udfyld S4-felterne for at dokumentere forholdet til forbrugere og slutbrugere.")
	}

	res := ModuleResult{
		Unit: "opfyldte krav",
		Assumptions: []string{
			"Produktsikkerheds- og databeskrivelser på mindst 150 tegn regnes som fyldestgørende.",
		},
		Trace:    []string{},
		Warnings: []string{},
	}

	reqs := []requirement{
		{
			id:      "policy",
			label:   "Forbrugerpolitik",
			context: "En politik for forbrugere og slutbrugere skal foreligge.",
			failMsg: "Udarbejd en politik for forbrugere og slutbrugere.",
			pass:    bval(raw.HasConsumerPolicy),
		},
		{
			id:      "productSafety",
			label:   "Produktsikkerhed",
			context: "Processen for produktsikkerhed skal beskrives.",
			failMsg: "Beskriv produktsikkerhedsprocessen mere udførligt (mindst 150 tegn).",
			pass:    detailed(raw.ProductSafetyDescription, 150),
		},
		{
			id:      "complaints",
			label:   "Klagehåndtering",
			context: "Forbrugere skal have adgang til en klageproces.",
			failMsg: "Etabler en klageproces for forbrugere og slutbrugere.",
			pass:    bval(raw.HasComplaintsProcess),
		},
		{
			id:      "dataPrivacy",
			label:   "Databeskyttelse",
			context: "Håndteringen af forbrugerdata skal beskrives.",
			failMsg: "Beskriv håndteringen af forbrugerdata mere udførligt (mindst 150 tegn).",
			pass:    detailed(raw.DataPrivacyDescription, 150),
		},
	}
	evaluateRequirements(&res, reqs)
	return res
}
