package engine

// Renewable-energy instrument modules B7–B11. These document emission
// reductions and report negative tonnes by design; a result that rounds to
// zero is normalised to 0, never -0.

// finishCredit writes the shared credit-module tail: avoided-emission trace
// lines and the negative headline value.
func finishCredit(res *ModuleResult, avoidedKg float64, precision int) {
	traceNum(&res.Trace, "avoidedEmissionsKg", avoidedKg)
	tonnes := avoidedKg * kgToTonnes
	traceNum(&res.Trace, "avoidedEmissionsTonnes", tonnes)
	res.Value = round(finite(-tonnes), precision)
}

// residualFactor resolves the residual-mix emission factor, falling back to
// the published default.
func residualFactor(v *float64, warnings *[]string, warnMissing bool) float64 {
	if v == nil {
		return creditFactors.DefaultResidualKgPerKwh
	}
	f := nonNegative(v, "residualEmissionFactorKgPerKwh", warnings, warnMissing)
	if f == 0 {
		return creditFactors.DefaultResidualKgPerKwh
	}
	return f
}

// B7Input covers cancelled guarantees of origin.
type B7Input struct {
	DocumentedRenewableKwh        *float64 `json:"documentedRenewableKwh,omitempty"`
	ResidualEmissionFactorKgPerKwh *float64 `json:"residualEmissionFactorKgPerKwh,omitempty"`
	DocumentationQualityPercent   *float64 `json:"documentationQualityPercent,omitempty"`
}

func runB7(in *ModuleInput) ModuleResult {
	raw := in.B7
	if raw == nil {
		raw = &B7Input{}
	}
	res := ModuleResult{
		Unit: "t CO2e",
		Assumptions: []string{
			"Annullerede oprindelsesgarantier modregnes mod residualmiksets emissionsfaktor.",
			"Et forsigtighedsfradrag på 5% anvendes på den dokumenterede mængde.",
		},
		Trace:    []string{},
		Warnings: []string{},
	}

	has := present(
		raw.DocumentedRenewableKwh != nil, raw.ResidualEmissionFactorKgPerKwh != nil,
		raw.DocumentationQualityPercent != nil,
	)

	kwh := nonNegative(raw.DocumentedRenewableKwh, "documentedRenewableKwh", &res.Warnings, has)
	docQuality := quality(raw.DocumentationQualityPercent, "documentationQualityPercent",
		creditFactors.QualityDefaultPercent, creditFactors.QualityThresholdPercent,
		"oprindelsesgarantier", &res.Warnings, has)
	residual := residualFactor(raw.ResidualEmissionFactorKgPerKwh, &res.Warnings, has)

	qualityAdjustedKwh := round(kwh*(docQuality/100)*claimConservatismFactor, 6)

	traceNum(&res.Trace, "documentedRenewableKwh", kwh)
	traceNum(&res.Trace, "documentationQualityPercent", docQuality)
	traceNum(&res.Trace, "qualityAdjustedKwh", qualityAdjustedKwh)
	traceNum(&res.Trace, "residualEmissionFactorKgPerKwh", residual)

	avoidedKg := round(qualityAdjustedKwh*residual, 6)
	finishCredit(&res, avoidedKg, creditFactors.ResultPrecision)
	return res
}

// B8Input covers power purchase agreements.
type B8Input struct {
	DeliveredPpaKwh                *float64 `json:"deliveredPpaKwh,omitempty"`
	MatchedConsumptionKwh          *float64 `json:"matchedConsumptionKwh,omitempty"`
	ResidualEmissionFactorKgPerKwh *float64 `json:"residualEmissionFactorKgPerKwh,omitempty"`
	SettlementSharePercent         *float64 `json:"settlementSharePercent,omitempty"`
	DocumentationQualityPercent    *float64 `json:"documentationQualityPercent,omitempty"`
}

func runB8(in *ModuleInput) ModuleResult {
	raw := in.B8
	if raw == nil {
		raw = &B8Input{}
	}
	res := ModuleResult{
		Unit: "t CO2e",
		Assumptions: []string{
			"Kun forbrug matchet mod leveret PPA-energi modregnes.",
			"Et forsigtighedsfradrag på 5% anvendes på den matchede mængde.",
		},
		Trace:    []string{},
		Warnings: []string{},
	}

	has := present(
		raw.DeliveredPpaKwh != nil, raw.MatchedConsumptionKwh != nil,
		raw.ResidualEmissionFactorKgPerKwh != nil, raw.SettlementSharePercent != nil,
		raw.DocumentationQualityPercent != nil,
	)

	delivered := nonNegative(raw.DeliveredPpaKwh, "deliveredPpaKwh", &res.Warnings, has)
	matched := nonNegative(raw.MatchedConsumptionKwh, "matchedConsumptionKwh", &res.Warnings, has)
	if matched > delivered {
		warnCapped(&res.Warnings, "Det matchede forbrug", "den leverede PPA-energi")
		matched = delivered
	}

	settlement := bounded(raw.SettlementSharePercent, "settlementSharePercent", 100, &res.Warnings, false)
	if raw.SettlementSharePercent != nil && settlement < creditFactors.SettlementThresholdPercent {
		res.Warnings = append(res.Warnings,
			"Afregningsgraden for PPA-aftalen er under "+num(creditFactors.SettlementThresholdPercent)+
				"%. Dokumentér den time-for-time afregnede andel.")
	}

	docQuality := quality(raw.DocumentationQualityPercent, "documentationQualityPercent",
		creditFactors.QualityDefaultPercent, creditFactors.QualityThresholdPercent,
		"PPA-aftalen", &res.Warnings, has)
	residual := residualFactor(raw.ResidualEmissionFactorKgPerKwh, &res.Warnings, has)

	qualityAdjustedKwh := round(matched*(docQuality/100)*claimConservatismFactor, 6)

	traceNum(&res.Trace, "deliveredPpaKwh", delivered)
	traceNum(&res.Trace, "matchedConsumptionKwh", matched)
	traceNum(&res.Trace, "settlementSharePercent", settlement)
	traceNum(&res.Trace, "documentationQualityPercent", docQuality)
	traceNum(&res.Trace, "qualityAdjustedKwh", qualityAdjustedKwh)
	traceNum(&res.Trace, "residualEmissionFactorKgPerKwh", residual)

	avoidedKg := round(qualityAdjustedKwh*residual, 6)
	finishCredit(&res, avoidedKg, creditFactors.ResultPrecision)
	return res
}

// B9Input covers self-consumed on-site renewable production.
type B9Input struct {
	ProducedKwh                    *float64 `json:"producedKwh,omitempty"`
	SelfConsumedKwh                *float64 `json:"selfConsumedKwh,omitempty"`
	GridLossPercent                *float64 `json:"gridLossPercent,omitempty"`
	ResidualEmissionFactorKgPerKwh *float64 `json:"residualEmissionFactorKgPerKwh,omitempty"`
	DocumentationQualityPercent    *float64 `json:"documentationQualityPercent,omitempty"`
}

func runB9(in *ModuleInput) ModuleResult {
	raw := in.B9
	if raw == nil {
		raw = &B9Input{}
	}
	res := ModuleResult{
		Unit: "t CO2e",
		Assumptions: []string{
			"Kun egetforbrugt produktion modregnes; eksport opgøres i B10.",
			"Et forsigtighedsfradrag på 5% anvendes på den egetforbrugte mængde.",
		},
		Trace:    []string{},
		Warnings: []string{},
	}

	has := present(
		raw.ProducedKwh != nil, raw.SelfConsumedKwh != nil, raw.GridLossPercent != nil,
		raw.ResidualEmissionFactorKgPerKwh != nil, raw.DocumentationQualityPercent != nil,
	)

	produced := nonNegative(raw.ProducedKwh, "producedKwh", &res.Warnings, has)
	selfConsumed := nonNegative(raw.SelfConsumedKwh, "selfConsumedKwh", &res.Warnings, has)
	if selfConsumed > produced {
		warnCapped(&res.Warnings, "Det egetforbrugte", "den producerede mængde")
		selfConsumed = produced
	}

	// Corrective grid-loss cap first, quality advisory after; the order is
	// part of the observable warning contract.
	lossPercent := 0.0
	if raw.GridLossPercent != nil {
		lossPercent = bounded(raw.GridLossPercent, "gridLossPercent", b6Factors.MaxLossPercent, &res.Warnings, true)
	}
	docQuality := quality(raw.DocumentationQualityPercent, "documentationQualityPercent",
		creditFactors.QualityDefaultPercent, creditFactors.QualityThresholdPercent,
		"egenproduktionen", &res.Warnings, has)
	residual := residualFactor(raw.ResidualEmissionFactorKgPerKwh, &res.Warnings, has)

	effectiveKwh := round(selfConsumed*(1-lossPercent/100), 6)
	qualityAdjustedKwh := round(effectiveKwh*(docQuality/100)*claimConservatismFactor, 6)

	traceNum(&res.Trace, "producedKwh", produced)
	traceNum(&res.Trace, "selfConsumedKwh", selfConsumed)
	traceNum(&res.Trace, "gridLossPercent", lossPercent)
	traceNum(&res.Trace, "effectiveKwh", effectiveKwh)
	traceNum(&res.Trace, "documentationQualityPercent", docQuality)
	traceNum(&res.Trace, "qualityAdjustedKwh", qualityAdjustedKwh)
	traceNum(&res.Trace, "residualEmissionFactorKgPerKwh", residual)

	avoidedKg := round(qualityAdjustedKwh*residual, 6)
	finishCredit(&res, avoidedKg, creditFactors.ResultPrecision)
	return res
}

// B10Input covers exported renewable surplus.
type B10Input struct {
	ProducedKwh                    *float64 `json:"producedKwh,omitempty"`
	ExportedKwh                    *float64 `json:"exportedKwh,omitempty"`
	ResidualEmissionFactorKgPerKwh *float64 `json:"residualEmissionFactorKgPerKwh,omitempty"`
	DocumentationQualityPercent    *float64 `json:"documentationQualityPercent,omitempty"`
}

func runB10(in *ModuleInput) ModuleResult {
	raw := in.B10
	if raw == nil {
		raw = &B10Input{}
	}
	res := ModuleResult{
		Unit: "t CO2e",
		Assumptions: []string{
			"Eksporteret overskud krediteres mod residualmiksets emissionsfaktor.",
			"Et forsigtighedsfradrag på 5% anvendes på den eksporterede mængde.",
		},
		Trace:    []string{},
		Warnings: []string{},
	}

	has := present(
		raw.ProducedKwh != nil, raw.ExportedKwh != nil,
		raw.ResidualEmissionFactorKgPerKwh != nil, raw.DocumentationQualityPercent != nil,
	)

	produced := nonNegative(raw.ProducedKwh, "producedKwh", &res.Warnings, has)
	exported := nonNegative(raw.ExportedKwh, "exportedKwh", &res.Warnings, has)
	if exported > produced {
		warnCapped(&res.Warnings, "Den eksporterede mængde", "den producerede mængde")
		exported = produced
	}

	docQuality := quality(raw.DocumentationQualityPercent, "documentationQualityPercent",
		creditFactors.QualityDefaultPercent, creditFactors.QualityThresholdPercent,
		"den eksporterede produktion", &res.Warnings, has)
	residual := residualFactor(raw.ResidualEmissionFactorKgPerKwh, &res.Warnings, has)

	qualityAdjustedKwh := round(exported*(docQuality/100)*claimConservatismFactor, 6)

	traceNum(&res.Trace, "producedKwh", produced)
	traceNum(&res.Trace, "exportedKwh", exported)
	traceNum(&res.Trace, "documentationQualityPercent", docQuality)
	traceNum(&res.Trace, "qualityAdjustedKwh", qualityAdjustedKwh)
	traceNum(&res.Trace, "residualEmissionFactorKgPerKwh", residual)

	avoidedKg := round(qualityAdjustedKwh*residual, 6)
	finishCredit(&res, avoidedKg, creditFactors.ResultPrecision)
	return res
}

// B11Input covers hourly-matched renewable certificates.
type B11Input struct {
	CertifiedKwh                   *float64 `json:"certifiedKwh,omitempty"`
	TimeCorrelationPercent         *float64 `json:"timeCorrelationPercent,omitempty"`
	ResidualEmissionFactorKgPerKwh *float64 `json:"residualEmissionFactorKgPerKwh,omitempty"`
	DocumentationQualityPercent    *float64 `json:"documentationQualityPercent,omitempty"`
}

func runB11(in *ModuleInput) ModuleResult {
	raw := in.B11
	if raw == nil {
		raw = &B11Input{}
	}
	res := ModuleResult{
		Unit: "t CO2e",
		Assumptions: []string{
			"Kun den timekorrelerede andel af certifikaterne modregnes.",
			"Et forsigtighedsfradrag på 5% anvendes på den certificerede mængde.",
		},
		Trace:    []string{},
		Warnings: []string{},
	}

	has := present(
		raw.CertifiedKwh != nil, raw.TimeCorrelationPercent != nil,
		raw.ResidualEmissionFactorKgPerKwh != nil, raw.DocumentationQualityPercent != nil,
	)

	certified := nonNegative(raw.CertifiedKwh, "certifiedKwh", &res.Warnings, has)

	correlation := 100.0
	if raw.TimeCorrelationPercent != nil {
		correlation = bounded(raw.TimeCorrelationPercent, "timeCorrelationPercent", 100, &res.Warnings, true)
	}
	if correlation < creditFactors.TimeCorrelationThreshold {
		res.Warnings = append(res.Warnings,
			"Tidskorrelationen er under "+num(creditFactors.TimeCorrelationThreshold)+
				"%. Timematchede krav bør dokumenteres bedre.")
	}

	docQuality := quality(raw.DocumentationQualityPercent, "documentationQualityPercent",
		creditFactors.QualityDefaultPercent, creditFactors.QualityThresholdPercent,
		"certifikaterne", &res.Warnings, has)
	residual := residualFactor(raw.ResidualEmissionFactorKgPerKwh, &res.Warnings, has)

	correlatedKwh := round(certified*correlation/100, 6)
	qualityAdjustedKwh := round(correlatedKwh*(docQuality/100)*claimConservatismFactor, 6)

	traceNum(&res.Trace, "certifiedKwh", certified)
	traceNum(&res.Trace, "timeCorrelationPercent", correlation)
	traceNum(&res.Trace, "correlatedKwh", correlatedKwh)
	traceNum(&res.Trace, "documentationQualityPercent", docQuality)
	traceNum(&res.Trace, "qualityAdjustedKwh", qualityAdjustedKwh)
	traceNum(&res.Trace, "residualEmissionFactorKgPerKwh", residual)

	avoidedKg := round(qualityAdjustedKwh*residual, 6)
	finishCredit(&res, avoidedKg, creditFactors.ResultPrecision)
	return res
}
