package engine

// Environment modules beyond climate: water, pollution, biodiversity and
// resource use. Each produces a 0-100 index from a short weighted pipeline.

// E2WaterInput covers water withdrawal and water stress.
type E2WaterInput struct {
	TotalWithdrawalM3           *float64 `json:"totalWithdrawalM3,omitempty"`
	WithdrawalInStressRegionsM3 *float64 `json:"withdrawalInStressRegionsM3,omitempty"`
	DischargeM3                 *float64 `json:"dischargeM3,omitempty"`
	ReusePercent                *float64 `json:"reusePercent,omitempty"`
	DataQualityPercent          *float64 `json:"dataQualityPercent,omitempty"`
}

func runE2Water(in *ModuleInput) ModuleResult {
	raw := in.E2Water
	if raw == nil {
		raw = &E2WaterInput{}
	}
	res := ModuleResult{
		Unit: "vandrisikoindeks (0-100)",
		Assumptions: []string{
			"Risikoindekset vægter stressandel (0,8), nettoforbrugsandel (0,5) og datakvalitetsgab (0,25).",
		},
		Trace:    []string{},
		Warnings: []string{},
	}

	warnMissing := present(
		raw.TotalWithdrawalM3 != nil, raw.WithdrawalInStressRegionsM3 != nil,
		raw.DischargeM3 != nil, raw.ReusePercent != nil, raw.DataQualityPercent != nil,
	)

	withdrawal := nonNegative(raw.TotalWithdrawalM3, "totalWithdrawalM3", &res.Warnings, warnMissing)
	stressed := nonNegative(raw.WithdrawalInStressRegionsM3, "withdrawalInStressRegionsM3", &res.Warnings, warnMissing)
	discharge := nonNegative(raw.DischargeM3, "dischargeM3", &res.Warnings, warnMissing)
	reuse := bounded(raw.ReusePercent, "reusePercent", 100, &res.Warnings, warnMissing)
	dataQuality := quality(raw.DataQualityPercent, "dataQualityPercent", 100,
		lowDocThresholdPercent, "vandopgørelsen", &res.Warnings, warnMissing)

	if stressed > withdrawal {
		warnCapped(&res.Warnings, "Indvindingen i stressede områder", "den samlede indvinding")
		stressed = withdrawal
	}

	stressShare := safeDiv(stressed, withdrawal)
	netConsumption := round(withdrawal*(1-reuse/100)-discharge, 6)
	if netConsumption < 0 {
		netConsumption = 0
	}
	netConsumptionShare := safeDiv(netConsumption, withdrawal)
	qualityGap := round(1-dataQuality/100, 6)

	traceNum(&res.Trace, "totalWithdrawalM3", withdrawal)
	traceNum(&res.Trace, "withdrawalInStressRegionsM3", stressed)
	traceNum(&res.Trace, "netConsumptionM3", netConsumption)
	traceNum(&res.Trace, "stressShare", stressShare)
	traceNum(&res.Trace, "netConsumptionShare", netConsumptionShare)
	traceNum(&res.Trace, "qualityGap", qualityGap)

	weightedRisk := stressShare*e2Factors.StressWeight +
		netConsumptionShare*e2Factors.ConsumptionWeight +
		qualityGap*e2Factors.QualityGapWeight
	traceFixed(&res.Trace, "weightedRisk", weightedRisk, 4)

	if stressShare*100 > e2Factors.StressShareWarnPercent {
		res.Warnings = append(res.Warnings, "En stor andel af vandindvindingen ("+
			num(round(stressShare*100, 1))+"%) sker i områder med vandstress. Vurdér muligheder for at reducere forbruget dér.")
	}

	res.Value = round(finite(weightedRisk*100), e2Factors.ResultPrecision)
	return res
}

// E3PollutionInput covers emissions of pollutants to air, water and soil.
type E3PollutionInput struct {
	AirEmissionsTonnes   *float64 `json:"airEmissionsTonnes,omitempty"`
	WaterEmissionsTonnes *float64 `json:"waterEmissionsTonnes,omitempty"`
	SoilEmissionsTonnes  *float64 `json:"soilEmissionsTonnes,omitempty"`
	PermitCompliant      *bool    `json:"permitCompliant,omitempty"`
}

func runE3Pollution(in *ModuleInput) ModuleResult {
	raw := in.E3Pollution
	if raw == nil {
		raw = &E3PollutionInput{}
	}
	res := ModuleResult{
		Unit: "t forurenende stoffer (vægtet)",
		Assumptions: []string{
			"Udledninger til luft, vand og jord vægtes 0,5, 0,3 og 0,2 i det samlede indeks.",
		},
		Trace:    []string{},
		Warnings: []string{},
	}

	warnMissing := present(
		raw.AirEmissionsTonnes != nil, raw.WaterEmissionsTonnes != nil,
		raw.SoilEmissionsTonnes != nil, raw.PermitCompliant != nil,
	)

	air := nonNegative(raw.AirEmissionsTonnes, "airEmissionsTonnes", &res.Warnings, warnMissing)
	water := nonNegative(raw.WaterEmissionsTonnes, "waterEmissionsTonnes", &res.Warnings, warnMissing)
	soil := nonNegative(raw.SoilEmissionsTonnes, "soilEmissionsTonnes", &res.Warnings, warnMissing)

	if raw.PermitCompliant != nil && !*raw.PermitCompliant {
		res.Warnings = append(res.Warnings,
			"Udledningerne overholder ikke miljøgodkendelsen. Beskriv de afhjælpende tiltag.")
	}

	traceNum(&res.Trace, "airEmissionsTonnes", air)
	traceNum(&res.Trace, "waterEmissionsTonnes", water)
	traceNum(&res.Trace, "soilEmissionsTonnes", soil)

	weighted := air*e3Factors.AirWeight + water*e3Factors.WaterWeight + soil*e3Factors.SoilWeight
	traceNum(&res.Trace, "weightedTonnes", round(weighted, 6))

	res.Value = round(finite(weighted), e3Factors.ResultPrecision)
	return res
}

// E4BiodiversityInput covers sites in or near biodiversity-sensitive areas.
type E4BiodiversityInput struct {
	SitesTotal                 *float64 `json:"sitesTotal,omitempty"`
	SitesNearSensitiveAreas    *float64 `json:"sitesNearSensitiveAreas,omitempty"`
	MitigationPlanSharePercent *float64 `json:"mitigationPlanSharePercent,omitempty"`
}

func runE4Biodiversity(in *ModuleInput) ModuleResult {
	raw := in.E4Biodiversity
	if raw == nil {
		raw = &E4BiodiversityInput{}
	}
	res := ModuleResult{
		Unit: "biodiversitetsindeks (0-100)",
		Assumptions: []string{
			"Afværgeplaner reducerer risikobidraget fra følsomme lokaliteter med op til 50 %.",
		},
		Trace:    []string{},
		Warnings: []string{},
	}

	warnMissing := present(
		raw.SitesTotal != nil, raw.SitesNearSensitiveAreas != nil,
		raw.MitigationPlanSharePercent != nil,
	)

	total := nonNegative(raw.SitesTotal, "sitesTotal", &res.Warnings, warnMissing)
	sensitive := nonNegative(raw.SitesNearSensitiveAreas, "sitesNearSensitiveAreas", &res.Warnings, warnMissing)
	mitigation := bounded(raw.MitigationPlanSharePercent, "mitigationPlanSharePercent",
		100, &res.Warnings, warnMissing)

	if sensitive > total {
		warnCapped(&res.Warnings, "Antallet af følsomme lokaliteter", "det samlede antal lokaliteter")
		sensitive = total
	}

	sensitiveShare := safeDiv(sensitive, total)
	riskScore := sensitiveShare * e4Factors.SensitiveAreaWeight *
		(1 - mitigation/100*e4Factors.MitigationRate)

	traceNum(&res.Trace, "sitesTotal", total)
	traceNum(&res.Trace, "sitesNearSensitiveAreas", sensitive)
	traceNum(&res.Trace, "sensitiveShare", round(sensitiveShare, 6))
	traceNum(&res.Trace, "riskScore", round(riskScore, 6))

	res.Value = round(finite(riskScore), e4Factors.ResultPrecision)
	return res
}

// E5ResourcesInput covers resource use and circular economy.
type E5ResourcesInput struct {
	RecycledContentPercent *float64 `json:"recycledContentPercent,omitempty"`
	RecyclablePercent      *float64 `json:"recyclablePercent,omitempty"`
	TotalMaterialTonnes    *float64 `json:"totalMaterialTonnes,omitempty"`
}

func runE5Resources(in *ModuleInput) ModuleResult {
	raw := in.E5Resources
	if raw == nil {
		raw = &E5ResourcesInput{}
	}
	res := ModuleResult{
		Unit: "cirkularitetsindeks (0-100)",
		Assumptions: []string{
			"Cirkulariteten vægter genanvendt indhold og genanvendelighed ligeligt.",
		},
		Trace:    []string{},
		Warnings: []string{},
	}

	warnMissing := present(
		raw.RecycledContentPercent != nil, raw.RecyclablePercent != nil,
		raw.TotalMaterialTonnes != nil,
	)

	recycled := bounded(raw.RecycledContentPercent, "recycledContentPercent", 100, &res.Warnings, warnMissing)
	recyclable := bounded(raw.RecyclablePercent, "recyclablePercent", 100, &res.Warnings, warnMissing)
	material := nonNegative(raw.TotalMaterialTonnes, "totalMaterialTonnes", &res.Warnings, false)

	traceNum(&res.Trace, "recycledContentPercent", recycled)
	traceNum(&res.Trace, "recyclablePercent", recyclable)
	if material > 0 {
		traceNum(&res.Trace, "totalMaterialTonnes", material)
	}

	score := recycled*e5Factors.RecycledContentWeight + recyclable*e5Factors.RecyclabilityWeight
	traceNum(&res.Trace, "circularityScore", round(score, 6))

	res.Value = round(finite(score), e5Factors.ResultPrecision)
	return res
}
