package engine

// Scope 2 energy modules. B1 applies the E1 insight overlay itself; the
// dispatcher must not apply it again.

// B1Input covers purchased electricity.
type B1Input struct {
	ElectricityKwh              *float64 `json:"electricityKwh,omitempty"`
	UseMarketBasedMethod        *bool    `json:"useMarketBasedMethod,omitempty"`
	DocumentationQualityPercent *float64 `json:"documentationQualityPercent,omitempty"`
}

func runB1(in *ModuleInput) ModuleResult {
	raw := in.B1
	if raw == nil {
		raw = &B1Input{}
	}
	res := ModuleResult{
		Unit: "t CO2e",
		Assumptions: []string{
			"Lokationsbaseret emissionsfaktor for det danske elnet anvendes som standard.",
			"Markedsbaseret metode anvender residualmiksets emissionsfaktor.",
		},
		Trace:    []string{},
		Warnings: []string{},
	}

	has := present(
		raw.ElectricityKwh != nil, raw.UseMarketBasedMethod != nil,
		raw.DocumentationQualityPercent != nil,
	)

	kwh := nonNegative(raw.ElectricityKwh, "electricityKwh", &res.Warnings, has)
	quality(raw.DocumentationQualityPercent, "documentationQualityPercent", 100,
		lowDocThresholdPercent, "indkøbt elektricitet", &res.Warnings, has)

	factor := b1Factors.LocationKgPerKwh
	method := "locationBased"
	if bval(raw.UseMarketBasedMethod) {
		factor = b1Factors.ResidualKgPerKwh
		method = "marketBased"
	}

	traceNum(&res.Trace, "electricityKwh", kwh)
	traceStr(&res.Trace, "method", method)
	traceNum(&res.Trace, "emissionFactorKgPerKwh", factor)

	totalKg := round(kwh*factor, 6)
	traceNum(&res.Trace, "totalEmissionsKg", totalKg)
	tonnes := totalKg * kgToTonnes
	traceNum(&res.Trace, "totalEmissionsTonnes", tonnes)

	res.Value = round(finite(tonnes), b1Factors.ResultPrecision)
	applyE1Insights(&res, in, scope2)
	return res
}

// B2Input covers purchased district heating.
type B2Input struct {
	DistrictHeatKwh             *float64 `json:"districtHeatKwh,omitempty"`
	SurplusHeatSharePercent     *float64 `json:"surplusHeatSharePercent,omitempty"`
	DocumentationQualityPercent *float64 `json:"documentationQualityPercent,omitempty"`
}

func runB2(in *ModuleInput) ModuleResult {
	raw := in.B2
	if raw == nil {
		raw = &B2Input{}
	}
	res := ModuleResult{
		Unit: "t CO2e",
		Assumptions: []string{
			"Dokumenteret overskudsvarmeandel modregnes med 90% effekt.",
		},
		Trace:    []string{},
		Warnings: []string{},
	}

	has := present(
		raw.DistrictHeatKwh != nil, raw.SurplusHeatSharePercent != nil,
		raw.DocumentationQualityPercent != nil,
	)

	kwh := nonNegative(raw.DistrictHeatKwh, "districtHeatKwh", &res.Warnings, has)
	surplusShare := bounded(raw.SurplusHeatSharePercent, "surplusHeatSharePercent", 100, &res.Warnings, false)
	quality(raw.DocumentationQualityPercent, "documentationQualityPercent", 100,
		lowDocThresholdPercent, "fjernvarme", &res.Warnings, has)

	grossKg := round(kwh*b2Factors.DistrictHeatKgPerKwh, 6)
	reductionKg := round(grossKg*surplusShare/100*b2Factors.SurplusHeatMitigation, 6)
	netKg := grossKg - reductionKg
	if netKg < 0 {
		netKg = 0
	}

	traceNum(&res.Trace, "districtHeatKwh", kwh)
	traceNum(&res.Trace, "grossEmissionsKg", grossKg)
	traceNum(&res.Trace, "surplusHeatSharePercent", surplusShare)
	traceNum(&res.Trace, "surplusHeatReductionKg", reductionKg)
	traceNum(&res.Trace, "totalEmissionsKg", netKg)
	tonnes := netKg * kgToTonnes
	traceNum(&res.Trace, "totalEmissionsTonnes", tonnes)

	res.Value = round(finite(tonnes), b2Factors.ResultPrecision)
	return res
}

// B3Input covers purchased cooling.
type B3Input struct {
	CoolingConsumptionKwh        *float64 `json:"coolingConsumptionKwh,omitempty"`
	FreeCoolingSharePercent      *float64 `json:"freeCoolingSharePercent,omitempty"`
	AbsorptionCoolingSharePercent *float64 `json:"absorptionCoolingSharePercent,omitempty"`
	DocumentationQualityPercent  *float64 `json:"documentationQualityPercent,omitempty"`
}

func runB3(in *ModuleInput) ModuleResult {
	raw := in.B3
	if raw == nil {
		raw = &B3Input{}
	}
	res := ModuleResult{
		Unit: "t CO2e",
		Assumptions: []string{
			"Frikøling modregnes med 85% effekt og absorptionskøling med 60% effekt.",
		},
		Trace:    []string{},
		Warnings: []string{},
	}

	has := present(
		raw.CoolingConsumptionKwh != nil, raw.FreeCoolingSharePercent != nil,
		raw.AbsorptionCoolingSharePercent != nil, raw.DocumentationQualityPercent != nil,
	)

	kwh := nonNegative(raw.CoolingConsumptionKwh, "coolingConsumptionKwh", &res.Warnings, has)
	freeShare := bounded(raw.FreeCoolingSharePercent, "freeCoolingSharePercent", 100, &res.Warnings, false)
	absorptionShare := bounded(raw.AbsorptionCoolingSharePercent, "absorptionCoolingSharePercent", 100, &res.Warnings, false)
	quality(raw.DocumentationQualityPercent, "documentationQualityPercent", 100,
		lowDocThresholdPercent, "køling", &res.Warnings, has)

	if freeShare+absorptionShare > 100 {
		warnCapped(&res.Warnings, "Summen af frikølings- og absorptionsandelen", "100%")
		absorptionShare = 100 - freeShare
	}

	grossKg := round(kwh*b3Factors.CoolingKgPerKwh, 6)
	freeReductionKg := round(grossKg*freeShare/100*b3Factors.FreeCoolingMitigation, 6)
	absorptionReductionKg := round(grossKg*absorptionShare/100*b3Factors.AbsorptionMitigation, 6)
	netKg := grossKg - freeReductionKg - absorptionReductionKg
	if netKg < 0 {
		netKg = 0
	}

	traceNum(&res.Trace, "coolingConsumptionKwh", kwh)
	traceNum(&res.Trace, "grossEmissionsKg", grossKg)
	traceNum(&res.Trace, "freeCoolingSharePercent", freeShare)
	traceNum(&res.Trace, "freeCoolingReductionKg", freeReductionKg)
	traceNum(&res.Trace, "absorptionCoolingSharePercent", absorptionShare)
	traceNum(&res.Trace, "absorptionCoolingReductionKg", absorptionReductionKg)
	traceNum(&res.Trace, "totalEmissionsKg", netKg)
	tonnes := netKg * kgToTonnes
	traceNum(&res.Trace, "totalEmissionsTonnes", tonnes)

	res.Value = round(finite(tonnes), b3Factors.ResultPrecision)
	return res
}

// B4Input covers purchased steam.
type B4Input struct {
	SteamKwh                       *float64 `json:"steamKwh,omitempty"`
	CondensateRecoverySharePercent *float64 `json:"condensateRecoverySharePercent,omitempty"`
	DocumentationQualityPercent    *float64 `json:"documentationQualityPercent,omitempty"`
}

func runB4(in *ModuleInput) ModuleResult {
	raw := in.B4
	if raw == nil {
		raw = &B4Input{}
	}
	res := ModuleResult{
		Unit: "t CO2e",
		Assumptions: []string{
			"Kondensatretur modregnes med 70% effekt.",
		},
		Trace:    []string{},
		Warnings: []string{},
	}

	has := present(
		raw.SteamKwh != nil, raw.CondensateRecoverySharePercent != nil,
		raw.DocumentationQualityPercent != nil,
	)

	kwh := nonNegative(raw.SteamKwh, "steamKwh", &res.Warnings, has)
	recoveryShare := bounded(raw.CondensateRecoverySharePercent, "condensateRecoverySharePercent", 100, &res.Warnings, false)
	quality(raw.DocumentationQualityPercent, "documentationQualityPercent", 100,
		lowDocThresholdPercent, "damp", &res.Warnings, has)

	grossKg := round(kwh*b4Factors.SteamKgPerKwh, 6)
	reductionKg := round(grossKg*recoveryShare/100*b4Factors.CondensateRecoveryMitigation, 6)
	netKg := grossKg - reductionKg
	if netKg < 0 {
		netKg = 0
	}

	traceNum(&res.Trace, "steamKwh", kwh)
	traceNum(&res.Trace, "grossEmissionsKg", grossKg)
	traceNum(&res.Trace, "condensateRecoverySharePercent", recoveryShare)
	traceNum(&res.Trace, "condensateRecoveryReductionKg", reductionKg)
	traceNum(&res.Trace, "totalEmissionsKg", netKg)
	tonnes := netKg * kgToTonnes
	traceNum(&res.Trace, "totalEmissionsTonnes", tonnes)

	res.Value = round(finite(tonnes), b4Factors.ResultPrecision)
	return res
}

// B5Input covers electricity for electric vehicle charging.
type B5Input struct {
	ChargedKwh                  *float64 `json:"chargedKwh,omitempty"`
	DocumentationQualityPercent *float64 `json:"documentationQualityPercent,omitempty"`
}

func runB5(in *ModuleInput) ModuleResult {
	raw := in.B5
	if raw == nil {
		raw = &B5Input{}
	}
	res := ModuleResult{
		Unit: "t CO2e",
		Assumptions: []string{
			"Ladetab på 10% lægges oven i den opladede mængde.",
		},
		Trace:    []string{},
		Warnings: []string{},
	}

	has := present(raw.ChargedKwh != nil, raw.DocumentationQualityPercent != nil)

	kwh := nonNegative(raw.ChargedKwh, "chargedKwh", &res.Warnings, has)
	quality(raw.DocumentationQualityPercent, "documentationQualityPercent", 100,
		lowDocThresholdPercent, "opladning af elkøretøjer", &res.Warnings, has)

	effectiveKwh := round(kwh*(1+b5Factors.ChargingLossRate), 6)
	totalKg := round(effectiveKwh*b5Factors.GridKgPerKwh, 6)

	traceNum(&res.Trace, "chargedKwh", kwh)
	traceNum(&res.Trace, "effectiveKwh", effectiveKwh)
	traceNum(&res.Trace, "totalEmissionsKg", totalKg)
	tonnes := totalKg * kgToTonnes
	traceNum(&res.Trace, "totalEmissionsTonnes", tonnes)

	res.Value = round(finite(tonnes), b5Factors.ResultPrecision)
	return res
}

// B6Input covers transmission and distribution losses on purchased power.
type B6Input struct {
	ElectricityKwh              *float64 `json:"electricityKwh,omitempty"`
	GridLossPercent             *float64 `json:"gridLossPercent,omitempty"`
	DocumentationQualityPercent *float64 `json:"documentationQualityPercent,omitempty"`
}

func runB6(in *ModuleInput) ModuleResult {
	raw := in.B6
	if raw == nil {
		raw = &B6Input{}
	}
	res := ModuleResult{
		Unit: "t CO2e",
		Assumptions: []string{
			"Nettab sættes til 5% af leveret elektricitet, hvis intet er angivet.",
		},
		Trace:    []string{},
		Warnings: []string{},
	}

	has := present(
		raw.ElectricityKwh != nil, raw.GridLossPercent != nil,
		raw.DocumentationQualityPercent != nil,
	)

	kwh := nonNegative(raw.ElectricityKwh, "electricityKwh", &res.Warnings, has)

	lossPercent := b6Factors.DefaultLossPercent
	if raw.GridLossPercent != nil {
		lossPercent = bounded(raw.GridLossPercent, "gridLossPercent", b6Factors.MaxLossPercent, &res.Warnings, true)
	}
	quality(raw.DocumentationQualityPercent, "documentationQualityPercent", 100,
		lowDocThresholdPercent, "nettab", &res.Warnings, has)

	lossKwh := round(kwh*lossPercent/100, 6)
	totalKg := round(lossKwh*b6Factors.GridKgPerKwh, 6)

	traceNum(&res.Trace, "electricityKwh", kwh)
	traceNum(&res.Trace, "gridLossPercent", lossPercent)
	traceNum(&res.Trace, "gridLossKwh", lossKwh)
	traceNum(&res.Trace, "totalEmissionsKg", totalKg)
	tonnes := totalKg * kgToTonnes
	traceNum(&res.Trace, "totalEmissionsTonnes", tonnes)

	res.Value = round(finite(tonnes), b6Factors.ResultPrecision)
	return res
}
