package engine

import "fmt"

// Scope 1 modules: stationary combustion, vehicle fleet, process emissions
// and refrigerant leakage.

// A1Input covers stationary combustion in own facilities.
type A1Input struct {
	NaturalGasM3                *float64 `json:"naturalGasM3,omitempty"`
	HeatingOilLiters            *float64 `json:"heatingOilLiters,omitempty"`
	LpgKg                       *float64 `json:"lpgKg,omitempty"`
	WoodPelletsKg               *float64 `json:"woodPelletsKg,omitempty"`
	BiogasSharePercent          *float64 `json:"biogasSharePercent,omitempty"`
	DocumentationQualityPercent *float64 `json:"documentationQualityPercent,omitempty"`
}

func runA1(in *ModuleInput) ModuleResult {
	raw := in.A1
	if raw == nil {
		raw = &A1Input{}
	}
	res := ModuleResult{
		Unit: "t CO2e",
		Assumptions: []string{
			"Standardemissionsfaktorer for naturgas, fyringsolie, flaskegas og træpiller anvendes.",
			"Certificeret biogasandel modregnes fuldt ud i naturgasudledningen.",
		},
		Trace:    []string{},
		Warnings: []string{},
	}

	has := present(
		raw.NaturalGasM3 != nil, raw.HeatingOilLiters != nil, raw.LpgKg != nil,
		raw.WoodPelletsKg != nil, raw.BiogasSharePercent != nil,
		raw.DocumentationQualityPercent != nil,
	)

	gasM3 := nonNegative(raw.NaturalGasM3, "naturalGasM3", &res.Warnings, has)
	oilL := nonNegative(raw.HeatingOilLiters, "heatingOilLiters", &res.Warnings, has)
	lpgKg := nonNegative(raw.LpgKg, "lpgKg", &res.Warnings, has)
	pelletsKg := nonNegative(raw.WoodPelletsKg, "woodPelletsKg", &res.Warnings, has)
	biogasShare := bounded(raw.BiogasSharePercent, "biogasSharePercent", 100, &res.Warnings, false)
	quality(raw.DocumentationQualityPercent, "documentationQualityPercent", 100,
		lowDocThresholdPercent, "stationær forbrænding", &res.Warnings, has)

	gasKg := round(gasM3*a1Factors.NaturalGasKgPerM3, 6)
	oilKg := round(oilL*a1Factors.HeatingOilKgPerL, 6)
	lpgCO2Kg := round(lpgKg*a1Factors.LpgKgPerKg, 6)
	pelletsCO2Kg := round(pelletsKg*a1Factors.WoodPelletsKgPerKg, 6)

	traceNum(&res.Trace, "naturalGasM3", gasM3)
	traceNum(&res.Trace, "naturalGasEmissionsKg", gasKg)
	traceNum(&res.Trace, "heatingOilLiters", oilL)
	traceNum(&res.Trace, "heatingOilEmissionsKg", oilKg)
	traceNum(&res.Trace, "lpgKg", lpgKg)
	traceNum(&res.Trace, "lpgEmissionsKg", lpgCO2Kg)
	traceNum(&res.Trace, "woodPelletsKg", pelletsKg)
	traceNum(&res.Trace, "woodPelletsEmissionsKg", pelletsCO2Kg)

	grossKg := round(gasKg+oilKg+lpgCO2Kg+pelletsCO2Kg, 6)
	biogasReductionKg := round(gasKg*biogasShare/100*a1Factors.BiogasMitigationRate, 6)
	netKg := grossKg - biogasReductionKg
	if netKg < 0 {
		netKg = 0
	}

	traceNum(&res.Trace, "biogasSharePercent", biogasShare)
	traceNum(&res.Trace, "biogasReductionKg", biogasReductionKg)
	traceNum(&res.Trace, "totalEmissionsKg", netKg)
	tonnes := netKg * kgToTonnes
	traceNum(&res.Trace, "totalEmissionsTonnes", tonnes)

	res.Value = round(finite(tonnes), a1Factors.ResultPrecision)
	return res
}

// VehicleConsumptionInput is one fleet line: a vehicle or vehicle group.
type VehicleConsumptionInput struct {
	FuelType                    *string  `json:"fuelType,omitempty"`
	QuantityLiters              *float64 `json:"quantityLiters,omitempty"`
	DistanceKm                  *float64 `json:"distanceKm,omitempty"`
	EmissionFactorKgPerLiter    *float64 `json:"emissionFactorKgPerLiter,omitempty"`
	DocumentationQualityPercent *float64 `json:"documentationQualityPercent,omitempty"`
}

func (l *VehicleConsumptionInput) hasAny() bool {
	return l != nil && present(
		l.FuelType != nil, l.QuantityLiters != nil, l.DistanceKm != nil,
		l.EmissionFactorKgPerLiter != nil, l.DocumentationQualityPercent != nil,
	)
}

// A2Input covers the vehicle fleet, one line per vehicle group.
type A2Input struct {
	VehicleConsumptions []*VehicleConsumptionInput `json:"vehicleConsumptions,omitempty"`
}

func runA2(in *ModuleInput) ModuleResult {
	raw := in.A2
	if raw == nil {
		raw = &A2Input{}
	}
	res := ModuleResult{
		Unit: "t CO2e",
		Assumptions: []string{
			"Standardemissionsfaktorer pr. brændstoftype anvendes, når ingen faktor er angivet.",
			"Manglende literforbrug udledes af kørte kilometer med standardforbrug pr. km.",
		},
		Trace:    []string{},
		Warnings: []string{},
	}

	var totalKg float64
	valid := 0
	attempted := 0
	for i, ln := range raw.VehicleConsumptions {
		if !ln.hasAny() {
			continue
		}
		attempted++
		n := i + 1
		prefix := fmt.Sprintf("line%d.", n)

		fuel := resolveEnum(ln.FuelType, a2Factors.FuelLabels, a2Factors.DefaultFuel,
			"brændstoftype", n, &res.Warnings)
		traceStr(&res.Trace, prefix+"fuelType", fuel)

		distance := nonNegative(ln.DistanceKm, fmt.Sprintf("distanceKm på linje %d", n), &res.Warnings, false)
		traceNum(&res.Trace, prefix+"distanceKm", distance)

		liters := 0.0
		basis := "reported"
		switch {
		case ln.QuantityLiters != nil:
			liters = nonNegative(ln.QuantityLiters, fmt.Sprintf("quantityLiters på linje %d", n), &res.Warnings, true)
		case distance > 0:
			liters = round(distance*a2Factors.LitersPerKm[fuel], 6)
			basis = "distanceDerived"
		default:
			res.Warnings = append(res.Warnings,
				fmt.Sprintf("Feltet quantityLiters på linje %d mangler og sættes til 0.", n))
		}
		traceStr(&res.Trace, prefix+"basis", basis)
		traceNum(&res.Trace, prefix+"quantityLiters", liters)

		factor := a2Factors.FuelKgPerL[fuel]
		if ln.EmissionFactorKgPerLiter != nil {
			factor = nonNegative(ln.EmissionFactorKgPerLiter,
				fmt.Sprintf("emissionFactorKgPerLiter på linje %d", n), &res.Warnings, true)
		} else {
			res.Warnings = append(res.Warnings, fmt.Sprintf(
				"Der mangler en emissionsfaktor på linje %d. Standardfaktoren for %s (%s kg CO2e/l) anvendes.",
				n, a2Factors.FuelLabels[fuel], num(factor)))
		}
		traceNum(&res.Trace, prefix+"emissionFactorKgPerLiter", factor)

		docQuality := quality(ln.DocumentationQualityPercent,
			fmt.Sprintf("documentationQualityPercent på linje %d", n), 100,
			lowDocThresholdPercent, fmt.Sprintf("%s (linje %d)", a2Factors.FuelLabels[fuel], n),
			&res.Warnings, true)
		traceNum(&res.Trace, prefix+"documentationQualityPercent", docQuality)

		lineKg := round(liters*factor, 6)
		if lineKg == 0 {
			warnExcludedLine(&res.Warnings, n)
			continue
		}
		traceNum(&res.Trace, prefix+"emissionsKg", lineKg)
		totalKg = round(totalKg+lineKg, 6)
		valid++
	}

	if attempted > 0 && valid == 0 {
		warnNoValidLines(&res.Warnings)
	}

	traceNum(&res.Trace, "totalEmissionsKg", totalKg)
	tonnes := totalKg * kgToTonnes
	traceNum(&res.Trace, "totalEmissionsTonnes", tonnes)
	res.Value = round(finite(tonnes), a2Factors.ResultPrecision)
	return res
}

// A3Input covers industrial process emissions.
type A3Input struct {
	ProcessQuantity             *float64 `json:"processQuantity,omitempty"`
	EmissionFactorKgPerUnit     *float64 `json:"emissionFactorKgPerUnit,omitempty"`
	AbatedSharePercent          *float64 `json:"abatedSharePercent,omitempty"`
	DocumentationQualityPercent *float64 `json:"documentationQualityPercent,omitempty"`
}

func runA3(in *ModuleInput) ModuleResult {
	raw := in.A3
	if raw == nil {
		raw = &A3Input{}
	}
	res := ModuleResult{
		Unit: "t CO2e",
		Assumptions: []string{
			"Renseanlæg antages at fjerne 85% af udledningen fra den rensede andel.",
		},
		Trace:    []string{},
		Warnings: []string{},
	}

	has := present(
		raw.ProcessQuantity != nil, raw.EmissionFactorKgPerUnit != nil,
		raw.AbatedSharePercent != nil, raw.DocumentationQualityPercent != nil,
	)

	qty := nonNegative(raw.ProcessQuantity, "processQuantity", &res.Warnings, has)

	factor := a3Factors.DefaultKgPerUnit
	if raw.EmissionFactorKgPerUnit != nil {
		factor = nonNegative(raw.EmissionFactorKgPerUnit, "emissionFactorKgPerUnit", &res.Warnings, has)
	} else if has {
		res.Warnings = append(res.Warnings, fmt.Sprintf(
			"Feltet emissionFactorKgPerUnit mangler. Standarden (%s kg CO2e pr. enhed) anvendes.", num(factor)))
	}

	abatedShare := bounded(raw.AbatedSharePercent, "abatedSharePercent", 100, &res.Warnings, false)
	quality(raw.DocumentationQualityPercent, "documentationQualityPercent", 100,
		lowDocThresholdPercent, "procesemissioner", &res.Warnings, has)

	grossKg := round(qty*factor, 6)
	reductionKg := round(grossKg*abatedShare/100*a3Factors.AbatementEfficiency, 6)
	netKg := grossKg - reductionKg
	if netKg < 0 {
		netKg = 0
	}

	traceNum(&res.Trace, "processQuantity", qty)
	traceNum(&res.Trace, "emissionFactorKgPerUnit", factor)
	traceNum(&res.Trace, "grossEmissionsKg", grossKg)
	traceNum(&res.Trace, "abatedSharePercent", abatedShare)
	traceNum(&res.Trace, "abatementReductionKg", reductionKg)
	traceNum(&res.Trace, "totalEmissionsKg", netKg)
	tonnes := netKg * kgToTonnes
	traceNum(&res.Trace, "totalEmissionsTonnes", tonnes)

	res.Value = round(finite(tonnes), a3Factors.ResultPrecision)
	return res
}

// RefrigerantLineInput is one refrigerant circuit or refill record.
type RefrigerantLineInput struct {
	RefrigerantType             *string  `json:"refrigerantType,omitempty"`
	RefilledKg                  *float64 `json:"refilledKg,omitempty"`
	RecoveredKg                 *float64 `json:"recoveredKg,omitempty"`
	DocumentationQualityPercent *float64 `json:"documentationQualityPercent,omitempty"`
}

func (l *RefrigerantLineInput) hasAny() bool {
	return l != nil && present(
		l.RefrigerantType != nil, l.RefilledKg != nil, l.RecoveredKg != nil,
		l.DocumentationQualityPercent != nil,
	)
}

// A4Input covers refrigerant leakage, one line per circuit.
type A4Input struct {
	RefrigerantLines []*RefrigerantLineInput `json:"refrigerantLines,omitempty"`
}

func runA4(in *ModuleInput) ModuleResult {
	raw := in.A4
	if raw == nil {
		raw = &A4Input{}
	}
	res := ModuleResult{
		Unit: "t CO2e",
		Assumptions: []string{
			"Påfyldt minus genindvundet kølemiddel antages udledt og omregnes med GWP100.",
		},
		Trace:    []string{},
		Warnings: []string{},
	}

	var totalKg float64
	valid := 0
	attempted := 0
	for i, ln := range raw.RefrigerantLines {
		if !ln.hasAny() {
			continue
		}
		attempted++
		n := i + 1
		prefix := fmt.Sprintf("line%d.", n)

		refrigerant := resolveEnum(ln.RefrigerantType, a4Factors.Labels, a4Factors.DefaultType,
			"kølemiddeltype", n, &res.Warnings)
		traceStr(&res.Trace, prefix+"refrigerantType", refrigerant)

		refilled := nonNegative(ln.RefilledKg, fmt.Sprintf("refilledKg på linje %d", n), &res.Warnings, true)
		recovered := nonNegative(ln.RecoveredKg, fmt.Sprintf("recoveredKg på linje %d", n), &res.Warnings, false)
		if recovered > refilled {
			warnCapped(&res.Warnings,
				fmt.Sprintf("Genindvundet kølemiddel på linje %d", n), "den påfyldte mængde")
			recovered = refilled
		}
		traceNum(&res.Trace, prefix+"refilledKg", refilled)
		traceNum(&res.Trace, prefix+"recoveredKg", recovered)

		quality(ln.DocumentationQualityPercent,
			fmt.Sprintf("documentationQualityPercent på linje %d", n), 100,
			lowDocThresholdPercent, fmt.Sprintf("%s (linje %d)", a4Factors.Labels[refrigerant], n),
			&res.Warnings, true)

		gwp := a4Factors.GwpKgPerKg[refrigerant]
		traceNum(&res.Trace, prefix+"gwpKgPerKg", gwp)

		lineKg := round((refilled-recovered)*gwp, 6)
		if lineKg == 0 {
			warnExcludedLine(&res.Warnings, n)
			continue
		}
		traceNum(&res.Trace, prefix+"emissionsKg", lineKg)
		totalKg = round(totalKg+lineKg, 6)
		valid++
	}

	if attempted > 0 && valid == 0 {
		warnNoValidLines(&res.Warnings)
	}

	traceNum(&res.Trace, "totalEmissionsKg", totalKg)
	tonnes := totalKg * kgToTonnes
	traceNum(&res.Trace, "totalEmissionsTonnes", tonnes)
	res.Value = round(finite(tonnes), a4Factors.ResultPrecision)
	return res
}
