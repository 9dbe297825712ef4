package engine

import "fmt"

// Row-based scope 3 modules C9–C15. Rows are sanitised in index order,
// dropped rows warn, and a non-empty input that yields zero valid rows
// produces the terminal "no valid lines" warning.

// ScreeningLineInput is one spend line in the category screening.
type ScreeningLineInput struct {
	Category                    *string  `json:"category,omitempty"`
	SpendDkk                    *float64 `json:"spendDkk,omitempty"`
	DocumentationQualityPercent *float64 `json:"documentationQualityPercent,omitempty"`
}

func (l *ScreeningLineInput) hasAny() bool {
	return l != nil && present(
		l.Category != nil, l.SpendDkk != nil, l.DocumentationQualityPercent != nil,
	)
}

// C9Input covers screening of remaining scope 3 categories.
type C9Input struct {
	ScreeningLines []*ScreeningLineInput `json:"screeningLines,omitempty"`
}

func runC9(in *ModuleInput) ModuleResult {
	raw := in.C9
	if raw == nil {
		raw = &C9Input{}
	}
	res := ModuleResult{
		Unit: "t CO2e",
		Assumptions: []string{
			"Forbrugsbaserede faktorer pr. indkøbskategori anvendes til screening.",
		},
		Trace:    []string{},
		Warnings: []string{},
	}

	var totalKg float64
	valid := 0
	attempted := 0
	for i, ln := range raw.ScreeningLines {
		if !ln.hasAny() {
			continue
		}
		attempted++
		n := i + 1
		prefix := fmt.Sprintf("line%d.", n)

		category := resolveEnum(ln.Category, c9Factors.CategoryLabels, c9Factors.DefaultCategory,
			"indkøbskategori", n, &res.Warnings)
		spend := nonNegative(ln.SpendDkk, fmt.Sprintf("spendDkk på linje %d", n), &res.Warnings, true)
		quality(ln.DocumentationQualityPercent,
			fmt.Sprintf("documentationQualityPercent på linje %d", n), 100,
			lowDocThresholdPercent, fmt.Sprintf("%s (linje %d)", c9Factors.CategoryLabels[category], n),
			&res.Warnings, true)

		factor := c9Factors.CategoryKgPerDkk[category]
		lineKg := round(spend*factor, 6)

		traceStr(&res.Trace, prefix+"category", category)
		traceNum(&res.Trace, prefix+"spendDkk", spend)
		traceNum(&res.Trace, prefix+"emissionFactorKgPerDkk", factor)
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
	res.Value = round(finite(tonnes), c9Factors.ResultPrecision)
	return res
}

// LeasedAssetLineInput is one leased asset: a building, site or facility.
type LeasedAssetLineInput struct {
	EnergyType                  *string  `json:"energyType,omitempty"`
	EnergyConsumptionKwh        *float64 `json:"energyConsumptionKwh,omitempty"`
	FloorAreaSqm                *float64 `json:"floorAreaSqm,omitempty"`
	EmissionFactorKey           *string  `json:"emissionFactorKey,omitempty"`
	EmissionFactorKgPerKwh      *float64 `json:"emissionFactorKgPerKwh,omitempty"`
	DocumentationQualityPercent *float64 `json:"documentationQualityPercent,omitempty"`
}

func (l *LeasedAssetLineInput) hasAny() bool {
	return l != nil && present(
		l.EnergyType != nil, l.EnergyConsumptionKwh != nil, l.FloorAreaSqm != nil,
		l.EmissionFactorKey != nil, l.EmissionFactorKgPerKwh != nil,
		l.DocumentationQualityPercent != nil,
	)
}

// LeasedAssetsInput covers leased assets, shared by C10 (upstream) and C11
// (downstream).
type LeasedAssetsInput struct {
	LeasedAssetLines []*LeasedAssetLineInput `json:"leasedAssetLines,omitempty"`
}

func runLeasedAssets(raw *LeasedAssetsInput) ModuleResult {
	if raw == nil {
		raw = &LeasedAssetsInput{}
	}
	res := ModuleResult{
		Unit: "t CO2e",
		Assumptions: []string{
			"Manglende energiforbrug udledes af etageareal med en standardintensitet pr. m².",
			"Emissionsfaktorer pr. energitype anvendes, når ingen faktor er angivet.",
		},
		Trace:    []string{},
		Warnings: []string{},
	}

	var totalKg float64
	valid := 0
	attempted := 0
	for i, ln := range raw.LeasedAssetLines {
		if !ln.hasAny() {
			continue
		}
		attempted++
		n := i + 1
		prefix := fmt.Sprintf("line%d.", n)

		energyType := resolveEnum(ln.EnergyType, leasedFactors.EnergyLabels, leasedFactors.DefaultEnergyType,
			"energitype", n, &res.Warnings)
		traceStr(&res.Trace, prefix+"energyType", energyType)

		area := nonNegative(ln.FloorAreaSqm, fmt.Sprintf("floorAreaSqm på linje %d", n), &res.Warnings, false)
		traceNum(&res.Trace, prefix+"floorAreaSqm", area)

		// Reported energy takes precedence; otherwise derive from floor area.
		basis := "reported"
		energyKwh := 0.0
		switch {
		case ln.EnergyConsumptionKwh != nil:
			energyKwh = nonNegative(ln.EnergyConsumptionKwh,
				fmt.Sprintf("energyConsumptionKwh på linje %d", n), &res.Warnings, true)
		case area > 0:
			energyKwh = round(area*leasedFactors.DefaultKwhPerSqm, 6)
			basis = "areaDerived"
		default:
			res.Warnings = append(res.Warnings,
				fmt.Sprintf("Feltet energyConsumptionKwh på linje %d mangler og sættes til 0.", n))
		}
		traceStr(&res.Trace, prefix+"basis", basis)
		traceNum(&res.Trace, prefix+"energyConsumptionKwh", energyKwh)

		// Factor resolution: direct override, then a factor key validated
		// against the resolved energy type, then the type default.
		factor := leasedFactors.EnergyKgPerKwh[energyType]
		switch {
		case ln.EmissionFactorKgPerKwh != nil:
			factor = nonNegative(ln.EmissionFactorKgPerKwh,
				fmt.Sprintf("emissionFactorKgPerKwh på linje %d", n), &res.Warnings, true)
		case ln.EmissionFactorKey != nil:
			key := *ln.EmissionFactorKey
			if key != energyType {
				res.Warnings = append(res.Warnings, fmt.Sprintf(
					"Faktornøglen på linje %d matcher ikke energitypen. Standardfaktoren for %s anvendes.",
					n, leasedFactors.EnergyLabels[energyType]))
			} else if f, ok := leasedFactors.EnergyKgPerKwh[key]; ok {
				factor = f
			}
		default:
			res.Warnings = append(res.Warnings, fmt.Sprintf(
				"Der mangler en emissionsfaktor på linje %d. Standardfaktoren for %s anvendes.",
				n, leasedFactors.EnergyLabels[energyType]))
		}
		traceNum(&res.Trace, prefix+"emissionFactorKgPerKwh", factor)

		quality(ln.DocumentationQualityPercent,
			fmt.Sprintf("documentationQualityPercent på linje %d", n), 100,
			lowDocThresholdPercent,
			fmt.Sprintf("%s (linje %d)", leasedFactors.EnergyLabels[energyType], n),
			&res.Warnings, true)

		lineKg := round(energyKwh*factor, 6)
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
	res.Value = round(finite(tonnes), leasedFactors.ResultPrecision)
	return res
}

func runC10(in *ModuleInput) ModuleResult {
	return runLeasedAssets(in.C10)
}

func runC11(in *ModuleInput) ModuleResult {
	return runLeasedAssets(in.C11)
}

// FranchiseLineInput is one franchise chain or outlet group.
type FranchiseLineInput struct {
	Name                        *string  `json:"name,omitempty"`
	Outlets                     *float64 `json:"outlets,omitempty"`
	EnergyConsumptionKwh        *float64 `json:"energyConsumptionKwh,omitempty"`
	DocumentationQualityPercent *float64 `json:"documentationQualityPercent,omitempty"`
}

func (l *FranchiseLineInput) hasAny() bool {
	return l != nil && present(
		l.Name != nil, l.Outlets != nil, l.EnergyConsumptionKwh != nil,
		l.DocumentationQualityPercent != nil,
	)
}

// C12Input covers franchises.
type C12Input struct {
	FranchiseLines []*FranchiseLineInput `json:"franchiseLines,omitempty"`
}

func runC12(in *ModuleInput) ModuleResult {
	raw := in.C12
	if raw == nil {
		raw = &C12Input{}
	}
	res := ModuleResult{
		Unit: "t CO2e",
		Assumptions: []string{
			"Uden målt energiforbrug anvendes en standardudledning pr. franchise-enhed.",
		},
		Trace:    []string{},
		Warnings: []string{},
	}

	var totalKg float64
	valid := 0
	attempted := 0
	for i, ln := range raw.FranchiseLines {
		if !ln.hasAny() {
			continue
		}
		attempted++
		n := i + 1
		prefix := fmt.Sprintf("line%d.", n)

		outlets := nonNegative(ln.Outlets, fmt.Sprintf("outlets på linje %d", n), &res.Warnings, false)
		traceNum(&res.Trace, prefix+"outlets", outlets)

		basis := "reported"
		var lineKg float64
		if ln.EnergyConsumptionKwh != nil {
			kwh := nonNegative(ln.EnergyConsumptionKwh,
				fmt.Sprintf("energyConsumptionKwh på linje %d", n), &res.Warnings, true)
			traceNum(&res.Trace, prefix+"energyConsumptionKwh", kwh)
			lineKg = round(kwh*leasedFactors.EnergyKgPerKwh[leasedFactors.DefaultEnergyType], 6)
		} else {
			basis = "outletDerived"
			lineKg = round(outlets*c12Factors.DefaultKgPerOutlet, 6)
		}
		traceStr(&res.Trace, prefix+"basis", basis)

		quality(ln.DocumentationQualityPercent,
			fmt.Sprintf("documentationQualityPercent på linje %d", n), 100,
			lowDocThresholdPercent, fmt.Sprintf("franchise (linje %d)", n), &res.Warnings, true)

		lineKg = round(lineKg, 6)
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
	res.Value = round(finite(tonnes), c12Factors.ResultPrecision)
	return res
}

// InvestmentLineInput is one investment position.
type InvestmentLineInput struct {
	InvesteeName                *string  `json:"investeeName,omitempty"`
	EquitySharePercent          *float64 `json:"equitySharePercent,omitempty"`
	InvesteeEmissionsTonnes     *float64 `json:"investeeEmissionsTonnes,omitempty"`
	DocumentationQualityPercent *float64 `json:"documentationQualityPercent,omitempty"`
}

func (l *InvestmentLineInput) hasAny() bool {
	return l != nil && present(
		l.InvesteeName != nil, l.EquitySharePercent != nil,
		l.InvesteeEmissionsTonnes != nil, l.DocumentationQualityPercent != nil,
	)
}

// C13Input covers investments, equity-share method.
type C13Input struct {
	InvestmentLines []*InvestmentLineInput `json:"investmentLines,omitempty"`
}

func runC13(in *ModuleInput) ModuleResult {
	raw := in.C13
	if raw == nil {
		raw = &C13Input{}
	}
	res := ModuleResult{
		Unit: "t CO2e",
		Assumptions: []string{
			"Ejerandelsmetoden anvendes: investeringens udledning vægtes med ejerandelen.",
		},
		Trace:    []string{},
		Warnings: []string{},
	}

	var totalKg float64
	valid := 0
	attempted := 0
	for i, ln := range raw.InvestmentLines {
		if !ln.hasAny() {
			continue
		}
		attempted++
		n := i + 1
		prefix := fmt.Sprintf("line%d.", n)

		share := bounded(ln.EquitySharePercent, fmt.Sprintf("equitySharePercent på linje %d", n),
			100, &res.Warnings, true)
		investeeTonnes := nonNegative(ln.InvesteeEmissionsTonnes,
			fmt.Sprintf("investeeEmissionsTonnes på linje %d", n), &res.Warnings, true)
		quality(ln.DocumentationQualityPercent,
			fmt.Sprintf("documentationQualityPercent på linje %d", n), 100,
			lowDocThresholdPercent, fmt.Sprintf("investeringen (linje %d)", n), &res.Warnings, true)

		traceNum(&res.Trace, prefix+"equitySharePercent", share)
		traceNum(&res.Trace, prefix+"investeeEmissionsTonnes", investeeTonnes)

		lineKg := round(investeeTonnes*share/100*1000, 6)
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
	res.Value = round(finite(tonnes), c13Factors.ResultPrecision)
	return res
}

// ProcessLineInput is one downstream processing step of a sold product.
type ProcessLineInput struct {
	ProductName                 *string  `json:"productName,omitempty"`
	ProcessedTonnes             *float64 `json:"processedTonnes,omitempty"`
	EnergyKwhPerTonne           *float64 `json:"energyKwhPerTonne,omitempty"`
	DocumentationQualityPercent *float64 `json:"documentationQualityPercent,omitempty"`
}

func (l *ProcessLineInput) hasAny() bool {
	return l != nil && present(
		l.ProductName != nil, l.ProcessedTonnes != nil, l.EnergyKwhPerTonne != nil,
		l.DocumentationQualityPercent != nil,
	)
}

// C14Input covers processing of sold products.
type C14Input struct {
	ProcessLines []*ProcessLineInput `json:"processLines,omitempty"`
}

func runC14(in *ModuleInput) ModuleResult {
	raw := in.C14
	if raw == nil {
		raw = &C14Input{}
	}
	res := ModuleResult{
		Unit: "t CO2e",
		Assumptions: []string{
			"Uden målt energiintensitet anvendes en standard på 420 kWh pr. forarbejdet ton.",
		},
		Trace:    []string{},
		Warnings: []string{},
	}

	var totalKg float64
	valid := 0
	attempted := 0
	for i, ln := range raw.ProcessLines {
		if !ln.hasAny() {
			continue
		}
		attempted++
		n := i + 1
		prefix := fmt.Sprintf("line%d.", n)

		processed := nonNegative(ln.ProcessedTonnes, fmt.Sprintf("processedTonnes på linje %d", n),
			&res.Warnings, true)

		intensity := c14Factors.DefaultKwhPerTonne
		basis := "default"
		if ln.EnergyKwhPerTonne != nil {
			intensity = nonNegative(ln.EnergyKwhPerTonne,
				fmt.Sprintf("energyKwhPerTonne på linje %d", n), &res.Warnings, true)
			basis = "reported"
		}
		quality(ln.DocumentationQualityPercent,
			fmt.Sprintf("documentationQualityPercent på linje %d", n), 100,
			lowDocThresholdPercent, fmt.Sprintf("forarbejdningen (linje %d)", n), &res.Warnings, true)

		traceNum(&res.Trace, prefix+"processedTonnes", processed)
		traceStr(&res.Trace, prefix+"basis", basis)
		traceNum(&res.Trace, prefix+"energyKwhPerTonne", intensity)

		lineKg := round(processed*intensity*c14Factors.ProcessKgPerKwh, 6)
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
	res.Value = round(finite(tonnes), c14Factors.ResultPrecision)
	return res
}

// TreatmentLineInput is one end-of-life treatment flow for sold products.
type TreatmentLineInput struct {
	TreatmentType               *string  `json:"treatmentType,omitempty"`
	Tonnes                      *float64 `json:"tonnes,omitempty"`
	DocumentationQualityPercent *float64 `json:"documentationQualityPercent,omitempty"`
}

func (l *TreatmentLineInput) hasAny() bool {
	return l != nil && present(
		l.TreatmentType != nil, l.Tonnes != nil, l.DocumentationQualityPercent != nil,
	)
}

// C15Input covers end-of-life treatment of sold products.
type C15Input struct {
	TreatmentLines []*TreatmentLineInput `json:"treatmentLines,omitempty"`
}

func runC15(in *ModuleInput) ModuleResult {
	raw := in.C15
	if raw == nil {
		raw = &C15Input{}
	}
	res := ModuleResult{
		Unit: "t CO2e",
		Assumptions: []string{
			"Behandlingsfaktorer pr. ton anvendes; deponi er standard for ukendte strømme.",
		},
		Trace:    []string{},
		Warnings: []string{},
	}

	var totalKg float64
	valid := 0
	attempted := 0
	for i, ln := range raw.TreatmentLines {
		if !ln.hasAny() {
			continue
		}
		attempted++
		n := i + 1
		prefix := fmt.Sprintf("line%d.", n)

		treatment := resolveEnum(ln.TreatmentType, c15Factors.TreatmentLabels, c15Factors.DefaultTreatment,
			"behandlingstype", n, &res.Warnings)
		tonnesIn := nonNegative(ln.Tonnes, fmt.Sprintf("tonnes på linje %d", n), &res.Warnings, true)
		quality(ln.DocumentationQualityPercent,
			fmt.Sprintf("documentationQualityPercent på linje %d", n), 100,
			lowDocThresholdPercent,
			fmt.Sprintf("%s (linje %d)", c15Factors.TreatmentLabels[treatment], n), &res.Warnings, true)

		factor := c15Factors.TreatmentKgPerTonne[treatment]
		traceStr(&res.Trace, prefix+"treatmentType", treatment)
		traceNum(&res.Trace, prefix+"tonnes", tonnesIn)
		traceNum(&res.Trace, prefix+"emissionFactorKgPerTonne", factor)

		lineKg := round(tonnesIn*factor, 6)
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
	res.Value = round(finite(tonnes), c15Factors.ResultPrecision)
	return res
}
