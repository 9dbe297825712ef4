package engine

import "fmt"

// E1 climate-disclosure modules beyond the emission inventory: targets,
// actions, carbon pricing, financial effects, transition plan, removals and
// climate risk. These modules carry structured payloads for the disclosure
// document alongside their headline value.

// TargetInput is one raw emission-reduction target.
type TargetInput struct {
	Scope            *string  `json:"scope,omitempty"`
	BaselineYear     *float64 `json:"baselineYear,omitempty"`
	TargetYear       *float64 `json:"targetYear,omitempty"`
	ReductionPercent *float64 `json:"reductionPercent,omitempty"`
	Status           *string  `json:"status,omitempty"`
	Owner            *string  `json:"owner,omitempty"`
}

func (t *TargetInput) hasAny() bool {
	return t != nil && present(
		t.Scope != nil, t.BaselineYear != nil, t.TargetYear != nil,
		t.ReductionPercent != nil, t.Status != nil, t.Owner != nil,
	)
}

// E1TargetsInput covers emission-reduction targets.
type E1TargetsInput struct {
	Targets []*TargetInput `json:"targets,omitempty"`
}

var targetScopeLabels = map[string]string{
	scope1: "Scope 1",
	scope2: "Scope 2",
	scope3: "Scope 3",
}

var targetStatusLabels = map[string]string{
	"notStarted": "Ikke startet",
	"onTrack":    "På sporet",
	"delayed":    "Forsinket",
	"achieved":   "Opnået",
}

func runE1Targets(in *ModuleInput) ModuleResult {
	raw := in.E1Targets
	if raw == nil {
		raw = &E1TargetsInput{}
	}
	res := ModuleResult{
		Unit: "% gennemsnitlig reduktion",
		Assumptions: []string{
			"Ambitionsniveauet vurderes mod 1,5-gradersbanens 42 % reduktion frem mod 2030.",
		},
		Trace:    []string{},
		Warnings: []string{},
	}

	var sum float64
	valid := 0
	attempted := 0
	for i, t := range raw.Targets {
		if !t.hasAny() {
			continue
		}
		attempted++
		n := i + 1
		prefix := fmt.Sprintf("target%d.", n)

		scope := resolveEnum(t.Scope, targetScopeLabels, scope1, "scope", n, &res.Warnings)
		status := resolveEnum(t.Status, targetStatusLabels, "notStarted", "målstatus", n, &res.Warnings)
		baseline := nonNegative(t.BaselineYear, fmt.Sprintf("baselineYear på linje %d", n), &res.Warnings, true)
		targetYear := nonNegative(t.TargetYear, fmt.Sprintf("targetYear på linje %d", n), &res.Warnings, true)
		reduction := bounded(t.ReductionPercent, fmt.Sprintf("reductionPercent på linje %d", n),
			100, &res.Warnings, true)

		if targetYear > 0 && baseline > 0 && targetYear <= baseline {
			res.Warnings = append(res.Warnings, fmt.Sprintf(
				"Målåret på linje %d ligger ikke efter basisåret. Kontrollér årstallene.", n))
		}
		if reduction > 0 && reduction < e1TargetsFactors.MinAmbitionPercent {
			res.Warnings = append(res.Warnings, fmt.Sprintf(
				"Reduktionsmålet for %s på linje %d er %s%% og under 1,5-gradersbanens %s%%. Overvej at skærpe målet.",
				targetScopeLabels[scope], n, num(reduction), num(e1TargetsFactors.MinAmbitionPercent)))
		}

		traceStr(&res.Trace, prefix+"scope", scope)
		traceNum(&res.Trace, prefix+"reductionPercent", reduction)
		traceStr(&res.Trace, prefix+"status", status)

		res.TargetsOverview = append(res.TargetsOverview, TargetOverview{
			Scope:            scope,
			BaselineYear:     int(baseline),
			TargetYear:       int(targetYear),
			ReductionPercent: reduction,
			Status:           status,
			Owner:            sval(t.Owner),
		})
		sum += reduction
		valid++
	}

	if attempted > 0 && valid == 0 {
		warnNoValidLines(&res.Warnings)
	}

	avg := safeDiv(sum, float64(valid))
	traceNum(&res.Trace, "validTargets", float64(valid))
	traceNum(&res.Trace, "averageReductionPercent", avg)
	res.Value = round(finite(avg), e1TargetsFactors.ResultPrecision)
	return res
}

// ActionInput is one raw planned decarbonisation action.
type ActionInput struct {
	Title                   *string  `json:"title,omitempty"`
	ExpectedReductionTonnes *float64 `json:"expectedReductionTonnes,omitempty"`
	CapexDkk                *float64 `json:"capexDkk,omitempty"`
	TargetYear              *float64 `json:"targetYear,omitempty"`
}

func (a *ActionInput) hasAny() bool {
	return a != nil && present(
		a.Title != nil, a.ExpectedReductionTonnes != nil,
		a.CapexDkk != nil, a.TargetYear != nil,
	)
}

// E1ActionsInput covers planned decarbonisation actions.
type E1ActionsInput struct {
	Actions []*ActionInput `json:"actions,omitempty"`
}

func runE1Actions(in *ModuleInput) ModuleResult {
	raw := in.E1Actions
	if raw == nil {
		raw = &E1ActionsInput{}
	}
	res := ModuleResult{
		Unit: "t CO2e planlagt reduktion",
		Assumptions: []string{
			"Forventede reduktioner summeres på tværs af planlagte handlinger.",
		},
		Trace:    []string{},
		Warnings: []string{},
	}

	var total float64
	valid := 0
	attempted := 0
	for i, a := range raw.Actions {
		if !a.hasAny() {
			continue
		}
		attempted++
		n := i + 1
		prefix := fmt.Sprintf("action%d.", n)

		title := sval(a.Title)
		if title == "" {
			res.Warnings = append(res.Warnings, fmt.Sprintf(
				"Handlingen på linje %d mangler en titel og udelades.", n))
			continue
		}
		reduction := nonNegative(a.ExpectedReductionTonnes,
			fmt.Sprintf("expectedReductionTonnes på linje %d", n), &res.Warnings, true)
		capex := nonNegative(a.CapexDkk, fmt.Sprintf("capexDkk på linje %d", n), &res.Warnings, false)
		targetYear := nonNegative(a.TargetYear, fmt.Sprintf("targetYear på linje %d", n), &res.Warnings, false)

		traceStr(&res.Trace, prefix+"title", title)
		traceNum(&res.Trace, prefix+"expectedReductionTonnes", reduction)

		res.PlannedActions = append(res.PlannedActions, PlannedAction{
			Title:                   title,
			ExpectedReductionTonnes: reduction,
			CapexDkk:                capex,
			TargetYear:              int(targetYear),
		})
		total = round(total+reduction, 6)
		valid++
	}

	if attempted > 0 && valid == 0 {
		warnNoValidLines(&res.Warnings)
	}

	// Driver shares are relative to the summed planned reduction.
	for _, a := range res.PlannedActions {
		res.DecarbonisationDrivers = append(res.DecarbonisationDrivers, DecarbonisationDriver{
			Driver:                  a.Title,
			ExpectedReductionTonnes: a.ExpectedReductionTonnes,
			ShareOfPlannedPercent:   round(safeDiv(a.ExpectedReductionTonnes, total)*100, 1),
		})
	}

	traceNum(&res.Trace, "totalPlannedReductionTonnes", total)
	res.Value = round(finite(total), 3)
	return res
}

// CarbonPriceSchemeInput is one raw internal carbon-pricing scheme.
type CarbonPriceSchemeInput struct {
	Name            *string  `json:"name,omitempty"`
	PriceDkkPerTon  *float64 `json:"priceDkkPerTon,omitempty"`
	CoveragePercent *float64 `json:"coveragePercent,omitempty"`
	ScopeCovered    *string  `json:"scopeCovered,omitempty"`
}

func (s *CarbonPriceSchemeInput) hasAny() bool {
	return s != nil && present(
		s.Name != nil, s.PriceDkkPerTon != nil,
		s.CoveragePercent != nil, s.ScopeCovered != nil,
	)
}

// E1CarbonPriceInput covers internal carbon pricing.
type E1CarbonPriceInput struct {
	Schemes []*CarbonPriceSchemeInput `json:"schemes,omitempty"`
}

func runE1CarbonPrice(in *ModuleInput) ModuleResult {
	raw := in.E1CarbonPrice
	if raw == nil {
		raw = &E1CarbonPriceInput{}
	}
	res := ModuleResult{
		Unit: "DKK/t CO2e (dækningsvægtet)",
		Assumptions: []string{
			"Den interne CO2-pris vægtes med hver ordnings dækningsgrad.",
		},
		Trace:    []string{},
		Warnings: []string{},
	}

	var weightedSum, coverageSum float64
	valid := 0
	attempted := 0
	for i, s := range raw.Schemes {
		if !s.hasAny() {
			continue
		}
		attempted++
		n := i + 1
		prefix := fmt.Sprintf("scheme%d.", n)

		price := nonNegative(s.PriceDkkPerTon, fmt.Sprintf("priceDkkPerTon på linje %d", n), &res.Warnings, true)
		coverage := bounded(s.CoveragePercent, fmt.Sprintf("coveragePercent på linje %d", n),
			100, &res.Warnings, true)
		scope := resolveEnum(s.ScopeCovered, targetScopeLabels, scope1, "scope", n, &res.Warnings)

		traceNum(&res.Trace, prefix+"priceDkkPerTon", price)
		traceNum(&res.Trace, prefix+"coveragePercent", coverage)

		res.CarbonPriceSchemes = append(res.CarbonPriceSchemes, CarbonPriceScheme{
			Name:            sval(s.Name),
			PriceDkkPerTon:  price,
			CoveragePercent: coverage,
			ScopeCovered:    scope,
		})
		weightedSum += price * coverage
		coverageSum += coverage
		valid++
	}

	if attempted > 0 && valid == 0 {
		warnNoValidLines(&res.Warnings)
	}

	avg := safeDiv(weightedSum, coverageSum)
	traceNum(&res.Trace, "weightedAveragePrice", avg)
	res.Value = round(finite(avg), 1)
	return res
}

// FinancialEffectInput is one raw anticipated financial effect.
type FinancialEffectInput struct {
	Description *string  `json:"description,omitempty"`
	Direction   *string  `json:"direction,omitempty"`
	AmountDkk   *float64 `json:"amountDkk,omitempty"`
	Horizon     *string  `json:"horizon,omitempty"`
}

func (e *FinancialEffectInput) hasAny() bool {
	return e != nil && present(
		e.Description != nil, e.Direction != nil,
		e.AmountDkk != nil, e.Horizon != nil,
	)
}

// E1FinancialEffectsInput covers anticipated financial effects of climate
// risks and opportunities.
type E1FinancialEffectsInput struct {
	Effects []*FinancialEffectInput `json:"effects,omitempty"`
}

var effectDirectionLabels = map[string]string{
	"cost":   "Omkostning",
	"saving": "Besparelse",
}

var effectHorizonLabels = map[string]string{
	"shortTerm":  "Kort sigt",
	"mediumTerm": "Mellemlangt sigt",
	"longTerm":   "Langt sigt",
}

func runE1FinancialEffects(in *ModuleInput) ModuleResult {
	raw := in.E1FinancialEffects
	if raw == nil {
		raw = &E1FinancialEffectsInput{}
	}
	res := ModuleResult{
		Unit: "DKK nettoeffekt",
		Assumptions: []string{
			"Besparelser indgår positivt og omkostninger negativt i nettoeffekten.",
		},
		Trace:    []string{},
		Warnings: []string{},
	}

	var net float64
	valid := 0
	attempted := 0
	for i, e := range raw.Effects {
		if !e.hasAny() {
			continue
		}
		attempted++
		n := i + 1
		prefix := fmt.Sprintf("effect%d.", n)

		direction := resolveEnum(e.Direction, effectDirectionLabels, "cost", "effekttype", n, &res.Warnings)
		horizon := resolveEnum(e.Horizon, effectHorizonLabels, "mediumTerm", "tidshorisont", n, &res.Warnings)
		amount := nonNegative(e.AmountDkk, fmt.Sprintf("amountDkk på linje %d", n), &res.Warnings, true)

		signed := amount
		if direction == "cost" {
			signed = -amount
		}
		traceStr(&res.Trace, prefix+"direction", direction)
		traceNum(&res.Trace, prefix+"amountDkk", amount)

		res.FinancialEffects = append(res.FinancialEffects, FinancialEffect{
			Description: sval(e.Description),
			Direction:   direction,
			AmountDkk:   amount,
			Horizon:     horizon,
		})
		net = round(net+signed, 6)
		valid++
	}

	if attempted > 0 && valid == 0 {
		warnNoValidLines(&res.Warnings)
	}

	traceNum(&res.Trace, "netEffectDkk", net)
	res.Value = round(finite(net), 0)
	return res
}

// TransitionMeasureInput is one raw transition-plan measure.
type TransitionMeasureInput struct {
	Lever              *string  `json:"lever,omitempty"`
	Description        *string  `json:"description,omitempty"`
	ShareOfPlanPercent *float64 `json:"shareOfPlanPercent,omitempty"`
}

func (m *TransitionMeasureInput) hasAny() bool {
	return m != nil && present(
		m.Lever != nil, m.Description != nil, m.ShareOfPlanPercent != nil,
	)
}

// E1TransitionInput covers the climate transition plan.
type E1TransitionInput struct {
	Measures []*TransitionMeasureInput `json:"measures,omitempty"`
}

var transitionLeverLabels = map[string]string{
	"energyEfficiency": "Energieffektivisering",
	"renewables":       "Vedvarende energi",
	"electrification":  "Elektrificering",
	"supplyChain":      "Leverandørkæde",
	"circularity":      "Cirkularitet",
	"other":            "Øvrigt",
}

func runE1Transition(in *ModuleInput) ModuleResult {
	raw := in.E1Transition
	if raw == nil {
		raw = &E1TransitionInput{}
	}
	res := ModuleResult{
		Unit: "% af planen dækket",
		Assumptions: []string{
			"Tiltagenes andele summeres; summen er begrænset til 100 %.",
		},
		Trace:    []string{},
		Warnings: []string{},
	}

	var covered float64
	valid := 0
	attempted := 0
	for i, m := range raw.Measures {
		if !m.hasAny() {
			continue
		}
		attempted++
		n := i + 1
		prefix := fmt.Sprintf("measure%d.", n)

		lever := resolveEnum(m.Lever, transitionLeverLabels, "other", "omstillingsgreb", n, &res.Warnings)
		share := bounded(m.ShareOfPlanPercent, fmt.Sprintf("shareOfPlanPercent på linje %d", n),
			100, &res.Warnings, true)

		traceStr(&res.Trace, prefix+"lever", lever)
		traceNum(&res.Trace, prefix+"shareOfPlanPercent", share)

		res.TransitionMeasures = append(res.TransitionMeasures, TransitionMeasure{
			Lever:       lever,
			Description: sval(m.Description),
			ShareOfPlan: share,
		})
		covered += share
		valid++
	}

	if attempted > 0 && valid == 0 {
		warnNoValidLines(&res.Warnings)
	}

	if covered > 100 {
		warnCapped(&res.Warnings, "Summen af tiltagenes andele", "100 %")
		covered = 100
	} else if valid > 0 && covered < 100 {
		res.Warnings = append(res.Warnings, fmt.Sprintf(
			"Omstillingsplanen dækker kun %s%% af den planlagte reduktion. Beskriv de resterende tiltag.",
			num(covered)))
	}

	traceNum(&res.Trace, "coveredSharePercent", covered)
	res.Value = round(finite(covered), 1)
	return res
}

// RemovalProjectInput is one raw carbon-removal project.
type RemovalProjectInput struct {
	Name            *string  `json:"name,omitempty"`
	Method          *string  `json:"method,omitempty"`
	RemovedTonnes   *float64 `json:"removedTonnes,omitempty"`
	PermanenceYears *float64 `json:"permanenceYears,omitempty"`
}

func (p *RemovalProjectInput) hasAny() bool {
	return p != nil && present(
		p.Name != nil, p.Method != nil,
		p.RemovedTonnes != nil, p.PermanenceYears != nil,
	)
}

// E1RemovalsInput covers carbon removals and credits.
type E1RemovalsInput struct {
	Projects []*RemovalProjectInput `json:"projects,omitempty"`
}

var removalMethodLabels = map[string]string{
	"afforestation": "Skovrejsning",
	"soilCarbon":    "Kulstof i jord",
	"biochar":       "Biokul",
	"dac":           "Direkte luftfangst",
	"beccs":         "BECCS",
}

func runE1Removals(in *ModuleInput) ModuleResult {
	raw := in.E1Removals
	if raw == nil {
		raw = &E1RemovalsInput{}
	}
	res := ModuleResult{
		Unit: "t CO2e optaget",
		Assumptions: []string{
			"Optag rapporteres adskilt fra bruttoudledningen og modregnes ikke.",
		},
		Trace:    []string{},
		Warnings: []string{},
	}

	var total float64
	valid := 0
	attempted := 0
	for i, p := range raw.Projects {
		if !p.hasAny() {
			continue
		}
		attempted++
		n := i + 1
		prefix := fmt.Sprintf("project%d.", n)

		method := resolveEnum(p.Method, removalMethodLabels, "afforestation", "optagsmetode", n, &res.Warnings)
		removed := nonNegative(p.RemovedTonnes, fmt.Sprintf("removedTonnes på linje %d", n), &res.Warnings, true)
		permanence := nonNegative(p.PermanenceYears, fmt.Sprintf("permanenceYears på linje %d", n),
			&res.Warnings, true)

		if removed > 0 && permanence < e1RemovalsFactors.MinPermanenceYears {
			res.Warnings = append(res.Warnings, fmt.Sprintf(
				"Optaget på linje %d har en varighed på %s år, under de anbefalede %s år. Angiv hvordan varigheden sikres.",
				n, num(permanence), num(e1RemovalsFactors.MinPermanenceYears)))
		}

		traceStr(&res.Trace, prefix+"method", method)
		traceNum(&res.Trace, prefix+"removedTonnes", removed)
		traceNum(&res.Trace, prefix+"permanenceYears", permanence)

		res.RemovalProjects = append(res.RemovalProjects, RemovalProject{
			Name:            sval(p.Name),
			Method:          method,
			RemovedTonnes:   removed,
			PermanenceYears: permanence,
		})
		total = round(total+removed, 6)
		valid++
	}

	if attempted > 0 && valid == 0 {
		warnNoValidLines(&res.Warnings)
	}

	traceNum(&res.Trace, "totalRemovedTonnes", total)
	res.Value = round(finite(total), e1RemovalsFactors.ResultPrecision)
	return res
}

// ScenarioInput is one raw climate scenario.
type ScenarioInput struct {
	Name            *string `json:"name,omitempty"`
	TemperaturePath *string `json:"temperaturePath,omitempty"`
	ExposureLevel   *string `json:"exposureLevel,omitempty"`
}

func (s *ScenarioInput) hasAny() bool {
	return s != nil && present(
		s.Name != nil, s.TemperaturePath != nil, s.ExposureLevel != nil,
	)
}

// RiskGeographyInput is one raw geography with climate-risk exposure.
type RiskGeographyInput struct {
	Region   *string `json:"region,omitempty"`
	RiskType *string `json:"riskType,omitempty"`
	Level    *string `json:"level,omitempty"`
}

func (g *RiskGeographyInput) hasAny() bool {
	return g != nil && present(
		g.Region != nil, g.RiskType != nil, g.Level != nil,
	)
}

// E1RisksInput covers climate risks and scenario analysis.
type E1RisksInput struct {
	Scenarios   []*ScenarioInput     `json:"scenarios,omitempty"`
	Geographies []*RiskGeographyInput `json:"geographies,omitempty"`
}

var riskTypeLabels = map[string]string{
	"physical":   "Fysisk risiko",
	"transition": "Omstillingsrisiko",
}

func runE1Risks(in *ModuleInput) ModuleResult {
	raw := in.E1Risks
	if raw == nil {
		raw = &E1RisksInput{}
	}
	res := ModuleResult{
		Unit: "eksponeringsindeks (0-100)",
		Assumptions: []string{
			"Eksponeringsniveauerne lav, mellem og høj vægtes som 20, 55 og 85 point.",
		},
		Trace:    []string{},
		Warnings: []string{},
	}

	var sum float64
	scored := 0
	attempted := 0
	for i, s := range raw.Scenarios {
		if !s.hasAny() {
			continue
		}
		attempted++
		n := i + 1
		prefix := fmt.Sprintf("scenario%d.", n)

		level := resolveEnum(s.ExposureLevel, e1RisksFactors.LevelLabels, e1RisksFactors.DefaultLevel,
			"eksponeringsniveau", n, &res.Warnings)
		score := e1RisksFactors.LevelScores[level]

		traceStr(&res.Trace, prefix+"exposureLevel", level)
		traceNum(&res.Trace, prefix+"exposureScore", score)

		res.Scenarios = append(res.Scenarios, Scenario{
			Name:            sval(s.Name),
			TemperaturePath: sval(s.TemperaturePath),
			ExposureScore:   score,
		})
		sum += score
		scored++
	}

	for i, g := range raw.Geographies {
		if !g.hasAny() {
			continue
		}
		attempted++
		n := i + 1
		riskType := resolveEnum(g.RiskType, riskTypeLabels, "physical", "risikotype", n, &res.Warnings)
		level := resolveEnum(g.Level, e1RisksFactors.LevelLabels, e1RisksFactors.DefaultLevel,
			"eksponeringsniveau", n, &res.Warnings)

		res.RiskGeographies = append(res.RiskGeographies, RiskGeography{
			Region:   sval(g.Region),
			RiskType: riskType,
			Level:    level,
		})
		sum += e1RisksFactors.LevelScores[level]
		scored++
	}

	if attempted > 0 && scored == 0 {
		warnNoValidLines(&res.Warnings)
	}

	avg := safeDiv(sum, float64(scored))
	traceNum(&res.Trace, "averageExposureScore", avg)
	res.Value = round(finite(avg), e1RisksFactors.ResultPrecision)
	return res
}
