package engine

import "fmt"

// D2 scores double materiality per topic: an impact dimension from the
// severity/likelihood matrix, a financial dimension from a 0-5 score and a
// timeline dimension, combined into a 0-100 score with priority banding.
// Topics without a financial score are penalised unless an approved,
// justified exception lifts them into the prioritisation.

// MaterialTopicInput is one raw material topic from the materiality
// assessment.
type MaterialTopicInput struct {
	Title                           *string  `json:"title,omitempty"`
	RiskType                        *string  `json:"riskType,omitempty"`
	ImpactType                      *string  `json:"impactType,omitempty"`
	ValueChainSegment               *string  `json:"valueChainSegment,omitempty"`
	Severity                        *string  `json:"severity,omitempty"`
	Likelihood                      *string  `json:"likelihood,omitempty"`
	RemediationStatus               *string  `json:"remediationStatus,omitempty"`
	FinancialScore                  *float64 `json:"financialScore,omitempty"`
	FinancialExceptionApproved      *bool    `json:"financialExceptionApproved,omitempty"`
	FinancialExceptionJustification *string  `json:"financialExceptionJustification,omitempty"`
	Timeline                        *string  `json:"timeline,omitempty"`
	GapStatus                       *string  `json:"gapStatus,omitempty"`
	ResponsibleParty                *string  `json:"responsibleParty,omitempty"`
}

func (t *MaterialTopicInput) hasAny() bool {
	return t != nil && present(
		t.Title != nil, t.RiskType != nil, t.ImpactType != nil,
		t.ValueChainSegment != nil, t.Severity != nil, t.Likelihood != nil,
		t.RemediationStatus != nil, t.FinancialScore != nil,
		t.FinancialExceptionApproved != nil, t.FinancialExceptionJustification != nil,
		t.Timeline != nil, t.GapStatus != nil, t.ResponsibleParty != nil,
	)
}

// D2Input covers the double-materiality assessment.
type D2Input struct {
	MaterialTopics []*MaterialTopicInput `json:"materialTopics,omitempty"`
}

var d2RiskTypeLabels = map[string]string{
	"risk":        "Risiko",
	"opportunity": "Mulighed",
	"both":        "Risiko/mulighed",
}

var d2ImpactTypeLabels = map[string]string{
	"actualNegative":    "Faktisk negativ",
	"potentialNegative": "Potentiel negativ",
	"actualPositive":    "Faktisk positiv",
	"potentialPositive": "Potentiel positiv",
}

var d2ValueChainLabels = map[string]string{
	"ownOperations": "Egen drift",
	"upstream":      "Opstrøms",
	"downstream":    "Nedstrøms",
}

var d2RemediationLabels = map[string]string{
	"none":       "Ingen afhjælpning",
	"planned":    "Planlagt",
	"inProgress": "I gang",
	"remediated": "Afhjulpet",
}

var d2TimelineLabels = map[string]string{
	"shortTerm":  "Kort sigt",
	"mediumTerm": "Mellemlangt sigt",
	"longTerm":   "Langt sigt",
}

var d2SeverityOrder = []string{"minimal", "low", "medium", "high", "critical"}
var d2LikelihoodOrder = []string{"rare", "unlikely", "possible", "likely", "almostCertain"}

// priorityActionLabel maps the topic's risk type to the recommended action
// wording used in prioritised-topic warnings.
func priorityActionLabel(riskType string) string {
	switch riskType {
	case "risk":
		return "Håndtér risiko"
	case "opportunity":
		return "Udnyt mulighed"
	default:
		return "Håndtér risiko/mulighed"
	}
}

func runD2(in *ModuleInput) ModuleResult {
	raw := in.D2
	if raw == nil {
		raw = &D2Input{}
	}
	res := ModuleResult{
		Unit: "væsentlighedsscore (0-100)",
		Assumptions: []string{
			"Påvirkningen scores som alvorlighed gange sandsynlighed mod en maksimal matrixscore på 25.",
			"Emner uden finansiel score reduceres med faktor 0,6, medmindre en godkendt undtagelse foreligger.",
			"Prioriteringsgrænsen er 70 point; opmærksomhedsgrænsen er 50 point.",
		},
		Trace:    []string{},
		Warnings: []string{},
	}

	matrixCounts := map[string]map[string]int{}
	byImpactType := map[string]int{}
	bySegment := map[string]int{}
	byRemediation := map[string]int{}

	var sum float64
	valid := 0
	attempted := 0
	for i, t := range raw.MaterialTopics {
		if !t.hasAny() {
			continue
		}
		attempted++
		n := i + 1

		title := sval(t.Title)
		if title == "" {
			res.Warnings = append(res.Warnings, fmt.Sprintf(
				"Emnet på linje %d mangler en titel og udelades af væsentlighedsvurderingen.", n))
			continue
		}
		sevWeight, sevOk := d2Factors.SeverityWeights[sval(t.Severity)]
		if !sevOk {
			res.Warnings = append(res.Warnings, fmt.Sprintf(
				"Emnet %s har en ukendt eller manglende alvorlighed og udelades.", title))
			continue
		}
		likWeight, likOk := d2Factors.LikelihoodWeights[sval(t.Likelihood)]
		if !likOk {
			res.Warnings = append(res.Warnings, fmt.Sprintf(
				"Emnet %s har en ukendt eller manglende sandsynlighed og udelades.", title))
			continue
		}

		prefix := fmt.Sprintf("topic%d.", n)
		severity := sval(t.Severity)
		likelihood := sval(t.Likelihood)
		riskType := resolveEnum(t.RiskType, d2RiskTypeLabels, "both", "risikotype", n, &res.Warnings)
		impactType := resolveEnum(t.ImpactType, d2ImpactTypeLabels, "actualNegative",
			"påvirkningstype", n, &res.Warnings)
		segment := resolveEnum(t.ValueChainSegment, d2ValueChainLabels, "ownOperations",
			"værdikædesegment", n, &res.Warnings)
		remediation := resolveEnum(t.RemediationStatus, d2RemediationLabels, "none",
			"afhjælpningsstatus", n, &res.Warnings)

		impact := round(sevWeight*likWeight/d2Factors.MaxMatrixScore*
			d2Factors.ImpactTypeModifiers[impactType]*
			d2Factors.RemediationModifiers[remediation]*100, 6)

		var financial *float64
		missingFinancial := false
		switch {
		case t.FinancialScore == nil:
			missingFinancial = true
		case *t.FinancialScore < 0 || *t.FinancialScore > 5:
			missingFinancial = true
			res.Warnings = append(res.Warnings, fmt.Sprintf(
				"Den finansielle score for emnet %s skal ligge mellem 0 og 5 og udelades.", title))
		default:
			f := round(*t.FinancialScore*d2Factors.FinancialScoreScale, 6)
			financial = &f
		}

		// Financial-exception override: three mutually exclusive paths when
		// the financial score is missing.
		override := false
		if missingFinancial {
			approved := bval(t.FinancialExceptionApproved)
			justified := detailed(t.FinancialExceptionJustification, d2Factors.MinJustificationChars)
			switch {
			case approved && justified:
				override = true
				res.Warnings = append(res.Warnings, fmt.Sprintf(
					"Finansiel undtagelse er godkendt for emnet %s. Emnet indgår i prioriteringen uden finansiel score.", title))
			case approved && !justified:
				res.Warnings = append(res.Warnings, fmt.Sprintf(
					"Finansiel undtagelse for emnet %s kræver en begrundelse på mindst %d tegn. Undtagelsen anvendes ikke.",
					title, d2Factors.MinJustificationChars))
			case !approved && t.FinancialExceptionJustification != nil && sval(t.FinancialExceptionJustification) != "":
				res.Warnings = append(res.Warnings, fmt.Sprintf(
					"Begrundelsen for emnet %s er angivet uden godkendt undtagelse. Godkend undtagelsen for at anvende den.", title))
			}
		}
		eligible := !missingFinancial || override

		var timeline *float64
		if t.Timeline != nil && sval(t.Timeline) != "" {
			key := resolveEnum(t.Timeline, d2TimelineLabels, "mediumTerm", "tidshorisont", n, &res.Warnings)
			w := round(d2Factors.TimelineWeights[key]*100, 6)
			timeline = &w
		}

		dims := []float64{impact}
		if financial != nil {
			dims = append(dims, *financial)
		}
		if timeline != nil {
			dims = append(dims, *timeline)
		}
		var dimSum float64
		for _, d := range dims {
			dimSum += d
		}
		combined := dimSum / float64(len(dims))
		if missingFinancial && !override {
			combined *= d2Factors.MissingFinancialPenalty
		}
		combined = round(combined, d2Factors.ResultPrecision)

		band := "monitor"
		switch {
		case !eligible:
			band = "monitor"
		case combined >= d2Factors.PriorityThreshold:
			band = "priority"
		case combined >= d2Factors.AttentionThreshold:
			band = "attention"
		}

		traceStr(&res.Trace, prefix+"severity", severity)
		traceStr(&res.Trace, prefix+"likelihood", likelihood)
		traceNum(&res.Trace, prefix+"impactScore", impact)
		if financial != nil {
			traceNum(&res.Trace, prefix+"financialScore", *financial)
		}
		if timeline != nil {
			traceNum(&res.Trace, prefix+"timelineScore", *timeline)
		}
		traceNum(&res.Trace, prefix+"combinedScore", combined)
		traceStr(&res.Trace, prefix+"priorityBand", band)

		if band == "priority" {
			res.Warnings = append(res.Warnings, fmt.Sprintf(
				"Emnet %s er prioriteret. Anbefalet handling: %s.", title, priorityActionLabel(riskType)))
			if sval(t.GapStatus) != "closed" {
				res.Warnings = append(res.Warnings, fmt.Sprintf(
					"Der er et åbent politikgab for det prioriterede emne %s. Planlæg lukning af gabet.", title))
			}
			if timeline == nil {
				res.Warnings = append(res.Warnings, fmt.Sprintf(
					"Angiv en tidshorisont for det prioriterede emne %s.", title))
			}
			if sval(t.ResponsibleParty) == "" {
				res.Warnings = append(res.Warnings, fmt.Sprintf(
					"Angiv en ansvarlig for det prioriterede emne %s.", title))
			}
		}

		if matrixCounts[severity] == nil {
			matrixCounts[severity] = map[string]int{}
		}
		matrixCounts[severity][likelihood]++
		byImpactType[impactType]++
		bySegment[segment]++
		byRemediation[remediation]++

		topicResult := MaterialTopicResult{
			Title:                     title,
			ImpactScore:               impact,
			FinancialScore:            financial,
			TimelineScore:             timeline,
			CombinedScore:             combined,
			PriorityBand:              band,
			EligibleForPrioritisation: eligible,
			MissingFinancial:          missingFinancial,
		}
		if res.DoubleMateriality == nil {
			res.DoubleMateriality = &DoubleMateriality{}
		}
		res.DoubleMateriality.Topics = append(res.DoubleMateriality.Topics, topicResult)
		sum += combined
		valid++
	}

	if attempted > 0 && valid == 0 {
		res.Warnings = append(res.Warnings, "Ingen gyldige emner kunne vurderes. Kontrollér indtastningerne.")
	}

	if res.DoubleMateriality != nil {
		for _, sev := range d2SeverityOrder {
			for _, lik := range d2LikelihoodOrder {
				if c := matrixCounts[sev][lik]; c > 0 {
					res.DoubleMateriality.ImpactMatrix = append(res.DoubleMateriality.ImpactMatrix,
						MatrixCell{Severity: sev, Likelihood: lik, Count: c})
				}
			}
		}
		res.DoubleMateriality.DueDiligence = DueDiligenceSummary{
			ByImpactType:        byImpactType,
			ByValueChainSegment: bySegment,
			ByRemediationStatus: byRemediation,
		}
	}

	avg := safeDiv(sum, float64(valid))
	traceNum(&res.Trace, "validTopics", float64(valid))
	traceNum(&res.Trace, "averageScore", round(avg, 6))
	res.Value = round(finite(avg), d2Factors.ResultPrecision)
	return res
}
