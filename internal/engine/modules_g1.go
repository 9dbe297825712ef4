package engine

import "fmt"

// G1 scores business conduct 0-100 from four weighted components (policy,
// anti-corruption training, payment practices, whistleblower channel) minus
// a penalty per corruption conviction.

// G1Input covers business conduct.
type G1Input struct {
	HasConductPolicy        *bool    `json:"hasConductPolicy,omitempty"`
	PolicyCoveragePercent   *float64 `json:"policyCoveragePercent,omitempty"`
	TrainingCoveragePercent *float64 `json:"trainingCoveragePercent,omitempty"`
	AveragePaymentDays      *float64 `json:"averagePaymentDays,omitempty"`
	HasWhistleblowerChannel *bool    `json:"hasWhistleblowerChannel,omitempty"`
	ConvictionsCount        *float64 `json:"convictionsCount,omitempty"`
	FinesDkk                *float64 `json:"finesDkk,omitempty"`
}

func scoreConductPolicy(raw *G1Input, warnings *[]string, warnMissing bool) float64 {
	if !bval(raw.HasConductPolicy) {
		return 0
	}
	coverage := 100.0
	if raw.PolicyCoveragePercent != nil {
		coverage = bounded(raw.PolicyCoveragePercent, "policyCoveragePercent", 100, warnings, warnMissing)
	}
	return g1Factors.PolicyWeight * coverage / 100
}

func scoreConductTraining(raw *G1Input, warnings *[]string, warnMissing bool) float64 {
	coverage := bounded(raw.TrainingCoveragePercent, "trainingCoveragePercent", 100, warnings, warnMissing)
	return g1Factors.TrainingWeight * coverage / 100
}

func scorePaymentPractices(raw *G1Input, warnings *[]string, warnMissing bool) float64 {
	days := nonNegative(raw.AveragePaymentDays, "averagePaymentDays", warnings, warnMissing)
	if days == 0 {
		return 0
	}
	if days <= g1Factors.PaymentTargetDays {
		return g1Factors.PaymentWeight
	}
	return g1Factors.PaymentWeight * g1Factors.PaymentTargetDays / days
}

func scoreWhistleblower(raw *G1Input) float64 {
	if bval(raw.HasWhistleblowerChannel) {
		return g1Factors.WhistleblowerWeight
	}
	return 0
}

func runG1(in *ModuleInput) ModuleResult {
	raw := in.G1
	if raw == nil {
		raw = &G1Input{}
	}
	res := ModuleResult{
		Unit: "point (0-100)",
		Assumptions: []string{
			"Politik og træning vægter 30 point hver, betalingspraksis og whistleblowerordning 20 point hver.",
			"Hver korruptionsdom koster 15 point, dog højst 45 point i alt.",
		},
		Trace:    []string{},
		Warnings: []string{},
	}

	warnMissing := present(
		raw.HasConductPolicy != nil, raw.PolicyCoveragePercent != nil,
		raw.TrainingCoveragePercent != nil, raw.AveragePaymentDays != nil,
		raw.HasWhistleblowerChannel != nil, raw.ConvictionsCount != nil,
		raw.FinesDkk != nil,
	)

	policy := round(scoreConductPolicy(raw, &res.Warnings, warnMissing), 6)
	training := round(scoreConductTraining(raw, &res.Warnings, warnMissing), 6)
	payment := round(scorePaymentPractices(raw, &res.Warnings, warnMissing), 6)
	whistleblower := scoreWhistleblower(raw)

	convictions := nonNegative(raw.ConvictionsCount, "convictionsCount", &res.Warnings, false)
	penalty := convictions * g1Factors.ConvictionPenalty
	if penalty > g1Factors.MaxPenalty {
		penalty = g1Factors.MaxPenalty
	}
	if convictions > 0 {
		res.Warnings = append(res.Warnings, fmt.Sprintf(
			"Der er registreret %s korruptionsdomme. Scoren er reduceret med %s point.",
			num(convictions), num(penalty)))
	}

	fines := nonNegative(raw.FinesDkk, "finesDkk", &res.Warnings, false)
	if fines > 0 {
		res.Warnings = append(res.Warnings,
			"Der er registreret bøder for overtrædelser af god virksomhedsadfærd. Beskriv de afhjælpende tiltag.")
	}

	traceNum(&res.Trace, "policyScore", policy)
	traceNum(&res.Trace, "trainingScore", training)
	traceNum(&res.Trace, "paymentScore", payment)
	traceNum(&res.Trace, "whistleblowerScore", whistleblower)
	traceNum(&res.Trace, "convictionPenalty", penalty)

	total := policy + training + payment + whistleblower - penalty
	if total < 0 {
		total = 0
	}
	traceNum(&res.Trace, "totalScore", round(total, 6))

	res.Metrics = []Metric{
		{Label: "Adfærdspolitik", Value: danishNum(policy, 1), Unit: "point",
			Context: "Politikkens dækning af organisationen."},
		{Label: "Antikorruptionstræning", Value: danishNum(training, 1), Unit: "point",
			Context: "Andel af medarbejdere, der har gennemført træning."},
		{Label: "Betalingspraksis", Value: danishNum(payment, 1), Unit: "point",
			Context: "Gennemsnitlig betalingstid mod målet på 30 dage."},
		{Label: "Whistleblowerordning", Value: danishNum(whistleblower, 1), Unit: "point",
			Context: "Om en whistleblowerordning er etableret."},
	}

	res.Value = round(finite(total), g1Factors.ResultPrecision)
	return res
}
