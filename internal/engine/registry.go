package engine

import "golang.org/x/sync/errgroup"

// AggregatedResult pairs one module's result with its identifier and Danish
// report title.
type AggregatedResult struct {
	ModuleID ModuleID     `json:"moduleId"`
	Title    string       `json:"title"`
	Result   ModuleResult `json:"result"`
}

// RunModule dispatches one module calculation and applies the E1 insight
// overlay to emission modules. The second return value is false when the
// module id is not part of the closed set.
func RunModule(id ModuleID, in *ModuleInput) (ModuleResult, bool) {
	if in == nil {
		in = &ModuleInput{}
	}
	var res ModuleResult
	switch id {
	case ModuleA1:
		res = runA1(in)
	case ModuleA2:
		res = runA2(in)
	case ModuleA3:
		res = runA3(in)
	case ModuleA4:
		res = runA4(in)
	case ModuleB1:
		res = runB1(in)
	case ModuleB2:
		res = runB2(in)
	case ModuleB3:
		res = runB3(in)
	case ModuleB4:
		res = runB4(in)
	case ModuleB5:
		res = runB5(in)
	case ModuleB6:
		res = runB6(in)
	case ModuleB7:
		res = runB7(in)
	case ModuleB8:
		res = runB8(in)
	case ModuleB9:
		res = runB9(in)
	case ModuleB10:
		res = runB10(in)
	case ModuleB11:
		res = runB11(in)
	case ModuleC1:
		res = runC1(in)
	case ModuleC2:
		res = runC2(in)
	case ModuleC3:
		res = runC3(in)
	case ModuleC4:
		res = runC4(in)
	case ModuleC5:
		res = runC5(in)
	case ModuleC6:
		res = runC6(in)
	case ModuleC7:
		res = runC7(in)
	case ModuleC8:
		res = runC8(in)
	case ModuleC9:
		res = runC9(in)
	case ModuleC10:
		res = runC10(in)
	case ModuleC11:
		res = runC11(in)
	case ModuleC12:
		res = runC12(in)
	case ModuleC13:
		res = runC13(in)
	case ModuleC14:
		res = runC14(in)
	case ModuleC15:
		res = runC15(in)
	case ModuleE1Targets:
		res = runE1Targets(in)
	case ModuleE1Actions:
		res = runE1Actions(in)
	case ModuleE1CarbonPrice:
		res = runE1CarbonPrice(in)
	case ModuleE1FinancialEffects:
		res = runE1FinancialEffects(in)
	case ModuleE1Transition:
		res = runE1Transition(in)
	case ModuleE1Removals:
		res = runE1Removals(in)
	case ModuleE1Risks:
		res = runE1Risks(in)
	case ModuleE2Water:
		res = runE2Water(in)
	case ModuleE3Pollution:
		res = runE3Pollution(in)
	case ModuleE4Biodiversity:
		res = runE4Biodiversity(in)
	case ModuleE5Resources:
		res = runE5Resources(in)
	case ModuleD1:
		res = runD1(in)
	case ModuleSBM:
		res = runSBM(in)
	case ModuleGOV:
		res = runGOV(in)
	case ModuleIRO:
		res = runIRO(in)
	case ModuleMR:
		res = runMR(in)
	case ModuleS1:
		res = runS1(in)
	case ModuleS2:
		res = runS2(in)
	case ModuleS3:
		res = runS3(in)
	case ModuleS4:
		res = runS4(in)
	case ModuleG1:
		res = runG1(in)
	case ModuleD2:
		res = runD2(in)
	default:
		return ModuleResult{}, false
	}
	if scope, ok := emissionScope[id]; ok {
		applyE1Insights(&res, in, scope)
	}
	return res, true
}

// AggregateResults runs every module over the same input in the canonical
// report order. Calculators are pure, so they evaluate concurrently; the
// returned slice order is deterministic regardless.
func AggregateResults(in *ModuleInput) []AggregatedResult {
	if in == nil {
		in = &ModuleInput{}
	}
	out := make([]AggregatedResult, len(moduleOrder))
	var g errgroup.Group
	for i, id := range moduleOrder {
		i, id := i, id
		g.Go(func() error {
			res, _ := RunModule(id, in)
			out[i] = AggregatedResult{ModuleID: id, Title: moduleTitles[id], Result: res}
			return nil
		})
	}
	_ = g.Wait()
	return out
}

// CreateDefaultResult is the baseline no-op calculator contract: the raw
// quantity times the identity factor. Kept for modules without bespoke
// logic and as a reference point in tests.
func CreateDefaultResult(id ModuleID, raw float64) ModuleResult {
	res := ModuleResult{
		Unit:        "t CO2e",
		Assumptions: []string{"Standardberegning uden modulspecifik logik."},
		Trace:       []string{},
		Warnings:    []string{},
	}
	traceStr(&res.Trace, "moduleId", string(id))
	traceNum(&res.Trace, "rawValue", raw)
	res.Value = round(finite(raw*defaultFactor), 3)
	return res
}

// ModuleIDs returns the canonical module ordering.
func ModuleIDs() []ModuleID {
	return append([]ModuleID(nil), moduleOrder...)
}

// Title returns the Danish report title for a module id.
func Title(id ModuleID) string {
	return moduleTitles[id]
}
