package engine

// applyE1Insights attaches intensity ratios, the previous-year trend, the
// matching reduction target and the normalised energy mix to an emission
// module's result, using the shared E1Context and E1Targets records of the
// same input. The overlay is additive: it never overwrites a field the
// calculator populated, and the insightsApplied flag makes it run at most
// once per result.
func applyE1Insights(res *ModuleResult, in *ModuleInput, scope string) {
	if res == nil || in == nil || res.insightsApplied {
		return
	}
	res.insightsApplied = true

	if ctx := in.E1Context; ctx != nil {
		if res.Intensities == nil {
			if rev := fval(ctx.NetRevenueDkk); rev > 0 {
				res.Intensities = append(res.Intensities, Intensity{
					Basis: "netRevenue",
					Value: round(safeDiv(res.Value, rev/1_000_000), 6),
					Unit:  "t CO2e/mio. DKK",
				})
			}
			if vol := fval(ctx.ProductionVolume); vol > 0 {
				unit := "t CO2e/enhed"
				if u := sval(ctx.ProductionUnit); u != "" {
					unit = "t CO2e/" + u
				}
				res.Intensities = append(res.Intensities, Intensity{
					Basis: "production",
					Value: round(safeDiv(res.Value, vol), 6),
					Unit:  unit,
				})
			}
			if kwh := fval(ctx.TotalEnergyConsumptionKwh); kwh > 0 {
				res.Intensities = append(res.Intensities, Intensity{
					Basis: "energy",
					Value: round(safeDiv(res.Value*1000, kwh), 6),
					Unit:  "kg CO2e/kWh",
				})
			}
		}
		if res.Trend == nil {
			var prev *float64
			switch scope {
			case scope1:
				prev = ctx.PreviousYearScope1Tonnes
			case scope2:
				prev = ctx.PreviousYearScope2Tonnes
			case scope3:
				prev = ctx.PreviousYearScope3Tonnes
			}
			if prev != nil {
				res.Trend = &Trend{PreviousValue: fval(prev), Unit: res.Unit}
			}
		}
		if res.EnergyMix == nil && len(ctx.EnergyMix) > 0 {
			res.EnergyMix = normaliseEnergyMix(ctx.EnergyMix)
		}
	}

	if res.TargetProgress == nil && in.E1Targets != nil {
		for _, t := range in.E1Targets.Targets {
			if t == nil || sval(t.Scope) != scope {
				continue
			}
			status := sval(t.Status)
			if _, ok := targetStatusLabels[status]; !ok {
				status = "notStarted"
			}
			res.TargetProgress = &TargetProgress{
				Scope:            scope,
				Owner:            sval(t.Owner),
				Status:           status,
				TargetYear:       int(fval(t.TargetYear)),
				ReductionPercent: fval(t.ReductionPercent),
			}
			traceStr(&res.Trace, "targetProgress.status", status)
			break
		}
	}
}

// normaliseEnergyMix converts raw kWh amounts into percentage shares.
// Entries without a type or a positive amount are skipped.
func normaliseEnergyMix(mix []*EnergyMixShareInput) []EnergyMixShare {
	var total float64
	for _, m := range mix {
		if m == nil || sval(m.EnergyType) == "" {
			continue
		}
		if v := fval(m.AmountKwh); v > 0 {
			total += v
		}
	}
	if total == 0 {
		return nil
	}
	var out []EnergyMixShare
	for _, m := range mix {
		if m == nil || sval(m.EnergyType) == "" {
			continue
		}
		v := fval(m.AmountKwh)
		if v <= 0 {
			continue
		}
		out = append(out, EnergyMixShare{
			EnergyType:   sval(m.EnergyType),
			SharePercent: round(v/total*100, 1),
		})
	}
	return out
}
