package engine

// Scope 3 single-record modules C1–C8.

// SpendBasedInput is the shared record for spend-based categories (C1, C2).
type SpendBasedInput struct {
	SpendDkk                    *float64 `json:"spendDkk,omitempty"`
	DocumentationQualityPercent *float64 `json:"documentationQualityPercent,omitempty"`
}

func runSpendBased(raw *SpendBasedInput, factorKgPerDkk float64, subject, assumption string) ModuleResult {
	if raw == nil {
		raw = &SpendBasedInput{}
	}
	res := ModuleResult{
		Unit:        "t CO2e",
		Assumptions: []string{assumption},
		Trace:       []string{},
		Warnings:    []string{},
	}

	has := present(raw.SpendDkk != nil, raw.DocumentationQualityPercent != nil)

	spend := nonNegative(raw.SpendDkk, "spendDkk", &res.Warnings, has)
	quality(raw.DocumentationQualityPercent, "documentationQualityPercent", 100,
		lowDocThresholdPercent, subject, &res.Warnings, has)

	totalKg := round(spend*factorKgPerDkk, 6)

	traceNum(&res.Trace, "spendDkk", spend)
	traceNum(&res.Trace, "emissionFactorKgPerDkk", factorKgPerDkk)
	traceNum(&res.Trace, "totalEmissionsKg", totalKg)
	tonnes := totalKg * kgToTonnes
	traceNum(&res.Trace, "totalEmissionsTonnes", tonnes)

	res.Value = round(finite(tonnes), spendFactors.ResultPrecision)
	return res
}

func runC1(in *ModuleInput) ModuleResult {
	return runSpendBased(in.C1, spendFactors.PurchasedGoodsKgPerDkk, "indkøbte varer og tjenester",
		"Forbrugsbaseret emissionsfaktor pr. indkøbskrone anvendes.")
}

func runC2(in *ModuleInput) ModuleResult {
	return runSpendBased(in.C2, spendFactors.CapitalGoodsKgPerDkk, "kapitalgoder",
		"Forbrugsbaseret emissionsfaktor pr. investeringskrone anvendes.")
}

// C3Input covers fuel- and energy-related activities not in scope 1/2.
type C3Input struct {
	Scope1FuelEmissionsTonnes   *float64 `json:"scope1FuelEmissionsTonnes,omitempty"`
	ElectricityKwh              *float64 `json:"electricityKwh,omitempty"`
	DocumentationQualityPercent *float64 `json:"documentationQualityPercent,omitempty"`
}

func runC3(in *ModuleInput) ModuleResult {
	raw := in.C3
	if raw == nil {
		raw = &C3Input{}
	}
	res := ModuleResult{
		Unit: "t CO2e",
		Assumptions: []string{
			"Well-to-tank-tillæg på 21% af scope 1-brændstofudledningen anvendes.",
			"Opstrømsfaktor for elproduktion anvendes på indkøbt elektricitet.",
		},
		Trace:    []string{},
		Warnings: []string{},
	}

	has := present(
		raw.Scope1FuelEmissionsTonnes != nil, raw.ElectricityKwh != nil,
		raw.DocumentationQualityPercent != nil,
	)

	fuelTonnes := nonNegative(raw.Scope1FuelEmissionsTonnes, "scope1FuelEmissionsTonnes", &res.Warnings, has)
	kwh := nonNegative(raw.ElectricityKwh, "electricityKwh", &res.Warnings, has)
	quality(raw.DocumentationQualityPercent, "documentationQualityPercent", 100,
		lowDocThresholdPercent, "brændstof- og energirelaterede aktiviteter", &res.Warnings, has)

	fuelUpstreamKg := round(fuelTonnes*1000*c3Factors.UpstreamFuelRate, 6)
	powerUpstreamKg := round(kwh*c3Factors.UpstreamPowerKgPerKwh, 6)
	totalKg := round(fuelUpstreamKg+powerUpstreamKg, 6)

	traceNum(&res.Trace, "scope1FuelEmissionsTonnes", fuelTonnes)
	traceNum(&res.Trace, "fuelUpstreamKg", fuelUpstreamKg)
	traceNum(&res.Trace, "electricityKwh", kwh)
	traceNum(&res.Trace, "powerUpstreamKg", powerUpstreamKg)
	traceNum(&res.Trace, "totalEmissionsKg", totalKg)
	tonnes := totalKg * kgToTonnes
	traceNum(&res.Trace, "totalEmissionsTonnes", tonnes)

	res.Value = round(finite(tonnes), c3Factors.ResultPrecision)
	return res
}

// TransportInput is the shared record for freight transport (C4, C8).
type TransportInput struct {
	GoodsTonnes                 *float64 `json:"goodsTonnes,omitempty"`
	DistanceKm                  *float64 `json:"distanceKm,omitempty"`
	TransportMode               *string  `json:"transportMode,omitempty"`
	DocumentationQualityPercent *float64 `json:"documentationQualityPercent,omitempty"`
}

func runTransport(raw *TransportInput, subject string) ModuleResult {
	if raw == nil {
		raw = &TransportInput{}
	}
	res := ModuleResult{
		Unit: "t CO2e",
		Assumptions: []string{
			"Tonkilometerfaktorer pr. transportform anvendes; vejtransport er standard.",
		},
		Trace:    []string{},
		Warnings: []string{},
	}

	has := present(
		raw.GoodsTonnes != nil, raw.DistanceKm != nil, raw.TransportMode != nil,
		raw.DocumentationQualityPercent != nil,
	)

	mode := resolveEnum(raw.TransportMode, transportFactors.ModeLabels, transportFactors.DefaultMode,
		"transportform", 0, &res.Warnings)
	goods := nonNegative(raw.GoodsTonnes, "goodsTonnes", &res.Warnings, has)
	distance := nonNegative(raw.DistanceKm, "distanceKm", &res.Warnings, has)
	quality(raw.DocumentationQualityPercent, "documentationQualityPercent", 100,
		lowDocThresholdPercent, subject, &res.Warnings, has)

	factor := transportFactors.ModeKgPerTonneKm[mode]
	tonneKm := round(goods*distance, 6)
	totalKg := round(tonneKm*factor, 6)

	traceStr(&res.Trace, "transportMode", mode)
	traceNum(&res.Trace, "goodsTonnes", goods)
	traceNum(&res.Trace, "distanceKm", distance)
	traceNum(&res.Trace, "tonneKm", tonneKm)
	traceNum(&res.Trace, "emissionFactorKgPerTonneKm", factor)
	traceNum(&res.Trace, "totalEmissionsKg", totalKg)
	tonnes := totalKg * kgToTonnes
	traceNum(&res.Trace, "totalEmissionsTonnes", tonnes)

	res.Value = round(finite(tonnes), transportFactors.ResultPrecision)
	return res
}

func runC4(in *ModuleInput) ModuleResult {
	return runTransport(in.C4, "upstream transport")
}

func runC8(in *ModuleInput) ModuleResult {
	return runTransport(in.C8, "downstream transport")
}

// C5Input covers operational waste.
type C5Input struct {
	WasteTonnes                 *float64 `json:"wasteTonnes,omitempty"`
	TreatmentType               *string  `json:"treatmentType,omitempty"`
	DocumentationQualityPercent *float64 `json:"documentationQualityPercent,omitempty"`
}

func runC5(in *ModuleInput) ModuleResult {
	raw := in.C5
	if raw == nil {
		raw = &C5Input{}
	}
	res := ModuleResult{
		Unit: "t CO2e",
		Assumptions: []string{
			"Behandlingsfaktorer pr. ton affald anvendes; forbrænding er standard.",
		},
		Trace:    []string{},
		Warnings: []string{},
	}

	has := present(
		raw.WasteTonnes != nil, raw.TreatmentType != nil,
		raw.DocumentationQualityPercent != nil,
	)

	treatment := resolveEnum(raw.TreatmentType, c5Factors.TreatmentLabels, c5Factors.DefaultTreatment,
		"behandlingstype", 0, &res.Warnings)
	waste := nonNegative(raw.WasteTonnes, "wasteTonnes", &res.Warnings, has)
	quality(raw.DocumentationQualityPercent, "documentationQualityPercent", 100,
		lowDocThresholdPercent, "affald fra driften", &res.Warnings, has)

	factor := c5Factors.TreatmentKgPerTonne[treatment]
	totalKg := round(waste*factor, 6)

	traceStr(&res.Trace, "treatmentType", treatment)
	traceNum(&res.Trace, "wasteTonnes", waste)
	traceNum(&res.Trace, "emissionFactorKgPerTonne", factor)
	traceNum(&res.Trace, "totalEmissionsKg", totalKg)
	tonnes := totalKg * kgToTonnes
	traceNum(&res.Trace, "totalEmissionsTonnes", tonnes)

	res.Value = round(finite(tonnes), c5Factors.ResultPrecision)
	return res
}

// C6Input covers business travel.
type C6Input struct {
	FlightShortKm               *float64 `json:"flightShortKm,omitempty"`
	FlightLongKm                *float64 `json:"flightLongKm,omitempty"`
	TrainKm                     *float64 `json:"trainKm,omitempty"`
	CarKm                       *float64 `json:"carKm,omitempty"`
	HotelNights                 *float64 `json:"hotelNights,omitempty"`
	DocumentationQualityPercent *float64 `json:"documentationQualityPercent,omitempty"`
}

func runC6(in *ModuleInput) ModuleResult {
	raw := in.C6
	if raw == nil {
		raw = &C6Input{}
	}
	res := ModuleResult{
		Unit: "t CO2e",
		Assumptions: []string{
			"Kilometerfaktorer pr. rejseform og en standardfaktor pr. hotelovernatning anvendes.",
		},
		Trace:    []string{},
		Warnings: []string{},
	}

	has := present(
		raw.FlightShortKm != nil, raw.FlightLongKm != nil, raw.TrainKm != nil,
		raw.CarKm != nil, raw.HotelNights != nil, raw.DocumentationQualityPercent != nil,
	)

	flightShort := nonNegative(raw.FlightShortKm, "flightShortKm", &res.Warnings, has)
	flightLong := nonNegative(raw.FlightLongKm, "flightLongKm", &res.Warnings, has)
	train := nonNegative(raw.TrainKm, "trainKm", &res.Warnings, has)
	car := nonNegative(raw.CarKm, "carKm", &res.Warnings, has)
	hotelNights := nonNegative(raw.HotelNights, "hotelNights", &res.Warnings, has)
	quality(raw.DocumentationQualityPercent, "documentationQualityPercent", 100,
		lowDocThresholdPercent, "forretningsrejser", &res.Warnings, has)

	flightShortKg := round(flightShort*c6Factors.ModeKgPerKm["flightShort"], 6)
	flightLongKg := round(flightLong*c6Factors.ModeKgPerKm["flightLong"], 6)
	trainKg := round(train*c6Factors.ModeKgPerKm["train"], 6)
	carKg := round(car*c6Factors.ModeKgPerKm["car"], 6)
	hotelKg := round(hotelNights*c6Factors.HotelKgPerNight, 6)
	totalKg := round(flightShortKg+flightLongKg+trainKg+carKg+hotelKg, 6)

	traceNum(&res.Trace, "flightShortKm", flightShort)
	traceNum(&res.Trace, "flightShortKg", flightShortKg)
	traceNum(&res.Trace, "flightLongKm", flightLong)
	traceNum(&res.Trace, "flightLongKg", flightLongKg)
	traceNum(&res.Trace, "trainKm", train)
	traceNum(&res.Trace, "trainKg", trainKg)
	traceNum(&res.Trace, "carKm", car)
	traceNum(&res.Trace, "carKg", carKg)
	traceNum(&res.Trace, "hotelNights", hotelNights)
	traceNum(&res.Trace, "hotelKg", hotelKg)
	traceNum(&res.Trace, "totalEmissionsKg", totalKg)
	tonnes := totalKg * kgToTonnes
	traceNum(&res.Trace, "totalEmissionsTonnes", tonnes)

	res.Value = round(finite(tonnes), c6Factors.ResultPrecision)
	return res
}

// C7Input covers employee commuting.
type C7Input struct {
	Employees                   *float64 `json:"employees,omitempty"`
	AverageCommuteKmOneWay      *float64 `json:"averageCommuteKmOneWay,omitempty"`
	CarSharePercent             *float64 `json:"carSharePercent,omitempty"`
	RemoteSharePercent          *float64 `json:"remoteSharePercent,omitempty"`
	DocumentationQualityPercent *float64 `json:"documentationQualityPercent,omitempty"`
}

func runC7(in *ModuleInput) ModuleResult {
	raw := in.C7
	if raw == nil {
		raw = &C7Input{}
	}
	res := ModuleResult{
		Unit: "t CO2e",
		Assumptions: []string{
			"216 arbejdsdage pr. år antages; hjemmearbejdsdage modregnes fuldt ud.",
			"Andelen uden bil antages at pendle med kollektiv transport.",
		},
		Trace:    []string{},
		Warnings: []string{},
	}

	has := present(
		raw.Employees != nil, raw.AverageCommuteKmOneWay != nil,
		raw.CarSharePercent != nil, raw.RemoteSharePercent != nil,
		raw.DocumentationQualityPercent != nil,
	)

	employees := nonNegative(raw.Employees, "employees", &res.Warnings, has)
	commuteKm := nonNegative(raw.AverageCommuteKmOneWay, "averageCommuteKmOneWay", &res.Warnings, has)
	carShare := bounded(raw.CarSharePercent, "carSharePercent", 100, &res.Warnings, false)
	remoteShare := bounded(raw.RemoteSharePercent, "remoteSharePercent", 100, &res.Warnings, false)
	quality(raw.DocumentationQualityPercent, "documentationQualityPercent", 100,
		lowDocThresholdPercent, "medarbejderpendling", &res.Warnings, has)

	annualKm := round(employees*commuteKm*2*c7Factors.WorkdaysPerYear, 6)
	blendedFactor := carShare/100*c7Factors.CarKgPerKm + (1-carShare/100)*c7Factors.PublicKgPerKm
	grossKg := round(annualKm*blendedFactor, 6)
	remoteReductionKg := round(grossKg*remoteShare/100*c7Factors.RemoteMitigation, 6)
	netKg := grossKg - remoteReductionKg
	if netKg < 0 {
		netKg = 0
	}

	traceNum(&res.Trace, "employees", employees)
	traceNum(&res.Trace, "averageCommuteKmOneWay", commuteKm)
	traceNum(&res.Trace, "annualCommuteKm", annualKm)
	traceNum(&res.Trace, "carSharePercent", carShare)
	traceNum(&res.Trace, "grossEmissionsKg", grossKg)
	traceNum(&res.Trace, "remoteSharePercent", remoteShare)
	traceNum(&res.Trace, "remoteReductionKg", remoteReductionKg)
	traceNum(&res.Trace, "totalEmissionsKg", netKg)
	tonnes := netKg * kgToTonnes
	traceNum(&res.Trace, "totalEmissionsTonnes", tonnes)

	res.Value = round(finite(tonnes), c7Factors.ResultPrecision)
	return res
}
