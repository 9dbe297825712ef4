package engine

// Factor tables for every module: conversion rates, mitigation rates,
// thresholds, defaults and scoring weights. Pure data, loaded once,
// never mutated. Result precision is declared per module.

// claimConservatismFactor discounts renewable-energy instrument claims
// (B7–B11) for settlement and cancellation uncertainty.
const claimConservatismFactor = 0.95

// lowDocThresholdPercent is the advisory documentation-quality floor shared
// by the emission modules.
const lowDocThresholdPercent = 60.0

var a1Factors = struct {
	NaturalGasKgPerM3    float64
	HeatingOilKgPerL     float64
	LpgKgPerKg           float64
	WoodPelletsKgPerKg   float64
	BiogasMitigationRate float64
	ResultPrecision      int
}{
	NaturalGasKgPerM3:    2.2,
	HeatingOilKgPerL:     2.66,
	LpgKgPerKg:           2.98,
	WoodPelletsKgPerKg:   0.052,
	BiogasMitigationRate: 1.0,
	ResultPrecision:      3,
}

var a2Factors = struct {
	FuelKgPerL       map[string]float64
	FuelLabels       map[string]string
	DefaultFuel      string
	LitersPerKm      map[string]float64
	ResultPrecision  int
}{
	FuelKgPerL: map[string]float64{
		"diesel":    2.68,
		"petrol":    2.31,
		"biodiesel": 1.35,
		"hvo":       0.42,
		"cng":       2.16,
	},
	FuelLabels: map[string]string{
		"diesel":    "Diesel",
		"petrol":    "Benzin",
		"biodiesel": "Biodiesel",
		"hvo":       "HVO",
		"cng":       "Gas (CNG)",
	},
	DefaultFuel: "diesel",
	LitersPerKm: map[string]float64{
		"diesel":    0.09,
		"petrol":    0.08,
		"biodiesel": 0.09,
		"hvo":       0.09,
		"cng":       0.1,
	},
	ResultPrecision: 3,
}

var a3Factors = struct {
	DefaultKgPerUnit    float64
	AbatementEfficiency float64
	ResultPrecision     int
}{
	DefaultKgPerUnit:    1.0,
	AbatementEfficiency: 0.85,
	ResultPrecision:     3,
}

var a4Factors = struct {
	GwpKgPerKg      map[string]float64
	Labels          map[string]string
	DefaultType     string
	ResultPrecision int
}{
	GwpKgPerKg: map[string]float64{
		"r410a":   2088,
		"r134a":   1430,
		"r32":     675,
		"r290":    3,
		"co2":     1,
		"ammonia": 0,
	},
	Labels: map[string]string{
		"r410a":   "R410A",
		"r134a":   "R134a",
		"r32":     "R32",
		"r290":    "Propan (R290)",
		"co2":     "CO2 (R744)",
		"ammonia": "Ammoniak (R717)",
	},
	DefaultType:     "r410a",
	ResultPrecision: 3,
}

var b1Factors = struct {
	LocationKgPerKwh float64
	ResidualKgPerKwh float64
	ResultPrecision  int
}{
	LocationKgPerKwh: 0.135,
	ResidualKgPerKwh: 0.47,
	ResultPrecision:  3,
}

var b2Factors = struct {
	DistrictHeatKgPerKwh  float64
	SurplusHeatMitigation float64
	ResultPrecision       int
}{
	DistrictHeatKgPerKwh:  0.07,
	SurplusHeatMitigation: 0.9,
	ResultPrecision:       3,
}

var b3Factors = struct {
	CoolingKgPerKwh       float64
	FreeCoolingMitigation float64
	AbsorptionMitigation  float64
	ResultPrecision       int
}{
	CoolingKgPerKwh:       0.16,
	FreeCoolingMitigation: 0.85,
	AbsorptionMitigation:  0.6,
	ResultPrecision:       3,
}

var b4Factors = struct {
	SteamKgPerKwh       float64
	CondensateRecoveryMitigation float64
	ResultPrecision     int
}{
	SteamKgPerKwh:                0.18,
	CondensateRecoveryMitigation: 0.7,
	ResultPrecision:              3,
}

var b5Factors = struct {
	GridKgPerKwh     float64
	ChargingLossRate float64
	ResultPrecision  int
}{
	GridKgPerKwh:     0.135,
	ChargingLossRate: 0.1,
	ResultPrecision:  3,
}

var b6Factors = struct {
	GridKgPerKwh           float64
	DefaultLossPercent     float64
	MaxLossPercent         float64
	ResultPrecision        int
}{
	GridKgPerKwh:       0.135,
	DefaultLossPercent: 5,
	MaxLossPercent:     15,
	ResultPrecision:    3,
}

var creditFactors = struct {
	DefaultResidualKgPerKwh   float64
	QualityDefaultPercent     float64
	QualityThresholdPercent   float64
	TimeCorrelationThreshold  float64
	SettlementThresholdPercent float64
	ResultPrecision           int
}{
	DefaultResidualKgPerKwh:    0.233,
	QualityDefaultPercent:      100,
	QualityThresholdPercent:    70,
	TimeCorrelationThreshold:   80,
	SettlementThresholdPercent: 90,
	ResultPrecision:            3,
}

var spendFactors = struct {
	// kg CO2e per DKK spend, by module.
	PurchasedGoodsKgPerDkk float64
	CapitalGoodsKgPerDkk   float64
	ResultPrecision        int
}{
	PurchasedGoodsKgPerDkk: 0.00031,
	CapitalGoodsKgPerDkk:   0.00027,
	ResultPrecision:        3,
}

var c3Factors = struct {
	UpstreamFuelRate   float64
	UpstreamPowerKgPerKwh float64
	ResultPrecision    int
}{
	// Well-to-tank uplift applied to reported scope 1 fuel emissions.
	UpstreamFuelRate:      0.21,
	UpstreamPowerKgPerKwh: 0.033,
	ResultPrecision:       3,
}

var transportFactors = struct {
	ModeKgPerTonneKm map[string]float64
	ModeLabels       map[string]string
	DefaultMode      string
	ResultPrecision  int
}{
	ModeKgPerTonneKm: map[string]float64{
		"road":  0.11,
		"rail":  0.025,
		"sea":   0.015,
		"air":   0.65,
		"inlandWaterway": 0.035,
	},
	ModeLabels: map[string]string{
		"road":           "Vejtransport",
		"rail":           "Jernbane",
		"sea":            "Søfragt",
		"air":            "Luftfragt",
		"inlandWaterway": "Indre vandveje",
	},
	DefaultMode:     "road",
	ResultPrecision: 3,
}

var c5Factors = struct {
	TreatmentKgPerTonne map[string]float64
	TreatmentLabels     map[string]string
	DefaultTreatment    string
	ResultPrecision     int
}{
	TreatmentKgPerTonne: map[string]float64{
		"recycling":    21,
		"incineration": 215,
		"landfill":     587,
		"composting":   58,
	},
	TreatmentLabels: map[string]string{
		"recycling":    "Genanvendelse",
		"incineration": "Forbrænding",
		"landfill":     "Deponi",
		"composting":   "Kompostering",
	},
	DefaultTreatment: "incineration",
	ResultPrecision:  3,
}

var c6Factors = struct {
	ModeKgPerKm     map[string]float64
	ModeLabels      map[string]string
	DefaultMode     string
	HotelKgPerNight float64
	ResultPrecision int
}{
	ModeKgPerKm: map[string]float64{
		"flightShort": 0.246,
		"flightLong":  0.147,
		"train":       0.033,
		"car":         0.17,
		"taxi":        0.2,
	},
	ModeLabels: map[string]string{
		"flightShort": "Fly, kort distance",
		"flightLong":  "Fly, lang distance",
		"train":       "Tog",
		"car":         "Bil",
		"taxi":        "Taxi",
	},
	DefaultMode:     "car",
	HotelKgPerNight: 17,
	ResultPrecision: 3,
}

var c7Factors = struct {
	CarKgPerKm        float64
	PublicKgPerKm     float64
	WorkdaysPerYear   float64
	RemoteMitigation  float64
	ResultPrecision   int
}{
	CarKgPerKm:       0.17,
	PublicKgPerKm:    0.04,
	WorkdaysPerYear:  216,
	RemoteMitigation: 1.0,
	ResultPrecision:  3,
}

var c9Factors = struct {
	CategoryKgPerDkk map[string]float64
	CategoryLabels   map[string]string
	DefaultCategory  string
	ResultPrecision  int
}{
	CategoryKgPerDkk: map[string]float64{
		"services":    0.00012,
		"materials":   0.00045,
		"it":          0.00018,
		"logistics":   0.00038,
		"other":       0.00025,
	},
	CategoryLabels: map[string]string{
		"services":  "Tjenesteydelser",
		"materials": "Materialer",
		"it":        "IT og elektronik",
		"logistics": "Logistik",
		"other":     "Øvrigt",
	},
	DefaultCategory: "other",
	ResultPrecision: 3,
}

var leasedFactors = struct {
	EnergyKgPerKwh       map[string]float64
	EnergyLabels         map[string]string
	DefaultEnergyType    string
	DefaultKwhPerSqm     float64
	ResultPrecision      int
}{
	EnergyKgPerKwh: map[string]float64{
		"electricity":  0.135,
		"districtHeat": 0.07,
		"naturalGas":   0.204,
		"oil":          0.266,
	},
	EnergyLabels: map[string]string{
		"electricity":  "Elektricitet",
		"districtHeat": "Fjernvarme",
		"naturalGas":   "Naturgas",
		"oil":          "Fyringsolie",
	},
	DefaultEnergyType: "electricity",
	DefaultKwhPerSqm:  95,
	ResultPrecision:   3,
}

var c12Factors = struct {
	DefaultKgPerOutlet float64
	ResultPrecision    int
}{
	DefaultKgPerOutlet: 12000,
	ResultPrecision:    3,
}

var c13Factors = struct {
	ResultPrecision int
}{
	ResultPrecision: 3,
}

var c14Factors = struct {
	ProcessKgPerKwh  float64
	DefaultKwhPerTonne float64
	ResultPrecision  int
}{
	ProcessKgPerKwh:    0.135,
	DefaultKwhPerTonne: 420,
	ResultPrecision:    3,
}

var c15Factors = struct {
	TreatmentKgPerTonne map[string]float64
	TreatmentLabels     map[string]string
	DefaultTreatment    string
	ResultPrecision     int
}{
	TreatmentKgPerTonne: map[string]float64{
		"recycling":    21,
		"incineration": 215,
		"landfill":     587,
	},
	TreatmentLabels: map[string]string{
		"recycling":    "Genanvendelse",
		"incineration": "Forbrænding",
		"landfill":     "Deponi",
	},
	DefaultTreatment: "landfill",
	ResultPrecision:  3,
}

var e1TargetsFactors = struct {
	MinAmbitionPercent float64
	ResultPrecision    int
}{
	MinAmbitionPercent: 42,
	ResultPrecision:    1,
}

var e1RemovalsFactors = struct {
	MinPermanenceYears float64
	ResultPrecision    int
}{
	MinPermanenceYears: 100,
	ResultPrecision:    3,
}

var e1RisksFactors = struct {
	LevelScores     map[string]float64
	LevelLabels     map[string]string
	DefaultLevel    string
	ResultPrecision int
}{
	LevelScores: map[string]float64{
		"low":    20,
		"medium": 55,
		"high":   85,
	},
	LevelLabels: map[string]string{
		"low":    "Lav",
		"medium": "Mellem",
		"high":   "Høj",
	},
	DefaultLevel:    "medium",
	ResultPrecision: 1,
}

var e2Factors = struct {
	StressWeight           float64
	ConsumptionWeight      float64
	QualityGapWeight       float64
	StressShareWarnPercent float64
	ResultPrecision        int
}{
	StressWeight:           0.8,
	ConsumptionWeight:      0.5,
	QualityGapWeight:       0.25,
	StressShareWarnPercent: 40,
	ResultPrecision:        1,
}

var e3Factors = struct {
	AirWeight       float64
	WaterWeight     float64
	SoilWeight      float64
	ResultPrecision int
}{
	AirWeight:       0.5,
	WaterWeight:     0.3,
	SoilWeight:      0.2,
	ResultPrecision: 1,
}

var e4Factors = struct {
	SensitiveAreaWeight float64
	MitigationRate      float64
	ResultPrecision     int
}{
	SensitiveAreaWeight: 70,
	MitigationRate:      0.5,
	ResultPrecision:     1,
}

var e5Factors = struct {
	RecycledContentWeight float64
	RecyclabilityWeight   float64
	ResultPrecision       int
}{
	RecycledContentWeight: 0.5,
	RecyclabilityWeight:   0.5,
	ResultPrecision:       1,
}

var g1Factors = struct {
	PolicyWeight        float64
	TrainingWeight      float64
	PaymentWeight       float64
	WhistleblowerWeight float64
	ConvictionPenalty   float64
	MaxPenalty          float64
	PaymentTargetDays   float64
	ResultPrecision     int
}{
	PolicyWeight:        30,
	TrainingWeight:      30,
	PaymentWeight:       20,
	WhistleblowerWeight: 20,
	ConvictionPenalty:   15,
	MaxPenalty:          45,
	PaymentTargetDays:   30,
	ResultPrecision:     1,
}

var d2Factors = struct {
	SeverityWeights      map[string]float64
	SeverityLabels       map[string]string
	LikelihoodWeights    map[string]float64
	LikelihoodLabels     map[string]string
	MaxMatrixScore       float64
	ImpactTypeModifiers  map[string]float64
	RemediationModifiers map[string]float64
	TimelineWeights      map[string]float64
	FinancialScoreScale  float64
	MissingFinancialPenalty float64
	PriorityThreshold    float64
	AttentionThreshold   float64
	MinJustificationChars int
	ResultPrecision      int
}{
	SeverityWeights: map[string]float64{
		"minimal":  1,
		"low":      2,
		"medium":   3,
		"high":     4,
		"critical": 5,
	},
	SeverityLabels: map[string]string{
		"minimal":  "Minimal",
		"low":      "Lav",
		"medium":   "Mellem",
		"high":     "Høj",
		"critical": "Kritisk",
	},
	LikelihoodWeights: map[string]float64{
		"rare":          1,
		"unlikely":      2,
		"possible":      3,
		"likely":        4,
		"almostCertain": 5,
	},
	LikelihoodLabels: map[string]string{
		"rare":          "Sjælden",
		"unlikely":      "Usandsynlig",
		"possible":      "Mulig",
		"likely":        "Sandsynlig",
		"almostCertain": "Næsten sikker",
	},
	MaxMatrixScore: 25,
	ImpactTypeModifiers: map[string]float64{
		"actualNegative":    1.0,
		"potentialNegative": 0.9,
		"actualPositive":    0.85,
		"potentialPositive": 0.75,
	},
	RemediationModifiers: map[string]float64{
		"none":       1.0,
		"planned":    0.95,
		"inProgress": 0.9,
		"remediated": 0.8,
	},
	TimelineWeights: map[string]float64{
		"shortTerm":  1.0,
		"mediumTerm": 0.7,
		"longTerm":   0.4,
	},
	FinancialScoreScale:     20,
	MissingFinancialPenalty: 0.6,
	PriorityThreshold:       70,
	AttentionThreshold:      50,
	MinJustificationChars:   20,
	ResultPrecision:         2,
}

// defaultFactor backs CreateDefaultResult; effectively identity.
const defaultFactor = 1.0
