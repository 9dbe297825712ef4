package engine

// ModuleResult is the universal output contract returned by every module
// calculator. Value is always finite; Warnings carry the Danish audit trail
// of every correction and advisory the sanitisers produced.
type ModuleResult struct {
	Value       float64  `json:"value"`
	Unit        string   `json:"unit"`
	Assumptions []string `json:"assumptions"`
	Trace       []string `json:"trace"`
	Warnings    []string `json:"warnings"`

	Metrics          []Metric    `json:"metrics,omitempty"`
	Tables           []Table     `json:"tables,omitempty"`
	Narratives       []Narrative `json:"narratives,omitempty"`
	Responsibilities []string    `json:"responsibilities,omitempty"`
	Notes            []string    `json:"notes,omitempty"`
	EsrsFacts        []EsrsFact  `json:"esrsFacts,omitempty"`
	EsrsTables       []EsrsTable `json:"esrsTables,omitempty"`

	Intensities            []Intensity             `json:"intensities,omitempty"`
	Trend                  *Trend                  `json:"trend,omitempty"`
	TargetProgress         *TargetProgress         `json:"targetProgress,omitempty"`
	EnergyMix              []EnergyMixShare        `json:"energyMix,omitempty"`
	CarbonPriceSchemes     []CarbonPriceScheme     `json:"carbonPriceSchemes,omitempty"`
	Scenarios              []Scenario              `json:"scenarios,omitempty"`
	RiskGeographies        []RiskGeography         `json:"riskGeographies,omitempty"`
	DecarbonisationDrivers []DecarbonisationDriver `json:"decarbonisationDrivers,omitempty"`
	DoubleMateriality      *DoubleMateriality      `json:"doubleMateriality,omitempty"`
	TargetsOverview        []TargetOverview        `json:"targetsOverview,omitempty"`
	PlannedActions         []PlannedAction         `json:"plannedActions,omitempty"`
	TransitionMeasures     []TransitionMeasure     `json:"transitionMeasures,omitempty"`
	FinancialEffects       []FinancialEffect       `json:"financialEffects,omitempty"`
	RemovalProjects        []RemovalProject        `json:"removalProjects,omitempty"`

	// insightsApplied marks that the E1 insight overlay already ran, either
	// inside the calculator or in the dispatcher. The overlay is additive
	// and must never run twice.
	insightsApplied bool
}

// Metric is a labelled, display-ready figure.
type Metric struct {
	Label   string `json:"label"`
	Value   string `json:"value"`
	Unit    string `json:"unit,omitempty"`
	Context string `json:"context,omitempty"`
}

// Table is a display-ready tabular breakdown.
type Table struct {
	Title   string     `json:"title"`
	Columns []string   `json:"columns"`
	Rows    [][]string `json:"rows"`
}

// Narrative is a titled prose block for the disclosure document.
type Narrative struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// EsrsFact is a single tagged disclosure fact.
type EsrsFact struct {
	Concept string `json:"concept"`
	Value   string `json:"value"`
	Unit    string `json:"unit,omitempty"`
	Context string `json:"context,omitempty"`
}

// EsrsTable binds a tabular breakdown to an ESRS concept.
type EsrsTable struct {
	Concept string `json:"concept"`
	Table   Table  `json:"table"`
}

// Intensity is an emission intensity on one normalisation basis.
type Intensity struct {
	Basis string  `json:"basis"`
	Value float64 `json:"value"`
	Unit  string  `json:"unit"`
}

// Trend exposes the previous-year figure for the same scope; consumers
// compute the delta themselves.
type Trend struct {
	PreviousValue float64 `json:"previousValue"`
	Unit          string  `json:"unit"`
}

// TargetProgress is the target-overlay annotation for an emission module.
type TargetProgress struct {
	Scope            string  `json:"scope"`
	Owner            string  `json:"owner,omitempty"`
	Status           string  `json:"status"`
	TargetYear       int     `json:"targetYear,omitempty"`
	ReductionPercent float64 `json:"reductionPercent,omitempty"`
}

// EnergyMixShare is one normalised slice of the organisation's energy mix.
type EnergyMixShare struct {
	EnergyType   string  `json:"energyType"`
	SharePercent float64 `json:"sharePercent"`
}

// CarbonPriceScheme describes one internal carbon-pricing scheme.
type CarbonPriceScheme struct {
	Name            string  `json:"name"`
	PriceDkkPerTon  float64 `json:"priceDkkPerTon"`
	CoveragePercent float64 `json:"coveragePercent"`
	ScopeCovered    string  `json:"scopeCovered"`
}

// Scenario is one climate scenario used in resilience analysis.
type Scenario struct {
	Name            string  `json:"name"`
	TemperaturePath string  `json:"temperaturePath"`
	ExposureScore   float64 `json:"exposureScore"`
}

// RiskGeography is a geography with assessed climate-risk exposure.
type RiskGeography struct {
	Region   string `json:"region"`
	RiskType string `json:"riskType"`
	Level    string `json:"level"`
}

// DecarbonisationDriver is a contribution driver behind planned reductions.
type DecarbonisationDriver struct {
	Driver                   string  `json:"driver"`
	ExpectedReductionTonnes  float64 `json:"expectedReductionTonnes"`
	ShareOfPlannedPercent    float64 `json:"shareOfPlannedPercent"`
}

// TargetOverview summarises one emission-reduction target.
type TargetOverview struct {
	Scope            string  `json:"scope"`
	BaselineYear     int     `json:"baselineYear"`
	TargetYear       int     `json:"targetYear"`
	ReductionPercent float64 `json:"reductionPercent"`
	Status           string  `json:"status"`
	Owner            string  `json:"owner,omitempty"`
}

// PlannedAction is one planned decarbonisation action.
type PlannedAction struct {
	Title                   string  `json:"title"`
	ExpectedReductionTonnes float64 `json:"expectedReductionTonnes"`
	CapexDkk                float64 `json:"capexDkk"`
	TargetYear              int     `json:"targetYear,omitempty"`
}

// TransitionMeasure is one transition-plan measure with its lever.
type TransitionMeasure struct {
	Lever         string  `json:"lever"`
	Description   string  `json:"description"`
	ShareOfPlan   float64 `json:"shareOfPlan"`
}

// FinancialEffect is an anticipated financial effect of a climate risk or
// opportunity.
type FinancialEffect struct {
	Description string  `json:"description"`
	Direction   string  `json:"direction"`
	AmountDkk   float64 `json:"amountDkk"`
	Horizon     string  `json:"horizon"`
}

// RemovalProject is one carbon-removal project.
type RemovalProject struct {
	Name            string  `json:"name"`
	Method          string  `json:"method"`
	RemovedTonnes   float64 `json:"removedTonnes"`
	PermanenceYears float64 `json:"permanenceYears"`
}

// DoubleMateriality is the full D2 scoring payload.
type DoubleMateriality struct {
	Topics       []MaterialTopicResult `json:"topics"`
	ImpactMatrix []MatrixCell          `json:"impactMatrix"`
	DueDiligence DueDiligenceSummary   `json:"dueDiligence"`
}

// MaterialTopicResult is the per-topic D2 scoring outcome.
type MaterialTopicResult struct {
	Title                     string   `json:"title"`
	ImpactScore               float64  `json:"impactScore"`
	FinancialScore            *float64 `json:"financialScore,omitempty"`
	TimelineScore             *float64 `json:"timelineScore,omitempty"`
	CombinedScore             float64  `json:"combinedScore"`
	PriorityBand              string   `json:"priorityBand"`
	EligibleForPrioritisation bool     `json:"eligibleForPrioritisation"`
	MissingFinancial          bool     `json:"missingFinancial"`
}

// MatrixCell is one severity×likelihood cell of the impact matrix.
type MatrixCell struct {
	Severity   string `json:"severity"`
	Likelihood string `json:"likelihood"`
	Count      int    `json:"count"`
}

// DueDiligenceSummary groups material topics for due-diligence reporting.
type DueDiligenceSummary struct {
	ByImpactType        map[string]int `json:"byImpactType"`
	ByValueChainSegment map[string]int `json:"byValueChainSegment"`
	ByRemediationStatus map[string]int `json:"byRemediationStatus"`
}
