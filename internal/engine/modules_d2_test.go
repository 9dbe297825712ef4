package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunD2(t *testing.T) {
	res := runD2(&ModuleInput{D2: &D2Input{MaterialTopics: []*MaterialTopicInput{
		{
			Title:             sptr("Klimatilpasning"),
			RiskType:          sptr("risk"),
			ImpactType:        sptr("actualNegative"),
			Severity:          sptr("critical"),
			Likelihood:        sptr("likely"),
			RemediationStatus: sptr("none"),
			FinancialScore:    fptr(4),
			Timeline:          sptr("shortTerm"),
			GapStatus:         sptr("closed"),
			ResponsibleParty:  sptr("COO"),
		},
		{
			Title:             sptr("Vandforbrug"),
			RiskType:          sptr("risk"),
			ImpactType:        sptr("potentialNegative"),
			Severity:          sptr("low"),
			Likelihood:        sptr("likely"),
			RemediationStatus: sptr("none"),
			FinancialScore:    fptr(2),
			Timeline:          sptr("longTerm"),
		},
		{
			Title:             sptr("Biodiversitet"),
			RiskType:          sptr("risk"),
			ImpactType:        sptr("potentialNegative"),
			Severity:          sptr("high"),
			Likelihood:        sptr("almostCertain"),
			RemediationStatus: sptr("none"),
			Timeline:          sptr("shortTerm"),
		},
	}}})

	assert.InDelta(t, 58.18, res.Value, 0.01)

	require.NotNil(t, res.DoubleMateriality)
	topics := res.DoubleMateriality.Topics
	require.Len(t, topics, 3)

	assert.Equal(t, "priority", topics[0].PriorityBand)
	assert.InDelta(t, 86.67, topics[0].CombinedScore, 0.01)
	assert.True(t, topics[0].EligibleForPrioritisation)

	assert.Equal(t, "monitor", topics[1].PriorityBand)
	assert.InDelta(t, 36.27, topics[1].CombinedScore, 0.01)

	// No financial score and no approved exception: penalised and kept out
	// of the prioritisation even though the raw score is high.
	assert.Equal(t, "monitor", topics[2].PriorityBand)
	assert.InDelta(t, 51.6, topics[2].CombinedScore, 0.01)
	assert.False(t, topics[2].EligibleForPrioritisation)
	assert.True(t, topics[2].MissingFinancial)
	assert.Nil(t, topics[2].FinancialScore)

	assert.Contains(t, res.Trace, "topic1.impactScore=80")
	assert.Contains(t, res.Trace, "topic1.priorityBand=priority")
	assert.Contains(t, res.Trace, "topic3.priorityBand=monitor")
	assert.Equal(t, []string{
		"Emnet Klimatilpasning er prioriteret. Anbefalet handling: Håndtér risiko.",
	}, res.Warnings)

	assert.Equal(t, []MatrixCell{
		{Severity: "low", Likelihood: "likely", Count: 1},
		{Severity: "high", Likelihood: "almostCertain", Count: 1},
		{Severity: "critical", Likelihood: "likely", Count: 1},
	}, res.DoubleMateriality.ImpactMatrix)
	assert.Equal(t, 2, res.DoubleMateriality.DueDiligence.ByImpactType["potentialNegative"])
	assert.Equal(t, 3, res.DoubleMateriality.DueDiligence.ByValueChainSegment["ownOperations"])
}

func TestRunD2FinancialExceptionApproved(t *testing.T) {
	res := runD2(&ModuleInput{D2: &D2Input{MaterialTopics: []*MaterialTopicInput{
		{
			Title:                           sptr("Leverandørkædens arbejdsforhold"),
			RiskType:                        sptr("risk"),
			ImpactType:                      sptr("actualNegative"),
			Severity:                        sptr("critical"),
			Likelihood:                      sptr("almostCertain"),
			RemediationStatus:               sptr("none"),
			Timeline:                        sptr("shortTerm"),
			GapStatus:                       sptr("closed"),
			ResponsibleParty:                sptr("CSR-chef"),
			FinancialExceptionApproved:      bptr(true),
			FinancialExceptionJustification: sptr("Effekten kan ikke kvantificeres pålideligt endnu."),
		},
	}}})

	topic := res.DoubleMateriality.Topics[0]
	assert.Equal(t, 100.0, topic.CombinedScore)
	assert.Equal(t, "priority", topic.PriorityBand)
	assert.True(t, topic.EligibleForPrioritisation)
	assert.True(t, topic.MissingFinancial)
	assert.Contains(t, res.Warnings,
		"Finansiel undtagelse er godkendt for emnet Leverandørkædens arbejdsforhold. Emnet indgår i prioriteringen uden finansiel score.")
}

func TestRunD2FinancialExceptionNeedsJustification(t *testing.T) {
	res := runD2(&ModuleInput{D2: &D2Input{MaterialTopics: []*MaterialTopicInput{
		{
			Title:                           sptr("Cybersikkerhed"),
			Severity:                        sptr("high"),
			Likelihood:                      sptr("likely"),
			FinancialExceptionApproved:      bptr(true),
			FinancialExceptionJustification: sptr("for kort"),
		},
	}}})

	topic := res.DoubleMateriality.Topics[0]
	assert.False(t, topic.EligibleForPrioritisation)
	assert.Contains(t, res.Warnings,
		"Finansiel undtagelse for emnet Cybersikkerhed kræver en begrundelse på mindst 20 tegn. Undtagelsen anvendes ikke.")
}

func TestRunD2JustificationWithoutApproval(t *testing.T) {
	res := runD2(&ModuleInput{D2: &D2Input{MaterialTopics: []*MaterialTopicInput{
		{
			Title:                           sptr("Cybersikkerhed"),
			Severity:                        sptr("high"),
			Likelihood:                      sptr("likely"),
			FinancialExceptionJustification: sptr("Effekten kan ikke kvantificeres pålideligt endnu."),
		},
	}}})

	assert.Contains(t, res.Warnings,
		"Begrundelsen for emnet Cybersikkerhed er angivet uden godkendt undtagelse. Godkend undtagelsen for at anvende den.")
	assert.False(t, res.DoubleMateriality.Topics[0].EligibleForPrioritisation)
}

func TestRunD2RejectsInvalidTopics(t *testing.T) {
	res := runD2(&ModuleInput{D2: &D2Input{MaterialTopics: []*MaterialTopicInput{
		{Severity: sptr("critical"), Likelihood: sptr("likely")},
		{Title: sptr("Uden alvorlighed"), Likelihood: sptr("likely")},
		{Title: sptr("Uden sandsynlighed"), Severity: sptr("high"), Likelihood: sptr("ofte")},
	}}})

	assert.Equal(t, 0.0, res.Value)
	assert.Equal(t, []string{
		"Emnet på linje 1 mangler en titel og udelades af væsentlighedsvurderingen.",
		"Emnet Uden alvorlighed har en ukendt eller manglende alvorlighed og udelades.",
		"Emnet Uden sandsynlighed har en ukendt eller manglende sandsynlighed og udelades.",
		"Ingen gyldige emner kunne vurderes. Kontrollér indtastningerne.",
	}, res.Warnings)
	assert.Nil(t, res.DoubleMateriality)
}

func TestRunD2PriorityFollowUpWarnings(t *testing.T) {
	res := runD2(&ModuleInput{D2: &D2Input{MaterialTopics: []*MaterialTopicInput{
		{
			Title:             sptr("Grøn produktlinje"),
			RiskType:          sptr("opportunity"),
			ImpactType:        sptr("actualNegative"),
			Severity:          sptr("critical"),
			Likelihood:        sptr("almostCertain"),
			RemediationStatus: sptr("none"),
			FinancialScore:    fptr(5),
		},
	}}})

	assert.Equal(t, []string{
		"Emnet Grøn produktlinje er prioriteret. Anbefalet handling: Udnyt mulighed.",
		"Der er et åbent politikgab for det prioriterede emne Grøn produktlinje. Planlæg lukning af gabet.",
		"Angiv en tidshorisont for det prioriterede emne Grøn produktlinje.",
		"Angiv en ansvarlig for det prioriterede emne Grøn produktlinje.",
	}, res.Warnings)
	assert.Equal(t, 100.0, res.Value)
}

func TestRunD2EmptyInput(t *testing.T) {
	res := runD2(&ModuleInput{})
	assert.Equal(t, 0.0, res.Value)
	assert.Empty(t, res.Warnings)
	assert.Nil(t, res.DoubleMateriality)
}
