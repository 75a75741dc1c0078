package analyzer

import (
	"github.com/terrascope/foodweb/internal/ecosystem"
)

// FindingCode identifies a balance finding independently of its wording.
type FindingCode string

const (
	HerbivoreOverpopulation FindingCode = "herbivore_overpopulation"
	CarnivoreShortage       FindingCode = "carnivore_shortage"
	CarnivoreOverpopulation FindingCode = "carnivore_overpopulation"
	Balanced                FindingCode = "balanced"
)

var defaultMessages = map[FindingCode]string{
	HerbivoreOverpopulation: "Too many herbivores: producers risk being eaten out",
	CarnivoreShortage:       "Too few carnivores: herbivores may multiply too fast",
	CarnivoreOverpopulation: "Too many carnivores: herbivores risk extinction",
	Balanced:                "The ecosystem is balanced",
}

// Message returns the default English wording for the code.
func (c FindingCode) Message() string {
	return defaultMessages[c]
}

// Warning reports whether the code is one of the imbalance findings.
func (c FindingCode) Warning() bool {
	return c != Balanced
}

type Finding struct {
	Code    FindingCode
	Message string
}

// Result is the outcome of a balance analysis. Findings holds one to three
// warnings or exactly one Balanced finding.
type Result struct {
	Findings    []Finding
	HasWarnings bool
	Counts      ecosystem.Counts
}

type rule struct {
	code  FindingCode
	fires func(c ecosystem.Counts) bool
}

// Evaluated in order; each rule is independent of the others. The decomposer
// count is reported but never used as a threshold.
var rules = []rule{
	{HerbivoreOverpopulation, func(c ecosystem.Counts) bool { return c.Herbivores > 3*c.Carnivores }},
	{CarnivoreShortage, func(c ecosystem.Counts) bool { return 2*c.Carnivores < c.Herbivores }},
	{CarnivoreOverpopulation, func(c ecosystem.Counts) bool { return c.Carnivores > c.Herbivores }},
}

// Analyze evaluates the balance rules against the graph's category counts.
// It does not modify g.
func Analyze(g *ecosystem.Graph) Result {
	return Evaluate(g.Counts())
}

// Evaluate runs the balance rules on raw counts.
func Evaluate(counts ecosystem.Counts) Result {
	result := Result{Counts: counts}

	for _, r := range rules {
		if r.fires(counts) {
			result.Findings = append(result.Findings, newFinding(r.code))
			result.HasWarnings = true
		}
	}

	if !result.HasWarnings {
		result.Findings = []Finding{newFinding(Balanced)}
	}

	return result
}

func newFinding(code FindingCode) Finding {
	return Finding{Code: code, Message: code.Message()}
}

// Codes returns the finding codes in order.
func (r Result) Codes() []FindingCode {
	codes := make([]FindingCode, len(r.Findings))
	for i, f := range r.Findings {
		codes[i] = f.Code
	}
	return codes
}
