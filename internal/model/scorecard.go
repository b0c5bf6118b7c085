package model

// Tristate distinguishes a known false from an unknowable answer.
// The zero value is Unknown.
type Tristate int

const (
	Unknown Tristate = iota
	No
	Yes
)

func (t Tristate) String() string {
	switch t {
	case Yes:
		return "Yes"
	case No:
		return "No"
	default:
		return "Unknown"
	}
}

// ScoreCard is the output of an additive scoring analysis. Factors and
// Warnings keep the order the rules were applied in; Metrics values are
// nil when the underlying data was insufficient.
type ScoreCard struct {
	Score    int
	Verdict  Tristate
	Factors  []string
	Warnings []string
	Metrics  map[string]*float64
}

// Metric returns the named sub-metric, or nil when unknown.
func (c *ScoreCard) Metric(name string) *float64 {
	if c.Metrics == nil {
		return nil
	}
	return c.Metrics[name]
}
