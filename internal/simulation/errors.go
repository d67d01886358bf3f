package simulation

import "fmt"

// InvalidParameterError indicates that a scenario parameter failed boundary
// validation before the simulation started.
type InvalidParameterError struct {
	Field  string
	Reason string
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("invalid parameter %s: %s", e.Field, e.Reason)
}

// DivergentScenarioError indicates that the hard simulation cutoff was hit
// while the principal was still materially above the payoff tolerance, i.e.
// the payment schedule never reaches payoff.
type DivergentScenarioError struct {
	PrincipalRemaining float64
	MonthsSimulated    int
}

func (e *DivergentScenarioError) Error() string {
	return fmt.Sprintf("scenario diverges: principal %.2f still outstanding after %d months",
		e.PrincipalRemaining, e.MonthsSimulated)
}
