package app

import (
	"godrsa/domain/approx"
	"godrsa/domain/core"
)

// NewCalculatorFromSettings builds a calculator from its string
// configuration, as supplied by flags, environment or API requests
func NewCalculatorFromSettings(kind, measure string, threshold float64) (approx.Calculator, error) {
	switch approx.CalculatorKind(kind) {
	case approx.Classical:
		return approx.NewClassicalCalculator(), nil
	case approx.VariableConsistency:
		m, err := parseMeasure(measure)
		if err != nil {
			return approx.Calculator{}, err
		}
		return approx.NewVCCalculator(m, threshold)
	}
	return approx.Calculator{}, core.NewInvalidValueError("calculator", "must be classical or variable_consistency")
}

func parseMeasure(name string) (approx.ConsistencyMeasure, error) {
	switch name {
	case "rough_membership":
		return approx.RoughMembership{}, nil
	case "epsilon_consistency":
		return approx.EpsilonConsistency{}, nil
	}
	return nil, core.NewInvalidValueError("measure", "must be rough_membership or epsilon_consistency")
}
