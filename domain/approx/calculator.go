// Package approx implements dominance-based rough set approximations of
// ordered decision classes: upward/downward unions, their lower and upper
// approximations, and the positive/negative/boundary regions derived from
// them, under either the classical or the variable-consistency model.
package approx

import (
	"fmt"

	"godrsa/domain/core"
)

// ConeProvider supplies dominance cones keyed by object index. The concrete
// implementation lives in domain/dominance; the calculators only consume it.
type ConeProvider interface {
	// PositiveInvDominanceCone returns the objects dominating objectIndex
	PositiveInvDominanceCone(objectIndex int) core.IndexSet
	// NegativeDominanceCone returns the objects dominated by objectIndex
	NegativeDominanceCone(objectIndex int) core.IndexSet
}

// CalculatorKind selects the rough set model
type CalculatorKind string

const (
	Classical           CalculatorKind = "classical"
	VariableConsistency CalculatorKind = "variable_consistency"
)

// Calculator derives lower and upper approximations for a union. It is a
// small value dispatched by kind rather than a strategy hierarchy: classical
// carries no state, variable-consistency carries a measure and a threshold.
// One calculator is shared by all unions built from the same table.
type Calculator struct {
	kind      CalculatorKind
	measure   ConsistencyMeasure
	threshold float64
}

// NewClassicalCalculator creates the crisp dominance-based calculator
func NewClassicalCalculator() Calculator {
	return Calculator{kind: Classical}
}

// NewVCCalculator creates a variable-consistency calculator gated by the
// given object consistency measure and threshold
func NewVCCalculator(measure ConsistencyMeasure, threshold float64) (Calculator, error) {
	if measure == nil {
		return Calculator{}, core.NewNilArgumentError("measure")
	}
	return Calculator{
		kind:      VariableConsistency,
		measure:   measure,
		threshold: threshold,
	}, nil
}

// Kind returns the calculator's rough set model
func (c Calculator) Kind() CalculatorKind {
	return c.kind
}

// Threshold returns the consistency threshold (meaningful for VC only)
func (c Calculator) Threshold() float64 {
	return c.threshold
}

// String renders the configuration for fingerprints and reports
func (c Calculator) String() string {
	if c.kind == VariableConsistency {
		return fmt.Sprintf("%s(%s,%g)", c.kind, c.measure.Name(), c.threshold)
	}
	return string(c.kind)
}

// LowerApproximation computes the set of objects certainly belonging to the
// union under the calculator's model
func (c Calculator) LowerApproximation(u *Union) (core.IndexSet, error) {
	if u == nil {
		return nil, core.NewNilArgumentError("union")
	}
	switch c.kind {
	case Classical:
		return c.classicalLower(u), nil
	case VariableConsistency:
		return c.vcLower(u), nil
	}
	return nil, core.NewInvalidValueError("calculator", "unknown kind")
}

// UpperApproximation computes the set of objects possibly belonging to the
// union under the calculator's model
func (c Calculator) UpperApproximation(u *Union) (core.IndexSet, error) {
	if u == nil {
		return nil, core.NewNilArgumentError("union")
	}
	switch c.kind {
	case Classical:
		return c.classicalUpper(u), nil
	case VariableConsistency:
		return c.vcUpper(u)
	}
	return nil, core.NewInvalidValueError("calculator", "unknown kind")
}

// classicalLower keeps the members whose proper-type dominance cone is fully
// contained in the member set. Cones are reflexive, so only members can pass
// the subset test and it suffices to scan them.
func (c Calculator) classicalLower(u *Union) core.IndexSet {
	members := u.Members()
	lower := make(core.IndexSet, 0, members.Len())
	for _, obj := range members {
		if u.properCone(obj).IsSubsetOf(members) {
			lower = append(lower, obj)
		}
	}
	return lower
}

// classicalUpper keeps every object whose opposite-type dominance cone
// intersects the member set
func (c Calculator) classicalUpper(u *Union) core.IndexSet {
	members := u.Members()
	upper := make(core.IndexSet, 0, members.Len())
	for obj := 0; obj < u.table.NumberOfObjects(); obj++ {
		if u.oppositeCone(obj).Intersects(members) {
			upper = append(upper, obj)
		}
	}
	return upper
}

// vcLower relaxes the subset rule: a member enters the lower approximation
// when the consistency measure reaches the threshold for it. Non-members are
// never included.
func (c Calculator) vcLower(u *Union) core.IndexSet {
	members := u.Members()
	lower := make(core.IndexSet, 0, members.Len())
	for _, obj := range members {
		if c.measure.ThresholdReached(obj, u, c.threshold) {
			lower = append(lower, obj)
		}
	}
	return lower
}

// vcUpper recovers the upper approximation by complementation: an object
// possibly belongs to the union unless it certainly belongs to the
// complementary union. Defined only for single-criterion limiting decisions
// with a registered complement.
func (c Calculator) vcUpper(u *Union) (core.IndexSet, error) {
	if !u.LimitingDecision().IsSimple() {
		return nil, core.NewUnsupportedOperationError(
			"variable-consistency upper approximation requires a single-criterion limiting decision")
	}
	complement, ok := u.Complement()
	if !ok {
		return nil, fmt.Errorf("%w: required by variable-consistency upper approximation", core.ErrComplementMissing)
	}
	complementLower, err := complement.LowerApproximation()
	if err != nil {
		return nil, err
	}
	return u.table.AllObjects().Diff(complementLower), nil
}
