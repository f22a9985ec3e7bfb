package approx

import (
	"fmt"

	"godrsa/domain/core"
	"godrsa/domain/dataset"
)

// UnionType distinguishes upward ("at least as good as the cut") from
// downward ("at most as good as the cut") unions
type UnionType string

const (
	AtLeast UnionType = "at_least"
	AtMost  UnionType = "at_most"
)

// Opposite returns the mirror union type
func (ut UnionType) Opposite() UnionType {
	if ut == AtLeast {
		return AtMost
	}
	return AtLeast
}

// Union is one approximated set: the objects whose decision is concordant
// with a limiting decision under the union's type. Membership is computed in
// a single pass at construction; approximations and regions are computed on
// first access and memoized (computed once, read-only afterwards). A Union
// is not safe for concurrent first access; populate it eagerly via
// ComputeAll before sharing.
type Union struct {
	unionType UnionType
	limiting  dataset.Decision
	table     *dataset.InformationTable
	cones     ConeProvider
	calc      Calculator

	// strict unions exclude objects whose decision equals the limiting
	// decision; used when deriving complements
	strict bool

	members core.IndexSet
	neutral core.IndexSet

	complement *Union

	lower, upper, boundary                         core.IndexSet
	lowerDone, upperDone, boundaryDone             bool
	positiveRegion, negativeRegion, boundaryRegion core.IndexSet
	positiveDone, negativeDone, boundaryRegionDone bool
}

// NewUnion builds a union over the table's objects and scans membership
func NewUnion(unionType UnionType, limiting dataset.Decision, table *dataset.InformationTable, cones ConeProvider, calc Calculator) (*Union, error) {
	return newUnion(unionType, limiting, table, cones, calc, false)
}

// NewStrictUnion builds the strict variant, which treats objects equal to
// the limiting decision as negative rather than members
func NewStrictUnion(unionType UnionType, limiting dataset.Decision, table *dataset.InformationTable, cones ConeProvider, calc Calculator) (*Union, error) {
	return newUnion(unionType, limiting, table, cones, calc, true)
}

func newUnion(unionType UnionType, limiting dataset.Decision, table *dataset.InformationTable, cones ConeProvider, calc Calculator, strict bool) (*Union, error) {
	if table == nil {
		return nil, core.NewNilArgumentError("table")
	}
	if cones == nil {
		return nil, core.NewNilArgumentError("cones")
	}
	if limiting.IsZero() {
		return nil, core.NewNilArgumentError("limiting decision")
	}
	if err := validateLimitingDecision(limiting, table); err != nil {
		return nil, err
	}

	u := &Union{
		unionType: unionType,
		limiting:  limiting,
		table:     table,
		cones:     cones,
		calc:      calc,
		strict:    strict,
	}
	if err := u.scanMembership(); err != nil {
		return nil, err
	}
	return u, nil
}

// validateLimitingDecision checks that every contributing attribute is an
// active decision attribute and that at least one is ordinal
func validateLimitingDecision(limiting dataset.Decision, table *dataset.InformationTable) error {
	ordinal := false
	for _, idx := range limiting.AttributeIndices() {
		attr, err := table.Attribute(idx)
		if err != nil {
			return err
		}
		if !attr.IsActiveDecision() {
			return fmt.Errorf("%w: attribute %q is not an active decision attribute", core.ErrAttributeMismatch, attr.Name)
		}
		if attr.Pref.IsOrdinal() {
			ordinal = true
		}
	}
	if !ordinal {
		return fmt.Errorf("%w: limiting decision has no ordinal attribute", core.ErrAttributeMismatch)
	}
	return nil
}

// scanMembership partitions all objects into members, neutral and negative
// in one pass over the table
func (u *Union) scanMembership() error {
	members := make(core.IndexSet, 0)
	neutral := make(core.IndexSet, 0)

	for obj := 0; obj < u.table.NumberOfObjects(); obj++ {
		d, err := u.table.Decision(obj)
		if err != nil {
			return err
		}
		switch u.concordance(d) {
		case dataset.TernaryTrue:
			if u.strict && u.limiting.IsEqualTo(d).IsTrue() {
				continue // equal to the cut: negative, not neutral
			}
			members = append(members, obj)
		case dataset.TernaryIncomparable:
			neutral = append(neutral, obj)
		}
	}

	u.members = members
	u.neutral = neutral
	return nil
}

// concordance tests an object decision against the limiting decision: an
// AT_LEAST union holds objects whose decision is at least as good as the
// cut, so the cut must be at most as good as the object decision
func (u *Union) concordance(d dataset.Decision) dataset.Ternary {
	if u.unionType == AtLeast {
		return u.limiting.IsAtMostAsGoodAs(d)
	}
	return u.limiting.IsAtLeastAsGoodAs(d)
}

// properCone returns the dominance cone whose containment in the member set
// certifies membership: the dominating objects for AT_LEAST, the dominated
// objects for AT_MOST
func (u *Union) properCone(objectIndex int) core.IndexSet {
	if u.unionType == AtLeast {
		return u.cones.PositiveInvDominanceCone(objectIndex)
	}
	return u.cones.NegativeDominanceCone(objectIndex)
}

// oppositeCone returns the mirror cone, used by the classical upper
// approximation
func (u *Union) oppositeCone(objectIndex int) core.IndexSet {
	if u.unionType == AtLeast {
		return u.cones.NegativeDominanceCone(objectIndex)
	}
	return u.cones.PositiveInvDominanceCone(objectIndex)
}

// Type returns the union's type
func (u *Union) Type() UnionType {
	return u.unionType
}

// LimitingDecision returns the decision defining the union's cut point
func (u *Union) LimitingDecision() dataset.Decision {
	return u.limiting
}

// IsStrict reports whether equal-decision objects are excluded
func (u *Union) IsStrict() bool {
	return u.strict
}

// Members returns the objects concordant with the limiting decision
func (u *Union) Members() core.IndexSet {
	return u.members
}

// Neutral returns the objects incomparable with the limiting decision
func (u *Union) Neutral() core.IndexSet {
	return u.neutral
}

// NegativeObjects returns the objects neither member nor neutral
func (u *Union) NegativeObjects() core.IndexSet {
	return u.table.AllObjects().Diff(u.members).Diff(u.neutral)
}

// SetComplement registers the complementary union (same limiting decision,
// opposite type, strict). It can be set at most once; the return value
// reports whether registration took effect.
func (u *Union) SetComplement(complement *Union) bool {
	if u.complement != nil || complement == nil {
		return false
	}
	u.complement = complement
	return true
}

// Complement returns the registered complementary union, if any
func (u *Union) Complement() (*Union, bool) {
	return u.complement, u.complement != nil
}

// BuildComplement constructs the complementary union: opposite type, same
// limiting decision, strict (the cut itself belongs to only one side)
func (u *Union) BuildComplement() (*Union, error) {
	return NewStrictUnion(u.unionType.Opposite(), u.limiting, u.table, u.cones, u.calc)
}

// LowerApproximation returns the objects certainly belonging to the union
func (u *Union) LowerApproximation() (core.IndexSet, error) {
	if !u.lowerDone {
		lower, err := u.calc.LowerApproximation(u)
		if err != nil {
			return nil, err
		}
		u.lower = lower
		u.lowerDone = true
	}
	return u.lower, nil
}

// UpperApproximation returns the objects possibly belonging to the union.
// Under variable consistency this requires the complement to be registered
// and a single-criterion limiting decision.
func (u *Union) UpperApproximation() (core.IndexSet, error) {
	if !u.upperDone {
		upper, err := u.calc.UpperApproximation(u)
		if err != nil {
			return nil, err
		}
		u.upper = upper
		u.upperDone = true
	}
	return u.upper, nil
}

// Boundary returns upper minus lower
func (u *Union) Boundary() (core.IndexSet, error) {
	if !u.boundaryDone {
		lower, err := u.LowerApproximation()
		if err != nil {
			return nil, err
		}
		upper, err := u.UpperApproximation()
		if err != nil {
			return nil, err
		}
		u.boundary = upper.Diff(lower)
		u.boundaryDone = true
	}
	return u.boundary, nil
}

// PositiveRegion returns the lower approximation extended by the objects
// falling in a proper-type dominance cone of some lower approximation
// object. Those extra objects are the ones inconsistent with the lower
// approximation: they sit above (below, for AT_MOST) a certainly-classified
// object without being certain themselves.
func (u *Union) PositiveRegion() (core.IndexSet, error) {
	if !u.positiveDone {
		lower, err := u.LowerApproximation()
		if err != nil {
			return nil, err
		}
		region := lower
		for _, obj := range lower {
			region = region.Union(u.properCone(obj))
		}
		u.positiveRegion = region
		u.positiveDone = true
	}
	return u.positiveRegion, nil
}

// NegativeRegion returns the objects positively classified to the
// complementary union and not simultaneously positive here. Fails when no
// complement is registered.
func (u *Union) NegativeRegion() (core.IndexSet, error) {
	if !u.negativeDone {
		complement, ok := u.Complement()
		if !ok {
			return nil, fmt.Errorf("%w: required by negative region", core.ErrComplementMissing)
		}
		complementPositive, err := complement.PositiveRegion()
		if err != nil {
			return nil, err
		}
		positive, err := u.PositiveRegion()
		if err != nil {
			return nil, err
		}
		u.negativeRegion = complementPositive.Diff(positive)
		u.negativeDone = true
	}
	return u.negativeRegion, nil
}

// BoundaryRegion returns the objects in neither the positive nor the
// negative region. It is computed by a full scan rather than algebraically
// so the three regions can be verified independently.
func (u *Union) BoundaryRegion() (core.IndexSet, error) {
	if !u.boundaryRegionDone {
		positive, err := u.PositiveRegion()
		if err != nil {
			return nil, err
		}
		negative, err := u.NegativeRegion()
		if err != nil {
			return nil, err
		}
		region := make(core.IndexSet, 0)
		for obj := 0; obj < u.table.NumberOfObjects(); obj++ {
			if !positive.Contains(obj) && !negative.Contains(obj) {
				region = append(region, obj)
			}
		}
		u.boundaryRegion = region
		u.boundaryRegionDone = true
	}
	return u.boundaryRegion, nil
}

// Accuracy returns |lower| / |upper|; undefined when upper is empty
func (u *Union) Accuracy() (float64, error) {
	lower, err := u.LowerApproximation()
	if err != nil {
		return 0, err
	}
	upper, err := u.UpperApproximation()
	if err != nil {
		return 0, err
	}
	if upper.IsEmpty() {
		return 0, fmt.Errorf("%w: accuracy of approximation is undefined", core.ErrEmptyUpperApprox)
	}
	return float64(lower.Len()) / float64(upper.Len()), nil
}

// Quality returns |lower| / |members|; zero for an empty union
func (u *Union) Quality() (float64, error) {
	lower, err := u.LowerApproximation()
	if err != nil {
		return 0, err
	}
	if u.members.IsEmpty() {
		return 0, nil
	}
	return float64(lower.Len()) / float64(u.members.Len()), nil
}

// ComputeAll populates every derived field eagerly. Regions depending on
// the complement are computed only when a complement is registered.
func (u *Union) ComputeAll() error {
	if _, err := u.Boundary(); err != nil {
		return err
	}
	if _, err := u.PositiveRegion(); err != nil {
		return err
	}
	if _, ok := u.Complement(); ok {
		if _, err := u.BoundaryRegion(); err != nil {
			return err
		}
	}
	return nil
}

// String renders the union identity for diagnostics
func (u *Union) String() string {
	symbol := ">="
	if u.unionType == AtMost {
		symbol = "<="
	}
	if u.strict {
		symbol += " strict"
	}
	return fmt.Sprintf("union(%s %s)", symbol, u.limiting)
}
