package dataset

import (
	"fmt"
	"sort"
	"strings"

	"godrsa/domain/core"
)

// Decision is one object's joint evaluation on the active decision
// attributes of an information table. A decision built from one attribute is
// a simple decision; two or more make a composite decision. Decisions are
// immutable once constructed.
type Decision struct {
	attributeIndices []int
	evaluations      []Evaluation
}

// NewSimpleDecision creates a decision contributed by a single attribute
func NewSimpleDecision(eval Evaluation, attributeIndex int) (Decision, error) {
	if attributeIndex < 0 {
		return Decision{}, core.NewInvalidValueError("attributeIndex", "must not be negative")
	}
	return Decision{
		attributeIndices: []int{attributeIndex},
		evaluations:      []Evaluation{eval},
	}, nil
}

// NewCompositeDecision creates a decision contributed by two or more
// attributes. Evaluations and attribute indices are paired positionally.
func NewCompositeDecision(evals []Evaluation, attributeIndices []int) (Decision, error) {
	if evals == nil || attributeIndices == nil {
		return Decision{}, core.NewNilArgumentError("evaluations/attributeIndices")
	}
	if len(evals) != len(attributeIndices) {
		return Decision{}, core.NewInvalidValueError("evaluations",
			fmt.Sprintf("count %d does not match attribute index count %d", len(evals), len(attributeIndices)))
	}
	if len(evals) < 2 {
		return Decision{}, core.NewInvalidValueError("evaluations", "composite decision requires at least 2 evaluations")
	}

	d := Decision{
		attributeIndices: make([]int, len(attributeIndices)),
		evaluations:      make([]Evaluation, len(evals)),
	}
	copy(d.attributeIndices, attributeIndices)
	copy(d.evaluations, evals)

	// Canonical order: pairs sorted by attribute index
	sort.Sort(byAttributeIndex{d.attributeIndices, d.evaluations})

	for i, idx := range d.attributeIndices {
		if idx < 0 {
			return Decision{}, core.NewInvalidValueError("attributeIndices", "must not be negative")
		}
		if i > 0 && idx == d.attributeIndices[i-1] {
			return Decision{}, core.NewInvalidValueError("attributeIndices",
				fmt.Sprintf("duplicate attribute index %d", idx))
		}
	}
	return d, nil
}

type byAttributeIndex struct {
	indices []int
	evals   []Evaluation
}

func (s byAttributeIndex) Len() int           { return len(s.indices) }
func (s byAttributeIndex) Less(i, j int) bool { return s.indices[i] < s.indices[j] }
func (s byAttributeIndex) Swap(i, j int) {
	s.indices[i], s.indices[j] = s.indices[j], s.indices[i]
	s.evals[i], s.evals[j] = s.evals[j], s.evals[i]
}

// Size returns the number of contributing attributes
func (d Decision) Size() int {
	return len(d.attributeIndices)
}

// IsSimple returns true for single-attribute decisions
func (d Decision) IsSimple() bool {
	return len(d.attributeIndices) == 1
}

// IsZero reports whether the decision was never constructed
func (d Decision) IsZero() bool {
	return len(d.attributeIndices) == 0
}

// AttributeIndices returns a copy of the contributing attribute indices
func (d Decision) AttributeIndices() []int {
	out := make([]int, len(d.attributeIndices))
	copy(out, d.attributeIndices)
	return out
}

// EvaluationFor looks up the evaluation contributed by an attribute index
func (d Decision) EvaluationFor(attributeIndex int) (Evaluation, bool) {
	i := sort.SearchInts(d.attributeIndices, attributeIndex)
	if i < len(d.attributeIndices) && d.attributeIndices[i] == attributeIndex {
		return d.evaluations[i], true
	}
	return Evaluation{}, false
}

// IsFullyDetermined returns true when no contributing evaluation is missing
func (d Decision) IsFullyDetermined() bool {
	for _, e := range d.evaluations {
		if e.Missing {
			return false
		}
	}
	return true
}

// IsAtLeastAsGoodAs compares d against other under the dominance order.
// Decisions over different attribute sets are incomparable, never an error.
func (d Decision) IsAtLeastAsGoodAs(other Decision) Ternary {
	return d.compare(other, Evaluation.AtLeastAsGoodAs)
}

// IsAtMostAsGoodAs is the mirror of IsAtLeastAsGoodAs
func (d Decision) IsAtMostAsGoodAs(other Decision) Ternary {
	return d.compare(other, Evaluation.AtMostAsGoodAs)
}

// IsEqualTo compares evaluation values pairwise
func (d Decision) IsEqualTo(other Decision) Ternary {
	return d.compare(other, Evaluation.EqualTo)
}

// compare applies rel to every paired evaluation; the relation holds only if
// it holds for all pairs (conjunction, no partial credit). A missing
// evaluation on either side makes the decisions incomparable: an unknown
// class assignment supports neither direction of the dominance order.
func (d Decision) compare(other Decision, rel func(Evaluation, Evaluation) bool) Ternary {
	if len(d.attributeIndices) != len(other.attributeIndices) {
		return TernaryIncomparable
	}
	result := TernaryTrue
	for i, idx := range d.attributeIndices {
		otherEval, ok := other.EvaluationFor(idx)
		if !ok {
			return TernaryIncomparable
		}
		if d.evaluations[i].Missing || otherEval.Missing {
			return TernaryIncomparable
		}
		if !rel(d.evaluations[i], otherEval) {
			result = TernaryFalse
		}
	}
	return result
}

// Equal reports structural equality: same attribute indices and identical
// evaluations, with missing distinguished from known values
func (d Decision) Equal(other Decision) bool {
	if len(d.attributeIndices) != len(other.attributeIndices) {
		return false
	}
	for i, idx := range d.attributeIndices {
		if idx != other.attributeIndices[i] {
			return false
		}
		if !d.evaluations[i].Identical(other.evaluations[i]) {
			return false
		}
	}
	return true
}

// Key returns a canonical string form usable as a map key
func (d Decision) Key() string {
	parts := make([]string, len(d.attributeIndices))
	for i, idx := range d.attributeIndices {
		parts[i] = fmt.Sprintf("%d=%s", idx, d.evaluations[i])
	}
	return strings.Join(parts, "|")
}

// String renders the decision for diagnostics
func (d Decision) String() string {
	return "{" + d.Key() + "}"
}
