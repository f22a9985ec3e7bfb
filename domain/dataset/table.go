package dataset

import (
	"fmt"
	"math"

	"godrsa/domain/core"
)

// InformationTable is the canonical input to all dominance and approximation
// computations: a rectangular block of evaluations with attribute metadata.
// The table is immutable after construction.
type InformationTable struct {
	id   core.TableID
	name string

	attributes []Attribute
	rows       [][]Evaluation

	activeDecisionIndices []int
	conditionCriteria     []int

	// One decision per object, built at construction when the table has
	// active decision attributes
	decisions []Decision

	fingerprint core.Hash
}

// NewInformationTable validates the raw data and builds an immutable table.
// Evaluations are re-scaled onto their attribute's preference so readers do
// not need to thread preference types through cell construction.
func NewInformationTable(name string, attributes []Attribute, rows [][]Evaluation) (*InformationTable, error) {
	if len(attributes) == 0 {
		return nil, core.NewInvalidValueError("attributes", "table requires at least one attribute")
	}

	t := &InformationTable{
		id:         core.TableID(core.NewID()),
		name:       name,
		attributes: make([]Attribute, len(attributes)),
		rows:       make([][]Evaluation, len(rows)),
	}
	copy(t.attributes, attributes)

	numeric := make([][]float64, len(rows))
	for i, row := range rows {
		if len(row) != len(attributes) {
			return nil, core.NewInvalidValueError("rows",
				fmt.Sprintf("row %d has %d cells, expected %d", i, len(row), len(attributes)))
		}
		t.rows[i] = make([]Evaluation, len(row))
		numeric[i] = make([]float64, len(row))
		for j, eval := range row {
			eval.Pref = attributes[j].Pref
			t.rows[i][j] = eval
			if eval.Missing {
				numeric[i][j] = math.NaN()
			} else {
				numeric[i][j] = eval.Value
			}
		}
	}
	t.fingerprint = core.TableFingerprint(numeric)

	for j, attr := range t.attributes {
		if attr.IsActiveDecision() {
			t.activeDecisionIndices = append(t.activeDecisionIndices, j)
		}
		if attr.IsActiveConditionCriterion() {
			t.conditionCriteria = append(t.conditionCriteria, j)
		}
	}

	if len(t.activeDecisionIndices) > 0 {
		t.decisions = make([]Decision, len(t.rows))
		for i := range t.rows {
			d, err := t.buildDecision(i)
			if err != nil {
				return nil, err
			}
			t.decisions[i] = d
		}
	}

	return t, nil
}

func (t *InformationTable) buildDecision(objectIndex int) (Decision, error) {
	if len(t.activeDecisionIndices) == 1 {
		idx := t.activeDecisionIndices[0]
		return NewSimpleDecision(t.rows[objectIndex][idx], idx)
	}
	evals := make([]Evaluation, len(t.activeDecisionIndices))
	for k, idx := range t.activeDecisionIndices {
		evals[k] = t.rows[objectIndex][idx]
	}
	return NewCompositeDecision(evals, t.activeDecisionIndices)
}

// ID returns the table identifier
func (t *InformationTable) ID() core.TableID {
	return t.id
}

// Name returns the table's display name
func (t *InformationTable) Name() string {
	return t.name
}

// Fingerprint returns the hash of the table's cell values
func (t *InformationTable) Fingerprint() core.Hash {
	return t.fingerprint
}

// NumberOfObjects returns the number of rows
func (t *InformationTable) NumberOfObjects() int {
	return len(t.rows)
}

// NumberOfAttributes returns the number of columns
func (t *InformationTable) NumberOfAttributes() int {
	return len(t.attributes)
}

// Attribute returns the attribute at the given column index
func (t *InformationTable) Attribute(index int) (Attribute, error) {
	if index < 0 || index >= len(t.attributes) {
		return Attribute{}, core.NewInvalidValueError("index",
			fmt.Sprintf("attribute index %d out of range [0,%d)", index, len(t.attributes)))
	}
	return t.attributes[index], nil
}

// Attributes returns a copy of all attribute metadata
func (t *InformationTable) Attributes() []Attribute {
	out := make([]Attribute, len(t.attributes))
	copy(out, t.attributes)
	return out
}

// Evaluation returns one cell of the table
func (t *InformationTable) Evaluation(objectIndex, attributeIndex int) Evaluation {
	return t.rows[objectIndex][attributeIndex]
}

// ConditionCriteria returns the indices of active ordinal condition attributes
func (t *InformationTable) ConditionCriteria() []int {
	out := make([]int, len(t.conditionCriteria))
	copy(out, t.conditionCriteria)
	return out
}

// ActiveDecisionAttributes returns the indices of active decision attributes
func (t *InformationTable) ActiveDecisionAttributes() []int {
	out := make([]int, len(t.activeDecisionIndices))
	copy(out, t.activeDecisionIndices)
	return out
}

// AllObjects returns the index set {0, ..., NumberOfObjects-1}
func (t *InformationTable) AllObjects() core.IndexSet {
	return core.FullIndexSet(len(t.rows))
}

// Decision returns the decision of one object
func (t *InformationTable) Decision(objectIndex int) (Decision, error) {
	if t.decisions == nil {
		return Decision{}, core.NewInvalidValueError("table", "no active decision attributes")
	}
	if objectIndex < 0 || objectIndex >= len(t.decisions) {
		return Decision{}, core.NewInvalidValueError("objectIndex",
			fmt.Sprintf("object index %d out of range [0,%d)", objectIndex, len(t.decisions)))
	}
	return t.decisions[objectIndex], nil
}

// Decisions returns one decision per object
func (t *InformationTable) Decisions() ([]Decision, error) {
	if t.decisions == nil {
		return nil, core.NewInvalidValueError("table", "no active decision attributes")
	}
	out := make([]Decision, len(t.decisions))
	copy(out, t.decisions)
	return out, nil
}

// AllDecisionsFullyDetermined reports whether every object's decision has no
// missing evaluations
func (t *InformationTable) AllDecisionsFullyDetermined() bool {
	for _, d := range t.decisions {
		if !d.IsFullyDetermined() {
			return false
		}
	}
	return true
}

// OrderedUniqueFullyDeterminedDecisions returns the distinct fully
// determined decisions ordered worst to best under the dominance relation.
// Incomparable decisions keep an arbitrary relative order.
func (t *InformationTable) OrderedUniqueFullyDeterminedDecisions() ([]Decision, error) {
	decisions, err := t.Decisions()
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	unique := make([]Decision, 0)
	for _, d := range decisions {
		if !d.IsFullyDetermined() {
			continue
		}
		key := d.Key()
		if !seen[key] {
			seen[key] = true
			unique = append(unique, d)
		}
	}

	return orderWorstToBest(unique), nil
}

// DecisionDistribution enumerates all distinct decisions in the table
// (including not-fully-determined ones) with their object counts.
type DecisionDistribution struct {
	decisions []Decision
	counts    map[string]int
}

// Decisions returns the distinct decisions in first-seen order
func (dd *DecisionDistribution) Decisions() []Decision {
	out := make([]Decision, len(dd.decisions))
	copy(out, dd.decisions)
	return out
}

// Count returns the number of objects carrying the given decision
func (dd *DecisionDistribution) Count(d Decision) int {
	return dd.counts[d.Key()]
}

// NumberOfDecisions returns the number of distinct decisions
func (dd *DecisionDistribution) NumberOfDecisions() int {
	return len(dd.decisions)
}

// DecisionDistribution computes the distribution of decisions over objects
func (t *InformationTable) DecisionDistribution() (*DecisionDistribution, error) {
	decisions, err := t.Decisions()
	if err != nil {
		return nil, err
	}
	dd := &DecisionDistribution{counts: make(map[string]int)}
	for _, d := range decisions {
		key := d.Key()
		if dd.counts[key] == 0 {
			dd.decisions = append(dd.decisions, d)
		}
		dd.counts[key]++
	}
	return dd, nil
}

// orderWorstToBest sorts decisions by repeatedly extracting a minimal
// element of the dominance partial order. A partial order always has a
// minimal element, so the loop terminates.
func orderWorstToBest(decisions []Decision) []Decision {
	remaining := make([]Decision, len(decisions))
	copy(remaining, decisions)

	out := make([]Decision, 0, len(remaining))
	for len(remaining) > 0 {
		minIdx := 0
		for i, d := range remaining {
			minimal := true
			for j, e := range remaining {
				if j != i && strictlyWorse(e, d) {
					minimal = false
					break
				}
			}
			if minimal {
				minIdx = i
				break
			}
		}
		out = append(out, remaining[minIdx])
		remaining = append(remaining[:minIdx], remaining[minIdx+1:]...)
	}
	return out
}

// strictlyWorse reports a < b in the dominance order
func strictlyWorse(a, b Decision) bool {
	return a.IsAtMostAsGoodAs(b).IsTrue() && !a.IsAtLeastAsGoodAs(b).IsTrue()
}
