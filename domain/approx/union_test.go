package approx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"godrsa/domain/core"
	"godrsa/domain/dataset"
	"godrsa/domain/dominance"
)

// simpleTable builds a table with one gain condition criterion and one gain
// decision attribute (attribute index 1)
func simpleTable(t *testing.T, cond, class []float64) (*dataset.InformationTable, *dominance.ConeCalculator) {
	t.Helper()
	require.Equal(t, len(cond), len(class))

	attrs := []dataset.Attribute{
		{Name: "q", Kind: dataset.KindCondition, Pref: dataset.PreferenceGain, Active: true},
		{Name: "class", Kind: dataset.KindDecision, Pref: dataset.PreferenceGain, Active: true},
	}
	rows := make([][]dataset.Evaluation, len(cond))
	for i := range cond {
		rows[i] = []dataset.Evaluation{
			dataset.NewEvaluation(cond[i], dataset.PreferenceGain),
			dataset.NewEvaluation(class[i], dataset.PreferenceGain),
		}
	}
	table, err := dataset.NewInformationTable("test", attrs, rows)
	require.NoError(t, err)
	cones, err := dominance.NewConeCalculator(table)
	require.NoError(t, err)
	return table, cones
}

// classDecision builds a simple decision on the class attribute (index 1)
func classDecision(t *testing.T, value float64) dataset.Decision {
	t.Helper()
	d, err := dataset.NewSimpleDecision(dataset.NewEvaluation(value, dataset.PreferenceGain), 1)
	require.NoError(t, err)
	return d
}

// inconsistentTable has one dominance violation: objects 1 and 2 share the
// same condition evaluation but carry different decisions.
//
//	obj  q  class
//	 0   1    1
//	 1   2    2
//	 2   2    1
//	 3   3    2
func inconsistentTable(t *testing.T) (*dataset.InformationTable, *dominance.ConeCalculator) {
	t.Helper()
	return simpleTable(t, []float64{1, 2, 2, 3}, []float64{1, 2, 1, 2})
}

func TestNewUnionValidation(t *testing.T) {
	table, cones := simpleTable(t, []float64{1, 2}, []float64{1, 2})
	calc := NewClassicalCalculator()
	limiting := classDecision(t, 2)

	_, err := NewUnion(AtLeast, limiting, nil, cones, calc)
	require.Error(t, err)
	_, err = NewUnion(AtLeast, limiting, table, nil, calc)
	require.Error(t, err)
	_, err = NewUnion(AtLeast, dataset.Decision{}, table, cones, calc)
	require.Error(t, err)

	// Limiting decision on a condition attribute is rejected
	bad, err := dataset.NewSimpleDecision(dataset.NewEvaluation(1, dataset.PreferenceGain), 0)
	require.NoError(t, err)
	_, err = NewUnion(AtLeast, bad, table, cones, calc)
	require.Error(t, err)
	assert.True(t, core.IsInvalidValueError(err))
}

func TestUnionMembershipPartition(t *testing.T) {
	table, cones := inconsistentTable(t)
	calc := NewClassicalCalculator()

	u, err := NewUnion(AtLeast, classDecision(t, 2), table, cones, calc)
	require.NoError(t, err)

	assert.Equal(t, core.IndexSet{1, 3}, u.Members())
	assert.True(t, u.Neutral().IsEmpty())
	assert.Equal(t, core.IndexSet{0, 2}, u.NegativeObjects())

	// members, neutral and negative partition all objects with no overlap
	all := u.Members().Union(u.Neutral()).Union(u.NegativeObjects())
	assert.Equal(t, table.AllObjects(), all)
	assert.False(t, u.Members().Intersects(u.Neutral()))
	assert.False(t, u.Members().Intersects(u.NegativeObjects()))
	assert.False(t, u.Neutral().Intersects(u.NegativeObjects()))
}

func TestStrictUnionExcludesEqualDecisions(t *testing.T) {
	table, cones := inconsistentTable(t)
	calc := NewClassicalCalculator()
	limiting := classDecision(t, 2)

	strict, err := NewStrictUnion(AtMost, limiting, table, cones, calc)
	require.NoError(t, err)

	// Objects with class 2 are excluded from membership and are negative,
	// not neutral
	assert.Equal(t, core.IndexSet{0, 2}, strict.Members())
	assert.True(t, strict.Neutral().IsEmpty())
	assert.Equal(t, core.IndexSet{1, 3}, strict.NegativeObjects())
}

func TestNeutralObjectsWithCompositeDecisions(t *testing.T) {
	attrs := []dataset.Attribute{
		{Name: "q", Kind: dataset.KindCondition, Pref: dataset.PreferenceGain, Active: true},
		{Name: "risk", Kind: dataset.KindDecision, Pref: dataset.PreferenceCost, Active: true},
		{Name: "grade", Kind: dataset.KindDecision, Pref: dataset.PreferenceGain, Active: true},
	}
	g := func(v float64) dataset.Evaluation { return dataset.NewEvaluation(v, dataset.PreferenceGain) }
	c := func(v float64) dataset.Evaluation { return dataset.NewEvaluation(v, dataset.PreferenceCost) }
	rows := [][]dataset.Evaluation{
		{g(1), dataset.MissingEvaluation(dataset.PreferenceCost), g(2)}, // unknown risk: incomparable with any cut
		{g(2), c(1), g(1)}, // equal to the cut
		{g(3), c(1), g(3)}, // better on both axes
		{g(1), c(2), g(2)}, // better grade, worse risk: fails the conjunction
	}
	table, err := dataset.NewInformationTable("composite", attrs, rows)
	require.NoError(t, err)
	cones, err := dominance.NewConeCalculator(table)
	require.NoError(t, err)

	limiting, err := dataset.NewCompositeDecision([]dataset.Evaluation{c(1), g(1)}, []int{1, 2})
	require.NoError(t, err)

	u, err := NewUnion(AtLeast, limiting, table, cones, NewClassicalCalculator())
	require.NoError(t, err)

	assert.Equal(t, core.IndexSet{1, 2}, u.Members())
	assert.Equal(t, core.IndexSet{0}, u.Neutral())
	assert.Equal(t, core.IndexSet{3}, u.NegativeObjects())
}

func TestSetComplementOnce(t *testing.T) {
	table, cones := inconsistentTable(t)
	calc := NewClassicalCalculator()

	u, err := NewUnion(AtLeast, classDecision(t, 2), table, cones, calc)
	require.NoError(t, err)
	complement, err := u.BuildComplement()
	require.NoError(t, err)

	_, ok := u.Complement()
	assert.False(t, ok)
	assert.False(t, u.SetComplement(nil))
	assert.True(t, u.SetComplement(complement))
	assert.False(t, u.SetComplement(complement), "second registration is rejected")

	registered, ok := u.Complement()
	require.True(t, ok)
	assert.Same(t, complement, registered)
}

func TestComplementRoundTrip(t *testing.T) {
	table, cones := inconsistentTable(t)
	calc := NewClassicalCalculator()
	limiting := classDecision(t, 2)

	u, err := NewUnion(AtLeast, limiting, table, cones, calc)
	require.NoError(t, err)

	complement, err := u.BuildComplement()
	require.NoError(t, err)
	assert.Equal(t, AtMost, complement.Type())
	assert.True(t, complement.IsStrict())

	// The complement of the complement is the strict variant of u: the same
	// members minus the objects equal to the limiting decision
	roundTrip, err := complement.BuildComplement()
	require.NoError(t, err)
	assert.Equal(t, AtLeast, roundTrip.Type())

	strictU, err := NewStrictUnion(AtLeast, limiting, table, cones, calc)
	require.NoError(t, err)
	assert.Equal(t, strictU.Members(), roundTrip.Members())

	// No object in this table is strictly better than class 2
	assert.True(t, roundTrip.Members().IsEmpty())
	assert.Equal(t, u.Members().Diff(core.IndexSet{1, 3}), roundTrip.Members())
}

func TestBoundaryAndApproximationChain(t *testing.T) {
	table, cones := inconsistentTable(t)
	u, err := NewUnion(AtLeast, classDecision(t, 2), table, cones, NewClassicalCalculator())
	require.NoError(t, err)

	lower, err := u.LowerApproximation()
	require.NoError(t, err)
	upper, err := u.UpperApproximation()
	require.NoError(t, err)
	boundary, err := u.Boundary()
	require.NoError(t, err)

	assert.True(t, lower.IsSubsetOf(u.Members()))
	assert.True(t, u.Members().IsSubsetOf(upper))
	assert.Equal(t, upper.Diff(lower), boundary)
}

func TestRegionsPartitionAllObjects(t *testing.T) {
	table, cones := inconsistentTable(t)
	calc := NewClassicalCalculator()

	u, err := NewUnion(AtLeast, classDecision(t, 2), table, cones, calc)
	require.NoError(t, err)
	complement, err := u.BuildComplement()
	require.NoError(t, err)
	require.True(t, u.SetComplement(complement))

	positive, err := u.PositiveRegion()
	require.NoError(t, err)
	negative, err := u.NegativeRegion()
	require.NoError(t, err)
	boundary, err := u.BoundaryRegion()
	require.NoError(t, err)

	// Every object lands in exactly one region
	assert.Equal(t, table.AllObjects(), positive.Union(negative).Union(boundary))
	assert.False(t, positive.Intersects(negative))
	assert.False(t, positive.Intersects(boundary))
	assert.False(t, negative.Intersects(boundary))
}

func TestNegativeRegionRequiresComplement(t *testing.T) {
	table, cones := inconsistentTable(t)
	u, err := NewUnion(AtLeast, classDecision(t, 2), table, cones, NewClassicalCalculator())
	require.NoError(t, err)

	_, err = u.NegativeRegion()
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrComplementMissing)
}

func TestAccuracyAndQuality(t *testing.T) {
	table, cones := inconsistentTable(t)
	u, err := NewUnion(AtLeast, classDecision(t, 2), table, cones, NewClassicalCalculator())
	require.NoError(t, err)

	accuracy, err := u.Accuracy()
	require.NoError(t, err)
	assert.InDelta(t, 1.0/3.0, accuracy, 1e-12)

	quality, err := u.Quality()
	require.NoError(t, err)
	assert.InDelta(t, 0.5, quality, 1e-12)
}

func TestComputeAllPopulatesDerivedSets(t *testing.T) {
	table, cones := inconsistentTable(t)
	u, err := NewUnion(AtLeast, classDecision(t, 2), table, cones, NewClassicalCalculator())
	require.NoError(t, err)
	complement, err := u.BuildComplement()
	require.NoError(t, err)
	u.SetComplement(complement)

	require.NoError(t, u.ComputeAll())

	// Memoized values are stable across repeated reads
	first, err := u.LowerApproximation()
	require.NoError(t, err)
	second, err := u.LowerApproximation()
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
