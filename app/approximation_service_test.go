package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"godrsa/domain/analysis"
	"godrsa/domain/approx"
	"godrsa/domain/core"
	"godrsa/domain/dataset"
)

type memoryAnalysisRepo struct {
	created []*analysis.Result
}

func (m *memoryAnalysisRepo) Create(_ context.Context, result *analysis.Result) error {
	m.created = append(m.created, result)
	return nil
}

func (m *memoryAnalysisRepo) GetByID(_ context.Context, id core.AnalysisID) (*analysis.Result, error) {
	for _, r := range m.created {
		if r.ID == id {
			return r, nil
		}
	}
	return nil, core.NewNotFoundError("analysis", string(id))
}

func (m *memoryAnalysisRepo) List(_ context.Context, limit, offset int) ([]*analysis.Result, error) {
	if offset >= len(m.created) {
		return nil, nil
	}
	end := offset + limit
	if end > len(m.created) {
		end = len(m.created)
	}
	return m.created[offset:end], nil
}

func (m *memoryAnalysisRepo) Delete(_ context.Context, id core.AnalysisID) error {
	for i, r := range m.created {
		if r.ID == id {
			m.created = append(m.created[:i], m.created[i+1:]...)
			return nil
		}
	}
	return core.NewNotFoundError("analysis", string(id))
}

func gradeTable(t *testing.T, quality, class []float64) *dataset.InformationTable {
	t.Helper()
	attrs := []dataset.Attribute{
		{Name: "quality", Kind: dataset.KindCondition, Pref: dataset.PreferenceGain, Active: true},
		{Name: "class", Kind: dataset.KindDecision, Pref: dataset.PreferenceGain, Active: true},
	}
	rows := make([][]dataset.Evaluation, len(quality))
	for i := range quality {
		rows[i] = []dataset.Evaluation{
			dataset.NewEvaluation(quality[i], dataset.PreferenceGain),
			dataset.NewEvaluation(class[i], dataset.PreferenceGain),
		}
	}
	table, err := dataset.NewInformationTable("grades", attrs, rows)
	require.NoError(t, err)
	return table
}

func TestAnalyzeTableValidation(t *testing.T) {
	svc := NewApproximationService(nil, nil, nil)
	_, err := svc.AnalyzeTable(context.Background(), nil, approx.NewClassicalCalculator())
	require.Error(t, err)
}

func TestAnalyzeTableConsistent(t *testing.T) {
	svc := NewApproximationService(nil, nil, nil)
	table := gradeTable(t, []float64{1, 2, 2, 3, 3}, []float64{1, 2, 2, 3, 3})

	result, err := svc.AnalyzeTable(context.Background(), table, approx.NewClassicalCalculator())
	require.NoError(t, err)

	assert.Equal(t, table.ID(), result.TableID)
	assert.Equal(t, "grades", result.TableName)
	assert.Equal(t, "classical", result.Calculator)
	assert.Equal(t, 5, result.ObjectCount)
	assert.Equal(t, 1.0, result.QualityOfClassification)
	assert.Equal(t, []int{0, 1, 2, 3, 4}, result.ConsistentObjects)

	require.Len(t, result.Upward, 2)
	require.Len(t, result.Downward, 2)
	for _, summary := range result.AllSummaries() {
		assert.Equal(t, summary.Members, summary.Lower, "%s %s", summary.Type, summary.LimitingDecision)
		assert.Equal(t, summary.Members, summary.Upper)
		assert.Empty(t, summary.Boundary)
		require.NotNil(t, summary.Accuracy)
		assert.Equal(t, 1.0, *summary.Accuracy)
		assert.Equal(t, 1.0, summary.Quality)
		assert.NotNil(t, summary.NegativeRegion, "complements are registered, so regions are present")
	}
}

func TestAnalyzeTableInconsistent(t *testing.T) {
	svc := NewApproximationService(nil, nil, nil)
	table := gradeTable(t, []float64{1, 2, 2, 3}, []float64{1, 2, 1, 2})

	result, err := svc.AnalyzeTable(context.Background(), table, approx.NewClassicalCalculator())
	require.NoError(t, err)

	require.Len(t, result.Upward, 1)
	require.Len(t, result.Downward, 1)
	assert.InDelta(t, 0.5, result.QualityOfClassification, 1e-12)
	assert.Equal(t, []int{0, 3}, result.ConsistentObjects)

	up := result.Upward[0]
	assert.Equal(t, []int{1, 3}, up.Members)
	assert.Equal(t, []int{3}, up.Lower)
	assert.Equal(t, []int{1, 2, 3}, up.Upper)
	assert.Equal(t, []int{1, 2}, up.Boundary)
	require.NotNil(t, up.Accuracy)
	assert.InDelta(t, 1.0/3.0, *up.Accuracy, 1e-12)
	assert.InDelta(t, 0.5, up.Quality, 1e-12)
}

func TestAnalyzeTableVariableConsistency(t *testing.T) {
	svc := NewApproximationService(nil, nil, nil)
	table := gradeTable(t, []float64{1, 2, 2, 3}, []float64{1, 2, 1, 2})

	calc, err := approx.NewVCCalculator(approx.RoughMembership{}, 0.6)
	require.NoError(t, err)

	result, err := svc.AnalyzeTable(context.Background(), table, calc)
	require.NoError(t, err)

	assert.Equal(t, "variable_consistency(rough_membership,0.6)", result.Calculator)
	up := result.Upward[0]
	assert.Equal(t, []int{1, 3}, up.Lower, "relaxed consistency admits object 1")
}

func TestAnalyzeTablePersistsResult(t *testing.T) {
	repo := &memoryAnalysisRepo{}
	svc := NewApproximationService(nil, repo, nil)
	table := gradeTable(t, []float64{1, 2, 3}, []float64{1, 2, 3})

	result, err := svc.AnalyzeTable(context.Background(), table, approx.NewClassicalCalculator())
	require.NoError(t, err)
	require.Len(t, repo.created, 1)
	assert.Equal(t, result.ID, repo.created[0].ID)

	got, err := svc.GetAnalysis(context.Background(), result.ID)
	require.NoError(t, err)
	assert.Equal(t, result.Fingerprint, got.Fingerprint)

	listed, err := svc.ListAnalyses(context.Background(), 10, 0)
	require.NoError(t, err)
	assert.Len(t, listed, 1)
}

func TestGetAnalysisWithoutRepository(t *testing.T) {
	svc := NewApproximationService(nil, nil, nil)
	_, err := svc.GetAnalysis(context.Background(), core.AnalysisID(core.NewID()))
	require.Error(t, err)
}
