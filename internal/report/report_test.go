package report

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"godrsa/domain/analysis"
	"godrsa/domain/core"
)

func sampleResult(t *testing.T) *analysis.Result {
	t.Helper()
	a1, a2 := 1.0, 0.5
	result := analysis.NewResult(core.TableID(core.NewID()), "cars", core.NewHash([]byte("rows")), "classical")
	result.ObjectCount = 4
	result.Upward = []analysis.UnionSummary{
		{Type: "at_least", LimitingDecision: "1=3", Members: []int{3}, Lower: []int{3}, Upper: []int{3}, Accuracy: &a1, Quality: 1},
	}
	result.Downward = []analysis.UnionSummary{
		{Type: "at_most", LimitingDecision: "1=1", Members: []int{0, 2}, Lower: []int{0}, Upper: []int{0, 1, 2}, Boundary: []int{1, 2}, Accuracy: &a2, Quality: 0.5},
	}
	result.QualityOfClassification = 0.5
	result.ConsistentObjects = []int{0, 3}
	return result
}

func TestSummarize(t *testing.T) {
	summary, err := Summarize(sampleResult(t))
	require.NoError(t, err)

	assert.Equal(t, 2, summary.UnionCount)
	assert.InDelta(t, 0.75, summary.MeanQuality, 1e-12)
	assert.InDelta(t, 0.75, summary.MedianAccuracy, 1e-12)
	assert.Equal(t, 0.5, summary.QualityOfClassification)
	assert.Equal(t, 2, summary.ConsistentObjectCount)
}

func TestSummarizeEmptyResult(t *testing.T) {
	result := analysis.NewResult(core.TableID(core.NewID()), "empty", core.NewHash(nil), "classical")
	_, err := Summarize(result)
	require.Error(t, err)
}

func TestRenderMarkdown(t *testing.T) {
	md, err := RenderMarkdown(sampleResult(t))
	require.NoError(t, err)

	assert.Contains(t, md, "Table **cars**")
	assert.Contains(t, md, "## Upward unions")
	assert.Contains(t, md, "## Downward unions")
	assert.Contains(t, md, "| 1=1 |")
	assert.Contains(t, md, "Quality of classification: 0.5000")
}

func TestRenderHTML(t *testing.T) {
	html, err := RenderHTML(sampleResult(t))
	require.NoError(t, err)

	assert.True(t, strings.Contains(html, "<h1"), "renders headings")
	assert.True(t, strings.Contains(html, "<table"), "renders union tables")
}
