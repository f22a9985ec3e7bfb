// Package report renders an analysis result as a human-readable summary,
// in markdown or HTML.
package report

import (
	"fmt"
	"strings"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat"

	"godrsa/domain/analysis"
)

// Summary holds the aggregate figures across all unions of one result
type Summary struct {
	UnionCount int

	MeanQuality   float64
	StdDevQuality float64

	// Accuracy aggregates skip unions with an empty upper approximation
	MedianAccuracy float64
	P90Accuracy    float64

	QualityOfClassification float64
	ConsistentObjectCount   int
}

// Summarize computes aggregate statistics over a result's unions
func Summarize(result *analysis.Result) (*Summary, error) {
	summaries := result.AllSummaries()
	if len(summaries) == 0 {
		return nil, fmt.Errorf("result %s has no unions to summarize", result.ID)
	}

	qualities := make([]float64, 0, len(summaries))
	accuracies := make([]float64, 0, len(summaries))
	for _, s := range summaries {
		qualities = append(qualities, s.Quality)
		if s.Accuracy != nil {
			accuracies = append(accuracies, *s.Accuracy)
		}
	}

	summary := &Summary{
		UnionCount:              len(summaries),
		MeanQuality:             stat.Mean(qualities, nil),
		QualityOfClassification: result.QualityOfClassification,
		ConsistentObjectCount:   len(result.ConsistentObjects),
	}
	if len(qualities) > 1 {
		summary.StdDevQuality = stat.StdDev(qualities, nil)
	}
	if len(accuracies) > 0 {
		median, err := stats.Median(accuracies)
		if err != nil {
			return nil, fmt.Errorf("computing median accuracy: %w", err)
		}
		p90, err := stats.Percentile(accuracies, 90)
		if err != nil {
			return nil, fmt.Errorf("computing p90 accuracy: %w", err)
		}
		summary.MedianAccuracy = median
		summary.P90Accuracy = p90
	}
	return summary, nil
}

// RenderMarkdown produces the full markdown report for a result
func RenderMarkdown(result *analysis.Result) (string, error) {
	summary, err := Summarize(result)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# Analysis %s\n\n", result.ID)
	fmt.Fprintf(&b, "Table **%s** (%d objects), calculator `%s`.\n\n", result.TableName, result.ObjectCount, result.Calculator)

	fmt.Fprintf(&b, "- Quality of classification: %.4f\n", result.QualityOfClassification)
	fmt.Fprintf(&b, "- Consistent objects: %d of %d\n", summary.ConsistentObjectCount, result.ObjectCount)
	fmt.Fprintf(&b, "- Unions: %d (mean quality %.4f, stddev %.4f)\n", summary.UnionCount, summary.MeanQuality, summary.StdDevQuality)
	fmt.Fprintf(&b, "- Accuracy: median %.4f, p90 %.4f\n\n", summary.MedianAccuracy, summary.P90Accuracy)

	writeUnionTable(&b, "Upward unions", result.Upward)
	writeUnionTable(&b, "Downward unions", result.Downward)
	return b.String(), nil
}

func writeUnionTable(b *strings.Builder, title string, summaries []analysis.UnionSummary) {
	if len(summaries) == 0 {
		return
	}
	fmt.Fprintf(b, "## %s\n\n", title)
	b.WriteString("| Limiting decision | Members | Lower | Upper | Boundary | Accuracy | Quality |\n")
	b.WriteString("|---|---|---|---|---|---|---|\n")
	for _, s := range summaries {
		accuracy := "n/a"
		if s.Accuracy != nil {
			accuracy = fmt.Sprintf("%.4f", *s.Accuracy)
		}
		fmt.Fprintf(b, "| %s | %d | %d | %d | %d | %s | %.4f |\n",
			s.LimitingDecision, len(s.Members), len(s.Lower), len(s.Upper), len(s.Boundary), accuracy, s.Quality)
	}
	b.WriteString("\n")
}

// RenderHTML converts the markdown report into a standalone HTML fragment
func RenderHTML(result *analysis.Result) (string, error) {
	md, err := RenderMarkdown(result)
	if err != nil {
		return "", err
	}
	p := parser.NewWithExtensions(parser.CommonExtensions | parser.Tables)
	doc := p.Parse([]byte(md))
	renderer := html.NewRenderer(html.RendererOptions{Flags: html.CommonFlags})
	return string(markdown.Render(doc, renderer)), nil
}
