package app

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"godrsa/domain/analysis"
	"godrsa/domain/approx"
	"godrsa/domain/core"
	"godrsa/domain/dataset"
	"godrsa/domain/dominance"
	"godrsa/internal"
	"godrsa/ports"
)

// ApproximationService runs the full approximation pipeline for one table:
// dominance cones, meaningful unions, approximations and regions, and the
// summary figures. Results are optionally persisted through the repository.
type ApproximationService struct {
	reader ports.TableReader
	repo   ports.AnalysisRepository // nil when persistence is disabled
	logger *internal.Logger
}

// NewApproximationService creates an approximation service. repo may be nil.
func NewApproximationService(reader ports.TableReader, repo ports.AnalysisRepository, logger *internal.Logger) *ApproximationService {
	return &ApproximationService{
		reader: reader,
		repo:   repo,
		logger: logger,
	}
}

// AnalyzeFile reads the table at path and analyzes it
func (s *ApproximationService) AnalyzeFile(ctx context.Context, path string, calc approx.Calculator) (*analysis.Result, error) {
	if s.reader == nil {
		return nil, core.NewNilArgumentError("reader")
	}
	table, err := s.reader.ReadTable(path)
	if err != nil {
		return nil, fmt.Errorf("reading table from %s: %w", path, err)
	}
	return s.AnalyzeTable(ctx, table, calc)
}

// AnalyzeTable computes every meaningful union of the table's decision
// classes, one goroutine per union
func (s *ApproximationService) AnalyzeTable(ctx context.Context, table *dataset.InformationTable, calc approx.Calculator) (*analysis.Result, error) {
	if table == nil {
		return nil, core.NewNilArgumentError("table")
	}
	started := time.Now()

	cones, err := dominance.NewConeCalculator(table)
	if err != nil {
		return nil, fmt.Errorf("building dominance cones: %w", err)
	}
	// The cone caches are shared by every union goroutine below
	cones.Precompute()

	unions, err := approx.NewUnions(table, cones, calc)
	if err != nil {
		return nil, fmt.Errorf("building unions: %w", err)
	}

	upward := unions.UpwardUnions()
	downward := unions.DownwardUnions()

	g, ctx := errgroup.WithContext(ctx)
	for _, u := range append(append([]*approx.Union{}, upward...), downward...) {
		u := u
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := u.ComputeAll(); err != nil {
				return fmt.Errorf("computing %s: %w", u, err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	result := analysis.NewResult(table.ID(), table.Name(), table.Fingerprint(), calc.String())
	result.ObjectCount = table.NumberOfObjects()

	if result.Upward, err = summarize(upward); err != nil {
		return nil, err
	}
	if result.Downward, err = summarize(downward); err != nil {
		return nil, err
	}

	if result.QualityOfClassification, err = unions.QualityOfClassification(); err != nil {
		return nil, fmt.Errorf("quality of classification: %w", err)
	}
	consistent, err := unions.ConsistentObjects()
	if err != nil {
		return nil, fmt.Errorf("consistent objects: %w", err)
	}
	result.ConsistentObjects = indices(consistent)

	if s.logger != nil {
		s.logger.Info("analyzed table %s: %d objects, %d unions, quality %.4f in %s",
			table.Name(), table.NumberOfObjects(), len(upward)+len(downward),
			result.QualityOfClassification, time.Since(started).Round(time.Millisecond))
	}

	if s.repo != nil {
		if err := s.repo.Create(ctx, result); err != nil {
			return nil, fmt.Errorf("persisting analysis %s: %w", result.ID, err)
		}
	}
	return result, nil
}

// GetAnalysis fetches a stored result by ID
func (s *ApproximationService) GetAnalysis(ctx context.Context, id core.AnalysisID) (*analysis.Result, error) {
	if s.repo == nil {
		return nil, core.NewUnsupportedOperationError("analysis storage is not configured")
	}
	return s.repo.GetByID(ctx, id)
}

// ListAnalyses pages through stored results, newest first
func (s *ApproximationService) ListAnalyses(ctx context.Context, limit, offset int) ([]*analysis.Result, error) {
	if s.repo == nil {
		return nil, core.NewUnsupportedOperationError("analysis storage is not configured")
	}
	return s.repo.List(ctx, limit, offset)
}

// DeleteAnalysis removes a stored result by ID
func (s *ApproximationService) DeleteAnalysis(ctx context.Context, id core.AnalysisID) error {
	if s.repo == nil {
		return core.NewUnsupportedOperationError("analysis storage is not configured")
	}
	return s.repo.Delete(ctx, id)
}

func summarize(unions []*approx.Union) ([]analysis.UnionSummary, error) {
	out := make([]analysis.UnionSummary, 0, len(unions))
	for _, u := range unions {
		summary, err := summarizeUnion(u)
		if err != nil {
			return nil, fmt.Errorf("summarizing %s: %w", u, err)
		}
		out = append(out, summary)
	}
	return out, nil
}

func summarizeUnion(u *approx.Union) (analysis.UnionSummary, error) {
	summary := analysis.UnionSummary{
		Type:             string(u.Type()),
		LimitingDecision: u.LimitingDecision().String(),
		Members:          indices(u.Members()),
		Neutral:          indices(u.Neutral()),
	}

	lower, err := u.LowerApproximation()
	if err != nil {
		return summary, err
	}
	upper, err := u.UpperApproximation()
	if err != nil {
		return summary, err
	}
	boundary, err := u.Boundary()
	if err != nil {
		return summary, err
	}
	summary.Lower = indices(lower)
	summary.Upper = indices(upper)
	summary.Boundary = indices(boundary)

	positive, err := u.PositiveRegion()
	if err != nil {
		return summary, err
	}
	summary.PositiveRegion = indices(positive)

	if _, ok := u.Complement(); ok {
		negative, err := u.NegativeRegion()
		if err != nil {
			return summary, err
		}
		boundaryRegion, err := u.BoundaryRegion()
		if err != nil {
			return summary, err
		}
		summary.NegativeRegion = indices(negative)
		summary.BoundaryRegion = indices(boundaryRegion)
	}

	if !upper.IsEmpty() {
		accuracy, err := u.Accuracy()
		if err != nil {
			return summary, err
		}
		summary.Accuracy = &accuracy
	}
	quality, err := u.Quality()
	if err != nil {
		return summary, err
	}
	summary.Quality = quality
	return summary, nil
}

func indices(set core.IndexSet) []int {
	out := make([]int, len(set))
	copy(out, set)
	return out
}
