package ports

import (
	"context"

	"godrsa/domain/analysis"
	"godrsa/domain/core"
)

// AnalysisRepository defines the interface for analysis result storage
type AnalysisRepository interface {
	Create(ctx context.Context, result *analysis.Result) error
	GetByID(ctx context.Context, id core.AnalysisID) (*analysis.Result, error)
	List(ctx context.Context, limit, offset int) ([]*analysis.Result, error)
	Delete(ctx context.Context, id core.AnalysisID) error
}
