package testkit

import (
	"context"
	"sort"
	"sync"

	"godrsa/domain/analysis"
	"godrsa/domain/core"
	"godrsa/ports"
)

// InMemoryAnalysisRepository is a thread-safe AnalysisRepository for tests
// and for running the server without a database
type InMemoryAnalysisRepository struct {
	mu      sync.RWMutex
	results map[core.AnalysisID]*analysis.Result
}

// NewInMemoryAnalysisRepository creates an empty in-memory repository
func NewInMemoryAnalysisRepository() *InMemoryAnalysisRepository {
	return &InMemoryAnalysisRepository{
		results: make(map[core.AnalysisID]*analysis.Result),
	}
}

var _ ports.AnalysisRepository = (*InMemoryAnalysisRepository)(nil)

func (r *InMemoryAnalysisRepository) Create(_ context.Context, result *analysis.Result) error {
	if result == nil {
		return core.NewNilArgumentError("result")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.results[result.ID] = result
	return nil
}

func (r *InMemoryAnalysisRepository) GetByID(_ context.Context, id core.AnalysisID) (*analysis.Result, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	result, ok := r.results[id]
	if !ok {
		return nil, core.NewNotFoundError("analysis", string(id))
	}
	return result, nil
}

// List returns results newest first
func (r *InMemoryAnalysisRepository) List(_ context.Context, limit, offset int) ([]*analysis.Result, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := make([]*analysis.Result, 0, len(r.results))
	for _, result := range r.results {
		all = append(all, result)
	}
	sort.Slice(all, func(i, j int) bool {
		return all[j].CreatedAt.Before(all[i].CreatedAt)
	})

	if offset >= len(all) {
		return nil, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], nil
}

func (r *InMemoryAnalysisRepository) Delete(_ context.Context, id core.AnalysisID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.results[id]; !ok {
		return core.NewNotFoundError("analysis", string(id))
	}
	delete(r.results, id)
	return nil
}
