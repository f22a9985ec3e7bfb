// Package dominance computes dominance cones over an information table's
// active condition criteria. Object x dominates object y when x is at least
// as good as y on every criterion; the cones of an object are the sets of
// objects dominating it and dominated by it.
package dominance

import (
	"godrsa/domain/core"
	"godrsa/domain/dataset"
)

// ConeCalculator derives and caches dominance cones for one table
type ConeCalculator struct {
	table    *dataset.InformationTable
	criteria []int

	// Per-object cone caches, filled on first access
	positiveInv []core.IndexSet
	negative    []core.IndexSet
}

// NewConeCalculator creates a cone calculator for the given table
func NewConeCalculator(table *dataset.InformationTable) (*ConeCalculator, error) {
	if table == nil {
		return nil, core.NewNilArgumentError("table")
	}
	criteria := table.ConditionCriteria()
	if len(criteria) == 0 {
		return nil, core.NewInvalidValueError("table", "no active ordinal condition attributes")
	}
	return &ConeCalculator{
		table:       table,
		criteria:    criteria,
		positiveInv: make([]core.IndexSet, table.NumberOfObjects()),
		negative:    make([]core.IndexSet, table.NumberOfObjects()),
	}, nil
}

// Precompute fills both cone caches for every object. Callers that share
// the calculator across goroutines must call this first; the lazy fills are
// not synchronized.
func (c *ConeCalculator) Precompute() {
	for i := 0; i < c.table.NumberOfObjects(); i++ {
		c.PositiveInvDominanceCone(i)
		c.NegativeDominanceCone(i)
	}
}

// Dominates reports whether object x is at least as good as object y on
// every active condition criterion
func (c *ConeCalculator) Dominates(x, y int) bool {
	for _, criterion := range c.criteria {
		ex := c.table.Evaluation(x, criterion)
		ey := c.table.Evaluation(y, criterion)
		if !ex.AtLeastAsGoodAs(ey) {
			return false
		}
	}
	return true
}

// PositiveInvDominanceCone returns the objects dominating objectIndex
// (the object itself included, since dominance is reflexive)
func (c *ConeCalculator) PositiveInvDominanceCone(objectIndex int) core.IndexSet {
	if cached := c.positiveInv[objectIndex]; cached != nil {
		return cached
	}
	cone := make(core.IndexSet, 0)
	for j := 0; j < c.table.NumberOfObjects(); j++ {
		if c.Dominates(j, objectIndex) {
			cone = append(cone, j)
		}
	}
	c.positiveInv[objectIndex] = cone
	return cone
}

// NegativeDominanceCone returns the objects dominated by objectIndex
// (the object itself included)
func (c *ConeCalculator) NegativeDominanceCone(objectIndex int) core.IndexSet {
	if cached := c.negative[objectIndex]; cached != nil {
		return cached
	}
	cone := make(core.IndexSet, 0)
	for j := 0; j < c.table.NumberOfObjects(); j++ {
		if c.Dominates(objectIndex, j) {
			cone = append(cone, j)
		}
	}
	c.negative[objectIndex] = cone
	return cone
}
