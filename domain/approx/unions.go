package approx

import (
	"godrsa/domain/core"
	"godrsa/domain/dataset"
)

// Unions is the ordered family of meaningful upward and downward unions of
// an information table. It is built once at construction and immutable
// afterwards; both arrays run from the most specific union (fewest objects)
// to the least specific one.
type Unions struct {
	table *dataset.InformationTable
	cones ConeProvider
	calc  Calculator

	upward   []*Union
	downward []*Union
	byKey    map[string]*Union

	consistent     core.IndexSet
	consistentDone bool
}

// NewUnions enumerates the table's distinct fully determined decisions,
// orders them by dominance, and constructs one union per meaningful cut.
// Unions that would contain every object in the table are dropped.
func NewUnions(table *dataset.InformationTable, cones ConeProvider, calc Calculator) (*Unions, error) {
	if table == nil {
		return nil, core.NewNilArgumentError("table")
	}
	if cones == nil {
		return nil, core.NewNilArgumentError("cones")
	}

	ordered, err := table.OrderedUniqueFullyDeterminedDecisions()
	if err != nil {
		return nil, err
	}
	if len(ordered) == 0 {
		return nil, core.NewInvalidValueError("table", "no fully determined decisions")
	}

	// The meaningfulness test runs over every distinct decision; when not
	// all decisions are fully determined the distribution supplies the rest
	testDecisions := ordered
	if !table.AllDecisionsFullyDetermined() {
		dist, err := table.DecisionDistribution()
		if err != nil {
			return nil, err
		}
		testDecisions = dist.Decisions()
	}

	us := &Unions{
		table: table,
		cones: cones,
		calc:  calc,
		byKey: make(map[string]*Union),
	}

	// Upward unions are walked best to worst, downward worst to best, so
	// each array comes out most specific first
	for i := len(ordered) - 1; i >= 0; i-- {
		u, err := us.buildMeaningful(AtLeast, ordered[i], testDecisions)
		if err != nil {
			return nil, err
		}
		if u != nil {
			us.upward = append(us.upward, u)
		}
	}
	for _, d := range ordered {
		u, err := us.buildMeaningful(AtMost, d, testDecisions)
		if err != nil {
			return nil, err
		}
		if u != nil {
			us.downward = append(us.downward, u)
		}
	}

	return us, nil
}

// buildMeaningful constructs the union (unionType, limiting) with its strict
// complement registered, or returns nil when the union would contain every
// object in the table
func (us *Unions) buildMeaningful(unionType UnionType, limiting dataset.Decision, testDecisions []dataset.Decision) (*Union, error) {
	meaningful := false
	for _, d := range testDecisions {
		if !concordant(unionType, limiting, d) {
			meaningful = true
			break
		}
	}
	if !meaningful {
		return nil, nil
	}

	u, err := NewUnion(unionType, limiting, us.table, us.cones, us.calc)
	if err != nil {
		return nil, err
	}
	complement, err := u.BuildComplement()
	if err != nil {
		return nil, err
	}
	u.SetComplement(complement)
	complement.SetComplement(u)

	us.byKey[unionKey(unionType, limiting)] = u
	return u, nil
}

// concordant reports whether decision d would be a member of the union
// (unionType, limiting)
func concordant(unionType UnionType, limiting, d dataset.Decision) bool {
	if unionType == AtLeast {
		return limiting.IsAtMostAsGoodAs(d).IsTrue()
	}
	return limiting.IsAtLeastAsGoodAs(d).IsTrue()
}

func unionKey(unionType UnionType, limiting dataset.Decision) string {
	return string(unionType) + "#" + limiting.Key()
}

// Table returns the information table the family was built from
func (us *Unions) Table() *dataset.InformationTable {
	return us.table
}

// Calculator returns the shared rough set calculator
func (us *Unions) Calculator() Calculator {
	return us.calc
}

// UpwardUnions returns the upward unions, most specific first
func (us *Unions) UpwardUnions() []*Union {
	out := make([]*Union, len(us.upward))
	copy(out, us.upward)
	return out
}

// DownwardUnions returns the downward unions, most specific first
func (us *Unions) DownwardUnions() []*Union {
	out := make([]*Union, len(us.downward))
	copy(out, us.downward)
	return out
}

// Union looks up a union by type and limiting decision
func (us *Unions) Union(unionType UnionType, limiting dataset.Decision) (*Union, bool) {
	u, ok := us.byKey[unionKey(unionType, limiting)]
	return u, ok
}

// ConsistentObjects returns the objects appearing in no union's boundary,
// across both upward and downward unions
func (us *Unions) ConsistentObjects() (core.IndexSet, error) {
	if !us.consistentDone {
		consistent := us.table.AllObjects()
		for _, u := range append(us.UpwardUnions(), us.DownwardUnions()...) {
			boundary, err := u.Boundary()
			if err != nil {
				return nil, err
			}
			consistent = consistent.Diff(boundary)
		}
		us.consistent = consistent
		us.consistentDone = true
	}
	return us.consistent, nil
}

// QualityOfClassification returns the fraction of objects consistent with
// every union in the family
func (us *Unions) QualityOfClassification() (float64, error) {
	consistent, err := us.ConsistentObjects()
	if err != nil {
		return 0, err
	}
	n := us.table.NumberOfObjects()
	if n == 0 {
		return 0, core.ErrInsufficientData
	}
	return float64(consistent.Len()) / float64(n), nil
}
