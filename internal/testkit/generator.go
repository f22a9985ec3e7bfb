// Package testkit provides deterministic fixtures for tests and demos: a
// seeded table generator and an in-memory analysis store.
package testkit

import (
	"fmt"
	"math/rand"

	"godrsa/domain/dataset"
)

// TableSpec controls the shape of a generated information table
type TableSpec struct {
	Objects    int
	Criteria   int
	Classes    int
	Seed       int64
	Violations int // objects whose class is perturbed against dominance
}

// GenerateTable produces a dominance-consistent table unless Violations is
// positive. Criteria alternate gain and cost scales; the class attribute is
// derived from the mean normalized criterion value, so identical seeds give
// identical tables.
func GenerateTable(spec TableSpec) (*dataset.InformationTable, error) {
	if spec.Objects < 1 || spec.Criteria < 1 || spec.Classes < 2 {
		return nil, fmt.Errorf("table spec needs at least 1 object, 1 criterion and 2 classes")
	}
	rng := rand.New(rand.NewSource(spec.Seed))

	attrs := make([]dataset.Attribute, 0, spec.Criteria+1)
	for i := 0; i < spec.Criteria; i++ {
		pref := dataset.PreferenceGain
		if i%2 == 1 {
			pref = dataset.PreferenceCost
		}
		attrs = append(attrs, dataset.Attribute{
			Name:   fmt.Sprintf("c%d", i+1),
			Kind:   dataset.KindCondition,
			Pref:   pref,
			Active: true,
		})
	}
	attrs = append(attrs, dataset.Attribute{
		Name:   "class",
		Kind:   dataset.KindDecision,
		Pref:   dataset.PreferenceGain,
		Active: true,
	})

	rows := make([][]dataset.Evaluation, spec.Objects)
	for i := range rows {
		row := make([]dataset.Evaluation, 0, spec.Criteria+1)
		goodness := 0.0
		for j := 0; j < spec.Criteria; j++ {
			value := rng.Float64() * 100
			pref := attrs[j].Pref
			row = append(row, dataset.NewEvaluation(value, pref))
			if pref == dataset.PreferenceGain {
				goodness += value / 100
			} else {
				goodness += 1 - value/100
			}
		}
		goodness /= float64(spec.Criteria)

		class := int(goodness*float64(spec.Classes)) + 1
		if class > spec.Classes {
			class = spec.Classes
		}
		row = append(row, dataset.NewEvaluation(float64(class), dataset.PreferenceGain))
		rows[i] = row
	}

	for v := 0; v < spec.Violations; v++ {
		idx := rng.Intn(spec.Objects)
		classIdx := spec.Criteria
		current := int(rows[idx][classIdx].Value)
		perturbed := current - 1
		if perturbed < 1 {
			perturbed = current + 1
		}
		rows[idx][classIdx] = dataset.NewEvaluation(float64(perturbed), dataset.PreferenceGain)
	}

	name := fmt.Sprintf("generated-%d", spec.Seed)
	return dataset.NewInformationTable(name, attrs, rows)
}
