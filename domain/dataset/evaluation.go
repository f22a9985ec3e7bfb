package dataset

import (
	"strconv"
)

// Evaluation is one object's value on one attribute. At the evaluation
// level, missing values compare as at-least-as-good and at-most-as-good as
// anything (the permissive mv2 reading), which keeps dominance cones well
// defined on tables with gaps in condition data. Decision comparison treats
// missing values more cautiously; see Decision.compare.
type Evaluation struct {
	Value   float64
	Missing bool
	Pref    Preference
}

// NewEvaluation creates a known evaluation on the given preference scale
func NewEvaluation(value float64, pref Preference) Evaluation {
	return Evaluation{Value: value, Pref: pref}
}

// MissingEvaluation creates a missing-value evaluation
func MissingEvaluation(pref Preference) Evaluation {
	return Evaluation{Missing: true, Pref: pref}
}

// AtLeastAsGoodAs reports whether e is at least as good as other on e's scale
func (e Evaluation) AtLeastAsGoodAs(other Evaluation) bool {
	if e.Missing || other.Missing {
		return true
	}
	switch e.Pref {
	case PreferenceGain:
		return e.Value >= other.Value
	case PreferenceCost:
		return e.Value <= other.Value
	default:
		return e.Value == other.Value
	}
}

// AtMostAsGoodAs reports whether e is at most as good as other on e's scale
func (e Evaluation) AtMostAsGoodAs(other Evaluation) bool {
	if e.Missing || other.Missing {
		return true
	}
	switch e.Pref {
	case PreferenceGain:
		return e.Value <= other.Value
	case PreferenceCost:
		return e.Value >= other.Value
	default:
		return e.Value == other.Value
	}
}

// EqualTo reports value equality; missing compares true against anything
func (e Evaluation) EqualTo(other Evaluation) bool {
	if e.Missing || other.Missing {
		return true
	}
	return e.Value == other.Value
}

// Identical reports structural equality, distinguishing missing from known
func (e Evaluation) Identical(other Evaluation) bool {
	if e.Missing != other.Missing {
		return false
	}
	return e.Missing || e.Value == other.Value
}

// String renders the evaluation for keys and diagnostics
func (e Evaluation) String() string {
	if e.Missing {
		return "?"
	}
	return strconv.FormatFloat(e.Value, 'g', -1, 64)
}
