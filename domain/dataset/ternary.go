package dataset

// Ternary is the result of comparing two decisions: the dominance order over
// composite decisions is partial, so comparisons can come back incomparable
// rather than true or false.
type Ternary int

const (
	TernaryFalse Ternary = iota
	TernaryTrue
	TernaryIncomparable
)

// IsTrue returns true only for TernaryTrue
func (t Ternary) IsTrue() bool {
	return t == TernaryTrue
}

// String returns a readable name for the relation result
func (t Ternary) String() string {
	switch t {
	case TernaryTrue:
		return "true"
	case TernaryFalse:
		return "false"
	default:
		return "incomparable"
	}
}
