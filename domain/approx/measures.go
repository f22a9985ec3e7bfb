package approx

// ConsistencyMeasure quantifies how consistent one object is with a union;
// the comparison direction against the threshold is measure-specific, so the
// measure itself decides whether the threshold is reached.
type ConsistencyMeasure interface {
	Name() string
	ThresholdReached(objectIndex int, u *Union, threshold float64) bool
}

// RoughMembership is the fraction of the object's proper-type dominance cone
// that falls inside the union's member set. The threshold is reached when
// the fraction is at least the threshold, so raising the threshold shrinks
// the lower approximation.
type RoughMembership struct{}

func (RoughMembership) Name() string {
	return "rough_membership"
}

func (RoughMembership) ThresholdReached(objectIndex int, u *Union, threshold float64) bool {
	cone := u.properCone(objectIndex)
	if cone.IsEmpty() {
		return false
	}
	inUnion := cone.Intersect(u.Members()).Len()
	return float64(inUnion)/float64(cone.Len()) >= threshold
}

// EpsilonConsistency is the fraction of all non-member objects that fall
// inside the object's proper-type dominance cone. The threshold is reached
// when the fraction is at most the threshold, so raising the threshold
// grows the lower approximation. Neutral objects count as non-members.
type EpsilonConsistency struct{}

func (EpsilonConsistency) Name() string {
	return "epsilon_consistency"
}

func (EpsilonConsistency) ThresholdReached(objectIndex int, u *Union, threshold float64) bool {
	nonMembers := u.table.AllObjects().Diff(u.Members())
	if nonMembers.IsEmpty() {
		return true
	}
	inCone := u.properCone(objectIndex).Intersect(nonMembers).Len()
	return float64(inCone)/float64(nonMembers.Len()) <= threshold
}
