package dataset

import (
	"fmt"
	"strings"
)

// Preference defines the preference order of an attribute's value scale
type Preference string

const (
	PreferenceNone Preference = "none" // nominal scale, only equality is meaningful
	PreferenceGain Preference = "gain" // larger values are better
	PreferenceCost Preference = "cost" // smaller values are better
)

// IsOrdinal returns true for gain- and cost-type preferences
func (p Preference) IsOrdinal() bool {
	return p == PreferenceGain || p == PreferenceCost
}

// AttributeKind defines the role an attribute plays in the table
type AttributeKind string

const (
	KindCondition   AttributeKind = "condition"
	KindDecision    AttributeKind = "decision"
	KindDescription AttributeKind = "description"
)

// Attribute describes a single column of an information table
type Attribute struct {
	Name   string        `json:"name"`
	Kind   AttributeKind `json:"kind"`
	Pref   Preference    `json:"preference"`
	Active bool          `json:"active"`
}

// IsActiveDecision returns true for active decision attributes
func (a Attribute) IsActiveDecision() bool {
	return a.Active && a.Kind == KindDecision
}

// IsActiveConditionCriterion returns true for active, ordinal condition
// attributes; these are the attributes the dominance relation is built on
func (a Attribute) IsActiveConditionCriterion() bool {
	return a.Active && a.Kind == KindCondition && a.Pref.IsOrdinal()
}

// ParsePreference parses a preference name ("none", "gain", "cost")
func ParsePreference(s string) (Preference, error) {
	switch Preference(strings.ToLower(strings.TrimSpace(s))) {
	case PreferenceNone:
		return PreferenceNone, nil
	case PreferenceGain:
		return PreferenceGain, nil
	case PreferenceCost:
		return PreferenceCost, nil
	}
	return "", fmt.Errorf("unknown preference: %q", s)
}

// ParseAttributeKind parses an attribute kind, accepting the short forms
// used in file headers ("cond", "dec", "desc")
func ParseAttributeKind(s string) (AttributeKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "condition", "cond":
		return KindCondition, nil
	case "decision", "dec":
		return KindDecision, nil
	case "description", "desc":
		return KindDescription, nil
	}
	return "", fmt.Errorf("unknown attribute kind: %q", s)
}
