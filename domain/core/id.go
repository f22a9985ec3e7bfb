package core

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// ID represents a domain identifier
type ID string

// NewID creates a new unique identifier using UUID v7 for time-ordered generation
func NewID() ID {
	// Use UUID v7 for time-ordered, sortable IDs
	// Falls back to v4 if v7 is not available (for compatibility)
	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}
	return ID(id.String())
}

// String returns the string representation
func (id ID) String() string {
	return string(id)
}

// IsEmpty checks if the ID is empty
func (id ID) IsEmpty() bool {
	return id == ""
}

// Domain-specific ID types
type (
	TableID    ID
	AnalysisID ID
)

// String conversions for domain IDs
func (id TableID) String() string    { return ID(id).String() }
func (id AnalysisID) String() string { return ID(id).String() }

// ParseTableID parses a string into TableID
func ParseTableID(s string) (TableID, error) {
	if _, err := uuid.Parse(strings.TrimSpace(s)); err != nil {
		return "", fmt.Errorf("invalid table ID %q: %w", s, err)
	}
	return TableID(s), nil
}

// ParseAnalysisID parses a string into AnalysisID
func ParseAnalysisID(s string) (AnalysisID, error) {
	if _, err := uuid.Parse(strings.TrimSpace(s)); err != nil {
		return "", fmt.Errorf("invalid analysis ID %q: %w", s, err)
	}
	return AnalysisID(s), nil
}
