package core

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
)

// Hash represents a cryptographic hash
type Hash string

// NewHash creates a new hash from data
func NewHash(data []byte) Hash {
	sum := sha256.Sum256(data)
	return Hash(hex.EncodeToString(sum[:]))
}

// String returns the string representation
func (h Hash) String() string {
	return string(h)
}

// IsEmpty checks if the hash is empty
func (h Hash) IsEmpty() bool {
	return h == ""
}

// Equals checks if two hashes are equal
func (h Hash) Equals(other Hash) bool {
	return h == other
}

// TableFingerprint hashes the raw cell values of an information table so an
// analysis can be tied to the exact data it was computed from.
func TableFingerprint(rows [][]float64) Hash {
	var data strings.Builder
	for _, row := range rows {
		for _, v := range row {
			fmt.Fprintf(&data, "%g|", v)
		}
		data.WriteString("\n")
	}
	return NewHash([]byte(data.String()))
}

// AnalysisFingerprint combines a table fingerprint with the calculator
// configuration for replayability checks.
func AnalysisFingerprint(table Hash, calculator string) Hash {
	return NewHash([]byte(table.String() + "#" + calculator))
}
