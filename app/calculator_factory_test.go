package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"godrsa/domain/approx"
)

func TestNewCalculatorFromSettings(t *testing.T) {
	calc, err := NewCalculatorFromSettings("classical", "", 0)
	require.NoError(t, err)
	assert.Equal(t, approx.Classical, calc.Kind())

	calc, err = NewCalculatorFromSettings("variable_consistency", "rough_membership", 0.75)
	require.NoError(t, err)
	assert.Equal(t, approx.VariableConsistency, calc.Kind())
	assert.Equal(t, 0.75, calc.Threshold())
	assert.Equal(t, "variable_consistency(rough_membership,0.75)", calc.String())

	calc, err = NewCalculatorFromSettings("variable_consistency", "epsilon_consistency", 0.1)
	require.NoError(t, err)
	assert.Equal(t, "variable_consistency(epsilon_consistency,0.1)", calc.String())
}

func TestNewCalculatorFromSettingsErrors(t *testing.T) {
	_, err := NewCalculatorFromSettings("fuzzy", "", 0)
	require.Error(t, err)

	_, err = NewCalculatorFromSettings("variable_consistency", "vibes", 0.5)
	require.Error(t, err)
}
