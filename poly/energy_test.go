package poly

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crillab/gophobo/samples"
)

func TestEnergy(t *testing.T) {
	p, _ := FromTerms(Spin, []TermBias{
		{Term{}, 1},
		{NewTerm("a"), 2},
		{NewTerm("a", "b"), -1},
	})

	// 1 + 2*1 + (-1)*1*(-1) = 4
	e, err := p.Energy(map[string]float64{"a": 1, "b": -1})
	require.NoError(t, err)
	assert.Equal(t, 4.0, e)
}

func TestEnergyConstantOnly(t *testing.T) {
	p, _ := FromTerms(Boolean, []TermBias{{Term{}, 2.5}})
	e, err := p.Energy(map[string]float64{})
	require.NoError(t, err)
	assert.Equal(t, 2.5, e)
}

func TestEnergiesMatchesSingleCalls(t *testing.T) {
	p, _ := FromTerms(Spin, []TermBias{
		{Term{}, 0.5},
		{NewTerm("a"), 1},
		{NewTerm("b"), -2},
		{NewTerm("a", "b", "c"), 3},
	})

	assignments := []map[string]float64{
		{"a": 1, "b": 1, "c": 1},
		{"a": -1, "b": 1, "c": -1},
		{"a": 1, "b": -1, "c": -1},
		{"a": -1, "b": -1, "c": 1},
	}
	batch, err := samples.FromMaps(assignments)
	require.NoError(t, err)

	energies, err := p.Energies(batch)
	require.NoError(t, err)
	require.Len(t, energies, len(assignments))

	for i, a := range assignments {
		e, err := p.Energy(a)
		require.NoError(t, err)
		assert.Equal(t, e, energies[i], "sample %d", i)
	}
}

func TestEnergiesMissingVariable(t *testing.T) {
	p, _ := FromTerms(Boolean, []TermBias{{NewTerm("a", "b"), 1}})
	batch, err := samples.FromMaps([]map[string]float64{{"a": 1}})
	require.NoError(t, err)

	_, err = p.Energies(batch)
	assert.ErrorIs(t, err, ErrMissingVariable)

	_, err = p.Energy(map[string]float64{"a": 1})
	assert.ErrorIs(t, err, ErrMissingVariable)
}

func TestEnergiesEmptyBatch(t *testing.T) {
	p, _ := FromTerms(Spin, []TermBias{{Term{}, 1}})
	batch, err := samples.FromMaps(nil)
	require.NoError(t, err)

	energies, err := p.Energies(batch)
	require.NoError(t, err)
	assert.Empty(t, energies)
}
