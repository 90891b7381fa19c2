package poly

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScale(t *testing.T) {
	a := assert.New(t)

	p, _ := FromTerms(Spin, []TermBias{
		{Term{}, 1},
		{NewTerm("a"), 2},
		{NewTerm("a", "b"), -4},
	})
	p.Scale(0.5)

	a.True(p.EqualTerms([]TermBias{
		{Term{}, 0.5},
		{NewTerm("a"), 1},
		{NewTerm("a", "b"), -2},
	}))
}

func TestScaleIgnoredTerms(t *testing.T) {
	a := assert.New(t)

	p, _ := FromTerms(Boolean, []TermBias{
		{Term{}, 3},
		{NewTerm("a"), 2},
		{NewTerm("b"), -2},
	})
	p.Scale(2, Term{})

	a.True(p.EqualTerms([]TermBias{
		{Term{}, 3},
		{NewTerm("a"), 4},
		{NewTerm("b"), -4},
	}))
}

func TestNormalizeWorstGroupWins(t *testing.T) {
	a := assert.New(t)

	// linear biases in [-4, 2], higher-order in [-1, 0.5]: the linear
	// minimum is the worst offender, so everything scales by 1/4.
	p, _ := FromTerms(Spin, []TermBias{
		{NewTerm("a"), -4},
		{NewTerm("b"), 2},
		{NewTerm("a", "b"), -1},
		{NewTerm("b", "c"), 0.5},
	})
	require.NoError(t, p.Normalize(Sym(1), Range{}))

	a.True(p.EqualTerms([]TermBias{
		{NewTerm("a"), -1},
		{NewTerm("b"), 0.5},
		{NewTerm("a", "b"), -0.25},
		{NewTerm("b", "c"), 0.125},
	}))
}

func TestNormalizeSeparatePolyRange(t *testing.T) {
	a := assert.New(t)

	p, _ := FromTerms(Spin, []TermBias{
		{NewTerm("a"), 1},
		{NewTerm("a", "b"), 4},
	})
	// higher-order range [-2, 2]: the quadratic bias exceeds it twofold
	require.NoError(t, p.Normalize(Sym(1), Sym(2)))

	a.True(p.EqualTerms([]TermBias{
		{NewTerm("a"), 0.5},
		{NewTerm("a", "b"), 2},
	}))
}

func TestNormalizeIdentityWhenWithinRange(t *testing.T) {
	p, _ := FromTerms(Boolean, []TermBias{
		{NewTerm("a"), 0.5},
		{NewTerm("a", "b"), -0.25},
	})
	before := p.Copy()
	require.NoError(t, p.Normalize(Sym(1), Range{}))
	assert.True(t, p.Equal(before), "biases within range must not be rescaled")
}

func TestNormalizeSkipsConstant(t *testing.T) {
	a := assert.New(t)

	// the constant is far outside the range but does not drive the factor
	p, _ := FromTerms(Spin, []TermBias{
		{Term{}, 100},
		{NewTerm("a"), -2},
	})
	require.NoError(t, p.Normalize(Sym(1), Range{}))

	a.True(p.EqualTerms([]TermBias{
		{Term{}, 50},
		{NewTerm("a"), -1},
	}))
}

func TestNormalizeIgnoredTerms(t *testing.T) {
	a := assert.New(t)

	p, _ := FromTerms(Spin, []TermBias{
		{Term{}, 1},
		{NewTerm("a"), -2},
	})
	require.NoError(t, p.Normalize(Sym(1), Range{}, Term{}))

	a.True(p.EqualTerms([]TermBias{
		{Term{}, 1},
		{NewTerm("a"), -1},
	}))
}

func TestNormalizeRejectsBadRange(t *testing.T) {
	p, _ := FromTerms(Spin, []TermBias{{NewTerm("a"), 1}})
	assert.Error(t, p.Normalize(Range{Min: 1, Max: 2}, Range{}))
}

func TestSym(t *testing.T) {
	assert.Equal(t, Range{Min: -2, Max: 2}, Sym(2))
	assert.Equal(t, Range{Min: -2, Max: 2}, Sym(-2))
}
