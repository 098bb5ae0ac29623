package reaclib

import (
	"errors"
	"io"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadAll(t *testing.T) {
	doc := lines(r1DecayHeader, r1DecayCoeffs, r1Header, r1Coeffs)
	sets, err := ReadAll(strings.NewReader(doc), Reaclib1)
	require.NoError(t, err)
	require.Len(t, sets, 2)
	assert.Equal(t, "wc12", sets[0].Label)
	assert.Equal(t, "ths8", sets[1].Label)
}

func TestReadAllFailFast(t *testing.T) {
	doc := lines(r1DecayHeader, r1DecayCoeffs, setHeaderField(r1Header, 0, 5, "12"), r1Coeffs)
	sets, err := ReadAll(strings.NewReader(doc), Reaclib1)
	require.ErrorIs(t, err, ErrInvalidChapter)
	assert.Nil(t, sets, "partial results are discarded")
}

func TestReadAllReadError(t *testing.T) {
	boom := errors.New("boom")
	_, err := ReadAll(iotest.ErrReader(boom), Reaclib1)
	require.ErrorIs(t, err, ErrRead)
	require.ErrorIs(t, err, boom)
}

func TestToMapGroupsByReaction(t *testing.T) {
	resonant := setHeaderField(r1DecayHeader, 47, 48, "r")
	otherCoeffs := strings.Replace(r1DecayCoeffs, "-6.781610e+00", "-7.000000e+00", 1)
	doc := lines(
		r1DecayHeader, r1DecayCoeffs,
		r1Header, r1Coeffs,
		r1DecayHeader, otherCoeffs, // same reaction as the first record
		resonant, r1DecayCoeffs, // same nuclides, different flag
	)

	m, err := ToMap(strings.NewReader(doc), Reaclib1)
	require.NoError(t, err)
	require.Equal(t, 3, m.Len())

	reactions := m.Reactions()
	require.Len(t, reactions, 3)
	assert.Equal(t, "wc12", reactions[0].Label)
	assert.Equal(t, Weak, reactions[0].Resonance)
	assert.Equal(t, "ths8", reactions[1].Label)
	assert.Equal(t, Resonant, reactions[2].Resonance, "reactions keep first-seen order")

	decays := m.Sets(reactions[0])
	require.Len(t, decays, 2, "sets accumulate under one reaction")
	assert.Equal(t, -6.78161, decays[0].Coefficients[0])
	assert.Equal(t, -7.0, decays[1].Coefficients[0])

	assert.Nil(t, m.Sets(Reaction{Label: "none"}), "unseen reaction has no sets")
}

func TestToMapFailFast(t *testing.T) {
	doc := lines(r1DecayHeader, "short")
	m, err := ToMap(strings.NewReader(doc), Reaclib1)
	require.ErrorIs(t, err, ErrLineTooShort)
	assert.Nil(t, m)
}

func TestGroupKeyBoundaries(t *testing.T) {
	mk := func(reactants, products []Nuclide) Set {
		return Set{Reaction: Reaction{Reactants: reactants, Products: products, Resonance: NonResonant}}
	}
	// Same token sequence split differently must not collapse into one group.
	a := mk([]Nuclide{"n", "p"}, []Nuclide{"d"})
	b := mk([]Nuclide{"n"}, []Nuclide{"p", "d"})
	m := Group([]Set{a, b})
	require.Equal(t, 2, m.Len())

	rev := a
	rev.Reverse = true
	m = Group([]Set{a, rev})
	require.Equal(t, 2, m.Len())

	// Hand-built reactions can put separators inside labels or tokens;
	// they must not shift field boundaries.
	c := mk([]Nuclide{"n"}, []Nuclide{"p"})
	c.Label = "x\ny"
	d := mk([]Nuclide{"n"}, []Nuclide{"p", "x"})
	d.Label = "y"
	m = Group([]Set{c, d})
	require.Equal(t, 2, m.Len(), "label content leaked into the product list")

	e := mk([]Nuclide{"a\nb", "c"}, []Nuclide{"d"})
	f := mk([]Nuclide{"a", "b\nc"}, []Nuclide{"d"})
	m = Group([]Set{e, f})
	require.Equal(t, 2, m.Len(), "token content leaked across slots")

	if diff := cmp.Diff([]Set{e}, m.Sets(e.Reaction)); diff != "" {
		t.Errorf("grouped sets mismatch (-want +got):\n%s", diff)
	}
}

func TestToMapEmptyInput(t *testing.T) {
	m, err := ToMap(strings.NewReader(""), Reaclib1)
	require.NoError(t, err)
	assert.Equal(t, 0, m.Len())
	assert.Empty(t, m.Reactions())
}

func TestReadAllEOFOnly(t *testing.T) {
	it := NewIter(strings.NewReader(""), Reaclib1)
	_, err := it.Next()
	require.Equal(t, io.EOF, err, "end of input is reported as bare io.EOF")
}
