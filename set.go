package reaclib

import (
	"math"
	"slices"
	"strconv"
	"strings"
)

// NumCoefficients is the number of rate-fit parameters per set.
const NumCoefficients = 7

// Resonance distinguishes rate sets that share a reactant/product pattern.
// A blank flag column canonicalizes to NonResonant.
type Resonance string

const (
	NonResonant Resonance = "n"
	Resonant    Resonance = "r"
	Weak        Resonance = "w"
	ResonanceS  Resonance = "s" // undocumented flag seen in published tables
)

// parseResonance maps the trimmed flag column onto a Resonance.
func parseResonance(tok string) (Resonance, bool) {
	switch tok {
	case "", "n":
		return NonResonant, true
	case "r":
		return Resonant, true
	case "w":
		return Weak, true
	case "s":
		return ResonanceS, true
	}
	return "", false
}

// Reaction is the identity of a reaction: what goes in, what comes out, and
// the flags that distinguish otherwise identical rate sets. It is the
// grouping key for ReactionMap.
type Reaction struct {
	Reactants []Nuclide `json:"reactants" yaml:"reactants"`
	Products  []Nuclide `json:"products" yaml:"products"`
	Label     string    `json:"label" yaml:"label"`
	Resonance Resonance `json:"resonance" yaml:"resonance"`
	Reverse   bool      `json:"reverse" yaml:"reverse"`
}

// Equal reports structural equality, comparing the nuclide slices
// element-wise.
func (r Reaction) Equal(o Reaction) bool {
	return r.Label == o.Label &&
		r.Resonance == o.Resonance &&
		r.Reverse == o.Reverse &&
		slices.Equal(r.Reactants, o.Reactants) &&
		slices.Equal(r.Products, o.Products)
}

// key derives an injective string form usable as a map key. Every
// variable-length field is length-prefixed, so no token or label content
// can mimic a field boundary, even in hand-built values.
func (r Reaction) key() string {
	var b strings.Builder
	field := func(s string) {
		b.WriteString(strconv.Itoa(len(s)))
		b.WriteByte(':')
		b.WriteString(s)
	}
	b.WriteString(strconv.Itoa(len(r.Reactants)))
	b.WriteByte('|')
	for _, n := range r.Reactants {
		field(string(n))
	}
	for _, n := range r.Products {
		field(string(n))
	}
	field(r.Label)
	field(string(r.Resonance))
	if r.Reverse {
		b.WriteByte('v')
	}
	return b.String()
}

// Set is one decoded record: a reaction plus the chapter it came from, its
// Q-value in MeV and the seven fit coefficients.
type Set struct {
	Reaction     `yaml:",inline"`
	Chapter      Chapter                  `json:"chapter" yaml:"chapter"`
	QValue       float64                  `json:"q_value" yaml:"q_value"`
	Coefficients [NumCoefficients]float64 `json:"coefficients" yaml:"coefficients"`
}

// Rate evaluates the seven-parameter rate fit at temperature t9 (units of
// 10^9 K):
//
//	exp(a0 + a1/t9 + a2/t9^(1/3) + a3*t9^(1/3) + a4*t9 + a5*t9^(5/3) + a6*ln t9)
func (s Set) Rate(t9 float64) float64 {
	x := s.Coefficients[0]
	for i := 1; i <= 5; i++ {
		x += s.Coefficients[i] * math.Pow(t9, float64(2*i-5)/3)
	}
	x += s.Coefficients[6] * math.Log(t9)
	return math.Exp(x)
}
