// Package nuclide validates the identifier tokens used by reaction-rate
// tables: bare particle names ("n", "p", "e-") or an element symbol
// followed by a mass number ("he4", "fe56").
package nuclide

import (
	"errors"
	"fmt"
	"strings"
)

var ErrNotNuclide = errors.New("not a nuclide")

// MaxLen is the widest token the wire format can carry.
const MaxLen = 5

// Nuclide is a validated, canonical (lower-case) identifier token.
type Nuclide string

// particles are the bare tokens that do not follow the symbol+mass grammar.
var particles = map[string]struct{}{
	"n":  {}, // neutron
	"p":  {}, // proton
	"d":  {}, // deuteron
	"t":  {}, // triton
	"g":  {}, // photon
	"e-": {},
	"e+": {},
}

// Parse canonicalizes s to lower case and checks it against the grammar.
// A token is either a particle name or an element symbol immediately
// followed by a 1-3 digit mass number with no leading zero.
func Parse(s string) (Nuclide, error) {
	tok := strings.ToLower(strings.TrimSpace(s))
	if tok == "" {
		return "", fmt.Errorf("%w: empty token", ErrNotNuclide)
	}
	if len(tok) > MaxLen {
		return "", fmt.Errorf("%w: %q", ErrNotNuclide, s)
	}
	if _, ok := particles[tok]; ok {
		return Nuclide(tok), nil
	}
	i := 0
	for i < len(tok) && tok[i] >= 'a' && tok[i] <= 'z' {
		i++
	}
	sym, mass := tok[:i], tok[i:]
	if _, ok := elements[sym]; !ok {
		return "", fmt.Errorf("%w: %q", ErrNotNuclide, s)
	}
	if len(mass) == 0 || len(mass) > 3 || mass[0] == '0' {
		return "", fmt.Errorf("%w: %q", ErrNotNuclide, s)
	}
	for j := 0; j < len(mass); j++ {
		if mass[j] < '0' || mass[j] > '9' {
			return "", fmt.Errorf("%w: %q", ErrNotNuclide, s)
		}
	}
	return Nuclide(tok), nil
}

func (n Nuclide) String() string { return string(n) }
