// Package reaclib decodes the fixed-column reaction-rate table format used
// by nuclear astrophysics codes. Records arrive as two physical lines, a
// header naming the reaction and a line of seven rate-fit coefficients;
// Iter streams them one at a time and the collect helpers gather them into
// slices or groups keyed by reaction.
package reaclib

import (
	"fmt"
	"strings"

	"github.com/starkiln/reaclib/pkg/nuclide"
)

// Nuclide is re-exported so most callers only import this package.
type Nuclide = nuclide.Nuclide

// Format selects which of the two historical table layouts the input uses.
// Files do not self-describe; the caller has to know.
type Format string

const (
	Reaclib1 Format = "reaclib1"
	Reaclib2 Format = "reaclib2"
)

// ParseFormat maps user-facing format names, including the short aliases
// r1 and r2, onto a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "reaclib1", "r1":
		return Reaclib1, nil
	case "reaclib2", "r2":
		return Reaclib2, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}
