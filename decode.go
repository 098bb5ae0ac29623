package reaclib

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/starkiln/reaclib/pkg/nuclide"
)

const fieldCutset = " \t"

func trim(s string) string { return strings.Trim(s, fieldCutset) }

// rtrim drops trailing padding so it never counts toward the coefficient
// line's length.
func rtrim(s string) string { return strings.TrimRight(s, fieldCutset) }

// normalizeExponent rewrites the FORTRAN exponent shorthand into standard
// notation: "1.0d-3" -> "1.0e-3", "7.83000-1" -> "7.83000e-1". Tokens
// already in standard notation pass through untouched.
func normalizeExponent(tok string) string {
	if i := strings.IndexAny(tok, "dD"); i >= 0 {
		return tok[:i] + "e" + tok[i+1:]
	}
	if strings.ContainsAny(tok, "eE") {
		return tok
	}
	if i := strings.LastIndexAny(tok, "+-"); i > 0 {
		return tok[:i] + "e" + tok[i:]
	}
	return tok
}

func parseFloat(tok string, loose bool) (float64, error) {
	if loose {
		tok = normalizeExponent(tok)
	}
	return strconv.ParseFloat(tok, 64)
}

// decodeHeader parses the first line of a record into everything but the
// coefficients. The length gate runs on the raw line: a blank field inside
// a full-width header fails its own field parser, not this check.
func decodeHeader(line string, lineNo int, lay layout) (Set, error) {
	if len(line) < lay.headerLen {
		return Set{}, errAt(lineNo, fmt.Errorf("%w: header is %d columns, want %d", ErrLineTooShort, len(line), lay.headerLen))
	}

	// 1) Chapter
	tok := lay.chapter.cut(line)
	n, err := strconv.Atoi(tok)
	if err != nil {
		return Set{}, errAt(lineNo, fmt.Errorf("%w: %q", ErrInvalidChapter, tok))
	}
	chapter, ok := chapterFromInt(n)
	if !ok {
		return Set{}, errAt(lineNo, fmt.Errorf("%w: %d", ErrInvalidChapter, n))
	}

	// 2) Identifier slots: the chapter dictates which slots are populated.
	nr, np := chapter.NumReactants(), chapter.NumProducts()
	nuclides := make([]Nuclide, 0, nr+np)
	for i, sp := range lay.slots {
		tok := sp.cut(line)
		switch {
		case i < nr+np && tok == "":
			return Set{}, errAt(lineNo, fmt.Errorf("%w: slot %d is blank", ErrUnexpectedIdentifier, i))
		case i >= nr+np && tok != "":
			return Set{}, errAt(lineNo, fmt.Errorf("%w: %q in unused slot %d", ErrUnexpectedIdentifier, tok, i))
		case tok == "":
			continue
		}
		nuc, err := nuclide.Parse(tok)
		if err != nil {
			return Set{}, errAt(lineNo, fmt.Errorf("%w: %q", ErrUnknownNuclide, tok))
		}
		nuclides = append(nuclides, nuc)
	}

	// 3) Label and flags
	resTok := lay.resonance.cut(line)
	res, ok := parseResonance(resTok)
	if !ok {
		return Set{}, errAt(lineNo, fmt.Errorf("%w: %q", ErrUnknownResonance, resTok))
	}
	reverse := false
	if !lay.reverse.empty() {
		reverse = lay.reverse.cut(line) == "v"
	}

	// 4) Q-value
	qTok := lay.qValue.cut(line)
	q, err := parseFloat(qTok, lay.looseFloats)
	if err != nil {
		return Set{}, errAt(lineNo, fmt.Errorf("%w: q-value %q", ErrInvalidNumber, qTok))
	}

	return Set{
		Reaction: Reaction{
			Reactants: nuclides[:nr:nr],
			Products:  nuclides[nr:],
			Label:     lay.label.cut(line),
			Resonance: res,
			Reverse:   reverse,
		},
		Chapter: chapter,
		QValue:  q,
	}, nil
}

// decodeCoefficients parses the second line of a record into s.
func decodeCoefficients(line string, lineNo int, lay layout, s *Set) error {
	line = rtrim(line)
	switch l := len(line); {
	case l > coeffLineLen:
		got := (l + coeffWidth - 1) / coeffWidth
		return errAt(lineNo, fmt.Errorf("%w: got %d coefficients, want %d", ErrCoefficientCount, got, NumCoefficients))
	case l < coeffLineLen && l%coeffWidth == 0:
		return errAt(lineNo, fmt.Errorf("%w: got %d coefficients, want %d", ErrCoefficientCount, l/coeffWidth, NumCoefficients))
	case l < coeffLineLen:
		return errAt(lineNo, fmt.Errorf("%w: coefficient line is %d columns, want %d", ErrLineTooShort, l, coeffLineLen))
	}
	for i := 0; i < NumCoefficients; i++ {
		tok := span{i * coeffWidth, (i + 1) * coeffWidth}.cut(line)
		v, err := parseFloat(tok, lay.looseFloats)
		if err != nil {
			return errAt(lineNo, fmt.Errorf("%w: coefficient %d %q", ErrInvalidNumber, i+1, tok))
		}
		s.Coefficients[i] = v
	}
	return nil
}

func decodeRecord(header, coeffs string, headerNo, coeffNo int, lay layout) (Set, error) {
	s, err := decodeHeader(header, headerNo, lay)
	if err != nil {
		return Set{}, err
	}
	if err := decodeCoefficients(coeffs, coeffNo, lay, &s); err != nil {
		return Set{}, err
	}
	return s, nil
}
