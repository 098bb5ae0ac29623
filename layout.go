package reaclib

// Header line, reaclib1:
//
//	0:5   chapter
//	5:35  six identifier slots, 5 wide
//	43:47 label
//	47:48 resonance flag
//	52:64 Q-value (MeV)
//
// Header line, reaclib2:
//
//	0:5   chapter
//	5:53  eight identifier slots, 6 wide
//	61:65 label
//	65:66 resonance flag
//	66:67 reverse flag ("v")
//	70:82 Q-value (MeV)
//
// Both formats follow the header with one coefficient line of seven
// 13-wide fields. Columns past the Q-value are ignored; everything else
// up to it must be present.

type span struct{ start, end int }

func (s span) empty() bool { return s.end == 0 }

// cut returns the trimmed field content. The caller has already checked
// the line is long enough.
func (s span) cut(line string) string {
	return trim(line[s.start:s.end])
}

const (
	coeffWidth   = 13
	coeffLineLen = coeffWidth * NumCoefficients
)

type layout struct {
	chapter   span
	slots     []span
	label     span
	resonance span
	reverse   span // zero when the format has no reverse column
	qValue    span
	headerLen int
	// looseFloats admits the FORTRAN exponent shorthand ("1.0d-3",
	// "7.83000-1") on Q-value and coefficient fields.
	looseFloats bool
}

var layouts = map[Format]layout{
	Reaclib1: {
		chapter:     span{0, 5},
		slots:       []span{{5, 10}, {10, 15}, {15, 20}, {20, 25}, {25, 30}, {30, 35}},
		label:       span{43, 47},
		resonance:   span{47, 48},
		qValue:      span{52, 64},
		headerLen:   64,
		looseFloats: true,
	},
	Reaclib2: {
		chapter:   span{0, 5},
		slots:     []span{{5, 11}, {11, 17}, {17, 23}, {23, 29}, {29, 35}, {35, 41}, {41, 47}, {47, 53}},
		label:     span{61, 65},
		resonance: span{65, 66},
		reverse:   span{66, 67},
		qValue:    span{70, 82},
		headerLen: 82,
	},
}
