package reaclib

// Chapter classifies a reaction by how many nuclides go in and come out.
// Valid chapters are 1 through 11.
type Chapter uint8

// Index 0 is unused; chapters count from 1.
var (
	chapterReactants = [12]uint8{0, 1, 1, 1, 2, 2, 2, 2, 3, 3, 4, 1}
	chapterProducts  = [12]uint8{0, 1, 2, 3, 1, 2, 3, 4, 1, 2, 2, 4}
)

func (c Chapter) Valid() bool { return c >= 1 && c <= 11 }

// chapterFromInt range-checks n before the uint8 conversion, which would
// otherwise fold values like 257 or -255 back into range.
func chapterFromInt(n int) (Chapter, bool) {
	if n < 1 || n > 11 {
		return 0, false
	}
	return Chapter(n), true
}

// NumReactants returns how many identifier slots hold reactants, 0 for an
// invalid chapter.
func (c Chapter) NumReactants() int {
	if !c.Valid() {
		return 0
	}
	return int(chapterReactants[c])
}

// NumProducts returns how many identifier slots hold products, 0 for an
// invalid chapter.
func (c Chapter) NumProducts() int {
	if !c.Valid() {
		return 0
	}
	return int(chapterProducts[c])
}
