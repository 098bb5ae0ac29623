package reaclib

import (
	"bufio"
	"fmt"
	"io"
)

// Iter streams Sets off a reader, two lines at a time. One goroutine per
// Iter; to restart, build a new one.
type Iter struct {
	sc   *bufio.Scanner
	lay  layout
	line int // last physical line handed out by read
	done bool
}

// NewIter returns an iterator decoding r under the given format. It panics
// on a nil reader or a format outside the known set, both programmer
// errors.
func NewIter(r io.Reader, format Format) *Iter {
	if r == nil {
		panic("reaclib: nil reader")
	}
	lay, ok := layouts[format]
	if !ok {
		panic("reaclib: unknown format " + string(format))
	}
	return &Iter{sc: bufio.NewScanner(r), lay: lay}
}

// Next produces the next record. Malformed records come back as a
// *DecodeError and the stream continues with the following line; only a
// reader failure or the end of input stop it. After the input is
// exhausted every call returns io.EOF.
func (it *Iter) Next() (Set, error) {
	if it.done {
		return Set{}, io.EOF
	}

	// Scan ahead to the header, skipping blank separator lines. They
	// still count toward line numbers.
	var header string
	var headerNo int
	for {
		line, ok, err := it.read()
		if err != nil {
			it.done = true
			return Set{}, errAt(it.line+1, fmt.Errorf("%w: %w", ErrRead, err))
		}
		if !ok {
			it.done = true
			return Set{}, io.EOF
		}
		if trim(line) == "" {
			continue
		}
		header, headerNo = line, it.line
		break
	}

	coeffs, ok, err := it.read()
	if err != nil {
		it.done = true
		return Set{}, errAt(it.line+1, fmt.Errorf("%w: %w", ErrRead, err))
	}
	if !ok {
		it.done = true
		return Set{}, errAt(headerNo, ErrUnexpectedEOF)
	}

	return decodeRecord(header, coeffs, headerNo, it.line, it.lay)
}

func (it *Iter) read() (string, bool, error) {
	if it.sc.Scan() {
		it.line++
		return it.sc.Text(), true, nil
	}
	if err := it.sc.Err(); err != nil {
		return "", false, err
	}
	return "", false, nil
}
