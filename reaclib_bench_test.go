package reaclib

import (
	"io"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func benchDoc(records int) string {
	var b strings.Builder
	for i := 0; i < records; i++ {
		b.WriteString(r1DecayHeader)
		b.WriteByte('\n')
		b.WriteString(r1DecayCoeffs)
		b.WriteByte('\n')
		b.WriteString(r1Header)
		b.WriteByte('\n')
		b.WriteString(r1Coeffs)
		b.WriteByte('\n')
	}
	return b.String()
}

func BenchmarkDecodeRecord(b *testing.B) {
	lay := layouts[Reaclib1]
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = decodeRecord(r1Header, r1Coeffs, 1, 2, lay)
	}
}

func BenchmarkIter(b *testing.B) {
	doc := benchDoc(256)
	b.SetBytes(int64(len(doc)))
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		it := NewIter(strings.NewReader(doc), Reaclib1)
		for {
			_, err := it.Next()
			if err == io.EOF {
				break
			}
			if err != nil {
				b.Fatal(err)
			}
		}
	}
}

func BenchmarkToMap(b *testing.B) {
	doc := benchDoc(256)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := ToMap(strings.NewReader(doc), Reaclib1); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkRate(b *testing.B) {
	s := decaySet()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = s.Rate(1.5)
	}
}

func BenchmarkYamlMarshal(b *testing.B) {
	s := decaySet()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = yaml.Marshal(s)
	}
}
