// core/motif/motif.go
package motif

import (
	"fmt"
	"strings"
)

// Motif is a fixed-width pattern, one Constraint per position. Its length is
// the window size of every scan.
type Motif []Constraint

// Validate checks that m is non-empty and every position accepts at least one
// base.
func (m Motif) Validate() error {
	if len(m) == 0 {
		return fmt.Errorf("%w: empty motif", ErrInvalidMotif)
	}
	for j, c := range m {
		if c == 0 {
			return fmt.Errorf("%w: position %d accepts no base", ErrInvalidMotif, j)
		}
		if !c.Valid() {
			return fmt.Errorf("%w: position %d has malformed set %#x", ErrInvalidMotif, j, uint8(c))
		}
	}
	return nil
}

// ReverseComplement returns the motif as it reads on the opposite strand.
func (m Motif) ReverseComplement() Motif {
	n := len(m)
	if n == 0 {
		return nil
	}
	out := make(Motif, n)
	for i := 0; i < n; i++ {
		out[i] = m[n-1-i].Complement()
	}
	return out
}

// String renders m in IUPAC letters, e.g. "ASNNCA".
func (m Motif) String() string {
	var b strings.Builder
	b.Grow(len(m))
	for _, c := range m {
		if c.Valid() {
			b.WriteByte(iupacCode[c])
		} else {
			b.WriteByte('?')
		}
	}
	return b.String()
}
