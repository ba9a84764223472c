// core/nucleotide/sequence.go
package nucleotide

// Sequence is an ordered run of bases, 0-indexed.
type Sequence []Nucleotide

// ReverseComplement returns a new sequence read 5'→3' on the opposite strand.
// The receiver is left untouched.
func (s Sequence) ReverseComplement() Sequence {
	n := len(s)
	if n == 0 {
		return nil
	}
	out := make(Sequence, n)
	for i := 0; i < n; i++ {
		out[i] = Complement(s[n-1-i])
	}
	return out
}

// Valid reports whether every element is a real base.
func (s Sequence) Valid() bool {
	for _, n := range s {
		if !n.Valid() {
			return false
		}
	}
	return true
}

func (s Sequence) String() string {
	b := make([]byte, len(s))
	for i, n := range s {
		c := n.Byte()
		if c == 0 {
			c = '?'
		}
		b[i] = c
	}
	return string(b)
}
