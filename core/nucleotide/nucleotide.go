// core/nucleotide/nucleotide.go
package nucleotide

import "fmt"

// Nucleotide is one of the four DNA bases. Each base is a single bit so that
// sets of bases (see package motif) are plain masks: bit0=A bit1=C bit2=G bit3=T.
type Nucleotide uint8

const (
	A Nucleotide = 1 << iota
	C
	G
	T
)

// All lists the four bases in A, C, G, T order.
func All() []Nucleotide { return []Nucleotide{A, C, G, T} }

// Valid reports whether n is exactly one of A, C, G, T.
func (n Nucleotide) Valid() bool {
	switch n {
	case A, C, G, T:
		return true
	}
	return false
}

// Byte returns the upper-case letter for n, or 0 if n is not valid.
func (n Nucleotide) Byte() byte {
	switch n {
	case A:
		return 'A'
	case C:
		return 'C'
	case G:
		return 'G'
	case T:
		return 'T'
	}
	return 0
}

func (n Nucleotide) String() string {
	if b := n.Byte(); b != 0 {
		return string(b)
	}
	return fmt.Sprintf("Nucleotide(%d)", uint8(n))
}

// Complement pairs A with T and C with G.
func Complement(n Nucleotide) Nucleotide {
	switch n {
	case A:
		return T
	case T:
		return A
	case C:
		return G
	case G:
		return C
	}
	panic(fmt.Sprintf("nucleotide: invalid value %d", uint8(n)))
}
