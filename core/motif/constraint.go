// core/motif/constraint.go
package motif

import (
	"fmt"

	"nucmotif/core/nucleotide"
)

// Constraint is the set of bases one motif position accepts, stored as a mask
// over the nucleotide bits. The zero value is the empty set and never valid.
type Constraint uint8

const anyMask Constraint = Constraint(nucleotide.A | nucleotide.C | nucleotide.G | nucleotide.T)

// Any accepts every base.
func Any() Constraint { return anyMask }

// Exactly accepts only n.
func Exactly(n nucleotide.Nucleotide) Constraint { return Constraint(n) }

// Set builds a constraint from 1..4 distinct bases.
func Set(ns ...nucleotide.Nucleotide) (Constraint, error) {
	if len(ns) == 0 {
		return 0, fmt.Errorf("%w: empty base set", ErrInvalidMotif)
	}
	var c Constraint
	for _, n := range ns {
		if !n.Valid() {
			return 0, fmt.Errorf("%w: %v is not a base", ErrInvalidMotif, n)
		}
		if c&Constraint(n) != 0 {
			return 0, fmt.Errorf("%w: duplicate base %v in set", ErrInvalidMotif, n)
		}
		c |= Constraint(n)
	}
	return c, nil
}

// MustSet is Set for literals; it panics on a malformed set.
func MustSet(ns ...nucleotide.Nucleotide) Constraint {
	c, err := Set(ns...)
	if err != nil {
		panic(err)
	}
	return c
}

// Valid reports whether c is a non-empty subset of {A,C,G,T}.
func (c Constraint) Valid() bool { return c != 0 && c&^anyMask == 0 }

// IsAny reports whether c accepts every base.
func (c Constraint) IsAny() bool { return c == anyMask }

// Accepts reports whether base n satisfies c.
func (c Constraint) Accepts(n nucleotide.Nucleotide) bool {
	return n.Valid() && c&Constraint(n) != 0
}

// Members lists the accepted bases in A, C, G, T order.
func (c Constraint) Members() []nucleotide.Nucleotide {
	var out []nucleotide.Nucleotide
	for _, n := range nucleotide.All() {
		if c&Constraint(n) != 0 {
			out = append(out, n)
		}
	}
	return out
}

// Complement maps every member to its complementary base.
func (c Constraint) Complement() Constraint {
	var out Constraint
	for _, n := range c.Members() {
		out |= Constraint(nucleotide.Complement(n))
	}
	return out
}

// String renders c as its IUPAC letter.
func (c Constraint) String() string {
	if c.Valid() {
		return string(iupacCode[c])
	}
	return fmt.Sprintf("Constraint(%#x)", uint8(c))
}
