// core/nucleotide/mutation.go
package nucleotide

import "fmt"

// Mutation is a closed set of point edits: Insertion, Deletion and
// Substitution. The unexported method keeps other packages from adding cases.
type Mutation interface {
	mutation()
	fmt.Stringer
}

// Insertion adds one base.
type Insertion struct{}

// Deletion removes one base.
type Deletion struct{}

// Substitution replaces Before with After. Before == After is allowed and
// costs nothing.
type Substitution struct {
	Before Nucleotide
	After  Nucleotide
}

func (Insertion) mutation()    {}
func (Deletion) mutation()     {}
func (Substitution) mutation() {}

func (Insertion) String() string { return "ins" }
func (Deletion) String() string  { return "del" }
func (s Substitution) String() string {
	return fmt.Sprintf("sub(%v>%v)", s.Before, s.After)
}

const (
	IndelCost        = 5
	SubstitutionCost = 1
)

// Cost scores a single mutation: indels cost 5, a substitution costs 1 unless
// it leaves the base unchanged. A nil mutation, typed or not, panics.
func Cost(m Mutation) int {
	switch m := m.(type) {
	case Insertion, Deletion:
		return IndelCost
	case Substitution:
		return substitutionCost(m)
	case *Insertion:
		if m != nil {
			return IndelCost
		}
	case *Deletion:
		if m != nil {
			return IndelCost
		}
	case *Substitution:
		if m != nil {
			return substitutionCost(*m)
		}
	}
	panic(fmt.Sprintf("nucleotide: unknown mutation %T", m))
}

func substitutionCost(s Substitution) int {
	if s.Before == s.After {
		return 0
	}
	return SubstitutionCost
}

// TotalCost sums Cost over ms.
func TotalCost(ms []Mutation) int {
	total := 0
	for _, m := range ms {
		total += Cost(m)
	}
	return total
}
