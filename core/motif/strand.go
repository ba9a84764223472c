// core/motif/strand.go
package motif

import (
	"sort"

	"nucmotif/core/nucleotide"
)

// Strand tells which strand a hit was read from.
type Strand byte

const (
	Plus  Strand = '+'
	Minus Strand = '-'
)

func (s Strand) String() string { return string(s) }

// StrandHit is a Hit on either strand. Pos is always a plus-strand offset:
// for Minus hits it is where the reverse-complemented motif starts in seq.
type StrandHit struct {
	Hit
	Strand Strand
}

// FindStrands scans seq with m and with m's reverse complement, allowing up to
// maxMM mismatches. Hits are ordered by Pos, then Plus before Minus. A
// palindromic motif reports each site on both strands.
func FindStrands(seq nucleotide.Sequence, m Motif, maxMM int) ([]StrandHit, error) {
	plus, err := FindMismatches(seq, m, maxMM)
	if err != nil {
		return nil, err
	}
	minus, err := FindMismatches(seq, m.ReverseComplement(), maxMM)
	if err != nil {
		return nil, err
	}
	out := make([]StrandHit, 0, len(plus)+len(minus))
	for _, h := range plus {
		out = append(out, StrandHit{Hit: h, Strand: Plus})
	}
	for _, h := range minus {
		out = append(out, StrandHit{Hit: h, Strand: Minus})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Pos != out[j].Pos {
			return out[i].Pos < out[j].Pos
		}
		return out[i].Strand == Plus && out[j].Strand == Minus
	})
	return out, nil
}

// BestHit returns the hit with the fewest mismatches on either strand, then
// the leftmost, then Plus. ok is false when nothing is within maxMM.
func BestHit(seq nucleotide.Sequence, m Motif, maxMM int) (best StrandHit, ok bool, err error) {
	hits, err := FindStrands(seq, m, maxMM)
	if err != nil {
		return StrandHit{}, false, err
	}
	for _, h := range hits {
		// hits are already position/strand ordered, so strict < keeps the first.
		if !ok || h.Mismatches < best.Mismatches {
			best, ok = h, true
		}
	}
	return best, ok, nil
}
