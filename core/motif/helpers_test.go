package motif

import (
	"math/rand"

	"nucmotif/core/nucleotide"
)

// seqOf builds a sequence from upper-case ACGT letters.
func seqOf(s string) nucleotide.Sequence {
	out := make(nucleotide.Sequence, len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case 'A':
			out[i] = nucleotide.A
		case 'C':
			out[i] = nucleotide.C
		case 'G':
			out[i] = nucleotide.G
		case 'T':
			out[i] = nucleotide.T
		default:
			panic("seqOf: bad base " + string(s[i]))
		}
	}
	return out
}

// motifOf builds a motif from IUPAC letters.
func motifOf(s string) Motif {
	out := make(Motif, len(s))
	for i := 0; i < len(s); i++ {
		c, ok := IUPAC(s[i])
		if !ok {
			panic("motifOf: bad code " + string(s[i]))
		}
		out[i] = c
	}
	return out
}

func randomSeq(r *rand.Rand, n int) nucleotide.Sequence {
	all := nucleotide.All()
	out := make(nucleotide.Sequence, n)
	for i := range out {
		out[i] = all[r.Intn(len(all))]
	}
	return out
}

func randomMotif(r *rand.Rand, n int) Motif {
	out := make(Motif, n)
	for i := range out {
		out[i] = Constraint(1 + r.Intn(15))
	}
	return out
}

// naive is the reference definition the scanners are checked against.
func naive(seq nucleotide.Sequence, m Motif) []int {
	var out []int
	for i := 0; i+len(m) <= len(seq); i++ {
		ok := true
		for j := range m {
			if !m[j].Accepts(seq[i+j]) {
				ok = false
				break
			}
		}
		if ok {
			out = append(out, i)
		}
	}
	return out
}
