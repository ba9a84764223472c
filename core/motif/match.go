// core/motif/match.go
package motif

import "nucmotif/core/nucleotide"

/* ----------------------- types --------------------- */

// Hit is one window accepted by a mismatch-tolerant scan.
type Hit struct {
	Pos         int
	Mismatches  int
	MismatchIdx []int // 0-based motif positions that did not accept
}

/* --------------------------- exact scan -------------------------- */

// FindAll returns every offset at which m matches seq, ascending. Matches may
// overlap. A sequence shorter than the motif yields no offsets and no error.
func FindAll(seq nucleotide.Sequence, m Motif) ([]int, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return scanRange(seq, m, 0, len(seq)-len(m), 0), nil
}

// Exists reports whether m matches anywhere in seq, stopping at the first hit.
func Exists(seq nucleotide.Sequence, m Motif) (bool, error) {
	if err := m.Validate(); err != nil {
		return false, err
	}
	return len(scanRange(seq, m, 0, len(seq)-len(m), 1)) > 0, nil
}

// scanRange checks windows starting at lo..hi inclusive. capHits == 0 means
// unlimited. m must already be validated.
func scanRange(seq nucleotide.Sequence, m Motif, lo, hi, capHits int) []int {
	if hi < lo || lo < 0 {
		return nil
	}
	var out []int
	for pos := lo; pos <= hi; pos++ {
		if !matchAt(seq, m, pos) {
			continue
		}
		out = append(out, pos)
		if capHits > 0 && len(out) >= capHits {
			break
		}
	}
	return out
}

func matchAt(seq nucleotide.Sequence, m Motif, pos int) bool {
	for j, c := range m {
		if !c.Accepts(seq[pos+j]) {
			return false
		}
	}
	return true
}

/* ---------------------- mismatch-tolerant scan ---------------------- */

// FindMismatches returns every window with at most maxMM rejected positions.
// With maxMM == 0 the offsets are exactly those of FindAll.
func FindMismatches(seq nucleotide.Sequence, m Motif, maxMM int) ([]Hit, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	if maxMM < 0 {
		return nil, ErrNegativeMismatches
	}
	w := len(m)
	end := len(seq) - w
	if end < 0 {
		return nil, nil
	}
	out := make([]Hit, 0, 8)

window:
	for pos := 0; pos <= end; pos++ {
		mm := 0
		var idx []int
		for j := 0; j < w; j++ {
			if !m[j].Accepts(seq[pos+j]) {
				mm++
				if mm > maxMM {
					continue window
				}
				idx = append(idx, j)
			}
		}
		out = append(out, Hit{Pos: pos, Mismatches: mm, MismatchIdx: idx})
	}
	return out, nil
}
