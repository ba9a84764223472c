// core/alphabet/parse.go
package alphabet

import (
	"errors"
	"fmt"
	"unicode"

	"nucmotif/core/motif"
	"nucmotif/core/nucleotide"
)

// ErrInvalidAlphabetSymbol marks input that is not a symbol of the alphabet.
var ErrInvalidAlphabetSymbol = errors.New("alphabet: invalid symbol")

// SymbolError reports the offending symbol and its 1-based position in the
// raw input.
type SymbolError struct {
	Pos    int
	Symbol rune
}

func (e *SymbolError) Error() string {
	return fmt.Sprintf("alphabet: invalid symbol %q at %d", e.Symbol, e.Pos)
}

func (e *SymbolError) Unwrap() error { return ErrInvalidAlphabetSymbol }

// CasePolicy decides whether lower-case letters are accepted.
type CasePolicy int

const (
	// CaseStrict rejects lower-case letters. Soft-masked input must be
	// upper-cased by the caller on purpose.
	CaseStrict CasePolicy = iota
	// CaseFold treats lower-case letters as their upper-case base.
	CaseFold
)

func (p CasePolicy) apply(r rune) rune {
	if p == CaseFold {
		return unicode.ToUpper(r)
	}
	return r
}

// skippable reports runes ignored between symbols: whitespace and quotes.
func skippable(r rune) bool {
	return unicode.IsSpace(r) || r == '\'' || r == '"'
}

func base(r rune) (nucleotide.Nucleotide, bool) {
	switch r {
	case 'A':
		return nucleotide.A, true
	case 'C':
		return nucleotide.C, true
	case 'G':
		return nucleotide.G, true
	case 'T':
		return nucleotide.T, true
	}
	return 0, false
}

// ParseSequence translates raw text into bases. Whitespace and quotes are
// skipped; anything else must be A, C, G or T under the given policy.
func ParseSequence(raw string, policy CasePolicy) (nucleotide.Sequence, error) {
	out := make(nucleotide.Sequence, 0, len(raw))
	pos := 0
	for _, r := range raw {
		pos++
		if skippable(r) {
			continue
		}
		n, ok := base(policy.apply(r))
		if !ok {
			return nil, &SymbolError{Pos: pos, Symbol: r}
		}
		out = append(out, n)
	}
	return out, nil
}

// ParseMotif translates a pattern such as "A[CG]NNCA" into a Motif. Each
// position is an IUPAC code (N = any base) or a bracketed list of distinct
// bases. Unknown letters are ErrInvalidAlphabetSymbol; structural problems
// (empty pattern, empty or unterminated class, repeated base) are
// motif.ErrInvalidMotif.
func ParseMotif(raw string, policy CasePolicy) (motif.Motif, error) {
	var (
		out     motif.Motif
		inClass bool
		class   []nucleotide.Nucleotide
		open    int
	)
	pos := 0
	for _, r := range raw {
		pos++
		if skippable(r) {
			continue
		}
		r = policy.apply(r)
		switch {
		case r == '[':
			if inClass {
				return nil, fmt.Errorf("%w: nested '[' at %d", motif.ErrInvalidMotif, pos)
			}
			inClass, class, open = true, class[:0], pos
		case r == ']':
			if !inClass {
				return nil, fmt.Errorf("%w: unmatched ']' at %d", motif.ErrInvalidMotif, pos)
			}
			c, err := motif.Set(class...)
			if err != nil {
				return nil, fmt.Errorf("class at %d: %w", open, err)
			}
			out = append(out, c)
			inClass = false
		case inClass:
			n, ok := base(r)
			if !ok {
				return nil, &SymbolError{Pos: pos, Symbol: r}
			}
			class = append(class, n)
		default:
			if r > unicode.MaxASCII {
				return nil, &SymbolError{Pos: pos, Symbol: r}
			}
			c, ok := motif.IUPAC(byte(r))
			if !ok {
				return nil, &SymbolError{Pos: pos, Symbol: r}
			}
			out = append(out, c)
		}
	}
	if inClass {
		return nil, fmt.Errorf("%w: unterminated class at %d", motif.ErrInvalidMotif, open)
	}
	if err := out.Validate(); err != nil {
		return nil, err
	}
	return out, nil
}
