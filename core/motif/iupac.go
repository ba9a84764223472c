// core/motif/iupac.go
package motif

/* -------------------------- IUPAC lookup table -------------------------- */

var (
	iupacMask [256]Constraint // letter -> set; 0 = not a code
	iupacCode [16]byte        // set -> letter
)

func init() {
	set := func(c byte, bits Constraint) {
		iupacMask[c] = bits
		iupacCode[bits] = c
	}
	set('A', 1)       // 0001
	set('C', 2)       // 0010
	set('G', 4)       // 0100
	set('T', 8)       // 1000
	set('R', 1|4)     // A/G
	set('Y', 2|8)     // C/T
	set('S', 2|4)     // C/G
	set('W', 1|8)     // A/T
	set('K', 4|8)     // G/T
	set('M', 1|2)     // A/C
	set('B', 2|4|8)   // C/G/T
	set('D', 1|4|8)   // A/G/T
	set('H', 1|2|8)   // A/C/T
	set('V', 1|2|4)   // A/C/G
	set('N', 1|2|4|8) // any
}

// IUPAC returns the constraint for an upper-case IUPAC nucleotide code.
// Lower-case letters are not codes here; case policy belongs to the caller.
func IUPAC(code byte) (Constraint, bool) {
	c := iupacMask[code]
	return c, c != 0
}
