// core/trilean/trilean.go
package trilean

import "fmt"

// Trilean is a three-valued truth value.
//
// The zero value is not a truth value: Not, And and Or are total over
// True, False and Maybe, and panic on anything else. Start from a constant
// or FromBool rather than a bare var declaration.
type Trilean uint8

const (
	False Trilean = iota + 1
	Maybe
	True
)

// All lists every Trilean value. Totality tests range over it.
func All() []Trilean { return []Trilean{True, False, Maybe} }

// FromBool lifts a two-valued bool.
func FromBool(b bool) Trilean {
	if b {
		return True
	}
	return False
}

// Valid reports whether t is one of True, False, Maybe.
func (t Trilean) Valid() bool {
	switch t {
	case True, False, Maybe:
		return true
	}
	return false
}

func (t Trilean) String() string {
	switch t {
	case True:
		return "true"
	case False:
		return "false"
	case Maybe:
		return "maybe"
	}
	return fmt.Sprintf("Trilean(%d)", uint8(t))
}

/* ------------------------------ operators ------------------------------- */

// Not swaps True and False; Maybe stays Maybe.
func Not(x Trilean) Trilean {
	switch x {
	case True:
		return False
	case False:
		return True
	case Maybe:
		return Maybe
	}
	panic(invalid(x))
}

// And is False if either side is False, else Maybe if either side is Maybe,
// else True.
func And(x, y Trilean) Trilean {
	mustValid(x)
	mustValid(y)
	switch {
	case x == False || y == False:
		return False
	case x == Maybe || y == Maybe:
		return Maybe
	default:
		return True
	}
}

// Or is True if either side is True, else Maybe if either side is Maybe,
// else False.
func Or(x, y Trilean) Trilean {
	mustValid(x)
	mustValid(y)
	switch {
	case x == True || y == True:
		return True
	case x == Maybe || y == Maybe:
		return Maybe
	default:
		return False
	}
}

func mustValid(t Trilean) {
	if !t.Valid() {
		panic(invalid(t))
	}
}

func invalid(t Trilean) string {
	return fmt.Sprintf("trilean: invalid value %d", uint8(t))
}
