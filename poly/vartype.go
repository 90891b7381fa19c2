package poly

import "fmt"

// Describes the two variable domains a polynomial can be defined over.

// A Vartype identifies the domain of the variables of a polynomial.
type Vartype byte

const (
	// Spin means variables take their values in {-1, +1}.
	Spin = Vartype(iota + 1)
	// Boolean means variables take their values in {0, 1}.
	Boolean
)

// ErrInvalidVartype is returned when constructing a polynomial with a
// vartype that is neither Spin nor Boolean.
var ErrInvalidVartype = fmt.Errorf("vartype must be Spin or Boolean")

func (vt Vartype) valid() bool {
	return vt == Spin || vt == Boolean
}

func (vt Vartype) String() string {
	switch vt {
	case Spin:
		return "SPIN"
	case Boolean:
		return "BOOLEAN"
	default:
		return fmt.Sprintf("Vartype(%d)", byte(vt))
	}
}
