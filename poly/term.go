package poly

import (
	"sort"
	"strconv"
	"strings"
)

// A Term is an unordered set of variable names, i.e a monomial of the
// polynomial. The zero value is the empty term, whose bias acts as a
// constant offset. Terms are immutable: they are created once through
// NewTerm and shared freely afterwards.
type Term struct {
	vars []string // sorted, no duplicate
	key  string
}

// NewTerm returns the canonical term over the given variables.
// Order and multiplicity are irrelevant: NewTerm("a", "b", "a") and
// NewTerm("b", "a") designate the same term.
func NewTerm(vars ...string) Term {
	if len(vars) == 0 {
		return Term{}
	}
	sorted := make([]string, len(vars))
	copy(sorted, vars)
	sort.Strings(sorted)
	j := 0
	for i := 1; i < len(sorted); i++ {
		if sorted[i] != sorted[j] {
			j++
			sorted[j] = sorted[i]
		}
	}
	sorted = sorted[:j+1]
	return Term{vars: sorted, key: termKey(sorted)}
}

// termKey builds an injective encoding of a sorted variable list, so that
// terms can be used as map keys. Each name is length-prefixed: names
// containing any separator character cannot create collisions.
func termKey(sorted []string) string {
	var bldr strings.Builder
	for _, v := range sorted {
		bldr.WriteString(strconv.Itoa(len(v)))
		bldr.WriteByte(':')
		bldr.WriteString(v)
	}
	return bldr.String()
}

// Degree returns the number of variables of the term.
func (t Term) Degree() int {
	return len(t.vars)
}

// Vars returns the variables of the term, sorted.
func (t Term) Vars() []string {
	res := make([]string, len(t.vars))
	copy(res, t.vars)
	return res
}

// Contains indicates whether v is one of the term's variables.
func (t Term) Contains(v string) bool {
	i := sort.SearchStrings(t.vars, v)
	return i < len(t.vars) && t.vars[i] == v
}

// Equal indicates whether t and other are the same set of variables.
func (t Term) Equal(other Term) bool {
	return t.key == other.key
}

func (t Term) String() string {
	return "(" + strings.Join(t.vars, " ") + ")"
}

// relabeled returns the term rewritten through the given name mapping.
// Names absent from the mapping are kept as is.
func (t Term) relabeled(mapping map[string]string) Term {
	if len(t.vars) == 0 {
		return t
	}
	vars := make([]string, len(t.vars))
	for i, v := range t.vars {
		if nv, ok := mapping[v]; ok {
			vars[i] = nv
		} else {
			vars[i] = v
		}
	}
	return NewTerm(vars...)
}
