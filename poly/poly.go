package poly

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// ErrTermNotFound is returned when removing a term that is not part of the
// polynomial.
var ErrTermNotFound = fmt.Errorf("term not found")

// A TermBias associates a term with its bias. Slices of TermBias are the
// common exchange form for construction and conversion: they play the role
// of both a list of (term, bias) pairs and a term-to-bias mapping.
type TermBias struct {
	Term Term
	Bias float64
}

// A Polynomial is a mutable mapping from terms to biases over a fixed
// variable domain. Each distinct term appears at most once; terms are kept
// in insertion order. A Polynomial is not safe for concurrent use.
type Polynomial struct {
	vartype Vartype
	biases  map[string]float64
	terms   map[string]Term
	order   []string
}

// New returns an empty polynomial over the given domain.
func New(vt Vartype) (*Polynomial, error) {
	if !vt.valid() {
		return nil, fmt.Errorf("%w, got %s", ErrInvalidVartype, vt)
	}
	return &Polynomial{
		vartype: vt,
		biases:  make(map[string]float64),
		terms:   make(map[string]Term),
	}, nil
}

// FromTerms returns the polynomial over the given domain holding the given
// terms. When the same term appears several times, its biases are summed.
func FromTerms(vt Vartype, terms []TermBias) (*Polynomial, error) {
	p, err := New(vt)
	if err != nil {
		return nil, err
	}
	for _, tb := range terms {
		p.AddBias(tb.Term, tb.Bias)
	}
	return p, nil
}

// Vartype returns the domain the polynomial is defined over.
func (p *Polynomial) Vartype() Vartype {
	return p.vartype
}

// Len returns the number of distinct terms.
func (p *Polynomial) Len() int {
	return len(p.biases)
}

// Contains indicates whether the term has a bias in the polynomial.
func (p *Polynomial) Contains(t Term) bool {
	_, ok := p.biases[t.key]
	return ok
}

// Bias returns the bias of the given term, and whether the term is part of
// the polynomial at all.
func (p *Polynomial) Bias(t Term) (float64, bool) {
	bias, ok := p.biases[t.key]
	return bias, ok
}

// SetBias sets the bias of the term, replacing any previous value.
func (p *Polynomial) SetBias(t Term, bias float64) {
	if _, ok := p.biases[t.key]; !ok {
		p.order = append(p.order, t.key)
		p.terms[t.key] = t
	}
	p.biases[t.key] = bias
}

// AddBias adds the given bias to the term's current one, inserting the term
// if it was absent.
func (p *Polynomial) AddBias(t Term, bias float64) {
	if _, ok := p.biases[t.key]; !ok {
		p.order = append(p.order, t.key)
		p.terms[t.key] = t
	}
	p.biases[t.key] += bias
}

// Remove deletes the term from the polynomial.
// It returns ErrTermNotFound if the term was not part of it.
func (p *Polynomial) Remove(t Term) error {
	if _, ok := p.biases[t.key]; !ok {
		return fmt.Errorf("%w: %s", ErrTermNotFound, t)
	}
	delete(p.biases, t.key)
	delete(p.terms, t.key)
	for i, k := range p.order {
		if k == t.key {
			p.order = append(p.order[:i], p.order[i+1:]...)
			break
		}
	}
	return nil
}

// Terms returns all terms, in insertion order. The order is not guaranteed
// to survive a relabeling.
func (p *Polynomial) Terms() []Term {
	res := make([]Term, 0, len(p.order))
	for _, k := range p.order {
		res = append(res, p.terms[k])
	}
	return res
}

// Each calls fn on every (term, bias) pair in insertion order, stopping
// early if fn returns false.
func (p *Polynomial) Each(fn func(t Term, bias float64) bool) {
	for _, k := range p.order {
		if !fn(p.terms[k], p.biases[k]) {
			return
		}
	}
}

// Variables returns the union of the variables of all terms, sorted.
func (p *Polynomial) Variables() []string {
	set := p.variableSet()
	res := make([]string, 0, len(set))
	for v := range set {
		res = append(res, v)
	}
	sort.Strings(res)
	return res
}

func (p *Polynomial) variableSet() map[string]struct{} {
	set := make(map[string]struct{})
	for _, t := range p.terms {
		for _, v := range t.vars {
			set[v] = struct{}{}
		}
	}
	return set
}

// Degree returns the size of the largest term, 0 if the polynomial is
// empty or only holds a constant offset.
func (p *Polynomial) Degree() int {
	deg := 0
	for _, t := range p.terms {
		if len(t.vars) > deg {
			deg = len(t.vars)
		}
	}
	return deg
}

// Copy returns an independent copy of the polynomial. Terms are immutable,
// so they are shared between the copies.
func (p *Polynomial) Copy() *Polynomial {
	cp := &Polynomial{
		vartype: p.vartype,
		biases:  make(map[string]float64, len(p.biases)),
		terms:   make(map[string]Term, len(p.terms)),
		order:   make([]string, len(p.order)),
	}
	for k, b := range p.biases {
		cp.biases[k] = b
		cp.terms[k] = p.terms[k]
	}
	copy(cp.order, p.order)
	return cp
}

// Equal indicates whether both polynomials have the same vartype and
// exactly the same term-to-bias mapping.
func (p *Polynomial) Equal(other *Polynomial) bool {
	if other == nil || p.vartype != other.vartype || len(p.biases) != len(other.biases) {
		return false
	}
	for k, b := range p.biases {
		if ob, ok := other.biases[k]; !ok || ob != b {
			return false
		}
	}
	return true
}

// EqualTerms indicates whether the polynomial equals the one that would be
// constructed from the given pairs over the same vartype. Aggregation
// applies to the pairs first, so duplicate terms on the right-hand side are
// summed before comparing.
func (p *Polynomial) EqualTerms(terms []TermBias) bool {
	other, err := FromTerms(p.vartype, terms)
	if err != nil {
		return false
	}
	return p.Equal(other)
}

func (p *Polynomial) String() string {
	var bldr strings.Builder
	bldr.WriteString(p.vartype.String())
	bldr.WriteString("{")
	for i, k := range p.order {
		if i > 0 {
			bldr.WriteString(", ")
		}
		bldr.WriteString(p.terms[k].String())
		bldr.WriteString(": ")
		bldr.WriteString(strconv.FormatFloat(p.biases[k], 'g', -1, 64))
	}
	bldr.WriteString("}")
	return bldr.String()
}
