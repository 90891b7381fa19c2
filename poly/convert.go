package poly

import (
	"fmt"
	"math"
)

// Converters between the generic term/bias mapping and the decomposition
// into {linear biases, higher-order biases, constant offset} used by most
// solver APIs.

// FromIsing returns the Spin polynomial assembled from linear biases h,
// pairwise or higher-order biases j, and a constant offset.
func FromIsing(h map[string]float64, j []TermBias, offset float64) *Polynomial {
	p, _ := New(Spin)
	for v, bias := range h {
		p.AddBias(NewTerm(v), bias)
	}
	for _, tb := range j {
		p.AddBias(tb.Term, tb.Bias)
	}
	if offset != 0 {
		p.AddBias(Term{}, offset)
	}
	return p
}

// ToIsing decomposes the polynomial into linear biases, higher-order
// biases and a constant offset. It is the inverse of FromIsing.
func (p *Polynomial) ToIsing() (h map[string]float64, j []TermBias, offset float64) {
	h = make(map[string]float64)
	for _, k := range p.order {
		t, bias := p.terms[k], p.biases[k]
		switch t.Degree() {
		case 0:
			offset += bias
		case 1:
			h[t.vars[0]] = bias
		default:
			j = append(j, TermBias{Term: t, Bias: bias})
		}
	}
	return h, j, offset
}

// FromHubo returns the Boolean polynomial assembled from the given
// higher-order terms and a constant offset.
func FromHubo(terms []TermBias, offset float64) *Polynomial {
	p, _ := New(Boolean)
	for _, tb := range terms {
		p.AddBias(tb.Term, tb.Bias)
	}
	if offset != 0 {
		p.AddBias(Term{}, offset)
	}
	return p
}

// ToHubo decomposes the polynomial into its non-constant terms and a
// constant offset. It is the inverse of FromHubo.
func (p *Polynomial) ToHubo() (terms []TermBias, offset float64) {
	for _, k := range p.order {
		t, bias := p.terms[k], p.biases[k]
		if t.Degree() == 0 {
			offset += bias
			continue
		}
		terms = append(terms, TermBias{Term: t, Bias: bias})
	}
	return terms, offset
}

// maxConvertDegree bounds the subset expansion of ChangeVartype.
const maxConvertDegree = 30

// ChangeVartype returns an equivalent polynomial over the given domain.
// Converting between domains substitutes s = 2x-1 (or x = (s+1)/2) in every
// term and expands the product, so the result may hold more terms than the
// original; energies on corresponding assignments are unchanged. When the
// target domain is the current one, ChangeVartype is a plain copy.
func (p *Polynomial) ChangeVartype(vt Vartype) (*Polynomial, error) {
	if !vt.valid() {
		return nil, fmt.Errorf("%w, got %s", ErrInvalidVartype, vt)
	}
	if vt == p.vartype {
		return p.Copy(), nil
	}
	res, _ := New(vt)
	for _, k := range p.order {
		t, bias := p.terms[k], p.biases[k]
		d := len(t.vars)
		if d > maxConvertDegree {
			return nil, fmt.Errorf("cannot convert term %s: degree %d is too large to expand", t, d)
		}
		for mask := 0; mask < 1<<d; mask++ {
			subset := make([]string, 0, d)
			for i, v := range t.vars {
				if mask&(1<<i) != 0 {
					subset = append(subset, v)
				}
			}
			var coeff float64
			if vt == Boolean {
				// product of (2x-1) over the term
				coeff = bias * math.Ldexp(1, len(subset))
				if (d-len(subset))%2 == 1 {
					coeff = -coeff
				}
			} else {
				// product of (s+1)/2 over the term
				coeff = bias * math.Ldexp(1, -d)
			}
			res.AddBias(NewTerm(subset...), coeff)
		}
	}
	return res, nil
}
