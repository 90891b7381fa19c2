package poly

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/crillab/gophobo/samples"
)

// ErrMissingVariable is returned when an assignment does not bind a
// variable that appears in a term of the polynomial.
var ErrMissingVariable = fmt.Errorf("variable not bound by assignment")

// Energies computes the energy of every sample of the batch.
//
// The result has one entry per sample: the sum over all terms of the term's
// bias times the product of the sample's values for the term's variables,
// the empty term contributing its bias unconditionally. The whole batch is
// processed in a single pass over the terms: each term's product is built
// elementwise across all samples at once and accumulated into the result,
// so the cost of the traversal is shared by the N samples.
func (p *Polynomial) Energies(s *samples.Samples) ([]float64, error) {
	n, _ := s.Size()
	energies := make([]float64, n)
	prod := make([]float64, n)
	for _, k := range p.order {
		term, bias := p.terms[k], p.biases[k]
		if len(term.vars) == 0 {
			floats.AddConst(bias, energies)
			continue
		}
		first, ok := s.Column(term.vars[0])
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrMissingVariable, term.vars[0])
		}
		copy(prod, first)
		for _, v := range term.vars[1:] {
			col, ok := s.Column(v)
			if !ok {
				return nil, fmt.Errorf("%w: %q", ErrMissingVariable, v)
			}
			floats.Mul(prod, col)
		}
		floats.AddScaled(energies, bias, prod)
	}
	return energies, nil
}

// Energy computes the energy of a single assignment. It is the batched form
// with one sample.
func (p *Polynomial) Energy(assignment map[string]float64) (float64, error) {
	s, err := samples.FromMap(assignment)
	if err != nil {
		return 0, err
	}
	energies, err := p.Energies(s)
	if err != nil {
		return 0, err
	}
	return energies[0], nil
}
