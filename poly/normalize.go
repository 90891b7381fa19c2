package poly

import (
	"fmt"

	"github.com/crillab/gophobo/logger"
)

// A Range is a closed interval of admissible bias values.
type Range struct {
	Min, Max float64
}

// Sym returns the symmetric range [-|r|, |r|].
func Sym(r float64) Range {
	if r < 0 {
		r = -r
	}
	return Range{Min: -r, Max: r}
}

// zero indicates the zero value, used by Normalize to mean "same range as
// the linear biases".
func (r Range) zero() bool {
	return r.Min == 0 && r.Max == 0
}

// Scale multiplies the bias of every term by factor, except the terms
// listed in ignored. The constant term is scaled like any other unless it
// is explicitly ignored.
func (p *Polynomial) Scale(factor float64, ignored ...Term) {
	skip := make(map[string]struct{}, len(ignored))
	for _, t := range ignored {
		skip[t.key] = struct{}{}
	}
	for _, k := range p.order {
		if _, ok := skip[k]; ok {
			continue
		}
		p.biases[k] *= factor
	}
}

// Normalize scales all biases by a single factor so that linear biases fit
// in biasRange and higher-order biases fit in polyRange. The zero Range for
// polyRange means biasRange applies to both groups. The factor is
// determined by the group whose extremum exceeds its target range the most;
// if no bias lies outside its range, the polynomial is left as is. The
// constant term takes no part in the computation, but is still scaled along
// unless listed in ignored.
func (p *Polynomial) Normalize(biasRange, polyRange Range, ignored ...Term) error {
	if polyRange.zero() {
		polyRange = biasRange
	}
	for _, r := range []Range{biasRange, polyRange} {
		if r.Min > 0 || r.Max < 0 {
			return fmt.Errorf("normalization range [%g, %g] must contain 0", r.Min, r.Max)
		}
	}

	var lmin, lmax, pmin, pmax float64
	for _, k := range p.order {
		bias := p.biases[k]
		switch deg := p.terms[k].Degree(); {
		case deg == 1:
			if bias < lmin {
				lmin = bias
			}
			if bias > lmax {
				lmax = bias
			}
		case deg > 1:
			if bias < pmin {
				pmin = bias
			}
			if bias > pmax {
				pmax = bias
			}
		}
	}

	inv := 0.0
	for _, q := range [4]struct{ extremum, bound float64 }{
		{lmin, biasRange.Min}, {lmax, biasRange.Max},
		{pmin, polyRange.Min}, {pmax, polyRange.Max},
	} {
		if q.extremum == 0 {
			continue
		}
		if q.bound == 0 {
			return fmt.Errorf("bias %g cannot be scaled into a zero-width range bound", q.extremum)
		}
		if r := q.extremum / q.bound; r > inv {
			inv = r
		}
	}

	if inv > 1 {
		log := logger.Logger()
		log.Debug().Float64("factor", 1/inv).Msg("normalizing biases")
		p.Scale(1/inv, ignored...)
	}
	return nil
}
