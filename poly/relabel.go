package poly

import (
	"fmt"
	"strconv"

	"github.com/crillab/gophobo/logger"
)

// ErrLabelConflict is returned when a relabeling target collides with an
// existing variable that is not itself relabeled away.
var ErrLabelConflict = fmt.Errorf("conflicting variable name")

// Relabel renames the variables of the polynomial in place, following the
// given old-name-to-new-name mapping, and returns the polynomial to allow
// chaining. Variables absent from the mapping keep their name.
//
// Renaming a variable to the name of another variable that is not being
// renamed itself would silently merge the two, so it is rejected with
// ErrLabelConflict and the polynomial is left untouched. Mappings whose old
// and new names overlap (swaps, cycles) are valid: they are resolved by
// renaming the conflicting variables to unused intermediate names first.
func (p *Polynomial) Relabel(mapping map[string]string) (*Polynomial, error) {
	effective := make(map[string]string, len(mapping))
	for o, n := range mapping {
		if o != n {
			effective[o] = n
		}
	}
	vars := p.variableSet()
	for _, n := range effective {
		if _, exists := vars[n]; !exists {
			continue
		}
		if _, relabeled := effective[n]; !relabeled {
			return nil, fmt.Errorf("%w: cannot rename a variable to %q without also renaming the existing variable of that name", ErrLabelConflict, n)
		}
	}
	return p.relabel(effective, vars)
}

// Relabeled is Relabel operating on a copy, leaving the receiver unchanged.
func (p *Polynomial) Relabeled(mapping map[string]string) (*Polynomial, error) {
	return p.Copy().Relabel(mapping)
}

// relabel applies an already validated mapping without identity entries.
func (p *Polynomial) relabel(mapping map[string]string, vars map[string]struct{}) (*Polynomial, error) {
	shared := 0
	for _, n := range mapping {
		if _, ok := mapping[n]; ok {
			shared++
		}
	}
	if shared > 0 {
		// Some names are both renamed away and used as targets: rewrite
		// through intermediate names so no pass ever sees a half-renamed
		// state.
		oldToMid, midToNew := splitConflicting(mapping, vars)
		log := logger.Logger()
		log.Debug().Int("conflicts", shared).
			Msg("relabeling through intermediate names")
		if _, err := p.relabel(oldToMid, vars); err != nil {
			return nil, err
		}
		return p.relabel(midToNew, p.variableSet())
	}

	for _, k := range append([]string(nil), p.order...) {
		bias, ok := p.biases[k]
		if !ok {
			continue
		}
		t := p.terms[k]
		nt := t.relabeled(mapping)
		if nt.key == k {
			continue
		}
		p.SetBias(nt, bias)
		if err := p.Remove(t); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// splitConflicting splits a mapping whose old and new names overlap into
// two overlap-free mappings to be applied in sequence. Entries whose target
// is itself renamed away go through a fresh intermediate name; the others
// are kept in the first mapping as is. Each split strictly shrinks the set
// of conflicting names, so the resolution terminates.
func splitConflicting(mapping map[string]string, vars map[string]struct{}) (oldToMid, midToNew map[string]string) {
	used := make(map[string]struct{}, len(vars)+2*len(mapping))
	for v := range vars {
		used[v] = struct{}{}
	}
	for o, n := range mapping {
		used[o] = struct{}{}
		used[n] = struct{}{}
	}
	counter := 0
	fresh := func() string {
		for {
			lbl := "~tmp" + strconv.Itoa(counter)
			counter++
			if _, ok := used[lbl]; !ok {
				used[lbl] = struct{}{}
				return lbl
			}
		}
	}

	oldToMid = make(map[string]string, len(mapping))
	midToNew = make(map[string]string)
	for o, n := range mapping {
		if _, renamedAway := mapping[n]; renamedAway {
			mid := fresh()
			oldToMid[o] = mid
			midToNew[mid] = n
		} else {
			oldToMid[o] = n
		}
	}
	return oldToMid, midToNew
}
