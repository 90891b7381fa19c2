// Package samples provides the batched assignment structure consumed by
// energy evaluation: a set of N samples over M named variables, stored as a
// dense matrix with a name-to-column index.
package samples

import (
	"fmt"
	"sort"

	"github.com/bits-and-blooms/bitset"
)

// Samples is a batch of assignments. Rows are samples, columns are
// variables. Values are stored column by column so that a whole column can
// be handed out without copying.
type Samples struct {
	data   []float64 // column-major: data[c*n+r] is row r of column c
	n      int
	labels []string
	index  map[string]int
}

// New returns the batch holding the given rows, columns being named after
// labels. Every row must have exactly one value per label.
func New(labels []string, rows [][]float64) (*Samples, error) {
	index := make(map[string]int, len(labels))
	for c, l := range labels {
		if _, ok := index[l]; ok {
			return nil, fmt.Errorf("duplicate variable %q in labels", l)
		}
		index[l] = c
	}
	m := len(labels)
	n := len(rows)
	data := make([]float64, n*m)
	for r, row := range rows {
		if len(row) != m {
			return nil, fmt.Errorf("sample %d has %d values, want %d", r, len(row), m)
		}
		for c, v := range row {
			data[c*n+r] = v
		}
	}
	ownLabels := make([]string, m)
	copy(ownLabels, labels)
	return &Samples{data: data, n: n, labels: ownLabels, index: index}, nil
}

// FromMaps returns the batch whose columns are the union of the variables
// of all the given assignments, in sorted order. Every assignment must bind
// every variable of the union: a gap would leave an undefined value in the
// matrix, so it is reported as an error instead.
func FromMaps(assignments []map[string]float64) (*Samples, error) {
	set := make(map[string]struct{})
	for _, a := range assignments {
		for v := range a {
			set[v] = struct{}{}
		}
	}
	labels := make([]string, 0, len(set))
	for v := range set {
		labels = append(labels, v)
	}
	sort.Strings(labels)

	index := make(map[string]int, len(labels))
	for c, l := range labels {
		index[l] = c
	}
	m := len(labels)
	n := len(assignments)
	data := make([]float64, n*m)
	seen := bitset.New(uint(m))
	for r, a := range assignments {
		seen.ClearAll()
		for v, val := range a {
			c := index[v]
			data[c*n+r] = val
			seen.Set(uint(c))
		}
		if seen.Count() != uint(m) {
			missing, _ := seen.NextClear(0)
			return nil, fmt.Errorf("sample %d does not bind variable %q", r, labels[missing])
		}
	}
	return &Samples{data: data, n: n, labels: labels, index: index}, nil
}

// FromMap returns the single-row batch holding the given assignment.
func FromMap(assignment map[string]float64) (*Samples, error) {
	return FromMaps([]map[string]float64{assignment})
}

// Size returns the number of samples and the number of variables.
func (s *Samples) Size() (n, m int) {
	return s.n, len(s.labels)
}

// Labels returns the variable names, in column order.
func (s *Samples) Labels() []string {
	res := make([]string, len(s.labels))
	copy(res, s.labels)
	return res
}

// Column returns the values of the given variable for all samples, and
// whether the variable is part of the batch. The slice is a view on the
// batch, not a copy: callers must not modify it.
func (s *Samples) Column(label string) ([]float64, bool) {
	c, ok := s.index[label]
	if !ok {
		return nil, false
	}
	return s.data[c*s.n : (c+1)*s.n], true
}

// Row returns a copy of the values of sample r, in column order.
func (s *Samples) Row(r int) []float64 {
	res := make([]float64, len(s.labels))
	for c := range s.labels {
		res[c] = s.data[c*s.n+r]
	}
	return res
}
