/*
Package poly implements polynomials over binary variables, used to describe
higher-order optimization problems before they are handed to a solver.

A polynomial is a mapping from terms to biases, a term being an unordered
set of variable names. The polynomial

	2*a - b*c + 3

is the mapping {(a): 2, (b c): -1, (): 3}: the empty term holds the constant
offset. Variables take their values either in {-1, +1} (the Spin domain) or
in {0, 1} (the Boolean domain); the domain is fixed when the polynomial is
created.

The package provides the operations needed to prepare such a polynomial for
a solver: aggregation of duplicate terms, variable relabeling, batched
energy computation against sets of assignments (see the samples package),
bias scaling and normalization, and conversion to and from the usual
decomposition into linear biases, higher-order biases and offset.

The package does not solve anything: solvers and samplers are external
consumers of the term/bias mapping.
*/
package poly
