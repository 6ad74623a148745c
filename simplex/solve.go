// Package simplex - Solve: the two-phase pipeline and solution extraction.
package simplex

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/lvlopt/lp"
)

// autoPivotFactor scales the automatic pivot cap: cap = factor·rows·cols.
const autoPivotFactor = 32

// minPivotCap floors the automatic cap so tiny programs still get room to
// walk around a degenerate corner.
const minPivotCap = 256

// Solve runs two-phase simplex on the model and returns its verdict.
//
// Algorithm outline:
//  1. Validate options and the model (sentinel errors, solve never starts
//     on malformed input).
//  2. Convert to standard form (standard.go): min cᵀx, A·x = b, x ≥ 0.
//  3. Phase 1: minimize the artificial sum from the unit seed basis.
//     A strictly positive optimum (beyond Eps) ⇒ StatusInfeasible.
//     Remaining zero-level artificials are pivoted out of the basis.
//  4. Phase 2: price the true costs with artificial columns barred.
//     No improving column ⇒ optimal; an improving column with no positive
//     row coefficient ⇒ StatusUnbounded.
//  5. Extract per-variable values (un-shift, un-split), recompute the
//     objective from the original costs and cross-check it against the
//     tableau (ErrInconsistent on mismatch), then read duals if requested.
//
// Both phases share one pivot budget; exhausting it returns
// ErrIterationLimit rather than a silently wrong answer.
//
// Complexity: O(pivots·rows·cols) time, O(rows·cols) memory, single
// goroutine. Independent models may be solved concurrently — a solve owns
// every piece of its state.
//
// Errors: ErrNilModel, ErrBadEpsilon, ErrBadMaxIterations, lp validation
// sentinels, ErrIterationLimit, ErrInconsistent. Infeasible and unbounded
// are statuses, not errors.
func Solve(m *lp.Model, opts ...Option) (Solution, error) {
	if m == nil {
		return Solution{}, ErrNilModel
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := validateOptions(o); err != nil {
		return Solution{}, err
	}
	if err := m.Validate(); err != nil {
		return Solution{}, err
	}

	sf := newStandardForm(m)
	tb := newTableau(sf, o.Eps)

	budget := o.MaxIterations
	if budget == 0 {
		budget = autoPivotFactor * sf.rows * sf.cols
		if budget < minPivotCap {
			budget = minPivotCap
		}
	}
	var used int

	// Phase 1 — only when some row lacks a natural slack basis.
	if sf.hasArtificials() {
		switch tb.iterate(sf.p, false, budget, &used) {
		case outcomeLimit:
			return Solution{}, ErrIterationLimit
		case outcomeUnbounded:
			// Σ artificials is bounded below by zero; an unbounded verdict
			// here can only mean corrupted pivot state.
			return Solution{}, ErrInconsistent
		case outcomeOptimal:
			// fall through to the feasibility check
		}
		if tb.objective(sf.p) > o.Eps {
			return Solution{Status: StatusInfeasible, Objective: math.NaN()}, nil
		}
		tb.evictArtificials()
	}

	// Phase 2 — true costs, artificials barred from re-entering.
	switch tb.iterate(sf.c, true, budget, &used) {
	case outcomeLimit:
		return Solution{}, ErrIterationLimit
	case outcomeUnbounded:
		return Solution{Status: StatusUnbounded, Objective: math.NaN()}, nil
	case outcomeOptimal:
		// fall through to extraction
	}

	return extract(m, sf, tb, o)
}

// extract maps the final basic solution back onto the original variables,
// recomputes the objective from the original cost vector as a cross-check,
// and attaches duals when requested.
//
// Non-basic columns are zero by construction; basic values are read off the
// right-hand side. Split variables are recombined (x = x⁺ − x⁻) and shifted
// lower bounds are added back. Slack, surplus and artificial columns never
// reach the caller.
func extract(m *lp.Model, sf *standardForm, tb *tableau, o Options) (Solution, error) {
	xStd := make([]float64, sf.cols)
	var r int
	for r = 0; r < tb.rows; r++ {
		v := tb.rhs[r]
		if v < o.Eps && v > -o.Eps {
			v = 0
		}
		xStd[tb.basis[r]] = v
	}

	values := make([]float64, sf.numVars)
	for v := 0; v < sf.numVars; v++ {
		x := xStd[sf.colOf[v]]
		if sf.negPart[v] >= 0 {
			x -= xStd[sf.negPart[v]]
		}
		values[v] = x + sf.shift[v]
	}

	// Recompute the objective from the caller's own coefficients — the
	// tableau's running value is never trusted blindly.
	obj, _ := m.Objective()
	dense := make([]float64, sf.numVars)
	for idx, cv := range obj.Coeffs {
		dense[idx] = cv
	}
	recomputed := floats.Dot(dense, values)

	fromTableau := sf.objSign * (tb.objective(sf.c) + sf.objConstant)
	slack := crossCheckTol(o.Eps, recomputed)
	if math.Abs(recomputed-fromTableau) > slack {
		return Solution{}, ErrInconsistent
	}

	sol := Solution{
		Status:    StatusOptimal,
		Objective: recomputed,
		Values:    values,
	}
	if o.ComputeDuals {
		sol.Duals = duals(sf, tb)
	}

	return sol, nil
}

// crossCheckTol widens the base tolerance with the objective magnitude, so
// long pivot chains on large-cost models do not trip the consistency check
// on benign accumulation.
func crossCheckTol(eps, obj float64) float64 {
	scale := math.Abs(obj)
	if scale < 1 {
		scale = 1
	}

	return 1e6 * eps * scale
}
