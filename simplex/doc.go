// Package simplex solves continuous linear programs with the two-phase
// (primal, tableau) simplex method, with optional shadow-price extraction.
//
// 🚀 What does it do?
//
//	Given an lp.Model — variables with bounds, sparse ≤/≥/= constraints and
//	a min/max objective — Solve:
//	  1. converts the model to standard form (all rows =, all columns ≥ 0),
//	     introducing slack, surplus and artificial columns and shifting or
//	     splitting bounded/free variables;
//	  2. runs Phase 1 (minimize the artificial sum) from the unit seed basis
//	     to either prove infeasibility or reach a basic feasible solution;
//	  3. runs Phase 2 on the true costs, artificials barred from re-entry,
//	     until optimality or unboundedness;
//	  4. maps the basic solution back onto the original variables, recomputes
//	     the objective from the original costs as a cross-check, and — on
//	     request — reads one dual value per original constraint.
//
// ✨ Key properties:
//
//   - Verdicts are data: StatusOptimal / StatusInfeasible / StatusUnbounded
//     come back inside Solution, never as errors — branch on them directly.
//   - Deterministic: Dantzig pricing with lowest-index tie-breaks, Bland's
//     rule while degeneracy persists; the same model always yields the
//     byte-identical Solution.
//   - Bounded: a hard pivot cap (configurable, default proportional to
//     rows×columns) turns undetected cycling into ErrIterationLimit
//     instead of a hang or a silent wrong answer.
//   - Self-checking: an objective mismatch between the tableau and the
//     recomputed cᵀx surfaces as ErrInconsistent, never as a solution.
//
// ⚙️ Usage:
//
//	sol, err := simplex.Solve(m,
//	    simplex.WithEpsilon(1e-9),
//	    simplex.WithDuals(),
//	)
//	if err != nil {
//	    // invalid model / pivot limit / internal inconsistency
//	}
//	switch sol.Status {
//	case simplex.StatusOptimal:
//	    fmt.Println("z =", sol.Objective, "x0 =", sol.Value(0))
//	case simplex.StatusInfeasible, simplex.StatusUnbounded:
//	    // legitimate verdicts, handle per caller policy
//	}
//
// Performance:
//
//   - One pivot: O(rows·cols). Pricing: O(rows·cols) per iteration.
//   - Memory: one owned tableau buffer of rows×cols float64 per solve;
//     concurrent solves share nothing.
//
// See examples in example_test.go; the production-planning layer on top of
// this package lives in multiplant/.
package simplex
