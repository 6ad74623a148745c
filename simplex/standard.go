// Package simplex - conversion of an lp.Model into standard form.
//
// Standard form here means:
//
//	minimize cᵀx   s.t.   A·x = b,   x ≥ 0,   b ≥ 0
//
// reached through the classic sequence:
//  1. normalize the objective to minimization (Maximize negates costs);
//  2. shift variables with a finite lower bound (x' = x − lo) and split
//     free variables into a positive minus a negative part;
//  3. turn finite upper bounds into extra ≤ rows;
//  4. scale rows with a negative right-hand side by −1 (relation flips);
//  5. give every ≤ row a +1 slack, every ≥ row a −1 surplus plus a +1
//     artificial, every = row a +1 artificial.
//
// The conversion never mutates the model; it produces a fresh structure
// with full provenance for every column and every row, so the extractor
// and the sensitivity reader can undo each step exactly.
package simplex

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvlopt/lp"
)

// colKind tags the provenance of one standard-form column.
type colKind int

const (
	// colOriginal is the (possibly shifted) positive part of an original variable.
	colOriginal colKind = iota
	// colNegPart is the negative part of a split free variable.
	colNegPart
	// colSlack absorbs the gap of a ≤ row.
	colSlack
	// colSurplus absorbs the excess of a ≥ row.
	colSurplus
	// colArtificial seeds the Phase-1 basis of a ≥ or = row.
	colArtificial
)

// column records where one standard-form column came from.
type column struct {
	kind colKind
	v    int // original variable index (colOriginal, colNegPart)
	row  int // owning row (colSlack, colSurplus, colArtificial)
}

// standardForm is the derived program handed to the tableau. It is built
// once per solve and read-only afterwards.
//
// Invariants:
//   - cols = originals + split negative parts + slacks + surpluses + artificials;
//   - every row i has a unit seed column seed[i] (slack or artificial) whose
//     coefficient is +1 in row i and 0 elsewhere — the Phase-1 basis;
//   - rows 0..numCons-1 correspond 1:1 to the model's constraints
//     (upper-bound rows are appended after them);
//   - b ≥ 0 element-wise, with scale[i] = −1 marking rows negated to get there.
type standardForm struct {
	rows, cols int

	a *mat.Dense // rows × cols coefficient matrix
	b []float64  // right-hand sides, all ≥ 0
	c []float64  // Phase-2 costs (minimization), 0 on auxiliary columns
	p []float64  // Phase-1 costs: 1 on artificial columns, 0 elsewhere

	columns    []column  // per-column provenance
	artificial []bool    // per-column: true for colArtificial
	seed       []int     // per-row Phase-1 basis column
	scale      []float64 // per-row ±1 (−1 ⇒ row was negated)

	numVars int // original variable count
	numCons int // original constraint count (duals reported for these rows)

	shift   []float64 // per original variable: lower-bound shift undone on extraction
	colOf   []int     // per original variable: its (positive-part) column
	negPart []int     // per original variable: negative-part column, or -1

	objSign     float64 // +1 for Minimize, −1 for Maximize (reporting)
	objConstant float64 // Σ c_min[v]·shift[v], added back to the tableau objective
}

// rowSpec is scratch state for one standard-form row before columns are laid out.
type rowSpec struct {
	coeffs map[int]float64 // structural-column index → coefficient
	rel    lp.Relation
	rhs    float64
	scale  float64
}

// newStandardForm converts a validated model. O(rows·cols) time and memory.
func newStandardForm(m *lp.Model) *standardForm {
	var (
		vars = m.Variables()
		cons = m.Constraints()
		cMin = m.MinimizingObjective()
	)

	sf := &standardForm{
		numVars: len(vars),
		numCons: len(cons),
		shift:   make([]float64, len(vars)),
		colOf:   make([]int, len(vars)),
		negPart: make([]int, len(vars)),
		objSign: 1,
	}
	if obj, _ := m.Objective(); obj.Sense == lp.Maximize {
		sf.objSign = -1
	}

	// Stage 1: structural columns — shift finite lower bounds, split free
	// variables. Free-variable negative parts are appended after all the
	// positive parts so original indices stay aligned with column indices.
	var structCols int
	for v := range vars {
		sf.colOf[v] = structCols
		sf.negPart[v] = -1
		structCols++
		if math.IsInf(vars[v].Lower, -1) {
			continue // split below, shift stays 0
		}
		sf.shift[v] = vars[v].Lower
	}
	for v := range vars {
		if math.IsInf(vars[v].Lower, -1) {
			sf.negPart[v] = structCols
			structCols++
		}
	}
	for v := range vars {
		sf.objConstant += cMin[v] * sf.shift[v]
	}

	// Stage 2: assemble row specs — model constraints first, then one ≤ row
	// per finite upper bound. Shifts move into the right-hand side.
	specs := make([]rowSpec, 0, len(cons))
	for i := range cons {
		rs := rowSpec{coeffs: make(map[int]float64, 2*len(cons[i].Coeffs)), rel: cons[i].Relation, rhs: cons[i].RHS}
		for v, a := range cons[i].Coeffs {
			rs.coeffs[sf.colOf[v]] += a
			if sf.negPart[v] >= 0 {
				rs.coeffs[sf.negPart[v]] -= a
			}
			rs.rhs -= a * sf.shift[v]
		}
		specs = append(specs, rs)
	}
	for v := range vars {
		if math.IsInf(vars[v].Upper, 1) {
			continue
		}
		rs := rowSpec{coeffs: map[int]float64{sf.colOf[v]: 1}, rel: lp.LessEq, rhs: vars[v].Upper - sf.shift[v]}
		if sf.negPart[v] >= 0 {
			rs.coeffs[sf.negPart[v]] = -1
		}
		specs = append(specs, rs)
	}

	// Stage 3: force b ≥ 0. Negating a row flips its relation; the recorded
	// scale restores the original orientation for dual values.
	for i := range specs {
		specs[i].scale = 1
		if specs[i].rhs >= 0 {
			continue
		}
		specs[i].scale = -1
		specs[i].rhs = -specs[i].rhs
		for j := range specs[i].coeffs {
			specs[i].coeffs[j] = -specs[i].coeffs[j]
		}
		switch specs[i].rel {
		case lp.LessEq:
			specs[i].rel = lp.GreaterEq
		case lp.GreaterEq:
			specs[i].rel = lp.LessEq
		case lp.Equal:
			// = stays =
		}
	}

	// Stage 4: lay out auxiliary columns and fill the dense matrix.
	sf.rows = len(specs)
	sf.cols = structCols
	for i := range specs {
		switch specs[i].rel {
		case lp.LessEq:
			sf.cols++ // slack
		case lp.GreaterEq:
			sf.cols += 2 // surplus + artificial
		case lp.Equal:
			sf.cols++ // artificial
		}
	}

	sf.a = mat.NewDense(sf.rows, sf.cols, nil)
	sf.b = make([]float64, sf.rows)
	sf.c = make([]float64, sf.cols)
	sf.p = make([]float64, sf.cols)
	sf.columns = make([]column, sf.cols)
	sf.artificial = make([]bool, sf.cols)
	sf.seed = make([]int, sf.rows)
	sf.scale = make([]float64, sf.rows)

	for v := range vars {
		sf.columns[sf.colOf[v]] = column{kind: colOriginal, v: v}
		sf.c[sf.colOf[v]] = cMin[v]
		if sf.negPart[v] >= 0 {
			sf.columns[sf.negPart[v]] = column{kind: colNegPart, v: v}
			sf.c[sf.negPart[v]] = -cMin[v]
		}
	}

	next := structCols
	for i := range specs {
		sf.b[i] = specs[i].rhs
		sf.scale[i] = specs[i].scale
		for j, a := range specs[i].coeffs {
			sf.a.Set(i, j, a)
		}
		switch specs[i].rel {
		case lp.LessEq:
			sf.a.Set(i, next, 1)
			sf.columns[next] = column{kind: colSlack, row: i}
			sf.seed[i] = next
			next++
		case lp.GreaterEq:
			sf.a.Set(i, next, -1)
			sf.columns[next] = column{kind: colSurplus, row: i}
			next++
			sf.a.Set(i, next, 1)
			sf.columns[next] = column{kind: colArtificial, row: i}
			sf.artificial[next] = true
			sf.p[next] = 1
			sf.seed[i] = next
			next++
		case lp.Equal:
			sf.a.Set(i, next, 1)
			sf.columns[next] = column{kind: colArtificial, row: i}
			sf.artificial[next] = true
			sf.p[next] = 1
			sf.seed[i] = next
			next++
		}
	}

	return sf
}

// hasArtificials reports whether Phase 1 is needed at all. A model made of
// nothing but ≤ rows with non-negative right-hand sides starts feasible
// from its slack basis.
func (sf *standardForm) hasArtificials() bool {
	for j := range sf.artificial {
		if sf.artificial[j] {
			return true
		}
	}

	return false
}
