// Package lp - Model construction and accessors.
//
// Design principles (shared with the solver packages):
//   - Deterministic, side-effect free accessors.
//   - No logging, no panics on user input - only sentinel errors from types.go.
//   - Coefficient maps are copied on the way in and on the way out, so the
//     Model is the single owner of its data.
package lp

import "math"

// Model owns the variable list, the constraint list and the objective.
//
// Invariant: every coefficient key in every constraint and in the objective
// refers to a variable index that exists in the variable list. AddConstraint
// and SetObjective enforce this eagerly, so a Model that was built without
// errors never carries dangling references.
type Model struct {
	vars   []Variable
	cons   []Constraint
	obj    Objective
	hasObj bool
}

// NewModel returns an empty model.
func NewModel() *Model {
	return &Model{}
}

// AddVariable appends a non-negative, unbounded-above variable
// (Lower=0, Upper=+Inf) and returns its stable index.
func (m *Model) AddVariable(label string) int {
	m.vars = append(m.vars, Variable{Label: label, Lower: 0, Upper: math.Inf(1)})

	return len(m.vars) - 1
}

// AddBoundedVariable appends a variable with explicit bounds and returns its
// stable index. Lower may be -Inf (free below), Upper may be +Inf.
//
// Errors: ErrBadBounds if lower > upper, either bound is NaN,
// lower = +Inf or upper = -Inf.
func (m *Model) AddBoundedVariable(label string, lower, upper float64) (int, error) {
	if math.IsNaN(lower) || math.IsNaN(upper) {
		return 0, ErrBadBounds
	}
	if math.IsInf(lower, 1) || math.IsInf(upper, -1) {
		return 0, ErrBadBounds
	}
	if lower > upper {
		return 0, ErrBadBounds
	}
	m.vars = append(m.vars, Variable{Label: label, Lower: lower, Upper: upper})

	return len(m.vars) - 1, nil
}

// AddConstraint appends the row Σ coeffs[i]·xᵢ  rel  rhs and returns its
// stable index. The coefficient map is copied; zero entries are dropped.
//
// Errors: ErrDanglingVariable for an index outside the variable list,
// ErrBadCoefficient for a NaN/±Inf coefficient or rhs,
// ErrBadRelation for an unknown relation.
func (m *Model) AddConstraint(coeffs map[int]float64, rel Relation, rhs float64) (int, error) {
	if rel != LessEq && rel != GreaterEq && rel != Equal {
		return 0, ErrBadRelation
	}
	cp, err := m.copyCoeffs(coeffs)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(rhs) || math.IsInf(rhs, 0) {
		return 0, ErrBadCoefficient
	}
	m.cons = append(m.cons, Constraint{Coeffs: cp, Relation: rel, RHS: rhs})

	return len(m.cons) - 1, nil
}

// SetObjective replaces the model objective. The coefficient map is copied;
// zero entries are dropped.
//
// Errors: ErrDanglingVariable, ErrBadCoefficient, ErrBadSense.
func (m *Model) SetObjective(coeffs map[int]float64, sense Sense) error {
	if sense != Minimize && sense != Maximize {
		return ErrBadSense
	}
	cp, err := m.copyCoeffs(coeffs)
	if err != nil {
		return err
	}
	m.obj = Objective{Coeffs: cp, Sense: sense}
	m.hasObj = true

	return nil
}

// NumVariables reports the number of variables in the model.
func (m *Model) NumVariables() int { return len(m.vars) }

// NumConstraints reports the number of constraints in the model.
func (m *Model) NumConstraints() int { return len(m.cons) }

// Variables returns a copy of the variable list (index-stable).
func (m *Model) Variables() []Variable {
	out := make([]Variable, len(m.vars))
	copy(out, m.vars)

	return out
}

// Constraints returns a deep copy of the constraint list (index-stable).
func (m *Model) Constraints() []Constraint {
	out := make([]Constraint, len(m.cons))
	var i int
	for i = range m.cons {
		cp := make(map[int]float64, len(m.cons[i].Coeffs))
		for k, v := range m.cons[i].Coeffs {
			cp[k] = v
		}
		out[i] = Constraint{Coeffs: cp, Relation: m.cons[i].Relation, RHS: m.cons[i].RHS}
	}

	return out
}

// Objective returns a deep copy of the model objective. The second return
// reports whether SetObjective was ever called.
func (m *Model) Objective() (Objective, bool) {
	cp := make(map[int]float64, len(m.obj.Coeffs))
	for k, v := range m.obj.Coeffs {
		cp[k] = v
	}

	return Objective{Coeffs: cp, Sense: m.obj.Sense}, m.hasObj
}

// MinimizingObjective returns the dense cost vector c (len = NumVariables)
// normalized to minimization: Maximize objectives come back negated, so the
// caller always minimizes cᵀx.
func (m *Model) MinimizingObjective() []float64 {
	c := make([]float64, len(m.vars))
	sign := 1.0
	if m.obj.Sense == Maximize {
		sign = -1.0
	}
	for idx, v := range m.obj.Coeffs {
		c[idx] = sign * v
	}

	return c
}

// copyCoeffs validates and copies a sparse coefficient map, dropping exact
// zeros. Keys must index existing variables; values must be finite.
func (m *Model) copyCoeffs(coeffs map[int]float64) (map[int]float64, error) {
	cp := make(map[int]float64, len(coeffs))
	for idx, v := range coeffs {
		if idx < 0 || idx >= len(m.vars) {
			return nil, ErrDanglingVariable
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, ErrBadCoefficient
		}
		if v == 0 {
			continue // sparse: zero coefficients are omitted
		}
		cp[idx] = v
	}

	return cp, nil
}
