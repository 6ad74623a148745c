// Package lp - whole-model validation shared by the solver packages.
package lp

// Validate verifies that the model is well-posed for solving:
//   - at least one variable and one constraint (ErrEmptyModel),
//   - an objective was set (ErrNoObjective),
//   - no dangling variable references (ErrDanglingVariable), re-checking
//     the invariant enforced at construction time.
//
// Complexity: O(V + Σ nnz) where nnz is per-constraint sparsity.
func (m *Model) Validate() error {
	if len(m.vars) == 0 || len(m.cons) == 0 {
		return ErrEmptyModel
	}
	if !m.hasObj {
		return ErrNoObjective
	}

	var (
		i   int
		idx int
	)
	for i = range m.cons {
		for idx = range m.cons[i].Coeffs {
			if idx < 0 || idx >= len(m.vars) {
				return ErrDanglingVariable
			}
		}
	}
	for idx = range m.obj.Coeffs {
		if idx < 0 || idx >= len(m.vars) {
			return ErrDanglingVariable
		}
	}

	return nil
}
