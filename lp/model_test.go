package lp_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvlopt/lp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestModel_AddVariableDefaults verifies default bounds [0, +Inf) and
// stable, sequential indices.
func TestModel_AddVariableDefaults(t *testing.T) {
	m := lp.NewModel()

	x := m.AddVariable("x")
	y := m.AddVariable("y")
	assert.Equal(t, 0, x, "first variable gets index 0")
	assert.Equal(t, 1, y, "second variable gets index 1")

	vars := m.Variables()
	require.Len(t, vars, 2)
	assert.Equal(t, "x", vars[0].Label)
	assert.Equal(t, 0.0, vars[0].Lower, "default lower bound is 0")
	assert.True(t, math.IsInf(vars[0].Upper, 1), "default upper bound is +Inf")
}

// TestModel_AddBoundedVariable covers valid and invalid bound combinations.
func TestModel_AddBoundedVariable(t *testing.T) {
	m := lp.NewModel()

	i, err := m.AddBoundedVariable("y", 5, 11)
	require.NoError(t, err)
	assert.Equal(t, 0, i)

	// Free-below variable is legal.
	_, err = m.AddBoundedVariable("free", math.Inf(-1), math.Inf(1))
	assert.NoError(t, err, "(-Inf, +Inf) bounds describe a free variable")

	// Crossed bounds.
	_, err = m.AddBoundedVariable("bad", 3, 1)
	assert.ErrorIs(t, err, lp.ErrBadBounds, "lower > upper must be rejected")

	// NaN bound.
	_, err = m.AddBoundedVariable("nan", math.NaN(), 1)
	assert.ErrorIs(t, err, lp.ErrBadBounds, "NaN bound must be rejected")

	// Lower = +Inf leaves an empty domain.
	_, err = m.AddBoundedVariable("empty", math.Inf(1), math.Inf(1))
	assert.ErrorIs(t, err, lp.ErrBadBounds, "lower=+Inf must be rejected")
}

// TestModel_AddConstraintValidation verifies eager rejection of dangling
// indices and non-finite numbers.
func TestModel_AddConstraintValidation(t *testing.T) {
	m := lp.NewModel()
	x := m.AddVariable("x")

	// Dangling index.
	_, err := m.AddConstraint(map[int]float64{x: 1, 7: 2}, lp.LessEq, 10)
	assert.ErrorIs(t, err, lp.ErrDanglingVariable, "index 7 does not exist")

	// Negative index.
	_, err = m.AddConstraint(map[int]float64{-1: 1}, lp.LessEq, 10)
	assert.ErrorIs(t, err, lp.ErrDanglingVariable)

	// NaN coefficient.
	_, err = m.AddConstraint(map[int]float64{x: math.NaN()}, lp.LessEq, 10)
	assert.ErrorIs(t, err, lp.ErrBadCoefficient)

	// Infinite rhs.
	_, err = m.AddConstraint(map[int]float64{x: 1}, lp.LessEq, math.Inf(1))
	assert.ErrorIs(t, err, lp.ErrBadCoefficient)

	// Unknown relation.
	_, err = m.AddConstraint(map[int]float64{x: 1}, lp.Relation(42), 10)
	assert.ErrorIs(t, err, lp.ErrBadRelation)

	// Valid row gets a stable index.
	c0, err := m.AddConstraint(map[int]float64{x: 1}, lp.LessEq, 10)
	require.NoError(t, err)
	assert.Equal(t, 0, c0)
}

// TestModel_ConstraintImmutability ensures coefficient maps are copied
// both on the way in and on the way out.
func TestModel_ConstraintImmutability(t *testing.T) {
	m := lp.NewModel()
	x := m.AddVariable("x")

	coeffs := map[int]float64{x: 2}
	_, err := m.AddConstraint(coeffs, lp.LessEq, 4)
	require.NoError(t, err)

	// Mutating the caller's map must not leak into the model.
	coeffs[x] = 99
	got := m.Constraints()
	require.Len(t, got, 1)
	assert.Equal(t, 2.0, got[0].Coeffs[x], "model must own its coefficient map")

	// Mutating the returned copy must not leak back either.
	got[0].Coeffs[x] = -1
	again := m.Constraints()
	assert.Equal(t, 2.0, again[0].Coeffs[x], "accessor must return a fresh copy")
}

// TestModel_ZeroCoefficientsDropped verifies the sparse-map contract.
func TestModel_ZeroCoefficientsDropped(t *testing.T) {
	m := lp.NewModel()
	x := m.AddVariable("x")
	y := m.AddVariable("y")

	_, err := m.AddConstraint(map[int]float64{x: 0, y: 3}, lp.Equal, 6)
	require.NoError(t, err)

	got := m.Constraints()
	_, present := got[0].Coeffs[x]
	assert.False(t, present, "zero coefficients must be omitted from the sparse map")
	assert.Len(t, got[0].Coeffs, 1)
}

// TestModel_MinimizingObjective checks the maximize → minimize normalization.
func TestModel_MinimizingObjective(t *testing.T) {
	m := lp.NewModel()
	x := m.AddVariable("x")
	y := m.AddVariable("y")

	require.NoError(t, m.SetObjective(map[int]float64{x: 3, y: -2}, lp.Maximize))
	c := m.MinimizingObjective()
	assert.Equal(t, []float64{-3, 2}, c, "maximize negates the cost vector")

	require.NoError(t, m.SetObjective(map[int]float64{x: 3, y: -2}, lp.Minimize))
	c = m.MinimizingObjective()
	assert.Equal(t, []float64{3, -2}, c, "minimize keeps the cost vector as-is")
}

// TestModel_Validate walks the whole-model checks.
func TestModel_Validate(t *testing.T) {
	m := lp.NewModel()
	assert.ErrorIs(t, m.Validate(), lp.ErrEmptyModel, "no variables, no constraints")

	x := m.AddVariable("x")
	assert.ErrorIs(t, m.Validate(), lp.ErrEmptyModel, "still no constraints")

	_, err := m.AddConstraint(map[int]float64{x: 1}, lp.LessEq, 1)
	require.NoError(t, err)
	assert.ErrorIs(t, m.Validate(), lp.ErrNoObjective, "objective not set yet")

	require.NoError(t, m.SetObjective(map[int]float64{x: 1}, lp.Minimize))
	assert.NoError(t, m.Validate(), "fully populated model is valid")
}

// TestRelationAndSenseStrings pins the operator/direction spellings used in
// rendered models.
func TestRelationAndSenseStrings(t *testing.T) {
	assert.Equal(t, "<=", lp.LessEq.String())
	assert.Equal(t, ">=", lp.GreaterEq.String())
	assert.Equal(t, "=", lp.Equal.String())
	assert.Equal(t, "minimize", lp.Minimize.String())
	assert.Equal(t, "maximize", lp.Maximize.String())
}
