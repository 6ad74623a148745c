package multiplant_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvlopt/lp"
	"github.com/katalvlaran/lvlopt/multiplant"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// twoPlantProblem is the canonical scenario: plants A (cap 100, cost 5) and
// B (cap 80, cost 7) serving one product X with the given demand.
func twoPlantProblem(demand float64) multiplant.Problem {
	return multiplant.Problem{
		Plants:   []multiplant.Plant{{Name: "A", Capacity: 100}, {Name: "B", Capacity: 80}},
		Products: []multiplant.Product{{Name: "X", Demand: demand}},
		ProductionCost: map[string]map[string]float64{
			"A": {"X": 5},
			"B": {"X": 7},
		},
	}
}

// TestBuild_ModelShape verifies the variable/row layout: one variable per
// producible route, one ≤ row per plant, one demand row per product.
func TestBuild_ModelShape(t *testing.T) {
	p := multiplant.Problem{
		Plants:   []multiplant.Plant{{Name: "A", Capacity: 10}, {Name: "B", Capacity: 20}},
		Products: []multiplant.Product{{Name: "X", Demand: 5}, {Name: "Y", Demand: 8}},
		ProductionCost: map[string]map[string]float64{
			"A": {"X": 1, "Y": 2},
			"B": {"Y": 3}, // B cannot make X
		},
	}

	m, idx, err := p.Build()
	require.NoError(t, err)

	assert.Equal(t, 3, m.NumVariables(), "A→X, A→Y, B→Y")
	assert.Equal(t, 4, m.NumConstraints(), "2 capacity + 2 demand rows")

	require.Len(t, idx.Routes, 3)
	assert.Equal(t, multiplant.Route{Plant: "A", Product: "X"}, idx.Routes[0])
	assert.Equal(t, multiplant.Route{Plant: "A", Product: "Y", ProductIdx: 1}, idx.Routes[1])
	assert.Equal(t, multiplant.Route{Plant: "B", Product: "Y", PlantIdx: 1, ProductIdx: 1}, idx.Routes[2])

	vars := m.Variables()
	assert.Equal(t, "A → X", vars[0].Label)
	assert.Equal(t, "B → Y", vars[2].Label)

	cons := m.Constraints()
	capA := cons[idx.CapacityRow[0]]
	assert.Equal(t, lp.LessEq, capA.Relation)
	assert.Equal(t, 10.0, capA.RHS)
	assert.Len(t, capA.Coeffs, 2, "A's row covers A→X and A→Y")

	demX := cons[idx.DemandRow[0]]
	assert.Equal(t, lp.Equal, demX.Relation, "default policy is MeetExactly")
	assert.Equal(t, 5.0, demX.RHS)
	assert.Len(t, demX.Coeffs, 1, "only A can make X")
}

// TestBuild_MeetAtLeastRelation switches the demand rows to ≥.
func TestBuild_MeetAtLeastRelation(t *testing.T) {
	p := twoPlantProblem(150)
	p.Demand = multiplant.MeetAtLeast

	m, idx, err := p.Build()
	require.NoError(t, err)
	cons := m.Constraints()
	assert.Equal(t, lp.GreaterEq, cons[idx.DemandRow[0]].Relation)
}

// TestBuild_ShippingCostAddsIntoObjective checks the per-route add-on.
func TestBuild_ShippingCostAddsIntoObjective(t *testing.T) {
	p := twoPlantProblem(150)
	p.ShippingCost = map[string]map[string]float64{
		"B": {"X": 1.5},
	}

	m, _, err := p.Build()
	require.NoError(t, err)
	obj, ok := m.Objective()
	require.True(t, ok)
	assert.Equal(t, 5.0, obj.Coeffs[0], "A keeps bare production cost")
	assert.Equal(t, 8.5, obj.Coeffs[1], "B pays production 7 + shipping 1.5")
	assert.Equal(t, lp.Minimize, obj.Sense)
}

// TestBuild_StructuralValidation exercises every fail-fast sentinel; none
// of these inputs may ever reach the solver.
func TestBuild_StructuralValidation(t *testing.T) {
	base := twoPlantProblem(150)

	t.Run("no plants", func(t *testing.T) {
		p := base
		p.Plants = nil
		_, _, err := p.Build()
		assert.ErrorIs(t, err, multiplant.ErrNoPlants)
	})

	t.Run("no products", func(t *testing.T) {
		p := base
		p.Products = nil
		_, _, err := p.Build()
		assert.ErrorIs(t, err, multiplant.ErrNoProducts)
	})

	t.Run("negative capacity", func(t *testing.T) {
		p := base
		p.Plants = []multiplant.Plant{{Name: "A", Capacity: -1}, {Name: "B", Capacity: 80}}
		_, _, err := p.Build()
		assert.ErrorIs(t, err, multiplant.ErrNegativeCapacity)
	})

	t.Run("negative demand", func(t *testing.T) {
		p := base
		p.Products = []multiplant.Product{{Name: "X", Demand: -5}}
		_, _, err := p.Build()
		assert.ErrorIs(t, err, multiplant.ErrNegativeDemand)
	})

	t.Run("duplicate plant name", func(t *testing.T) {
		p := base
		p.Plants = []multiplant.Plant{{Name: "A", Capacity: 100}, {Name: "A", Capacity: 80}}
		_, _, err := p.Build()
		assert.ErrorIs(t, err, multiplant.ErrDuplicateName)
	})

	t.Run("empty name", func(t *testing.T) {
		p := base
		p.Plants = []multiplant.Plant{{Name: "", Capacity: 100}, {Name: "B", Capacity: 80}}
		_, _, err := p.Build()
		assert.ErrorIs(t, err, multiplant.ErrDuplicateName)
	})

	t.Run("plant and product sharing a name", func(t *testing.T) {
		p := base
		p.Products = []multiplant.Product{{Name: "A", Demand: 1}}
		_, _, err := p.Build()
		assert.ErrorIs(t, err, multiplant.ErrDuplicateName)
	})

	t.Run("no producer", func(t *testing.T) {
		p := base
		p.Products = append([]multiplant.Product{}, p.Products...)
		p.Products = append(p.Products, multiplant.Product{Name: "Y", Demand: 10})
		_, _, err := p.Build()
		assert.ErrorIs(t, err, multiplant.ErrNoProducer, "no plant has a cost entry for Y")
	})

	t.Run("NaN cost", func(t *testing.T) {
		p := base
		p.ProductionCost = map[string]map[string]float64{
			"A": {"X": math.NaN()},
			"B": {"X": 7},
		}
		_, _, err := p.Build()
		assert.ErrorIs(t, err, multiplant.ErrBadCost)
	})

	t.Run("infinite shipping cost", func(t *testing.T) {
		p := base
		p.ShippingCost = map[string]map[string]float64{
			"A": {"X": math.Inf(1)},
		}
		_, _, err := p.Build()
		assert.ErrorIs(t, err, multiplant.ErrBadCost)
	})
}

// TestDemandPolicy_String pins the rendered policy names.
func TestDemandPolicy_String(t *testing.T) {
	assert.Equal(t, "meet-exactly", multiplant.MeetExactly.String())
	assert.Equal(t, "meet-at-least", multiplant.MeetAtLeast.String())
}
