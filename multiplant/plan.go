// Package multiplant - Optimize: build, solve, and extract a named Plan.
package multiplant

import (
	"math"

	"github.com/katalvlaran/lvlopt/simplex"
)

// allocationFloor drops numerically-zero allocations from the Plan so a
// route the optimizer never used does not show up as "0.0000000001 units".
const allocationFloor = 1e-9

// Allocation is one line of the production plan: how many units of a
// product one plant makes.
type Allocation struct {
	Plant   string
	Product string
	Units   float64
}

// Plan is the domain-shaped outcome of one Optimize call. It is produced
// once, immutable, and fully detached from the solver's internals.
//
// TotalCost and Allocations are meaningful only when Status is
// StatusOptimal (TotalCost is NaN otherwise). The dual maps are populated
// only when simplex.WithDuals was passed and the status is optimal.
type Plan struct {
	// Status is the solver verdict for the underlying linear program.
	Status simplex.Status

	// TotalCost is the minimal total of production + shipping cost.
	TotalCost float64

	// Allocations lists every route carrying a positive quantity, in
	// deterministic route order (plants outer, products inner).
	Allocations []Allocation

	// CapacityDuals maps plant name → marginal TotalCost change per extra
	// unit of that plant's capacity (≤ 0: capacity can only help).
	CapacityDuals map[string]float64

	// DemandDuals maps product name → marginal TotalCost of one more
	// demanded unit (≥ 0 under non-negative costs).
	DemandDuals map[string]float64
}

// IsOptimal reports whether the plan carries a usable allocation.
func (pl Plan) IsOptimal() bool { return pl.Status == simplex.StatusOptimal }

// Produced sums the plan's output of one plant across all products.
func (pl Plan) Produced(plant string) float64 {
	var total float64
	for i := range pl.Allocations {
		if pl.Allocations[i].Plant == plant {
			total += pl.Allocations[i].Units
		}
	}

	return total
}

// Supplied sums the plan's coverage of one product across all plants.
func (pl Plan) Supplied(product string) float64 {
	var total float64
	for i := range pl.Allocations {
		if pl.Allocations[i].Product == product {
			total += pl.Allocations[i].Units
		}
	}

	return total
}

// Optimize builds the linear program for the problem, solves it, and maps
// the solution back onto plant/product names.
//
// Solver options pass straight through to simplex.Solve — tolerance, pivot
// cap and dual computation are all configured there.
//
// Errors: the structural sentinels of Build, plus whatever simplex.Solve
// reports (bad options, pivot limit, internal inconsistency). Infeasible
// and unbounded programs are NOT errors: they come back as Plan.Status.
//
// Complexity: Build is O(plants·products); the solve dominates.
func Optimize(p Problem, opts ...simplex.Option) (Plan, error) {
	model, idx, err := p.Build()
	if err != nil {
		return Plan{}, err
	}

	sol, err := simplex.Solve(model, opts...)
	if err != nil {
		return Plan{}, err
	}
	if sol.Status != simplex.StatusOptimal {
		return Plan{Status: sol.Status, TotalCost: math.NaN()}, nil
	}

	plan := Plan{
		Status:    simplex.StatusOptimal,
		TotalCost: sol.Objective,
	}
	for v := range idx.Routes {
		units := sol.Value(v)
		if units <= allocationFloor {
			continue
		}
		plan.Allocations = append(plan.Allocations, Allocation{
			Plant:   idx.Routes[v].Plant,
			Product: idx.Routes[v].Product,
			Units:   units,
		})
	}

	if sol.Duals != nil {
		plan.CapacityDuals = make(map[string]float64, len(p.Plants))
		for pi := range p.Plants {
			plan.CapacityDuals[p.Plants[pi].Name] = sol.Dual(idx.CapacityRow[pi])
		}
		plan.DemandDuals = make(map[string]float64, len(p.Products))
		for qi := range p.Products {
			plan.DemandDuals[p.Products[qi].Name] = sol.Dual(idx.DemandRow[qi])
		}
	}

	return plan, nil
}
