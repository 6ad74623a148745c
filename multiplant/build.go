// Package multiplant - structural validation and LP construction.
//
// Design principles (mirroring the solver packages):
//   - Deterministic: slice declaration order drives variable and row order,
//     never map iteration order.
//   - Fail structurally, fail early: every malformed input is caught here
//     with a sentinel; the solver is never started on garbage.
package multiplant

import (
	"math"

	"github.com/katalvlaran/lvlopt/lp"
)

// Build translates the problem into a linear model plus the index needed
// to translate a solution back.
//
// Layout (all deterministic):
//   - variables: one per producible route, plants outer, products inner,
//     labeled "plant → product", objective coefficient = production cost
//     (+ shipping cost when present);
//   - rows 0..len(Plants)-1: Σ plant's routes ≤ capacity;
//   - following rows, one per product: Σ product's routes =/≥ demand,
//     relation chosen by the demand policy.
//
// Errors: ErrNoPlants, ErrNoProducts, ErrNegativeCapacity,
// ErrNegativeDemand, ErrDuplicateName, ErrBadCost, ErrNoProducer.
//
// Complexity: O(plants·products).
func (p Problem) Build() (*lp.Model, *Index, error) {
	if err := p.validate(); err != nil {
		return nil, nil, err
	}

	var (
		m   = lp.NewModel()
		idx = &Index{
			CapacityRow: make([]int, len(p.Plants)),
			DemandRow:   make([]int, len(p.Products)),
		}
		objective = make(map[int]float64)
		byPlant   = make([][]int, len(p.Plants))   // variable indices per plant
		byProduct = make([][]int, len(p.Products)) // variable indices per product
	)

	// Stage 1: route variables.
	var pi, qi, v int
	for pi = range p.Plants {
		costs := p.ProductionCost[p.Plants[pi].Name]
		for qi = range p.Products {
			cost, ok := costs[p.Products[qi].Name]
			if !ok {
				continue // this plant cannot make this product
			}
			v = m.AddVariable(p.Plants[pi].Name + " → " + p.Products[qi].Name)
			idx.Routes = append(idx.Routes, Route{
				Plant:      p.Plants[pi].Name,
				Product:    p.Products[qi].Name,
				PlantIdx:   pi,
				ProductIdx: qi,
			})
			objective[v] = cost + p.shipping(pi, qi)
			byPlant[pi] = append(byPlant[pi], v)
			byProduct[qi] = append(byProduct[qi], v)
		}
	}

	// Stage 2: capacity rows.
	for pi = range p.Plants {
		row := make(map[int]float64, len(byPlant[pi]))
		for _, v = range byPlant[pi] {
			row[v] = 1
		}
		ci, err := m.AddConstraint(row, lp.LessEq, p.Plants[pi].Capacity)
		if err != nil {
			return nil, nil, err
		}
		idx.CapacityRow[pi] = ci
	}

	// Stage 3: demand rows.
	rel := lp.Equal
	if p.Demand == MeetAtLeast {
		rel = lp.GreaterEq
	}
	for qi = range p.Products {
		row := make(map[int]float64, len(byProduct[qi]))
		for _, v = range byProduct[qi] {
			row[v] = 1
		}
		ci, err := m.AddConstraint(row, rel, p.Products[qi].Demand)
		if err != nil {
			return nil, nil, err
		}
		idx.DemandRow[qi] = ci
	}

	if err := m.SetObjective(objective, lp.Minimize); err != nil {
		return nil, nil, err
	}

	return m, idx, nil
}

// shipping reads the optional per-route shipping add-on, 0 when absent.
func (p Problem) shipping(pi, qi int) float64 {
	routes, ok := p.ShippingCost[p.Plants[pi].Name]
	if !ok {
		return 0
	}

	return routes[p.Products[qi].Name]
}

// validate performs every structural check before a single variable is
// created. Checks run in a fixed order so the first defect reported is
// deterministic.
func (p Problem) validate() error {
	if len(p.Plants) == 0 {
		return ErrNoPlants
	}
	if len(p.Products) == 0 {
		return ErrNoProducts
	}

	seen := make(map[string]struct{}, len(p.Plants)+len(p.Products))
	for i := range p.Plants {
		if p.Plants[i].Name == "" {
			return ErrDuplicateName
		}
		if _, dup := seen[p.Plants[i].Name]; dup {
			return ErrDuplicateName
		}
		seen[p.Plants[i].Name] = struct{}{}
		if p.Plants[i].Capacity < 0 || math.IsNaN(p.Plants[i].Capacity) {
			return ErrNegativeCapacity
		}
	}
	for i := range p.Products {
		if p.Products[i].Name == "" {
			return ErrDuplicateName
		}
		if _, dup := seen[p.Products[i].Name]; dup {
			return ErrDuplicateName
		}
		seen[p.Products[i].Name] = struct{}{}
		if p.Products[i].Demand < 0 || math.IsNaN(p.Products[i].Demand) {
			return ErrNegativeDemand
		}
	}

	// Cost sanity + the no-producer check: every product needs at least one
	// plant with a cost entry, otherwise its demand row references nothing.
	for qi := range p.Products {
		producers := 0
		for pi := range p.Plants {
			cost, ok := p.ProductionCost[p.Plants[pi].Name][p.Products[qi].Name]
			if !ok {
				continue
			}
			if math.IsNaN(cost) || math.IsInf(cost, 0) {
				return ErrBadCost
			}
			ship := p.shipping(pi, qi)
			if math.IsNaN(ship) || math.IsInf(ship, 0) {
				return ErrBadCost
			}
			producers++
		}
		if producers == 0 {
			return ErrNoProducer
		}
	}

	return nil
}
