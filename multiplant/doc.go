// Package multiplant turns production-planning data — plants with
// capacities, products with demands, per-route unit costs — into a linear
// program, solves it, and maps the answer back into a named Plan.
//
// 🚀 What is the multi-plant problem?
//
//	Several manufacturing sites can each make some subset of the product
//	range, at different unit costs, under a per-plant capacity limit.
//	Every product has a demand that must be met (exactly, or at least).
//	The optimizer picks how many units each plant makes of each product so
//	total cost — production plus optional shipping — is minimal.
//
// ✨ How it maps to an LP:
//
//   - one variable per producible (plant, product) route, labeled
//     "plant → product";
//   - one ≤ row per plant: its total output cannot exceed capacity;
//   - one = (MeetExactly) or ≥ (MeetAtLeast) row per product: allocations
//     must cover demand;
//   - objective: Σ (production + shipping) cost × quantity, minimized.
//
// A plant that cannot make a product simply has no cost entry for it and
// no variable is created. Structural defects — negative capacity or
// demand, duplicate names, a product no plant can make — are rejected with
// sentinel errors before any solver work starts.
//
// ⚙️ Usage:
//
//	problem := multiplant.Problem{
//	    Plants:   []multiplant.Plant{{Name: "A", Capacity: 100}, {Name: "B", Capacity: 80}},
//	    Products: []multiplant.Product{{Name: "X", Demand: 150}},
//	    ProductionCost: map[string]map[string]float64{
//	        "A": {"X": 5},
//	        "B": {"X": 7},
//	    },
//	}
//
//	plan, err := multiplant.Optimize(problem, simplex.WithDuals())
//	if err != nil {
//	    // structural defect or solver failure
//	}
//	if plan.Status == simplex.StatusOptimal {
//	    fmt.Println("cost:", plan.TotalCost) // 850
//	}
//
// Infeasible demand (more than the plants can jointly produce under
// MeetExactly) comes back as plan.Status == simplex.StatusInfeasible —
// an answer to branch on, not an error.
//
// With simplex.WithDuals, the Plan also carries shadow prices by name:
// CapacityDuals tells what one extra unit of a plant's capacity does to
// total cost (≤ 0: it can only help), DemandDuals what one extra demanded
// unit costs (≥ 0).
package multiplant
