package generator

import "github.com/jamesliupenn/vehicle-simulator/internal/catalog"

// Allocation is the share of the requested sample total assigned to
// one (category, subcategory) label.
type Allocation struct {
	Category    string
	Subcategory string
	Count       int
}

// Plan distributes total samples across every (category, subcategory)
// pair in catalog order. Each pair receives the floor share and the
// remainder goes to the first pairs, so when total is smaller than the
// number of pairs exactly the first total pairs receive one sample
// each. Zero-count allocations are kept in the plan; the orchestrator
// skips them.
func Plan(cat catalog.Catalog, total int) []Allocation {
	pairs := cat.Pairs()
	allocs := make([]Allocation, len(pairs))

	base, remainder := 0, 0
	if total > 0 && len(pairs) > 0 {
		base = total / len(pairs)
		remainder = total % len(pairs)
	}

	for i, p := range pairs {
		count := base
		if i < remainder {
			count++
		}
		allocs[i] = Allocation{
			Category:    p.Category,
			Subcategory: p.Subcategory,
			Count:       count,
		}
	}
	return allocs
}
