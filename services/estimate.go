package services

import (
	"fmt"
	"sort"
)

// BreakdownRow is the computed cost of a single requested service.
type BreakdownRow struct {
	Service string
	Unit    PricingUnit
	Cost    float64
}

// UnknownServiceError reports a requested service that is not in the
// catalog. The UI only offers catalog names, so hitting this means a
// wiring bug in the caller rather than bad user input.
type UnknownServiceError struct {
	Service string
}

func (e *UnknownServiceError) Error() string {
	return fmt.Sprintf("unknown service %q: not in the price catalog", e.Service)
}

// Estimate computes the per-service cost breakdown and total for the
// requested services. Per-guest services scale with the guest count, fixed
// services do not; both are multiplied by the tier factor. The breakdown is
// sorted by service name and the total is the exact unrounded sum. An empty
// service list yields an empty breakdown and a zero total.
func Estimate(catalog Catalog, services []string, guests int, tierFactor float64) ([]BreakdownRow, float64, error) {
	rows := make([]BreakdownRow, 0, len(services))
	var total float64

	for _, name := range services {
		def, ok := catalog[name]
		if !ok {
			return nil, 0, &UnknownServiceError{Service: name}
		}

		var cost float64
		if def.Unit == UnitPerGuest {
			cost = def.Base * float64(guests) * tierFactor
		} else {
			cost = def.Base * tierFactor
		}

		rows = append(rows, BreakdownRow{Service: def.Name, Unit: def.Unit, Cost: cost})
		total += cost
	}

	sort.Slice(rows, func(i, j int) bool {
		return rows[i].Service < rows[j].Service
	})

	return rows, total, nil
}
