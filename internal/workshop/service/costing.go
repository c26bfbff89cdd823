package service

import (
	"github.com/robomate/servicedesk/internal/workshop/entity"
)

// TotalCost derives a record's monetary total from the current catalog:
// labor cost plus the price of every part marked replaced. Repaired
// parts contribute nothing, and a part action whose part has since been
// removed from the catalog contributes zero rather than erroring. The
// result is recomputed on demand and never cached on the record, since
// the catalog may change underneath it.
func TotalCost(rec *entity.RepairRecord, parts entity.PartIndex) float64 {
	total := rec.LaborCost
	for _, pa := range rec.PartsActions {
		if pa.Action != entity.ActionReplaced {
			continue
		}
		if part, ok := parts[pa.PartID]; ok {
			total += part.Price
		}
	}
	return total
}
