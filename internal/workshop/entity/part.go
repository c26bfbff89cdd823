package entity

// Part categories. Imported catalogs may carry free-form category names,
// so these are conventions rather than a closed enum.
const (
	CategoryMotor       = "Motor"
	CategoryElectronics = "Electronics"
	CategoryChassis     = "Chassis"
	CategoryCutting     = "Cutting"
	CategoryAccessories = "Accessories"
)

// Part is a purchasable or repairable spare part in the catalog.
type Part struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Price    float64 `json:"price"`
}

// PartIndex provides price/name lookup by part id for cost calculation
// and quote assembly.
type PartIndex map[string]Part

// NewPartIndex builds a lookup index over a parts slice.
func NewPartIndex(parts []Part) PartIndex {
	idx := make(PartIndex, len(parts))
	for _, p := range parts {
		idx[p.ID] = p
	}
	return idx
}
