package service

import (
	"strings"

	"github.com/robomate/servicedesk/internal/shared/generator"
	"github.com/robomate/servicedesk/internal/workshop/entity"
)

// Written on a record when no part was replaced or repaired.
const maintenanceSummary = "General maintenance, diagnostics, and calibration performed. No hardware changes."

// QuoteItems lists every part action on a record as a priced quotation
// line. Repaired parts appear at zero with a "(Repair)" suffix so the
// customer sees the full scope of work, not only what is billed.
func QuoteItems(rec *entity.RepairRecord, parts entity.PartIndex) []generator.QuoteItem {
	items := make([]generator.QuoteItem, 0, len(rec.PartsActions))
	for _, pa := range rec.PartsActions {
		name := pa.PartID
		price := 0.0
		if part, ok := parts[pa.PartID]; ok {
			name = part.Name
			price = part.Price
		}
		if pa.Action == entity.ActionRepaired {
			items = append(items, generator.QuoteItem{Name: name + " (Repair)", Price: 0})
			continue
		}
		items = append(items, generator.QuoteItem{Name: name, Price: price})
	}
	return items
}

// ActionSummary renders the human-readable summary of what was done to
// the unit. Part ids that no longer resolve against the catalog fall
// back to the raw id.
func ActionSummary(rec *entity.RepairRecord, parts entity.PartIndex) string {
	var replaced, repaired []string
	for _, pa := range rec.PartsActions {
		name := pa.PartID
		if part, ok := parts[pa.PartID]; ok {
			name = part.Name
		}
		switch pa.Action {
		case entity.ActionReplaced:
			replaced = append(replaced, name)
		case entity.ActionRepaired:
			repaired = append(repaired, name)
		}
	}

	if len(replaced) == 0 && len(repaired) == 0 {
		return maintenanceSummary
	}

	var b strings.Builder
	if len(replaced) > 0 {
		b.WriteString("Replaced Components: " + strings.Join(replaced, ", ") + ". ")
	}
	if len(repaired) > 0 {
		b.WriteString("Repaired Components: " + strings.Join(repaired, ", ") + ". ")
	}
	return strings.TrimSpace(b.String())
}

// BuildQuotePayload assembles the structured summary handed to the text
// generator when quoting a job, including the itemized cost breakdown
// and grand total.
func BuildQuotePayload(rec *entity.RepairRecord, parts entity.PartIndex) *generator.QuotePayload {
	return &generator.QuotePayload{
		CustomerName:    rec.Customer.Name,
		ProductModel:    rec.ProductModel,
		ProductArea:     rec.ProductArea,
		RMANumber:       rec.RMANumber,
		Items:           QuoteItems(rec, parts),
		LaborCost:       rec.LaborCost,
		TotalCost:       TotalCost(rec, parts),
		TechnicianNotes: rec.TechnicianNotes,
	}
}

// BuildReportPayload assembles the structured summary handed to the
// text generator when a repair is completed.
func BuildReportPayload(rec *entity.RepairRecord, parts entity.PartIndex) *generator.ReportPayload {
	return &generator.ReportPayload{
		CustomerName:    rec.Customer.Name,
		ProductModel:    rec.ProductModel,
		ProductArea:     rec.ProductArea,
		ProductName:     rec.ProductName,
		RMANumber:       rec.RMANumber,
		ActionSummary:   ActionSummary(rec, parts),
		TechnicianNotes: rec.TechnicianNotes,
	}
}
