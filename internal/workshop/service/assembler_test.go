package service

import (
	"testing"

	"github.com/robomate/servicedesk/internal/workshop/entity"
)

func TestQuoteItems(t *testing.T) {
	parts := testPartIndex()
	rec := &entity.RepairRecord{
		PartsActions: []entity.PartAction{
			{PartID: "m-wheel-l", Action: entity.ActionReplaced},
			{PartID: "e-battery", Action: entity.ActionRepaired},
		},
	}

	items := QuoteItems(rec, parts)
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[0].Name != "Left Front Wheel Motor" || items[0].Price != 320 {
		t.Errorf("unexpected replaced item: %+v", items[0])
	}
	if items[1].Name != "Battery (Repair)" || items[1].Price != 0 {
		t.Errorf("repaired item should be suffixed and free: %+v", items[1])
	}
}

func TestActionSummary(t *testing.T) {
	parts := testPartIndex()

	rec := &entity.RepairRecord{
		PartsActions: []entity.PartAction{
			{PartID: "m-wheel-l", Action: entity.ActionReplaced},
			{PartID: "e-battery", Action: entity.ActionRepaired},
		},
	}
	got := ActionSummary(rec, parts)
	want := "Replaced Components: Left Front Wheel Motor. Repaired Components: Battery."
	if got != want {
		t.Errorf("ActionSummary = %q, want %q", got, want)
	}
}

func TestActionSummaryNoHardwareChanges(t *testing.T) {
	got := ActionSummary(&entity.RepairRecord{}, testPartIndex())
	if got != maintenanceSummary {
		t.Errorf("empty action list should read as maintenance, got %q", got)
	}
}

func TestActionSummaryDanglingPartFallsBackToID(t *testing.T) {
	rec := &entity.RepairRecord{
		PartsActions: []entity.PartAction{
			{PartID: "gone-part", Action: entity.ActionReplaced},
		},
	}
	got := ActionSummary(rec, testPartIndex())
	want := "Replaced Components: gone-part."
	if got != want {
		t.Errorf("ActionSummary = %q, want %q", got, want)
	}
}

func TestBuildQuotePayload(t *testing.T) {
	parts := testPartIndex()
	rec := &entity.RepairRecord{
		RMANumber: "RMA-1",
		Customer:  entity.Customer{Name: "Alice"},
		LaborCost: 100,
		PartsActions: []entity.PartAction{
			{PartID: "c-boot-l", Action: entity.ActionReplaced},
		},
	}

	payload := BuildQuotePayload(rec, parts)
	if payload.CustomerName != "Alice" || payload.RMANumber != "RMA-1" {
		t.Errorf("unexpected payload header: %+v", payload)
	}
	if payload.TotalCost != 120 {
		t.Errorf("payload total = %v, want 120", payload.TotalCost)
	}
	if len(payload.Items) != 1 {
		t.Errorf("expected 1 item, got %d", len(payload.Items))
	}
}
