package service

import (
	"testing"

	"github.com/robomate/servicedesk/internal/workshop/entity"
)

func testPartIndex() entity.PartIndex {
	return entity.NewPartIndex([]entity.Part{
		{ID: "m-wheel-l", Name: "Left Front Wheel Motor", Category: entity.CategoryMotor, Price: 320},
		{ID: "e-battery", Name: "Battery", Category: entity.CategoryElectronics, Price: 600},
		{ID: "c-boot-l", Name: "Left Rubber Boot", Category: entity.CategoryChassis, Price: 20},
	})
}

func TestTotalCost(t *testing.T) {
	parts := testPartIndex()

	rec := &entity.RepairRecord{
		LaborCost: 120,
		PartsActions: []entity.PartAction{
			{PartID: "m-wheel-l", Action: entity.ActionReplaced},
			{PartID: "c-boot-l", Action: entity.ActionReplaced},
		},
	}
	if got := TotalCost(rec, parts); got != 460 {
		t.Errorf("TotalCost = %v, want 460", got)
	}
}

func TestTotalCostRepairedPartsAreFree(t *testing.T) {
	parts := testPartIndex()

	rec := &entity.RepairRecord{
		LaborCost: 50,
		PartsActions: []entity.PartAction{
			{PartID: "e-battery", Action: entity.ActionRepaired},
		},
	}
	if got := TotalCost(rec, parts); got != 50 {
		t.Errorf("repaired parts must not be billed: got %v, want 50", got)
	}
}

func TestTotalCostMissingPartIsZero(t *testing.T) {
	parts := testPartIndex()

	rec := &entity.RepairRecord{
		LaborCost: 80,
		PartsActions: []entity.PartAction{
			{PartID: "no-such-part", Action: entity.ActionReplaced},
		},
	}
	if got := TotalCost(rec, parts); got != 80 {
		t.Errorf("dangling part reference must contribute zero: got %v, want 80", got)
	}
}

func TestTotalCostOrderIndependent(t *testing.T) {
	parts := testPartIndex()

	a := &entity.RepairRecord{
		LaborCost: 10,
		PartsActions: []entity.PartAction{
			{PartID: "m-wheel-l", Action: entity.ActionReplaced},
			{PartID: "e-battery", Action: entity.ActionReplaced},
		},
	}
	b := &entity.RepairRecord{
		LaborCost: 10,
		PartsActions: []entity.PartAction{
			{PartID: "e-battery", Action: entity.ActionReplaced},
			{PartID: "m-wheel-l", Action: entity.ActionReplaced},
		},
	}
	if TotalCost(a, parts) != TotalCost(b, parts) {
		t.Error("total must not depend on action order")
	}
}
