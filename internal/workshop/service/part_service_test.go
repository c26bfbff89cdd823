package service

import (
	"bytes"
	"context"
	"testing"

	"github.com/robomate/servicedesk/internal/workshop/entity"
	"github.com/robomate/servicedesk/internal/workshop/repository"
	"github.com/robomate/servicedesk/internal/workshop/testutil"
	"github.com/xuri/excelize/v2"
)

func setupPartService(t *testing.T) (*PartService, *repository.Repositories) {
	t.Helper()
	repos := testutil.SetupRepos(t)
	return NewPartService(repos.Parts), repos
}

func TestPartListSeeded(t *testing.T) {
	svc, _ := setupPartService(t)
	parts := svc.List(context.Background())
	if len(parts) != len(entity.DefaultSpareParts) {
		t.Errorf("fresh catalog has %d parts, want %d", len(parts), len(entity.DefaultSpareParts))
	}
}

func TestPartCreate(t *testing.T) {
	svc, _ := setupPartService(t)
	ctx := context.Background()

	part, err := svc.Create(ctx, admin(), &CreatePartRequest{Name: "Blade Set", Price: 25})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if part.ID == "" {
		t.Error("created part should get a generated id")
	}
	if part.Category != entity.CategoryAccessories {
		t.Errorf("empty category should default to Accessories, got %q", part.Category)
	}
}

func TestPartCreateNonAdminNoOp(t *testing.T) {
	svc, repos := setupPartService(t)
	ctx := context.Background()

	before := len(repos.Parts.List(ctx))
	part, err := svc.Create(ctx, technician(), &CreatePartRequest{Name: "Sneaky Part", Price: 1})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if part != nil {
		t.Error("non-admin create should return nothing")
	}
	if len(repos.Parts.List(ctx)) != before {
		t.Error("non-admin create must leave the catalog unchanged")
	}
}

func TestPartUpdate(t *testing.T) {
	svc, _ := setupPartService(t)
	ctx := context.Background()

	price := 650.0
	part, err := svc.Update(ctx, admin(), "e-battery", &UpdatePartRequest{Price: &price})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if part.Price != 650 {
		t.Errorf("price = %v, want 650", part.Price)
	}
	if part.Name != "Battery" {
		t.Errorf("nil fields must be left untouched, name = %q", part.Name)
	}
}

func TestPartDeleteNonAdminNoOp(t *testing.T) {
	svc, repos := setupPartService(t)
	ctx := context.Background()

	if err := svc.Delete(ctx, technician(), "e-battery"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := repos.Parts.FindByID(ctx, "e-battery"); err != nil {
		t.Error("non-admin delete must leave the part in place")
	}

	if err := svc.Delete(ctx, admin(), "e-battery"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := repos.Parts.FindByID(ctx, "e-battery"); err == nil {
		t.Error("admin delete should remove the part")
	}
}

func TestPartImportReplacesCatalog(t *testing.T) {
	svc, repos := setupPartService(t)
	ctx := context.Background()

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	f.SetCellValue(sheet, "A1", "id")
	f.SetCellValue(sheet, "B1", "name")
	f.SetCellValue(sheet, "C1", "category")
	f.SetCellValue(sheet, "D1", "price")
	f.SetCellValue(sheet, "A2", "x-1")
	f.SetCellValue(sheet, "B2", "Replacement Wheel")
	f.SetCellValue(sheet, "C2", entity.CategoryChassis)
	f.SetCellValue(sheet, "D2", "99.5")
	// no name: dropped
	f.SetCellValue(sheet, "A3", "x-2")
	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		t.Fatalf("write workbook: %v", err)
	}
	f.Close()

	result, err := svc.ImportParts(ctx, admin(), &buf)
	if err != nil {
		t.Fatalf("ImportParts: %v", err)
	}
	if result.Imported != 1 || result.Failed != 1 {
		t.Errorf("imported=%d failed=%d, want 1/1", result.Imported, result.Failed)
	}

	parts := repos.Parts.List(ctx)
	if len(parts) != 1 {
		t.Fatalf("catalog should be replaced wholesale, got %d parts", len(parts))
	}
	if parts[0].ID != "x-1" || parts[0].Price != 99.5 {
		t.Errorf("unexpected imported part: %+v", parts[0])
	}
}

func TestPartImportNonAdminNoOp(t *testing.T) {
	svc, repos := setupPartService(t)
	ctx := context.Background()

	before := len(repos.Parts.List(ctx))
	result, err := svc.ImportParts(ctx, technician(), bytes.NewBufferString("ignored"))
	if err != nil {
		t.Fatalf("ImportParts: %v", err)
	}
	if result.Imported != 0 {
		t.Errorf("imported = %d, want 0", result.Imported)
	}
	if len(repos.Parts.List(ctx)) != before {
		t.Error("non-admin import must leave the catalog unchanged")
	}
}
