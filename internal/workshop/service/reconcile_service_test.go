package service

import (
	"bytes"
	"context"
	"fmt"
	"testing"

	"github.com/robomate/servicedesk/internal/workshop/entity"
	"github.com/robomate/servicedesk/internal/workshop/repository"
	"github.com/robomate/servicedesk/internal/workshop/testutil"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

func setupReconcile(t *testing.T) (*ReconcileService, *repository.Repositories) {
	t.Helper()
	repos := testutil.SetupRepos(t)
	return NewReconcileService(repos.Records, zap.NewNop()), repos
}

func exportBuffer(t *testing.T, svc *ReconcileService) *bytes.Buffer {
	t.Helper()
	f, _, err := svc.ExportRecords(context.Background())
	if err != nil {
		t.Fatalf("ExportRecords: %v", err)
	}
	defer f.Close()
	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		t.Fatalf("write workbook: %v", err)
	}
	return &buf
}

func TestExportImportRoundTripAddsNothing(t *testing.T) {
	svc, repos := setupReconcile(t)
	ctx := context.Background()

	buf := exportBuffer(t, svc)
	before := repos.Records.Count(ctx)

	result, err := svc.ImportRecords(ctx, buf)
	if err != nil {
		t.Fatalf("ImportRecords: %v", err)
	}
	if result.Added != 0 {
		t.Errorf("re-importing own export added %d records", result.Added)
	}
	if result.Skipped != before {
		t.Errorf("skipped = %d, want %d", result.Skipped, before)
	}
	if repos.Records.Count(ctx) != before {
		t.Error("round trip must not change the collection")
	}
}

func TestImportPrependsFreshRowsInFileOrder(t *testing.T) {
	svc, repos := setupReconcile(t)
	ctx := context.Background()

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	f.SetCellValue(sheet, "A1", "id")
	f.SetCellValue(sheet, "B1", "rmaNumber")
	f.SetCellValue(sheet, "C1", "status")
	for i, id := range []string{"2001", "2002", "2003"} {
		row := i + 2
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), id)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), "RMA-"+id)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), entity.StatusPending)
	}
	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		t.Fatalf("write workbook: %v", err)
	}
	f.Close()

	before := repos.Records.Count(ctx)
	result, err := svc.ImportRecords(ctx, &buf)
	if err != nil {
		t.Fatalf("ImportRecords: %v", err)
	}
	if result.Added != 3 {
		t.Fatalf("added = %d, want 3", result.Added)
	}

	list := repos.Records.List(ctx)
	if len(list) != before+3 {
		t.Fatalf("count = %d, want %d", len(list), before+3)
	}
	for i, want := range []string{"2001", "2002", "2003"} {
		if list[i].ID != want {
			t.Errorf("list[%d].ID = %q, want %q (file order)", i, list[i].ID, want)
		}
	}
}

func TestImportSkipsCollidingIDsSilently(t *testing.T) {
	svc, repos := setupReconcile(t)
	ctx := context.Background()

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	f.SetCellValue(sheet, "A1", "id")
	f.SetCellValue(sheet, "B1", "rmaNumber")
	// 1001 collides with seed data; 3001 is fresh.
	f.SetCellValue(sheet, "A2", "1001")
	f.SetCellValue(sheet, "B2", "RMA-EDITED")
	f.SetCellValue(sheet, "A3", "3001")
	f.SetCellValue(sheet, "B3", "RMA-3001")
	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		t.Fatalf("write workbook: %v", err)
	}
	f.Close()

	result, err := svc.ImportRecords(ctx, &buf)
	if err != nil {
		t.Fatalf("ImportRecords: %v", err)
	}
	if result.Added != 1 || result.Skipped != 1 {
		t.Errorf("added=%d skipped=%d, want 1/1", result.Added, result.Skipped)
	}

	// The stored 1001 keeps its original content.
	stored, err := repos.Records.FindByID(ctx, "1001")
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if stored.RMANumber == "RMA-EDITED" {
		t.Error("colliding row must not overwrite the stored record")
	}
}

func TestImportMalformedFileMutatesNothing(t *testing.T) {
	svc, repos := setupReconcile(t)
	ctx := context.Background()

	before := repos.Records.Count(ctx)
	_, err := svc.ImportRecords(ctx, bytes.NewBufferString("this is not a workbook"))
	if err == nil {
		t.Fatal("expected an error for a malformed file")
	}
	if repos.Records.Count(ctx) != before {
		t.Error("failed import must not mutate the collection")
	}
}

func TestImportReconstructsFromFlatColumns(t *testing.T) {
	svc, repos := setupReconcile(t)
	ctx := context.Background()

	// A hand-edited sheet without the JSON blob columns.
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	headers := []string{"id", "rmaNumber", "customerName", "customerEmail", "laborCost", "status"}
	for i, h := range headers {
		col, _ := excelize.ColumnNumberToName(i + 1)
		f.SetCellValue(sheet, col+"1", h)
	}
	f.SetCellValue(sheet, "A2", "4001")
	f.SetCellValue(sheet, "B2", "RMA-4001")
	f.SetCellValue(sheet, "C2", "Dana Green")
	f.SetCellValue(sheet, "D2", "dana@example.com")
	f.SetCellValue(sheet, "E2", "75.5")
	f.SetCellValue(sheet, "F2", entity.StatusInProgress)
	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		t.Fatalf("write workbook: %v", err)
	}
	f.Close()

	if _, err := svc.ImportRecords(ctx, &buf); err != nil {
		t.Fatalf("ImportRecords: %v", err)
	}

	rec, err := repos.Records.FindByID(ctx, "4001")
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if rec.Customer.Name != "Dana Green" || rec.Customer.Email != "dana@example.com" {
		t.Errorf("customer not rebuilt from flat columns: %+v", rec.Customer)
	}
	if rec.LaborCost != 75.5 {
		t.Errorf("laborCost = %v, want 75.5", rec.LaborCost)
	}
	if rec.Status != entity.StatusInProgress {
		t.Errorf("status = %q, want %q", rec.Status, entity.StatusInProgress)
	}
}

func TestImportRowWithoutIDCountsAsFailed(t *testing.T) {
	svc, _ := setupReconcile(t)

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	f.SetCellValue(sheet, "A1", "id")
	f.SetCellValue(sheet, "B1", "rmaNumber")
	f.SetCellValue(sheet, "B2", "RMA-NO-ID")
	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		t.Fatalf("write workbook: %v", err)
	}
	f.Close()

	result, err := svc.ImportRecords(context.Background(), &buf)
	if err != nil {
		t.Fatalf("ImportRecords: %v", err)
	}
	if result.Failed != 1 || result.Added != 0 {
		t.Errorf("failed=%d added=%d, want 1/0", result.Failed, result.Added)
	}
}
