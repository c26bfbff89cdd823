package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/robomate/servicedesk/internal/workshop/entity"
	"github.com/robomate/servicedesk/internal/workshop/repository"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

const recordSheet = "Repair Records"

// Export column order. The denormalized customer/parts columns exist for
// human readability in the spreadsheet; the JSON blob columns at the end
// are what actually survives a round trip.
var recordExportHeaders = []string{
	"id", "rmaNumber", "ticketNumber", "entryDate", "arrivalDate",
	"status", "technician", "productModel", "productArea", "productName",
	"faultDescription", "technicianNotes", "laborCost",
	"customerName", "customerEmail", "customerPhone", "customerAddress",
	"partsSummary", "aiQuote", "aiReport", "aiSms",
	"customer", "partsActions", "checklist", "intake",
}

// ImportResult reports how a reconciliation import went.
type ImportResult struct {
	Added   int `json:"added"`
	Skipped int `json:"skipped"` // id already present in the store
	Failed  int `json:"failed"`  // row unusable (no id)
}

// ReconcileService serializes the record collection to a spreadsheet
// and merges externally edited spreadsheets back in.
type ReconcileService struct {
	recordRepo *repository.RecordRepository
	logger     *zap.Logger
}

func NewReconcileService(recordRepo *repository.RecordRepository, logger *zap.Logger) *ReconcileService {
	return &ReconcileService{recordRepo: recordRepo, logger: logger}
}

// ExportRecords produces one flat row per record: scalar fields, a
// denormalized customer/parts summary, and the nested structures as
// JSON blobs in dedicated columns.
func (s *ReconcileService) ExportRecords(ctx context.Context) (*excelize.File, string, error) {
	records := s.recordRepo.List(ctx)

	f := excelize.NewFile()
	f.SetSheetName("Sheet1", recordSheet)

	boldStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 11},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#D9E1F2"}},
		Border: []excelize.Border{
			{Type: "bottom", Color: "000000", Style: 1},
		},
	})

	for i, h := range recordExportHeaders {
		col, _ := excelize.ColumnNumberToName(i + 1)
		cell := col + "1"
		f.SetCellValue(recordSheet, cell, h)
		f.SetCellStyle(recordSheet, cell, cell, boldStyle)
	}

	for rowIdx := range records {
		rec := &records[rowIdx]
		row := rowIdx + 2
		for colIdx, value := range exportRow(rec) {
			col, _ := excelize.ColumnNumberToName(colIdx + 1)
			f.SetCellValue(recordSheet, fmt.Sprintf("%s%d", col, row), value)
		}
	}

	colWidths := []float64{
		30, 16, 12, 12, 12,
		14, 12, 14, 10, 18,
		40, 40, 10,
		18, 24, 16, 30,
		30, 40, 40, 30,
		30, 30, 30, 30,
	}
	for i, w := range colWidths {
		col, _ := excelize.ColumnNumberToName(i + 1)
		f.SetColWidth(recordSheet, col, col, w)
	}

	filename := fmt.Sprintf("Robomate_Records_%s.xlsx", time.Now().Format("2006-01-02"))
	return f, filename, nil
}

// ImportRecords reads a previously exported (possibly externally
// edited) spreadsheet and merges its rows into the collection. Only
// rows whose id is not already present are added, prepended in file
// order; colliding ids are silently dropped. A structurally invalid
// file aborts with an error and zero mutation.
func (s *ReconcileService) ImportRecords(ctx context.Context, r io.Reader) (*ImportResult, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet: %w", err)
	}

	result := &ImportResult{}
	if len(rows) < 2 {
		return result, nil
	}

	// Column positions come from the header row, so column order and
	// extra columns in hand-edited files do not matter.
	colIndex := make(map[string]int, len(rows[0]))
	for i, h := range rows[0] {
		colIndex[strings.TrimSpace(h)] = i
	}

	existing := s.recordRepo.IDs(ctx)
	var fresh []entity.RepairRecord
	for _, row := range rows[1:] {
		rec, ok := parseRecordRow(colIndex, row)
		if !ok {
			result.Failed++
			continue
		}
		if _, dup := existing[rec.ID]; dup {
			result.Skipped++
			continue
		}
		existing[rec.ID] = struct{}{}
		fresh = append(fresh, *rec)
	}

	if err := s.recordRepo.PrependAll(ctx, fresh); err != nil {
		return nil, err
	}
	result.Added = len(fresh)
	s.logger.Info("records imported",
		zap.Int("added", result.Added),
		zap.Int("skipped", result.Skipped),
		zap.Int("failed", result.Failed))
	return result, nil
}

func exportRow(rec *entity.RepairRecord) []interface{} {
	partsSummary := make([]string, 0, len(rec.PartsActions))
	for _, pa := range rec.PartsActions {
		partsSummary = append(partsSummary, pa.PartID+":"+pa.Action)
	}

	customerJSON, _ := json.Marshal(rec.Customer)
	actionsJSON, _ := json.Marshal(rec.PartsActions)
	checklistJSON := "{}"
	if rec.Checklist != nil {
		b, _ := json.Marshal(rec.Checklist)
		checklistJSON = string(b)
	}
	intakeJSON := "{}"
	if rec.Intake != nil {
		b, _ := json.Marshal(rec.Intake)
		intakeJSON = string(b)
	}

	return []interface{}{
		rec.ID, rec.RMANumber, rec.TicketNumber, rec.EntryDate, rec.ArrivalDate,
		rec.Status, rec.Technician, rec.ProductModel, rec.ProductArea, rec.ProductName,
		rec.FaultDescription, rec.TechnicianNotes, rec.LaborCost,
		rec.Customer.Name, rec.Customer.Email, rec.Customer.Phone, rec.Customer.Address,
		strings.Join(partsSummary, ", "), rec.AIQuote, rec.AIReport, rec.AISMS,
		string(customerJSON), string(actionsJSON), checklistJSON, intakeJSON,
	}
}

// parseRecordRow rebuilds a record from one spreadsheet row. The JSON
// blob columns are authoritative; when a blob is absent or unparsable
// the nested shape is reconstructed best-effort from the flat columns,
// defaulting missing substructure to empty.
func parseRecordRow(colIndex map[string]int, row []string) (*entity.RepairRecord, bool) {
	get := func(name string) string {
		i, ok := colIndex[name]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	id := get("id")
	if id == "" {
		return nil, false
	}

	laborCost, _ := strconv.ParseFloat(get("laborCost"), 64)

	rec := &entity.RepairRecord{
		ID:               id,
		RMANumber:        get("rmaNumber"),
		TicketNumber:     get("ticketNumber"),
		EntryDate:        get("entryDate"),
		ArrivalDate:      get("arrivalDate"),
		Status:           get("status"),
		Technician:       get("technician"),
		ProductModel:     get("productModel"),
		ProductArea:      get("productArea"),
		ProductName:      get("productName"),
		FaultDescription: get("faultDescription"),
		TechnicianNotes:  get("technicianNotes"),
		LaborCost:        laborCost,
		AIQuote:          get("aiQuote"),
		AIReport:         get("aiReport"),
		AISMS:            get("aiSms"),
		PartsActions:     []entity.PartAction{},
	}

	// Customer: blob first, flat columns as fallback.
	var customer entity.Customer
	if err := json.Unmarshal([]byte(get("customer")), &customer); err == nil {
		rec.Customer = customer
	} else {
		rec.Customer = entity.Customer{
			Name:    get("customerName"),
			Email:   get("customerEmail"),
			Phone:   get("customerPhone"),
			Address: get("customerAddress"),
		}
	}

	var actions []entity.PartAction
	if err := json.Unmarshal([]byte(get("partsActions")), &actions); err == nil && actions != nil {
		rec.PartsActions = actions
	}

	var checklist entity.RepairChecklist
	if raw := get("checklist"); raw != "" && raw != "{}" {
		if err := json.Unmarshal([]byte(raw), &checklist); err == nil {
			rec.Checklist = &checklist
		}
	}

	var intake entity.IntakeInspection
	if raw := get("intake"); raw != "" && raw != "{}" {
		if err := json.Unmarshal([]byte(raw), &intake); err == nil {
			rec.Intake = &intake
		}
	}

	return rec, true
}
