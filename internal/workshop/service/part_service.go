package service

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/robomate/servicedesk/internal/workshop/entity"
	"github.com/robomate/servicedesk/internal/workshop/repository"
	"github.com/xuri/excelize/v2"
)

const partSheet = "Spare Parts"

var partExportHeaders = []string{"id", "name", "category", "price"}

// CreatePartRequest adds a new catalog part.
type CreatePartRequest struct {
	Name     string  `json:"name" binding:"required"`
	Category string  `json:"category"`
	Price    float64 `json:"price"`
}

// UpdatePartRequest renames or reprices a part. Nil fields are left
// untouched.
type UpdatePartRequest struct {
	Name     *string  `json:"name"`
	Category *string  `json:"category"`
	Price    *float64 `json:"price"`
}

// PartImportResult reports a catalog bulk import.
type PartImportResult struct {
	Imported int `json:"imported"`
	Failed   int `json:"failed"`
}

// PartService is the catalog administration surface. Every mutation is
// restricted to administrators; for anyone else the operations silently
// leave the catalog unchanged.
type PartService struct {
	repo *repository.PartRepository
}

func NewPartService(repo *repository.PartRepository) *PartService {
	return &PartService{repo: repo}
}

// List returns the current catalog.
func (s *PartService) List(ctx context.Context) []entity.Part {
	return s.repo.List(ctx)
}

// Create adds a part with a generated id.
func (s *PartService) Create(ctx context.Context, actor *entity.User, req *CreatePartRequest) (*entity.Part, error) {
	if !isAdmin(actor) {
		return nil, nil
	}
	category := req.Category
	if category == "" {
		category = entity.CategoryAccessories
	}
	part := &entity.Part{
		ID:       "custom-" + uuid.New().String()[:8],
		Name:     strings.TrimSpace(req.Name),
		Category: category,
		Price:    req.Price,
	}
	if err := s.repo.Create(ctx, part); err != nil {
		return nil, fmt.Errorf("create part: %w", err)
	}
	return part, nil
}

// Update renames or reprices a part in place.
func (s *PartService) Update(ctx context.Context, actor *entity.User, id string, req *UpdatePartRequest) (*entity.Part, error) {
	if !isAdmin(actor) {
		return nil, nil
	}
	part, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Name != nil {
		part.Name = strings.TrimSpace(*req.Name)
	}
	if req.Category != nil {
		part.Category = *req.Category
	}
	if req.Price != nil {
		part.Price = *req.Price
	}
	if err := s.repo.Update(ctx, part); err != nil {
		return nil, fmt.Errorf("update part: %w", err)
	}
	return part, nil
}

// Delete removes a part from the catalog. Records referencing it keep
// their part actions; costing treats the dangling reference as zero.
func (s *PartService) Delete(ctx context.Context, actor *entity.User, id string) error {
	if !isAdmin(actor) {
		return nil
	}
	return s.repo.Delete(ctx, id)
}

// ExportParts writes the catalog to a spreadsheet.
func (s *PartService) ExportParts(ctx context.Context) (*excelize.File, string, error) {
	parts := s.repo.List(ctx)

	f := excelize.NewFile()
	f.SetSheetName("Sheet1", partSheet)

	boldStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 11},
	})
	for i, h := range partExportHeaders {
		col, _ := excelize.ColumnNumberToName(i + 1)
		cell := col + "1"
		f.SetCellValue(partSheet, cell, h)
		f.SetCellStyle(partSheet, cell, cell, boldStyle)
	}
	for i, p := range parts {
		row := i + 2
		f.SetCellValue(partSheet, fmt.Sprintf("A%d", row), p.ID)
		f.SetCellValue(partSheet, fmt.Sprintf("B%d", row), p.Name)
		f.SetCellValue(partSheet, fmt.Sprintf("C%d", row), p.Category)
		f.SetCellValue(partSheet, fmt.Sprintf("D%d", row), p.Price)
	}

	for i, w := range []float64{18, 32, 14, 10} {
		col, _ := excelize.ColumnNumberToName(i + 1)
		f.SetColWidth(partSheet, col, col, w)
	}

	filename := fmt.Sprintf("Robomate_Spare_Parts_%s.xlsx", time.Now().Format("2006-01-02"))
	return f, filename, nil
}

// ImportParts replaces the whole catalog with the rows of an uploaded
// spreadsheet. Rows without a name are dropped; rows without an id get
// a generated one. Non-administrators are a silent no-op.
func (s *PartService) ImportParts(ctx context.Context, actor *entity.User, r io.Reader) (*PartImportResult, error) {
	if !isAdmin(actor) {
		return &PartImportResult{}, nil
	}

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

	result := &PartImportResult{}
	if len(rows) < 2 {
		return result, nil
	}

	colIndex := make(map[string]int, len(rows[0]))
	for i, h := range rows[0] {
		colIndex[strings.TrimSpace(h)] = i
	}

	var parts []entity.Part
	for _, row := range rows[1:] {
		get := func(name string) string {
			i, ok := colIndex[name]
			if !ok || i >= len(row) {
				return ""
			}
			return strings.TrimSpace(row[i])
		}

		name := get("name")
		if name == "" {
			result.Failed++
			continue
		}
		id := get("id")
		if id == "" {
			id = "imported-" + uuid.New().String()[:8]
		}
		category := get("category")
		if category == "" {
			category = entity.CategoryAccessories
		}
		price, _ := strconv.ParseFloat(get("price"), 64)

		parts = append(parts, entity.Part{ID: id, Name: name, Category: category, Price: price})
	}

	if len(parts) == 0 {
		return result, nil
	}
	if err := s.repo.ReplaceAll(ctx, parts); err != nil {
		return nil, err
	}
	result.Imported = len(parts)
	return result, nil
}

func isAdmin(actor *entity.User) bool {
	return actor != nil && actor.IsAdmin
}
