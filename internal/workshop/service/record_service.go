package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/robomate/servicedesk/internal/shared/generator"
	"github.com/robomate/servicedesk/internal/workshop/entity"
	"github.com/robomate/servicedesk/internal/workshop/repository"
	"go.uber.org/zap"
)

// Validation errors surfaced to the user. Neither mutates any state.
var (
	ErrQuoteRequiresCost = errors.New("select parts or add labor cost to generate a quote")
	ErrNotesRequired     = errors.New("technician notes are required to complete a repair")
)

// Placeholder texts written onto the record when the external text
// generator fails, so the UI always has something to display. The
// record still reaches its target status.
const (
	QuoteFallbackText  = "Error generating quote. Please try again."
	ReportFallbackText = "Error generating AI report. Please check your connection and try again."
	SMSFallbackText    = "Error generating SMS."
)

// Generator is the external text-generation collaborator. The concrete
// implementation lives in internal/shared/generator.
type Generator interface {
	GenerateQuote(ctx context.Context, payload *generator.QuotePayload) (string, error)
	GenerateReport(ctx context.Context, payload *generator.ReportPayload) (*generator.ReportText, error)
}

// RecordInput carries one edit of a repair record from the form. An
// empty ID means a brand new job; a known ID updates the stored record
// in place, which is also how a quoted record is continued.
type RecordInput struct {
	ID               string                   `json:"id"`
	RMANumber        string                   `json:"rmaNumber" binding:"required"`
	TicketNumber     string                   `json:"ticketNumber"`
	EntryDate        string                   `json:"entryDate" binding:"required"`
	ArrivalDate      string                   `json:"arrivalDate"`
	Customer         entity.Customer          `json:"customer"`
	ProductModel     string                   `json:"productModel"`
	ProductArea      string                   `json:"productArea"`
	ProductName      string                   `json:"productName"`
	FaultDescription string                   `json:"faultDescription"`
	PartsActions     []entity.PartAction      `json:"partsActions"`
	TechnicianNotes  string                   `json:"technicianNotes"`
	LaborCost        float64                  `json:"laborCost"`
	Checklist        *entity.RepairChecklist  `json:"checklist"`
	Intake           *entity.IntakeInspection `json:"intake"`
}

// RecordService is the repair record lifecycle engine: it owns the
// legal status transitions and their side effects.
type RecordService struct {
	recordRepo *repository.RecordRepository
	partRepo   *repository.PartRepository
	generator  Generator
	logger     *zap.Logger
}

func NewRecordService(recordRepo *repository.RecordRepository, partRepo *repository.PartRepository, gen Generator, logger *zap.Logger) *RecordService {
	return &RecordService{
		recordRepo: recordRepo,
		partRepo:   partRepo,
		generator:  gen,
		logger:     logger,
	}
}

// List returns all records, most recent first.
func (s *RecordService) List(ctx context.Context) []entity.RepairRecord {
	return s.recordRepo.List(ctx)
}

// Get returns the record with the given id. Re-opening a Quoted record
// for continued work is exactly this read: the status stays untouched
// until a generation command runs again.
func (s *RecordService) Get(ctx context.Context, id string) (*entity.RepairRecord, error) {
	return s.recordRepo.FindByID(ctx, id)
}

// Total computes the record's current total against the live catalog.
func (s *RecordService) Total(ctx context.Context, rec *entity.RepairRecord) float64 {
	return TotalCost(rec, s.partRepo.Index(ctx))
}

// SaveProgress persists the current form state without generating any
// text. A Pending record is promoted to In Progress; every other status
// is left unchanged.
func (s *RecordService) SaveProgress(ctx context.Context, actor *entity.User, input *RecordInput) (*entity.RepairRecord, error) {
	rec, err := s.applyInput(ctx, actor, input)
	if err != nil {
		return nil, err
	}
	if rec.Status == "" || rec.Status == entity.StatusPending {
		rec.Status = entity.StatusInProgress
	}
	if err := s.recordRepo.Upsert(ctx, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// GenerateQuote moves the record to Quoted, asks the external generator
// for the quotation text and stores it on the record. Quoting with no
// part actions and zero labor cost is rejected before any state change.
// Re-quoting overwrites the previous text; there is no versioning.
func (s *RecordService) GenerateQuote(ctx context.Context, actor *entity.User, input *RecordInput) (*entity.RepairRecord, error) {
	if len(input.PartsActions) == 0 && input.LaborCost == 0 {
		return nil, ErrQuoteRequiresCost
	}

	rec, err := s.applyInput(ctx, actor, input)
	if err != nil {
		return nil, err
	}
	rec.Status = entity.StatusQuoted

	payload := BuildQuotePayload(rec, s.partRepo.Index(ctx))
	text, err := s.generator.GenerateQuote(ctx, payload)
	if err != nil {
		s.logger.Warn("quote generation failed, storing fallback text",
			zap.String("record_id", rec.ID), zap.Error(err))
		text = QuoteFallbackText
	}
	rec.AIQuote = text

	if err := s.recordRepo.Upsert(ctx, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// CompleteRepair moves the record to Completed and stores the generated
// service report email and SMS. Completion of a record with empty
// technician notes is rejected even when invoked directly.
func (s *RecordService) CompleteRepair(ctx context.Context, actor *entity.User, input *RecordInput) (*entity.RepairRecord, error) {
	if strings.TrimSpace(input.TechnicianNotes) == "" {
		return nil, ErrNotesRequired
	}

	rec, err := s.applyInput(ctx, actor, input)
	if err != nil {
		return nil, err
	}
	rec.Status = entity.StatusCompleted

	payload := BuildReportPayload(rec, s.partRepo.Index(ctx))
	report, err := s.generator.GenerateReport(ctx, payload)
	if err != nil {
		s.logger.Warn("report generation failed, storing fallback text",
			zap.String("record_id", rec.ID), zap.Error(err))
		report = &generator.ReportText{Email: ReportFallbackText, SMS: SMSFallbackText}
	}
	rec.AIReport = report.Email
	rec.AISMS = report.SMS

	if err := s.recordRepo.Upsert(ctx, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// Delete removes a record. Only administrators may delete; for anyone
// else this is a silent no-op, by design rather than omission.
func (s *RecordService) Delete(ctx context.Context, actor *entity.User, id string) error {
	if actor == nil || !actor.IsAdmin {
		return nil
	}
	return s.recordRepo.Delete(ctx, id)
}

// applyInput merges a form submission onto the stored record, or
// constructs a fresh record when the id is new. Status, technician and
// previously generated texts are carried over from the stored copy; the
// caller decides what to overwrite.
func (s *RecordService) applyInput(ctx context.Context, actor *entity.User, input *RecordInput) (*entity.RepairRecord, error) {
	var existing *entity.RepairRecord
	if input.ID != "" {
		found, err := s.recordRepo.FindByID(ctx, input.ID)
		if err != nil && !errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("find record: %w", err)
		}
		existing = found
	}

	rec := &entity.RepairRecord{
		ID:               input.ID,
		RMANumber:        input.RMANumber,
		TicketNumber:     input.TicketNumber,
		EntryDate:        input.EntryDate,
		ArrivalDate:      input.ArrivalDate,
		Customer:         input.Customer,
		ProductModel:     input.ProductModel,
		ProductArea:      input.ProductArea,
		ProductName:      input.ProductName,
		FaultDescription: input.FaultDescription,
		PartsActions:     normalizeActions(input.PartsActions),
		TechnicianNotes:  input.TechnicianNotes,
		LaborCost:        input.LaborCost,
		Checklist:        input.Checklist,
		Intake:           input.Intake,
	}

	if existing != nil {
		rec.Status = existing.Status
		rec.Technician = existing.Technician
		rec.AIQuote = existing.AIQuote
		rec.AIReport = existing.AIReport
		rec.AISMS = existing.AISMS
	} else {
		if rec.ID == "" {
			rec.ID = uuid.New().String()
		}
		rec.Status = entity.StatusPending
		if actor != nil {
			rec.Technician = actor.TechnicianName()
		}
	}
	return rec, nil
}

// normalizeActions drops duplicate part ids, keeping the first action
// recorded for each part.
func normalizeActions(actions []entity.PartAction) []entity.PartAction {
	seen := make(map[string]struct{}, len(actions))
	out := make([]entity.PartAction, 0, len(actions))
	for _, pa := range actions {
		if _, ok := seen[pa.PartID]; ok {
			continue
		}
		seen[pa.PartID] = struct{}{}
		out = append(out, pa)
	}
	return out
}
