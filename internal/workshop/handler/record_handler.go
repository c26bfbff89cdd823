package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/robomate/servicedesk/internal/workshop/repository"
	"github.com/robomate/servicedesk/internal/workshop/service"
)

// RecordHandler serves the repair record lifecycle and the
// export/import reconciliation endpoints.
type RecordHandler struct {
	recordSvc    *service.RecordService
	reconcileSvc *service.ReconcileService
}

func NewRecordHandler(recordSvc *service.RecordService, reconcileSvc *service.ReconcileService) *RecordHandler {
	return &RecordHandler{recordSvc: recordSvc, reconcileSvc: reconcileSvc}
}

// List GET /api/v1/records
func (h *RecordHandler) List(c *gin.Context) {
	Success(c, h.recordSvc.List(c.Request.Context()))
}

// Get GET /api/v1/records/:id
func (h *RecordHandler) Get(c *gin.Context) {
	rec, err := h.recordSvc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			NotFound(c, "record not found")
			return
		}
		Internal(c, "failed to load record")
		return
	}
	Success(c, gin.H{
		"record": rec,
		"total":  h.recordSvc.Total(c.Request.Context(), rec),
	})
}

// SaveProgress POST /api/v1/records/save
func (h *RecordHandler) SaveProgress(c *gin.Context) {
	var input service.RecordInput
	if err := c.ShouldBindJSON(&input); err != nil {
		BadRequest(c, err.Error())
		return
	}

	rec, err := h.recordSvc.SaveProgress(c.Request.Context(), actorFrom(c), &input)
	if err != nil {
		Internal(c, "failed to save record")
		return
	}
	Success(c, rec)
}

// GenerateQuote POST /api/v1/records/quote
func (h *RecordHandler) GenerateQuote(c *gin.Context) {
	var input service.RecordInput
	if err := c.ShouldBindJSON(&input); err != nil {
		BadRequest(c, err.Error())
		return
	}

	rec, err := h.recordSvc.GenerateQuote(c.Request.Context(), actorFrom(c), &input)
	if err != nil {
		if errors.Is(err, service.ErrQuoteRequiresCost) {
			BadRequest(c, err.Error())
			return
		}
		Internal(c, "failed to generate quote")
		return
	}
	Success(c, rec)
}

// CompleteRepair POST /api/v1/records/complete
func (h *RecordHandler) CompleteRepair(c *gin.Context) {
	var input service.RecordInput
	if err := c.ShouldBindJSON(&input); err != nil {
		BadRequest(c, err.Error())
		return
	}

	rec, err := h.recordSvc.CompleteRepair(c.Request.Context(), actorFrom(c), &input)
	if err != nil {
		if errors.Is(err, service.ErrNotesRequired) {
			BadRequest(c, err.Error())
			return
		}
		Internal(c, "failed to complete repair")
		return
	}
	Success(c, rec)
}

// Delete DELETE /api/v1/records/:id
// Non-administrators are a silent no-op: the response is success but
// the store is untouched.
func (h *RecordHandler) Delete(c *gin.Context) {
	if err := h.recordSvc.Delete(c.Request.Context(), actorFrom(c), c.Param("id")); err != nil {
		Internal(c, "failed to delete record")
		return
	}
	Success(c, nil)
}

// Export GET /api/v1/records/export
func (h *RecordHandler) Export(c *gin.Context) {
	f, filename, err := h.reconcileSvc.ExportRecords(c.Request.Context())
	if err != nil {
		Internal(c, "failed to export records")
		return
	}
	defer f.Close()

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if err := f.Write(c.Writer); err != nil {
		c.Status(http.StatusInternalServerError)
	}
}

// Import POST /api/v1/records/import (multipart, field "file")
func (h *RecordHandler) Import(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		BadRequest(c, "file is required")
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		BadRequest(c, "failed to open uploaded file")
		return
	}
	defer file.Close()

	result, err := h.reconcileSvc.ImportRecords(c.Request.Context(), file)
	if err != nil {
		BadRequest(c, "error parsing file, please ensure it was exported from this app")
		return
	}

	message := fmt.Sprintf("imported %d new records", result.Added)
	if result.Added == 0 {
		message = "no new records found in file"
	}
	Success(c, gin.H{
		"result":  result,
		"message": message,
	})
}
