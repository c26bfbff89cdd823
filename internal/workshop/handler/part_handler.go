package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/robomate/servicedesk/internal/workshop/repository"
	"github.com/robomate/servicedesk/internal/workshop/service"
)

// PartHandler serves the spare parts catalog.
type PartHandler struct {
	partSvc *service.PartService
}

func NewPartHandler(partSvc *service.PartService) *PartHandler {
	return &PartHandler{partSvc: partSvc}
}

// List GET /api/v1/parts
func (h *PartHandler) List(c *gin.Context) {
	Success(c, h.partSvc.List(c.Request.Context()))
}

// Create POST /api/v1/parts
func (h *PartHandler) Create(c *gin.Context) {
	var req service.CreatePartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}

	part, err := h.partSvc.Create(c.Request.Context(), actorFrom(c), &req)
	if err != nil {
		BadRequest(c, err.Error())
		return
	}
	Created(c, part)
}

// Update PUT /api/v1/parts/:id
func (h *PartHandler) Update(c *gin.Context) {
	var req service.UpdatePartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}

	part, err := h.partSvc.Update(c.Request.Context(), actorFrom(c), c.Param("id"), &req)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			NotFound(c, "part not found")
			return
		}
		Internal(c, "failed to update part")
		return
	}
	Success(c, part)
}

// Delete DELETE /api/v1/parts/:id
func (h *PartHandler) Delete(c *gin.Context) {
	if err := h.partSvc.Delete(c.Request.Context(), actorFrom(c), c.Param("id")); err != nil {
		Internal(c, "failed to delete part")
		return
	}
	Success(c, nil)
}

// Export GET /api/v1/parts/export
func (h *PartHandler) Export(c *gin.Context) {
	f, filename, err := h.partSvc.ExportParts(c.Request.Context())
	if err != nil {
		Internal(c, "failed to export parts")
		return
	}
	defer f.Close()

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if err := f.Write(c.Writer); err != nil {
		c.Status(http.StatusInternalServerError)
	}
}

// Import POST /api/v1/parts/import (multipart, field "file")
// Replaces the whole catalog with the uploaded sheet.
func (h *PartHandler) Import(c *gin.Context) {
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

	result, err := h.partSvc.ImportParts(c.Request.Context(), actorFrom(c), file)
	if err != nil {
		BadRequest(c, "error importing file, please check the format")
		return
	}
	Success(c, result)
}
