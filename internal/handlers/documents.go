package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"practicas-backend/internal/flow"
	"practicas-backend/internal/middleware"
	"practicas-backend/internal/models"
	"practicas-backend/internal/services"
)

const maxDocumentSize = 16 << 20 // 16MB per PDF

type DocumentsHandler struct {
	service *services.DocumentService
}

func NewDocumentsHandler(service *services.DocumentService) *DocumentsHandler {
	return &DocumentsHandler{service: service}
}

// actorFrom resolves the authenticated caller set by the auth middleware.
// It writes the error response itself when resolution fails.
func actorFrom(c *gin.Context) (services.Actor, bool) {
	userIDStr, exists := c.Get(middleware.UserIDKey)
	if !exists {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: "user id not found"})
		return services.Actor{}, false
	}
	userID, err := uuid.Parse(userIDStr.(string))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid user id"})
		return services.Actor{}, false
	}
	role, _ := c.Get(middleware.UserRoleKey)
	roleStr, _ := role.(string)
	return services.Actor{ID: userID, Role: roleStr}, true
}

func documentResponse(doc *models.Document) models.DocumentResponse {
	return models.DocumentResponse{
		ID:        doc.ID.String(),
		StudentID: doc.StudentID.String(),
		Type:      string(doc.Type),
		Status:    string(doc.Status),
		FileName:  doc.FileName,
		FilePath:  doc.FilePath,
		CreatedAt: doc.CreatedAt,
		UpdatedAt: doc.UpdatedAt,
	}
}

// writeServiceError maps the service error taxonomy onto HTTP codes.
func writeServiceError(c *gin.Context, err error) {
	var outOfOrder *services.OutOfOrderError
	if errors.As(err, &outOfOrder) {
		missing := make([]string, len(outOfOrder.Missing))
		for i, t := range outOfOrder.Missing {
			missing[i] = string(t)
		}
		c.JSON(http.StatusConflict, models.ErrorResponse{
			Error:   "documents out of order",
			Message: err.Error(),
			Missing: missing,
		})
		return
	}

	var inconsistency *services.StorageInconsistencyError
	if errors.As(err, &inconsistency) {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "storage inconsistency",
			Message: err.Error(),
		})
		return
	}

	switch {
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "not found", Message: err.Error()})
	case errors.Is(err, services.ErrInvalidState):
		c.JSON(http.StatusConflict, models.ErrorResponse{Error: "invalid document state", Message: err.Error()})
	case errors.Is(err, services.ErrUnauthorized):
		c.JSON(http.StatusForbidden, models.ErrorResponse{Error: "forbidden", Message: err.Error()})
	case errors.Is(err, services.ErrFlowComplete):
		c.JSON(http.StatusConflict, models.ErrorResponse{Error: "document flow complete", Message: err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "internal error", Message: err.Error()})
	}
}

// Upload godoc
// @Summary     Upload the next required document
// @Description Stores the next document in the canonical flow for a student. Students upload for themselves and get a Pendiente document; admins may upload a pre-approved document on a student's behalf via the student_id form field.
// @Tags        documents
// @Accept      multipart/form-data
// @Produce     json
// @Security    Bearer
// @Param       document formData file true "PDF document"
// @Param       student_id formData string false "Target student (admins only; defaults to the caller)"
// @Success     201 {object} models.UploadResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     401 {object} models.ErrorResponse
// @Failure     403 {object} models.ErrorResponse
// @Failure     409 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /documents [post]
func (h *DocumentsHandler) Upload(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}

	studentID := actor.ID
	if s := c.PostForm("student_id"); s != "" {
		parsed, err := uuid.Parse(s)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid student id"})
			return
		}
		studentID = parsed
	}

	fileHeader, err := c.FormFile("document")
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "missing document file",
			Message: err.Error(),
		})
		return
	}
	if fileHeader.Size > maxDocumentSize {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "document too large"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "failed to open uploaded file",
			Message: err.Error(),
		})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to read uploaded file",
			Message: err.Error(),
		})
		return
	}

	doc, err := h.service.UploadNext(actor, studentID, data)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, models.UploadResponse{
		Document: documentResponse(doc),
		Size:     int64(len(data)),
	})
}

// Submit godoc
// @Summary     Submit a document for review
// @Description Moves the caller's own Pendiente document into EnRevision.
// @Tags        documents
// @Produce     json
// @Security    Bearer
// @Param       document_id path string true "Document ID (UUID)"
// @Success     200 {object} models.DocumentResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     403 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Failure     409 {object} models.ErrorResponse
// @Router      /documents/{document_id}/submit [patch]
func (h *DocumentsHandler) Submit(c *gin.Context) {
	h.transition(c, h.service.SubmitForReview)
}

// Approve godoc
// @Summary     Approve a document under review
// @Description Moves an EnRevision document into Aceptado. Requires the assigned assessor or an admin, and every predecessor type already accepted.
// @Tags        documents
// @Produce     json
// @Security    Bearer
// @Param       document_id path string true "Document ID (UUID)"
// @Success     200 {object} models.DocumentResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     403 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Failure     409 {object} models.ErrorResponse
// @Router      /documents/{document_id}/approve [patch]
func (h *DocumentsHandler) Approve(c *gin.Context) {
	h.transition(c, h.service.Approve)
}

// Reject godoc
// @Summary     Reject a document under review
// @Description Moves an EnRevision document into Rechazado. Requires the assigned assessor or an admin.
// @Tags        documents
// @Produce     json
// @Security    Bearer
// @Param       document_id path string true "Document ID (UUID)"
// @Success     200 {object} models.DocumentResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     403 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Failure     409 {object} models.ErrorResponse
// @Router      /documents/{document_id}/reject [patch]
func (h *DocumentsHandler) Reject(c *gin.Context) {
	h.transition(c, h.service.Reject)
}

// Remove godoc
// @Summary     Remove a document
// @Description Soft-deletes the caller's own Pendiente or Rechazado document.
// @Tags        documents
// @Produce     json
// @Security    Bearer
// @Param       document_id path string true "Document ID (UUID)"
// @Success     200 {object} models.DocumentResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     403 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Failure     409 {object} models.ErrorResponse
// @Router      /documents/{document_id} [delete]
func (h *DocumentsHandler) Remove(c *gin.Context) {
	h.transition(c, h.service.Remove)
}

func (h *DocumentsHandler) transition(c *gin.Context, op func(uuid.UUID, services.Actor) (*models.Document, error)) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}

	documentID, err := uuid.Parse(c.Param("document_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid document id"})
		return
	}

	doc, err := op(documentID, actor)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, documentResponse(doc))
}

// List godoc
// @Summary     List a student's documents
// @Description Returns the student's active documents, optionally filtered by status. Students see only their own.
// @Tags        documents
// @Produce     json
// @Security    Bearer
// @Param       student_id path string true "Student ID (UUID)"
// @Param       status query string false "Filter by status (Pendiente, EnRevision, Aceptado, Rechazado)"
// @Success     200 {object} models.DocumentListResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     403 {object} models.ErrorResponse
// @Router      /students/{student_id}/documents [get]
func (h *DocumentsHandler) List(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}

	studentID, err := uuid.Parse(c.Param("student_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid student id"})
		return
	}

	docs, err := h.service.ListDocuments(actor, studentID, flow.Status(c.Query("status")))
	if err != nil {
		writeServiceError(c, err)
		return
	}

	responses := make([]models.DocumentResponse, len(docs))
	for i := range docs {
		responses[i] = documentResponse(&docs[i])
	}
	c.JSON(http.StatusOK, models.DocumentListResponse{Documents: responses})
}
