package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"practicas-backend/internal/models"
	"practicas-backend/internal/services"
)

type ProgressHandler struct {
	service *services.ProgressService
}

func NewProgressHandler(service *services.ProgressService) *ProgressHandler {
	return &ProgressHandler{service: service}
}

// studentIDFrom parses the path parameter and enforces that students only
// query their own progress. Assessors and admins may query anyone.
func studentIDFrom(c *gin.Context) (uuid.UUID, bool) {
	actor, ok := actorFrom(c)
	if !ok {
		return uuid.Nil, false
	}
	studentID, err := uuid.Parse(c.Param("student_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid student id"})
		return uuid.Nil, false
	}
	if actor.Role == services.RoleStudent && actor.ID != studentID {
		c.JSON(http.StatusForbidden, models.ErrorResponse{Error: "forbidden"})
		return uuid.Nil, false
	}
	return studentID, true
}

// GetMilestone godoc
// @Summary     Milestone progress
// @Description Returns the coarse 0-4 milestone step and label for the student's active practice.
// @Tags        progress
// @Produce     json
// @Security    Bearer
// @Param       student_id path string true "Student ID (UUID)"
// @Success     200 {object} models.MilestoneProgressResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     403 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Router      /students/{student_id}/progress [get]
func (h *ProgressHandler) GetMilestone(c *gin.Context) {
	studentID, ok := studentIDFrom(c)
	if !ok {
		return
	}

	milestone, err := h.service.MilestoneProgress(studentID)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.MilestoneProgressResponse{
		StudentID: studentID.String(),
		Step:      milestone.Step,
		Label:     milestone.Label,
	})
}

// GetPercentage godoc
// @Summary     Percentage progress
// @Description Returns the percentage score of the post-acceptance phase plus whether the practice can start and whether it already has.
// @Tags        progress
// @Produce     json
// @Security    Bearer
// @Param       student_id path string true "Student ID (UUID)"
// @Success     200 {object} models.PercentageProgressResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     403 {object} models.ErrorResponse
// @Router      /students/{student_id}/progress/percentage [get]
func (h *ProgressHandler) GetPercentage(c *gin.Context) {
	studentID, ok := studentIDFrom(c)
	if !ok {
		return
	}

	progress, err := h.service.PercentageProgress(studentID)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.PercentageProgressResponse{
		StudentID:        studentID.String(),
		Percentage:       progress.Percentage,
		CanStartPractice: progress.CanStartPractice,
		PracticeStarted:  progress.PracticeStarted,
	})
}
