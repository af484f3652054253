package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hireline/applicant-tracking-api/internal/dto"
	apierrors "github.com/hireline/applicant-tracking-api/internal/errors"
	"github.com/hireline/applicant-tracking-api/internal/services"
)

type InterviewHandler struct {
	interviews *services.InterviewService
}

func NewInterviewHandler(interviews *services.InterviewService) *InterviewHandler {
	return &InterviewHandler{interviews: interviews}
}

// ScheduleInterview books an interview between an applicant and an
// interviewer.
func (h *InterviewHandler) ScheduleInterview(c *gin.Context) {
	var req dto.ScheduleInterviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	view, err := h.interviews.Schedule(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "Interview scheduled successfully",
		"data":    view,
	})
}

// ListInterviews returns all interviews with participant names resolved.
func (h *InterviewHandler) ListInterviews(c *gin.Context) {
	views, err := h.interviews.List(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": views})
}

// UpdateInterview edits an interview, emailing participants when the status
// calls for it.
func (h *InterviewHandler) UpdateInterview(c *gin.Context) {
	var req dto.UpdateInterviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	view, err := h.interviews.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Interview updated successfully",
		"data":    view,
	})
}

// CancelInterview soft-cancels an interview, optionally notifying both
// participants.
func (h *InterviewHandler) CancelInterview(c *gin.Context) {
	var req dto.CancelInterviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		// An empty body means cancel without notification.
		req = dto.CancelInterviewRequest{}
	}

	view, err := h.interviews.Cancel(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Interview has been cancelled successfully",
		"data":    view,
	})
}

// PermanentDeleteInterview removes an interview record outright.
func (h *InterviewHandler) PermanentDeleteInterview(c *gin.Context) {
	result, err := h.interviews.PermanentDelete(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Interview has been permanently deleted",
		"data":    result,
	})
}
