package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hireline/applicant-tracking-api/internal/dto"
	apierrors "github.com/hireline/applicant-tracking-api/internal/errors"
	"github.com/hireline/applicant-tracking-api/internal/files"
	"github.com/hireline/applicant-tracking-api/internal/services"
)

type ApplicationHandler struct {
	applications *services.ApplicationService
}

func NewApplicationHandler(applications *services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{applications: applications}
}

// SubmitApplication accepts the public multipart application form against a
// position.
func (h *ApplicationHandler) SubmitApplication(c *gin.Context) {
	var form dto.SubmitApplicationForm
	if err := c.ShouldBind(&form); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	resume, err := c.FormFile("resume")
	if err != nil && err != http.ErrMissingFile {
		resume = nil
	}

	application, err := h.applications.Submit(c.Request.Context(), c.Param("id"), &form, resume)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "Application submitted successfully",
		"data":    dto.NewSubmittedApplication(application),
	})
}

// ListApplications returns every application.
func (h *ApplicationHandler) ListApplications(c *gin.Context) {
	applications, err := h.applications.List(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": applications})
}

// GetApplication returns one application by id.
func (h *ApplicationHandler) GetApplication(c *gin.Context) {
	application, err := h.applications.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, application)
}

// UpdateApplicationStatus moves an application through the review workflow.
func (h *ApplicationHandler) UpdateApplicationStatus(c *gin.Context) {
	var req dto.UpdateApplicationStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	application, err := h.applications.UpdateStatus(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Application status updated successfully",
		"data":    application,
	})
}

// SendApplicationMessage emails a candidate, optionally from a template.
func (h *ApplicationHandler) SendApplicationMessage(c *gin.Context) {
	var req dto.SendApplicationMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	result, err := h.applications.SendMessage(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	if req.ScheduleEmail {
		c.JSON(http.StatusOK, gin.H{
			"message": fmt.Sprintf("Email scheduled to be sent on %s at %s", req.ScheduledDate, req.ScheduledTime),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Message sent successfully",
		"data":    result,
	})
}

// DownloadResume streams the stored resume with a candidate-named
// attachment filename.
func (h *ApplicationHandler) DownloadResume(c *gin.Context) {
	path, name, contentType, err := h.applications.ResumeDownload(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, files.ErrOutsideRoot):
			apierrors.Forbidden(c, "Access denied")
		case errors.Is(err, files.ErrFileNotFound):
			apierrors.NotFound(c, "File not found")
		default:
			respondServiceError(c, err)
		}
		return
	}

	c.Header("Content-Type", contentType)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	c.File(path)
}

// DeleteApplication removes an application and its resume file.
func (h *ApplicationHandler) DeleteApplication(c *gin.Context) {
	hadResume, err := h.applications.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	message := "Application deleted successfully (no file found)"
	if hadResume {
		message = "Application and file deleted successfully"
	}
	c.JSON(http.StatusOK, gin.H{"message": message})
}
