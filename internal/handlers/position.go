package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hireline/applicant-tracking-api/internal/dto"
	apierrors "github.com/hireline/applicant-tracking-api/internal/errors"
	"github.com/hireline/applicant-tracking-api/internal/middleware"
	"github.com/hireline/applicant-tracking-api/internal/services"
)

type PositionHandler struct {
	positions *services.PositionService
}

func NewPositionHandler(positions *services.PositionService) *PositionHandler {
	return &PositionHandler{positions: positions}
}

// CreatePosition opens a new job position.
func (h *PositionHandler) CreatePosition(c *gin.Context) {
	var req dto.CreatePositionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	position, err := h.positions.Create(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "Position created successfully",
		"data":    position,
	})
}

// ListPositions returns all positions for admins, active ones for everyone
// else.
func (h *PositionHandler) ListPositions(c *gin.Context) {
	positions, err := h.positions.List(c.Request.Context(), middleware.Role(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	message := "Positions retrieved successfully"
	if len(positions) == 0 {
		message = "No positions found"
	}
	c.JSON(http.StatusOK, gin.H{
		"message": message,
		"data":    positions,
	})
}

// GetPosition returns one position by id.
func (h *PositionHandler) GetPosition(c *gin.Context) {
	position, err := h.positions.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Position retrieved successfully",
		"data":    position,
	})
}

// UpdatePosition merges the provided fields onto a position.
func (h *PositionHandler) UpdatePosition(c *gin.Context) {
	var req dto.UpdatePositionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	position, err := h.positions.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Position updated successfully",
		"data":    position,
	})
}

// DeletePosition removes a position.
func (h *PositionHandler) DeletePosition(c *gin.Context) {
	position, err := h.positions.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Position deleted successfully",
		"data":    position,
	})
}
