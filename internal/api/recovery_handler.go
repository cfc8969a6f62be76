package api

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"vigor/fitness-app/internal/domain"
	"vigor/fitness-app/internal/service"

	"github.com/gin-gonic/gin"
)

// RecoveryHandler exposes the recovery tracker: session logging and the
// per-muscle-group recovery view.
type RecoveryHandler struct {
	recoveryService service.RecoveryService
}

// NewRecoveryHandler creates a new RecoveryHandler.
func NewRecoveryHandler(recoveryService service.RecoveryService) *RecoveryHandler {
	return &RecoveryHandler{recoveryService: recoveryService}
}

// --- DTOs ---

type SessionEntryRequest struct {
	MuscleGroup string  `json:"muscleGroup" binding:"required"`
	Sets        int     `json:"sets" binding:"required,gte=1"`
	RPE         float64 `json:"rpe" binding:"gte=0,lte=10"`
}

type LogSessionRequest struct {
	PerformedAt *time.Time            `json:"performedAt"` // Defaults to now
	Entries     []SessionEntryRequest `json:"entries" binding:"required,min=1,dive"`
	Notes       string                `json:"notes"`
}

type SessionResponse struct {
	ID          string                `json:"id"`
	PerformedAt time.Time             `json:"performedAt"`
	Entries     []domain.SessionEntry `json:"entries"`
	Notes       string                `json:"notes,omitempty"`
}

// --- Handler Methods ---

// LogSession godoc
// @Summary Log a completed training session
// @Description Records the session and updates per-muscle-group recovery state.
// @Tags Recovery
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param session body LogSessionRequest true "Worked muscle groups with sets and RPE"
// @Success 201 {object} SessionResponse
// @Failure 400 {object} gin.H "Invalid input (validation error)"
// @Failure 401 {object} gin.H "Unauthorized"
// @Router /training/sessions [post]
func (h *RecoveryHandler) LogSession(c *gin.Context) {
	var req LogSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	entries := make([]domain.SessionEntry, len(req.Entries))
	for i, e := range req.Entries {
		if !domain.IsValidMuscleGroup(e.MuscleGroup) {
			abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Unknown muscle group: %s", e.MuscleGroup))
			return
		}
		entries[i] = domain.SessionEntry{
			MuscleGroup: domain.MuscleGroup(e.MuscleGroup),
			Sets:        e.Sets,
			RPE:         e.RPE,
		}
	}

	performedAt := time.Now().UTC()
	if req.PerformedAt != nil {
		performedAt = req.PerformedAt.UTC()
	}

	session, err := h.recoveryService.LogWorkout(c.Request.Context(), userID, performedAt, entries, req.Notes)
	if err != nil {
		if errors.Is(err, service.ErrInvalidSets) || errors.Is(err, service.ErrInvalidRPE) ||
			errors.Is(err, service.ErrInvalidMuscleGroup) || errors.Is(err, service.ErrEmptySession) {
			abortWithError(c, http.StatusBadRequest, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to log session")
		}
		return
	}

	c.JSON(http.StatusCreated, SessionResponse{
		ID:          session.ID.Hex(),
		PerformedAt: session.PerformedAt,
		Entries:     session.Entries,
		Notes:       session.Notes,
	})
}

// GetRecoveryStatus godoc
// @Summary Get per-muscle-group recovery status
// @Description Recovery percent is recomputed from elapsed time at read time.
// @Tags Recovery
// @Produce json
// @Security BearerAuth
// @Success 200 {array} domain.MuscleRecoveryStatus
// @Failure 401 {object} gin.H "Unauthorized"
// @Router /recovery [get]
func (h *RecoveryHandler) GetRecoveryStatus(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	statuses, err := h.recoveryService.GetRecoveryStatus(c.Request.Context(), userID)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to compute recovery status")
		return
	}
	c.JSON(http.StatusOK, statuses)
}
