package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"vigor/fitness-app/internal/domain"
	"vigor/fitness-app/internal/service"

	"github.com/gin-gonic/gin"
)

// ReadinessHandler exposes the readiness classifier: daily check-ins and
// their history.
type ReadinessHandler struct {
	readinessService service.ReadinessService
}

// NewReadinessHandler creates a new ReadinessHandler.
func NewReadinessHandler(readinessService service.ReadinessService) *ReadinessHandler {
	return &ReadinessHandler{readinessService: readinessService}
}

// --- DTOs ---

type LogReadinessRequest struct {
	EnergyLevel     int `json:"energyLevel" binding:"required,gte=1,lte=10"`
	MotivationLevel int `json:"motivationLevel" binding:"required,gte=1,lte=10"`
	MoodLevel       int `json:"moodLevel" binding:"required,gte=1,lte=10"`
	// Optional explicit override of the averaged score.
	OverallReadiness int  `json:"overallReadiness" binding:"omitempty,gte=1,lte=10"`
	SorenessLevel    int  `json:"sorenessLevel" binding:"required,gte=1,lte=10"`
	PainIntensity    int  `json:"painIntensity" binding:"gte=0,lte=10"`
	FeelingIll       bool `json:"feelingIll"`
}

type ReadinessResponse struct {
	ID                   string                `json:"id"`
	Day                  string                `json:"day"`
	EnergyLevel          int                   `json:"energyLevel"`
	MotivationLevel      int                   `json:"motivationLevel"`
	MoodLevel            int                   `json:"moodLevel"`
	OverallReadiness     int                   `json:"overallReadiness,omitempty"`
	SorenessLevel        int                   `json:"sorenessLevel"`
	PainIntensity        int                   `json:"painIntensity"`
	FeelingIll           bool                  `json:"feelingIll"`
	Score                int                   `json:"score"`
	RecommendedIntensity domain.IntensityLevel `json:"recommendedIntensity"`
	ShouldSkipWorkout    bool                  `json:"shouldSkipWorkout"`
	CreatedAt            time.Time             `json:"createdAt"`
}

// MapReadinessToResponse converts a domain.ReadinessLog to its DTO.
func MapReadinessToResponse(log *domain.ReadinessLog) ReadinessResponse {
	if log == nil {
		return ReadinessResponse{}
	}
	return ReadinessResponse{
		ID:                   log.ID.Hex(),
		Day:                  log.Day,
		EnergyLevel:          log.EnergyLevel,
		MotivationLevel:      log.MotivationLevel,
		MoodLevel:            log.MoodLevel,
		OverallReadiness:     log.OverallReadiness,
		SorenessLevel:        log.SorenessLevel,
		PainIntensity:        log.PainIntensity,
		FeelingIll:           log.FeelingIll,
		Score:                log.Score,
		RecommendedIntensity: log.RecommendedIntensity,
		ShouldSkipWorkout:    log.ShouldSkipWorkout,
		CreatedAt:            log.CreatedAt,
	}
}

// --- Handler Methods ---

// LogReadiness godoc
// @Summary Log today's readiness check-in
// @Description Classifies the check-in into an intensity tier and stores both.
// @Tags Readiness
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param readiness body LogReadinessRequest true "Subjective daily state"
// @Success 201 {object} ReadinessResponse
// @Failure 400 {object} gin.H "Invalid input (validation error)"
// @Failure 401 {object} gin.H "Unauthorized"
// @Router /readiness [post]
func (h *ReadinessHandler) LogReadiness(c *gin.Context) {
	var req LogReadinessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	log, err := h.readinessService.LogReadiness(c.Request.Context(), userID, service.ReadinessInput{
		EnergyLevel:      req.EnergyLevel,
		MotivationLevel:  req.MotivationLevel,
		MoodLevel:        req.MoodLevel,
		OverallReadiness: req.OverallReadiness,
		SorenessLevel:    req.SorenessLevel,
		PainIntensity:    req.PainIntensity,
		FeelingIll:       req.FeelingIll,
	})
	if err != nil {
		if errors.Is(err, service.ErrInvalidLevelScale) || errors.Is(err, service.ErrInvalidPainScale) {
			abortWithError(c, http.StatusBadRequest, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to log readiness")
		}
		return
	}

	c.JSON(http.StatusCreated, MapReadinessToResponse(log))
}

// GetTodayReadiness godoc
// @Summary Get today's readiness log
// @Tags Readiness
// @Produce json
// @Security BearerAuth
// @Success 200 {object} ReadinessResponse
// @Failure 404 {object} gin.H "No check-in today"
// @Router /readiness/today [get]
func (h *ReadinessHandler) GetTodayReadiness(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	log, err := h.readinessService.GetTodayReadiness(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrNoReadinessToday) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to load readiness")
		}
		return
	}
	c.JSON(http.StatusOK, MapReadinessToResponse(log))
}

// GetReadinessHistory godoc
// @Summary Get the trailing readiness history
// @Tags Readiness
// @Produce json
// @Security BearerAuth
// @Param days query int false "Trailing window in days (default 7)"
// @Success 200 {array} ReadinessResponse
// @Failure 401 {object} gin.H "Unauthorized"
// @Router /readiness/history [get]
func (h *ReadinessHandler) GetReadinessHistory(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	days := 7
	if raw := c.Query("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > 365 {
			abortWithError(c, http.StatusBadRequest, "days must be an integer between 1 and 365")
			return
		}
		days = parsed
	}

	logs, err := h.readinessService.GetReadinessHistory(c.Request.Context(), userID, days)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to load readiness history")
		return
	}

	responses := make([]ReadinessResponse, len(logs))
	for i := range logs {
		responses[i] = MapReadinessToResponse(&logs[i])
	}
	c.JSON(http.StatusOK, responses)
}
