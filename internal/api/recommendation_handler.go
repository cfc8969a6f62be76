package api

import (
	"errors"
	"fmt"
	"net/http"

	"vigor/fitness-app/internal/domain"
	"vigor/fitness-app/internal/service"

	"github.com/gin-gonic/gin"
)

// RecommendationHandler exposes the "what now" selector.
type RecommendationHandler struct {
	recommendationService service.RecommendationService
}

// NewRecommendationHandler creates a new RecommendationHandler.
func NewRecommendationHandler(recommendationService service.RecommendationService) *RecommendationHandler {
	return &RecommendationHandler{recommendationService: recommendationService}
}

// RecommendRequest is the situational input for a recommendation.
type RecommendRequest struct {
	AvailableMinutes int    `json:"availableMinutes" binding:"required,gt=0,lte=240"`
	EnergyLevel      string `json:"energyLevel" binding:"required,oneof=low medium high"`
	Location         string `json:"location" binding:"required,oneof=gym home home_gym outdoor hotel"`
}

// Recommend godoc
// @Summary Get a workout recommendation for right now
// @Description Combines recovery state, today's readiness and situational constraints into a concrete workout or rest advice.
// @Tags Recommendations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body RecommendRequest true "Time, energy and location"
// @Success 200 {object} domain.RecommendationResult
// @Failure 400 {object} gin.H "Invalid input (validation error)"
// @Failure 401 {object} gin.H "Unauthorized"
// @Router /recommendations [post]
func (h *RecommendationHandler) Recommend(c *gin.Context) {
	var req RecommendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	result, err := h.recommendationService.Recommend(c.Request.Context(), userID, domain.RecommendationRequest{
		AvailableMinutes: req.AvailableMinutes,
		EnergyLevel:      domain.EnergyLevel(req.EnergyLevel),
		Location:         domain.Location(req.Location),
	})
	if err != nil {
		if errors.Is(err, service.ErrInvalidMinutes) || errors.Is(err, service.ErrInvalidEnergy) ||
			errors.Is(err, service.ErrInvalidLocation) {
			abortWithError(c, http.StatusBadRequest, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to build recommendation")
		}
		return
	}

	c.JSON(http.StatusOK, result)
}
