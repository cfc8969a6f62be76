package api

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"vigor/fitness-app/internal/domain"
	"vigor/fitness-app/internal/service"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ExerciseHandler holds the catalog service dependency.
type ExerciseHandler struct {
	catalogService service.CatalogService
}

// NewExerciseHandler creates a new ExerciseHandler.
func NewExerciseHandler(catalogService service.CatalogService) *ExerciseHandler {
	return &ExerciseHandler{catalogService: catalogService}
}

// --- DTOs for API (Data Transfer Objects) ---

// ExerciseRequest defines the expected JSON for creating or updating a
// catalog entry.
type ExerciseRequest struct {
	Name              string   `json:"name" binding:"required"`
	Description       string   `json:"description"`
	MuscleGroup       string   `json:"muscleGroup" binding:"required"`
	Category          string   `json:"category" binding:"required,oneof=compound isolation accessory finisher mobility stretch"`
	Equipment         []string `json:"equipment" binding:"omitempty"`
	Difficulty        string   `json:"difficulty" binding:"required,oneof=novice medium advanced"`
	Bodyweight        bool     `json:"bodyweight"`
	CaloriesPerMinute float64  `json:"caloriesPerMinute" binding:"gte=0,lte=30"`
}

// ExerciseResponse is the DTO for returning catalog entries.
type ExerciseResponse struct {
	ID                string    `json:"id"`
	Name              string    `json:"name"`
	Description       string    `json:"description,omitempty"`
	MuscleGroup       string    `json:"muscleGroup"`
	Category          string    `json:"category"`
	Equipment         []string  `json:"equipment,omitempty"`
	Difficulty        string    `json:"difficulty"`
	Bodyweight        bool      `json:"bodyweight"`
	CaloriesPerMinute float64   `json:"caloriesPerMinute"`
	HasDemoVideo      bool      `json:"hasDemoVideo"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

type AttachDemoRequest struct {
	ObjectKey string `json:"objectKey" binding:"required"`
}

type DemoUploadURLRequest struct {
	ContentType string `json:"contentType" binding:"required"`
}

// MapExerciseToResponse converts a domain.Exercise to ExerciseResponse DTO.
func MapExerciseToResponse(ex *domain.Exercise) ExerciseResponse {
	if ex == nil {
		return ExerciseResponse{}
	}
	equipment := make([]string, len(ex.Equipment))
	for i, eq := range ex.Equipment {
		equipment[i] = string(eq)
	}
	return ExerciseResponse{
		ID:                ex.ID.Hex(),
		Name:              ex.Name,
		Description:       ex.Description,
		MuscleGroup:       string(ex.MuscleGroup),
		Category:          string(ex.Category),
		Equipment:         equipment,
		Difficulty:        string(ex.Difficulty),
		Bodyweight:        ex.Bodyweight,
		CaloriesPerMinute: ex.CaloriesPerMinute,
		HasDemoVideo:      ex.DemoObjectKey != "",
		CreatedAt:         ex.CreatedAt,
		UpdatedAt:         ex.UpdatedAt,
	}
}

func mapRequestToExercise(req *ExerciseRequest) *domain.Exercise {
	equipment := make([]domain.Equipment, len(req.Equipment))
	for i, eq := range req.Equipment {
		equipment[i] = domain.Equipment(eq)
	}
	return &domain.Exercise{
		Name:              req.Name,
		Description:       req.Description,
		MuscleGroup:       domain.MuscleGroup(req.MuscleGroup),
		Category:          domain.ExerciseCategory(req.Category),
		Equipment:         equipment,
		Difficulty:        domain.FitnessLevel(req.Difficulty),
		Bodyweight:        req.Bodyweight,
		CaloriesPerMinute: req.CaloriesPerMinute,
	}
}

// --- Handler Methods ---

// CreateExercise godoc
// @Summary Create a new catalog exercise
// @Tags Exercises
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param exercise body ExerciseRequest true "Exercise details"
// @Success 201 {object} ExerciseResponse
// @Failure 400 {object} gin.H "Invalid input (validation error)"
// @Failure 403 {object} gin.H "Forbidden (not a coach)"
// @Router /exercises [post]
func (h *ExerciseHandler) CreateExercise(c *gin.Context) {
	var req ExerciseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	exercise, err := h.catalogService.CreateExercise(c.Request.Context(), mapRequestToExercise(&req))
	if err != nil {
		if errors.Is(err, service.ErrValidationFailed) {
			abortWithError(c, http.StatusBadRequest, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to create exercise")
		}
		return
	}
	c.JSON(http.StatusCreated, MapExerciseToResponse(exercise))
}

// ListExercises godoc
// @Summary List the exercise catalog
// @Tags Exercises
// @Produce json
// @Security BearerAuth
// @Success 200 {array} ExerciseResponse
// @Router /exercises [get]
func (h *ExerciseHandler) ListExercises(c *gin.Context) {
	exercises, err := h.catalogService.ListExercises(c.Request.Context())
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to list exercises")
		return
	}

	responses := make([]ExerciseResponse, len(exercises))
	for i := range exercises {
		responses[i] = MapExerciseToResponse(&exercises[i])
	}
	c.JSON(http.StatusOK, responses)
}

// UpdateExercise godoc
// @Summary Update a catalog exercise
// @Tags Exercises
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Exercise ID"
// @Param exercise body ExerciseRequest true "Exercise details"
// @Success 200 {object} ExerciseResponse
// @Failure 404 {object} gin.H "Not found"
// @Router /exercises/{id} [put]
func (h *ExerciseHandler) UpdateExercise(c *gin.Context) {
	exerciseID, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req ExerciseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	exercise := mapRequestToExercise(&req)
	exercise.ID = exerciseID

	updated, err := h.catalogService.UpdateExercise(c.Request.Context(), exercise)
	if err != nil {
		handleCatalogError(c, err)
		return
	}
	c.JSON(http.StatusOK, MapExerciseToResponse(updated))
}

// DeleteExercise godoc
// @Summary Delete a catalog exercise
// @Tags Exercises
// @Security BearerAuth
// @Param id path string true "Exercise ID"
// @Success 204 "Deleted"
// @Failure 404 {object} gin.H "Not found"
// @Router /exercises/{id} [delete]
func (h *ExerciseHandler) DeleteExercise(c *gin.Context) {
	exerciseID, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.catalogService.DeleteExercise(c.Request.Context(), exerciseID); err != nil {
		handleCatalogError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// RequestDemoUploadURL godoc
// @Summary Get a presigned URL for uploading a demo video
// @Tags Exercises
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Exercise ID"
// @Param request body DemoUploadURLRequest true "Video content type"
// @Success 200 {object} service.CatalogUploadURLResponse
// @Router /exercises/{id}/demo/upload-url [post]
func (h *ExerciseHandler) RequestDemoUploadURL(c *gin.Context) {
	exerciseID, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req DemoUploadURLRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	resp, err := h.catalogService.RequestDemoUploadURL(c.Request.Context(), exerciseID, req.ContentType)
	if err != nil {
		handleCatalogError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// AttachDemoVideo godoc
// @Summary Attach an uploaded demo video to an exercise
// @Tags Exercises
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Exercise ID"
// @Param request body AttachDemoRequest true "Uploaded object key"
// @Success 200 {object} ExerciseResponse
// @Router /exercises/{id}/demo [post]
func (h *ExerciseHandler) AttachDemoVideo(c *gin.Context) {
	exerciseID, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req AttachDemoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	exercise, err := h.catalogService.AttachDemoVideo(c.Request.Context(), exerciseID, req.ObjectKey)
	if err != nil {
		handleCatalogError(c, err)
		return
	}
	c.JSON(http.StatusOK, MapExerciseToResponse(exercise))
}

// GetDemoVideoURL godoc
// @Summary Get a temporary download URL for an exercise demo video
// @Tags Exercises
// @Produce json
// @Security BearerAuth
// @Param id path string true "Exercise ID"
// @Success 200 {object} gin.H "videoUrl"
// @Failure 404 {object} gin.H "Not found or no video"
// @Router /exercises/{id}/demo [get]
func (h *ExerciseHandler) GetDemoVideoURL(c *gin.Context) {
	exerciseID, ok := parseIDParam(c)
	if !ok {
		return
	}

	url, err := h.catalogService.GetDemoVideoURL(c.Request.Context(), exerciseID)
	if err != nil {
		if errors.Is(err, service.ErrNoDemoVideo) {
			abortWithError(c, http.StatusNotFound, err.Error())
			return
		}
		handleCatalogError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"videoUrl": url})
}

// --- Helpers ---

func parseIDParam(c *gin.Context) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Invalid exercise ID: %s", c.Param("id")))
		return primitive.NilObjectID, false
	}
	return id, true
}

func handleCatalogError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrExerciseNotFound):
		abortWithError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrValidationFailed):
		abortWithError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrUploadURLError), errors.Is(err, service.ErrDownloadURLError):
		abortWithError(c, http.StatusBadGateway, err.Error())
	default:
		abortWithError(c, http.StatusInternalServerError, "Catalog operation failed")
	}
}
