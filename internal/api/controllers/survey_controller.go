package controllers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yifan996/Itinerary/internal/models/request_models"
	"github.com/yifan996/Itinerary/internal/models/response_models"
	"github.com/yifan996/Itinerary/internal/services"
	"github.com/yifan996/Itinerary/pkg/utils"
)

type SurveyController struct {
	surveyService services.SurveyServiceInterface
}

func NewSurveyController(surveyService services.SurveyServiceInterface) *SurveyController {
	return &SurveyController{surveyService: surveyService}
}

// SaveSurvey godoc
// @Summary Save a post-trip survey
// @Description Stores the 14 Likert answers (1..5), optionally linked to an itinerary
// @Tags Survey
// @Accept json
// @Produce json
// @Param request body request_models.SaveSurveyRequest true "Survey payload"
// @Success 200 {object} response_models.SaveSurveyResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 500 {object} utils.APIResponse
// @Router /api/save-survey [post]
func (sc *SurveyController) SaveSurvey(c *gin.Context) {
	var req request_models.SaveSurveyRequest
	// An empty body is reported as a missing survey.
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	id, err := sc.surveyService.SaveSurvey(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err, "Failed to save survey")
		return
	}

	utils.RespondSuccess(c, response_models.SaveSurveyResponse{Success: true, SurveyID: id})
}

// SurveyHistory godoc
// @Summary Recent surveys
// @Description Lists the 20 most recent surveys, newest first
// @Tags Survey
// @Produce json
// @Success 200 {array} response_models.SurveyHistoryItem
// @Failure 500 {object} utils.APIResponse
// @Router /api/survey-history [get]
func (sc *SurveyController) SurveyHistory(c *gin.Context) {
	items, err := sc.surveyService.ListRecent(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err, "Failed to load survey history")
		return
	}
	utils.RespondSuccess(c, items)
}
