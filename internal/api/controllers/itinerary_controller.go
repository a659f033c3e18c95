package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yifan996/Itinerary/internal/models/request_models"
	"github.com/yifan996/Itinerary/internal/models/response_models"
	"github.com/yifan996/Itinerary/internal/services"
	"github.com/yifan996/Itinerary/pkg/utils"
)

type ItineraryController struct {
	itineraryService services.ItineraryServiceInterface
}

func NewItineraryController(itineraryService services.ItineraryServiceInterface) *ItineraryController {
	return &ItineraryController{itineraryService: itineraryService}
}

// GenerateItinerary godoc
// @Summary Generate an itinerary
// @Description Runs the itinerary workflow for the given trip length and mood, stores the result and returns it
// @Tags Itinerary
// @Accept json
// @Produce json
// @Param request body request_models.GenerateItineraryRequest true "Trip parameters"
// @Success 200 {object} response_models.GenerateItineraryResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 500 {object} utils.APIResponse
// @Router /api/generate-itinerary [post]
func (ic *ItineraryController) GenerateItinerary(c *gin.Context) {
	var req request_models.GenerateItineraryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	generated, err := ic.itineraryService.Generate(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err, "")
		return
	}

	utils.RespondSuccess(c, response_models.GenerateItineraryResponse{
		Success:     true,
		ItineraryID: generated.ID,
		Itinerary:   response_models.ItineraryBody{FinalItinerary: generated.FinalItinerary},
	})
}

// ItineraryHistory godoc
// @Summary Recent itineraries
// @Description Lists the 10 most recently generated itineraries, newest first
// @Tags Itinerary
// @Produce json
// @Success 200 {array} response_models.ItineraryHistoryItem
// @Failure 500 {object} utils.APIResponse
// @Router /api/itinerary-history [get]
func (ic *ItineraryController) ItineraryHistory(c *gin.Context) {
	items, err := ic.itineraryService.ListRecent(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err, "Failed to load itinerary history")
		return
	}
	utils.RespondSuccess(c, items)
}
