package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yifan996/Itinerary/internal/models/request_models"
	"github.com/yifan996/Itinerary/internal/models/response_models"
	"github.com/yifan996/Itinerary/internal/services"
	"github.com/yifan996/Itinerary/pkg/utils"
)

type ProfileController struct {
	profileService services.ProfileServiceInterface
}

func NewProfileController(profileService services.ProfileServiceInterface) *ProfileController {
	return &ProfileController{profileService: profileService}
}

// SaveProfile godoc
// @Summary Save a traveller profile
// @Tags Profile
// @Accept json
// @Produce json
// @Param request body request_models.SaveProfileRequest true "Profile payload"
// @Success 200 {object} response_models.MessageResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 500 {object} utils.APIResponse
// @Router /api/save-profile [post]
func (pc *ProfileController) SaveProfile(c *gin.Context) {
	var req request_models.SaveProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if err := pc.profileService.SaveProfile(c.Request.Context(), req); err != nil {
		utils.HandleServiceError(c, err, "Failed to save profile")
		return
	}

	utils.RespondSuccess(c, response_models.MessageResponse{Success: true, Message: "Profile saved"})
}
