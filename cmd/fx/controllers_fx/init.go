package controllers_fx

import (
	"go.uber.org/fx"

	"github.com/yifan996/Itinerary/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewItineraryController),
	fx.Provide(controllers.NewProfileController),
	fx.Provide(controllers.NewSurveyController),
	fx.Provide(controllers.NewChatController))
