package survey_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"github.com/yifan996/Itinerary/internal/repositories"
	"github.com/yifan996/Itinerary/internal/services"
)

var Module = fx.Provide(
	provideSurveyRepo, provideSurveyService,
)

func provideSurveyRepo(db *gorm.DB) repositories.SurveyRepositoryInterface {
	return repositories.NewSurveyRepository(db)
}

func provideSurveyService(surveyRepo repositories.SurveyRepositoryInterface) services.SurveyServiceInterface {
	return services.NewSurveyService(surveyRepo)
}
