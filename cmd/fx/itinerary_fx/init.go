package itinerary_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/yifan996/Itinerary/internal/config"
	"github.com/yifan996/Itinerary/internal/repositories"
	"github.com/yifan996/Itinerary/internal/services"
	"github.com/yifan996/Itinerary/pkg/coze"
)

var Module = fx.Provide(
	provideItineraryRepo, provideItineraryService,
)

func provideItineraryRepo(db *gorm.DB) repositories.ItineraryRepositoryInterface {
	return repositories.NewItineraryRepository(db)
}

func provideItineraryService(
	cozeClient *coze.Client,
	itineraryRepo repositories.ItineraryRepositoryInterface,
	cfg *config.Config,
	logger *zap.Logger,
) services.ItineraryServiceInterface {
	return services.NewItineraryService(cozeClient, itineraryRepo, logger, cfg.Upstream.WorkflowTimeout)
}
