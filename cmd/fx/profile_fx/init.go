package profile_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/yifan996/Itinerary/internal/repositories"
	"github.com/yifan996/Itinerary/internal/services"
)

var Module = fx.Provide(
	provideProfileRepo, provideProfileService,
)

func provideProfileRepo(db *gorm.DB) repositories.ProfileRepositoryInterface {
	return repositories.NewProfileRepository(db)
}

func provideProfileService(profileRepo repositories.ProfileRepositoryInterface, logger *zap.Logger) services.ProfileServiceInterface {
	return services.NewProfileService(profileRepo, logger)
}
