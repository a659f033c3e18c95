package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/yifan996/Itinerary/internal/models/db_models"
	"github.com/yifan996/Itinerary/internal/models/request_models"
	"github.com/yifan996/Itinerary/internal/repositories"
	"github.com/yifan996/Itinerary/pkg/utils"
)

type ProfileServiceInterface interface {
	SaveProfile(ctx context.Context, req request_models.SaveProfileRequest) error
}

type ProfileService struct {
	profileRepo repositories.ProfileRepositoryInterface
	logger      *zap.Logger
}

func NewProfileService(profileRepo repositories.ProfileRepositoryInterface, logger *zap.Logger) ProfileServiceInterface {
	return &ProfileService{profileRepo: profileRepo, logger: logger}
}

func (s *ProfileService) SaveProfile(ctx context.Context, req request_models.SaveProfileRequest) error {
	profile := &db_models.UserProfile{
		Days:     req.FormData.Days,
		EAnxious: req.FormData.EAnxious,
		ECurious: req.FormData.ECurious,
		ETired:   req.FormData.ETired,
		B5:       req.Personality.B5,
		P:        req.Personality.P,
	}
	if vec, ok := db_models.BuildProfileVector(req.Personality.B5, req.Personality.P); ok {
		profile.ProfileVector = &vec
	} else {
		s.logger.Debug("profile vector skipped",
			zap.Int("b5_len", len(req.Personality.B5)),
			zap.Int("p_len", len(req.Personality.P)))
	}

	if err := s.profileRepo.Create(ctx, profile); err != nil {
		return fmt.Errorf("%w: save profile: %w", utils.ErrDatabaseError, err)
	}
	return nil
}
