package repositories

import (
	"context"

	"gorm.io/gorm"

	"github.com/yifan996/Itinerary/internal/models/db_models"
)

type SurveyRepositoryInterface interface {
	Create(ctx context.Context, survey *db_models.Survey) error
	ListRecent(ctx context.Context, limit int) ([]db_models.Survey, error)
}

type SurveyRepository struct {
	db *gorm.DB
}

func NewSurveyRepository(db *gorm.DB) *SurveyRepository {
	return &SurveyRepository{db: db}
}

func (r *SurveyRepository) Create(ctx context.Context, survey *db_models.Survey) error {
	return r.db.WithContext(ctx).Create(survey).Error
}

func (r *SurveyRepository) ListRecent(ctx context.Context, limit int) ([]db_models.Survey, error) {
	var surveys []db_models.Survey
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&surveys).Error
	return surveys, err
}
