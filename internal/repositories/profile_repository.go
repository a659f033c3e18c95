package repositories

import (
	"context"

	"gorm.io/gorm"

	"github.com/yifan996/Itinerary/internal/models/db_models"
)

type ProfileRepositoryInterface interface {
	Create(ctx context.Context, profile *db_models.UserProfile) error
}

type ProfileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

func (r *ProfileRepository) Create(ctx context.Context, profile *db_models.UserProfile) error {
	return r.db.WithContext(ctx).Create(profile).Error
}
