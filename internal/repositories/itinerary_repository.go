package repositories

import (
	"context"

	"gorm.io/gorm"

	"github.com/yifan996/Itinerary/internal/models/db_models"
)

type ItineraryRepositoryInterface interface {
	// Create stores the itinerary together with its day and activity rows.
	Create(ctx context.Context, itinerary *db_models.Itinerary) error
	ListRecent(ctx context.Context, limit int) ([]db_models.Itinerary, error)
}

type ItineraryRepository struct {
	db *gorm.DB
}

func NewItineraryRepository(db *gorm.DB) *ItineraryRepository {
	return &ItineraryRepository{db: db}
}

func (r *ItineraryRepository) Create(ctx context.Context, itinerary *db_models.Itinerary) error {
	return r.db.WithContext(ctx).Create(itinerary).Error
}

func (r *ItineraryRepository) ListRecent(ctx context.Context, limit int) ([]db_models.Itinerary, error) {
	var itineraries []db_models.Itinerary
	err := r.db.WithContext(ctx).
		Preload("DailyActivities", func(db *gorm.DB) *gorm.DB {
			return db.Order("day ASC")
		}).
		Preload("DailyActivities.Activities", func(db *gorm.DB) *gorm.DB {
			return db.Order("seq ASC")
		}).
		Order("created_at DESC").
		Limit(limit).
		Find(&itineraries).Error
	return itineraries, err
}
