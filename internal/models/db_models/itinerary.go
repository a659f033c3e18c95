package db_models

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
)

// ContentSource records where an itinerary body came from.
type ContentSource string

const (
	// ContentFromMessage means the body is the content of the workflow's
	// Message events.
	ContentFromMessage ContentSource = "message"
	// ContentFromRaw means no Message event was found and the raw upstream
	// payload was stored instead.
	ContentFromRaw ContentSource = "raw"
)

type Itinerary struct {
	BaseModel
	Days           int             `gorm:"not null" json:"days"`
	EAnxious       float64         `gorm:"column:e_anxious" json:"e_anxious"`
	ECurious       float64         `gorm:"column:e_curious" json:"e_curious"`
	ETired         float64         `gorm:"column:e_tired" json:"e_tired"`
	ProfileB5      pq.Float64Array `gorm:"column:profile_b5;type:double precision[]" json:"-"`
	ProfileP       pq.Float64Array `gorm:"column:profile_p;type:double precision[]" json:"-"`
	FinalItinerary string          `gorm:"type:text;not null" json:"final_itinerary"`
	ContentSource  ContentSource   `gorm:"type:varchar(16);not null;default:message" json:"content_source"`

	TripType                *string        `gorm:"type:text" json:"tripType,omitempty"`
	MatchPercentage         *float64       `json:"matchPercentage,omitempty"`
	TotalActivities         *int           `json:"totalActivities,omitempty"`
	DiningRecommendations   pq.StringArray `gorm:"type:text[]" json:"-"`
	ShoppingRecommendations pq.StringArray `gorm:"type:text[]" json:"-"`
	DailyActivities         []ItineraryDay `gorm:"foreignKey:ItineraryID;constraint:OnDelete:CASCADE" json:"dailyActivities,omitempty"`
}

type ItineraryDay struct {
	BaseModel
	ItineraryID uuid.UUID           `gorm:"type:uuid;not null;index" json:"-"`
	Day         int                 `gorm:"not null" json:"day"`
	Title       string              `gorm:"type:text" json:"title"`
	Type        string              `gorm:"type:text" json:"type"`
	Activities  []ItineraryActivity `gorm:"foreignKey:DayID;constraint:OnDelete:CASCADE" json:"activities"`
}

type ItineraryActivity struct {
	BaseModel
	DayID       uuid.UUID `gorm:"type:uuid;not null;index" json:"-"`
	Seq         int       `gorm:"not null" json:"id"`
	Name        string    `gorm:"type:text" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
}
