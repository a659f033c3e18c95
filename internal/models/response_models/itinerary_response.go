package response_models

import (
	"time"

	"github.com/google/uuid"
)

type ItineraryBody struct {
	FinalItinerary string `json:"final_itinerary"`
}

type GenerateItineraryResponse struct {
	Success bool `json:"success"`
	// ItineraryID is null when the record could not be stored.
	ItineraryID *uuid.UUID    `json:"itineraryId"`
	Itinerary   ItineraryBody `json:"itinerary"`
}

type Personality struct {
	B5 []float64 `json:"b5"`
	P  []float64 `json:"p"`
}

type Activity struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type DayPlan struct {
	Day        int        `json:"day"`
	Title      string     `json:"title"`
	Type       string     `json:"type"`
	Activities []Activity `json:"activities"`
}

type Recommendations struct {
	Dining   []string `json:"dining"`
	Shopping []string `json:"shopping"`
}

type ItineraryHistoryItem struct {
	ID              uuid.UUID        `json:"_id"`
	Days            int              `json:"days"`
	EAnxious        float64          `json:"e_anxious"`
	ECurious        float64          `json:"e_curious"`
	ETired          float64          `json:"e_tired"`
	UProfile        Personality      `json:"u_profile"`
	FinalItinerary  string           `json:"final_itinerary"`
	ContentSource   string           `json:"content_source"`
	TripType        *string          `json:"tripType,omitempty"`
	MatchPercentage *float64         `json:"matchPercentage,omitempty"`
	TotalActivities *int             `json:"totalActivities,omitempty"`
	DailyActivities []DayPlan        `json:"dailyActivities"`
	Recommendations *Recommendations `json:"recommendations,omitempty"`
	CreatedAt       time.Time        `json:"createdAt"`
}
