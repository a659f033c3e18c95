package request_models

type SaveSurveyRequest struct {
	ItineraryID string `json:"itineraryId"`
	UserID      string `json:"userId"`
	// Survey is kept loose so that missing and malformed answers can be
	// reported per question.
	Survey map[string]any `json:"survey"`
}
