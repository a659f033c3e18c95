package request_models

type ChatRequest struct {
	Message        string `json:"message"`
	ItineraryText  string `json:"itineraryText"`
	ConversationID string `json:"conversationId,omitempty"`
	UserID         string `json:"userId,omitempty"`
}
