package response_models

type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
