package request_models

// Personality is the traveller's Big Five scores (b5) and travel preference
// weights (p).
type Personality struct {
	B5 []float64 `json:"b5"`
	P  []float64 `json:"p"`
}

type GenerateItineraryRequest struct {
	Days     int          `json:"days"`
	EAnxious float64      `json:"e_anxious"`
	ECurious float64      `json:"e_curious"`
	ETired   float64      `json:"e_tired"`
	UProfile *Personality `json:"u_profile,omitempty"`
}

type ProfileForm struct {
	Days     int     `json:"days"`
	EAnxious float64 `json:"e_anxious"`
	ECurious float64 `json:"e_curious"`
	ETired   float64 `json:"e_tired"`
}

type SaveProfileRequest struct {
	FormData    ProfileForm `json:"formData"`
	Personality Personality `json:"personality"`
}
