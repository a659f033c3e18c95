package response_models

import (
	"time"

	"github.com/google/uuid"
)

type SaveSurveyResponse struct {
	Success  bool      `json:"success"`
	SurveyID uuid.UUID `json:"surveyId"`
}

type SurveyAnswers struct {
	Q1  int `json:"q1"`
	Q2  int `json:"q2"`
	Q3  int `json:"q3"`
	Q4  int `json:"q4"`
	Q5  int `json:"q5"`
	Q6  int `json:"q6"`
	Q7  int `json:"q7"`
	Q8  int `json:"q8"`
	Q9  int `json:"q9"`
	Q10 int `json:"q10"`
	Q11 int `json:"q11"`
	Q12 int `json:"q12"`
	Q13 int `json:"q13"`
	Q14 int `json:"q14"`
}

type SurveyHistoryItem struct {
	ID          uuid.UUID     `json:"_id"`
	ItineraryID *uuid.UUID    `json:"itineraryId"`
	UserID      string        `json:"userId"`
	Survey      SurveyAnswers `json:"survey"`
	CreatedAt   time.Time     `json:"createdAt"`
}
