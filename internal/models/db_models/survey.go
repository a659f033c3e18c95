package db_models

import "github.com/google/uuid"

// SurveyQuestions is the number of Likert items in a survey.
const SurveyQuestions = 14

// SurveyAnswers holds q1..q14, each in 1..5.
type SurveyAnswers [SurveyQuestions]int

type Survey struct {
	BaseModel
	ItineraryID *uuid.UUID `gorm:"type:uuid;index" json:"itineraryId"`
	UserID      string     `gorm:"type:text;not null;default:''" json:"userId"`
	Q1          int        `gorm:"column:q1;not null;check:q1 BETWEEN 1 AND 5" json:"q1"`
	Q2          int        `gorm:"column:q2;not null;check:q2 BETWEEN 1 AND 5" json:"q2"`
	Q3          int        `gorm:"column:q3;not null;check:q3 BETWEEN 1 AND 5" json:"q3"`
	Q4          int        `gorm:"column:q4;not null;check:q4 BETWEEN 1 AND 5" json:"q4"`
	Q5          int        `gorm:"column:q5;not null;check:q5 BETWEEN 1 AND 5" json:"q5"`
	Q6          int        `gorm:"column:q6;not null;check:q6 BETWEEN 1 AND 5" json:"q6"`
	Q7          int        `gorm:"column:q7;not null;check:q7 BETWEEN 1 AND 5" json:"q7"`
	Q8          int        `gorm:"column:q8;not null;check:q8 BETWEEN 1 AND 5" json:"q8"`
	Q9          int        `gorm:"column:q9;not null;check:q9 BETWEEN 1 AND 5" json:"q9"`
	Q10         int        `gorm:"column:q10;not null;check:q10 BETWEEN 1 AND 5" json:"q10"`
	Q11         int        `gorm:"column:q11;not null;check:q11 BETWEEN 1 AND 5" json:"q11"`
	Q12         int        `gorm:"column:q12;not null;check:q12 BETWEEN 1 AND 5" json:"q12"`
	Q13         int        `gorm:"column:q13;not null;check:q13 BETWEEN 1 AND 5" json:"q13"`
	Q14         int        `gorm:"column:q14;not null;check:q14 BETWEEN 1 AND 5" json:"q14"`
}

func NewSurvey(itineraryID *uuid.UUID, userID string, a SurveyAnswers) *Survey {
	return &Survey{
		ItineraryID: itineraryID,
		UserID:      userID,
		Q1:          a[0],
		Q2:          a[1],
		Q3:          a[2],
		Q4:          a[3],
		Q5:          a[4],
		Q6:          a[5],
		Q7:          a[6],
		Q8:          a[7],
		Q9:          a[8],
		Q10:         a[9],
		Q11:         a[10],
		Q12:         a[11],
		Q13:         a[12],
		Q14:         a[13],
	}
}

// Answers returns q1..q14 in order.
func (s *Survey) Answers() SurveyAnswers {
	return SurveyAnswers{s.Q1, s.Q2, s.Q3, s.Q4, s.Q5, s.Q6, s.Q7, s.Q8, s.Q9, s.Q10, s.Q11, s.Q12, s.Q13, s.Q14}
}
