package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/yifan996/Itinerary/internal/models/db_models"
	"github.com/yifan996/Itinerary/internal/models/request_models"
	"github.com/yifan996/Itinerary/internal/models/response_models"
	"github.com/yifan996/Itinerary/internal/repositories"
	"github.com/yifan996/Itinerary/pkg/utils"
)

const surveyHistoryLimit = 20

type SurveyServiceInterface interface {
	SaveSurvey(ctx context.Context, req request_models.SaveSurveyRequest) (uuid.UUID, error)
	ListRecent(ctx context.Context) ([]response_models.SurveyHistoryItem, error)
}

type SurveyService struct {
	surveyRepo repositories.SurveyRepositoryInterface
}

func NewSurveyService(surveyRepo repositories.SurveyRepositoryInterface) SurveyServiceInterface {
	return &SurveyService{surveyRepo: surveyRepo}
}

func (s *SurveyService) SaveSurvey(ctx context.Context, req request_models.SaveSurveyRequest) (uuid.UUID, error) {
	answers, err := ValidateSurvey(req.Survey)
	if err != nil {
		return uuid.Nil, err
	}

	var itineraryID *uuid.UUID
	if raw := strings.TrimSpace(req.ItineraryID); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return uuid.Nil, utils.NewValidationError("Invalid itineraryId")
		}
		itineraryID = &id
	}

	survey := db_models.NewSurvey(itineraryID, req.UserID, answers)
	if err := s.surveyRepo.Create(ctx, survey); err != nil {
		return uuid.Nil, fmt.Errorf("%w: save survey: %w", utils.ErrDatabaseError, err)
	}
	return survey.ID, nil
}

func (s *SurveyService) ListRecent(ctx context.Context) ([]response_models.SurveyHistoryItem, error) {
	surveys, err := s.surveyRepo.ListRecent(ctx, surveyHistoryLimit)
	if err != nil {
		return nil, fmt.Errorf("%w: list surveys: %w", utils.ErrDatabaseError, err)
	}

	items := make([]response_models.SurveyHistoryItem, 0, len(surveys))
	for i := range surveys {
		a := surveys[i].Answers()
		items = append(items, response_models.SurveyHistoryItem{
			ID:          surveys[i].ID,
			ItineraryID: surveys[i].ItineraryID,
			UserID:      surveys[i].UserID,
			Survey:      surveyAnswersBody(a),
			CreatedAt:   surveys[i].CreatedAt,
		})
	}
	return items, nil
}

func surveyAnswersBody(a db_models.SurveyAnswers) response_models.SurveyAnswers {
	return response_models.SurveyAnswers{
		Q1:  a[0],
		Q2:  a[1],
		Q3:  a[2],
		Q4:  a[3],
		Q5:  a[4],
		Q6:  a[5],
		Q7:  a[6],
		Q8:  a[7],
		Q9:  a[8],
		Q10: a[9],
		Q11: a[10],
		Q12: a[11],
		Q13: a[12],
		Q14: a[13],
	}
}
