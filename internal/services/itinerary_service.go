package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/yifan996/Itinerary/internal/models/db_models"
	"github.com/yifan996/Itinerary/internal/models/request_models"
	"github.com/yifan996/Itinerary/internal/models/response_models"
	"github.com/yifan996/Itinerary/internal/repositories"
	"github.com/yifan996/Itinerary/pkg/coze"
	"github.com/yifan996/Itinerary/pkg/utils"
)

const itineraryHistoryLimit = 10

var (
	defaultB5 = []float64{0.7, 0.5, 0.6, 0.8, 0.3}
	defaultP  = []float64{0.4, 0.6, 0.7}
)

// WorkflowRunner executes the itinerary generation workflow.
type WorkflowRunner interface {
	RunWorkflow(ctx context.Context, parameters any) (*coze.WorkflowResult, error)
}

type GeneratedItinerary struct {
	// ID is nil when the itinerary could not be stored.
	ID             *uuid.UUID
	FinalItinerary string
}

type ItineraryServiceInterface interface {
	Generate(ctx context.Context, req request_models.GenerateItineraryRequest) (*GeneratedItinerary, error)
	ListRecent(ctx context.Context) ([]response_models.ItineraryHistoryItem, error)
}

type ItineraryService struct {
	workflow      WorkflowRunner
	itineraryRepo repositories.ItineraryRepositoryInterface
	logger        *zap.Logger
	timeout       time.Duration
}

func NewItineraryService(
	workflow WorkflowRunner,
	itineraryRepo repositories.ItineraryRepositoryInterface,
	logger *zap.Logger,
	timeout time.Duration,
) ItineraryServiceInterface {
	return &ItineraryService{
		workflow:      workflow,
		itineraryRepo: itineraryRepo,
		logger:        logger,
		timeout:       timeout,
	}
}

type workflowProfile struct {
	B5 []float64 `json:"b5"`
	P  []float64 `json:"p"`
}

type workflowParameters struct {
	UProfile workflowProfile `json:"u_profile"`
	Days     int             `json:"days"`
	ETired   float64         `json:"e_tired"`
	EAnxious float64         `json:"e_anxious"`
	ECurious float64         `json:"e_curious"`
}

func (s *ItineraryService) Generate(ctx context.Context, req request_models.GenerateItineraryRequest) (*GeneratedItinerary, error) {
	if req.Days < 1 {
		return nil, utils.NewValidationError("days must be at least 1")
	}

	profile := resolveProfile(req.UProfile)
	params := workflowParameters{
		UProfile: profile,
		Days:     req.Days,
		ETired:   req.ETired,
		EAnxious: req.EAnxious,
		ECurious: req.ECurious,
	}

	runCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	result, err := s.workflow.RunWorkflow(runCtx, params)
	if err != nil {
		return nil, ClassifyUpstreamError(err)
	}

	itinerary := &db_models.Itinerary{
		Days:      req.Days,
		EAnxious:  req.EAnxious,
		ECurious:  req.ECurious,
		ETired:    req.ETired,
		ProfileB5: pq.Float64Array(profile.B5),
		ProfileP:  pq.Float64Array(profile.P),
	}

	switch p := classifyWorkflowResult(result).(type) {
	case MessagePayload:
		itinerary.ContentSource = db_models.ContentFromMessage
		applyMessageContent(itinerary, p.Content)
	case RawPayload:
		if strings.TrimSpace(p.Raw) == "" {
			return nil, &utils.UpstreamError{Message: "The itinerary workflow returned an empty response."}
		}
		s.logger.Warn("workflow returned no Message event, storing raw payload",
			zap.Int("raw_bytes", len(p.Raw)),
			zap.Int("events", len(result.Events)))
		itinerary.ContentSource = db_models.ContentFromRaw
		itinerary.FinalItinerary = p.Raw
	default:
		return nil, fmt.Errorf("unhandled workflow payload %T", p)
	}

	generated := &GeneratedItinerary{FinalItinerary: itinerary.FinalItinerary}

	// A failed insert does not fail the request; the caller still gets the
	// itinerary, without an id.
	if err := s.itineraryRepo.Create(ctx, itinerary); err != nil {
		s.logger.Error("itinerary_persist_failed",
			zap.Error(fmt.Errorf("%w: %w", utils.ErrDatabaseError, err)),
			zap.Int("days", req.Days))
		return generated, nil
	}
	generated.ID = &itinerary.ID
	return generated, nil
}

func resolveProfile(p *request_models.Personality) workflowProfile {
	profile := workflowProfile{B5: defaultB5, P: defaultP}
	if p == nil {
		return profile
	}
	if len(p.B5) == db_models.BigFiveArity {
		profile.B5 = p.B5
	}
	if len(p.P) == db_models.PreferenceArity {
		profile.P = p.P
	}
	return profile
}

// WorkflowPayload is the normalized outcome of a workflow run: either
// MessagePayload or RawPayload.
type WorkflowPayload interface {
	workflowPayload()
}

// MessagePayload holds the concatenated content of the run's Message events.
type MessagePayload struct {
	Content string
}

// RawPayload is used when the run produced no Message content.
type RawPayload struct {
	Raw string
}

func (MessagePayload) workflowPayload() {}
func (RawPayload) workflowPayload()     {}

func classifyWorkflowResult(result *coze.WorkflowResult) WorkflowPayload {
	if result == nil {
		return RawPayload{}
	}
	var b strings.Builder
	for _, e := range result.Events {
		if e.Kind == coze.WorkflowMessage {
			b.WriteString(e.Content)
		}
	}
	if strings.TrimSpace(b.String()) == "" {
		return RawPayload{Raw: result.Raw}
	}
	return MessagePayload{Content: b.String()}
}

type structuredItinerary struct {
	FinalItinerary  string   `json:"final_itinerary"`
	TripType        *string  `json:"tripType"`
	MatchPercentage *float64 `json:"matchPercentage"`
	TotalActivities *int     `json:"totalActivities"`
	DailyActivities []struct {
		Day        int    `json:"day"`
		Title      string `json:"title"`
		Type       string `json:"type"`
		Activities []struct {
			ID          int    `json:"id"`
			Name        string `json:"name"`
			Description string `json:"description"`
		} `json:"activities"`
	} `json:"dailyActivities"`
	Recommendations *struct {
		Dining   []string `json:"dining"`
		Shopping []string `json:"shopping"`
	} `json:"recommendations"`
}

// applyMessageContent sets the itinerary body. Content that is a JSON object
// with a non-empty final_itinerary also fills the structured breakdown;
// anything else is stored verbatim.
func applyMessageContent(it *db_models.Itinerary, content string) {
	it.FinalItinerary = content

	trimmed := strings.TrimSpace(content)
	if !strings.HasPrefix(trimmed, "{") {
		return
	}
	var s structuredItinerary
	if err := json.Unmarshal([]byte(trimmed), &s); err != nil || strings.TrimSpace(s.FinalItinerary) == "" {
		return
	}

	it.FinalItinerary = s.FinalItinerary
	it.TripType = s.TripType
	it.MatchPercentage = s.MatchPercentage
	it.TotalActivities = s.TotalActivities
	if s.Recommendations != nil {
		it.DiningRecommendations = s.Recommendations.Dining
		it.ShoppingRecommendations = s.Recommendations.Shopping
	}
	for _, d := range s.DailyActivities {
		day := db_models.ItineraryDay{Day: d.Day, Title: d.Title, Type: d.Type}
		for _, a := range d.Activities {
			day.Activities = append(day.Activities, db_models.ItineraryActivity{
				Seq:         a.ID,
				Name:        a.Name,
				Description: a.Description,
			})
		}
		it.DailyActivities = append(it.DailyActivities, day)
	}
}

func (s *ItineraryService) ListRecent(ctx context.Context) ([]response_models.ItineraryHistoryItem, error) {
	itineraries, err := s.itineraryRepo.ListRecent(ctx, itineraryHistoryLimit)
	if err != nil {
		return nil, fmt.Errorf("%w: list itineraries: %w", utils.ErrDatabaseError, err)
	}

	items := make([]response_models.ItineraryHistoryItem, 0, len(itineraries))
	for i := range itineraries {
		items = append(items, itineraryHistoryItem(&itineraries[i]))
	}
	return items, nil
}

func itineraryHistoryItem(it *db_models.Itinerary) response_models.ItineraryHistoryItem {
	item := response_models.ItineraryHistoryItem{
		ID:              it.ID,
		Days:            it.Days,
		EAnxious:        it.EAnxious,
		ECurious:        it.ECurious,
		ETired:          it.ETired,
		UProfile:        response_models.Personality{B5: it.ProfileB5, P: it.ProfileP},
		FinalItinerary:  it.FinalItinerary,
		ContentSource:   string(it.ContentSource),
		TripType:        it.TripType,
		MatchPercentage: it.MatchPercentage,
		TotalActivities: it.TotalActivities,
		DailyActivities: make([]response_models.DayPlan, 0, len(it.DailyActivities)),
		CreatedAt:       it.CreatedAt,
	}
	if len(it.DiningRecommendations) > 0 || len(it.ShoppingRecommendations) > 0 {
		item.Recommendations = &response_models.Recommendations{
			Dining:   it.DiningRecommendations,
			Shopping: it.ShoppingRecommendations,
		}
	}
	for _, d := range it.DailyActivities {
		plan := response_models.DayPlan{Day: d.Day, Title: d.Title, Type: d.Type, Activities: make([]response_models.Activity, 0, len(d.Activities))}
		for _, a := range d.Activities {
			plan.Activities = append(plan.Activities, response_models.Activity{ID: a.Seq, Name: a.Name, Description: a.Description})
		}
		item.DailyActivities = append(item.DailyActivities, plan)
	}
	return item
}
