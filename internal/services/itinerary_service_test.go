package services

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/yifan996/Itinerary/internal/models/db_models"
	"github.com/yifan996/Itinerary/internal/models/request_models"
	"github.com/yifan996/Itinerary/internal/models/response_models"
	"github.com/yifan996/Itinerary/pkg/coze"
	"github.com/yifan996/Itinerary/pkg/utils"
)

func messageResult(contents ...string) *coze.WorkflowResult {
	r := &coze.WorkflowResult{Raw: "raw-body"}
	for _, c := range contents {
		r.Events = append(r.Events, coze.WorkflowEvent{Kind: coze.WorkflowMessage, Content: c})
	}
	r.Events = append(r.Events, coze.WorkflowEvent{Kind: coze.WorkflowDone})
	return r
}

func newItineraryService(wf WorkflowRunner, repo *fakeItineraryRepo, logger *zap.Logger) ItineraryServiceInterface {
	if logger == nil {
		logger = zap.NewNop()
	}
	return NewItineraryService(wf, repo, logger, time.Second)
}

func TestGenerate_UsesDefaultProfileAndStores(t *testing.T) {
	wf := &fakeWorkflow{result: messageResult("Day 1: ", "lake walk")}
	repo := &fakeItineraryRepo{}
	svc := newItineraryService(wf, repo, nil)

	got, err := svc.Generate(context.Background(), request_models.GenerateItineraryRequest{
		Days: 2, EAnxious: 0.1, ECurious: 0.9, ETired: 0.3,
	})
	require.NoError(t, err)
	assert.Equal(t, "Day 1: lake walk", got.FinalItinerary)
	require.NotNil(t, got.ID)

	params := wf.params.(workflowParameters)
	want := workflowParameters{
		UProfile: workflowProfile{B5: []float64{0.7, 0.5, 0.6, 0.8, 0.3}, P: []float64{0.4, 0.6, 0.7}},
		Days:     2,
		ETired:   0.3,
		EAnxious: 0.1,
		ECurious: 0.9,
	}
	if diff := cmp.Diff(want, params); diff != "" {
		t.Fatalf("workflow parameters mismatch (-want +got):\n%s", diff)
	}

	require.Len(t, repo.created, 1)
	stored := repo.created[0]
	assert.Equal(t, *got.ID, stored.ID)
	assert.Equal(t, db_models.ContentFromMessage, stored.ContentSource)
	assert.Equal(t, []float64{0.7, 0.5, 0.6, 0.8, 0.3}, []float64(stored.ProfileB5))
}

func TestGenerate_UsesCallerProfile(t *testing.T) {
	wf := &fakeWorkflow{result: messageResult("plan")}
	svc := newItineraryService(wf, &fakeItineraryRepo{}, nil)

	_, err := svc.Generate(context.Background(), request_models.GenerateItineraryRequest{
		Days:     1,
		UProfile: &request_models.Personality{B5: []float64{0.1, 0.2, 0.3, 0.4, 0.5}, P: []float64{0.9, 0.8, 0.7}},
	})
	require.NoError(t, err)
	params := wf.params.(workflowParameters)
	assert.Equal(t, []float64{0.1, 0.2, 0.3, 0.4, 0.5}, params.UProfile.B5)
	assert.Equal(t, []float64{0.9, 0.8, 0.7}, params.UProfile.P)
}

func TestGenerate_WrongArityProfileUsesDefaults(t *testing.T) {
	wf := &fakeWorkflow{result: messageResult("plan")}
	svc := newItineraryService(wf, &fakeItineraryRepo{}, nil)

	_, err := svc.Generate(context.Background(), request_models.GenerateItineraryRequest{
		Days:     1,
		UProfile: &request_models.Personality{B5: []float64{0.1, 0.2}, P: []float64{0.9, 0.8, 0.7}},
	})
	require.NoError(t, err)
	params := wf.params.(workflowParameters)
	assert.Equal(t, []float64{0.7, 0.5, 0.6, 0.8, 0.3}, params.UProfile.B5)
	assert.Equal(t, []float64{0.9, 0.8, 0.7}, params.UProfile.P)
}

func TestGenerate_StoreFailureStillSucceeds(t *testing.T) {
	core, logs := observer.New(zapcore.ErrorLevel)
	wf := &fakeWorkflow{result: messageResult("A three day plan")}
	repo := &fakeItineraryRepo{createErr: errors.New("connection refused")}
	svc := newItineraryService(wf, repo, zap.New(core))

	got, err := svc.Generate(context.Background(), request_models.GenerateItineraryRequest{Days: 3})
	require.NoError(t, err)
	assert.Nil(t, got.ID)
	assert.Equal(t, "A three day plan", got.FinalItinerary)
	assert.Equal(t, 1, logs.FilterMessage("itinerary_persist_failed").Len())
}

func TestGenerate_RawFallback(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	wf := &fakeWorkflow{result: &coze.WorkflowResult{
		Events: []coze.WorkflowEvent{{Kind: coze.WorkflowPing}, {Kind: coze.WorkflowDone}},
		Raw:    "event: PING\ndata: {}\n\nevent: Done\ndata: {}\n\n",
	}}
	repo := &fakeItineraryRepo{}
	svc := newItineraryService(wf, repo, zap.New(core))

	got, err := svc.Generate(context.Background(), request_models.GenerateItineraryRequest{Days: 1})
	require.NoError(t, err)
	assert.Contains(t, got.FinalItinerary, "event: PING")
	require.Len(t, repo.created, 1)
	assert.Equal(t, db_models.ContentFromRaw, repo.created[0].ContentSource)
	assert.Equal(t, 1, logs.Len())
}

func TestGenerate_EmptyUpstreamFails(t *testing.T) {
	wf := &fakeWorkflow{result: &coze.WorkflowResult{}}
	repo := &fakeItineraryRepo{}
	svc := newItineraryService(wf, repo, nil)

	_, err := svc.Generate(context.Background(), request_models.GenerateItineraryRequest{Days: 1})
	var upstream *utils.UpstreamError
	require.ErrorAs(t, err, &upstream)
	assert.Empty(t, repo.created)
}

func TestGenerate_StructuredContent(t *testing.T) {
	content := `{
		"final_itinerary": "Day 1: old town",
		"tripType": "culture",
		"matchPercentage": 87.5,
		"totalActivities": 2,
		"dailyActivities": [{"day": 1, "title": "Old town", "type": "walk",
			"activities": [{"id": 1, "name": "Museum", "description": "history"}, {"id": 2, "name": "Tea house"}]}],
		"recommendations": {"dining": ["noodles"], "shopping": ["silk"]}
	}`
	wf := &fakeWorkflow{result: messageResult(content)}
	repo := &fakeItineraryRepo{}
	svc := newItineraryService(wf, repo, nil)

	got, err := svc.Generate(context.Background(), request_models.GenerateItineraryRequest{Days: 1})
	require.NoError(t, err)
	assert.Equal(t, "Day 1: old town", got.FinalItinerary)

	stored := repo.created[0]
	require.NotNil(t, stored.TripType)
	assert.Equal(t, "culture", *stored.TripType)
	assert.Equal(t, 87.5, *stored.MatchPercentage)
	assert.Equal(t, 2, *stored.TotalActivities)
	require.Len(t, stored.DailyActivities, 1)
	assert.Equal(t, "Tea house", stored.DailyActivities[0].Activities[1].Name)
	assert.Equal(t, []string{"noodles"}, []string(stored.DiningRecommendations))
}

func TestGenerate_JSONWithoutFinalItineraryIsVerbatim(t *testing.T) {
	wf := &fakeWorkflow{result: messageResult(`{"output":"Day 1"}`)}
	svc := newItineraryService(wf, &fakeItineraryRepo{}, nil)

	got, err := svc.Generate(context.Background(), request_models.GenerateItineraryRequest{Days: 1})
	require.NoError(t, err)
	assert.Equal(t, `{"output":"Day 1"}`, got.FinalItinerary)
}

func TestGenerate_Validation(t *testing.T) {
	wf := &fakeWorkflow{}
	svc := newItineraryService(wf, &fakeItineraryRepo{}, nil)

	_, err := svc.Generate(context.Background(), request_models.GenerateItineraryRequest{Days: 0})
	require.ErrorIs(t, err, utils.ErrInvalidInput)
	assert.Zero(t, wf.calls)
}

func TestGenerate_UpstreamErrors(t *testing.T) {
	t.Run("remote", func(t *testing.T) {
		wf := &fakeWorkflow{err: &coze.APIError{StatusCode: 200, Code: 4000, Message: "workflow not published"}}
		svc := newItineraryService(wf, &fakeItineraryRepo{}, nil)

		_, err := svc.Generate(context.Background(), request_models.GenerateItineraryRequest{Days: 1})
		code, msg := utils.ErrorStatus(err)
		assert.Equal(t, 500, code)
		assert.Equal(t, "workflow not published", msg)
	})

	t.Run("transport", func(t *testing.T) {
		wf := &fakeWorkflow{err: fmt.Errorf("%w: do request: refused", coze.ErrTransport)}
		svc := newItineraryService(wf, &fakeItineraryRepo{}, nil)

		_, err := svc.Generate(context.Background(), request_models.GenerateItineraryRequest{Days: 1})
		assert.ErrorIs(t, err, utils.ErrUpstreamTransport)
	})

	t.Run("timeout", func(t *testing.T) {
		wf := &fakeWorkflow{block: true}
		svc := NewItineraryService(wf, &fakeItineraryRepo{}, zap.NewNop(), 10*time.Millisecond)

		_, err := svc.Generate(context.Background(), request_models.GenerateItineraryRequest{Days: 1})
		assert.ErrorIs(t, err, utils.ErrUpstreamTransport)
		assert.ErrorIs(t, err, context.DeadlineExceeded)
	})
}

func TestItineraryListRecent(t *testing.T) {
	trip := "relaxed"
	id := uuid.New()
	created := time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC)
	repo := &fakeItineraryRepo{list: []db_models.Itinerary{{
		BaseModel:      db_models.BaseModel{ID: id, CreatedAt: created},
		Days:           2,
		ProfileB5:      []float64{0.7, 0.5, 0.6, 0.8, 0.3},
		ProfileP:       []float64{0.4, 0.6, 0.7},
		FinalItinerary: "plan",
		ContentSource:  db_models.ContentFromMessage,
		TripType:       &trip,
		DailyActivities: []db_models.ItineraryDay{{
			Day: 1, Title: "Lake",
			Activities: []db_models.ItineraryActivity{{Seq: 1, Name: "Boat"}},
		}},
		ShoppingRecommendations: []string{"tea"},
	}}}
	svc := newItineraryService(&fakeWorkflow{}, repo, nil)

	items, err := svc.ListRecent(context.Background())
	require.NoError(t, err)

	want := []response_models.ItineraryHistoryItem{{
		ID:             id,
		Days:           2,
		UProfile:       response_models.Personality{B5: []float64{0.7, 0.5, 0.6, 0.8, 0.3}, P: []float64{0.4, 0.6, 0.7}},
		FinalItinerary: "plan",
		ContentSource:  "message",
		TripType:       &trip,
		DailyActivities: []response_models.DayPlan{{
			Day: 1, Title: "Lake",
			Activities: []response_models.Activity{{ID: 1, Name: "Boat"}},
		}},
		Recommendations: &response_models.Recommendations{Shopping: []string{"tea"}},
		CreatedAt:       created,
	}}
	if diff := cmp.Diff(want, items); diff != "" {
		t.Fatalf("history mismatch (-want +got):\n%s", diff)
	}
}

func TestItineraryListRecent_StoreFailure(t *testing.T) {
	svc := newItineraryService(&fakeWorkflow{}, &fakeItineraryRepo{listErr: errors.New("down")}, nil)

	_, err := svc.ListRecent(context.Background())
	require.ErrorIs(t, err, utils.ErrDatabaseError)
}
