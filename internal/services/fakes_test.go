package services

import (
	"context"
	"errors"
	"io"
	"sync"

	"github.com/yifan996/Itinerary/internal/chatstream"
	"github.com/yifan996/Itinerary/internal/models/db_models"
	"github.com/yifan996/Itinerary/pkg/coze"
)

type fakeWorkflow struct {
	result *coze.WorkflowResult
	err    error
	calls  int
	params any
	// block makes RunWorkflow wait for its context to end.
	block bool
}

func (f *fakeWorkflow) RunWorkflow(ctx context.Context, parameters any) (*coze.WorkflowResult, error) {
	f.calls++
	f.params = parameters
	if f.block {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	return f.result, f.err
}

type fakeItineraryRepo struct {
	mu        sync.Mutex
	created   []*db_models.Itinerary
	createErr error
	list      []db_models.Itinerary
	listErr   error
}

func (f *fakeItineraryRepo) Create(_ context.Context, it *db_models.Itinerary) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return f.createErr
	}
	_ = it.BeforeCreate(nil)
	f.created = append(f.created, it)
	return nil
}

func (f *fakeItineraryRepo) ListRecent(_ context.Context, limit int) ([]db_models.Itinerary, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	if len(f.list) > limit {
		return f.list[:limit], nil
	}
	return f.list, nil
}

type fakeSurveyRepo struct {
	created   []*db_models.Survey
	createErr error
	list      []db_models.Survey
	listErr   error
	lastLimit int
}

func (f *fakeSurveyRepo) Create(_ context.Context, s *db_models.Survey) error {
	if f.createErr != nil {
		return f.createErr
	}
	_ = s.BeforeCreate(nil)
	f.created = append(f.created, s)
	return nil
}

func (f *fakeSurveyRepo) ListRecent(_ context.Context, limit int) ([]db_models.Survey, error) {
	f.lastLimit = limit
	return f.list, f.listErr
}

type fakeProfileRepo struct {
	created   []*db_models.UserProfile
	createErr error
}

func (f *fakeProfileRepo) Create(_ context.Context, p *db_models.UserProfile) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, p)
	return nil
}

type sliceStream struct {
	events []chatstream.Event
	err    error
	closed bool
}

func (s *sliceStream) Recv() (chatstream.Event, error) {
	if len(s.events) == 0 {
		if s.err != nil {
			return chatstream.Event{}, s.err
		}
		return chatstream.Event{}, io.EOF
	}
	e := s.events[0]
	s.events = s.events[1:]
	return e, nil
}

func (s *sliceStream) Close() error {
	s.closed = true
	return nil
}

type fakeStreamer struct {
	stream  *sliceStream
	openErr error
	calls   int
	last    chatstream.Request
}

func (f *fakeStreamer) StreamChat(_ context.Context, req chatstream.Request) (chatstream.Stream, error) {
	f.calls++
	f.last = req
	if f.openErr != nil {
		return nil, f.openErr
	}
	if f.stream == nil {
		return nil, errors.New("no stream configured")
	}
	return f.stream, nil
}
