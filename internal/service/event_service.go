package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/mansi2425/punjab-alumni-connect/internal/errors"
	"github.com/mansi2425/punjab-alumni-connect/internal/model"
	"github.com/mansi2425/punjab-alumni-connect/internal/policy"
	"github.com/mansi2425/punjab-alumni-connect/internal/repository"
)

// EventInput carries the editable fields of an event.
type EventInput struct {
	Title       string
	Description string
	StartTime   time.Time
	EndTime     time.Time
	Location    string
}

// EventService manages the event board.
type EventService interface {
	List(ctx context.Context) ([]model.Event, error)
	Get(ctx context.Context, id uint) (*model.Event, error)
	Create(ctx context.Context, actor *model.User, input EventInput) (*model.Event, error)
	Update(ctx context.Context, actor *model.User, id uint, input EventInput) (*model.Event, error)
	Delete(ctx context.Context, actor *model.User, id uint) error
}

type eventService struct {
	repo repository.EventRepository
	log  *zap.Logger
}

// NewEventService creates a new event service.
func NewEventService(repo repository.EventRepository, log *zap.Logger) EventService {
	return &eventService{repo: repo, log: log}
}

func (s *eventService) List(ctx context.Context) ([]model.Event, error) {
	events, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	if events == nil {
		events = []model.Event{}
	}
	return events, nil
}

func (s *eventService) Get(ctx context.Context, id uint) (*model.Event, error) {
	event, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.ErrEventNotFound
		}
		return nil, fmt.Errorf("find event: %w", err)
	}
	return event, nil
}

// Create publishes an event organized by actor. Students may not create events.
func (s *eventService) Create(ctx context.Context, actor *model.User, input EventInput) (*model.Event, error) {
	if err := policy.Authorize(actor, policy.CreateEvent, nil); err != nil {
		return nil, err
	}
	if !input.EndTime.After(input.StartTime) {
		return nil, errors.ErrInvalidSchedule
	}

	event := &model.Event{OrganizerID: actor.ID}
	applyEvent(event, input)
	if err := s.repo.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}
	event.OrganizerUsername = actor.Username

	s.log.Info("event created", zap.Uint("event_id", event.ID), zap.Uint("organizer_id", actor.ID))
	return event, nil
}

func (s *eventService) Update(ctx context.Context, actor *model.User, id uint, input EventInput) (*model.Event, error) {
	event, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := policy.Authorize(actor, policy.ModifyEvent, event); err != nil {
		return nil, err
	}
	if !input.EndTime.After(input.StartTime) {
		return nil, errors.ErrInvalidSchedule
	}

	applyEvent(event, input)
	if err := s.repo.Update(ctx, event); err != nil {
		return nil, fmt.Errorf("update event: %w", err)
	}
	return event, nil
}

func (s *eventService) Delete(ctx context.Context, actor *model.User, id uint) error {
	event, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := policy.Authorize(actor, policy.ModifyEvent, event); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, event.ID); err != nil {
		return fmt.Errorf("delete event: %w", err)
	}
	return nil
}

func applyEvent(event *model.Event, input EventInput) {
	event.Title = input.Title
	event.Description = input.Description
	event.StartTime = input.StartTime
	event.EndTime = input.EndTime
	event.Location = input.Location
}
