package service

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"kotconnect/internal/errors"
	"kotconnect/internal/model"
	"kotconnect/internal/repository"
)

// EventInput carries the fields for creating an event.
type EventInput struct {
	Name        string
	Description string
	Location    string
	Date        time.Time
}

// EventService handles dorm-scoped events. Creation is gated on current dorm
// membership of the organizer.
type EventService interface {
	CreateEvent(ctx context.Context, dormCode string, input EventInput, actingUser *model.User) (*model.Event, error)
	GetEventsByDormID(ctx context.Context, dormID uint) ([]model.Event, error)
	GetAllEvents(ctx context.Context) ([]model.Event, error)
	GetEventByID(ctx context.Context, id uint) (*model.Event, error)
	DeleteEvent(ctx context.Context, id uint) error
}

type eventService struct {
	eventRepo   repository.EventRepository
	dormService DormService
}

// NewEventService creates a new event service.
func NewEventService(eventRepo repository.EventRepository, dormService DormService) EventService {
	return &eventService{
		eventRepo:   eventRepo,
		dormService: dormService,
	}
}

// CreateEvent resolves the dorm from its code and persists the event only if
// the acting user is a member of that dorm.
func (s *eventService) CreateEvent(ctx context.Context, dormCode string, input EventInput, actingUser *model.User) (*model.Event, error) {
	if beforeToday(input.Date) {
		return nil, errors.ErrDateInPast
	}

	dorm, err := s.dormService.GetByCode(ctx, dormCode)
	if err != nil {
		return nil, err
	}

	event := &model.Event{
		Name:        input.Name,
		Description: input.Description,
		Location:    input.Location,
		EventDate:   input.Date,
		OrganizerID: actingUser.ID,
		DormID:      dorm.ID,
	}

	member, err := s.dormService.IsMember(ctx, dorm.ID, actingUser.ID)
	if err != nil {
		return nil, fmt.Errorf("check membership: %w", err)
	}
	if !member {
		return nil, errors.ErrNotDormMember
	}

	if err := s.eventRepo.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}
	event.Organizer = *actingUser

	return event, nil
}

func (s *eventService) GetEventsByDormID(ctx context.Context, dormID uint) ([]model.Event, error) {
	return s.eventRepo.FindByDormID(ctx, dormID)
}

func (s *eventService) GetAllEvents(ctx context.Context) ([]model.Event, error) {
	return s.eventRepo.FindAll(ctx)
}

func (s *eventService) GetEventByID(ctx context.Context, id uint) (*model.Event, error) {
	event, err := s.eventRepo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrEventNotFound
		}
		return nil, fmt.Errorf("find event: %w", err)
	}
	return event, nil
}

// DeleteEvent removes an event by id. No ownership or membership check is
// performed here; any caller that can reach this can delete any event.
func (s *eventService) DeleteEvent(ctx context.Context, id uint) error {
	return s.eventRepo.DeleteByID(ctx, id)
}
