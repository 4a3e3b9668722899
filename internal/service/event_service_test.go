package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"kotconnect/internal/errors"
	"kotconnect/internal/model"
)

func TestEventService_CreateEvent(t *testing.T) {
	dorm := &model.Dorm{ID: 7, Name: "Maple House", Code: "QXKPZT"}
	member := &model.User{ID: 2, Username: "bob"}
	outsider := &model.User{ID: 9, Username: "carol"}

	input := EventInput{
		Name:        "House dinner",
		Description: "Monthly dinner",
		Location:    "Kitchen",
		Date:        time.Now().AddDate(0, 0, 10),
	}

	t.Run("member creates event", func(t *testing.T) {
		mockEvents := new(MockEventRepository)
		mockDorms := new(MockDormRepository)
		mockDorms.On("FindByCode", mock.Anything, "QXKPZT").Return(dorm, nil)
		mockDorms.On("IsMember", mock.Anything, uint(7), uint(2)).Return(true, nil)
		mockEvents.On("Create", mock.Anything, mock.AnythingOfType("*model.Event")).Return(nil)

		service := NewEventService(mockEvents, NewDormService(mockDorms, nil))

		event, err := service.CreateEvent(context.Background(), "QXKPZT", input, member)
		require.NoError(t, err)
		require.NotNil(t, event)
		assert.Equal(t, dorm.ID, event.DormID)
		assert.Equal(t, member.ID, event.OrganizerID)
		assert.Equal(t, "bob", event.Organizer.Username)

		mockEvents.AssertExpectations(t)
	})

	t.Run("non-member is rejected", func(t *testing.T) {
		mockEvents := new(MockEventRepository)
		mockDorms := new(MockDormRepository)
		mockDorms.On("FindByCode", mock.Anything, "QXKPZT").Return(dorm, nil)
		mockDorms.On("IsMember", mock.Anything, uint(7), uint(9)).Return(false, nil)

		service := NewEventService(mockEvents, NewDormService(mockDorms, nil))

		event, err := service.CreateEvent(context.Background(), "QXKPZT", input, outsider)
		assert.Equal(t, errors.ErrNotDormMember, err)
		assert.Nil(t, event)
		mockEvents.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("event date in the past", func(t *testing.T) {
		mockEvents := new(MockEventRepository)
		mockDorms := new(MockDormRepository)

		service := NewEventService(mockEvents, NewDormService(mockDorms, nil))

		past := input
		past.Date = time.Now().AddDate(0, 0, -1)
		event, err := service.CreateEvent(context.Background(), "QXKPZT", past, member)
		assert.Equal(t, errors.ErrDateInPast, err)
		assert.Nil(t, event)
	})
}

func TestEventService_GetEventByID(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		mockEvents := new(MockEventRepository)
		mockDorms := new(MockDormRepository)
		mockEvents.On("FindByID", mock.Anything, uint(3)).Return(&model.Event{ID: 3, Name: "Game night"}, nil)

		service := NewEventService(mockEvents, NewDormService(mockDorms, nil))

		event, err := service.GetEventByID(context.Background(), 3)
		require.NoError(t, err)
		assert.Equal(t, "Game night", event.Name)
	})

	t.Run("not found", func(t *testing.T) {
		mockEvents := new(MockEventRepository)
		mockDorms := new(MockDormRepository)
		mockEvents.On("FindByID", mock.Anything, uint(99)).Return(nil, gorm.ErrRecordNotFound)

		service := NewEventService(mockEvents, NewDormService(mockDorms, nil))

		event, err := service.GetEventByID(context.Background(), 99)
		assert.Equal(t, errors.ErrEventNotFound, err)
		assert.Nil(t, event)
	})
}
