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

func validTaskInput() TaskInput {
	return TaskInput{
		Title:       "Clean the kitchen",
		Description: "Counters and floor",
		Type:        model.TaskTypeCleaning,
		DueDate:     time.Now().AddDate(0, 0, 3),
	}
}

func TestTaskService_CreateTask(t *testing.T) {
	dorm := &model.Dorm{ID: 7, Name: "Maple House", Code: "QXKPZT"}
	member := &model.User{ID: 2, Username: "bob", Location: "Leuven"}
	outsider := &model.User{ID: 9, Username: "carol", Location: "Gent"}

	tests := []struct {
		name          string
		actingUser    *model.User
		input         func() TaskInput
		setupMocks    func(*MockTaskRepository, *MockDormRepository)
		expectedError error
	}{
		{
			name:       "member creates task",
			actingUser: member,
			input:      validTaskInput,
			setupMocks: func(tasks *MockTaskRepository, dorms *MockDormRepository) {
				dorms.On("FindByCode", mock.Anything, "QXKPZT").Return(dorm, nil)
				dorms.On("IsMember", mock.Anything, uint(7), uint(2)).Return(true, nil)
				tasks.On("Create", mock.Anything, mock.AnythingOfType("*model.Task")).Return(nil)
			},
			expectedError: nil,
		},
		{
			name:       "non-member is rejected",
			actingUser: outsider,
			input:      validTaskInput,
			setupMocks: func(tasks *MockTaskRepository, dorms *MockDormRepository) {
				dorms.On("FindByCode", mock.Anything, "QXKPZT").Return(dorm, nil)
				dorms.On("IsMember", mock.Anything, uint(7), uint(9)).Return(false, nil)
			},
			expectedError: errors.ErrNotDormMember,
		},
		{
			name:       "unknown dorm code",
			actingUser: member,
			input:      validTaskInput,
			setupMocks: func(tasks *MockTaskRepository, dorms *MockDormRepository) {
				dorms.On("FindByCode", mock.Anything, "QXKPZT").Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: errors.ErrDormNotFound,
		},
		{
			name:       "due date in the past",
			actingUser: member,
			input: func() TaskInput {
				in := validTaskInput()
				in.DueDate = time.Now().AddDate(0, 0, -1)
				return in
			},
			setupMocks:    func(tasks *MockTaskRepository, dorms *MockDormRepository) {},
			expectedError: errors.ErrDateInPast,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockTasks := new(MockTaskRepository)
			mockDorms := new(MockDormRepository)
			tt.setupMocks(mockTasks, mockDorms)

			dormService := NewDormService(mockDorms, nil)
			service := NewTaskService(mockTasks, dormService)

			task, err := service.CreateTask(context.Background(), "QXKPZT", tt.input(), tt.actingUser)

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError, err)
				assert.Nil(t, task)
				// Nothing may be persisted on a rejected creation.
				mockTasks.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
			} else {
				assert.NoError(t, err)
				require.NotNil(t, task)
				assert.Equal(t, dorm.ID, task.DormID)
				assert.Equal(t, tt.actingUser.ID, task.CreatedByID)
				assert.Equal(t, tt.actingUser.Username, task.CreatedBy.Username)
				// Address is denormalized from the creator's location.
				assert.Equal(t, tt.actingUser.Location, task.KotAddress)
			}

			mockTasks.AssertExpectations(t)
			mockDorms.AssertExpectations(t)
		})
	}
}

func TestTaskService_GetTasksByDormID(t *testing.T) {
	mockTasks := new(MockTaskRepository)
	mockDorms := new(MockDormRepository)
	mockTasks.On("FindByDormID", mock.Anything, uint(7)).Return([]model.Task{
		{ID: 1, Title: "Dishes", DormID: 7},
		{ID: 2, Title: "Trash", DormID: 7},
	}, nil)

	service := NewTaskService(mockTasks, NewDormService(mockDorms, nil))

	tasks, err := service.GetTasksByDormID(context.Background(), 7)
	require.NoError(t, err)
	assert.Len(t, tasks, 2)
}

func TestTaskService_DeleteTask(t *testing.T) {
	mockTasks := new(MockTaskRepository)
	mockDorms := new(MockDormRepository)
	mockTasks.On("DeleteByID", mock.Anything, uint(4)).Return(nil)

	service := NewTaskService(mockTasks, NewDormService(mockDorms, nil))

	// Deletion has no ownership check in this core.
	err := service.DeleteTask(context.Background(), 4)
	assert.NoError(t, err)
	mockTasks.AssertExpectations(t)
}
