package service

import (
	"context"
	"fmt"
	"time"

	"kotconnect/internal/errors"
	"kotconnect/internal/model"
	"kotconnect/internal/repository"
)

// TaskInput carries the fields for creating a task.
type TaskInput struct {
	Title       string
	Description string
	Type        model.TaskType
	DueDate     time.Time
}

// TaskService handles dorm-scoped chores. Creation is gated on current dorm
// membership of the acting user.
type TaskService interface {
	CreateTask(ctx context.Context, dormCode string, input TaskInput, actingUser *model.User) (*model.Task, error)
	GetTasksByDormID(ctx context.Context, dormID uint) ([]model.Task, error)
	GetTasksByType(ctx context.Context, taskType model.TaskType) ([]model.Task, error)
	GetAllTasks(ctx context.Context) ([]model.Task, error)
	DeleteTask(ctx context.Context, id uint) error
}

type taskService struct {
	taskRepo    repository.TaskRepository
	dormService DormService
}

// NewTaskService creates a new task service.
func NewTaskService(taskRepo repository.TaskRepository, dormService DormService) TaskService {
	return &taskService{
		taskRepo:    taskRepo,
		dormService: dormService,
	}
}

// CreateTask resolves the dorm from its code, constructs the task with the
// creator's address denormalized onto it, and persists it only if the acting
// user is a member of that dorm.
func (s *taskService) CreateTask(ctx context.Context, dormCode string, input TaskInput, actingUser *model.User) (*model.Task, error) {
	if beforeToday(input.DueDate) {
		return nil, errors.ErrDateInPast
	}

	dorm, err := s.dormService.GetByCode(ctx, dormCode)
	if err != nil {
		return nil, err
	}

	task := &model.Task{
		Title:       input.Title,
		Description: input.Description,
		Type:        input.Type,
		DueDate:     input.DueDate,
		KotAddress:  actingUser.Location,
		CreatedByID: actingUser.ID,
		DormID:      dorm.ID,
	}

	member, err := s.dormService.IsMember(ctx, dorm.ID, actingUser.ID)
	if err != nil {
		return nil, fmt.Errorf("check membership: %w", err)
	}
	if !member {
		return nil, errors.ErrNotDormMember
	}

	if err := s.taskRepo.Create(ctx, task); err != nil {
		return nil, fmt.Errorf("create task: %w", err)
	}
	task.CreatedBy = *actingUser

	return task, nil
}

func (s *taskService) GetTasksByDormID(ctx context.Context, dormID uint) ([]model.Task, error) {
	return s.taskRepo.FindByDormID(ctx, dormID)
}

func (s *taskService) GetTasksByType(ctx context.Context, taskType model.TaskType) ([]model.Task, error) {
	return s.taskRepo.FindByType(ctx, taskType)
}

func (s *taskService) GetAllTasks(ctx context.Context) ([]model.Task, error) {
	return s.taskRepo.FindAll(ctx)
}

// DeleteTask removes a task by id. No ownership or membership check is
// performed here; any caller that can reach this can delete any task.
func (s *taskService) DeleteTask(ctx context.Context, id uint) error {
	return s.taskRepo.DeleteByID(ctx, id)
}

// beforeToday reports whether t falls on a day before the current one.
func beforeToday(t time.Time) bool {
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return t.Before(today)
}
