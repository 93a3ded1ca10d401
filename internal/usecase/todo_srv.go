package usecase

import (
	"context"
	"fmt"
	"time"

	"todo-app/internal/data/entity"
	"todo-app/internal/data/repository"
	"todo-app/internal/dto/request"
	"todo-app/internal/dto/response"
	"todo-app/pkg/apperr"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type TodoService interface {
	Create(ctx context.Context, ownerID uuid.UUID, req *request.TodoRequest) (*entity.Todo, error)
	Get(ctx context.Context, id uuid.UUID) (*entity.Todo, error)
	// List returns the owner's todos; with all set, every todo (admin view).
	List(ctx context.Context, ownerID uuid.UUID, all bool, req *request.PaginatedRequest) (*response.PaginatedResponse[response.TodoResponse], error)
	Update(ctx context.Context, id uuid.UUID, req *request.TodoRequest) (*entity.Todo, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type todoService struct {
	todos repository.TodoRepository
	log   *zap.Logger
}

func NewTodoService(todos repository.TodoRepository, log *zap.Logger) TodoService {
	return &todoService{
		todos: todos,
		log:   log,
	}
}

func (ts *todoService) Create(ctx context.Context, ownerID uuid.UUID, req *request.TodoRequest) (*entity.Todo, error) {
	now := time.Now()
	todo := &entity.Todo{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Task:      req.Task,
		CreatedBy: ownerID,
	}

	if err := ts.todos.Create(ctx, todo); err != nil {
		return nil, fmt.Errorf("create todo: %w", err)
	}

	ts.log.Info("Todo created",
		zap.String("todo_id", todo.ID.String()),
		zap.String("created_by", ownerID.String()))

	return todo, nil
}

func (ts *todoService) Get(ctx context.Context, id uuid.UUID) (*entity.Todo, error) {
	todo, err := ts.todos.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get todo: %w", err)
	}
	if todo == nil {
		return nil, fmt.Errorf("todo %s: %w", id.String(), apperr.ErrNotFound)
	}

	return todo, nil
}

func (ts *todoService) List(ctx context.Context, ownerID uuid.UUID, all bool, req *request.PaginatedRequest) (*response.PaginatedResponse[response.TodoResponse], error) {
	if req.Page < 1 {
		req.Page = 1
	}

	var (
		todos []*entity.Todo
		total int64
		err   error
	)

	if all {
		todos, err = ts.todos.FindAll(ctx, req.Limit(), req.Offset())
	} else {
		todos, err = ts.todos.FindAllByOwner(ctx, ownerID, req.Limit(), req.Offset())
	}
	if err != nil {
		return nil, fmt.Errorf("list todos: %w", err)
	}

	if all {
		total, err = ts.todos.CountAll(ctx)
	} else {
		total, err = ts.todos.CountByOwner(ctx, ownerID)
	}
	if err != nil {
		return nil, fmt.Errorf("count todos: %w", err)
	}

	todoResponses := make([]response.TodoResponse, len(todos))
	for i, todo := range todos {
		todoResponses[i] = *response.TodoToResponse(todo)
	}

	return response.NewPaginatedResponse(todoResponses, req.Page, req.Limit(), total), nil
}

func (ts *todoService) Update(ctx context.Context, id uuid.UUID, req *request.TodoRequest) (*entity.Todo, error) {
	todo, err := ts.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	todo.Task = req.Task
	todo.UpdatedAt = time.Now()

	if err := ts.todos.Update(ctx, todo); err != nil {
		return nil, fmt.Errorf("update todo: %w", err)
	}

	return todo, nil
}

func (ts *todoService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := ts.todos.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete todo: %w", err)
	}

	ts.log.Info("Todo deleted", zap.String("todo_id", id.String()))
	return nil
}
