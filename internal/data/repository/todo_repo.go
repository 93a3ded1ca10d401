package repository

import (
	"context"
	"fmt"

	"todo-app/internal/data/entity"
	"todo-app/pkg/apperr"
	"todo-app/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type TodoRepository interface {
	Create(ctx context.Context, todo *entity.Todo) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Todo, error)
	FindAll(ctx context.Context, limit, offset int) ([]*entity.Todo, error)
	FindAllByOwner(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]*entity.Todo, error)
	CountAll(ctx context.Context) (int64, error)
	CountByOwner(ctx context.Context, ownerID uuid.UUID) (int64, error)
	Update(ctx context.Context, todo *entity.Todo) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type todoRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewTodoRepository(db database.PgxIface, log *zap.Logger) TodoRepository {
	return &todoRepository{
		db:  db,
		log: log.With(zap.String("repository", "todo")),
	}
}

func (tr *todoRepository) Create(ctx context.Context, todo *entity.Todo) error {
	query := `
		INSERT INTO todos (id, task, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := tr.db.Exec(ctx, query,
		todo.ID,
		todo.Task,
		todo.CreatedBy,
		todo.CreatedAt,
		todo.UpdatedAt,
	)

	if err != nil {
		tr.log.Error("Failed to create todo",
			zap.Error(err),
			zap.String("created_by", todo.CreatedBy.String()),
		)
		return fmt.Errorf("create todo: %w", err)
	}

	return nil
}

func (tr *todoRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Todo, error) {
	query := `
		SELECT id, task, created_by, created_at, updated_at
		FROM todos
		WHERE id = $1
	`

	var todo entity.Todo
	err := tr.db.QueryRow(ctx, query, id).Scan(
		&todo.ID,
		&todo.Task,
		&todo.CreatedBy,
		&todo.CreatedAt,
		&todo.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		tr.log.Error("Failed to find todo by ID",
			zap.Error(err),
			zap.String("todo_id", id.String()),
		)
		return nil, fmt.Errorf("find todo by ID %s: %w", id.String(), err)
	}

	return &todo, nil
}

func (tr *todoRepository) FindAll(ctx context.Context, limit, offset int) ([]*entity.Todo, error) {
	query := `
		SELECT id, task, created_by, created_at, updated_at
		FROM todos
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := tr.db.Query(ctx, query, limit, offset)
	if err != nil {
		tr.log.Error("Failed to get all todos", zap.Error(err))
		return nil, fmt.Errorf("find all todos: %w", err)
	}
	defer rows.Close()

	return tr.collectTodos(rows)
}

func (tr *todoRepository) FindAllByOwner(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]*entity.Todo, error) {
	query := `
		SELECT id, task, created_by, created_at, updated_at
		FROM todos
		WHERE created_by = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := tr.db.Query(ctx, query, ownerID, limit, offset)
	if err != nil {
		tr.log.Error("Failed to get todos by owner",
			zap.Error(err),
			zap.String("owner_id", ownerID.String()),
		)
		return nil, fmt.Errorf("find todos by owner %s: %w", ownerID.String(), err)
	}
	defer rows.Close()

	return tr.collectTodos(rows)
}

func (tr *todoRepository) CountAll(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM todos`

	var count int64
	if err := tr.db.QueryRow(ctx, query).Scan(&count); err != nil {
		tr.log.Error("Database error counting todos", zap.Error(err))
		return 0, fmt.Errorf("count all todos: %w", err)
	}

	return count, nil
}

func (tr *todoRepository) CountByOwner(ctx context.Context, ownerID uuid.UUID) (int64, error) {
	query := `SELECT COUNT(*) FROM todos WHERE created_by = $1`

	var count int64
	if err := tr.db.QueryRow(ctx, query, ownerID).Scan(&count); err != nil {
		tr.log.Error("Database error counting todos by owner",
			zap.Error(err),
			zap.String("owner_id", ownerID.String()),
		)
		return 0, fmt.Errorf("count todos by owner %s: %w", ownerID.String(), err)
	}

	return count, nil
}

func (tr *todoRepository) Update(ctx context.Context, todo *entity.Todo) error {
	query := `
		UPDATE todos
		SET task = $2, updated_at = $3
		WHERE id = $1
	`

	result, err := tr.db.Exec(ctx, query, todo.ID, todo.Task, todo.UpdatedAt)
	if err != nil {
		tr.log.Error("Failed to update todo",
			zap.Error(err),
			zap.String("todo_id", todo.ID.String()),
		)
		return fmt.Errorf("update todo %s: %w", todo.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("todo %s: %w", todo.ID.String(), apperr.ErrNotFound)
	}

	return nil
}

func (tr *todoRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM todos WHERE id = $1`

	result, err := tr.db.Exec(ctx, query, id)
	if err != nil {
		tr.log.Error("Failed to delete todo",
			zap.Error(err),
			zap.String("id", id.String()),
		)
		return fmt.Errorf("delete todo %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("todo %s: %w", id.String(), apperr.ErrNotFound)
	}

	return nil
}

func (tr *todoRepository) collectTodos(rows pgx.Rows) ([]*entity.Todo, error) {
	var todos []*entity.Todo
	for rows.Next() {
		var todo entity.Todo
		err := rows.Scan(
			&todo.ID,
			&todo.Task,
			&todo.CreatedBy,
			&todo.CreatedAt,
			&todo.UpdatedAt,
		)
		if err != nil {
			tr.log.Error("Failed to scan todo row", zap.Error(err))
			return nil, fmt.Errorf("scan todo row: %w", err)
		}
		todos = append(todos, &todo)
	}

	if err := rows.Err(); err != nil {
		tr.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate todos rows: %w", err)
	}

	return todos, nil
}
