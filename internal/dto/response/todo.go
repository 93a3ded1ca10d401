package response

import (
	"time"

	"todo-app/internal/data/entity"
)

type TodoResponse struct {
	ID        string    `json:"id"`
	Task      string    `json:"task"`
	CreatedBy string    `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func TodoToResponse(todo *entity.Todo) *TodoResponse {
	return &TodoResponse{
		ID:        todo.ID.String(),
		Task:      todo.Task,
		CreatedBy: todo.CreatedBy.String(),
		CreatedAt: todo.CreatedAt,
		UpdatedAt: todo.UpdatedAt,
	}
}
