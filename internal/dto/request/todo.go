package request

type TodoRequest struct {
	Task string `json:"task" validate:"required,max=255,nohtml"`
}
