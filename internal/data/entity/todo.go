package entity

import "github.com/google/uuid"

type Todo struct {
	Base
	Task      string    `db:"task"`
	CreatedBy uuid.UUID `db:"created_by"`
}
