package repository

import (
	"context"
	"database/sql"
	"errors"

	"todoapp/internal/models"
)

// ErrTodoNotFound is returned when the referenced todo id has no matching row.
var ErrTodoNotFound = errors.New("todo not found")

type Todos interface {
	GetAll(ctx context.Context) ([]models.Todo, error)
	GetByID(ctx context.Context, id int) (models.Todo, error)
	Create(ctx context.Context, t models.Todo) (int, error)
	Update(ctx context.Context, id int, t models.Todo) error
	Delete(ctx context.Context, id int) error
}

type Users interface {
	Create(ctx context.Context, u models.User) (int, error)
}

type Repository struct {
	Todos Todos
	Users Users
}

func NewRepository(conn *sql.DB) *Repository {
	return &Repository{
		Todos: NewTodoSQLite(conn),
		Users: NewUserSQLite(conn),
	}
}
