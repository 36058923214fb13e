package service

import (
	"context"

	"todoapp/internal/models"
	"todoapp/internal/repository"
)

// Todos exposes CRUD over todo rows.
type Todos interface {
	List(ctx context.Context) ([]models.Todo, error)
	Get(ctx context.Context, id int) (models.Todo, error)
	Create(ctx context.Context, in TodoInput) (int, error)
	Update(ctx context.Context, id int, in TodoInput) error
	Delete(ctx context.Context, id int) error
}

// Accounts handles user registration.
type Accounts interface {
	Register(ctx context.Context, in RegisterInput) (models.User, error)
}

// Root Service aggregates all sub-services.
type Service struct {
	Todos
	Accounts
}

// NewService wires the repository layer into concrete services.
func NewService(repos *repository.Repository) *Service {
	return &Service{
		Todos:    NewTodoService(repos.Todos),
		Accounts: NewAccountService(repos.Users),
	}
}
