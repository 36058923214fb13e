package service

import (
	"context"

	"todoapp/internal/models"
	"todoapp/internal/repository"
)

// TodoService maps request inputs onto the todo repository. Field validation
// happens at the HTTP binding layer before any call lands here.
type TodoService struct {
	todoRepo repository.Todos
}

func NewTodoService(repo repository.Todos) *TodoService {
	return &TodoService{todoRepo: repo}
}

func (s *TodoService) List(ctx context.Context) ([]models.Todo, error) {
	return s.todoRepo.GetAll(ctx)
}

func (s *TodoService) Get(ctx context.Context, id int) (models.Todo, error) {
	return s.todoRepo.GetByID(ctx, id)
}

func (s *TodoService) Create(ctx context.Context, in TodoInput) (int, error) {
	return s.todoRepo.Create(ctx, toTodoModel(in))
}

// Update is full replacement: every mutable field of the row is overwritten.
func (s *TodoService) Update(ctx context.Context, id int, in TodoInput) error {
	return s.todoRepo.Update(ctx, id, toTodoModel(in))
}

func (s *TodoService) Delete(ctx context.Context, id int) error {
	return s.todoRepo.Delete(ctx, id)
}

func toTodoModel(in TodoInput) models.Todo {
	return models.Todo{
		Title:       in.Title,
		Description: in.Description,
		Priority:    in.Priority,
		Complete:    in.Complete,
	}
}
