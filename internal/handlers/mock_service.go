package handlers

import (
	"context"

	"todoapp/internal/models"
	"todoapp/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockTodos struct {
	listResp  []models.Todo
	listErr   error
	getResp   models.Todo
	getErr    error
	createID  int
	createErr error
	updateErr error
	deleteErr error

	lastGetID    int
	lastCreate   service.TodoInput
	lastUpdateID int
	lastUpdate   service.TodoInput
	lastDeleteID int

	createCalls int
	updateCalls int
	deleteCalls int
}

func (m *mockTodos) List(ctx context.Context) ([]models.Todo, error) {
	return m.listResp, m.listErr
}

func (m *mockTodos) Get(ctx context.Context, id int) (models.Todo, error) {
	m.lastGetID = id
	return m.getResp, m.getErr
}

func (m *mockTodos) Create(ctx context.Context, in service.TodoInput) (int, error) {
	m.createCalls++
	m.lastCreate = in
	return m.createID, m.createErr
}

func (m *mockTodos) Update(ctx context.Context, id int, in service.TodoInput) error {
	m.updateCalls++
	m.lastUpdateID = id
	m.lastUpdate = in
	return m.updateErr
}

func (m *mockTodos) Delete(ctx context.Context, id int) error {
	m.deleteCalls++
	m.lastDeleteID = id
	return m.deleteErr
}

type mockAccounts struct {
	registerResp models.User
	registerErr  error

	lastRegister  service.RegisterInput
	registerCalls int
}

func (m *mockAccounts) Register(ctx context.Context, in service.RegisterInput) (models.User, error) {
	m.registerCalls++
	m.lastRegister = in
	return m.registerResp, m.registerErr
}

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service) *gin.Engine {
	h := NewHandler(s, nil)
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}
