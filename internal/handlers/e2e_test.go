package handlers

import (
	"encoding/json"
	"net/http"
	"path/filepath"
	"testing"

	"todoapp/internal/models"
	"todoapp/internal/repository"
	"todoapp/internal/repository/db"
	"todoapp/internal/service"

	"github.com/gin-gonic/gin"
)

// newRealRouter wires the full stack against a throwaway SQLite file.
func newRealRouter(t *testing.T) *gin.Engine {
	t.Helper()

	conn, err := db.InitDB(filepath.Join(t.TempDir(), "todos.db"))
	if err != nil {
		t.Fatalf("init sqlite: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })

	services := service.NewService(repository.NewRepository(conn))
	gin.SetMode(gin.TestMode)
	return NewHandler(services, nil).InitRoutes()
}

func TestEndToEnd_TodoLifecycle(t *testing.T) {
	r := newRealRouter(t)

	// create
	w := doJSON(t, r, http.MethodPost, "/todo",
		`{"title":"Study","description":"Finish CRUD","priority":3,"complete":false}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("create status=%d, body=%s", w.Code, w.Body.String())
	}

	// read back, fields match exactly
	w = doJSON(t, r, http.MethodGet, "/todo/1", "")
	if w.Code != http.StatusOK {
		t.Fatalf("get status=%d, body=%s", w.Code, w.Body.String())
	}
	var got models.Todo
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("unmarshal todo: %v", err)
	}
	want := models.Todo{ID: 1, Title: "Study", Description: "Finish CRUD", Priority: 3, Complete: false}
	if got != want {
		t.Fatalf("round-trip mismatch: want %+v, got %+v", want, got)
	}

	// full replacement
	w = doJSON(t, r, http.MethodPut, "/todo/1",
		`{"title":"Study v2","description":"Updated","priority":5,"complete":true}`)
	if w.Code != http.StatusNoContent {
		t.Fatalf("update status=%d, body=%s", w.Code, w.Body.String())
	}

	w = doJSON(t, r, http.MethodGet, "/todo/1", "")
	if w.Code != http.StatusOK {
		t.Fatalf("get after update status=%d", w.Code)
	}
	_ = json.Unmarshal(w.Body.Bytes(), &got)
	want = models.Todo{ID: 1, Title: "Study v2", Description: "Updated", Priority: 5, Complete: true}
	if got != want {
		t.Fatalf("update not fully applied: want %+v, got %+v", want, got)
	}

	// delete, then the row is gone
	w = doJSON(t, r, http.MethodDelete, "/todo/1", "")
	if w.Code != http.StatusNoContent {
		t.Fatalf("delete status=%d, body=%s", w.Code, w.Body.String())
	}
	w = doJSON(t, r, http.MethodGet, "/todo/1", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 after delete, got %d", w.Code)
	}
	w = doJSON(t, r, http.MethodDelete, "/todo/1", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 on second delete, got %d", w.Code)
	}
}

func TestEndToEnd_ListReflectsCreates(t *testing.T) {
	r := newRealRouter(t)

	w := doJSON(t, r, http.MethodGet, "/", "")
	if w.Code != http.StatusOK {
		t.Fatalf("list status=%d", w.Code)
	}
	var todos []models.Todo
	_ = json.Unmarshal(w.Body.Bytes(), &todos)
	if len(todos) != 0 {
		t.Fatalf("expected empty list, got %d items", len(todos))
	}

	for _, body := range []string{
		`{"title":"Study","description":"Finish CRUD","priority":3,"complete":false}`,
		`{"title":"Shop","description":"Groceries","priority":1,"complete":true}`,
	} {
		if w := doJSON(t, r, http.MethodPost, "/todo", body); w.Code != http.StatusCreated {
			t.Fatalf("create status=%d, body=%s", w.Code, w.Body.String())
		}
	}

	w = doJSON(t, r, http.MethodGet, "/", "")
	_ = json.Unmarshal(w.Body.Bytes(), &todos)
	if len(todos) != 2 {
		t.Fatalf("expected 2 todos, got %d", len(todos))
	}
}

func TestEndToEnd_DuplicateRegistration(t *testing.T) {
	r := newRealRouter(t)

	w := doJSON(t, r, http.MethodPost, "/auth/", registerBody)
	if w.Code != http.StatusCreated {
		t.Fatalf("register status=%d, body=%s", w.Code, w.Body.String())
	}
	var user map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &user)
	if user["username"] != "codingwithroby" || user["is_active"] != true {
		t.Fatalf("unexpected user payload: %v", user)
	}
	if _, ok := user["hashed_password"]; ok {
		t.Fatalf("hash leaked in response: %v", user)
	}

	// same username and email again → store constraint error, generic 500
	w = doJSON(t, r, http.MethodPost, "/auth/", registerBody)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 on duplicate registration, got %d (body=%s)", w.Code, w.Body.String())
	}
}
