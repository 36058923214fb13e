package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"todoapp/internal/repository"
	"todoapp/internal/service"

	"github.com/gin-gonic/gin"
)

// Common response/status constants to avoid magic strings and typos.
const (
	statusOK = "ok"

	errTodoNotFound = "todo not found"
	errListTodos    = "failed to load todos"
	errGetTodo      = "failed to load todo"
	errCreateTodo   = "failed to create todo"
	errUpdateTodo   = "failed to update todo"
	errDeleteTodo   = "failed to delete todo"
	errInvalidID    = "id must be a positive integer"
)

// TodoRequest is the create/update payload; PUT replaces all four fields.
// Complete is a pointer so an explicit false still binds as present.
type TodoRequest struct {
	Title       string `json:"title" binding:"required,min=3" example:"Study"`
	Description string `json:"description" binding:"required,min=3,max=100" example:"Finish CRUD"`
	Priority    int    `json:"priority" binding:"required,gt=0,lt=6" example:"3"`
	Complete    *bool  `json:"complete" binding:"required" example:"false"`
}

// Centralized error logging and response.
func (h *Handler) logAndJSONError(c *gin.Context, httpCode int, userMsg, logKey string, err error, kv ...interface{}) {
	if h.log != nil && err != nil {
		fields := append([]interface{}{"err", err, "request_id", requestID(c)}, kv...)
		h.log.Errorw(logKey, fields...)
	}
	c.JSON(httpCode, gin.H{"error": userMsg})
}

// bindJSONOrReject binds the request body into dst; on failure it writes a
// 422 JSON and reports false. Validation runs before any service call.
func (h *Handler) bindJSONOrReject(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		if h.log != nil {
			h.log.Infow("request_body_rejected", "err", err, "request_id", requestID(c))
		}
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return false
	}
	return true
}

// parsePathID extracts the id path parameter; anything but a positive integer
// is rejected with 422 before the handler logic runs.
func (h *Handler) parsePathID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": errInvalidID})
		return 0, false
	}
	return id, true
}

// @Summary      List todos
// @Tags         todos
// @Produce      json
// @Success      200  {array}   models.Todo
// @Failure      500  {object}  map[string]string
// @Router       / [get]
func (h *Handler) listTodos(c *gin.Context) {
	ctx := c.Request.Context()
	todos, err := h.services.Todos.List(ctx)
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errListTodos, "todos_list_failed", err)
		return
	}
	c.JSON(http.StatusOK, todos)
}

// @Summary      Get todo by id
// @Tags         todos
// @Produce      json
// @Param        id   path      int  true  "Todo id"  minimum(1)
// @Success      200  {object}  models.Todo
// @Failure      404  {object}  map[string]string
// @Failure      422  {object}  map[string]string
// @Router       /todo/{id} [get]
func (h *Handler) getTodo(c *gin.Context) {
	id, ok := h.parsePathID(c)
	if !ok {
		return
	}
	todo, err := h.services.Todos.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrTodoNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": errTodoNotFound})
			return
		}
		h.logAndJSONError(c, http.StatusInternalServerError, errGetTodo, "todo_get_failed", err, "id", id)
		return
	}
	c.JSON(http.StatusOK, todo)
}

// @Summary      Create todo
// @Tags         todos
// @Accept       json
// @Produce      json
// @Param        body  body  TodoRequest  true  "Todo payload"
// @Success      201
// @Failure      422  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /todo [post]
func (h *Handler) createTodo(c *gin.Context) {
	var req TodoRequest
	if ok := h.bindJSONOrReject(c, &req); !ok {
		return
	}
	if _, err := h.services.Todos.Create(c.Request.Context(), toTodoInput(req)); err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errCreateTodo, "todo_create_failed", err)
		return
	}
	c.Status(http.StatusCreated)
}

// @Summary      Replace todo
// @Description  Full replacement of all four mutable fields; no partial update exists.
// @Tags         todos
// @Accept       json
// @Param        id    path  int          true  "Todo id"  minimum(1)
// @Param        body  body  TodoRequest  true  "Replacement payload"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Failure      422  {object}  map[string]string
// @Router       /todo/{id} [put]
func (h *Handler) updateTodo(c *gin.Context) {
	id, ok := h.parsePathID(c)
	if !ok {
		return
	}
	var req TodoRequest
	if ok := h.bindJSONOrReject(c, &req); !ok {
		return
	}
	if err := h.services.Todos.Update(c.Request.Context(), id, toTodoInput(req)); err != nil {
		if errors.Is(err, repository.ErrTodoNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": errTodoNotFound})
			return
		}
		h.logAndJSONError(c, http.StatusInternalServerError, errUpdateTodo, "todo_update_failed", err, "id", id)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary      Delete todo
// @Tags         todos
// @Param        id  path  int  true  "Todo id"  minimum(1)
// @Success      204
// @Failure      404  {object}  map[string]string
// @Failure      422  {object}  map[string]string
// @Router       /todo/{id} [delete]
func (h *Handler) deleteTodo(c *gin.Context) {
	id, ok := h.parsePathID(c)
	if !ok {
		return
	}
	if err := h.services.Todos.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, repository.ErrTodoNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": errTodoNotFound})
			return
		}
		h.logAndJSONError(c, http.StatusInternalServerError, errDeleteTodo, "todo_delete_failed", err, "id", id)
		return
	}
	c.Status(http.StatusNoContent)
}

func toTodoInput(req TodoRequest) service.TodoInput {
	complete := false
	if req.Complete != nil {
		complete = *req.Complete
	}
	return service.TodoInput{
		Title:       req.Title,
		Description: req.Description,
		Priority:    req.Priority,
		Complete:    complete,
	}
}
