package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"todoapp/internal/models"
	"todoapp/internal/repository/db"
)

type TodoSQLite struct {
	conn *sql.DB
}

func NewTodoSQLite(conn *sql.DB) *TodoSQLite {
	return &TodoSQLite{conn: conn}
}

// Ensure implementation of Todos interface at compile time.
var _ Todos = (*TodoSQLite)(nil)

const (
	selectAllTodosSQL = `SELECT id, title, description, priority, complete, owner_id FROM todos`
	selectTodoByIDSQL = `SELECT id, title, description, priority, complete, owner_id FROM todos WHERE id = ?`
	insertTodoSQL     = `INSERT INTO todos (title, description, priority, complete) VALUES (?, ?, ?, ?)`
	updateTodoSQL     = `UPDATE todos SET title = ?, description = ?, priority = ?, complete = ? WHERE id = ?`
	deleteTodoSQL     = `DELETE FROM todos WHERE id = ?`
)

// GetAll returns every todo row in store order.
func (r *TodoSQLite) GetAll(ctx context.Context) ([]models.Todo, error) {
	rows, err := r.conn.QueryContext(ctx, selectAllTodosSQL)
	if err != nil {
		return nil, fmt.Errorf("select todos: %w", err)
	}
	defer rows.Close()

	out := make([]models.Todo, 0, 16)
	for rows.Next() {
		t, err := scanTodo(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan todo: %w", err)
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// GetByID fetches a single todo. Returns ErrTodoNotFound when absent.
func (r *TodoSQLite) GetByID(ctx context.Context, id int) (models.Todo, error) {
	row := r.conn.QueryRowContext(ctx, selectTodoByIDSQL, id)
	t, err := scanTodo(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Todo{}, ErrTodoNotFound
		}
		return models.Todo{}, fmt.Errorf("select todo %d: %w", id, err)
	}
	return t, nil
}

// Create inserts a new todo in its own transaction and returns the new id.
func (r *TodoSQLite) Create(ctx context.Context, t models.Todo) (int, error) {
	var id int64
	err := db.WithTx(ctx, r.conn, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, insertTodoSQL, t.Title, t.Description, t.Priority, t.Complete)
		if err != nil {
			return fmt.Errorf("insert todo: %w", err)
		}
		id, err = res.LastInsertId()
		if err != nil {
			return fmt.Errorf("get last insert id for todo: %w", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return int(id), nil
}

// Update overwrites all mutable fields of the row. ErrTodoNotFound when the id
// matches nothing.
func (r *TodoSQLite) Update(ctx context.Context, id int, t models.Todo) error {
	return db.WithTx(ctx, r.conn, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, updateTodoSQL, t.Title, t.Description, t.Priority, t.Complete, id)
		if err != nil {
			return fmt.Errorf("update todo %d: %w", id, err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("rows affected for todo %d: %w", id, err)
		}
		if n == 0 {
			return ErrTodoNotFound
		}
		return nil
	})
}

// Delete removes the row. ErrTodoNotFound when the id matches nothing.
func (r *TodoSQLite) Delete(ctx context.Context, id int) error {
	return db.WithTx(ctx, r.conn, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, deleteTodoSQL, id)
		if err != nil {
			return fmt.Errorf("delete todo %d: %w", id, err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("rows affected for todo %d: %w", id, err)
		}
		if n == 0 {
			return ErrTodoNotFound
		}
		return nil
	})
}

// scanTodo reads one row; owner_id is nullable because no endpoint sets it.
func scanTodo(scan func(dest ...any) error) (models.Todo, error) {
	var (
		t     models.Todo
		owner sql.NullInt64
	)
	if err := scan(&t.ID, &t.Title, &t.Description, &t.Priority, &t.Complete, &owner); err != nil {
		return models.Todo{}, err
	}
	if owner.Valid {
		t.OwnerID = int(owner.Int64)
	}
	return t, nil
}
