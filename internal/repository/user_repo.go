package repository

import (
	"context"
	"database/sql"
	"fmt"

	"todoapp/internal/models"
	"todoapp/internal/repository/db"
)

type UserSQLite struct {
	conn *sql.DB
}

func NewUserSQLite(conn *sql.DB) *UserSQLite {
	return &UserSQLite{conn: conn}
}

// Ensure implementation of Users interface at compile time.
var _ Users = (*UserSQLite)(nil)

const insertUserSQL = `INSERT INTO users (email, username, first_name, last_name, hashed_password, is_active, role) VALUES (?, ?, ?, ?, ?, ?, ?)`

// Create inserts a new user and returns its ID. Uniqueness violations on email
// or username surface as the driver's constraint error, wrapped.
func (r *UserSQLite) Create(ctx context.Context, u models.User) (int, error) {
	var id int64
	err := db.WithTx(ctx, r.conn, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, insertUserSQL,
			u.Email, u.Username, u.FirstName, u.LastName, u.HashedPassword, u.IsActive, u.Role)
		if err != nil {
			return fmt.Errorf("insert user %q: %w", u.Username, err)
		}
		id, err = res.LastInsertId()
		if err != nil {
			return fmt.Errorf("get last insert id for user %q: %w", u.Username, err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return int(id), nil
}
