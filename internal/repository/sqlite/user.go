package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dotpro/tutorial-web/internal/domain"
)

// UserRepository implements domain.UserRepository using SQLite.
type UserRepository struct {
	db *sql.DB
}

// NewUserRepository creates a new SQLite-backed UserRepository.
func NewUserRepository(db *DB) *UserRepository {
	return &UserRepository{db: db.SqlDB}
}

func (r *UserRepository) List(ctx context.Context) ([]domain.User, error) {
	var users []domain.User
	err := withConn(ctx, r.db, func(conn *sql.Conn) error {
		rows, err := conn.QueryContext(ctx,
			`SELECT id, name, age, hobby, created_at FROM users ORDER BY id DESC`)
		if err != nil {
			return fmt.Errorf("query users: %w", err)
		}
		defer rows.Close()

		for rows.Next() {
			var u domain.User
			if err := rows.Scan(&u.ID, &u.Name, &u.Age, &u.Hobby, &u.CreatedAt); err != nil {
				return fmt.Errorf("scan user: %w", err)
			}
			users = append(users, u)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}
	return users, nil
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	now := time.Now().UTC()
	var id int64
	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		result, err := tx.ExecContext(ctx,
			`INSERT INTO users (name, age, hobby, created_at) VALUES (?, ?, ?, ?)`,
			user.Name, user.Age, user.Hobby, now,
		)
		if err != nil {
			return fmt.Errorf("insert user: %w", err)
		}

		id, err = result.LastInsertId()
		if err != nil {
			return fmt.Errorf("get last insert id: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	user.ID = id
	user.CreatedAt = now
	return nil
}

func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		var found int64
		err := tx.QueryRowContext(ctx, `SELECT id FROM users WHERE id = ?`, id).Scan(&found)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return domain.ErrNotFound
			}
			return fmt.Errorf("query user by id: %w", err)
		}

		if _, err := tx.ExecContext(ctx, `DELETE FROM users WHERE id = ?`, id); err != nil {
			return fmt.Errorf("delete user: %w", err)
		}
		return nil
	})
}
