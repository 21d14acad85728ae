package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/bookinglab/ticketbooking/internal/domain"
	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type UserRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewUserRepo(db *dbpg.DB) *UserRepository {
	return &UserRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	query := `INSERT INTO users (id, name, email, phone, active, telegram_chat_id, registered_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		user.ID, user.Name, user.Email, user.Phone, user.Active, user.TelegramChatID, user.RegisteredAt,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrEmailExists
		}
		return fmt.Errorf("insert user: %w", err)
	}

	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	query := `SELECT id, name, email, phone, active, telegram_chat_id, registered_at
			  FROM users
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}

	return scanUser(row)
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT id, name, email, phone, active, telegram_chat_id, registered_at
			  FROM users
			  WHERE email = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, email)
	if err != nil {
		return nil, fmt.Errorf("get user by email: %w", err)
	}

	return scanUser(row)
}

func (r *UserRepository) List(ctx context.Context, activeOnly bool) ([]*domain.User, error) {
	query := `SELECT id, name, email, phone, active, telegram_chat_id, registered_at
			  FROM users
			  WHERE ($1 = false OR active)
			  ORDER BY registered_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	var res []*domain.User
	for rows.Next() {
		var u domain.User
		if err = rows.Scan(&u.ID, &u.Name, &u.Email, &u.Phone, &u.Active, &u.TelegramChatID, &u.RegisteredAt); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		res = append(res, &u)
	}

	return res, rows.Err()
}

func (r *UserRepository) Update(ctx context.Context, user *domain.User) error {
	query := `UPDATE users
			  SET name = $2, phone = $3
			  WHERE id = $1`

	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, user.ID, user.Name, user.Phone)
	if err != nil {
		return fmt.Errorf("update user: %w", err)
	}

	return requireAffected(res, domain.ErrUserNotFound)
}

func (r *UserRepository) SetActive(ctx context.Context, id string, active bool) error {
	query := `UPDATE users SET active = $2 WHERE id = $1`

	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id, active)
	if err != nil {
		return fmt.Errorf("set user active: %w", err)
	}

	return requireAffected(res, domain.ErrUserNotFound)
}

func (r *UserRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM users WHERE id = $1`

	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}

	return requireAffected(res, domain.ErrUserNotFound)
}

func scanUser(row *sql.Row) (*domain.User, error) {
	var u domain.User
	if err := row.Scan(&u.ID, &u.Name, &u.Email, &u.Phone, &u.Active, &u.TelegramChatID, &u.RegisteredAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("scan user: %w", err)
	}
	return &u, nil
}

func requireAffected(res sql.Result, notFound error) error {
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if rows == 0 {
		return notFound
	}
	return nil
}
