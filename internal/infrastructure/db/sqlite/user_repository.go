package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/recipeshare/recipe-api/internal/core/domain"
)

// publicUserColumns is the projection returned to the application; the
// password hash is only selected on the FindByEmail login path.
const publicUserColumns = "id, username, email, role, is_paid, created_at, updated_at"

// UserRepository implements ports.UserRepository on sqlite.
type UserRepository struct {
	db *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

type dbUser struct {
	ID           int64     `db:"id"`
	Username     string    `db:"username"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	Role         string    `db:"role"`
	IsPaid       bool      `db:"is_paid"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

func (u dbUser) toDomain() domain.User {
	return domain.User{
		ID:           u.ID,
		Username:     u.Username,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		Role:         u.Role,
		IsPaid:       u.IsPaid,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	username := strings.TrimSpace(user.Username)
	email := strings.ToLower(strings.TrimSpace(user.Email))

	role := user.Role
	if role == "" {
		role = domain.RoleUser
	}

	res, err := r.db.ExecContext(ctx,
		`INSERT INTO users (username, email, password_hash, role, is_paid)
		 VALUES (?, ?, ?, ?, ?)`,
		username, email, user.PasswordHash, role, user.IsPaid)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrEmailTaken
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("insert user id: %w", err)
	}
	return r.FindByID(ctx, id)
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	var u dbUser
	err := r.db.GetContext(ctx, &u,
		`SELECT `+publicUserColumns+`, password_hash
		   FROM users
		  WHERE email = LOWER(TRIM(?))
		  LIMIT 1`,
		email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	user := u.toDomain()
	return &user, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id int64) (*domain.User, error) {
	var u dbUser
	err := r.db.GetContext(ctx, &u,
		`SELECT `+publicUserColumns+` FROM users WHERE id = ? LIMIT 1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user by id: %w", err)
	}
	user := u.toDomain()
	return &user, nil
}

func (r *UserRepository) UpdatePassword(ctx context.Context, id int64, newHash string) (bool, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE users SET password_hash = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`,
		newHash, id)
	if err != nil {
		return false, fmt.Errorf("update password: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// UpgradeToChef flips role and paid flag in one statement; the pair never
// changes independently on this path.
func (r *UserRepository) UpgradeToChef(ctx context.Context, id int64) (bool, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE users
		    SET role = ?, is_paid = 1, updated_at = CURRENT_TIMESTAMP
		  WHERE id = ?`,
		domain.RoleProfessionalChef, id)
	if err != nil {
		return false, fmt.Errorf("upgrade user: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *UserRepository) ListPaid(ctx context.Context, limit, offset int) ([]domain.User, error) {
	limit = clamp(limit, 1, 200)
	offset = nonNegative(offset)

	var rows []dbUser
	err := r.db.SelectContext(ctx, &rows,
		`SELECT `+publicUserColumns+`
		   FROM users
		  WHERE is_paid = 1
		  ORDER BY created_at DESC
		  LIMIT ? OFFSET ?`,
		limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list paid users: %w", err)
	}
	return toDomainUsers(rows), nil
}

func (r *UserRepository) SearchByUsername(ctx context.Context, keyword string, limit, offset int) ([]domain.User, error) {
	limit = clamp(limit, 1, 200)
	offset = nonNegative(offset)

	var rows []dbUser
	err := r.db.SelectContext(ctx, &rows,
		`SELECT `+publicUserColumns+`
		   FROM users
		  WHERE username LIKE TRIM(?) || '%'
		  ORDER BY username ASC
		  LIMIT ? OFFSET ?`,
		keyword, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("search users: %w", err)
	}
	return toDomainUsers(rows), nil
}

func toDomainUsers(rows []dbUser) []domain.User {
	users := make([]domain.User, 0, len(rows))
	for _, u := range rows {
		users = append(users, u.toDomain())
	}
	return users
}
