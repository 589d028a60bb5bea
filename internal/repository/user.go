package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/go-sql-driver/mysql"

	"github.com/fitstore/fitstore-go/internal/model"
)

var (
	ErrUserNotFound   = errors.New("user not found")
	ErrDuplicateEmail = errors.New("email already registered")
	ErrTokenNotFound  = errors.New("reset token not found")
)

const userColumns = `id, name, email, password_hash, permissions, reset_token, reset_token_expiry, created_at, updated_at`

// UserRepository handles user persistence operations.
type UserRepository struct {
	db *sql.DB
}

// NewUserRepository creates a new UserRepository.
func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create inserts a new user. Returns ErrDuplicateEmail when the email
// unique constraint is violated.
func (r *UserRepository) Create(ctx context.Context, user *model.User) error {
	query := `INSERT INTO users (id, name, email, password_hash, permissions) VALUES (?, ?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query,
		user.ID, user.Name, user.Email, user.PasswordHash, joinPermissions(user.Permissions),
	)
	if err != nil {
		if isDuplicateEntryError(err) {
			return ErrDuplicateEmail
		}
		return err
	}
	return nil
}

// GetByEmail retrieves a user by their (lowercased) email address.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = ?`
	return r.scanOne(r.db.QueryRowContext(ctx, query, email))
}

// GetByID retrieves a user by their ID.
func (r *UserRepository) GetByID(ctx context.Context, id string) (*model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = ?`
	return r.scanOne(r.db.QueryRowContext(ctx, query, id))
}

// GetByResetToken retrieves the user holding an unexpired reset token.
// Returns ErrTokenNotFound whether the token is absent or expired; the
// two cases are indistinguishable on purpose.
func (r *UserRepository) GetByResetToken(ctx context.Context, token string, now time.Time) (*model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE reset_token = ? AND reset_token_expiry >= ?`

	user, err := r.scanOne(r.db.QueryRowContext(ctx, query, token, now))
	if errors.Is(err, ErrUserNotFound) {
		return nil, ErrTokenNotFound
	}
	return user, err
}

// List returns all users ordered by creation time.
func (r *UserRepository) List(ctx context.Context) ([]model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users ORDER BY created_at`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []model.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, *user)
	}
	return users, rows.Err()
}

// SetResetToken arms a reset token and its expiry on a user in one write.
func (r *UserRepository) SetResetToken(ctx context.Context, userID, token string, expiry time.Time) error {
	query := `UPDATE users SET reset_token = ?, reset_token_expiry = ? WHERE id = ?`

	result, err := r.db.ExecContext(ctx, query, token, expiry, userID)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrUserNotFound
	}
	return nil
}

// ConsumeResetToken replaces the password and clears the reset token in a
// single conditional update keyed on the token still being valid. At most
// one concurrent caller can win: the losers see zero affected rows and get
// ErrTokenNotFound.
func (r *UserRepository) ConsumeResetToken(ctx context.Context, token, passwordHash string, now time.Time) error {
	query := `UPDATE users
		SET password_hash = ?, reset_token = NULL, reset_token_expiry = NULL
		WHERE reset_token = ? AND reset_token_expiry >= ?`

	result, err := r.db.ExecContext(ctx, query, passwordHash, token, now)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrTokenNotFound
	}
	return nil
}

// UpdatePermissions replaces a user's permission set wholesale.
func (r *UserRepository) UpdatePermissions(ctx context.Context, userID string, permissions []string) error {
	query := `UPDATE users SET permissions = ? WHERE id = ?`

	_, err := r.db.ExecContext(ctx, query, joinPermissions(permissions), userID)
	return err
}

func (r *UserRepository) scanOne(row *sql.Row) (*model.User, error) {
	user, err := scanUser(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (*model.User, error) {
	var (
		user        model.User
		permissions string
		resetToken  sql.NullString
		resetExpiry sql.NullTime
	)
	err := row.Scan(
		&user.ID, &user.Name, &user.Email, &user.PasswordHash, &permissions,
		&resetToken, &resetExpiry, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	user.Permissions = splitPermissions(permissions)
	if resetToken.Valid {
		user.ResetToken = &resetToken.String
	}
	if resetExpiry.Valid {
		user.ResetTokenExpiry = &resetExpiry.Time
	}
	return &user, nil
}

// Permission sets are stored as a comma-joined string column.
func joinPermissions(permissions []string) string {
	return strings.Join(permissions, ",")
}

func splitPermissions(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, ",")
}

// isDuplicateEntryError checks for MySQL error 1062 (duplicate entry).
func isDuplicateEntryError(err error) bool {
	var mysqlErr *mysql.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == 1062
}
