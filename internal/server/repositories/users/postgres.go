package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/avelichko/careernet/internal/common"
	"github.com/avelichko/careernet/internal/dbx"
	"github.com/avelichko/careernet/internal/server/models"
	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolation = "23505"

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const userColumns = `id, name, username, email, password_hash, headline, about,
	profile_image_key, banner_image_key, created_at`

func scanUser(row *sql.Row) (*models.User, error) {
	user := &models.User{}
	err := row.Scan(&user.ID, &user.Name, &user.UserName, &user.Email,
		&user.PasswordHash, &user.Headline, &user.About,
		&user.ProfileImageKey, &user.BannerImageKey, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return user, nil
}

// translateUnique maps a Postgres unique-violation to the duplicate error
// matching the violated constraint. Concurrent signups with the same
// username or email race on these constraints; the loser surfaces the
// same error a pre-insert check would have produced.
func translateUnique(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		switch pgErr.ConstraintName {
		case "users_username_key":
			return common.ErrDuplicateUsername
		case "users_email_key":
			return common.ErrDuplicateEmail
		}
	}
	return nil
}

func (r *PostgresRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {

	query :=
		`INSERT INTO users (name, username, email, password_hash)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		user.Name, user.UserName, user.Email, user.PasswordHash).
		Scan(&user.ID, &user.CreatedAt)

	if err != nil {
		if dup := translateUnique(err); dup != nil {
			return nil, dup
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return user, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return scanUser(r.db.QueryRowContext(ctx, query, id))
}

func (r *PostgresRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE username = $1`
	return scanUser(r.db.QueryRowContext(ctx, query, username))
}

func (r *PostgresRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	return scanUser(r.db.QueryRowContext(ctx, query, email))
}

func (r *PostgresRepository) UpdateProfile(ctx context.Context, id string, upd *models.ProfileUpdate) (*models.User, error) {

	query :=
		`UPDATE users SET
		    name = COALESCE($2, name),
		    headline = COALESCE($3, headline),
		    about = COALESCE($4, about),
		    profile_image_key = COALESCE($5, profile_image_key),
		    banner_image_key = COALESCE($6, banner_image_key)
		 WHERE id = $1
		 RETURNING ` + userColumns

	return scanUser(r.db.QueryRowContext(ctx, query, id,
		upd.Name, upd.Headline, upd.About, upd.ProfileImageKey, upd.BannerImageKey))
}

func (r *PostgresRepository) Suggestions(ctx context.Context, userID string, limit int) ([]*models.User, error) {

	query :=
		`SELECT ` + userColumns + ` FROM users u
		 WHERE u.id <> $1
		   AND NOT EXISTS (
		       SELECT 1 FROM connections c
		       WHERE (c.requester_id = $1 AND c.recipient_id = u.id)
		          OR (c.recipient_id = $1 AND c.requester_id = u.id)
		   )
		 ORDER BY u.created_at DESC
		 LIMIT $2`

	rows, err := r.db.QueryContext(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.User
	for rows.Next() {
		user := &models.User{}
		if err := rows.Scan(&user.ID, &user.Name, &user.UserName, &user.Email,
			&user.PasswordHash, &user.Headline, &user.About,
			&user.ProfileImageKey, &user.BannerImageKey, &user.CreatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, user)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}
