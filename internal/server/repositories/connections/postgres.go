package connections

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

const connectionColumns = `id, requester_id, recipient_id, status, created_at`

func scanConnection(row *sql.Row) (*models.Connection, error) {
	c := &models.Connection{}
	err := row.Scan(&c.ID, &c.RequesterID, &c.RecipientID, &c.Status, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return c, nil
}

func (r *PostgresRepository) Create(ctx context.Context, requesterID, recipientID string) (*models.Connection, error) {

	query :=
		`INSERT INTO connections (requester_id, recipient_id)
		 VALUES ($1, $2)
		 RETURNING ` + connectionColumns

	c, err := scanConnection(r.db.QueryRowContext(ctx, query, requesterID, recipientID))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, common.ErrConnectionExists
		}
		return nil, err
	}
	return c, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.Connection, error) {
	query := `SELECT ` + connectionColumns + ` FROM connections WHERE id = $1`
	return scanConnection(r.db.QueryRowContext(ctx, query, id))
}

func (r *PostgresRepository) UpdateStatus(ctx context.Context, id, status string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE connections SET status = $2 WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return common.ErrorNotFound
	}
	return nil
}

func (r *PostgresRepository) Exists(ctx context.Context, userA, userB string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS (
		    SELECT 1 FROM connections
		    WHERE (requester_id = $1 AND recipient_id = $2)
		       OR (requester_id = $2 AND recipient_id = $1)
		 )`,
		userA, userB).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	return exists, nil
}

func (r *PostgresRepository) ListAccepted(ctx context.Context, userID string) ([]*models.Connection, error) {
	query :=
		`SELECT ` + connectionColumns + ` FROM connections
		 WHERE status = 'accepted' AND (requester_id = $1 OR recipient_id = $1)
		 ORDER BY created_at DESC`
	return r.list(ctx, query, userID)
}

func (r *PostgresRepository) ListPending(ctx context.Context, recipientID string) ([]*models.Connection, error) {
	query :=
		`SELECT ` + connectionColumns + ` FROM connections
		 WHERE status = 'pending' AND recipient_id = $1
		 ORDER BY created_at DESC`
	return r.list(ctx, query, recipientID)
}

func (r *PostgresRepository) list(ctx context.Context, query string, args ...any) ([]*models.Connection, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Connection
	for rows.Next() {
		c := &models.Connection{}
		if err := rows.Scan(&c.ID, &c.RequesterID, &c.RecipientID, &c.Status, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}
