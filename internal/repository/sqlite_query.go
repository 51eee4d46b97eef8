package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/flowtik/flowtik/internal/db"
	"github.com/flowtik/flowtik/internal/domain"
)

const queryColumns = `id, task_id, user_id, subject, description, attachment_path, status, created_at, updated_at`

// SQLiteQueryRepo implements QueryRepo using a SQLite database.
type SQLiteQueryRepo struct {
	db db.DBTX
}

// NewSQLiteQueryRepo creates a new SQLiteQueryRepo.
func NewSQLiteQueryRepo(db db.DBTX) *SQLiteQueryRepo {
	return &SQLiteQueryRepo{db: db}
}

func (r *SQLiteQueryRepo) Create(ctx context.Context, q *domain.TaskQuery) error {
	query := `INSERT INTO task_queries (task_id, user_id, subject, description, attachment_path, status, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, query,
		q.TaskID,
		q.UserID,
		q.Subject,
		q.Description,
		q.AttachmentPath,
		string(q.Status),
		q.CreatedAt.UTC().Format(time.RFC3339),
		q.UpdatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting task query: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("reading task query insert id: %w", err)
	}
	q.ID = id
	return nil
}

func (r *SQLiteQueryRepo) GetByID(ctx context.Context, id int64) (*domain.TaskQuery, error) {
	query := `SELECT ` + queryColumns + ` FROM task_queries WHERE id = ?`
	return r.scanQuery(r.db.QueryRowContext(ctx, query, id))
}

func (r *SQLiteQueryRepo) ListByTask(ctx context.Context, taskID int64) ([]*domain.TaskQuery, error) {
	query := `SELECT ` + queryColumns + ` FROM task_queries WHERE task_id = ? ORDER BY id DESC`
	rows, err := r.db.QueryContext(ctx, query, taskID)
	if err != nil {
		return nil, fmt.Errorf("listing task queries by task: %w", err)
	}
	defer rows.Close()
	return r.scanQueries(rows)
}

func (r *SQLiteQueryRepo) ListByUser(ctx context.Context, userID int64) ([]*domain.TaskQuery, error) {
	query := `SELECT ` + queryColumns + ` FROM task_queries WHERE user_id = ? ORDER BY id DESC`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("listing task queries by user: %w", err)
	}
	defer rows.Close()
	return r.scanQueries(rows)
}

func (r *SQLiteQueryRepo) CountByTask(ctx context.Context, taskID int64) (int, error) {
	var n int
	row := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM task_queries WHERE task_id = ?`, taskID)
	if err := row.Scan(&n); err != nil {
		return 0, fmt.Errorf("counting task queries: %w", err)
	}
	return n, nil
}

func (r *SQLiteQueryRepo) UpdateStatus(ctx context.Context, id int64, status domain.QueryStatus, at time.Time) error {
	query := `UPDATE task_queries SET status = ?, updated_at = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query, string(status), at.UTC().Format(time.RFC3339), id)
	if err != nil {
		return fmt.Errorf("updating task query status: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("reading update result: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("task query %d: %w", id, ErrNotFound)
	}
	return nil
}

func (r *SQLiteQueryRepo) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM task_queries WHERE id = ?`
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("deleting task query: %w", err)
	}
	return nil
}

func (r *SQLiteQueryRepo) scanQuery(row *sql.Row) (*domain.TaskQuery, error) {
	var q domain.TaskQuery
	var status, createdAtStr, updatedAtStr string

	err := row.Scan(&q.ID, &q.TaskID, &q.UserID, &q.Subject, &q.Description,
		&q.AttachmentPath, &status, &createdAtStr, &updatedAtStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("task query: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning task query: %w", err)
	}
	return r.populateQuery(&q, status, createdAtStr, updatedAtStr)
}

func (r *SQLiteQueryRepo) scanQueries(rows *sql.Rows) ([]*domain.TaskQuery, error) {
	var queries []*domain.TaskQuery
	for rows.Next() {
		var q domain.TaskQuery
		var status, createdAtStr, updatedAtStr string

		if err := rows.Scan(&q.ID, &q.TaskID, &q.UserID, &q.Subject, &q.Description,
			&q.AttachmentPath, &status, &createdAtStr, &updatedAtStr); err != nil {
			return nil, fmt.Errorf("scanning task query row: %w", err)
		}
		query, err := r.populateQuery(&q, status, createdAtStr, updatedAtStr)
		if err != nil {
			return nil, err
		}
		queries = append(queries, query)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating task queries: %w", err)
	}
	return queries, nil
}

func (r *SQLiteQueryRepo) populateQuery(q *domain.TaskQuery, status, createdAtStr, updatedAtStr string) (*domain.TaskQuery, error) {
	q.Status = domain.QueryStatus(status)

	var parseErr error
	q.CreatedAt, parseErr = time.Parse(time.RFC3339, createdAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing created_at: %w", parseErr)
	}
	q.UpdatedAt, parseErr = time.Parse(time.RFC3339, updatedAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", parseErr)
	}
	return q, nil
}
