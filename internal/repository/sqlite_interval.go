package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/flowtik/flowtik/internal/db"
	"github.com/flowtik/flowtik/internal/domain"
)

const workIntervalColumns = `id, task_id, user_id, start_time, end_time`
const breakIntervalColumns = `id, task_id, user_id, start_time, end_time, reason`

// SQLiteIntervalRepo implements IntervalRepo using a SQLite database.
// Open intervals are rows whose end_time is NULL; partial unique indexes
// guarantee at most one open row per user in each table.
type SQLiteIntervalRepo struct {
	db db.DBTX
}

// NewSQLiteIntervalRepo creates a new SQLiteIntervalRepo.
func NewSQLiteIntervalRepo(db db.DBTX) *SQLiteIntervalRepo {
	return &SQLiteIntervalRepo{db: db}
}

func (r *SQLiteIntervalRepo) CreateWork(ctx context.Context, w *domain.WorkInterval) error {
	query := `INSERT INTO work_intervals (task_id, user_id, start_time, end_time) VALUES (?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, query,
		w.TaskID,
		w.UserID,
		w.StartTime.UTC().Format(time.RFC3339),
		nullableTimeToString(w.EndTime, time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting work interval: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("reading work interval insert id: %w", err)
	}
	w.ID = id
	return nil
}

func (r *SQLiteIntervalRepo) FindOpenWork(ctx context.Context, userID int64) (*domain.WorkInterval, error) {
	query := `SELECT ` + workIntervalColumns + ` FROM work_intervals WHERE user_id = ? AND end_time IS NULL`
	return r.scanWork(r.db.QueryRowContext(ctx, query, userID))
}

func (r *SQLiteIntervalRepo) CloseWork(ctx context.Context, id int64, end time.Time) error {
	query := `UPDATE work_intervals SET end_time = ? WHERE id = ? AND end_time IS NULL`
	res, err := r.db.ExecContext(ctx, query, end.UTC().Format(time.RFC3339), id)
	if err != nil {
		return fmt.Errorf("closing work interval: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("reading close result: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("open work interval %d: %w", id, ErrNotFound)
	}
	return nil
}

func (r *SQLiteIntervalRepo) ListWorkInRange(ctx context.Context, userID int64, start, end time.Time) ([]*domain.WorkInterval, error) {
	query := `SELECT ` + workIntervalColumns + ` FROM work_intervals
		WHERE user_id = ? AND start_time >= ? AND start_time < ?
		ORDER BY start_time`
	rows, err := r.db.QueryContext(ctx, query, userID,
		start.UTC().Format(time.RFC3339), end.UTC().Format(time.RFC3339))
	if err != nil {
		return nil, fmt.Errorf("listing work intervals in range: %w", err)
	}
	defer rows.Close()
	return r.scanWorks(rows)
}

func (r *SQLiteIntervalRepo) ListWorkByTask(ctx context.Context, taskID int64) ([]*domain.WorkInterval, error) {
	query := `SELECT ` + workIntervalColumns + ` FROM work_intervals WHERE task_id = ? ORDER BY start_time`
	rows, err := r.db.QueryContext(ctx, query, taskID)
	if err != nil {
		return nil, fmt.Errorf("listing work intervals by task: %w", err)
	}
	defer rows.Close()
	return r.scanWorks(rows)
}

func (r *SQLiteIntervalRepo) CreateBreak(ctx context.Context, b *domain.BreakInterval) error {
	query := `INSERT INTO break_intervals (task_id, user_id, start_time, end_time, reason) VALUES (?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, query,
		b.TaskID,
		b.UserID,
		b.StartTime.UTC().Format(time.RFC3339),
		nullableTimeToString(b.EndTime, time.RFC3339),
		b.Reason,
	)
	if err != nil {
		return fmt.Errorf("inserting break interval: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("reading break interval insert id: %w", err)
	}
	b.ID = id
	return nil
}

func (r *SQLiteIntervalRepo) FindOpenBreak(ctx context.Context, userID int64) (*domain.BreakInterval, error) {
	query := `SELECT ` + breakIntervalColumns + ` FROM break_intervals WHERE user_id = ? AND end_time IS NULL`
	return r.scanBreak(r.db.QueryRowContext(ctx, query, userID))
}

func (r *SQLiteIntervalRepo) CloseBreak(ctx context.Context, id int64, end time.Time) error {
	query := `UPDATE break_intervals SET end_time = ? WHERE id = ? AND end_time IS NULL`
	res, err := r.db.ExecContext(ctx, query, end.UTC().Format(time.RFC3339), id)
	if err != nil {
		return fmt.Errorf("closing break interval: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("reading close result: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("open break interval %d: %w", id, ErrNotFound)
	}
	return nil
}

func (r *SQLiteIntervalRepo) ListBreaksInRange(ctx context.Context, userID int64, start, end time.Time) ([]*domain.BreakInterval, error) {
	query := `SELECT ` + breakIntervalColumns + ` FROM break_intervals
		WHERE user_id = ? AND start_time >= ? AND start_time < ?
		ORDER BY start_time`
	rows, err := r.db.QueryContext(ctx, query, userID,
		start.UTC().Format(time.RFC3339), end.UTC().Format(time.RFC3339))
	if err != nil {
		return nil, fmt.Errorf("listing break intervals in range: %w", err)
	}
	defer rows.Close()
	return r.scanBreaks(rows)
}

func (r *SQLiteIntervalRepo) scanWork(row *sql.Row) (*domain.WorkInterval, error) {
	var w domain.WorkInterval
	var startStr string
	var endStr sql.NullString

	err := row.Scan(&w.ID, &w.TaskID, &w.UserID, &startStr, &endStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("work interval: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning work interval: %w", err)
	}
	return r.populateWork(&w, startStr, endStr)
}

func (r *SQLiteIntervalRepo) scanWorks(rows *sql.Rows) ([]*domain.WorkInterval, error) {
	var intervals []*domain.WorkInterval
	for rows.Next() {
		var w domain.WorkInterval
		var startStr string
		var endStr sql.NullString

		if err := rows.Scan(&w.ID, &w.TaskID, &w.UserID, &startStr, &endStr); err != nil {
			return nil, fmt.Errorf("scanning work interval row: %w", err)
		}
		interval, err := r.populateWork(&w, startStr, endStr)
		if err != nil {
			return nil, err
		}
		intervals = append(intervals, interval)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating work intervals: %w", err)
	}
	return intervals, nil
}

func (r *SQLiteIntervalRepo) populateWork(w *domain.WorkInterval, startStr string, endStr sql.NullString) (*domain.WorkInterval, error) {
	var parseErr error
	w.StartTime, parseErr = time.Parse(time.RFC3339, startStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing start_time: %w", parseErr)
	}
	w.EndTime = parseNullableTime(endStr, time.RFC3339)
	return w, nil
}

func (r *SQLiteIntervalRepo) scanBreak(row *sql.Row) (*domain.BreakInterval, error) {
	var b domain.BreakInterval
	var startStr string
	var endStr sql.NullString

	err := row.Scan(&b.ID, &b.TaskID, &b.UserID, &startStr, &endStr, &b.Reason)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("break interval: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning break interval: %w", err)
	}
	return r.populateBreak(&b, startStr, endStr)
}

func (r *SQLiteIntervalRepo) scanBreaks(rows *sql.Rows) ([]*domain.BreakInterval, error) {
	var intervals []*domain.BreakInterval
	for rows.Next() {
		var b domain.BreakInterval
		var startStr string
		var endStr sql.NullString

		if err := rows.Scan(&b.ID, &b.TaskID, &b.UserID, &startStr, &endStr, &b.Reason); err != nil {
			return nil, fmt.Errorf("scanning break interval row: %w", err)
		}
		interval, err := r.populateBreak(&b, startStr, endStr)
		if err != nil {
			return nil, err
		}
		intervals = append(intervals, interval)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating break intervals: %w", err)
	}
	return intervals, nil
}

func (r *SQLiteIntervalRepo) populateBreak(b *domain.BreakInterval, startStr string, endStr sql.NullString) (*domain.BreakInterval, error) {
	var parseErr error
	b.StartTime, parseErr = time.Parse(time.RFC3339, startStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing start_time: %w", parseErr)
	}
	b.EndTime = parseNullableTime(endStr, time.RFC3339)
	return b, nil
}
