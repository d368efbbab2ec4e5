package postgresql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/abghifareihand/overtime-connect-backend/internal/domain/overtime"
	"github.com/abghifareihand/overtime-connect-backend/internal/pkg/database"
)

type overtimeRepositoryImpl struct {
	db *database.DB
}

func NewOvertimeRepository(db *database.DB) overtime.OvertimeRepository {
	return &overtimeRepositoryImpl{db: db}
}

const overtimeColumns = `id, user_id, date, overtime_hours, attendance, day_type, total_overtime, overtime_details, created_at, updated_at`

func scanOvertime(row pgx.Row) (overtime.Record, error) {
	var rec overtime.Record
	var details []byte
	err := row.Scan(
		&rec.ID,
		&rec.UserID,
		&rec.Date,
		&rec.OvertimeHours,
		&rec.Attendance,
		&rec.DayType,
		&rec.TotalOvertime,
		&details,
		&rec.CreatedAt,
		&rec.UpdatedAt,
	)
	if err != nil {
		return overtime.Record{}, err
	}
	if len(details) > 0 {
		if err := json.Unmarshal(details, &rec.Details); err != nil {
			return overtime.Record{}, fmt.Errorf("decode overtime details: %w", err)
		}
	}
	return rec, nil
}

// Create implements overtime.OvertimeRepository. The uq_overtimes_user_date
// constraint makes the one-record-per-date rule atomic with the insert.
func (r *overtimeRepositoryImpl) Create(ctx context.Context, record overtime.Record) (overtime.Record, error) {
	q := GetQuerier(ctx, r.db)

	details, err := json.Marshal(record.Details)
	if err != nil {
		return overtime.Record{}, fmt.Errorf("encode overtime details: %w", err)
	}

	query := `
		INSERT INTO overtimes (user_id, date, overtime_hours, attendance, day_type, total_overtime, overtime_details)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + overtimeColumns

	created, err := scanOvertime(q.QueryRow(ctx, query,
		record.UserID, record.Date, record.OvertimeHours, record.Attendance,
		record.DayType, record.TotalOvertime, details,
	))
	if err != nil {
		if strings.Contains(err.Error(), "uq_overtimes_user_date") {
			return overtime.Record{}, overtime.ErrDuplicateDate
		}
		return overtime.Record{}, fmt.Errorf("failed to create overtime record: %w", err)
	}

	return created, nil
}

// GetByID implements overtime.OvertimeRepository.
func (r *overtimeRepositoryImpl) GetByID(ctx context.Context, userID, id string) (overtime.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + overtimeColumns + ` FROM overtimes WHERE id = $1 AND user_id = $2`

	found, err := scanOvertime(q.QueryRow(ctx, query, id, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return overtime.Record{}, overtime.ErrRecordNotFound
		}
		return overtime.Record{}, fmt.Errorf("failed to get overtime record: %w", err)
	}

	return found, nil
}

// ListByUser implements overtime.OvertimeRepository.
func (r *overtimeRepositoryImpl) ListByUser(ctx context.Context, userID string, start, end *time.Time) ([]overtime.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + overtimeColumns + ` FROM overtimes WHERE user_id = $1`
	args := []interface{}{userID}

	if start != nil && end != nil {
		query += ` AND date BETWEEN $2 AND $3`
		args = append(args, *start, *end)
	}
	query += ` ORDER BY date DESC`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list overtime records: %w", err)
	}
	defer rows.Close()

	records := []overtime.Record{}
	for rows.Next() {
		rec, err := scanOvertime(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan overtime record: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read overtime records: %w", err)
	}

	return records, nil
}

// ListYears implements overtime.OvertimeRepository.
func (r *overtimeRepositoryImpl) ListYears(ctx context.Context, userID string) ([]int, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT DISTINCT EXTRACT(YEAR FROM date)::int AS year
		FROM overtimes
		WHERE user_id = $1
		ORDER BY year ASC
	`

	rows, err := q.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list overtime years: %w", err)
	}
	defer rows.Close()

	years := []int{}
	for rows.Next() {
		var year int
		if err := rows.Scan(&year); err != nil {
			return nil, fmt.Errorf("failed to scan overtime year: %w", err)
		}
		years = append(years, year)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read overtime years: %w", err)
	}

	return years, nil
}

// Delete implements overtime.OvertimeRepository.
func (r *overtimeRepositoryImpl) Delete(ctx context.Context, userID, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM overtimes WHERE id = $1 AND user_id = $2`

	tag, err := q.Exec(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete overtime record: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return overtime.ErrRecordNotFound
	}

	return nil
}
