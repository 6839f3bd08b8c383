package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/peopledesk/hrops-backend-go/internal/domain/holiday"
	"github.com/peopledesk/hrops-backend-go/internal/pkg/database"
)

type predefinedHolidayRepository struct {
	db *database.DB
}

func NewPredefinedHolidayRepository(db *database.DB) holiday.PredefinedHolidayRepository {
	return &predefinedHolidayRepository{db: db}
}

// Create implements holiday.PredefinedHolidayRepository.
func (r *predefinedHolidayRepository) Create(ctx context.Context, h holiday.PredefinedHoliday) (holiday.PredefinedHoliday, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO predefined_holidays (name, date)
		VALUES ($1, $2)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query, h.Name, h.Date).Scan(&h.ID, &h.CreatedAt, &h.UpdatedAt)
	if err != nil {
		return holiday.PredefinedHoliday{}, fmt.Errorf("failed to create predefined holiday: %w", err)
	}

	return h, nil
}

// Exists implements holiday.PredefinedHolidayRepository.
func (r *predefinedHolidayRepository) Exists(ctx context.Context, name string, date time.Time) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM predefined_holidays WHERE name = $1 AND date = $2)`,
		name, date,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check predefined holiday: %w", err)
	}

	return exists, nil
}

// List implements holiday.PredefinedHolidayRepository.
func (r *predefinedHolidayRepository) List(ctx context.Context) ([]holiday.PredefinedHoliday, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT id, name, date, created_at, updated_at
		FROM predefined_holidays
		ORDER BY date
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list predefined holidays: %w", err)
	}
	defer rows.Close()

	var result []holiday.PredefinedHoliday
	for rows.Next() {
		var h holiday.PredefinedHoliday
		if err := rows.Scan(&h.ID, &h.Name, &h.Date, &h.CreatedAt, &h.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan predefined holiday: %w", err)
		}
		result = append(result, h)
	}

	return result, rows.Err()
}

// Delete implements holiday.PredefinedHolidayRepository.
func (r *predefinedHolidayRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM predefined_holidays WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete predefined holiday: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return holiday.ErrHolidayNotFound
	}

	return nil
}

type selectedHolidayRepository struct {
	db *database.DB
}

func NewSelectedHolidayRepository(db *database.DB) holiday.SelectedHolidayRepository {
	return &selectedHolidayRepository{db: db}
}

// Upsert implements holiday.SelectedHolidayRepository. The selection header
// and its entries are replaced in one transaction so a failed write never
// leaves a half-replaced list.
func (r *selectedHolidayRepository) Upsert(ctx context.Context, selection holiday.SelectedHoliday) (holiday.SelectedHoliday, error) {
	err := WithTransaction(ctx, r.db, func(tx pgx.Tx) error {
		err := tx.QueryRow(ctx, `
			INSERT INTO selected_holidays (employee_id)
			VALUES ($1)
			ON CONFLICT (employee_id) DO UPDATE SET updated_at = NOW()
			RETURNING id, created_at, updated_at
		`, selection.EmployeeID).Scan(&selection.ID, &selection.CreatedAt, &selection.UpdatedAt)
		if err != nil {
			return fmt.Errorf("failed to upsert holiday selection: %w", err)
		}

		if _, err := tx.Exec(ctx,
			`DELETE FROM selected_holiday_entries WHERE selection_id = $1`,
			selection.ID,
		); err != nil {
			return fmt.Errorf("failed to clear holiday entries: %w", err)
		}

		for i := range selection.Entries {
			entry := &selection.Entries[i]
			err := tx.QueryRow(ctx, `
				INSERT INTO selected_holiday_entries (selection_id, name, date, is_custom)
				VALUES ($1, $2, $3, $4)
				RETURNING id
			`, selection.ID, entry.Name, entry.Date, entry.IsCustom).Scan(&entry.ID)
			if err != nil {
				return fmt.Errorf("failed to insert holiday entry: %w", err)
			}
		}

		return nil
	})
	if err != nil {
		return holiday.SelectedHoliday{}, err
	}

	return selection, nil
}

// GetByEmployee implements holiday.SelectedHolidayRepository.
func (r *selectedHolidayRepository) GetByEmployee(ctx context.Context, employeeID string) (holiday.SelectedHoliday, error) {
	q := GetQuerier(ctx, r.db)

	var selection holiday.SelectedHoliday
	err := q.QueryRow(ctx, `
		SELECT id, employee_id, created_at, updated_at
		FROM selected_holidays
		WHERE employee_id = $1
	`, employeeID).Scan(&selection.ID, &selection.EmployeeID, &selection.CreatedAt, &selection.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return holiday.SelectedHoliday{}, holiday.ErrSelectionNotFound
		}
		return holiday.SelectedHoliday{}, fmt.Errorf("failed to get holiday selection: %w", err)
	}

	rows, err := q.Query(ctx, `
		SELECT id, name, date, is_custom
		FROM selected_holiday_entries
		WHERE selection_id = $1
		ORDER BY date
	`, selection.ID)
	if err != nil {
		return holiday.SelectedHoliday{}, fmt.Errorf("failed to list holiday entries: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var entry holiday.HolidayEntry
		if err := rows.Scan(&entry.ID, &entry.Name, &entry.Date, &entry.IsCustom); err != nil {
			return holiday.SelectedHoliday{}, fmt.Errorf("failed to scan holiday entry: %w", err)
		}
		selection.Entries = append(selection.Entries, entry)
	}

	return selection, rows.Err()
}
