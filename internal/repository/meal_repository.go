package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sunrintoday/mealapi/internal/id"
	"github.com/sunrintoday/mealapi/internal/models"
)

// Querier is the subset of *pgxkit.DB the repository uses.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

const selectDays = `
SELECT d.id, d.date, d.existence, d.rest,
       COALESCE(
           json_agg(json_build_object('id', m.id, 'name', m.name, 'code', m.code, 'position', m.position)
               ORDER BY m.position) FILTER (WHERE m.id IS NOT NULL),
           '[]'
       ) AS meals
FROM days d
LEFT JOIN meals m ON m.day_id = d.id`

const createDay = `
WITH day AS (
    INSERT INTO days (id, date, existence, rest)
    VALUES ($1, $2, $3, $4)
    ON CONFLICT (date) DO NOTHING
    RETURNING id
), inserted AS (
    INSERT INTO meals (id, day_id, name, code, position)
    SELECT m.id, day.id, m.name, m.code, m.position
    FROM day, jsonb_to_recordset($5::jsonb) AS m(id TEXT, name TEXT, code TEXT, position INT)
    RETURNING id
)
SELECT count(*) FROM day`

const updateDay = `
WITH day AS (
    UPDATE days SET existence = $2, rest = $3, updated_at = now()
    WHERE date = $1
    RETURNING id
), removed AS (
    DELETE FROM meals WHERE day_id IN (SELECT id FROM day)
), inserted AS (
    INSERT INTO meals (id, day_id, name, code, position)
    SELECT m.id, day.id, m.name, m.code, m.position
    FROM day, jsonb_to_recordset($4::jsonb) AS m(id TEXT, name TEXT, code TEXT, position INT)
    RETURNING id
)
SELECT count(*) FROM day`

const deleteDay = `DELETE FROM days WHERE date = $1`

type MealRepository struct {
	db Querier
}

func NewMealRepository(db Querier) *MealRepository {
	return &MealRepository{db: db}
}

func (r *MealRepository) List(ctx context.Context) ([]*models.Day, error) {
	return r.listDays(ctx, selectDays+` GROUP BY d.id ORDER BY d.date`)
}

func (r *MealRepository) GetByDate(ctx context.Context, date time.Time) (*models.Day, error) {
	days, err := r.listDays(ctx, selectDays+` WHERE d.date = $1 GROUP BY d.id`, dateOnly(date))
	if err != nil {
		return nil, err
	}
	if len(days) == 0 {
		return nil, ErrNotFound
	}
	return days[0], nil
}

// ListPeriod returns the days in [from, to], both inclusive.
func (r *MealRepository) ListPeriod(ctx context.Context, filter models.PeriodFilter) ([]*models.Day, error) {
	return r.listDays(ctx,
		selectDays+` WHERE d.date BETWEEN $1 AND $2 GROUP BY d.id ORDER BY d.date`,
		dateOnly(filter.From), dateOnly(filter.To))
}

// ListFrom returns at most filter.Limit days starting at filter.From.
func (r *MealRepository) ListFrom(ctx context.Context, filter models.LimitFilter) ([]*models.Day, error) {
	return r.listDays(ctx,
		selectDays+` WHERE d.date >= $1 GROUP BY d.id ORDER BY d.date LIMIT $2`,
		dateOnly(filter.From), filter.Limit)
}

// ListRestDays returns the rest days in [from, to).
func (r *MealRepository) ListRestDays(ctx context.Context, from, to time.Time) ([]*models.Day, error) {
	return r.listDays(ctx,
		selectDays+` WHERE d.rest AND d.date >= $1 AND d.date < $2 GROUP BY d.id ORDER BY d.date`,
		dateOnly(from), dateOnly(to))
}

func (r *MealRepository) Create(ctx context.Context, req *models.SaveDayRequest) (*models.Day, error) {
	mealsJSON, err := marshalMeals(req.Meals)
	if err != nil {
		return nil, err
	}

	var created int64
	if err := r.db.QueryRow(ctx, createDay,
		id.NewDayID(), dateOnly(req.Date), req.Existence, req.Rest, mealsJSON,
	).Scan(&created); err != nil {
		return nil, fmt.Errorf("create day: %w", err)
	}
	if created == 0 {
		return nil, ErrAlreadyExists
	}

	return r.GetByDate(ctx, req.Date)
}

func (r *MealRepository) Update(ctx context.Context, req *models.SaveDayRequest) (*models.Day, error) {
	mealsJSON, err := marshalMeals(req.Meals)
	if err != nil {
		return nil, err
	}

	var updated int64
	if err := r.db.QueryRow(ctx, updateDay,
		dateOnly(req.Date), req.Existence, req.Rest, mealsJSON,
	).Scan(&updated); err != nil {
		return nil, fmt.Errorf("update day: %w", err)
	}
	if updated == 0 {
		return nil, ErrNotFound
	}

	return r.GetByDate(ctx, req.Date)
}

func (r *MealRepository) Delete(ctx context.Context, date time.Time) error {
	tag, err := r.db.Exec(ctx, deleteDay, dateOnly(date))
	if err != nil {
		return fmt.Errorf("delete day: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MealRepository) listDays(ctx context.Context, query string, args ...any) ([]*models.Day, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []*models.Day{}, nil
		}
		return nil, err
	}
	defer rows.Close()

	days := []*models.Day{}
	for rows.Next() {
		var (
			day       models.Day
			mealsJSON []byte
		)
		if err := rows.Scan(&day.ID, &day.Date, &day.Existence, &day.Rest, &mealsJSON); err != nil {
			return nil, fmt.Errorf("scan day: %w", err)
		}
		if day.Meals, err = unmarshalMeals(mealsJSON); err != nil {
			return nil, err
		}
		days = append(days, &day)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return days, nil
}
