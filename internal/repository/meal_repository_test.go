package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sunrintoday/mealapi/internal/models"
)

var dayColumns = []string{"id", "date", "existence", "rest", "meals"}

func setupMealTest(t *testing.T) (*MealRepository, pgxmock.PgxPoolIface) {
	mockPool, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mockPool.Close)
	return NewMealRepository(mockPool), mockPool
}

func june(day int) time.Time {
	return time.Date(2024, time.June, day, 0, 0, 0, 0, time.UTC)
}

func TestMealRepository_GetByDate(t *testing.T) {
	repo, mockPool := setupMealTest(t)

	t.Run("Found", func(t *testing.T) {
		rows := mockPool.NewRows(dayColumns).
			AddRow("day_1", june(5), true, false,
				[]byte(`[{"id":"meal_1","name":"rice","code":"1.2","position":0},{"id":"meal_2","name":"soup","code":null,"position":1}]`))

		mockPool.ExpectQuery(`WHERE d\.date = \$1 GROUP BY d\.id`).
			WithArgs(june(5)).
			WillReturnRows(rows)

		day, err := repo.GetByDate(context.Background(), time.Date(2024, time.June, 5, 13, 45, 0, 0, time.UTC))
		require.NoError(t, err)
		assert.Equal(t, "day_1", day.ID)
		assert.Equal(t, june(5), day.Date)
		assert.True(t, day.Existence)
		assert.False(t, day.Rest)
		require.Len(t, day.Meals, 2)
		assert.Equal(t, "rice", day.Meals[0].Name)
		require.NotNil(t, day.Meals[0].Code)
		assert.Equal(t, "1.2", *day.Meals[0].Code)
		assert.Nil(t, day.Meals[1].Code)
		assert.NoError(t, mockPool.ExpectationsWereMet())
	})

	t.Run("NotFound", func(t *testing.T) {
		mockPool.ExpectQuery(`WHERE d\.date = \$1 GROUP BY d\.id`).
			WithArgs(june(6)).
			WillReturnRows(mockPool.NewRows(dayColumns))

		day, err := repo.GetByDate(context.Background(), june(6))
		assert.ErrorIs(t, err, ErrNotFound)
		assert.Nil(t, day)
		assert.NoError(t, mockPool.ExpectationsWereMet())
	})

	t.Run("QueryError", func(t *testing.T) {
		dbErr := errors.New("connection refused")
		mockPool.ExpectQuery(`WHERE d\.date = \$1`).
			WithArgs(june(7)).
			WillReturnError(dbErr)

		_, err := repo.GetByDate(context.Background(), june(7))
		assert.ErrorIs(t, err, dbErr)
		assert.NoError(t, mockPool.ExpectationsWereMet())
	})
}

func TestMealRepository_List(t *testing.T) {
	repo, mockPool := setupMealTest(t)

	rows := mockPool.NewRows(dayColumns).
		AddRow("day_1", june(3), true, false, []byte(`[]`)).
		AddRow("day_2", june(4), false, true, []byte(`[]`))
	mockPool.ExpectQuery(`FROM days d LEFT JOIN meals m ON m\.day_id = d\.id GROUP BY d\.id ORDER BY d\.date`).
		WillReturnRows(rows)

	days, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, days, 2)
	assert.Equal(t, "day_2", days[1].ID)
	assert.True(t, days[1].Rest)
	assert.Empty(t, days[0].Meals)
	assert.NoError(t, mockPool.ExpectationsWereMet())
}

func TestMealRepository_ListPeriodAndFrom(t *testing.T) {
	repo, mockPool := setupMealTest(t)

	mockPool.ExpectQuery(`WHERE d\.date BETWEEN \$1 AND \$2`).
		WithArgs(june(1), june(30)).
		WillReturnRows(mockPool.NewRows(dayColumns).AddRow("day_1", june(3), true, false, []byte(`[]`)))

	days, err := repo.ListPeriod(context.Background(), models.PeriodFilter{From: june(1), To: june(30)})
	require.NoError(t, err)
	assert.Len(t, days, 1)

	mockPool.ExpectQuery(`WHERE d\.date >= \$1 GROUP BY d\.id ORDER BY d\.date LIMIT \$2`).
		WithArgs(june(1), 5).
		WillReturnRows(mockPool.NewRows(dayColumns))

	days, err = repo.ListFrom(context.Background(), models.LimitFilter{From: june(1), Limit: 5})
	require.NoError(t, err)
	assert.Empty(t, days)

	mockPool.ExpectQuery(`WHERE d\.rest AND d\.date >= \$1 AND d\.date < \$2`).
		WithArgs(june(1), time.Date(2024, time.July, 1, 0, 0, 0, 0, time.UTC)).
		WillReturnRows(mockPool.NewRows(dayColumns).AddRow("day_9", june(6), false, true, []byte(`[]`)))

	days, err = repo.ListRestDays(context.Background(), june(1), time.Date(2024, time.July, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.Len(t, days, 1)
	assert.True(t, days[0].Rest)

	assert.NoError(t, mockPool.ExpectationsWereMet())
}

func TestMealRepository_Create(t *testing.T) {
	code := "5.6"
	req := &models.SaveDayRequest{
		Date:      june(5),
		Meals:     []models.SaveMealRequest{{Name: "rice", Code: &code}},
		Existence: true,
	}

	t.Run("Created", func(t *testing.T) {
		repo, mockPool := setupMealTest(t)

		mockPool.ExpectQuery(`INSERT INTO days`).
			WithArgs(pgxmock.AnyArg(), june(5), true, false, pgxmock.AnyArg()).
			WillReturnRows(mockPool.NewRows([]string{"count"}).AddRow(int64(1)))
		mockPool.ExpectQuery(`WHERE d\.date = \$1`).
			WithArgs(june(5)).
			WillReturnRows(mockPool.NewRows(dayColumns).
				AddRow("day_1", june(5), true, false, []byte(`[{"id":"meal_1","name":"rice","code":"5.6","position":0}]`)))

		day, err := repo.Create(context.Background(), req)
		require.NoError(t, err)
		require.Len(t, day.Meals, 1)
		assert.Equal(t, "rice", day.Meals[0].Name)
		assert.NoError(t, mockPool.ExpectationsWereMet())
	})

	t.Run("AlreadyExists", func(t *testing.T) {
		repo, mockPool := setupMealTest(t)

		mockPool.ExpectQuery(`INSERT INTO days`).
			WithArgs(pgxmock.AnyArg(), june(5), true, false, pgxmock.AnyArg()).
			WillReturnRows(mockPool.NewRows([]string{"count"}).AddRow(int64(0)))

		day, err := repo.Create(context.Background(), req)
		assert.ErrorIs(t, err, ErrAlreadyExists)
		assert.Nil(t, day)
		assert.NoError(t, mockPool.ExpectationsWereMet())
	})
}

func TestMealRepository_Update(t *testing.T) {
	req := &models.SaveDayRequest{Date: june(5), Rest: true}

	t.Run("Updated", func(t *testing.T) {
		repo, mockPool := setupMealTest(t)

		mockPool.ExpectQuery(`UPDATE days SET existence = \$2, rest = \$3`).
			WithArgs(june(5), false, true, "[]").
			WillReturnRows(mockPool.NewRows([]string{"count"}).AddRow(int64(1)))
		mockPool.ExpectQuery(`WHERE d\.date = \$1`).
			WithArgs(june(5)).
			WillReturnRows(mockPool.NewRows(dayColumns).AddRow("day_1", june(5), false, true, []byte(`[]`)))

		day, err := repo.Update(context.Background(), req)
		require.NoError(t, err)
		assert.True(t, day.Rest)
		assert.NoError(t, mockPool.ExpectationsWereMet())
	})

	t.Run("NotFound", func(t *testing.T) {
		repo, mockPool := setupMealTest(t)

		mockPool.ExpectQuery(`UPDATE days SET existence = \$2, rest = \$3`).
			WithArgs(june(5), false, true, "[]").
			WillReturnRows(mockPool.NewRows([]string{"count"}).AddRow(int64(0)))

		_, err := repo.Update(context.Background(), req)
		assert.ErrorIs(t, err, ErrNotFound)
		assert.NoError(t, mockPool.ExpectationsWereMet())
	})
}

func TestMealRepository_Delete(t *testing.T) {
	repo, mockPool := setupMealTest(t)

	mockPool.ExpectExec(`DELETE FROM days WHERE date = \$1`).
		WithArgs(june(5)).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))
	assert.NoError(t, repo.Delete(context.Background(), june(5)))

	mockPool.ExpectExec(`DELETE FROM days WHERE date = \$1`).
		WithArgs(june(6)).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))
	assert.ErrorIs(t, repo.Delete(context.Background(), june(6)), ErrNotFound)

	assert.NoError(t, mockPool.ExpectationsWereMet())
}

func TestMarshalMeals(t *testing.T) {
	got, err := marshalMeals(nil)
	require.NoError(t, err)
	assert.Equal(t, "[]", got)

	meals, err := unmarshalMeals(nil)
	require.NoError(t, err)
	assert.Empty(t, meals)

	_, err = unmarshalMeals([]byte(`{`))
	assert.Error(t, err)
}
