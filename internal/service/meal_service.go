package service

import (
	"context"
	"errors"
	"time"

	"github.com/sunrintoday/mealapi/internal/apperrors"
	"github.com/sunrintoday/mealapi/internal/models"
	"github.com/sunrintoday/mealapi/internal/repository"
)

type MealRepository interface {
	List(ctx context.Context) ([]*models.Day, error)
	GetByDate(ctx context.Context, date time.Time) (*models.Day, error)
	ListPeriod(ctx context.Context, filter models.PeriodFilter) ([]*models.Day, error)
	ListFrom(ctx context.Context, filter models.LimitFilter) ([]*models.Day, error)
	ListRestDays(ctx context.Context, from, to time.Time) ([]*models.Day, error)
	Create(ctx context.Context, req *models.SaveDayRequest) (*models.Day, error)
	Update(ctx context.Context, req *models.SaveDayRequest) (*models.Day, error)
	Delete(ctx context.Context, date time.Time) error
}

// DayCache is optional; a nil cache disables caching.
type DayCache interface {
	Get(date time.Time) (*models.Day, bool)
	Set(day *models.Day)
	Delete(date time.Time)
}

type MealService struct {
	repo  MealRepository
	cache DayCache
	now   func() time.Time
}

type Option func(*MealService)

func WithCache(c DayCache) Option {
	return func(s *MealService) { s.cache = c }
}

func WithClock(now func() time.Time) Option {
	return func(s *MealService) { s.now = now }
}

func NewMealService(repo MealRepository, opts ...Option) *MealService {
	s := &MealService{repo: repo, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *MealService) ListMeals(ctx context.Context) ([]*models.Day, error) {
	days, err := s.repo.List(ctx)
	if err != nil {
		return nil, translate(err, "list meals")
	}
	return days, nil
}

func (s *MealService) GetMealByDate(ctx context.Context, date time.Time) (*models.Day, error) {
	if s.cache != nil {
		if day, ok := s.cache.Get(date); ok {
			return day, nil
		}
	}

	day, err := s.repo.GetByDate(ctx, date)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NotFoundf("No meals found for the date %s", date.Format(models.DateLayout))
		}
		return nil, translate(err, "get meal")
	}

	if s.cache != nil {
		s.cache.Set(day)
	}
	return day, nil
}

// GetMealsForWeek returns the current Monday through Sunday.
func (s *MealService) GetMealsForWeek(ctx context.Context) ([]*models.Day, error) {
	today := startOfDay(s.now())
	offset := (int(today.Weekday()) + 6) % 7
	monday := today.AddDate(0, 0, -offset)

	days, err := s.repo.ListPeriod(ctx, models.PeriodFilter{From: monday, To: monday.AddDate(0, 0, 6)})
	if err != nil {
		return nil, translate(err, "list week meals")
	}
	return days, nil
}

func (s *MealService) GetMealsForMonth(ctx context.Context) ([]*models.Day, error) {
	first := startOfMonth(s.now(), 0)

	days, err := s.repo.ListPeriod(ctx, models.PeriodFilter{From: first, To: first.AddDate(0, 1, -1)})
	if err != nil {
		return nil, translate(err, "list month meals")
	}
	return days, nil
}

func (s *MealService) GetMealsForPeriod(ctx context.Context, filter models.PeriodFilter) ([]*models.Day, error) {
	if filter.From.After(filter.To) {
		return nil, apperrors.NewValidationError("from", "Start date must be before end date")
	}

	days, err := s.repo.ListPeriod(ctx, filter)
	if err != nil {
		return nil, translate(err, "list period meals")
	}
	return days, nil
}

func (s *MealService) GetMealsWithLimit(ctx context.Context, filter models.LimitFilter) ([]*models.Day, error) {
	if filter.Limit <= 0 {
		return nil, apperrors.NewValidationError("limit", "Limit must be greater than 0")
	}

	days, err := s.repo.ListFrom(ctx, filter)
	if err != nil {
		return nil, translate(err, "list meals with limit")
	}
	return days, nil
}

func (s *MealService) GetRestDays(ctx context.Context, month models.RestDayMonth) ([]*models.Day, error) {
	var shift int
	switch month {
	case models.RestDayMonthCurrent:
	case models.RestDayMonthNext:
		shift = 1
	case models.RestDayMonthPrevious:
		shift = -1
	default:
		return nil, apperrors.NewValidationError("month", "month must be one of: current next previous")
	}

	first := startOfMonth(s.now(), shift)
	days, err := s.repo.ListRestDays(ctx, first, first.AddDate(0, 1, 0))
	if err != nil {
		return nil, translate(err, "list rest days")
	}
	return days, nil
}

func (s *MealService) CreateMeal(ctx context.Context, req *models.SaveDayRequest) (*models.Day, error) {
	day, err := s.repo.Create(ctx, req)
	if err != nil {
		if errors.Is(err, repository.ErrAlreadyExists) {
			return nil, apperrors.NewConflictError("meal", "Meal already exists for the date")
		}
		return nil, translate(err, "create meal")
	}

	s.invalidate(req.Date)
	return day, nil
}

func (s *MealService) UpdateMeal(ctx context.Context, req *models.SaveDayRequest) (*models.Day, error) {
	day, err := s.repo.Update(ctx, req)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("No meal found for the date")
		}
		return nil, translate(err, "update meal")
	}

	s.invalidate(req.Date)
	return day, nil
}

func (s *MealService) DeleteMeal(ctx context.Context, date time.Time) error {
	if err := s.repo.Delete(ctx, date); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperrors.NotFoundf("No meals found for the date %s", date.Format(models.DateLayout))
		}
		return translate(err, "delete meal")
	}

	s.invalidate(date)
	return nil
}

func (s *MealService) invalidate(date time.Time) {
	if s.cache != nil {
		s.cache.Delete(date)
	}
}

// translate turns deadline errors into TimeoutError and leaves everything
// else untouched.
func translate(err error, operation string) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return apperrors.NewTimeoutError(operation)
	}
	return err
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// startOfMonth returns the first day of t's month shifted by the given
// number of months. time.Date normalizes month 0 and 13 across years.
func startOfMonth(t time.Time, shift int) time.Time {
	y, m, _ := t.Date()
	return time.Date(y, m+time.Month(shift), 1, 0, 0, 0, 0, time.UTC)
}
