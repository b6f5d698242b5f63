package api

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/nhalm/canonlog"
	"github.com/sunrintoday/mealapi/internal/apperrors"
	"github.com/sunrintoday/mealapi/internal/errlog"
	"github.com/sunrintoday/mealapi/internal/models"
)

// MealService defines only the methods the API layer needs from the meal service.
type MealService interface {
	ListMeals(ctx context.Context) ([]*models.Day, error)
	GetMealByDate(ctx context.Context, date time.Time) (*models.Day, error)
	GetMealsForWeek(ctx context.Context) ([]*models.Day, error)
	GetMealsForMonth(ctx context.Context) ([]*models.Day, error)
	GetMealsForPeriod(ctx context.Context, filter models.PeriodFilter) ([]*models.Day, error)
	GetMealsWithLimit(ctx context.Context, filter models.LimitFilter) ([]*models.Day, error)
	GetRestDays(ctx context.Context, month models.RestDayMonth) ([]*models.Day, error)
	CreateMeal(ctx context.Context, req *models.SaveDayRequest) (*models.Day, error)
	UpdateMeal(ctx context.Context, req *models.SaveDayRequest) (*models.Day, error)
	DeleteMeal(ctx context.Context, date time.Time) error
}

type Handler struct {
	mealSvc MealService
	logger  *slog.Logger
}

// NewHandler builds the HTTP handlers. A nil logger uses slog.Default().
func NewHandler(mealSvc MealService, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		mealSvc: mealSvc,
		logger:  logger,
	}
}

// handle composes a route: failure logging first, then the error boundary.
func (h *Handler) handle(name string, fn errlog.HandlerFunc) http.HandlerFunc {
	wrapped := errlog.Handler(h.logger, name, fn)
	return func(w http.ResponseWriter, r *http.Request) {
		if err := wrapped(w, r); err != nil {
			handlerErrorsTotal.WithLabelValues(name, strconv.Itoa(apperrors.HTTPStatus(err))).Inc()
			handleServiceError(w, r, err)
		}
	}
}

// ListMeals godoc
// @Summary Get all meals
// @Tags meal
// @Produce json
// @Success 200 {array} DayResponse
// @Router /meal/list [get]
func (h *Handler) ListMeals(w http.ResponseWriter, r *http.Request) error {
	days, err := h.mealSvc.ListMeals(r.Context())
	if err != nil {
		return err
	}
	Success(w, convertToDayResponses(days))
	return nil
}

// GetMealByDate godoc
// @Summary Get meal by date
// @Tags meal
// @Produce json
// @Param date query string true "Date of the meal" example(2024-06-05)
// @Success 200 {object} DayResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /meal [get]
func (h *Handler) GetMealByDate(w http.ResponseWriter, r *http.Request) error {
	date, err := parseDate("date", r.URL.Query().Get("date"))
	if err != nil {
		return err
	}

	day, err := h.mealSvc.GetMealByDate(r.Context(), date)
	if err != nil {
		return err
	}
	Success(w, convertToDayResponse(day))
	return nil
}

// GetMealsForWeek godoc
// @Summary Get meals for the current week
// @Tags meal
// @Produce json
// @Success 200 {array} DayResponse
// @Router /meal/week [get]
func (h *Handler) GetMealsForWeek(w http.ResponseWriter, r *http.Request) error {
	days, err := h.mealSvc.GetMealsForWeek(r.Context())
	if err != nil {
		return err
	}
	Success(w, convertToDayResponses(days))
	return nil
}

// GetMealsForMonth godoc
// @Summary Get meals for the current month
// @Tags meal
// @Produce json
// @Success 200 {array} DayResponse
// @Router /meal/month [get]
func (h *Handler) GetMealsForMonth(w http.ResponseWriter, r *http.Request) error {
	days, err := h.mealSvc.GetMealsForMonth(r.Context())
	if err != nil {
		return err
	}
	Success(w, convertToDayResponses(days))
	return nil
}

// GetMealsForPeriod godoc
// @Summary Get meals between two dates
// @Tags meal
// @Produce json
// @Param from query string true "First date" example(2024-06-01)
// @Param to query string true "Last date" example(2024-06-30)
// @Success 200 {array} DayResponse
// @Failure 400 {object} ErrorResponse
// @Router /meal/period [get]
func (h *Handler) GetMealsForPeriod(w http.ResponseWriter, r *http.Request) error {
	from, err := parseDate("from", r.URL.Query().Get("from"))
	if err != nil {
		return err
	}
	to, err := parseDate("to", r.URL.Query().Get("to"))
	if err != nil {
		return err
	}

	days, err := h.mealSvc.GetMealsForPeriod(r.Context(), models.PeriodFilter{From: from, To: to})
	if err != nil {
		return err
	}
	Success(w, convertToDayResponses(days))
	return nil
}

// GetMealsWithLimit godoc
// @Summary Get a number of meals starting at a date
// @Tags meal
// @Produce json
// @Param from query string true "First date" example(2024-06-01)
// @Param limit query int true "Number of days"
// @Success 200 {array} DayResponse
// @Failure 400 {object} ErrorResponse
// @Router /meal/limit [get]
func (h *Handler) GetMealsWithLimit(w http.ResponseWriter, r *http.Request) error {
	from, err := parseDate("from", r.URL.Query().Get("from"))
	if err != nil {
		return err
	}
	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil {
		return apperrors.NewValidationError("limit", "limit must be an integer")
	}

	days, err := h.mealSvc.GetMealsWithLimit(r.Context(), models.LimitFilter{From: from, Limit: limit})
	if err != nil {
		return err
	}
	Success(w, convertToDayResponses(days))
	return nil
}

// GetRestDays godoc
// @Summary Get rest days of a month
// @Tags meal
// @Produce json
// @Param month query string false "current, next or previous" Enums(current, next, previous)
// @Success 200 {array} DayResponse
// @Failure 400 {object} ErrorResponse
// @Router /meal/rest-days [get]
func (h *Handler) GetRestDays(w http.ResponseWriter, r *http.Request) error {
	month := models.RestDayMonth(r.URL.Query().Get("month"))
	if month == "" {
		month = models.RestDayMonthCurrent
	}

	days, err := h.mealSvc.GetRestDays(r.Context(), month)
	if err != nil {
		return err
	}
	Success(w, convertToDayResponses(days))
	return nil
}

// CreateMeal godoc
// @Summary Create meal
// @Tags meal
// @Accept json
// @Produce json
// @Param KEY header string true "Secret key for the API"
// @Param body body SaveDayRequest true "Menu of the date"
// @Success 201 {object} DayResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /meal [post]
func (h *Handler) CreateMeal(w http.ResponseWriter, r *http.Request) error {
	req, err := decodeSaveDayRequest(r)
	if err != nil {
		return err
	}

	day, err := h.mealSvc.CreateMeal(r.Context(), req)
	if err != nil {
		return err
	}
	Created(w, convertToDayResponse(day))
	return nil
}

// UpdateMeal godoc
// @Summary Update meal
// @Tags meal
// @Accept json
// @Produce json
// @Param KEY header string true "Secret key for the API"
// @Param body body SaveDayRequest true "Menu of the date"
// @Success 200 {object} DayResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /meal [put]
func (h *Handler) UpdateMeal(w http.ResponseWriter, r *http.Request) error {
	req, err := decodeSaveDayRequest(r)
	if err != nil {
		return err
	}

	day, err := h.mealSvc.UpdateMeal(r.Context(), req)
	if err != nil {
		return err
	}
	Success(w, convertToDayResponse(day))
	return nil
}

// DeleteMeal godoc
// @Summary Delete meal
// @Tags meal
// @Param KEY header string true "Secret key for the API"
// @Param date query string true "Date of the meal" example(2024-06-05)
// @Success 204
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /meal [delete]
func (h *Handler) DeleteMeal(w http.ResponseWriter, r *http.Request) error {
	date, err := parseDate("date", r.URL.Query().Get("date"))
	if err != nil {
		return err
	}

	if err := h.mealSvc.DeleteMeal(r.Context(), date); err != nil {
		return err
	}
	w.WriteHeader(http.StatusNoContent)
	return nil
}

func decodeSaveDayRequest(r *http.Request) (*models.SaveDayRequest, error) {
	var req SaveDayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return nil, apperrors.NewValidationError("", "invalid request body")
	}

	if err := ValidateStruct(req); err != nil {
		return nil, err
	}

	date, err := parseDate("date", req.Date)
	if err != nil {
		return nil, err
	}

	canonlog.AddRequestFields(r.Context(), map[string]any{
		"meal_date":  req.Date,
		"meal_count": len(req.Meals),
	})

	meals := make([]models.SaveMealRequest, len(req.Meals))
	for i, m := range req.Meals {
		meals[i] = models.SaveMealRequest{Name: m.Meal, Code: m.Code}
	}

	return &models.SaveDayRequest{
		Date:      date,
		Meals:     meals,
		Existence: req.Existence,
		Rest:      req.Rest,
	}, nil
}

func parseDate(param, value string) (time.Time, error) {
	date, err := time.Parse(models.DateLayout, value)
	if err != nil {
		return time.Time{}, apperrors.NewValidationError(param, "Invalid date format. Please use YYYY-MM-DD")
	}
	return date, nil
}

func convertToDayResponse(day *models.Day) DayResponse {
	meals := make([]MealResponse, len(day.Meals))
	for i, m := range day.Meals {
		meals[i] = MealResponse{ID: m.ID, Meal: m.Name, Code: m.Code}
	}

	return DayResponse{
		Date:      day.Date.Format(models.DateLayout),
		Meals:     meals,
		Existence: day.Existence,
		Rest:      day.Rest,
	}
}

func convertToDayResponses(days []*models.Day) []DayResponse {
	responses := make([]DayResponse, len(days))
	for i, d := range days {
		responses[i] = convertToDayResponse(d)
	}
	return responses
}
