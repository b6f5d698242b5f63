package api

// MealRequest is one dish in a save request.
// @Description Dish entry
type MealRequest struct {
	Meal string  `json:"meal" validate:"required,max=255"`
	Code *string `json:"code" validate:"omitempty,max=64"`
}

// SaveDayRequest is the body of POST and PUT /meal.
// @Description Request payload for creating or replacing the menu of a date
type SaveDayRequest struct {
	Date      string        `json:"date" validate:"required,datetime=2006-01-02"`
	Meals     []MealRequest `json:"meals" validate:"dive"`
	Existence bool          `json:"existence"`
	Rest      bool          `json:"rest"`
}

// MealResponse represents a dish in API responses.
// @Description Dish resource
type MealResponse struct {
	ID   string  `json:"id"`
	Meal string  `json:"meal"`
	Code *string `json:"code"`
}

// DayResponse represents the menu of one date.
// @Description Menu of a date
type DayResponse struct {
	Date      string         `json:"date"`
	Meals     []MealResponse `json:"meals"`
	Existence bool           `json:"existence"`
	Rest      bool           `json:"rest"`
}
