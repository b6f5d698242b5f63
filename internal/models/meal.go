package models

import "time"

// DateLayout is the wire and cache-key format of a menu date.
const DateLayout = "2006-01-02"

// Day is the menu published for one calendar date.
type Day struct {
	ID        string
	Date      time.Time
	Meals     []Meal
	Existence bool
	Rest      bool
}

type Meal struct {
	ID   string
	Name string
	Code *string
}

type SaveMealRequest struct {
	Name string
	Code *string
}

// SaveDayRequest replaces the menu of a date. Create and update share it.
type SaveDayRequest struct {
	Date      time.Time
	Meals     []SaveMealRequest
	Existence bool
	Rest      bool
}

type PeriodFilter struct {
	From time.Time
	To   time.Time
}

type LimitFilter struct {
	From  time.Time
	Limit int
}

type RestDayMonth string

const (
	RestDayMonthCurrent  RestDayMonth = "current"
	RestDayMonthNext     RestDayMonth = "next"
	RestDayMonthPrevious RestDayMonth = "previous"
)

func (m RestDayMonth) Valid() bool {
	switch m {
	case RestDayMonthCurrent, RestDayMonthNext, RestDayMonthPrevious:
		return true
	}
	return false
}
