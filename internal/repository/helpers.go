package repository

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/sunrintoday/mealapi/internal/id"
	"github.com/sunrintoday/mealapi/internal/models"
)

// mealRecord is the JSON shape meals travel in between Go and Postgres,
// both for jsonb_to_recordset on write and json_agg on read.
type mealRecord struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Code     *string `json:"code"`
	Position int     `json:"position"`
}

func marshalMeals(meals []models.SaveMealRequest) (string, error) {
	records := make([]mealRecord, len(meals))
	for i, m := range meals {
		records[i] = mealRecord{
			ID:       id.NewMealID(),
			Name:     m.Name,
			Code:     m.Code,
			Position: i,
		}
	}

	data, err := json.Marshal(records)
	if err != nil {
		return "", fmt.Errorf("marshal meals: %w", err)
	}
	return string(data), nil
}

func unmarshalMeals(raw []byte) ([]models.Meal, error) {
	if len(raw) == 0 {
		return []models.Meal{}, nil
	}

	var records []mealRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("unmarshal meals: %w", err)
	}

	meals := make([]models.Meal, len(records))
	for i, r := range records {
		meals[i] = models.Meal{ID: r.ID, Name: r.Name, Code: r.Code}
	}
	return meals, nil
}

// dateOnly drops the clock part so DATE comparisons are not skewed by zones.
func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
