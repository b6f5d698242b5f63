package id

import "github.com/segmentio/ksuid"

const (
	DayPrefix  = "day_"
	MealPrefix = "meal_"
)

// GenerateIDWithPrefix returns <prefix><27-char-ksuid>, e.g.
// day_2ArTLVPddDx8vZk7CqEbiYp1. KSUIDs sort by creation time.
func GenerateIDWithPrefix(prefix string) string {
	return prefix + ksuid.New().String()
}

func NewDayID() string {
	return GenerateIDWithPrefix(DayPrefix)
}

func NewMealID() string {
	return GenerateIDWithPrefix(MealPrefix)
}
