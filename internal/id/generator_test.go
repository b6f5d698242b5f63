package id

import (
	"strings"
	"testing"

	"github.com/segmentio/ksuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateIDWithPrefix(t *testing.T) {
	got := NewDayID()
	require.True(t, strings.HasPrefix(got, DayPrefix))

	_, err := ksuid.Parse(strings.TrimPrefix(got, DayPrefix))
	assert.NoError(t, err)

	assert.True(t, strings.HasPrefix(NewMealID(), MealPrefix))
	assert.NotEqual(t, NewMealID(), NewMealID())
}
