// Package cache keeps recently read menu days in process memory.
package cache

import (
	"time"

	"github.com/dgraph-io/ristretto/v2"
	"github.com/sunrintoday/mealapi/internal/models"
)

// DayCache is a TTL cache of days keyed by their date.
type DayCache struct {
	c   *ristretto.Cache[string, *models.Day]
	ttl time.Duration
}

// NewDayCache creates a cache holding roughly maxItems days.
func NewDayCache(maxItems int64, ttl time.Duration) (*DayCache, error) {
	c, err := ristretto.NewCache(&ristretto.Config[string, *models.Day]{
		NumCounters: maxItems * 10,
		MaxCost:     maxItems,
		BufferItems: 64,
	})
	if err != nil {
		return nil, err
	}
	return &DayCache{c: c, ttl: ttl}, nil
}

func Key(date time.Time) string {
	return date.Format(models.DateLayout)
}

func (c *DayCache) Get(date time.Time) (*models.Day, bool) {
	return c.c.Get(Key(date))
}

func (c *DayCache) Set(day *models.Day) {
	c.c.SetWithTTL(Key(day.Date), day, 1, c.ttl)
}

func (c *DayCache) Delete(date time.Time) {
	c.c.Del(Key(date))
}

// Wait blocks until buffered writes are applied.
func (c *DayCache) Wait() {
	c.c.Wait()
}

func (c *DayCache) Close() {
	c.c.Close()
}
