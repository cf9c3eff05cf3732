package domain_test

import (
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/deserts-microservice/internal/domain"
)

func TestStateRegistry(t *testing.T) {
	t.Run("alphabetical order", func(t *testing.T) {
		names := domain.StateNames()
		assert.True(t, sort.StringsAreSorted(names))
	})

	t.Run("includes DC and Puerto Rico", func(t *testing.T) {
		dc, ok := domain.StateByFIPS("11")
		assert.True(t, ok)
		assert.Equal(t, "District of Columbia", dc.Name)

		pr, ok := domain.StateByFIPS("72")
		assert.True(t, ok)
		assert.Equal(t, "Puerto Rico", pr.Name)
	})

	t.Run("unique FIPS codes", func(t *testing.T) {
		seen := make(map[string]bool)
		for _, s := range domain.USStates {
			assert.False(t, seen[s.FIPS], "duplicate FIPS %s", s.FIPS)
			seen[s.FIPS] = true
		}
	})
}

func TestStateByName(t *testing.T) {
	s, ok := domain.StateByName("Georgia")
	assert.True(t, ok)
	assert.Equal(t, "13", s.FIPS)
	assert.Equal(t, "GA", s.Abbreviation)

	_, ok = domain.StateByName("Atlantis")
	assert.False(t, ok)
}

func TestStateOfTheDay(t *testing.T) {
	t.Run("deterministic per day", func(t *testing.T) {
		morning := time.Date(2024, 3, 15, 8, 0, 0, 0, time.UTC)
		evening := time.Date(2024, 3, 15, 22, 30, 0, 0, time.UTC)
		assert.Equal(t, domain.StateOfTheDay(morning), domain.StateOfTheDay(evening))
	})

	t.Run("always a valid interesting state", func(t *testing.T) {
		day := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
		for i := 0; i < 366; i++ {
			name := domain.StateOfTheDay(day.AddDate(0, 0, i))
			_, ok := domain.StateByName(name)
			assert.True(t, ok, "state %q not in registry", name)
		}
	})

	t.Run("changes across the interesting rotation", func(t *testing.T) {
		day := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
		next := day.AddDate(0, 0, 1)
		assert.NotEqual(t, domain.StateOfTheDay(day), domain.StateOfTheDay(next))
	})
}
