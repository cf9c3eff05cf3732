package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/deserts-microservice/internal/domain"
)

func TestFacilityByName(t *testing.T) {
	t.Run("known facility", func(t *testing.T) {
		f, ok := domain.FacilityByName("hospitals")
		assert.True(t, ok)
		assert.Equal(t, "Hospitals", f.DisplayName)
		assert.Equal(t, "closest_distance_hospitals", f.DistanceLabel)
	})

	t.Run("unknown facility falls back to first registry entry", func(t *testing.T) {
		f, ok := domain.FacilityByName("stale_key_from_old_session")
		assert.False(t, ok)
		assert.Equal(t, domain.Facilities[0].Name, f.Name)
	})

	t.Run("empty name falls back", func(t *testing.T) {
		f, ok := domain.FacilityByName("")
		assert.False(t, ok)
		assert.NotNil(t, f)
	})
}

func TestFacilityByDisplayName(t *testing.T) {
	f, ok := domain.FacilityByDisplayName("Banks")
	assert.True(t, ok)
	assert.Equal(t, "fdic_insured_banks", f.Name)
}

func TestLocationFacilities(t *testing.T) {
	t.Run("pharmacy group expands to three chains", func(t *testing.T) {
		group, ok := domain.FacilityByName(domain.PharmacyGroupName)
		assert.True(t, ok)

		chains := group.LocationFacilities()
		assert.Len(t, chains, 3)

		names := make([]string, 0, len(chains))
		for _, c := range chains {
			names = append(names, c.Name)
		}
		assert.Contains(t, names, "cvs")
		assert.Contains(t, names, "walgreens")
		assert.Contains(t, names, "walmart")
	})

	t.Run("regular facility maps to itself", func(t *testing.T) {
		f, _ := domain.FacilityByName("urgent_care")
		drawn := f.LocationFacilities()
		assert.Len(t, drawn, 1)
		assert.Equal(t, "urgent_care", drawn[0].Name)
	})
}

func TestFacilityRegistry(t *testing.T) {
	// Селектор полагается на стабильный порядок и уникальность ключей
	seen := make(map[string]bool)
	for _, f := range domain.Facilities {
		assert.False(t, seen[f.Name], "duplicate facility name %s", f.Name)
		seen[f.Name] = true
		assert.NotEmpty(t, f.DisplayName)
		assert.NotEmpty(t, f.DistanceLabel)
	}
	assert.Equal(t, domain.PharmacyGroupName, domain.Facilities[0].Name)
}
