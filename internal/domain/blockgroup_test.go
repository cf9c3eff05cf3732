package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/deserts-microservice/internal/domain"
)

func TestDesertCriteriaMatches(t *testing.T) {
	criteria := domain.DesertCriteria{
		PovertyThreshold:       20.0,
		UrbanDistanceThreshold: 2.0,
		RuralDistanceThreshold: 10.0,
		DistanceLabel:          "closest_distance_hospitals",
	}

	bg := func(poverty float64, urban bool, distance float64) *domain.Blockgroup {
		return &domain.Blockgroup{
			GEOID:       "131210001001",
			PovertyRate: poverty,
			Urban:       urban,
			Distances:   map[string]float64{"closest_distance_hospitals": distance},
		}
	}

	tests := []struct {
		name     string
		bg       *domain.Blockgroup
		expected bool
	}{
		{"urban poor and far", bg(30, true, 5), true},
		{"rural poor and far", bg(30, false, 15), true},
		{"poverty exactly at threshold excluded", bg(20, true, 5), false},
		{"urban distance exactly at threshold excluded", bg(30, true, 2), false},
		{"rural distance exactly at threshold excluded", bg(30, false, 10), false},
		{"urban near threshold but rural-far", bg(30, true, 9), true},
		{"rural blockgroup with urban-level distance", bg(30, false, 5), false},
		{"rich and far", bg(5, false, 25), false},
		{"zero poverty threshold still strict", bg(0, true, 5), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, criteria.Matches(tt.bg))
		})
	}

	t.Run("missing distance label is not a desert", func(t *testing.T) {
		poor := &domain.Blockgroup{
			PovertyRate: 50,
			Urban:       true,
			Distances:   map[string]float64{"closest_distance_cvs": 20},
		}
		assert.False(t, criteria.Matches(poor))
	})
}

func TestDistanceTo(t *testing.T) {
	bg := &domain.Blockgroup{
		Distances: map[string]float64{"closest_distance_cvs": 1.5},
	}

	d, ok := bg.DistanceTo("closest_distance_cvs")
	assert.True(t, ok)
	assert.Equal(t, 1.5, d)

	_, ok = bg.DistanceTo("closest_distance_hospitals")
	assert.False(t, ok)
}
