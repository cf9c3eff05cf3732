package utils_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/deserts-microservice/internal/pkg/utils"
)

func TestHaversineDistanceMiles(t *testing.T) {
	// Атланта - Саванна, примерно 215 миль по прямой
	d := utils.HaversineDistanceMiles(33.749, -84.388, 32.081, -81.091)
	assert.InDelta(t, 215, d, 5)

	assert.Zero(t, utils.HaversineDistanceMiles(33.749, -84.388, 33.749, -84.388))
}

func TestValidateCoordinates(t *testing.T) {
	assert.True(t, utils.ValidateCoordinates(33.749, -84.388))
	assert.False(t, utils.ValidateCoordinates(91, 0))
	assert.False(t, utils.ValidateCoordinates(0, 181))
}

func TestRoundPercent(t *testing.T) {
	assert.Equal(t, 50.0, utils.RoundPercent(0.5))
	assert.Equal(t, 33.33, utils.RoundPercent(1.0/3.0))
	assert.Equal(t, 0.0, utils.RoundPercent(0))
}
