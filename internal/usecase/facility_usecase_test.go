package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/deserts-microservice/internal/domain"
	"github.com/deserts-microservice/internal/usecase"
)

func TestFacilityUseCase_ListFacilities(t *testing.T) {
	uc := usecase.NewFacilityUseCase(zap.NewNop())

	facilities := uc.ListFacilities()

	assert.Len(t, facilities, len(domain.Facilities))
	for i, f := range facilities {
		assert.Equal(t, domain.Facilities[i].Name, f.Name)
	}
}

func TestFacilityUseCase_ListStates(t *testing.T) {
	uc := usecase.NewFacilityUseCase(zap.NewNop())

	states := uc.ListStates()

	assert.Len(t, states.States, len(domain.USStates))
	_, ok := domain.StateByName(states.StateOfTheDay)
	assert.True(t, ok)
}
