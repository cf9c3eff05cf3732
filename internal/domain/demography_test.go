package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/deserts-microservice/internal/domain"
)

func TestRacialLabels(t *testing.T) {
	t.Run("every canonical label is valid and has a legend", func(t *testing.T) {
		for _, label := range domain.RacialLabels {
			assert.True(t, label.Valid())
			assert.NotEmpty(t, label.Legend())
		}
	})

	t.Run("unknown label invalid", func(t *testing.T) {
		assert.False(t, domain.RacialLabel("martian").Valid())
	})
}

func TestDemographics(t *testing.T) {
	d := domain.Demographics{
		domain.RacialLabelWhite: 80,
		domain.RacialLabelBlack: 20,
	}

	assert.Equal(t, 100, d.Total())
	assert.Equal(t, 0.8, d.Fraction(domain.RacialLabelWhite))
	assert.Equal(t, 0.2, d.Fraction(domain.RacialLabelBlack))
	assert.Equal(t, 0.0, d.Fraction(domain.RacialLabelHispanic))

	t.Run("empty aggregate has zero fractions", func(t *testing.T) {
		empty := domain.Demographics{}
		assert.Equal(t, 0, empty.Total())
		assert.Equal(t, 0.0, empty.Fraction(domain.RacialLabelWhite))
	})
}
