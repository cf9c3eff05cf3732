package domain

import (
	"math"
	"time"
)

// Диапазоны и шаги слайдеров порогов
const (
	DefaultPovertyThreshold       = 20.0
	DefaultUrbanDistanceThreshold = 2.0
	DefaultRuralDistanceThreshold = 10.0

	MinPovertyThreshold  = 0.0
	MaxPovertyThreshold  = 100.0
	PovertyThresholdStep = 5.0

	MinUrbanDistanceThreshold = 0.0
	MaxUrbanDistanceThreshold = 15.0
	UrbanDistanceStep         = 0.5

	MinRuralDistanceThreshold = 0.0
	MaxRuralDistanceThreshold = 30.0
	RuralDistanceStep         = 1.0
)

// Selection - выбор пользователя, живёт в session store между рендерами
type Selection struct {
	FacilityName           string  `json:"facility_name"`
	StateName              string  `json:"state_name"`
	PovertyThreshold       float64 `json:"poverty_threshold"`
	UrbanDistanceThreshold float64 `json:"urban_distance_threshold"`
	RuralDistanceThreshold float64 `json:"rural_distance_threshold"`
	ShowDeserts            bool    `json:"show_deserts"`
	ShowFacilityLocations  bool    `json:"show_facility_locations"`
	ShowVoronoiCells       bool    `json:"show_voronoi_cells"`
}

// DefaultSelection возвращает выбор для первого рендера сессии:
// первый тип объекта из реестра, "штат дня" и пороги по умолчанию
func DefaultSelection(now time.Time) *Selection {
	return &Selection{
		FacilityName:           Facilities[0].Name,
		StateName:              StateOfTheDay(now),
		PovertyThreshold:       DefaultPovertyThreshold,
		UrbanDistanceThreshold: DefaultUrbanDistanceThreshold,
		RuralDistanceThreshold: DefaultRuralDistanceThreshold,
		ShowDeserts:            true,
		ShowFacilityLocations:  false,
		ShowVoronoiCells:       false,
	}
}

// Normalize приводит выбор к валидному состоянию: устаревшие ключи
// закрываются на значения по умолчанию, пороги зажимаются в диапазон
// и привязываются к сетке шага слайдера
func (s *Selection) Normalize(now time.Time) {
	if _, ok := FacilityByName(s.FacilityName); !ok {
		s.FacilityName = Facilities[0].Name
	}
	if _, ok := StateByName(s.StateName); !ok {
		s.StateName = StateOfTheDay(now)
	}

	s.PovertyThreshold = snapToStep(s.PovertyThreshold,
		MinPovertyThreshold, MaxPovertyThreshold, PovertyThresholdStep)
	s.UrbanDistanceThreshold = snapToStep(s.UrbanDistanceThreshold,
		MinUrbanDistanceThreshold, MaxUrbanDistanceThreshold, UrbanDistanceStep)
	s.RuralDistanceThreshold = snapToStep(s.RuralDistanceThreshold,
		MinRuralDistanceThreshold, MaxRuralDistanceThreshold, RuralDistanceStep)
}

// Facility возвращает дескриптор выбранного типа объекта
func (s *Selection) Facility() *Facility {
	f, _ := FacilityByName(s.FacilityName)
	return f
}

// State возвращает выбранный штат
func (s *Selection) State() USState {
	st, ok := StateByName(s.StateName)
	if !ok {
		st, _ = StateByName(InterestingStates[0])
	}
	return st
}

// Criteria строит критерии классификации из текущего выбора
func (s *Selection) Criteria() DesertCriteria {
	return DesertCriteria{
		PovertyThreshold:       s.PovertyThreshold,
		UrbanDistanceThreshold: s.UrbanDistanceThreshold,
		RuralDistanceThreshold: s.RuralDistanceThreshold,
		DistanceLabel:          s.Facility().DistanceLabel,
	}
}

// snapToStep зажимает значение в [min, max] и округляет к ближайшему шагу сетки
func snapToStep(v, min, max, step float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	steps := math.Round((v - min) / step)
	snapped := min + steps*step
	if snapped > max {
		snapped = max
	}
	return snapped
}
