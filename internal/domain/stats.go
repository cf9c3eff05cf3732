package domain

import "time"

// Statistics - агрегированная статистика по загруженным данным
type Statistics struct {
	Census      CensusStats   `json:"census"`
	Facilities  FacilityStats `json:"facilities"`
	Coverage    CoverageStats `json:"coverage"`
	LastUpdated time.Time     `json:"last_updated"`
	DataVersion string        `json:"data_version"`
}

// CensusStats статистика по census blockgroups
type CensusStats struct {
	TotalBlockgroups int            `json:"total_blockgroups"`
	ByState          map[string]int `json:"by_state"` // ключ = FIPS
	UrbanBlockgroups int            `json:"urban_blockgroups"`
	RuralBlockgroups int            `json:"rural_blockgroups"`
}

// FacilityStats статистика по локациям объектов
type FacilityStats struct {
	TotalLocations int            `json:"total_locations"`
	ByFacility     map[string]int `json:"by_facility"`
}

// CoverageStats покрытие территории загруженными данными
type CoverageStats struct {
	BBoxMinLat    float64 `json:"bbox_min_lat"`
	BBoxMaxLat    float64 `json:"bbox_max_lat"`
	BBoxMinLon    float64 `json:"bbox_min_lon"`
	BBoxMaxLon    float64 `json:"bbox_max_lon"`
	DiagonalMiles float64 `json:"diagonal_miles"`
	States        int     `json:"states"`
}
