package dto

// DesertAnalysisRequest - запрос на классификацию дефицитных зон штата
type DesertAnalysisRequest struct {
	StateName              string  `json:"state_name" validate:"required"`
	FacilityName           string  `json:"facility_name" validate:"required"`
	PovertyThreshold       float64 `json:"poverty_threshold" validate:"min=0,max=100"`
	UrbanDistanceThreshold float64 `json:"urban_distance_threshold" validate:"min=0,max=15"`
	RuralDistanceThreshold float64 `json:"rural_distance_threshold" validate:"min=0,max=30"`
}

// SelectionUpdateRequest - частичное обновление выбора сессии;
// nil-поле означает "без изменения", ровно как change callback одного виджета
type SelectionUpdateRequest struct {
	FacilityName           *string  `json:"facility_name,omitempty"`
	StateName              *string  `json:"state_name,omitempty"`
	PovertyThreshold       *float64 `json:"poverty_threshold,omitempty" validate:"omitempty,min=0,max=100"`
	UrbanDistanceThreshold *float64 `json:"urban_distance_threshold,omitempty" validate:"omitempty,min=0,max=15"`
	RuralDistanceThreshold *float64 `json:"rural_distance_threshold,omitempty" validate:"omitempty,min=0,max=30"`
	ShowDeserts            *bool    `json:"show_deserts,omitempty"`
	ShowFacilityLocations  *bool    `json:"show_facility_locations,omitempty"`
	ShowVoronoiCells       *bool    `json:"show_voronoi_cells,omitempty"`
}

// MapLayersRequest - запрос слоёв карты для текущего выбора
type MapLayersRequest struct {
	StateName              string  `json:"state_name" validate:"required"`
	FacilityName           string  `json:"facility_name" validate:"required"`
	PovertyThreshold       float64 `json:"poverty_threshold" validate:"min=0,max=100"`
	UrbanDistanceThreshold float64 `json:"urban_distance_threshold" validate:"min=0,max=15"`
	RuralDistanceThreshold float64 `json:"rural_distance_threshold" validate:"min=0,max=30"`
	ShowDeserts            bool    `json:"show_deserts"`
	ShowFacilityLocations  bool    `json:"show_facility_locations"`
	ShowVoronoiCells       bool    `json:"show_voronoi_cells"`
}

// SummaryRefreshRequest - запрос на пересчёт кешированных сводок штата
type SummaryRefreshRequest struct {
	StateFIPS     string   `json:"state_fips" validate:"required,len=2"`
	FacilityNames []string `json:"facility_names,omitempty"`
}
