package dto

import (
	"github.com/google/uuid"
	"github.com/paulmach/orb/geojson"

	"github.com/deserts-microservice/internal/domain"
)

// FacilityInfo - дескриптор типа объекта для клиента
type FacilityInfo struct {
	Name          string `json:"name"`
	DisplayName   string `json:"display_name"`
	Type          string `json:"type"`
	DistanceLabel string `json:"distance_label"`
	Message       string `json:"message,omitempty"`
}

// StatesResponse - реестр штатов и "штат дня"
type StatesResponse struct {
	States        []domain.USState `json:"states"`
	StateOfTheDay string           `json:"state_of_the_day"`
}

// DemographicSlice - одна полоса stacked bar диаграммы
type DemographicSlice struct {
	Label    string  `json:"label"`
	Legend   string  `json:"legend"`
	Count    int     `json:"count"`
	Fraction float64 `json:"fraction"`
}

// ImpactCallout - группа, непропорционально затронутая дефицитом
type ImpactCallout struct {
	Label          string  `json:"label"`
	Legend         string  `json:"legend"`
	PercentAll     float64 `json:"percent_all"`
	PercentDeserts float64 `json:"percent_deserts"`
	Message        string  `json:"message"`
}

// DesertAnalysisResponse - результат классификации и демографического анализа
type DesertAnalysisResponse struct {
	State               domain.USState     `json:"state"`
	Facility            FacilityInfo       `json:"facility"`
	TotalBlockgroups    int                `json:"total_blockgroups"`
	DesertBlockgroups   int                `json:"desert_blockgroups"`
	DemographicsAll     []DemographicSlice `json:"demographics_all"`
	DemographicsDeserts []DemographicSlice `json:"demographics_deserts"`
	AffectedGroups      []ImpactCallout    `json:"affected_groups"`
}

// FacilityLayer - маркеры локаций одного типа объектов (или одной аптечной сети)
type FacilityLayer struct {
	FacilityName string                     `json:"facility_name"`
	DisplayName  string                     `json:"display_name"`
	Locations    *geojson.FeatureCollection `json:"locations"`
}

// MapLayersResponse - слои карты для текущего выбора
type MapLayersResponse struct {
	Bounds       *domain.BoundingBox        `json:"bounds"`
	Blockgroups  *geojson.FeatureCollection `json:"blockgroups,omitempty"`
	Facilities   []FacilityLayer            `json:"facilities,omitempty"`
	VoronoiCells *geojson.FeatureCollection `json:"voronoi_cells,omitempty"`
}

// NavigationLink - переход на другую страницу хостящего дашборда
type NavigationLink struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

// DashboardResponse - полная view-модель одного рендера дашборда
type DashboardResponse struct {
	SessionID     string                  `json:"session_id"`
	Selection     *domain.Selection       `json:"selection"`
	Title         string                  `json:"title"`
	Subtitle      string                  `json:"subtitle"`
	Message       string                  `json:"message,omitempty"`
	TotalCaption  string                  `json:"total_caption"`
	DesertCaption string                  `json:"desert_caption"`
	Analysis      *DesertAnalysisResponse `json:"analysis"`
	Map           *MapLayersResponse      `json:"map"`
	Navigation    []NavigationLink        `json:"navigation"`
}

// SummaryRefreshResponse - подтверждение постановки пересчёта в очередь
type SummaryRefreshResponse struct {
	RequestID uuid.UUID `json:"request_id"`
	StateFIPS string    `json:"state_fips"`
}
