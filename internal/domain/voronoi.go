package domain

import "github.com/paulmach/orb"

// VoronoiCell - ячейка Вороного вокруг локации объекта.
// Геометрия строится внешним пайплайном и хранится как GeoJSON,
// сервис только отдаёт её как слой карты.
type VoronoiCell struct {
	ID           int64       `json:"id"`
	FacilityName string      `json:"facility_name"`
	StateFIPS    string      `json:"state_fips"`
	LocationName string      `json:"location_name"`
	Geometry     orb.Polygon `json:"-"`
}
