package utils

import "math"

const earthRadiusMiles = 3958.8

// HaversineDistanceMiles вычисляет расстояние между двумя точками в милях
// (дистанции к объектам в данных тоже хранятся в милях)
func HaversineDistanceMiles(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := (lat2 - lat1) * math.Pi / 180.0
	dLon := (lon2 - lon1) * math.Pi / 180.0

	lat1Rad := lat1 * math.Pi / 180.0
	lat2Rad := lat2 * math.Pi / 180.0

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Sin(dLon/2)*math.Sin(dLon/2)*math.Cos(lat1Rad)*math.Cos(lat2Rad)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusMiles * c
}

// ValidateCoordinates проверяет валидность координат
func ValidateCoordinates(lat, lon float64) bool {
	return lat >= -90 && lat <= 90 && lon >= -180 && lon <= 180
}

// RoundPercent округляет долю до процента с двумя знаками (для текстов callout)
func RoundPercent(fraction float64) float64 {
	return math.Round(fraction*100*100) / 100
}
