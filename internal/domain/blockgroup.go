package domain

// Blockgroup - census blockgroup с предвычисленными расстояниями до объектов.
// Расстояния и классификация urban/rural считаются внешним пайплайном,
// сервис их только читает.
type Blockgroup struct {
	GEOID          string             `json:"geoid"`
	StateFIPS      string             `json:"state_fips"`
	Lat            float64            `json:"lat"`
	Lon            float64            `json:"lon"`
	RacialMajority RacialLabel        `json:"racial_majority"`
	PovertyRate    float64            `json:"poverty_rate"` // процент населения за чертой бедности, 0..100
	Urban          bool               `json:"urban"`
	Distances      map[string]float64 `json:"distances"` // мили, ключ = distance label
}

// DistanceTo возвращает расстояние до ближайшего объекта по distance label
func (b *Blockgroup) DistanceTo(label string) (float64, bool) {
	d, ok := b.Distances[label]
	return d, ok
}

// DesertCriteria - пороги классификации facility desert
type DesertCriteria struct {
	PovertyThreshold       float64 // процент, 0..100
	UrbanDistanceThreshold float64 // мили
	RuralDistanceThreshold float64 // мили
	DistanceLabel          string
}

// Matches проверяет, является ли blockgroup дефицитной зоной по критериям:
// уровень бедности выше порога И расстояние до ближайшего объекта больше
// порога для urban или rural соответственно
func (c DesertCriteria) Matches(bg *Blockgroup) bool {
	if bg.PovertyRate <= c.PovertyThreshold {
		return false
	}

	distance, ok := bg.DistanceTo(c.DistanceLabel)
	if !ok {
		// Нет данных о расстоянии - не классифицируем как desert
		return false
	}

	if bg.Urban {
		return distance > c.UrbanDistanceThreshold
	}
	return distance > c.RuralDistanceThreshold
}
