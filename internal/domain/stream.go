package domain

import "github.com/google/uuid"

// Stream names (должны совпадать с пайплайном подготовки census-данных)
const (
	StreamCensusRefresh = "stream:census:refresh"
	StreamCensusDone    = "stream:census:done"
)

// CensusRefreshEvent - входящее событие: census-данные штата обновились,
// нужно пересчитать кешированные сводки
type CensusRefreshEvent struct {
	RequestID     uuid.UUID `json:"request_id"`
	StateFIPS     string    `json:"state_fips"`
	FacilityNames []string  `json:"facility_names,omitempty"` // пусто = все типы объектов
}

// Facilities возвращает дескрипторы типов объектов из события;
// неизвестные ключи пропускаются, пустой список означает весь реестр
func (e *CensusRefreshEvent) Facilities() []*Facility {
	if len(e.FacilityNames) == 0 {
		return Facilities
	}

	result := make([]*Facility, 0, len(e.FacilityNames))
	for _, name := range e.FacilityNames {
		if f, ok := FacilityByName(name); ok {
			result = append(result, f)
		}
	}
	if len(result) == 0 {
		return Facilities
	}
	return result
}

// CensusRefreshDoneEvent - результат пересчёта сводок
type CensusRefreshDoneEvent struct {
	RequestID uuid.UUID `json:"request_id"`
	StateFIPS string    `json:"state_fips"`
	Summaries int       `json:"summaries"`
	Error     string    `json:"error,omitempty"`
}

// StreamMessage - сообщение из Redis Stream
type StreamMessage struct {
	ID   string
	Data string
}
