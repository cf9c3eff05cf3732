package domain

import "time"

// DesertSummary - предвычисленная сводка анализа для пары (штат, тип объекта)
// при порогах по умолчанию; кешируется воркером обновления
type DesertSummary struct {
	StateFIPS           string        `json:"state_fips"`
	FacilityName        string        `json:"facility_name"`
	TotalBlockgroups    int           `json:"total_blockgroups"`
	DesertBlockgroups   int           `json:"desert_blockgroups"`
	DemographicsAll     Demographics  `json:"demographics_all"`
	DemographicsDeserts Demographics  `json:"demographics_deserts"`
	AffectedGroups      []RacialLabel `json:"affected_groups"`
	ComputedAt          time.Time     `json:"computed_at"`
}
