package domain

// RacialLabel - расово-этническая классификация большинства населения blockgroup
type RacialLabel string

const (
	RacialLabelWhite    RacialLabel = "white_alone"
	RacialLabelBlack    RacialLabel = "black_alone"
	RacialLabelAIAN     RacialLabel = "aian_alone"
	RacialLabelAsian    RacialLabel = "asian_alone"
	RacialLabelNHOPI    RacialLabel = "nhopi_alone"
	RacialLabelHispanic RacialLabel = "hispanic"
	RacialLabelOther    RacialLabel = "other"
)

// RacialLabels - канонический порядок меток; агрегаты и результаты анализа
// всегда итерируются в этом порядке, чтобы выдача была детерминированной
var RacialLabels = []RacialLabel{
	RacialLabelWhite,
	RacialLabelBlack,
	RacialLabelAIAN,
	RacialLabelAsian,
	RacialLabelNHOPI,
	RacialLabelHispanic,
	RacialLabelOther,
}

// legendLabels - подписи для легенды карты и диаграмм
var legendLabels = map[RacialLabel]string{
	RacialLabelWhite:    "Majority White",
	RacialLabelBlack:    "Majority Black",
	RacialLabelAIAN:     "Majority AIAN",
	RacialLabelAsian:    "Majority Asian",
	RacialLabelNHOPI:    "Majority NHOPI",
	RacialLabelHispanic: "Majority Hispanic",
	RacialLabelOther:    "Other",
}

// Valid проверяет, что метка входит в фиксированный набор
func (l RacialLabel) Valid() bool {
	_, ok := legendLabels[l]
	return ok
}

// Legend возвращает подпись для легенды
func (l RacialLabel) Legend() string {
	if legend, ok := legendLabels[l]; ok {
		return legend
	}
	return string(l)
}

// Demographics - агрегат: количество blockgroups по расовым меткам
type Demographics map[RacialLabel]int

// Total возвращает суммарное число blockgroups в агрегате
func (d Demographics) Total() int {
	total := 0
	for _, count := range d {
		total += count
	}
	return total
}

// Fraction возвращает долю метки в агрегате; 0 для пустого агрегата
func (d Demographics) Fraction(label RacialLabel) float64 {
	total := d.Total()
	if total == 0 {
		return 0
	}
	return float64(d[label]) / float64(total)
}
