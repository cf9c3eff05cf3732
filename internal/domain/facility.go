package domain

// Facility - дескриптор типа критического объекта инфраструктуры
type Facility struct {
	// Name - внутренний ключ (используется в distance-колонках и URL)
	Name string `json:"name"`
	// DisplayName - отображаемое название
	DisplayName string `json:"display_name"`
	// Type - тип объекта в нижнем регистре ("pharmacy", "hospital", ...)
	Type string `json:"type"`
	// DistanceLabel - имя колонки с расстоянием до ближайшего объекта (мили)
	DistanceLabel string `json:"distance_label"`
	// Message - пояснение для пользователя (markdown)
	Message string `json:"message"`
}

// PharmacyGroupName - внутренний ключ сводной группы трёх аптечных сетей
const PharmacyGroupName = "top_3_pharmacy_chains"

var (
	CVS = &Facility{
		Name:          "cvs",
		DisplayName:   "CVS",
		Type:          "pharmacy",
		DistanceLabel: "closest_distance_cvs",
	}
	Walgreens = &Facility{
		Name:          "walgreens",
		DisplayName:   "Walgreens",
		Type:          "pharmacy",
		DistanceLabel: "closest_distance_walgreens",
	}
	Walmart = &Facility{
		Name:          "walmart",
		DisplayName:   "Walmart",
		Type:          "pharmacy",
		DistanceLabel: "closest_distance_walmart",
	}

	PharmaciesTop3 = &Facility{
		Name:          PharmacyGroupName,
		DisplayName:   "Pharmacy chains",
		Type:          "pharmacy",
		DistanceLabel: "closest_distance_top_3_pharmacy_chains",
		Message: "Pharmacy deserts are based on distances to the three largest pharmacy chains " +
			"(CVS, Walgreens and Walmart), which together make up a majority of pharmacies in the US.",
	}
	UrgentCare = &Facility{
		Name:          "urgent_care",
		DisplayName:   "Urgent care centers",
		Type:          "urgent care",
		DistanceLabel: "closest_distance_urgent_care",
		Message: "Urgent care deserts are based on distances to urgent care centers " +
			"registered with the US Department of Homeland Security.",
	}
	Hospitals = &Facility{
		Name:          "hospitals",
		DisplayName:   "Hospitals",
		Type:          "hospital",
		DistanceLabel: "closest_distance_hospitals",
		Message: "Hospital deserts are based on distances to hospitals " +
			"registered with the US Department of Homeland Security.",
	}
	NursingHomes = &Facility{
		Name:          "nursing_homes",
		DisplayName:   "Nursing homes",
		Type:          "nursing home",
		DistanceLabel: "closest_distance_nursing_homes",
		Message: "Nursing home deserts are based on distances to nursing homes " +
			"registered with the US Department of Homeland Security.",
	}
	PrivateSchools = &Facility{
		Name:          "private_schools",
		DisplayName:   "Private schools",
		Type:          "school",
		DistanceLabel: "closest_distance_private_schools",
		Message: "School deserts are based on distances to private schools " +
			"listed by the National Center for Education Statistics.",
	}
	FDICInsuredBanks = &Facility{
		Name:          "fdic_insured_banks",
		DisplayName:   "Banks",
		Type:          "bank",
		DistanceLabel: "closest_distance_fdic_insured_banks",
		Message: "Banking deserts are based on distances to branches of FDIC-insured banks.",
	}
	ChildCare = &Facility{
		Name:          "child_care",
		DisplayName:   "Child care centers",
		Type:          "child care",
		DistanceLabel: "closest_distance_child_care",
		Message: "Child care deserts are based on distances to licensed child care centers.",
	}
)

// Facilities - реестр типов объектов, доступных для анализа (порядок = порядок в селекторе)
var Facilities = []*Facility{
	PharmaciesTop3,
	UrgentCare,
	Hospitals,
	NursingHomes,
	PrivateSchools,
	FDICInsuredBanks,
	ChildCare,
}

// pharmacyChains - сводная группа разворачивается в отдельные сети для слоя локаций
var pharmacyChains = []*Facility{CVS, Walgreens, Walmart}

// FacilityByName ищет дескриптор по внутреннему ключу.
// Устаревший или неизвестный ключ закрывается на первый элемент реестра (fail closed).
func FacilityByName(name string) (*Facility, bool) {
	for _, f := range Facilities {
		if f.Name == name {
			return f, true
		}
	}
	return Facilities[0], false
}

// FacilityByDisplayName ищет дескриптор по отображаемому названию
func FacilityByDisplayName(displayName string) (*Facility, bool) {
	for _, f := range Facilities {
		if f.DisplayName == displayName {
			return f, true
		}
	}
	return Facilities[0], false
}

// LocationFacilities возвращает дескрипторы, по которым рисуются маркеры локаций:
// сводная группа аптек разворачивается в три отдельные сети
func (f *Facility) LocationFacilities() []*Facility {
	if f.Name == PharmacyGroupName {
		return pharmacyChains
	}
	return []*Facility{f}
}

// FacilityLocation - конкретная точка расположения объекта
type FacilityLocation struct {
	ID           int64   `json:"id" db:"id"`
	FacilityName string  `json:"facility_name" db:"facility_name"`
	Name         string  `json:"name" db:"name"`
	Lat          float64 `json:"lat" db:"lat"`
	Lon          float64 `json:"lon" db:"lon"`
}
