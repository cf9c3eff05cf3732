package domain

import "time"

// USState - штат США с кодом FIPS и аббревиатурой
type USState struct {
	Name         string `json:"name"`
	FIPS         string `json:"fips"`
	Abbreviation string `json:"abbreviation"`
}

// USStates - реестр штатов (50 штатов + DC + Пуэрто-Рико), в алфавитном порядке
var USStates = []USState{
	{Name: "Alabama", FIPS: "01", Abbreviation: "AL"},
	{Name: "Alaska", FIPS: "02", Abbreviation: "AK"},
	{Name: "Arizona", FIPS: "04", Abbreviation: "AZ"},
	{Name: "Arkansas", FIPS: "05", Abbreviation: "AR"},
	{Name: "California", FIPS: "06", Abbreviation: "CA"},
	{Name: "Colorado", FIPS: "08", Abbreviation: "CO"},
	{Name: "Connecticut", FIPS: "09", Abbreviation: "CT"},
	{Name: "Delaware", FIPS: "10", Abbreviation: "DE"},
	{Name: "District of Columbia", FIPS: "11", Abbreviation: "DC"},
	{Name: "Florida", FIPS: "12", Abbreviation: "FL"},
	{Name: "Georgia", FIPS: "13", Abbreviation: "GA"},
	{Name: "Hawaii", FIPS: "15", Abbreviation: "HI"},
	{Name: "Idaho", FIPS: "16", Abbreviation: "ID"},
	{Name: "Illinois", FIPS: "17", Abbreviation: "IL"},
	{Name: "Indiana", FIPS: "18", Abbreviation: "IN"},
	{Name: "Iowa", FIPS: "19", Abbreviation: "IA"},
	{Name: "Kansas", FIPS: "20", Abbreviation: "KS"},
	{Name: "Kentucky", FIPS: "21", Abbreviation: "KY"},
	{Name: "Louisiana", FIPS: "22", Abbreviation: "LA"},
	{Name: "Maine", FIPS: "23", Abbreviation: "ME"},
	{Name: "Maryland", FIPS: "24", Abbreviation: "MD"},
	{Name: "Massachusetts", FIPS: "25", Abbreviation: "MA"},
	{Name: "Michigan", FIPS: "26", Abbreviation: "MI"},
	{Name: "Minnesota", FIPS: "27", Abbreviation: "MN"},
	{Name: "Mississippi", FIPS: "28", Abbreviation: "MS"},
	{Name: "Missouri", FIPS: "29", Abbreviation: "MO"},
	{Name: "Montana", FIPS: "30", Abbreviation: "MT"},
	{Name: "Nebraska", FIPS: "31", Abbreviation: "NE"},
	{Name: "Nevada", FIPS: "32", Abbreviation: "NV"},
	{Name: "New Hampshire", FIPS: "33", Abbreviation: "NH"},
	{Name: "New Jersey", FIPS: "34", Abbreviation: "NJ"},
	{Name: "New Mexico", FIPS: "35", Abbreviation: "NM"},
	{Name: "New York", FIPS: "36", Abbreviation: "NY"},
	{Name: "North Carolina", FIPS: "37", Abbreviation: "NC"},
	{Name: "North Dakota", FIPS: "38", Abbreviation: "ND"},
	{Name: "Ohio", FIPS: "39", Abbreviation: "OH"},
	{Name: "Oklahoma", FIPS: "40", Abbreviation: "OK"},
	{Name: "Oregon", FIPS: "41", Abbreviation: "OR"},
	{Name: "Pennsylvania", FIPS: "42", Abbreviation: "PA"},
	{Name: "Puerto Rico", FIPS: "72", Abbreviation: "PR"},
	{Name: "Rhode Island", FIPS: "44", Abbreviation: "RI"},
	{Name: "South Carolina", FIPS: "45", Abbreviation: "SC"},
	{Name: "South Dakota", FIPS: "46", Abbreviation: "SD"},
	{Name: "Tennessee", FIPS: "47", Abbreviation: "TN"},
	{Name: "Texas", FIPS: "48", Abbreviation: "TX"},
	{Name: "Utah", FIPS: "49", Abbreviation: "UT"},
	{Name: "Vermont", FIPS: "50", Abbreviation: "VT"},
	{Name: "Virginia", FIPS: "51", Abbreviation: "VA"},
	{Name: "Washington", FIPS: "53", Abbreviation: "WA"},
	{Name: "West Virginia", FIPS: "54", Abbreviation: "WV"},
	{Name: "Wisconsin", FIPS: "55", Abbreviation: "WI"},
	{Name: "Wyoming", FIPS: "56", Abbreviation: "WY"},
}

// InterestingStates - отобранные штаты для "штата дня" на первом рендере сессии
var InterestingStates = []string{
	"Alabama",
	"Arizona",
	"California",
	"Colorado",
	"Florida",
	"Georgia",
	"Illinois",
	"Louisiana",
	"Michigan",
	"Mississippi",
	"Nevada",
	"New Mexico",
	"New York",
	"North Carolina",
	"Ohio",
	"Pennsylvania",
	"Texas",
	"Virginia",
	"Washington",
	"Wisconsin",
}

var statesByName = func() map[string]USState {
	m := make(map[string]USState, len(USStates))
	for _, s := range USStates {
		m[s.Name] = s
	}
	return m
}()

var statesByFIPS = func() map[string]USState {
	m := make(map[string]USState, len(USStates))
	for _, s := range USStates {
		m[s.FIPS] = s
	}
	return m
}()

// StateNames возвращает список названий штатов в порядке реестра
func StateNames() []string {
	names := make([]string, 0, len(USStates))
	for _, s := range USStates {
		names = append(names, s.Name)
	}
	return names
}

// StateByName ищет штат по названию
func StateByName(name string) (USState, bool) {
	s, ok := statesByName[name]
	return s, ok
}

// StateByFIPS ищет штат по коду FIPS
func StateByFIPS(fips string) (USState, bool) {
	s, ok := statesByFIPS[fips]
	return s, ok
}

// StateOfTheDay возвращает "штат дня": детерминированный выбор из
// InterestingStates по номеру дня в году
func StateOfTheDay(t time.Time) string {
	return InterestingStates[t.YearDay()%len(InterestingStates)]
}
