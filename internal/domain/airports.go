package domain

import "strings"

// Airport holds descriptive information about an airport.
type Airport struct {
	Code    string `json:"code"`
	Name    string `json:"name"`
	City    string `json:"city"`
	Country string `json:"country"`
}

// city is one entry of the supported domestic city table.
type city struct {
	name  string
	codes []string
}

// cities is the fixed table of supported Turkish cities. Order matters:
// lookups resolve to the first matching city.
var cities = []city{
	{"İstanbul", []string{"IST", "SAW"}},
	{"Ankara", []string{"ESB"}},
	{"İzmir", []string{"ADB"}},
	{"Antalya", []string{"AYT"}},
	{"Adana", []string{"ADA"}},
	{"Trabzon", []string{"TZX"}},
	{"Gaziantep", []string{"GZT"}},
}

// airports maps IATA codes to airport details.
var airports = map[string]Airport{
	"IST": {Code: "IST", Name: "İstanbul Havalimanı", City: "İstanbul", Country: "Türkiye"},
	"SAW": {Code: "SAW", Name: "Sabiha Gökçen Havalimanı", City: "İstanbul", Country: "Türkiye"},
	"ESB": {Code: "ESB", Name: "Esenboğa Havalimanı", City: "Ankara", Country: "Türkiye"},
	"ADB": {Code: "ADB", Name: "Adnan Menderes Havalimanı", City: "İzmir", Country: "Türkiye"},
	"AYT": {Code: "AYT", Name: "Antalya Havalimanı", City: "Antalya", Country: "Türkiye"},
	"ADA": {Code: "ADA", Name: "Şakirpaşa Havalimanı", City: "Adana", Country: "Türkiye"},
	"TZX": {Code: "TZX", Name: "Trabzon Havalimanı", City: "Trabzon", Country: "Türkiye"},
	"GZT": {Code: "GZT", Name: "Gaziantep Havalimanı", City: "Gaziantep", Country: "Türkiye"},
}

// AirportCodes resolves a city name or IATA code to a list of airport codes.
// City matching is case-insensitive, tolerant of Turkish/ASCII spelling
// ("Istanbul" matches "İstanbul") and accepts longer phrases containing the
// city name. Unknown input returns nil.
func AirportCodes(cityOrCode string) []string {
	trimmed := strings.TrimSpace(cityOrCode)
	if trimmed == "" {
		return nil
	}

	// Direct IATA code
	if _, ok := airports[strings.ToUpper(trimmed)]; ok {
		return []string{strings.ToUpper(trimmed)}
	}

	folded := foldTurkish(trimmed)
	for _, c := range cities {
		if strings.Contains(folded, foldTurkish(c.name)) {
			return c.codes
		}
	}
	return nil
}

// AirportInfo returns the airport details for an IATA code.
func AirportInfo(code string) (Airport, bool) {
	a, ok := airports[strings.ToUpper(strings.TrimSpace(code))]
	return a, ok
}

// KnownCities returns the supported city names in table order.
func KnownCities() []string {
	names := make([]string, len(cities))
	for i, c := range cities {
		names[i] = c.name
	}
	return names
}

// turkishFolding maps Turkish-specific letters to ASCII so that city lookups
// work regardless of keyboard layout. strings.ToLower alone is not enough:
// lowering "İ" produces "i" plus a combining dot.
var turkishFolding = map[rune]rune{
	'İ': 'i', 'I': 'i', 'ı': 'i',
	'Ş': 's', 'ş': 's',
	'Ğ': 'g', 'ğ': 'g',
	'Ü': 'u', 'ü': 'u',
	'Ö': 'o', 'ö': 'o',
	'Ç': 'c', 'ç': 'c',
	0x0307: -1, // combining dot above, dropped
}

// foldTurkish lowercases a string while collapsing Turkish letters to their
// ASCII equivalents.
func foldTurkish(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range strings.ToLower(s) {
		if mapped, ok := turkishFolding[r]; ok {
			if mapped == -1 {
				continue
			}
			r = mapped
		}
		b.WriteRune(r)
	}
	return b.String()
}
