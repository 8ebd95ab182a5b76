package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAirportCodes(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"turkish spelling", "İstanbul", []string{"IST", "SAW"}},
		{"ascii spelling", "istanbul", []string{"IST", "SAW"}},
		{"uppercase ascii", "ISTANBUL", []string{"IST", "SAW"}},
		{"city inside a phrase", "İstanbul Avrupa", []string{"IST", "SAW"}},
		{"single airport city", "Ankara", []string{"ESB"}},
		{"dotless i input", "izmir", []string{"ADB"}},
		{"direct iata code", "IST", []string{"IST"}},
		{"lowercase iata code", "esb", []string{"ESB"}},
		{"unknown city", "Atlantis", nil},
		{"empty input", "", nil},
		{"whitespace only", "   ", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AirportCodes(tt.input))
		})
	}
}

func TestAirportInfo(t *testing.T) {
	a, ok := AirportInfo("saw")
	assert.True(t, ok)
	assert.Equal(t, "Sabiha Gökçen Havalimanı", a.Name)
	assert.Equal(t, "İstanbul", a.City)

	_, ok = AirportInfo("XXX")
	assert.False(t, ok)
}

func TestKnownCities(t *testing.T) {
	names := KnownCities()
	assert.Len(t, names, 7)
	assert.Equal(t, "İstanbul", names[0])
}
