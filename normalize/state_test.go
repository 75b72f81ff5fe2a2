package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCityState(t *testing.T) {
	city, state := CityState("Austin, Texas")
	assert.Equal(t, "Austin", city)
	assert.Equal(t, "Texas", state)

	city, state = CityState("Remote")
	assert.Equal(t, "Remote", city)
	assert.Equal(t, "", state)

	city, state = CityState("Brooklyn, New York, USA")
	assert.Equal(t, "Brooklyn", city)
	assert.Equal(t, "New York, USA", state)
}

func TestStateCandidates(t *testing.T) {
	tests := []struct {
		name     string
		location string
		want     []string
	}{
		{"full state name yields both forms", "Austin, Texas", []string{"Texas", "TX"}},
		{"abbreviation stays as written", "Austin, TX", []string{"TX"}},
		{"two-word state", "Newark, New Jersey", []string{"New Jersey", "NJ"}},
		{"case-insensitive lookup", "austin, texas", []string{"texas", "TX"}},
		{"no comma yields nothing", "Austin", nil},
		{"empty location", "", nil},
		{"unknown region passes through", "Toronto, Ontario", []string{"Ontario"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StateCandidates(tt.location))
		})
	}
}
