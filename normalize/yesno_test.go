package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestYesNo(t *testing.T) {
	tests := []struct {
		name   string
		answer string
		def    string
		want   string
	}{
		{"plain yes", "yes", No, Yes},
		{"plain no", "no", Yes, No},
		{"capitalized", "Yes", No, Yes},
		{"single letter y", "y", No, Yes},
		{"single letter n", "N", Yes, No},
		{"yeah counts as yes", "yeah", No, Yes},
		{"nope counts as no", "nope", Yes, No},
		{"empty falls back to default", "", No, No},
		{"whitespace falls back to default", "   ", Yes, Yes},
		{"unrecognized falls back to default", "maybe", No, No},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, YesNo(tt.answer, tt.def))
		})
	}
}

func TestIsYes(t *testing.T) {
	assert.True(t, IsYes("yes", No))
	assert.True(t, IsYes("", Yes))
	assert.False(t, IsYes("no", Yes))
	assert.False(t, IsYes("", No))
}
