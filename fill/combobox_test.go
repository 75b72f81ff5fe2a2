package fill

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyboardCommitConfirmed(t *testing.T) {
	tests := []struct {
		name    string
		typed   string
		current string
		want    bool
	}{
		{"suggestion expanded the typed text", "Austin", "Austin, Texas, United States", true},
		{"value unchanged means nothing committed", "Austin", "Austin", false},
		{"unchanged apart from case", "austin", "Austin", false},
		{"unchanged apart from whitespace", "Austin", "  Austin ", false},
		{"field cleared by the widget", "Austin", "", false},
		{"suggestion replaced the text entirely", "TX", "Texas", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, keyboardCommitConfirmed(tt.typed, tt.current))
		})
	}
}
