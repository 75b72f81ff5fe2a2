package fill

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShouldVerify(t *testing.T) {
	tests := []struct {
		name            string
		desiredReadable bool
		siblingReadable bool
		want            bool
	}{
		{"both readable", true, true, true},
		{"only desired readable", true, false, true},
		{"only sibling readable", false, true, true},
		{"neither readable skips verification", false, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, shouldVerify(tt.desiredReadable, tt.siblingReadable))
		})
	}
}

func TestOppositeAnswer(t *testing.T) {
	assert.Equal(t, "No", oppositeAnswer("Yes"))
	assert.Equal(t, "Yes", oppositeAnswer("No"))
}
