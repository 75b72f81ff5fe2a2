package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGender(t *testing.T) {
	assert.Equal(t, "Male", Gender("m"))
	assert.Equal(t, "Female", Gender("Female"))
	assert.Equal(t, "Non-binary", Gender("non binary"))
	assert.Equal(t, "Decline to self identify", Gender("prefer not to say"))
	assert.Equal(t, "Agender", Gender("Agender"))
}

func TestVeteranStatus(t *testing.T) {
	assert.Equal(t, "I am not a protected veteran", VeteranStatus("no"))
	assert.Equal(t,
		"I identify as one or more of the classifications of a protected veteran",
		VeteranStatus("Yes"))
	assert.Equal(t, "I don't wish to answer", VeteranStatus("decline"))
	assert.Equal(t, "something else", VeteranStatus("something else"))
}

func TestDisabilityStatus(t *testing.T) {
	assert.Equal(t, "No, I do not have a disability", DisabilityStatus("No"))
	assert.Equal(t, "Yes, I have a disability", DisabilityStatus("yes"))
	assert.Equal(t, "I do not want to answer", DisabilityStatus("prefer not to say"))
}
