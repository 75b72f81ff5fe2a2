package fill

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOutcomeOk(t *testing.T) {
	assert.True(t, Filled("email").Ok())
	assert.True(t, Skipped("email", "already populated").Ok())
	assert.False(t, NotFound("email", "").Ok())
	assert.False(t, Failed("email", "click raised").Ok())
	assert.False(t, Unverified("toggle: sponsorship", "state mismatch").Ok())
}

func TestExactText(t *testing.T) {
	re := exactText("Yes")
	assert.True(t, re.MatchString("Yes"))
	assert.True(t, re.MatchString("  yes "))
	assert.False(t, re.MatchString("Yes, I do"))

	re = exactText("C++ (3+ years)")
	assert.True(t, re.MatchString("C++ (3+ years)"))
	assert.False(t, re.MatchString("C"))
}

func TestTimingProfiles(t *testing.T) {
	def, slow := DefaultTiming(), SlowTiming()
	assert.Greater(t, slow.Visible, def.Visible)
	assert.Greater(t, slow.Options, def.Options)
	assert.Equal(t, def.TextCeiling, slow.TextCeiling)
	assert.Equal(t, def.RadioCeiling, slow.RadioCeiling)
	assert.Equal(t, def.MaxClimb, slow.MaxClimb)
	assert.Equal(t, float64(2000), Millis(def.Visible))
}
