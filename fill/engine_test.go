package fill

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReportFansOutToObservers(t *testing.T) {
	engine := NewEngine(nil, DefaultTiming(), nil)

	var seen []Outcome
	engine.Observe(func(o Outcome) { seen = append(seen, o) })

	engine.Report(Filled("email"))
	engine.Report(NotFound("popup: gender", "no question block"))

	assert.Len(t, seen, 2)
	assert.Equal(t, "email", seen[0].Field)
	assert.Equal(t, StatusFilled, seen[0].Status)
	assert.Equal(t, "popup: gender", seen[1].Field)
	assert.Equal(t, StatusNotFound, seen[1].Status)
	assert.Equal(t, "no question block", seen[1].Reason)
}
