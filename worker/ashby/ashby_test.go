package ashby

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sudharsan-ak/job-autopilot/model"
	"github.com/sudharsan-ak/job-autopilot/normalize"
)

func TestCanonicalURL(t *testing.T) {
	assert.Equal(t,
		"https://jobs.ashbyhq.com/acme/66666666-7777-8888-9999-000000000000/application",
		CanonicalURL("https://jobs.ashbyhq.com/acme/66666666-7777-8888-9999-000000000000"))
	assert.Equal(t,
		"https://jobs.ashbyhq.com/acme/66666666-7777-8888-9999-000000000000/application",
		CanonicalURL("https://jobs.ashbyhq.com/acme/66666666-7777-8888-9999-000000000000/application"))
}

func TestIsSelectedColor(t *testing.T) {
	tests := []struct {
		color string
		want  bool
	}{
		{"rgb(59, 130, 246)", true},
		{"rgba(59, 130, 246, 1)", true},
		{"rgba(0, 0, 0, 0)", false},
		{"transparent", false},
		{"rgb(255, 255, 255)", false},
		{"rgba(255, 255, 255, 1)", false},
		{"", false},
		{"none", false},
	}
	for _, tt := range tests {
		t.Run(tt.color, func(t *testing.T) {
			assert.Equal(t, tt.want, isSelectedColor(tt.color))
		})
	}
}

func TestBinaryQuestionsCoverKnownSet(t *testing.T) {
	profile := &model.Profile{DefaultAnswer: "no", IsVeteran: "no"}

	questions := binaryQuestions(profile)

	answerFor := func(phrasing string) (string, bool) {
		for _, q := range questions {
			for _, p := range q.phrasings {
				if p == phrasing {
					return q.answer, true
				}
			}
		}
		return "", false
	}

	answer, found := answerFor("are you a veteran")
	assert.True(t, found, "veteran question missing from the set")
	assert.Equal(t, normalize.No, answer)

	answer, found = answerFor("excited about this opportunity")
	assert.True(t, found, "office-excitement question missing from the set")
	assert.Equal(t, normalize.Yes, answer)
}
