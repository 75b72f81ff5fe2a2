package lever

import (
	"testing"

	"github.com/stretchr/testify/assert"

	locators "github.com/sudharsan-ak/job-autopilot/Locators"
	"github.com/sudharsan-ak/job-autopilot/model"
	"github.com/sudharsan-ak/job-autopilot/normalize"
)

func TestCanonicalURL(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			"posting gains apply segment",
			"https://jobs.lever.co/acme/11111111-2222-3333-4444-555555555555",
			"https://jobs.lever.co/acme/11111111-2222-3333-4444-555555555555/apply",
		},
		{
			"trailing slash is collapsed",
			"https://jobs.lever.co/acme/11111111-2222-3333-4444-555555555555/",
			"https://jobs.lever.co/acme/11111111-2222-3333-4444-555555555555/apply",
		},
		{
			"already canonical is untouched",
			"https://jobs.lever.co/acme/11111111-2222-3333-4444-555555555555/apply",
			"https://jobs.lever.co/acme/11111111-2222-3333-4444-555555555555/apply",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanonicalURL(tt.in))
		})
	}
}

func TestRewriteShoutingName(t *testing.T) {
	tests := []struct {
		name    string
		current string
		want    string
		wantOK  bool
	}{
		{"parsed shouting name is rewritten", "JANE DOE", "Jane Doe", true},
		{"already mixed case is untouched", "Jane Doe", "", false},
		{"single token is untouched", "JANE", "", false},
		{"empty field is untouched", "", "", false},
		{"hyphen and apostrophe survive", "ANNA-MARIA O'NEIL", "Anna-Maria O'Neil", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := rewriteShoutingName(tt.current)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBinaryQuestionsCoverKnownSet(t *testing.T) {
	profile := &model.Profile{
		AuthorizedToWork: "yes",
		NeedsSponsorship: "no",
		IsVeteran:        "no",
		DefaultAnswer:    "no",
	}

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

	answer, found = answerFor("excited about working")
	assert.True(t, found, "office-excitement question missing from the set")
	assert.Equal(t, normalize.Yes, answer)

	answer, found = answerFor("authorized to work")
	assert.True(t, found)
	assert.Equal(t, normalize.Yes, answer)
}

func TestHiddenLocationScriptTargetsHiddenField(t *testing.T) {
	script := hiddenLocationScript()

	assert.Contains(t, script, locators.LEVER_LOCATION_HIDDEN)
	assert.Contains(t, script, "dispatchEvent")
	assert.Contains(t, script, "change")
}
