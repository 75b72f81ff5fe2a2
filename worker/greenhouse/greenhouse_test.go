package greenhouse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalURL(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			"posting gains application anchor",
			"https://boards.greenhouse.io/acme/jobs/4000000001",
			"https://boards.greenhouse.io/acme/jobs/4000000001#application",
		},
		{
			"already anchored is untouched",
			"https://boards.greenhouse.io/acme/jobs/4000000001#application",
			"https://boards.greenhouse.io/acme/jobs/4000000001#application",
		},
		{
			"legacy app anchor is kept",
			"https://boards.greenhouse.io/acme/jobs/4000000001#app",
			"https://boards.greenhouse.io/acme/jobs/4000000001#app",
		},
		{
			"query string survives",
			"https://boards.greenhouse.io/acme/jobs/4000000001?gh_src=abc",
			"https://boards.greenhouse.io/acme/jobs/4000000001?gh_src=abc#application",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanonicalURL(tt.in))
		})
	}
}
