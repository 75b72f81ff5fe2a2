package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectPlatform(t *testing.T) {
	tests := []struct {
		name   string
		url    string
		want   Platform
		wantOK bool
	}{
		{"greenhouse board", "https://boards.greenhouse.io/acme/jobs/4000000001", PlatformGreenhouse, true},
		{"greenhouse subdomain", "https://job-boards.greenhouse.io/acme/jobs/1", PlatformGreenhouse, true},
		{"lever posting", "https://jobs.lever.co/acme/abc", PlatformLever, true},
		{"ashby posting", "https://jobs.ashbyhq.com/acme/abc", PlatformAshby, true},
		{"www prefix stripped", "https://www.jobs.lever.co/acme/abc", PlatformLever, true},
		{"unknown host", "https://careers.example.com/jobs/1", "", false},
		{"lookalike host rejected", "https://jobs.lever.co.evil.com/acme", "", false},
		{"unparseable", "://not-a-url", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := DetectPlatform(tt.url)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
