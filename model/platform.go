package model

import (
	"net/url"
	"strings"
)

// Platform identifies one supported ATS vendor.
type Platform string

const (
	PlatformGreenhouse Platform = "greenhouse"
	PlatformLever      Platform = "lever"
	PlatformAshby      Platform = "ashby"
)

// DetectPlatform maps an application URL onto a supported platform by
// hostname. The second return is false for unrecognized hosts; those pages
// are never handed to a worker.
func DetectPlatform(rawURL string) (Platform, bool) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return "", false
	}

	host := strings.ToLower(parsed.Hostname())
	host = strings.TrimPrefix(host, "www.")

	switch {
	case host == "boards.greenhouse.io" || strings.HasSuffix(host, ".greenhouse.io"):
		return PlatformGreenhouse, true
	case host == "jobs.lever.co" || strings.HasSuffix(host, ".lever.co"):
		return PlatformLever, true
	case host == "jobs.ashbyhq.com" || strings.HasSuffix(host, ".ashbyhq.com"):
		return PlatformAshby, true
	}

	return "", false
}
