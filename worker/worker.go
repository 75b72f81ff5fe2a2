// Package worker holds the per-platform form fillers and the browser
// session plumbing they share.
package worker

import (
	"github.com/playwright-community/playwright-go"

	"github.com/sudharsan-ak/job-autopilot/model"
)

// Filler is one platform's application-form autofiller. Apply runs a
// best-effort top-to-bottom pass and returns only when the whole pass is
// done; individual field failures are reported through the fill engine,
// never as errors. The page must already be navigated to (or one route
// hop away from) the platform's application form.
type Filler interface {
	Platform() model.Platform
	SetPage(page playwright.Page)
	Apply(profile *model.Profile) error
}
