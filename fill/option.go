package fill

import (
	"github.com/playwright-community/playwright-go"
)

// ClickVisibleOption searches the whole document for a clickable element
// matching one of the candidate phrasings and clicks the first visible
// hit. Exact text wins over substring within each candidate; candidates
// are tried in order and the search stops at the first success. Used for
// demographic tile UIs that share no stable container.
func (e *Engine) ClickVisibleOption(field string, candidates ...string) Outcome {
	for _, text := range candidates {
		if text == "" {
			continue
		}
		if e.clickFirstVisible(e.page.GetByText(text, playwright.PageGetByTextOptions{
			Exact: playwright.Bool(true),
		})) {
			return e.Report(Filled(field))
		}
		if e.clickFirstVisible(e.page.GetByText(text)) {
			return e.Report(Filled(field))
		}
	}
	return e.Report(NotFound(field, "no candidate phrasing rendered"))
}

// clickFirstVisible walks the matches and clicks the first one that is
// actually visible. Hidden template copies of option text are common.
func (e *Engine) clickFirstVisible(matches playwright.Locator) bool {
	all, err := matches.All()
	if err != nil {
		return false
	}
	for _, m := range all {
		visible, err := m.IsVisible()
		if err != nil || !visible {
			continue
		}
		if err := m.Click(); err == nil {
			return true
		}
	}
	return false
}
