package fill

import (
	"strings"

	"github.com/playwright-community/playwright-go"
)

// FirstVisible evaluates selector predicates in order and returns the
// first whose target becomes visible within the timing window. A
// predicate that never shows up is not an error, just a reason to try
// the next one. Returns nil when nothing resolves.
func (e *Engine) FirstVisible(predicates ...string) playwright.Locator {
	for _, sel := range predicates {
		loc := e.page.Locator(sel).First()
		err := loc.WaitFor(playwright.LocatorWaitForOptions{
			State:   playwright.WaitForSelectorStateVisible,
			Timeout: playwright.Float(Millis(e.timing.Visible)),
		})
		if err == nil {
			return loc
		}
	}
	return nil
}

// ReadValue returns the current value of the first visible predicate
// match without mutating anything. The empty string doubles as "no such
// field" and "field empty"; callers that need the distinction use
// FirstVisible directly.
func (e *Engine) ReadValue(predicates ...string) string {
	loc := e.FirstVisible(predicates...)
	if loc == nil {
		return ""
	}
	value, err := loc.InputValue()
	if err != nil {
		return ""
	}
	return strings.TrimSpace(value)
}
