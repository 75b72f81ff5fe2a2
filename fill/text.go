package fill

import (
	"strings"

	"github.com/playwright-community/playwright-go"
)

// FillText fills the first visible predicate match with value, but only
// when the field is currently empty. Re-running never overwrites a
// human- or platform-populated value.
func (e *Engine) FillText(field, value string, predicates ...string) Outcome {
	return e.fillText(field, value, false, predicates...)
}

// ForceFillText overwrites whatever the field holds. The only documented
// use is rewriting an all-capitals autofilled name into mixed case; new
// callers should reach for FillText.
func (e *Engine) ForceFillText(field, value string, predicates ...string) Outcome {
	return e.fillText(field, value, true, predicates...)
}

func (e *Engine) fillText(field, value string, force bool, predicates ...string) Outcome {
	if value == "" {
		return e.Report(Skipped(field, "no profile value"))
	}

	loc := e.FirstVisible(predicates...)
	if loc == nil {
		return e.Report(NotFound(field, "no visible input matched"))
	}

	current, err := loc.InputValue()
	if err == nil && strings.TrimSpace(current) != "" && !force {
		return e.Report(Skipped(field, "already populated"))
	}

	if force {
		if err := loc.Clear(); err != nil {
			return e.Report(Failed(field, "clear: "+err.Error()))
		}
	}
	if err := loc.Fill(value); err != nil {
		return e.Report(Failed(field, "fill: "+err.Error()))
	}
	return e.Report(Filled(field))
}

// FillTextIn is FillText scoped to a container instead of the page.
func (e *Engine) FillTextIn(scope playwright.Locator, field, value string, predicates ...string) Outcome {
	if value == "" {
		return e.Report(Skipped(field, "no profile value"))
	}

	var loc playwright.Locator
	for _, sel := range predicates {
		candidate := scope.Locator(sel).First()
		err := candidate.WaitFor(playwright.LocatorWaitForOptions{
			State:   playwright.WaitForSelectorStateVisible,
			Timeout: playwright.Float(Millis(e.timing.Visible)),
		})
		if err == nil {
			loc = candidate
			break
		}
	}
	if loc == nil {
		return e.Report(NotFound(field, "no visible input in block"))
	}

	current, err := loc.InputValue()
	if err == nil && strings.TrimSpace(current) != "" {
		return e.Report(Skipped(field, "already populated"))
	}
	if err := loc.Fill(value); err != nil {
		return e.Report(Failed(field, "fill: "+err.Error()))
	}
	return e.Report(Filled(field))
}
