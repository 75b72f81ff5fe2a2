package fill

import (
	"strings"

	"github.com/playwright-community/playwright-go"
)

// FillCombobox drives a typeahead input: focus, clear, type the value
// once, wait for the option list, then walk a strict fallback chain.
// Tier 1 clicks an option whose text contains the value, tier 2 takes
// the first rendered option, tier 3 sends ArrowDown+Enter to accept the
// keyboard-highlighted suggestion. Each tier runs only after the prior
// found nothing. If every tier fails the input is cleared and the menu
// dismissed so the field is never left typed but unconfirmed.
func (e *Engine) FillCombobox(field, value, optionList string, predicates ...string) Outcome {
	if value == "" {
		return e.Report(Skipped(field, "no profile value"))
	}

	input := e.FirstVisible(predicates...)
	if input == nil {
		return e.Report(NotFound(field, "no visible combobox input"))
	}
	return e.selectFromTypeahead(field, value, optionList, input)
}

// FillComboboxIn is FillCombobox with the input already located, for
// adapters that resolve the input inside a question block first.
func (e *Engine) FillComboboxIn(input playwright.Locator, field, value, optionList string) Outcome {
	if value == "" {
		return e.Report(Skipped(field, "no profile value"))
	}
	if input == nil {
		return e.Report(NotFound(field, "no combobox input"))
	}
	return e.selectFromTypeahead(field, value, optionList, input)
}

func (e *Engine) selectFromTypeahead(field, value, optionList string, input playwright.Locator) Outcome {
	if err := input.Click(); err != nil {
		return e.Report(Failed(field, "focus: "+err.Error()))
	}
	if err := input.Clear(); err != nil {
		return e.Report(Failed(field, "clear: "+err.Error()))
	}
	if err := input.PressSequentially(value, playwright.LocatorPressSequentiallyOptions{
		Delay: playwright.Float(30),
	}); err != nil {
		return e.Report(Failed(field, "type: "+err.Error()))
	}
	e.settle()

	options := e.page.Locator(optionList)
	err := options.First().WaitFor(playwright.LocatorWaitForOptions{
		State:   playwright.WaitForSelectorStateVisible,
		Timeout: playwright.Float(Millis(e.timing.Options)),
	})
	if err == nil {
		// Tier 1: option text containing the typed value.
		exact := options.Filter(playwright.LocatorFilterOptions{HasText: value}).First()
		if count, err := exact.Count(); err == nil && count > 0 {
			if err := exact.Click(); err == nil {
				return e.Report(Filled(field))
			}
		}
		// Tier 2: first rendered option.
		if err := options.First().Click(); err == nil {
			return e.Report(Filled(field))
		}
	}

	// Tier 3: accept the keyboard-highlighted suggestion.
	if err := input.Press("ArrowDown"); err == nil {
		if err := input.Press("Enter"); err == nil {
			if current, err := input.InputValue(); err == nil && keyboardCommitConfirmed(value, current) {
				return e.Report(Filled(field))
			}
		}
	}

	// Leave the field exactly as found.
	input.Clear()
	input.Press("Escape")
	return e.Report(Failed(field, "no option accepted the typed value"))
}

// keyboardCommitConfirmed reports whether the input's value after the
// ArrowDown+Enter sequence shows a committed selection. The input still
// holding exactly the text this resolver just typed is indistinguishable
// from no option list having rendered at all, so that case counts as
// unconfirmed and falls through to the cleanup.
func keyboardCommitConfirmed(typed, current string) bool {
	current = strings.TrimSpace(current)
	if current == "" {
		return false
	}
	return !strings.EqualFold(current, strings.TrimSpace(typed))
}
