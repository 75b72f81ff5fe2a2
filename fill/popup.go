package fill

import (
	"github.com/playwright-community/playwright-go"
)

// SelectPopup drives a custom select widget that opens an option popup
// on click rather than on typing. The chain is: exact option text, then
// substring, then the first rendered option. Escape dismisses the popup
// when nothing matched so the widget is not left open.
func (e *Engine) SelectPopup(field, value, optionList string, controlPredicates ...string) Outcome {
	control := e.FirstVisible(controlPredicates...)
	if control == nil {
		return e.Report(NotFound(field, "no visible select control"))
	}
	return e.selectFromPopup(field, value, optionList, control)
}

// SelectPopupIn is SelectPopup with the control resolved inside a
// question block.
func (e *Engine) SelectPopupIn(block playwright.Locator, field, value, controlSelector, optionList string) Outcome {
	control := block.Locator(controlSelector).First()
	err := control.WaitFor(playwright.LocatorWaitForOptions{
		State:   playwright.WaitForSelectorStateVisible,
		Timeout: playwright.Float(Millis(e.timing.Visible)),
	})
	if err != nil {
		return e.Report(NotFound(field, "no select control in block"))
	}
	return e.selectFromPopup(field, value, optionList, control)
}

func (e *Engine) selectFromPopup(field, value, optionList string, control playwright.Locator) Outcome {
	if value == "" {
		return e.Report(Skipped(field, "no profile value"))
	}

	if err := control.Click(); err != nil {
		return e.Report(Failed(field, "open popup: "+err.Error()))
	}

	options := e.page.Locator(optionList)
	err := options.First().WaitFor(playwright.LocatorWaitForOptions{
		State:   playwright.WaitForSelectorStateVisible,
		Timeout: playwright.Float(Millis(e.timing.Options)),
	})
	if err != nil {
		e.page.Keyboard().Press("Escape")
		return e.Report(NotFound(field, "popup never rendered options"))
	}

	exact := options.Filter(playwright.LocatorFilterOptions{HasText: exactText(value)}).First()
	if count, err := exact.Count(); err == nil && count > 0 {
		if err := exact.Click(); err == nil {
			return e.Report(Filled(field))
		}
	}

	contains := options.Filter(playwright.LocatorFilterOptions{HasText: value}).First()
	if count, err := contains.Count(); err == nil && count > 0 {
		if err := contains.Click(); err == nil {
			return e.Report(Filled(field))
		}
	}

	if err := options.First().Click(); err == nil {
		return e.Report(Filled(field))
	}

	e.page.Keyboard().Press("Escape")
	return e.Report(Failed(field, "no popup option accepted the click"))
}
