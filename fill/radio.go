package fill

import (
	"regexp"

	"github.com/playwright-community/playwright-go"
)

// exactText builds a case-insensitive whole-text matcher for option
// labels, tolerating surrounding whitespace.
func exactText(text string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)^\s*` + regexp.QuoteMeta(text) + `\s*$`)
}

// SelectRadio answers a radio-group question: resolve the block under
// the radio ceiling, then click the option whose label matches the
// answer exactly, falling back to substring containment.
func (e *Engine) SelectRadio(question, answer string) Outcome {
	field := "radio: " + question

	anchor := e.page.GetByText(question).First()
	key := e.blockKey(question, anchor)
	if e.alreadyAnswered(key) {
		return e.Report(Skipped(field, "question already answered this pass"))
	}

	block := e.QuestionBlock(question, e.timing.RadioCeiling)
	if block == nil {
		return e.Report(NotFound(field, "no question block"))
	}
	return e.SelectRadioIn(block, field, answer, key)
}

// SelectRadioIn clicks the matching option label inside an already
// resolved block. Exact match wins over substring; the first visible hit
// of the winning tier is clicked.
func (e *Engine) SelectRadioIn(block playwright.Locator, field, answer, key string) Outcome {
	labels := block.Locator("label, [role='radio']")

	option := labels.Filter(playwright.LocatorFilterOptions{HasText: exactText(answer)}).First()
	count, err := option.Count()
	if err != nil || count == 0 {
		option = labels.Filter(playwright.LocatorFilterOptions{HasText: answer}).First()
		count, err = option.Count()
		if err != nil || count == 0 {
			return e.Report(NotFound(field, "no option label matched"))
		}
	}

	if err := option.Click(); err != nil {
		return e.Report(Failed(field, "click: "+err.Error()))
	}
	e.markAnswered(key)
	return e.Report(Filled(field))
}
