package fill

import (
	"github.com/playwright-community/playwright-go"
)

// StateProbe reports whether a toggle control currently shows as
// selected. ok is false when the control cannot report its own state,
// which downgrades verification to a no-op. Platforms whose toggles have
// no inspectable selected signal pass a nil probe.
type StateProbe func(control playwright.Locator) (selected bool, ok bool)

// ResolveToggle answers a binary Yes/No question. It locates the block
// holding both controls, reads current state through the probe when one
// is available, clicks only when the desired answer is not already
// selected, and re-checks state afterward. A verification mismatch is a
// warning, never a retry. When no toggle pair exists the question is
// retried as a radio group with the answer text as the option label.
func (e *Engine) ResolveToggle(question, answer string, probe StateProbe) Outcome {
	field := "toggle: " + question

	anchor := e.page.GetByText(question).First()
	key := e.blockKey(question, anchor)
	if e.alreadyAnswered(key) {
		return e.Report(Skipped(field, "question already answered this pass"))
	}

	block := e.QuestionBlock(question, e.timing.TextCeiling)
	if block == nil {
		return e.Report(NotFound(field, "no question block"))
	}

	desired := e.toggleControl(block, answer)
	other := e.toggleControl(block, oppositeAnswer(answer))
	if desired == nil {
		// No toggle pair; the question may render as a radio group.
		return e.SelectRadioIn(block, field, answer, key)
	}

	verify := false
	if probe != nil {
		selected, desiredReadable := probe(desired)
		if desiredReadable && selected {
			e.markAnswered(key)
			return e.Report(Skipped(field, "answer already selected"))
		}
		siblingReadable := false
		if other != nil {
			_, siblingReadable = probe(other)
		}
		verify = shouldVerify(desiredReadable, siblingReadable)
	}

	if err := desired.Click(); err != nil {
		return e.Report(Failed(field, "click: "+err.Error()))
	}
	e.markAnswered(key)

	if !verify {
		return e.Report(Filled(field))
	}
	e.settle()
	if selected, ok := probe(desired); ok && !selected {
		// One more check after a second settle; styling can lag the click.
		e.settle()
		if selected, ok = probe(desired); ok && !selected {
			return e.Report(Unverified(field, "control does not show selected after click"))
		}
	}
	return e.Report(Filled(field))
}

// toggleControl finds a clickable control inside the block whose whole
// text is the answer and nothing else.
func (e *Engine) toggleControl(block playwright.Locator, answer string) playwright.Locator {
	control := block.Locator("button, label, [role='radio']").
		Filter(playwright.LocatorFilterOptions{HasText: exactText(answer)}).
		First()
	count, err := control.Count()
	if err != nil || count == 0 {
		return nil
	}
	return control
}

func oppositeAnswer(answer string) string {
	if answer == "Yes" {
		return "No"
	}
	return "Yes"
}

// shouldVerify reports whether a post-click state check can succeed.
// Verification needs at least one control whose state the probe can
// read; when neither is readable the click stands on its own.
func shouldVerify(desiredReadable, siblingReadable bool) bool {
	return desiredReadable || siblingReadable
}
