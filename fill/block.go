package fill

import (
	"fmt"

	"github.com/playwright-community/playwright-go"
)

// interactiveSelector matches the descendants that count against a
// question block's ceiling.
const interactiveSelector = "input, select, textarea, button, [role='radio'], [role='checkbox'], [role='combobox']"

// QuestionBlock finds the smallest container enclosing the first visible
// occurrence of question text. It climbs ancestors level by level from
// the text anchor and stops at the first level whose interactive-element
// count is at least one and at most ceiling. When no level within
// MaxClimb qualifies it returns nil rather than guessing with an
// oversized container.
func (e *Engine) QuestionBlock(question string, ceiling int) playwright.Locator {
	anchor := e.page.GetByText(question).First()
	err := anchor.WaitFor(playwright.LocatorWaitForOptions{
		State:   playwright.WaitForSelectorStateVisible,
		Timeout: playwright.Float(Millis(e.timing.Visible)),
	})
	if err != nil {
		return nil
	}

	counts := make([]int, 0, e.timing.MaxClimb)
	ancestors := make([]playwright.Locator, 0, e.timing.MaxClimb)
	for level := 1; level <= e.timing.MaxClimb; level++ {
		container := anchor.Locator(fmt.Sprintf("xpath=ancestor::*[%d]", level))
		count, err := container.Locator(interactiveSelector).Count()
		if err != nil {
			count = 0
		}
		counts = append(counts, count)
		ancestors = append(ancestors, container)
	}

	idx := firstWithinCeiling(counts, ceiling)
	if idx < 0 {
		return nil
	}
	return ancestors[idx]
}

// firstWithinCeiling picks the first ancestor level holding at least one
// interactive element without exceeding the ceiling. Counts are ordered
// nearest ancestor first. Returns -1 when no level qualifies.
func firstWithinCeiling(counts []int, ceiling int) int {
	for i, n := range counts {
		if n >= 1 && n <= ceiling {
			return i
		}
	}
	return -1
}
