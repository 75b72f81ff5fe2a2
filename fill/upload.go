package fill

// UploadFile attaches a file to the page. Preferred selectors, when
// given, are tried first; after that every file input on the page is
// tried in document order until one accepts the path. Platforms often
// render several hidden file inputs for unrelated purposes (cover
// letters, additional documents), so a rejection just moves on to the
// next input.
func (e *Engine) UploadFile(field, path string, preferred ...string) Outcome {
	if path == "" {
		return e.Report(Skipped(field, "no file path"))
	}

	for _, sel := range preferred {
		input := e.page.Locator(sel).First()
		if count, err := input.Count(); err != nil || count == 0 {
			continue
		}
		if err := input.SetInputFiles([]string{path}); err != nil {
			continue
		}
		e.settle()
		return e.Report(Filled(field))
	}

	inputs := e.page.Locator("input[type='file']")
	count, err := inputs.Count()
	if err != nil || count == 0 {
		return e.Report(NotFound(field, "no file inputs on page"))
	}

	var lastErr error
	for i := 0; i < count; i++ {
		if err := inputs.Nth(i).SetInputFiles([]string{path}); err != nil {
			lastErr = err
			continue
		}
		e.settle()
		return e.Report(Filled(field))
	}
	return e.Report(Failed(field, "no file input accepted the path: "+lastErr.Error()))
}
