// Package lever fills application forms hosted on jobs.lever.co. Lever
// parses an uploaded résumé and autofills identity fields natively, so
// the worker uploads first, then decides whether anything is left for it
// to do.
package lever

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/playwright-community/playwright-go"
	log "github.com/sirupsen/logrus"

	locators "github.com/sudharsan-ak/job-autopilot/Locators"
	"github.com/sudharsan-ak/job-autopilot/fill"
	"github.com/sudharsan-ak/job-autopilot/model"
	"github.com/sudharsan-ak/job-autopilot/normalize"
	"github.com/sudharsan-ak/job-autopilot/service"
)

// ErrAlreadyAutofilled signals that Lever's résumé parsing populated the
// form before this worker touched it. The caller may skip the page
// without treating it as a failure.
var ErrAlreadyAutofilled = errors.New("lever: form already autofilled by platform")

type LeverWorker struct {
	page   playwright.Page
	timing fill.Timing
	report *service.ReportService
}

func New(timing fill.Timing, report *service.ReportService) *LeverWorker {
	return &LeverWorker{timing: timing, report: report}
}

func (w *LeverWorker) Platform() model.Platform {
	return model.PlatformLever
}

func (w *LeverWorker) SetPage(page playwright.Page) {
	w.page = page
}

// CanonicalURL appends /apply to a posting URL so the form, not the job
// description, is the landing view.
func CanonicalURL(raw string) string {
	parsed, err := url.Parse(raw)
	if err != nil {
		return raw
	}
	path := strings.TrimRight(parsed.Path, "/")
	if strings.HasSuffix(path, "/apply") {
		return raw
	}
	parsed.Path = path + "/apply"
	parsed.Fragment = ""
	return parsed.String()
}

func (w *LeverWorker) Apply(profile *model.Profile) error {
	if target := CanonicalURL(w.page.URL()); target != w.page.URL() {
		if _, err := w.page.Goto(target, playwright.PageGotoOptions{
			WaitUntil: playwright.WaitUntilStateDomcontentloaded,
		}); err != nil {
			log.WithField("platform", "lever").WithError(err).Warn("route normalization failed")
		}
	}

	logger := log.WithField("platform", "lever")
	engine := fill.NewEngine(w.page, w.timing, logger)
	if w.report != nil {
		engine.Observe(w.report.Observer(model.PlatformLever, w.page.URL()))
	}

	// Upload before anything else; Lever parses the file and fills the
	// identity section itself.
	engine.UploadFile("resume", profile.ResumePath, locators.LEVER_RESUME_INPUT)

	if w.platformAutofilled(engine) {
		w.fixShoutingName(engine)
		logger.Info("platform autofill detected, leaving form as parsed")
		return ErrAlreadyAutofilled
	}

	w.fillIdentity(engine, profile)
	w.fillLinks(engine, profile)
	w.fillLocation(engine, profile)
	w.answerQuestions(engine, profile)

	return nil
}

// platformAutofilled reports whether résumé parsing already populated
// the name field. The parse is asynchronous; when the upload-success
// marker appears the name field gets a second read.
func (w *LeverWorker) platformAutofilled(engine *fill.Engine) bool {
	if engine.ReadValue(locators.LEVER_FULL_NAME) != "" {
		return true
	}
	if engine.FirstVisible(locators.LEVER_RESUME_SUCCESS) == nil {
		return false
	}
	return engine.ReadValue(locators.LEVER_FULL_NAME) != ""
}

// fixShoutingName rewrites an all-capitals parsed name into mixed case.
// This is the one forced overwrite in the whole system.
func (w *LeverWorker) fixShoutingName(engine *fill.Engine) {
	current := engine.ReadValue(locators.LEVER_FULL_NAME)
	if fixed, ok := rewriteShoutingName(current); ok {
		engine.ForceFillText("full name", fixed, locators.LEVER_FULL_NAME)
	}
}

// rewriteShoutingName decides whether a parsed name needs the forced
// overwrite and what to write. Only a strict all-capitals multi-word
// name qualifies; everything else is left exactly as parsed.
func rewriteShoutingName(current string) (string, bool) {
	if !normalize.IsAllCapsName(current) {
		return "", false
	}
	return normalize.ProperCase(current), true
}

func (w *LeverWorker) fillIdentity(engine *fill.Engine, profile *model.Profile) {
	name := profile.FullName
	if name == "" {
		first, last := normalize.SplitName(profile.FullName, profile.FirstName, profile.LastName)
		name = strings.TrimSpace(first + " " + last)
	}
	engine.FillText("full name", name, locators.LEVER_FULL_NAME)
	engine.FillText("email", profile.Email, locators.LEVER_EMAIL)
	engine.FillText("phone", profile.Phone, locators.LEVER_PHONE)
}

func (w *LeverWorker) fillLinks(engine *fill.Engine, profile *model.Profile) {
	engine.FillText("linkedin", profile.LinkedIn, locators.LEVER_LINKEDIN)
	engine.FillText("github", profile.GitHub, locators.LEVER_GITHUB)
	engine.FillText("portfolio", profile.Portfolio, locators.LEVER_PORTFOLIO)
}

// fillLocation drives Lever's location typeahead. Selecting a dropdown
// result writes the paired hidden field; when no dropdown result can be
// clicked the worker injects both the visible value and the hidden
// field directly, because the visible input alone does not register.
func (w *LeverWorker) fillLocation(engine *fill.Engine, profile *model.Profile) {
	if profile.Location == "" {
		return
	}

	outcome := engine.FillCombobox("location", profile.Location,
		locators.LEVER_LOCATION_OPTIONS, locators.LEVER_LOCATION_INPUT)
	if outcome.Ok() {
		return
	}

	w.injectLocation(engine, profile.Location)
}

func (w *LeverWorker) injectLocation(engine *fill.Engine, location string) {
	input := engine.FirstVisible(locators.LEVER_LOCATION_INPUT)
	if input == nil {
		return
	}
	if err := input.Fill(location); err != nil {
		return
	}
	if _, err := w.page.Evaluate(hiddenLocationScript(), location); err != nil {
		log.WithField("platform", "lever").WithError(err).Warn("hidden location injection failed")
	}
}

// hiddenLocationScript writes the paired hidden field the form submit
// actually reads, then fires change so Lever's own listeners notice.
func hiddenLocationScript() string {
	return fmt.Sprintf(`(value) => {
		const hidden = document.querySelector(%q);
		if (hidden) {
			hidden.value = value;
			hidden.dispatchEvent(new Event('change', { bubbles: true }));
		}
	}`, locators.LEVER_LOCATION_HIDDEN)
}

// binaryQuestion pairs the phrasings a Yes/No question appears under
// with the answer the profile dictates.
type binaryQuestion struct {
	phrasings []string
	answer    string
}

// binaryQuestions lists every Yes/No question Lever postings are known
// to ask, in the order the forms usually render them.
func binaryQuestions(profile *model.Profile) []binaryQuestion {
	def := normalize.YesNo(profile.DefaultAnswer, normalize.No)

	return []binaryQuestion{
		{[]string{"authorized to work", "legally authorized"},
			normalize.YesNo(profile.AuthorizedToWork, normalize.Yes)},
		{[]string{"require sponsorship", "need sponsorship", "visa sponsorship"},
			normalize.YesNo(profile.NeedsSponsorship, def)},
		{[]string{"in the future require sponsorship", "future require"},
			normalize.YesNo(profile.NeedsSponsorshipFuture, def)},
		{[]string{"able to commute", "willing to relocate"},
			normalize.YesNo(profile.CanCommute, def)},
		{[]string{"are you a veteran"},
			normalize.YesNo(profile.IsVeteran, normalize.No)},
		{[]string{"excited about working", "excited about this opportunity", "excited to work"},
			normalize.Yes},
	}
}

// answerQuestions resolves Lever's custom question cards, which render
// as radio or checkbox lists.
func (w *LeverWorker) answerQuestions(engine *fill.Engine, profile *model.Profile) {
	for _, q := range binaryQuestions(profile) {
		w.answerBinary(engine, q.phrasings, q.answer)
	}

	if profile.WorkStatus != "" {
		engine.SelectRadio("work authorization status", profile.WorkStatus)
	}
	if profile.YearsExperience != "" {
		engine.SelectRadio("years of experience", profile.YearsExperience)
	}

	w.fillDemographics(engine, profile)
}

func (w *LeverWorker) answerBinary(engine *fill.Engine, phrasings []string, answer string) {
	for _, question := range phrasings {
		if engine.ResolveToggle(question, answer, nil).Ok() {
			return
		}
	}
}

func (w *LeverWorker) fillDemographics(engine *fill.Engine, profile *model.Profile) {
	demo := profile.Demographics
	if demo == nil {
		return
	}

	if demo.Gender != "" {
		engine.ClickVisibleOption("gender", normalize.Gender(demo.Gender))
	}
	if demo.Race != "" {
		engine.ClickVisibleOption("race", demo.Race)
	}
	if demo.VeteranStatus != "" {
		engine.ClickVisibleOption("veteran status", normalize.VeteranStatus(demo.VeteranStatus))
	}
	if demo.DisabilityStatus != "" {
		engine.ClickVisibleOption("disability status", normalize.DisabilityStatus(demo.DisabilityStatus))
	}
}
