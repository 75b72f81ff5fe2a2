// Package ashby fills application forms hosted on jobs.ashbyhq.com.
// Ashby renders ARIA comboboxes for select questions and button-pair
// Yes/No toggles whose only selected signal is client-side styling, so
// toggle verification reads computed background color.
package ashby

import (
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

type AshbyWorker struct {
	page   playwright.Page
	timing fill.Timing
	report *service.ReportService
}

func New(timing fill.Timing, report *service.ReportService) *AshbyWorker {
	return &AshbyWorker{timing: timing, report: report}
}

func (w *AshbyWorker) Platform() model.Platform {
	return model.PlatformAshby
}

func (w *AshbyWorker) SetPage(page playwright.Page) {
	w.page = page
}

// CanonicalURL appends /application to a posting URL so the page lands
// on the form tab instead of the overview tab.
func CanonicalURL(raw string) string {
	parsed, err := url.Parse(raw)
	if err != nil {
		return raw
	}
	path := strings.TrimRight(parsed.Path, "/")
	if strings.HasSuffix(path, "/application") {
		return raw
	}
	parsed.Path = path + "/application"
	parsed.Fragment = ""
	return parsed.String()
}

func (w *AshbyWorker) Apply(profile *model.Profile) error {
	if target := CanonicalURL(w.page.URL()); target != w.page.URL() {
		if _, err := w.page.Goto(target, playwright.PageGotoOptions{
			WaitUntil: playwright.WaitUntilStateDomcontentloaded,
		}); err != nil {
			log.WithField("platform", "ashby").WithError(err).Warn("route normalization failed")
		}
	}

	logger := log.WithField("platform", "ashby")
	engine := fill.NewEngine(w.page, w.timing, logger)
	if w.report != nil {
		engine.Observe(w.report.Observer(model.PlatformAshby, w.page.URL()))
	}

	w.fillIdentity(engine, profile)
	w.fillLinks(engine, profile)
	engine.UploadFile("resume", profile.ResumePath, locators.ASHBY_RESUME_INPUT)
	w.fillLocation(engine, profile)
	w.answerQuestions(engine, profile)
	w.fillDemographics(engine, profile)

	return nil
}

func (w *AshbyWorker) fillIdentity(engine *fill.Engine, profile *model.Profile) {
	name := profile.FullName
	if name == "" {
		first, last := normalize.SplitName(profile.FullName, profile.FirstName, profile.LastName)
		name = strings.TrimSpace(first + " " + last)
	}
	engine.FillText("name", name, locators.ASHBY_NAME)
	engine.FillText("email", profile.Email, locators.ASHBY_EMAIL)
	engine.FillText("phone", profile.Phone, locators.ASHBY_PHONE)
}

func (w *AshbyWorker) fillLinks(engine *fill.Engine, profile *model.Profile) {
	engine.FillText("linkedin", profile.LinkedIn, locators.ASHBY_LINKEDIN)

	website := profile.Portfolio
	if website == "" {
		website = profile.GitHub
	}
	engine.FillText("website", website, locators.ASHBY_WEBSITE)
}

func (w *AshbyWorker) fillLocation(engine *fill.Engine, profile *model.Profile) {
	candidates := append([]string{profile.Location}, normalize.StateCandidates(profile.Location)...)
	for _, candidate := range candidates {
		if candidate == "" {
			continue
		}
		outcome := engine.FillCombobox("location", candidate,
			locators.ASHBY_COMBOBOX_OPTIONS, locators.ASHBY_COMBOBOX_INPUT)
		if outcome.Ok() {
			return
		}
	}
}

// toggleProbe reads a toggle button's computed background color. Ashby
// applies a filled background to the selected half of the pair; an
// unselected button stays transparent or white.
func (w *AshbyWorker) toggleProbe(control playwright.Locator) (bool, bool) {
	result, err := control.Evaluate("el => getComputedStyle(el).backgroundColor", nil)
	if err != nil {
		return false, false
	}
	color, ok := result.(string)
	if !ok {
		return false, false
	}
	return isSelectedColor(color), true
}

// isSelectedColor reports whether a computed background color reads as
// a selected state rather than a neutral one.
func isSelectedColor(color string) bool {
	c := strings.ToLower(strings.ReplaceAll(color, " ", ""))
	switch c {
	case "", "transparent", "rgba(0,0,0,0)", "rgb(255,255,255)", "rgba(255,255,255,1)":
		return false
	}
	return strings.HasPrefix(c, "rgb")
}

// binaryQuestion pairs the phrasings a Yes/No question appears under
// with the answer the profile dictates.
type binaryQuestion struct {
	phrasings []string
	answer    string
}

// binaryQuestions lists every Yes/No toggle Ashby postings are known to
// render, in the order the forms usually show them.
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

func (w *AshbyWorker) answerQuestions(engine *fill.Engine, profile *model.Profile) {
	for _, q := range binaryQuestions(profile) {
		w.answerBinary(engine, q.phrasings, q.answer)
	}

	if profile.WorkStatus != "" {
		// Scoped to the question block so the location combobox higher up
		// the form is not re-targeted.
		block := engine.QuestionBlock("work authorization", engine.Timing().TextCeiling)
		if block != nil {
			input := block.Locator(locators.ASHBY_COMBOBOX_INPUT).First()
			engine.FillComboboxIn(input, "work authorization status",
				profile.WorkStatus, locators.ASHBY_COMBOBOX_OPTIONS)
		}
	}
	if profile.YearsExperience != "" {
		engine.SelectRadio("years of experience", profile.YearsExperience)
	}
}

func (w *AshbyWorker) answerBinary(engine *fill.Engine, phrasings []string, answer string) {
	for _, question := range phrasings {
		if engine.ResolveToggle(question, answer, w.toggleProbe).Ok() {
			return
		}
	}
}

func (w *AshbyWorker) fillDemographics(engine *fill.Engine, profile *model.Profile) {
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
	if demo.Hispanic != "" {
		hispanic := normalize.YesNo(demo.Hispanic, normalize.No)
		engine.ResolveToggle("hispanic or latino", hispanic, w.toggleProbe)
	}
	if demo.VeteranStatus != "" {
		engine.ClickVisibleOption("veteran status", normalize.VeteranStatus(demo.VeteranStatus))
	}
	if demo.DisabilityStatus != "" {
		engine.ClickVisibleOption("disability status", normalize.DisabilityStatus(demo.DisabilityStatus))
	}
}
