// Package greenhouse fills application forms hosted on
// boards.greenhouse.io. Greenhouse renders custom select widgets that
// open a popup option list on click, so most question answers go
// through the popup resolver rather than native selects.
package greenhouse

import (
	"net/url"

	"github.com/playwright-community/playwright-go"
	log "github.com/sirupsen/logrus"

	locators "github.com/sudharsan-ak/job-autopilot/Locators"
	"github.com/sudharsan-ak/job-autopilot/fill"
	"github.com/sudharsan-ak/job-autopilot/model"
	"github.com/sudharsan-ak/job-autopilot/normalize"
	"github.com/sudharsan-ak/job-autopilot/service"
)

type GreenhouseWorker struct {
	page   playwright.Page
	timing fill.Timing
	report *service.ReportService
}

func New(timing fill.Timing, report *service.ReportService) *GreenhouseWorker {
	return &GreenhouseWorker{timing: timing, report: report}
}

func (w *GreenhouseWorker) Platform() model.Platform {
	return model.PlatformGreenhouse
}

func (w *GreenhouseWorker) SetPage(page playwright.Page) {
	w.page = page
}

// CanonicalURL forces a posting URL onto its application anchor so the
// form section is rendered and scrolled into view.
func CanonicalURL(raw string) string {
	parsed, err := url.Parse(raw)
	if err != nil {
		return raw
	}
	if parsed.Fragment == "application" || parsed.Fragment == "app" {
		return raw
	}
	parsed.Fragment = "application"
	return parsed.String()
}

// Apply runs the fixed fill sequence top to bottom. Every step is
// independent; a field that cannot be resolved is logged and skipped.
func (w *GreenhouseWorker) Apply(profile *model.Profile) error {
	if target := CanonicalURL(w.page.URL()); target != w.page.URL() {
		if _, err := w.page.Goto(target, playwright.PageGotoOptions{
			WaitUntil: playwright.WaitUntilStateDomcontentloaded,
		}); err != nil {
			log.WithField("platform", "greenhouse").WithError(err).Warn("route normalization failed")
		}
	}

	logger := log.WithField("platform", "greenhouse")
	engine := fill.NewEngine(w.page, w.timing, logger)
	if w.report != nil {
		engine.Observe(w.report.Observer(model.PlatformGreenhouse, w.page.URL()))
	}

	w.fillIdentity(engine, profile)
	w.fillLinks(engine, profile)
	engine.UploadFile("resume", profile.ResumePath)
	w.fillLocation(engine, profile)
	w.fillWorkStatus(engine, profile)
	w.answerBinaryQuestions(engine, profile)
	w.answerExperience(engine, profile)
	w.fillDemographics(engine, profile)

	return nil
}

func (w *GreenhouseWorker) fillIdentity(engine *fill.Engine, profile *model.Profile) {
	first, last := normalize.SplitName(profile.FullName, profile.FirstName, profile.LastName)
	engine.FillText("first name", first, locators.GH_FIRST_NAME)
	engine.FillText("last name", last, locators.GH_LAST_NAME)
	engine.FillText("email", profile.Email, locators.GH_EMAIL)
	engine.FillText("phone", profile.Phone, locators.GH_PHONE)
}

func (w *GreenhouseWorker) fillLinks(engine *fill.Engine, profile *model.Profile) {
	engine.FillText("linkedin", profile.LinkedIn, locators.GH_LINKEDIN)

	website := profile.Portfolio
	if website == "" {
		website = profile.GitHub
	}
	engine.FillText("website", website, locators.GH_WEBSITE)
}

// fillLocation drives the location typeahead, trying the full location
// string first and the extracted state forms after it.
func (w *GreenhouseWorker) fillLocation(engine *fill.Engine, profile *model.Profile) {
	candidates := append([]string{profile.Location}, normalize.StateCandidates(profile.Location)...)
	for _, candidate := range candidates {
		if candidate == "" {
			continue
		}
		outcome := engine.FillCombobox("location", candidate, locators.GH_OPTION_LIST, locators.GH_LOCATION_INPUT)
		if outcome.Ok() {
			return
		}
	}
}

func (w *GreenhouseWorker) fillWorkStatus(engine *fill.Engine, profile *model.Profile) {
	if profile.WorkStatus == "" {
		return
	}
	for _, question := range []string{
		"work authorization status",
		"what is your current work authorization",
		"employment eligibility",
	} {
		if w.answerPopupQuestion(engine, question, profile.WorkStatus).Ok() {
			return
		}
	}
}

// answerPopupQuestion resolves a question block and picks the answer
// from the custom select popup inside it.
func (w *GreenhouseWorker) answerPopupQuestion(engine *fill.Engine, question, answer string) fill.Outcome {
	block := engine.QuestionBlock(question, engine.Timing().TextCeiling)
	if block == nil {
		return engine.Report(fill.NotFound("popup: "+question, "no question block"))
	}
	return engine.SelectPopupIn(block, "popup: "+question, answer,
		locators.GH_SELECT_CONTROL, locators.GH_SELECT_OPTIONS)
}

// answerBinaryQuestions walks the known Yes/No questions. Greenhouse
// renders them as popup selects; the toggle resolver covers postings
// that use radio groups instead.
func (w *GreenhouseWorker) answerBinaryQuestions(engine *fill.Engine, profile *model.Profile) {
	def := normalize.YesNo(profile.DefaultAnswer, normalize.No)

	w.answerBinary(engine,
		[]string{"legally authorized to work", "authorized to work in"},
		normalize.YesNo(profile.AuthorizedToWork, normalize.Yes))
	w.answerBinary(engine,
		[]string{"require sponsorship", "need sponsorship", "visa sponsorship"},
		normalize.YesNo(profile.NeedsSponsorship, def))
	w.answerBinary(engine,
		[]string{"in the future require sponsorship", "future require"},
		normalize.YesNo(profile.NeedsSponsorshipFuture, def))
	w.answerBinary(engine,
		[]string{"able to commute", "willing to relocate", "commute to this"},
		normalize.YesNo(profile.CanCommute, def))
	w.answerBinary(engine,
		[]string{"are you a veteran"},
		normalize.YesNo(profile.IsVeteran, normalize.No))
	// Office-excitement questions vary per posting; first phrasing that
	// resolves wins and the rest are skipped.
	w.answerBinary(engine,
		[]string{"excited about working", "excited about this opportunity", "excited to work"},
		normalize.Yes)
}

func (w *GreenhouseWorker) answerBinary(engine *fill.Engine, phrasings []string, answer string) {
	for _, question := range phrasings {
		if w.answerPopupQuestion(engine, question, answer).Ok() {
			return
		}
		if engine.ResolveToggle(question, answer, nil).Ok() {
			return
		}
	}
}

func (w *GreenhouseWorker) answerExperience(engine *fill.Engine, profile *model.Profile) {
	if profile.YearsExperience == "" {
		return
	}
	engine.SelectRadio("years of experience", profile.YearsExperience)
}

// fillDemographics answers the voluntary self-identification section
// when the posting collects it and the profile opted in.
func (w *GreenhouseWorker) fillDemographics(engine *fill.Engine, profile *model.Profile) {
	demo := profile.Demographics
	if demo == nil {
		return
	}
	if engine.FirstVisible(locators.GH_DEMOGRAPHIC_SECTION) == nil {
		return
	}

	w.answerPopupQuestion(engine, "gender", normalize.Gender(demo.Gender))
	w.answerPopupQuestion(engine, "veteran status", normalize.VeteranStatus(demo.VeteranStatus))
	w.answerPopupQuestion(engine, "disability status", normalize.DisabilityStatus(demo.DisabilityStatus))

	if demo.Hispanic != "" {
		hispanic := normalize.YesNo(demo.Hispanic, normalize.No)
		w.answerPopupQuestion(engine, "hispanic or latino", hispanic)
	}
	if demo.Race != "" {
		engine.ClickVisibleOption("race", demo.Race)
	}
}
