package fill

import (
	"fmt"
	"time"

	"github.com/playwright-community/playwright-go"
	log "github.com/sirupsen/logrus"
)

// Engine binds one page, one timing profile, and one adapter invocation's
// bookkeeping. It is created at the start of an adapter run and discarded
// at the end; nothing in it survives across pages.
type Engine struct {
	page   playwright.Page
	timing Timing
	log    *log.Entry

	// answered tracks question blocks this invocation has already
	// resolved, keyed by question text plus on-screen position, so a
	// re-rendered duplicate of an answered question is not answered twice.
	answered map[string]bool

	// observers receive every Outcome the engine emits.
	observers []func(Outcome)
}

func NewEngine(page playwright.Page, timing Timing, logger *log.Entry) *Engine {
	if logger == nil {
		logger = log.NewEntry(log.StandardLogger())
	}
	return &Engine{
		page:     page,
		timing:   timing,
		log:      logger,
		answered: make(map[string]bool),
	}
}

func (e *Engine) Page() playwright.Page { return e.page }

func (e *Engine) Timing() Timing { return e.timing }

// Observe registers a callback that sees every Outcome. The report
// service uses this to buffer rows without the resolvers knowing about it.
func (e *Engine) Observe(fn func(Outcome)) {
	e.observers = append(e.observers, fn)
}

// Report logs an outcome at the level its status deserves and fans it
// out to observers, then hands it back to the caller. Adapters use it
// for outcomes they construct themselves so diagnostics stay complete.
func (e *Engine) Report(o Outcome) Outcome {
	entry := e.log.WithField("field", o.Field)
	if o.Reason != "" {
		entry = entry.WithField("reason", o.Reason)
	}
	switch o.Status {
	case StatusFilled:
		entry.Info("field filled")
	case StatusSkipped:
		entry.Debug("field skipped")
	case StatusNotFound:
		entry.Debug("field not found")
	case StatusFailed:
		entry.Warn("field interaction failed")
	case StatusUnverified:
		entry.Warn("field state unverified after action")
	}
	for _, fn := range e.observers {
		fn(o)
	}
	return o
}

// settle pauses long enough for client-side re-renders to catch up.
func (e *Engine) settle() {
	time.Sleep(e.timing.Settle)
}

// blockKey snapshots a question's identity as text plus rounded position.
// Position disambiguates repeated question text (two "Yes/No" sections
// with the same phrasing at different spots on the page).
func (e *Engine) blockKey(question string, anchor playwright.Locator) string {
	box, err := anchor.BoundingBox()
	if err != nil || box == nil {
		return question
	}
	return fmt.Sprintf("%s@%d,%d", question, int(box.X), int(box.Y))
}

func (e *Engine) markAnswered(key string) { e.answered[key] = true }

func (e *Engine) alreadyAnswered(key string) bool { return e.answered[key] }
