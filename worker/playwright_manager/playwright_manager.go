package playwright_manager

import (
	"encoding/json"
	"fmt"

	"github.com/playwright-community/playwright-go"
	log "github.com/sirupsen/logrus"

	"github.com/sudharsan-ak/job-autopilot/model"
	"github.com/sudharsan-ak/job-autopilot/service"
)

// PlaywrightManager owns the browser session: one browser, one context
// per run, one page per application being filled. Stored login cookies
// are loaded into the context before any page navigates.
type PlaywrightManager struct {
	playwright *playwright.Playwright
	browser    playwright.Browser
	context    playwright.BrowserContext

	headless      bool
	cookieService *service.CookieService
}

func NewPlaywrightManager(cookieService *service.CookieService, headless bool) *PlaywrightManager {
	return &PlaywrightManager{
		cookieService: cookieService,
		headless:      headless,
	}
}

// Init starts Playwright, launches the browser, and seeds the context
// with every stored platform cookie.
func (pm *PlaywrightManager) Init() error {
	pw, err := playwright.Run()
	if err != nil {
		return fmt.Errorf("start playwright: %w", err)
	}
	pm.playwright = pw

	browser, err := pw.Chromium.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(pm.headless),
		Args: []string{
			"--start-maximized",
		},
	})
	if err != nil {
		return fmt.Errorf("launch browser: %w", err)
	}
	pm.browser = browser

	context, err := browser.NewContext()
	if err != nil {
		return fmt.Errorf("create browser context: %w", err)
	}
	pm.context = context

	for _, platform := range []model.Platform{
		model.PlatformGreenhouse, model.PlatformLever, model.PlatformAshby,
	} {
		if err := pm.loadCookiesForPlatform(platform); err != nil {
			log.WithField("platform", platform).WithError(err).Warn("cookie load failed")
		}
	}

	log.Info("browser automation engine ready")
	return nil
}

// NewPage opens a fresh page for one application form.
func (pm *PlaywrightManager) NewPage() (playwright.Page, error) {
	page, err := pm.context.NewPage()
	if err != nil {
		return nil, fmt.Errorf("create page: %w", err)
	}
	page.SetDefaultTimeout(30000)
	return page, nil
}

// loadCookiesForPlatform pushes a platform's stored cookies into the
// browser context. Missing cookies are normal; most ATS forms are
// anonymous.
func (pm *PlaywrightManager) loadCookiesForPlatform(platform model.Platform) error {
	value, err := pm.cookieService.GetCookieValueByPlatform(platform)
	if err != nil {
		return err
	}
	if value == "" {
		return nil
	}

	var cookies []playwright.OptionalCookie
	if err := json.Unmarshal([]byte(value), &cookies); err != nil {
		return fmt.Errorf("parse stored cookies: %w", err)
	}
	if len(cookies) == 0 {
		return nil
	}
	if err := pm.context.AddCookies(cookies); err != nil {
		return fmt.Errorf("add cookies to context: %w", err)
	}
	log.WithField("platform", platform).Infof("loaded %d stored cookies", len(cookies))
	return nil
}

// SaveCookies snapshots the context's current cookies back to the store.
func (pm *PlaywrightManager) SaveCookies(platform model.Platform, remark string) {
	cookies, err := pm.context.Cookies()
	if err != nil {
		log.WithField("platform", platform).WithError(err).Warn("cookie snapshot failed")
		return
	}

	cookieJSON, err := json.Marshal(cookies)
	if err != nil {
		log.WithField("platform", platform).WithError(err).Warn("cookie marshal failed")
		return
	}

	if err := pm.cookieService.SaveOrUpdateCookie(platform, string(cookieJSON), remark); err != nil {
		log.WithField("platform", platform).WithError(err).Warn("cookie save failed")
	}
}

// Close releases the browser session in reverse creation order.
func (pm *PlaywrightManager) Close() {
	if pm.context != nil {
		pm.context.Close()
	}
	if pm.browser != nil {
		pm.browser.Close()
	}
	if pm.playwright != nil {
		pm.playwright.Stop()
	}
	log.Info("browser automation engine closed")
}
