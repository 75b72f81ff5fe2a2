package login

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/chromedp/cdproto/network"
	"github.com/chromedp/chromedp"
	"github.com/playwright-community/playwright-go"
	log "github.com/sirupsen/logrus"

	"github.com/sudharsan-ak/job-autopilot/model"
	"github.com/sudharsan-ak/job-autopilot/service"
)

// loginURLs are the candidate-account entry points per platform. Most
// application forms are anonymous, but a signed-in session lets the
// platform prefill identity fields from a stored candidate record.
var loginURLs = map[model.Platform]string{
	model.PlatformGreenhouse: "https://my.greenhouse.io/users/sign_in",
	model.PlatformLever:      "https://jobs.lever.co/",
	model.PlatformAshby:      "https://jobs.ashbyhq.com/",
}

// Capturer runs a one-time interactive login in its own browser and
// persists the resulting cookies for the fill session to reuse.
type Capturer struct {
	cookieService *service.CookieService
	waitWindow    time.Duration
}

func NewCapturer(cookieService *service.CookieService) *Capturer {
	return &Capturer{
		cookieService: cookieService,
		waitWindow:    3 * time.Minute,
	}
}

// Capture opens the platform's sign-in page, gives the user the wait
// window to finish logging in, then snapshots and stores all cookies.
func (c *Capturer) Capture(platform model.Platform) error {
	startURL, ok := loginURLs[platform]
	if !ok {
		return fmt.Errorf("no login URL for platform %s", platform)
	}

	ctx, cancel := chromedp.NewExecAllocator(context.Background(),
		append(chromedp.DefaultExecAllocatorOptions[:],
			chromedp.Flag("headless", false),
			chromedp.Flag("disable-gpu", true),
			chromedp.Flag("no-sandbox", true),
		)...)
	defer cancel()

	ctx, cancel = chromedp.NewContext(ctx)
	defer cancel()

	if err := chromedp.Run(ctx, chromedp.Navigate(startURL)); err != nil {
		return fmt.Errorf("open login page: %w", err)
	}

	log.WithField("platform", platform).
		Infof("complete the login in the opened browser; capturing cookies in %s", c.waitWindow)
	select {
	case <-time.After(c.waitWindow):
	case <-ctx.Done():
		return ctx.Err()
	}

	var cookies []*network.Cookie
	if err := chromedp.Run(ctx, chromedp.ActionFunc(func(ctx context.Context) error {
		var err error
		cookies, err = network.GetCookies().Do(ctx)
		return err
	})); err != nil {
		return fmt.Errorf("read cookies: %w", err)
	}
	if len(cookies) == 0 {
		return fmt.Errorf("no cookies captured for %s", platform)
	}

	value, err := json.Marshal(toPlaywrightCookies(cookies))
	if err != nil {
		return fmt.Errorf("marshal cookies: %w", err)
	}
	if err := c.cookieService.SaveOrUpdateCookie(platform, string(value), "interactive capture"); err != nil {
		return fmt.Errorf("store cookies: %w", err)
	}

	log.WithField("platform", platform).Infof("captured %d cookies", len(cookies))
	return nil
}

// toPlaywrightCookies converts devtools cookies into the shape the fill
// session's browser context accepts.
func toPlaywrightCookies(cookies []*network.Cookie) []playwright.OptionalCookie {
	out := make([]playwright.OptionalCookie, 0, len(cookies))
	for _, ck := range cookies {
		out = append(out, playwright.OptionalCookie{
			Name:     ck.Name,
			Value:    ck.Value,
			Domain:   playwright.String(ck.Domain),
			Path:     playwright.String(ck.Path),
			HttpOnly: playwright.Bool(ck.HTTPOnly),
			Secure:   playwright.Bool(ck.Secure),
		})
	}
	return out
}
