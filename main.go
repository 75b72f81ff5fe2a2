package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/playwright-community/playwright-go"
	log "github.com/sirupsen/logrus"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/sudharsan-ak/job-autopilot/config"
	"github.com/sudharsan-ak/job-autopilot/fill"
	"github.com/sudharsan-ak/job-autopilot/model"
	"github.com/sudharsan-ak/job-autopilot/repository"
	"github.com/sudharsan-ak/job-autopilot/service"
	"github.com/sudharsan-ak/job-autopilot/worker"
	"github.com/sudharsan-ak/job-autopilot/worker/ashby"
	"github.com/sudharsan-ak/job-autopilot/worker/greenhouse"
	"github.com/sudharsan-ak/job-autopilot/worker/lever"
	"github.com/sudharsan-ak/job-autopilot/worker/login"
	"github.com/sudharsan-ak/job-autopilot/worker/playwright_manager"
)

type Application struct {
	cfg *config.GlobalConfig
	db  *gorm.DB

	cookieService     *service.CookieService
	reportService     *service.ReportService
	botService        *service.BotService
	profileService    *service.ProfileService
	playwrightManager *playwright_manager.PlaywrightManager
	fillers           map[model.Platform]worker.Filler

	// stopping is set by the signal handler and honored only between
	// whole-page passes, never mid-field.
	stopping atomic.Bool
}

func NewApplication(cfg *config.GlobalConfig) *Application {
	return &Application{cfg: cfg}
}

// InitDatabase opens MySQL and migrates the report and cookie tables.
func (app *Application) InitDatabase() error {
	db, err := gorm.Open(mysql.Open(app.cfg.Database.DSN), &gorm.Config{})
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("unwrap sql db: %w", err)
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	if err := db.AutoMigrate(
		&model.FillReportEntity{},
		&model.CookieEntity{},
	); err != nil {
		return fmt.Errorf("migrate tables: %w", err)
	}

	app.db = db
	log.Info("database ready")
	return nil
}

// InitServices wires repositories, services, the browser manager, and
// the per-platform fillers.
func (app *Application) InitServices() error {
	if err := app.InitDatabase(); err != nil {
		return err
	}

	cookieRepo := repository.NewCookieRepository(app.db)
	reportRepo := repository.NewFillReportRepository(app.db)

	app.cookieService = service.NewCookieService(cookieRepo)
	app.reportService = service.NewReportService(reportRepo)
	app.profileService = service.NewProfileService(
		app.cfg.Profile.Path, app.cfg.Profile.ResumePath)

	botService, err := service.NewBotService(app.cfg.Bot)
	if err != nil {
		log.WithError(err).Warn("telegram bot unavailable, summaries stay local")
	}
	app.botService = botService

	app.playwrightManager = playwright_manager.NewPlaywrightManager(
		app.cookieService, app.cfg.Browser.Headless)
	if err := app.playwrightManager.Init(); err != nil {
		return err
	}

	timing := fill.DefaultTiming()
	if app.cfg.Browser.SlowTiming {
		timing = fill.SlowTiming()
	}
	app.fillers = map[model.Platform]worker.Filler{
		model.PlatformGreenhouse: greenhouse.New(timing, app.reportService),
		model.PlatformLever:      lever.New(timing, app.reportService),
		model.PlatformAshby:      ashby.New(timing, app.reportService),
	}

	log.Info("services ready")
	return nil
}

// Run walks the configured application URLs, dispatching each to its
// platform's filler. Every page gets a best-effort pass; a stop request
// takes effect before the next page, never during one.
func (app *Application) Run() error {
	profile, err := app.profileService.Load()
	if err != nil {
		return err
	}

	for _, rawURL := range app.cfg.Applications {
		if app.stopping.Load() {
			log.Info("stop requested, finishing run early")
			break
		}

		platform, ok := model.DetectPlatform(rawURL)
		if !ok {
			log.WithField("url", rawURL).Warn("unrecognized platform, skipping")
			continue
		}
		app.fillOne(platform, rawURL, profile)
	}
	return nil
}

func (app *Application) fillOne(platform model.Platform, rawURL string, profile *model.Profile) {
	logger := log.WithField("platform", platform)

	page, err := app.playwrightManager.NewPage()
	if err != nil {
		logger.WithError(err).Error("could not open page")
		return
	}
	defer page.Close()

	if _, err := page.Goto(rawURL, playwright.PageGotoOptions{
		WaitUntil: playwright.WaitUntilStateDomcontentloaded,
		Timeout:   playwright.Float(60000),
	}); err != nil {
		logger.WithError(err).Error("navigation failed")
		return
	}

	filler := app.fillers[platform]
	filler.SetPage(page)

	err = filler.Apply(profile)
	switch {
	case errors.Is(err, lever.ErrAlreadyAutofilled):
		logger.Info("platform autofill already populated the form")
	case err != nil:
		logger.WithError(err).Error("fill pass aborted")
	}

	summary := app.reportService.Summary()
	logger.WithField("url", rawURL).Info(summary)
	if err := app.botService.SendRunSummary(rawURL, summary); err != nil {
		logger.WithError(err).Warn("bot summary failed")
	}
	app.reportService.Flush()

	// Keep the stored session fresh; platforms rotate cookies mid-visit.
	app.playwrightManager.SaveCookies(platform, "post-run snapshot")
}

func (app *Application) Stop() {
	if app.playwrightManager != nil {
		app.playwrightManager.Close()
	}
	if app.db != nil {
		if sqlDB, err := app.db.DB(); err == nil {
			sqlDB.Close()
		}
	}
	log.Info("application stopped")
}

// watchShutdown flips the stop flag on the first signal so the run loop
// exits between pages, and forces shutdown on the second.
func (app *Application) watchShutdown() {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		sig := <-sigChan
		log.Infof("received %v, stopping after the current page", sig)
		app.stopping.Store(true)

		sig = <-sigChan
		log.Infof("received %v again, shutting down now", sig)
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		done := make(chan struct{})
		go func() {
			app.Stop()
			close(done)
		}()
		select {
		case <-done:
		case <-ctx.Done():
		}
		os.Exit(1)
	}()
}

func main() {
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})

	loginPlatform := flag.String("login", "", "capture a login session for a platform (greenhouse|lever|ashby) and exit")
	flag.Parse()

	cfg, err := config.InitConfig()
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}

	if *loginPlatform != "" {
		if err := captureLogin(cfg, model.Platform(*loginPlatform)); err != nil {
			log.Fatalf("login capture failed: %v", err)
		}
		return
	}

	app := NewApplication(cfg)
	if err := app.InitServices(); err != nil {
		log.Fatalf("service init failed: %v", err)
	}
	app.watchShutdown()

	if err := app.Run(); err != nil {
		log.Errorf("run failed: %v", err)
	}
	app.Stop()
}

// captureLogin runs the one-time interactive cookie capture in its own
// browser and stores the session for later fill runs.
func captureLogin(cfg *config.GlobalConfig, platform model.Platform) error {
	db, err := gorm.Open(mysql.Open(cfg.Database.DSN), &gorm.Config{})
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	if err := db.AutoMigrate(&model.CookieEntity{}); err != nil {
		return fmt.Errorf("migrate tables: %w", err)
	}

	cookieService := service.NewCookieService(repository.NewCookieRepository(db))
	return login.NewCapturer(cookieService).Capture(platform)
}
