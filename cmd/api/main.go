package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"moneyharbor/internal/catalog"
	"moneyharbor/internal/config"
	"moneyharbor/internal/database"
	"moneyharbor/internal/handlers"
	"moneyharbor/internal/llm"
	"moneyharbor/internal/logger"
	"moneyharbor/internal/mailer"
	"moneyharbor/internal/platform"
	"moneyharbor/internal/recommend"
	"moneyharbor/internal/scheduler"
	"moneyharbor/internal/server"
	"moneyharbor/internal/services"
	"moneyharbor/internal/validator"
)

// @title           MoneyHarbor API
// @version         1.0
// @description     MoneyHarbor recommends three investment options for a short investor profile, emails PDF reports and keeps a per-browser history of past searches.
// @termsOfService  http://swagger.io/terms/

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey AdminKey
// @in header
// @name X-API-Key
// @description Shared secret for the admin lead endpoints.

func main() {
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	dbConfig, err := database.NewConfig()
	if err != nil {
		return fmt.Errorf("failed to load database configuration: %w", err)
	}

	dbManager, err := database.NewManager(dbConfig)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}
	defer func() {
		if err := dbManager.Close(); err != nil {
			log.Warnf("failed to close database: %v", err)
		}
	}()

	if err := dbManager.RunMigrations(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	cat, err := catalog.Load(appConfig.CatalogPath)
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}
	log.Infof("Loaded %d investment options", cat.Len())

	validator.Register()

	llmClient := llm.New(llm.Config{
		APIKey:  appConfig.OpenAIAPIKey,
		Model:   appConfig.OpenAIModel,
		BaseURL: appConfig.OpenAIBaseURL,
		Timeout: appConfig.LLMTimeout,
	})
	if !llmClient.Configured() {
		log.Warn("OPENAI_API_KEY not set; recommendations use the rule engine and news runs in demo mode")
	}

	brevo := mailer.NewBrevoClient(mailer.Config{
		APIKey:      appConfig.BrevoAPIKey,
		BaseURL:     appConfig.BrevoBaseURL,
		SenderName:  appConfig.MailSenderName,
		SenderEmail: appConfig.MailSenderEmail,
	})
	if appConfig.BrevoAPIKey == "" {
		log.Warn("BREVO_API_KEY not set; report and reminder emails will fail")
	}

	// Initialize services
	db := dbManager.DB()
	leadService := services.NewLeadService(db)
	historyService := services.NewHistoryService(db)
	recommendationService := services.NewRecommendationService(cat, recommend.NewEngine(), llmClient, historyService)
	reportService := services.NewReportService(brevo, leadService, appConfig.MaxReportMB)
	guideService := services.NewGuideService(cat, llmClient)
	newsService := services.NewNewsService(llmClient, appConfig.NewsCacheTTL)
	reminderService := services.NewReminderService(db, brevo, services.ReminderConfig{
		Delay:       appConfig.ReminderDelay,
		Concurrency: appConfig.ReminderConcurrency,
		HarborURL:   appConfig.PublicBaseURL + "/my-harbor",
	})

	router := server.NewRouter(server.Handlers{
		Recommendation: handlers.NewRecommendationHandler(recommendationService),
		Report:         handlers.NewReportHandler(reportService),
		Guide:          handlers.NewGuideHandler(guideService),
		News:           handlers.NewNewsHandler(newsService),
		Lead:           handlers.NewLeadHandler(leadService),
		History:        handlers.NewHistoryHandler(historyService),
		Reminder:       handlers.NewReminderHandler(reminderService),
		Catalog:        handlers.NewCatalogHandler(cat, platform.Default()),
	}, appConfig.AdminAPIKey)
	if appConfig.AdminAPIKey == "" {
		log.Warn("ADMIN_API_KEY not set; admin endpoints are disabled")
	}

	sched := scheduler.New(reminderService)
	if err := sched.RegisterReminders(appConfig.ReminderCron); err != nil {
		return err
	}
	sched.Start()
	defer sched.Stop()

	srv := &http.Server{
		Addr:              ":" + appConfig.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Infof("Starting MoneyHarbor backend server on port %s", appConfig.Port)
		log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
