package integration

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"moneyharbor/internal/catalog"
	"moneyharbor/internal/handlers"
	"moneyharbor/internal/llm"
	"moneyharbor/internal/logger"
	"moneyharbor/internal/mailer"
	"moneyharbor/internal/platform"
	"moneyharbor/internal/recommend"
	"moneyharbor/internal/server"
	"moneyharbor/internal/services"
	"moneyharbor/internal/testutil"
	"moneyharbor/internal/validator"
)

const adminKey = "test-admin-key"

// testApp holds the full application stack for integration tests.
type testApp struct {
	DB        *gorm.DB
	Router    *gin.Engine
	Mail      *fakeMailer
	Reminders services.ReminderServicer
}

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("test")
	validator.Register()
}

// fakeMailer records every message instead of calling Brevo.
type fakeMailer struct {
	mu       sync.Mutex
	messages []mailer.Message
	fail     bool
}

var _ mailer.Sender = (*fakeMailer)(nil)

func (m *fakeMailer) Send(_ context.Context, msg mailer.Message) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail {
		return "", errors.New("brevo: 500")
	}
	m.messages = append(m.messages, msg)
	return fmt.Sprintf("<msg-%d@brevo>", len(m.messages)), nil
}

func (m *fakeMailer) setFail(fail bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.fail = fail
}

func (m *fakeMailer) sent() []mailer.Message {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]mailer.Message, len(m.messages))
	copy(out, m.messages)
	return out
}

// setupApp creates a full application stack backed by an isolated in-memory
// SQLite database. The LLM client has no API key, so recommendations come
// from the rule engine and news runs in demo mode.
func setupApp(t *testing.T) *testApp {
	t.Helper()

	db := testutil.SetupTestDB(t)
	t.Cleanup(func() { testutil.TeardownTestDB(t, db) })

	cat, err := catalog.Default()
	if err != nil {
		t.Fatalf("failed to load catalog: %v", err)
	}
	mail := &fakeMailer{}
	llmClient := llm.New(llm.Config{})

	// Services
	leadService := services.NewLeadService(db)
	historyService := services.NewHistoryService(db)
	recommendationService := services.NewRecommendationService(cat, recommend.NewEngine(recommend.WithSeed(7)), llmClient, historyService)
	reportService := services.NewReportService(mail, leadService, 1)
	guideService := services.NewGuideService(cat, llmClient)
	newsService := services.NewNewsService(llmClient, time.Hour)
	reminderService := services.NewReminderService(db, mail, services.ReminderConfig{
		Delay:       24 * time.Hour,
		Concurrency: 2,
		HarborURL:   "https://example.test/my-harbor",
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
	}, adminKey)

	return &testApp{DB: db, Router: router, Mail: mail, Reminders: reminderService}
}

// request makes an HTTP request to the test router and returns the recorder.
// A non-empty apiKey is sent as X-API-Key.
func (app *testApp) request(method, path, body, apiKey string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if apiKey != "" {
		req.Header.Set("X-API-Key", apiKey)
	}
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	return rec
}

// parseJSON parses the response body into a map.
func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	errObj, ok := parseJSON(t, rec)["error"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected error object, got: %s", rec.Body.String())
	}
	code, _ := errObj["code"].(string)
	return code
}

// search runs a recommendation search and returns the decoded body.
func (app *testApp) search(t *testing.T, clientID string) map[string]interface{} {
	t.Helper()
	body := fmt.Sprintf(`{"amount":10000,"timeHorizon":"5 years","riskLevel":"medium","liquidity":%q,"knowledgeLevel":"beginner","clientId":%q}`,
		recommend.LiquidityCanLockMid, clientID)
	rec := app.request("POST", "/api/v1/recommendations", body, "")
	if rec.Code != 200 {
		t.Fatalf("search failed: %d %s", rec.Code, rec.Body.String())
	}
	return parseJSON(t, rec)
}
