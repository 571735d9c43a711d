package handlers

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"moneyharbor/internal/llm"
	"moneyharbor/internal/services"
)

func TestNewsHandler_GetNews(t *testing.T) {
	t.Run("returns briefing with metadata", func(t *testing.T) {
		svc := &mockNewsService{
			getBriefingFn: func(context.Context) (*services.NewsBriefing, error) {
				return &services.NewsBriefing{
					Briefing:    []llm.NewsItem{{Title: "Shekel strengthens", Impact: llm.ImpactPositive, Category: "currencies"}},
					GeneratedAt: time.Date(2026, 10, 1, 8, 0, 0, 0, time.UTC),
					Metadata:    &services.NewsMetadata{TokensUsed: 900, Cost: 0.00045, Model: "gpt-4o-mini"},
				}, nil
			},
		}
		r := gin.New()
		r.GET("/news", NewNewsHandler(svc).GetNews)

		rec := doRequest(r, "GET", "/news", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		result := parseJSON(t, rec)
		if result["isDemo"] != false {
			t.Errorf("expected isDemo false, got %v", result["isDemo"])
		}
		items := result["briefing"].([]interface{})
		if items[0].(map[string]interface{})["impact"] != "positive" {
			t.Errorf("unexpected items: %v", items)
		}
		meta := result["metadata"].(map[string]interface{})
		if meta["model"] != "gpt-4o-mini" || meta["tokensUsed"].(float64) != 900 {
			t.Errorf("unexpected metadata: %v", meta)
		}
	})

	t.Run("demo briefing", func(t *testing.T) {
		r := gin.New()
		r.GET("/news", NewNewsHandler(&mockNewsService{}).GetNews)

		rec := doRequest(r, "GET", "/news", "")

		result := parseJSON(t, rec)
		if result["isDemo"] != true {
			t.Errorf("expected demo briefing, got %v", result)
		}
		if _, ok := result["metadata"]; ok {
			t.Error("expected no metadata on demo briefing")
		}
	})
}
