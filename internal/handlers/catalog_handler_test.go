package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	"moneyharbor/internal/catalog"
	"moneyharbor/internal/platform"
)

func setupCatalogRouter(t *testing.T) *gin.Engine {
	t.Helper()
	cat, err := catalog.Default()
	if err != nil {
		t.Fatalf("failed to load catalog: %v", err)
	}
	h := NewCatalogHandler(cat, platform.Default())

	r := gin.New()
	r.GET("/catalog", h.GetCatalog)
	r.GET("/catalog/:id", h.GetOption)
	r.GET("/platforms", h.GetPlatforms)
	r.GET("/platforms/lookup", h.LookupPlatform)
	return r
}

func TestCatalogHandler(t *testing.T) {
	r := setupCatalogRouter(t)

	t.Run("lists options", func(t *testing.T) {
		rec := doRequest(r, "GET", "/catalog", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		result := parseJSON(t, rec)
		options := result["options"].([]interface{})
		if len(options) == 0 || result["count"].(float64) != float64(len(options)) {
			t.Errorf("unexpected catalog response: count=%v options=%d", result["count"], len(options))
		}
	})

	t.Run("gets option", func(t *testing.T) {
		rec := doRequest(r, "GET", "/catalog/bitcoin", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if parseJSON(t, rec)["riskLevel"] != "high" {
			t.Error("expected bitcoin to be high risk")
		}
	})

	t.Run("unknown option", func(t *testing.T) {
		rec := doRequest(r, "GET", "/catalog/tulips", "")

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVESTMENT_NOT_FOUND")
	})

	t.Run("lists platforms", func(t *testing.T) {
		rec := doRequest(r, "GET", "/platforms", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if len(parseJSON(t, rec)["platforms"].([]interface{})) == 0 {
			t.Error("expected platforms")
		}
	})

	t.Run("looks up platform", func(t *testing.T) {
		rec := doRequest(r, "GET", "/platforms/lookup?name=Bank+Leumi", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if parseJSON(t, rec)["url"] == "" {
			t.Error("expected platform url")
		}
	})

	t.Run("lookup requires name", func(t *testing.T) {
		rec := doRequest(r, "GET", "/platforms/lookup", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
	})

	t.Run("lookup miss", func(t *testing.T) {
		rec := doRequest(r, "GET", "/platforms/lookup?name=Zzyzx+Capital+Holdings", "")

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "NOT_FOUND")
	})
}
