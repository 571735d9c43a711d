package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	apperrors "moneyharbor/internal/errors"
	"moneyharbor/internal/models"
	"moneyharbor/internal/services"
)

func setupHistoryRouter(handler *HistoryHandler) *gin.Engine {
	r := gin.New()
	r.GET("/harbor/:client_id", handler.GetHarbor)
	r.PATCH("/harbor/:client_id/batches/:id", handler.UpdateBatchStatus)
	return r
}

func TestHistoryHandler_GetHarbor(t *testing.T) {
	var gotClient string
	svc := &mockHistoryService{
		getSummaryFn: func(clientID string) (*services.HarborSummary, error) {
			gotClient = clientID
			return &services.HarborSummary{
				Batches: []models.SearchBatch{
					{Base: models.Base{ID: "b-1"}, ClientID: clientID, Status: models.BatchCombined, InvestedCount: 2},
				},
				TotalInvestments: 2,
			}, nil
		},
	}
	r := setupHistoryRouter(NewHistoryHandler(svc))

	rec := doRequest(r, "GET", "/harbor/client-42", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if gotClient != "client-42" {
		t.Errorf("expected client-42, got %q", gotClient)
	}
	result := parseJSON(t, rec)
	if result["totalInvestments"].(float64) != 2 {
		t.Errorf("expected 2 investments, got %v", result["totalInvestments"])
	}
	if len(result["batches"].([]interface{})) != 1 {
		t.Errorf("expected 1 batch, got %v", result["batches"])
	}
}

func TestHistoryHandler_UpdateBatchStatus(t *testing.T) {
	t.Run("returns updated batch", func(t *testing.T) {
		var gotClient string
		var gotCount *int
		svc := &mockHistoryService{
			updateStatusFn: func(clientID, batchID string, status models.BatchStatus, count *int) (*models.SearchBatch, error) {
				gotClient = clientID
				gotCount = count
				return &models.SearchBatch{Base: models.Base{ID: batchID}, Status: status, InvestedCount: *count}, nil
			},
		}
		r := setupHistoryRouter(NewHistoryHandler(svc))

		rec := doRequest(r, "PATCH", "/harbor/client-42/batches/b-1", `{"status":"combined","investedCount":3}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if gotClient != "client-42" {
			t.Errorf("expected client-42, got %q", gotClient)
		}
		if gotCount == nil || *gotCount != 3 {
			t.Errorf("expected count 3, got %v", gotCount)
		}
		batch := parseJSON(t, rec)["batch"].(map[string]interface{})
		if batch["status"] != "combined" {
			t.Errorf("expected combined, got %v", batch["status"])
		}
	})

	t.Run("returns 400 on unknown status", func(t *testing.T) {
		r := setupHistoryRouter(NewHistoryHandler(&mockHistoryService{}))

		rec := doRequest(r, "PATCH", "/harbor/client-42/batches/b-1", `{"status":"sold"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
	})

	t.Run("returns 404 for unknown batch", func(t *testing.T) {
		svc := &mockHistoryService{
			updateStatusFn: func(string, string, models.BatchStatus, *int) (*models.SearchBatch, error) {
				return nil, apperrors.ErrBatchNotFound
			},
		}
		r := setupHistoryRouter(NewHistoryHandler(svc))

		rec := doRequest(r, "PATCH", "/harbor/client-42/batches/nope", `{"status":"invested_one"}`)

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "BATCH_NOT_FOUND")
	})
}
