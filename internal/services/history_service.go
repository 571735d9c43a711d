package services

import (
	"encoding/json"
	"errors"
	"strings"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	apperrors "moneyharbor/internal/errors"
	"moneyharbor/internal/models"
	"moneyharbor/internal/recommend"
)

// historyService stores recommendation batches for My Harbor.
type historyService struct {
	db *gorm.DB
}

// NewHistoryService creates a new HistoryServicer.
func NewHistoryService(db *gorm.DB) HistoryServicer {
	return &historyService{db: db}
}

// SaveBatch records one recommendation result for clientID.
func (s *historyService) SaveBatch(clientID string, prefs recommend.UserPreferences, source string, results []recommend.ScoredInvestment) (*models.SearchBatch, error) {
	if clientID == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Client ID is required")
	}

	raw, err := json.Marshal(results)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	batch := &models.SearchBatch{
		ClientID:             clientID,
		Amount:               prefs.Amount,
		TimeHorizon:          prefs.TimeHorizon,
		RiskLevel:            string(prefs.RiskLevel),
		Liquidity:            prefs.Liquidity,
		KnowledgeLevel:       string(prefs.KnowledgeLevel),
		AdditionalNotes:      strings.TrimSpace(prefs.AdditionalNotes),
		Source:               source,
		Recommendations:      datatypes.JSON(raw),
		RecommendationsCount: len(results),
		Status:               models.BatchNotInvested,
	}
	if err := s.db.Create(batch).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return batch, nil
}

// ListBatches returns clientID's batches, newest first.
func (s *historyService) ListBatches(clientID string) ([]models.SearchBatch, error) {
	batches := []models.SearchBatch{}
	if err := s.db.Where("client_id = ?", clientID).Order("created_at DESC, id DESC").Find(&batches).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return batches, nil
}

// UpdateStatus records what clientID did with one of its batches. A nil
// count takes the status default. Batches owned by another client are
// reported as not found.
func (s *historyService) UpdateStatus(clientID, batchID string, status models.BatchStatus, count *int) (*models.SearchBatch, error) {
	if !status.Valid() {
		return nil, apperrors.ErrInvalidStatus
	}
	invested := status.DefaultCount()
	if count != nil {
		if *count < 0 {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Invested count must not be negative")
		}
		invested = *count
	}

	var batch models.SearchBatch
	if err := s.db.Where("id = ? AND client_id = ?", batchID, clientID).First(&batch).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBatchNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if err := s.db.Model(&batch).Updates(map[string]interface{}{
		"status":         status,
		"invested_count": invested,
	}).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	batch.Status = status
	batch.InvestedCount = invested
	return &batch, nil
}

// GetSummary returns clientID's batches and the number of options invested in.
func (s *historyService) GetSummary(clientID string) (*HarborSummary, error) {
	batches, err := s.ListBatches(clientID)
	if err != nil {
		return nil, err
	}

	summary := &HarborSummary{Batches: batches}
	for _, b := range batches {
		summary.TotalInvestments += b.Investments()
	}
	return summary, nil
}
