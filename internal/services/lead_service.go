package services

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apperrors "moneyharbor/internal/errors"
	"moneyharbor/internal/models"
	"moneyharbor/internal/pagination"
)

// leadService handles lead-related business logic.
type leadService struct {
	db *gorm.DB
}

// NewLeadService creates a new LeadServicer.
func NewLeadService(db *gorm.DB) LeadServicer {
	return &leadService{db: db}
}

// CreateLead appends a lead. SentAt defaults to now.
func (s *leadService) CreateLead(lead *models.Lead) (*models.Lead, error) {
	if lead.Email == "" || lead.InvestmentName == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Email and investment name are required")
	}
	if lead.SentAt.IsZero() {
		lead.SentAt = time.Now()
	}
	if err := s.db.Create(lead).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return lead, nil
}

// GetLeads returns a page of leads, newest first.
func (s *leadService) GetLeads(page pagination.PageRequest) (*pagination.PageResponse[models.Lead], error) {
	page.Defaults()

	var totalItems int64
	if err := s.db.Model(&models.Lead{}).Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var leads []models.Lead
	if err := s.db.Order("created_at DESC, id DESC").Scopes(pagination.Paginate(page)).Find(&leads).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(leads, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// GetLeadByID retrieves a single lead.
func (s *leadService) GetLeadByID(id string) (*models.Lead, error) {
	var lead models.Lead
	if err := s.db.Where("id = ?", id).First(&lead).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrLeadNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &lead, nil
}

// GetLeadStats summarizes all leads for the admin dashboard.
func (s *leadService) GetLeadStats() (*models.LeadStats, error) {
	var stats models.LeadStats

	if err := s.db.Model(&models.Lead{}).Count(&stats.TotalLeads).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var total decimal.NullDecimal
	if err := s.db.Model(&models.Lead{}).Select("SUM(amount)").Row().Scan(&total); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if total.Valid {
		stats.TotalAmount = total.Decimal
	}

	if err := s.db.Model(&models.Lead{}).
		Where("knowledge_level = ?", "beginner").
		Count(&stats.Beginners).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	since := time.Now().AddDate(0, 0, -7)
	if err := s.db.Model(&models.Lead{}).
		Where("created_at >= ?", since).
		Count(&stats.LastSevenDays).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return &stats, nil
}
