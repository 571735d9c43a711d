package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Lead records a report request for later follow-up. Leads are append-only.
type Lead struct {
	Base
	Email           string          `gorm:"not null;index" json:"email"`
	FullName        *string         `json:"fullName"`
	InvestmentName  string          `gorm:"not null" json:"investmentName"`
	InvestmentType  *string         `json:"investmentType"`
	Amount          decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0" json:"amount"`
	TimeHorizon     string          `gorm:"not null;default:''" json:"timeHorizon"`
	RiskLevel       string          `gorm:"not null;default:''" json:"riskLevel"`
	KnowledgeLevel  *string         `json:"knowledgeLevel"`
	AdditionalNotes *string         `json:"additionalNotes"`
	PDFSent         bool            `gorm:"column:pdf_sent;not null;default:true" json:"pdfSent"`
	SentAt          time.Time       `gorm:"not null" json:"sentAt"`
}

// LeadStats summarizes the leads table for the admin dashboard.
type LeadStats struct {
	TotalLeads    int64           `json:"totalLeads"`
	TotalAmount   decimal.Decimal `json:"totalAmount"`
	Beginners     int64           `json:"beginners"`
	LastSevenDays int64          `json:"lastSevenDays"`
}
