package models

import "time"

// Reminder is a scheduled follow-up email.
type Reminder struct {
	Base
	Email            string     `gorm:"not null" json:"email"`
	RemindAt         time.Time  `gorm:"not null;index" json:"remindAt"`
	SentAt           *time.Time `json:"sentAt,omitempty"`
	ConfirmationSent bool       `gorm:"not null;default:false" json:"confirmationSent"`
}
