package services

import (
	"context"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	apperrors "moneyharbor/internal/errors"
	"moneyharbor/internal/logger"
	"moneyharbor/internal/mailer"
	"moneyharbor/internal/models"
)

// dispatchBatchSize caps how many due reminders one dispatch run sends.
const dispatchBatchSize = 100

// ReminderConfig configures a reminder service.
type ReminderConfig struct {
	// Delay is how far ahead a reminder is scheduled when no date is given.
	Delay time.Duration
	// Concurrency bounds parallel sends during dispatch.
	Concurrency int
	// HarborURL is linked from reminder emails.
	HarborURL string
}

// reminderService schedules follow-up emails and sends them when due.
type reminderService struct {
	db     *gorm.DB
	sender mailer.Sender
	cfg    ReminderConfig
	now    func() time.Time
}

// NewReminderService creates a new ReminderServicer.
func NewReminderService(db *gorm.DB, sender mailer.Sender, cfg ReminderConfig) ReminderServicer {
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = 1
	}
	return &reminderService{db: db, sender: sender, cfg: cfg, now: time.Now}
}

// CreateReminder stores a reminder and emails a confirmation. The reminder
// is kept even when the confirmation cannot be sent.
func (s *reminderService) CreateReminder(ctx context.Context, email string, remindAt *time.Time) (*models.Reminder, error) {
	email = strings.TrimSpace(email)
	if !strings.Contains(email, "@") {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid email")
	}

	reminder := &models.Reminder{Email: email}
	if remindAt != nil && !remindAt.IsZero() {
		reminder.RemindAt = *remindAt
	} else {
		reminder.RemindAt = s.now().Add(s.cfg.Delay)
	}

	if err := s.db.Create(reminder).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	html, err := mailer.RenderReminderConfirmation(mailer.ReminderEmail{
		RemindAt:  reminder.RemindAt,
		HarborURL: s.cfg.HarborURL,
	})
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if _, err := s.sender.Send(ctx, mailer.Message{
		To:      []mailer.Address{{Email: email}},
		Subject: mailer.ReminderConfirmationSubject,
		HTML:    html,
	}); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrEmailFailed, err)
	}

	if err := s.db.Model(reminder).Update("confirmation_sent", true).Error; err != nil {
		logger.Get().Errorw("failed to mark reminder confirmation", "reminder_id", reminder.ID, "error", err)
	}
	reminder.ConfirmationSent = true
	return reminder, nil
}

// DispatchDue sends every unsent reminder whose time has come and marks
// the successful ones sent. Failed sends stay pending for the next run.
func (s *reminderService) DispatchDue(ctx context.Context) (int, error) {
	var due []models.Reminder
	if err := s.db.
		Where("sent_at IS NULL AND remind_at <= ?", s.now()).
		Order("remind_at ASC").
		Limit(dispatchBatchSize).
		Find(&due).Error; err != nil {
		return 0, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if len(due) == 0 {
		return 0, nil
	}

	var (
		mu   sync.Mutex
		sent []string
	)
	g := new(errgroup.Group)
	g.SetLimit(s.cfg.Concurrency)
	for _, r := range due {
		g.Go(func() error {
			if ctx.Err() != nil {
				return nil
			}
			if err := s.sendDue(ctx, r); err != nil {
				logger.Get().Warnw("failed to send reminder", "reminder_id", r.ID, "error", err)
				return nil
			}
			mu.Lock()
			sent = append(sent, r.ID)
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()

	if len(sent) == 0 {
		return 0, ctx.Err()
	}

	if err := s.db.Model(&models.Reminder{}).
		Where("id IN ?", sent).
		Update("sent_at", s.now()).Error; err != nil {
		return 0, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	logger.Get().Infow("reminders dispatched", "due", len(due), "sent", len(sent))
	return len(sent), nil
}

func (s *reminderService) sendDue(ctx context.Context, r models.Reminder) error {
	html, err := mailer.RenderReminderDue(mailer.ReminderEmail{
		RemindAt:  r.RemindAt,
		HarborURL: s.cfg.HarborURL,
	})
	if err != nil {
		return err
	}
	_, err = s.sender.Send(ctx, mailer.Message{
		To:      []mailer.Address{{Email: r.Email}},
		Subject: mailer.ReminderDueSubject,
		HTML:    html,
	})
	return err
}
