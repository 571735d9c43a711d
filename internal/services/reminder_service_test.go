package services

import (
	"context"
	"errors"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	apperrors "moneyharbor/internal/errors"
	"moneyharbor/internal/mailer"
	"moneyharbor/internal/models"
	"moneyharbor/internal/testutil"
)

func testReminderConfig() ReminderConfig {
	return ReminderConfig{
		Delay:       180 * 24 * time.Hour,
		Concurrency: 3,
		HarborURL:   "https://money-harbor.test/my-harbor",
	}
}

func TestCreateReminder(t *testing.T) {
	ctx := context.Background()

	t.Run("default_date", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		sender := &fakeSender{}
		svc := NewReminderService(db, sender, testReminderConfig())

		before := time.Now()
		reminder, err := svc.CreateReminder(ctx, " yael@example.com ", nil)
		testutil.AssertNoError(t, err)

		if reminder.Email != "yael@example.com" {
			t.Errorf("expected trimmed email, got %q", reminder.Email)
		}
		want := before.Add(180 * 24 * time.Hour)
		if reminder.RemindAt.Before(want) || reminder.RemindAt.After(want.Add(time.Minute)) {
			t.Errorf("expected remindAt about %v, got %v", want, reminder.RemindAt)
		}
		if !reminder.ConfirmationSent {
			t.Error("expected confirmation sent")
		}

		sent := sender.messages()
		if len(sent) != 1 || sent[0].Subject != mailer.ReminderConfirmationSubject {
			t.Fatalf("expected one confirmation email, got %+v", sent)
		}
		if !strings.Contains(sent[0].HTML, "https://money-harbor.test/my-harbor") {
			t.Error("expected confirmation to link to My Harbor")
		}

		var stored models.Reminder
		db.First(&stored, "id = ?", reminder.ID)
		if !stored.ConfirmationSent {
			t.Error("expected stored confirmation flag")
		}
	})

	t.Run("explicit_date", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewReminderService(db, &fakeSender{}, testReminderConfig())

		at := time.Date(2027, 3, 1, 9, 0, 0, 0, time.UTC)
		reminder, err := svc.CreateReminder(ctx, "a@b.c", &at)
		testutil.AssertNoError(t, err)

		if !reminder.RemindAt.Equal(at) {
			t.Errorf("expected %v, got %v", at, reminder.RemindAt)
		}
	})

	t.Run("invalid_email", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		sender := &fakeSender{}
		svc := NewReminderService(db, sender, testReminderConfig())

		_, err := svc.CreateReminder(ctx, "not-an-email", nil)
		testutil.AssertAppError(t, err, apperrors.ErrInvalidInput)
		if len(sender.messages()) != 0 {
			t.Error("expected no email for invalid address")
		}
	})

	t.Run("confirmation_failure_keeps_reminder", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		sender := &fakeSender{sendFn: func(mailer.Message) (string, error) {
			return "", errors.New("smtp down")
		}}
		svc := NewReminderService(db, sender, testReminderConfig())

		_, err := svc.CreateReminder(ctx, "a@b.c", nil)
		testutil.AssertAppError(t, err, apperrors.ErrEmailFailed)

		var stored models.Reminder
		if err := db.First(&stored, "email = ?", "a@b.c").Error; err != nil {
			t.Fatalf("expected reminder to be stored: %v", err)
		}
		if stored.ConfirmationSent {
			t.Error("expected confirmation flag to stay false")
		}
	})
}

func TestDispatchDue(t *testing.T) {
	ctx := context.Background()

	t.Run("sends_due_only", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		sender := &fakeSender{}
		svc := NewReminderService(db, sender, testReminderConfig())

		due1 := testutil.CreateTestReminder(t, db, time.Now().Add(-2*time.Hour))
		due2 := testutil.CreateTestReminder(t, db, time.Now().Add(-time.Minute))
		future := testutil.CreateTestReminder(t, db, time.Now().Add(24*time.Hour))

		n, err := svc.DispatchDue(ctx)
		testutil.AssertNoError(t, err)

		if n != 2 {
			t.Errorf("expected 2 sent, got %d", n)
		}
		if len(sender.messages()) != 2 {
			t.Errorf("expected 2 emails, got %d", len(sender.messages()))
		}

		for _, id := range []string{due1.ID, due2.ID} {
			var r models.Reminder
			db.First(&r, "id = ?", id)
			if r.SentAt == nil {
				t.Errorf("expected reminder %s to be marked sent", id)
			}
		}
		var r models.Reminder
		db.First(&r, "id = ?", future.ID)
		if r.SentAt != nil {
			t.Error("expected future reminder to stay pending")
		}

		n, err = svc.DispatchDue(ctx)
		testutil.AssertNoError(t, err)
		if n != 0 {
			t.Errorf("expected nothing left to send, got %d", n)
		}
	})

	t.Run("failed_send_stays_pending", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)

		bad := testutil.CreateTestReminder(t, db, time.Now().Add(-time.Hour))
		good := testutil.CreateTestReminder(t, db, time.Now().Add(-time.Hour))

		sender := &fakeSender{sendFn: func(msg mailer.Message) (string, error) {
			if msg.To[0].Email == bad.Email {
				return "", errors.New("mailbox unavailable")
			}
			return "<ok>", nil
		}}
		svc := NewReminderService(db, sender, testReminderConfig())

		n, err := svc.DispatchDue(ctx)
		testutil.AssertNoError(t, err)
		if n != 1 {
			t.Errorf("expected 1 sent, got %d", n)
		}

		var r models.Reminder
		db.First(&r, "id = ?", bad.ID)
		if r.SentAt != nil {
			t.Error("expected failed reminder to stay pending")
		}
		var g models.Reminder
		db.First(&g, "id = ?", good.ID)
		if g.SentAt == nil {
			t.Error("expected good reminder to be marked sent")
		}
	})

	t.Run("bounded_concurrency", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)

		for i := 0; i < 10; i++ {
			testutil.CreateTestReminder(t, db, time.Now().Add(-time.Hour))
		}

		var inFlight, peak atomic.Int32
		sender := &fakeSender{sendFn: func(mailer.Message) (string, error) {
			cur := inFlight.Add(1)
			defer inFlight.Add(-1)
			for {
				old := peak.Load()
				if cur <= old || peak.CompareAndSwap(old, cur) {
					break
				}
			}
			time.Sleep(5 * time.Millisecond)
			return "<ok>", nil
		}}
		svc := NewReminderService(db, sender, testReminderConfig())

		n, err := svc.DispatchDue(ctx)
		testutil.AssertNoError(t, err)
		if n != 10 {
			t.Errorf("expected 10 sent, got %d", n)
		}
		if peak.Load() > 3 {
			t.Errorf("expected at most 3 concurrent sends, saw %d", peak.Load())
		}
	})

	t.Run("nothing_due", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewReminderService(db, &fakeSender{}, testReminderConfig())

		n, err := svc.DispatchDue(ctx)
		testutil.AssertNoError(t, err)
		if n != 0 {
			t.Errorf("expected 0, got %d", n)
		}
	})
}
