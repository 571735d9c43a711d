package mailer

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"time"
)

//go:embed templates/*.html
var templateFS embed.FS

var (
	reportTmpl               = mustParse("report.html")
	reminderConfirmationTmpl = mustParse("reminder_confirmation.html")
	reminderDueTmpl          = mustParse("reminder_due.html")
)

func mustParse(name string) *template.Template {
	return template.Must(template.ParseFS(templateFS, "templates/layout.html", "templates/"+name))
}

// ReportEmail is the data for the report delivery email.
type ReportEmail struct {
	FullName       string
	InvestmentName string
}

// ReminderEmail is the data for reminder emails.
type ReminderEmail struct {
	RemindAt  time.Time
	HarborURL string
}

type layoutData struct {
	Year int
	ReportEmail
	RemindOn  string
	HarborURL string
}

// ReportSubject returns the subject line for a report email.
func ReportSubject(investmentName string) string {
	return "Your MoneyHarbor investment report: " + investmentName
}

// ReportAttachmentName names the PDF attachment after the send time.
func ReportAttachmentName(at time.Time) string {
	return fmt.Sprintf("MoneyHarbor-Investment-Report-%d.pdf", at.UnixMilli())
}

// Subjects for reminder emails.
const (
	ReminderConfirmationSubject = "Reminder set - MoneyHarbor"
	ReminderDueSubject          = "Time to review your investments - MoneyHarbor"
)

// RenderReport renders the report delivery email.
func RenderReport(data ReportEmail) (string, error) {
	return render(reportTmpl, layoutData{Year: time.Now().Year(), ReportEmail: data})
}

// RenderReminderConfirmation renders the email confirming a new reminder.
func RenderReminderConfirmation(data ReminderEmail) (string, error) {
	return render(reminderConfirmationTmpl, layoutData{
		Year:      time.Now().Year(),
		RemindOn:  data.RemindAt.Format("2 January 2006"),
		HarborURL: data.HarborURL,
	})
}

// RenderReminderDue renders the email sent when a reminder comes due.
func RenderReminderDue(data ReminderEmail) (string, error) {
	return render(reminderDueTmpl, layoutData{
		Year:      time.Now().Year(),
		RemindOn:  data.RemindAt.Format("2 January 2006"),
		HarborURL: data.HarborURL,
	})
}

func render(t *template.Template, data layoutData) (string, error) {
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", data); err != nil {
		return "", fmt.Errorf("rendering email: %w", err)
	}
	return buf.String(), nil
}
