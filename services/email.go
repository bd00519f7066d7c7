package services

import (
	"bytes"
	"fmt"
	htmltemplate "html/template"
	"io/fs"
	"log"
	"strings"
	texttemplate "text/template"
	"time"

	"donna_landing_go/config"
	"donna_landing_go/services/i18n"
	"donna_landing_go/templates/emails"

	"github.com/resend/resend-go/v2"
)

// emailTemplates is a variable so tests can swap in their own files
var emailTemplates fs.FS = emails.FS

// Email represents an email message
type Email struct {
	To       []string
	ReplyTo  string
	Subject  string
	HTMLBody string
	TextBody string
}

// buildEmailWithFallback renders a template in lang, retrying in English when
// the localized render fails.
func buildEmailWithFallback(templateName string, lang string, tmplData interface{}, toEmail string) *Email {
	htmlBody, textBody, err := loadTemplate(templateName, lang, tmplData)
	if err != nil {
		log.Printf("Error loading %s email template for lang %s: %v", templateName, lang, err)
		if lang != "en" {
			htmlBody, textBody, err = loadTemplate(templateName, "en", tmplData)
			if err != nil {
				log.Printf("Error loading default 'en' template for %s: %v", templateName, err)
			}
		}
	}

	return &Email{
		To:       []string{toEmail},
		HTMLBody: htmlBody,
		TextBody: textBody,
	}
}

// loadTemplate renders templateName + "_" + lang + ".html/.txt", falling back
// to templateName + ".html/.txt" (English).
func loadTemplate(templateName string, lang string, data interface{}) (html string, text string, err error) {
	read := func(ext string) (string, []byte, error) {
		name := fmt.Sprintf("%s_%s%s", templateName, lang, ext)
		content, err := fs.ReadFile(emailTemplates, name)
		if err == nil {
			return name, content, nil
		}
		name = templateName + ext
		content, err = fs.ReadFile(emailTemplates, name)
		if err != nil {
			return "", nil, fmt.Errorf("failed to read template %s: %w", name, err)
		}
		return name, content, nil
	}

	name, content, err := read(".html")
	if err != nil {
		return "", "", err
	}
	htmlTmpl, err := htmltemplate.New(name).Parse(string(content))
	if err != nil {
		return "", "", fmt.Errorf("failed to parse template %s: %w", name, err)
	}
	var htmlBuf bytes.Buffer
	if err := htmlTmpl.Execute(&htmlBuf, data); err != nil {
		return "", "", fmt.Errorf("failed to execute template %s: %w", name, err)
	}

	name, content, err = read(".txt")
	if err != nil {
		return "", "", err
	}
	textTmpl, err := texttemplate.New(name).Parse(string(content))
	if err != nil {
		return "", "", fmt.Errorf("failed to parse template %s: %w", name, err)
	}
	var textBuf bytes.Buffer
	if err := textTmpl.Execute(&textBuf, data); err != nil {
		return "", "", fmt.Errorf("failed to execute template %s: %w", name, err)
	}

	return htmlBuf.String(), textBuf.String(), nil
}

// SendEmail sends an email using Resend API
func SendEmail(cfg *config.Config, email *Email) error {
	// In development mode, log the email instead of sending
	if cfg.EmailTestMode {
		logEmailToConsole(email)
		log.Printf("Email logged successfully (test mode - not actually sent)")
		return nil
	}

	if cfg.ResendAPIKey == "" {
		return fmt.Errorf("RESEND_API_KEY not configured")
	}

	client := resend.NewClient(cfg.ResendAPIKey)

	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("%s <%s>", cfg.EmailFromName, cfg.EmailFrom),
		To:      email.To,
		Subject: email.Subject,
		Html:    email.HTMLBody,
		Text:    email.TextBody,
	}
	if email.ReplyTo != "" {
		params.ReplyTo = email.ReplyTo
	}

	if params.Html == "" && params.Text == "" {
		return fmt.Errorf("email must have either HTMLBody or TextBody")
	}

	sent, err := client.Emails.Send(params)
	if err != nil {
		return fmt.Errorf("failed to send email via Resend: %w", err)
	}

	log.Printf("Email sent successfully via Resend (ID: %s) to: %v", sent.Id, email.To)
	return nil
}

// logEmailToConsole logs email details to console in test mode
func logEmailToConsole(email *Email) {
	separator := strings.Repeat("=", 80)
	log.Printf("\n%s\nEMAIL (Test Mode - Not Actually Sent)\n%s", separator, separator)
	log.Printf("To: %v", email.To)
	if email.ReplyTo != "" {
		log.Printf("Reply-To: %s", email.ReplyTo)
	}
	log.Printf("Subject: %s", email.Subject)
	log.Printf("\n--- TEXT BODY ---\n%s", email.TextBody)
	log.Printf("\n--- HTML BODY (first 500 chars) ---\n%s...", truncate(email.HTMLBody, 500))
	log.Printf("%s\n", separator)
}

// truncate truncates a string to a maximum length
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen]
}

// SendEmailAsync sends an email in a goroutine so handlers do not block on
// the provider. onSent, if not nil, runs after a successful send.
func SendEmailAsync(cfg *config.Config, email *Email, onSent func()) {
	emailCopy := &Email{
		To:       append([]string{}, email.To...),
		ReplyTo:  email.ReplyTo,
		Subject:  email.Subject,
		HTMLBody: email.HTMLBody,
		TextBody: email.TextBody,
	}

	go func(cfg *config.Config, email *Email) {
		if err := SendEmail(cfg, email); err != nil {
			log.Printf("Error sending async email: %v", err)
			return
		}
		if onSent != nil {
			onSent()
		}
	}(cfg, emailCopy)
}

// ContactEmailData contains data for the contact email templates
type ContactEmailData struct {
	ID         string
	Name       string
	Email      string
	Message    string
	Locale     string
	ReceivedAt string
}

// BuildContactNotificationEmail creates the team notification for a new
// contact message. It is always in English and replies go to the submitter.
func BuildContactNotificationEmail(inbox string, data ContactEmailData) *Email {
	email := buildEmailWithFallback("contact_notification", "en", data, inbox)
	email.ReplyTo = data.Email
	email.Subject = i18n.Translate("en", "email.subject.contact_notification", map[string]interface{}{"name": data.Name})
	return email
}

// BuildContactAcknowledgementEmail creates the confirmation sent to the
// submitter in their language.
func BuildContactAcknowledgementEmail(data ContactEmailData, lang string) *Email {
	email := buildEmailWithFallback("contact_ack", lang, data, data.Email)
	email.Subject = i18n.Translate(lang, "email.subject.contact_ack")
	return email
}

// FormatReceivedAt formats a timestamp for email bodies
func FormatReceivedAt(t time.Time) string {
	return t.UTC().Format("02 Jan 2006 15:04 MST")
}
