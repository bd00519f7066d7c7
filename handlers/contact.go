package handlers

import (
	"log"
	"net/http"
	"time"

	"donna_landing_go/db"
	"donna_landing_go/middleware"
	"donna_landing_go/services"
	"donna_landing_go/services/i18n"
	"donna_landing_go/templates/pages"
	"donna_landing_go/templates/partials"
	"donna_landing_go/templates/sections"

	"github.com/labstack/echo/v4"
)

// ContactPostHandler stores a contact form submission and notifies the team.
// HTMX requests get the form back with the outcome; plain posts are redirected
// to the page on success and re-rendered with field errors otherwise.
func ContactPostHandler(c echo.Context) error {
	cfg := getConfig(c)
	lang := middleware.GetLocale(c)

	var sub services.ContactSubmission
	if err := c.Bind(&sub); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form submission")
	}
	sub.Normalize()

	form := sections.ContactForm{Name: sub.Name, Email: sub.Email, Message: sub.Message}
	form.Errors = services.ValidateContactSubmission(lang, sub)

	if len(form.Errors) == 0 && cfg.TurnstileSecretKey != "" {
		ok, err := services.VerifyTurnstile(c.Request().Context(), services.TurnstileCheck{
			Token:  sub.TurnstileToken,
			Secret: cfg.TurnstileSecretKey,
			IP:     c.RealIP(),
			Action: services.TurnstileContactAction,
		})
		if err != nil {
			c.Logger().Warnf("Turnstile verification failed: %v", err)
		}
		if !ok {
			services.TrackContactRejection(c.RealIP(), services.RejectionCaptcha)
			form.Errors["captcha"] = i18n.Translate(lang, "errors.captcha")
		}
	}

	if len(form.Errors) > 0 {
		return renderContact(c, http.StatusUnprocessableEntity, form)
	}

	msg, err := services.CreateContactMessage(db.DB, sub, services.ContactMeta{
		IP:        c.RealIP(),
		UserAgent: c.Request().UserAgent(),
		Locale:    lang,
	}, cfg.HashSecret)
	if err != nil {
		c.Logger().Errorf("Failed to save contact message: %v", err)
		form.Status = sections.ContactStatusFailed
		return renderContact(c, http.StatusInternalServerError, form)
	}

	data := services.ContactEmailData{
		ID:         msg.ID,
		Name:       msg.Name,
		Email:      msg.Email,
		Message:    msg.Message,
		Locale:     msg.Locale,
		ReceivedAt: services.FormatReceivedAt(msg.CreatedAt),
	}
	if cfg.ContactInbox != "" {
		id := msg.ID
		services.SendEmailAsync(cfg, services.BuildContactNotificationEmail(cfg.ContactInbox, data), func() {
			if err := services.MarkContactNotified(db.DB, id, time.Now().UTC()); err != nil {
				log.Printf("[WARNING] Failed to mark contact message %s notified: %v", id, err)
			}
		})
	}
	services.SendEmailAsync(cfg, services.BuildContactAcknowledgementEmail(data, lang), nil)

	if isHTMX(c) {
		return renderContact(c, http.StatusOK, sections.ContactForm{Status: sections.ContactStatusSent})
	}
	return c.Redirect(http.StatusSeeOther, "/?contact=sent#contact")
}

// renderContact answers with the form fragment for HTMX and the whole page otherwise.
func renderContact(c echo.Context, status int, form sections.ContactForm) error {
	vm, err := landingViewModel(c, form)
	if err != nil {
		return err
	}
	ctx := c.Request().Context()
	if isHTMX(c) {
		return render(c, status, partials.ContactForm(ctx, vm))
	}
	return render(c, status, pages.Landing(ctx, vm))
}
