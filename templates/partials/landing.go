// Package partials renders the HTML fragments returned to HTMX requests.
package partials

import (
	"context"

	"donna_landing_go/models"
	"donna_landing_go/services/i18n"
	"donna_landing_go/templates/components"
	"donna_landing_go/templates/pages"
	"donna_landing_go/templates/sections"

	"github.com/a-h/templ"
)

// ContactForm renders the contact form with its submission outcome.
func ContactForm(ctx context.Context, vm pages.LandingViewModel) templ.Component {
	return components.Templ(sections.ContactFormNode(vm.View(i18n.GetLocale(ctx))))
}

// Testimonial renders one carousel slide with its controls.
func Testimonial(ctx context.Context, items []models.Testimonial, index int) templ.Component {
	return components.Templ(sections.TestimonialSlide(i18n.GetLocale(ctx), items, index))
}

// Error renders a translated error alert.
func Error(ctx context.Context, key string) templ.Component {
	return components.Templ(sections.ErrorAlert(i18n.GetLocale(ctx), key))
}
