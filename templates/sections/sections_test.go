package sections

import (
	"bytes"
	"testing"

	"donna_landing_go/services/i18n"
	"donna_landing_go/services/landing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

func testView(t *testing.T) View {
	t.Helper()
	require.NoError(t, i18n.Load())
	content, err := landing.LoadContent("")
	require.NoError(t, err)
	p, err := landing.Build(content, landing.Timings{}, nil)
	require.NoError(t, err)
	return View{Page: p, Lang: "en", Languages: []string{"en", "hi"}, CSRFToken: "tok"}
}

func render(t *testing.T, n g.Node) *goquery.Document {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, Div(n).Render(&buf))
	doc, err := goquery.NewDocumentFromReader(&buf)
	require.NoError(t, err)
	return doc
}

func TestAnimated(t *testing.T) {
	v := testView(t)

	t.Run("Reveal", func(t *testing.T) {
		doc := render(t, Div(Animated(v.Page, "hero-subtitle")))
		el := doc.Find("#hero-subtitle")
		require.Equal(t, 1, el.Length())
		assert.Equal(t, "reveal", el.AttrOr("data-widget", ""))
		assert.Equal(t, "300", el.AttrOr("data-delay", ""))
		assert.Equal(t, "700", el.AttrOr("data-duration", ""))
		assert.Equal(t, "20", el.AttrOr("data-offset", ""))
		assert.Contains(t, el.AttrOr("style", ""), "opacity:0;")
	})

	t.Run("Scale", func(t *testing.T) {
		el := render(t, Div(Animated(v.Page, "pricing-plan"))).Find("#pricing-plan")
		assert.Equal(t, "scale", el.AttrOr("data-widget", ""))
		assert.Equal(t, "0.9", el.AttrOr("data-scale", ""))
		_, hasOffset := el.Attr("data-offset")
		assert.False(t, hasOffset)
	})

	t.Run("Counter", func(t *testing.T) {
		el := render(t, Div(Animated(v.Page, "stat-cases"))).Find("#stat-cases")
		assert.Equal(t, "counter", el.AttrOr("data-widget", ""))
		assert.Equal(t, "10", el.AttrOr("data-counter-target", ""))
		assert.Equal(t, "K", el.AttrOr("data-counter-suffix", ""))
		_, hasStyle := el.Attr("style")
		assert.False(t, hasStyle)
	})

	t.Run("Unknown", func(t *testing.T) {
		el := render(t, Div(Animated(v.Page, "nope"))).Find("#nope")
		require.Equal(t, 1, el.Length())
		_, hasWidget := el.Attr("data-widget")
		assert.False(t, hasWidget)
	})
}

func TestStatsRenderIdleCounters(t *testing.T) {
	doc := render(t, Stats(testView(t)))

	assert.Equal(t, "0+", doc.Find("#stat-firms").Text())
	assert.Equal(t, "0K+", doc.Find("#stat-cases").Text())
	assert.Equal(t, "0%+", doc.Find("#stat-satisfaction").Text())
	assert.Equal(t, 3, doc.Find(".stat-card").Length())
}

func TestTestimonialSlide(t *testing.T) {
	v := testView(t)
	items := v.Page.Testimonials

	t.Run("First", func(t *testing.T) {
		doc := render(t, TestimonialSlide("en", items, 0))
		assert.Equal(t, "0", doc.Find(".carousel-slide").AttrOr("data-index", ""))
		assert.Contains(t, doc.Find("figcaption strong").Text(), "Rajesh Sharma")
		assert.Equal(t, "/htmx/testimonials/3", doc.Find(".carousel-prev").AttrOr("hx-get", ""))
		assert.Equal(t, "/htmx/testimonials/1", doc.Find(".carousel-next").AttrOr("hx-get", ""))
		assert.Equal(t, "Previous testimonial", doc.Find(".carousel-prev").AttrOr("aria-label", ""))
		assert.Equal(t, len(items), doc.Find(".carousel-dot").Length())
		assert.Equal(t, "true", doc.Find(".carousel-dot.active").AttrOr("aria-current", ""))
	})

	t.Run("Wraps", func(t *testing.T) {
		doc := render(t, TestimonialSlide("en", items, -1))
		assert.Equal(t, "3", doc.Find(".carousel-slide").AttrOr("data-index", ""))
		assert.Equal(t, "/htmx/testimonials/0", doc.Find(".carousel-next").AttrOr("hx-get", ""))
	})

	t.Run("Localized", func(t *testing.T) {
		doc := render(t, TestimonialSlide("hi", items, 0))
		assert.NotEqual(t, "Previous testimonial", doc.Find(".carousel-prev").AttrOr("aria-label", ""))
	})

	t.Run("Empty", func(t *testing.T) {
		assert.Nil(t, TestimonialSlide("en", nil, 0))
	})
}

func TestContactFormNode(t *testing.T) {
	v := testView(t)

	t.Run("Blank", func(t *testing.T) {
		doc := render(t, ContactFormNode(v))
		form := doc.Find("#" + FormID)
		require.Equal(t, 1, form.Length())
		assert.Equal(t, "/contact", form.AttrOr("hx-post", ""))
		assert.Equal(t, "tok", form.Find(`input[name="_csrf"]`).AttrOr("value", ""))
		assert.Equal(t, 1, form.Find(`textarea[name="message"]`).Length())
		assert.Equal(t, "email", form.Find(`input[name="email"]`).AttrOr("type", ""))
		assert.Equal(t, 0, form.Find(".form-alert").Length())
		assert.Equal(t, 0, form.Find(".cf-turnstile").Length())
	})

	t.Run("ErrorsAndValues", func(t *testing.T) {
		v := v
		v.TurnstileSiteKey = "site-key"
		v.Contact = ContactForm{
			Name:    "Asha",
			Email:   "bad",
			Message: "<b>hi</b>",
			Errors:  map[string]string{"email": "Please enter a valid email address"},
		}
		doc := render(t, ContactFormNode(v))

		assert.Equal(t, "Asha", doc.Find(`input[name="name"]`).AttrOr("value", ""))
		assert.Equal(t, "<b>hi</b>", doc.Find(`textarea[name="message"]`).Text())
		email := doc.Find(`input[name="email"]`)
		assert.Equal(t, "true", email.AttrOr("aria-invalid", ""))
		assert.Equal(t, "Please enter a valid email address", doc.Find("#contact-email-error").Text())
		assert.Equal(t, "site-key", doc.Find(".cf-turnstile").AttrOr("data-sitekey", ""))
	})

	t.Run("Sent", func(t *testing.T) {
		v := v
		v.Contact = ContactForm{Status: ContactStatusSent}
		doc := render(t, ContactFormNode(v))
		alert := doc.Find(".form-alert-success")
		require.Equal(t, 1, alert.Length())
		assert.Contains(t, alert.Text(), "Thanks for reaching out")
	})
}

func TestNavbar(t *testing.T) {
	v := testView(t)
	v.Lang = "hi"
	doc := render(t, Navbar(v))

	assert.Equal(t, "50", doc.Find("#navbar").AttrOr("data-solid-threshold", ""))
	assert.Equal(t, "false", doc.Find("#mobile-menu-button").AttrOr("aria-expanded", ""))
	_, hidden := doc.Find("#mobile-menu").Attr("hidden")
	assert.True(t, hidden)
	assert.Equal(t, 4, doc.Find(".nav-link").Length())
	assert.Equal(t, "true", doc.Find(`.lang-option[hreflang="hi"]`).AttrOr("aria-current", ""))
	assert.Equal(t, 6, doc.Find("#mobile-menu [data-nav-link]").Length())
}

func TestPageFooter(t *testing.T) {
	doc := render(t, PageFooter(testView(t)))

	assert.Equal(t, "mailto:contact@donna.ai", doc.Find(".footer-email").AttrOr("href", ""))
	assert.Equal(t, 3, doc.Find(`a[target="_blank"]`).Length())
	assert.Contains(t, doc.Find(".footer-bottom").Text(), "DONNA Technologies")
	assert.Equal(t, 1, doc.Find(`a[href="/privacy"]`).Length())
}
