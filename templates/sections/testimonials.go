package sections

import (
	"strconv"

	"donna_landing_go/models"
	"donna_landing_go/services/i18n"
	"donna_landing_go/services/widgets"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// StageID is the element the carousel fragments are swapped into.
const StageID = "testimonial-stage"

// Testimonials renders the carousel section with the first slide active.
func Testimonials(v View) g.Node {
	c := v.content()
	p := v.Page
	return Section(
		ID("testimonials"),
		Class("section"),
		Div(
			Class("container"),
			heading(p, "testimonials-heading", c.Headings.Testimonials),
			Div(
				Class("carousel"),
				Animated(p, "testimonials-carousel"),
				g.Attr("data-autoplay-ms", strconv.FormatInt(p.Timings.Autoplay.Milliseconds(), 10)),
				g.Attr("data-lock-ms", strconv.FormatInt(p.Timings.Lock.Milliseconds(), 10)),
				g.Attr("data-count", strconv.Itoa(len(p.Testimonials))),
				g.Attr("aria-roledescription", "carousel"),
				Div(
					ID(StageID),
					Class("carousel-stage"),
					g.Attr("aria-live", "polite"),
					TestimonialSlide(v.Lang, p.Testimonials, 0),
				),
			),
		),
	)
}

// TestimonialSlide renders the slide at index together with its controls.
// index wraps around the list in both directions. The controls fetch the
// neighbouring slides into the stage.
func TestimonialSlide(lang string, items []models.Testimonial, index int) g.Node {
	n := len(items)
	if n == 0 {
		return nil
	}
	index = widgets.WrapIndex(index, n)
	t := items[index]
	tr := func(key string, args ...map[string]interface{}) string {
		return i18n.Translate(lang, key, args...)
	}

	control := func(class, label, iconName string, to int) g.Node {
		return Button(
			Type("button"),
			Class(class),
			g.Attr("aria-label", label),
			g.Attr("data-carousel-to", strconv.Itoa(to)),
			g.Attr("hx-get", "/htmx/testimonials/"+strconv.Itoa(to)),
			g.Attr("hx-target", "#"+StageID),
			g.Attr("hx-swap", "innerHTML"),
			icon(iconName, "icon"),
		)
	}

	dots := make([]g.Node, 0, n)
	for i := range items {
		label := tr("carousel.go_to", map[string]interface{}{"n": i + 1})
		dot := control("carousel-dot", label, "", i)
		if i == index {
			dot = Button(
				Type("button"),
				Class("carousel-dot active"),
				g.Attr("aria-label", label),
				g.Attr("aria-current", "true"),
				g.Attr("data-carousel-to", strconv.Itoa(i)),
			)
		}
		dots = append(dots, dot)
	}

	return Div(
		Class("carousel-slide"),
		g.Attr("data-index", strconv.Itoa(index)),
		g.Attr("role", "group"),
		g.Attr("aria-roledescription", "slide"),
		g.Attr("aria-label", strconv.Itoa(index+1)+" / "+strconv.Itoa(n)),
		Figure(
			Class("testimonial-card"),
			icon("quote", "icon icon-quote"),
			BlockQuote(P(g.Text(t.Quote))),
			FigCaption(
				Class("testimonial-author"),
				g.If(t.Image != "", Img(Src(t.Image), Alt(t.Name), Class("testimonial-avatar"), g.Attr("loading", "lazy"), g.Attr("width", "64"), g.Attr("height", "64"))),
				Div(
					Strong(g.Text(t.Name)),
					Span(Class("testimonial-role"), g.Text(t.Role)),
				),
			),
		),
		Div(
			Class("carousel-controls"),
			control("carousel-prev", tr("carousel.previous"), "chevron-left", widgets.WrapIndex(index-1, n)),
			Div(Class("carousel-dots"), g.Group(dots)),
			control("carousel-next", tr("carousel.next"), "chevron-right", widgets.WrapIndex(index+1, n)),
		),
	)
}
