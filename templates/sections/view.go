// Package sections renders the landing page sections. Every animated element
// carries its reveal or counter parameters as data attributes and its hidden
// start style inline, so the page is correct before the script runs and the
// script only has to replay the transitions.
package sections

import (
	"strconv"

	"donna_landing_go/models"
	"donna_landing_go/services/i18n"
	"donna_landing_go/services/landing"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// View is the per-request data the sections render from.
type View struct {
	Page             *landing.Page
	Lang             string
	Languages        []string
	CSRFToken        string
	TurnstileSiteKey string
	Contact          ContactForm
}

func (v View) t(key string, args ...map[string]interface{}) string {
	return i18n.Translate(v.Lang, key, args...)
}

func (v View) content() *models.LandingContent {
	return v.Page.Content
}

// Animated returns the attributes of the block with the given id: the element
// id, its widget parameters and its initial inline style. Unknown ids only get
// the id attribute.
func Animated(p *landing.Page, id string) g.Node {
	b, ok := p.Block(id)
	if !ok {
		return ID(id)
	}

	attrs := g.Group{ID(id), g.Attr("data-widget", string(b.Kind))}
	if b.Kind == landing.BlockCounter {
		return append(attrs,
			g.Attr("data-counter-target", strconv.Itoa(b.Stat.Target)),
			g.Attr("data-counter-suffix", b.Stat.Suffix),
		)
	}

	attrs = append(attrs,
		g.Attr("data-delay", strconv.FormatInt(b.Reveal.Delay.Milliseconds(), 10)),
		g.Attr("data-duration", strconv.FormatInt(b.Reveal.Duration.Milliseconds(), 10)),
	)
	if b.Reveal.Scale > 0 {
		attrs = append(attrs, g.Attr("data-scale", strconv.FormatFloat(b.Reveal.Scale, 'f', -1, 64)))
	} else {
		attrs = append(attrs, g.Attr("data-offset", strconv.FormatFloat(b.Reveal.Offset, 'f', -1, 64)))
	}
	if style := p.InitialStyle(id); style != "" {
		attrs = append(attrs, Style(style))
	}
	return attrs
}

// heading renders a section title with its gradient highlight and subtitle.
func heading(p *landing.Page, id string, h models.Heading) g.Node {
	return Div(
		Class("section-heading"),
		Animated(p, id),
		H2(
			Class("section-title"),
			g.If(h.Lead != "", g.Text(h.Lead+" ")),
			Span(Class("text-gradient"), g.Text(h.Highlight)),
			g.If(h.Tail != "", g.Text(" "+h.Tail)),
		),
		g.If(h.Subtitle != "", P(Class("section-subtitle"), g.Text(h.Subtitle))),
	)
}
