package sections

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// Hero renders the top section.
func Hero(v View) g.Node {
	h := v.content().Hero
	p := v.Page
	return Section(
		ID("hero"),
		Class("hero"),
		Div(
			Class("container hero-inner"),
			H1(
				Class("hero-title"),
				Animated(p, "hero-title"),
				g.Text(h.TitleLead+" "),
				Span(Class("text-gradient"), g.Text(h.Highlight)),
				g.Text(" "+h.TitleTail),
				Br(),
				Span(Class("text-gradient text-gradient-animated"), g.Text(h.Gradient)),
			),
			P(Class("hero-subtitle"), Animated(p, "hero-subtitle"), g.Text(h.Subtitle)),
			Div(
				Class("hero-actions"),
				Animated(p, "hero-actions"),
				A(Href(h.Primary.Href), Class("btn btn-primary btn-lg"), g.Text(h.Primary.Label)),
				A(Href(h.Secondary.Href), Class("btn btn-outline btn-lg"), g.Text(h.Secondary.Label)),
			),
		),
	)
}
