package sections

import (
	"fmt"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// Features renders the primary feature cards and the additional features.
func Features(v View) g.Node {
	c := v.content()
	p := v.Page

	cards := make([]g.Node, 0, len(c.Features))
	for i, f := range c.Features {
		details := make([]g.Node, 0, len(f.Details))
		for _, d := range f.Details {
			details = append(details, Li(icon("check", "icon icon-sm"), Span(g.Text(d))))
		}
		cards = append(cards, Div(
			Class("feature-card"),
			Animated(p, fmt.Sprintf("feature-%d", i)),
			Div(Class("feature-icon"), icon(f.Icon, "icon")),
			H3(g.Text(f.Title)),
			P(g.Text(f.Description)),
			g.If(len(details) > 0, Ul(Class("feature-details"), g.Group(details))),
		))
	}

	var more g.Node
	if len(c.AdditionalFeatures) > 0 {
		items := make([]g.Node, 0, len(c.AdditionalFeatures))
		for i, f := range c.AdditionalFeatures {
			items = append(items, Div(
				Class("more-feature"),
				Animated(p, fmt.Sprintf("more-feature-%d", i)),
				Div(Class("feature-icon"), icon(f.Icon, "icon")),
				Div(H4(g.Text(f.Title)), P(g.Text(f.Description))),
			))
		}
		more = Div(
			Class("more-features"),
			heading(p, "more-features-heading", c.Headings.MoreFeatures),
			Div(Class("grid grid-2"), g.Group(items)),
		)
	}

	return Section(
		ID("features"),
		Class("section"),
		Div(
			Class("container"),
			heading(p, "features-heading", c.Headings.Features),
			Div(Class("grid grid-3"), g.Group(cards)),
			more,
		),
	)
}
