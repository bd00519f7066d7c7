package sections

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// Pricing renders the single plan panel.
func Pricing(v View) g.Node {
	c := v.content()
	plan := c.Pricing
	p := v.Page

	items := make([]g.Node, 0, len(plan.Items))
	for _, it := range plan.Items {
		text := g.Text(it.Text)
		if it.Lead != "" {
			text = g.Group{Strong(g.Text(it.Lead)), g.Text(" - " + it.Text)}
		}
		items = append(items, Li(icon("check", "icon icon-sm"), Span(text)))
	}

	return Section(
		ID("pricing"),
		Class("section"),
		Div(
			Class("container"),
			heading(p, "pricing-heading", c.Headings.Pricing),
			Div(
				Class("pricing-card"),
				Animated(p, "pricing-plan"),
				g.If(plan.Badge != "", Span(Class("pricing-badge"), g.Text(plan.Badge))),
				H3(Class("pricing-name"), g.Text(plan.Name)),
				Div(
					Class("pricing-price"),
					Span(Class("price"), g.Text(plan.Price)),
					Span(Class("period"), g.Text(plan.Period)),
				),
				g.If(plan.Note != "", P(Class("pricing-note"), g.Text(plan.Note))),
				Ul(Class("pricing-items"), g.Group(items)),
				A(Href(plan.CTA.Href), Class("btn btn-primary btn-lg btn-block"), g.Text(plan.CTA.Label)),
				g.If(plan.Footnote != "", P(Class("pricing-footnote"), g.Text(plan.Footnote))),
			),
		),
	)
}
