package sections

import (
	"donna_landing_go/services/widgets"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// Stats renders the statistic cards. Counters render their idle value; the
// script counts them up on first visibility.
func Stats(v View) g.Node {
	c := v.content()
	p := v.Page

	cards := make([]g.Node, 0, len(c.Stats))
	for _, s := range c.Stats {
		cards = append(cards, Div(
			Class("stat-card"),
			Animated(p, "stat-card-"+s.ID),
			Div(Class("stat-value"), Animated(p, "stat-"+s.ID), g.Text(widgets.FormatCounter(0, s.Suffix))),
			H3(Class("stat-label"), g.Text(s.Label)),
			P(Class("stat-caption"), g.Text(s.Caption)),
		))
	}

	return Section(
		ID("stats"),
		Class("section section-alt"),
		Div(
			Class("container"),
			heading(p, "stats-heading", c.Headings.Stats),
			Div(Class("grid grid-3"), g.Group(cards)),
		),
	)
}
