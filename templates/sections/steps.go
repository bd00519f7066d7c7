package sections

import (
	"fmt"
	"strconv"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// HowItWorks renders the numbered steps.
func HowItWorks(v View) g.Node {
	c := v.content()
	p := v.Page

	steps := make([]g.Node, 0, len(c.Steps))
	for i, s := range c.Steps {
		steps = append(steps, Div(
			Class("step"),
			Animated(p, fmt.Sprintf("step-%d", i)),
			Div(Class("step-number"), g.Text(strconv.Itoa(i+1))),
			H3(g.Text(s.Title)),
			P(g.Text(s.Description)),
		))
	}

	return Section(
		ID("how-it-works"),
		Class("section section-alt"),
		Div(
			Class("container"),
			heading(p, "how-heading", c.Headings.How),
			Div(Class("grid grid-3 steps"), g.Group(steps)),
		),
	)
}
