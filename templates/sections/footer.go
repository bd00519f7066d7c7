package sections

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

var legalLinks = []struct{ href, key string }{
	{"/privacy", "footer.privacy"},
	{"/terms", "footer.terms"},
	{"/gdpr", "footer.gdpr"},
	{"/security", "footer.security"},
}

// PageFooter renders the footer.
func PageFooter(v View) g.Node {
	c := v.content()
	f := c.Footer

	quick := make([]g.Node, 0, len(navLinks))
	for _, l := range navLinks {
		quick = append(quick, Li(A(Href(l.href), g.Text(v.t(l.key)))))
	}
	legal := make([]g.Node, 0, len(legalLinks))
	for _, l := range legalLinks {
		legal = append(legal, Li(A(Href(l.href), g.Text(v.t(l.key)))))
	}
	social := make([]g.Node, 0, len(f.Social))
	for _, s := range f.Social {
		social = append(social, Li(A(Href(s.Href), g.Attr("target", "_blank"), g.Attr("rel", "noopener noreferrer"), g.Text(s.Label))))
	}

	return Footer(
		Class("footer"),
		Div(
			Class("container footer-grid"),
			Div(
				Class("footer-brand"),
				Span(Class("brand-name"), g.Text(c.Brand.Name)),
				P(g.Text(f.Tagline)),
			),
			Div(H4(g.Text(v.t("footer.quick_links"))), Ul(g.Group(quick))),
			Div(H4(g.Text(v.t("footer.legal"))), Ul(g.Group(legal))),
			Div(
				H4(g.Text(v.t("footer.connect"))),
				Ul(g.Group(social)),
				g.If(f.Email != "", A(
					Href("mailto:"+f.Email),
					Class("footer-email"),
					g.Attr("aria-label", v.t("footer.email_us")),
					icon("mail", "icon icon-sm"),
					g.Text(" "+f.Email),
				)),
			),
		),
		Div(Class("container footer-bottom"), P(g.Text(f.Copyright))),
	)
}
