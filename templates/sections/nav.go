package sections

import (
	"strconv"

	"donna_landing_go/services/widgets"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// navLinks are the in-page anchors of the navbar, in display order.
var navLinks = []struct{ href, key string }{
	{"#features", "nav.features"},
	{"#testimonials", "nav.testimonials"},
	{"#pricing", "nav.pricing"},
	{"#contact", "nav.contact"},
}

// Navbar renders the fixed navbar and the mobile menu. The navbar starts
// transparent; the script adds navbar-solid past the threshold.
func Navbar(v View) g.Node {
	brand := v.content().Brand
	links := make([]g.Node, 0, len(navLinks))
	mobile := make([]g.Node, 0, len(navLinks))
	for _, l := range navLinks {
		links = append(links, A(Href(l.href), Class("nav-link"), g.Text(v.t(l.key))))
		mobile = append(mobile, A(Href(l.href), Class("mobile-link"), g.Attr("data-nav-link", ""), g.Text(v.t(l.key))))
	}

	return Nav(
		ID("navbar"),
		Class("navbar"),
		g.Attr("data-solid-threshold", strconv.Itoa(widgets.NavbarSolidThreshold)),
		Div(
			Class("container navbar-inner"),
			A(Href("#hero"), Class("brand"),
				Span(Class("brand-name"), g.Text(brand.Name)),
				g.If(brand.Badge != "", Span(Class("brand-badge"), g.Text(brand.Badge))),
			),
			Div(Class("nav-links"), g.Group(links)),
			Div(
				Class("nav-actions"),
				languageSwitch(v),
				A(Href("/login"), Class("btn btn-ghost"), g.Text(v.t("nav.login"))),
				A(Href("/signup"), Class("btn btn-primary"), g.Text(v.t("nav.signup"))),
			),
			Button(
				Type("button"),
				ID("mobile-menu-button"),
				Class("mobile-menu-button"),
				g.Attr("aria-controls", "mobile-menu"),
				g.Attr("aria-expanded", "false"),
				g.Attr("aria-label", v.t("nav.open_menu")),
				g.Attr("data-label-open", v.t("nav.open_menu")),
				g.Attr("data-label-close", v.t("nav.close_menu")),
				icon("menu", "icon"),
			),
		),
		Div(
			ID("mobile-menu"),
			Class("mobile-menu"),
			g.Attr("hidden", ""),
			g.Group(mobile),
			A(Href("/login"), Class("mobile-link"), g.Attr("data-nav-link", ""), g.Text(v.t("nav.login"))),
			A(Href("/signup"), Class("btn btn-primary"), g.Attr("data-nav-link", ""), g.Text(v.t("nav.signup"))),
		),
	)
}

func languageSwitch(v View) g.Node {
	if len(v.Languages) < 2 {
		return nil
	}
	items := make([]g.Node, 0, len(v.Languages))
	for _, lang := range v.Languages {
		a := A(
			Href("/?lang="+lang),
			g.Attr("hreflang", lang),
			g.Attr("lang", lang),
			Class("lang-option"),
			g.If(lang == v.Lang, g.Attr("aria-current", "true")),
			g.Text(v.t("language."+lang)),
		)
		items = append(items, a)
	}
	return Div(Class("lang-switch"), g.Attr("role", "group"), g.Attr("aria-label", v.t("nav.language")), g.Group(items))
}
