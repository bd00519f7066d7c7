// Package layouts renders the document shell of the landing page.
package layouts

import (
	"context"
	"io"

	"donna_landing_go/middleware"
	"donna_landing_go/models"
	"donna_landing_go/services/i18n"
	"donna_landing_go/templates/components"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

const (
	htmxSrc      = "https://unpkg.com/htmx.org@2.0.4"
	turnstileSrc = "https://challenges.cloudflare.com/turnstile/v0/api.js"
	fontsCSS     = "https://fonts.googleapis.com/css2?family=Inter:wght@400;500;600;700;800&display=swap"
)

// BaseData is the document-level data of a page.
type BaseData struct {
	SEO *models.SEO
	// BaseURL prefixes the hreflang alternates.
	BaseURL string
	// WidgetConfig is embedded as JSON for the page script.
	WidgetConfig     interface{}
	TurnstileSiteKey string
}

// Base renders the document shell around body.
func Base(data BaseData, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return Document(ctx, data, components.Node(ctx, body)).Render(w)
	})
}

// Document is the whole page: head, loader, body and the trailing scripts.
func Document(ctx context.Context, data BaseData, body g.Node) g.Node {
	nonce := middleware.GetNonce(ctx)
	return h.Doctype(h.HTML(
		h.Lang(i18n.GetLocale(ctx)),
		h.Head(headNodes(ctx, data)...),
		h.Body(
			h.Class("is-loading"),
			spinner(ctx),
			body,
			g.If(data.WidgetConfig != nil, components.ScriptJSON("widget-config", data.WidgetConfig)),
			script(htmxSrc, nonce, h.Defer()),
			g.If(data.TurnstileSiteKey != "", script(turnstileSrc, nonce, h.Async(), h.Defer())),
			script(middleware.AssetURL(ctx, "js/landing.js"), nonce, h.Defer()),
		),
	))
}

// Head renders the metadata, stylesheets and structured data.
func Head(data BaseData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return g.Group(headNodes(ctx, data)).Render(w)
	})
}

// LoadingSpinner is the full-screen overlay shown until the page script runs.
func LoadingSpinner() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return spinner(ctx).Render(w)
	})
}

func headNodes(ctx context.Context, data BaseData) []g.Node {
	seo := data.SEO
	if seo == nil {
		seo = models.DefaultSEO("", "")
	}

	nodes := []g.Node{
		h.Meta(h.Charset("utf-8")),
		h.Meta(h.Name("viewport"), h.Content("width=device-width, initial-scale=1")),
		h.TitleEl(g.Text(seo.Title)),
		meta("name", "description", seo.Description),
		meta("name", "keywords", seo.Keywords),
		g.If(seo.NoIndex, meta("name", "robots", "noindex, nofollow")),
		g.If(seo.Canonical != "", h.Link(h.Rel("canonical"), h.Href(seo.Canonical))),
	}
	if data.BaseURL != "" {
		for _, alt := range append([]string{seo.Locale}, seo.AltLocales...) {
			if alt == "" {
				continue
			}
			nodes = append(nodes, h.Link(h.Rel("alternate"), g.Attr("hreflang", alt), h.Href(data.BaseURL+"/?lang="+alt)))
		}
	}
	nodes = append(nodes,
		meta("property", "og:title", seo.Title),
		meta("property", "og:description", seo.Description),
		meta("property", "og:type", seo.OGType),
		meta("property", "og:url", seo.Canonical),
		meta("property", "og:image", seo.OGImage),
		meta("property", "og:locale", seo.Locale),
		meta("name", "twitter:card", seo.TwitterCard),
		meta("name", "twitter:title", seo.Title),
		meta("name", "twitter:description", seo.Description),
		meta("name", "twitter:image", seo.OGImage),
		h.Link(h.Rel("icon"), h.Type("image/png"), h.Href(middleware.AssetURL(ctx, "images/favicon.png"))),
		h.Link(h.Rel("preconnect"), h.Href("https://fonts.googleapis.com")),
		h.Link(h.Rel("preconnect"), h.Href("https://fonts.gstatic.com"), h.CrossOrigin("")),
		h.Link(h.Rel("stylesheet"), h.Href(fontsCSS)),
		h.Link(h.Rel("stylesheet"), h.Href(middleware.AssetURL(ctx, "css/style.css"))),
		h.NoScript(h.StyleEl(g.Raw(".page-loader{display:none}"))),
	)
	// JSONLD comes from encoding/json, which escapes "<".
	if seo.JSONLD != "" {
		nodes = append(nodes, h.Script(h.Type("application/ld+json"), g.Attr("nonce", middleware.GetNonce(ctx)), g.Raw(seo.JSONLD)))
	}
	return nodes
}

func spinner(ctx context.Context) g.Node {
	return h.Div(
		h.ID("page-loader"),
		h.Class("page-loader"),
		h.Role("status"),
		h.Aria("live", "polite"),
		h.Div(h.Class("spinner"), h.Aria("hidden", "true")),
		h.Span(h.Class("sr-only"), g.Text(i18n.T(ctx, "loading"))),
	)
}

func meta(attr, key, value string) g.Node {
	if value == "" {
		return nil
	}
	return h.Meta(g.Attr(attr, key), h.Content(value))
}

func script(src, nonce string, attrs ...g.Node) g.Node {
	return h.Script(h.Src(src), g.Attr("nonce", nonce), g.Group(attrs))
}
