package handlers

import (
	"net/http"

	"donna_landing_go/config"
	"donna_landing_go/middleware"
	"donna_landing_go/services/i18n"
	"donna_landing_go/services/landing"
	"donna_landing_go/templates/pages"
	"donna_landing_go/templates/sections"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
)

// Context keys set by the server for every request
const (
	ConfigKey  = "config"
	LandingKey = "landing"
)

func getConfig(c echo.Context) *config.Config {
	cfg, _ := c.Get(ConfigKey).(*config.Config)
	if cfg == nil {
		cfg = &config.Config{}
	}
	return cfg
}

func getLandingPage(c echo.Context) *landing.Page {
	p, _ := c.Get(LandingKey).(*landing.Page)
	return p
}

func isHTMX(c echo.Context) bool {
	return c.Request().Header.Get("HX-Request") == "true"
}

// render writes an HTML component with the given status.
func render(c echo.Context, status int, component templ.Component) error {
	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	c.Response().WriteHeader(status)
	return component.Render(c.Request().Context(), c.Response().Writer)
}

// landingViewModel collects the request-scoped data of the landing page.
func landingViewModel(c echo.Context, form sections.ContactForm) (pages.LandingViewModel, error) {
	page := getLandingPage(c)
	if page == nil {
		return pages.LandingViewModel{}, echo.NewHTTPError(http.StatusServiceUnavailable, "landing page is not loaded")
	}
	cfg := getConfig(c)
	return pages.LandingViewModel{
		Page:             page,
		SEO:              LandingSEO(cfg, page.Content, middleware.GetLocale(c)),
		BaseURL:          baseURL(cfg),
		CSRFToken:        middleware.GetCSRFToken(c),
		TurnstileSiteKey: cfg.TurnstileSiteKey,
		Languages:        i18n.Languages(),
		Contact:          form,
	}, nil
}

// LandingHandler renders the landing page. ?contact=sent shows the
// confirmation after a plain form post.
func LandingHandler(c echo.Context) error {
	var form sections.ContactForm
	if c.QueryParam("contact") == sections.ContactStatusSent {
		form.Status = sections.ContactStatusSent
	}

	vm, err := landingViewModel(c, form)
	if err != nil {
		return err
	}
	return render(c, http.StatusOK, pages.Landing(c.Request().Context(), vm))
}

// WidgetConfigHandler returns the widget timings and per-block parameters.
func WidgetConfigHandler(c echo.Context) error {
	page := getLandingPage(c)
	if page == nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "landing page is not loaded")
	}
	c.Response().Header().Set("Cache-Control", "public, max-age=300")
	return c.JSON(http.StatusOK, page.Config())
}
