package handlers

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

// ProductRoutes map landing page paths to pages of the product application
var ProductRoutes = map[string]string{
	"/login":    "/login",
	"/signup":   "/signup",
	"/trial":    "/signup?plan=trial",
	"/demo":     "/demo",
	"/privacy":  "/legal/privacy",
	"/terms":    "/legal/terms",
	"/gdpr":     "/legal/gdpr",
	"/security": "/legal/security",
}

// ProductRedirectHandler redirects to target on the product application
func ProductRedirectHandler(target string) echo.HandlerFunc {
	return func(c echo.Context) error {
		cfg := getConfig(c)
		if cfg.ProductAppURL == "" {
			return echo.NewHTTPError(http.StatusNotFound, "product application is not configured")
		}
		return c.Redirect(http.StatusFound, strings.TrimRight(cfg.ProductAppURL, "/")+target)
	}
}

// RegisterProductRedirects adds a GET route for every product route
func RegisterProductRedirects(e *echo.Echo) {
	for path, target := range ProductRoutes {
		e.GET(path, ProductRedirectHandler(target))
	}
}
