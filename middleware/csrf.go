package middleware

import (
	"context"
	"net/http"

	"donna_landing_go/config"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
)

// CSRFFieldName is the hidden form field carrying the token
const CSRFFieldName = "_csrf"

// csrfContextKey stores the token on the request context for components
const csrfContextKey contextKey = "csrf_token"

// CSRF protects unsafe methods with a double-submit cookie. Forms post the
// token as _csrf; HTMX requests may send it as X-CSRF-Token.
func CSRF(cfg *config.Config) echo.MiddlewareFunc {
	csrf := echomiddleware.CSRFWithConfig(echomiddleware.CSRFConfig{
		TokenLookup:    "form:" + CSRFFieldName + ",header:" + echo.HeaderXCSRFToken,
		ContextKey:     "csrf",
		CookieName:     CSRFFieldName,
		CookiePath:     "/",
		CookieHTTPOnly: true,
		CookieSecure:   cfg.IsProduction(),
		CookieSameSite: http.SameSiteLaxMode,
	})

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return csrf(func(c echo.Context) error {
			// Expose the token to components rendered from the request context
			ctx := context.WithValue(c.Request().Context(), csrfContextKey, GetCSRFToken(c))
			c.SetRequest(c.Request().WithContext(ctx))
			return next(c)
		})
	}
}

// GetCSRFToken retrieves the CSRF token from the Echo context
func GetCSRFToken(c echo.Context) string {
	token := c.Get("csrf")
	if token == nil {
		return ""
	}
	if tokenStr, ok := token.(string); ok {
		return tokenStr
	}
	return ""
}

// CSRFTokenFromContext retrieves the token stored by CSRF on the request context
func CSRFTokenFromContext(ctx context.Context) string {
	if val, ok := ctx.Value(csrfContextKey).(string); ok {
		return val
	}
	return ""
}
