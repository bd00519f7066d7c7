package middleware

import (
	"net/http"
	"strings"
	"time"

	"donna_landing_go/config"
	"donna_landing_go/services/i18n"

	"github.com/labstack/echo/v4"
)

const defaultLocale = "en"

// Locale middleware handles language detection and persistence.
// Priority:
// 1. Query param "lang" (sets cookie)
// 2. Cookie "lang"
// 3. Accept-Language header
// 4. Default ("en")
func Locale(cfg *config.Config) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			lang := ""
			if q := c.QueryParam("lang"); q != "" {
				lang = normalizeLocale(q)
				if lang == "" {
					lang = defaultLocale
				}
				SetLanguageCookie(c, cfg, lang)
			} else if cookie, err := c.Cookie("lang"); err == nil {
				lang = normalizeLocale(cookie.Value)
			}

			if lang == "" {
				lang = localeFromAcceptLanguage(c.Request().Header.Get("Accept-Language"))
			}

			c.Set("locale", lang)
			ctx := i18n.WithLocale(c.Request().Context(), lang)
			c.SetRequest(c.Request().WithContext(ctx))

			return next(c)
		}
	}
}

// normalizeLocale maps "hi-IN" to "hi" and returns "" for unsupported languages
func normalizeLocale(tag string) string {
	tag = strings.ToLower(strings.TrimSpace(tag))
	if i := strings.IndexAny(tag, "-_"); i >= 0 {
		tag = tag[:i]
	}
	if tag == "" || !i18n.IsSupported(tag) {
		return ""
	}
	return tag
}

// localeFromAcceptLanguage picks the first supported language in header order.
// Browsers list languages by preference, so q-values are not re-sorted.
func localeFromAcceptLanguage(header string) string {
	for _, part := range strings.Split(header, ",") {
		tag, _, _ := strings.Cut(part, ";")
		if lang := normalizeLocale(tag); lang != "" {
			return lang
		}
	}
	return defaultLocale
}

// SetLanguageCookie sets the language cookie for one year
func SetLanguageCookie(c echo.Context, cfg *config.Config, lang string) {
	cookie := new(http.Cookie)
	cookie.Name = "lang"
	cookie.Value = lang
	cookie.Expires = time.Now().Add(24 * 365 * time.Hour)
	cookie.Path = "/"
	cookie.HttpOnly = true
	cookie.SameSite = http.SameSiteLaxMode
	if cfg != nil && cfg.IsProduction() {
		cookie.Secure = true
	}
	c.SetCookie(cookie)
}

// GetLocale returns the current locale from context
func GetLocale(c echo.Context) string {
	if lang, ok := c.Get("locale").(string); ok {
		return lang
	}
	return defaultLocale
}
