package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"donna_landing_go/config"
	"donna_landing_go/services/i18n"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocale(t *testing.T) {
	require.NoError(t, i18n.Load())
	e := echo.New()
	cfg := &config.Config{Environment: "production"}

	run := func(req *http.Request) (echo.Context, *httptest.ResponseRecorder, string) {
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		var ctxLang string
		handler := Locale(cfg)(func(c echo.Context) error {
			ctxLang = i18n.GetLocale(c.Request().Context())
			return c.NoContent(http.StatusOK)
		})
		require.NoError(t, handler(c))
		return c, rec, ctxLang
	}

	t.Run("QueryParamSetsCookie", func(t *testing.T) {
		c, rec, ctxLang := run(httptest.NewRequest(http.MethodGet, "/?lang=hi", nil))
		assert.Equal(t, "hi", GetLocale(c))
		assert.Equal(t, "hi", ctxLang)

		cookies := rec.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, "lang", cookies[0].Name)
		assert.Equal(t, "hi", cookies[0].Value)
		assert.True(t, cookies[0].Secure)
	})

	t.Run("UnsupportedQueryFallsBack", func(t *testing.T) {
		c, rec, _ := run(httptest.NewRequest(http.MethodGet, "/?lang=fr", nil))
		assert.Equal(t, "en", GetLocale(c))
		assert.Equal(t, "en", rec.Result().Cookies()[0].Value)
	})

	t.Run("Cookie", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: "lang", Value: "hi"})
		req.Header.Set("Accept-Language", "en-US")
		c, _, _ := run(req)
		assert.Equal(t, "hi", GetLocale(c))
	})

	t.Run("AcceptLanguage", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Accept-Language", "fr-FR,hi-IN;q=0.9,en;q=0.8")
		c, _, _ := run(req)
		assert.Equal(t, "hi", GetLocale(c))
	})

	t.Run("Default", func(t *testing.T) {
		c, _, ctxLang := run(httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, "en", GetLocale(c))
		assert.Equal(t, "en", ctxLang)
	})
}

func TestNormalizeLocale(t *testing.T) {
	require.NoError(t, i18n.Load())

	assert.Equal(t, "hi", normalizeLocale("hi-IN"))
	assert.Equal(t, "en", normalizeLocale(" EN_gb "))
	assert.Empty(t, normalizeLocale("es"))
	assert.Empty(t, normalizeLocale(""))
}
