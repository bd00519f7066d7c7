package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateNonce(t *testing.T) {
	nonce1, err := GenerateNonce()
	require.NoError(t, err)
	assert.NotEmpty(t, nonce1)

	nonce2, err := GenerateNonce()
	require.NoError(t, err)
	assert.NotEqual(t, nonce1, nonce2)
}

func TestLandingCSPHeader(t *testing.T) {
	t.Run("WithBucket", func(t *testing.T) {
		csp := LandingCSP("https://cdn.example.com").Header("abc")
		assert.Contains(t, csp, "default-src 'self';")
		assert.Contains(t, csp, "script-src 'nonce-abc' 'self' https://unpkg.com https://challenges.cloudflare.com;")
		assert.Contains(t, csp, "img-src 'self' data: https://cdn.example.com;")
		assert.Contains(t, csp, "frame-src https://challenges.cloudflare.com;")
		assert.Contains(t, csp, "object-src 'none'")
		assert.NotContains(t, csp, "unsafe-eval")
	})

	t.Run("EmptyBucketIsSkipped", func(t *testing.T) {
		csp := LandingCSP("").Header("abc")
		assert.Contains(t, csp, "img-src 'self' data:;")
	})

	t.Run("NoNonce", func(t *testing.T) {
		csp := LandingCSP().Header("")
		assert.Contains(t, csp, "script-src 'self' https://unpkg.com")
		assert.NotContains(t, csp, "nonce-")
	})
}

func TestCSPNonce(t *testing.T) {
	e := echo.New()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var ctxNonce string
	handler := CSPNonce(LandingCSP("https://cdn.example.com"))(func(c echo.Context) error {
		ctxNonce = GetNonce(c.Request().Context())
		return c.NoContent(http.StatusOK)
	})
	require.NoError(t, handler(c))

	nonce, ok := c.Get(string(NonceKey)).(string)
	require.True(t, ok)
	assert.NotEmpty(t, nonce)
	assert.Equal(t, nonce, ctxNonce)

	csp := rec.Header().Get("Content-Security-Policy")
	assert.Contains(t, csp, "'nonce-"+nonce+"'")
	assert.Contains(t, csp, "img-src 'self' data: https://cdn.example.com;")
}

func TestGetNonceMissing(t *testing.T) {
	assert.Empty(t, GetNonce(context.Background()))
}
