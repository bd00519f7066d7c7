package middleware

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"strings"

	"github.com/labstack/echo/v4"
)

type contextKey string

const NonceKey contextKey = "csp_nonce"

// Third-party origins the landing page loads from.
const (
	htmxOrigin      = "https://unpkg.com"
	turnstileOrigin = "https://challenges.cloudflare.com"
	fontsCSSOrigin  = "https://fonts.googleapis.com"
	fontsOrigin     = "https://fonts.gstatic.com"
)

// ContentSecurityPolicy lists the allowed sources per directive. Scripts are
// additionally allowed when they carry the per-request nonce.
type ContentSecurityPolicy struct {
	Scripts  []string
	Styles   []string
	Images   []string
	Fonts    []string
	Connect  []string
	Frames   []string
	Fallback string
}

// LandingCSP is the policy of the landing page. Inline style attributes carry
// the reveal start state, so styles keep 'unsafe-inline'.
func LandingCSP(imgSources ...string) ContentSecurityPolicy {
	images := append([]string{"'self'", "data:"}, nonEmpty(imgSources)...)
	return ContentSecurityPolicy{
		Scripts:  []string{"'self'", htmxOrigin, turnstileOrigin},
		Styles:   []string{"'self'", "'unsafe-inline'", fontsCSSOrigin},
		Images:   images,
		Fonts:    []string{"'self'", fontsOrigin},
		Connect:  []string{"'self'", turnstileOrigin},
		Frames:   []string{turnstileOrigin},
		Fallback: "'self'",
	}
}

// Header renders the policy for one response.
func (p ContentSecurityPolicy) Header(nonce string) string {
	directives := []string{"default-src " + p.Fallback}
	add := func(name string, sources []string) {
		if len(sources) > 0 {
			directives = append(directives, name+" "+strings.Join(sources, " "))
		}
	}
	scripts := p.Scripts
	if nonce != "" {
		scripts = append([]string{"'nonce-" + nonce + "'"}, scripts...)
	}
	add("script-src", scripts)
	add("style-src", p.Styles)
	add("img-src", p.Images)
	add("font-src", p.Fonts)
	add("connect-src", p.Connect)
	add("frame-src", p.Frames)
	directives = append(directives, "base-uri 'self'", "form-action 'self'", "object-src 'none'")
	return strings.Join(directives, "; ")
}

// GenerateNonce creates a random nonce string
func GenerateNonce() (string, error) {
	bytes := make([]byte, 16)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(bytes), nil
}

// CSPNonce generates a nonce for each request, stores it on the echo and
// request contexts and sends policy with it.
func CSPNonce(policy ContentSecurityPolicy) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			nonce, err := GenerateNonce()
			if err != nil {
				// Without a nonce no inline script may run; the page still renders.
				c.Logger().Errorf("Failed to generate nonce: %v", err)
				nonce = ""
			}

			c.Set(string(NonceKey), nonce)
			ctx := context.WithValue(c.Request().Context(), NonceKey, nonce)
			c.SetRequest(c.Request().WithContext(ctx))

			c.Response().Header().Set("Content-Security-Policy", policy.Header(nonce))
			return next(c)
		}
	}
}

// GetNonce retrieves the nonce from the context
func GetNonce(ctx context.Context) string {
	if val, ok := ctx.Value(NonceKey).(string); ok {
		return val
	}
	return ""
}

func nonEmpty(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
