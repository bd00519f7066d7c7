package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"donna_landing_go/templates/partials"

	"github.com/labstack/echo/v4"
)

// GetTestimonialHTMX returns one carousel slide. The index wraps around the
// testimonial list in both directions.
func GetTestimonialHTMX(c echo.Context) error {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid testimonial index")
	}
	page := getLandingPage(c)
	if page == nil || len(page.Testimonials) == 0 {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "landing page is not loaded")
	}
	return render(c, http.StatusOK, partials.Testimonial(c.Request().Context(), page.Testimonials, index))
}

// HTTPErrorHandler renders HTMX failures as an alert fragment and leaves
// everything else to echo's default handler.
func HTTPErrorHandler(e *echo.Echo) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed || !isHTMX(c) {
			e.DefaultHTTPErrorHandler(err, c)
			return
		}

		code := http.StatusInternalServerError
		var he *echo.HTTPError
		if errors.As(err, &he) {
			code = he.Code
		}

		if code >= http.StatusInternalServerError {
			c.Logger().Errorf("HTMX request %s failed: %v", c.Request().URL.Path, err)
		}

		if rerr := render(c, code, partials.Error(c.Request().Context(), htmxErrorKey(c, code))); rerr != nil {
			c.Logger().Error(rerr)
		}
	}
}

// htmxErrorKey picks the alert message for a failed HTMX request. Only the
// contact form reports a failure to send.
func htmxErrorKey(c echo.Context, code int) string {
	switch code {
	case http.StatusBadRequest:
		return "errors.bad_request"
	case http.StatusNotFound:
		return "errors.not_found"
	case http.StatusTooManyRequests:
		return "errors.too_many"
	}
	if c.Request().URL.Path == "/contact" {
		return "contact.failed"
	}
	return "errors.generic"
}
