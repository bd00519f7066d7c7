package handlers

import (
	"net/http"
	"strings"

	"donna_landing_go/services"

	"github.com/labstack/echo/v4"
)

// GetAssetHandler streams a stored asset, e.g. a testimonial photo, when the
// storage has no public URL.
func GetAssetHandler(c echo.Context) error {
	key := strings.TrimPrefix(c.Param("*"), "/")
	if key == "" || strings.Contains(key, "..") || services.Storage == nil {
		return echo.NewHTTPError(http.StatusNotFound, "asset not found")
	}

	body, contentType, err := services.Storage.Get(c.Request().Context(), key)
	if err != nil {
		c.Logger().Warnf("Asset %s not found: %v", key, err)
		return echo.NewHTTPError(http.StatusNotFound, "asset not found")
	}
	defer body.Close()

	if contentType == "" {
		contentType = services.ContentTypeFor(key)
	}
	c.Response().Header().Set("Cache-Control", "public, max-age=86400")
	c.Response().Header().Set("X-Content-Type-Options", "nosniff")
	return c.Stream(http.StatusOK, contentType, body)
}
