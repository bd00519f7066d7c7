package handlers

import (
	"encoding/xml"
	"fmt"
	"net/http"

	"donna_landing_go/services/i18n"

	"github.com/labstack/echo/v4"
)

type SitemapURL struct {
	Loc        string  `xml:"loc"`
	LastMod    string  `xml:"lastmod,omitempty"`
	ChangeFreq string  `xml:"changefreq,omitempty"`
	Priority   float32 `xml:"priority,omitempty"`
}

type SitemapURLSet struct {
	XMLName string       `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []SitemapURL `xml:"url"`
}

// GetSitemapHandler generates the XML sitemap: the landing page once per language
func GetSitemapHandler(c echo.Context) error {
	base := baseURL(getConfig(c))

	urls := []SitemapURL{
		{Loc: base + "/", ChangeFreq: "weekly", Priority: 1.0},
	}
	for _, lang := range i18n.Languages() {
		if lang == "en" {
			continue
		}
		urls = append(urls, SitemapURL{Loc: base + "/?lang=" + lang, ChangeFreq: "weekly", Priority: 0.8})
	}

	urlSet := SitemapURLSet{
		Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  urls,
	}

	c.Response().Header().Set(echo.HeaderContentType, echo.MIMEApplicationXML)
	c.Response().WriteHeader(http.StatusOK)
	if _, err := c.Response().Write([]byte(xml.Header)); err != nil {
		return err
	}

	encoder := xml.NewEncoder(c.Response().Writer)
	encoder.Indent("", "  ")
	return encoder.Encode(urlSet)
}

// GetRobotsHandler serves robots.txt
func GetRobotsHandler(c echo.Context) error {
	cfg := getConfig(c)
	if !cfg.IsProduction() {
		return c.String(http.StatusOK, "User-agent: *\nDisallow: /\n")
	}
	body := fmt.Sprintf("User-agent: *\nAllow: /\nDisallow: /htmx/\nDisallow: /api/\n\nSitemap: %s/sitemap.xml\n", baseURL(cfg))
	return c.String(http.StatusOK, body)
}
