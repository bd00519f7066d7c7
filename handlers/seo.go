package handlers

import (
	"strings"

	"donna_landing_go/config"
	"donna_landing_go/models"
	"donna_landing_go/services/i18n"
	"donna_landing_go/templates/components"
)

const defaultBaseURL = "https://donna.ai"

func baseURL(cfg *config.Config) string {
	if cfg.AppURL == "" {
		return defaultBaseURL
	}
	return strings.TrimRight(cfg.AppURL, "/")
}

// LandingSEO returns the SEO configuration of the landing page in lang
func LandingSEO(cfg *config.Config, content *models.LandingContent, lang string) *models.SEO {
	base := baseURL(cfg)

	var alts []string
	for _, l := range i18n.Languages() {
		if l != lang {
			alts = append(alts, l)
		}
	}

	seo := models.DefaultSEO(content.Brand.Title, content.Brand.Description).
		WithCanonical(base+"/").
		WithOGImage(base+"/static/images/og-image.png").
		WithKeywords(content.Brand.Keywords).
		WithLocale(lang, alts...)
	seo.JSONLD = components.JSON(organizationSchema(base, content))
	return seo
}

// organizationSchema is the schema.org Organization document of the site
func organizationSchema(base string, content *models.LandingContent) map[string]interface{} {
	sameAs := make([]string, 0, len(content.Footer.Social))
	for _, s := range content.Footer.Social {
		sameAs = append(sameAs, s.Href)
	}

	schema := map[string]interface{}{
		"@context":    "https://schema.org",
		"@type":       "Organization",
		"name":        content.Brand.Name,
		"url":         base + "/",
		"logo":        base + "/static/images/favicon.png",
		"description": content.Brand.Description,
		"sameAs":      sameAs,
	}
	if content.Footer.Email != "" {
		schema["email"] = content.Footer.Email
	}
	return schema
}
