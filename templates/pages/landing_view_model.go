package pages

import (
	"donna_landing_go/models"
	"donna_landing_go/services/landing"
	"donna_landing_go/templates/sections"
)

// LandingViewModel holds the data for the landing page
type LandingViewModel struct {
	Page             *landing.Page
	SEO              *models.SEO
	BaseURL          string
	CSRFToken        string
	TurnstileSiteKey string
	Languages        []string
	Contact          sections.ContactForm
}

// View returns the section data for the request language.
func (vm LandingViewModel) View(lang string) sections.View {
	return sections.View{
		Page:             vm.Page,
		Lang:             lang,
		Languages:        vm.Languages,
		CSRFToken:        vm.CSRFToken,
		TurnstileSiteKey: vm.TurnstileSiteKey,
		Contact:          vm.Contact,
	}
}
