package pages

import (
	"context"

	"donna_landing_go/services/i18n"
	"donna_landing_go/templates/components"
	"donna_landing_go/templates/layouts"
	"donna_landing_go/templates/sections"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// Landing renders the full landing page in the request language.
func Landing(ctx context.Context, vm LandingViewModel) templ.Component {
	v := vm.View(i18n.GetLocale(ctx))

	body := g.Group{
		sections.Navbar(v),
		Main(
			ID("main"),
			sections.Hero(v),
			sections.Features(v),
			sections.Stats(v),
			sections.Testimonials(v),
			sections.HowItWorks(v),
			sections.Pricing(v),
			sections.Contact(v),
		),
		sections.PageFooter(v),
	}

	return layouts.Base(layouts.BaseData{
		SEO:              vm.SEO,
		BaseURL:          vm.BaseURL,
		WidgetConfig:     vm.Page.Config(),
		TurnstileSiteKey: vm.TurnstileSiteKey,
	}, components.Templ(body))
}
