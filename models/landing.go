package models

// LandingContent is the marketing copy of the landing page, loaded once at startup
type LandingContent struct {
	Brand              Brand         `yaml:"brand"`
	Hero               Hero          `yaml:"hero"`
	Features           []Feature     `yaml:"features"`
	AdditionalFeatures []Feature     `yaml:"additional_features"`
	Stats              []Stat        `yaml:"stats"`
	Testimonials       []Testimonial `yaml:"testimonials"`
	Steps              []Step        `yaml:"steps"`
	Pricing            PricingPlan   `yaml:"pricing"`
	Headings           Headings      `yaml:"headings"`
	Footer             Footer        `yaml:"footer"`
}

// Brand holds the product name and page metadata
type Brand struct {
	Name        string `yaml:"name"`
	Badge       string `yaml:"badge"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Keywords    string `yaml:"keywords"`
}

// Link is a labelled navigation target
type Link struct {
	Label string `yaml:"label"`
	Href  string `yaml:"href"`
}

// Hero is the top section of the page
type Hero struct {
	TitleLead string `yaml:"title_lead"`
	Highlight string `yaml:"highlight"`
	TitleTail string `yaml:"title_tail"`
	Gradient  string `yaml:"gradient"`
	Subtitle  string `yaml:"subtitle"`
	Primary   Link   `yaml:"primary"`
	Secondary Link   `yaml:"secondary"`
}

// Feature is a product feature card
type Feature struct {
	Icon        string   `yaml:"icon"`
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Details     []string `yaml:"details"`
}

// Stat is an animated statistic; Target is the value the counter settles on
type Stat struct {
	ID      string `yaml:"id"`
	Target  int    `yaml:"target"`
	Suffix  string `yaml:"suffix"`
	Label   string `yaml:"label"`
	Caption string `yaml:"caption"`
}

// Testimonial is a customer quote shown in the carousel. Image is a storage key
// or an absolute URL.
type Testimonial struct {
	Name  string `yaml:"name"`
	Role  string `yaml:"role"`
	Quote string `yaml:"quote"`
	Image string `yaml:"image"`
}

// Step is one entry of the "how it works" sequence
type Step struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

// PricingPlan is the single plan of the pricing panel
type PricingPlan struct {
	Name     string        `yaml:"name"`
	Badge    string        `yaml:"badge"`
	Price    string        `yaml:"price"`
	Period   string        `yaml:"period"`
	Note     string        `yaml:"note"`
	Items    []PricingItem `yaml:"items"`
	CTA      Link          `yaml:"cta"`
	Footnote string        `yaml:"footnote"`
}

// PricingItem is a plan bullet; Lead is rendered in bold before Text
type PricingItem struct {
	Lead string `yaml:"lead"`
	Text string `yaml:"text"`
}

// Heading is a section title; Highlight is rendered with the animated gradient
type Heading struct {
	Lead      string `yaml:"lead"`
	Highlight string `yaml:"highlight"`
	Tail      string `yaml:"tail"`
	Subtitle  string `yaml:"subtitle"`
}

// Headings holds the title of every page section
type Headings struct {
	Features     Heading `yaml:"features"`
	MoreFeatures Heading `yaml:"more_features"`
	Stats        Heading `yaml:"stats"`
	Testimonials Heading `yaml:"testimonials"`
	How          Heading `yaml:"how"`
	Pricing      Heading `yaml:"pricing"`
	Contact      Heading `yaml:"contact"`
}

// Footer is the page footer copy
type Footer struct {
	Tagline   string `yaml:"tagline"`
	Copyright string `yaml:"copyright"`
	Email     string `yaml:"email"`
	Social    []Link `yaml:"social"`
}
