// Package landing assembles the landing page: it loads the marketing copy,
// lays the sections out as blocks with their reveal/counter/carousel
// configuration, and mounts the widget state machines for a page instance.
package landing

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"os"

	"donna_landing_go/models"

	"gopkg.in/yaml.v3"
)

//go:embed content/landing.yaml
var defaultContent []byte

var (
	// ErrNoTestimonials is returned when the content has nothing for the carousel.
	ErrNoTestimonials = errors.New("landing content needs at least one testimonial")
	// ErrInvalidStat is returned for statistics that cannot be animated.
	ErrInvalidStat = errors.New("invalid statistic")
)

// LoadContent reads landing content from path, or the embedded default
// content when path is empty.
func LoadContent(path string) (*models.LandingContent, error) {
	data := defaultContent
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read landing content %s: %w", path, err)
		}
		data = raw
	}
	return ParseContent(data)
}

// ParseContent decodes and validates landing content. Unknown keys are rejected.
func ParseContent(data []byte) (*models.LandingContent, error) {
	var content models.LandingContent
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&content); err != nil {
		return nil, fmt.Errorf("failed to parse landing content: %w", err)
	}
	if err := ValidateContent(&content); err != nil {
		return nil, err
	}
	return &content, nil
}

// ValidateContent checks the invariants the widgets rely on.
func ValidateContent(content *models.LandingContent) error {
	if len(content.Testimonials) == 0 {
		return ErrNoTestimonials
	}
	seen := make(map[string]bool, len(content.Stats))
	for i, stat := range content.Stats {
		if stat.ID == "" {
			return fmt.Errorf("%w: stat %d has no id", ErrInvalidStat, i)
		}
		if seen[stat.ID] {
			return fmt.Errorf("%w: duplicate stat id %q", ErrInvalidStat, stat.ID)
		}
		seen[stat.ID] = true
		if stat.Target < 0 {
			return fmt.Errorf("%w: stat %q has negative target %d", ErrInvalidStat, stat.ID, stat.Target)
		}
	}
	for i, t := range content.Testimonials {
		if t.Name == "" || t.Quote == "" {
			return fmt.Errorf("testimonial %d needs a name and a quote", i)
		}
	}
	return nil
}
