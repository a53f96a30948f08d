package models

import (
	"fmt"
	"strings"
)

// CategoryConfig is one entry of a profile's ordered keyword table.
// Slice order defines match precedence, so both the category list and each
// keyword list must stay slices, never maps.
type CategoryConfig struct {
	Name     string   `yaml:"name"`
	Keywords []string `yaml:"keywords"`
}

// Profile bundles a closed category label set with its keyword table and the
// labels that get special treatment during aggregation. Profiles are pure
// configuration; the categorization and aggregation engines are
// profile-agnostic.
type Profile struct {
	Name            string           `yaml:"name"`
	Fallback        string           `yaml:"fallback"`
	RevenueCategory string           `yaml:"revenue_category"`
	TaxCategory     string           `yaml:"tax_category,omitempty"`
	Categories      []CategoryConfig `yaml:"categories"`
}

// Labels returns the profile's closed label set: every configured category
// plus the fallback label.
func (p Profile) Labels() []string {
	labels := make([]string, 0, len(p.Categories)+1)
	for _, c := range p.Categories {
		labels = append(labels, c.Name)
	}
	labels = append(labels, p.Fallback)
	return labels
}

// HasLabel reports whether the given category belongs to the profile's
// label set.
func (p Profile) HasLabel(category string) bool {
	if category == p.Fallback {
		return true
	}
	for _, c := range p.Categories {
		if c.Name == category {
			return true
		}
	}
	return false
}

// Validate checks the profile for the mistakes a hand-edited YAML file can
// introduce: missing names, duplicate categories, empty keyword lists, or
// special labels pointing outside the category set.
func (p Profile) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("profile name must not be empty")
	}
	if strings.TrimSpace(p.Fallback) == "" {
		return fmt.Errorf("profile %q: fallback label must not be empty", p.Name)
	}
	if len(p.Categories) == 0 {
		return fmt.Errorf("profile %q: at least one category is required", p.Name)
	}

	seen := make(map[string]bool, len(p.Categories))
	for _, c := range p.Categories {
		if strings.TrimSpace(c.Name) == "" {
			return fmt.Errorf("profile %q: category with empty name", p.Name)
		}
		if seen[c.Name] {
			return fmt.Errorf("profile %q: duplicate category %q", p.Name, c.Name)
		}
		seen[c.Name] = true
		if len(c.Keywords) == 0 {
			return fmt.Errorf("profile %q: category %q has no keywords", p.Name, c.Name)
		}
	}

	if p.RevenueCategory != "" && !seen[p.RevenueCategory] {
		return fmt.Errorf("profile %q: revenue category %q is not in the category set",
			p.Name, p.RevenueCategory)
	}
	if p.TaxCategory != "" && !seen[p.TaxCategory] {
		return fmt.Errorf("profile %q: tax category %q is not in the category set",
			p.Name, p.TaxCategory)
	}
	return nil
}
