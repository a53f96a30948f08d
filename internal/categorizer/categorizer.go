// Package categorizer maps free-text transaction descriptions to category
// labels using an ordered keyword table. The engine is pure and
// profile-agnostic: everything it knows about categories comes in through
// the profile parameter.
package categorizer

import (
	"strings"

	"lrocha/extrato-csv/internal/logging"
	"lrocha/extrato-csv/internal/models"
)

// Categorizer assigns category labels from a single profile's keyword table.
type Categorizer struct {
	profile models.Profile
	logger  logging.Logger
}

// New creates a Categorizer for the given profile.
func New(profile models.Profile, logger logging.Logger) *Categorizer {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &Categorizer{profile: profile, logger: logger}
}

// Profile returns the profile the categorizer was built with.
func (c *Categorizer) Profile() models.Profile {
	return c.profile
}

// Categorize returns the category label for a description.
//
// The description is lowercased and the profile's categories are walked in
// table order, each keyword list in its own order; the first keyword that is
// a substring of the description wins. Substring matching is intentional: it
// keeps the keyword tables short, at the cost of occasional false positives
// when a keyword happens to be contained in an unrelated word.
func (c *Categorizer) Categorize(description string) string {
	category, keyword, matched := match(description, c.profile.Categories)
	if !matched {
		return c.profile.Fallback
	}

	c.logger.WithFields(
		logging.Field{Key: "description", Value: description},
		logging.Field{Key: "keyword", Value: keyword},
		logging.Field{Key: "category", Value: category},
	).Debug("Categorized by keyword match")
	return category
}

// CategorizeAll assigns a category to every transaction in the batch,
// returning a new slice in the same order. Input transactions are not
// mutated.
func (c *Categorizer) CategorizeAll(transactions []models.Transaction) []models.Transaction {
	categorized := make([]models.Transaction, len(transactions))
	for i, tx := range transactions {
		tx.Category = c.Categorize(tx.Description)
		categorized[i] = tx
	}

	c.logger.WithFields(
		logging.Field{Key: "profile", Value: c.profile.Name},
		logging.Field{Key: "count", Value: len(categorized)},
	).Debug("Categorized transaction batch")
	return categorized
}

// match runs the first-match-wins keyword scan. It is the whole algorithm:
// table order decides ties, never map iteration order.
func match(description string, categories []models.CategoryConfig) (category, keyword string, ok bool) {
	normalized := strings.ToLower(description)

	for _, categoryConfig := range categories {
		for _, kw := range categoryConfig.Keywords {
			if strings.Contains(normalized, strings.ToLower(kw)) {
				return categoryConfig.Name, kw, true
			}
		}
	}
	return "", "", false
}
