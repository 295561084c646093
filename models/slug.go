package models

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
	"gorm.io/gorm"
)

var (
	slugDisallowed = regexp.MustCompile(`[^\w\s-]`)
	slugSeparators = regexp.MustCompile(`[-\s]+`)
)

// Slugify converts s to a lowercase ASCII identifier made of letters, digits,
// underscores and single hyphens. Accents are folded ("Café" -> "cafe") and any
// other non-ASCII text is dropped.
func Slugify(s string) string {
	decomposed := norm.NFKD.String(s)
	ascii := strings.Map(func(r rune) rune {
		if r > unicode.MaxASCII {
			return -1
		}
		return r
	}, decomposed)

	ascii = slugDisallowed.ReplaceAllString(strings.ToLower(ascii), "")
	ascii = slugSeparators.ReplaceAllString(ascii, "-")
	return strings.Trim(ascii, "-_")
}

// ensureSlug returns the slug to persist for a record whose slug source is
// source. A non-empty slug is returned unchanged. Otherwise the slugified source
// is made unique within model's table by appending -2, -3, ...
func ensureSlug(tx *gorm.DB, model any, id uint, source, slug *string, fallback string) (*string, error) {
	if slug != nil && *slug != "" {
		return slug, nil
	}
	if source == nil || strings.TrimSpace(*source) == "" {
		return slug, nil
	}

	base := Slugify(*source)
	if base == "" {
		base = fallback
	}

	candidate := base
	for n := 2; ; n++ {
		var count int64
		err := tx.Model(model).
			Where("slug = ?", candidate).
			Where("id <> ?", id).
			Count(&count).Error
		if err != nil {
			return nil, fmt.Errorf("check slug %q: %w", candidate, err)
		}
		if count == 0 {
			break
		}
		candidate = fmt.Sprintf("%s-%d", base, n)
	}
	return &candidate, nil
}
