package app

import (
	"fmt"
	"strings"

	"skideal/internal/domain"
)

// Criteria is an open filter: zero-valued fields are not applied.
type Criteria struct {
	Country      string
	Site         string // exact
	SiteContains string // substring, for resort-name variants
	MinRating    int    // stars; 0 means no minimum
	Features     []string
	Audience     string // substring of the audience description
	MinAge       *float64
	MaxAge       *float64
}

// Search returns the items matching every supplied criterion, in file order.
// Unknown feature names are a caller bug and fail the search.
func Search(items []domain.Record, s domain.Schema, c Criteria) ([]domain.Record, error) {
	feats := make([]domain.Feature, 0, len(c.Features))
	for _, name := range c.Features {
		f, ok := s.Feature(name)
		if !ok {
			return nil, fmt.Errorf("search %s: unknown feature %q", s.Name, name)
		}
		feats = append(feats, f)
	}
	siteSub := strings.ToLower(c.SiteContains)
	audience := strings.ToLower(c.Audience)

	out := make([]domain.Record, 0, len(items))
	for _, r := range items {
		if c.Country != "" && !strings.EqualFold(s.Country(r), c.Country) {
			continue
		}
		if c.Site != "" && !strings.EqualFold(s.Site(r), c.Site) {
			continue
		}
		if siteSub != "" && !strings.Contains(strings.ToLower(s.Site(r)), siteSub) {
			continue
		}
		if c.MinRating > 0 && !s.Rating(r).AtLeast(c.MinRating) {
			continue
		}
		if !hasAll(r, feats) {
			continue
		}
		if audience != "" && !strings.Contains(strings.ToLower(s.Audience(r)), audience) {
			continue
		}
		if (c.MinAge != nil || c.MaxAge != nil) && !overlapsAge(s, r, c.MinAge, c.MaxAge) {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

func hasAll(r domain.Record, feats []domain.Feature) bool {
	for _, f := range feats {
		if !f.Has(r) {
			return false
		}
	}
	return true
}
