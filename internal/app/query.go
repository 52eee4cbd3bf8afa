package app

import (
	"slices"
	"strings"

	"skideal/internal/domain"
)

// Pure lookups over classified records. String keys match case-insensitively;
// list results keep file order unless noted.

// Countries returns the distinct non-empty countries, sorted.
func Countries(items []domain.Record, s domain.Schema) []string {
	return distinct(items, s.Country)
}

// SitesByCountry returns the distinct sites of items in country, sorted.
func SitesByCountry(items []domain.Record, s domain.Schema, country string) []string {
	return distinct(ItemsByCountry(items, s, country), s.Site)
}

// ItemsBySite returns items whose site equals site.
func ItemsBySite(items []domain.Record, s domain.Schema, site string) []domain.Record {
	return filter(items, func(r domain.Record) bool { return strings.EqualFold(s.Site(r), site) })
}

// ItemsByCountry returns items whose country equals country.
func ItemsByCountry(items []domain.Record, s domain.Schema, country string) []domain.Record {
	return filter(items, func(r domain.Record) bool { return strings.EqualFold(s.Country(r), country) })
}

// ItemByName returns the first item with the given name; ok is false when
// nothing matches.
func ItemByName(items []domain.Record, s domain.Schema, name string) (domain.Record, bool) {
	for _, r := range items {
		if strings.EqualFold(s.ItemName(r), name) {
			return r, true
		}
	}
	return nil, false
}

// SectionFor returns the first section record for country and site.
func SectionFor(sections []domain.Record, s domain.Schema, country, site string) (domain.Record, bool) {
	for _, r := range sections {
		if strings.EqualFold(s.Country(r), country) && strings.EqualFold(s.Site(r), site) {
			return r, true
		}
	}
	return nil, false
}

// SearchSite returns items whose site contains partial, so "בנסקו" finds
// "בנסקו שבוע" and "בנסקו סופש" as well.
func SearchSite(items []domain.Record, s domain.Schema, partial string) []domain.Record {
	p := strings.ToLower(partial)
	return filter(items, func(r domain.Record) bool {
		return strings.Contains(strings.ToLower(s.Site(r)), p)
	})
}

// SearchAgeBand returns items whose age band overlaps [min, max]. A nil bound
// leaves that side open.
func SearchAgeBand(items []domain.Record, s domain.Schema, min, max *float64) []domain.Record {
	return filter(items, func(r domain.Record) bool { return overlapsAge(s, r, min, max) })
}

func overlapsAge(s domain.Schema, r domain.Record, min, max *float64) bool {
	lo, hi := s.AgeBand(r)
	if min != nil && hi < *min {
		return false
	}
	if max != nil && lo > *max {
		return false
	}
	return true
}

func filter(items []domain.Record, keep func(domain.Record) bool) []domain.Record {
	out := make([]domain.Record, 0, len(items))
	for _, r := range items {
		if keep(r) {
			out = append(out, r)
		}
	}
	return out
}

func distinct(items []domain.Record, key func(domain.Record) string) []string {
	seen := make(map[string]struct{}, len(items))
	out := make([]string, 0)
	for _, r := range items {
		k := key(r)
		if k == "" {
			continue
		}
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	slices.Sort(out)
	return out
}
