package app

import "skideal/internal/domain"

// Summary is the directory overview handed to the agent when a customer asks
// what destinations exist.
type Summary struct {
	Items          int                 `json:"items"`
	Sections       int                 `json:"sections"`
	Countries      []string            `json:"countries"`
	SitesByCountry map[string][]string `json:"sites_by_country"`
}

// Summarize builds the overview from one classified snapshot. Sites are
// grouped under the exact country spelling so every (country, site) pair
// appears once.
func Summarize(c Classified, s domain.Schema) Summary {
	countries := Countries(c.Items, s)
	sites := make(map[string][]string, len(countries))
	for _, country := range countries {
		sites[country] = distinct(c.Items, func(r domain.Record) string {
			if s.Country(r) != country {
				return ""
			}
			return s.Site(r)
		})
	}
	return Summary{
		Items:          len(c.Items),
		Sections:       len(c.Sections),
		Countries:      countries,
		SitesByCountry: sites,
	}
}
