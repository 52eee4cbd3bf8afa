package app_test

import (
	"context"
	"slices"
	"testing"

	"skideal/internal/app"
	"skideal/internal/domain"
)

func TestSummary_TotalsAndPairs(t *testing.T) {
	recs := hotelRecords()
	d := app.NewDirectory(&fakeSource{recs: recs}, domain.HotelSchema)

	sum, err := d.Summary(context.Background())
	if err != nil {
		t.Fatalf("Summary: %v", err)
	}
	c := app.Classify(recs, domain.HotelSchema)
	if sum.Items != len(c.Items) || sum.Sections != len(c.Sections) {
		t.Fatalf("totals = %d/%d, want %d/%d", sum.Items, sum.Sections, len(c.Items), len(c.Sections))
	}
	if !slices.Equal(sum.Countries, app.Countries(c.Items, domain.HotelSchema)) {
		t.Fatalf("countries = %v", sum.Countries)
	}

	pairs := map[[2]string]struct{}{}
	for _, r := range c.Items {
		country, site := domain.HotelSchema.Country(r), domain.HotelSchema.Site(r)
		if country == "" || site == "" {
			continue
		}
		pairs[[2]string{country, site}] = struct{}{}
	}
	flat := 0
	for _, sites := range sum.SitesByCountry {
		flat += len(sites)
	}
	if flat != len(pairs) {
		t.Fatalf("flattened sites = %d, distinct pairs = %d", flat, len(pairs))
	}
}

func TestSummarize_ExactCountrySpelling(t *testing.T) {
	items := []domain.Record{
		hotel("A", "Austria", "Solden", 4.0, "", ""),
		hotel("B", "austria", "Ischgl", 4.0, "", ""),
	}
	sum := app.Summarize(app.Classified{Items: items}, domain.HotelSchema)
	if got := sum.SitesByCountry["Austria"]; !slices.Equal(got, []string{"Solden"}) {
		t.Fatalf("Austria sites = %v", got)
	}
	if got := sum.SitesByCountry["austria"]; !slices.Equal(got, []string{"Ischgl"}) {
		t.Fatalf("austria sites = %v", got)
	}
}
