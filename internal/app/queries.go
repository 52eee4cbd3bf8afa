package app

import (
	"context"
	"fmt"

	"skideal/internal/domain"
)

// Directory answers queries over one record file. It reloads the source on
// every call and holds no state between calls, so it is safe for concurrent
// use.
type Directory struct {
	src    domain.RecordSource
	schema domain.Schema
}

func NewDirectory(src domain.RecordSource, s domain.Schema) *Directory {
	return &Directory{src: src, schema: s}
}

func (d *Directory) Schema() domain.Schema { return d.schema }

// Snapshot loads and classifies the file once.
func (d *Directory) Snapshot(ctx context.Context) (Classified, error) {
	recs, err := d.src.Load(ctx)
	if err != nil {
		return Classified{}, fmt.Errorf("load %s: %w", d.schema.Name, err)
	}
	return Classify(recs, d.schema), nil
}

func (d *Directory) Items(ctx context.Context) ([]domain.Record, error) {
	c, err := d.Snapshot(ctx)
	return c.Items, err
}

func (d *Directory) Sections(ctx context.Context) ([]domain.Record, error) {
	c, err := d.Snapshot(ctx)
	return c.Sections, err
}

func (d *Directory) Countries(ctx context.Context) ([]string, error) {
	items, err := d.Items(ctx)
	if err != nil {
		return nil, err
	}
	return Countries(items, d.schema), nil
}

func (d *Directory) SitesByCountry(ctx context.Context, country string) ([]string, error) {
	items, err := d.Items(ctx)
	if err != nil {
		return nil, err
	}
	return SitesByCountry(items, d.schema, country), nil
}

func (d *Directory) ItemsBySite(ctx context.Context, site string) ([]domain.Record, error) {
	items, err := d.Items(ctx)
	if err != nil {
		return nil, err
	}
	return ItemsBySite(items, d.schema, site), nil
}

func (d *Directory) ItemsByCountry(ctx context.Context, country string) ([]domain.Record, error) {
	items, err := d.Items(ctx)
	if err != nil {
		return nil, err
	}
	return ItemsByCountry(items, d.schema, country), nil
}

// ItemByName returns ok=false, not an error, when the name is unknown.
func (d *Directory) ItemByName(ctx context.Context, name string) (domain.Record, bool, error) {
	items, err := d.Items(ctx)
	if err != nil {
		return nil, false, err
	}
	r, ok := ItemByName(items, d.schema, name)
	return r, ok, nil
}

// Section returns the general-notes record for a site; ok=false when absent.
func (d *Directory) Section(ctx context.Context, country, site string) (domain.Record, bool, error) {
	sections, err := d.Sections(ctx)
	if err != nil {
		return nil, false, err
	}
	r, ok := SectionFor(sections, d.schema, country, site)
	return r, ok, nil
}

func (d *Directory) Search(ctx context.Context, c Criteria) ([]domain.Record, error) {
	items, err := d.Items(ctx)
	if err != nil {
		return nil, err
	}
	return Search(items, d.schema, c)
}

func (d *Directory) SearchSite(ctx context.Context, partial string) ([]domain.Record, error) {
	items, err := d.Items(ctx)
	if err != nil {
		return nil, err
	}
	return SearchSite(items, d.schema, partial), nil
}

func (d *Directory) SearchAgeBand(ctx context.Context, min, max *float64) ([]domain.Record, error) {
	items, err := d.Items(ctx)
	if err != nil {
		return nil, err
	}
	return SearchAgeBand(items, d.schema, min, max), nil
}

// Summary is recomputed from a fresh snapshot on every call.
func (d *Directory) Summary(ctx context.Context) (Summary, error) {
	c, err := d.Snapshot(ctx)
	if err != nil {
		return Summary{}, err
	}
	return Summarize(c, d.schema), nil
}
