package app

import "skideal/internal/domain"

// Classified is one snapshot of a directory file split into record families.
type Classified struct {
	Items    []domain.Record
	Sections []domain.Record
}

// Classify partitions records under s, keeping file order. Records that are
// neither items nor sections are dropped.
func Classify(records []domain.Record, s domain.Schema) Classified {
	var c Classified
	for _, r := range records {
		switch {
		case s.IsSection(r):
			c.Sections = append(c.Sections, r)
		case s.IsItem(r):
			c.Items = append(c.Items, r)
		}
	}
	return c
}
