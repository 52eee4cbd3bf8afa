package app_test

import (
	"context"

	"skideal/internal/domain"
)

// ---- fakes ----

type fakeSource struct {
	recs  []domain.Record
	err   error
	loads int
}

func (f *fakeSource) Load(ctx context.Context) ([]domain.Record, error) {
	f.loads++
	if f.err != nil {
		return nil, f.err
	}
	return f.recs, nil
}

type fakeSink struct {
	leads []domain.Lead
	err   error
}

func (s *fakeSink) Publish(ctx context.Context, l domain.Lead) error {
	if s.err != nil {
		return s.err
	}
	s.leads = append(s.leads, l)
	return nil
}

// ---- fixtures ----

func hotel(name, country, site string, stars any, audience, spaCost string) domain.Record {
	return domain.Record{
		domain.FieldHotelName: name,
		domain.FieldCountry:   country,
		domain.FieldSite:      site,
		domain.GroupDryFacts: map[string]any{
			domain.KeyStars:    stars,
			domain.KeyAudience: audience,
			"שם מלון בעברית":   name + " (עב)",
		},
		domain.GroupSpa:   map[string]any{domain.KeySpaCost: spaCost},
		domain.GroupRooms: map[string]any{domain.KeyImportant: "הערה לסוכן"},
	}
}

func section(label, country, site string) domain.Record {
	return domain.Record{
		domain.FieldHotelName: label,
		domain.FieldCountry:   country,
		domain.FieldSite:      site,
		domain.GroupLessons:   map[string]any{domain.KeyLessonKind: "קייטנת סקי לילדים"},
		domain.GroupCredits:   map[string]any{domain.KeyCreditKind: "זיכוי על סקי פס"},
	}
}

func camp(name, country, site string, min, max any, lunch bool) domain.Record {
	ages := map[string]any{}
	if min != nil {
		ages[domain.KeyAgeMin] = min
	}
	if max != nil {
		ages[domain.KeyAgeMax] = max
	}
	return domain.Record{
		domain.FieldCampName: name,
		domain.FieldCountry:  country,
		domain.FieldSite:     site,
		domain.GroupAgeRange: ages,
		domain.KeyCampLunch:  lunch,
		domain.GroupCampPrice: map[string]any{
			domain.KeyPriceText: "250 יורו לשבוע",
		},
	}
}

func hotelRecords() []domain.Record {
	return []domain.Record{
		hotel("Sporting", "צרפת", "ואל טורנס", 4.0, "זוגות ומשפחות", "כלול"),
		section("כללי", "צרפת", "ואל טורנס"),
		hotel("Lucky", "צרפת", "ואל טורנס", "3", "משפחה", "אין ספא"),
		hotel("Trofana", "אוסטריה", "אישגיל", 5.0, "זוגות", "20 יורו"),
		hotel("Residence", "אוסטריה", "אישגיל", "מלון דירות", "משפחות גדולות", ""),
		hotel("Gudauri Lodge", "גיאורגיה", "גודאורי", "4", "שלשות", "אין"),
		section("הערות כלליות על האתר", "אוסטריה", "אישגיל"),
		// sentinel name without expected structure is still a section
		{domain.FieldHotelName: "הערות כלליות"},
		// no discriminator and no sentinel name: dropped
		{domain.FieldHotelName: "Orphan", domain.FieldCountry: "צרפת", domain.FieldSite: "טיניה"},
		// item with no country or site degrades gracefully
		{domain.FieldHotelName: "Nowhere", domain.GroupDryFacts: map[string]any{}},
	}
}

func campRecords() []domain.Record {
	return []domain.Record{
		camp("Ski Kids", "בולגריה", "בנסקו", 4.0, 6.0, true),
		camp("Teens", "בולגריה", "בנסקו שבוע", "9", "12", false),
		camp("Weekend", "בולגריה", "בנסקו סופש", nil, nil, true),
		camp("Piou Piou", "צרפת", "ואל טורנס", 3.0, 5.0, false),
	}
}

func ptr[T any](v T) *T { return &v }

func names(s domain.Schema, rs []domain.Record) []string {
	out := make([]string, 0, len(rs))
	for _, r := range rs {
		out = append(out, s.ItemName(r))
	}
	return out
}
