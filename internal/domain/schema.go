package domain

// Field vocabulary of the directory sheets. Lookups only succeed on an exact
// key match, so these strings are part of the data contract.
const (
	FieldCountry   = "מדינה"
	FieldSite      = "אתר"
	FieldHotelName = "שם מלון באנגלית"
	FieldCampName  = "שם קייטנה"

	GroupDryFacts  = "נתונים יבשים"
	GroupLocation  = "מיקום"
	GroupSpa       = "ספא"
	GroupRooms     = "חדרים"
	GroupServices  = "שירותי מלון"
	GroupCheckin   = "צק אין מתחת ל-18"
	GroupLessons   = "הדרכות"
	GroupCredits   = "זיכויים"
	GroupAgeRange  = "גילאים"
	GroupCampPrice = "מחיר"

	KeyStars      = "כוכבים"
	KeyAudience   = "למי מתאים המלון"
	KeySpaCost    = "עלות כניסה לספא"
	KeyAgeMin     = "מינימום"
	KeyAgeMax     = "מקסימום"
	KeyCampLunch  = "כולל ארוחת צהריים"
	KeyImportant  = "הערות חשובות"
	KeyCampWhen   = "מתי"
	KeyCampDaily  = "לוז קייטנות"
	KeyCampNotes  = "הערות"
	KeyPriceText  = "טקסט"
	KeyLessonKind = "סוגי הדרכות בחופשה"
	KeyCreditKind = "סוגי זיכויים בחופשה"
)

// Default open bounds for a record's age band.
const (
	AgeFloor   = 0
	AgeCeiling = 99
)

// Feature is a named boolean attribute a search can require.
type Feature struct {
	Name string
	Has  func(Record) bool
}

// Schema describes one record family sharing a file: how to tell items from
// section records and where the searchable attributes live.
type Schema struct {
	Name          string
	NameField     string
	CountryField  string
	SiteField     string
	Discriminator string // group required on items; empty accepts every non-section record
	SectionLabels []string
	RatingPath    []string
	AudiencePath  []string
	AgeMinPath    []string
	AgeMaxPath    []string
	Features      []Feature
}

// IsSection reports whether the record's name is one of the sentinel labels.
func (s Schema) IsSection(r Record) bool {
	name := r.Str(s.NameField)
	for _, l := range s.SectionLabels {
		if name == l {
			return true
		}
	}
	return false
}

// IsItem reports whether the record is a bookable unit under this schema.
func (s Schema) IsItem(r Record) bool {
	if s.IsSection(r) {
		return false
	}
	return s.Discriminator == "" || r.Has(s.Discriminator)
}

func (s Schema) ItemName(r Record) string { return r.Str(s.NameField) }
func (s Schema) Country(r Record) string  { return r.Str(s.CountryField) }
func (s Schema) Site(r Record) string     { return r.Str(s.SiteField) }
func (s Schema) Rating(r Record) Rating   { return ParseRating(r.Get(s.RatingPath...)) }
func (s Schema) Audience(r Record) string { return r.Str(s.AudiencePath...) }

// AgeBand returns the record's [min, max] with missing bounds fully open.
func (s Schema) AgeBand(r Record) (float64, float64) {
	lo, hi := float64(AgeFloor), float64(AgeCeiling)
	if len(s.AgeMinPath) > 0 {
		lo = r.FloatOr(lo, s.AgeMinPath...)
	}
	if len(s.AgeMaxPath) > 0 {
		hi = r.FloatOr(hi, s.AgeMaxPath...)
	}
	return lo, hi
}

// Feature looks up a named feature; ok is false for unknown names.
func (s Schema) Feature(name string) (Feature, bool) {
	for _, f := range s.Features {
		if f.Name == name {
			return f, true
		}
	}
	return Feature{}, false
}

var noSpaValues = map[string]struct{}{"": {}, "אין": {}, "אין ספא": {}}

// HasSpa is true when the hotel lists a spa entry cost other than "none".
func HasSpa(r Record) bool {
	_, none := noSpaValues[r.Group(GroupSpa).Str(KeySpaCost)]
	return !none
}

var HotelSchema = Schema{
	Name:          "hotels",
	NameField:     FieldHotelName,
	CountryField:  FieldCountry,
	SiteField:     FieldSite,
	Discriminator: GroupDryFacts,
	SectionLabels: []string{"כללי", "הערות כלליות", "הערות כלליות על האתר"},
	RatingPath:    []string{GroupDryFacts, KeyStars},
	AudiencePath:  []string{GroupDryFacts, KeyAudience},
	Features: []Feature{
		{Name: "spa", Has: HasSpa},
	},
}

var CampSchema = Schema{
	Name:          "camps",
	NameField:     FieldCampName,
	CountryField:  FieldCountry,
	SiteField:     FieldSite,
	SectionLabels: []string{"כללי", "הערות כלליות", "הערות כלליות על האתר"},
	AgeMinPath:    []string{GroupAgeRange, KeyAgeMin},
	AgeMaxPath:    []string{GroupAgeRange, KeyAgeMax},
	Features: []Feature{
		{Name: "lunch", Has: func(r Record) bool { return r.Bool(KeyCampLunch) }},
	},
}
