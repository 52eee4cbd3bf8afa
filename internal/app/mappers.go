package app

import (
	"skideal/internal/domain"
)

/********** views handed to the agent (keys are the agent-facing contract) **********/

type HotelListItem struct {
	NameEN       any    `json:"שם_מלון_אנגלית"`
	NameHE       any    `json:"שם_מלון_עברית"`
	Country      any    `json:"מדינה"`
	Site         any    `json:"אתר"`
	Stars        any    `json:"כוכבים"`
	Audience     any    `json:"למי_מתאים"`
	BookingScore any    `json:"ציון_בוקינג"`
	LiftDistance any    `json:"מרחק_מהרכבל"`
	HasSpa       string `json:"יש_ספא"`
}

type HotelMatch struct {
	Name         any `json:"שם_מלון"`
	NameHE       any `json:"שם_עברית"`
	Country      any `json:"מדינה"`
	Site         any `json:"אתר"`
	Stars        any `json:"כוכבים"`
	Audience     any `json:"למי_מתאים"`
	BookingScore any `json:"ציון_בוקינג"`
	LiftDistance any `json:"מרחק_מהרכבל"`
	Spa          any `json:"ספא"`
	AgentNotes   any `json:"הערות_לסוכנים"`
}

type HotelDetail struct {
	Basics   HotelBasics   `json:"פרטים_בסיסיים"`
	Location HotelLocation `json:"מיקום"`
	Spa      HotelSpa      `json:"ספא"`
	Rooms    HotelRooms    `json:"חדרים"`
	Services HotelServices `json:"שירותי_מלון"`
	Minors   any           `json:"צק_אין_קטינים"`
}

type HotelBasics struct {
	NameEN       any `json:"שם_אנגלית"`
	NameHE       any `json:"שם_עברית"`
	Country      any `json:"מדינה"`
	Site         any `json:"אתר"`
	Stars        any `json:"כוכבים"`
	Audience     any `json:"למי_מתאים"`
	BookingScore any `json:"ציון_בוקינג"`
	Website      any `json:"לינק_לאתר"`
}

type HotelLocation struct {
	Description  any `json:"תיאור"`
	LiftDistance any `json:"מרחק_מהרכבל"`
	LiftWalk     any `json:"מסלול_לרכבל"`
	TownWalk     any `json:"מסלול_למרכז_העיירה"`
}

type HotelSpa struct {
	EntryCost    any `json:"עלות_כניסה"`
	Contents     any `json:"תכולה"`
	Restrictions any `json:"מגבלות"`
	PaidServices any `json:"שירותים_בתשלום"`
	DressCode    any `json:"לבוש"`
}

type HotelRooms struct {
	SeparateBeds   any `json:"מיטות_נפרדות"`
	ConnectingDoor any `json:"דלת_מקשרת"`
	BathShower     any `json:"אמבטיה_מקלחת"`
	RoomCount      any `json:"מספר_חדרים"`
	RoomTypes      any `json:"סוגי_חדרים"`
	Spec           any `json:"מפרט_חדרים"`
	Size           any `json:"גודל_חדרים"`
	Balcony        any `json:"מרפסת"`
	Kitchen        any `json:"מטבח"`
	Important      any `json:"הערות_חשובות"`
}

type HotelServices struct {
	Shuttles   any `json:"שאטלים"`
	Gym        any `json:"חדר_כושר"`
	Facilities any `json:"מתקנים_נוספים"`
	SkiRoom    any `json:"סקי_רום"`
	Parking    any `json:"חניה"`
	Reception  any `json:"קבלה"`
	Meals      any `json:"ארוחות"`
}

type ResortCampsInfo struct {
	Country   any `json:"מדינה"`
	Site      any `json:"אתר"`
	Lessons   any `json:"קייטנות_והדרכות"`
	Credits   any `json:"זיכויים"`
	Important any `json:"הערות_חשובות"`
}

type CampView struct {
	Country  any    `json:"מדינה"`
	Site     any    `json:"אתר"`
	Name     any    `json:"שם_קייטנה"`
	Ages     string `json:"גילאים"`
	Price    any    `json:"מחיר"`
	Lunch    string `json:"כולל_ארוחת_צהריים"`
	When     any    `json:"מתי"`
	Schedule any    `json:"לוז"`
	Notes    any    `json:"הערות,omitempty"`
}

/********** tiny helpers **********/

// val returns the raw value at path, "" when missing, so the agent always
// sees every key.
func val(r domain.Record, path ...string) any { return r.ValueOr("", path...) }

// orText is val with a fallback for falsy values.
func orText(r domain.Record, fallback string, path ...string) any {
	if r.Bool(path...) {
		return r.Get(path...)
	}
	return fallback
}

func yesNoText(b bool) string {
	if b {
		return "כן"
	}
	return "לא"
}

func boundText(r domain.Record, key string) string {
	if s := r.Group(domain.GroupAgeRange).Str(key); s != "" {
		return s
	}
	return "?"
}

/********** mappers **********/

func MapHotelListItem(h domain.Record) HotelListItem {
	dry, loc := h.Group(domain.GroupDryFacts), h.Group(domain.GroupLocation)
	return HotelListItem{
		NameEN:       val(h, domain.FieldHotelName),
		NameHE:       val(dry, "שם מלון בעברית"),
		Country:      val(h, domain.FieldCountry),
		Site:         val(h, domain.FieldSite),
		Stars:        val(dry, domain.KeyStars),
		Audience:     val(dry, domain.KeyAudience),
		BookingScore: val(dry, "ציון בוקינג"),
		LiftDistance: val(loc, "מרחק מהרכבל"),
		HasSpa:       yesNoText(domain.HasSpa(h)),
	}
}

func MapHotelMatch(h domain.Record) HotelMatch {
	dry, loc := h.Group(domain.GroupDryFacts), h.Group(domain.GroupLocation)
	return HotelMatch{
		Name:         val(h, domain.FieldHotelName),
		NameHE:       val(dry, "שם מלון בעברית"),
		Country:      val(h, domain.FieldCountry),
		Site:         val(h, domain.FieldSite),
		Stars:        val(dry, domain.KeyStars),
		Audience:     val(dry, domain.KeyAudience),
		BookingScore: val(dry, "ציון בוקינג"),
		LiftDistance: val(loc, "מרחק מהרכבל"),
		Spa:          val(h, domain.GroupSpa, domain.KeySpaCost),
		AgentNotes:   val(h, domain.GroupRooms, domain.KeyImportant),
	}
}

func MapHotelDetail(h domain.Record) HotelDetail {
	dry := h.Group(domain.GroupDryFacts)
	loc := h.Group(domain.GroupLocation)
	spa := h.Group(domain.GroupSpa)
	rooms := h.Group(domain.GroupRooms)
	svc := h.Group(domain.GroupServices)
	return HotelDetail{
		Basics: HotelBasics{
			NameEN:       val(h, domain.FieldHotelName),
			NameHE:       val(dry, "שם מלון בעברית"),
			Country:      val(h, domain.FieldCountry),
			Site:         val(h, domain.FieldSite),
			Stars:        val(dry, domain.KeyStars),
			Audience:     val(dry, domain.KeyAudience),
			BookingScore: val(dry, "ציון בוקינג"),
			Website:      val(dry, "לינק לאתר"),
		},
		Location: HotelLocation{
			Description:  val(loc, "תיאור מיקום המלון"),
			LiftDistance: val(loc, "מרחק מהרכבל"),
			LiftWalk:     val(loc, "מסלול הליכה לרכבל"),
			TownWalk:     val(loc, "מסלול הליכה למרכז העיירה"),
		},
		Spa: HotelSpa{
			EntryCost:    val(spa, domain.KeySpaCost),
			Contents:     val(spa, "תכולת ספא"),
			Restrictions: val(spa, "מגבלות בשימוש הספא"),
			PaidServices: val(spa, "שרותי ספא בתשלום"),
			DressCode:    val(spa, "לבוש ספא"),
		},
		Rooms: HotelRooms{
			SeparateBeds:   val(rooms, "מיטות נפרדות"),
			ConnectingDoor: val(rooms, "חדרים עם דלת מקשרת"),
			BathShower:     val(rooms, "אמבטיה / מקלחת בחדר"),
			RoomCount:      val(rooms, "מספר חדרים במלון"),
			RoomTypes:      val(rooms, "שם החדרים בעברית"),
			Spec:           val(rooms, "מפרט חדרים"),
			Size:           val(rooms, "גודל חדרים (הערכה)"),
			Balcony:        val(rooms, "האם יש מרפסת בחדרים"),
			Kitchen:        val(rooms, "תכולת מטבח"),
			Important:      val(rooms, domain.KeyImportant),
		},
		Services: HotelServices{
			Shuttles:   val(svc, "שאטלים מהמלון"),
			Gym:        val(svc, "חדר כושר"),
			Facilities: val(svc, "מתקנים נוספים במלון"),
			SkiRoom:    val(svc, "סקי רום"),
			Parking:    val(svc, "חניה"),
			Reception:  val(svc, "קבלה"),
			Meals:      val(svc, "ארוחות"),
		},
		Minors: val(h, domain.GroupCheckin, "חובה מבוגר בצק אין/ אין חובה במבוגר אך יש צורך באישור כתוב מהורה"),
	}
}

func MapResortCampsInfo(sec domain.Record) ResortCampsInfo {
	return ResortCampsInfo{
		Country:   val(sec, domain.FieldCountry),
		Site:      val(sec, domain.FieldSite),
		Lessons:   val(sec, domain.GroupLessons, domain.KeyLessonKind),
		Credits:   val(sec, domain.GroupCredits, domain.KeyCreditKind),
		Important: val(sec, domain.GroupRooms, domain.KeyImportant),
	}
}

func MapCamp(c domain.Record) CampView {
	v := CampView{
		Country:  val(c, domain.FieldCountry),
		Site:     val(c, domain.FieldSite),
		Name:     val(c, domain.FieldCampName),
		Ages:     boundText(c, domain.KeyAgeMin) + "-" + boundText(c, domain.KeyAgeMax),
		Price:    c.ValueOr("אין מידע", domain.GroupCampPrice, domain.KeyPriceText),
		Lunch:    yesNoText(c.Bool(domain.KeyCampLunch)),
		When:     orText(c, "לא צוין", domain.KeyCampWhen),
		Schedule: orText(c, "לא צוין", domain.KeyCampDaily),
	}
	if c.Bool(domain.KeyCampNotes) {
		v.Notes = c.Get(domain.KeyCampNotes)
	}
	return v
}

func MapHotelListItems(rs []domain.Record) []HotelListItem {
	out := make([]HotelListItem, 0, len(rs))
	for _, r := range rs {
		out = append(out, MapHotelListItem(r))
	}
	return out
}

func MapHotelMatches(rs []domain.Record) []HotelMatch {
	out := make([]HotelMatch, 0, len(rs))
	for _, r := range rs {
		out = append(out, MapHotelMatch(r))
	}
	return out
}

func MapCamps(rs []domain.Record) []CampView {
	out := make([]CampView, 0, len(rs))
	for _, r := range rs {
		out = append(out, MapCamp(r))
	}
	return out
}
