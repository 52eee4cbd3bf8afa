package app_test

import (
	"testing"

	"skideal/internal/app"
	"skideal/internal/domain"
)

func TestMapHotelListItem(t *testing.T) {
	v := app.MapHotelListItem(hotel("Sporting", "צרפת", "ואל טורנס", 4.0, "זוגות", "כלול"))
	if v.NameEN != "Sporting" || v.Stars != 4.0 || v.HasSpa != "כן" {
		t.Fatalf("list item = %+v", v)
	}
	// Missing keys render as "" so the agent always sees every field.
	if v.BookingScore != "" || v.LiftDistance != "" {
		t.Fatalf("missing fields should be empty strings: %+v", v)
	}
	if v := app.MapHotelListItem(hotel("Lucky", "צרפת", "ואל טורנס", "3", "", "אין ספא")); v.HasSpa != "לא" {
		t.Fatalf("'אין ספא' must read as no spa, got %q", v.HasSpa)
	}
}

func TestMapHotelMatch_CarriesAgentNotes(t *testing.T) {
	v := app.MapHotelMatch(hotel("Trofana", "אוסטריה", "אישגיל", 5.0, "זוגות", "20 יורו"))
	if v.Spa != "20 יורו" || v.AgentNotes != "הערה לסוכן" {
		t.Fatalf("match = %+v", v)
	}
}

func TestMapHotelDetail(t *testing.T) {
	h := hotel("Trofana", "אוסטריה", "אישגיל", 5.0, "זוגות", "20 יורו")
	d := app.MapHotelDetail(h)
	if d.Basics.NameHE != "Trofana (עב)" || d.Spa.EntryCost != "20 יורו" || d.Rooms.Important != "הערה לסוכן" {
		t.Fatalf("detail = %+v", d)
	}
	if d.Minors != "" || d.Services.Meals != "" {
		t.Fatalf("absent groups should map to empty values: %+v", d)
	}
}

func TestMapResortCampsInfo(t *testing.T) {
	v := app.MapResortCampsInfo(section("כללי", "צרפת", "ואל טורנס"))
	if v.Lessons != "קייטנת סקי לילדים" || v.Credits != "זיכוי על סקי פס" || v.Important != "" {
		t.Fatalf("resort camps = %+v", v)
	}
}

func TestMapCamp(t *testing.T) {
	v := app.MapCamp(camp("Ski Kids", "בולגריה", "בנסקו", 4.0, 6.0, true))
	if v.Ages != "4-6" || v.Lunch != "כן" || v.Price != "250 יורו לשבוע" {
		t.Fatalf("camp = %+v", v)
	}
	if v.When != "לא צוין" || v.Schedule != "לא צוין" || v.Notes != nil {
		t.Fatalf("fallbacks = %+v", v)
	}

	open := domain.Record{domain.FieldCampName: "Open", domain.KeyCampNotes: "רק בחגים"}
	v = app.MapCamp(open)
	if v.Ages != "?-?" || v.Lunch != "לא" || v.Price != "אין מידע" || v.Notes != "רק בחגים" {
		t.Fatalf("open camp = %+v", v)
	}
}

func TestMapCamps_EmptyIsNotNil(t *testing.T) {
	if got := app.MapCamps(nil); got == nil || len(got) != 0 {
		t.Fatalf("MapCamps(nil) = %#v", got)
	}
}
