package tools_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"skideal/internal/adapters/tools"
	"skideal/internal/app"
	"skideal/internal/domain"
	"skideal/internal/storage/datafile"
)

const hotelsJSONL = `
{"שם מלון באנגלית":"Sporting","מדינה":"צרפת","אתר":"ואל טורנס","נתונים יבשים":{"שם מלון בעברית":"ספורטינג","כוכבים":4,"למי מתאים המלון":"זוגות ומשפחות"},"ספא":{"עלות כניסה לספא":"כלול"},"חדרים":{"הערות חשובות":"לבקש קומה גבוהה"}}
{"שם מלון באנגלית":"כללי","מדינה":"צרפת","אתר":"ואל טורנס","הדרכות":{"סוגי הדרכות בחופשה":"קייטנת סקי לילדים"},"זיכויים":{"סוגי זיכויים בחופשה":"זיכוי על סקי פס"}}
{"שם מלון באנגלית":"Lucky","מדינה":"צרפת","אתר":"ואל טורנס","נתונים יבשים":{"כוכבים":"3","למי מתאים המלון":"משפחה"},"ספא":{"עלות כניסה לספא":"אין ספא"}}

{"שם מלון באנגלית":"Trofana","מדינה":"אוסטריה","אתר":"אישגיל","נתונים יבשים":{"כוכבים":5,"למי מתאים המלון":"זוגות"},"ספא":{"עלות כניסה לספא":"20 יורו"}}
{"שם מלון באנגלית":"Residence","מדינה":"אוסטריה","אתר":"אישגיל","נתונים יבשים":{"כוכבים":"מלון דירות"}}
`

const campsJSONL = `
{"שם קייטנה":"Ski Kids","מדינה":"בולגריה","אתר":"בנסקו","גילאים":{"מינימום":4,"מקסימום":6},"כולל ארוחת צהריים":true,"מחיר":{"טקסט":"250 יורו"}}
{"שם קייטנה":"Teens","מדינה":"בולגריה","אתר":"בנסקו שבוע","גילאים":{"מינימום":9,"מקסימום":12},"כולל ארוחת צהריים":false}
{"שם קייטנה":"Piou Piou","מדינה":"צרפת","אתר":"ואל טורנס","גילאים":{"מינימום":3,"מקסימום":5},"מתי":"א-ה","הערות":"הרשמה מראש"}
`

type fakeSink struct{ leads []domain.Lead }

func (s *fakeSink) Publish(_ context.Context, l domain.Lead) error {
	s.leads = append(s.leads, l)
	return nil
}

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, []byte(strings.TrimLeft(body, "\n")), 0o600); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return p
}

// skiRegistry wires the ski tools to temp data files.
func skiRegistry(t *testing.T) (*tools.Registry, *fakeSink) {
	t.Helper()
	dir := t.TempDir()
	sink := &fakeSink{}
	reg := tools.NewRegistry(5 * time.Second)
	err := tools.RegisterSki(reg, tools.SkiDeps{
		Hotels:     app.NewDirectory(datafile.NewStore(writeFile(t, dir, "hotels.jsonl", hotelsJSONL)), domain.HotelSchema),
		Camps:      app.NewDirectory(datafile.NewStore(writeFile(t, dir, "camps.jsonl", campsJSONL)), domain.CampSchema),
		KosherPath: writeFile(t, dir, "kosher.md", "\n# SKIPA\nמניין בכל ערב\n"),
		Handoff:    app.NewHandoffService(sink),
	})
	if err != nil {
		t.Fatalf("RegisterSki: %v", err)
	}
	return reg, sink
}

func decode[T any](t *testing.T, s string) T {
	t.Helper()
	var v T
	if err := json.Unmarshal([]byte(s), &v); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, s)
	}
	return v
}

func mustOK(t *testing.T, r tools.Result) string {
	t.Helper()
	if r.Failed || r.Empty {
		t.Fatalf("%s: unexpected result %+v", r.Tool, r)
	}
	return r.Output
}
