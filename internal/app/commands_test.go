package app_test

import (
	"context"
	"errors"
	"slices"
	"strings"
	"testing"
	"time"

	"skideal/internal/app"
	"skideal/internal/domain"
)

func TestValidPhone(t *testing.T) {
	cases := map[string]bool{
		"0501234567":     true,
		"050-123-4567":   true,
		"(050) 1234567":  true,
		"031234567":      true,
		"+972501234567":  true,
		"00972501234567": true,
		"123":            false,
		"0601234567":     false,
		"05012345678":    false,
		"":               false,
	}
	for in, want := range cases {
		if got := app.ValidPhone(in); got != want {
			t.Errorf("ValidPhone(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestValidEmailAndName(t *testing.T) {
	if !app.ValidEmail("dana@example.co.il") || app.ValidEmail("dana@") || app.ValidEmail("") {
		t.Fatalf("email validation mismatch")
	}
	if app.ValidFullName("Yonatan") || !app.ValidFullName("Yonatan Shalosh") || !app.ValidFullName("  יונתן  שלוש ") {
		t.Fatalf("full name validation mismatch")
	}
}

func TestValidateContact_ReportsEveryViolation(t *testing.T) {
	got := app.ValidateContact(domain.HandoffRequest{
		CustomerName: "Yonatan",
		Phone:        "123",
		Email:        "not-an-email",
	})
	if len(got) != 3 {
		t.Fatalf("expected 3 violations, got %d: %v", len(got), got)
	}
	if !slices.ContainsFunc(got, func(m string) bool { return strings.Contains(m, "05XXXXXXXX") }) {
		t.Fatalf("phone violation should list accepted formats: %v", got)
	}
}

func TestValidateContact_NeedsSomeContact(t *testing.T) {
	got := app.ValidateContact(domain.HandoffRequest{CustomerName: "Yonatan Shalosh"})
	if len(got) != 1 {
		t.Fatalf("expected a single missing-contact violation, got %v", got)
	}
	if v := app.ValidateContact(domain.HandoffRequest{CustomerName: "Yonatan Shalosh", Phone: "0501234567"}); len(v) != 0 {
		t.Fatalf("valid request rejected: %v", v)
	}
	if v := app.ValidateContact(domain.HandoffRequest{CustomerName: "Yonatan Shalosh", Email: "y@s.com"}); len(v) != 0 {
		t.Fatalf("email-only request rejected: %v", v)
	}
}

func TestHandoff_InvalidDoesNotPublish(t *testing.T) {
	sink := &fakeSink{}
	res, err := app.NewHandoffService(sink).Handoff(context.Background(), domain.HandoffRequest{CustomerName: "Yonatan", Phone: "123"})
	if err != nil {
		t.Fatalf("Handoff: %v", err)
	}
	if res.Lead != nil || len(res.Violations) != 2 {
		t.Fatalf("unexpected result %+v", res)
	}
	if len(sink.leads) != 0 {
		t.Fatalf("invalid lead was published")
	}
}

func TestHandoff_PublishesLead(t *testing.T) {
	sink := &fakeSink{}
	yes := true
	res, err := app.NewHandoffService(sink).Handoff(context.Background(), domain.HandoffRequest{
		CustomerName:   "Yonatan Shalosh",
		Phone:          "050-123-4567",
		Destination:    "ואל טורנס",
		NumPeople:      4,
		NeedsSkiSchool: &yes,
	})
	if err != nil {
		t.Fatalf("Handoff: %v", err)
	}
	if res.Lead == nil || len(res.Violations) != 0 {
		t.Fatalf("expected a lead, got %+v", res)
	}
	if len(sink.leads) != 1 || sink.leads[0].ID != res.Lead.ID || res.Lead.ID == "" {
		t.Fatalf("sink got %+v", sink.leads)
	}
	if sink.leads[0].Customer.Phone != "0501234567" {
		t.Fatalf("phone not normalized: %q", sink.leads[0].Customer.Phone)
	}
	if sink.leads[0].Preferences.SkiSchool != "כן" || sink.leads[0].Preferences.Equipment != "" {
		t.Fatalf("preferences = %+v", sink.leads[0].Preferences)
	}
}

func TestHandoff_SinkFailurePropagates(t *testing.T) {
	boom := errors.New("queue down")
	_, err := app.NewHandoffService(&fakeSink{err: boom}).Handoff(context.Background(), domain.HandoffRequest{
		CustomerName: "Yonatan Shalosh",
		Email:        "y@s.com",
	})
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want %v", err, boom)
	}
}

func TestHandoff_NilSinkOnlyLogs(t *testing.T) {
	res, err := app.NewHandoffService(nil).Handoff(context.Background(), domain.HandoffRequest{
		CustomerName: "Yonatan Shalosh",
		Email:        "y@s.com",
	})
	if err != nil || res.Lead == nil {
		t.Fatalf("Handoff = %+v, %v", res, err)
	}
}

func TestBuildLead(t *testing.T) {
	no := false
	at := time.Date(2026, 1, 2, 10, 0, 0, 0, time.FixedZone("IST", 2*3600))
	l := app.BuildLead(domain.HandoffRequest{
		CustomerName:  " Dana Levi ",
		Email:         " dana@example.com ",
		SpaPreference: &no,
		Budget:        "5000 יורו",
	}, "lead-1", at)

	if l.ID != "lead-1" || !l.CreatedAt.Equal(at) || l.CreatedAt.Location() != time.UTC {
		t.Fatalf("identity fields = %q %v", l.ID, l.CreatedAt)
	}
	if l.Customer.Name != "Dana Levi" || l.Customer.Email != "dana@example.com" {
		t.Fatalf("customer = %+v", l.Customer)
	}
	if l.Preferences.Spa != "לא" || l.Preferences.Budget != "5000 יורו" {
		t.Fatalf("preferences = %+v", l.Preferences)
	}
}
