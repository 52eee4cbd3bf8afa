package app

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"skideal/internal/domain"
)

const handoffAction = "העברה לנציג אנושי"

var (
	phoneMobile   = regexp.MustCompile(`^05\d{8}$`)
	phoneLandline = regexp.MustCompile(`^0[2-489]\d{7}$`)
	phoneIntl     = regexp.MustCompile(`^(\+|00)972\d{8,9}$`)
	emailPattern  = regexp.MustCompile(`^[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}$`)
	phoneNoise    = strings.NewReplacer(" ", "", "-", "", "(", "", ")", "", ".", "")
)

// Messages are returned to the agent verbatim and read back to the customer.
const (
	msgNameMissing  = "חסר שם מלא של הלקוח"
	msgNameShort    = "יש לציין שם מלא (שם פרטי ושם משפחה)"
	msgContactNone  = "חסר אמצעי קשר: יש לספק מספר טלפון או כתובת אימייל"
	msgPhoneInvalid = "מספר הטלפון אינו תקין. פורמטים נתמכים: נייד 05XXXXXXXX, קווי 0XXXXXXXX, בינלאומי +972XXXXXXXXX"
	msgEmailInvalid = "כתובת האימייל אינה תקינה (לדוגמה: name@example.com)"
)

// NormalizePhone drops separators customers tend to type.
func NormalizePhone(p string) string {
	return phoneNoise.Replace(strings.TrimSpace(p))
}

// ValidPhone accepts a local mobile, local landline or +972 number.
func ValidPhone(p string) bool {
	n := NormalizePhone(p)
	return phoneMobile.MatchString(n) || phoneLandline.MatchString(n) || phoneIntl.MatchString(n)
}

func ValidEmail(e string) bool { return emailPattern.MatchString(strings.TrimSpace(e)) }

// ValidFullName requires at least two whitespace-separated tokens.
func ValidFullName(n string) bool { return len(strings.Fields(n)) >= 2 }

// ValidateContact returns every problem with the customer's details; an
// empty result means the lead can be handed off.
func ValidateContact(req domain.HandoffRequest) []string {
	var errs []string
	switch {
	case strings.TrimSpace(req.CustomerName) == "":
		errs = append(errs, msgNameMissing)
	case !ValidFullName(req.CustomerName):
		errs = append(errs, msgNameShort)
	}
	phone, email := strings.TrimSpace(req.Phone), strings.TrimSpace(req.Email)
	if phone == "" && email == "" {
		errs = append(errs, msgContactNone)
	}
	if phone != "" && !ValidPhone(phone) {
		errs = append(errs, msgPhoneInvalid)
	}
	if email != "" && !ValidEmail(email) {
		errs = append(errs, msgEmailInvalid)
	}
	return errs
}

// HandoffService escalates a conversation to the human sales team.
type HandoffService struct {
	sink domain.LeadSink
	now  func() time.Time
}

// NewHandoffService accepts a nil sink; leads are then only logged.
func NewHandoffService(sink domain.LeadSink) *HandoffService {
	return &HandoffService{sink: sink, now: time.Now}
}

// HandoffResult is either a published lead or the list of violations that
// stopped it.
type HandoffResult struct {
	Lead       *domain.Lead
	Violations []string
}

func (s *HandoffService) Handoff(ctx context.Context, req domain.HandoffRequest) (HandoffResult, error) {
	if v := ValidateContact(req); len(v) > 0 {
		return HandoffResult{Violations: v}, nil
	}
	lead := BuildLead(req, uuid.NewString(), s.now())

	raw, err := json.Marshal(lead)
	if err != nil {
		return HandoffResult{}, fmt.Errorf("marshal lead: %w", err)
	}
	log.Info().Str("lead_id", lead.ID).RawJSON("lead", raw).Msg("handoff to human agent")

	if s.sink != nil {
		if err := s.sink.Publish(ctx, lead); err != nil {
			return HandoffResult{}, fmt.Errorf("publish lead %s: %w", lead.ID, err)
		}
	}
	return HandoffResult{Lead: &lead}, nil
}

// BuildLead maps the collected details into the sales team's summary shape.
func BuildLead(req domain.HandoffRequest, id string, at time.Time) domain.Lead {
	return domain.Lead{
		ID:        id,
		CreatedAt: at.UTC(),
		Action:    handoffAction,
		Customer: domain.LeadCustomer{
			Name:  strings.TrimSpace(req.CustomerName),
			Phone: NormalizePhone(req.Phone),
			Email: strings.TrimSpace(req.Email),
		},
		Trip: domain.LeadTrip{
			Destination: req.Destination,
			Dates:       req.Dates,
			NumPeople:   req.NumPeople,
			Ages:        req.Ages,
			SkiLevel:    req.SkiLevel,
		},
		Preferences: domain.LeadPreferences{
			SkiSchool:       yesNo(req.NeedsSkiSchool),
			Equipment:       yesNo(req.NeedsEquipment),
			HotelPreference: req.HotelPreference,
			Budget:          req.Budget,
			Spa:             yesNo(req.SpaPreference),
			Insurance:       yesNo(req.InsuranceInterest),
		},
		Notes: req.AdditionalNotes,
	}
}

func yesNo(b *bool) string {
	switch {
	case b == nil:
		return ""
	case *b:
		return "כן"
	default:
		return "לא"
	}
}
