package domain

import "time"

// HandoffRequest carries what the agent collected before escalating to a
// human. Pointer fields distinguish "not asked" from an explicit false.
type HandoffRequest struct {
	CustomerName      string
	Phone             string
	Email             string
	Destination       string
	Dates             string
	NumPeople         int
	Ages              string
	SkiLevel          string
	NeedsSkiSchool    *bool
	NeedsEquipment    *bool
	HotelPreference   string
	Budget            string
	SpaPreference     *bool
	InsuranceInterest *bool
	AdditionalNotes   string
}

// Lead is the summary handed to the sales team. JSON keys are what the
// team's inbox tooling reads.
type Lead struct {
	ID          string          `json:"מזהה"`
	CreatedAt   time.Time       `json:"נוצר_ב"`
	Action      string          `json:"סוג_פעולה"`
	Customer    LeadCustomer    `json:"פרטי_לקוח"`
	Trip        LeadTrip        `json:"פרטי_חופשה"`
	Preferences LeadPreferences `json:"העדפות"`
	Notes       string          `json:"הערות_נוספות"`
}

type LeadCustomer struct {
	Name  string `json:"שם,omitempty"`
	Phone string `json:"טלפון,omitempty"`
	Email string `json:"אימייל,omitempty"`
}

type LeadTrip struct {
	Destination string `json:"יעד,omitempty"`
	Dates       string `json:"תאריכים,omitempty"`
	NumPeople   int    `json:"מספר_נוסעים,omitempty"`
	Ages        string `json:"גילאים,omitempty"`
	SkiLevel    string `json:"רמת_סקי,omitempty"`
}

type LeadPreferences struct {
	SkiSchool       string `json:"בית_ספר_לסקי,omitempty"`
	Equipment       string `json:"השכרת_ציוד,omitempty"`
	HotelPreference string `json:"העדפת_מלון,omitempty"`
	Budget          string `json:"תקציב,omitempty"`
	Spa             string `json:"ספא,omitempty"`
	Insurance       string `json:"ביטוח_Trip_Guaranty,omitempty"`
}
