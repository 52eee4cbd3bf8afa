package tools

import (
	"context"
	"errors"
	"io/fs"
	"slices"
	"strconv"
	"strings"

	"skideal/internal/adapters/observability"
	"skideal/internal/app"
	"skideal/internal/domain"
	"skideal/internal/storage/datafile"
)

// SkiDeps wires the ski assistant's tools to their data.
type SkiDeps struct {
	Hotels     *app.Directory
	Camps      *app.Directory
	KosherPath string
	Handoff    *app.HandoffService
}

const campResortsNote = "שים לב - שמות האתרים עשויים להיות שונים מאתרי המלונות (למשל: בנסקו שבוע, בנסקו סופש)"

// RegisterSki registers the ski vacation tools.
func RegisterSki(r *Registry, d SkiDeps) error {
	all := []*Tool{
		availableDestinationsTool(d.Hotels),
		resortsByCountryTool(d.Hotels),
		hotelsListTool(d.Hotels),
		hotelInfoTool(d.Hotels),
		searchHotelsTool(d.Hotels),
		resortCampsInfoTool(d.Hotels),
		campResortsTool(d.Camps),
		campsInfoTool(d.Camps),
		searchCampsTool(d.Camps),
		searchCampsByResortTool(d.Camps),
		kosherInfoTool(d.KosherPath),
		handoffTool(d.Handoff),
	}
	for _, t := range all {
		if err := r.Register(t); err != nil {
			return err
		}
	}
	return nil
}

/********** hotels **********/

type destinations struct {
	TotalHotels      int                 `json:"total_hotels"`
	TotalResortsInfo int                 `json:"total_resorts_info"`
	Countries        []string            `json:"countries"`
	ResortsByCountry map[string][]string `json:"resorts_by_country"`
}

func availableDestinationsTool(hotels *app.Directory) *Tool {
	return &Tool{
		Name: "get_available_destinations",
		Description: "Get a list of all available ski destinations organized by country. " +
			"Use this when the customer asks what destinations are available.",
		Schema: ToolSchema{Required: []string{}, Properties: map[string]Property{}},
		Execute: func(ctx context.Context, _ map[string]any) (string, error) {
			sum, err := hotels.Summary(ctx)
			if err != nil {
				return "", err
			}
			return renderJSON(destinations{
				TotalHotels:      sum.Items,
				TotalResortsInfo: sum.Sections,
				Countries:        sum.Countries,
				ResortsByCountry: sum.SitesByCountry,
			})
		},
	}
}

func resortsByCountryTool(hotels *app.Directory) *Tool {
	return &Tool{
		Name:        "get_resorts_by_country",
		Description: "Get the ski resorts that have hotels in a country.",
		Schema: ToolSchema{
			Required: []string{"country"},
			Properties: map[string]Property{
				"country": {Type: "string", Description: `Country name in Hebrew (e.g. "אוסטריה", "צרפת")`},
			},
		},
		Execute: func(ctx context.Context, args map[string]any) (string, error) {
			country, err := requireString(args, "country")
			if err != nil {
				return "", err
			}
			sites, err := hotels.SitesByCountry(ctx, country)
			if err != nil {
				return "", err
			}
			if len(sites) == 0 {
				return "", noResults("לא נמצאו אתרים במדינה '%s'. השתמש ב-get_available_destinations לראות את כל היעדים.", country)
			}
			return renderJSON(map[string]any{"מדינה": country, "אתרים": sites})
		},
	}
}

func hotelsListTool(hotels *app.Directory) *Tool {
	return &Tool{
		Name:        "get_hotels_list",
		Description: "Get a list of hotels in a specific country or resort. Resort takes precedence over country.",
		Schema: ToolSchema{
			Required: []string{},
			Properties: map[string]Property{
				"country": {Type: "string", Description: `Country name in Hebrew (e.g. "אוסטריה", "צרפת", "גיאורגיה")`},
				"resort":  {Type: "string", Description: `Resort name in Hebrew (e.g. "ואל טורנס", "אישגיל")`},
			},
		},
		Execute: func(ctx context.Context, args map[string]any) (string, error) {
			country, _, err := optString(args, "country")
			if err != nil {
				return "", err
			}
			resort, _, err := optString(args, "resort")
			if err != nil {
				return "", err
			}

			var list []domain.Record
			switch {
			case resort != "":
				list, err = hotels.ItemsBySite(ctx, resort)
			case country != "":
				list, err = hotels.ItemsByCountry(ctx, country)
			default:
				list, err = hotels.Items(ctx)
			}
			if err != nil {
				return "", err
			}
			if len(list) == 0 {
				return "", noResults("לא נמצאו מלונות. נסה שם אחר או השתמש ב-get_available_destinations לראות את כל היעדים.")
			}
			return renderJSON(app.MapHotelListItems(list))
		},
	}
}

func hotelInfoTool(hotels *app.Directory) *Tool {
	return &Tool{
		Name:        "get_hotel_info",
		Description: "Get detailed information about a specific ski hotel: rooms, amenities, spa, dining and agent notes.",
		Schema: ToolSchema{
			Required: []string{"hotel_name"},
			Properties: map[string]Property{
				"hotel_name": {Type: "string", Description: `Hotel name in English (e.g. "Sporting", "Gudauri Lodge")`},
			},
		},
		Execute: func(ctx context.Context, args map[string]any) (string, error) {
			name, _, err := optString(args, "hotel_name")
			if err != nil {
				return "", err
			}
			if name == "" {
				return "", fail("שגיאה: חייב לספק שם מלון", nil)
			}
			h, ok, err := hotels.ItemByName(ctx, name)
			if err != nil {
				return "", err
			}
			if !ok {
				return "", noResults("לא נמצא מלון בשם '%s'. השתמש ב-get_hotels_list כדי לראות את רשימת המלונות.", name)
			}
			return renderJSON(app.MapHotelDetail(h))
		},
	}
}

func searchHotelsTool(hotels *app.Directory) *Tool {
	return &Tool{
		Name:        "search_hotels_by_criteria",
		Description: "Search ski hotels matching every supplied criterion. Omitted criteria are not applied.",
		Schema: ToolSchema{
			Required: []string{},
			Properties: map[string]Property{
				"country":      {Type: "string", Description: "Country in Hebrew"},
				"resort":       {Type: "string", Description: "Resort in Hebrew"},
				"min_stars":    {Type: "integer", Description: "Minimum star rating (3, 4 or 5). Hotels without a numeric rating are excluded."},
				"has_spa":      {Type: "boolean", Description: "Only hotels with spa facilities"},
				"suitable_for": {Type: "string", Description: `Target audience in Hebrew (e.g. "זוגות", "משפחה")`},
			},
		},
		Execute: func(ctx context.Context, args map[string]any) (string, error) {
			var c app.Criteria
			var err error
			if c.Country, _, err = optString(args, "country"); err != nil {
				return "", err
			}
			if c.Site, _, err = optString(args, "resort"); err != nil {
				return "", err
			}
			if c.Audience, _, err = optString(args, "suitable_for"); err != nil {
				return "", err
			}
			if c.MinRating, _, err = optInt(args, "min_stars"); err != nil {
				return "", err
			}
			spa, err := optBool(args, "has_spa")
			if err != nil {
				return "", err
			}
			if spa != nil && *spa {
				c.Features = []string{"spa"}
			}

			found, err := hotels.Search(ctx, c)
			if err != nil {
				return "", err
			}
			if len(found) == 0 {
				return "", noResults("לא נמצאו מלונות התואמים לקריטריונים. נסה להרחיב את החיפוש.")
			}
			return renderJSON(app.MapHotelMatches(found))
		},
	}
}

func resortCampsInfoTool(hotels *app.Directory) *Tool {
	return &Tool{
		Name:        "get_resort_camps_info",
		Description: "Get lessons, kids camps and credits offered at a specific resort.",
		Schema: ToolSchema{
			Required: []string{"country", "resort"},
			Properties: map[string]Property{
				"country": {Type: "string", Description: "Country in Hebrew"},
				"resort":  {Type: "string", Description: "Resort in Hebrew"},
			},
		},
		Execute: func(ctx context.Context, args map[string]any) (string, error) {
			country, err := requireString(args, "country")
			if err != nil {
				return "", err
			}
			resort, err := requireString(args, "resort")
			if err != nil {
				return "", err
			}
			sec, ok, err := hotels.Section(ctx, country, resort)
			if err != nil {
				return "", err
			}
			if !ok {
				return "", noResults("לא נמצא מידע על אתר %s ב%s. השתמש ב-get_available_destinations לראות את כל האתרים.", resort, country)
			}
			return renderJSON(app.MapResortCampsInfo(sec))
		},
	}
}

/********** camps **********/

func campResortsTool(camps *app.Directory) *Tool {
	return &Tool{
		Name: "get_camp_resorts",
		Description: "Get the resorts that offer ski camps (קייטנות). Camp resort names may differ from hotel " +
			"resort names (e.g. \"בנסקו שבוע\", \"בנסקו סופש\"). Use this before searching for camps.",
		Schema: ToolSchema{
			Required: []string{},
			Properties: map[string]Property{
				"country": {Type: "string", Description: "Optional country in Hebrew; all countries when omitted"},
			},
		},
		Execute: func(ctx context.Context, args map[string]any) (string, error) {
			country, _, err := optString(args, "country")
			if err != nil {
				return "", err
			}
			if country == "" {
				sum, err := camps.Summary(ctx)
				if err != nil {
					return "", err
				}
				return renderJSON(map[string]any{
					"אתרים_עם_קייטנות_לפי_מדינה": sum.SitesByCountry,
					"הערה":                       campResortsNote,
				})
			}
			sites, err := camps.SitesByCountry(ctx, country)
			if err != nil {
				return "", err
			}
			if len(sites) == 0 {
				return "", noResults("לא נמצאו קייטנות במדינה '%s'. נסה לבדוק את שם המדינה או השאר ריק לראות את כל האפשרויות.", country)
			}
			return renderJSON(map[string]any{
				"מדינה":            country,
				"אתרים_עם_קייטנות": sites,
				"הערה":             campResortsNote,
			})
		},
	}
}

func campsInfoTool(camps *app.Directory) *Tool {
	return &Tool{
		Name: "get_camps_info",
		Description: "Get the ski camps at the listed resorts, optionally only those suitable for a child's age. " +
			"Use get_camp_resorts first to see the exact resort names.",
		Schema: ToolSchema{
			Required: []string{"resorts"},
			Properties: map[string]Property{
				"resorts":   {Type: "array", Description: `Resort names in Hebrew (e.g. ["בנסקו", "בנסקו שבוע"])`, Items: &PropertyItems{Type: "string"}},
				"child_age": {Type: "number", Description: "Optional child age; keeps camps whose age band contains it"},
			},
		},
		Execute: func(ctx context.Context, args map[string]any) (string, error) {
			resorts, err := optStrings(args, "resorts")
			if err != nil {
				return "", err
			}
			if len(resorts) == 0 {
				return "", fail("שגיאה: חייב לספק לפחות שם אתר אחד. השתמש ב-get_camp_resorts לראות את רשימת האתרים.", nil)
			}
			age, err := optFloat(args, "child_age")
			if err != nil {
				return "", err
			}

			snap, err := camps.Snapshot(ctx)
			if err != nil {
				return "", err
			}
			s := camps.Schema()
			var found []domain.Record
			for _, resort := range resorts {
				found = append(found, app.ItemsBySite(snap.Items, s, resort)...)
			}
			if age != nil {
				found = app.SearchAgeBand(found, s, age, age)
			}

			if len(found) == 0 {
				joined := strings.Join(resorts, ", ")
				if age != nil {
					return "", noResults("לא נמצאו קייטנות באתרים '%s' לגיל %s. נסה לבדוק גיל אחר או השתמש ב-get_camp_resorts לראות את כל האתרים.",
						joined, strconv.FormatFloat(*age, 'f', -1, 64))
				}
				return "", noResults("לא נמצאו קייטנות באתרים '%s'. השתמש ב-get_camp_resorts לראות את רשימת האתרים הזמינים.", joined)
			}

			var sites []string
			for _, c := range found {
				if site := s.Site(c); !slices.Contains(sites, site) {
					sites = append(sites, site)
				}
			}
			slices.Sort(sites)
			return renderJSON(map[string]any{
				"אתרים_שנמצאו":  sites,
				"סה״כ_קייטנות": len(found),
				"קייטנות":       app.MapCamps(found),
			})
		},
	}
}

func searchCampsTool(camps *app.Directory) *Tool {
	return &Tool{
		Name:        "search_camps",
		Description: "Search ski camps by country, partial resort name, children's age range and lunch.",
		Schema: ToolSchema{
			Required: []string{},
			Properties: map[string]Property{
				"country":        {Type: "string", Description: "Country in Hebrew"},
				"resort":         {Type: "string", Description: "Resort name or part of it"},
				"min_age":        {Type: "number", Description: "Youngest child's age"},
				"max_age":        {Type: "number", Description: "Oldest child's age"},
				"includes_lunch": {Type: "boolean", Description: "Only camps that include lunch"},
			},
		},
		Execute: func(ctx context.Context, args map[string]any) (string, error) {
			var c app.Criteria
			var err error
			if c.Country, _, err = optString(args, "country"); err != nil {
				return "", err
			}
			if c.SiteContains, _, err = optString(args, "resort"); err != nil {
				return "", err
			}
			if c.MinAge, err = optFloat(args, "min_age"); err != nil {
				return "", err
			}
			if c.MaxAge, err = optFloat(args, "max_age"); err != nil {
				return "", err
			}
			lunch, err := optBool(args, "includes_lunch")
			if err != nil {
				return "", err
			}
			if lunch != nil && *lunch {
				c.Features = []string{"lunch"}
			}

			found, err := camps.Search(ctx, c)
			if err != nil {
				return "", err
			}
			if len(found) == 0 {
				return "", noResults("לא נמצאו קייטנות התואמות לקריטריונים. נסה להרחיב את החיפוש או השתמש ב-get_camp_resorts.")
			}
			return renderJSON(app.MapCamps(found))
		},
	}
}

func searchCampsByResortTool(camps *app.Directory) *Tool {
	return &Tool{
		Name:        "search_camps_by_resort",
		Description: `Find camps whose resort name contains the given text (e.g. "בנסקו" matches every Bansko variant).`,
		Schema: ToolSchema{
			Required: []string{"resort"},
			Properties: map[string]Property{
				"resort": {Type: "string", Description: "Resort name or part of it, in Hebrew"},
			},
		},
		Execute: func(ctx context.Context, args map[string]any) (string, error) {
			resort, err := requireString(args, "resort")
			if err != nil {
				return "", err
			}
			found, err := camps.SearchSite(ctx, resort)
			if err != nil {
				return "", err
			}
			if len(found) == 0 {
				return "", noResults("לא נמצאו קייטנות באתר שמכיל '%s'. השתמש ב-get_camp_resorts לראות את רשימת האתרים.", resort)
			}
			return renderJSON(app.MapCamps(found))
		},
	}
}

/********** kosher **********/

func kosherInfoTool(path string) *Tool {
	return &Tool{
		Name: "get_kosher_info",
		Description: "Get information about the kosher ski vacations department: kosher food, Shabbat arrangements, " +
			"prayers and observant travelers.",
		Schema: ToolSchema{Required: []string{}, Properties: map[string]Property{}},
		Execute: func(ctx context.Context, _ map[string]any) (string, error) {
			if path == "" {
				return "", fail("מידע על חופשות כשרות אינו זמין כרגע", nil)
			}
			text, err := datafile.ReadText(path)
			if errors.Is(err, fs.ErrNotExist) {
				return "", fail("מידע על חופשות כשרות אינו זמין כרגע", err)
			}
			if err != nil {
				return "", err
			}
			return text, nil
		},
	}
}

/********** handoff **********/

type handoffReply struct {
	Status  string       `json:"סטטוס"`
	Message string       `json:"הודעה"`
	Errors  []string     `json:"שגיאות,omitempty"`
	Summary *domain.Lead `json:"סיכום,omitempty"`
}

func handoffTool(svc *app.HandoffService) *Tool {
	props := map[string]Property{
		"customer_name":      {Type: "string", Description: "Customer's full name (first and last)"},
		"phone":              {Type: "string", Description: "Israeli phone number: 05XXXXXXXX, 0XXXXXXXX or +972..."},
		"email":              {Type: "string", Description: "Customer's email address"},
		"destination":        {Type: "string", Description: "Preferred destination, resort or country"},
		"dates":              {Type: "string", Description: "Travel dates or date range"},
		"num_people":         {Type: "integer", Description: "Number of travelers"},
		"ages":               {Type: "string", Description: "Ages of travelers, especially children"},
		"ski_level":          {Type: "string", Description: "beginner / intermediate / advanced"},
		"needs_ski_school":   {Type: "boolean", Description: "Whether they need ski school"},
		"needs_equipment":    {Type: "boolean", Description: "Whether they need equipment rental"},
		"hotel_preference":   {Type: "string", Description: "Preferred hotel or hotel type"},
		"budget":             {Type: "string", Description: "Budget range or constraints"},
		"spa_preference":     {Type: "boolean", Description: "Whether spa is important"},
		"insurance_interest": {Type: "boolean", Description: "Interest in Trip Guaranty insurance"},
		"additional_notes":   {Type: "string", Description: "Anything else relevant from the conversation"},
	}
	return &Tool{
		Name: "handoff_to_agent",
		Description: "Hand the conversation to a human sales agent with all collected details. Use when the customer " +
			"is ready to book, asks for a human, or information is missing. Requires a full name and a valid phone or email.",
		Schema: ToolSchema{Required: []string{}, Properties: props},
		Execute: func(ctx context.Context, args map[string]any) (string, error) {
			if svc == nil {
				return "", fail("העברה לנציג אינה זמינה כרגע", nil)
			}
			req, err := handoffRequest(args)
			if err != nil {
				return "", err
			}
			res, err := svc.Handoff(ctx, req)
			if err != nil {
				observability.ObserveHandoff("failed")
				return "", fail("שגיאה בהעברה לנציג", err)
			}
			if len(res.Violations) > 0 {
				observability.ObserveHandoff("rejected")
				return renderJSON(handoffReply{
					Status:  "חסרים פרטים",
					Message: "יש להשלים או לתקן את הפרטים הבאים לפני ההעברה לנציג",
					Errors:  res.Violations,
				})
			}
			observability.ObserveHandoff("published")
			return renderJSON(handoffReply{
				Status:  "הועבר לנציג",
				Message: "פרטי הלקוח הועברו לנציג אנושי שייצור קשר בהקדם.",
				Summary: res.Lead,
			})
		},
	}
}

func handoffRequest(args map[string]any) (domain.HandoffRequest, error) {
	var req domain.HandoffRequest
	strs := []struct {
		key string
		dst *string
	}{
		{"customer_name", &req.CustomerName},
		{"phone", &req.Phone},
		{"email", &req.Email},
		{"destination", &req.Destination},
		{"dates", &req.Dates},
		{"ages", &req.Ages},
		{"ski_level", &req.SkiLevel},
		{"hotel_preference", &req.HotelPreference},
		{"budget", &req.Budget},
		{"additional_notes", &req.AdditionalNotes},
	}
	for _, f := range strs {
		v, _, err := optString(args, f.key)
		if err != nil {
			return req, err
		}
		*f.dst = v
	}
	bools := []struct {
		key string
		dst **bool
	}{
		{"needs_ski_school", &req.NeedsSkiSchool},
		{"needs_equipment", &req.NeedsEquipment},
		{"spa_preference", &req.SpaPreference},
		{"insurance_interest", &req.InsuranceInterest},
	}
	for _, f := range bools {
		v, err := optBool(args, f.key)
		if err != nil {
			return req, err
		}
		*f.dst = v
	}
	n, _, err := optInt(args, "num_people")
	if err != nil {
		return req, err
	}
	req.NumPeople = n
	return req, nil
}
