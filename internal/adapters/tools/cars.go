package tools

import (
	"context"
	"errors"

	"skideal/internal/domain"
)

// RegisterCars registers the car dealership tools backed by the sales API.
func RegisterCars(r *Registry, sales domain.SalesClient) error {
	all := []*Tool{
		{
			Name: "get_available_models",
			Description: "Get all first-hand car models currently available for purchase. " +
				"Use this when the customer asks what cars are available.",
			Schema:  ToolSchema{Required: []string{}, Properties: map[string]Property{}},
			Execute: listing(sales.Models, "רכבים זמינים ביד ראשונה", "שגיאה בטעינת רשימת הדגמים"),
		},
		{
			Name:        "get_zero_km_cars",
			Description: "Get all zero kilometer (brand new) cars available for immediate purchase.",
			Schema:      ToolSchema{Required: []string{}, Properties: map[string]Property{}},
			Execute:     listing(sales.ZeroKmCars, "רכבים זמינים ב-0 ק״מ", "שגיאה בטעינת רכבי 0 ק״מ"),
		},
		{
			Name:        "get_first_hand_car_details",
			Description: "Get specifications, pricing and description of a first-hand car model. Take the id from get_available_models.",
			Schema: ToolSchema{
				Required: []string{"importer_model"},
				Properties: map[string]Property{
					"importer_model": {Type: "string", Description: `Importer model id (e.g. "1VS4K6A1TEV1")`},
				},
			},
			Execute: details(sales.FirstHandCar, "importer_model",
				"שגיאה: חייב לספק מזהה דגם (importer_model)",
				"פרטי רכב יד ראשונה",
				"לא נמצא דגם עם המזהה '%s'. השתמש ב-get_available_models לקבלת רשימת הדגמים."),
		},
		{
			Name:        "get_zero_km_car_details",
			Description: "Get specifications, pricing and description of a zero km car. Take the id from get_zero_km_cars.",
			Schema: ToolSchema{
				Required: []string{"car_id"},
				Properties: map[string]Property{
					"car_id": {Type: "string", Description: `Car id (e.g. "8VFACG")`},
				},
			},
			Execute: details(sales.ZeroKmCar, "car_id",
				"שגיאה: חייב לספק מזהה רכב (car_id)",
				"פרטי רכב 0 ק״מ",
				"לא נמצא רכב עם המזהה '%s'. השתמש ב-get_zero_km_cars לקבלת רשימת הרכבים."),
		},
	}
	for _, t := range all {
		if err := r.Register(t); err != nil {
			return err
		}
	}
	return nil
}

func listing(fetch func(context.Context) (any, error), label, failMsg string) ExecuteFunc {
	return func(ctx context.Context, _ map[string]any) (string, error) {
		data, err := fetch(ctx)
		if err != nil {
			return "", fail(failMsg, err)
		}
		return labeled(label, data)
	}
}

func details(fetch func(context.Context, string) (any, error), arg, missing, label, notFound string) ExecuteFunc {
	return func(ctx context.Context, args map[string]any) (string, error) {
		id, _, err := optString(args, arg)
		if err != nil {
			return "", err
		}
		if id == "" {
			return "", fail(missing, nil)
		}
		data, err := fetch(ctx, id)
		if errors.Is(err, domain.ErrNotFound) {
			return "", noResults(notFound, id)
		}
		if err != nil {
			return "", fail("שגיאה בטעינת פרטי הרכב", err)
		}
		return labeled(label, data)
	}
}

func labeled(label string, data any) (string, error) {
	body, err := renderJSON(data)
	if err != nil {
		return "", err
	}
	return label + ": " + body, nil
}
