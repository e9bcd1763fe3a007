package handlers

import (
	"fmt"

	"github.com/pocketbase/pocketbase"

	"tripconf/services"
	"tripconf/templates"
)

// loadMeals fetches the whole meal catalog, ordered by name.
func loadMeals(app *pocketbase.PocketBase) ([]services.Meal, error) {
	records, err := app.FindRecordsByFilter("meals", "id != ''", "name", 0, 0, nil)
	if err != nil {
		return nil, fmt.Errorf("load meals: %w", err)
	}

	meals := make([]services.Meal, 0, len(records))
	for _, rec := range records {
		meals = append(meals, services.MealFromRecord(rec))
	}
	return meals, nil
}

// loadServiceCategories fetches every category with its services, both
// ordered by name. Services carry their category name for display.
func loadServiceCategories(app *pocketbase.PocketBase) ([]services.ServiceCategory, error) {
	catRecords, err := app.FindRecordsByFilter("service_categories", "id != ''", "name", 0, 0, nil)
	if err != nil {
		return nil, fmt.Errorf("load categories: %w", err)
	}

	categories := make([]services.ServiceCategory, 0, len(catRecords))
	for _, catRec := range catRecords {
		category := services.ServiceCategory{
			ID:   catRec.Id,
			Name: catRec.GetString("name"),
		}

		svcRecords, err := app.FindRecordsByFilter(
			"services",
			"category = {:cat}",
			"name", 0, 0,
			map[string]any{"cat": catRec.Id},
		)
		if err != nil {
			return nil, fmt.Errorf("load services for category %s: %w", catRec.Id, err)
		}
		for _, svcRec := range svcRecords {
			svc := services.ServiceFromRecord(svcRec)
			svc.CategoryName = category.Name
			category.Services = append(category.Services, svc)
		}

		categories = append(categories, category)
	}
	return categories, nil
}

// buildWizardData assembles the render model for the wizard from the session
// and the live catalog. Draft previews always price against the current
// default rates; the snapshot happens at submission.
func buildWizardData(app *pocketbase.PocketBase, session *services.Session, errors map[string]string) (templates.WizardData, error) {
	if errors == nil {
		errors = make(map[string]string)
	}

	data := templates.WizardData{
		Step:           session.Step,
		Draft:          session.Draft,
		Days:           session.Days,
		Selected:       session.Services,
		HasRequiredVan: session.HasRequiredVan(),
		Errors:         errors,
	}

	if session.Step == services.StepMeals {
		meals, err := loadMeals(app)
		if err != nil {
			return templates.WizardData{}, err
		}
		data.MealsByDay = services.GroupMeals(meals)
	}

	if session.Step == services.StepServices {
		categories, err := loadServiceCategories(app)
		if err != nil {
			return templates.WizardData{}, err
		}
		data.Categories = categories
	}

	if session.Step == services.StepConfirm {
		breakdown, err := services.ComputeBreakdown(session.Draft, session.Days, session.Services, services.DefaultRates())
		if err == nil {
			data.Breakdown = breakdown
			data.BreakdownOK = true
		}
	}

	return data, nil
}
