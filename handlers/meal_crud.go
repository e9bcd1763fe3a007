package handlers

import (
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/a-h/templ"
	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"tripconf/services"
	"tripconf/templates"
)

// HandleMealList renders the meal catalog admin page.
func HandleMealList(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		return renderMealList(app, e)
	}
}

// HandleMealCreate adds a meal to the catalog. The (name, day, meal) triple
// must be unique: two entries in the same dropdown with the same name would
// be indistinguishable.
func HandleMealCreate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid form data")
		}

		name := strings.TrimSpace(e.Request.FormValue("name"))
		dayType := e.Request.FormValue("day_type")
		mealType := e.Request.FormValue("meal_type")

		if name == "" {
			return ErrorToast(e, http.StatusBadRequest, "The meal name cannot be empty")
		}
		if !validDayType(dayType) || !validMealType(mealType) {
			return ErrorToast(e, http.StatusBadRequest, "Invalid day or meal type")
		}

		cost, err := strconv.ParseFloat(e.Request.FormValue("cost"), 64)
		if err != nil || cost < 0 {
			return ErrorToast(e, http.StatusBadRequest, "Invalid cost")
		}

		existing, err := app.FindRecordsByFilter(
			"meals",
			"name = {:name} && day_type = {:day} && meal_type = {:meal}",
			"", 1, 0,
			map[string]any{"name": name, "day": dayType, "meal": mealType},
		)
		if err == nil && len(existing) > 0 {
			return ErrorToast(e, http.StatusConflict, "A meal with this name already exists for this day and meal type")
		}

		col, err := app.FindCollectionByNameOrId("meals")
		if err != nil {
			log.Printf("meal_create: could not find meals collection: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, services.DefaultErrorMessage)
		}

		record := core.NewRecord(col)
		record.Set("name", name)
		record.Set("day_type", dayType)
		record.Set("meal_type", mealType)
		record.Set("cost", cost)
		record.Set("description", strings.TrimSpace(e.Request.FormValue("description")))

		if err := app.Save(record); err != nil {
			log.Printf("meal_create: could not save meal: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, services.DefaultErrorMessage)
		}

		SetToast(e, "success", "Meal added")
		return renderMealList(app, e)
	}
}

// HandleMealDelete removes a meal from the catalog. Saved preventives keep
// their stored snapshot; only new selections lose the option.
func HandleMealDelete(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		rec, err := app.FindRecordById("meals", e.Request.PathValue("id"))
		if err != nil {
			return ErrorToast(e, http.StatusNotFound, "Meal not found")
		}

		if err := app.Delete(rec); err != nil {
			log.Printf("meal_delete: failed to delete %s: %v", rec.Id, err)
			return ErrorToast(e, http.StatusInternalServerError, services.DefaultErrorMessage)
		}

		SetToast(e, "success", "Meal deleted")
		return renderMealList(app, e)
	}
}

func renderMealList(app *pocketbase.PocketBase, e *core.RequestEvent) error {
	meals, err := loadMeals(app)
	if err != nil {
		log.Printf("meal_list: %v", err)
		return ErrorToast(e, http.StatusInternalServerError, services.DefaultErrorMessage)
	}

	var component templ.Component
	if e.Request.Header.Get("HX-Request") == "true" {
		component = templates.MealList(meals)
	} else {
		component = templates.MealListPage(meals)
	}
	return component.Render(e.Request.Context(), e.Response)
}

func validDayType(s string) bool {
	switch services.DayType(s) {
	case services.DayTypeFirst, services.DayTypeDefault, services.DayTypeLast:
		return true
	}
	return false
}

func validMealType(s string) bool {
	switch services.MealType(s) {
	case services.MealTypeLunch, services.MealTypeDinner:
		return true
	}
	return false
}
