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

// HandleServiceList renders the service catalog admin page.
func HandleServiceList(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		return renderServiceList(app, e)
	}
}

// HandleServiceCreate adds a service. Names must be unique within their
// category; duplicating an existing preventive matches services by that pair.
func HandleServiceCreate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid form data")
		}

		name := strings.TrimSpace(e.Request.FormValue("name"))
		categoryID := e.Request.FormValue("category")

		if name == "" {
			return ErrorToast(e, http.StatusBadRequest, "The service name cannot be empty")
		}
		if _, err := app.FindRecordById("service_categories", categoryID); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Unknown category")
		}

		existing, err := app.FindRecordsByFilter(
			"services",
			"name = {:name} && category = {:cat}",
			"", 1, 0,
			map[string]any{"name": name, "cat": categoryID},
		)
		if err == nil && len(existing) > 0 {
			return ErrorToast(e, http.StatusConflict, "A service with this name already exists in this category")
		}

		costPerPerson := parseCost(e.Request.FormValue("cost_per_person"))
		groupCost := parseCost(e.Request.FormValue("group_cost"))
		vanCost := parseCost(e.Request.FormValue("van_cost"))
		if costPerPerson < 0 || groupCost < 0 || vanCost < 0 {
			return ErrorToast(e, http.StatusBadRequest, "Invalid cost")
		}

		col, err := app.FindCollectionByNameOrId("services")
		if err != nil {
			log.Printf("service_create: could not find services collection: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, services.DefaultErrorMessage)
		}

		record := core.NewRecord(col)
		record.Set("name", name)
		record.Set("category", categoryID)
		record.Set("cost_per_person", costPerPerson)
		record.Set("group_cost", groupCost)
		record.Set("van_cost", vanCost)
		record.Set("is_required_van", e.Request.FormValue("is_required_van") == "true")
		record.Set("description", strings.TrimSpace(e.Request.FormValue("description")))

		if err := app.Save(record); err != nil {
			log.Printf("service_create: could not save service: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, services.DefaultErrorMessage)
		}

		SetToast(e, "success", "Service added")
		return renderServiceList(app, e)
	}
}

// HandleServiceDelete removes a service from the catalog.
func HandleServiceDelete(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		rec, err := app.FindRecordById("services", e.Request.PathValue("id"))
		if err != nil {
			return ErrorToast(e, http.StatusNotFound, "Service not found")
		}

		if err := app.Delete(rec); err != nil {
			log.Printf("service_delete: failed to delete %s: %v", rec.Id, err)
			return ErrorToast(e, http.StatusInternalServerError, services.DefaultErrorMessage)
		}

		SetToast(e, "success", "Service deleted")
		return renderServiceList(app, e)
	}
}

// HandleCategoryCreate adds a service category.
func HandleCategoryCreate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid form data")
		}

		name := strings.TrimSpace(e.Request.FormValue("name"))
		if name == "" {
			return ErrorToast(e, http.StatusBadRequest, "The category name cannot be empty")
		}

		existing, err := app.FindRecordsByFilter(
			"service_categories",
			"name = {:name}",
			"", 1, 0,
			map[string]any{"name": name},
		)
		if err == nil && len(existing) > 0 {
			return ErrorToast(e, http.StatusConflict, "A category with this name already exists")
		}

		col, err := app.FindCollectionByNameOrId("service_categories")
		if err != nil {
			log.Printf("category_create: could not find service_categories collection: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, services.DefaultErrorMessage)
		}

		record := core.NewRecord(col)
		record.Set("name", name)

		if err := app.Save(record); err != nil {
			log.Printf("category_create: could not save category: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, services.DefaultErrorMessage)
		}

		SetToast(e, "success", "Category added")
		return renderServiceList(app, e)
	}
}

// HandleCategoryDelete removes a category; its services go with it via
// cascade delete.
func HandleCategoryDelete(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		rec, err := app.FindRecordById("service_categories", e.Request.PathValue("id"))
		if err != nil {
			return ErrorToast(e, http.StatusNotFound, "Category not found")
		}

		if err := app.Delete(rec); err != nil {
			log.Printf("category_delete: failed to delete %s: %v", rec.Id, err)
			return ErrorToast(e, http.StatusInternalServerError, services.DefaultErrorMessage)
		}

		SetToast(e, "success", "Category deleted")
		return renderServiceList(app, e)
	}
}

func renderServiceList(app *pocketbase.PocketBase, e *core.RequestEvent) error {
	categories, err := loadServiceCategories(app)
	if err != nil {
		log.Printf("service_list: %v", err)
		return ErrorToast(e, http.StatusInternalServerError, services.DefaultErrorMessage)
	}

	var component templ.Component
	if e.Request.Header.Get("HX-Request") == "true" {
		component = templates.ServiceList(categories)
	} else {
		component = templates.ServiceListPage(categories)
	}
	return component.Render(e.Request.Context(), e.Response)
}

// parseCost reads an optional non-negative money field; empty means zero.
func parseCost(s string) float64 {
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return -1
	}
	return v
}
