// Package testhelpers provides utilities for testing PocketBase-based applications.
package testhelpers

import (
	"strings"
	"testing"
	"time"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"tripconf/collections"
	"tripconf/services"
)

// NewTestApp creates a PocketBase instance backed by a temporary directory.
// It bootstraps the app and runs collections.Setup to create all tables.
// The temporary directory is cleaned up automatically when the test finishes.
func NewTestApp(t *testing.T) *pocketbase.PocketBase {
	t.Helper()

	tmpDir := t.TempDir()
	app := pocketbase.NewWithConfig(pocketbase.Config{
		DefaultDataDir: tmpDir,
	})

	if err := app.Bootstrap(); err != nil {
		t.Fatalf("failed to bootstrap test app: %v", err)
	}

	collections.Setup(app)

	return app
}

// CreateTestMeal creates a meal record and returns it.
func CreateTestMeal(t *testing.T, app *pocketbase.PocketBase, name string, day services.DayType, meal services.MealType, cost float64) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("meals")
	if err != nil {
		t.Fatalf("failed to find meals collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("name", name)
	record.Set("day_type", string(day))
	record.Set("meal_type", string(meal))
	record.Set("cost", cost)

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test meal: %v", err)
	}

	return record
}

// CreateTestCategory creates a service category record and returns it.
func CreateTestCategory(t *testing.T, app *pocketbase.PocketBase, name string) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("service_categories")
	if err != nil {
		t.Fatalf("failed to find service_categories collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("name", name)

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test category: %v", err)
	}

	return record
}

// CreateTestService creates a service record linked to a category and returns it.
func CreateTestService(t *testing.T, app *pocketbase.PocketBase, categoryID, name string, costPerPerson, vanCost float64, requiredVan bool) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("services")
	if err != nil {
		t.Fatalf("failed to find services collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("name", name)
	record.Set("category", categoryID)
	record.Set("cost_per_person", costPerPerson)
	record.Set("van_cost", vanCost)
	record.Set("is_required_van", requiredVan)

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test service: %v", err)
	}

	return record
}

// CreateTestPreventive creates a saved preventive record with a rate snapshot
// from the current defaults.
func CreateTestPreventive(t *testing.T, app *pocketbase.PocketBase, name string, checkIn, checkOut time.Time, guests int) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("preventives")
	if err != nil {
		t.Fatalf("failed to find preventives collection: %v", err)
	}

	rates := services.DefaultRates()

	record := core.NewRecord(col)
	record.Set("name", name)
	record.Set("check_in", checkIn)
	record.Set("check_out", checkOut)
	record.Set("number_of_guests", guests)
	record.Set("double_rooms", guests/2)
	record.Set("single_rooms", guests%2)
	record.Set("tax", rates.TaxPercent)
	record.Set("cost_per_night", rates.CostPerNight)
	record.Set("cost_per_double_room", rates.CostPerDoubleRoom)
	record.Set("cost_per_single_room", rates.CostPerSingleRoom)

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test preventive: %v", err)
	}

	return record
}

// AssertHTMLContains checks that body contains all specified fragments.
func AssertHTMLContains(t *testing.T, body string, fragments ...string) {
	t.Helper()

	for _, frag := range fragments {
		if !strings.Contains(body, frag) {
			t.Errorf("expected HTML to contain %q, but it was not found\nbody (first 500 chars): %s",
				frag, truncate(body, 500))
		}
	}
}

// AssertHXRedirect checks that the response has an HX-Redirect header with the expected URL.
func AssertHXRedirect(t *testing.T, headerVal, expectedURL string) {
	t.Helper()

	if headerVal != expectedURL {
		t.Errorf("expected HX-Redirect %q, got %q", expectedURL, headerVal)
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
