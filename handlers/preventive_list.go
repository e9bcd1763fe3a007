package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"tripconf/services"
	"tripconf/templates"
)

// HandlePreventiveList renders the saved quotes, newest first.
func HandlePreventiveList(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		records, err := app.FindRecordsByFilter("preventives", "id != ''", "-created", 0, 0, nil)
		if err != nil {
			log.Printf("preventive_list: query failed: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, services.DefaultErrorMessage)
		}

		items := make([]templates.PreventiveListItem, 0, len(records))
		for _, rec := range records {
			item := templates.PreventiveListItem{
				ID:             rec.Id,
				Name:           rec.GetString("name"),
				CheckIn:        rec.GetDateTime("check_in").Time().Format(services.DefaultDateFormat),
				CheckOut:       rec.GetDateTime("check_out").Time().Format(services.DefaultDateFormat),
				NumberOfGuests: rec.GetInt("number_of_guests"),
				Created:        rec.GetDateTime("created").Time().Format(services.DefaultDateFormat),
			}

			if data, err := exportDataFromRecord(rec); err == nil {
				item.Total = services.FormatEUR(data.Breakdown.TotalWithTax)
			} else {
				log.Printf("preventive_list: could not price record %s: %v", rec.Id, err)
				item.Total = "-"
			}

			items = append(items, item)
		}

		return templates.PreventiveListPage(items).Render(e.Request.Context(), e.Response)
	}
}

// HandlePreventiveView renders one saved quote from its stored snapshot.
func HandlePreventiveView(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		rec, err := app.FindRecordById("preventives", e.Request.PathValue("id"))
		if err != nil {
			return ErrorToast(e, http.StatusNotFound, "Preventive not found")
		}

		data, err := exportDataFromRecord(rec)
		if err != nil {
			log.Printf("preventive_view: could not rebuild export data for %s: %v", rec.Id, err)
			return ErrorToast(e, http.StatusInternalServerError, services.DefaultErrorMessage)
		}

		detail := templates.PreventiveDetail{ID: rec.Id, Data: data}
		return templates.PreventiveViewPage(detail).Render(e.Request.Context(), e.Response)
	}
}

// HandlePreventiveDelete removes a saved quote.
func HandlePreventiveDelete(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		rec, err := app.FindRecordById("preventives", e.Request.PathValue("id"))
		if err != nil {
			return ErrorToast(e, http.StatusNotFound, "Preventive not found")
		}

		if err := app.Delete(rec); err != nil {
			log.Printf("preventive_delete: failed to delete %s: %v", rec.Id, err)
			return ErrorToast(e, http.StatusInternalServerError, services.DefaultErrorMessage)
		}

		SetToast(e, "success", "Preventive deleted")

		if e.Request.Header.Get("HX-Request") == "true" {
			// The row is swapped out with nothing.
			return e.String(http.StatusOK, "")
		}
		return e.Redirect(http.StatusFound, "/preventives")
	}
}
