package handlers

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"tripconf/services"
)

// HandlePreventiveSubmit validates the finished draft, persists it with a
// snapshot of the current rates and responds with the generated PDF. The
// record is removed again if the PDF cannot be produced, so a saved
// preventive always has a working export.
func HandlePreventiveSubmit(app *pocketbase.PocketBase, store *SessionStore) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id, session, ok := draftSession(store, e)
		if !ok {
			return restartWizard(e)
		}

		if err := services.ValidateDraft(session.Draft); err != nil {
			messages := services.ValidationMessages(err)
			SetToast(e, "warning", "Please fix the errors below")
			return renderWizard(app, e, session, messages, true)
		}

		rates := services.DefaultRates()

		col, err := app.FindCollectionByNameOrId("preventives")
		if err != nil {
			log.Printf("preventive_submit: could not find preventives collection: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, services.DefaultErrorMessage)
		}

		mealsJSON, err := services.MarshalDailyMeals(session.Days)
		if err != nil {
			log.Printf("preventive_submit: could not serialize meals: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, services.DefaultErrorMessage)
		}
		servicesJSON, err := services.MarshalServices(session.Services)
		if err != nil {
			log.Printf("preventive_submit: could not serialize services: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, services.DefaultErrorMessage)
		}

		record := core.NewRecord(col)
		record.Set("name", session.Draft.Name)
		record.Set("check_in", session.Draft.CheckIn)
		record.Set("check_out", session.Draft.CheckOut)
		record.Set("number_of_guests", session.Draft.NumberOfGuests)
		record.Set("double_rooms", session.Draft.DoubleRooms)
		record.Set("single_rooms", session.Draft.SingleRooms)
		record.Set("free_quote", session.Draft.FreeQuote)
		record.Set("description", session.Draft.Description)
		record.Set("number_of_vans", session.Draft.NumberOfVans)
		record.Set("meals", mealsJSON)
		record.Set("services", servicesJSON)
		record.Set("tax", rates.TaxPercent)
		record.Set("cost_per_night", rates.CostPerNight)
		record.Set("cost_per_double_room", rates.CostPerDoubleRoom)
		record.Set("cost_per_single_room", rates.CostPerSingleRoom)

		if err := app.Save(record); err != nil {
			log.Printf("preventive_submit: could not save preventive: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, services.DefaultErrorMessage)
		}

		data, err := services.BuildExportData(session.Draft, session.Days, session.Services, rates, time.Now())
		if err == nil {
			var pdfBytes []byte
			pdfBytes, err = services.GeneratePDF(data)
			if err == nil {
				session.Reset()
				store.Delete(id)
				clearDraftCookie(e)

				e.Response.Header().Set("Content-Type", "application/pdf")
				e.Response.Header().Set("Content-Disposition",
					fmt.Sprintf(`attachment; filename="%s.pdf"`, services.DefaultPreventivePDFName))
				if _, wErr := e.Response.Write(pdfBytes); wErr != nil {
					log.Printf("preventive_submit: failed to write PDF response for %s: %v", record.Id, wErr)
				}
				return nil
			}
		}

		// Export failed: roll the record back so the list never shows a
		// preventive that cannot be re-exported.
		log.Printf("preventive_submit: export failed, rolling back record %s: %v", record.Id, err)
		if delErr := app.Delete(record); delErr != nil {
			log.Printf("preventive_submit: rollback of record %s failed: %v", record.Id, delErr)
		}
		return ErrorToast(e, http.StatusInternalServerError, services.DefaultErrorMessage)
	}
}
