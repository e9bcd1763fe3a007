package handlers

import (
	"fmt"
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"tripconf/services"
)

// HandlePreventiveExportPDF re-generates the PDF for a saved preventive
// from its stored snapshot.
func HandlePreventiveExportPDF(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		rec, err := app.FindRecordById("preventives", e.Request.PathValue("id"))
		if err != nil {
			return e.String(http.StatusNotFound, "Preventive not found")
		}

		data, err := exportDataFromRecord(rec)
		if err != nil {
			log.Printf("preventive_export: could not rebuild export data for %s: %v", rec.Id, err)
			return e.String(http.StatusInternalServerError, "Failed to generate PDF file")
		}

		pdfBytes, err := services.GeneratePDF(data)
		if err != nil {
			log.Printf("preventive_export: failed to generate PDF for %s: %v", rec.Id, err)
			return e.String(http.StatusInternalServerError, "Failed to generate PDF file")
		}

		e.Response.Header().Set("Content-Type", "application/pdf")
		e.Response.Header().Set("Content-Disposition",
			fmt.Sprintf(`attachment; filename="%s.pdf"`, services.DefaultPreventivePDFName))
		if _, err := e.Response.Write(pdfBytes); err != nil {
			log.Printf("preventive_export: failed to write PDF response for %s: %v", rec.Id, err)
		}
		return nil
	}
}

// HandlePreventiveExportExcel re-generates the Excel workbook for a saved
// preventive from its stored snapshot.
func HandlePreventiveExportExcel(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		rec, err := app.FindRecordById("preventives", e.Request.PathValue("id"))
		if err != nil {
			return e.String(http.StatusNotFound, "Preventive not found")
		}

		data, err := exportDataFromRecord(rec)
		if err != nil {
			log.Printf("preventive_export: could not rebuild export data for %s: %v", rec.Id, err)
			return e.String(http.StatusInternalServerError, "Failed to generate Excel file")
		}

		xlsxBytes, err := services.GenerateExcel(data)
		if err != nil {
			log.Printf("preventive_export: failed to generate Excel for %s: %v", rec.Id, err)
			return e.String(http.StatusInternalServerError, "Failed to generate Excel file")
		}

		e.Response.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		e.Response.Header().Set("Content-Disposition",
			fmt.Sprintf(`attachment; filename="%s.xlsx"`, services.DefaultPreventivePDFName))
		if _, err := e.Response.Write(xlsxBytes); err != nil {
			log.Printf("preventive_export: failed to write Excel response for %s: %v", rec.Id, err)
		}
		return nil
	}
}
