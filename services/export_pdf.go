package services

import (
	"fmt"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

// GeneratePDF renders the trip configuration document from ExportData
// using maroto/v2 and returns the raw PDF bytes. The header row is
// registered with the engine so it is re-emitted at the top of every page
// the content spills onto.
func GeneratePDF(data ExportData) ([]byte, error) {
	cfg := config.NewBuilder().
		WithOrientation(orientation.Vertical).
		WithPageSize(pagesize.A4).
		WithLeftMargin(15).
		WithTopMargin(15).
		WithRightMargin(15).
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
			Size:    7,
			Color:   &props.Color{Red: 120, Green: 120, Blue: 120},
		}).
		Build()

	m := maroto.New(cfg)

	if err := m.RegisterHeader(headerRow(data)); err != nil {
		return nil, fmt.Errorf("failed to register PDF header: %w", err)
	}

	addArrivalAndDeparture(m, data)
	addRooms(m, data)
	addMeals(m, data)
	addServices(m, data)
	addDescription(m, data)
	addVans(m, data)
	addTotals(m, data)
	addSignatureFooter(m)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}

	return doc.GetBytes(), nil
}

// headerRow builds the title row repeated on each page.
func headerRow(data ExportData) core.Row {
	return row.New(14).Add(
		col.New(12).Add(
			text.New(fmt.Sprintf("Trip configuration request for %s", data.Name), props.Text{
				Size:  16,
				Style: fontstyle.Bold,
				Align: align.Left,
			}),
		),
	)
}

func sectionTitle(m core.Maroto, title string) {
	m.AddRows(row.New(4))
	m.AddRows(
		row.New(8).Add(
			col.New(12).Add(
				text.New(title, props.Text{
					Size:  14,
					Style: fontstyle.BoldItalic,
					Align: align.Left,
				}),
			),
		),
	)
}

func textLine(m core.Maroto, line string) {
	m.AddRows(
		row.New(6).Add(
			col.New(12).Add(
				text.New(line, props.Text{
					Size:  12,
					Style: fontstyle.Italic,
					Align: align.Left,
				}),
			),
		),
	)
}

func addArrivalAndDeparture(m core.Maroto, data ExportData) {
	sectionTitle(m, "Arrival and departure")
	textLine(m, fmt.Sprintf("Number of guests: %d (+ %d free)", data.NumberOfGuests, data.FreeQuote))
	textLine(m, fmt.Sprintf("Check in: %s", data.CheckIn))
	textLine(m, fmt.Sprintf("Check out: %s", data.CheckOut))
	textLine(m, fmt.Sprintf("Number of nights: %d", data.Nights))
	textLine(m, fmt.Sprintf("Total cost for bases: %s", FormatEUR(data.Breakdown.BasesCost)))
}

func addRooms(m core.Maroto, data ExportData) {
	sectionTitle(m, "Rooms")
	textLine(m, fmt.Sprintf("Double rooms: %d", data.DoubleRooms))
	textLine(m, fmt.Sprintf("Single rooms: %d", data.SingleRooms))
}

func addMeals(m core.Maroto, data ExportData) {
	sectionTitle(m, "Meals")

	if len(data.Days) == 0 {
		textLine(m, "Check-in and check-out dates are the same, so meal selection is disabled")
		return
	}

	for i, day := range data.Days {
		textLine(m, fmt.Sprintf("Day %d: (%s)", i+1, day.Date))
		textLine(m, fmt.Sprintf("Lunch: %s (%s)", day.LunchName, FormatEUR(day.LunchCost)))
		textLine(m, fmt.Sprintf("Dinner: %s (%s)", day.DinnerName, FormatEUR(day.DinnerCost)))
	}
	textLine(m, fmt.Sprintf("Total cost for meals per number of guests: %s", FormatEUR(data.Breakdown.MealsCost)))
}

func addServices(m core.Maroto, data ExportData) {
	sectionTitle(m, "Services")

	if len(data.Services) == 0 {
		textLine(m, "No services were selected")
		return
	}

	for _, svc := range data.Services {
		line := fmt.Sprintf("%s (%s)", svc.Name, FormatEUR(svc.Cost))
		if svc.RequiredVan {
			line += " - Required van"
		}
		textLine(m, line)
	}
	textLine(m, fmt.Sprintf("Total cost for services: %s", FormatEUR(data.Breakdown.ServicesCost)))
}

func addDescription(m core.Maroto, data ExportData) {
	if data.Description == "" {
		return
	}
	sectionTitle(m, "Description")
	textLine(m, data.Description)
}

func addVans(m core.Maroto, data ExportData) {
	if !data.ShowVans {
		return
	}
	sectionTitle(m, "Number of vans")
	textLine(m, fmt.Sprintf("%d", data.NumberOfVans))
}

func addTotals(m core.Maroto, data ExportData) {
	sectionTitle(m, "Total cost")
	textLine(m, fmt.Sprintf("Total: %s", FormatEUR(data.Breakdown.TotalCost)))
	textLine(m, fmt.Sprintf("Total with il Tesoro Experiences services (+%.0f%%): %s",
		data.Rates.TaxPercent, FormatEUR(data.Breakdown.TotalWithTax)))
	textLine(m, fmt.Sprintf("Total pay for guests (%d): %s",
		data.PayingGuests, FormatEUR(data.Breakdown.PerGuestCost)))
}

// addSignatureFooter leaves room to countersign and states where to send
// the signed document back.
func addSignatureFooter(m core.Maroto) {
	m.AddRows(row.New(20))
	m.AddRows(
		row.New(8).Add(
			col.New(12).Add(
				text.New("___________________________", props.Text{
					Size:  14,
					Style: fontstyle.BoldItalic,
					Align: align.Left,
				}),
			),
		),
	)
	m.AddRows(
		row.New(10).Add(
			col.New(12).Add(
				text.New(
					fmt.Sprintf("N.B.: Please sign this document and send it by email to %s for confirmation", ConfirmationEmail),
					props.Text{
						Size:  12,
						Style: fontstyle.Bold,
						Align: align.Left,
					},
				),
			),
		),
	)
}
