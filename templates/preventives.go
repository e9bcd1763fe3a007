package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"tripconf/services"
)

// PreventiveListItem is one row of the saved quotes table.
type PreventiveListItem struct {
	ID             string
	Name           string
	CheckIn        string
	CheckOut       string
	NumberOfGuests int
	Total          string
	Created        string
}

// PreventiveListPage renders the saved quotes overview.
func PreventiveListPage(items []PreventiveListItem) templ.Component {
	return Layout("Tripconf - Saved quotes", preventiveList(items))
}

func preventiveList(items []PreventiveListItem) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		ew := &errWriter{w: w}

		ew.write(`<section><h1>Saved quotes</h1>`)
		if len(items) == 0 {
			ew.write(`<p class="notice">No saved quotes yet. <a href="/preventives/new">Create the first one.</a></p></section>`)
			return ew.err
		}

		ew.write(`<table class="list-table"><tr><th>Name</th><th>Check-in</th><th>Check-out</th><th>Guests</th><th>Total</th><th>Created</th><th></th></tr>`)
		for _, item := range items {
			ew.printf(`<tr>
<td><a href="/preventives/%s">%s</a></td>
<td>%s</td><td>%s</td><td>%d</td><td>%s</td><td>%s</td>
<td class="row-actions">
<a href="/preventives/%s/export/pdf">PDF</a>
<a href="/preventives/%s/export/excel">Excel</a>
<a href="/preventives/new?from=%s">Duplicate</a>
<button hx-delete="/preventives/%s" hx-confirm="Delete this quote?" hx-target="closest tr" hx-swap="outerHTML">Delete</button>
</td></tr>`,
				templ.EscapeString(item.ID), templ.EscapeString(item.Name),
				templ.EscapeString(item.CheckIn), templ.EscapeString(item.CheckOut),
				item.NumberOfGuests, templ.EscapeString(item.Total), templ.EscapeString(item.Created),
				templ.EscapeString(item.ID), templ.EscapeString(item.ID),
				templ.EscapeString(item.ID), templ.EscapeString(item.ID))
		}
		ew.write(`</table></section>`)
		return ew.err
	})
}

// PreventiveDetail is the read-only view of one saved quote, rendered from
// the stored snapshot rather than the live catalog.
type PreventiveDetail struct {
	ID   string
	Data services.ExportData
}

// PreventiveViewPage renders a saved quote.
func PreventiveViewPage(detail PreventiveDetail) templ.Component {
	return Layout("Tripconf - "+detail.Data.Name, preventiveView(detail))
}

func preventiveView(detail PreventiveDetail) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		ew := &errWriter{w: w}
		data := detail.Data

		ew.printf(`<section><h1>%s</h1><dl class="summary">`, templ.EscapeString(data.Name))
		ew.printf(`<dt>Check-in</dt><dd>%s</dd>`, templ.EscapeString(data.CheckIn))
		ew.printf(`<dt>Check-out</dt><dd>%s</dd>`, templ.EscapeString(data.CheckOut))
		ew.printf(`<dt>Nights</dt><dd>%d</dd>`, data.Nights)
		ew.printf(`<dt>Guests</dt><dd>%d (%d free)</dd>`, data.NumberOfGuests, data.FreeQuote)
		ew.printf(`<dt>Rooms</dt><dd>%d double, %d single</dd>`, data.DoubleRooms, data.SingleRooms)
		if data.ShowVans {
			ew.printf(`<dt>Vans</dt><dd>%d</dd>`, data.NumberOfVans)
		}
		if data.Description != "" {
			ew.printf(`<dt>Notes</dt><dd>%s</dd>`, templ.EscapeString(data.Description))
		}
		ew.write(`</dl>`)

		if len(data.Days) > 0 {
			ew.write(`<h2>Meals</h2><table class="summary-table"><tr><th>Date</th><th>Lunch</th><th>Dinner</th></tr>`)
			for _, day := range data.Days {
				ew.printf(`<tr><td>%s</td><td>%s</td><td>%s</td></tr>`,
					templ.EscapeString(day.Date),
					templ.EscapeString(day.LunchName), templ.EscapeString(day.DinnerName))
			}
			ew.write(`</table>`)
		}

		if len(data.Services) > 0 {
			ew.write(`<h2>Services</h2><ul>`)
			for _, svc := range data.Services {
				ew.printf(`<li>%s (%s)</li>`, templ.EscapeString(svc.Name), services.FormatEUR(svc.Cost))
			}
			ew.write(`</ul>`)
		}

		b := data.Breakdown
		ew.write(`<h2>Costs</h2><dl class="summary">`)
		ew.printf(`<dt>Stay</dt><dd>%s</dd>`, services.FormatEUR(b.BasesCost))
		ew.printf(`<dt>Meals</dt><dd>%s</dd>`, services.FormatEUR(b.MealsCost))
		ew.printf(`<dt>Services</dt><dd>%s</dd>`, services.FormatEUR(b.ServicesCost))
		ew.printf(`<dt>Total</dt><dd>%s</dd>`, services.FormatEUR(b.TotalCost))
		ew.printf(`<dt>Total with tax</dt><dd>%s</dd>`, services.FormatEUR(b.TotalWithTax))
		ew.printf(`<dt>Per paying guest</dt><dd>%s</dd>`, services.FormatEUR(b.PerGuestCost))
		ew.write(`</dl>`)

		ew.printf(`<div class="row-actions">
<a href="/preventives/%s/export/pdf">Download PDF</a>
<a href="/preventives/%s/export/excel">Download Excel</a>
<a href="/preventives/new?from=%s">Duplicate</a>
</div></section>`,
			templ.EscapeString(detail.ID), templ.EscapeString(detail.ID), templ.EscapeString(detail.ID))
		return ew.err
	})
}
