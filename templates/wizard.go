package templates

import (
	"context"
	"io"
	"time"

	"github.com/a-h/templ"

	"tripconf/services"
)

// WizardData is everything the quote wizard needs to render one step.
type WizardData struct {
	Step           int
	Draft          services.Draft
	Days           []services.DailyMeals
	Selected       []services.Service
	MealsByDay     map[services.DayType]services.MealGroup
	Categories     []services.ServiceCategory
	Breakdown      services.CostBreakdown
	BreakdownOK    bool
	HasRequiredVan bool
	Errors         map[string]string
}

var stepLabels = []string{"Arrival and departure", "Meals", "Services", "Confirm"}

// WizardPage renders the full wizard page inside the layout.
func WizardPage(data WizardData) templ.Component {
	return Layout("Tripconf - New quote", WizardContent(data))
}

// WizardContent renders the wizard fragment swapped by HTMX on every command.
func WizardContent(data WizardData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		ew := &errWriter{w: w}

		ew.write(`<div id="wizard">`)
		writeStepTabs(ew, data.Step)

		switch data.Step {
		case services.StepArrivalAndDeparture:
			writeArrivalStep(ew, data)
		case services.StepMeals:
			writeMealsStep(ew, data)
		case services.StepServices:
			writeServicesStep(ew, data)
		case services.StepConfirm:
			writeConfirmStep(ew, data)
		}

		writeWizardNav(ew, data.Step)
		ew.write(`</div>`)
		return ew.err
	})
}

// writeStepTabs renders the progress header. Completed steps are clickable;
// jumping forward past the current step is not offered.
func writeStepTabs(ew *errWriter, current int) {
	ew.write(`<ol class="wizard-steps">`)
	for i, label := range stepLabels {
		switch {
		case i == current:
			ew.printf(`<li class="step-current">%s</li>`, templ.EscapeString(label))
		case i < current:
			ew.printf(`<li class="step-done"><a hx-post="/wizard/step/%d" hx-target="#wizard" hx-swap="outerHTML" href="#">%s</a></li>`,
				i, templ.EscapeString(label))
		default:
			ew.printf(`<li class="step-todo">%s</li>`, templ.EscapeString(label))
		}
	}
	ew.write(`</ol>`)
}

func writeWizardNav(ew *errWriter, step int) {
	ew.write(`<div class="wizard-nav">`)
	if step > services.StepArrivalAndDeparture {
		ew.write(`<button type="button" hx-post="/wizard/previous" hx-target="#wizard" hx-swap="outerHTML">Previous</button>`)
	}
	if step < services.StepConfirm {
		ew.write(`<button type="button" class="primary" hx-post="/wizard/next" hx-target="#wizard" hx-swap="outerHTML">Next</button>`)
	}
	ew.write(`</div>`)
}

// fieldControl emits the htmx attributes shared by every wizard form control.
func fieldControl(field string) string {
	return `name="value" hx-post="/wizard/field?field=` + field + `" hx-target="#wizard" hx-swap="outerHTML"`
}

func writeArrivalStep(ew *errWriter, data WizardData) {
	d := data.Draft

	ew.write(`<section class="wizard-step"><h2>Arrival and departure</h2><form onsubmit="return false">`)

	ew.printf(`<label>Preventive name</label><input type="text" value="%s" %s hx-trigger="change">%s`,
		templ.EscapeString(d.Name), fieldControl("name"), fieldError(data.Errors, "name"))

	checkIn := ""
	if !d.CheckIn.IsZero() {
		checkIn = d.CheckIn.Format("2006-01-02")
	}
	ew.printf(`<label>Check-in</label><input type="date" value="%s" %s hx-trigger="change">%s`,
		checkIn, fieldControl("checkIn"), fieldError(data.Errors, "checkIn"))

	checkOut := ""
	if !d.CheckOut.IsZero() {
		checkOut = d.CheckOut.Format("2006-01-02")
	}
	ew.printf(`<label>Check-out</label><input type="date" value="%s" min="%s" %s hx-trigger="change">%s`,
		checkOut, checkIn, fieldControl("checkOut"), fieldError(data.Errors, "checkOut"))

	ew.printf(`<label>Number of guests</label><select %s>`, fieldControl("numberOfGuests"))
	ew.write(`<option value="">-</option>`)
	for _, n := range services.GuestOptions() {
		writeIntOption(ew, n, d.NumberOfGuests)
	}
	ew.printf(`</select>%s`, fieldError(data.Errors, "numberOfGuests"))

	ew.printf(`<label>Double rooms</label><select %s>`, fieldControl("doubleRooms"))
	for _, n := range services.CountOptions(services.MaxDoubleRooms) {
		writeIntOption(ew, n, d.DoubleRooms)
	}
	ew.printf(`</select>%s`, fieldError(data.Errors, "doubleRooms"))

	ew.printf(`<label>Single rooms</label><select %s>`, fieldControl("singleRooms"))
	for _, n := range services.CountOptions(services.MaxSingleRooms) {
		writeIntOption(ew, n, d.SingleRooms)
	}
	ew.printf(`</select>%s`, fieldError(data.Errors, "singleRooms"))

	ew.printf(`<label>Notes</label><textarea %s hx-trigger="change">%s</textarea>`,
		fieldControl("description"), templ.EscapeString(d.Description))

	ew.write(`</form></section>`)
}

func writeMealsStep(ew *errWriter, data WizardData) {
	ew.write(`<section class="wizard-step"><h2>Meals</h2>`)
	ew.write(fieldError(data.Errors, "meals"))

	if len(data.Days) == 0 {
		ew.write(`<p class="notice">Check-in and check-out dates are the same, so meal selection is disabled.</p></section>`)
		return
	}

	for _, day := range data.Days {
		group := data.MealsByDay[day.Day]
		ew.printf(`<fieldset class="day-meals"><legend>%s (%s)</legend>`,
			day.Date.Format(services.DefaultDateFormat), templ.EscapeString(dayLabel(day.Day)))

		writeMealSelect(ew, day.Date, services.MealTypeLunch, "Lunch", group.Lunches, day.Lunch)
		writeMealSelect(ew, day.Date, services.MealTypeDinner, "Dinner", group.Dinners, day.Dinner)

		ew.write(`</fieldset>`)
	}
	ew.write(`</section>`)
}

func writeMealSelect(ew *errWriter, date time.Time, kind services.MealType, label string, options []services.Meal, selected *services.Meal) {
	ew.printf(`<label>%s</label><select name="value" hx-post="/wizard/meal?date=%s&kind=%s" hx-target="#wizard" hx-swap="outerHTML">`,
		label, date.Format("2006-01-02"), kind)
	ew.write(`<option value="">No</option>`)
	for _, m := range options {
		sel := ""
		if selected != nil && selected.ID == m.ID {
			sel = ` selected`
		}
		ew.printf(`<option value="%s"%s>%s (%s)</option>`,
			templ.EscapeString(m.ID), sel, templ.EscapeString(m.Name), services.FormatEUR(m.Cost))
	}
	ew.write(`</select>`)
}

func writeServicesStep(ew *errWriter, data WizardData) {
	selected := make(map[string]bool, len(data.Selected))
	for _, s := range data.Selected {
		selected[s.ID] = true
	}

	ew.write(`<section class="wizard-step"><h2>Services</h2>`)
	for _, cat := range data.Categories {
		if len(cat.Services) == 0 {
			continue
		}
		ew.printf(`<fieldset class="service-category"><legend>%s</legend>`, templ.EscapeString(cat.Name))
		for _, svc := range cat.Services {
			checked := ""
			if selected[svc.ID] {
				checked = ` checked`
			}
			ew.printf(`<label class="service-option"><input type="checkbox"%s hx-post="/wizard/service/%s" hx-target="#wizard" hx-swap="outerHTML"> %s`,
				checked, templ.EscapeString(svc.ID), templ.EscapeString(svc.Name))
			if svc.CostPerPerson > 0 {
				ew.printf(` <span class="service-cost">%s per person</span>`, services.FormatEUR(svc.CostPerPerson))
			}
			if svc.GroupCost > 0 {
				ew.printf(` <span class="service-cost">%s per group</span>`, services.FormatEUR(svc.GroupCost))
			}
			if svc.IsRequiredVan {
				ew.write(` <span class="service-van">Required van</span>`)
			}
			ew.write(`</label>`)
		}
		ew.write(`</fieldset>`)
	}

	ew.write(`</section>`)
}

func writeConfirmStep(ew *errWriter, data WizardData) {
	d := data.Draft

	ew.write(`<section class="wizard-step"><h2>Confirm</h2><dl class="summary">`)
	ew.printf(`<dt>Preventive</dt><dd>%s</dd>`, templ.EscapeString(d.Name))
	ew.printf(`<dt>Check-in</dt><dd>%s</dd>`, d.CheckIn.Format(services.DefaultDateFormat))
	ew.printf(`<dt>Check-out</dt><dd>%s</dd>`, d.CheckOut.Format(services.DefaultDateFormat))
	ew.printf(`<dt>Guests</dt><dd>%d (%d free)</dd>`, d.NumberOfGuests, d.FreeQuote)
	ew.printf(`<dt>Rooms</dt><dd>%d double, %d single</dd>`, d.DoubleRooms, d.SingleRooms)
	if d.NumberOfVans > 0 {
		ew.printf(`<dt>Vans</dt><dd>%d</dd>`, d.NumberOfVans)
	}
	if d.Description != "" {
		ew.printf(`<dt>Notes</dt><dd>%s</dd>`, templ.EscapeString(d.Description))
	}
	ew.write(`</dl>`)

	ew.write(`<h3>Meals</h3><table class="summary-table"><tr><th>Date</th><th>Lunch</th><th>Dinner</th></tr>`)
	for _, day := range data.Days {
		ew.printf(`<tr><td>%s</td><td>%s</td><td>%s</td></tr>`,
			day.Date.Format(services.DefaultDateFormat), mealCell(day.Lunch), mealCell(day.Dinner))
	}
	ew.write(`</table>`)

	if len(data.Selected) > 0 {
		ew.write(`<h3>Services</h3><ul>`)
		for _, svc := range data.Selected {
			ew.printf(`<li>%s</li>`, templ.EscapeString(svc.Name))
		}
		ew.write(`</ul>`)
	}

	if data.BreakdownOK {
		b := data.Breakdown
		ew.write(`<h3>Costs</h3><dl class="summary">`)
		ew.printf(`<dt>Stay</dt><dd>%s</dd>`, services.FormatEUR(b.BasesCost))
		ew.printf(`<dt>Meals</dt><dd>%s</dd>`, services.FormatEUR(b.MealsCost))
		ew.printf(`<dt>Services</dt><dd>%s</dd>`, services.FormatEUR(b.ServicesCost))
		ew.printf(`<dt>Total</dt><dd>%s</dd>`, services.FormatEUR(b.TotalCost))
		ew.printf(`<dt>Total with tax</dt><dd>%s</dd>`, services.FormatEUR(b.TotalWithTax))
		ew.printf(`<dt>Per paying guest</dt><dd>%s</dd>`, services.FormatEUR(b.PerGuestCost))
		ew.write(`</dl>`)
	}

	ew.write(`<form onsubmit="return false">`)
	ew.printf(`<label>Free quote guests</label><select %s>`, fieldControl("freeQuote"))
	for _, n := range services.CountOptions(services.MaxFreeQuote) {
		writeIntOption(ew, n, d.FreeQuote)
	}
	ew.printf(`</select>%s`, fieldError(data.Errors, "freeQuote"))

	if data.HasRequiredVan {
		ew.printf(`<label>Number of vans</label><select %s>`, fieldControl("numberOfVans"))
		for _, n := range services.CountOptions(services.MaxNumberOfVans) {
			writeIntOption(ew, n, d.NumberOfVans)
		}
		ew.printf(`</select>%s`, fieldError(data.Errors, "numberOfVans"))
	}
	ew.write(`</form>`)

	ew.printf(`<form method="post" action="/preventives">%s<button type="submit" class="primary">Save and download PDF</button></form>`,
		fieldError(data.Errors, "form"))
	ew.write(`</section>`)
}

func writeIntOption(ew *errWriter, n, selected int) {
	sel := ""
	if n == selected {
		sel = ` selected`
	}
	ew.printf(`<option value="%d"%s>%d</option>`, n, sel, n)
}

func mealCell(m *services.Meal) string {
	if m == nil {
		return "No"
	}
	return templ.EscapeString(m.Name)
}

func dayLabel(day services.DayType) string {
	switch day {
	case services.DayTypeFirst:
		return "arrival day"
	case services.DayTypeLast:
		return "departure day"
	default:
		return "full day"
	}
}
