package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"tripconf/services"
)

// MealListPage renders the meal catalog admin page.
func MealListPage(meals []services.Meal) templ.Component {
	return Layout("Tripconf - Meals", MealList(meals))
}

// MealList is the swappable fragment with the meal table and create form.
func MealList(meals []services.Meal) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		ew := &errWriter{w: w}

		ew.write(`<section id="meal-list"><h1>Meals</h1>`)
		ew.write(`<table class="list-table"><tr><th>Name</th><th>Day</th><th>Meal</th><th>Cost</th><th>Description</th><th></th></tr>`)
		for _, m := range meals {
			ew.printf(`<tr><td>%s</td><td>%s</td><td>%s</td><td>%s</td><td>%s</td>
<td><button hx-delete="/meals/%s" hx-confirm="Delete this meal?" hx-target="#meal-list" hx-swap="outerHTML">Delete</button></td></tr>`,
				templ.EscapeString(m.Name), templ.EscapeString(dayLabel(m.Day)), templ.EscapeString(string(m.Meal)),
				services.FormatEUR(m.Cost), templ.EscapeString(m.Description), templ.EscapeString(m.ID))
		}
		ew.write(`</table>`)

		ew.write(`<h2>Add meal</h2>
<form hx-post="/meals" hx-target="#meal-list" hx-swap="outerHTML">
<label>Name</label><input type="text" name="name" required>
<label>Day</label><select name="day_type">
<option value="first_day">Arrival day</option>
<option value="default_day">Full day</option>
<option value="last_day">Departure day</option>
</select>
<label>Meal</label><select name="meal_type">
<option value="lunch">Lunch</option>
<option value="dinner">Dinner</option>
</select>
<label>Cost per person</label><input type="number" name="cost" min="0" step="0.01">
<label>Description</label><input type="text" name="description">
<button type="submit" class="primary">Add</button>
</form></section>`)
		return ew.err
	})
}

// ServiceListPage renders the service catalog admin page.
func ServiceListPage(categories []services.ServiceCategory) templ.Component {
	return Layout("Tripconf - Services", ServiceList(categories))
}

// ServiceList is the swappable fragment with the per-category service tables.
func ServiceList(categories []services.ServiceCategory) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		ew := &errWriter{w: w}

		ew.write(`<section id="service-list"><h1>Services</h1>`)
		for _, cat := range categories {
			ew.printf(`<h2>%s <button hx-delete="/categories/%s" hx-confirm="Delete this category and all its services?" hx-target="#service-list" hx-swap="outerHTML">Delete category</button></h2>`,
				templ.EscapeString(cat.Name), templ.EscapeString(cat.ID))
			ew.write(`<table class="list-table"><tr><th>Name</th><th>Per person</th><th>Per group</th><th>Per van</th><th>Van</th><th></th></tr>`)
			for _, svc := range cat.Services {
				van := ""
				if svc.IsRequiredVan {
					van = "yes"
				}
				ew.printf(`<tr><td>%s</td><td>%s</td><td>%s</td><td>%s</td><td>%s</td>
<td><button hx-delete="/services/%s" hx-confirm="Delete this service?" hx-target="#service-list" hx-swap="outerHTML">Delete</button></td></tr>`,
					templ.EscapeString(svc.Name), services.FormatEUR(svc.CostPerPerson),
					services.FormatEUR(svc.GroupCost), services.FormatEUR(svc.VanCost),
					van, templ.EscapeString(svc.ID))
			}
			ew.write(`</table>`)
		}

		ew.write(`<h2>Add service</h2>
<form hx-post="/services" hx-target="#service-list" hx-swap="outerHTML">
<label>Name</label><input type="text" name="name" required>
<label>Category</label><select name="category">`)
		for _, cat := range categories {
			ew.printf(`<option value="%s">%s</option>`, templ.EscapeString(cat.ID), templ.EscapeString(cat.Name))
		}
		ew.write(`</select>
<label>Cost per person</label><input type="number" name="cost_per_person" min="0" step="0.01">
<label>Cost per group</label><input type="number" name="group_cost" min="0" step="0.01">
<label>Cost per van</label><input type="number" name="van_cost" min="0" step="0.01">
<label>Requires van</label><input type="checkbox" name="is_required_van" value="true">
<label>Description</label><input type="text" name="description">
<button type="submit" class="primary">Add</button>
</form>`)

		ew.write(`<h2>Add category</h2>
<form hx-post="/categories" hx-target="#service-list" hx-swap="outerHTML">
<label>Name</label><input type="text" name="name" required>
<button type="submit" class="primary">Add</button>
</form></section>`)
		return ew.err
	})
}
