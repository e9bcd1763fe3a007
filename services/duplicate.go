package services

// Meals and services are stored on a preventive as snapshots. When a
// preventive is duplicated into a new draft, each reference is resolved
// against the current catalog by natural key; entries that vanished from
// the catalog are dropped silently so the new draft only carries
// selectable items.

// MealLookup resolves a meal by its natural key (name, day type, meal
// type) against the current catalog, returning nil when it no longer
// exists.
type MealLookup func(name string, day DayType, meal MealType) *Meal

// ServiceExists reports whether a service with the given natural key
// (name, category) is still in the catalog.
type ServiceExists func(name, categoryID string) bool

// ResolveMeals re-checks every stored meal selection. Selections whose
// meal still exists are replaced by the current catalog entry; vanished
// meals become unselected. The day entries themselves always survive.
func ResolveMeals(days []DailyMeals, lookup MealLookup) []DailyMeals {
	resolved := make([]DailyMeals, len(days))
	for i, day := range days {
		entry := DailyMeals{Date: day.Date, Day: day.Day}
		if day.Lunch != nil {
			entry.Lunch = lookup(day.Lunch.Name, day.Lunch.Day, day.Lunch.Meal)
		}
		if day.Dinner != nil {
			entry.Dinner = lookup(day.Dinner.Name, day.Dinner.Day, day.Dinner.Meal)
		}
		resolved[i] = entry
	}
	return resolved
}

// ResolveServices keeps only the stored services whose natural key still
// matches a catalog entry. The stored snapshot is kept as-is for the
// survivors; a duplicate therefore starts from the prices the original
// quote was built with.
func ResolveServices(services []Service, exists ServiceExists) []Service {
	var resolved []Service
	for _, svc := range services {
		if exists(svc.Name, svc.CategoryID) {
			resolved = append(resolved, svc)
		}
	}
	return resolved
}
