package services

import (
	"encoding/json"
	"sort"

	"github.com/pocketbase/pocketbase/core"
)

// Meal is a catalog entry for a single lunch or dinner option. Catalog
// entries are owned by the persistence layer; the quote engine only
// references them.
type Meal struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Day         DayType  `json:"dayType"`
	Meal        MealType `json:"mealType"`
	Cost        float64  `json:"cost"`
	Description string   `json:"description,omitempty"`
}

// Service is a catalog entry for a bookable extra (wine tasting, transfer...).
type Service struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	CategoryID    string  `json:"categoryId"`
	CategoryName  string  `json:"categoryName,omitempty"`
	CostPerPerson float64 `json:"costPerPerson"`
	GroupCost     float64 `json:"groupCost"`
	VanCost       float64 `json:"vanCost"`
	IsRequiredVan bool    `json:"isRequiredVan"`
	Description   string  `json:"description,omitempty"`
}

// ServiceCategory groups services for the wizard's accordion listing.
type ServiceCategory struct {
	ID       string
	Name     string
	Services []Service
}

// MealFromRecord maps a meals collection record onto a Meal.
func MealFromRecord(rec *core.Record) Meal {
	return Meal{
		ID:          rec.Id,
		Name:        rec.GetString("name"),
		Day:         DayType(rec.GetString("day_type")),
		Meal:        MealType(rec.GetString("meal_type")),
		Cost:        rec.GetFloat("cost"),
		Description: rec.GetString("description"),
	}
}

// ServiceFromRecord maps a services collection record onto a Service.
func ServiceFromRecord(rec *core.Record) Service {
	return Service{
		ID:            rec.Id,
		Name:          rec.GetString("name"),
		CategoryID:    rec.GetString("category"),
		CostPerPerson: rec.GetFloat("cost_per_person"),
		GroupCost:     rec.GetFloat("group_cost"),
		VanCost:       rec.GetFloat("van_cost"),
		IsRequiredVan: rec.GetBool("is_required_van"),
		Description:   rec.GetString("description"),
	}
}

// MealGroup holds the lunch and dinner options offered for one day type.
type MealGroup struct {
	Lunches []Meal
	Dinners []Meal
}

// GroupMeals splits the catalog by day type and meal type so each daily
// dropdown only offers meals valid for that slot.
func GroupMeals(meals []Meal) map[DayType]MealGroup {
	grouped := map[DayType]MealGroup{
		DayTypeFirst:   {},
		DayTypeDefault: {},
		DayTypeLast:    {},
	}

	for _, m := range meals {
		group := grouped[m.Day]
		switch m.Meal {
		case MealTypeLunch:
			group.Lunches = append(group.Lunches, m)
		case MealTypeDinner:
			group.Dinners = append(group.Dinners, m)
		}
		grouped[m.Day] = group
	}

	for day, group := range grouped {
		sort.Slice(group.Lunches, func(i, j int) bool { return group.Lunches[i].Name < group.Lunches[j].Name })
		sort.Slice(group.Dinners, func(i, j int) bool { return group.Dinners[i].Name < group.Dinners[j].Name })
		grouped[day] = group
	}

	return grouped
}

// MarshalDailyMeals serializes the meal slate for storage on a preventive record.
func MarshalDailyMeals(days []DailyMeals) (string, error) {
	data, err := json.Marshal(days)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// UnmarshalDailyMeals restores a stored meal slate.
func UnmarshalDailyMeals(raw string) ([]DailyMeals, error) {
	if raw == "" {
		return nil, nil
	}
	var days []DailyMeals
	if err := json.Unmarshal([]byte(raw), &days); err != nil {
		return nil, err
	}
	return days, nil
}

// MarshalServices serializes the selected service set for storage.
func MarshalServices(services []Service) (string, error) {
	data, err := json.Marshal(services)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// UnmarshalServices restores a stored service set.
func UnmarshalServices(raw string) ([]Service, error) {
	if raw == "" {
		return nil, nil
	}
	var services []Service
	if err := json.Unmarshal([]byte(raw), &services); err != nil {
		return nil, err
	}
	return services, nil
}
