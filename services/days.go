package services

import (
	"sort"
	"time"
)

// DayType classifies a night within a stay. The catalog offers different
// menus for arrival day, departure day and the days in between.
type DayType string

const (
	DayTypeFirst   DayType = "first_day"
	DayTypeDefault DayType = "default_day"
	DayTypeLast    DayType = "last_day"
)

// MealType distinguishes the two daily selections.
type MealType string

const (
	MealTypeLunch  MealType = "lunch"
	MealTypeDinner MealType = "dinner"
)

// DailyMeals is the meal selection for one night of the stay. Lunch and
// dinner stay nil until the user picks something; entries are kept as
// placeholders even when both are nil.
type DailyMeals struct {
	Date   time.Time `json:"date"`
	Day    DayType   `json:"dayType"`
	Lunch  *Meal     `json:"lunch"`
	Dinner *Meal     `json:"dinner"`
}

// Nights returns the number of nights between check-in and check-out,
// ignoring the time-of-day component. Identical dates yield 0, which
// disables meal selection rather than being an error.
func Nights(checkIn, checkOut time.Time) int {
	ci := truncateToDay(checkIn)
	co := truncateToDay(checkOut)
	return int(co.Sub(ci).Hours() / 24)
}

// DayForIndex classifies night i of a stay of the given length. For a
// one-night stay index 0 matches both ends; first wins.
func DayForIndex(i, nights int) DayType {
	switch i {
	case 0:
		return DayTypeFirst
	case nights - 1:
		return DayTypeLast
	default:
		return DayTypeDefault
	}
}

// DateForDay assigns the calendar date for night i: arrival day for the
// first entry, the eve of departure for the last, check-in plus i otherwise.
func DateForDay(day DayType, checkIn, checkOut time.Time, i int) time.Time {
	switch day {
	case DayTypeFirst:
		return truncateToDay(checkIn)
	case DayTypeDefault:
		return truncateToDay(checkIn).AddDate(0, 0, i)
	default:
		return truncateToDay(checkOut).AddDate(0, 0, -1)
	}
}

// BuildDailyMeals generates a fresh meal slate with exactly one entry per
// night, ordered by date ascending and with no meals selected. Callers
// regenerate the whole slate whenever the dates change; stale selections
// must not survive a shift in day classification.
func BuildDailyMeals(checkIn, checkOut time.Time) []DailyMeals {
	nights := Nights(checkIn, checkOut)
	if nights <= 0 {
		return nil
	}

	days := make([]DailyMeals, 0, nights)
	for i := 0; i < nights; i++ {
		day := DayForIndex(i, nights)
		days = append(days, DailyMeals{
			Date: DateForDay(day, checkIn, checkOut, i),
			Day:  day,
		})
	}
	return days
}

// sortDailyMeals keeps the slate ordered by date ascending.
func sortDailyMeals(days []DailyMeals) {
	sort.Slice(days, func(i, j int) bool {
		return days[i].Date.Before(days[j].Date)
	})
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
