package services

import (
	"testing"
	"time"
)

func TestNights(t *testing.T) {
	tests := []struct {
		name     string
		checkIn  time.Time
		checkOut time.Time
		expect   int
	}{
		{"three nights", date(2024, time.June, 1), date(2024, time.June, 4), 3},
		{"one night", date(2024, time.June, 1), date(2024, time.June, 2), 1},
		{"same day", date(2024, time.June, 1), date(2024, time.June, 1), 0},
		{"across month boundary", date(2024, time.June, 29), date(2024, time.July, 2), 3},
		{"time of day ignored", time.Date(2024, time.June, 1, 23, 0, 0, 0, time.UTC), time.Date(2024, time.June, 3, 1, 0, 0, 0, time.UTC), 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Nights(tt.checkIn, tt.checkOut)
			if got != tt.expect {
				t.Errorf("Nights(%v, %v) = %d, want %d", tt.checkIn, tt.checkOut, got, tt.expect)
			}
		})
	}
}

func TestDayForIndex(t *testing.T) {
	tests := []struct {
		name   string
		i      int
		nights int
		expect DayType
	}{
		{"first of many", 0, 3, DayTypeFirst},
		{"middle", 1, 3, DayTypeDefault},
		{"last", 2, 3, DayTypeLast},
		{"single night is first, not last", 0, 1, DayTypeFirst},
		{"second of two", 1, 2, DayTypeLast},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DayForIndex(tt.i, tt.nights)
			if got != tt.expect {
				t.Errorf("DayForIndex(%d, %d) = %q, want %q", tt.i, tt.nights, got, tt.expect)
			}
		})
	}
}

func TestBuildDailyMeals(t *testing.T) {
	checkIn := date(2024, time.June, 1)
	checkOut := date(2024, time.June, 4)

	days := BuildDailyMeals(checkIn, checkOut)

	if len(days) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(days))
	}

	wantDays := []DayType{DayTypeFirst, DayTypeDefault, DayTypeLast}
	wantDates := []time.Time{
		date(2024, time.June, 1),
		date(2024, time.June, 2),
		date(2024, time.June, 3),
	}

	for i, day := range days {
		if day.Day != wantDays[i] {
			t.Errorf("entry %d: dayType = %q, want %q", i, day.Day, wantDays[i])
		}
		if !day.Date.Equal(wantDates[i]) {
			t.Errorf("entry %d: date = %v, want %v", i, day.Date, wantDates[i])
		}
		if day.Lunch != nil || day.Dinner != nil {
			t.Errorf("entry %d: expected no meals selected", i)
		}
	}

	for i := 1; i < len(days); i++ {
		if !days[i-1].Date.Before(days[i].Date) {
			t.Errorf("entries not sorted ascending at index %d", i)
		}
	}
}

func TestBuildDailyMeals_SingleNight(t *testing.T) {
	days := BuildDailyMeals(date(2024, time.June, 1), date(2024, time.June, 2))

	if len(days) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(days))
	}
	if days[0].Day != DayTypeFirst {
		t.Errorf("single-night dayType = %q, want %q", days[0].Day, DayTypeFirst)
	}
	if !days[0].Date.Equal(date(2024, time.June, 1)) {
		t.Errorf("single-night date = %v, want check-in", days[0].Date)
	}
}

func TestBuildDailyMeals_SameDates(t *testing.T) {
	days := BuildDailyMeals(date(2024, time.June, 1), date(2024, time.June, 1))
	if len(days) != 0 {
		t.Errorf("expected no entries for a zero-night stay, got %d", len(days))
	}
}

func TestBuildDailyMeals_EntryCountMatchesNights(t *testing.T) {
	checkIn := date(2024, time.March, 10)
	for nights := 1; nights <= 14; nights++ {
		checkOut := checkIn.AddDate(0, 0, nights)
		days := BuildDailyMeals(checkIn, checkOut)
		if len(days) != nights {
			t.Errorf("nights=%d: got %d entries", nights, len(days))
			continue
		}
		if days[0].Day != DayTypeFirst {
			t.Errorf("nights=%d: first entry dayType = %q", nights, days[0].Day)
		}
		if nights > 1 && days[len(days)-1].Day != DayTypeLast {
			t.Errorf("nights=%d: last entry dayType = %q", nights, days[len(days)-1].Day)
		}
	}
}

func TestGroupMeals(t *testing.T) {
	meals := []Meal{
		{Name: "Zuppa", Day: DayTypeFirst, Meal: MealTypeLunch},
		{Name: "Antipasto", Day: DayTypeFirst, Meal: MealTypeLunch},
		{Name: "Arrosto", Day: DayTypeFirst, Meal: MealTypeDinner},
		{Name: "Pranzo", Day: DayTypeDefault, Meal: MealTypeLunch},
	}

	grouped := GroupMeals(meals)

	first := grouped[DayTypeFirst]
	if len(first.Lunches) != 2 || len(first.Dinners) != 1 {
		t.Fatalf("first day: got %d lunches, %d dinners", len(first.Lunches), len(first.Dinners))
	}
	if first.Lunches[0].Name != "Antipasto" {
		t.Errorf("lunches not sorted by name: %q first", first.Lunches[0].Name)
	}

	if len(grouped[DayTypeDefault].Lunches) != 1 {
		t.Errorf("default day: expected 1 lunch")
	}
	if len(grouped[DayTypeLast].Lunches) != 0 || len(grouped[DayTypeLast].Dinners) != 0 {
		t.Errorf("last day: expected empty groups")
	}
}
