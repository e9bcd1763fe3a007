package services

import (
	"errors"
	"testing"
	"time"
)

func arrivalReadySession(t *testing.T, guests int) *Session {
	t.Helper()

	s := NewSession()
	s.SetName("Test preventive")
	s.SetCheckIn(date(2024, time.June, 1))
	if err := s.SetCheckOut(date(2024, time.June, 4)); err != nil {
		t.Fatalf("SetCheckOut() error = %v", err)
	}
	if err := s.SetNumberOfGuests(guests); err != nil {
		t.Fatalf("SetNumberOfGuests(%d) error = %v", guests, err)
	}
	return s
}

func TestSetNumberOfGuests_DefaultSplit(t *testing.T) {
	s := NewSession()

	for n := MinNumberOfGuests; n <= MaxNumberOfGuests; n++ {
		if err := s.SetNumberOfGuests(n); err != nil {
			t.Fatalf("SetNumberOfGuests(%d) error = %v", n, err)
		}
		if got := s.Draft.DoubleRooms*2 + s.Draft.SingleRooms; got != n {
			t.Errorf("guests=%d: doubleRooms*2+singleRooms = %d", n, got)
		}
		if s.Draft.SingleRooms != n%2 {
			t.Errorf("guests=%d: singleRooms = %d, want %d", n, s.Draft.SingleRooms, n%2)
		}
		if s.Draft.FreeQuote != 0 {
			t.Errorf("guests=%d: freeQuote not reset", n)
		}
	}
}

func TestSetNumberOfGuests_OutOfRange(t *testing.T) {
	s := NewSession()

	for _, n := range []int{0, 1, MaxNumberOfGuests + 1, -3} {
		if err := s.SetNumberOfGuests(n); err == nil {
			t.Errorf("SetNumberOfGuests(%d): expected error", n)
		}
	}
}

func TestSetNumberOfGuests_ReconcilesVans(t *testing.T) {
	s := arrivalReadySession(t, 12)
	s.ToggleService(Service{ID: "s1", Name: "Tour", IsRequiredVan: true})
	if s.Draft.NumberOfVans != 2 {
		t.Fatalf("vans = %d, want 2", s.Draft.NumberOfVans)
	}

	// Shrinking the group while a van service is selected shrinks the fleet.
	if err := s.SetNumberOfGuests(6); err != nil {
		t.Fatalf("SetNumberOfGuests() error = %v", err)
	}
	if s.Draft.NumberOfVans != 1 {
		t.Errorf("after guest change vans = %d, want 1", s.Draft.NumberOfVans)
	}

	// Without a van-requiring service the count stays forced to zero.
	s.ToggleService(Service{ID: "s1", Name: "Tour", IsRequiredVan: true})
	if err := s.SetNumberOfGuests(20); err != nil {
		t.Fatalf("SetNumberOfGuests() error = %v", err)
	}
	if s.Draft.NumberOfVans != 0 {
		t.Errorf("vans = %d with no van service, want 0", s.Draft.NumberOfVans)
	}
}

func TestSetDoubleRooms(t *testing.T) {
	s := NewSession()
	if err := s.SetNumberOfGuests(10); err != nil {
		t.Fatalf("SetNumberOfGuests() error = %v", err)
	}

	// Default split for 10 guests.
	if s.Draft.DoubleRooms != 5 || s.Draft.SingleRooms != 0 {
		t.Fatalf("default split = %d/%d, want 5/0", s.Draft.DoubleRooms, s.Draft.SingleRooms)
	}

	// 3 doubles leave 4 guests needing singles.
	if err := s.SetDoubleRooms(3); err != nil {
		t.Fatalf("SetDoubleRooms(3) error = %v", err)
	}
	if s.Draft.DoubleRooms != 3 || s.Draft.SingleRooms != 4 {
		t.Errorf("split = %d/%d, want 3/4", s.Draft.DoubleRooms, s.Draft.SingleRooms)
	}

	// 6 doubles would sleep 12 > 10 guests: rejected, draft unchanged.
	if err := s.SetDoubleRooms(6); err == nil {
		t.Error("SetDoubleRooms(6): expected rejection")
	}
	if s.Draft.DoubleRooms != 3 || s.Draft.SingleRooms != 4 {
		t.Errorf("rejected change mutated draft: %d/%d", s.Draft.DoubleRooms, s.Draft.SingleRooms)
	}
}

func TestSetDoubleRooms_RequiresGuests(t *testing.T) {
	s := NewSession()
	err := s.SetDoubleRooms(2)
	var fieldErr *FieldError
	if !errors.As(err, &fieldErr) || fieldErr.Field != "numberOfGuests" {
		t.Errorf("expected numberOfGuests field error, got %v", err)
	}
}

func TestSetDoubleRooms_TooManySinglesNeeded(t *testing.T) {
	s := NewSession()
	if err := s.SetNumberOfGuests(32); err != nil {
		t.Fatalf("SetNumberOfGuests() error = %v", err)
	}

	// 32 guests with 7 doubles needs 18 singles, above the 16 available.
	if err := s.SetDoubleRooms(7); err == nil {
		t.Error("expected rejection when required singles exceed the property")
	}
}

func TestSetSingleRooms(t *testing.T) {
	s := NewSession()
	if err := s.SetNumberOfGuests(9); err != nil {
		t.Fatalf("SetNumberOfGuests() error = %v", err)
	}

	if err := s.SetSingleRooms(3); err != nil {
		t.Fatalf("SetSingleRooms(3) error = %v", err)
	}
	// 6 guests remain, needing 3 doubles.
	if s.Draft.DoubleRooms != 3 || s.Draft.SingleRooms != 3 {
		t.Errorf("split = %d/%d, want 3/3", s.Draft.DoubleRooms, s.Draft.SingleRooms)
	}

	// Odd remainder rounds the doubles up.
	if err := s.SetSingleRooms(2); err != nil {
		t.Fatalf("SetSingleRooms(2) error = %v", err)
	}
	if s.Draft.DoubleRooms != 4 || s.Draft.SingleRooms != 2 {
		t.Errorf("split = %d/%d, want 4/2", s.Draft.DoubleRooms, s.Draft.SingleRooms)
	}

	if err := s.SetSingleRooms(10); err == nil {
		t.Error("SetSingleRooms(10): expected rejection for more singles than guests")
	}
}

func TestSetFreeQuote(t *testing.T) {
	s := NewSession()
	if err := s.SetNumberOfGuests(3); err != nil {
		t.Fatalf("SetNumberOfGuests() error = %v", err)
	}

	if err := s.SetFreeQuote(2); err != nil {
		t.Errorf("SetFreeQuote(2) error = %v", err)
	}
	if err := s.SetFreeQuote(3); err == nil {
		t.Error("SetFreeQuote(3): expected rejection when equal to guests")
	}
	if s.Draft.FreeQuote != 2 {
		t.Errorf("rejected change mutated freeQuote: %d", s.Draft.FreeQuote)
	}
}

func TestGoNext_ValidationFailure(t *testing.T) {
	s := NewSession()

	err := s.GoNext()
	if err == nil {
		t.Fatal("expected validation error on empty draft")
	}
	if s.Step != StepArrivalAndDeparture {
		t.Errorf("step advanced despite validation failure: %d", s.Step)
	}

	var fieldErr *FieldError
	if !errors.As(err, &fieldErr) {
		t.Errorf("expected *FieldError, got %T", err)
	}
}

func TestGoNext_GeneratesMealSlate(t *testing.T) {
	s := arrivalReadySession(t, 10)

	if err := s.GoNext(); err != nil {
		t.Fatalf("GoNext() error = %v", err)
	}
	if s.Step != StepMeals {
		t.Errorf("step = %d, want %d", s.Step, StepMeals)
	}
	if len(s.Days) != 3 {
		t.Fatalf("expected 3 daily entries, got %d", len(s.Days))
	}
}

func TestGoNext_DateChangeRegeneratesSlateAndClearsServices(t *testing.T) {
	s := arrivalReadySession(t, 10)
	if err := s.GoNext(); err != nil {
		t.Fatalf("GoNext() error = %v", err)
	}

	lunch := &Meal{ID: "m1", Name: "Pasta", Day: DayTypeFirst, Meal: MealTypeLunch, Cost: 12}
	s.SelectMeal(date(2024, time.June, 1), MealTypeLunch, lunch)
	s.ToggleService(Service{ID: "s1", Name: "Tour", IsRequiredVan: true})

	// Going back and re-validating with unchanged dates keeps everything.
	s.GoPrevious()
	if err := s.GoNext(); err != nil {
		t.Fatalf("GoNext() error = %v", err)
	}
	if s.Days[0].Lunch == nil || len(s.Services) != 1 {
		t.Fatal("unchanged dates must not discard selections")
	}

	// Changing the dates invalidates meals and services.
	s.GoPrevious()
	s.SetCheckIn(date(2024, time.June, 2))
	if err := s.SetCheckOut(date(2024, time.June, 6)); err != nil {
		t.Fatalf("SetCheckOut() error = %v", err)
	}
	if err := s.GoNext(); err != nil {
		t.Fatalf("GoNext() error = %v", err)
	}

	if len(s.Days) != 4 {
		t.Errorf("expected regenerated slate of 4 entries, got %d", len(s.Days))
	}
	if s.Days[0].Lunch != nil {
		t.Error("stale meal selection survived date change")
	}
	if len(s.Services) != 0 {
		t.Error("stale service selection survived date change")
	}
	if s.Draft.NumberOfVans != 0 {
		t.Error("van count not reset after services were cleared")
	}
}

func TestGoPrevious(t *testing.T) {
	s := arrivalReadySession(t, 4)
	if err := s.GoNext(); err != nil {
		t.Fatalf("GoNext() error = %v", err)
	}

	s.GoPrevious()
	if s.Step != StepArrivalAndDeparture {
		t.Errorf("step = %d, want 0", s.Step)
	}

	// Already at the first step: no-op.
	s.GoPrevious()
	if s.Step != StepArrivalAndDeparture {
		t.Errorf("step = %d, want 0", s.Step)
	}
}

func TestSelectMeal(t *testing.T) {
	s := arrivalReadySession(t, 6)
	if err := s.GoNext(); err != nil {
		t.Fatalf("GoNext() error = %v", err)
	}

	dinner := &Meal{ID: "m2", Name: "Arrosto", Day: DayTypeDefault, Meal: MealTypeDinner, Cost: 25}
	s.SelectMeal(date(2024, time.June, 2), MealTypeDinner, dinner)

	if s.Days[1].Dinner == nil || s.Days[1].Dinner.ID != "m2" {
		t.Fatal("dinner not set on the matching day")
	}
	if s.Days[0].Dinner != nil || s.Days[2].Dinner != nil {
		t.Error("selection leaked onto other days")
	}

	// Selecting nil clears the meal but keeps the day entry.
	s.SelectMeal(date(2024, time.June, 2), MealTypeDinner, nil)
	if s.Days[1].Dinner != nil {
		t.Error("dinner not cleared")
	}
	if len(s.Days) != 3 {
		t.Errorf("empty day entry was pruned, got %d entries", len(s.Days))
	}

	// Unknown date is ignored.
	s.SelectMeal(date(2024, time.July, 1), MealTypeLunch, dinner)
	for _, day := range s.Days {
		if day.Lunch != nil {
			t.Error("selection on unknown date mutated the slate")
		}
	}
}

func TestSelectMeal_RejectsWrongSlot(t *testing.T) {
	s := arrivalReadySession(t, 6)
	if err := s.GoNext(); err != nil {
		t.Fatalf("GoNext() error = %v", err)
	}

	// June 2 is a middle day; a first-day dinner does not belong there.
	wrong := &Meal{ID: "m9", Name: "Welcome buffet", Day: DayTypeFirst, Meal: MealTypeDinner, Cost: 18}
	if err := s.SelectMeal(date(2024, time.June, 2), MealTypeLunch, wrong); err == nil {
		t.Fatal("expected a wrong-slot meal to be rejected")
	}
	if s.Days[1].Lunch != nil {
		t.Error("rejected meal was stored on the day")
	}

	// The right slot for the same day still works.
	lunch := &Meal{ID: "m10", Name: "Garden lunch", Day: DayTypeDefault, Meal: MealTypeLunch, Cost: 20}
	if err := s.SelectMeal(date(2024, time.June, 2), MealTypeLunch, lunch); err != nil {
		t.Fatalf("SelectMeal() error = %v", err)
	}
	if s.Days[1].Lunch == nil || s.Days[1].Lunch.ID != "m10" {
		t.Error("matching meal was not stored")
	}
}

func TestToggleService(t *testing.T) {
	s := arrivalReadySession(t, 12)
	if err := s.GoNext(); err != nil {
		t.Fatalf("GoNext() error = %v", err)
	}

	tour := Service{ID: "s1", Name: "Vineyard tour", IsRequiredVan: true}
	tasting := Service{ID: "s2", Name: "Wine tasting"}

	s.ToggleService(tour)
	s.ToggleService(tasting)
	if len(s.Services) != 2 {
		t.Fatalf("expected 2 services, got %d", len(s.Services))
	}

	// 12 guests, 7 per van: two vans required.
	if s.Draft.NumberOfVans != 2 {
		t.Errorf("numberOfVans = %d, want 2", s.Draft.NumberOfVans)
	}

	// Toggling again removes; dropping the van service zeroes the count.
	s.ToggleService(tour)
	if len(s.Services) != 1 {
		t.Fatalf("expected 1 service after removal, got %d", len(s.Services))
	}
	if s.Draft.NumberOfVans != 0 {
		t.Errorf("numberOfVans = %d, want 0 without van services", s.Draft.NumberOfVans)
	}
}

func TestRequiredVans(t *testing.T) {
	tests := []struct {
		guests int
		expect int
	}{
		{2, 1},
		{7, 1},
		{8, 2},
		{12, 2},
		{14, 2},
		{15, 3},
		{32, 5},
	}

	for _, tt := range tests {
		if got := RequiredVans(tt.guests); got != tt.expect {
			t.Errorf("RequiredVans(%d) = %d, want %d", tt.guests, got, tt.expect)
		}
	}
}

func TestSetNumberOfVans(t *testing.T) {
	s := arrivalReadySession(t, 12)
	if err := s.GoNext(); err != nil {
		t.Fatalf("GoNext() error = %v", err)
	}

	// Without a van-requiring service the count is forced to zero.
	if err := s.SetNumberOfVans(3); err != nil {
		t.Fatalf("SetNumberOfVans() error = %v", err)
	}
	if s.Draft.NumberOfVans != 0 {
		t.Errorf("numberOfVans = %d, want 0", s.Draft.NumberOfVans)
	}

	s.ToggleService(Service{ID: "s1", IsRequiredVan: true})
	if err := s.SetNumberOfVans(3); err != nil {
		t.Fatalf("SetNumberOfVans(3) error = %v", err)
	}
	if s.Draft.NumberOfVans != 3 {
		t.Errorf("numberOfVans = %d, want 3", s.Draft.NumberOfVans)
	}

	if err := s.SetNumberOfVans(MaxNumberOfVans + 1); err == nil {
		t.Error("expected rejection above MaxNumberOfVans")
	}
}

func TestSetCheckIn_ClearsCheckOut(t *testing.T) {
	s := NewSession()
	s.SetCheckIn(date(2024, time.June, 1))
	if err := s.SetCheckOut(date(2024, time.June, 5)); err != nil {
		t.Fatalf("SetCheckOut() error = %v", err)
	}

	s.SetCheckIn(date(2024, time.June, 3))
	if !s.Draft.CheckOut.IsZero() {
		t.Error("check-out not cleared after new check-in")
	}

	if err := s.SetCheckOut(date(2024, time.June, 2)); err == nil {
		t.Error("expected rejection for check-out before check-in")
	}
}

func TestReset(t *testing.T) {
	s := arrivalReadySession(t, 8)
	if err := s.GoNext(); err != nil {
		t.Fatalf("GoNext() error = %v", err)
	}
	s.ToggleService(Service{ID: "s1"})

	s.Reset()

	if s.Step != StepArrivalAndDeparture {
		t.Errorf("step = %d after reset", s.Step)
	}
	if s.Draft != (Draft{}) {
		t.Errorf("draft not cleared: %+v", s.Draft)
	}
	if len(s.Days) != 0 || len(s.Services) != 0 {
		t.Error("derived collections not cleared")
	}
}
