package services

import (
	"fmt"
	"time"
)

// Wizard steps, in order.
const (
	StepArrivalAndDeparture = 0
	StepMeals               = 1
	StepServices            = 2
	StepConfirm             = 3
)

// FieldError is a recoverable, field-scoped validation failure. Commands
// that return one leave the draft untouched; the UI shows the message
// inline and the user corrects the input.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Draft is the in-progress quote, mutated step by step until submission.
type Draft struct {
	Name           string    `json:"name"`
	CheckIn        time.Time `json:"checkIn"`
	CheckOut       time.Time `json:"checkOut"`
	NumberOfGuests int       `json:"numberOfGuests"`
	DoubleRooms    int       `json:"doubleRooms"`
	SingleRooms    int       `json:"singleRooms"`
	FreeQuote      int       `json:"freeQuote"`
	Description    string    `json:"description"`
	NumberOfVans   int       `json:"numberOfVans"`
}

// Session is the wizard state for one draft: the current step, the draft
// itself and the derived meal and service collections. One Session exists
// per wizard visit and is passed explicitly to every command; there is no
// ambient shared state.
type Session struct {
	Step     int
	Draft    Draft
	Days     []DailyMeals
	Services []Service

	// Dates the current meal slate was generated from. A change between
	// steps invalidates the slate because the day classification shifts.
	slateCheckIn  time.Time
	slateCheckOut time.Time
}

// NewSession returns an empty session positioned on the first step.
func NewSession() *Session {
	return &Session{}
}

// NewSessionFromDraft pre-populates a session, used when duplicating an
// existing preventive. The caller supplies meal and service references
// already resolved against the current catalog.
func NewSessionFromDraft(d Draft, days []DailyMeals, services []Service) *Session {
	s := &Session{
		Draft:    d,
		Days:     days,
		Services: services,
	}
	s.slateCheckIn = d.CheckIn
	s.slateCheckOut = d.CheckOut
	return s
}

// Reset returns the session to a blank first-step state. Required after a
// successful submission: a submitted draft is terminal.
func (s *Session) Reset() {
	*s = Session{}
}

// SetName updates the quote name.
func (s *Session) SetName(name string) {
	s.Draft.Name = name
}

// SetDescription updates the optional note shown on the export.
func (s *Session) SetDescription(desc string) {
	s.Draft.Description = desc
}

// SetCheckIn sets the arrival date and clears the departure date, which
// must be re-picked relative to the new arrival.
func (s *Session) SetCheckIn(t time.Time) {
	s.Draft.CheckIn = truncateToDay(t)
	s.Draft.CheckOut = time.Time{}
}

// SetCheckOut sets the departure date.
func (s *Session) SetCheckOut(t time.Time) error {
	day := truncateToDay(t)
	if !s.Draft.CheckIn.IsZero() && day.Before(s.Draft.CheckIn) {
		return &FieldError{Field: "checkOut", Message: "The check-out cannot be before the check-in"}
	}
	s.Draft.CheckOut = day
	return nil
}

// SetNumberOfGuests selects the group size. It resets the free quote and
// applies the default even/odd room split: every pair of guests gets a
// double room, a leftover guest gets a single. The van count depends on the
// group size, so it is re-derived as well.
func (s *Session) SetNumberOfGuests(n int) error {
	if n < MinNumberOfGuests || n > MaxNumberOfGuests {
		return &FieldError{
			Field:   "numberOfGuests",
			Message: fmt.Sprintf("The number of guests must be between %d and %d", MinNumberOfGuests, MaxNumberOfGuests),
		}
	}

	s.Draft.NumberOfGuests = n
	s.Draft.FreeQuote = 0
	s.Draft.SingleRooms = n % 2
	s.Draft.DoubleRooms = n / 2
	s.reconcileVans()
	return nil
}

// SetDoubleRooms picks a double-room count and recomputes the minimal
// number of single rooms covering the remaining guests. The change is
// rejected when the doubles alone exceed the group or the required singles
// exceed the property.
func (s *Session) SetDoubleRooms(d int) error {
	if s.Draft.NumberOfGuests == 0 {
		return &FieldError{Field: "numberOfGuests", Message: "Please select the number of guests"}
	}
	if d < 0 || d > MaxDoubleRooms {
		return &FieldError{Field: "doubleRooms", Message: "Invalid number of double rooms"}
	}
	if d*2 > s.Draft.NumberOfGuests {
		return &FieldError{
			Field:   "doubleRooms",
			Message: "The number of double rooms is major than the number of guests",
		}
	}

	singles := s.Draft.NumberOfGuests - d*2
	if singles > MaxSingleRooms {
		return &FieldError{Field: "singleRooms", Message: "There are not much single rooms"}
	}

	s.Draft.DoubleRooms = d
	s.Draft.SingleRooms = singles
	return nil
}

// SetSingleRooms picks a single-room count and recomputes the minimal
// number of double rooms covering the remaining guests.
func (s *Session) SetSingleRooms(n int) error {
	if s.Draft.NumberOfGuests == 0 {
		return &FieldError{Field: "numberOfGuests", Message: "Please select the number of guests"}
	}
	if n < 0 || n > MaxSingleRooms {
		return &FieldError{Field: "singleRooms", Message: "Invalid number of single rooms"}
	}
	if n > s.Draft.NumberOfGuests {
		return &FieldError{
			Field:   "singleRooms",
			Message: "The number of single rooms is major than the number of guests",
		}
	}

	doubles := 0
	for doubles*2 < s.Draft.NumberOfGuests-n {
		doubles++
	}

	s.Draft.DoubleRooms = doubles
	s.Draft.SingleRooms = n
	return nil
}

// SetFreeQuote selects how many guests stay for free. At least one guest
// must pay, otherwise the per-guest split would divide by zero.
func (s *Session) SetFreeQuote(n int) error {
	if n < 0 || n > MaxFreeQuote {
		return &FieldError{
			Field:   "freeQuote",
			Message: fmt.Sprintf("The free quote must be between 0 and %d", MaxFreeQuote),
		}
	}
	if n >= s.Draft.NumberOfGuests {
		return &FieldError{
			Field:   "freeQuote",
			Message: "The number of quote guests is equal or major than the number of guests",
		}
	}

	s.Draft.FreeQuote = n
	return nil
}

// SetNumberOfVans overrides the suggested van count. When no selected
// service requires a van the count is forced to zero.
func (s *Session) SetNumberOfVans(n int) error {
	if !s.HasRequiredVan() {
		s.Draft.NumberOfVans = 0
		return nil
	}
	if n < 0 || n > MaxNumberOfVans {
		return &FieldError{
			Field:   "numberOfVans",
			Message: fmt.Sprintf("The number of vans must be between 0 and %d", MaxNumberOfVans),
		}
	}

	s.Draft.NumberOfVans = n
	return nil
}

// GoNext advances the wizard one step. Leaving the first step requires the
// arrival form to validate; it also regenerates the meal slate and clears
// the selected services when the dates changed, since the previous
// selections were made against days that no longer exist.
func (s *Session) GoNext() error {
	if s.Step >= StepConfirm {
		return nil
	}

	if s.Step == StepArrivalAndDeparture {
		if err := s.validateArrival(); err != nil {
			return err
		}

		datesChanged := !sameDay(s.Draft.CheckIn, s.slateCheckIn) ||
			!sameDay(s.Draft.CheckOut, s.slateCheckOut)

		if len(s.Days) == 0 || datesChanged {
			s.Days = BuildDailyMeals(s.Draft.CheckIn, s.Draft.CheckOut)
			s.Services = nil
			s.Draft.NumberOfVans = 0
		}

		s.slateCheckIn = s.Draft.CheckIn
		s.slateCheckOut = s.Draft.CheckOut
	}

	s.Step++
	return nil
}

// GoPrevious steps back without validation or data loss.
func (s *Session) GoPrevious() {
	if s.Step > 0 {
		s.Step--
	}
}

// SetStep jumps to a step directly. Disabling forward jumps past
// unvalidated steps is the presenting layer's policy, not enforced here.
func (s *Session) SetStep(i int) {
	if i >= StepArrivalAndDeparture && i <= StepConfirm {
		s.Step = i
	}
}

// SelectMeal sets or clears (meal == nil) the lunch or dinner of the day
// matching the given date. The meal must be offered for that day's type and
// the requested kind; the catalog filters the dropdowns the same way, so a
// mismatch only happens on a forged request. Days without a matching entry
// are ignored. The slate stays ordered by date.
func (s *Session) SelectMeal(date time.Time, kind MealType, meal *Meal) error {
	for i := range s.Days {
		if !sameDay(s.Days[i].Date, date) {
			continue
		}
		if meal != nil && (meal.Day != s.Days[i].Day || meal.Meal != kind) {
			return &FieldError{Field: "meals", Message: "The selected meal is not available for this day"}
		}
		switch kind {
		case MealTypeLunch:
			s.Days[i].Lunch = meal
		case MealTypeDinner:
			s.Days[i].Dinner = meal
		}
		break
	}
	sortDailyMeals(s.Days)
	return nil
}

// ToggleService adds the service to the selected set, or removes it when
// already present. The set is deduplicated by ID. Any change re-runs the
// van requirement rule.
func (s *Session) ToggleService(svc Service) {
	for i, existing := range s.Services {
		if existing.ID == svc.ID {
			s.Services = append(s.Services[:i], s.Services[i+1:]...)
			s.reconcileVans()
			return
		}
	}
	s.Services = append(s.Services, svc)
	s.reconcileVans()
}

// HasRequiredVan reports whether any selected service needs van transport.
func (s *Session) HasRequiredVan() bool {
	for _, svc := range s.Services {
		if svc.IsRequiredVan {
			return true
		}
	}
	return false
}

// RequiredVans suggests a van count for a group: one van per seven guests,
// minimum one, clamped to the fleet size.
func RequiredVans(numberOfGuests int) int {
	vans := 1
	if numberOfGuests > NumberOfGuestsPerVan {
		vans = (numberOfGuests + NumberOfGuestsPerVan - 1) / NumberOfGuestsPerVan
	}
	if vans > MaxNumberOfVans {
		vans = MaxNumberOfVans
	}
	return vans
}

func (s *Session) reconcileVans() {
	if s.HasRequiredVan() {
		s.Draft.NumberOfVans = RequiredVans(s.Draft.NumberOfGuests)
	} else {
		s.Draft.NumberOfVans = 0
	}
}

// validateArrival is the step-local validation for the first step. The
// room split is maintained by the setters, so only presence and date
// ordering are checked here.
func (s *Session) validateArrival() error {
	if s.Draft.Name == "" {
		return &FieldError{Field: "name", Message: "The name of the preventive cannot be empty"}
	}
	if s.Draft.CheckIn.IsZero() {
		return &FieldError{Field: "checkIn", Message: "Please select the check-in"}
	}
	if s.Draft.CheckOut.IsZero() {
		return &FieldError{Field: "checkOut", Message: "Please select the check-out"}
	}
	if s.Draft.CheckOut.Before(s.Draft.CheckIn) {
		return &FieldError{Field: "checkOut", Message: "The check-out cannot be before the check-in"}
	}
	if s.Draft.NumberOfGuests == 0 {
		return &FieldError{Field: "numberOfGuests", Message: "Please select the number of guests"}
	}
	return nil
}
