package handlers

import (
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/a-h/templ"
	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"tripconf/services"
	"tripconf/templates"
)

// HandleWizardNew starts a new quote wizard. With ?from=<id> the draft is
// pre-filled from a saved preventive, re-resolved against the current
// catalog so renamed or deleted entries do not leak stale data in.
func HandleWizardNew(app *pocketbase.PocketBase, store *SessionStore) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		var session *services.Session

		if fromID := e.Request.URL.Query().Get("from"); fromID != "" {
			source, err := app.FindRecordById("preventives", fromID)
			if err != nil {
				log.Printf("wizard: duplicate source %s not found: %v", fromID, err)
				return ErrorToast(e, http.StatusNotFound, "Preventive not found")
			}
			session, err = sessionFromPreventive(app, source)
			if err != nil {
				log.Printf("wizard: could not duplicate preventive %s: %v", fromID, err)
				return ErrorToast(e, http.StatusInternalServerError, services.DefaultErrorMessage)
			}
		} else {
			session = services.NewSession()
		}

		id := store.New(session)
		setDraftCookie(e, id)

		return renderWizard(app, e, session, nil, true)
	}
}

// sessionFromPreventive rebuilds a wizard session from a stored record.
// Meals are re-pointed at the current catalog entry with the same name and
// slot; services survive only if their (name, category) pair still exists.
func sessionFromPreventive(app *pocketbase.PocketBase, rec *core.Record) (*services.Session, error) {
	draft := draftFromRecord(rec)

	days, err := services.UnmarshalDailyMeals(rec.GetString("meals"))
	if err != nil {
		return nil, err
	}
	selected, err := services.UnmarshalServices(rec.GetString("services"))
	if err != nil {
		return nil, err
	}

	catalog, err := loadMeals(app)
	if err != nil {
		return nil, err
	}
	lookup := func(name string, day services.DayType, meal services.MealType) *services.Meal {
		for i := range catalog {
			if catalog[i].Name == name && catalog[i].Day == day && catalog[i].Meal == meal {
				found := catalog[i]
				return &found
			}
		}
		return nil
	}
	days = services.ResolveMeals(days, lookup)

	exists := func(name, categoryID string) bool {
		records, err := app.FindRecordsByFilter(
			"services",
			"name = {:name} && category = {:cat}",
			"", 1, 0,
			map[string]any{"name": name, "cat": categoryID},
		)
		return err == nil && len(records) > 0
	}
	selected = services.ResolveServices(selected, exists)

	return services.NewSessionFromDraft(draft, days, selected), nil
}

// HandleWizardField applies a single field edit to the draft.
func HandleWizardField(app *pocketbase.PocketBase, store *SessionStore) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		_, session, ok := draftSession(store, e)
		if !ok {
			return restartWizard(e)
		}
		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid form data")
		}

		field := e.Request.URL.Query().Get("field")
		value := e.Request.FormValue("value")

		errors := make(map[string]string)
		if err := applyField(session, field, value); err != nil {
			recordFieldError(e, err, errors)
		}

		return renderWizard(app, e, session, errors, false)
	}
}

func applyField(session *services.Session, field, value string) error {
	switch field {
	case "name":
		session.SetName(value)
	case "description":
		session.SetDescription(value)
	case "checkIn":
		t, err := time.Parse("2006-01-02", value)
		if err != nil {
			return &services.FieldError{Field: "checkIn", Message: "Please select the check-in"}
		}
		session.SetCheckIn(t)
	case "checkOut":
		t, err := time.Parse("2006-01-02", value)
		if err != nil {
			return &services.FieldError{Field: "checkOut", Message: "Please select the check-out"}
		}
		return session.SetCheckOut(t)
	case "numberOfGuests":
		n, err := strconv.Atoi(value)
		if err != nil {
			return &services.FieldError{Field: "numberOfGuests", Message: "Please select the number of guests"}
		}
		return session.SetNumberOfGuests(n)
	case "doubleRooms":
		n, err := strconv.Atoi(value)
		if err != nil {
			return &services.FieldError{Field: "doubleRooms", Message: "Invalid number of double rooms"}
		}
		return session.SetDoubleRooms(n)
	case "singleRooms":
		n, err := strconv.Atoi(value)
		if err != nil {
			return &services.FieldError{Field: "singleRooms", Message: "Invalid number of single rooms"}
		}
		return session.SetSingleRooms(n)
	case "freeQuote":
		n, err := strconv.Atoi(value)
		if err != nil {
			return &services.FieldError{Field: "freeQuote", Message: "Invalid free quote"}
		}
		return session.SetFreeQuote(n)
	case "numberOfVans":
		n, err := strconv.Atoi(value)
		if err != nil {
			return &services.FieldError{Field: "numberOfVans", Message: "Invalid number of vans"}
		}
		return session.SetNumberOfVans(n)
	default:
		return &services.FieldError{Field: "form", Message: "Unknown field"}
	}
	return nil
}

// HandleWizardNext advances to the next step.
func HandleWizardNext(app *pocketbase.PocketBase, store *SessionStore) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		_, session, ok := draftSession(store, e)
		if !ok {
			return restartWizard(e)
		}

		errors := make(map[string]string)
		if err := session.GoNext(); err != nil {
			recordFieldError(e, err, errors)
		}

		return renderWizard(app, e, session, errors, false)
	}
}

// HandleWizardPrevious steps back.
func HandleWizardPrevious(app *pocketbase.PocketBase, store *SessionStore) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		_, session, ok := draftSession(store, e)
		if !ok {
			return restartWizard(e)
		}

		session.GoPrevious()
		return renderWizard(app, e, session, nil, false)
	}
}

// HandleWizardStep jumps to an already visited step via the progress header.
func HandleWizardStep(app *pocketbase.PocketBase, store *SessionStore) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		_, session, ok := draftSession(store, e)
		if !ok {
			return restartWizard(e)
		}

		step, err := strconv.Atoi(e.Request.PathValue("step"))
		if err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid step")
		}

		// Forward jumps skip validation, so only backward ones are allowed.
		if step < session.Step {
			session.SetStep(step)
		}

		return renderWizard(app, e, session, nil, false)
	}
}

// HandleWizardMeal sets or clears a lunch or dinner selection.
func HandleWizardMeal(app *pocketbase.PocketBase, store *SessionStore) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		_, session, ok := draftSession(store, e)
		if !ok {
			return restartWizard(e)
		}
		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid form data")
		}

		date, err := time.Parse("2006-01-02", e.Request.URL.Query().Get("date"))
		if err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid date")
		}
		kind := services.MealType(e.Request.URL.Query().Get("kind"))
		if kind != services.MealTypeLunch && kind != services.MealTypeDinner {
			return ErrorToast(e, http.StatusBadRequest, "Invalid meal type")
		}

		var meal *services.Meal
		if mealID := e.Request.FormValue("value"); mealID != "" {
			rec, err := app.FindRecordById("meals", mealID)
			if err != nil {
				log.Printf("wizard: meal %s not found: %v", mealID, err)
				return ErrorToast(e, http.StatusNotFound, "Meal not found")
			}
			m := services.MealFromRecord(rec)
			meal = &m
		}

		errors := make(map[string]string)
		if err := session.SelectMeal(date, kind, meal); err != nil {
			recordFieldError(e, err, errors)
		}

		return renderWizard(app, e, session, errors, false)
	}
}

// HandleWizardService toggles a service in the selected set.
func HandleWizardService(app *pocketbase.PocketBase, store *SessionStore) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		_, session, ok := draftSession(store, e)
		if !ok {
			return restartWizard(e)
		}

		serviceID := e.Request.PathValue("id")
		rec, err := app.FindRecordById("services", serviceID)
		if err != nil {
			log.Printf("wizard: service %s not found: %v", serviceID, err)
			return ErrorToast(e, http.StatusNotFound, "Service not found")
		}

		svc := services.ServiceFromRecord(rec)
		if catRec, err := app.FindRecordById("service_categories", svc.CategoryID); err == nil {
			svc.CategoryName = catRec.GetString("name")
		}
		session.ToggleService(svc)

		return renderWizard(app, e, session, nil, false)
	}
}

// recordFieldError folds a command failure into the inline error map and
// fires a warning toast.
func recordFieldError(e *core.RequestEvent, err error, errors map[string]string) {
	if fieldErr, ok := err.(*services.FieldError); ok {
		errors[fieldErr.Field] = fieldErr.Message
		SetToast(e, "warning", fieldErr.Message)
		return
	}
	errors["form"] = services.DefaultErrorMessage
	SetToast(e, "error", services.DefaultErrorMessage)
}

// restartWizard handles a lost or expired draft by sending the browser back
// to a fresh wizard.
func restartWizard(e *core.RequestEvent) error {
	clearDraftCookie(e)
	if e.Request.Header.Get("HX-Request") == "true" {
		e.Response.Header().Set("HX-Redirect", "/preventives/new")
		return e.String(http.StatusOK, "")
	}
	return e.Redirect(http.StatusFound, "/preventives/new")
}

// renderWizard renders either the full page or the HTMX fragment.
func renderWizard(app *pocketbase.PocketBase, e *core.RequestEvent, session *services.Session, errors map[string]string, fullPage bool) error {
	data, err := buildWizardData(app, session, errors)
	if err != nil {
		log.Printf("wizard: could not build render data: %v", err)
		return ErrorToast(e, http.StatusInternalServerError, services.DefaultErrorMessage)
	}

	var component templ.Component
	if !fullPage && e.Request.Header.Get("HX-Request") == "true" {
		component = templates.WizardContent(data)
	} else {
		component = templates.WizardPage(data)
	}
	return component.Render(e.Request.Context(), e.Response)
}
