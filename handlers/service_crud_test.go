package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"tripconf/testhelpers"
)

func TestHandleServiceCreate(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	category := testhelpers.CreateTestCategory(t, app, "Experiences")

	handler := HandleServiceCreate(app)

	form := url.Values{}
	form.Set("name", "Cooking class")
	form.Set("category", category.Id)
	form.Set("cost_per_person", "45")
	form.Set("group_cost", "120")
	form.Set("is_required_van", "")

	req := httptest.NewRequest(http.MethodPost, "/services", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("HX-Request", "true")
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	records, err := app.FindRecordsByFilter("services", "name = {:n}", "", 1, 0,
		map[string]any{"n": "Cooking class"})
	if err != nil || len(records) == 0 {
		t.Fatal("expected service to be created")
	}
	if records[0].GetFloat("cost_per_person") != 45 {
		t.Errorf("cost_per_person = %v", records[0].GetFloat("cost_per_person"))
	}
	if records[0].GetBool("is_required_van") {
		t.Error("is_required_van should be false")
	}
	testhelpers.AssertHTMLContains(t, rec.Body.String(), "Cooking class")
}

func TestHandleServiceCreate_DuplicateInCategory(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	category := testhelpers.CreateTestCategory(t, app, "Experiences")
	testhelpers.CreateTestService(t, app, category.Id, "Cooking class", 45, 0, false)

	handler := HandleServiceCreate(app)

	form := url.Values{}
	form.Set("name", "Cooking class")
	form.Set("category", category.Id)

	req := httptest.NewRequest(http.MethodPost, "/services", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusConflict {
		t.Errorf("expected 409 for duplicate, got %d", rec.Code)
	}
}

func TestHandleServiceCreate_SameNameOtherCategory(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	experiences := testhelpers.CreateTestCategory(t, app, "Experiences")
	transfers := testhelpers.CreateTestCategory(t, app, "Transfers")
	testhelpers.CreateTestService(t, app, experiences.Id, "Cooking class", 45, 0, false)

	handler := HandleServiceCreate(app)

	form := url.Values{}
	form.Set("name", "Cooking class")
	form.Set("category", transfers.Id)

	req := httptest.NewRequest(http.MethodPost, "/services", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code == http.StatusConflict {
		t.Error("same name in another category rejected as duplicate")
	}
}

func TestHandleServiceCreate_UnknownCategory(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	handler := HandleServiceCreate(app)

	form := url.Values{}
	form.Set("name", "Cooking class")
	form.Set("category", "nope")

	req := httptest.NewRequest(http.MethodPost, "/services", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}

func TestHandleServiceDelete(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	category := testhelpers.CreateTestCategory(t, app, "Experiences")
	service := testhelpers.CreateTestService(t, app, category.Id, "Cooking class", 45, 0, false)

	handler := HandleServiceDelete(app)
	req := httptest.NewRequest(http.MethodDelete, "/services/"+service.Id, nil)
	req.SetPathValue("id", service.Id)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	if _, err := app.FindRecordById("services", service.Id); err == nil {
		t.Error("service still exists after delete")
	}
}

func TestHandleCategoryCreate_Duplicate(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	testhelpers.CreateTestCategory(t, app, "Experiences")

	handler := HandleCategoryCreate(app)

	form := url.Values{}
	form.Set("name", "Experiences")

	req := httptest.NewRequest(http.MethodPost, "/categories", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusConflict {
		t.Errorf("expected 409 for duplicate category, got %d", rec.Code)
	}
}

func TestHandleCategoryDelete_CascadesToServices(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	category := testhelpers.CreateTestCategory(t, app, "Experiences")
	service := testhelpers.CreateTestService(t, app, category.Id, "Cooking class", 45, 0, false)

	handler := HandleCategoryDelete(app)
	req := httptest.NewRequest(http.MethodDelete, "/categories/"+category.Id, nil)
	req.SetPathValue("id", category.Id)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	if _, err := app.FindRecordById("service_categories", category.Id); err == nil {
		t.Error("category still exists after delete")
	}
	if _, err := app.FindRecordById("services", service.Id); err == nil {
		t.Error("service survived its category")
	}
}

func TestHandleServiceList(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	category := testhelpers.CreateTestCategory(t, app, "Experiences")
	testhelpers.CreateTestService(t, app, category.Id, "Vineyard tour", 25, 80, true)

	handler := HandleServiceList(app)
	req := httptest.NewRequest(http.MethodGet, "/services", nil)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	testhelpers.AssertHTMLContains(t, rec.Body.String(), "Experiences", "Vineyard tour", "Add service", "Add category")
}
