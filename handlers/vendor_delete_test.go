package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"eventplanner/testhelpers"
)

func TestHandleVendorDelete(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	vendor := testhelpers.CreateTestVendor(t, app, "Doomed Decorators")

	handler := HandleVendorDelete(app)

	req := httptest.NewRequest(http.MethodDelete, "/vendors/"+vendor.Id, nil)
	req.SetPathValue("id", vendor.Id)
	req.Header.Set("HX-Request", "true")
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", rec.Code)
	}
	if rec.Header().Get("HX-Redirect") != "/vendors" {
		t.Errorf("expected HX-Redirect to /vendors, got %q", rec.Header().Get("HX-Redirect"))
	}

	if _, err := app.FindRecordById("vendors", vendor.Id); err == nil {
		t.Error("expected vendor record to be gone after delete")
	}
}

func TestHandleVendorDelete_NotFound(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	handler := HandleVendorDelete(app)

	req := httptest.NewRequest(http.MethodDelete, "/vendors/missing123", nil)
	req.SetPathValue("id", "missing123")
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", rec.Code)
	}
}

func TestHandleVendorDelete_MissingID(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	handler := HandleVendorDelete(app)

	req := httptest.NewRequest(http.MethodDelete, "/vendors/", nil)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", rec.Code)
	}
}
